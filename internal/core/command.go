package core

import "encoding/json"

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandLogin binds an application identity to the sending connection.
	CommandLogin CommandKind = iota
	// CommandSendMessage delivers a payload to one recipient or to everyone.
	CommandSendMessage
	// CommandRoom creates, updates or deletes a room.
	CommandRoom
	// CommandPriceUpdate records a new bid price and rebroadcasts it.
	CommandPriceUpdate
)

// Room sub-commands carried by CommandRoom.
const (
	RoomCreate = "create"
	RoomUpdate = "update"
	RoomDelete = "delete"
)

// RecipientAll addresses a message to every connected client.
const RecipientAll = "ALL"

// Command represents an action requested by a client. Only the fields
// relevant to Kind are populated.
type Command struct {
	Kind CommandKind

	// CommandLogin
	LoginID string

	// CommandSendMessage: Recipient is a login id or RecipientAll;
	// Payload is the raw client payload, passed through untouched.
	Recipient string
	Payload   json.RawMessage

	// CommandRoom
	RoomCommand string
	RoomID      string
	RoomName    string
	RoomOwner   string

	// CommandPriceUpdate: Payload carries the raw price event as well.
	ObjID  string
	Price  int64
	Bidder string
}
