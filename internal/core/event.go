package core

import "encoding/json"

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventResponse is a status acknowledgment unicast to the command
	// originator, never broadcast.
	EventResponse EventKind = iota
	// EventMessage carries a chat payload, unicast or broadcast.
	EventMessage
	// EventRoomList delivers the current room listing to all clients.
	EventRoomList
	// EventPrice carries a bid price update, broadcast to all clients.
	EventPrice
)

// Acknowledgment codes. String-typed for wire compatibility.
const (
	CodeOK       = "200"
	CodeNotFound = "404"
)

// Event is sent to clients to describe what happened in the system.
type Event struct {
	Kind EventKind

	// EventResponse
	Command string
	Code    string
	Message string

	// EventMessage / EventPrice: raw payload, forwarded as received.
	Payload json.RawMessage

	// EventRoomList
	Rooms []RoomInfo
}

func ackEvent(command, code, message string) *Event {
	return &Event{Kind: EventResponse, Command: command, Code: code, Message: message}
}
