package proto

import "encoding/json"

// Inbound is the envelope for events coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	InboundTypeLogin   = "login"
	InboundTypeMessage = "message"
	InboundTypeRoom    = "room"
	InboundTypePrice   = "price"

	OutboundTypeResponse = "response"
	OutboundTypeMessage  = "message"
	OutboundTypeRoom     = "room"
	OutboundTypePrice    = "price"
	OutboundTypeError    = "error"
)

// LoginData binds an application identity to this connection.
type LoginData struct {
	ID string `json:"id"`
}

// MessageData carries the addressing of a chat payload. The payload
// itself is forwarded opaquely; only the recipient is inspected here.
// The key is spelled "recepient" on the wire and has to stay that way
// for compatibility with existing clients.
type MessageData struct {
	Recipient string `json:"recepient"`
}

// RoomData is a room management command.
type RoomData struct {
	Command   string `json:"command"`
	RoomID    string `json:"roomId"`
	RoomName  string `json:"roomName"`
	RoomOwner string `json:"roomOwner"`
}

// PriceData is a bid price update. Data is the new price as a numeric
// string, as sent by the bidding UI.
type PriceData struct {
	ObjID  string `json:"objId"`
	Data   string `json:"data"`
	Sender string `json:"sender"`
}

// Outbound is the envelope for events sent to the client.
type Outbound struct {
	Type  string `json:"type"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// ResponseData is a status acknowledgment, unicast to the connection
// that issued the command.
type ResponseData struct {
	Command string `json:"command"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RoomInfo is one room in a listing broadcast.
type RoomInfo struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Owner   string   `json:"owner"`
	Members []string `json:"members"`
}

// RoomListData is broadcast to all connections after any room command.
type RoomListData struct {
	Command string     `json:"command"`
	Rooms   []RoomInfo `json:"rooms"`
}

// Error describes a protocol-level error response.
type Error struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}
