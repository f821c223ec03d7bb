package http

import (
	"encoding/json"
	"strconv"

	"github.com/bidchat/bidchat-server/internal/core"
	"github.com/bidchat/bidchat-server/internal/proto"
)

// inboundToCommand translates a wire event into a core command. A
// malformed but parseable event yields a protocol error for the client;
// an unparseable frame yields a hard error and closes the connection.
func inboundToCommand(inbound proto.Inbound) (*core.Command, *proto.Error, error) {
	switch inbound.Type {
	case proto.InboundTypeLogin:
		var login proto.LoginData
		if err := json.Unmarshal(inbound.Data, &login); err != nil {
			return nil, nil, err
		}
		if login.ID == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "id is required"}, nil
		}
		return &core.Command{
			Kind:    core.CommandLogin,
			LoginID: login.ID,
		}, nil, nil
	case proto.InboundTypeMessage:
		// Only the recipient key is inspected; the payload is forwarded
		// to its destination exactly as received.
		var msg proto.MessageData
		if err := json.Unmarshal(inbound.Data, &msg); err != nil {
			return nil, nil, err
		}
		if msg.Recipient == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "recepient is required"}, nil
		}
		return &core.Command{
			Kind:      core.CommandSendMessage,
			Recipient: msg.Recipient,
			Payload:   inbound.Data,
		}, nil, nil
	case proto.InboundTypeRoom:
		var room proto.RoomData
		if err := json.Unmarshal(inbound.Data, &room); err != nil {
			return nil, nil, err
		}
		if room.Command == "" || room.RoomID == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "command and roomId are required"}, nil
		}
		return &core.Command{
			Kind:        core.CommandRoom,
			RoomCommand: room.Command,
			RoomID:      room.RoomID,
			RoomName:    room.RoomName,
			RoomOwner:   room.RoomOwner,
		}, nil, nil
	case proto.InboundTypePrice:
		var price proto.PriceData
		if err := json.Unmarshal(inbound.Data, &price); err != nil {
			return nil, nil, err
		}
		if price.ObjID == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "objId is required"}, nil
		}
		value, err := strconv.ParseInt(price.Data, 10, 64)
		if err != nil {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "data must be a numeric string"}, nil
		}
		return &core.Command{
			Kind:    core.CommandPriceUpdate,
			ObjID:   price.ObjID,
			Price:   value,
			Bidder:  price.Sender,
			Payload: inbound.Data,
		}, nil, nil
	default:
		return nil, &proto.Error{Code: core.ErrCodeInvalidMessage, Msg: "unknown message type"}, nil
	}
}

func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventResponse:
		return proto.Outbound{
			Type: proto.OutboundTypeResponse,
			Data: proto.ResponseData{
				Command: event.Command,
				Code:    event.Code,
				Message: event.Message,
			},
		}
	case core.EventMessage:
		return proto.Outbound{
			Type: proto.OutboundTypeMessage,
			Data: event.Payload,
		}
	case core.EventRoomList:
		rooms := make([]proto.RoomInfo, 0, len(event.Rooms))
		for _, room := range event.Rooms {
			rooms = append(rooms, proto.RoomInfo{
				ID:      room.ID,
				Name:    room.Name,
				Owner:   room.Owner,
				Members: room.Members,
			})
		}
		return proto.Outbound{
			Type: proto.OutboundTypeRoom,
			Data: proto.RoomListData{Command: "list", Rooms: rooms},
		}
	case core.EventPrice:
		return proto.Outbound{
			Type: proto.OutboundTypePrice,
			Data: event.Payload,
		}
	default:
		return proto.Outbound{
			Type:  proto.OutboundTypeError,
			Error: &proto.Error{Code: "unknown", Msg: "unknown event"},
		}
	}
}
