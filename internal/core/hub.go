package core

import (
	"context"

	"github.com/rs/zerolog"
)

// PriceStore is the persistence capability consumed by the price handler.
type PriceStore interface {
	UpdatePostPrice(ctx context.Context, postID string, price int64, bidder string) error
}

type clientCommand struct {
	client *Client
	cmd    *Command
}

// Hub owns the connection registry and room table and processes every
// inbound command on a single goroutine. Handlers run one at a time to
// completion, so the registry and room table need no locking.
type Hub struct {
	prices PriceStore // may be nil when no persistence is wired
	log    zerolog.Logger

	registry *Registry
	rooms    *RoomTable
	clients  map[*Client]struct{}

	register   chan *Client
	unregister chan *Client
	commands   chan clientCommand
}

// NewHub creates a hub. prices may be nil; price updates are then
// broadcast without being persisted.
func NewHub(prices PriceStore, logger *zerolog.Logger) *Hub {
	lg := zerolog.Nop()
	if logger != nil {
		lg = *logger
	}
	return &Hub{
		prices:     prices,
		log:        lg,
		registry:   NewRegistry(),
		rooms:      NewRoomTable(),
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		commands:   make(chan clientCommand, 64),
	}
}

// RegisterClient hands a new connection to the hub.
func (h *Hub) RegisterClient(c *Client) {
	h.register <- c
}

// UnregisterClient removes a connection from the hub. Safe to call more
// than once for the same client.
func (h *Hub) UnregisterClient(c *Client) {
	h.unregister <- c
}

// Run processes registrations and commands until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.rooms.JoinSelf(c)
			go h.pump(c)
			h.log.Debug().Str("conn_id", c.ID).Str("addr", c.Addr).Msg("client registered")
		case c := <-h.unregister:
			if _, ok := h.clients[c]; !ok {
				continue
			}
			delete(h.clients, c)
			close(c.done)
			h.registry.Unbind(c)
			// Only the implicit self room is cleaned up here. Memberships
			// in named rooms are left behind on disconnect; room delete is
			// the only way those entries go away.
			h.rooms.LeaveSelf(c)
			h.log.Debug().Str("conn_id", c.ID).Msg("client unregistered")
		case cc := <-h.commands:
			h.handle(cc.client, cc.cmd)
		case <-ctx.Done():
			return
		}
	}
}

// pump forwards a client's commands into the hub loop until the client is
// unregistered.
func (h *Hub) pump(c *Client) {
	for {
		select {
		case cmd := <-c.Commands:
			select {
			case h.commands <- clientCommand{client: c, cmd: cmd}:
			case <-c.done:
				return
			}
		case <-c.done:
			return
		}
	}
}

func (h *Hub) handle(c *Client, cmd *Command) {
	switch cmd.Kind {
	case CommandLogin:
		h.handleLogin(c, cmd)
	case CommandSendMessage:
		h.handleMessage(c, cmd)
	case CommandRoom:
		h.handleRoom(c, cmd)
	case CommandPriceUpdate:
		h.handlePrice(c, cmd)
	default:
		h.log.Warn().Int("kind", int(cmd.Kind)).Msg("unknown command kind")
	}
}

// handleLogin binds the login id to the sending connection. A rebind for
// the same id silently evicts the previous connection from the registry.
func (h *Hub) handleLogin(c *Client, cmd *Command) {
	h.registry.Bind(cmd.LoginID, c)
	c.LoginID = cmd.LoginID
	h.send(c, ackEvent("login", CodeOK, MsgLoggedIn))
	h.log.Info().Str("conn_id", c.ID).Str("login_id", cmd.LoginID).Msg("login bound")
}

func (h *Hub) handleMessage(c *Client, cmd *Command) {
	if cmd.Recipient == RecipientAll {
		h.broadcast(&Event{Kind: EventMessage, Payload: cmd.Payload})
		return
	}

	target, ok := h.registry.Resolve(cmd.Recipient)
	if !ok {
		h.send(c, ackEvent("message", CodeNotFound, MsgRecipientNotFound))
		return
	}
	h.send(target, &Event{Kind: EventMessage, Payload: cmd.Payload})
	h.send(c, ackEvent("message", CodeOK, MsgDelivered))
}

func (h *Hub) handleRoom(c *Client, cmd *Command) {
	switch cmd.RoomCommand {
	case RoomCreate:
		h.rooms.Create(cmd.RoomID, cmd.RoomName, cmd.RoomOwner, c)
	case RoomUpdate:
		h.rooms.Update(cmd.RoomID, cmd.RoomName, cmd.RoomOwner)
	case RoomDelete:
		h.rooms.Delete(cmd.RoomID, c)
	default:
		h.send(c, ackEvent("room", CodeNotFound, "unknown room command"))
		return
	}

	// Every room command is followed by a listing broadcast to all
	// connections, not just room participants.
	h.broadcast(&Event{Kind: EventRoomList, Rooms: h.rooms.List()})
}

// handlePrice issues the persistence update and broadcasts the raw price
// event. The broadcast is not gated on the write: the update runs in its
// own goroutine and a failure is only logged, never surfaced to clients.
func (h *Hub) handlePrice(c *Client, cmd *Command) {
	if h.prices != nil {
		objID, price, bidder := cmd.ObjID, cmd.Price, cmd.Bidder
		lg := h.log
		go func() {
			if err := h.prices.UpdatePostPrice(context.Background(), objID, price, bidder); err != nil {
				lg.Warn().Err(err).Str("post_id", objID).Msg("price update persistence failed")
			}
		}()
	}
	h.broadcast(&Event{Kind: EventPrice, Payload: cmd.Payload})
	h.log.Debug().Str("conn_id", c.ID).Str("post_id", cmd.ObjID).Int64("price", cmd.Price).Msg("price broadcast")
}

func (h *Hub) broadcast(ev *Event) {
	for client := range h.clients {
		h.send(client, ev)
	}
}

func (h *Hub) send(c *Client, ev *Event) {
	select {
	case c.Events <- ev:
	default:
		// Drop if slow consumer.
		h.log.Warn().Str("conn_id", c.ID).Int("kind", int(ev.Kind)).Msg("event dropped, client event queue full")
	}
}
