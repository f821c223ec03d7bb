// Command ws_chat is an interactive terminal client for manual testing.
//
// Usage:
//
//	go run ./scripts/ws_chat -addr ws://localhost:8080/ws -user alice
//
// Plain input lines are broadcast to everyone. Slash commands:
//
//	/msg <recipient> <text>       send a direct message
//	/room create <id> [name]      create a room
//	/room update <id> [name]      rename a room
//	/room delete <id>             delete a room
//	/price <objId> <price>        place a bid on a post
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/bidchat/bidchat-server/internal/proto"
)

func main() {
	if err := run(); err != nil {
		log.Printf("ws_chat: %v", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "ws://localhost:8080/ws", "WebSocket address")
	user := flag.String("user", "cli-user", "login id for this connection")
	flag.Parse()

	baseCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(baseCtx)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, *addr, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	send := func(typ string, v interface{}) {
		payload, marshalErr := json.Marshal(v)
		if marshalErr != nil {
			log.Printf("marshal %s: %v", typ, marshalErr)
			return
		}
		if writeErr := wsjson.Write(ctx, conn, proto.Inbound{Type: typ, Data: payload}); writeErr != nil {
			cancel()
			log.Printf("send: %v", writeErr)
		}
	}

	send(proto.InboundTypeLogin, proto.LoginData{ID: *user})

	fmt.Printf("Connected to %s as %s\n", *addr, *user)
	fmt.Println("Type messages and press Enter to send. Ctrl+C to exit.")

	go func() {
		defer cancel()
		readLoop(ctx, conn)
	}()

	writeLoop(ctx, *user, send)

	stop()
	cancel()
	_ = conn.Close(websocket.StatusNormalClosure, "bye")
	return nil
}

func readLoop(ctx context.Context, conn *websocket.Conn) {
	for {
		var outbound proto.Outbound
		if err := wsjson.Read(ctx, conn, &outbound); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				return
			}
			log.Printf("read error: %v", err)
			return
		}

		switch outbound.Type {
		case proto.OutboundTypeResponse:
			var resp proto.ResponseData
			if err := remarshal(outbound.Data, &resp); err != nil {
				log.Printf("decode response: %v", err)
				continue
			}
			fmt.Printf("<< %s: %s %s\n", resp.Command, resp.Code, resp.Message)
		case proto.OutboundTypeMessage:
			raw, err := json.Marshal(outbound.Data)
			if err != nil {
				log.Printf("encode message: %v", err)
				continue
			}
			fmt.Printf("<< message: %s\n", raw)
		case proto.OutboundTypeRoom:
			var listing proto.RoomListData
			if err := remarshal(outbound.Data, &listing); err != nil {
				log.Printf("decode room listing: %v", err)
				continue
			}
			fmt.Printf("<< rooms after %s:\n", listing.Command)
			for _, r := range listing.Rooms {
				fmt.Printf("   %s %q owner=%s members=%v\n", r.ID, r.Name, r.Owner, r.Members)
			}
		case proto.OutboundTypePrice:
			var price proto.PriceData
			if err := remarshal(outbound.Data, &price); err != nil {
				log.Printf("decode price: %v", err)
				continue
			}
			fmt.Printf("<< price: post %s now %s (bidder %s)\n", price.ObjID, price.Data, price.Sender)
		case proto.OutboundTypeError:
			if outbound.Error != nil {
				fmt.Printf("<< error %s: %s\n", outbound.Error.Code, outbound.Error.Msg)
			}
		default:
			raw, _ := json.Marshal(outbound)
			fmt.Printf("<< %s\n", raw)
		}
	}
}

func writeLoop(ctx context.Context, user string, send func(string, interface{})) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if !strings.HasPrefix(line, "/") {
			send(proto.InboundTypeMessage, map[string]string{
				"recepient": "ALL",
				"sender":    user,
				"data":      line,
			})
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "/msg":
			if len(fields) < 3 {
				fmt.Println("usage: /msg <recipient> <text>")
				continue
			}
			send(proto.InboundTypeMessage, map[string]string{
				"recepient": fields[1],
				"sender":    user,
				"data":      strings.Join(fields[2:], " "),
			})
		case "/room":
			if len(fields) < 3 {
				fmt.Println("usage: /room create|update|delete <id> [name]")
				continue
			}
			data := proto.RoomData{
				Command:   fields[1],
				RoomID:    fields[2],
				RoomOwner: user,
			}
			if len(fields) > 3 {
				data.RoomName = strings.Join(fields[3:], " ")
			}
			send(proto.InboundTypeRoom, data)
		case "/price":
			if len(fields) != 3 {
				fmt.Println("usage: /price <objId> <price>")
				continue
			}
			send(proto.InboundTypePrice, proto.PriceData{
				ObjID:  fields[1],
				Data:   fields[2],
				Sender: user,
			})
		default:
			fmt.Printf("unknown command %s\n", fields[0])
		}
	}
}

func remarshal(data interface{}, into interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, into)
}
