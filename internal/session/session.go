// Package session serves live diagram sessions over WebSocket. Each
// connection gets its own engine; the server pushes frames at a fixed rate
// and applies pointer events as they arrive.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/coder/websocket"

	"github.com/inamate/perspective/internal/engine"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
	maxMsgSize = 16 * 1024
)

type Session struct {
	hub     *Hub
	conn    *websocket.Conn
	send    chan []byte
	inbound chan *Message
	engine  *engine.Engine
	fps     int
	seq     int64

	ID       string
	ClientID string
}

func newSession(hub *Hub, conn *websocket.Conn, scene *engine.Scene, fps int, id, clientID string) *Session {
	return &Session{
		hub:      hub,
		conn:     conn,
		send:     make(chan []byte, 64),
		inbound:  make(chan *Message, 64),
		engine:   engine.NewEngine(scene),
		fps:      fps,
		ID:       id,
		ClientID: clientID,
	}
}

// ReadPump decodes client messages and hands them to Run. It returns when
// the connection closes.
func (s *Session) ReadPump(ctx context.Context) {
	defer close(s.inbound)

	s.conn.SetReadLimit(maxMsgSize)

	for {
		_, data, err := s.conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure ||
				websocket.CloseStatus(err) == websocket.StatusGoingAway {
				return
			}
			slog.Debug("read error", "error", err, "session", s.ID)
			return
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("invalid message", "error", err, "session", s.ID)
			msg = Message{Type: typeInvalid}
		}

		select {
		case s.inbound <- &msg:
		case <-ctx.Done():
			return
		}
	}
}

// Run owns the engine: it applies inbound messages and renders a frame on
// every tick of the frame clock.
func (s *Session) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second / time.Duration(s.fps))
	defer ticker.Stop()

	s.Send(s.welcome())

	for {
		select {
		case msg, ok := <-s.inbound:
			if !ok {
				return
			}
			if reply := s.handle(msg); reply != nil {
				s.Send(reply)
			}

		case <-ticker.C:
			s.Send(s.frame())

		case <-ctx.Done():
			return
		}
	}
}

func (s *Session) WritePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case message := <-s.send:
			writeCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := s.conn.Write(writeCtx, websocket.MessageText, message)
			cancel()
			if err != nil {
				slog.Debug("write error", "error", err, "session", s.ID)
				return
			}

		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := s.conn.Ping(pingCtx)
			cancel()
			if err != nil {
				return
			}

		case <-ctx.Done():
			return
		}
	}
}

// Send queues msg, dropping it when the client is not keeping up. Only the
// Run goroutine sends.
func (s *Session) Send(msg *Message) {
	s.seq++
	msg.Seq = s.seq
	msg.SessionID = s.ID

	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("marshal message", "error", err)
		return
	}

	select {
	case s.send <- data:
	default:
		slog.Warn("session send buffer full, dropping message", "session", s.ID, "type", msg.Type)
	}
}

func (s *Session) handle(msg *Message) *Message {
	switch msg.Type {
	case TypePointerDown, TypePointerMove, TypeHitTest:
		var p PointerPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return errorMessage(fmt.Sprintf("invalid %s payload", msg.Type))
		}
		switch msg.Type {
		case TypePointerDown:
			s.engine.PointerDown(p.X, p.Y)
		case TypePointerMove:
			s.engine.PointerMove(p.X, p.Y)
		case TypeHitTest:
			return s.reply(TypeHitResult, HitResultPayload{X: p.X, Y: p.Y, Target: s.engine.HitTest(p.X, p.Y)})
		}

	case TypePointerUp:
		s.engine.PointerUp()

	case TypePointerLeave:
		s.engine.PointerLeave()

	case TypeCoords:
		return s.reply(TypeCoordsResult, CoordsResultPayload{Points: s.engine.Coordinates()})

	case typeInvalid:
		return errorMessage("invalid message")

	default:
		slog.Warn("unknown message type", "type", msg.Type, "session", s.ID)
		return errorMessage("unknown message type: " + msg.Type)
	}
	return nil
}

func (s *Session) welcome() *Message {
	scene := s.engine.Scene()
	return s.reply(TypeWelcome, WelcomePayload{
		SessionID: s.ID,
		ClientID:  s.ClientID,
		Scene:     scene.Name,
		Width:     scene.Width,
		Height:    scene.Height,
		FPS:       s.fps,
	})
}

func (s *Session) frame() *Message {
	tick := s.engine.Advance()
	return s.reply(TypeFrame, FramePayload{Tick: uint64(tick), Commands: s.engine.Frame()})
}

func (s *Session) reply(typ string, payload any) *Message {
	msg, err := newMessage(typ, payload)
	if err != nil {
		slog.Error("marshal payload", "error", err, "type", typ)
		return errorMessage("internal error")
	}
	return msg
}

func errorMessage(text string) *Message {
	data, _ := json.Marshal(ErrorPayload{Message: text})
	return &Message{Type: TypeError, Payload: data}
}
