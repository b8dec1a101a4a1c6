package session

import (
	"encoding/json"

	"github.com/inamate/perspective/internal/engine"
)

type Message struct {
	Type      string          `json:"type"`
	SessionID string          `json:"sessionId,omitempty"`
	ClientID  string          `json:"clientId,omitempty"`
	Seq       int64           `json:"seq,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

const (
	// Client → server
	TypePointerDown  = "pointer.down"
	TypePointerMove  = "pointer.move"
	TypePointerUp    = "pointer.up"
	TypePointerLeave = "pointer.leave"
	TypeHitTest      = "hit.test"
	TypeCoords       = "coords"

	// Server → client
	TypeWelcome      = "welcome"
	TypeFrame        = "frame"
	TypeHitResult    = "hit.result"
	TypeCoordsResult = "coords.result"
	TypeError        = "error"

	// Stands in for a frame that failed to decode.
	typeInvalid = "invalid"
)

// PointerPayload carries a canvas-space pointer position.
type PointerPayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type WelcomePayload struct {
	SessionID string `json:"sessionId"`
	ClientID  string `json:"clientId"`
	Scene     string `json:"scene"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	FPS       int    `json:"fps"`
}

// FramePayload is one rendered tick.
type FramePayload struct {
	Tick     uint64               `json:"tick"`
	Commands []engine.DrawCommand `json:"commands"`
}

type HitResultPayload struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Target string  `json:"target"`
}

type CoordsResultPayload struct {
	Points []engine.PointCoords `json:"points"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

func newMessage(typ string, payload any) (*Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Message{Type: typ, Payload: data}, nil
}
