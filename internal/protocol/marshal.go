package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrUnknownMessageType is returned when a frame's type field does not match
// any known message.
var ErrUnknownMessageType = errors.New("unknown message type")

// Message is the envelope for every WebSocket frame.
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewMessage wraps a payload in an envelope stamped with the current time.
func NewMessage(messageType MessageType, data interface{}) (*Message, error) {
	var raw json.RawMessage
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("marshal %s payload: %w", messageType, err)
		}
		raw = b
	}

	return &Message{
		Type:      messageType,
		Data:      raw,
		Timestamp: time.Now(),
	}, nil
}

// Marshal serializes an envelope to the wire format.
func Marshal(msg *Message) ([]byte, error) {
	return json.Marshal(msg)
}

// Unmarshal parses a wire frame back into an envelope. The payload stays raw
// until DecodeData is called with the matching struct.
func Unmarshal(data []byte) (*Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("unmarshal message: %w", err)
	}
	if msg.Type == "" {
		return nil, fmt.Errorf("%w: missing type field", ErrUnknownMessageType)
	}
	return &msg, nil
}

// DecodeData unpacks the envelope's payload into v, which must be a pointer
// to the payload struct matching msg.Type.
func DecodeData(msg *Message, v interface{}) error {
	if len(msg.Data) == 0 {
		return fmt.Errorf("message %s has no payload", msg.Type)
	}
	if err := json.Unmarshal(msg.Data, v); err != nil {
		return fmt.Errorf("decode %s payload: %w", msg.Type, err)
	}
	return nil
}
