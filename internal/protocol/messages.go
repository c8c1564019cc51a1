// Package protocol defines the JSON wire messages exchanged between the
// referee server and its clients. Every frame is a Message envelope whose
// Data field carries one of the typed payloads below.
package protocol

import (
	"github.com/lox/rpsplus/internal/game"
)

// MessageType identifies the type of message
type MessageType string

const (
	// Client -> Server
	TypeStart MessageType = "start"
	TypeMove  MessageType = "move"

	// Server -> Client
	TypeWelcome     MessageType = "welcome"
	TypeRoundResult MessageType = "round_result"
	TypeGameOver    MessageType = "game_over"
	TypeError       MessageType = "error"
)

// Client -> Server Messages

// StartData requests a fresh game session.
type StartData struct {
	PlayerName string `json:"player_name,omitempty"`
}

// MoveData submits the raw move text for the current round. The server runs
// validation; clients send whatever the player typed.
type MoveData struct {
	Input string `json:"input"`
}

// Server -> Client Messages

// WelcomeData confirms a new session with its ID and the number of rounds to
// be played. The seed is withheld until game over so a client cannot
// precompute the opponent's draws.
type WelcomeData struct {
	SessionID   string `json:"session_id"`
	TotalRounds int    `json:"total_rounds"`
}

// RoundResultData reports one committed round plus the running state.
type RoundResultData struct {
	Round    int            `json:"round"`
	UserMove game.Move      `json:"user_move"`
	BotMove  game.Move      `json:"bot_move"`
	Winner   game.Outcome   `json:"winner"`
	Reason   string         `json:"reason,omitempty"` // set when the round was invalid
	State    game.GameState `json:"state"`
}

// GameOverData closes the session with the final state, the formatted
// summary, and the seed the opponent's moves were drawn from.
type GameOverData struct {
	State   game.GameState `json:"state"`
	Summary string         `json:"summary"`
	Seed    int64          `json:"seed"`
}

// ErrorData reports a protocol-level failure (malformed frame, move before
// start, and so on). Game-level rejections travel as RoundResultData with
// winner "invalid", never as errors.
type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
