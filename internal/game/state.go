package game

// TotalRounds is the fixed number of rounds in a session. Every round counts,
// including draws and invalid input.
const TotalRounds = 3

// Move is a normalized move token.
type Move string

const (
	MoveRock     Move = "rock"
	MovePaper    Move = "paper"
	MoveScissors Move = "scissors"
	MoveBomb     Move = "bomb"

	// MoveNone fills the opponent slot of a round that never reached
	// resolution (the user's input was rejected).
	MoveNone Move = "none"

	// MoveInvalid marks the user slot of a rejected round.
	MoveInvalid Move = "invalid"
)

// Moves lists the playable tokens in their canonical order.
var Moves = []Move{MoveRock, MovePaper, MoveScissors, MoveBomb}

// Outcome identifies who took a round.
type Outcome string

const (
	OutcomeUser    Outcome = "user"
	OutcomeBot     Outcome = "bot"
	OutcomeDraw    Outcome = "draw"
	OutcomeInvalid Outcome = "invalid"
)

// RoundRecord is one entry of a session's history. Immutable once appended.
type RoundRecord struct {
	Round    int     `json:"round"`
	UserMove Move    `json:"user_move"`
	BotMove  Move    `json:"bot_move"`
	Winner   Outcome `json:"winner"`
}

// GameState is the authoritative record of a single session. It is mutated
// only by Apply; everything else reads it.
type GameState struct {
	Round        int           `json:"round"`
	UserScore    int           `json:"user_score"`
	BotScore     int           `json:"bot_score"`
	Draws        int           `json:"draws"`
	UserBombUsed bool          `json:"user_bomb_used"`
	BotBombUsed  bool          `json:"bot_bomb_used"`
	History      []RoundRecord `json:"history"`
	GameOver     bool          `json:"game_over"`
}

// NewGameState creates the state for a fresh session: round 1, zero scores,
// bombs unspent, empty history.
func NewGameState() *GameState {
	return &GameState{
		Round:   1,
		History: []RoundRecord{},
	}
}
