package game

import (
	"fmt"
	"strings"
)

// ValidationResult reports whether a raw input is playable this round.
type ValidationResult struct {
	Valid  bool   `json:"valid"`
	Move   Move   `json:"move,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// Validate normalizes raw input (trim, lowercase) and checks it against the
// accepted move set and the user's bomb budget. It never mutates state; the
// bomb-reuse check reads only state.UserBombUsed. The opponent's bomb usage
// is not this function's concern.
func Validate(rawInput string, state *GameState) ValidationResult {
	normalized := Move(strings.ToLower(strings.TrimSpace(rawInput)))

	if !isPlayable(normalized) {
		return ValidationResult{
			Reason: fmt.Sprintf("Invalid move. Valid moves are: %s", moveList()),
		}
	}

	if normalized == MoveBomb && state.UserBombUsed {
		return ValidationResult{
			Reason: "You have already used your bomb this game!",
		}
	}

	return ValidationResult{Valid: true, Move: normalized}
}

func isPlayable(m Move) bool {
	for _, valid := range Moves {
		if m == valid {
			return true
		}
	}
	return false
}

func moveList() string {
	tokens := make([]string, len(Moves))
	for i, m := range Moves {
		tokens[i] = string(m)
	}
	return strings.Join(tokens, ", ")
}
