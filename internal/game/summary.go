package game

import (
	"fmt"
	"strings"
)

// Summarize renders a human-readable report of the session: final score,
// overall verdict and one line per played round. Read-only; normally called
// once GameOver is set but safe at any point.
func Summarize(state *GameState) string {
	var b strings.Builder

	b.WriteString("=== GAME OVER ===\n")
	fmt.Fprintf(&b, "Final Score: You %d - %d Bot (Draws: %d)\n\n",
		state.UserScore, state.BotScore, state.Draws)

	switch {
	case state.UserScore > state.BotScore:
		b.WriteString("YOU WIN!\n")
	case state.BotScore > state.UserScore:
		b.WriteString("BOT WINS!\n")
	default:
		b.WriteString("IT'S A DRAW!\n")
	}

	b.WriteString("\nRound History:\n")
	for _, h := range state.History {
		outcome := strings.ToUpper(string(h.Winner))
		fmt.Fprintf(&b, "  Round %d: You played %s, Bot played %s -> %s\n",
			h.Round, h.UserMove, h.BotMove, outcome)
	}

	return b.String()
}
