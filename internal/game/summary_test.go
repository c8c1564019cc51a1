package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func playedOutState() *GameState {
	state := NewGameState()
	Apply(state, MoveRock, MoveScissors, OutcomeUser)
	Apply(state, MoveBomb, MoveBomb, OutcomeDraw)
	Apply(state, MoveScissors, MovePaper, OutcomeUser)
	return state
}

func TestSummarizeUserWins(t *testing.T) {
	out := Summarize(playedOutState())

	assert.Contains(t, out, "=== GAME OVER ===")
	assert.Contains(t, out, "Final Score: You 2 - 0 Bot (Draws: 1)")
	assert.Contains(t, out, "YOU WIN!")
	assert.Contains(t, out, "Round 1: You played rock, Bot played scissors -> USER")
	assert.Contains(t, out, "Round 2: You played bomb, Bot played bomb -> DRAW")
	assert.Contains(t, out, "Round 3: You played scissors, Bot played paper -> USER")
}

func TestSummarizeBotWins(t *testing.T) {
	state := NewGameState()
	Apply(state, MoveRock, MovePaper, OutcomeBot)
	Apply(state, MoveInvalid, MoveNone, OutcomeInvalid)
	Apply(state, MovePaper, MovePaper, OutcomeDraw)

	out := Summarize(state)
	assert.Contains(t, out, "Final Score: You 0 - 1 Bot (Draws: 1)")
	assert.Contains(t, out, "BOT WINS!")
	assert.Contains(t, out, "Round 2: You played invalid, Bot played none -> INVALID")
}

func TestSummarizeOverallDraw(t *testing.T) {
	state := NewGameState()
	Apply(state, MoveRock, MoveScissors, OutcomeUser)
	Apply(state, MoveRock, MovePaper, OutcomeBot)
	Apply(state, MovePaper, MovePaper, OutcomeDraw)

	out := Summarize(state)
	assert.Contains(t, out, "IT'S A DRAW!")
}

func TestSummarizeOneLinePerRound(t *testing.T) {
	out := Summarize(playedOutState())

	lines := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "Round ") {
			lines++
		}
	}
	assert.Equal(t, TotalRounds, lines)
}
