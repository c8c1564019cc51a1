package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyRoundCounting(t *testing.T) {
	state := NewGameState()

	applies := []struct {
		user   Move
		bot    Move
		winner Outcome
	}{
		{MoveRock, MoveScissors, OutcomeUser},
		{MoveInvalid, MoveNone, OutcomeInvalid},
		{MovePaper, MovePaper, OutcomeDraw},
	}

	for i, a := range applies {
		Apply(state, a.user, a.bot, a.winner)
		assert.Equal(t, i+2, state.Round, "round after %d applies", i+1)
		assert.Len(t, state.History, i+1)
	}
}

func TestApplyScoreConservation(t *testing.T) {
	state := NewGameState()

	sequence := []Outcome{OutcomeUser, OutcomeInvalid, OutcomeBot}
	for _, winner := range sequence {
		user, bot := MoveRock, MoveScissors
		if winner == OutcomeInvalid {
			user, bot = MoveInvalid, MoveNone
		}
		Apply(state, user, bot, winner)

		invalid := 0
		for _, h := range state.History {
			if h.Winner == OutcomeInvalid {
				invalid++
			}
		}
		assert.Equal(t, state.Round-1, state.UserScore+state.BotScore+state.Draws+invalid,
			"conservation after round %d", state.Round-1)
	}

	assert.Equal(t, 1, state.UserScore)
	assert.Equal(t, 1, state.BotScore)
	assert.Equal(t, 0, state.Draws)
}

func TestApplyInvalidRoundScoresNothing(t *testing.T) {
	state := NewGameState()

	Apply(state, MoveInvalid, MoveNone, OutcomeInvalid)

	assert.Equal(t, 0, state.UserScore)
	assert.Equal(t, 0, state.BotScore)
	assert.Equal(t, 0, state.Draws)
	assert.Equal(t, 2, state.Round)

	require.Len(t, state.History, 1)
	record := state.History[0]
	assert.Equal(t, 1, record.Round)
	assert.Equal(t, MoveInvalid, record.UserMove)
	assert.Equal(t, MoveNone, record.BotMove)
	assert.Equal(t, OutcomeInvalid, record.Winner)
}

func TestApplyBombFlagsLatch(t *testing.T) {
	state := NewGameState()

	Apply(state, MoveBomb, MoveRock, OutcomeUser)
	assert.True(t, state.UserBombUsed)
	assert.False(t, state.BotBombUsed)

	Apply(state, MoveRock, MoveBomb, OutcomeBot)
	assert.True(t, state.UserBombUsed, "flag must never clear")
	assert.True(t, state.BotBombUsed)

	// Further rounds leave both flags set.
	Apply(state, MoveRock, MoveRock, OutcomeDraw)
	assert.True(t, state.UserBombUsed)
	assert.True(t, state.BotBombUsed)
}

func TestApplyTermination(t *testing.T) {
	state := NewGameState()

	Apply(state, MoveRock, MoveRock, OutcomeDraw)
	assert.False(t, state.GameOver, "after round 1")

	Apply(state, MoveRock, MoveRock, OutcomeDraw)
	assert.False(t, state.GameOver, "after round 2")

	Apply(state, MoveRock, MoveRock, OutcomeDraw)
	assert.True(t, state.GameOver, "after round 3")
	assert.Equal(t, TotalRounds+1, state.Round)
}

func TestApplyHistoryIsOrdered(t *testing.T) {
	state := NewGameState()

	Apply(state, MoveRock, MoveScissors, OutcomeUser)
	Apply(state, MovePaper, MoveScissors, OutcomeBot)
	Apply(state, MoveBomb, MovePaper, OutcomeUser)

	require.Len(t, state.History, 3)
	for i, h := range state.History {
		assert.Equal(t, i+1, h.Round)
	}
}
