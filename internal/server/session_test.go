package server

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/rpsplus/internal/game"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestSessionPlaysFullGame(t *testing.T) {
	s := newSession(42, time.Now())

	for i := 1; i <= game.TotalRounds; i++ {
		result, err := s.PlayRound("rock")
		require.NoError(t, err)
		assert.Equal(t, i, result.Round)
		assert.Equal(t, game.MoveRock, result.UserMove)
		assert.NotEqual(t, game.MoveNone, result.BotMove)
	}

	require.True(t, s.GameOver())

	final := s.Result()
	assert.Len(t, final.State.History, game.TotalRounds)
	assert.Contains(t, final.Summary, "=== GAME OVER ===")

	// Conservation across the whole session.
	st := final.State
	invalid := 0
	for _, h := range st.History {
		if h.Winner == game.OutcomeInvalid {
			invalid++
		}
	}
	assert.Equal(t, st.Round-1, st.UserScore+st.BotScore+st.Draws+invalid)
}

func TestSessionSameSeedSameGame(t *testing.T) {
	a := newSession(99, time.Now())
	b := newSession(99, time.Now())

	moves := []string{"rock", "bomb", "scissors"}
	for _, move := range moves {
		ra, err := a.PlayRound(move)
		require.NoError(t, err)
		rb, err := b.PlayRound(move)
		require.NoError(t, err)

		assert.Equal(t, ra.BotMove, rb.BotMove)
		assert.Equal(t, ra.Winner, rb.Winner)
	}
}

func TestSessionInvalidInputWastesRound(t *testing.T) {
	s := newSession(1, time.Now())

	result, err := s.PlayRound("lizard")
	require.NoError(t, err)

	assert.Equal(t, game.OutcomeInvalid, result.Winner)
	assert.Equal(t, game.MoveInvalid, result.UserMove)
	assert.Equal(t, game.MoveNone, result.BotMove)
	assert.NotEmpty(t, result.Reason)
	assert.Equal(t, 2, result.State.Round)
	assert.Equal(t, 0, result.State.UserScore+result.State.BotScore+result.State.Draws)
}

func TestSessionRejectsPlayAfterGameOver(t *testing.T) {
	s := newSession(1, time.Now())

	for i := 0; i < game.TotalRounds; i++ {
		_, err := s.PlayRound("paper")
		require.NoError(t, err)
	}

	_, err := s.PlayRound("rock")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "game is over")
}

func TestRegistryCreateAndLimit(t *testing.T) {
	mock := quartz.NewMock(t)
	r := NewRegistry(testLogger(), mock, 5*time.Minute, 2)

	_, err := r.Create(1)
	require.NoError(t, err)
	_, err = r.Create(2)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Count())

	_, err = r.Create(3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session limit")
}

func TestRegistryReapsIdleSessions(t *testing.T) {
	mock := quartz.NewMock(t)
	r := NewRegistry(testLogger(), mock, 5*time.Minute, 16)

	stale, err := r.Create(1)
	require.NoError(t, err)
	fresh, err := r.Create(2)
	require.NoError(t, err)

	mock.Advance(4 * time.Minute)
	r.Touch(fresh)
	mock.Advance(2 * time.Minute)

	reaped := r.Reap()
	assert.Equal(t, 1, reaped)
	assert.Equal(t, 1, r.Count())

	// The untouched one is gone, the touched one survived.
	r.Remove(fresh.ID)
	assert.Equal(t, 0, r.Count())
	r.Remove(stale.ID) // no-op, already reaped
	assert.Equal(t, 0, r.Count())
}
