package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFullGameForcedOpponent plays ["rock","bomb","scissors"] against a
// forced opponent sequence ["scissors","bomb","paper"]. The winner logic is
// exercised directly since the opponent moves are fixed.
func TestFullGameForcedOpponent(t *testing.T) {
	state := NewGameState()

	userMoves := []Move{MoveRock, MoveBomb, MoveScissors}
	botMoves := []Move{MoveScissors, MoveBomb, MovePaper}
	wantWinners := []Outcome{OutcomeUser, OutcomeDraw, OutcomeBot}

	for i := range userMoves {
		res := Validate(string(userMoves[i]), state)
		require.True(t, res.Valid, "round %d", i+1)

		winner := determineWinner(res.Move, botMoves[i])
		assert.Equal(t, wantWinners[i], winner, "round %d", i+1)

		Apply(state, res.Move, botMoves[i], winner)
	}

	assert.True(t, state.GameOver)
	assert.Equal(t, 1, state.UserScore)
	assert.Equal(t, 1, state.BotScore)
	assert.Equal(t, 1, state.Draws)
	assert.True(t, state.UserBombUsed)
	assert.True(t, state.BotBombUsed)
}

// TestFullGameBombReuse submits ["ROCK ", "bomb", "bomb"]; the third input
// is a bomb reuse and wastes the round.
func TestFullGameBombReuse(t *testing.T) {
	state := NewGameState()

	inputs := []string{"ROCK ", "bomb", "bomb"}
	for _, input := range inputs {
		res := Validate(input, state)
		if !res.Valid {
			Apply(state, MoveInvalid, MoveNone, OutcomeInvalid)
			continue
		}
		// Force a draw opponent: mirror non-bomb moves, rock against bomb.
		bot := res.Move
		if res.Move == MoveBomb {
			bot = MoveRock
		}
		Apply(state, res.Move, bot, determineWinner(res.Move, bot))
	}

	assert.True(t, state.GameOver)
	assert.Equal(t, 4, state.Round)

	invalid := 0
	for _, h := range state.History {
		if h.Winner == OutcomeInvalid {
			invalid++
		}
	}
	assert.Equal(t, 1, invalid, "only the bomb reuse wastes a round")
	assert.True(t, state.UserBombUsed)
}

func TestGameStateSerialization(t *testing.T) {
	state := NewGameState()
	Apply(state, MoveBomb, MoveScissors, OutcomeUser)

	data, err := json.Marshal(state)
	require.NoError(t, err)

	// Wire shape matches the session dictionary callers rely on.
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, float64(2), decoded["round"])
	assert.Equal(t, float64(1), decoded["user_score"])
	assert.Equal(t, true, decoded["user_bomb_used"])
	assert.Equal(t, false, decoded["bot_bomb_used"])
	assert.Equal(t, false, decoded["game_over"])

	history, ok := decoded["history"].([]interface{})
	require.True(t, ok)
	require.Len(t, history, 1)
	entry := history[0].(map[string]interface{})
	assert.Equal(t, "bomb", entry["user_move"])
	assert.Equal(t, "scissors", entry["bot_move"])
	assert.Equal(t, "user", entry["winner"])
}

func TestNewGameStateDefaults(t *testing.T) {
	state := NewGameState()

	assert.Equal(t, 1, state.Round)
	assert.Equal(t, 0, state.UserScore)
	assert.Equal(t, 0, state.BotScore)
	assert.Equal(t, 0, state.Draws)
	assert.False(t, state.UserBombUsed)
	assert.False(t, state.BotBombUsed)
	assert.False(t, state.GameOver)
	assert.NotNil(t, state.History)
	assert.Len(t, state.History, 0)
}
