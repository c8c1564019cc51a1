package game

// Apply commits one round to the state. It is the single place where rounds
// advance and the game terminates: bomb flags latch, exactly one counter
// increments (none when the round was invalid), a RoundRecord is appended,
// the round counter increments unconditionally, and GameOver is set once the
// counter passes TotalRounds.
//
// For an invalid round pass userMove=MoveInvalid, opponentMove=MoveNone and
// winner=OutcomeInvalid; the round is recorded and consumed like any other.
func Apply(state *GameState, userMove, opponentMove Move, winner Outcome) {
	// Bomb flags only ever latch on; nothing clears them.
	if userMove == MoveBomb {
		state.UserBombUsed = true
	}
	if opponentMove == MoveBomb {
		state.BotBombUsed = true
	}

	switch winner {
	case OutcomeUser:
		state.UserScore++
	case OutcomeBot:
		state.BotScore++
	case OutcomeDraw:
		state.Draws++
	case OutcomeInvalid:
		// Wasted round, no counter moves.
	}

	state.History = append(state.History, RoundRecord{
		Round:    state.Round,
		UserMove: userMove,
		BotMove:  opponentMove,
		Winner:   winner,
	})

	state.Round++

	if state.Round > TotalRounds {
		state.GameOver = true
	}
}
