// Package game implements the core rules for Rock-Paper-Scissors-Plus.
//
// The main type is GameState, which records a single three-round session:
// scores, bomb usage, round history and the game-over flag. All round
// resolution flows through four functions:
//
//	res := game.Validate(rawInput, state)
//	if !res.Valid {
//	    game.Apply(state, game.MoveInvalid, game.MoveNone, game.OutcomeInvalid)
//	} else {
//	    round := game.Resolve(res.Move, state, rng)
//	    game.Apply(state, res.Move, round.OpponentMove, round.Winner)
//	}
//	if state.GameOver {
//	    fmt.Print(game.Summarize(state))
//	}
//
// The engine holds no state of its own and performs no I/O; callers own the
// GameState and call Apply exactly once per round. Apply is the only place
// rounds advance and the game terminates.
//
// # Deterministic Testing
//
// Resolve is the only nondeterministic operation. It takes an explicit
// *rand.Rand so tests can supply a fixed seed:
//
//	rng := randutil.New(42)
//	round := game.Resolve(game.MoveRock, state, rng)
package game
