package game

import rand "math/rand/v2"

// RoundResult is the outcome of resolving one round.
type RoundResult struct {
	OpponentMove Move    `json:"bot_move"`
	Winner       Outcome `json:"winner"`
}

// beats maps each move to the move it defeats under standard RPS rules.
// Bomb is handled separately and never appears here.
var beats = map[Move]Move{
	MoveRock:     MoveScissors,
	MoveScissors: MovePaper,
	MovePaper:    MoveRock,
}

// Resolve picks the opponent's move and determines the round winner.
// The opponent move is drawn uniformly from the playable set, minus bomb
// once state.BotBombUsed is set. The caller must only pass a validated
// user move; invalid input never reaches this function.
//
// rng is the session's random source. Callers wanting reproducible games
// seed it via randutil.New.
func Resolve(userMove Move, state *GameState, rng *rand.Rand) RoundResult {
	available := Moves
	if state.BotBombUsed {
		available = make([]Move, 0, len(Moves)-1)
		for _, m := range Moves {
			if m != MoveBomb {
				available = append(available, m)
			}
		}
	}

	opponentMove := available[rng.IntN(len(available))]

	return RoundResult{
		OpponentMove: opponentMove,
		Winner:       determineWinner(userMove, opponentMove),
	}
}

// determineWinner applies the Rock-Paper-Scissors-Plus rules in precedence
// order: bomb vs bomb draws, a lone bomb wins, identical moves draw, then
// the standard beats relation decides.
func determineWinner(userMove, botMove Move) Outcome {
	if userMove == MoveBomb && botMove == MoveBomb {
		return OutcomeDraw
	}
	if userMove == MoveBomb {
		return OutcomeUser
	}
	if botMove == MoveBomb {
		return OutcomeBot
	}

	if userMove == botMove {
		return OutcomeDraw
	}

	if beats[userMove] == botMove {
		return OutcomeUser
	}
	return OutcomeBot
}
