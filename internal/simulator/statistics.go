package simulator

import (
	"fmt"
	"strings"

	"github.com/lox/rpsplus/internal/game"
)

// GameResult captures the outcome of one finished session.
type GameResult struct {
	UserScore     int
	BotScore      int
	Draws         int
	InvalidRounds int
	BombsThrown   int // user + bot
}

// resultFromState folds a finished GameState into a GameResult.
func resultFromState(state *game.GameState) GameResult {
	result := GameResult{
		UserScore: state.UserScore,
		BotScore:  state.BotScore,
		Draws:     state.Draws,
	}
	for _, h := range state.History {
		if h.Winner == game.OutcomeInvalid {
			result.InvalidRounds++
		}
		if h.UserMove == game.MoveBomb {
			result.BombsThrown++
		}
		if h.BotMove == game.MoveBomb {
			result.BombsThrown++
		}
	}
	return result
}

// Statistics aggregates results across a batch of games.
type Statistics struct {
	Games         int
	UserWins      int
	BotWins       int
	Draws         int // games ending level
	RoundsUser    int
	RoundsBot     int
	RoundsDraw    int
	RoundsInvalid int
	BombsThrown   int
}

// Add folds one game result into the totals.
func (s *Statistics) Add(result GameResult) {
	s.Games++
	switch {
	case result.UserScore > result.BotScore:
		s.UserWins++
	case result.BotScore > result.UserScore:
		s.BotWins++
	default:
		s.Draws++
	}
	s.RoundsUser += result.UserScore
	s.RoundsBot += result.BotScore
	s.RoundsDraw += result.Draws
	s.RoundsInvalid += result.InvalidRounds
	s.BombsThrown += result.BombsThrown
}

// Validate checks internal consistency: every game contributes exactly
// TotalRounds rounds, and game verdicts sum to the game count.
func (s *Statistics) Validate() error {
	if s.UserWins+s.BotWins+s.Draws != s.Games {
		return fmt.Errorf("game verdicts (%d+%d+%d) do not sum to games (%d)",
			s.UserWins, s.BotWins, s.Draws, s.Games)
	}
	totalRounds := s.RoundsUser + s.RoundsBot + s.RoundsDraw + s.RoundsInvalid
	if totalRounds != s.Games*game.TotalRounds {
		return fmt.Errorf("round total %d does not match %d games * %d rounds",
			totalRounds, s.Games, game.TotalRounds)
	}
	return nil
}

// Render formats the statistics as a report.
func (s *Statistics) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Games:          %d\n", s.Games)
	fmt.Fprintf(&b, "User wins:      %d (%.1f%%)\n", s.UserWins, percent(s.UserWins, s.Games))
	fmt.Fprintf(&b, "Bot wins:       %d (%.1f%%)\n", s.BotWins, percent(s.BotWins, s.Games))
	fmt.Fprintf(&b, "Drawn games:    %d (%.1f%%)\n", s.Draws, percent(s.Draws, s.Games))
	fmt.Fprintf(&b, "Rounds:         user %d / bot %d / draw %d / invalid %d\n",
		s.RoundsUser, s.RoundsBot, s.RoundsDraw, s.RoundsInvalid)
	fmt.Fprintf(&b, "Bombs thrown:   %d\n", s.BombsThrown)
	return b.String()
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
