// Package simulator runs batches of self-play games against the engine.
// Each game gets an independent seed derived from the batch seed, so a whole
// batch is reproducible from one number.
package simulator

import (
	"fmt"
	rand "math/rand/v2"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/rpsplus/internal/game"
	"github.com/lox/rpsplus/internal/randutil"
)

// Config holds configuration for running simulations
type Config struct {
	Games       int
	Strategy    string // random, bomber or noisy
	Seed        int64
	Concurrency int
	Logger      *log.Logger
}

// Simulator runs referee self-play simulations
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Concurrency <= 0 {
		config.Concurrency = 4
	}
	return &Simulator{config: config}
}

// Run executes the batch and returns aggregate statistics.
func (s *Simulator) Run() (*Statistics, error) {
	if err := validStrategy(s.config.Strategy); err != nil {
		return nil, err
	}

	stats := &Statistics{}
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(s.config.Concurrency)

	for i := 0; i < s.config.Games; i++ {
		gameSeed := s.config.Seed + int64(i)
		g.Go(func() error {
			result := s.playGame(gameSeed)
			mu.Lock()
			stats.Add(result)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.config.Logger.Info("Simulation complete",
		"games", stats.Games,
		"user_wins", stats.UserWins,
		"bot_wins", stats.BotWins,
		"draws", stats.Draws)

	return stats, nil
}

// playGame plays one full session: the user side follows the configured
// strategy, the opponent side is the engine's own draw.
func (s *Simulator) playGame(seed int64) GameResult {
	// Separate streams for the user strategy and the engine so the strategy
	// cannot perturb the opponent sequence.
	strategyRng := randutil.New(seed ^ 0x5555555555555555)
	engineRng := randutil.New(seed)

	state := game.NewGameState()

	for !state.GameOver {
		input := s.nextInput(strategyRng, state)

		res := game.Validate(input, state)
		if !res.Valid {
			game.Apply(state, game.MoveInvalid, game.MoveNone, game.OutcomeInvalid)
			continue
		}

		outcome := game.Resolve(res.Move, state, engineRng)
		game.Apply(state, res.Move, outcome.OpponentMove, outcome.Winner)
	}

	return resultFromState(state)
}

// nextInput produces the user side's raw input for the current round.
func (s *Simulator) nextInput(rng *rand.Rand, state *game.GameState) string {
	switch s.config.Strategy {
	case "bomber":
		// Throw the bomb as early as possible, then play randomly.
		if !state.UserBombUsed {
			return string(game.MoveBomb)
		}
		return string(legalMoves(state)[rng.IntN(3)])

	case "noisy":
		// Mostly legal play with occasional garbage and bomb reuse, to
		// exercise the invalid-round path.
		switch rng.IntN(10) {
		case 0:
			return "lizard"
		case 1:
			return string(game.MoveBomb) // may be a reuse
		default:
			legal := legalMoves(state)
			return string(legal[rng.IntN(len(legal))])
		}

	default: // random
		legal := legalMoves(state)
		return string(legal[rng.IntN(len(legal))])
	}
}

// legalMoves returns the moves the user may still play.
func legalMoves(state *game.GameState) []game.Move {
	if !state.UserBombUsed {
		return game.Moves
	}
	legal := make([]game.Move, 0, len(game.Moves)-1)
	for _, m := range game.Moves {
		if m != game.MoveBomb {
			legal = append(legal, m)
		}
	}
	return legal
}

func validStrategy(strategy string) error {
	switch strategy {
	case "", "random", "bomber", "noisy":
		return nil
	}
	return fmt.Errorf("unknown strategy %q (want random, bomber or noisy)", strategy)
}
