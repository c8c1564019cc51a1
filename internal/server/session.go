package server

import (
	"fmt"
	rand "math/rand/v2"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/rpsplus/internal/game"
	"github.com/lox/rpsplus/internal/protocol"
	"github.com/lox/rpsplus/internal/randutil"
	"github.com/lox/rpsplus/internal/sessionid"
)

// Session is one live game: the state plus the random source its opponent
// moves are drawn from. The games themselves are synchronous; the mutex only
// guards against a caller racing the registry's reaper.
type Session struct {
	ID   string
	Seed int64

	mu         sync.Mutex
	state      *game.GameState
	rng        *rand.Rand
	lastActive time.Time
}

// newSession creates a session with a reproducible RNG derived from seed.
func newSession(seed int64, now time.Time) *Session {
	return &Session{
		ID:         sessionid.New(),
		Seed:       seed,
		state:      game.NewGameState(),
		rng:        randutil.New(seed),
		lastActive: now,
	}
}

// PlayRound feeds one raw input through the engine's caller contract:
// validate, then either resolve+apply or apply the invalid round directly.
// The returned data carries everything a client needs to render the round.
func (s *Session) PlayRound(rawInput string) (protocol.RoundResultData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.GameOver {
		return protocol.RoundResultData{}, fmt.Errorf("session %s: game is over", s.ID)
	}

	round := s.state.Round

	res := game.Validate(rawInput, s.state)
	if !res.Valid {
		game.Apply(s.state, game.MoveInvalid, game.MoveNone, game.OutcomeInvalid)
		return protocol.RoundResultData{
			Round:    round,
			UserMove: game.MoveInvalid,
			BotMove:  game.MoveNone,
			Winner:   game.OutcomeInvalid,
			Reason:   res.Reason,
			State:    *s.state,
		}, nil
	}

	outcome := game.Resolve(res.Move, s.state, s.rng)
	game.Apply(s.state, res.Move, outcome.OpponentMove, outcome.Winner)

	return protocol.RoundResultData{
		Round:    round,
		UserMove: res.Move,
		BotMove:  outcome.OpponentMove,
		Winner:   outcome.Winner,
		State:    *s.state,
	}, nil
}

// GameOver reports whether the session has played all its rounds.
func (s *Session) GameOver() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.GameOver
}

// Result returns the final state and formatted summary.
func (s *Session) Result() protocol.GameOverData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return protocol.GameOverData{
		State:   *s.state,
		Summary: game.Summarize(s.state),
		Seed:    s.Seed,
	}
}

// Registry tracks live sessions and reaps the ones nobody has touched for
// the configured idle timeout. The clock is injected (quartz) so tests can
// drive time.
type Registry struct {
	mu          sync.RWMutex
	sessions    map[string]*Session
	clock       quartz.Clock
	idleTimeout time.Duration
	maxSessions int
	logger      *log.Logger
}

// NewRegistry creates a session registry.
func NewRegistry(logger *log.Logger, clock quartz.Clock, idleTimeout time.Duration, maxSessions int) *Registry {
	return &Registry{
		sessions:    make(map[string]*Session),
		clock:       clock,
		idleTimeout: idleTimeout,
		maxSessions: maxSessions,
		logger:      logger.WithPrefix("sessions"),
	}
}

// Create registers a new session seeded from seed.
func (r *Registry) Create(seed int64) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.sessions) >= r.maxSessions {
		return nil, fmt.Errorf("session limit reached (%d)", r.maxSessions)
	}

	session := newSession(seed, r.clock.Now())
	r.sessions[session.ID] = session
	r.logger.Debug("Session created", "id", session.ID, "seed", seed, "total", len(r.sessions))
	return session, nil
}

// Touch marks a session as recently used.
func (r *Registry) Touch(s *Session) {
	now := r.clock.Now()
	s.mu.Lock()
	s.lastActive = now
	s.mu.Unlock()
}

// Remove drops a session from the registry.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Count returns the number of live sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Reap removes sessions idle for longer than the timeout and returns how
// many were dropped.
func (r *Registry) Reap() int {
	now := r.clock.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	reaped := 0
	for id, session := range r.sessions {
		session.mu.Lock()
		idle := now.Sub(session.lastActive)
		session.mu.Unlock()

		if idle > r.idleTimeout {
			delete(r.sessions, id)
			reaped++
			r.logger.Info("Reaped idle session", "id", id, "idle", idle)
		}
	}
	return reaped
}
