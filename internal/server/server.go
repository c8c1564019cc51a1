// Package server exposes the Rock-Paper-Scissors-Plus referee over
// WebSockets. The server never decides outcomes itself; every round goes
// through the engine's validate/resolve/apply contract inside a Session.
package server

import (
	"context"
	"fmt"
	rand "math/rand/v2"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
)

// Server represents the WebSocket referee server
type Server struct {
	upgrader    websocket.Upgrader
	connections map[*Connection]bool
	register    chan *Connection
	unregister  chan *Connection
	registry    *Registry
	logger      *log.Logger
	httpServer  *http.Server
	ctx         context.Context
	cancel      context.CancelFunc
	mu          sync.RWMutex

	// reapInterval is how often the registry sweeps for idle sessions.
	reapInterval time.Duration

	// seedRng hands out one seed per session so a single server seed
	// reproduces every game it referees.
	seedRng *rand.Rand
	seedMu  sync.Mutex
}

// Option configures a Server.
type Option func(*Server)

// WithClock overrides the registry clock, used by tests.
func WithClock(clock quartz.Clock) Option {
	return func(s *Server) {
		s.registry.clock = clock
	}
}

// NewServer creates a WebSocket referee server. seedRng is the source all
// per-session seeds are drawn from.
func NewServer(logger *log.Logger, seedRng *rand.Rand, config *ServerConfig, opts ...Option) *Server {
	ctx, cancel := context.WithCancel(context.Background())

	s := &Server{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// For development, allow all origins
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		connections: make(map[*Connection]bool),
		register:    make(chan *Connection),
		unregister:  make(chan *Connection),
		registry: NewRegistry(logger, quartz.NewReal(), config.IdleTimeout(),
			config.Session.MaxSessions),
		logger:  logger.WithPrefix("server"),
		ctx:     ctx,
		cancel:  cancel,
		seedRng: seedRng,
	}

	s.reapInterval = config.ReapInterval()

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start starts the WebSocket server on addr and blocks until it stops.
func (s *Server) Start(addr string) error {
	go s.run()
	go s.reapLoop()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)

	s.httpServer = &http.Server{Addr: addr, Handler: mux}

	s.logger.Info("Starting WebSocket server", "addr", addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the WebSocket server and closes all connections.
func (s *Server) Stop() error {
	s.cancel()

	s.mu.Lock()
	for conn := range s.connections {
		_ = conn.Close() // Ignore close errors during shutdown
	}
	s.mu.Unlock()

	if s.httpServer != nil {
		return s.httpServer.Shutdown(context.Background())
	}
	return nil
}

// nextSeed draws a fresh per-session seed.
func (s *Server) nextSeed() int64 {
	s.seedMu.Lock()
	defer s.seedMu.Unlock()
	return s.seedRng.Int64()
}

// run handles connection lifecycle
func (s *Server) run() {
	for {
		select {
		case conn := <-s.register:
			s.mu.Lock()
			s.connections[conn] = true
			total := len(s.connections)
			s.mu.Unlock()
			s.logger.Info("Client connected", "total", total)

		case conn := <-s.unregister:
			s.mu.Lock()
			if _, ok := s.connections[conn]; ok {
				delete(s.connections, conn)
			}
			total := len(s.connections)
			s.mu.Unlock()
			s.logger.Info("Client disconnected", "total", total)

		case <-s.ctx.Done():
			return
		}
	}
}

// reapLoop periodically sweeps idle sessions using the registry's clock.
func (s *Server) reapLoop() {
	ticker := s.registry.clock.NewTicker(s.reapInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := s.registry.Reap(); n > 0 {
				s.logger.Debug("Session sweep", "reaped", n, "live", s.registry.Count())
			}
		case <-s.ctx.Done():
			return
		}
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade connection", "error", err)
		return
	}

	conn := NewConnection(ws, s, s.logger)
	select {
	case s.register <- conn:
	case <-s.ctx.Done():
		_ = ws.Close()
		return
	}
	conn.Start()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	clients := len(s.connections)
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"status":"ok","clients":%d,"sessions":%d}`, clients, s.registry.Count())
}
