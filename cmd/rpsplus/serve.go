package main

import (
	"errors"
	"net/http"

	"github.com/lox/rpsplus/cmd/rpsplus/shared"
	"github.com/lox/rpsplus/internal/randutil"
	"github.com/lox/rpsplus/internal/server"
)

// ServeCmd runs the WebSocket referee server
type ServeCmd struct {
	Addr   string `kong:"help='Server address, overrides the config file'"`
	Config string `kong:"default='rpsplus.hcl',help='Path to HCL config file'"`
	Debug  bool   `kong:"help='Enable debug logging'"`
	Seed   *int64 `kong:"help='Deterministic RNG seed for the server (optional)'"`
}

func (c *ServeCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	cfg, err := server.LoadServerConfig(c.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	addr := cfg.GetServerAddress()
	if c.Addr != "" {
		addr = c.Addr
	}

	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
		logger.Info("Using deterministic seed", "seed", seed)
	} else {
		seed = randutil.NewSeed()
		logger.Info("Using random seed", "seed", seed)
	}

	s := server.NewServer(logger, randutil.New(seed), cfg)

	logger.Info("Starting referee server",
		"addr", addr,
		"idle_timeout", cfg.IdleTimeout(),
		"max_sessions", cfg.Session.MaxSessions)

	ctx := shared.SetupSignalHandlerWithLogger(logger)

	serverErr := make(chan error, 1)
	go func() {
		if err := s.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down")
		return s.Stop()
	case err := <-serverErr:
		return err
	}
}
