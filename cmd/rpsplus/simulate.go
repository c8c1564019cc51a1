package main

import (
	"fmt"

	"github.com/lox/rpsplus/cmd/rpsplus/shared"
	"github.com/lox/rpsplus/internal/randutil"
	"github.com/lox/rpsplus/internal/simulator"
)

// SimulateCmd runs batches of self-play games
type SimulateCmd struct {
	Games       int    `kong:"default='1000',help='Number of games to play'"`
	Strategy    string `kong:"default='random',help='User-side strategy: random, bomber or noisy'"`
	Seed        *int64 `kong:"help='Deterministic batch seed (optional)'"`
	Concurrency int    `kong:"default='4',help='Concurrent games'"`
	Debug       bool   `kong:"help='Enable debug logging'"`
}

func (c *SimulateCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
	} else {
		seed = randutil.NewSeed()
	}
	logger.Info("Running simulation", "games", c.Games, "strategy", c.Strategy, "seed", seed)

	sim := simulator.New(simulator.Config{
		Games:       c.Games,
		Strategy:    c.Strategy,
		Seed:        seed,
		Concurrency: c.Concurrency,
		Logger:      logger,
	})

	stats, err := sim.Run()
	if err != nil {
		return err
	}

	fmt.Print(stats.Render())
	return nil
}
