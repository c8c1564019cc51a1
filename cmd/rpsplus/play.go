package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/rpsplus/cmd/rpsplus/shared"
	"github.com/lox/rpsplus/internal/randutil"
	"github.com/lox/rpsplus/internal/tui"
)

// PlayCmd plays a local game in the terminal
type PlayCmd struct {
	Seed *int64 `kong:"help='Deterministic RNG seed for the opponent (optional)'"`
}

func (c *PlayCmd) Run() error {
	logger := shared.SetupQuietLogger()

	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
	} else {
		seed = randutil.NewSeed()
	}

	model := tui.NewModel(randutil.New(seed), logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
