package main

import (
	"os"

	"github.com/lox/rpsplus/cmd/rpsplus/shared"
	"github.com/lox/rpsplus/internal/client"
)

// ClientCmd plays against a remote referee server
type ClientCmd struct {
	URL   string `kong:"default='ws://localhost:8080/ws',help='Referee server WebSocket URL'"`
	Name  string `kong:"default='player',help='Player name sent to the server'"`
	Debug bool   `kong:"help='Enable debug logging'"`
}

func (c *ClientCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)
	ctx := shared.SetupSignalHandlerWithLogger(logger)

	cl := client.New(c.URL, logger)
	if err := cl.Connect(ctx); err != nil {
		return err
	}
	defer func() { _ = cl.Close() }()

	return cl.Run(ctx, c.Name, os.Stdin, os.Stdout)
}
