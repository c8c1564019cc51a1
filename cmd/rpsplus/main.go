package main

import (
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Serve    ServeCmd         `cmd:"" help:"Run the referee server"`
	Play     PlayCmd          `cmd:"" help:"Play a local game in the terminal"`
	Client   ClientCmd        `cmd:"" help:"Play against a remote referee server"`
	Simulate SimulateCmd      `cmd:"" help:"Run batches of self-play games"`
}

func main() {
	// Optional .env for local overrides; absence is fine.
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("rpsplus"),
		kong.Description("Rock-Paper-Scissors-Plus game referee"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
