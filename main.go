package main

import (
	"github.com/alecthomas/kong"

	"github.com/fzft/go-openset/cmd"
	"github.com/fzft/go-openset/log"
)

// CLI is the root command line. Flags bind to environment variables so the
// shell and bench can be configured without arguments.
var CLI struct {
	LogLevel string           `name:"log-level" help:"Log level (debug, info, warn, error)" default:"warn" env:"OASET_LOG_LEVEL"`
	Dev      bool             `help:"Human readable development logs" env:"OASET_LOG_DEV"`
	Version  kong.VersionFlag `name:"version" help:"Show version and exit"`

	Shell cmd.ShellCmd `cmd:"" default:"withargs" help:"Interactive shell over an open addressing set of strings"`
	Bench cmd.BenchCmd `cmd:"" help:"Time inserts into the open addressing set against a map backed set"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("oaset"),
		kong.Description("Fixed capacity open addressing hash set playground."),
		kong.UsageOnError(),
		kong.Vars{"version": Version()},
	)

	if err := log.InitLogger(CLI.LogLevel, CLI.Dev); err != nil {
		ctx.FatalIfErrorf(err)
	}

	err := ctx.Run(&cmd.Globals{Logger: log.Logger})
	_ = log.Logger.Sync()
	ctx.FatalIfErrorf(err)
}
