package cmd

import "go.uber.org/zap"

// Globals is bound into every subcommand's Run.
type Globals struct {
	Logger *zap.Logger
}

func (g *Globals) logger() *zap.Logger {
	if g == nil || g.Logger == nil {
		return zap.NewNop()
	}
	return g.Logger
}
