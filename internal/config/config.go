// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// RunnerConfig returns the runner configuration for the program options.
func RunnerConfig(opts options.Program) runner.Config {
	return runner.Config{
		InstructionsPerSecond: opts.InstructionsPerSecond,
		MaxFrames:             opts.Frames,
		Trace:                 opts.Debug,
	}
}

// AudioEnabled returns whether the sound device should be opened. Headless
// runs and muted runs do not output sound.
func AudioEnabled(opts options.Program) bool {
	return !opts.Mute && opts.Frontend != options.FrontendHeadless
}
