//go:build !headless

package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/frontend/window"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
)

// runWindow runs the program in a desktop window, it blocks until the window is closed.
func (p *Pipeline) runWindow(ctx context.Context, opts options.Program, cpu *chip8.CPU,
	screen *display.Screen, keys *keypad.Keypad, beeper runner.Beeper) error {

	w := window.New(p.logger, screen.Width(), screen.Height(), opts.Scale)
	r := runner.New(p.logger, config.RunnerConfig(opts), cpu, screen, keys, w, beeper)

	title := "retrochip8 - " + filepath.Base(opts.Input)
	if err := w.Run(ctx, r, title); err != nil {
		p.logCPUState(cpu)
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
