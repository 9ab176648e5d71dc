//go:build headless

package pipeline

import (
	"context"
	"errors"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
)

var errNoWindow = errors.New("window frontend is not available in headless builds")

func (p *Pipeline) runWindow(context.Context, options.Program, *chip8.CPU,
	*display.Screen, *keypad.Keypad, runner.Beeper) error {

	return errNoWindow
}
