//go:build !headless

package window

import (
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestHostKeysMatchLayout(t *testing.T) {
	assert.Equal(t, len(frontend.Layout), len(hostKeys))

	for i, key := range hostKeys {
		name := key.String()
		expected := strings.ToUpper(frontend.Layout[i : i+1])
		assert.Equal(t, expected, name[len(name)-1:])
	}
}

func TestPresent(t *testing.T) {
	w := New(log.NewTestLogger(t), 2, 1, 0)
	assert.Equal(t, DefaultScale, w.scale)

	screen := display.New(2, 1)
	screen.SetPixel(1, 0)
	assert.NoError(t, w.Present(screen))

	assert.Len(t, w.pixels, 8)
	assert.Equal(t, colorOff.R, w.pixels[0])
	assert.Equal(t, colorOn.R, w.pixels[4])

	width, height := w.Layout(0, 0)
	assert.Equal(t, 2*DefaultScale, width)
	assert.Equal(t, DefaultScale, height)
}

func TestOverlay(t *testing.T) {
	logger := log.NewTestLogger(t)
	w := New(logger, display.Width, display.Height, 1)
	assert.Equal(t, "", w.overlay())

	cpu := chip8.New()
	assert.NoError(t, cpu.LoadProgram([]byte{0xFF, 0xFF}))
	screen := display.New(display.Width, display.Height)
	w.runner = runner.New(logger, runner.Config{}, cpu, screen, keypad.New(), w, nil)

	w.paused = true
	assert.Equal(t, "PAUSED", w.overlay())

	assert.Error(t, w.runner.RunFrame())
	assert.Equal(t, "HALTED - BACKSPACE TO RESTART", w.overlay())

	w.runner.Restart()
	assert.Equal(t, "PAUSED", w.overlay())
}
