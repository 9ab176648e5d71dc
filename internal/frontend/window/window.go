//go:build !headless

// Package window implements a desktop window frontend based on ebiten.
package window

import (
	"context"
	"errors"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/image/font/basicfont"
)

// DefaultScale is the default number of window pixels per screen pixel.
const DefaultScale = 10

var (
	colorOn      = color.RGBA{R: 0xE0, G: 0xF0, B: 0xD0, A: 0xFF}
	colorOff     = color.RGBA{R: 0x10, G: 0x18, B: 0x10, A: 0xFF}
	colorOverlay = color.RGBA{R: 0xFF, G: 0x60, B: 0x40, A: 0xFF}
)

// hostKeys contains the keyboard keys in the order of frontend.Layout.
var hostKeys = [...]ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyQ, ebiten.KeyW, ebiten.KeyE, ebiten.KeyR,
	ebiten.KeyA, ebiten.KeyS, ebiten.KeyD, ebiten.KeyF,
	ebiten.KeyZ, ebiten.KeyX, ebiten.KeyC, ebiten.KeyV,
}

// Window runs the emulation inside of the ebiten game loop.
type Window struct {
	logger *log.Logger
	scale  int
	width  int
	height int

	ctx    context.Context
	runner *runner.Runner
	image  *ebiten.Image

	mu     sync.Mutex
	pixels []byte
	paused bool
	err    error
}

// New returns a new window frontend for a screen of the given size.
func New(logger *log.Logger, width, height, scale int) *Window {
	if scale <= 0 {
		scale = DefaultScale
	}
	return &Window{
		logger: logger,
		scale:  scale,
		width:  width,
		height: height,
	}
}

// Present stores the current screen content to be drawn in the next Draw call.
func (w *Window) Present(screen *display.Screen) error {
	pixels := screen.Render(colorOn, colorOff)

	w.mu.Lock()
	w.pixels = pixels
	w.mu.Unlock()
	return nil
}

// Run opens the window and executes one frame of the runner per game tick until
// the window is closed, the context is cancelled or the frame limit is reached.
// It blocks and has to be called from the main goroutine.
func (w *Window) Run(ctx context.Context, r *runner.Runner, title string) error {
	w.ctx = ctx
	w.runner = r

	ebiten.SetWindowSize(w.width*w.scale, w.height*w.scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(runner.FrameRate)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

// Update is called by ebiten once per tick.
func (w *Window) Update() error {
	select {
	case <-w.ctx.Done():
		return ebiten.Termination
	default:
	}

	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		w.mu.Lock()
		w.err = nil
		w.mu.Unlock()
		w.runner.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		w.mu.Lock()
		w.paused = !w.paused
		w.mu.Unlock()
	}

	w.updateKeys()

	w.mu.Lock()
	idle := w.paused || w.err != nil
	w.mu.Unlock()
	if idle {
		return nil
	}

	if err := w.runner.RunFrame(); err != nil {
		w.logger.Error("Execution halted", log.Err(err))
		w.mu.Lock()
		w.err = err
		w.mu.Unlock()
		return nil
	}
	if w.runner.Done() {
		return ebiten.Termination
	}
	return nil
}

func (w *Window) updateKeys() {
	keys := w.runner.Keypad()
	for i, key := range hostKeys {
		// the position is always valid, the error can not occur
		_ = keys.SetKey(frontend.KeyAt(i), ebiten.IsKeyPressed(key))
	}
}

// Draw is called by ebiten once per frame.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.image == nil {
		w.image = ebiten.NewImage(w.width, w.height)
	}

	w.mu.Lock()
	if w.pixels != nil {
		w.image.WritePixels(w.pixels)
	}
	overlay := w.overlay()
	w.mu.Unlock()

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(float64(w.scale), float64(w.scale))
	screen.DrawImage(w.image, opts)

	if overlay != "" {
		text.Draw(screen, overlay, basicfont.Face7x13, 8, 16, colorOverlay)
	}
}

// overlay returns the status text to draw over the screen. The caller has
// to hold the mutex.
func (w *Window) overlay() string {
	switch {
	case w.runner != nil && w.runner.CPU().Halted() != nil:
		return "HALTED - BACKSPACE TO RESTART"
	case w.err != nil:
		return "ERROR - BACKSPACE TO RESTART"
	case w.paused:
		return "PAUSED"
	default:
		return ""
	}
}

// Layout returns the fixed window size in pixels.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.width * w.scale, w.height * w.scale
}
