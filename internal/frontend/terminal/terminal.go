// Package terminal implements a frontend that renders the screen as text
// and reads the keypad from the keyboard of a terminal in raw mode.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

// PressFrames is the number of frames a key stays pressed after a key press.
// Terminals do not report key releases, held keys are kept down by the key
// repeat of the terminal.
const PressFrames = 6

const (
	keyEscape = 0x1B

	cursorHome = "\x1b[H"
	clearAll   = "\x1b[2J"
	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"
)

// Terminal is a text based frontend.
type Terminal struct {
	logger *log.Logger
	in     *os.File
	out    io.Writer
	keys   *keypad.Keypad
	quit   func()

	stopCh      chan struct{}
	done        chan struct{}
	stopped     sync.Once
	fd          int
	nonblockSet bool
	oldState    *term.State
}

// New returns a terminal frontend that reads keys from in and renders to out.
// quit is called when the escape key is pressed.
func New(logger *log.Logger, in *os.File, out io.Writer, keys *keypad.Keypad, quit func()) *Terminal {
	return &Terminal{
		logger: logger,
		in:     in,
		out:    out,
		keys:   keys,
		quit:   quit,
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start puts the terminal in raw mode and starts reading keys in a goroutine.
// Call Stop to restore the terminal.
func (t *Terminal) Start() error {
	t.fd = int(t.in.Fd())
	if !term.IsTerminal(t.fd) {
		return errors.New("input is not a terminal")
	}

	if _, err := io.WriteString(t.out, clearAll+hideCursor); err != nil {
		return fmt.Errorf("writing to terminal: %w", err)
	}

	oldState, err := term.MakeRaw(t.fd)
	if err != nil {
		return fmt.Errorf("setting raw mode: %w", err)
	}
	t.oldState = oldState

	if err := setNonblock(t.fd, true); err != nil {
		_ = term.Restore(t.fd, t.oldState)
		t.oldState = nil
		return fmt.Errorf("setting nonblocking input: %w", err)
	}
	t.nonblockSet = nonblockSupported

	go t.readKeys()
	return nil
}

func (t *Terminal) readKeys() {
	defer close(t.done)
	buf := make([]byte, 16)

	for {
		select {
		case <-t.stopCh:
			return
		default:
		}

		n, err := t.in.Read(buf)
		t.HandleInput(buf[:n])

		switch {
		case errors.Is(err, syscall.EAGAIN), err == nil && n == 0:
			time.Sleep(5 * time.Millisecond)
		case err != nil:
			t.logger.Debug("Reading terminal input stopped", log.Err(err))
			return
		}
	}
}

// Stop terminates the key reading goroutine and restores the terminal.
func (t *Terminal) Stop() {
	t.stopped.Do(func() {
		close(t.stopCh)
	})
	// a blocking read can not be interrupted, only wait for the reader
	// goroutine if the input is nonblocking
	if t.nonblockSet {
		<-t.done
		_ = setNonblock(t.fd, false)
		t.nonblockSet = false
	}
	if t.oldState != nil {
		_, _ = io.WriteString(t.out, showCursor+"\r\n")
		_ = term.Restore(t.fd, t.oldState)
		t.oldState = nil
	}
}

// HandleInput processes the bytes of a single terminal read. Only a lone
// escape byte quits, escape sequences like cursor keys are ignored.
func (t *Terminal) HandleInput(data []byte) {
	if len(data) == 1 {
		t.HandleKey(data[0])
		return
	}

	for i := 0; i < len(data); i++ {
		if data[i] == keyEscape {
			i = escapeSequenceEnd(data, i)
			continue
		}
		t.HandleKey(data[i])
	}
}

// escapeSequenceEnd returns the index of the last byte of the escape
// sequence that starts at the given index.
func escapeSequenceEnd(data []byte, start int) int {
	i := start + 1
	if i >= len(data) {
		return start
	}

	switch data[i] {
	case '[':
		// CSI sequences end with a byte in the range 0x40-0x7E
		for i++; i < len(data); i++ {
			if data[i] >= 0x40 && data[i] <= 0x7E {
				return i
			}
		}
		return len(data) - 1
	case 'O':
		return min(i+1, len(data)-1)
	default:
		return i
	}
}

// HandleKey processes a single key byte read from the terminal.
func (t *Terminal) HandleKey(b byte) {
	if b == keyEscape {
		if t.quit != nil {
			t.quit()
		}
		return
	}

	key, ok := frontend.KeyForRune(rune(b))
	if !ok {
		return
	}
	if err := t.keys.Press(key, PressFrames); err != nil {
		t.logger.Error("Pressing key failed", log.Err(err))
	}
}

// Present renders the screen at the top left corner of the terminal.
func (t *Terminal) Present(screen *display.Screen) error {
	var sb strings.Builder
	sb.WriteString(cursorHome)
	for _, line := range screen.Lines() {
		sb.WriteString(line)
		sb.WriteString("\r\n")
	}

	if _, err := io.WriteString(t.out, sb.String()); err != nil {
		return fmt.Errorf("writing to terminal: %w", err)
	}
	return nil
}
