// Package keypad provides the 16-key hexadecimal CHIP-8 input device.
package keypad

import (
	"errors"
	"fmt"
	"sync"
)

// KeyCount is the number of keys on the keypad.
const KeyCount = 16

// ErrInvalidKey is returned for key indexes outside of 0-15.
var ErrInvalidKey = errors.New("invalid key")

// Keypad holds the pressed state of the 16 keys. It is safe for concurrent
// use by the CPU and an input frontend.
type Keypad struct {
	mu sync.RWMutex
	// down holds the state of keys with explicit press and release events.
	down [KeyCount]bool
	// timed holds the remaining frames of keys pressed by hosts that do not
	// report key releases.
	timed [KeyCount]int
}

// New returns a keypad with all keys released.
func New() *Keypad {
	return &Keypad{}
}

// IsKeyDown returns whether the key is pressed.
func (k *Keypad) IsKeyDown(key uint8) bool {
	if key >= KeyCount {
		return false
	}

	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.down[key] || k.timed[key] > 0
}

// FirstKeyDown returns the lowest index of all pressed keys.
func (k *Keypad) FirstKeyDown() (uint8, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	for i := range KeyCount {
		if k.down[i] || k.timed[i] > 0 {
			return uint8(i), true
		}
	}
	return 0, false
}

// SetKey sets the pressed state of a key.
func (k *Keypad) SetKey(key uint8, down bool) error {
	if key >= KeyCount {
		return fmt.Errorf("%w: %d", ErrInvalidKey, key)
	}

	k.mu.Lock()
	k.down[key] = down
	k.mu.Unlock()
	return nil
}

// Press marks a key as pressed for the given number of frames. It is used
// for input sources that only report key presses, like terminals.
func (k *Keypad) Press(key uint8, frames int) error {
	if key >= KeyCount {
		return fmt.Errorf("%w: %d", ErrInvalidKey, key)
	}

	k.mu.Lock()
	k.timed[key] = max(k.timed[key], frames)
	k.mu.Unlock()
	return nil
}

// Tick advances timed key presses by one frame.
func (k *Keypad) Tick() {
	k.mu.Lock()
	defer k.mu.Unlock()

	for i := range k.timed {
		if k.timed[i] > 0 {
			k.timed[i]--
		}
	}
}

// Reset releases all keys.
func (k *Keypad) Reset() {
	k.mu.Lock()
	k.down = [KeyCount]bool{}
	k.timed = [KeyCount]int{}
	k.mu.Unlock()
}
