// Package display provides the monochrome CHIP-8 screen.
package display

import (
	"image/color"
	"strings"
	"sync"
)

// Canonical CHIP-8 screen size.
const (
	Width  = 64
	Height = 32
)

// Screen is a grid of on/off pixels. It is safe for concurrent use by the
// CPU and a rendering frontend.
type Screen struct {
	mu     sync.RWMutex
	width  int
	height int
	pixels []bool
	dirty  bool
}

// New returns a cleared screen of the given size. Non-positive sizes fall
// back to the canonical size.
func New(width, height int) *Screen {
	if width <= 0 || height <= 0 {
		width, height = Width, Height
	}
	return &Screen{
		width:  width,
		height: height,
		pixels: make([]bool, width*height),
		dirty:  true,
	}
}

// Width returns the number of pixel columns.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the number of pixel rows.
func (s *Screen) Height() int {
	return s.height
}

// SetPixel toggles the pixel at the coordinates and returns true if it was on
// before the toggle. Coordinates outside of the screen wrap around.
func (s *Screen) SetPixel(x, y int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(x, y)
	prev := s.pixels[i]
	s.pixels[i] = !prev
	s.dirty = true
	return prev
}

// Pixel returns whether the pixel at the coordinates is on.
func (s *Screen) Pixel(x, y int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pixels[s.index(x, y)]
}

// Clear turns all pixels off.
func (s *Screen) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.pixels)
	s.dirty = true
}

// Dirty returns whether the screen changed since the last call to ClearDirty.
func (s *Screen) Dirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dirty
}

// ClearDirty resets the changed marker after the screen has been presented.
func (s *Screen) ClearDirty() {
	s.mu.Lock()
	s.dirty = false
	s.mu.Unlock()
}

// Render returns the screen as RGBA pixel data, 4 bytes per pixel in row order.
func (s *Screen) Render(on, off color.RGBA) []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()

	buf := make([]byte, 0, len(s.pixels)*4)
	for _, p := range s.pixels {
		c := off
		if p {
			c = on
		}
		buf = append(buf, c.R, c.G, c.B, c.A)
	}
	return buf
}

// Lines returns a text rendering of the screen using half block characters,
// each line of text covers two pixel rows.
func (s *Screen) Lines() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := make([]string, 0, (s.height+1)/2)
	var sb strings.Builder
	for y := 0; y < s.height; y += 2 {
		sb.Reset()
		for x := range s.width {
			upper := s.pixels[y*s.width+x]
			lower := y+1 < s.height && s.pixels[(y+1)*s.width+x]
			switch {
			case upper && lower:
				sb.WriteRune('█')
			case upper:
				sb.WriteRune('▀')
			case lower:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// index returns the pixel index of the wrapped coordinates.
func (s *Screen) index(x, y int) int {
	x %= s.width
	if x < 0 {
		x += s.width
	}
	y %= s.height
	if y < 0 {
		y += s.height
	}
	return y*s.width + x
}
