package chip8

// mockKeypad is a minimal Keypad implementation for testing.
type mockKeypad struct {
	keys [KeyCount]bool
}

func (m *mockKeypad) IsKeyDown(key uint8) bool {
	return m.keys[key&0x0F]
}

func (m *mockKeypad) FirstKeyDown() (uint8, bool) {
	for i, down := range m.keys {
		if down {
			return uint8(i), true
		}
	}
	return 0, false
}

// mockDisplay is a minimal Display implementation for testing.
type mockDisplay struct {
	width   int
	height  int
	pixels  []bool
	cleared int
}

func newMockDisplay(width, height int) *mockDisplay {
	return &mockDisplay{
		width:  width,
		height: height,
		pixels: make([]bool, width*height),
	}
}

func (m *mockDisplay) Width() int  { return m.width }
func (m *mockDisplay) Height() int { return m.height }

func (m *mockDisplay) SetPixel(x, y int) bool {
	i := y*m.width + x
	prev := m.pixels[i]
	m.pixels[i] = !prev
	return prev
}

func (m *mockDisplay) Clear() {
	for i := range m.pixels {
		m.pixels[i] = false
	}
	m.cleared++
}

func (m *mockDisplay) pixel(x, y int) bool {
	return m.pixels[y*m.width+x]
}

// fixedRandom returns the same value for every call.
type fixedRandom uint32

func (f fixedRandom) Uint32() uint32 {
	return uint32(f)
}

// newTestCPU returns a CPU with deterministic randomness and the collaborators.
func newTestCPU() (*CPU, *mockKeypad, *mockDisplay) {
	return New(WithRandomSource(fixedRandom(0xA5))), &mockKeypad{}, newMockDisplay(64, 32)
}
