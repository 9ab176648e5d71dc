package keypad

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestSetKey(t *testing.T) {
	k := New()

	_, ok := k.FirstKeyDown()
	assert.False(t, ok)

	assert.NoError(t, k.SetKey(0xB, true))
	assert.NoError(t, k.SetKey(0x4, true))
	assert.True(t, k.IsKeyDown(0xB))
	assert.False(t, k.IsKeyDown(0x5))

	key, ok := k.FirstKeyDown()
	assert.True(t, ok)
	assert.Equal(t, uint8(0x4), key)

	assert.NoError(t, k.SetKey(0x4, false))
	key, ok = k.FirstKeyDown()
	assert.True(t, ok)
	assert.Equal(t, uint8(0xB), key)
}

func TestInvalidKey(t *testing.T) {
	k := New()

	err := k.SetKey(16, true)
	assert.True(t, errors.Is(err, ErrInvalidKey))
	err = k.Press(200, 1)
	assert.True(t, errors.Is(err, ErrInvalidKey))
	assert.False(t, k.IsKeyDown(16))
}

func TestPressDecays(t *testing.T) {
	k := New()
	assert.NoError(t, k.Press(0x1, 2))

	assert.True(t, k.IsKeyDown(0x1))
	k.Tick()
	assert.True(t, k.IsKeyDown(0x1))
	k.Tick()
	assert.False(t, k.IsKeyDown(0x1))
	k.Tick()
	assert.False(t, k.IsKeyDown(0x1))
}

func TestReset(t *testing.T) {
	k := New()
	assert.NoError(t, k.SetKey(0x0, true))
	assert.NoError(t, k.Press(0xF, 10))

	k.Reset()

	_, ok := k.FirstKeyDown()
	assert.False(t, ok)
}
