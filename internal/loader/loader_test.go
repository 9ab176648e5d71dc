package loader

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestLoad(t *testing.T) {
	t.Run("load ROM file", func(t *testing.T) {
		tmpFile := createTempFile(t, []byte{0x61, 0x12, 0x12, 0x00})
		loader := New(log.NewTestLogger(t))

		data, err := loader.Load(tmpFile)
		assert.NoError(t, err)
		assert.Len(t, data, 4)
		assert.Equal(t, byte(0x61), data[0])
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		loader := New(log.NewTestLogger(t))

		_, err := loader.Load("/nonexistent/file.ch8")
		assert.ErrorContains(t, err, "opening file")
	})

	t.Run("error on empty file", func(t *testing.T) {
		tmpFile := createTempFile(t, nil)
		loader := New(log.NewTestLogger(t))

		_, err := loader.Load(tmpFile)
		assert.True(t, errors.Is(err, ErrEmptyROM))
	})
}

func TestLoadFromReader(t *testing.T) {
	loader := New(log.NewTestLogger(t))

	data, err := loader.LoadFromReader(bytes.NewReader(make([]byte, chip8.MaxProgramSize)))
	assert.NoError(t, err)
	assert.Len(t, data, chip8.MaxProgramSize)

	_, err = loader.LoadFromReader(bytes.NewReader(make([]byte, chip8.MaxProgramSize+1)))
	assert.True(t, errors.Is(err, chip8.ErrProgramTooLarge))
}

func TestLoadInto(t *testing.T) {
	tmpFile := createTempFile(t, []byte{0xA2, 0xF0})
	loader := New(log.NewTestLogger(t))
	cpu := chip8.New()

	data, err := loader.LoadInto(cpu, tmpFile)
	assert.NoError(t, err)
	assert.Len(t, data, 2)
	assert.Equal(t, uint8(0xA2), cpu.Memory[chip8.ProgramStart])
	assert.Equal(t, uint8(0xF0), cpu.Memory[chip8.ProgramStart+1])
	assert.Equal(t, uint16(chip8.ProgramStart), cpu.PC)
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.ch8")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
