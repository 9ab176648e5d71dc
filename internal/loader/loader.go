// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
)

// ErrEmptyROM is returned for ROM files without any content.
var ErrEmptyROM = errors.New("empty ROM")

// Loader handles loading ROM files from disk.
type Loader struct {
	logger *log.Logger
}

// New creates a new ROM loader.
func New(logger *log.Logger) *Loader {
	return &Loader{
		logger: logger,
	}
}

// Load reads a raw ROM file. CHIP-8 ROMs have no header, the file content is
// the program image that gets placed at the program start address.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	data, err := l.LoadFromReader(file)
	if err != nil {
		return nil, fmt.Errorf("loading ROM %s: %w", path, err)
	}
	return data, nil
}

// LoadFromReader reads a raw ROM image and validates that it fits into the
// program memory.
func (l *Loader) LoadFromReader(reader io.Reader) ([]byte, error) {
	// read one byte more than allowed to detect oversized images
	data, err := io.ReadAll(io.LimitReader(reader, chip8.MaxProgramSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading data: %w", err)
	}

	switch {
	case len(data) == 0:
		return nil, ErrEmptyROM
	case len(data) > chip8.MaxProgramSize:
		return nil, fmt.Errorf("%w: more than %d bytes", chip8.ErrProgramTooLarge, chip8.MaxProgramSize)
	}
	return data, nil
}

// LoadInto reads a ROM file and copies it into the memory of the CPU.
func (l *Loader) LoadInto(cpu *chip8.CPU, path string) ([]byte, error) {
	data, err := l.Load(path)
	if err != nil {
		return nil, err
	}

	if err := cpu.LoadProgram(data); err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}

	l.logger.Debug("ROM loaded",
		log.String("file", path),
		log.Int("size", len(data)),
		log.Hex("start", chip8.ProgramStart))
	return data, nil
}
