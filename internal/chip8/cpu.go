package chip8

import (
	"fmt"
	"math/rand/v2"
)

// CHIP-8 memory layout constants.
const (
	// MemorySize is the size of the CHIP-8 address space in bytes.
	MemorySize = 0x1000

	// MaxAddress is the highest valid address in CHIP-8 memory space.
	MaxAddress = MemorySize - 1

	// AddressMask limits computed addresses to the 12-bit address space.
	AddressMask = 0x0FFF

	// ProgramStart is the memory address where CHIP-8 programs are loaded
	// and begin execution.
	ProgramStart = 0x200

	// MaxProgramSize is the largest program that fits between ProgramStart
	// and the end of memory.
	MaxProgramSize = MemorySize - ProgramStart

	// FontAddress is the memory address of the built-in hexadecimal digit font.
	FontAddress = 0x000

	// FontGlyphSize is the number of bytes of a single font digit.
	FontGlyphSize = 5
)

// Register file constants.
const (
	// RegisterCount is the number of general-purpose V registers.
	RegisterCount = 16

	// FlagRegister is the index of VF. It is an ordinary register that
	// arithmetic, shift and draw instructions overwrite with their flag outcome.
	FlagRegister = 0xF

	// StackSize is the number of call stack slots. Slot 0 is never written,
	// a pushed address is stored after incrementing SP.
	StackSize = 16

	// KeyCount is the number of keys of the hexadecimal keypad.
	KeyCount = 16
)

// RandomSource provides the random bytes for the RND instruction.
type RandomSource interface {
	Uint32() uint32
}

// CPU holds the complete CHIP-8 machine state.
type CPU struct {
	// V are the 16 general-purpose registers, V[FlagRegister] is VF.
	V [RegisterCount]uint8
	// I is the address register.
	I uint16
	// PC is the program counter.
	PC uint16
	// SP is the stack pointer, 0 means the stack is empty.
	SP uint8
	// Stack holds the return addresses.
	Stack [StackSize]uint16
	// DT is the delay timer.
	DT uint8
	// ST is the sound timer.
	ST uint8

	// Memory is the 4KB address space.
	Memory [MemorySize]uint8

	random   RandomSource
	program  []byte
	branched bool
	waiting  bool
	halted   error
}

// Option configures a CPU on creation.
type Option func(*CPU)

// WithRandomSource sets the source of random numbers used by the RND instruction.
func WithRandomSource(src RandomSource) Option {
	return func(c *CPU) {
		c.random = src
	}
}

// WithSeed uses a deterministic random source initialized with the given seed.
func WithSeed(seed uint64) Option {
	return func(c *CPU) {
		c.random = rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	}
}

// New returns a new CPU in its power-on state.
func New(opts ...Option) *CPU {
	c := &CPU{}
	for _, opt := range opts {
		opt(c)
	}
	if c.random == nil {
		c.random = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	c.Reset()
	return c
}

// Reset restores the power-on state: registers, stack and timers are zeroed,
// memory is cleared except for the font and PC is set to ProgramStart.
func (c *CPU) Reset() {
	c.V = [RegisterCount]uint8{}
	c.I = 0
	c.PC = ProgramStart
	c.SP = 0
	c.Stack = [StackSize]uint16{}
	c.DT = 0
	c.ST = 0
	c.Memory = [MemorySize]uint8{}
	copy(c.Memory[FontAddress:], font[:])
	c.branched = false
	c.waiting = false
	c.halted = nil
}

// Restart resets the CPU and loads the last loaded program again.
func (c *CPU) Restart() {
	program := c.program
	c.Reset()
	copy(c.Memory[ProgramStart:], program)
	c.program = program
}

// LoadProgram copies the program bytes into memory starting at ProgramStart.
// Programs that do not fit into memory are rejected without modifying memory.
func (c *CPU) LoadProgram(program []byte) error {
	if len(program) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes, maximum is %d", ErrProgramTooLarge, len(program), MaxProgramSize)
	}
	copy(c.Memory[ProgramStart:], program)
	c.program = append(c.program[:0], program...)
	return nil
}

// DelayTimer returns the current value of the delay timer.
func (c *CPU) DelayTimer() uint8 {
	return c.DT
}

// SetDelayTimer sets the delay timer.
func (c *CPU) SetDelayTimer(value uint8) {
	c.DT = value
}

// SoundTimer returns the current value of the sound timer.
func (c *CPU) SoundTimer() uint8 {
	return c.ST
}

// SetSoundTimer sets the sound timer.
func (c *CPU) SetSoundTimer(value uint8) {
	c.ST = value
}

// Waiting returns whether the last executed instruction is waiting for a key press.
func (c *CPU) Waiting() bool {
	return c.waiting
}

// Halted returns the fatal error that stopped the CPU, or nil if it can still run.
func (c *CPU) Halted() error {
	return c.halted
}

// Fetch reads the big-endian instruction word at the given address.
func (c *CPU) Fetch(address uint16) uint16 {
	hi := c.read(address)
	lo := c.read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// read returns the memory byte at the address, wrapped into the address space.
func (c *CPU) read(address uint16) uint8 {
	return c.Memory[address&AddressMask]
}

// write sets the memory byte at the address, wrapped into the address space.
func (c *CPU) write(address uint16, value uint8) {
	c.Memory[address&AddressMask] = value
}
