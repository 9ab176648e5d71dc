package chip8

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInstruction is returned for instruction words that match no known opcode.
	ErrInvalidInstruction = errors.New("invalid instruction")
	// ErrUnimplemented is returned for recognized SUPER-CHIP instructions that the
	// interpreter does not execute.
	ErrUnimplemented = errors.New("unimplemented instruction")
	// ErrStackOverflow is returned when a call is made with a full stack.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrStackUnderflow is returned when a return is made with an empty stack.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrProgramTooLarge is returned when a program does not fit into memory.
	ErrProgramTooLarge = errors.New("program too large")
	// ErrHalted is returned when stepping a CPU that stopped on a fatal error.
	ErrHalted = errors.New("cpu halted")
)

// ExecutionError describes a fatal error of a single instruction.
type ExecutionError struct {
	Address uint16 // address the instruction was fetched from
	Word    uint16 // raw instruction word
	Kind    Kind   // decoded instruction kind
	Err     error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("executing instruction 0x%04X (%s) at address 0x%03X: %s",
		e.Word, e.Kind, e.Address, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}
