// Package disasm creates assembly listings of CHIP-8 programs.
package disasm

import (
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/set"
)

const (
	funcNaming  = "_func_%03x"
	labelNaming = "_label_%03x"
)

// Disassemble writes a listing of the program, assuming that it is loaded
// at the program start address. Every line contains the address, the raw
// instruction word and its assembly text. Jump, call and skip destinations
// inside the program get a label.
func Disassemble(program []byte, w io.Writer) error {
	end := uint16(chip8.ProgramStart + len(program))
	callDestinations := set.New[uint16]()
	branchDestinations := set.New[uint16]()

	for offset := 0; offset+1 < len(program); offset += 2 {
		word := uint16(program[offset])<<8 | uint16(program[offset+1])
		op := chip8.Opcode(word)
		kind := chip8.Decode(word)

		switch {
		case kind == chip8.Call:
			callDestinations.Add(op.NNN())
		case kind == chip8.Ret:
		case kind.IsControlFlow():
			branchDestinations.Add(op.NNN())
		case kind.IsSkip():
			// a taken skip continues after the following instruction
			branchDestinations.Add(uint16(chip8.ProgramStart+offset) + 4)
		default:
		}
	}

	labels := func(address uint16) (string, bool) {
		if address < chip8.ProgramStart || address >= end {
			return "", false
		}
		switch {
		case callDestinations.Contains(address):
			return fmt.Sprintf(funcNaming, address), true
		case branchDestinations.Contains(address):
			return fmt.Sprintf(labelNaming, address), true
		default:
			return "", false
		}
	}

	for offset := 0; offset < len(program); offset += 2 {
		address := uint16(chip8.ProgramStart + offset)

		// destinations can be odd, emit the label at the instruction that contains it
		for _, dest := range []uint16{address, address + 1} {
			if name, ok := labels(dest); ok {
				if _, err := fmt.Fprintf(w, "%s:\n", name); err != nil {
					return fmt.Errorf("writing label: %w", err)
				}
			}
		}

		if offset+1 == len(program) {
			b := program[offset]
			if _, err := fmt.Fprintf(w, "%03X  %02X    .byte $%02X\n", address, b, b); err != nil {
				return fmt.Errorf("writing data byte: %w", err)
			}
			break
		}

		word := uint16(program[offset])<<8 | uint16(program[offset+1])
		if _, err := fmt.Fprintf(w, "%03X  %04X  %s\n", address, word, format(word, labels)); err != nil {
			return fmt.Errorf("writing instruction: %w", err)
		}
	}
	return nil
}
