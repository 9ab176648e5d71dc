package chip8

import (
	"fmt"
	"testing"

	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		word     uint16
		expected Kind
	}{
		{0x0000, Sys},
		{0x0123, Sys},
		{0x00E0, Cls},
		{0x00EE, Ret},
		{0x00E1, Sys},
		{0x00C5, ScrollDown},
		{0x01C5, Sys},
		{0x00FB, ScrollRight},
		{0x00FC, ScrollLeft},
		{0x00FD, Exit},
		{0x00FE, LowRes},
		{0x00FF, HighRes},
		{0x1234, Jump},
		{0x2ABC, Call},
		{0x3112, SkipEqualImm},
		{0x4112, SkipNotEqualImm},
		{0x5120, SkipEqualReg},
		{0x5121, Invalid},
		{0x6112, LoadImm},
		{0x7112, AddImm},
		{0x8120, Move},
		{0x8121, Or},
		{0x8122, And},
		{0x8123, Xor},
		{0x8124, AddReg},
		{0x8125, Sub},
		{0x8126, ShiftRight},
		{0x8127, SubReverse},
		{0x812E, ShiftLeft},
		{0x8128, Invalid},
		{0x812F, Invalid},
		{0x9120, SkipNotEqualReg},
		{0x9121, Invalid},
		{0xA2F0, LoadAddress},
		{0xB300, JumpOffset},
		{0xC1FF, Random},
		{0xD125, Draw},
		{0xD120, DrawExtended},
		{0xE19E, SkipKeyDown},
		{0xE1A1, SkipKeyUp},
		{0xE100, Invalid},
		{0xF107, LoadDelay},
		{0xF10A, WaitKey},
		{0xF115, SetDelay},
		{0xF118, SetSound},
		{0xF11E, AddAddress},
		{0xF129, LoadFont},
		{0xF130, LoadBigFont},
		{0xF133, StoreBCD},
		{0xF155, StoreRegisters},
		{0xF165, LoadRegisters},
		{0xF175, SaveFlags},
		{0xF185, RestoreFlags},
		{0xF1FF, Invalid},
		{0xFFFF, Invalid},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%04X", tt.word), func(t *testing.T) {
			assert.Equal(t, tt.expected, Decode(tt.word))
		})
	}
}

func TestDecodeTotal(t *testing.T) {
	seen := make(map[Kind]bool)

	for w := range 0x10000 {
		word := uint16(w)
		kind := Decode(word)
		assert.True(t, kind < kindCount)
		assert.Equal(t, kind, Decode(word))
		seen[kind] = true
	}

	// every kind is reachable by at least one word
	assert.Equal(t, int(kindCount), len(seen))
}

func TestDecodeExtendedNotMisrouted(t *testing.T) {
	for w := range 0x10000 {
		kind := Decode(uint16(w))
		if !kind.IsExtended() {
			continue
		}
		assert.False(t, kind.IsControlFlow())
		assert.False(t, kind.IsSkip())
	}
}

// matchOpcode returns the first instruction of the shared opcode table whose
// mask and value match the word.
func matchOpcode(word uint16) *chip8cpu.Instruction {
	for _, op := range chip8cpu.Opcodes[int(word>>12)] {
		if op.Info.Mask&word == op.Info.Value {
			return op.Instruction
		}
	}
	return nil
}

func TestDecodeMatchesInstructionSet(t *testing.T) {
	standard := 0
	for w := range 0x10000 {
		word := uint16(w)
		ins := Decode(word).Instruction()
		if ins == nil {
			continue
		}
		standard++

		matched := matchOpcode(word)
		if matched == nil {
			t.Fatalf("no opcode table entry for %04X", word)
		}
		assert.Equal(t, ins.Name, matched.Name, fmt.Sprintf("word %04X", word))
	}
	assert.True(t, standard > 0)
}

func TestKindInstructionFlags(t *testing.T) {
	assert.True(t, Jump.IsControlFlow())
	assert.True(t, JumpOffset.IsControlFlow())
	assert.True(t, Call.IsControlFlow())
	assert.True(t, Ret.IsControlFlow())
	assert.False(t, Draw.IsControlFlow())
	assert.False(t, Sys.IsControlFlow())

	assert.True(t, SkipEqualImm.IsSkip())
	assert.True(t, SkipNotEqualReg.IsSkip())
	assert.True(t, SkipKeyDown.IsSkip())
	assert.True(t, SkipKeyUp.IsSkip())
	assert.False(t, LoadImm.IsSkip())
	assert.False(t, Invalid.IsSkip())

	assert.True(t, Invalid.Instruction() == nil)
	assert.True(t, ScrollDown.Instruction() == nil)
	assert.True(t, Kind(255).Instruction() == nil)
	assert.Equal(t, chip8cpu.DrwInst.Name, Draw.String())
}

func TestKindString(t *testing.T) {
	for k := Kind(0); k < kindCount; k++ {
		assert.NotEmpty(t, k.String())
	}
	assert.Equal(t, "invalid", Kind(255).String())
	assert.Equal(t, "drw", Draw.String())
	assert.Equal(t, "subn", SubReverse.String())
}

func TestOpcodeFields(t *testing.T) {
	op := Opcode(0xD2A7)

	assert.Equal(t, uint8(0xD), op.Group())
	assert.Equal(t, uint8(0x2), op.X())
	assert.Equal(t, uint8(0xA), op.Y())
	assert.Equal(t, uint8(0x7), op.N())
	assert.Equal(t, uint8(0xA7), op.NN())
	assert.Equal(t, uint16(0x2A7), op.NNN())
}
