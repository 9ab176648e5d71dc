package chip8

import chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"

// Kind is the decoded category of an instruction word, independent of its operands.
type Kind uint8

// Instruction kinds. The comment shows the matched opcode pattern.
const (
	Invalid Kind = iota // no known pattern

	Sys              // 0NNN
	Cls              // 00E0
	Ret              // 00EE
	Jump             // 1NNN
	Call             // 2NNN
	SkipEqualImm     // 3XNN
	SkipNotEqualImm  // 4XNN
	SkipEqualReg     // 5XY0
	LoadImm          // 6XNN
	AddImm           // 7XNN
	Move             // 8XY0
	Or               // 8XY1
	And              // 8XY2
	Xor              // 8XY3
	AddReg           // 8XY4
	Sub              // 8XY5
	ShiftRight       // 8XY6
	SubReverse       // 8XY7
	ShiftLeft        // 8XYE
	SkipNotEqualReg  // 9XY0
	LoadAddress      // ANNN
	JumpOffset       // BNNN
	Random           // CXNN
	Draw             // DXYN
	SkipKeyDown      // EX9E
	SkipKeyUp        // EXA1
	LoadDelay        // FX07
	WaitKey          // FX0A
	SetDelay         // FX15
	SetSound         // FX18
	AddAddress       // FX1E
	LoadFont         // FX29
	StoreBCD         // FX33
	StoreRegisters   // FX55
	LoadRegisters    // FX65

	// SUPER-CHIP instructions, recognized but not executed.
	ScrollDown   // 00CN
	ScrollRight  // 00FB
	ScrollLeft   // 00FC
	Exit         // 00FD
	LowRes       // 00FE
	HighRes      // 00FF
	DrawExtended // DXY0
	LoadBigFont  // FX30
	SaveFlags    // FX75
	RestoreFlags // FX85

	kindCount
)

// kindNames holds the mnemonics of kinds without a standard CPU instruction
// definition.
var kindNames = [kindCount]string{
	Invalid:      "invalid",
	Sys:          "sys",
	ScrollDown:   "scd",
	ScrollRight:  "scr",
	ScrollLeft:   "scl",
	Exit:         "exit",
	LowRes:       "low",
	HighRes:      "high",
	DrawExtended: "drw",
	LoadBigFont:  "ld",
	SaveFlags:    "ld",
	RestoreFlags: "ld",
}

// String returns the mnemonic of the instruction kind.
func (k Kind) String() string {
	if k >= kindCount {
		return kindNames[Invalid]
	}
	if ins := instructions[k]; ins != nil {
		return ins.Name
	}
	return kindNames[k]
}

// IsExtended returns true for SUPER-CHIP instructions that are recognized
// by the decoder but not executed.
func (k Kind) IsExtended() bool {
	return k >= ScrollDown && k < kindCount
}

// IsControlFlow returns true if the instruction sets the program counter directly.
func (k Kind) IsControlFlow() bool {
	switch k.Instruction() {
	case chip8cpu.RetInst, chip8cpu.JpInst, chip8cpu.CallInst:
		return true
	default:
		return false
	}
}

// IsSkip returns true if the instruction conditionally skips the next instruction.
func (k Kind) IsSkip() bool {
	ins := k.Instruction()
	return ins != nil && chip8cpu.SkipInstructions.Contains(ins.Name)
}

// Decode classifies an instruction word. The most constrained patterns are matched
// first: exact words, then byte and nibble groups, then the top nibble alone.
// Every word maps to exactly one kind, unknown words map to Invalid.
func Decode(word uint16) Kind {
	op := Opcode(word)

	switch word {
	case 0x00E0:
		return Cls
	case 0x00EE:
		return Ret
	case 0x00FB:
		return ScrollRight
	case 0x00FC:
		return ScrollLeft
	case 0x00FD:
		return Exit
	case 0x00FE:
		return LowRes
	case 0x00FF:
		return HighRes
	}

	switch op.Group() {
	case 0x0:
		if word&0xFFF0 == 0x00C0 {
			return ScrollDown
		}
		return Sys
	case 0x1:
		return Jump
	case 0x2:
		return Call
	case 0x3:
		return SkipEqualImm
	case 0x4:
		return SkipNotEqualImm
	case 0x5:
		if op.N() == 0 {
			return SkipEqualReg
		}
	case 0x6:
		return LoadImm
	case 0x7:
		return AddImm
	case 0x8:
		return decodeALU(op)
	case 0x9:
		if op.N() == 0 {
			return SkipNotEqualReg
		}
	case 0xA:
		return LoadAddress
	case 0xB:
		return JumpOffset
	case 0xC:
		return Random
	case 0xD:
		if op.N() == 0 {
			return DrawExtended
		}
		return Draw
	case 0xE:
		switch op.NN() {
		case 0x9E:
			return SkipKeyDown
		case 0xA1:
			return SkipKeyUp
		}
	case 0xF:
		return decodeMisc(op)
	}

	return Invalid
}

// decodeALU decodes the 8XYN register arithmetic group keyed on the low nibble.
func decodeALU(op Opcode) Kind {
	switch op.N() {
	case 0x0:
		return Move
	case 0x1:
		return Or
	case 0x2:
		return And
	case 0x3:
		return Xor
	case 0x4:
		return AddReg
	case 0x5:
		return Sub
	case 0x6:
		return ShiftRight
	case 0x7:
		return SubReverse
	case 0xE:
		return ShiftLeft
	default:
		return Invalid
	}
}

// decodeMisc decodes the FXNN group keyed on the low byte.
func decodeMisc(op Opcode) Kind {
	switch op.NN() {
	case 0x07:
		return LoadDelay
	case 0x0A:
		return WaitKey
	case 0x15:
		return SetDelay
	case 0x18:
		return SetSound
	case 0x1E:
		return AddAddress
	case 0x29:
		return LoadFont
	case 0x30:
		return LoadBigFont
	case 0x33:
		return StoreBCD
	case 0x55:
		return StoreRegisters
	case 0x65:
		return LoadRegisters
	case 0x75:
		return SaveFlags
	case 0x85:
		return RestoreFlags
	default:
		return Invalid
	}
}

// Opcode is a raw 16-bit instruction word with accessors for its operand fields.
type Opcode uint16

// Group returns the top nibble that selects the instruction group.
func (o Opcode) Group() uint8 {
	return uint8(o >> 12)
}

// X returns the second nibble, the first register operand.
func (o Opcode) X() uint8 {
	return uint8(o>>8) & 0x0F
}

// Y returns the third nibble, the second register operand.
func (o Opcode) Y() uint8 {
	return uint8(o>>4) & 0x0F
}

// N returns the lowest nibble.
func (o Opcode) N() uint8 {
	return uint8(o) & 0x0F
}

// NN returns the low byte, an immediate value.
func (o Opcode) NN() uint8 {
	return uint8(o)
}

// NNN returns the low 12 bits, an address.
func (o Opcode) NNN() uint16 {
	return uint16(o) & AddressMask
}
