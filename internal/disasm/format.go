package disasm

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// labeler returns the label name for an address, if one exists.
type labeler func(address uint16) (string, bool)

// Format returns the assembly text of a single instruction word.
// Words that do not decode to an instruction are formatted as data.
func Format(word uint16) string {
	return format(word, nil)
}

func format(word uint16, labels labeler) string {
	kind := chip8.Decode(word)
	op := chip8.Opcode(word)
	name := mnemonic(kind)
	x, y := op.X(), op.Y()

	switch kind {
	case chip8.Invalid:
		return fmt.Sprintf(".word $%04X", word)

	case chip8.Cls, chip8.Ret, chip8.ScrollRight, chip8.ScrollLeft,
		chip8.Exit, chip8.LowRes, chip8.HighRes:
		return name

	case chip8.Sys:
		return fmt.Sprintf("%s $%03X", name, op.NNN())

	case chip8.Jump, chip8.Call:
		return name + " " + address(op.NNN(), labels)

	case chip8.JumpOffset:
		return fmt.Sprintf("%s V0, %s", name, address(op.NNN(), labels))

	case chip8.SkipEqualImm, chip8.SkipNotEqualImm, chip8.LoadImm, chip8.AddImm, chip8.Random:
		return fmt.Sprintf("%s V%X, $%02X", name, x, op.NN())

	case chip8.SkipEqualReg, chip8.SkipNotEqualReg, chip8.Move, chip8.Or, chip8.And,
		chip8.Xor, chip8.AddReg, chip8.Sub, chip8.SubReverse:
		return fmt.Sprintf("%s V%X, V%X", name, x, y)

	case chip8.ShiftRight, chip8.ShiftLeft, chip8.SkipKeyDown, chip8.SkipKeyUp:
		return fmt.Sprintf("%s V%X", name, x)

	case chip8.LoadAddress:
		return fmt.Sprintf("%s I, $%03X", name, op.NNN())

	case chip8.Draw, chip8.DrawExtended:
		return fmt.Sprintf("%s V%X, V%X, $%X", name, x, y, op.N())

	case chip8.ScrollDown:
		return fmt.Sprintf("%s $%X", name, op.N())

	case chip8.LoadDelay:
		return fmt.Sprintf("%s V%X, DT", name, x)
	case chip8.WaitKey:
		return fmt.Sprintf("%s V%X, K", name, x)
	case chip8.SetDelay:
		return fmt.Sprintf("%s DT, V%X", name, x)
	case chip8.SetSound:
		return fmt.Sprintf("%s ST, V%X", name, x)
	case chip8.AddAddress:
		return fmt.Sprintf("%s I, V%X", name, x)
	case chip8.LoadFont:
		return fmt.Sprintf("%s F, V%X", name, x)
	case chip8.LoadBigFont:
		return fmt.Sprintf("%s HF, V%X", name, x)
	case chip8.StoreBCD:
		return fmt.Sprintf("%s B, V%X", name, x)
	case chip8.StoreRegisters:
		return fmt.Sprintf("%s [I], V%X", name, x)
	case chip8.LoadRegisters:
		return fmt.Sprintf("%s V%X, [I]", name, x)
	case chip8.SaveFlags:
		return fmt.Sprintf("%s R, V%X", name, x)
	case chip8.RestoreFlags:
		return fmt.Sprintf("%s V%X, R", name, x)

	default:
		return fmt.Sprintf(".word $%04X", word)
	}
}

// mnemonic returns the upper case instruction name. Standard instructions use
// the shared CPU instruction definitions.
func mnemonic(kind chip8.Kind) string {
	if ins := kind.Instruction(); ins != nil {
		return strings.ToUpper(ins.Name)
	}
	return strings.ToUpper(kind.String())
}

func address(addr uint16, labels labeler) string {
	if labels != nil {
		if name, ok := labels(addr); ok {
			return name
		}
	}
	return fmt.Sprintf("$%03X", addr)
}
