package chip8

import chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"

// instructions maps the standard instruction kinds to their shared CPU
// instruction definitions. Sys, invalid words and SUPER-CHIP kinds have none.
var instructions = [kindCount]*chip8cpu.Instruction{
	Cls:             chip8cpu.ClsInst,
	Ret:             chip8cpu.RetInst,
	Jump:            chip8cpu.JpInst,
	Call:            chip8cpu.CallInst,
	SkipEqualImm:    chip8cpu.SeInst,
	SkipNotEqualImm: chip8cpu.SneInst,
	SkipEqualReg:    chip8cpu.SeInst,
	LoadImm:         chip8cpu.LdInst,
	AddImm:          chip8cpu.AddInst,
	Move:            chip8cpu.LdInst,
	Or:              chip8cpu.OrInst,
	And:             chip8cpu.AndInst,
	Xor:             chip8cpu.XorInst,
	AddReg:          chip8cpu.AddInst,
	Sub:             chip8cpu.SubInst,
	ShiftRight:      chip8cpu.ShrInst,
	SubReverse:      chip8cpu.SubnInst,
	ShiftLeft:       chip8cpu.ShlInst,
	SkipNotEqualReg: chip8cpu.SneInst,
	LoadAddress:     chip8cpu.LdInst,
	JumpOffset:      chip8cpu.JpInst,
	Random:          chip8cpu.RndInst,
	Draw:            chip8cpu.DrwInst,
	SkipKeyDown:     chip8cpu.SkpInst,
	SkipKeyUp:       chip8cpu.SknpInst,
	LoadDelay:       chip8cpu.LdInst,
	WaitKey:         chip8cpu.LdInst,
	SetDelay:        chip8cpu.LdInst,
	SetSound:        chip8cpu.LdInst,
	AddAddress:      chip8cpu.AddInst,
	LoadFont:        chip8cpu.LdInst,
	StoreBCD:        chip8cpu.LdInst,
	StoreRegisters:  chip8cpu.LdInst,
	LoadRegisters:   chip8cpu.LdInst,
}

// Instruction returns the CPU instruction definition of a standard
// instruction kind, or nil for kinds outside of the standard set.
func (k Kind) Instruction() *chip8cpu.Instruction {
	if k >= kindCount {
		return nil
	}
	return instructions[k]
}
