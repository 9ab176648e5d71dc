// Package chip8 implements the CHIP-8 CPU execution engine.
//
// # Architecture Overview
//
// CHIP-8 is an interpreted programming language developed in the 1970s for simple games
// on early microcomputers. This package contains the decoder that classifies 16-bit
// instruction words and the executor that applies one instruction to the machine state.
//
// # Memory Layout
//
// CHIP-8 systems have 4KB of memory (0x000-MaxAddress):
//   - 0x000-0x1FF: Interpreter area, holding the hexadecimal digit font at FontAddress
//   - ProgramStart-MaxAddress: User program and data area
//
// All computed memory addresses wrap modulo MemorySize, so no instruction can access
// memory outside of the 4KB address space.
//
// # Registers
//
//   - V0-VF: 16 general-purpose 8-bit registers, VF doubles as the flag register
//   - I: 12-bit address register
//   - PC: 12-bit program counter, starting at ProgramStart
//   - SP and Stack: 16 entry call stack, slot 0 marks the empty stack
//   - DT and ST: delay and sound timers, decremented at 60 Hz by the host
//
// # Execution
//
// The host drives the CPU by calling Step, which fetches the instruction at PC,
// decodes it with Decode, runs it with Execute and advances PC by 2 unless the
// instruction transferred control. Errors returned by Step are fatal: the CPU halts
// and refuses further steps until Reset is called.
//
// # Collaborators
//
// The display and the keypad are not owned by the CPU. Execute receives them as the
// Display and Keypad interfaces on every call.
//
// # Limitations
//
//   - SUPER-CHIP opcodes are decoded but return ErrUnimplemented
//   - Timer decay and instruction pacing belong to the host loop
package chip8
