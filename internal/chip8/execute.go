package chip8

// Keypad is the 16-key input device queried by the CPU.
type Keypad interface {
	// IsKeyDown returns whether the key with the given index is pressed.
	IsKeyDown(key uint8) bool
	// FirstKeyDown returns the lowest index of all pressed keys.
	FirstKeyDown() (uint8, bool)
}

// Display is the monochrome screen the CPU draws sprites on.
type Display interface {
	Width() int
	Height() int
	// SetPixel toggles the pixel and returns true if it was on before.
	SetPixel(x, y int) bool
	// Clear turns all pixels off.
	Clear()
}

// spriteWidth is the number of pixels of a sprite row.
const spriteWidth = 8

// Step fetches the instruction at PC, executes it and advances PC by 2
// unless the instruction transferred control. The returned error is fatal,
// the CPU halts and every further Step returns ErrHalted until Reset.
func (c *CPU) Step(keys Keypad, screen Display) (Kind, error) {
	if c.halted != nil {
		return Invalid, ErrHalted
	}

	address := c.PC
	word := c.Fetch(address)
	kind := Decode(word)

	if err := c.Execute(word, kind, keys, screen); err != nil {
		c.halted = &ExecutionError{
			Address: address,
			Word:    word,
			Kind:    kind,
			Err:     err,
		}
		return kind, c.halted
	}

	if !c.branched {
		c.PC = (c.PC + 2) & AddressMask
	}
	return kind, nil
}

// Execute performs the state transition of one decoded instruction.
// Control flow instructions set PC directly, skip instructions add 2 to PC, all other
// instructions leave PC unchanged and the caller advances it by 2.
func (c *CPU) Execute(word uint16, kind Kind, keys Keypad, screen Display) error {
	op := Opcode(word)
	c.branched = false
	c.waiting = false

	switch kind {
	case Sys:
		// machine code routines of the original interpreters are ignored

	case Cls:
		screen.Clear()

	case Ret:
		return c.ret()

	case Jump:
		c.jump(op.NNN())

	case Call:
		return c.call(op.NNN())

	case SkipEqualImm:
		c.skipIf(c.V[op.X()] == op.NN())

	case SkipNotEqualImm:
		c.skipIf(c.V[op.X()] != op.NN())

	case SkipEqualReg:
		c.skipIf(c.V[op.X()] == c.V[op.Y()])

	case SkipNotEqualReg:
		c.skipIf(c.V[op.X()] != c.V[op.Y()])

	case LoadImm:
		c.V[op.X()] = op.NN()

	case AddImm:
		c.V[op.X()] += op.NN()

	case Move:
		c.V[op.X()] = c.V[op.Y()]

	case Or:
		c.V[op.X()] |= c.V[op.Y()]

	case And:
		c.V[op.X()] &= c.V[op.Y()]

	case Xor:
		c.V[op.X()] ^= c.V[op.Y()]

	case AddReg, Sub, SubReverse, ShiftRight, ShiftLeft:
		c.arithmetic(kind, op.X(), op.Y())

	case LoadAddress:
		c.I = op.NNN()

	case JumpOffset:
		c.jump(op.NNN() + uint16(c.V[0]))

	case Random:
		c.V[op.X()] = uint8(c.random.Uint32()) & op.NN()

	case Draw:
		c.draw(screen, op.X(), op.Y(), op.N())

	case SkipKeyDown:
		c.skipIf(keys.IsKeyDown(c.V[op.X()] & 0x0F))

	case SkipKeyUp:
		c.skipIf(!keys.IsKeyDown(c.V[op.X()] & 0x0F))

	case LoadDelay:
		c.V[op.X()] = c.DT

	case WaitKey:
		c.waitKey(keys, op.X())

	case SetDelay:
		c.DT = c.V[op.X()]

	case SetSound:
		c.ST = c.V[op.X()]

	case AddAddress:
		c.I = (c.I + uint16(c.V[op.X()])) & AddressMask

	case LoadFont:
		c.I = (FontAddress + FontGlyphSize*uint16(c.V[op.X()])) & AddressMask

	case StoreBCD:
		c.storeBCD(c.V[op.X()])

	case StoreRegisters:
		for i := uint16(0); i <= uint16(op.X()); i++ {
			c.write(c.I+i, c.V[i])
		}

	case LoadRegisters:
		for i := uint16(0); i <= uint16(op.X()); i++ {
			c.V[i] = c.read(c.I + i)
		}

	case ScrollDown, ScrollRight, ScrollLeft, Exit, LowRes, HighRes,
		DrawExtended, LoadBigFont, SaveFlags, RestoreFlags:
		return ErrUnimplemented

	default:
		return ErrInvalidInstruction
	}

	return nil
}

// jump sets the program counter and marks the step as a control transfer.
func (c *CPU) jump(address uint16) {
	c.PC = address & AddressMask
	c.branched = true
}

// call pushes the address of the following instruction and jumps to the subroutine.
func (c *CPU) call(address uint16) error {
	if int(c.SP) >= StackSize-1 {
		return ErrStackOverflow
	}
	c.SP++
	c.Stack[c.SP] = (c.PC + 2) & AddressMask
	c.jump(address)
	return nil
}

// ret pops the return address pushed by the last call.
func (c *CPU) ret() error {
	if c.SP == 0 {
		return ErrStackUnderflow
	}
	address := c.Stack[c.SP]
	c.SP--
	c.jump(address)
	return nil
}

// skipIf skips the next instruction if the condition holds. The caller adds
// the regular 2 bytes, resulting in a total advance of 4 bytes.
func (c *CPU) skipIf(condition bool) {
	if condition {
		c.PC = (c.PC + 2) & AddressMask
	}
}

// arithmetic executes the register instructions that produce a flag.
// VF is written last so that it holds the flag even when it is the destination.
func (c *CPU) arithmetic(kind Kind, x, y uint8) {
	vx, vy := c.V[x], c.V[y]
	var result, flag uint8

	switch kind {
	case AddReg:
		sum := uint16(vx) + uint16(vy)
		result = uint8(sum)
		flag = boolToFlag(sum > 0xFF)
	case Sub:
		result = vx - vy
		flag = boolToFlag(vx >= vy)
	case SubReverse:
		result = vy - vx
		flag = boolToFlag(vy >= vx)
	case ShiftRight:
		result = vx >> 1
		flag = vx & 0x01
	case ShiftLeft:
		result = vx << 1
		flag = vx >> 7
	}

	c.V[x] = result
	c.V[FlagRegister] = flag
}

// draw XORs an n byte sprite from memory at I onto the screen at (VX, VY).
// Coordinates and pixels wrap around the screen edges.
func (c *CPU) draw(screen Display, x, y, n uint8) {
	width, height := screen.Width(), screen.Height()
	originX := int(c.V[x]) % width
	originY := int(c.V[y]) % height

	var collision bool
	for row := range uint16(n) {
		line := c.read(c.I + row)
		for col := range spriteWidth {
			if line&(0x80>>col) == 0 {
				continue
			}
			px := (originX + col) % width
			py := (originY + int(row)) % height
			if screen.SetPixel(px, py) {
				collision = true
			}
		}
	}

	c.V[FlagRegister] = boolToFlag(collision)
}

// waitKey stores the lowest pressed key in VX. Without a pressed key the
// instruction is retried on the next step.
func (c *CPU) waitKey(keys Keypad, x uint8) {
	key, ok := keys.FirstKeyDown()
	if !ok {
		c.waiting = true
		c.branched = true // keep PC on this instruction
		return
	}
	c.V[x] = key
}

// storeBCD writes the hundreds, tens and ones digits of the value to I, I+1 and I+2.
func (c *CPU) storeBCD(value uint8) {
	c.write(c.I, value/100)
	c.write(c.I+1, value/10%10)
	c.write(c.I+2, value%10)
}

func boolToFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
