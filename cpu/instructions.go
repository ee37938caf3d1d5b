package cpu

import "mosey/mask"

// One method per mnemonic; the opcode table routes each byte here with its
// addressing mode. Cycle costs accrue in the charged helpers (fetch, read,
// write) plus explicit ticks for internal work, so each body only spells out
// the architectural effect.
//
// https://www.nesdev.org/obelisk-6502-guide/reference.html
// http://www.6502.org/tutorials/6502opcodes.html

// setNZ applies the flag rule shared by nearly every operation:
// Z = (result == 0), N = bit 7 of the result.
func (c *Cpu) setNZ(v byte) {
	c.Flags.Zero = v == 0
	c.Flags.Negative = v&0x80 != 0
}

// add is the ADC core, shared with SBC via operand complement. Binary mode
// only: reaching here with DecimalMode set is a bug in the caller, not in the
// program under emulation.
func (c *Cpu) add(operand byte) {
	if c.Flags.DecimalMode {
		panic("cpu: decimal mode arithmetic is not supported")
	}
	sum := uint16(c.Accumulator) + uint16(operand)
	if c.Flags.Carry {
		sum++
	}
	result := byte(sum)
	c.Flags.Carry = sum > 0xFF
	// signed overflow: both inputs share a sign the result does not
	c.Flags.Overflow = (c.Accumulator^result)&(operand^result)&0x80 != 0
	c.Accumulator = result
	c.setNZ(result)
}

// compare computes register - operand and sets C/Z/N without writing the
// register back.
func (c *Cpu) compare(register, operand byte) {
	c.Flags.Carry = register >= operand
	c.Flags.Zero = register == operand
	c.Flags.Negative = (register-operand)&0x80 != 0
}

// branch consumes the relative offset and, when taken, moves the pc. A taken
// branch costs one extra cycle, plus another if the target lands in a new
// page.
func (c *Cpu) branch(taken bool) {
	offset := c.fetchByte()
	if !taken {
		return
	}
	c.tick(1)
	target := c.ProgramCounter + uint16(int8(offset)) // sign-extended
	if !mask.SamePage(target, c.ProgramCounter) {
		c.tick(1)
	}
	c.ProgramCounter = target
}

// applyShift routes a shift or rotate through the accumulator or the
// read-modify-write memory form, returning the new value for flag setting.
func (c *Cpu) applyShift(mode AddressingMode, f func(byte) byte) byte {
	if mode == Accumulator {
		c.tick(1)
		c.Accumulator = f(c.Accumulator)
		return c.Accumulator
	}
	return c.modify(mode, f)
}

// LDA - Load Accumulator
func (c *Cpu) LDA(mode AddressingMode) {
	c.Accumulator = c.loadOperand(mode)
	c.setNZ(c.Accumulator)
}

// LDX - Load X Register
func (c *Cpu) LDX(mode AddressingMode) {
	c.X = c.loadOperand(mode)
	c.setNZ(c.X)
}

// LDY - Load Y Register
func (c *Cpu) LDY(mode AddressingMode) {
	c.Y = c.loadOperand(mode)
	c.setNZ(c.Y)
}

// STA - Store Accumulator
func (c *Cpu) STA(mode AddressingMode) {
	c.writeByte(c.operandAddress(mode, penaltyWrite), c.Accumulator)
}

// STX - Store X Register
func (c *Cpu) STX(mode AddressingMode) {
	c.writeByte(c.operandAddress(mode, penaltyWrite), c.X)
}

// STY - Store Y Register
func (c *Cpu) STY(mode AddressingMode) {
	c.writeByte(c.operandAddress(mode, penaltyWrite), c.Y)
}

// TAX - Transfer Accumulator to X
func (c *Cpu) TAX(AddressingMode) {
	c.tick(1)
	c.X = c.Accumulator
	c.setNZ(c.X)
}

// TAY - Transfer Accumulator to Y
func (c *Cpu) TAY(AddressingMode) {
	c.tick(1)
	c.Y = c.Accumulator
	c.setNZ(c.Y)
}

// TXA - Transfer X to Accumulator
func (c *Cpu) TXA(AddressingMode) {
	c.tick(1)
	c.Accumulator = c.X
	c.setNZ(c.Accumulator)
}

// TYA - Transfer Y to Accumulator
func (c *Cpu) TYA(AddressingMode) {
	c.tick(1)
	c.Accumulator = c.Y
	c.setNZ(c.Accumulator)
}

// TSX - Transfer Stack Pointer to X
func (c *Cpu) TSX(AddressingMode) {
	c.tick(1)
	c.X = c.Stack
	c.setNZ(c.X)
}

// TXS - Transfer X to Stack Pointer. The only transfer that touches no flag.
func (c *Cpu) TXS(AddressingMode) {
	c.tick(1)
	c.Stack = c.X
}

// PHA - Push Accumulator
func (c *Cpu) PHA(AddressingMode) {
	c.tick(1)
	c.pushByte(c.Accumulator)
}

// PHP - Push Processor Status. The pushed copy has the unused and break bits
// forced to 1; the live flags are not altered.
func (c *Cpu) PHP(AddressingMode) {
	c.tick(1)
	c.pushByte(c.Flags.Pack() | 1<<4)
}

// PLA - Pull Accumulator
func (c *Cpu) PLA(AddressingMode) {
	c.tick(2)
	c.Accumulator = c.pullByte()
	c.setNZ(c.Accumulator)
}

// PLP - Pull Processor Status
func (c *Cpu) PLP(AddressingMode) {
	c.tick(2)
	c.Flags = Unpack(c.pullByte())
}

// AND - Logical AND
func (c *Cpu) AND(mode AddressingMode) {
	c.Accumulator &= c.loadOperand(mode)
	c.setNZ(c.Accumulator)
}

// EOR - Exclusive OR
func (c *Cpu) EOR(mode AddressingMode) {
	c.Accumulator ^= c.loadOperand(mode)
	c.setNZ(c.Accumulator)
}

// ORA - Logical Inclusive OR
func (c *Cpu) ORA(mode AddressingMode) {
	c.Accumulator |= c.loadOperand(mode)
	c.setNZ(c.Accumulator)
}

// BIT - Bit Test. Z reflects A&M, while N and V copy bits 7 and 6 of the
// operand itself. A is untouched.
func (c *Cpu) BIT(mode AddressingMode) {
	operand := c.loadOperand(mode)
	c.Flags.Zero = c.Accumulator&operand == 0
	c.Flags.Negative = operand&0x80 != 0
	c.Flags.Overflow = operand&0x40 != 0
}

// ADC - Add with Carry
func (c *Cpu) ADC(mode AddressingMode) {
	c.add(c.loadOperand(mode))
}

// SBC - Subtract with Carry, defined as ADC of the complemented operand.
// Carry set going in means "no borrow"; carry set coming out means "no
// borrow out".
func (c *Cpu) SBC(mode AddressingMode) {
	c.add(^c.loadOperand(mode))
}

// CMP - Compare (with Accumulator)
func (c *Cpu) CMP(mode AddressingMode) {
	c.compare(c.Accumulator, c.loadOperand(mode))
}

// CPX - Compare X Register
func (c *Cpu) CPX(mode AddressingMode) {
	c.compare(c.X, c.loadOperand(mode))
}

// CPY - Compare Y Register
func (c *Cpu) CPY(mode AddressingMode) {
	c.compare(c.Y, c.loadOperand(mode))
}

// ASL - Arithmetic Shift Left
func (c *Cpu) ASL(mode AddressingMode) {
	c.setNZ(c.applyShift(mode, func(v byte) byte {
		c.Flags.Carry = v&0x80 != 0
		return v << 1
	}))
}

// LSR - Logical Shift Right. N is always cleared: bit 7 of the result is 0.
func (c *Cpu) LSR(mode AddressingMode) {
	c.setNZ(c.applyShift(mode, func(v byte) byte {
		c.Flags.Carry = v&0x01 != 0
		return v >> 1
	}))
}

// ROL - Rotate Left. The old carry becomes bit 0, the old bit 7 becomes the
// carry.
func (c *Cpu) ROL(mode AddressingMode) {
	var bit0 byte
	if c.Flags.Carry {
		bit0 = 1
	}
	c.setNZ(c.applyShift(mode, func(v byte) byte {
		c.Flags.Carry = v&0x80 != 0
		return v<<1 | bit0
	}))
}

// ROR - Rotate Right
func (c *Cpu) ROR(mode AddressingMode) {
	var bit7 byte
	if c.Flags.Carry {
		bit7 = 0x80
	}
	c.setNZ(c.applyShift(mode, func(v byte) byte {
		c.Flags.Carry = v&0x01 != 0
		return v>>1 | bit7
	}))
}

// INC - Increment Memory
func (c *Cpu) INC(mode AddressingMode) {
	c.setNZ(c.modify(mode, func(v byte) byte { return v + 1 }))
}

// DEC - Decrement Memory
func (c *Cpu) DEC(mode AddressingMode) {
	c.setNZ(c.modify(mode, func(v byte) byte { return v - 1 }))
}

// INX - Increment X Register
func (c *Cpu) INX(AddressingMode) {
	c.tick(1)
	c.X++
	c.setNZ(c.X)
}

// INY - Increment Y Register
func (c *Cpu) INY(AddressingMode) {
	c.tick(1)
	c.Y++
	c.setNZ(c.Y)
}

// DEX - Decrement X Register
func (c *Cpu) DEX(AddressingMode) {
	c.tick(1)
	c.X--
	c.setNZ(c.X)
}

// DEY - Decrement Y Register
func (c *Cpu) DEY(AddressingMode) {
	c.tick(1)
	c.Y--
	c.setNZ(c.Y)
}

// BCC - Branch if Carry Clear
func (c *Cpu) BCC(AddressingMode) { c.branch(!c.Flags.Carry) }

// BCS - Branch if Carry Set
func (c *Cpu) BCS(AddressingMode) { c.branch(c.Flags.Carry) }

// BEQ - Branch if Equal
func (c *Cpu) BEQ(AddressingMode) { c.branch(c.Flags.Zero) }

// BNE - Branch if Not Equal
func (c *Cpu) BNE(AddressingMode) { c.branch(!c.Flags.Zero) }

// BMI - Branch if Minus
func (c *Cpu) BMI(AddressingMode) { c.branch(c.Flags.Negative) }

// BPL - Branch if Positive
func (c *Cpu) BPL(AddressingMode) { c.branch(!c.Flags.Negative) }

// BVS - Branch if Overflow Set
func (c *Cpu) BVS(AddressingMode) { c.branch(c.Flags.Overflow) }

// BVC - Branch if Overflow Clear
func (c *Cpu) BVC(AddressingMode) { c.branch(!c.Flags.Overflow) }

// JMP - Jump. Absolute or indirect; the indirect form carries the hardware's
// page-boundary quirk (see operandAddress).
func (c *Cpu) JMP(mode AddressingMode) {
	c.ProgramCounter = c.operandAddress(mode, penaltyRead)
}

// JSR - Jump to Subroutine. Pushes the address of the last byte of the JSR
// instruction itself (pc-1 once the operand has been read); RTS undoes the
// off-by-one.
func (c *Cpu) JSR(mode AddressingMode) {
	addr := c.operandAddress(mode, penaltyRead)
	c.tick(1)
	c.pushWord(c.ProgramCounter - 1)
	c.ProgramCounter = addr
}

// RTS - Return from Subroutine
func (c *Cpu) RTS(AddressingMode) {
	c.tick(3)
	c.ProgramCounter = c.pullWord() + 1
}

// BRK - Force Interrupt. Pushes the pc past the BRK's padding byte, then the
// packed status with the unused and break bits set, disables interrupts, and
// vectors through 0xFFFE.
func (c *Cpu) BRK(AddressingMode) {
	c.pushWord(c.ProgramCounter + 1)
	c.pushByte(c.Flags.Pack() | 1<<4)
	c.Flags.InterruptDisable = true
	low := c.readByte(BreakVector)
	high := c.readByte(BreakVector + 1)
	c.tick(1)
	c.ProgramCounter = mask.Word(high, low)
}

// RTI - Return from Interrupt. Pulls status then pc; unlike RTS there is no
// +1, the pushed address is exact.
func (c *Cpu) RTI(AddressingMode) {
	c.tick(2)
	c.Flags = Unpack(c.pullByte())
	c.ProgramCounter = c.pullWord()
}

// CLC - Clear Carry Flag
func (c *Cpu) CLC(AddressingMode) { c.tick(1); c.Flags.Carry = false }

// SEC - Set Carry Flag
func (c *Cpu) SEC(AddressingMode) { c.tick(1); c.Flags.Carry = true }

// CLD - Clear Decimal Mode
func (c *Cpu) CLD(AddressingMode) { c.tick(1); c.Flags.DecimalMode = false }

// SED - Set Decimal Flag
func (c *Cpu) SED(AddressingMode) { c.tick(1); c.Flags.DecimalMode = true }

// CLI - Clear Interrupt Disable
func (c *Cpu) CLI(AddressingMode) { c.tick(1); c.Flags.InterruptDisable = false }

// SEI - Set Interrupt Disable
func (c *Cpu) SEI(AddressingMode) { c.tick(1); c.Flags.InterruptDisable = true }

// CLV - Clear Overflow Flag
func (c *Cpu) CLV(AddressingMode) { c.tick(1); c.Flags.Overflow = false }

// NOP - No Operation
func (c *Cpu) NOP(AddressingMode) { c.tick(1) }
