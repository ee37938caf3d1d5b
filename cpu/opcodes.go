package cpu

// An Opcode pairs a mnemonic's implementation with the AddressingMode a
// particular byte value selects. Multiple byte values execute the same
// instruction, differing only in how the operand is located.
type Opcode struct {
	// Do performs the instruction, charging its own cycles through the
	// Cpu's fetch/read/write helpers.
	Do func(c *Cpu, mode AddressingMode)

	Mode AddressingMode

	// Cycles is the base cost before page-cross and taken-branch
	// penalties; informational (the debugger shows it), execution derives
	// the true cost from the accesses it performs.
	Cycles byte

	Name string
}

// Opcodes is the closed table of the 151 documented byte values. A fetch of
// any byte outside the table surfaces as an UnknownOpcodeError; undocumented
// ("illegal") opcodes are deliberately absent.
//
// https://www.nesdev.org/obelisk-6502-guide/reference.html
var Opcodes = map[byte]Opcode{
	// load
	0xA9: {Do: (*Cpu).LDA, Name: "LDA", Cycles: 2, Mode: Immediate},
	0xA5: {Do: (*Cpu).LDA, Name: "LDA", Cycles: 3, Mode: ZeroPage},
	0xB5: {Do: (*Cpu).LDA, Name: "LDA", Cycles: 4, Mode: ZeroPageX},
	0xAD: {Do: (*Cpu).LDA, Name: "LDA", Cycles: 4, Mode: Absolute},
	0xBD: {Do: (*Cpu).LDA, Name: "LDA", Cycles: 4, Mode: AbsoluteX},
	0xB9: {Do: (*Cpu).LDA, Name: "LDA", Cycles: 4, Mode: AbsoluteY},
	0xA1: {Do: (*Cpu).LDA, Name: "LDA", Cycles: 6, Mode: IndirectX},
	0xB1: {Do: (*Cpu).LDA, Name: "LDA", Cycles: 5, Mode: IndirectY},
	0xA2: {Do: (*Cpu).LDX, Name: "LDX", Cycles: 2, Mode: Immediate},
	0xA6: {Do: (*Cpu).LDX, Name: "LDX", Cycles: 3, Mode: ZeroPage},
	0xB6: {Do: (*Cpu).LDX, Name: "LDX", Cycles: 4, Mode: ZeroPageY},
	0xAE: {Do: (*Cpu).LDX, Name: "LDX", Cycles: 4, Mode: Absolute},
	0xBE: {Do: (*Cpu).LDX, Name: "LDX", Cycles: 4, Mode: AbsoluteY},
	0xA0: {Do: (*Cpu).LDY, Name: "LDY", Cycles: 2, Mode: Immediate},
	0xA4: {Do: (*Cpu).LDY, Name: "LDY", Cycles: 3, Mode: ZeroPage},
	0xB4: {Do: (*Cpu).LDY, Name: "LDY", Cycles: 4, Mode: ZeroPageX},
	0xAC: {Do: (*Cpu).LDY, Name: "LDY", Cycles: 4, Mode: Absolute},
	0xBC: {Do: (*Cpu).LDY, Name: "LDY", Cycles: 4, Mode: AbsoluteX},

	// store
	0x85: {Do: (*Cpu).STA, Name: "STA", Cycles: 3, Mode: ZeroPage},
	0x95: {Do: (*Cpu).STA, Name: "STA", Cycles: 4, Mode: ZeroPageX},
	0x8D: {Do: (*Cpu).STA, Name: "STA", Cycles: 4, Mode: Absolute},
	0x9D: {Do: (*Cpu).STA, Name: "STA", Cycles: 5, Mode: AbsoluteX},
	0x99: {Do: (*Cpu).STA, Name: "STA", Cycles: 5, Mode: AbsoluteY},
	0x81: {Do: (*Cpu).STA, Name: "STA", Cycles: 6, Mode: IndirectX},
	0x91: {Do: (*Cpu).STA, Name: "STA", Cycles: 6, Mode: IndirectY},
	0x86: {Do: (*Cpu).STX, Name: "STX", Cycles: 3, Mode: ZeroPage},
	0x96: {Do: (*Cpu).STX, Name: "STX", Cycles: 4, Mode: ZeroPageY},
	0x8E: {Do: (*Cpu).STX, Name: "STX", Cycles: 4, Mode: Absolute},
	0x84: {Do: (*Cpu).STY, Name: "STY", Cycles: 3, Mode: ZeroPage},
	0x94: {Do: (*Cpu).STY, Name: "STY", Cycles: 4, Mode: ZeroPageX},
	0x8C: {Do: (*Cpu).STY, Name: "STY", Cycles: 4, Mode: Absolute},

	// transfer
	0xAA: {Do: (*Cpu).TAX, Name: "TAX", Cycles: 2, Mode: Implied},
	0xA8: {Do: (*Cpu).TAY, Name: "TAY", Cycles: 2, Mode: Implied},
	0x8A: {Do: (*Cpu).TXA, Name: "TXA", Cycles: 2, Mode: Implied},
	0x98: {Do: (*Cpu).TYA, Name: "TYA", Cycles: 2, Mode: Implied},
	0xBA: {Do: (*Cpu).TSX, Name: "TSX", Cycles: 2, Mode: Implied},
	0x9A: {Do: (*Cpu).TXS, Name: "TXS", Cycles: 2, Mode: Implied},

	// stack
	0x48: {Do: (*Cpu).PHA, Name: "PHA", Cycles: 3, Mode: Implied},
	0x08: {Do: (*Cpu).PHP, Name: "PHP", Cycles: 3, Mode: Implied},
	0x68: {Do: (*Cpu).PLA, Name: "PLA", Cycles: 4, Mode: Implied},
	0x28: {Do: (*Cpu).PLP, Name: "PLP", Cycles: 4, Mode: Implied},

	// logical
	0x29: {Do: (*Cpu).AND, Name: "AND", Cycles: 2, Mode: Immediate},
	0x25: {Do: (*Cpu).AND, Name: "AND", Cycles: 3, Mode: ZeroPage},
	0x35: {Do: (*Cpu).AND, Name: "AND", Cycles: 4, Mode: ZeroPageX},
	0x2D: {Do: (*Cpu).AND, Name: "AND", Cycles: 4, Mode: Absolute},
	0x3D: {Do: (*Cpu).AND, Name: "AND", Cycles: 4, Mode: AbsoluteX},
	0x39: {Do: (*Cpu).AND, Name: "AND", Cycles: 4, Mode: AbsoluteY},
	0x21: {Do: (*Cpu).AND, Name: "AND", Cycles: 6, Mode: IndirectX},
	0x31: {Do: (*Cpu).AND, Name: "AND", Cycles: 5, Mode: IndirectY},
	0x49: {Do: (*Cpu).EOR, Name: "EOR", Cycles: 2, Mode: Immediate},
	0x45: {Do: (*Cpu).EOR, Name: "EOR", Cycles: 3, Mode: ZeroPage},
	0x55: {Do: (*Cpu).EOR, Name: "EOR", Cycles: 4, Mode: ZeroPageX},
	0x4D: {Do: (*Cpu).EOR, Name: "EOR", Cycles: 4, Mode: Absolute},
	0x5D: {Do: (*Cpu).EOR, Name: "EOR", Cycles: 4, Mode: AbsoluteX},
	0x59: {Do: (*Cpu).EOR, Name: "EOR", Cycles: 4, Mode: AbsoluteY},
	0x41: {Do: (*Cpu).EOR, Name: "EOR", Cycles: 6, Mode: IndirectX},
	0x51: {Do: (*Cpu).EOR, Name: "EOR", Cycles: 5, Mode: IndirectY},
	0x09: {Do: (*Cpu).ORA, Name: "ORA", Cycles: 2, Mode: Immediate},
	0x05: {Do: (*Cpu).ORA, Name: "ORA", Cycles: 3, Mode: ZeroPage},
	0x15: {Do: (*Cpu).ORA, Name: "ORA", Cycles: 4, Mode: ZeroPageX},
	0x0D: {Do: (*Cpu).ORA, Name: "ORA", Cycles: 4, Mode: Absolute},
	0x1D: {Do: (*Cpu).ORA, Name: "ORA", Cycles: 4, Mode: AbsoluteX},
	0x19: {Do: (*Cpu).ORA, Name: "ORA", Cycles: 4, Mode: AbsoluteY},
	0x01: {Do: (*Cpu).ORA, Name: "ORA", Cycles: 6, Mode: IndirectX},
	0x11: {Do: (*Cpu).ORA, Name: "ORA", Cycles: 5, Mode: IndirectY},
	0x24: {Do: (*Cpu).BIT, Name: "BIT", Cycles: 3, Mode: ZeroPage},
	0x2C: {Do: (*Cpu).BIT, Name: "BIT", Cycles: 4, Mode: Absolute},

	// arithmetic
	0x69: {Do: (*Cpu).ADC, Name: "ADC", Cycles: 2, Mode: Immediate},
	0x65: {Do: (*Cpu).ADC, Name: "ADC", Cycles: 3, Mode: ZeroPage},
	0x75: {Do: (*Cpu).ADC, Name: "ADC", Cycles: 4, Mode: ZeroPageX},
	0x6D: {Do: (*Cpu).ADC, Name: "ADC", Cycles: 4, Mode: Absolute},
	0x7D: {Do: (*Cpu).ADC, Name: "ADC", Cycles: 4, Mode: AbsoluteX},
	0x79: {Do: (*Cpu).ADC, Name: "ADC", Cycles: 4, Mode: AbsoluteY},
	0x61: {Do: (*Cpu).ADC, Name: "ADC", Cycles: 6, Mode: IndirectX},
	0x71: {Do: (*Cpu).ADC, Name: "ADC", Cycles: 5, Mode: IndirectY},
	0xE9: {Do: (*Cpu).SBC, Name: "SBC", Cycles: 2, Mode: Immediate},
	0xE5: {Do: (*Cpu).SBC, Name: "SBC", Cycles: 3, Mode: ZeroPage},
	0xF5: {Do: (*Cpu).SBC, Name: "SBC", Cycles: 4, Mode: ZeroPageX},
	0xED: {Do: (*Cpu).SBC, Name: "SBC", Cycles: 4, Mode: Absolute},
	0xFD: {Do: (*Cpu).SBC, Name: "SBC", Cycles: 4, Mode: AbsoluteX},
	0xF9: {Do: (*Cpu).SBC, Name: "SBC", Cycles: 4, Mode: AbsoluteY},
	0xE1: {Do: (*Cpu).SBC, Name: "SBC", Cycles: 6, Mode: IndirectX},
	0xF1: {Do: (*Cpu).SBC, Name: "SBC", Cycles: 5, Mode: IndirectY},

	// compare
	0xC9: {Do: (*Cpu).CMP, Name: "CMP", Cycles: 2, Mode: Immediate},
	0xC5: {Do: (*Cpu).CMP, Name: "CMP", Cycles: 3, Mode: ZeroPage},
	0xD5: {Do: (*Cpu).CMP, Name: "CMP", Cycles: 4, Mode: ZeroPageX},
	0xCD: {Do: (*Cpu).CMP, Name: "CMP", Cycles: 4, Mode: Absolute},
	0xDD: {Do: (*Cpu).CMP, Name: "CMP", Cycles: 4, Mode: AbsoluteX},
	0xD9: {Do: (*Cpu).CMP, Name: "CMP", Cycles: 4, Mode: AbsoluteY},
	0xC1: {Do: (*Cpu).CMP, Name: "CMP", Cycles: 6, Mode: IndirectX},
	0xD1: {Do: (*Cpu).CMP, Name: "CMP", Cycles: 5, Mode: IndirectY},
	0xE0: {Do: (*Cpu).CPX, Name: "CPX", Cycles: 2, Mode: Immediate},
	0xE4: {Do: (*Cpu).CPX, Name: "CPX", Cycles: 3, Mode: ZeroPage},
	0xEC: {Do: (*Cpu).CPX, Name: "CPX", Cycles: 4, Mode: Absolute},
	0xC0: {Do: (*Cpu).CPY, Name: "CPY", Cycles: 2, Mode: Immediate},
	0xC4: {Do: (*Cpu).CPY, Name: "CPY", Cycles: 3, Mode: ZeroPage},
	0xCC: {Do: (*Cpu).CPY, Name: "CPY", Cycles: 4, Mode: Absolute},

	// shifts and rotates
	0x0A: {Do: (*Cpu).ASL, Name: "ASL", Cycles: 2, Mode: Accumulator},
	0x06: {Do: (*Cpu).ASL, Name: "ASL", Cycles: 5, Mode: ZeroPage},
	0x16: {Do: (*Cpu).ASL, Name: "ASL", Cycles: 6, Mode: ZeroPageX},
	0x0E: {Do: (*Cpu).ASL, Name: "ASL", Cycles: 6, Mode: Absolute},
	0x1E: {Do: (*Cpu).ASL, Name: "ASL", Cycles: 7, Mode: AbsoluteX},
	0x4A: {Do: (*Cpu).LSR, Name: "LSR", Cycles: 2, Mode: Accumulator},
	0x46: {Do: (*Cpu).LSR, Name: "LSR", Cycles: 5, Mode: ZeroPage},
	0x56: {Do: (*Cpu).LSR, Name: "LSR", Cycles: 6, Mode: ZeroPageX},
	0x4E: {Do: (*Cpu).LSR, Name: "LSR", Cycles: 6, Mode: Absolute},
	0x5E: {Do: (*Cpu).LSR, Name: "LSR", Cycles: 7, Mode: AbsoluteX},
	0x2A: {Do: (*Cpu).ROL, Name: "ROL", Cycles: 2, Mode: Accumulator},
	0x26: {Do: (*Cpu).ROL, Name: "ROL", Cycles: 5, Mode: ZeroPage},
	0x36: {Do: (*Cpu).ROL, Name: "ROL", Cycles: 6, Mode: ZeroPageX},
	0x2E: {Do: (*Cpu).ROL, Name: "ROL", Cycles: 6, Mode: Absolute},
	0x3E: {Do: (*Cpu).ROL, Name: "ROL", Cycles: 7, Mode: AbsoluteX},
	0x6A: {Do: (*Cpu).ROR, Name: "ROR", Cycles: 2, Mode: Accumulator},
	0x66: {Do: (*Cpu).ROR, Name: "ROR", Cycles: 5, Mode: ZeroPage},
	0x76: {Do: (*Cpu).ROR, Name: "ROR", Cycles: 6, Mode: ZeroPageX},
	0x6E: {Do: (*Cpu).ROR, Name: "ROR", Cycles: 6, Mode: Absolute},
	0x7E: {Do: (*Cpu).ROR, Name: "ROR", Cycles: 7, Mode: AbsoluteX},

	// increment, decrement
	0xE6: {Do: (*Cpu).INC, Name: "INC", Cycles: 5, Mode: ZeroPage},
	0xF6: {Do: (*Cpu).INC, Name: "INC", Cycles: 6, Mode: ZeroPageX},
	0xEE: {Do: (*Cpu).INC, Name: "INC", Cycles: 6, Mode: Absolute},
	0xFE: {Do: (*Cpu).INC, Name: "INC", Cycles: 7, Mode: AbsoluteX},
	0xC6: {Do: (*Cpu).DEC, Name: "DEC", Cycles: 5, Mode: ZeroPage},
	0xD6: {Do: (*Cpu).DEC, Name: "DEC", Cycles: 6, Mode: ZeroPageX},
	0xCE: {Do: (*Cpu).DEC, Name: "DEC", Cycles: 6, Mode: Absolute},
	0xDE: {Do: (*Cpu).DEC, Name: "DEC", Cycles: 7, Mode: AbsoluteX},
	0xE8: {Do: (*Cpu).INX, Name: "INX", Cycles: 2, Mode: Implied},
	0xC8: {Do: (*Cpu).INY, Name: "INY", Cycles: 2, Mode: Implied},
	0xCA: {Do: (*Cpu).DEX, Name: "DEX", Cycles: 2, Mode: Implied},
	0x88: {Do: (*Cpu).DEY, Name: "DEY", Cycles: 2, Mode: Implied},

	// branch
	0x10: {Do: (*Cpu).BPL, Name: "BPL", Cycles: 2, Mode: Relative},
	0x30: {Do: (*Cpu).BMI, Name: "BMI", Cycles: 2, Mode: Relative},
	0x50: {Do: (*Cpu).BVC, Name: "BVC", Cycles: 2, Mode: Relative},
	0x70: {Do: (*Cpu).BVS, Name: "BVS", Cycles: 2, Mode: Relative},
	0x90: {Do: (*Cpu).BCC, Name: "BCC", Cycles: 2, Mode: Relative},
	0xB0: {Do: (*Cpu).BCS, Name: "BCS", Cycles: 2, Mode: Relative},
	0xD0: {Do: (*Cpu).BNE, Name: "BNE", Cycles: 2, Mode: Relative},
	0xF0: {Do: (*Cpu).BEQ, Name: "BEQ", Cycles: 2, Mode: Relative},

	// jumps and subroutines
	0x4C: {Do: (*Cpu).JMP, Name: "JMP", Cycles: 3, Mode: Absolute},
	0x6C: {Do: (*Cpu).JMP, Name: "JMP", Cycles: 5, Mode: Indirect},
	0x20: {Do: (*Cpu).JSR, Name: "JSR", Cycles: 6, Mode: Absolute},
	0x60: {Do: (*Cpu).RTS, Name: "RTS", Cycles: 6, Mode: Implied},

	// status flag changes
	0x18: {Do: (*Cpu).CLC, Name: "CLC", Cycles: 2, Mode: Implied},
	0x38: {Do: (*Cpu).SEC, Name: "SEC", Cycles: 2, Mode: Implied},
	0x58: {Do: (*Cpu).CLI, Name: "CLI", Cycles: 2, Mode: Implied},
	0x78: {Do: (*Cpu).SEI, Name: "SEI", Cycles: 2, Mode: Implied},
	0xB8: {Do: (*Cpu).CLV, Name: "CLV", Cycles: 2, Mode: Implied},
	0xD8: {Do: (*Cpu).CLD, Name: "CLD", Cycles: 2, Mode: Implied},
	0xF8: {Do: (*Cpu).SED, Name: "SED", Cycles: 2, Mode: Implied},

	// system
	0xEA: {Do: (*Cpu).NOP, Name: "NOP", Cycles: 2, Mode: Implied},
	0x00: {Do: (*Cpu).BRK, Name: "BRK", Cycles: 7, Mode: Implied},
	0x40: {Do: (*Cpu).RTI, Name: "RTI", Cycles: 6, Mode: Implied},
}
