package cpu

// AddressingMode identifies how an instruction's operand address is
// computed.
type AddressingMode uint8

const (
	Immediate AddressingMode = iota
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	IndirectX
	IndirectY
	Indirect // JMP (addr) only; reproduces the page-boundary hardware bug
	Accumulator
	Relative
	NoneAddressing // implied
)

// Instruction is one row of the opcode table: a mnemonic, how its operand
// is addressed, its encoded length in bytes, and its base cycle count
// (branches and page-crossings add to this at execution time).
type Instruction struct {
	Mnemonic string
	Mode     AddressingMode
	Len      uint16
	Cycles   int
}

// opcodeTable indexes the 151 official 6502 opcodes by their encoded byte.
// Unused slots are nil and decode to a *DecodeError.
var opcodeTable [256]*Instruction

func op(code uint8, mnemonic string, mode AddressingMode, length uint16, cycles int) {
	if opcodeTable[code] != nil {
		panic("cpu: duplicate opcode registration")
	}
	opcodeTable[code] = &Instruction{Mnemonic: mnemonic, Mode: mode, Len: length, Cycles: cycles}
}

func init() {
	// ADC
	op(0x69, "ADC", Immediate, 2, 2)
	op(0x65, "ADC", ZeroPage, 2, 3)
	op(0x75, "ADC", ZeroPageX, 2, 4)
	op(0x6D, "ADC", Absolute, 3, 4)
	op(0x7D, "ADC", AbsoluteX, 3, 4)
	op(0x79, "ADC", AbsoluteY, 3, 4)
	op(0x61, "ADC", IndirectX, 2, 6)
	op(0x71, "ADC", IndirectY, 2, 5)

	// AND
	op(0x29, "AND", Immediate, 2, 2)
	op(0x25, "AND", ZeroPage, 2, 3)
	op(0x35, "AND", ZeroPageX, 2, 4)
	op(0x2D, "AND", Absolute, 3, 4)
	op(0x3D, "AND", AbsoluteX, 3, 4)
	op(0x39, "AND", AbsoluteY, 3, 4)
	op(0x21, "AND", IndirectX, 2, 6)
	op(0x31, "AND", IndirectY, 2, 5)

	// ASL
	op(0x0A, "ASL", Accumulator, 1, 2)
	op(0x06, "ASL", ZeroPage, 2, 5)
	op(0x16, "ASL", ZeroPageX, 2, 6)
	op(0x0E, "ASL", Absolute, 3, 6)
	op(0x1E, "ASL", AbsoluteX, 3, 7)

	// branches
	op(0x90, "BCC", Relative, 2, 2)
	op(0xB0, "BCS", Relative, 2, 2)
	op(0xF0, "BEQ", Relative, 2, 2)
	op(0x30, "BMI", Relative, 2, 2)
	op(0xD0, "BNE", Relative, 2, 2)
	op(0x10, "BPL", Relative, 2, 2)
	op(0x50, "BVC", Relative, 2, 2)
	op(0x70, "BVS", Relative, 2, 2)

	op(0x24, "BIT", ZeroPage, 2, 3)
	op(0x2C, "BIT", Absolute, 3, 4)

	op(0x00, "BRK", NoneAddressing, 1, 7)

	op(0x18, "CLC", NoneAddressing, 1, 2)
	op(0xD8, "CLD", NoneAddressing, 1, 2)
	op(0x58, "CLI", NoneAddressing, 1, 2)
	op(0xB8, "CLV", NoneAddressing, 1, 2)

	// CMP
	op(0xC9, "CMP", Immediate, 2, 2)
	op(0xC5, "CMP", ZeroPage, 2, 3)
	op(0xD5, "CMP", ZeroPageX, 2, 4)
	op(0xCD, "CMP", Absolute, 3, 4)
	op(0xDD, "CMP", AbsoluteX, 3, 4)
	op(0xD9, "CMP", AbsoluteY, 3, 4)
	op(0xC1, "CMP", IndirectX, 2, 6)
	op(0xD1, "CMP", IndirectY, 2, 5)

	op(0xE0, "CPX", Immediate, 2, 2)
	op(0xE4, "CPX", ZeroPage, 2, 3)
	op(0xEC, "CPX", Absolute, 3, 4)

	op(0xC0, "CPY", Immediate, 2, 2)
	op(0xC4, "CPY", ZeroPage, 2, 3)
	op(0xCC, "CPY", Absolute, 3, 4)

	op(0xC6, "DEC", ZeroPage, 2, 5)
	op(0xD6, "DEC", ZeroPageX, 2, 6)
	op(0xCE, "DEC", Absolute, 3, 6)
	op(0xDE, "DEC", AbsoluteX, 3, 7)

	op(0xCA, "DEX", NoneAddressing, 1, 2)
	op(0x88, "DEY", NoneAddressing, 1, 2)

	// EOR
	op(0x49, "EOR", Immediate, 2, 2)
	op(0x45, "EOR", ZeroPage, 2, 3)
	op(0x55, "EOR", ZeroPageX, 2, 4)
	op(0x4D, "EOR", Absolute, 3, 4)
	op(0x5D, "EOR", AbsoluteX, 3, 4)
	op(0x59, "EOR", AbsoluteY, 3, 4)
	op(0x41, "EOR", IndirectX, 2, 6)
	op(0x51, "EOR", IndirectY, 2, 5)

	op(0xE6, "INC", ZeroPage, 2, 5)
	op(0xF6, "INC", ZeroPageX, 2, 6)
	op(0xEE, "INC", Absolute, 3, 6)
	op(0xFE, "INC", AbsoluteX, 3, 7)

	op(0xE8, "INX", NoneAddressing, 1, 2)
	op(0xC8, "INY", NoneAddressing, 1, 2)

	op(0x4C, "JMP", Absolute, 3, 3)
	op(0x6C, "JMP", Indirect, 3, 5)

	op(0x20, "JSR", Absolute, 3, 6)

	// LDA
	op(0xA9, "LDA", Immediate, 2, 2)
	op(0xA5, "LDA", ZeroPage, 2, 3)
	op(0xB5, "LDA", ZeroPageX, 2, 4)
	op(0xAD, "LDA", Absolute, 3, 4)
	op(0xBD, "LDA", AbsoluteX, 3, 4)
	op(0xB9, "LDA", AbsoluteY, 3, 4)
	op(0xA1, "LDA", IndirectX, 2, 6)
	op(0xB1, "LDA", IndirectY, 2, 5)

	op(0xA2, "LDX", Immediate, 2, 2)
	op(0xA6, "LDX", ZeroPage, 2, 3)
	op(0xB6, "LDX", ZeroPageY, 2, 4)
	op(0xAE, "LDX", Absolute, 3, 4)
	op(0xBE, "LDX", AbsoluteY, 3, 4)

	op(0xA0, "LDY", Immediate, 2, 2)
	op(0xA4, "LDY", ZeroPage, 2, 3)
	op(0xB4, "LDY", ZeroPageX, 2, 4)
	op(0xAC, "LDY", Absolute, 3, 4)
	op(0xBC, "LDY", AbsoluteX, 3, 4)

	op(0x4A, "LSR", Accumulator, 1, 2)
	op(0x46, "LSR", ZeroPage, 2, 5)
	op(0x56, "LSR", ZeroPageX, 2, 6)
	op(0x4E, "LSR", Absolute, 3, 6)
	op(0x5E, "LSR", AbsoluteX, 3, 7)

	op(0xEA, "NOP", NoneAddressing, 1, 2)

	// ORA
	op(0x09, "ORA", Immediate, 2, 2)
	op(0x05, "ORA", ZeroPage, 2, 3)
	op(0x15, "ORA", ZeroPageX, 2, 4)
	op(0x0D, "ORA", Absolute, 3, 4)
	op(0x1D, "ORA", AbsoluteX, 3, 4)
	op(0x19, "ORA", AbsoluteY, 3, 4)
	op(0x01, "ORA", IndirectX, 2, 6)
	op(0x11, "ORA", IndirectY, 2, 5)

	op(0x48, "PHA", NoneAddressing, 1, 3)
	op(0x08, "PHP", NoneAddressing, 1, 3)
	op(0x68, "PLA", NoneAddressing, 1, 4)
	op(0x28, "PLP", NoneAddressing, 1, 4)

	op(0x2A, "ROL", Accumulator, 1, 2)
	op(0x26, "ROL", ZeroPage, 2, 5)
	op(0x36, "ROL", ZeroPageX, 2, 6)
	op(0x2E, "ROL", Absolute, 3, 6)
	op(0x3E, "ROL", AbsoluteX, 3, 7)

	op(0x6A, "ROR", Accumulator, 1, 2)
	op(0x66, "ROR", ZeroPage, 2, 5)
	op(0x76, "ROR", ZeroPageX, 2, 6)
	op(0x6E, "ROR", Absolute, 3, 6)
	op(0x7E, "ROR", AbsoluteX, 3, 7)

	op(0x40, "RTI", NoneAddressing, 1, 6)
	op(0x60, "RTS", NoneAddressing, 1, 6)

	// SBC
	op(0xE9, "SBC", Immediate, 2, 2)
	op(0xE5, "SBC", ZeroPage, 2, 3)
	op(0xF5, "SBC", ZeroPageX, 2, 4)
	op(0xED, "SBC", Absolute, 3, 4)
	op(0xFD, "SBC", AbsoluteX, 3, 4)
	op(0xF9, "SBC", AbsoluteY, 3, 4)
	op(0xE1, "SBC", IndirectX, 2, 6)
	op(0xF1, "SBC", IndirectY, 2, 5)

	op(0x38, "SEC", NoneAddressing, 1, 2)
	op(0xF8, "SED", NoneAddressing, 1, 2)
	op(0x78, "SEI", NoneAddressing, 1, 2)

	op(0x85, "STA", ZeroPage, 2, 3)
	op(0x95, "STA", ZeroPageX, 2, 4)
	op(0x8D, "STA", Absolute, 3, 4)
	op(0x9D, "STA", AbsoluteX, 3, 5)
	op(0x99, "STA", AbsoluteY, 3, 5)
	op(0x81, "STA", IndirectX, 2, 6)
	op(0x91, "STA", IndirectY, 2, 6)

	op(0x86, "STX", ZeroPage, 2, 3)
	op(0x96, "STX", ZeroPageY, 2, 4)
	op(0x8E, "STX", Absolute, 3, 4)

	op(0x84, "STY", ZeroPage, 2, 3)
	op(0x94, "STY", ZeroPageX, 2, 4)
	op(0x8C, "STY", Absolute, 3, 4)

	op(0xAA, "TAX", NoneAddressing, 1, 2)
	op(0xA8, "TAY", NoneAddressing, 1, 2)
	op(0xBA, "TSX", NoneAddressing, 1, 2)
	op(0x8A, "TXA", NoneAddressing, 1, 2)
	op(0x9A, "TXS", NoneAddressing, 1, 2)
	op(0x98, "TYA", NoneAddressing, 1, 2)
}
