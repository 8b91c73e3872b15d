// Package trace formats nestest-golden-log-style disassembly lines from a
// CPU/bus pair. It never writes to either or ticks the bus; it only reads
// (see Reader for what those reads can disturb).
package trace

import (
	"fmt"
	"strings"

	"gones-core/cpu"
)

// Reader is the read-only subset of bus.Bus a trace line needs. It must
// not be used to drive MMIO side effects (PPU register reads with side
// effects, joypad shift-register reads) — callers should pass a bus whose
// mapped regions beyond RAM/ROM are safe to read idempotently, or accept
// that peeking at live hardware registers may perturb latches exactly as
// a real logic analyzer probing the bus would.
type Reader interface {
	Read(addr uint16) uint8
}

// Line formats one disassembly line for the instruction at c.PC, in the
// traditional three-hex-byte/mnemonic/operand/register-dump layout.
func Line(c *cpu.CPU, b Reader) string {
	opcode := b.Read(c.PC)
	inst := cpu.Opcode(opcode)

	var raw []string
	raw = append(raw, fmt.Sprintf("%02X", opcode))
	for i := uint16(1); inst != nil && i < inst.Len; i++ {
		raw = append(raw, fmt.Sprintf("%02X", b.Read(c.PC+i)))
	}

	mnemonic := "???"
	operand := ""
	if inst != nil {
		mnemonic = inst.Mnemonic
		operand = formatOperand(c, b, inst)
	}

	return fmt.Sprintf(
		"%04X  %-9s %s %-27s A:%02X X:%02X Y:%02X P:%02X SP:%02X",
		c.PC, strings.Join(raw, " "), mnemonic, operand,
		c.A, c.X, c.Y, c.Status, c.SP,
	)
}

func formatOperand(c *cpu.CPU, b Reader, inst *cpu.Instruction) string {
	switch inst.Mode {
	case cpu.Immediate:
		return fmt.Sprintf("#$%02X", b.Read(c.PC+1))
	case cpu.ZeroPage:
		return fmt.Sprintf("$%02X", b.Read(c.PC+1))
	case cpu.ZeroPageX:
		return fmt.Sprintf("$%02X,X", b.Read(c.PC+1))
	case cpu.ZeroPageY:
		return fmt.Sprintf("$%02X,Y", b.Read(c.PC+1))
	case cpu.Absolute:
		return fmt.Sprintf("$%04X", addr16(b, c.PC+1))
	case cpu.AbsoluteX:
		return fmt.Sprintf("$%04X,X", addr16(b, c.PC+1))
	case cpu.AbsoluteY:
		return fmt.Sprintf("$%04X,Y", addr16(b, c.PC+1))
	case cpu.Indirect:
		return fmt.Sprintf("($%04X)", addr16(b, c.PC+1))
	case cpu.IndirectX:
		return fmt.Sprintf("($%02X,X)", b.Read(c.PC+1))
	case cpu.IndirectY:
		return fmt.Sprintf("($%02X),Y", b.Read(c.PC+1))
	case cpu.Accumulator:
		return "A"
	case cpu.Relative:
		offset := int8(b.Read(c.PC + 1))
		target := uint16(int32(c.PC+2) + int32(offset))
		return fmt.Sprintf("$%04X", target)
	default:
		return ""
	}
}

func addr16(b Reader, addr uint16) uint16 {
	lo := uint16(b.Read(addr))
	hi := uint16(b.Read(addr + 1))
	return hi<<8 | lo
}
