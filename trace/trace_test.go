package trace

import (
	"strings"
	"testing"

	"gones-core/cpu"
)

type traceBus struct {
	mem [0x10000]uint8
}

func (b *traceBus) Read(addr uint16) uint8       { return b.mem[addr] }
func (b *traceBus) Write(addr uint16, val uint8) { b.mem[addr] = val }
func (b *traceBus) Tick(int)                     {}
func (b *traceBus) PollNMI() bool                 { return false }

func TestLineFormatsImmediateLoad(t *testing.T) {
	b := &traceBus{}
	b.mem[0x0600] = 0xA9
	b.mem[0x0601] = 0x10
	c := cpu.New(b)
	c.Load([]uint8{0xA9, 0x10})
	c.Reset()

	line := Line(c, b)
	if !strings.Contains(line, "A9 10") {
		t.Errorf("line %q missing raw bytes", line)
	}
	if !strings.Contains(line, "LDA") {
		t.Errorf("line %q missing mnemonic", line)
	}
	if !strings.Contains(line, "#$10") {
		t.Errorf("line %q missing immediate operand", line)
	}
}

func TestLineFormatsUnknownOpcode(t *testing.T) {
	b := &traceBus{}
	c := cpu.New(b)
	c.Load([]uint8{0x02})
	c.Reset()

	line := Line(c, b)
	if !strings.Contains(line, "???") {
		t.Errorf("line %q should mark unknown opcode", line)
	}
}

func TestLineShowsRegisters(t *testing.T) {
	b := &traceBus{}
	c := cpu.New(b)
	c.Load([]uint8{0xA9, 0x42})
	c.Reset()

	line := Line(c, b)
	if !strings.Contains(line, "A:00") {
		t.Errorf("line %q should show A before the instruction executes", line)
	}
}
