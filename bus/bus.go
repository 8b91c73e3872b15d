// Package bus wires the CPU, PPU, cartridge mapper, and joypads together
// into the single address space the CPU interpreter executes against.
package bus

import (
	"image/color"

	"gones-core/cartridge"
	"gones-core/cpu"
	"gones-core/joypad"
	"gones-core/mappers"
	"gones-core/ppu"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	ramSize      = 0x0800
	ramMirrorEnd = 0x1FFF
	ppuMirrorEnd = 0x3FFF
	apuIOEnd     = 0x401F // APU and remaining I/O registers: not modeled
	expansionEnd = 0x5FFF // expansion ROM region: not modeled
	sramStart    = 0x6000
	sramEnd      = 0x7FFF
	sramSize     = sramEnd - sramStart + 1

	joypad1Addr = 0x4016
	joypad2Addr = 0x4017
	oamDMAAddr  = 0x4014

	oamDMACycles = 513
)

// Bus is the CPU's memory-mapped view of the console, and also implements
// ebiten.Game so a host can drive it as a window.
type Bus struct {
	ram     [ramSize]uint8
	sram    [sramSize]uint8
	hasSRAM bool
	mapper  mappers.Mapper
	ppu     *ppu.PPU
	cpu     *cpu.CPU
	pad1    joypad.Joypad
	pad2    joypad.Joypad

	frameReady bool
}

// New builds a Bus around an already-selected cartridge mapper.
func New(m mappers.Mapper) *Bus {
	b := &Bus{mapper: m, hasSRAM: m.HasSRAM()}
	b.ppu = ppu.New(m)
	switch m.Mirroring() {
	case cartridge.Vertical:
		b.ppu.SetMirroring(ppu.MIRROR_VERTICAL)
	case cartridge.FourScreen:
		b.ppu.SetMirroring(ppu.MIRROR_FOUR_SCREEN)
	default:
		b.ppu.SetMirroring(ppu.MIRROR_HORIZONTAL)
	}
	b.cpu = cpu.New(b)
	return b
}

// CPU returns the bus's CPU, for hosts that need direct access (tracing,
// debugging, resetting).
func (b *Bus) CPU() *cpu.CPU { return b.cpu }

// Joypad1 and Joypad2 let a host report button state.
func (b *Bus) Joypad1() *joypad.Joypad { return &b.pad1 }
func (b *Bus) Joypad2() *joypad.Joypad { return &b.pad2 }

// Reset points the CPU at the cartridge's reset vector.
func (b *Bus) Reset() { b.cpu.Reset() }

// Read implements cpu.Bus: CPU-visible memory reads.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr <= ramMirrorEnd:
		return b.ram[addr%ramSize]
	case addr <= ppuMirrorEnd:
		return b.ppu.ReadRegister(0x2000 + addr%8)
	case addr == joypad1Addr:
		return b.pad1.Read()
	case addr == joypad2Addr:
		return b.pad2.Read()
	case addr <= apuIOEnd:
		return 0 // APU registers: not modeled
	case addr <= expansionEnd:
		return 0 // cartridge expansion ROM: not modeled
	case addr <= sramEnd:
		if !b.hasSRAM {
			return 0
		}
		return b.sram[addr-sramStart]
	default:
		return b.mapper.PrgRead(addr)
	}
}

// Write implements cpu.Bus: CPU-visible memory writes.
func (b *Bus) Write(addr uint16, val uint8) {
	switch {
	case addr <= ramMirrorEnd:
		b.ram[addr%ramSize] = val
	case addr <= ppuMirrorEnd:
		b.ppu.WriteRegister(0x2000+addr%8, val)
	case addr == oamDMAAddr:
		b.doOAMDMA(val)
	case addr == joypad1Addr:
		// $4016 strobes both pads simultaneously; $4017 is read-only
		// (APU frame counter on real hardware, unmodeled here).
		b.pad1.Write(val)
		b.pad2.Write(val)
	case addr <= apuIOEnd:
		// APU registers: not modeled
	case addr <= expansionEnd:
		// cartridge expansion ROM: not modeled
	case addr <= sramEnd:
		if b.hasSRAM {
			b.sram[addr-sramStart] = val
		}
	default:
		b.mapper.PrgWrite(addr, val)
	}
}

func (b *Bus) doOAMDMA(page uint8) {
	base := uint16(page) << 8
	var buf [256]uint8
	for i := 0; i < 256; i++ {
		buf[i] = b.Read(base + uint16(i))
	}
	b.ppu.WriteOAMDMA(buf)
	b.Tick(oamDMACycles)
}

// Read16/Write16 perform two sequential single-byte bus operations, so
// any MMIO side effects on each byte fire independently.
func (b *Bus) Read16(addr uint16) uint16 {
	lo := uint16(b.Read(addr))
	hi := uint16(b.Read(addr + 1))
	return hi<<8 | lo
}

func (b *Bus) Write16(addr uint16, val uint16) {
	b.Write(addr, uint8(val&0xFF))
	b.Write(addr+1, uint8(val>>8))
}

// Tick implements cpu.Bus: advances the PPU by 3 dots per CPU cycle and
// latches a frame-ready signal when the PPU asserts NMI at the start of
// vertical blank. With PPUCTRL's NMI-enable bit clear, no frame-ready
// signal is latched.
func (b *Bus) Tick(cpuCycles int) {
	if b.ppu.Tick(cpuCycles * 3) {
		b.frameReady = true
	}
}

// PollNMI implements cpu.Bus.
func (b *Bus) PollNMI() bool {
	return b.ppu.PollNMIStatus()
}

// popFrameReady reads and clears the frame-complete latch set by Tick.
func (b *Bus) popFrameReady() bool {
	v := b.frameReady
	b.frameReady = false
	return v
}

// Run drives the CPU's fetch-decode-execute loop, invoking frameCB after
// the instruction during which the PPU raised its vertical-blank NMI (see
// Tick), with the PPU and both joypads so a host can poll input and
// present a frame.
func (b *Bus) Run(frameCB func(p *ppu.PPU, pad1, pad2 *joypad.Joypad)) error {
	return b.cpu.RunWithCallback(func(*cpu.CPU) {
		if b.popFrameReady() {
			frameCB(b.ppu, &b.pad1, &b.pad2)
		}
	})
}

// Halt stops Run at the next instruction boundary.
func (b *Bus) Halt() { b.cpu.Halt() }

// Layout satisfies ebiten.Game; the PPU's framebuffer has a fixed
// resolution regardless of window size.
func (b *Bus) Layout(int, int) (int, int) {
	return ppu.NES_RES_WIDTH, ppu.NES_RES_HEIGHT
}

// Update satisfies ebiten.Game. Emulation runs on its own goroutine via
// Run, driven by CPU cycles rather than by ebiten's frame pump.
func (b *Bus) Update() error { return nil }

// Draw satisfies ebiten.Game. Pixel compositing is out of scope for this
// core, so the window is left at its cleared color; a full PPU would
// blit its framebuffer here instead.
func (b *Bus) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
}
