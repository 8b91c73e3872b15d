package mappers

import "gones-core/cartridge"

// dummy is a flat 64KiB address space used as a PRG/CHR fixture in tests
// that don't need real mapper bank-switching semantics.
type dummy struct {
	baseMapper
	prg [0x10000]uint8
	chr [0x10000]uint8
}

// Dummy is a ready-to-use fixture mapper for tests.
var Dummy = newDummy()

func newDummy() *dummy {
	return &dummy{baseMapper: newBaseMapper("dummy", &cartridge.Cartridge{})}
}

func (d *dummy) PrgRead(addr uint16) uint8       { return d.prg[addr] }
func (d *dummy) PrgWrite(addr uint16, val uint8) { d.prg[addr] = val }
func (d *dummy) ChrRead(addr uint16) uint8       { return d.chr[addr] }
func (d *dummy) ChrWrite(addr uint16, val uint8) { d.chr[addr] = val }
func (d *dummy) Mirroring() cartridge.Mirroring  { return cartridge.Horizontal }
