// Package mappers implements the cartridge address-decoding boards
// ("mappers") referenced numerically by the iNES header.
package mappers

import (
	"fmt"

	"gones-core/cartridge"
)

// allMappers is a global registry of mapper constructors, keyed by iNES
// mapper id.
var allMappers = map[uint8]func(*cartridge.Cartridge) Mapper{}

// RegisterMapper installs the constructor for a mapper id. Panics on a
// duplicate registration, matching the package's init-time-only usage.
func RegisterMapper(id uint8, ctor func(*cartridge.Cartridge) Mapper) {
	if _, ok := allMappers[id]; ok {
		panic(fmt.Sprintf("mappers: id %d already registered", id))
	}
	allMappers[id] = ctor
}

// Get builds the mapper a cartridge's header asks for.
func Get(c *cartridge.Cartridge) (Mapper, error) {
	ctor, ok := allMappers[c.MapperID()]
	if !ok {
		return nil, fmt.Errorf("mappers: unknown mapper id %d", c.MapperID())
	}
	return ctor(c), nil
}

// Mapper decodes CPU and PPU addresses against a cartridge's PRG/CHR banks.
type Mapper interface {
	Name() string
	PrgRead(addr uint16) uint8
	PrgWrite(addr uint16, val uint8)
	ChrRead(addr uint16) uint8
	ChrWrite(addr uint16, val uint8)
	Mirroring() cartridge.Mirroring
	HasSRAM() bool
}

// baseMapper factors out the bits every mapper shares: a name and a handle
// on the parsed cartridge for mirroring queries.
type baseMapper struct {
	name string
	cart *cartridge.Cartridge
}

func newBaseMapper(name string, c *cartridge.Cartridge) baseMapper {
	return baseMapper{name: name, cart: c}
}

func (bm baseMapper) Name() string                   { return bm.name }
func (bm baseMapper) Mirroring() cartridge.Mirroring { return bm.cart.Mirroring() }
func (bm baseMapper) HasSRAM() bool                  { return bm.cart.HasSRAM() }
