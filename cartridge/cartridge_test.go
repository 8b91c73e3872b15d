package cartridge

import "testing"

func buildHeader(prgBanks, chrBanks, flags6, flags7 uint8) []uint8 {
	h := make([]uint8, headerSize)
	copy(h[0:4], []uint8{'N', 'E', 'S', 0x1A})
	h[4] = prgBanks
	h[5] = chrBanks
	h[6] = flags6
	h[7] = flags7
	return h
}

func TestNewRejectsBadMagic(t *testing.T) {
	data := buildHeader(1, 1, 0, 0)
	data[0] = 'X'
	if _, err := New(data); err != ErrBadMagic {
		t.Fatalf("got err %v, want ErrBadMagic", err)
	}
}

func TestNewRejectsINes2(t *testing.T) {
	data := buildHeader(1, 1, 0, 0x08)
	if _, err := New(data); err != ErrUnsupportedVersion {
		t.Fatalf("got err %v, want ErrUnsupportedVersion", err)
	}
}

func TestNewParsesNROM(t *testing.T) {
	data := buildHeader(2, 1, 0, 0)
	data = append(data, make([]uint8, 2*prgBankSize+chrBankSize)...)
	c, err := New(data)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.MapperID() != 0 {
		t.Errorf("mapperID = %d, want 0", c.MapperID())
	}
	if c.NumPRGBanks() != 2 {
		t.Errorf("NumPRGBanks = %d, want 2", c.NumPRGBanks())
	}
	if len(c.CHR) != chrBankSize {
		t.Errorf("len(CHR) = %d, want %d", len(c.CHR), chrBankSize)
	}
}

func TestNewAllocatesChrRamWhenZeroBanks(t *testing.T) {
	data := buildHeader(1, 0, 0, 0)
	data = append(data, make([]uint8, prgBankSize)...)
	c, err := New(data)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if len(c.CHR) != chrBankSize {
		t.Errorf("len(CHR) = %d, want %d (CHR-RAM)", len(c.CHR), chrBankSize)
	}
}

func TestNewDetectsVerticalMirroring(t *testing.T) {
	data := buildHeader(1, 1, 0x01, 0)
	data = append(data, make([]uint8, prgBankSize+chrBankSize)...)
	c, err := New(data)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Mirroring() != Vertical {
		t.Errorf("Mirroring = %v, want Vertical", c.Mirroring())
	}
}

func TestNewSkipsTrainer(t *testing.T) {
	data := buildHeader(1, 1, 0x04, 0)
	data = append(data, make([]uint8, trainerSize)...)
	prg := make([]uint8, prgBankSize)
	prg[0] = 0xEA
	data = append(data, prg...)
	data = append(data, make([]uint8, chrBankSize)...)

	c, err := New(data)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.PRG[0] != 0xEA {
		t.Errorf("PRG[0] = %#x, want 0xEA (trainer should have been skipped)", c.PRG[0])
	}
}

func TestNewRejectsTruncatedPRG(t *testing.T) {
	data := buildHeader(2, 1, 0, 0)
	data = append(data, make([]uint8, prgBankSize)...) // only one bank present
	if _, err := New(data); err == nil {
		t.Fatal("expected error for truncated PRG data")
	}
}
