package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"gones-core/bus"
	"gones-core/cartridge"
	"gones-core/joypad"
	"gones-core/mappers"
	"gones-core/ppu"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	romFile  = flag.String("nes_rom", "", "Path to an iNES ROM to run.")
	headless = flag.Bool("headless", false, "Run the emulation without opening a window (for golden-log/CI runs).")
)

var padKeys = map[int]ebiten.Key{
	int(joypad.ButtonA):      ebiten.KeyA,
	int(joypad.ButtonB):      ebiten.KeyB,
	int(joypad.ButtonSelect): ebiten.KeySpace,
	int(joypad.ButtonStart):  ebiten.KeyEnter,
	int(joypad.ButtonUp):     ebiten.KeyUp,
	int(joypad.ButtonDown):   ebiten.KeyDown,
	int(joypad.ButtonLeft):   ebiten.KeyLeft,
	int(joypad.ButtonRight):  ebiten.KeyRight,
}

func main() {
	flag.Parse()

	cart, err := cartridge.Load(*romFile)
	if err != nil {
		log.Fatalf("invalid ROM: %v", err)
	}

	m, err := mappers.Get(cart)
	if err != nil {
		log.Fatalf("couldn't select mapper: %v", err)
	}

	b := bus.New(m)
	b.Reset()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigQuit := make(chan os.Signal, 1)
	signal.Notify(sigQuit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigQuit:
			b.Halt()
		case <-ctx.Done():
		}
	}()

	go func() {
		if err := b.Run(func(p *ppu.PPU, pad1, pad2 *joypad.Joypad) {
			pollInput(pad1)
			pollInput(pad2)
		}); err != nil {
			log.Printf("emulation stopped: %v", err)
		}
		cancel()
	}()

	if *headless {
		<-ctx.Done()
		os.Exit(0)
	}

	ebiten.SetWindowSize(ppu.NES_RES_WIDTH*2, ppu.NES_RES_HEIGHT*2)
	ebiten.SetWindowTitle("gones-core")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(b); err != nil {
		log.Fatal(err)
	}

	b.Halt()
	os.Exit(0)
}

func pollInput(pad *joypad.Joypad) {
	for bit, key := range padKeys {
		pad.SetButtonPressedStatus(joypad.Button(bit), ebiten.IsKeyPressed(key))
	}
}
