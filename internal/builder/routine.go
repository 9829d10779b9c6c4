package builder

import (
	"github.com/retroenv/gbgfxgen/internal/gameboy"
	"github.com/retroenv/gbgfxgen/internal/sm83"
	"github.com/retroenv/gbgfxgen/internal/tiles"
)

// tileIndexMask limits the tile index written into the tilemap.
const tileIndexMask = 0x04

// lcdcOn re-enables the display with the background visible and tile data
// read from 0x8000.
const lcdcOn = gameboy.LCDCLCDEnable | gameboy.LCDCTileData8000 | gameboy.LCDCBGEnable

// Routine assembles the test routine that runs on the handheld: it waits
// for the vertical blank, disables the display, copies the tile table into
// video memory, fills the visible tilemap region, programs palette and
// scroll registers, re-enables the display and then polls the scanline
// register forever. Branch displacements are resolved from labels.
func Routine() ([]byte, error) {
	a := sm83.New()

	a.LoadSPImm(gameboy.StackTop)
	a.DisableInterrupts()

	// busy-wait until the vertical blank period starts
	a.Label("wait_vblank")
	a.LoadAHigh(gameboy.RegLY)
	a.CompareImm(gameboy.VBlankScanline)
	a.JumpRelativeNZ("wait_vblank")

	// the display has to be off while video memory is rewritten
	a.LoadAImm(0)
	a.StoreAHigh(gameboy.RegLCDC)

	// copy the tile table into video memory, counted backwards in BC
	a.LoadHLImm(gameboy.VRAMTileData)
	a.LoadDEImm(TileDataOffset)
	a.LoadBCImm(tiles.Count * tiles.Size)

	a.Label("copy_loop")
	a.LoadAFromDE()
	a.StoreAToHLInc()
	a.IncDE()
	a.DecBC()
	a.LoadAFromB()
	a.OrC()
	a.JumpRelativeNZ("copy_loop")

	// fill the visible 20x18 tilemap region with a repeating index pattern
	a.LoadHLImm(gameboy.TilemapBase)
	a.LoadBImm(gameboy.ScreenHeightTiles)

	a.Label("row_loop")
	a.LoadCImm(gameboy.ScreenWidthTiles)
	a.LoadDImm(0)

	a.Label("col_loop")
	a.LoadAFromD()
	a.AndImm(tileIndexMask)
	a.StoreAToHLInc()
	a.IncD()
	a.DecC()
	a.JumpRelativeNZ("col_loop")

	// skip the tilemap columns outside the visible region
	a.LoadDEImm(gameboy.TilemapWidthTiles - gameboy.ScreenWidthTiles)
	a.AddHLDE()
	a.DecB()
	a.JumpRelativeNZ("row_loop")

	a.LoadAImm(gameboy.DefaultPalette)
	a.StoreAHigh(gameboy.RegBGP)

	a.LoadAImm(0)
	a.StoreAHigh(gameboy.RegSCY)
	a.StoreAHigh(gameboy.RegSCX)

	a.LoadAImm(lcdcOn)
	a.StoreAHigh(gameboy.RegLCDC)

	// poll the scanline register forever, alternating on the vertical
	// blank boundary once per frame
	a.Label("main_loop")
	a.LoadAHigh(gameboy.RegLY)
	a.CompareImm(gameboy.VBlankScanline)
	a.JumpRelativeNZ("main_loop")

	a.Label("wait_vblank_end")
	a.LoadAHigh(gameboy.RegLY)
	a.CompareImm(gameboy.VBlankScanline)
	a.JumpRelativeZ("wait_vblank_end")

	a.JumpRelative("main_loop")

	return a.Assemble()
}
