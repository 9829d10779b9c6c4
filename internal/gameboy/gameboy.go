// Package gameboy contains Game Boy hardware constants used by the generator.
package gameboy

// ROMSize is the size of the smallest valid cartridge image, a single
// unbanked 32 KiB ROM.
const ROMSize = 0x8000

// Memory map addresses seen by the CPU at run time.
const (
	VRAMTileData = 0x8000 // tile pattern table in video memory
	TilemapBase  = 0x9800 // background tilemap, 32x32 index bytes
	StackTop     = 0xFFFE // initial stack pointer value
)

// I/O registers, all reachable through the 0xFF00 high page.
const (
	RegLCDC = 0xFF40 // LCD control
	RegSCY  = 0xFF42 // background scroll Y
	RegSCX  = 0xFF43 // background scroll X
	RegLY   = 0xFF44 // current scanline
	RegBGP  = 0xFF47 // background palette
)

// LCDC control bits.
const (
	LCDCBGEnable     = 0x01 // background display on
	LCDCTileData8000 = 0x10 // tile data read from 0x8000
	LCDCLCDEnable    = 0x80 // LCD power
)

// VBlankScanline is the LY value at which the vertical blank period begins.
// Video memory can be rewritten safely while LY reads this value or higher.
const VBlankScanline = 144

// DefaultPalette maps the four colour indexes to shades dark to light
// (11 10 01 00).
const DefaultPalette = 0xE4

// Screen geometry in tiles. The tilemap is 32 tiles wide but only a
// 20x18 window of it is visible.
const (
	ScreenWidthTiles  = 20
	ScreenHeightTiles = 18
	TilemapWidthTiles = 32
)

// RSTVectors lists the ROM offsets of the eight RST instruction targets.
var RSTVectors = []uint16{0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38}

// InterruptVectors lists the ROM offsets of the five interrupt handlers
// (VBlank, LCD status, timer, serial, joypad).
var InterruptVectors = []uint16{0x40, 0x48, 0x50, 0x58, 0x60}
