// Package tiles defines the fixed tile patterns embedded in the ROM.
package tiles

// Size is the byte size of one tile: 8x8 pixels at 2 bits per pixel,
// stored as two bytes per row.
const Size = 16

// Count is the number of tile patterns in the table.
const Count = 5

// Tile is one 8x8 pixel pattern.
type Tile [Size]byte

// The five test patterns, named after what they show on screen.
var (
	// Empty shows colour 0 everywhere.
	Empty = Tile{}

	// Solid shows colour 3 everywhere.
	Solid = Tile{
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	}

	// Checker alternates colours 1 and 2 in a checkerboard.
	Checker = Tile{
		0xAA, 0x55, 0x55, 0xAA, 0xAA, 0x55, 0x55, 0xAA,
		0xAA, 0x55, 0x55, 0xAA, 0xAA, 0x55, 0x55, 0xAA,
	}

	// HStripe alternates solid and empty pixel rows.
	HStripe = Tile{
		0xFF, 0xFF, 0x00, 0x00, 0xFF, 0xFF, 0x00, 0x00,
		0xFF, 0xFF, 0x00, 0x00, 0xFF, 0xFF, 0x00, 0x00,
	}

	// VStripe alternates colour 1 and colour 0 pixel columns.
	VStripe = Tile{
		0xAA, 0x00, 0xAA, 0x00, 0xAA, 0x00, 0xAA, 0x00,
		0xAA, 0x00, 0xAA, 0x00, 0xAA, 0x00, 0xAA, 0x00,
	}
)

// Table returns the tile patterns in their fixed ROM order.
func Table() []Tile {
	return []Tile{Empty, Solid, Checker, HStripe, VStripe}
}

// Data returns the ROM image of the tile table, one tile after another.
func Data() []byte {
	table := Table()
	data := make([]byte, 0, len(table)*Size)
	for _, tile := range table {
		data = append(data, tile[:]...)
	}
	return data
}
