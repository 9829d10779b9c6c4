// Package rom provides the fixed size cartridge image buffer.
package rom

import (
	"fmt"
	"os"

	"github.com/retroenv/gbgfxgen/internal/gameboy"
)

// Size of the cartridge image in bytes.
const Size = gameboy.ROMSize

// Image is a zero initialised cartridge image of fixed size. All writes
// happen at explicit offsets and are bounds checked, the buffer never
// grows or shrinks.
type Image struct {
	data [Size]byte
}

// New creates a new zero filled image.
func New() *Image {
	return &Image{}
}

// WriteAt copies data into the image starting at offset.
func (img *Image) WriteAt(offset int, data []byte) error {
	if offset < 0 || offset+len(data) > Size {
		return fmt.Errorf("write of %d bytes at offset 0x%04X exceeds image size 0x%04X",
			len(data), offset, Size)
	}
	copy(img.data[offset:], data)
	return nil
}

// SetByte writes a single byte at offset.
func (img *Image) SetByte(offset int, value byte) error {
	if offset < 0 || offset >= Size {
		return fmt.Errorf("write at offset 0x%04X exceeds image size 0x%04X", offset, Size)
	}
	img.data[offset] = value
	return nil
}

// Byte returns the byte at offset.
func (img *Image) Byte(offset int) byte {
	return img.data[offset]
}

// Range returns a copy of the bytes in [start, end).
func (img *Image) Range(start, end int) []byte {
	data := make([]byte, end-start)
	copy(data, img.data[start:end])
	return data
}

// Bytes returns a copy of the full image content.
func (img *Image) Bytes() []byte {
	return img.Range(0, Size)
}

// Save writes the full image to the named file in a single pass,
// overwriting an existing file.
func (img *Image) Save(filename string) error {
	if err := os.WriteFile(filename, img.data[:], 0666); err != nil {
		return fmt.Errorf("writing image file '%s': %w", filename, err)
	}
	return nil
}
