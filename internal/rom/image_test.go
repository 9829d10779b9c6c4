package rom

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestNewImageIsZeroFilled(t *testing.T) {
	img := New()

	data := img.Bytes()
	assert.Len(t, data, Size)
	for _, b := range data {
		if b != 0 {
			t.Fatal("new image contains non zero bytes")
		}
	}
}

func TestWriteAt(t *testing.T) {
	img := New()

	assert.NoError(t, img.WriteAt(0x0100, []byte{0x00, 0xC3, 0x50, 0x01}))
	assert.Equal(t, []byte{0x00, 0xC3, 0x50, 0x01}, img.Range(0x0100, 0x0104))

	// neighbouring bytes stay untouched
	assert.Equal(t, byte(0), img.Byte(0x00FF))
	assert.Equal(t, byte(0), img.Byte(0x0104))
}

func TestWriteAtBounds(t *testing.T) {
	img := New()

	assert.Error(t, img.WriteAt(-1, []byte{0x01}))
	assert.Error(t, img.WriteAt(Size-1, []byte{0x01, 0x02}))
	assert.NoError(t, img.WriteAt(Size-1, []byte{0x01}))

	assert.Error(t, img.SetByte(Size, 0x01))
	assert.NoError(t, img.SetByte(Size-1, 0x01))
}

func TestSave(t *testing.T) {
	img := New()
	assert.NoError(t, img.SetByte(0x0100, 0xC3))

	filename := filepath.Join(t.TempDir(), "test.gb")
	assert.NoError(t, img.Save(filename))

	data, err := os.ReadFile(filename)
	assert.NoError(t, err)
	assert.Len(t, data, Size)
	assert.Equal(t, byte(0xC3), data[0x0100])
}

func TestSaveInvalidPath(t *testing.T) {
	img := New()

	err := img.Save(filepath.Join(t.TempDir(), "missing", "test.gb"))

	assert.Error(t, err)
}
