package tiles

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestTableOrder(t *testing.T) {
	table := Table()

	assert.Len(t, table, Count)
	assert.Equal(t, Empty, table[0])
	assert.Equal(t, Solid, table[1])
	assert.Equal(t, Checker, table[2])
	assert.Equal(t, HStripe, table[3])
	assert.Equal(t, VStripe, table[4])
}

func TestData(t *testing.T) {
	data := Data()

	assert.Len(t, data, Count*Size)

	// each tile occupies one 16 byte slot in table order
	assert.Equal(t, Empty[:], data[0:16])
	assert.Equal(t, Solid[:], data[16:32])
	assert.Equal(t, Checker[:], data[32:48])
	assert.Equal(t, HStripe[:], data[48:64])
	assert.Equal(t, VStripe[:], data[64:80])
}

func TestPatternRows(t *testing.T) {
	for row := 0; row < 8; row++ {
		lo, hi := Solid[row*2], Solid[row*2+1]
		assert.Equal(t, byte(0xFF), lo)
		assert.Equal(t, byte(0xFF), hi)

		lo, hi = VStripe[row*2], VStripe[row*2+1]
		assert.Equal(t, byte(0xAA), lo)
		assert.Equal(t, byte(0x00), hi)
	}

	// horizontal stripes alternate solid and empty rows
	for row := 0; row < 8; row++ {
		want := byte(0x00)
		if row%2 == 0 {
			want = 0xFF
		}
		assert.Equal(t, want, HStripe[row*2])
		assert.Equal(t, want, HStripe[row*2+1])
	}
}
