package header

import (
	"testing"

	"github.com/retroenv/gbgfxgen/internal/rom"
	"github.com/retroenv/retrogolib/assert"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want byte
	}{
		{
			name: "empty range",
			data: nil,
			want: 0x00,
		},
		{
			name: "zero bytes subtract the count",
			data: make([]byte, 25),
			want: 0xE7, // -25 mod 256
		},
		{
			name: "single byte",
			data: []byte{0x47},
			want: 0xB8, // -(0x47 + 1) mod 256
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Checksum(tt.data))
		})
	}
}

func TestHeaderWrite(t *testing.T) {
	img := rom.New()
	h := Header{
		Title:      "GFXTEST",
		EntryPoint: 0x0150,
	}

	assert.NoError(t, h.Write(img))

	// entry stub: NOP, then JP 0x0150 in little endian
	assert.Equal(t, []byte{0x00, 0xC3, 0x50, 0x01}, img.Range(EntryPointOffset, EntryPointOffset+4))

	assert.Equal(t, BootLogo[:], img.Range(LogoOffset, LogoOffset+len(BootLogo)))

	title := img.Range(TitleOffset, TitleOffset+TitleLength)
	assert.Equal(t, []byte("GFXTEST\x00\x00\x00\x00"), title)

	// all metadata fields of the zero value header are literal zero bytes
	for offset := CGBFlagOffset; offset <= VersionOffset; offset++ {
		assert.Equal(t, byte(0), img.Byte(offset))
	}

	// checksum over the title through version range of this header
	assert.Equal(t, byte(0xC2), img.Byte(ChecksumOffset))
}

func TestHeaderWriteLongTitle(t *testing.T) {
	img := rom.New()
	h := Header{Title: "TWELVECHARSX"}

	err := h.Write(img)

	assert.ErrorContains(t, err, "exceeds")
}

func TestHeaderChecksumMatchesValidation(t *testing.T) {
	img := rom.New()
	h := Header{
		Title:      "GFXTEST",
		EntryPoint: 0x0150,
	}
	assert.NoError(t, h.Write(img))

	assert.NoError(t, Validate(img.Bytes()))
}

func TestValidateDetectsCorruption(t *testing.T) {
	img := rom.New()
	h := Header{Title: "GFXTEST", EntryPoint: 0x0150}
	assert.NoError(t, h.Write(img))

	t.Run("logo corruption", func(t *testing.T) {
		data := img.Bytes()
		data[LogoOffset] ^= 0xFF
		assert.ErrorContains(t, Validate(data), "boot logo mismatch")
	})

	t.Run("checksum corruption", func(t *testing.T) {
		data := img.Bytes()
		data[TitleOffset] ^= 0xFF
		assert.ErrorContains(t, Validate(data), "checksum mismatch")
	})

	t.Run("truncated image", func(t *testing.T) {
		assert.ErrorContains(t, Validate(make([]byte, 0x0100)), "too small")
	})
}

func TestParseRoundTrip(t *testing.T) {
	img := rom.New()
	h := Header{
		Title:      "GFXTEST",
		EntryPoint: 0x0150,
	}
	assert.NoError(t, h.Write(img))

	parsed, err := Parse(img.Bytes())

	assert.NoError(t, err)
	assert.Equal(t, h, parsed)
}
