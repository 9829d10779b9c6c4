// Package header builds and validates the cartridge header region.
// The header occupies 0x0100-0x014F of the image and is checked by the
// boot ROM before control is handed to the cartridge.
package header

import (
	"bytes"
	"fmt"

	"github.com/retroenv/gbgfxgen/internal/rom"
)

// Header field offsets in the image.
const (
	EntryPointOffset = 0x0100 // 4 byte entry stub
	LogoOffset       = 0x0104 // 48 byte boot logo
	TitleOffset      = 0x0134 // game title, zero padded
	CGBFlagOffset    = 0x0143 // Game Boy Color support flag
	NewLicenseeHigh  = 0x0144
	NewLicenseeLow   = 0x0145
	SGBFlagOffset    = 0x0146 // Super Game Boy support flag
	CartTypeOffset   = 0x0147 // memory bank controller type
	ROMSizeOffset    = 0x0148
	RAMSizeOffset    = 0x0149
	DestinationCode  = 0x014A
	OldLicenseeCode  = 0x014B
	VersionOffset    = 0x014C
	ChecksumOffset   = 0x014D
)

// TitleLength is the number of title bytes in the newer header layout,
// the bytes after it are used for the manufacturer code and CGB flag.
const TitleLength = 11

// Entry stub opcodes at 0x0100, executed after the boot ROM hands over.
const (
	OpNop       = 0x00
	OpJumpImm16 = 0xC3
)

// BootLogo is the bit pattern the boot ROM compares against before
// starting the cartridge, any deviation halts the boot sequence.
var BootLogo = [48]byte{
	0xCE, 0xED, 0x66, 0x66, 0xCC, 0x0D, 0x00, 0x0B,
	0x03, 0x73, 0x00, 0x83, 0x00, 0x0C, 0x00, 0x0D,
	0x00, 0x08, 0x11, 0x1F, 0x88, 0x89, 0x00, 0x0E,
	0xDC, 0xCC, 0x6E, 0xE6, 0xDD, 0xDD, 0xD9, 0x99,
	0xBB, 0xBB, 0x67, 0x63, 0x6E, 0x0E, 0xEC, 0xCC,
	0xDD, 0xDC, 0x99, 0x9F, 0xBB, 0xB9, 0x33, 0x3E,
}

// Header describes the cartridge header fields that get written into the
// image. The zero value describes a DMG only, ROM only, 32 KiB cartridge.
type Header struct {
	Title         string
	EntryPoint    uint16 // address the entry stub jumps to
	CGBFlag       byte
	NewLicensee   [2]byte
	SGBFlag       byte
	CartridgeType byte
	ROMSize       byte
	RAMSize       byte
	Destination   byte
	OldLicensee   byte
	Version       byte
}

// Write populates the header region of the image: entry stub, boot logo,
// title, the metadata fields and the computed header checksum.
func (h Header) Write(img *rom.Image) error {
	if len(h.Title) > TitleLength {
		return fmt.Errorf("title '%s' exceeds %d bytes", h.Title, TitleLength)
	}

	stub := []byte{OpNop, OpJumpImm16, byte(h.EntryPoint), byte(h.EntryPoint >> 8)}
	if err := img.WriteAt(EntryPointOffset, stub); err != nil {
		return fmt.Errorf("writing entry stub: %w", err)
	}

	if err := img.WriteAt(LogoOffset, BootLogo[:]); err != nil {
		return fmt.Errorf("writing boot logo: %w", err)
	}

	title := make([]byte, TitleLength)
	copy(title, h.Title)
	if err := img.WriteAt(TitleOffset, title); err != nil {
		return fmt.Errorf("writing title: %w", err)
	}

	fields := []struct {
		offset int
		value  byte
	}{
		{CGBFlagOffset, h.CGBFlag},
		{NewLicenseeHigh, h.NewLicensee[0]},
		{NewLicenseeLow, h.NewLicensee[1]},
		{SGBFlagOffset, h.SGBFlag},
		{CartTypeOffset, h.CartridgeType},
		{ROMSizeOffset, h.ROMSize},
		{RAMSizeOffset, h.RAMSize},
		{DestinationCode, h.Destination},
		{OldLicenseeCode, h.OldLicensee},
		{VersionOffset, h.Version},
	}
	for _, field := range fields {
		if err := img.SetByte(field.offset, field.value); err != nil {
			return fmt.Errorf("writing header field at 0x%04X: %w", field.offset, err)
		}
	}

	checksum := Checksum(img.Range(TitleOffset, ChecksumOffset))
	if err := img.SetByte(ChecksumOffset, checksum); err != nil {
		return fmt.Errorf("writing header checksum: %w", err)
	}
	return nil
}

// Checksum computes the header checksum over the title through version
// fields as the fold sum = (sum - b - 1) mod 256.
func Checksum(data []byte) byte {
	var sum byte
	for _, b := range data {
		sum = sum - b - 1
	}
	return sum
}

// Validate checks the header region of a full image: boot logo content
// and the stored checksum matching a recomputation over its input range.
func Validate(image []byte) error {
	if len(image) < ChecksumOffset+1 {
		return fmt.Errorf("image of %d bytes is too small to contain a header", len(image))
	}

	if !bytes.Equal(image[LogoOffset:LogoOffset+len(BootLogo)], BootLogo[:]) {
		return fmt.Errorf("boot logo mismatch at offset 0x%04X", LogoOffset)
	}

	expected := Checksum(image[TitleOffset:ChecksumOffset])
	if got := image[ChecksumOffset]; got != expected {
		return fmt.Errorf("header checksum mismatch: expected 0x%02X but got 0x%02X", expected, got)
	}
	return nil
}

// Parse reads the header fields back from a full image. It is used to
// verify a written ROM file round trips to the generating header.
func Parse(image []byte) (Header, error) {
	if err := Validate(image); err != nil {
		return Header{}, err
	}

	title := image[TitleOffset : TitleOffset+TitleLength]
	title = bytes.TrimRight(title, "\x00")

	h := Header{
		Title:         string(title),
		EntryPoint:    uint16(image[EntryPointOffset+2]) | uint16(image[EntryPointOffset+3])<<8,
		CGBFlag:       image[CGBFlagOffset],
		NewLicensee:   [2]byte{image[NewLicenseeHigh], image[NewLicenseeLow]},
		SGBFlag:       image[SGBFlagOffset],
		CartridgeType: image[CartTypeOffset],
		ROMSize:       image[ROMSizeOffset],
		RAMSize:       image[RAMSizeOffset],
		Destination:   image[DestinationCode],
		OldLicensee:   image[OldLicenseeCode],
		Version:       image[VersionOffset],
	}
	return h, nil
}
