// Package verification verifies that a written ROM file matches the
// image the generator built.
package verification

import (
	"fmt"
	"os"

	"github.com/retroenv/gbgfxgen/internal/gameboy"
	"github.com/retroenv/gbgfxgen/internal/header"
	"github.com/retroenv/gbgfxgen/internal/rom"
	"github.com/retroenv/gbgfxgen/internal/sm83"
	"github.com/retroenv/retrogolib/log"
)

// VerifyOutput reads the written ROM file back and checks that it is
// byte identical to the built image and structurally valid: correct size,
// intact boot logo and header checksum, the header fields round tripping
// to the generating header and filled vector table slots.
func VerifyOutput(logger *log.Logger, filename string, img *rom.Image, h header.Header) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("reading file '%s' for verification: %w", filename, err)
	}

	if len(data) != rom.Size {
		return fmt.Errorf("unexpected file size, expected %d but got %d bytes", rom.Size, len(data))
	}

	if err := checkBufferEqual(logger, img.Bytes(), data); err != nil {
		return fmt.Errorf("comparing file to built image: %w", err)
	}

	parsed, err := header.Parse(data)
	if err != nil {
		return fmt.Errorf("parsing header: %w", err)
	}
	if parsed != h {
		return fmt.Errorf("header mismatch: expected %+v but got %+v", h, parsed)
	}

	if err := checkVectors(data); err != nil {
		return fmt.Errorf("checking vector table: %w", err)
	}

	return nil
}

func checkBufferEqual(logger *log.Logger, input, output []byte) error {
	if len(input) != len(output) {
		return fmt.Errorf("mismatched lengths, %d != %d", len(input), len(output))
	}

	var diffs uint64
	for i := range input {
		if input[i] == output[i] {
			continue
		}

		diffs++
		if diffs < 10 {
			logger.Error("Offset mismatch",
				log.Hex("offset", i),
				log.Hex("expected", input[i]),
				log.Hex("got", output[i]))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d offset mismatches", diffs)
}

func checkVectors(data []byte) error {
	for _, vector := range gameboy.RSTVectors {
		if got := data[vector]; got != sm83.OpRet {
			return fmt.Errorf("RST vector 0x%02X: expected 0x%02X but got 0x%02X",
				vector, sm83.OpRet, got)
		}
	}
	for _, vector := range gameboy.InterruptVectors {
		if got := data[vector]; got != sm83.OpRetI {
			return fmt.Errorf("interrupt vector 0x%02X: expected 0x%02X but got 0x%02X",
				vector, sm83.OpRetI, got)
		}
	}
	return nil
}
