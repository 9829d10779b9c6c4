// Package builder assembles the graphics test cartridge image.
package builder

import (
	"context"
	"fmt"

	"github.com/retroenv/gbgfxgen/internal/gameboy"
	"github.com/retroenv/gbgfxgen/internal/header"
	"github.com/retroenv/gbgfxgen/internal/options"
	"github.com/retroenv/gbgfxgen/internal/rom"
	"github.com/retroenv/gbgfxgen/internal/sm83"
	"github.com/retroenv/gbgfxgen/internal/tiles"
	"github.com/retroenv/gbgfxgen/internal/verification"
	"github.com/retroenv/retrogolib/log"
)

// ROM offsets of the generated content.
const (
	CodeOffset     = 0x0150 // test routine, the entry stub jumps here
	TileDataOffset = 0x1000 // tile table read by the routine
)

// Title is written into the cartridge header, zero padded.
const Title = "GFXTEST"

// Builder generates the graphics test cartridge image.
type Builder struct {
	logger *log.Logger
}

// New creates a new builder.
func New(logger *log.Logger) *Builder {
	return &Builder{
		logger: logger,
	}
}

// Run builds the cartridge image and writes it to the output file.
func (b *Builder) Run(ctx context.Context, opts options.Program) error {
	img, err := b.BuildImage()
	if err != nil {
		return fmt.Errorf("building image: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("aborting before file write: %w", err)
	}

	if err := img.Save(opts.Output); err != nil {
		return fmt.Errorf("saving image: %w", err)
	}

	b.logger.Info("Generated ROM",
		log.String("file", opts.Output),
		log.Hex("tile_data", uint16(TileDataOffset)),
		log.Hex("code", uint16(CodeOffset)))

	if opts.Verify {
		if err := verification.VerifyOutput(b.logger, opts.Output, img, cartridgeHeader()); err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
		b.logger.Info("Verification successful")
	}

	return nil
}

// BuildImage populates the fixed 32 KiB cartridge image: header, tile
// table, the assembled test routine and the vector table stubs.
func (b *Builder) BuildImage() (*rom.Image, error) {
	img := rom.New()

	h := cartridgeHeader()
	if err := h.Write(img); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}
	b.logger.Debug("Header written",
		log.String("title", h.Title),
		log.Hex("checksum", img.Byte(header.ChecksumOffset)))

	if err := img.WriteAt(TileDataOffset, tiles.Data()); err != nil {
		return nil, fmt.Errorf("writing tile table: %w", err)
	}

	code, err := Routine()
	if err != nil {
		return nil, fmt.Errorf("assembling routine: %w", err)
	}
	if err := img.WriteAt(CodeOffset, code); err != nil {
		return nil, fmt.Errorf("writing routine: %w", err)
	}
	b.logger.Info("Assembled test routine", log.Int("size", len(code)))

	if err := writeVectors(img); err != nil {
		return nil, fmt.Errorf("writing vector table: %w", err)
	}

	return img, nil
}

// cartridgeHeader returns the header written into the image, it also
// serves as the expectation when verifying a written file.
func cartridgeHeader() header.Header {
	return header.Header{
		Title:      Title,
		EntryPoint: CodeOffset,
	}
}

// writeVectors fills the RST slots with RET and the interrupt handler
// slots with RETI, any stray call or interrupt returns immediately.
func writeVectors(img *rom.Image) error {
	for _, vector := range gameboy.RSTVectors {
		if err := img.SetByte(int(vector), sm83.OpRet); err != nil {
			return fmt.Errorf("writing RST vector 0x%02X: %w", vector, err)
		}
	}
	for _, vector := range gameboy.InterruptVectors {
		if err := img.SetByte(int(vector), sm83.OpRetI); err != nil {
			return fmt.Errorf("writing interrupt vector 0x%02X: %w", vector, err)
		}
	}
	return nil
}
