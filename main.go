// Package main implements a Game Boy graphics test ROM generator
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/gbgfxgen/internal/builder"
	"github.com/retroenv/gbgfxgen/internal/cli"
	"github.com/retroenv/gbgfxgen/internal/config"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	if err != nil {
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(opts.Quiet)
			usageErr.ShowUsage()
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}

	printBanner(opts.Quiet)

	b := builder.New(logger)
	if err := b.Run(ctx, opts); err != nil {
		logger.Fatal("Generating ROM failed", log.Err(err))
	}
}

func printBanner(quiet bool) {
	if quiet {
		return
	}
	fmt.Println("[----------------------------------------------]")
	fmt.Println("[ gbgfxgen - Game Boy graphics test ROM maker  ]")
	fmt.Printf("[----------------------------------------------]\n\n")
	fmt.Printf("version: %s\n\n", buildinfo.Version(version, commit, date))
}
