// Package options contains the program options.
package options

// DefaultOutput is the output file name used when no name is given.
// Running the generator without any arguments always produces this file.
const DefaultOutput = "gfxtest.gb"

// Program options of the generator.
type Program struct {
	Output string // name of the output ROM file

	Debug  bool
	Quiet  bool
	Verify bool
}
