// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	opts.Input = args[0]
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	fmt.Printf("usage: retrochip8 [options] <ROM file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if arg == "" {
			return &UsageError{msg: "Empty argument found, please pass a ROM file name"}
		}
		if i > 0 && strings.HasPrefix(arg, "-") {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Frontend = strings.ToLower(opts.Frontend)
	if !slices.Contains(options.Frontends, opts.Frontend) {
		return fmt.Errorf("unsupported frontend: %s. Valid options: %s",
			opts.Frontend, strings.Join(options.Frontends, ", "))
	}

	switch {
	case opts.InstructionsPerSecond <= 0:
		return fmt.Errorf("invalid instructions per second: %d", opts.InstructionsPerSecond)
	case opts.Frames < 0:
		return fmt.Errorf("invalid frame count: %d", opts.Frames)
	case opts.Scale <= 0:
		return fmt.Errorf("invalid scale: %d", opts.Scale)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Frontend, "frontend", options.FrontendTerminal, "frontend to use (terminal/window/headless)")
	flags.IntVar(&opts.InstructionsPerSecond, "ips", 700, "number of instructions executed per second")
	flags.IntVar(&opts.Frames, "frames", 0, "stop after the given number of frames, 0 runs until quit")
	flags.IntVar(&opts.Scale, "scale", 10, "scale factor of the window frontend")
	flags.Uint64Var(&opts.Seed, "seed", 0, "seed of the random number generator, 0 uses a random seed")
	flags.StringVar(&opts.Wav, "wav", "", "name of a .wav file to record the sound output to")
	flags.BoolVar(&opts.Mute, "mute", false, "disable the sound output")
	flags.BoolVar(&opts.Disasm, "disasm", false, "print a disassembly listing of the ROM and exit")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
