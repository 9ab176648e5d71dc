// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input string `arg:"positional" usage:"ROM file to run"`
	Wav   string `flag:"wav" usage:"record the beeper to a WAV file"`
}

// Flags contains behavior options.
type Flags struct {
	Frontend string `flag:"frontend" usage:"frontend: terminal, window, headless" default:"terminal"`
	Disasm   bool   `flag:"disasm" usage:"print a disassembly listing and exit"`
	Mute     bool   `flag:"mute" usage:"disable audio output"`
	Debug    bool   `flag:"debug" usage:"enable debug logging"`
	Quiet    bool   `flag:"q" usage:"quiet mode"`
}

// Emulation contains the emulation speed and display options.
type Emulation struct {
	InstructionsPerSecond int    `flag:"ips" usage:"instructions per second" default:"700"`
	Frames                int    `flag:"frames" usage:"stop after the given number of frames, 0 for unlimited"`
	Scale                 int    `flag:"scale" usage:"window scale factor" default:"10"`
	Seed                  uint64 `flag:"seed" usage:"random number generator seed, 0 for a time based seed"`
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
	Emulation
}

// Supported frontends.
const (
	FrontendTerminal = "terminal"
	FrontendWindow   = "window"
	FrontendHeadless = "headless"
)

// Frontends lists all supported frontend names.
var Frontends = []string{FrontendTerminal, FrontendWindow, FrontendHeadless}
