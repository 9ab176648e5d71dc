package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "default flags",
			args: []string{"prog", "pong.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "pong.ch8"},
				Flags:      options.Flags{Frontend: options.FrontendTerminal},
				Emulation:  options.Emulation{InstructionsPerSecond: 700, Scale: 10},
			},
		},
		{
			name: "all flags",
			args: []string{"prog", "-frontend", "Window", "-ips", "1000", "-frames", "60", "-scale", "4",
				"-seed", "42", "-wav", "out.wav", "-mute", "-debug", "pong.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "pong.ch8", Wav: "out.wav"},
				Flags:      options.Flags{Frontend: options.FrontendWindow, Mute: true, Debug: true},
				Emulation:  options.Emulation{InstructionsPerSecond: 1000, Frames: 60, Scale: 4, Seed: 42},
			},
		},
		{
			name: "disasm mode",
			args: []string{"prog", "-disasm", "-q", "pong.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "pong.ch8"},
				Flags:      options.Flags{Frontend: options.FrontendTerminal, Disasm: true, Quiet: true},
				Emulation:  options.Emulation{InstructionsPerSecond: 700, Scale: 10},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			got, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		usageError bool
	}{
		{
			name:       "missing ROM file",
			args:       []string{"prog"},
			usageError: true,
		},
		{
			name:       "flag after ROM file",
			args:       []string{"prog", "pong.ch8", "-debug"},
			usageError: true,
		},
		{
			name:       "empty argument after ROM file",
			args:       []string{"prog", "pong.ch8", ""},
			usageError: true,
		},
		{
			name:       "empty ROM file",
			args:       []string{"prog", ""},
			usageError: true,
		},
		{
			name: "unknown frontend",
			args: []string{"prog", "-frontend", "vga", "pong.ch8"},
		},
		{
			name: "invalid speed",
			args: []string{"prog", "-ips", "0", "pong.ch8"},
		},
		{
			name: "negative frames",
			args: []string{"prog", "-frames", "-1", "pong.ch8"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			_, err := ParseFlags()
			assert.Error(t, err)

			var usageErr *UsageError
			assert.Equal(t, tt.usageError, errors.As(err, &usageErr))
		})
	}
}
