// Package pipeline orchestrates loading a ROM and running or disassembling it.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/audio"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/frontend/terminal"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete emulation workflow.
type Pipeline struct {
	logger *log.Logger
	loader *loader.Loader

	stdin  *os.File
	stdout io.Writer
}

// New creates a new pipeline that uses the standard input and output for
// the terminal frontend and the disassembly listing.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(logger),
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
}

// Execute loads the ROM file of the options and runs or disassembles it.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program) error {
	if opts.Disasm {
		program, err := p.loader.Load(opts.Input)
		if err != nil {
			return fmt.Errorf("loading ROM: %w", err)
		}
		return p.disassemble(program)
	}

	cpu := p.createCPU(opts)
	program, err := p.loader.LoadInto(cpu, opts.Input)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}
	return p.runProgram(ctx, cpu, program, opts)
}

// ExecuteWithProgram runs the pipeline with a pre-loaded program.
// This is useful for testing and programmatic usage where the program is already in memory.
func (p *Pipeline) ExecuteWithProgram(ctx context.Context, program []byte, opts options.Program) error {
	if opts.Disasm {
		return p.disassemble(program)
	}

	cpu := p.createCPU(opts)
	if err := cpu.LoadProgram(program); err != nil {
		return fmt.Errorf("loading program: %w", err)
	}
	return p.runProgram(ctx, cpu, program, opts)
}

func (p *Pipeline) disassemble(program []byte) error {
	if err := disasm.Disassemble(program, p.stdout); err != nil {
		return fmt.Errorf("disassembling: %w", err)
	}
	return nil
}

// runProgram runs a program that is loaded into the CPU memory with the
// frontend of the options.
func (p *Pipeline) runProgram(ctx context.Context, cpu *chip8.CPU, program []byte, opts options.Program) error {
	p.printInfo(opts, program)

	screen := display.New(display.Width, display.Height)
	keys := keypad.New()

	beeper, closeAudio, err := p.createBeeper(opts)
	if err != nil {
		return fmt.Errorf("creating audio output: %w", err)
	}
	defer closeAudio()

	switch opts.Frontend {
	case options.FrontendHeadless:
		r := runner.New(p.logger, config.RunnerConfig(opts), cpu, screen, keys, runner.Headless{}, beeper)
		return p.run(ctx, r)

	case options.FrontendTerminal:
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		term := terminal.New(p.logger, p.stdin, p.stdout, keys, cancel)
		if err := term.Start(); err != nil {
			return fmt.Errorf("starting terminal frontend: %w", err)
		}
		defer term.Stop()

		r := runner.New(p.logger, config.RunnerConfig(opts), cpu, screen, keys, term, beeper)
		return p.run(ctx, r)

	case options.FrontendWindow:
		return p.runWindow(ctx, opts, cpu, screen, keys, beeper)

	default:
		return fmt.Errorf("unsupported frontend '%s'", opts.Frontend)
	}
}

func (p *Pipeline) createCPU(opts options.Program) *chip8.CPU {
	if opts.Seed != 0 {
		return chip8.New(chip8.WithSeed(opts.Seed))
	}
	return chip8.New()
}

// createBeeper creates the enabled sound outputs. The returned beeper is nil
// if no output is enabled.
func (p *Pipeline) createBeeper(opts options.Program) (runner.Beeper, func(), error) {
	var outputs audio.Multi
	var closers []io.Closer
	closeAll := func() {
		for _, c := range closers {
			if err := c.Close(); err != nil {
				p.logger.Error("Closing audio output failed", log.Err(err))
			}
		}
	}

	if config.AudioEnabled(opts) {
		player, err := audio.NewPlayer(audio.DefaultSampleRate, audio.DefaultFrequency)
		if err != nil {
			// a missing sound device should not prevent running the program
			p.logger.Warn("Audio output is not available", log.Err(err))
		} else {
			outputs = append(outputs, player)
			closers = append(closers, player)
		}
	}

	if opts.Wav != "" {
		rec, err := audio.NewRecorder(opts.Wav, audio.DefaultSampleRate, runner.FrameRate)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("creating recorder: %w", err)
		}
		outputs = append(outputs, rec)
		closers = append(closers, rec)
	}

	if len(outputs) == 0 {
		return nil, closeAll, nil
	}
	return outputs, closeAll, nil
}

// run executes the runner and logs the CPU state if execution halted.
func (p *Pipeline) run(ctx context.Context, r *runner.Runner) error {
	if err := r.Run(ctx); err != nil {
		p.logCPUState(r.CPU())
		return fmt.Errorf("running program: %w", err)
	}

	p.logger.Debug("Execution finished", log.Int("frames", r.Frames()))
	return nil
}

func (p *Pipeline) logCPUState(cpu *chip8.CPU) {
	var sb strings.Builder
	for i, v := range cpu.V {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "V%X=%02X", i, v)
	}

	p.logger.Error("CPU state",
		log.Hex("pc", cpu.PC),
		log.Hex("i", cpu.I),
		log.Uint8("sp", cpu.SP),
		log.String("registers", sb.String()))
}

// printInfo prints information about the ROM being processed.
func (p *Pipeline) printInfo(opts options.Program, program []byte) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Running CHIP-8 ROM",
		log.String("file", opts.Input),
		log.Int("size", len(program)),
		log.String("frontend", opts.Frontend),
		log.Int("ips", opts.InstructionsPerSecond),
	)
}

// PrintBanner prints the program name and version.
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("retrochip8", log.String("version", buildinfo.Version(version, commit, date)))
}
