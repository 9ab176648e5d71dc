// Package runner drives the CHIP-8 CPU at a host frame rate.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrogolib/log"
)

// FrameRate is the number of frames per second, the timers decrement once per frame.
const FrameRate = 60

// DefaultInstructionsPerSecond is the default execution speed.
const DefaultInstructionsPerSecond = 700

// Frontend presents the screen to the user.
type Frontend interface {
	Present(screen *display.Screen) error
}

// Beeper outputs the sound of the CHIP-8 buzzer.
type Beeper interface {
	// SetActive switches the tone on or off.
	SetActive(active bool)
	// Frame is called once per frame after SetActive.
	Frame() error
}

// Config controls the execution speed and length.
type Config struct {
	InstructionsPerSecond int
	MaxFrames             int  // 0 for unlimited
	Trace                 bool // log every executed instruction
}

// Runner owns the CPU and its peripherals and executes frames.
type Runner struct {
	logger   *log.Logger
	config   Config
	cpu      *chip8.CPU
	screen   *display.Screen
	keys     *keypad.Keypad
	frontend Frontend
	beeper   Beeper

	// trace is called after every executed instruction, it is only set if
	// tracing is enabled.
	trace  func(pc, word uint16, kind chip8.Kind)
	frames int
}

// New returns a new runner. The beeper is optional and can be nil.
func New(logger *log.Logger, config Config, cpu *chip8.CPU, screen *display.Screen,
	keys *keypad.Keypad, frontend Frontend, beeper Beeper) *Runner {

	if config.InstructionsPerSecond <= 0 {
		config.InstructionsPerSecond = DefaultInstructionsPerSecond
	}
	if frontend == nil {
		frontend = Headless{}
	}

	r := &Runner{
		logger:   logger,
		config:   config,
		cpu:      cpu,
		screen:   screen,
		keys:     keys,
		frontend: frontend,
		beeper:   beeper,
	}
	if config.Trace {
		r.trace = r.logStep
	}
	return r
}

// CPU returns the CPU driven by the runner.
func (r *Runner) CPU() *chip8.CPU {
	return r.cpu
}

// Screen returns the screen the CPU draws on.
func (r *Runner) Screen() *display.Screen {
	return r.screen
}

// Keypad returns the keypad queried by the CPU.
func (r *Runner) Keypad() *keypad.Keypad {
	return r.keys
}

// Frames returns the number of executed frames.
func (r *Runner) Frames() int {
	return r.frames
}

// Done returns whether the configured frame limit has been reached.
func (r *Runner) Done() bool {
	return r.config.MaxFrames > 0 && r.frames >= r.config.MaxFrames
}

// StepsPerFrame returns the number of instructions executed per frame.
func (r *Runner) StepsPerFrame() int {
	return max(1, r.config.InstructionsPerSecond/FrameRate)
}

// RunFrame executes the instructions of one frame, decrements the timers,
// updates the sound output and presents the screen if it changed.
func (r *Runner) RunFrame() error {
	if err := r.executeSteps(); err != nil {
		return err
	}

	// sound plays for every frame that starts with a non zero sound timer
	soundActive := r.cpu.SoundTimer() > 0
	if dt := r.cpu.DelayTimer(); dt > 0 {
		r.cpu.SetDelayTimer(dt - 1)
	}
	if st := r.cpu.SoundTimer(); st > 0 {
		r.cpu.SetSoundTimer(st - 1)
	}
	r.keys.Tick()

	if r.beeper != nil {
		r.beeper.SetActive(soundActive)
		if err := r.beeper.Frame(); err != nil {
			return fmt.Errorf("updating sound output: %w", err)
		}
	}

	if r.screen.Dirty() {
		if err := r.frontend.Present(r.screen); err != nil {
			return fmt.Errorf("presenting screen: %w", err)
		}
		r.screen.ClearDirty()
	}

	r.frames++
	return nil
}

func (r *Runner) executeSteps() error {
	for range r.StepsPerFrame() {
		var pc, word uint16
		if r.trace != nil {
			pc = r.cpu.PC
			word = r.cpu.Fetch(pc)
		}

		kind, err := r.cpu.Step(r.keys, r.screen)
		if err != nil {
			return fmt.Errorf("executing frame %d: %w", r.frames, err)
		}
		if r.trace != nil {
			r.trace(pc, word, kind)
		}

		if r.cpu.Waiting() {
			break
		}
	}
	return nil
}

func (r *Runner) logStep(pc, word uint16, kind chip8.Kind) {
	r.logger.Debug("Step",
		log.Hex("pc", pc),
		log.Hex("opcode", word),
		log.Stringer("kind", kind),
		log.String("instruction", disasm.Format(word)))
}

// Run executes frames at the frame rate until the context is cancelled,
// the frame limit is reached or the CPU halts with an error.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / FrameRate)
	defer ticker.Stop()

	for {
		if err := r.RunFrame(); err != nil {
			return err
		}
		if r.Done() {
			r.logger.Debug("Frame limit reached", log.Int("frames", r.frames))
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Restart reloads the last program and releases all keys.
func (r *Runner) Restart() {
	r.cpu.Restart()
	r.screen.Clear()
	r.keys.Reset()
	if r.beeper != nil {
		r.beeper.SetActive(false)
	}
	r.logger.Info("Program restarted")
}

// Headless is a frontend without any output.
type Headless struct{}

// Present does nothing.
func (Headless) Present(*display.Screen) error {
	return nil
}
