package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/hexaflex/c8vm/arch"
	"github.com/hexaflex/c8vm/vm"
)

// App defines application context.
type App struct {
	config  *Config        // Application configuration.
	cpu     *CPUController // VM with program to be run.
	out     io.Writer      // Destination for display and trace output.
	buzzing bool           // Was the sound timer running at the end of the last frame?
}

// NewApp creates a new application instance using the given configuration.
func NewApp(config *Config) *App {
	var a App
	a.config = config
	a.out = os.Stdout
	a.cpu = NewCPUController(a.printTrace)
	return &a
}

// Run loads the program and runs it for the configured number of frames.
// The final display contents are written to the output, also when the
// program fails.
func (a *App) Run() error {
	log.Println(Version())

	if err := a.loadProgram(); err != nil {
		return err
	}

	cpu := a.cpu.CPU()
	for _, key := range a.config.Keys {
		if err := cpu.SetKey(key, true); err != nil {
			return err
		}
	}

	var tick <-chan time.Time
	if a.config.Realtime {
		ticker := time.NewTicker(time.Second / vm.TimerFrequency)
		defer ticker.Stop()
		tick = ticker.C
	}

	err := a.mainLoop(tick)
	a.printDisplay()
	log.Printf("%d frames, %s", a.cpu.Frames(), prettyFrequency(a.cpu.Frequency()))
	return err
}

// mainLoop runs frames until the configured count is reached or the
// program fails. If tick is not nil, each frame waits for it.
func (a *App) mainLoop(tick <-chan time.Time) error {
	cpu := a.cpu.CPU()

	for frame := 0; a.config.Frames == 0 || frame < a.config.Frames; frame++ {
		if tick != nil {
			<-tick
		}

		stopped, err := a.cpu.Frame(a.config.CyclesPerFrame)
		if err != nil {
			return errors.Wrapf(err, "frame %d", frame)
		}

		if !a.buzzing && cpu.SoundActive() {
			log.Println("sound on")
		}
		if stopped {
			log.Println("sound off")
		}
		a.buzzing = cpu.SoundActive()
	}

	return nil
}

// loadProgram loads the current program from disk and resets the cpu.
func (a *App) loadProgram() error {
	log.Println("loading", a.config.Program)

	program, err := os.ReadFile(a.config.Program)
	if err != nil {
		return errors.Wrapf(err, "reading %s", a.config.Program)
	}

	if a.config.Seed != 0 {
		a.cpu.Seed(a.config.Seed)
	}

	return a.cpu.Load(program)
}

// printDisplay writes the display contents to the output.
func (a *App) printDisplay() {
	d := a.cpu.CPU().Display()
	fmt.Fprint(a.out, d.String())
}

// printTrace prints instruction trace data. This can be toggled
// on through a.config.PrintTrace.
func (a *App) printTrace(i *vm.Instruction) {
	if !a.config.PrintTrace {
		return
	}

	var sb strings.Builder
	sb.Grow(80)

	fmt.Fprintf(&sb, "%04x %04x  %s", i.IP, i.Opcode, i)

	// Add the current values of the register operands, if any.
	cpu := a.cpu.CPU()
	reg := func(x int) {
		fmt.Fprintf(&sb, " %s=%02x", arch.RegisterName(x), cpu.V(x))
	}

	switch i.Op {
	case arch.SEB, arch.SNEB, arch.LDB, arch.ADDB, arch.RND, arch.SHR, arch.SHL:
		pad(&sb, 36)
		reg(i.X)
	case arch.SER, arch.SNER, arch.LDR, arch.OR, arch.AND, arch.XOR, arch.ADDR, arch.SUB, arch.SUBN:
		pad(&sb, 36)
		reg(i.X)
		reg(i.Y)
	case arch.DRW:
		pad(&sb, 36)
		reg(i.X)
		reg(i.Y)
		fmt.Fprintf(&sb, " I=%03x", cpu.I())
	case arch.JPV0:
		pad(&sb, 36)
		reg(0)
	}

	fmt.Fprintln(a.out, sb.String())
}

// pad padds sb with spaces until it reaches the given size.
var pad = func() func(*strings.Builder, int) {
	set := strings.Repeat(" ", 80)
	return func(sb *strings.Builder, size int) {
		if sb.Len() >= size {
			return
		}
		if size > len(set) {
			size = len(set)
		}
		if size < sb.Len() {
			size = sb.Len()
		}
		sb.WriteString(set[:size-sb.Len()])
	}
}()

// prettyFrequency returns a human-readable version of the given clock frequency in herz.
func prettyFrequency(v float64) string {
	switch {
	case v >= 1e9:
		return fmt.Sprintf("%.2f GHz", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.2f MHz", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.2f KHz", v/1e3)
	default:
		return fmt.Sprintf("%.2f Hz", v)
	}
}
