package main

import (
	"time"

	"github.com/pkg/errors"

	"github.com/hexaflex/c8vm/vm"
)

// CPUController controls the execution of a CPU.
type CPUController struct {
	cpu        *vm.CPU
	start      time.Time
	cycleCount uint64
	frameCount uint64
}

// NewCPUController creates a new CPU controller.
func NewCPUController(trace vm.TraceFunc) *CPUController {
	return &CPUController{
		cpu: vm.New(trace),
	}
}

// CPU returns the controlled cpu.
func (c *CPUController) CPU() *vm.CPU {
	return c.cpu
}

// Frequency returns the average instruction rate in herz since the program was loaded.
func (c *CPUController) Frequency() float64 {
	elapsed := time.Since(c.start).Seconds()
	if c.cycleCount == 0 || elapsed <= 0 {
		return 0
	}
	return float64(c.cycleCount) / elapsed
}

// Frames returns the number of frames completed since the program was loaded.
func (c *CPUController) Frames() uint64 {
	return c.frameCount
}

// Load resets the cpu and loads the given program.
func (c *CPUController) Load(program []byte) error {
	c.cpu.Reset()
	c.start = time.Now()
	c.cycleCount = 0
	c.frameCount = 0
	return errors.Wrap(c.cpu.Load(program), "loading program")
}

// Seed sets the cpu's random seed.
func (c *CPUController) Seed(seed int64) {
	c.cpu.Seed(seed)
}

// Frame performs the given number of execution steps followed
// by a single timer tick.
//
// Returns true if the sound timer ran out during this frame.
func (c *CPUController) Frame(cycles int) (bool, error) {
	for i := 0; i < cycles; i++ {
		c.cycleCount++
		if err := c.cpu.Step(); err != nil {
			return false, err
		}
	}

	c.frameCount++
	return c.cpu.TickTimers(), nil
}
