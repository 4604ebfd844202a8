package main

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/assert"

	"github.com/hexaflex/c8vm/arch"
	"github.com/hexaflex/c8vm/vm"
)

func init() {
	log.SetOutput(io.Discard)
	vm.SetLogOutput(io.Discard)
}

func writeProgram(t *testing.T, opcodes ...uint16) string {
	var buf bytes.Buffer
	for _, v := range opcodes {
		buf.WriteByte(byte(v >> 8))
		buf.WriteByte(byte(v))
	}

	file := filepath.Join(t.TempDir(), "test.ch8")
	assert.NoError(t, os.WriteFile(file, buf.Bytes(), 0o644))
	return file
}

func TestCPUControllerFrame(t *testing.T) {
	//   LD V0, #01
	//   ADD V0, #01
	//   JP #202

	c := NewCPUController(nil)
	program := []byte{0x60, 0x01, 0x70, 0x01, 0x12, 0x02}
	assert.NoError(t, c.Load(program))

	cpu := c.CPU()
	cpu.SetSoundTimer(2)
	cpu.SetDelayTimer(3)

	stopped, err := c.Frame(3)
	assert.NoError(t, err)
	assert.False(t, stopped)
	assert.Equal(t, byte(1), cpu.SoundTimer())
	assert.Equal(t, byte(2), cpu.DelayTimer())
	assert.Equal(t, uint16(0x202), cpu.PC())

	stopped, err = c.Frame(2)
	assert.NoError(t, err)
	assert.True(t, stopped)
	assert.Equal(t, byte(3), cpu.V(0))
	assert.Equal(t, uint64(2), c.Frames())
}

func TestCPUControllerLoadResets(t *testing.T) {
	c := NewCPUController(nil)
	assert.NoError(t, c.Load([]byte{0x60, 0x05}))
	_, err := c.Frame(1)
	assert.NoError(t, err)
	assert.Equal(t, byte(5), c.CPU().V(0))

	assert.NoError(t, c.Load([]byte{0x61, 0x05}))
	assert.Equal(t, byte(0), c.CPU().V(0))
	assert.Equal(t, uint16(vm.ProgramStart), c.CPU().PC())

	err = c.Load(make([]byte, vm.ProgramCapacity+1))
	assert.True(t, errors.Is(err, vm.ErrProgramTooLarge))
}

func TestAppRun(t *testing.T) {
	file := writeProgram(t,
		arch.Encode(arch.LDI, vm.FontAddress(0xa)),
		arch.Encode(arch.DRW, 0, 0, vm.FontHeight),
		arch.Encode(arch.JP, 0x204),
	)

	var out bytes.Buffer
	a := NewApp(&Config{Program: file, CyclesPerFrame: 4, Frames: 2, Seed: 1, Keys: []int{3}, PrintTrace: true})
	a.out = &out
	assert.NoError(t, a.Run())

	lines := strings.Split(out.String(), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "0200 a032  LD I, #032"))
	assert.True(t, strings.HasPrefix(lines[1], "0202 d005  DRW V0, V0, #5"))
	assert.True(t, strings.Contains(out.String(), "####...."))
	assert.True(t, a.cpu.CPU().Key(3))
	assert.Equal(t, uint64(2), a.cpu.Frames())
}

func TestAppRunUnsupported(t *testing.T) {
	file := writeProgram(t, 0x6001, 0xf00a)

	a := NewApp(&Config{Program: file, CyclesPerFrame: 10, Frames: 1})
	a.out = io.Discard

	err := a.Run()
	assert.True(t, errors.Is(err, vm.ErrUnsupported))
	assert.Equal(t, "frame 0: 0202: ??? #f00a: unsupported instruction", err.Error())
}

func TestAppRunMissingFile(t *testing.T) {
	a := NewApp(&Config{Program: filepath.Join(t.TempDir(), "missing.ch8"), CyclesPerFrame: 1, Frames: 1})
	a.out = io.Discard
	assert.True(t, errors.Is(a.Run(), os.ErrNotExist))
}

func TestPrettyFrequency(t *testing.T) {
	assert.Equal(t, "600.00 Hz", prettyFrequency(600))
	assert.Equal(t, "1.50 KHz", prettyFrequency(1500))
	assert.Equal(t, "2.00 MHz", prettyFrequency(2e6))
}
