// Package vm implements the CHIP-8 virtual machine.
package vm

import (
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/hexaflex/c8vm/arch"
)

// StackCapacity is the number of return addresses the call stack can hold.
const StackCapacity = 48

// TraceFunc represents a callback handler for debug trace output.
type TraceFunc func(*Instruction)

var logger = log.New(os.Stderr, "", log.LstdFlags)

// SetLogOutput sets the destination for the package's log output.
func SetLogOutput(w io.Writer) {
	logger.SetOutput(w)
}

// state holds the complete architectural state of the machine.
type state struct {
	memory  Memory                   // System memory.
	display Display                  // Framebuffer.
	keys    Keypad                   // Keypad state, written by the host.
	v       [arch.RegisterCount]byte // General purpose registers V0-VF.
	stack   [StackCapacity]uint16    // Return addresses.
	sp      int                      // Number of entries on the stack.
	pc      uint16                   // Program counter.
	i       uint16                   // Index register.
	delay   byte                     // Delay timer.
	sound   byte                     // Sound timer.
}

// CPU implements the runtime.
type CPU struct {
	state
	trace TraceFunc   // Handler for debug trace output.
	instr Instruction // Decoded instruction data.
	rng   *rand.Rand  // Random number generator.
}

// New creates a new CPU with an empty program.
// Optionally with the given debug trace handler.
func New(trace TraceFunc) *CPU {
	if trace == nil {
		trace = func(*Instruction) { /* nop */ }
	}

	c := &CPU{
		trace: trace,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	c.init()
	return c
}

// Seed reseeds the random number generator used by RND.
func (c *CPU) Seed(seed int64) {
	c.rng = rand.New(rand.NewSource(seed))
}

// Reset returns the machine to its initial state, discarding the loaded
// program, the display contents, key and timer state.
func (c *CPU) Reset() {
	logger.Println("chip8", "reset")
	c.init()
}

func (c *CPU) init() {
	c.state = state{pc: ProgramStart}
	copy(c.memory[:], font[:])
}

// Load copies the given program into memory at ProgramStart.
// Returns ErrProgramTooLarge, without touching memory, if it does not fit.
func (c *CPU) Load(program []byte) error {
	if len(program) > ProgramCapacity {
		return errors.Wrapf(ErrProgramTooLarge, "%d bytes, capacity is %d", len(program), ProgramCapacity)
	}

	if err := c.memory.Write(ProgramStart, program); err != nil {
		return err
	}

	logger.Println("chip8", "loaded", len(program), "bytes")
	return nil
}

// Step performs a single execution step.
//
// If an error is returned the machine state is left as it was before the
// call, with the program counter at the offending instruction. The error
// is an *Error whose cause is one of the package's Err values.
func (c *CPU) Step() error {
	ip := c.pc

	opcode, err := c.fetch()
	if err != nil {
		return NewError(&Instruction{IP: int(ip)}, err)
	}

	instr := &c.instr
	instr.Decode(int(ip), opcode)

	c.trace(instr)

	if err := c.execute(instr); err != nil {
		c.pc = ip
		return NewError(instr, errors.Wrap(err, instr.String()))
	}

	return nil
}

// fetch reads the instruction at the program counter and advances
// the program counter past it.
func (c *CPU) fetch() (uint16, error) {
	if c.pc < ProgramStart {
		return 0, errors.Wrapf(ErrMemoryBounds, "program counter %04x below program start", c.pc)
	}

	opcode, err := c.memory.U16(int(c.pc))
	if err != nil {
		return 0, err
	}

	c.pc += 2
	return opcode, nil
}

// execute applies the given instruction. Every check that can fail is
// made before any state is changed.
func (c *CPU) execute(instr *Instruction) error {
	v := &c.v
	x, y := instr.X, instr.Y
	nn := byte(instr.NN)

	switch instr.Op {
	case arch.NOP:
		/* nop */
	case arch.CLS:
		c.display.Clear()
	case arch.RET:
		addr, err := c.pop()
		if err != nil {
			return err
		}
		c.pc = addr

	case arch.JP:
		c.pc = uint16(instr.NNN)
	case arch.CALL:
		if err := c.push(c.pc); err != nil {
			return err
		}
		c.pc = uint16(instr.NNN)
	case arch.JPV0:
		c.pc = uint16(v[0]) + uint16(instr.NNN)

	case arch.SEB:
		c.skipIf(v[x] == nn)
	case arch.SNEB:
		c.skipIf(v[x] != nn)
	case arch.SER:
		c.skipIf(v[x] == v[y])
	case arch.SNER:
		c.skipIf(v[x] != v[y])

	case arch.LDB:
		v[x] = nn
	case arch.ADDB:
		v[x] += nn
	case arch.LDR:
		v[x] = v[y]
	case arch.OR:
		v[x] |= v[y]
	case arch.AND:
		v[x] &= v[y]
	case arch.XOR:
		v[x] ^= v[y]

	// The flag is written last, so it wins when x is VF.
	case arch.ADDR:
		sum := int(v[x]) + int(v[y])
		v[x] = byte(sum)
		v[arch.VF] = flag(sum > 0xff)
	case arch.SUB:
		a, b := v[x], v[y]
		v[x] = a - b
		v[arch.VF] = flag(a >= b)
	case arch.SUBN:
		a, b := v[x], v[y]
		v[x] = b - a
		v[arch.VF] = flag(b >= a)
	case arch.SHR:
		a := v[x]
		v[x] = a >> 1
		v[arch.VF] = a & 1
	case arch.SHL:
		a := v[x]
		v[x] = a << 1
		v[arch.VF] = a >> 7

	case arch.LDI:
		c.i = uint16(instr.NNN)
	case arch.RND:
		v[x] = byte(c.rng.Intn(0x100)) & nn
	case arch.DRW:
		return c.draw(int(v[x]), int(v[y]), instr.N)

	default:
		return ErrUnsupported
	}

	return nil
}

// draw XORs n rows of sprite data, read from memory at I, onto the display.
func (c *CPU) draw(x, y, n int) error {
	var buf [15]byte

	sprite := buf[:n]
	if err := c.memory.Read(int(c.i), sprite); err != nil {
		return err
	}

	c.v[arch.VF] = flag(c.display.DrawSprite(x, y, sprite))
	return nil
}

// skipIf skips the next instruction if cond is true.
func (c *CPU) skipIf(cond bool) {
	if cond {
		c.pc += 2
	}
}

// push pushes the given address onto the call stack.
func (c *CPU) push(addr uint16) error {
	if c.sp >= len(c.stack) {
		return errors.Wrapf(ErrStackOverflow, "depth %d", c.sp)
	}
	c.stack[c.sp] = addr
	c.sp++
	return nil
}

// pop returns the top address from the call stack.
func (c *CPU) pop() (uint16, error) {
	if c.sp == 0 {
		return 0, ErrStackUnderflow
	}
	c.sp--
	return c.stack[c.sp], nil
}

func flag(v bool) byte {
	if v {
		return 1
	}
	return 0
}
