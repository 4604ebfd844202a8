package vm

import "github.com/pkg/errors"

const (
	MemoryCapacity  = 0x1000                        // Total size of memory.
	ProgramStart    = 0x200                         // Address at which programs are loaded and execution begins.
	ProgramCapacity = MemoryCapacity - ProgramStart // Largest program that can be loaded.
)

// Memory defines the system's memory bank. All accessors are bounds checked.
type Memory [MemoryCapacity]byte

// U8 returns the 8-bit value at the given address.
func (m *Memory) U8(addr int) (byte, error) {
	if err := checkBounds(addr, 1); err != nil {
		return 0, err
	}
	return m[addr], nil
}

// SetU8 sets the 8-bit value at the given address.
func (m *Memory) SetU8(addr int, value byte) error {
	if err := checkBounds(addr, 1); err != nil {
		return err
	}
	m[addr] = value
	return nil
}

// U16 returns the big-endian 16-bit value at the given address.
func (m *Memory) U16(addr int) (uint16, error) {
	if err := checkBounds(addr, 2); err != nil {
		return 0, err
	}
	return uint16(m[addr])<<8 | uint16(m[addr+1]), nil
}

// Write writes len(p) bytes from p into memory, starting at the given address.
// Nothing is written if p does not fit.
func (m *Memory) Write(addr int, p []byte) error {
	if err := checkBounds(addr, len(p)); err != nil {
		return err
	}
	copy(m[addr:], p)
	return nil
}

// Read reads len(p) bytes from memory into p, starting at the given address.
// Nothing is read if the range does not fit.
func (m *Memory) Read(addr int, p []byte) error {
	if err := checkBounds(addr, len(p)); err != nil {
		return err
	}
	copy(p, m[addr:])
	return nil
}

// checkBounds returns ErrMemoryBounds if [addr, addr+n) is not
// entirely inside memory.
func checkBounds(addr, n int) error {
	if addr < 0 || n < 0 || addr+n > MemoryCapacity {
		return errors.Wrapf(ErrMemoryBounds, "%d bytes at %04x", n, addr)
	}
	return nil
}
