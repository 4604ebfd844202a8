package vm

import (
	"fmt"

	"github.com/pkg/errors"
)

// Known error conditions. Runtime errors returned by CPU.Step are of type
// *Error and have one of these as their cause.
var (
	ErrUnsupported     = errors.New("unsupported instruction")
	ErrStackOverflow   = errors.New("stack overflow")
	ErrStackUnderflow  = errors.New("stack underflow")
	ErrMemoryBounds    = errors.New("memory access out of bounds")
	ErrProgramTooLarge = errors.New("program too large")
	ErrKeyRange        = errors.New("key out of range")
)

// Error defines a runtime error.
type Error struct {
	*Instruction
	Err error
}

// NewError creates a new error for the given instruction.
// The instruction is copied, so the error stays valid after
// the CPU moves on.
func NewError(instr *Instruction, err error) *Error {
	i := *instr
	return &Error{
		Instruction: &i,
		Err:         err,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%04x: %v", e.IP, e.Err)
}

// Cause returns the underlying error.
func (e *Error) Cause() error { return e.Err }

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Err }
