package vm

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/assert"
)

func TestMemoryBounds(t *testing.T) {
	var m Memory

	assert.NoError(t, m.SetU8(MemoryCapacity-1, 0xab))
	v, err := m.U8(MemoryCapacity - 1)
	assert.NoError(t, err)
	assert.Equal(t, byte(0xab), v)

	_, err = m.U8(MemoryCapacity)
	assert.True(t, errors.Is(err, ErrMemoryBounds))
	_, err = m.U8(-1)
	assert.True(t, errors.Is(err, ErrMemoryBounds))
	assert.True(t, errors.Is(m.SetU8(MemoryCapacity, 1), ErrMemoryBounds))

	_, err = m.U16(MemoryCapacity - 1)
	assert.True(t, errors.Is(err, ErrMemoryBounds))
}

func TestMemoryU16(t *testing.T) {
	var m Memory
	assert.NoError(t, m.Write(0x300, []byte{0x12, 0x34}))

	v, err := m.U16(0x300)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x1234), v)
}

func TestMemoryWriteAllOrNothing(t *testing.T) {
	var m Memory

	err := m.Write(MemoryCapacity-2, []byte{1, 2, 3})
	assert.True(t, errors.Is(err, ErrMemoryBounds))
	assert.Equal(t, Memory{}, m)

	p := []byte{9, 9, 9}
	err = m.Read(MemoryCapacity-2, p)
	assert.True(t, errors.Is(err, ErrMemoryBounds))
	assert.Equal(t, []byte{9, 9, 9}, p)
}

func TestFontAddress(t *testing.T) {
	assert.Equal(t, 0, FontAddress(0))
	assert.Equal(t, 0x4b, FontAddress(0xf))
	assert.Equal(t, 5, FontAddress(0x11))
}
