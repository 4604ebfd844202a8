package vm

// PC returns the program counter.
func (c *CPU) PC() uint16 { return c.pc }

// I returns the index register.
func (c *CPU) I() uint16 { return c.i }

// V returns the value of general purpose register Vx.
func (c *CPU) V(x int) byte { return c.v[x&0xf] }

// SP returns the number of return addresses on the call stack.
func (c *CPU) SP() int { return c.sp }

// Memory returns a copy of system memory.
func (c *CPU) Memory() Memory { return c.memory }

// Display returns a copy of the framebuffer.
func (c *CPU) Display() Display { return c.display }

// SetKey marks the given key as pressed or released.
func (c *CPU) SetKey(key int, pressed bool) error {
	return c.keys.Set(key, pressed)
}

// Key returns true if the given key is held down.
func (c *CPU) Key(key int) bool {
	return c.keys.Pressed(key)
}
