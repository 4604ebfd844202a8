package vm

// TimerFrequency is the rate in herz at which the host is expected
// to call TickTimers.
const TimerFrequency = 60

// TickTimers decrements the delay and sound timers if they are not zero.
//
// Returns true when the sound timer went from 1 to 0; this is the edge on
// which the host should stop its tone.
func (c *CPU) TickTimers() bool {
	if c.delay > 0 {
		c.delay--
	}

	if c.sound == 0 {
		return false
	}

	c.sound--
	return c.sound == 0
}

// SoundActive returns true while the sound timer is running.
func (c *CPU) SoundActive() bool { return c.sound > 0 }

// DelayTimer returns the delay timer value.
func (c *CPU) DelayTimer() byte { return c.delay }

// SoundTimer returns the sound timer value.
func (c *CPU) SoundTimer() byte { return c.sound }

// SetDelayTimer sets the delay timer.
func (c *CPU) SetDelayTimer(v byte) { c.delay = v }

// SetSoundTimer sets the sound timer.
func (c *CPU) SetSoundTimer(v byte) { c.sound = v }
