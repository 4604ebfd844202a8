package vm

import (
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDrawSpriteSelfInverse(t *testing.T) {
	var d Display
	sprite := font[FontAddress(8) : FontAddress(8)+FontHeight]

	assert.False(t, d.DrawSprite(30, 10, sprite))
	assert.True(t, d.DrawSprite(30, 10, sprite))
	assert.Equal(t, Display{}, d)
}

func TestDrawSpriteWrapsNegative(t *testing.T) {
	var d Display
	d.DrawSprite(-1, -1, []byte{0x80})
	assert.True(t, d.Pixel(63, 31))
	assert.True(t, d.Pixel(-1, -1))
}

func TestDisplayString(t *testing.T) {
	var d Display
	d.DrawSprite(0, 0, []byte{0xc0})
	d.DrawSprite(63, 31, []byte{0x80})

	lines := strings.Split(strings.TrimSuffix(d.String(), "\n"), "\n")
	assert.Equal(t, DisplayHeight, len(lines))
	assert.Equal(t, "##"+strings.Repeat(".", DisplayWidth-2), lines[0])
	assert.Equal(t, strings.Repeat(".", DisplayWidth-1)+"#", lines[DisplayHeight-1])
}

func TestDisplayClear(t *testing.T) {
	var d Display
	d.DrawSprite(5, 5, []byte{0xff, 0xff})
	d.Clear()
	assert.Equal(t, Display{}, d)
}
