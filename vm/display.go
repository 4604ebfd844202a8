package vm

import "strings"

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Display is the monochrome framebuffer, stored row-major.
// A true pixel is lit.
type Display [DisplayWidth * DisplayHeight]bool

// Clear unsets all pixels.
func (d *Display) Clear() {
	*d = Display{}
}

// Pixel returns the state of the pixel at the given coordinates.
// Coordinates wrap around on both axes.
func (d *Display) Pixel(x, y int) bool {
	return d[offset(x, y)]
}

// DrawSprite XORs the given sprite rows onto the display with its top-left
// corner at (x, y). Each byte is one 8 pixel row, most significant bit
// leftmost. Pixels wrap around each axis independently.
//
// Returns true if any lit pixel was turned off.
func (d *Display) DrawSprite(x, y int, sprite []byte) bool {
	var collision bool

	for row, bits := range sprite {
		for col := 0; col < 8; col++ {
			if bits&(0x80>>uint(col)) == 0 {
				continue
			}

			i := offset(x+col, y+row)
			if d[i] {
				collision = true
			}
			d[i] = !d[i]
		}
	}

	return collision
}

// String renders the display as text, one line per row,
// using '#' for lit pixels and '.' otherwise.
func (d *Display) String() string {
	var sb strings.Builder
	sb.Grow((DisplayWidth + 1) * DisplayHeight)

	for y := 0; y < DisplayHeight; y++ {
		for x := 0; x < DisplayWidth; x++ {
			if d[y*DisplayWidth+x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func offset(x, y int) int {
	x %= DisplayWidth
	if x < 0 {
		x += DisplayWidth
	}
	y %= DisplayHeight
	if y < 0 {
		y += DisplayHeight
	}
	return y*DisplayWidth + x
}
