package vm

import "github.com/hexaflex/c8vm/arch"

// Instruction defines decoded instruction data.
type Instruction struct {
	IP     int    // Instruction address.
	Opcode uint16 // Raw machine code.
	Op     int    // Decoded opcode; one of the arch constants.
	X      int    // Second nibble; register Vx.
	Y      int    // Third nibble; register Vy.
	N      int    // Lowest nibble.
	NN     int    // Lowest byte.
	NNN    int    // Lowest 12 bits; an address.
}

// Decode decodes the given machine code, fetched from address ip.
func (i *Instruction) Decode(ip int, opcode uint16) {
	_, x, y, n := arch.Nibbles(opcode)

	i.IP = ip
	i.Opcode = opcode
	i.Op = arch.Decode(opcode)
	i.X = x
	i.Y = y
	i.N = n
	i.NN = int(opcode & 0xff)
	i.NNN = int(opcode & 0xfff)
}

func (i *Instruction) String() string {
	return arch.Format(i.Opcode)
}
