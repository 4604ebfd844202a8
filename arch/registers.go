package arch

import (
	"fmt"
	"strconv"
	"strings"
)

// RegisterCount is the number of general purpose registers V0-VF.
const RegisterCount = 16

// VF is the index of the flag register. Arithmetic, shift and draw
// instructions overwrite it as a side effect.
const VF = 0xf

// IsRegister returns true if the given name represents a known register.
func IsRegister(name string) bool {
	return RegisterIndex(name) > -1
}

// RegisterIndex returns the index for the given register, e.g. "v3" or "VF".
// Returns -1 if the name is not recognized.
func RegisterIndex(name string) int {
	if len(name) != 2 || strings.ToUpper(name[:1]) != "V" {
		return -1
	}

	n, err := strconv.ParseUint(name[1:], 16, 8)
	if err != nil {
		return -1
	}
	return int(n)
}

// RegisterName returns the name associated with the given register index.
// Returns "" if the index is not recognized.
func RegisterName(n int) string {
	if n < 0 || n >= RegisterCount {
		return ""
	}
	return fmt.Sprintf("V%X", n)
}
