package vm

import "github.com/pkg/errors"

// KeyCount is the number of keys on the hex keypad.
const KeyCount = 16

// Keypad holds the pressed state of each key 0-F.
type Keypad [KeyCount]bool

// Set marks the given key as pressed or released.
func (k *Keypad) Set(key int, pressed bool) error {
	if key < 0 || key >= KeyCount {
		return errors.Wrapf(ErrKeyRange, "key %d", key)
	}
	k[key] = pressed
	return nil
}

// Pressed returns true if the given key is held down.
// Unknown keys are never pressed.
func (k *Keypad) Pressed(key int) bool {
	return key >= 0 && key < KeyCount && k[key]
}
