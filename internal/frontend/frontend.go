// Package frontend contains the host keyboard layout shared by all frontends.
//
// The hexadecimal keypad is mapped to the left side of a QWERTY keyboard:
//
//	1 2 3 C      1 2 3 4
//	4 5 6 D  ->  Q W E R
//	7 8 9 E      A S D F
//	A 0 B F      Z X C V
package frontend

import "unicode"

// Layout contains the host keys in row order of the keypad.
const Layout = "1234qwerasdfzxcv"

// keypadKeys contains the keypad key for every position of Layout.
var keypadKeys = [len(Layout)]uint8{
	0x1, 0x2, 0x3, 0xC,
	0x4, 0x5, 0x6, 0xD,
	0x7, 0x8, 0x9, 0xE,
	0xA, 0x0, 0xB, 0xF,
}

// KeyForRune returns the keypad key that the host key is mapped to.
func KeyForRune(r rune) (uint8, bool) {
	r = unicode.ToLower(r)
	for i, k := range Layout {
		if k == r {
			return keypadKeys[i], true
		}
	}
	return 0, false
}

// KeyAt returns the keypad key at the position of the layout.
func KeyAt(position int) uint8 {
	return keypadKeys[position]
}
