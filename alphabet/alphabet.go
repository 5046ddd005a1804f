/*
Package alphabet holds the digit alphabet of the Punycode bootstring parameters.

Digit values 0..25 are written as 'a'..'z', values 26..35 as '0'..'9'.
Decoding accepts 'A'..'Z' as well, mapping them to the same values as their
lowercase counterparts.
*/
package alphabet

// Base is the number of digits in the alphabet.
const Base = 36

// table maps an input byte to digit value + 1.
// 0 means "not part of the alphabet".
var table [256]uint8

func init() {
	for c := 'a'; c <= 'z'; c++ {
		table[c] = uint8(c-'a') + 1
		table[c-'a'+'A'] = uint8(c-'a') + 1
	}
	for c := '0'; c <= '9'; c++ {
		table[c] = uint8(c-'0') + 26 + 1
	}
}

// Digit returns the digit value of an encoded byte.
// The second return value is false if b is not part of the alphabet.
func Digit(b byte) (uint32, bool) {
	d := table[b]
	if d == 0 {
		return 0, false
	}
	return uint32(d - 1), true
}

// Byte returns the lowercase encoding of digit value d.
// d must be less than Base.
func Byte(d uint32) byte {
	if d < 26 {
		return byte(d) + 'a'
	}
	if d < Base {
		return byte(d-26) + '0'
	}
	panic("alphabet: digit value out of range")
}

// Contains reports whether b is one of the bytes an encoder may emit as a digit.
func Contains(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}
