package punycode

import (
	"bytes"
	"unicode/utf8"

	"github.com/npillmayer/punycode/alphabet"
)

// DecodeString is a convenience wrapper around Decode.
func DecodeString(s string) (string, error) {
	out, err := Decode([]byte(s))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Decode returns the code points represented by the Punycode string src,
// which must not carry the ACE prefix.
//
// Everything before the last delimiter is taken as basic code points,
// everything after it as deltas. Letter digits are accepted in upper and
// lower case. On failure, no partial result is returned.
//
// Example:
//
//	"bcher-kva" => "bücher"
func Decode(src []byte) ([]rune, error) {
	return decode(src, nil)
}

func decode(src []byte, observe stepObserver) ([]rune, error) {
	if uint64(len(src)) >= maxUint {
		return nil, errorAt(Overflow, -1)
	}
	out := make([]rune, 0, len(src))
	pos := 0
	// A delimiter at index 0 has no basic code points in front of it and
	// is left to the digit loop, where it is rejected.
	if b := bytes.LastIndexByte(src, delimiter); b > 0 {
		for j, c := range src[:b] {
			if c >= 0x80 {
				return nil, errorAt(InvalidBasicCodePoint, j)
			}
			out = append(out, rune(c))
		}
		pos = b + 1
	}
	n, i, bias := initialN, uint32(0), initialBias
	first := true
	for pos < len(src) {
		oldi, w := i, uint32(1)
		for k := base; ; k += base {
			if pos >= len(src) {
				return nil, errorAt(UnexpectedEnd, pos)
			}
			digit, ok := alphabet.Digit(src[pos])
			if !ok {
				return nil, errorAt(InvalidDigit, pos)
			}
			if digit > (maxUint-i)/w {
				return nil, errorAt(Overflow, pos)
			}
			pos++
			i += digit * w
			t := threshold(k, bias)
			if digit < t {
				break
			}
			if w > maxUint/(base-t) {
				return nil, errorAt(Overflow, pos-1)
			}
			w *= base - t
		}
		delta := i - oldi
		length := uint32(len(out)) + 1
		if i/length > maxUint-n {
			return nil, errorAt(Overflow, pos-1)
		}
		n += i / length
		i %= length
		if n > utf8.MaxRune || !utf8.ValidRune(rune(n)) {
			return nil, errorAt(InvalidCodePoint, pos-1)
		}
		// unreachable after i %= length
		if int(i) > len(out) {
			return nil, errorAt(InsertionIndexOutOfRange, pos-1)
		}
		if observe != nil {
			observe(step{n: n, delta: delta, bias: bias})
		}
		bias = adapt(delta, length, first)
		first = false
		out = append(out, 0)
		copy(out[i+1:], out[i:])
		out[i] = rune(n)
		i++
	}
	return out, nil
}
