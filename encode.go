package punycode

import "unicode/utf8"

// EncodeString is a convenience wrapper around Encode.
// Invalid UTF-8 in s is reported as InvalidCodePoint, with Pos counting
// code points up to the offending byte.
func EncodeString(s string) (string, error) {
	src := make([]rune, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return "", errorAt(InvalidCodePoint, len(src))
		}
		src = append(src, r)
		i += size
	}
	out, err := Encode(src)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Encode returns the Punycode form of src, without the ACE prefix.
//
// Basic code points (< 0x80) are copied to the output in their original
// order. If src holds at least one extended code point, a delimiter follows
// the basic code points (if there are any) and then the deltas of the
// extended code points. Input consisting of basic code points only is
// returned unchanged, without a trailing delimiter.
//
// Example:
//
//	"bücher" => "bcher-kva"
func Encode(src []rune) ([]byte, error) {
	return encode(src, nil)
}

func encode(src []rune, observe stepObserver) ([]byte, error) {
	if uint64(len(src)) >= maxUint {
		return nil, errorAt(Overflow, -1)
	}
	out := make([]byte, 0, len(src)+len(src)/2+1)
	extended := 0
	for i, r := range src {
		if !utf8.ValidRune(r) {
			return nil, errorAt(InvalidCodePoint, i)
		}
		if uint32(r) < initialN {
			out = append(out, byte(r))
		} else {
			extended++
		}
	}
	if extended == 0 {
		return out, nil
	}
	b := uint32(len(out))
	if b > 0 {
		out = append(out, delimiter)
	}
	n, delta, bias := initialN, uint32(0), initialBias
	total := uint32(len(src))
	for h := b; h < total; {
		m, mi := uint32(maxUint), -1 // next code point to insert, and where it first occurs
		for i, r := range src {
			if c := uint32(r); c >= n && c < m {
				m, mi = c, i
			}
		}
		assert(mi >= 0, "punycode: no code point left to encode")
		if m-n > (maxUint-delta)/(h+1) {
			return nil, errorAt(Overflow, mi)
		}
		delta += (m - n) * (h + 1)
		n = m
		for i, r := range src {
			c := uint32(r)
			if c < n {
				if delta == maxUint {
					return nil, errorAt(Overflow, i)
				}
				delta++
				continue
			}
			if c > n {
				continue
			}
			if observe != nil {
				observe(step{n: n, delta: delta, bias: bias})
			}
			out = appendVarint(out, delta, bias)
			bias = adapt(delta, h+1, h == b)
			delta = 0
			h++
		}
		if delta == maxUint {
			return nil, errorAt(Overflow, -1)
		}
		delta++
		n++
	}
	return out, nil
}
