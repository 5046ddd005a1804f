package punycode

import (
	"math"

	"github.com/npillmayer/punycode/alphabet"
)

// Bootstring parameters for Punycode, RFC 3492 section 5.
const (
	base        uint32 = alphabet.Base
	tmin        uint32 = 1
	tmax        uint32 = 26
	skew        uint32 = 38
	damp        uint32 = 700
	initialBias uint32 = 72
	initialN    uint32 = 0x80
	delimiter          = '-'
)

const maxUint = math.MaxUint32

// step is one transition of the insertion-unsort state machine: the code
// point n which is inserted, the delta which encodes its position and the
// bias in effect while the delta is written or read.
type step struct {
	n, delta, bias uint32
}

// stepObserver is called once per extended code point. Encoder and decoder
// produce identical step sequences for an input and its encoding.
type stepObserver func(step)

// adapt computes the bias for the next delta, RFC 3492 section 6.1.
func adapt(delta, numPoints uint32, first bool) uint32 {
	if first {
		delta /= damp
	} else {
		delta /= 2
	}
	delta += delta / numPoints
	k := uint32(0)
	for delta > ((base-tmin)*tmax)/2 {
		delta /= base - tmin
		k += base
	}
	return k + ((base-tmin+1)*delta)/(delta+skew)
}

// threshold returns t for digit position k, clamped to [tmin, tmax].
func threshold(k, bias uint32) uint32 {
	switch {
	case k <= bias:
		return tmin
	case k >= bias+tmax:
		return tmax
	}
	return k - bias
}

// appendVarint appends the generalized variable-length integer
// representation of q to dst.
func appendVarint(dst []byte, q, bias uint32) []byte {
	for k := base; ; k += base {
		t := threshold(k, bias)
		if q < t {
			return append(dst, alphabet.Byte(q))
		}
		dst = append(dst, alphabet.Byte(t+(q-t)%(base-t)))
		q = (q - t) / (base - t)
	}
}
