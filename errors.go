package punycode

import "fmt"

// ErrorKind classifies the failures of Encode and Decode.
type ErrorKind int

const (
	// Overflow: an intermediate value exceeded 32-bit unsigned arithmetic.
	Overflow ErrorKind = iota + 1
	// InvalidDigit: a byte of the encoded part is not in [a-zA-Z0-9].
	InvalidDigit
	// InvalidBasicCodePoint: a byte before the last delimiter is >= 0x80.
	InvalidBasicCodePoint
	// UnexpectedEnd: the input ends in the middle of an integer.
	UnexpectedEnd
	// InsertionIndexOutOfRange: a decoded position lies beyond the output.
	InsertionIndexOutOfRange
	// InvalidCodePoint: a code point is not a Unicode scalar value.
	InvalidCodePoint
)

func (k ErrorKind) String() string {
	switch k {
	case Overflow:
		return "overflow"
	case InvalidDigit:
		return "invalid digit"
	case InvalidBasicCodePoint:
		return "invalid basic code point"
	case UnexpectedEnd:
		return "unexpected end of input"
	case InsertionIndexOutOfRange:
		return "insertion index out of range"
	case InvalidCodePoint:
		return "invalid code point"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is returned by Encode and Decode.
//
// Pos is the index into the input (runes for Encode, bytes for Decode) at
// which the failure was detected, or -1 if there is no such position.
type Error struct {
	Kind ErrorKind
	Pos  int
}

func (e *Error) Error() string {
	if e.Pos < 0 {
		return "punycode: " + e.Kind.String()
	}
	return fmt.Sprintf("punycode: %s at position %d", e.Kind, e.Pos)
}

// Is reports whether target is an *Error of the same kind, making
// errors.Is(err, ErrOverflow) and friends work regardless of position.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for use with errors.Is.
var (
	ErrOverflow                 = &Error{Kind: Overflow, Pos: -1}
	ErrInvalidDigit             = &Error{Kind: InvalidDigit, Pos: -1}
	ErrInvalidBasicCodePoint    = &Error{Kind: InvalidBasicCodePoint, Pos: -1}
	ErrUnexpectedEnd            = &Error{Kind: UnexpectedEnd, Pos: -1}
	ErrInsertionIndexOutOfRange = &Error{Kind: InsertionIndexOutOfRange, Pos: -1}
	ErrInvalidCodePoint         = &Error{Kind: InvalidCodePoint, Pos: -1}
)

func errorAt(kind ErrorKind, pos int) error {
	return &Error{Kind: kind, Pos: pos}
}
