/*
Package ace converts domain names between their Unicode form and the
ASCII Compatible Encoding (ACE) used on the DNS wire.

A label containing non-ASCII code points is Punycode encoded and prefixed
with "xn--". Labels which are already ASCII pass through unchanged. The
package applies the DNS length limits (63 octets per label, 253 octets per
name) to the ASCII form, and optionally normalizes labels to Unicode NFC.

Names are expected in presentation form without escapes; a label holding
a backslash is rejected. ToUnicode passes labels without the ACE prefix
through unchanged, including labels that are not ASCII.

It does not implement the IDNA2008 validity tables, bidi rules or case
folding.
*/
package ace

import (
	"fmt"
	"strings"

	"github.com/miekg/dns"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"

	"github.com/npillmayer/punycode"
)

// tracer writes to trace with key 'punycode.ace'
func tracer() tracing.Trace {
	return tracing.Select("punycode.ace")
}

const (
	// Prefix marks a Punycode encoded label.
	Prefix = "xn--"
	// MaxLabelLength is the maximum length of a label in octets.
	MaxLabelLength = 63
	// MaxNameLength is the maximum length of a domain name in octets,
	// not counting a trailing root dot.
	MaxNameLength = 253
)

// Errors for violations of the DNS length policy.
var (
	ErrLabelTooLong = errors.New("ace: label exceeds 63 octets")
	ErrNameTooLong  = errors.New("ace: domain name exceeds 253 octets")
	ErrEmptyLabel   = errors.New("ace: empty label")
	ErrInvalidName  = errors.New("ace: malformed domain name")
)

// Option configures a Profile.
type Option func(*options)

type options struct {
	normalize    bool
	verifyLength bool
}

// Normalize sets whether labels are brought into Unicode NFC before
// encoding and after decoding.
func Normalize(enable bool) Option {
	return func(o *options) { o.normalize = enable }
}

// VerifyLength sets whether the DNS length limits are enforced and empty
// labels are rejected.
func VerifyLength(enable bool) Option {
	return func(o *options) { o.verifyLength = enable }
}

// Profile holds a conversion configuration. Profiles are immutable and may
// be shared between goroutines.
type Profile struct {
	options
}

// New creates a profile. Without options, no normalization and no length
// verification takes place.
func New(o ...Option) *Profile {
	p := &Profile{}
	for _, f := range o {
		f(&p.options)
	}
	return p
}

var (
	// Default verifies lengths but does not normalize.
	Default = New(VerifyLength(true))
	// Lookup verifies lengths and normalizes to NFC.
	Lookup = New(VerifyLength(true), Normalize(true))
)

func (p *Profile) String() string {
	return fmt.Sprintf("ace profile (nfc=%v, verify-length=%v)", p.normalize, p.verifyLength)
}

// LabelToASCII converts a single label to its ACE form.
//
// Example:
//
//	"bücher" => "xn--bcher-kva"
func (p *Profile) LabelToASCII(label string) (string, error) {
	if p.normalize {
		label = norm.NFC.String(label)
	}
	out := label
	if !isASCII(label) {
		enc, err := punycode.EncodeString(label)
		if err != nil {
			return "", errors.Wrapf(err, "label %q", label)
		}
		out = Prefix + enc
	}
	if err := p.verifyLabel(out); err != nil {
		return "", err
	}
	tracer().Debugf("label %q => %q", label, out)
	return out, nil
}

// LabelToUnicode converts a single label from its ACE form. Labels without
// the (case-insensitive) ACE prefix are returned unchanged.
//
// Example:
//
//	"xn--bcher-kva" => "bücher"
func (p *Profile) LabelToUnicode(label string) (string, error) {
	if err := p.verifyLabel(label); err != nil {
		return "", err
	}
	if !HasPrefix(label) {
		return label, nil
	}
	out, err := punycode.DecodeString(label[len(Prefix):])
	if err != nil {
		return "", errors.Wrapf(err, "label %q", label)
	}
	if p.normalize {
		out = norm.NFC.String(out)
	}
	tracer().Debugf("label %q => %q", label, out)
	return out, nil
}

// ToASCII converts every label of a domain name to its ACE form.
// A trailing root dot is preserved.
//
// Example:
//
//	"bücher.example." => "xn--bcher-kva.example."
func (p *Profile) ToASCII(name string) (string, error) {
	out, err := p.mapLabels(name, p.LabelToASCII)
	if err != nil {
		return "", err
	}
	if err = p.verifyName(out); err != nil {
		return "", err
	}
	return out, nil
}

// ToUnicode converts every ACE label of a domain name to Unicode.
// A trailing root dot is preserved.
func (p *Profile) ToUnicode(name string) (string, error) {
	if err := p.verifyName(name); err != nil {
		return "", err
	}
	return p.mapLabels(name, p.LabelToUnicode)
}

// ToASCII converts a domain name with the Default profile.
func ToASCII(name string) (string, error) {
	return Default.ToASCII(name)
}

// ToUnicode converts a domain name with the Default profile.
func ToUnicode(name string) (string, error) {
	return Default.ToUnicode(name)
}

// HasPrefix reports whether label starts with the ACE prefix, ignoring case.
func HasPrefix(label string) bool {
	return len(label) >= len(Prefix) && strings.EqualFold(label[:len(Prefix)], Prefix)
}

// mapLabels applies fn to every label of name.
func (p *Profile) mapLabels(name string, fn func(string) (string, error)) (string, error) {
	if name == "" || name == "." {
		return name, nil
	}
	labels := dns.SplitDomainName(name)
	for i, label := range labels {
		if strings.IndexByte(label, '\\') >= 0 {
			return "", errors.Wrapf(ErrInvalidName, "escaped label %q", label)
		}
		converted, err := fn(label)
		if err != nil {
			return "", errors.Wrapf(err, "domain name %q", name)
		}
		labels[i] = converted
	}
	if dns.IsFqdn(name) {
		labels = append(labels, "")
	}
	return strings.Join(labels, "."), nil
}

func (p *Profile) verifyLabel(label string) error {
	if !p.verifyLength {
		return nil
	}
	if label == "" {
		return ErrEmptyLabel
	}
	if len(label) > MaxLabelLength {
		return errors.Wrapf(ErrLabelTooLong, "label %q has %d octets", label, len(label))
	}
	return nil
}

// verifyName checks the ASCII form of a domain name.
func (p *Profile) verifyName(name string) error {
	if !p.verifyLength || name == "" || name == "." {
		return nil
	}
	n := len(name)
	if dns.IsFqdn(name) {
		n--
	}
	if n > MaxNameLength {
		return errors.Wrapf(ErrNameTooLong, "domain name has %d octets", n)
	}
	if _, ok := dns.IsDomainName(name); !ok {
		return errors.Wrapf(ErrInvalidName, "%q", name)
	}
	return nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
