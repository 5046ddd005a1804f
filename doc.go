/*
Package punycode implements the Bootstring encoding of RFC 3492 with the
parameter set used for Internationalized Domain Names (Punycode).

Encode transforms a sequence of Unicode code points, typically a single
domain-name label, into a pure-ASCII string that a DNS resolver can transmit
unmodified. Decode is its exact inverse. Neither function adds or strips the
ACE prefix "xn--", and neither enforces the 63-octet label limit; this is
done by package ace, which also splits domain names into labels.

All arithmetic is carried out on 32-bit unsigned integers with explicit
overflow checks. Inputs which would overflow are rejected rather than
silently wrapped, so this package accepts exactly the inputs which other
conforming implementations accept.

Both directions are pure functions: they hold no state between calls and
are safe for concurrent use. They never log; every failure is returned to
the caller as an *Error.

Further Reading

	https://www.rfc-editor.org/rfc/rfc3492.html
	https://www.rfc-editor.org/rfc/rfc5891.html   (IDNA2008 protocol)

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package punycode

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
