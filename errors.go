// Package fqdn provides a canonical, memory-compact representation of fully
// qualified domain names in the RFC 1035 wire encoding.
//
// Standards Compliance:
//
//   - RFC 1035: Domain Names - Implementation and Specification (label
//     encoding, length limits)
//   - RFC 4343: Domain Name System Case Insensitivity Clarification
//     (comparisons ignore ASCII case)
//   - RFC 3492: Punycode (optional internationalized labels, via
//     golang.org/x/net/idna)
//
// A domain name is stored as its wire encoding: each label is prefixed by a
// length byte and the sequence ends with a single zero byte (the root).
// For instance `github.com.` is exactly `\x06github\x03com\x00`.
//
// Two representations share that encoding. [FQDN] owns its buffer and is
// immutable once constructed; [Ref] is a non-owning view over validated
// bytes, produced by borrowing an FQDN or by hierarchy navigation. Both are
// byte-for-byte interchangeable.
//
// Error Handling:
//
// Every fallible entry point returns one of the sentinel errors below,
// matched with errors.Is. All of them are deterministic input-validation
// failures; none is retryable.
package fqdn

import "errors"

var (
	// ErrTrailingDotMissing reports text input without a trailing dot under
	// a policy that requires one (e.g. `github.com` instead of `github.com.`).
	ErrTrailingDotMissing = errors.New("fqdn: trailing dot missing")

	// ErrTrailingNulCharMissing reports byte input that does not end with
	// the nul terminator (e.g. `\x06github\x03com` without the final `\x00`).
	ErrTrailingNulCharMissing = errors.New("fqdn: trailing nul byte missing")

	// ErrInvalidLabelChar reports a character outside the allowed label
	// alphabet (letters, digits, hyphen, and `_`/`#` unless restricted).
	ErrInvalidLabelChar = errors.New("fqdn: invalid character in label")

	// ErrInvalidStructure reports byte input whose label length prefixes are
	// inconsistent with the actual remaining bytes.
	ErrInvalidStructure = errors.New("fqdn: invalid byte sequence structure")

	// ErrTooLongDomainName reports a name whose encoded form exceeds the
	// policy's total length limit.
	ErrTooLongDomainName = errors.New("fqdn: domain name too long")

	// ErrTooLongLabel reports a single label exceeding the policy's label
	// length limit.
	ErrTooLongLabel = errors.New("fqdn: label too long")

	// ErrLabelDoesNotStartWithLetter reports a label beginning with a digit
	// or hyphen under a policy that requires a leading letter.
	ErrLabelDoesNotStartWithLetter = errors.New("fqdn: label does not start with a letter")

	// ErrLabelCannotStartWithHyphen reports a label beginning with a hyphen
	// under a policy that forbids edge hyphens.
	ErrLabelCannotStartWithHyphen = errors.New("fqdn: label starts with a hyphen")

	// ErrLabelCannotEndWithHyphen reports a label ending with a hyphen under
	// a policy that forbids edge hyphens.
	ErrLabelCannotEndWithHyphen = errors.New("fqdn: label ends with a hyphen")

	// ErrEmptyLabel reports a zero-length label before the terminator, e.g.
	// consecutive dots (`github..com.`) or a leading dot (`.github.com.`).
	ErrEmptyLabel = errors.New("fqdn: empty label")
)
