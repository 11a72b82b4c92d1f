package fqdn

import "math"

// Limits used by the predefined policies.
const (
	// RFCLabelLimit is the per-label byte limit from RFC 1035 section 2.3.4.
	RFCLabelLimit = 63
	// RFCNameLimit is the whole-name byte limit (encoded form, terminator
	// included) from RFC 1035 section 2.3.4.
	RFCNameLimit = 255
	// RelaxedLabelLimit is the per-label limit when the RFC limit is not
	// enforced; a length prefix is a single byte, so 255 is the ceiling.
	RelaxedLabelLimit = 255
)

// maxEncodedLen bounds the relaxed name length. Even an "unlimited" policy
// refuses encodings that a 32-bit index could not address.
const maxEncodedLen = math.MaxUint32

// Policy is the set of validation rules applied when parsing and validating
// domain names. The zero value is the relaxed [Default] policy; stricter
// rules are opted into per field. A Policy is a plain value: copy it, adjust
// fields, and use the methods on the result.
type Policy struct {
	// LabelLimit is the maximum label length in bytes. Zero means
	// RelaxedLabelLimit (255).
	LabelLimit int

	// NameLimit is the maximum encoded name length in bytes, terminator
	// included. Zero means no limit beyond maxEncodedLen.
	NameLimit int

	// DenySpecialChars restricts the label alphabet to letters, digits and
	// hyphen, rejecting '_' and '#' which the relaxed policy tolerates for
	// the benefit of things like DNS-SD service labels.
	DenySpecialChars bool

	// LabelStartsWithLetter requires the first character of every label to
	// be an ASCII letter.
	LabelStartsWithLetter bool

	// DenyHyphenEdges rejects labels that start or end with a hyphen.
	DenyHyphenEdges bool

	// TrailingDot requires text input to end with a dot and makes Render
	// emit one.
	TrailingDot bool

	// IDN enables Unicode labels: Parse transcodes non-ASCII labels to
	// their ASCII-compatible (xn--) form, and Render decodes them back.
	IDN bool
}

// Default is the relaxed policy: labels up to 255 bytes, no whole-name limit,
// '_' and '#' allowed, any leading character, trailing dot optional.
var Default = Policy{}

// StrictRFC1035 enforces the RFC 1035 rules: 63-byte labels, 255-byte names,
// letters/digits/hyphen only, labels starting with a letter, no hyphen at
// either edge of a label, and a mandatory trailing dot on text input.
var StrictRFC1035 = Policy{
	LabelLimit:            RFCLabelLimit,
	NameLimit:             RFCNameLimit,
	DenySpecialChars:      true,
	LabelStartsWithLetter: true,
	DenyHyphenEdges:       true,
	TrailingDot:           true,
}

func (p Policy) labelLimit() int {
	if p.LabelLimit > 0 {
		return p.LabelLimit
	}
	return RelaxedLabelLimit
}

// exceedsNameLimit reports whether an encoded length of n bytes (terminator
// included) violates the policy.
func (p Policy) exceedsNameLimit(n int) bool {
	if p.NameLimit > 0 {
		return n > p.NameLimit
	}
	return uint64(n) > maxEncodedLen
}

// checkLabel validates one label in place. When foldCase is true, uppercase
// letters are rewritten to lowercase as they are checked (the canonical form
// stores folded letters).
func (p Policy) checkLabel(label []byte, foldCase bool) error {
	for i, c := range label {
		class := classes[c]
		if class == 0 {
			return ErrInvalidLabelChar
		}
		if p.DenySpecialChars && (class == '_' || class == '#') {
			return ErrInvalidLabelChar
		}
		if i == 0 {
			if p.DenyHyphenEdges && class == '-' {
				return ErrLabelCannotStartWithHyphen
			}
			if p.LabelStartsWithLetter && !isLetterClass(c) {
				return ErrLabelDoesNotStartWithLetter
			}
		}
		if i == len(label)-1 && p.DenyHyphenEdges && class == '-' && len(label) > 1 {
			return ErrLabelCannotEndWithHyphen
		}
		if foldCase {
			label[i] = class
		}
	}
	return nil
}
