package fqdn

import (
	"strings"

	"golang.org/x/net/idna"
)

// acePrefix tags a label carrying a Punycode-encoded Unicode name
// (RFC 3492 / RFC 5890).
const acePrefix = "xn--"

// punycode does raw ACE transcoding without IDNA mapping; case-folding is
// our own job and happens before encoding, like everywhere else in the
// package.
var punycode = idna.Punycode

// idnToASCII rewrites every non-ASCII label of a dotted name into its ACE
// form. ASCII labels pass through untouched, so the transform is the
// identity on names that were already plain. Labels that Punycode cannot
// represent yield ErrInvalidLabelChar. Empty labels are left in place for
// the parser to reject as ErrEmptyLabel.
func idnToASCII(s string) (string, error) {
	if isASCII(s) {
		return s, nil
	}
	labels := strings.Split(s, ".")
	for i, label := range labels {
		if isASCII(label) {
			continue
		}
		ace, err := punycode.ToASCII(strings.ToLower(label))
		if err != nil {
			return "", ErrInvalidLabelChar
		}
		labels[i] = ace
	}
	return strings.Join(labels, "."), nil
}

// Unicode renders the display form of the domain: labels carrying the xn--
// prefix are decoded back to their Unicode text, others are passed through.
// Display never fails; a label whose ACE payload does not decode is rendered
// literally. There is no trailing dot; the root renders as ".".
func (d Ref) Unicode() string {
	if d.IsRoot() {
		return "."
	}
	var sb strings.Builder
	first := true
	for it := d.Hierarchy(); it.Next(); {
		if !first {
			sb.WriteByte('.')
		}
		first = false
		cur := it.Domain().wire()
		label := labelString(cur[1 : 1+cur[0]])
		if strings.HasPrefix(label, acePrefix) {
			if decoded, err := punycode.ToUnicode(label); err == nil {
				label = decoded
			}
		}
		sb.WriteString(label)
	}
	return sb.String()
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			return false
		}
	}
	return true
}
