package fqdn

import (
	"fmt"
	"strings"
)

// Parse converts a dotted domain name into its canonical wire encoding.
//
// Labels are split on '.', validated against the policy, and case-folded to
// lowercase; the trailing dot is required, tolerated or rejected per
// Policy.TrailingDot. The single dot (and, under the relaxed policy, the
// empty string) parses to the root domain.
//
// Parsing is pure: the same input under the same policy always produces the
// same bytes.
func (p Policy) Parse(s string) (FQDN, error) {
	switch {
	case s == ".":
		return FQDN{}, nil
	case s == "":
		if p.TrailingDot {
			return FQDN{}, ErrTrailingDotMissing
		}
		return FQDN{}, nil
	case s[len(s)-1] == '.':
		s = s[:len(s)-1]
	case p.TrailingDot:
		return FQDN{}, ErrTrailingDotMissing
	}

	if p.IDN {
		ascii, err := idnToASCII(s)
		if err != nil {
			return FQDN{}, err
		}
		s = ascii
	}

	// Fast rejection on the raw text length: the encoded form of an ASCII
	// name is exactly two bytes longer than its undotted text (one length
	// byte replaces each dot, plus the leading length byte and the
	// terminator).
	if p.exceedsNameLimit(len(s) + 2) {
		return FQDN{}, ErrTooLongDomainName
	}

	out := make([]byte, 0, len(s)+2)
	limit := p.labelLimit()
	start := 0
	for i := 0; i <= len(s); i++ {
		if i != len(s) && s[i] != '.' {
			continue
		}
		label := s[start:i]
		if len(label) == 0 {
			return FQDN{}, ErrEmptyLabel
		}
		if len(label) > limit {
			return FQDN{}, ErrTooLongLabel
		}
		out = append(out, byte(len(label)))
		pos := len(out)
		out = append(out, label...)
		if err := p.checkLabel(out[pos:], true); err != nil {
			return FQDN{}, err
		}
		start = i + 1
	}
	out = append(out, 0)

	if p.exceedsNameLimit(len(out)) {
		return FQDN{}, ErrTooLongDomainName
	}
	return FQDN{Ref{b: out}}, nil
}

// Parse converts a dotted domain name using the Default policy.
func Parse(s string) (FQDN, error) {
	return Default.Parse(s)
}

// MustParse is Parse panicking on invalid input. Use it for literals.
func MustParse(s string) FQDN {
	f, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("fqdn.MustParse(%q): %v", s, err))
	}
	return f
}

// Join concatenates name fragments into a single domain and parses the
// result: Join("rust-lang", "github.io") is the same name as
// Parse("rust-lang.github.io."). A fragment may carry its own trailing dot.
func (p Policy) Join(parts ...string) (FQDN, error) {
	var sb strings.Builder
	for _, part := range parts {
		sb.WriteString(part)
		if !strings.HasSuffix(part, ".") {
			sb.WriteByte('.')
		}
	}
	if sb.Len() == 0 {
		return FQDN{}, nil
	}
	return p.Parse(sb.String())
}

// Join concatenates fragments using the Default policy. See Policy.Join.
func Join(parts ...string) (FQDN, error) {
	return Default.Join(parts...)
}
