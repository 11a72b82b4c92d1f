package fqdn

// FQDN is an owned, immutable domain name holding its canonical wire
// encoding: case-folded, length-prefixed labels ending with the nul
// terminator. The zero value is the root domain.
//
// FQDN embeds [Ref], so every read-only view operation (navigation,
// comparison, rendering) is available directly on it. Once constructed an
// FQDN is never mutated and may be shared across goroutines without
// synchronization.
//
// FQDN is to Ref what an owned string is to a slice of it: the former owns
// the bytes, the latter borrows them.
type FQDN struct {
	Ref
}

// FromBytes builds an owned FQDN from a wire encoding. The input may omit
// the terminator, in which case one is appended. The bytes are copied into a
// private buffer and letters are case-folded there; the input itself is
// never modified. An empty input is the root domain.
func (p Policy) FromBytes(b []byte) (FQDN, error) {
	buf := make([]byte, len(b), len(b)+1)
	copy(buf, b)
	if len(buf) == 0 || buf[len(buf)-1] != 0 {
		buf = append(buf, 0)
	}
	if p.exceedsNameLimit(len(buf)) {
		return FQDN{}, ErrTooLongDomainName
	}

	limit := p.labelLimit()
	rest := buf[:len(buf)-1]
	for len(rest) > 0 {
		n := int(rest[0])
		switch {
		case n >= len(rest):
			// The declared label cannot fit before the terminator.
			return FQDN{}, ErrInvalidStructure
		case n == 0:
			return FQDN{}, ErrEmptyLabel
		}
		if n > limit {
			return FQDN{}, ErrTooLongLabel
		}
		if err := p.checkLabel(rest[1:1+n], true); err != nil {
			return FQDN{}, err
		}
		rest = rest[n+1:]
	}
	return FQDN{Ref{b: buf}}, nil
}

// FromBytes builds an owned FQDN using the Default policy. See
// Policy.FromBytes.
func FromBytes(b []byte) (FQDN, error) {
	return Default.FromBytes(b)
}

// Clone deep-copies the view into a new owned FQDN. The two share nothing
// afterwards, so the clone may outlive the buffer the view came from. Labels
// are folded during the copy, keeping the owned form canonical even when the
// view was built over mixed-case bytes.
func (d Ref) Clone() FQDN {
	w := d.wire()
	return FQDN{Ref{b: appendCanonical(make([]byte, 0, len(w)), w)}}
}

// View borrows the FQDN as a [Ref] sharing the same bytes. The view must not
// outlive the FQDN. Since Ref is embedded this is mostly useful where a Ref
// value is needed explicitly.
func (f FQDN) View() Ref {
	return f.Ref
}

// MarshalText renders the canonical dotted form. Together with
// UnmarshalText this is the binding point for text-based serialization
// frameworks such as encoding/json.
func (f FQDN) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText parses a dotted name under the Default policy.
func (f *FQDN) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// MarshalBinary returns a copy of the canonical wire encoding, terminator
// included. Binary serialization frameworks (e.g. CBOR) bind here.
func (f FQDN) MarshalBinary() ([]byte, error) {
	w := f.wire()
	out := make([]byte, len(w))
	copy(out, w)
	return out, nil
}

// UnmarshalBinary validates a wire encoding under the Default policy.
func (f *FQDN) UnmarshalBinary(data []byte) error {
	parsed, err := FromBytes(data)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
