package fqdn

import "strings"

// canonicalByte returns the canonical comparison byte at one position of a
// wire encoding: length prefixes and the terminator pass through unchanged,
// label characters are folded through the class table. rem tracks how many
// bytes remain in the current label (0 means the next byte is a length
// prefix), keeping the walk aligned with the structure so that a length
// prefix whose value happens to fall in the 'A'..'Z' range is never folded.
func canonicalByte(w []byte, i int, rem *int) byte {
	c := w[i]
	if *rem == 0 {
		*rem = int(c)
		return c
	}
	*rem--
	return fold(c)
}

// equalFold compares two encodings byte-wise through canonicalByte, so
// differently-cased buffers of the same name compare equal while label
// lengths still compare numerically.
func equalFold(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	ra, rb := 0, 0
	for i := range a {
		if canonicalByte(a, i, &ra) != canonicalByte(b, i, &rb) {
			return false
		}
	}
	return true
}

// Equal reports case-insensitive equality of two domains: same labels, same
// lengths, every character pair in the same class. It never depends on
// whether either buffer was pre-folded.
func (d Ref) Equal(other Ref) bool {
	return equalFold(d.wire(), other.wire())
}

// Compare orders two domains lexicographically over their case-folded
// canonical encodings. The order is total and consistent with Equal: Compare
// returns 0 exactly when Equal returns true. It is usable as a sort or tree
// key.
func (d Ref) Compare(other Ref) int {
	a, b := d.wire(), other.wire()
	ra, rb := 0, 0
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		ca := canonicalByte(a, i, &ra)
		cb := canonicalByte(b, i, &rb)
		switch {
		case ca < cb:
			return -1
		case ca > cb:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// appendCanonical appends the case-folded canonical form of a wire encoding
// to dst, folding label characters only.
func appendCanonical(dst, w []byte) []byte {
	rem := 0
	for i := range w {
		dst = append(dst, canonicalByte(w, i, &rem))
	}
	return dst
}

// Key returns the case-folded canonical encoding as a string, for use as a
// map or set key. Two domains have the same Key exactly when they are Equal,
// so a map[string]T keyed this way deduplicates names regardless of case.
func (d Ref) Key() string {
	w := d.wire()
	return string(appendCanonical(make([]byte, 0, len(w)), w))
}

// EqualString compares the domain against a dotted string without building a
// canonical buffer: labels are split and matched on the fly through the
// class table. A single trailing dot on s is tolerated, matching the Default
// policy; use Policy.EqualString for strict trailing-dot semantics.
func (d Ref) EqualString(s string) bool {
	if strings.HasSuffix(s, ".") {
		s = s[:len(s)-1]
	}
	w := d.wire()
	if w[0] == 0 {
		return s == ""
	}

	i, j := 0, 0
	for {
		n := int(w[i])
		i++
		if n == 0 {
			return j == len(s)
		}
		if i > 1 {
			// A dot must separate this label from the previous one.
			if j >= len(s) || s[j] != '.' {
				return false
			}
			j++
		}
		if j+n > len(s) {
			return false
		}
		for k := 0; k < n; k++ {
			// Label characters never fold to '.', so an overlong string
			// label fails here and an overshort one fails the next
			// separator check.
			if fold(w[i+k]) != fold(s[j+k]) {
				return false
			}
		}
		i += n
		j += n
	}
}

// EqualString compares against a dotted string under the policy's
// trailing-dot rule: when TrailingDot is set, a string without the dot never
// matches.
func (p Policy) EqualString(d Ref, s string) bool {
	if p.TrailingDot && !strings.HasSuffix(s, ".") {
		return false
	}
	return d.EqualString(s)
}
