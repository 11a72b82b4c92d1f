package fqdn

// classes maps every byte value to its canonical character class, encoded as
// the case-folded byte for allowed label characters and 0 for everything
// else. Class 0 doubles as "not a label character". The table drives both
// validation and case-insensitive comparison, so lookups stay branch-free in
// the hot paths.
//
// Uppercase letters share the class of their lowercase pair (RFC 4343).
// Underscore and '#' carry their own classes; policies that restrict the
// alphabet reject them after the lookup.
var classes = func() (t [256]byte) {
	for c := byte('a'); c <= 'z'; c++ {
		t[c] = c
		t[c-'a'+'A'] = c
	}
	for c := byte('0'); c <= '9'; c++ {
		t[c] = c
	}
	t['-'] = '-'
	t['_'] = '_'
	t['#'] = '#'
	return t
}()

// fold returns the canonical form of one label character: its class for
// allowed characters, the byte itself otherwise. Apply it to label bytes
// only; length prefixes are canonicalized structurally (see canonicalByte).
func fold(c byte) byte {
	if f := classes[c]; f != 0 {
		return f
	}
	return c
}

// isLetterClass reports whether the byte's class is an ASCII letter.
func isLetterClass(c byte) bool {
	f := classes[c]
	return f >= 'a' && f <= 'z'
}
