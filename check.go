package fqdn

// Validate checks that b is a well-formed wire encoding: a sequence of
// length-prefixed labels ending with the nul terminator as the very last
// byte, within the policy's limits. It reads the declared lengths and never
// indexes past the slice.
//
// Validation is fail-fast: the first violation is returned and nothing else
// is inspected. Mixed-case letters are accepted here (comparisons fold);
// only the constructors that own their buffer fold in place.
func (p Policy) Validate(b []byte) error {
	if len(b) == 0 || b[len(b)-1] != 0 {
		return ErrTrailingNulCharMissing
	}
	if p.exceedsNameLimit(len(b)) {
		return ErrTooLongDomainName
	}

	limit := p.labelLimit()
	i := 0
	for {
		n := int(b[i])
		i++
		if n == 0 {
			// Terminator: only valid as the final byte.
			if i != len(b) {
				return ErrInvalidStructure
			}
			return nil
		}
		// The label and the terminator must both fit in what remains.
		if n > len(b)-i-1 {
			return ErrInvalidStructure
		}
		if n > limit {
			return ErrTooLongLabel
		}
		if err := p.checkLabel(b[i:i+n], false); err != nil {
			return err
		}
		i += n
	}
}

// Validate checks b against the Default policy. See Policy.Validate.
func Validate(b []byte) error {
	return Default.Validate(b)
}
