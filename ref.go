package fqdn

import "strings"

// rootWire is the encoding of the root domain: a lone terminator. It backs
// zero-value views so that navigation never has to special-case nil.
var rootWire = []byte{0}

// Ref is a non-owning view over a validated wire encoding. It holds no
// storage of its own: a Ref obtained from an [FQDN] or by navigation aliases
// that value's buffer and must not be retained past it. All operations are
// read-only and zero-copy.
//
// The zero value is a view of the root domain.
type Ref struct {
	b []byte
}

// RefFromBytes validates b and returns a view over it, without copying. The
// terminator must already be present. The input is never mutated, so
// mixed-case letters are kept as-is; every comparison folds case instead.
func (p Policy) RefFromBytes(b []byte) (Ref, error) {
	if err := p.Validate(b); err != nil {
		return Ref{}, err
	}
	return Ref{b: b}, nil
}

// RefFromBytes validates b against the Default policy. See
// Policy.RefFromBytes.
func RefFromBytes(b []byte) (Ref, error) {
	return Default.RefFromBytes(b)
}

// RefFromBytesUnchecked returns a view over b without any validation.
//
// The caller must guarantee that b is a well-formed encoding: length-prefixed
// labels over the allowed alphabet, terminated by a final nul byte. Passing
// anything else corrupts every operation on the result (out-of-range slicing
// included). This is the escape hatch for bytes whose validity is already
// established, e.g. a name sliced out of a message that was validated as a
// whole.
func RefFromBytesUnchecked(b []byte) Ref {
	return Ref{b: b}
}

// wire returns the backing encoding, substituting the root encoding for the
// zero value.
func (d Ref) wire() []byte {
	if len(d.b) == 0 {
		return rootWire
	}
	return d.b
}

func (d Ref) firstLabelLen() int {
	return int(d.wire()[0])
}

// Bytes returns the canonical encoding, terminator included. The slice
// aliases the underlying buffer and must not be modified.
func (d Ref) Bytes() []byte {
	return d.wire()
}

// IsRoot reports whether the view is the root domain (no labels).
func (d Ref) IsRoot() bool {
	return d.firstLabelLen() == 0
}

// IsTLD reports whether the view holds exactly one label.
func (d Ref) IsTLD() bool {
	w := d.wire()
	n := int(w[0])
	return n != 0 && w[n+1] == 0
}

// Depth counts the labels; the root has depth 0.
func (d Ref) Depth() int {
	depth := 0
	for it := d.Hierarchy(); it.Next(); {
		depth++
	}
	return depth
}

// Parent returns the view with the first label dropped. The second result is
// false when there is no parent to return, i.e. for the root and for
// top-level domains (the root is not part of the hierarchy).
func (d Ref) Parent() (Ref, bool) {
	w := d.wire()
	n := int(w[0])
	if n == 0 {
		return Ref{}, false
	}
	parent := Ref{b: w[n+1:]}
	if parent.IsRoot() {
		return Ref{}, false
	}
	return parent, true
}

// TLD returns the last label of the domain as a single-label view. For a
// domain that already is a TLD it returns the view itself; for the root the
// second result is false.
func (d Ref) TLD() (Ref, bool) {
	if d.IsRoot() {
		return Ref{}, false
	}
	cur := d
	for {
		next, ok := cur.Parent()
		if !ok {
			return cur, true
		}
		cur = next
	}
}

// HierarchyIter walks a domain and its successive parents down to, but not
// including, the root. Each step skips one label's length-prefixed span.
type HierarchyIter struct {
	next Ref
	cur  Ref
}

// Hierarchy returns an iterator over the domain and its parents:
//
//	for it := d.Hierarchy(); it.Next(); {
//		sub := it.Domain()
//	}
//
// For `rust-lang.github.com.` it yields `rust-lang.github.com.`,
// `github.com.` and `com.`, in that order. The root yields nothing.
func (d Ref) Hierarchy() *HierarchyIter {
	return &HierarchyIter{next: d}
}

// Next advances the iterator, reporting whether a domain is available.
func (it *HierarchyIter) Next() bool {
	n := it.next.firstLabelLen()
	if n == 0 {
		return false
	}
	it.cur = it.next
	it.next = Ref{b: it.next.wire()[n+1:]}
	return true
}

// Domain returns the view at the current position. Only valid after a true
// Next.
func (it *HierarchyIter) Domain() Ref {
	return it.cur
}

// Ancestors returns the hierarchy as a slice: the domain itself first, its
// TLD last. The views alias the receiver's buffer. The root yields nil.
func (d Ref) Ancestors() []Ref {
	var out []Ref
	for it := d.Hierarchy(); it.Next(); {
		out = append(out, it.Domain())
	}
	return out
}

// Labels returns the decoded label texts, lowercased, outermost first:
// `rust-lang.github.com.` yields "rust-lang", "github", "com". The root
// yields nil.
func (d Ref) Labels() []string {
	return d.AppendLabels(nil)
}

// AppendLabels appends the decoded labels to dst and returns the extended
// slice, for callers reusing a buffer across names.
func (d Ref) AppendLabels(dst []string) []string {
	for it := d.Hierarchy(); it.Next(); {
		cur := it.Domain().wire()
		dst = append(dst, labelString(cur[1:1+cur[0]]))
	}
	return dst
}

// labelString materializes a stored label as lowercase text. The canonical
// form is already folded except for views built over unchecked or unowned
// bytes, so the fold is usually a straight copy.
func labelString(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		sb.WriteByte(fold(c))
	}
	return sb.String()
}

// IsSubdomainOf reports whether the domain sits at or below suffix: the
// relation is reflexive, so every domain is a subdomain of itself, and
// everything is a subdomain of the root.
func (d Ref) IsSubdomainOf(suffix Ref) bool {
	a, b := d.wire(), suffix.wire()
	if len(a) < len(b) {
		return false
	}
	return equalFold(a[len(a)-len(b):], b)
}

// String renders the dotted text form, lowercase and without a trailing dot;
// the root renders as ".". Policy-aware rendering (trailing dot, Unicode
// display) is provided by Policy.Render.
func (d Ref) String() string {
	if d.IsRoot() {
		return "."
	}
	w := d.wire()
	var sb strings.Builder
	sb.Grow(len(w) - 2)
	first := true
	for it := d.Hierarchy(); it.Next(); {
		if !first {
			sb.WriteByte('.')
		}
		first = false
		cur := it.Domain().wire()
		for _, c := range cur[1 : 1+cur[0]] {
			sb.WriteByte(fold(c))
		}
	}
	return sb.String()
}

// Render formats the domain according to the policy: a trailing dot when
// TrailingDot is set, and Unicode display form when IDN is set. The root
// always renders as ".".
func (p Policy) Render(d Ref) string {
	if d.IsRoot() {
		return "."
	}
	var s string
	if p.IDN {
		s = d.Unicode()
	} else {
		s = d.String()
	}
	if p.TrailingDot {
		s += "."
	}
	return s
}
