package fqdn

import (
	"bytes"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqual_CaseInsensitive(t *testing.T) {
	a := MustParse("github.com.")
	b := MustParse("GitHub.COM.")

	assert.True(t, a.Equal(b.Ref))
	assert.True(t, b.Equal(a.Ref))
	assert.True(t, a.Equal(a.Ref))

	c := MustParse("gitlab.com.")
	assert.False(t, a.Equal(c.Ref))
}

func TestEqual_UnfoldedBuffers(t *testing.T) {
	// Equality must not depend on buffers being pre-folded.
	upper := RefFromBytesUnchecked([]byte("\x06GITHUB\x03COM\x00"))
	lower := RefFromBytesUnchecked([]byte("\x06github\x03com\x00"))
	assert.True(t, upper.Equal(lower))
	assert.Equal(t, 0, upper.Compare(lower))
	assert.Equal(t, upper.Key(), lower.Key())
}

func TestEqual_LongLabelUnfolded(t *testing.T) {
	// A 65-byte label gives a length prefix of 65, which is also 'A'. The
	// canonical walk must treat that byte as a length, not fold it, and
	// still fold the label characters on both sides.
	upper := append([]byte{65}, bytes.Repeat([]byte{'A'}, 65)...)
	upper = append(upper, "\x03com\x00"...)
	lower := append([]byte{65}, bytes.Repeat([]byte{'a'}, 65)...)
	lower = append(lower, "\x03com\x00"...)

	a, err := RefFromBytes(upper)
	require.NoError(t, err)
	b, err := RefFromBytes(lower)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.Equal(t, 0, a.Compare(b))
	assert.Equal(t, a.Key(), b.Key())
	assert.Equal(t, lower, []byte(b.Key()))
}

func TestCompare(t *testing.T) {
	cmp := func(a, b string) int {
		return MustParse(a).Compare(MustParse(b).Ref)
	}

	assert.Equal(t, 0, cmp("github.com.", "GitHub.com."))
	assert.Equal(t, -1, cmp("a.github.com.", "aa.GitHub.com."))
	assert.Equal(t, 1, cmp("ab.github.com.", "aa.github.com."))
	assert.Equal(t, 1, cmp("ab.GitHub.com.", "aa.github.com."))
	assert.Equal(t, 1, cmp("ab.GitHub.com.", "aa.github.co."))
	assert.Equal(t, -1, cmp("a.example.com.", "b.example.com."))

	// Consistent with equality and antisymmetric.
	assert.Equal(t, -1, cmp(".", "com."))
	assert.Equal(t, 1, cmp("com.", "."))
}

func TestCompare_SortsTotally(t *testing.T) {
	names := []string{"b.example.com.", "a.example.com.", ".", "com.", "A.example.COM."}
	refs := make([]Ref, 0, len(names))
	for _, n := range names {
		refs = append(refs, MustParse(n).Ref)
	}

	slices.SortFunc(refs, Ref.Compare)
	for i := 1; i < len(refs); i++ {
		assert.LessOrEqual(t, refs[i-1].Compare(refs[i]), 0)
	}
}

func TestKey_ConsistentWithEqual(t *testing.T) {
	// Equal values collected into a hash-based set and an order-based set
	// must have the same cardinality.
	items := []string{"github.com.", "a.Github.com.", "a.GitHub.com.", "a.github.com.", "aa.github.com."}

	hashed := make(map[string]struct{})
	ordered := make([]Ref, 0, len(items))
	for _, s := range items {
		f := MustParse(s)
		hashed[f.Key()] = struct{}{}
		ordered = append(ordered, f.Ref)
	}
	slices.SortFunc(ordered, Ref.Compare)
	ordered = slices.CompactFunc(ordered, Ref.Equal)

	assert.Equal(t, len(ordered), len(hashed))
	assert.Len(t, hashed, 3)
}

func TestKey_FoldsUncheckedBytes(t *testing.T) {
	upper := RefFromBytesUnchecked([]byte("\x06GitHUB\x03com\x00"))
	assert.Equal(t, MustParse("github.com.").Key(), upper.Key())
}

func TestEqualString(t *testing.T) {
	f := MustParse("GitHub.com.")

	assert.True(t, f.EqualString("github.com."))
	assert.True(t, f.EqualString("github.COM."))
	assert.True(t, f.EqualString("github.com"))
	assert.True(t, f.EqualString("GitHub.com"))

	assert.False(t, f.EqualString("git=hub.COM."))
	assert.False(t, f.EqualString("github.comm"))
	assert.False(t, f.EqualString("github.co"))
	assert.False(t, f.EqualString("github"))
	assert.False(t, f.EqualString("www.github.com"))
	assert.False(t, f.EqualString("github.com.."))
}

func TestEqualString_Root(t *testing.T) {
	root := MustParse(".")
	assert.True(t, root.EqualString("."))
	assert.True(t, root.EqualString(""))
	assert.False(t, root.EqualString("com"))
	assert.False(t, MustParse("com.").EqualString("."))
}

func TestEqualString_TrailingDotPolicy(t *testing.T) {
	f := MustParse("github.com.")

	assert.True(t, StrictRFC1035.EqualString(f.Ref, "github.com."))
	assert.False(t, StrictRFC1035.EqualString(f.Ref, "github.com"))
	assert.True(t, Default.EqualString(f.Ref, "github.com"))
}

func TestEqual_CrossRepresentation(t *testing.T) {
	owned := MustParse("github.com.")
	view, err := RefFromBytes([]byte("\x06GitHub\x03com\x00"))
	require.NoError(t, err)

	assert.True(t, owned.Equal(view))
	assert.True(t, view.Equal(owned.Ref))
	assert.True(t, view.Clone().Equal(owned.Ref))
}
