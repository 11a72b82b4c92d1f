package fqdn

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	f, err := Parse("github.com.")
	require.NoError(t, err)
	assert.Equal(t, []byte("\x06github\x03com\x00"), f.Bytes())
	assert.Equal(t, "github.com", f.String())
}

func TestParse_CaseFolding(t *testing.T) {
	f, err := Parse("GitHub.COM.")
	require.NoError(t, err)
	assert.Equal(t, []byte("\x06github\x03com\x00"), f.Bytes())
}

func TestParse_Root(t *testing.T) {
	for _, in := range []string{".", ""} {
		f, err := Parse(in)
		require.NoError(t, err, "input %q", in)
		assert.True(t, f.IsRoot())
		assert.Equal(t, ".", f.String())
	}
}

func TestParse_EmptyLabel(t *testing.T) {
	_, err := Parse("github..com.")
	assert.ErrorIs(t, err, ErrEmptyLabel)

	_, err = Parse(".github.com.")
	assert.ErrorIs(t, err, ErrEmptyLabel)
}

func TestParse_InvalidChar(t *testing.T) {
	_, err := Parse("git@ub.com.")
	assert.ErrorIs(t, err, ErrInvalidLabelChar)

	// Non-ASCII is rejected when IDN transcoding is off.
	_, err = Parse("académie.fr.")
	assert.ErrorIs(t, err, ErrInvalidLabelChar)
}

func TestParse_TrailingDotPolicy(t *testing.T) {
	_, err := Parse("crates.io")
	assert.NoError(t, err)

	_, err = StrictRFC1035.Parse("crates.io")
	assert.ErrorIs(t, err, ErrTrailingDotMissing)

	_, err = StrictRFC1035.Parse("crates.io.")
	assert.NoError(t, err)

	_, err = StrictRFC1035.Parse("")
	assert.ErrorIs(t, err, ErrTrailingDotMissing)

	// The single dot stays the root under every policy.
	f, err := StrictRFC1035.Parse(".")
	require.NoError(t, err)
	assert.True(t, f.IsRoot())
}

func TestParse_SpecialChars(t *testing.T) {
	_, err := Parse("git_hub.com.")
	assert.NoError(t, err)

	_, err = Parse("git#hub.com.")
	assert.NoError(t, err)

	_, err = StrictRFC1035.Parse("git_hub.com.")
	assert.ErrorIs(t, err, ErrInvalidLabelChar)
}

func TestParse_LetterStart(t *testing.T) {
	_, err := StrictRFC1035.Parse("0day.example.")
	assert.ErrorIs(t, err, ErrLabelDoesNotStartWithLetter)

	_, err = Parse("0day.example.")
	assert.NoError(t, err)
}

func TestParse_StrictHyphenEdges(t *testing.T) {
	_, err := StrictRFC1035.Parse("foo-.com.")
	assert.ErrorIs(t, err, ErrLabelCannotEndWithHyphen)

	_, err = StrictRFC1035.Parse("-foo.com.")
	assert.ErrorIs(t, err, ErrLabelCannotStartWithHyphen)

	_, err = StrictRFC1035.Parse("fo-o.com.")
	assert.NoError(t, err)

	_, err = Parse("foo-.com.")
	assert.NoError(t, err)
}

func TestParse_LabelLimit(t *testing.T) {
	long := strings.Repeat("a", 64) + ".com."

	_, err := StrictRFC1035.Parse(long)
	assert.ErrorIs(t, err, ErrTooLongLabel)

	_, err = Parse(long)
	assert.NoError(t, err)

	_, err = Parse(strings.Repeat("a", 256) + ".com.")
	assert.ErrorIs(t, err, ErrTooLongLabel)
}

func TestParse_NameLimit(t *testing.T) {
	label63 := strings.Repeat("a", 63)

	// 255 encoded bytes: labels of 63+63+63+61 characters.
	text255 := label63 + "." + label63 + "." + label63 + "." + strings.Repeat("a", 61) + "."
	// One more character tips the encoding over 255.
	text256 := label63 + "." + label63 + "." + label63 + "." + strings.Repeat("a", 62) + "."

	_, err := StrictRFC1035.Parse(text255)
	assert.NoError(t, err)

	_, err = StrictRFC1035.Parse(text256)
	assert.ErrorIs(t, err, ErrTooLongDomainName)

	_, err = Parse(text256)
	assert.NoError(t, err)

	// Same inputs without the trailing dot under the relaxed policy.
	_, err = Parse(strings.TrimSuffix(text256, "."))
	assert.NoError(t, err)
}

func TestParse_Deterministic(t *testing.T) {
	a, err := Parse("Rust-Lang.GitHub.com.")
	require.NoError(t, err)
	b, err := Parse("rust-lang.github.com")
	require.NoError(t, err)
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, "github.com", MustParse("github.com.").String())
	assert.Panics(t, func() { MustParse("w@w.fr.") })
}

func TestJoin(t *testing.T) {
	f, err := Join("rust-lang", "github.io")
	require.NoError(t, err)

	want := MustParse("rust-lang.github.io.")
	assert.True(t, f.Equal(want.Ref))

	// Fragments may carry their own trailing dot.
	g, err := Join("rust-lang", "github.io.")
	require.NoError(t, err)
	assert.True(t, g.Equal(want.Ref))

	root, err := Join()
	require.NoError(t, err)
	assert.True(t, root.IsRoot())

	_, err = Join("w@w", "fr")
	assert.ErrorIs(t, err, ErrInvalidLabelChar)

	_, err = Join("a", "", "fr")
	assert.ErrorIs(t, err, ErrEmptyLabel)
}
