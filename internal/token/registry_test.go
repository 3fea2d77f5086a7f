//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGNURegistry(t *testing.T, abbrev bool) *Registry {
	t.Helper()
	r := NewRegistry(abbrev)
	require.NoError(t, r.AddLongPrefix("--"))
	require.NoError(t, r.AddShortPrefix("-"))
	require.NoError(t, r.AddOptionStop("--"))
	r.AddValueDelimiter('=')
	return r
}

func collect(r *Registry, args []string) []Token {
	var got []Token
	r.Tokenize(args, func(tok Token) Result {
		got = append(got, tok)
		return Continue
	})
	return got
}

func TestTokenizeBundleAndRequiredArgument(t *testing.T) {
	r := newGNURegistry(t, true)
	_, err := r.AddName("-f", 0)
	require.NoError(t, err)
	_, err = r.AddName("-x", 1)
	require.NoError(t, err)

	got := collect(r, []string{"-ffx", "val"})
	require.Len(t, got, 4)
	assert.Equal(t, Option{base{0}, 0, "f", "-", nil}, got[0])
	assert.Equal(t, Option{base{0}, 0, "f", "-", nil}, got[1])

	opt, ok := got[2].(Option)
	require.True(t, ok)
	assert.Equal(t, 1, opt.OptionIndex)
	assert.Nil(t, opt.Value)

	arg, ok := got[3].(Argument)
	require.True(t, ok)
	assert.Equal(t, "val", arg.Value)
}

func TestTokenizeAttachedShortValue(t *testing.T) {
	r := newGNURegistry(t, true)
	_, err := r.AddName("-v", 0)
	require.NoError(t, err)
	_, err = r.AddName("-f", 1)
	require.NoError(t, err)

	got := collect(r, []string{"-vfFILE"})
	require.Len(t, got, 2)
	assert.Equal(t, Option{base{0}, 0, "v", "-", nil}, got[0])
	opt := got[1].(Option)
	assert.Equal(t, 1, opt.OptionIndex)
	require.NotNil(t, opt.Value)
	assert.Equal(t, "FILE", *opt.Value)
}

func TestTokenizeLongAbbreviationAmbiguous(t *testing.T) {
	r := newGNURegistry(t, true)
	_, err := r.AddName("--foobar", 0)
	require.NoError(t, err)
	_, err = r.AddName("--foorab", 1)
	require.NoError(t, err)

	got := collect(r, []string{"--foo"})
	require.Len(t, got, 1)
	amb, ok := got[0].(Ambiguous)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"--foobar", "--foorab"}, amb.Candidates)

	got = collect(r, []string{"--foob", "a"})
	require.Len(t, got, 2)
	opt, ok := got[0].(Option)
	require.True(t, ok)
	assert.Equal(t, 0, opt.OptionIndex)
}

func TestTokenizeExactMatchWinsOverAbbreviation(t *testing.T) {
	r := newGNURegistry(t, true)
	_, err := r.AddName("--foo", 0)
	require.NoError(t, err)
	_, err = r.AddName("--foobar", 1)
	require.NoError(t, err)

	got := collect(r, []string{"--foo"})
	require.Len(t, got, 1)
	opt, ok := got[0].(Option)
	require.True(t, ok)
	assert.Equal(t, 0, opt.OptionIndex)
}

func TestTokenizeNumericFallback(t *testing.T) {
	r := newGNURegistry(t, true)
	_, err := r.AddName("-4", 0)
	require.NoError(t, err)

	got := collect(r, []string{"-2"})
	require.Len(t, got, 1)
	_, ok := got[0].(Argument)
	assert.True(t, ok)

	got = collect(r, []string{"-4"})
	require.Len(t, got, 1)
	opt, ok := got[0].(Option)
	require.True(t, ok)
	assert.Equal(t, 0, opt.OptionIndex)
}

func TestTokenizeOptionStop(t *testing.T) {
	r := newGNURegistry(t, true)
	_, err := r.AddName("-v", 0)
	require.NoError(t, err)

	got := collect(r, []string{"-v", "--", "-v"})
	require.Len(t, got, 3)
	_, ok := got[1].(OptionStop)
	require.True(t, ok)
	arg, ok := got[2].(Argument)
	require.True(t, ok)
	assert.Equal(t, "-v", arg.Value)
}

func TestTokenizeCustomPrefixes(t *testing.T) {
	r := NewRegistry(true)
	require.NoError(t, r.AddLongPrefix("::"))
	require.NoError(t, r.AddShortPrefix("+"))
	require.NoError(t, r.AddShortPrefix("/"))
	require.NoError(t, r.AddOptionStop("^^"))
	r.AddValueDelimiter('|')

	_, err := r.AddName("+f", 0)
	require.NoError(t, err)
	_, err = r.AddName("::bar", 1)
	require.NoError(t, err)
	_, err = r.AddName("/baz", 2)
	require.NoError(t, err)

	got := collect(r, []string{"+f", "::bar|B", "/baz"})
	require.Len(t, got, 3)

	opt0 := got[0].(Option)
	assert.Equal(t, 0, opt0.OptionIndex)

	opt1 := got[1].(Option)
	assert.Equal(t, 1, opt1.OptionIndex)
	require.NotNil(t, opt1.Value)
	assert.Equal(t, "B", *opt1.Value)

	opt2 := got[2].(Option)
	assert.Equal(t, 2, opt2.OptionIndex)
}

func TestTokenizeMustMatchExactAmbiguity(t *testing.T) {
	r := newGNURegistry(t, true)
	_, err := r.AddName("-a", 0)
	require.NoError(t, err)
	_, err = r.AddName("-apple", 1)
	require.NoError(t, err)

	got := collect(r, []string{"-ap"})
	require.Len(t, got, 1)
	amb, ok := got[0].(Ambiguous)
	require.True(t, ok)
	assert.Contains(t, amb.Candidates, "-a")
	assert.Contains(t, amb.Candidates, "-apple")
}

func TestTokenizeStopBeforeReSynthesizesBundleTail(t *testing.T) {
	r := newGNURegistry(t, true)
	_, err := r.AddName("-x", 0)
	require.NoError(t, err)
	_, err = r.AddName("-y", 1)
	require.NoError(t, err)

	var seen []Token
	tail := r.Tokenize([]string{"-xy", "z"}, func(tok Token) Result {
		seen = append(seen, tok)
		if opt, ok := tok.(Option); ok && opt.OptionIndex == 1 {
			return StopBefore
		}
		return Continue
	})
	require.Len(t, seen, 2)
	assert.Equal(t, []string{"-y", "z"}, tail)
}

func TestTokenizeStopAfterReSynthesizesBundleTail(t *testing.T) {
	r := newGNURegistry(t, true)
	_, err := r.AddName("-f", 0)
	require.NoError(t, err)
	_, err = r.AddName("-g", 1)
	require.NoError(t, err)

	var seen []Token
	tail := r.Tokenize([]string{"-fg"}, func(tok Token) Result {
		seen = append(seen, tok)
		if opt, ok := tok.(Option); ok && opt.OptionIndex == 0 {
			return StopAfter
		}
		return Continue
	})
	require.Len(t, seen, 1)
	assert.Equal(t, []string{"-g"}, tail)
}

func TestTokenizeStopAfterOnLastBundleCharReturnsOnlyRest(t *testing.T) {
	r := newGNURegistry(t, true)
	_, err := r.AddName("-f", 0)
	require.NoError(t, err)

	var seen []Token
	tail := r.Tokenize([]string{"-f", "rest"}, func(tok Token) Result {
		seen = append(seen, tok)
		return StopAfter
	})
	require.Len(t, seen, 1)
	assert.Equal(t, []string{"rest"}, tail)
}

func TestTokenizeUnknownOption(t *testing.T) {
	r := newGNURegistry(t, true)
	_, err := r.AddName("-v", 0)
	require.NoError(t, err)

	got := collect(r, []string{"-q"})
	require.Len(t, got, 1)
	_, ok := got[0].(Unknown)
	assert.True(t, ok)
}

func TestAddNamePrefixConflict(t *testing.T) {
	r := NewRegistry(true)
	require.NoError(t, r.AddLongPrefix("-"))
	err := r.AddShortPrefix("-")
	assert.ErrorAs(t, err, &ErrPrefixConflict{})
}

func TestAddNameDuplicate(t *testing.T) {
	r := newGNURegistry(t, true)
	_, err := r.AddName("-v", 0)
	require.NoError(t, err)
	_, err = r.AddName("-v", 1)
	assert.ErrorAs(t, err, &ErrDuplicateName{})
}
