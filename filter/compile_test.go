package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_SingleWord(t *testing.T) {
	for _, sentence := range []string{
		"single word strings",
		"single-word palindromes",
		"one word only",
		"one-word entries",
	} {
		t.Run(sentence, func(t *testing.T) {
			spec, err := Compile(sentence)
			require.NoError(t, err)
			require.NotNil(t, spec.WordCount)
			assert.Equal(t, 1, *spec.WordCount)
		})
	}
}

func TestCompile_Palindrome(t *testing.T) {
	spec, err := Compile("all palindromic strings")
	require.NoError(t, err)
	require.NotNil(t, spec.IsPalindrome)
	assert.True(t, *spec.IsPalindrome)

	spec, err = Compile("every palindrome")
	require.NoError(t, err)
	require.NotNil(t, spec.IsPalindrome)
	assert.True(t, *spec.IsPalindrome)
}

func TestCompile_PalindromeWordBoundary(t *testing.T) {
	// "palindromeish" must not trip the word-boundary match, and the
	// sentence then matches no rule at all.
	_, err := Compile("palindromeish strings")
	assert.ErrorIs(t, err, ErrUnparseable)
}

func TestCompile_LengthBounds(t *testing.T) {
	spec, err := Compile("strings longer than 5")
	require.NoError(t, err)
	require.NotNil(t, spec.MinLength)
	assert.Equal(t, 6, *spec.MinLength)

	spec, err = Compile("strings shorter than 10")
	require.NoError(t, err)
	require.NotNil(t, spec.MaxLength)
	assert.Equal(t, 9, *spec.MaxLength)
}

func TestCompile_ContainsCharacter(t *testing.T) {
	tests := []struct {
		sentence string
		want     rune
	}{
		{"strings containing the letter a", 'a'},
		{"strings containing the letter Z", 'z'},
		{"strings containing 7", '7'},
		{"strings contains x", 'x'},
	}

	for _, tt := range tests {
		t.Run(tt.sentence, func(t *testing.T) {
			spec, err := Compile(tt.sentence)
			require.NoError(t, err)
			require.NotNil(t, spec.ContainsCharacter)
			assert.Equal(t, tt.want, *spec.ContainsCharacter)
		})
	}
}

func TestCompile_ContainsRequiresSingleToken(t *testing.T) {
	// A multi-character token is not a valid capture, and nothing else
	// in the sentence matches.
	_, err := Compile("items containing abc")
	assert.ErrorIs(t, err, ErrUnparseable)
}

func TestCompile_FirstVowel(t *testing.T) {
	spec, err := Compile("strings with the first vowel")
	require.NoError(t, err)
	require.NotNil(t, spec.ContainsCharacter)
	assert.Equal(t, 'a', *spec.ContainsCharacter)
}

func TestCompile_ContainsBeatsFirstVowel(t *testing.T) {
	// Both rules target the same field; the containment rule runs
	// first and wins.
	spec, err := Compile("first vowel strings containing the letter z")
	require.NoError(t, err)
	require.NotNil(t, spec.ContainsCharacter)
	assert.Equal(t, 'z', *spec.ContainsCharacter)
}

func TestCompile_MergesIndependentRules(t *testing.T) {
	spec, err := Compile("palindromic strings longer than 5")
	require.NoError(t, err)
	require.NotNil(t, spec.IsPalindrome)
	require.NotNil(t, spec.MinLength)
	assert.True(t, *spec.IsPalindrome)
	assert.Equal(t, 6, *spec.MinLength)
	assert.Nil(t, spec.MaxLength)
	assert.Nil(t, spec.WordCount)
	assert.Nil(t, spec.ContainsCharacter)

	spec, err = Compile("strings shorter than 10 containing the letter a")
	require.NoError(t, err)
	require.NotNil(t, spec.MaxLength)
	require.NotNil(t, spec.ContainsCharacter)
	assert.Equal(t, 9, *spec.MaxLength)
	assert.Equal(t, 'a', *spec.ContainsCharacter)
}

func TestCompile_CaseInsensitive(t *testing.T) {
	spec, err := Compile("Single Word PALINDROMIC strings LONGER THAN 3")
	require.NoError(t, err)
	require.NotNil(t, spec.WordCount)
	require.NotNil(t, spec.IsPalindrome)
	require.NotNil(t, spec.MinLength)
	assert.Equal(t, 4, *spec.MinLength)
}

func TestCompile_Unparseable(t *testing.T) {
	for _, sentence := range []string{
		"banana",
		"strings about nothing in particular",
		"",
		"   ",
	} {
		t.Run(sentence, func(t *testing.T) {
			_, err := Compile(sentence)
			assert.ErrorIs(t, err, ErrUnparseable)
		})
	}
}

func TestCompile_ErrorCarriesSentence(t *testing.T) {
	_, err := Compile("banana")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "banana")
}

func TestCompile_NeverReturnsEmptySpec(t *testing.T) {
	spec, err := Compile("palindrome")
	require.NoError(t, err)
	assert.False(t, spec.IsZero())
}
