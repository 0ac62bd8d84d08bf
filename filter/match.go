package filter

import (
	"unicode"

	"github.com/poiesic/strand/core"
)

// Matches evaluates a spec against a property set. All present fields
// must hold; an all-absent spec matches everything. The same predicate
// backs both in-memory evaluation and the store's query scan, so the
// two paths cannot disagree.
func Matches(spec Spec, props core.Properties) bool {
	if spec.IsPalindrome != nil && props.IsPalindrome != *spec.IsPalindrome {
		return false
	}
	if spec.MinLength != nil && props.Length < *spec.MinLength {
		return false
	}
	if spec.MaxLength != nil && props.Length > *spec.MaxLength {
		return false
	}
	if spec.WordCount != nil && props.WordCount != *spec.WordCount {
		return false
	}
	if spec.ContainsCharacter != nil && !containsCharacter(props.CharacterFrequency, *spec.ContainsCharacter) {
		return false
	}
	return true
}

// containsCharacter checks the case-sensitive frequency map against
// the lowercase-normalized filter character, so both cases of the
// character count as present.
func containsCharacter(freq core.FreqMap, c rune) bool {
	if freq[unicode.ToLower(c)] > 0 {
		return true
	}
	return freq[unicode.ToUpper(c)] > 0
}
