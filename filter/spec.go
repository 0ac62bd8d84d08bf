package filter

import "unicode"

// Spec is a set of optional constraints over analyzed string
// properties. Present fields combine with logical AND; an all-absent
// Spec matches every record. MinLength and MaxLength may form an empty
// range (MinLength > MaxLength); that is accepted and simply matches
// nothing.
type Spec struct {
	IsPalindrome      *bool
	MinLength         *int
	MaxLength         *int
	WordCount         *int
	ContainsCharacter *rune // normalized to lowercase
}

// IsZero reports whether no constraint is set.
func (s Spec) IsZero() bool {
	return s.IsPalindrome == nil && s.MinLength == nil && s.MaxLength == nil &&
		s.WordCount == nil && s.ContainsCharacter == nil
}

// WithPalindrome returns a copy of the spec with the palindrome
// constraint set.
func (s Spec) WithPalindrome(v bool) Spec {
	s.IsPalindrome = &v
	return s
}

// WithMinLength returns a copy of the spec with an inclusive lower
// length bound.
func (s Spec) WithMinLength(n int) Spec {
	s.MinLength = &n
	return s
}

// WithMaxLength returns a copy of the spec with an inclusive upper
// length bound.
func (s Spec) WithMaxLength(n int) Spec {
	s.MaxLength = &n
	return s
}

// WithWordCount returns a copy of the spec with an exact word count.
func (s Spec) WithWordCount(n int) Spec {
	s.WordCount = &n
	return s
}

// WithContainsCharacter returns a copy of the spec requiring the
// character to appear in the value. The character is normalized to
// lowercase; matching against the case-sensitive frequency map checks
// both cases.
func (s Spec) WithContainsCharacter(r rune) Spec {
	c := unicode.ToLower(r)
	s.ContainsCharacter = &c
	return s
}
