package filter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	palindromeRe  = regexp.MustCompile(`\bpalindrom(?:e|ic)\b`)
	longerThanRe  = regexp.MustCompile(`\blonger than (\d+)\b`)
	shorterThanRe = regexp.MustCompile(`\bshorter than (\d+)\b`)

	// First satisfied alternative wins; the capture is a single
	// alphanumeric token, not a prefix of a longer word.
	containsRes = []*regexp.Regexp{
		regexp.MustCompile(`\bcontaining the letter ([a-z0-9])\b`),
		regexp.MustCompile(`\bcontaining ([a-z0-9])\b`),
		regexp.MustCompile(`\bcontains ([a-z0-9])\b`),
	}

	singleWordPhrases = []string{"single word", "single-word", "one word", "one-word"}
)

// rule contributes at most one field to the spec. Rules are
// independent and non-exclusive: every rule runs against every
// sentence, and a rule never overwrites a field an earlier rule set.
type rule func(sentence string, spec *Spec)

// Evaluation order matters only where two rules target the same field:
// the containment rule precedes the first-vowel fallback, so an
// explicit "containing x" beats the 'a' substitution.
var rules = []rule{
	ruleSingleWord,
	rulePalindrome,
	ruleLongerThan,
	ruleShorterThan,
	ruleContains,
	ruleFirstVowel,
}

// Compile translates a constrained natural-language sentence into a
// Spec. Matching is case-insensitive; the sentence is lower-cased
// before rule evaluation. A sentence that is empty after trimming, or
// that no rule matches, fails with an error wrapping ErrUnparseable.
//
// The returned Spec always has at least one field set.
func Compile(sentence string) (Spec, error) {
	normalized := strings.ToLower(strings.TrimSpace(sentence))
	if normalized == "" {
		return Spec{}, fmt.Errorf("%w: empty query", ErrUnparseable)
	}

	var spec Spec
	for _, r := range rules {
		r(normalized, &spec)
	}

	if spec.IsZero() {
		return Spec{}, fmt.Errorf("%w: %q", ErrUnparseable, sentence)
	}
	return spec, nil
}

func ruleSingleWord(sentence string, spec *Spec) {
	if spec.WordCount != nil {
		return
	}
	for _, phrase := range singleWordPhrases {
		if strings.Contains(sentence, phrase) {
			one := 1
			spec.WordCount = &one
			return
		}
	}
}

func rulePalindrome(sentence string, spec *Spec) {
	if spec.IsPalindrome != nil {
		return
	}
	if palindromeRe.MatchString(sentence) {
		yes := true
		spec.IsPalindrome = &yes
	}
}

// ruleLongerThan converts the strict "longer than N" into the
// inclusive lower bound N+1.
func ruleLongerThan(sentence string, spec *Spec) {
	if spec.MinLength != nil {
		return
	}
	if m := longerThanRe.FindStringSubmatch(sentence); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return
		}
		min := n + 1
		spec.MinLength = &min
	}
}

// ruleShorterThan converts the strict "shorter than N" into the
// inclusive upper bound N-1.
func ruleShorterThan(sentence string, spec *Spec) {
	if spec.MaxLength != nil {
		return
	}
	if m := shorterThanRe.FindStringSubmatch(sentence); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return
		}
		max := n - 1
		spec.MaxLength = &max
	}
}

func ruleContains(sentence string, spec *Spec) {
	if spec.ContainsCharacter != nil {
		return
	}
	for _, re := range containsRes {
		if m := re.FindStringSubmatch(sentence); m != nil {
			r, _ := utf8.DecodeRuneInString(m[1])
			spec.ContainsCharacter = &r
			return
		}
	}
}

// ruleFirstVowel maps "first vowel" to containment of 'a'. This is a
// fixed substitution, not a search for the sentence's actual first
// vowel; the containment rule above wins when both phrasings appear.
func ruleFirstVowel(sentence string, spec *Spec) {
	if spec.ContainsCharacter != nil {
		return
	}
	if strings.Contains(sentence, "first vowel") {
		a := 'a'
		spec.ContainsCharacter = &a
	}
}
