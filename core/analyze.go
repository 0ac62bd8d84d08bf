// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Hash computes the content identifier for a value: the SHA-256 digest
// of its exact bytes, rendered as lowercase hex. Deterministic and
// total; defined for the empty string.
func Hash(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// Analyze computes the full derived property set for a value.
//
// The palindrome check and the frequency map use deliberately different
// normalizations: the palindrome check strips whitespace and folds
// case, while the frequency map counts every character of the original
// string as-is. Neither is derived from the other.
func Analyze(value string) Properties {
	freq := make(FreqMap)
	for _, r := range value {
		freq[r]++
	}

	return Properties{
		Length:             utf8.RuneCountInString(value),
		IsPalindrome:       isPalindrome(value),
		UniqueCharacters:   len(freq),
		WordCount:          len(strings.Fields(value)),
		Hash:               Hash(value),
		CharacterFrequency: freq,
	}
}

// AnalyzeValue is the boundary form of Analyze for callers that decode
// untyped input (e.g. a JSON body). Non-string values are rejected with
// ErrNotAString.
func AnalyzeValue(v any) (Properties, error) {
	s, ok := v.(string)
	if !ok {
		return Properties{}, fmt.Errorf("%w: got %T", ErrNotAString, v)
	}
	return Analyze(s), nil
}

// isPalindrome strips all whitespace, folds case, and compares the
// result to its rune reversal. Non-whitespace punctuation is kept, so
// "Nurses run" is a palindrome while "Nurses, run" is not. The empty
// string is a palindrome.
func isPalindrome(value string) bool {
	stripped := make([]rune, 0, len(value))
	for _, r := range strings.ToLower(value) {
		if unicode.IsSpace(r) {
			continue
		}
		stripped = append(stripped, r)
	}

	for i, j := 0, len(stripped)-1; i < j; i, j = i+1, j-1 {
		if stripped[i] != stripped[j] {
			return false
		}
	}
	return true
}
