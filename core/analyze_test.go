package core

import (
	"testing"
)

func TestHash_Deterministic(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"empty string", ""},
		{"simple value", "hello"},
		{"whitespace preserved", "  hello  world  "},
		{"unicode", "héllo wörld"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h1 := Hash(tt.value)
			h2 := Hash(tt.value)

			if h1 != h2 {
				t.Errorf("Hash() unstable for %q: %s vs %s", tt.value, h1, h2)
			}
			if len(h1) != 64 {
				t.Errorf("Hash() length = %d, want 64", len(h1))
			}
		})
	}
}

func TestHash_KnownDigest(t *testing.T) {
	// sha256 of the empty string is a fixed, well-known digest.
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got := Hash(""); got != want {
		t.Errorf("Hash(\"\") = %s, want %s", got, want)
	}
}

func TestHash_Distinct(t *testing.T) {
	if Hash("content1") == Hash("content2") {
		t.Error("Hash() produced same digest for different content")
	}
	if Hash("Aa") == Hash("aA") {
		t.Error("Hash() must be case-sensitive")
	}
}

func TestAnalyze_Palindrome(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"empty string", "", true},
		{"single char", "x", true},
		{"simple palindrome", "racecar", true},
		{"not a palindrome", "Hello", false},
		{"case folded", "Racecar", true},
		{"whitespace stripped", "A man a man", false},
		{"whitespace stripped palindrome", "nurses run", true},
		{"mixed case with spaces", "Was it a car or a cat I saw", true},
		{"punctuation kept", "A man, a man", false},
		{"all whitespace", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.value).IsPalindrome
			if got != tt.want {
				t.Errorf("Analyze(%q).IsPalindrome = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestAnalyze_WordCount(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"empty string", "", 0},
		{"all whitespace", "   ", 0},
		{"single word", "hello", 1},
		{"collapsed runs", "one  two   three", 3},
		{"leading and trailing space", "  padded  ", 1},
		{"tabs and newlines", "a\tb\nc", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.value).WordCount
			if got != tt.want {
				t.Errorf("Analyze(%q).WordCount = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

func TestAnalyze_FrequencyCaseSensitive(t *testing.T) {
	p := Analyze("Aa")

	if p.UniqueCharacters != 2 {
		t.Errorf("UniqueCharacters = %d, want 2", p.UniqueCharacters)
	}
	if p.CharacterFrequency['A'] != 1 || p.CharacterFrequency['a'] != 1 {
		t.Errorf("CharacterFrequency = %v, want A:1 a:1", p.CharacterFrequency)
	}
}

func TestAnalyze_FrequencyCountsWhitespace(t *testing.T) {
	p := Analyze("a b b")

	if p.CharacterFrequency[' '] != 2 {
		t.Errorf("space count = %d, want 2", p.CharacterFrequency[' '])
	}
	if p.CharacterFrequency['b'] != 2 {
		t.Errorf("'b' count = %d, want 2", p.CharacterFrequency['b'])
	}
}

func TestAnalyze_Length(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"multibyte runes counted once", "héllo", 5},
		{"whitespace counted", "a b", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.value).Length
			if got != tt.want {
				t.Errorf("Analyze(%q).Length = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	value := "Was it a car or a cat I saw"

	p1 := Analyze(value)
	p2 := Analyze(value)

	if p1.Length != p2.Length || p1.IsPalindrome != p2.IsPalindrome ||
		p1.UniqueCharacters != p2.UniqueCharacters || p1.WordCount != p2.WordCount ||
		p1.Hash != p2.Hash {
		t.Errorf("Analyze() unstable: %+v vs %+v", p1, p2)
	}
	if len(p1.CharacterFrequency) != len(p2.CharacterFrequency) {
		t.Errorf("frequency maps differ in size")
	}
	for r, n := range p1.CharacterFrequency {
		if p2.CharacterFrequency[r] != n {
			t.Errorf("frequency maps differ at %q", r)
		}
	}
}

func TestAnalyze_HashMatchesIdentifier(t *testing.T) {
	value := "some value"
	if Analyze(value).Hash != Hash(value) {
		t.Error("Properties.Hash must equal Hash(value)")
	}
}

func TestAnalyzeValue(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		wantErr bool
	}{
		{"string passes", "hello", false},
		{"empty string passes", "", false},
		{"number rejected", 42.0, true},
		{"bool rejected", true, true},
		{"nil rejected", nil, true},
		{"slice rejected", []any{"a"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AnalyzeValue(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("AnalyzeValue(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
