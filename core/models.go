package core

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/go-crypt/x/blake2b"
)

// ID is a compact content fingerprint used in composite index keys.
// It is never the external identifier; that is the SHA-256 hex digest.
type ID uint64

// IDFromContent generates a deterministic fingerprint from text content
// using BLAKE2b hashing. Identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// FreqMap maps each distinct character of a string to its occurrence
// count. Keys are case-sensitive and include whitespace characters.
type FreqMap map[rune]uint64

// MarshalJSON renders the map with single-character string keys, the
// shape clients consume ({"A":1,"a":2}).
func (m FreqMap) MarshalJSON() ([]byte, error) {
	out := make(map[string]uint64, len(m))
	for r, n := range m {
		out[string(r)] = n
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts single-character string keys only.
func (m *FreqMap) UnmarshalJSON(data []byte) error {
	var raw map[string]uint64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(FreqMap, len(raw))
	for k, n := range raw {
		r, size := utf8.DecodeRuneInString(k)
		if r == utf8.RuneError && size <= 1 {
			return fmt.Errorf("%w: %q", ErrBadFrequencyKey, k)
		}
		if size != len(k) {
			return fmt.Errorf("%w: %q", ErrBadFrequencyKey, k)
		}
		out[r] = n
	}
	*m = out
	return nil
}

// Properties is the full derived property set of a string. It is a pure
// function of the analyzed value; identical input always yields
// identical properties.
type Properties struct {
	Length             int     `json:"length"`
	IsPalindrome       bool    `json:"is_palindrome"`
	UniqueCharacters   int     `json:"unique_characters"`
	WordCount          int     `json:"word_count"`
	Hash               string  `json:"sha256_hash"`
	CharacterFrequency FreqMap `json:"character_frequency_map"`
}

// AnalyzedRecord is a stored value together with its derived properties.
// Records are immutable once created; a different value implies a
// different identifier and therefore a different record.
type AnalyzedRecord struct {
	Identifier string     `json:"identifier"`
	Value      string     `json:"value"`
	Properties Properties `json:"properties"`
	CreatedAt  time.Time  `json:"created_at"`
}
