package storage

import (
	"testing"
	"time"

	"github.com/poiesic/strand/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalRecord(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	newRecord := func(value string) *core.AnalyzedRecord {
		return &core.AnalyzedRecord{
			Identifier: core.Hash(value),
			Value:      value,
			Properties: core.Analyze(value),
			CreatedAt:  now,
		}
	}

	tests := []struct {
		name   string
		record *core.AnalyzedRecord
	}{
		{"simple value", newRecord("Hello")},
		{"empty value", newRecord("")},
		{"palindrome with spaces", newRecord("Was it a car or a cat I saw")},
		{"unicode value", newRecord("héllo wörld")},
		{"mixed case", newRecord("Aa Bb Cc")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalRecord(tt.record)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalRecord(data)
			require.NoError(t, err)

			assert.Equal(t, tt.record.Identifier, decoded.Identifier)
			assert.Equal(t, tt.record.Value, decoded.Value)
			assert.Equal(t, tt.record.Properties.Length, decoded.Properties.Length)
			assert.Equal(t, tt.record.Properties.IsPalindrome, decoded.Properties.IsPalindrome)
			assert.Equal(t, tt.record.Properties.UniqueCharacters, decoded.Properties.UniqueCharacters)
			assert.Equal(t, tt.record.Properties.WordCount, decoded.Properties.WordCount)
			assert.Equal(t, tt.record.Properties.Hash, decoded.Properties.Hash)
			assert.Equal(t, tt.record.CreatedAt, decoded.CreatedAt)

			require.Len(t, decoded.Properties.CharacterFrequency, len(tt.record.Properties.CharacterFrequency))
			for r, n := range tt.record.Properties.CharacterFrequency {
				assert.Equal(t, n, decoded.Properties.CharacterFrequency[r], "rune %q", r)
			}
		})
	}
}

func TestUnmarshalRecord_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty data", []byte{}},
		{"truncated data", MarshalRecord(&core.AnalyzedRecord{
			Identifier: core.Hash("x"),
			Value:      "x",
			Properties: core.Analyze("x"),
			CreatedAt:  time.Now().UTC(),
		})[:4]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalRecord(tt.data)
			assert.Error(t, err)
		})
	}
}

func TestRecordMUS_SizeMatchesMarshal(t *testing.T) {
	record := core.AnalyzedRecord{
		Identifier: core.Hash("sizing"),
		Value:      "sizing",
		Properties: core.Analyze("sizing"),
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}

	buf := make([]byte, RecordMUS.Size(record))
	n := RecordMUS.Marshal(record, buf)
	assert.Equal(t, len(buf), n)

	skipped, err := RecordMUS.Skip(buf)
	require.NoError(t, err)
	assert.Equal(t, n, skipped)
}
