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


package storage

import (
	"time"

	"github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/strand/core"
)

// RecordMUS is the MUS serializer for AnalyzedRecord. Timestamps are
// stored at microsecond precision and come back in UTC.
var RecordMUS = recordMUS{
	freq: ord.NewMapSer[rune, uint64](varint.Int32, varint.Uint64),
}

type recordMUS struct {
	freq mus.Serializer[map[rune]uint64]
}

func (s recordMUS) Marshal(r core.AnalyzedRecord, bs []byte) (n int) {
	n = ord.String.Marshal(r.Identifier, bs)
	n += ord.String.Marshal(r.Value, bs[n:])
	n += varint.Int.Marshal(r.Properties.Length, bs[n:])
	n += ord.Bool.Marshal(r.Properties.IsPalindrome, bs[n:])
	n += varint.Int.Marshal(r.Properties.UniqueCharacters, bs[n:])
	n += varint.Int.Marshal(r.Properties.WordCount, bs[n:])
	n += ord.String.Marshal(r.Properties.Hash, bs[n:])
	n += s.freq.Marshal(r.Properties.CharacterFrequency, bs[n:])
	n += raw.TimeUnixMicro.Marshal(r.CreatedAt, bs[n:])
	return n
}

func (s recordMUS) Unmarshal(bs []byte) (r core.AnalyzedRecord, n int, err error) {
	var n1 int
	r.Identifier, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	r.Value, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.Properties.Length, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.Properties.IsPalindrome, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.Properties.UniqueCharacters, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.Properties.WordCount, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.Properties.Hash, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var freq map[rune]uint64
	freq, n1, err = s.freq.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.Properties.CharacterFrequency = freq
	var created time.Time
	created, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.CreatedAt = created.UTC()
	return
}

func (s recordMUS) Size(r core.AnalyzedRecord) (size int) {
	size = ord.String.Size(r.Identifier)
	size += ord.String.Size(r.Value)
	size += varint.Int.Size(r.Properties.Length)
	size += ord.Bool.Size(r.Properties.IsPalindrome)
	size += varint.Int.Size(r.Properties.UniqueCharacters)
	size += varint.Int.Size(r.Properties.WordCount)
	size += ord.String.Size(r.Properties.Hash)
	size += s.freq.Size(r.Properties.CharacterFrequency)
	size += raw.TimeUnixMicro.Size(r.CreatedAt)
	return size
}

func (s recordMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.Bool.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = s.freq.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

// MarshalRecord serializes an AnalyzedRecord to bytes.
func MarshalRecord(record *core.AnalyzedRecord) []byte {
	buf := make([]byte, RecordMUS.Size(*record))
	RecordMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalRecord deserializes an AnalyzedRecord from bytes.
func UnmarshalRecord(data []byte) (*core.AnalyzedRecord, error) {
	record, _, err := RecordMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &record, nil
}
