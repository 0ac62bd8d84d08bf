package badger

import (
	"encoding/binary"
	"time"

	"github.com/poiesic/strand/core"
)

// Key prefixes for different data types
const (
	recordPrefix        = "anrec"
	recordCreatedPrefix = "anrecd"
)

// makeRecordKey generates the primary key for a record: the content
// identifier itself, so lookup by raw value needs no extra index.
func makeRecordKey(identifier string) []byte {
	prefix := recordPrefix + ":"
	buf := make([]byte, len(prefix)+len(identifier))
	offset := copy(buf, prefix)
	copy(buf[offset:], identifier)
	return buf
}

// makeRecordCreatedKey generates a composite key for the creation-time
// index. Format: prefix:created_at:fingerprint. The fingerprint breaks
// creation-time ties consistently.
func makeRecordCreatedKey(createdAt time.Time, fp core.ID) []byte {
	prefix := recordCreatedPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 16 // 8 bytes for timestamp + 8 bytes for fingerprint
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(createdAt.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(fp))
	return buf
}

// createdIndexPrefix returns the scan prefix of the creation-time index.
func createdIndexPrefix() []byte {
	return []byte(recordCreatedPrefix + ":")
}

// createdIndexSeekKey returns a key past every creation-time index
// entry, used to start a reverse (newest first) scan.
func createdIndexSeekKey() []byte {
	prefix := createdIndexPrefix()
	buf := make([]byte, len(prefix)+16)
	offset := copy(buf, prefix)
	for i := offset; i < len(buf); i++ {
		buf[i] = 0xFF
	}
	return buf
}
