package storage

import (
	"context"

	"github.com/poiesic/strand/core"
)

// Repository provides common storage operations shared across all
// repositories. Implementations must be thread-safe and support
// concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// RecordRepository provides operations for managing analyzed records.
type RecordRepository interface {
	Repository

	// AddRecord analyzes a value and stores the resulting record under
	// its content identifier. The insert is atomic create-if-absent:
	// if the identifier already exists, returns an error wrapping
	// ErrDuplicateKey that carries the identifier, and the existing
	// record is left untouched.
	AddRecord(ctx context.Context, value string) (*core.AnalyzedRecord, error)

	// GetRecord retrieves a record by its identifier.
	// Returns ErrNotFound if the record doesn't exist.
	GetRecord(ctx context.Context, identifier string) (*core.AnalyzedRecord, error)

	// GetRecordByValue retrieves a record from its raw value by
	// recomputing the content identifier. No separate index is needed.
	// Returns ErrNotFound if the record doesn't exist.
	GetRecordByValue(ctx context.Context, value string) (*core.AnalyzedRecord, error)

	// FindRecords returns the records matching the query, newest
	// created_at first. Ties are broken by content fingerprint, so the
	// order is consistent across calls.
	FindRecords(ctx context.Context, q Query) ([]*core.AnalyzedRecord, error)

	// DeleteRecord removes a record and its index entries. Returns
	// false without error when no record has the identifier.
	DeleteRecord(ctx context.Context, identifier string) (bool, error)

	// CountRecords returns the number of stored records.
	CountRecords(ctx context.Context) (int, error)
}
