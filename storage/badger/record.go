package badger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/strand/core"
	"github.com/poiesic/strand/storage"
)

// RecordRepository implements storage.RecordRepository for BadgerDB.
type RecordRepository struct {
	backend *Backend
}

var _ storage.RecordRepository = (*RecordRepository)(nil)

// NewRecordRepository creates a new RecordRepository.
func NewRecordRepository(backend *Backend) *RecordRepository {
	return &RecordRepository{backend: backend}
}

// Close releases repository resources. The backend itself is owned by
// the caller and closed separately.
func (r *RecordRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *RecordRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddRecord analyzes a value and inserts it under its content
// identifier. The existence check and the insert run in one Badger
// transaction; a concurrent insert of the same identifier surfaces as
// a commit conflict, which is reported as ErrDuplicateKey too.
func (r *RecordRepository) AddRecord(ctx context.Context, value string) (*core.AnalyzedRecord, error) {
	record := &core.AnalyzedRecord{
		Identifier: core.Hash(value),
		Value:      value,
		Properties: core.Analyze(value),
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeRecordKey(record.Identifier)

		_, err := tx.Get(key)
		if err == nil {
			return fmt.Errorf("%w: %s", storage.ErrDuplicateKey, record.Identifier)
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		record.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)

		if err := tx.Set(key, storage.MarshalRecord(record)); err != nil {
			return err
		}

		createdKey := makeRecordCreatedKey(record.CreatedAt, core.IDFromContent(record.Value))
		if err := tx.Set(createdKey, []byte(record.Identifier)); err != nil {
			return err
		}

		return tx.Commit()
	}, true)

	if errors.Is(err, badger.ErrConflict) {
		err = fmt.Errorf("%w: %s", storage.ErrDuplicateKey, record.Identifier)
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

// GetRecord retrieves a record by its identifier.
func (r *RecordRepository) GetRecord(ctx context.Context, identifier string) (*core.AnalyzedRecord, error) {
	var record *core.AnalyzedRecord

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		loaded, err := r.readRecord(tx, makeRecordKey(identifier))
		if err != nil {
			return err
		}
		if loaded == nil {
			return fmt.Errorf("%w: %s", storage.ErrNotFound, identifier)
		}
		record = loaded
		return nil
	}, false)

	if err != nil {
		return nil, err
	}
	return record, nil
}

// GetRecordByValue retrieves a record from its raw value by
// recomputing the content identifier.
func (r *RecordRepository) GetRecordByValue(ctx context.Context, value string) (*core.AnalyzedRecord, error) {
	return r.GetRecord(ctx, core.Hash(value))
}

// FindRecords scans the creation-time index newest first, loads each
// record, and keeps the ones matching the query.
func (r *RecordRepository) FindRecords(ctx context.Context, q storage.Query) ([]*core.AnalyzedRecord, error) {
	if q.Limit < 0 {
		return nil, fmt.Errorf("%w: negative limit %d", storage.ErrInvalidQuery, q.Limit)
	}

	var results []*core.AnalyzedRecord

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		identifiers, err := r.scanCreatedIndex(tx)
		if err != nil {
			return err
		}

		for _, identifier := range identifiers {
			record, err := r.readRecord(tx, makeRecordKey(identifier))
			if err != nil {
				return err
			}
			if record == nil {
				// Index entry without a record; skip rather than fail
				// the whole scan.
				r.backend.logger.Warn("dangling creation index entry", "identifier", identifier)
				continue
			}

			if !q.Matches(record.Properties) {
				continue
			}

			results = append(results, record)
			if q.Limit > 0 && len(results) >= q.Limit {
				return nil
			}
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}
	return results, nil
}

// DeleteRecord removes a record and its creation index entry.
// Returns false without error when the identifier is absent.
func (r *RecordRepository) DeleteRecord(ctx context.Context, identifier string) (bool, error) {
	deleted := false

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeRecordKey(identifier)

		record, err := r.readRecord(tx, key)
		if err != nil {
			return err
		}
		if record == nil {
			return nil
		}

		if err := tx.Delete(key); err != nil {
			return err
		}
		createdKey := makeRecordCreatedKey(record.CreatedAt, core.IDFromContent(record.Value))
		if err := tx.Delete(createdKey); err != nil {
			return err
		}

		deleted = true
		return tx.Commit()
	}, true)

	if err != nil {
		return false, err
	}
	return deleted, nil
}

// CountRecords returns the number of stored records.
func (r *RecordRepository) CountRecords(ctx context.Context) (int, error) {
	count := 0

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(recordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)

	if err != nil {
		return 0, err
	}
	return count, nil
}

// scanCreatedIndex walks the creation-time index in reverse and returns
// record identifiers ordered newest first. The iterator is closed before
// any point reads happen on the transaction.
func (r *RecordRepository) scanCreatedIndex(tx *badger.Txn) ([]string, error) {
	opts := badger.DefaultIteratorOptions
	opts.Reverse = true
	iter := tx.NewIterator(opts)
	defer iter.Close()

	var identifiers []string
	prefix := createdIndexPrefix()
	for iter.Seek(createdIndexSeekKey()); iter.ValidForPrefix(prefix); iter.Next() {
		identifier, err := iter.Item().ValueCopy(nil)
		if err != nil {
			return nil, err
		}
		identifiers = append(identifiers, string(identifier))
	}
	return identifiers, nil
}

// readRecord loads and deserializes a record, returning nil when the
// key does not exist.
func (r *RecordRepository) readRecord(tx *badger.Txn, key []byte) (*core.AnalyzedRecord, error) {
	item, err := tx.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var record *core.AnalyzedRecord
	err = item.Value(func(val []byte) error {
		record, err = storage.UnmarshalRecord(val)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrSerializationFailed, err)
	}
	return record, nil
}
