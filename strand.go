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


// Package strand analyzes strings into a canonical set of derived
// properties, stores them under content-derived identifiers, and
// retrieves them by structured or constrained natural-language
// filters.
package strand

import (
	"log/slog"

	"github.com/poiesic/strand/ingestion"
	"github.com/poiesic/strand/server"
	"github.com/poiesic/strand/storage"
	"github.com/poiesic/strand/storage/badger"
)

// Database bundles the storage backend and the record repository
// behind one open/close lifecycle.
type Database struct {
	backend *badger.Backend
	records storage.RecordRepository
	logger  *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	inMemory bool
}

// WithInMemory opens an in-memory backend instead of an on-disk one.
// The file path is ignored.
func WithInMemory() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

// NewDatabase opens the backend at filePath and wires the record
// repository over it.
func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	options := &databaseOptions{}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	return &Database{
		backend: backend,
		records: badger.NewRecordRepository(backend),
		logger:  slog.Default(),
	}, nil
}

func (db *Database) Close() error {
	if err := db.records.Close(); err != nil {
		db.logger.Error("error closing record repository", "err", err)
		return err
	}
	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) Records() storage.RecordRepository {
	return db.records
}

func (db *Database) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(db.records, opts...)
}

func (db *Database) NewServer(opts ...server.Option) (*server.Server, error) {
	return server.New(db.records, opts...)
}
