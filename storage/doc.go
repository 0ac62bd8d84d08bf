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


// Package storage provides the storage abstraction layer for strand.
//
// This package defines repository interfaces that decouple storage
// implementation from the analysis core. It allows different storage
// backends (BadgerDB, in-memory, etc.) to be used interchangeably.
//
// # Constructor Return Type Pattern
//
// Public backend constructors return interfaces to enforce abstraction:
//
//	repo, err := badger.NewRecordRepository(backend)  // storage.RecordRepository
//
// Internal package constructors may return concrete types since they
// are only used within the implementation package.
//
// # Create-If-Absent
//
// Record identifiers are a pure function of content, so two concurrent
// creations of the same value race to insert the same key. AddRecord
// is a single atomic operation; implementations must surface a
// uniqueness violation as ErrDuplicateKey rather than relying on a
// separate check-then-insert sequence, which is not atomic under
// concurrent writers.
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
//
// # Context Support
//
// All repository methods accept context.Context for cancellation and
// timeout support. Pass context.Background() for operations without
// specific timeout requirements.
package storage
