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


// Package ingestion provides batch analysis and storage of string
// values over a bounded worker pool.
//
// Analysis is pure and identifiers are content-derived, so values in a
// batch are independent and safe to process concurrently. A duplicate
// value, whether within the batch or against already-stored records,
// is reported per value as a conflict and does not fail the batch.
package ingestion
