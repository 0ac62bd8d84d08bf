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


// Package filter provides the structured filter model for analyzed
// strings, the natural-language compiler that produces it, and the
// matcher that evaluates it.
//
// A Spec is origin-agnostic: it can be built field by field from
// explicit request parameters, or compiled from a constrained
// natural-language sentence with Compile. Both paths are evaluated by
// the same Matches predicate, so the two query entry points cannot
// diverge.
//
// Compile is not a general parser. It runs a fixed, ordered list of
// independent pattern rules over the lower-cased sentence; each rule
// may contribute one field, all contributions are merged, and a
// sentence matching no rule fails with ErrUnparseable. There is no
// fuzzy matching and no "and"/"or" combination of sentences.
package filter
