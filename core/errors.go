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


package core

import "errors"

// Domain validation errors
var (
	// ErrNotAString indicates the analyzer was handed a non-string value.
	ErrNotAString = errors.New("value must be a string")

	// ErrBadFrequencyKey indicates a frequency map key that is not a
	// single character.
	ErrBadFrequencyKey = errors.New("frequency map key must be a single character")
)
