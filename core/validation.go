// Copyright 2025 Silvan Networks
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

import "fmt"

// ValidateChunk validates a Chunk according to domain rules.
//
// Validation rules:
//   - Source must not be empty
//   - Page must not be negative
//   - Text must not be empty
//
// NOT validated (populated by later stages):
//   - ID (empty until the identity pass runs)
//   - Vector (empty until the sync engine embeds the chunk)
func ValidateChunk(chunk *Chunk) error {
	if chunk == nil {
		return fmt.Errorf("%w: chunk is nil", ErrInvalidChunk)
	}

	if chunk.Source == "" {
		return fmt.Errorf("%w: %w: source", ErrInvalidChunk, ErrMissingProvenance)
	}

	if chunk.Page < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrNegativePage)
	}

	if chunk.Text == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyText)
	}

	return nil
}
