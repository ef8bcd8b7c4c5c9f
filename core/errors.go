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

import "errors"

// Domain validation errors
var (
	// ErrInvalidChunk indicates a Chunk failed validation.
	ErrInvalidChunk = errors.New("invalid chunk")

	// ErrMissingProvenance indicates a chunk arrived without the
	// source/page metadata its identifier is built from.
	ErrMissingProvenance = errors.New("missing provenance metadata")

	// ErrEmptyText indicates the Text field is empty.
	ErrEmptyText = errors.New("text cannot be empty")

	// ErrNegativePage indicates a page number below zero.
	ErrNegativePage = errors.New("page cannot be negative")

	// ErrOrderingViolation indicates the input sequence did not keep all
	// chunks of a page contiguous. Identifier assignment over such a
	// sequence would produce duplicates, so it aborts before any store
	// mutation.
	ErrOrderingViolation = errors.New("chunk ordering violation")
)
