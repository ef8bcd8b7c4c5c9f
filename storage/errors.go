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


package storage

import "errors"

var (
	// ErrDuplicateChunk indicates an insert under an identifier that is
	// already persisted. The dedup step normally prevents this; seeing it
	// means the caller bypassed the diff or two writers raced.
	ErrDuplicateChunk = errors.New("duplicate chunk identifier")

	// ErrUnassignedID indicates an attempt to persist a chunk before the
	// identity pass assigned its identifier.
	ErrUnassignedID = errors.New("chunk has no identifier")

	// ErrStorageClosed indicates that the storage backend is closed.
	ErrStorageClosed = errors.New("storage is closed")

	// ErrSerializationFailed indicates a serialization/deserialization failure.
	ErrSerializationFailed = errors.New("serialization failed")
)
