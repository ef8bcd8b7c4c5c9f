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


// Package storage defines the vector-store contract the sync engine
// drives, decoupled from any particular backend.
//
// The contract is deliberately narrow. The sync layer only ever needs
// to enumerate persisted identifiers, append new entries under
// caller-supplied identifiers, and flush durably. Nothing in normal
// operation updates or removes an existing entry; a full Reset
// (destroying the backing storage) is the only way state is removed.
//
// # Constructor Return Type Pattern
//
// Public constructors in backend packages return concrete types for
// use within composition code, while consumers of this package depend
// only on the ChunkRepository interface:
//
//	repo, err := badger.NewChunkRepository(backend)
//	var r storage.ChunkRepository = repo
//
// # Thread Safety
//
// Implementations must be safe for concurrent reads. The pipeline
// itself is a single-writer batch job; coordinating multiple writers
// against the same store location is outside this layer.
package storage
