package badger

import "github.com/silvannet/docdex/core"

// Key prefix for chunk records. Chunk identifiers are unique strings,
// so they are embedded in the key directly; listing identifiers is then
// a key-only prefix scan.
const chunkRecordPrefix = "chkrec:"

// makeChunkKey generates the storage key for a chunk by identifier.
func makeChunkKey(id core.ChunkID) []byte {
	return []byte(chunkRecordPrefix + string(id))
}

// chunkIDFromKey recovers the chunk identifier from a storage key.
func chunkIDFromKey(key []byte) core.ChunkID {
	return core.ChunkID(key[len(chunkRecordPrefix):])
}
