package ingest

import (
	"fmt"

	"github.com/silvannet/docdex/core"
)

// assignState is the accumulator for one identifier-assignment pass.
// The fold is the identity contract: the chunk index resets to 0 when
// the page key changes and increments while it stays the same, so
// identical input order always yields identical identifiers.
type assignState struct {
	lastPageKey string
	index       int
	// donePages records page runs that have ended; a key recurring after
	// its run ended means the input interleaved pages and identifiers
	// would collide.
	donePages map[string]struct{}
}

// next advances the accumulator for one chunk and returns its identifier.
func (st assignState) next(chunk *core.Chunk) (assignState, core.ChunkID, error) {
	key := chunk.PageKey()

	if key == st.lastPageKey {
		st.index++
	} else {
		if _, seen := st.donePages[key]; seen {
			return st, "", fmt.Errorf("%w: page %q is not contiguous in the input sequence",
				core.ErrOrderingViolation, key)
		}
		if st.lastPageKey != "" {
			st.donePages[st.lastPageKey] = struct{}{}
		}
		st.lastPageKey = key
		st.index = 0
	}

	return st, core.NewChunkID(chunk.Source, chunk.Page, st.index), nil
}

// AssignChunkIDs computes and assigns identifiers for an ordered chunk
// sequence in a single forward pass. The input order must keep all
// chunks of a page contiguous; a violation aborts with
// core.ErrOrderingViolation before any identifier is trusted downstream.
func AssignChunkIDs(chunks []*core.Chunk) error {
	st := assignState{donePages: make(map[string]struct{})}

	for _, chunk := range chunks {
		var (
			id  core.ChunkID
			err error
		)
		st, id, err = st.next(chunk)
		if err != nil {
			return err
		}
		chunk.ID = id
	}
	return nil
}
