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

import (
	"fmt"

	mus "github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"

	"github.com/silvannet/docdex/core"
)

var (
	vectorSer   = ord.NewSliceSer[float32](varint.Float32)
	metadataSer = ord.NewMapSer[string, string](ord.String, ord.String)

	// ChunkMUS serializes chunks in the MUS format for storage backends.
	ChunkMUS = chunkSer{}
)

// chunkSer is a hand-written MUS serializer for core.Chunk. Field order
// is part of the stored format: ID, Source, Page, Text, Vector, Metadata.
type chunkSer struct{}

var _ mus.Serializer[core.Chunk] = chunkSer{}

func (chunkSer) Marshal(c core.Chunk, bs []byte) (n int) {
	n = ord.String.Marshal(string(c.ID), bs)
	n += ord.String.Marshal(c.Source, bs[n:])
	n += varint.Int.Marshal(c.Page, bs[n:])
	n += ord.String.Marshal(c.Text, bs[n:])
	n += vectorSer.Marshal(c.Vector, bs[n:])
	n += metadataSer.Marshal(c.Metadata, bs[n:])
	return n
}

func (chunkSer) Unmarshal(bs []byte) (c core.Chunk, n int, err error) {
	var (
		id string
		n1 int
	)
	id, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	c.ID = core.ChunkID(id)

	c.Source, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}

	c.Page, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}

	c.Text, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}

	c.Vector, n1, err = vectorSer.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}

	c.Metadata, n1, err = metadataSer.Unmarshal(bs[n:])
	n += n1
	return
}

func (chunkSer) Size(c core.Chunk) (size int) {
	size = ord.String.Size(string(c.ID))
	size += ord.String.Size(c.Source)
	size += varint.Int.Size(c.Page)
	size += ord.String.Size(c.Text)
	size += vectorSer.Size(c.Vector)
	size += metadataSer.Size(c.Metadata)
	return size
}

func (chunkSer) Skip(bs []byte) (n int, err error) {
	var n1 int
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = vectorSer.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = metadataSer.Skip(bs[n:])
	n += n1
	return
}

// MarshalChunk serializes a Chunk to bytes.
func MarshalChunk(chunk *core.Chunk) []byte {
	buf := make([]byte, ChunkMUS.Size(*chunk))
	ChunkMUS.Marshal(*chunk, buf)
	return buf
}

// UnmarshalChunk deserializes a Chunk from bytes.
func UnmarshalChunk(data []byte) (*core.Chunk, error) {
	chunk, _, err := ChunkMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &chunk, nil
}
