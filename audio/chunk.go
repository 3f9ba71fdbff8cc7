// SPDX-License-Identifier: EPL-2.0

package audio

// Chunk is a tagged, length-prefixed unit within a container.
type Chunk struct {
	ID [4]byte
	// Size is the declared payload length, excluding any pad byte.
	Size uint32
	// Offset of the chunk header from the start of the container.
	Offset int64
	// Data is nil until the payload has been read.
	Data []byte
}

// Clone returns a copy of c that shares no memory with it.
func (c Chunk) Clone() Chunk {
	out := c
	if c.Data != nil {
		out.Data = append([]byte(nil), c.Data...)
	}

	return out
}

// CloneChunks deep copies a chunk list.
func CloneChunks(chunks []Chunk) []Chunk {
	if len(chunks) == 0 {
		return nil
	}

	out := make([]Chunk, len(chunks))
	for i := range chunks {
		out[i] = chunks[i].Clone()
	}

	return out
}

// ID builds a chunk identifier from a 4 character string.
func ID(s string) [4]byte {
	var id [4]byte
	copy(id[:], s)
	return id
}
