// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
)

// DecodeOptions tunes a Decoder.
type DecodeOptions struct {
	// KeepChunks retains the payload of chunks other than the format and
	// data chunks in RawAudio.Chunks. By default they are discarded.
	KeepChunks bool
}

// Decoder parses a whole container from r.
type Decoder interface {
	Decode(r io.Reader, opts DecodeOptions) (*RawAudio, error)
}

// Encoder serializes RawAudio into a container.
type Encoder interface {
	// Layout returns the byte layout the container stores f with, or an
	// error wrapping ErrFormat when the container cannot carry f.
	Layout(f Format) (Layout, error)
	Encode(w io.Writer, a *RawAudio) error
}

// Codec reads and writes one container dialect.
type Codec interface {
	Decoder
	Encoder
}

// RawAudio is the container level essence of a file: the format, the byte
// order of the samples and the interleaved sample bytes.
type RawAudio struct {
	Format    Format
	BigEndian bool
	// Frames is the per-channel sample count. len(Data) == Frames*Format.BlockAlign().
	Frames int
	Data   []byte
	// Chunks holds preserved non-essential chunks, in file order.
	Chunks []Chunk
}

// Layout returns the raw sample layout of a.
func (a *RawAudio) Layout() Layout {
	return Layout{
		BitDepth:  a.Format.BitDepth,
		Domain:    a.Format.Domain,
		BigEndian: a.BigEndian,
	}
}

// Registry for codecs by format key (e.g., "wav", "aiff", "aifc").
type Registry struct {
	codecs map[string]Codec

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Codec),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, c Codec) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = c
}

func (r *Registry) Get(format string) (Codec, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	c, ok := r.codecs[format]
	return c, ok
}
