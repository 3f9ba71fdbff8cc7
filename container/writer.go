// SPDX-License-Identifier: EPL-2.0

package container

import (
	"fmt"
	"io"
	"math"

	"github.com/ik5/audfile/audio"
)

// ErrTooLarge is returned when a container would not fit 32-bit length fields.
var ErrTooLarge = fmt.Errorf("%w: container exceeds 4 GiB", audio.ErrValidation)

// FormSize returns the value of the outer size field for chunks: the form
// type plus every chunk header, payload and pad byte.
func FormSize(d *Dialect, chunks ...audio.Chunk) (uint32, error) {
	size := uint64(4)
	for _, c := range chunks {
		size += 8 + uint64(len(c.Data))
		if d.PadOdd && len(c.Data)%2 == 1 {
			size++
		}
	}

	if size > math.MaxUint32 {
		return 0, ErrTooLarge
	}

	return uint32(size), nil
}

// WriteForm writes a complete container: the outer header followed by every
// chunk. Chunk sizes are taken from len(Data); Size and Offset are ignored.
func WriteForm(w io.Writer, d *Dialect, formType [4]byte, chunks ...audio.Chunk) error {
	size, err := FormSize(d, chunks...)
	if err != nil {
		return err
	}

	header := make([]byte, HeaderSize)
	copy(header[0:4], d.ID[:])
	d.Order.PutUint32(header[4:8], size)
	copy(header[8:12], formType[:])

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}

	for _, c := range chunks {
		if err := WriteChunk(w, d, c.ID, c.Data); err != nil {
			return err
		}
	}

	return nil
}

// WriteChunk writes one chunk header, its payload and, for odd lengths, the
// pad byte.
func WriteChunk(w io.Writer, d *Dialect, id [4]byte, data []byte) error {
	if uint64(len(data)) > math.MaxUint32 {
		return ErrTooLarge
	}

	var hdr [8]byte
	copy(hdr[0:4], id[:])
	d.Order.PutUint32(hdr[4:8], uint32(len(data)))

	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}

	if d.PadOdd && len(data)%2 == 1 {
		if _, err := w.Write([]byte{0}); err != nil {
			return fmt.Errorf("%w: %w", audio.ErrIO, err)
		}
	}

	return nil
}
