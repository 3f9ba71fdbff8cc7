// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/audfile/audio"
	"github.com/ik5/audfile/container"
)

// compression returns the compression type written by c.
func (c Codec) compression() ([4]byte, error) {
	switch {
	case !c.AIFC, c.Compression == [4]byte{}, c.Compression == CompressionNone:
		return CompressionNone, nil
	case c.Compression == CompressionSowt:
		return CompressionSowt, nil
	default:
		return [4]byte{}, fmt.Errorf("%w: %q", ErrUnsupportedCompressionType, c.Compression[:])
	}
}

// Layout returns how f is stored: offset-binary bytes at 8 bits, two's
// complement integers above, big-endian unless the sowt compression is
// selected.
func (c Codec) Layout(f audio.Format) (audio.Layout, error) {
	if f.Domain == audio.Float {
		return audio.Layout{}, ErrFloatNotSupported
	}

	comp, err := c.compression()
	if err != nil {
		return audio.Layout{}, err
	}
	if err := checkHeader(f, 0); err != nil {
		return audio.Layout{}, err
	}

	l := audio.Layout{
		BitDepth:  f.BitDepth,
		Domain:    domain(f.BitDepth),
		BigEndian: comp != CompressionSowt,
	}
	if err := l.Validate(); err != nil {
		return audio.Layout{}, err
	}

	return l, nil
}

// Encode writes a as FORM/AIFF, or as FORM/AIFC with FVER, COMM and SSND
// when c.AIFC is set. Preserved chunks follow the SSND chunk.
func (c Codec) Encode(w io.Writer, a *audio.RawAudio) error {
	if err := a.Format.Validate(); err != nil {
		return err
	}

	l, err := c.Layout(a.Format)
	if err != nil {
		return err
	}
	if a.Layout() != l {
		return fmt.Errorf("%w: AIFF stores %s samples as %d-bit %s, big-endian %t",
			audio.ErrUnsupportedFormat, a.Format.Domain, l.BitDepth, l.Domain, l.BigEndian)
	}
	if len(a.Data) != a.Frames*a.Format.BlockAlign() {
		return fmt.Errorf("%w: %d data bytes for %d frames", audio.ErrValidation, len(a.Data), a.Frames)
	}
	if err := checkHeader(a.Format, a.Frames); err != nil {
		return err
	}

	comp, _ := c.compression()
	comm := NewCommonChunk(a.Format, a.Frames, comp)

	// offset and block size are zero
	ssnd := make([]byte, 8+len(a.Data))
	copy(ssnd[8:], a.Data)

	formType := container.FormAIFF
	chunks := make([]audio.Chunk, 0, 3+len(a.Chunks))
	if c.AIFC {
		formType = container.FormAIFC
		chunks = append(chunks, audio.Chunk{
			ID:   container.FverID,
			Data: binary.BigEndian.AppendUint32(nil, AIFCVersion1),
		})
	}
	chunks = append(chunks,
		audio.Chunk{ID: container.CommID, Data: comm.Bytes(c.AIFC)},
		audio.Chunk{ID: container.SsndID, Data: ssnd},
	)

	for _, ch := range a.Chunks {
		if !reserved(ch.ID) {
			chunks = append(chunks, ch)
		}
	}

	return container.WriteForm(w, container.AIFF, formType, chunks...)
}
