// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/riff"
	"github.com/ik5/audfile/audio"
	"github.com/ik5/audfile/container"
)

// Layout returns how f is stored in a WAVE file: little-endian, 8-bit
// integers as unsigned bytes and wider integers as two's complement.
func (Codec) Layout(f audio.Format) (audio.Layout, error) {
	l := audio.Layout{BitDepth: f.BitDepth, Domain: f.Domain}
	if f.Domain.IsInteger() {
		l.Domain = audio.SignedInt
		if f.BitDepth == 8 {
			l.Domain = audio.UnsignedInt
		}
	}
	if err := l.Validate(); err != nil {
		return audio.Layout{}, err
	}
	if err := checkHeader(f, 0); err != nil {
		return audio.Layout{}, err
	}
	return l, nil
}

// Encode writes a as a RIFF/WAVE file: fmt, fact for float data, data and
// then any preserved chunks.
func (c Codec) Encode(w io.Writer, a *audio.RawAudio) error {
	if err := a.Format.Validate(); err != nil {
		return err
	}

	l, err := c.Layout(a.Format)
	if err != nil {
		return err
	}
	if a.Layout() != l {
		return fmt.Errorf("%w: WAVE stores %s samples as %d-bit %s little-endian",
			audio.ErrUnsupportedFormat, a.Format.Domain, l.BitDepth, l.Domain)
	}
	if len(a.Data) != a.Frames*a.Format.BlockAlign() {
		return fmt.Errorf("%w: %d data bytes for %d frames", audio.ErrValidation, len(a.Data), a.Frames)
	}
	if err := checkHeader(a.Format, a.Frames); err != nil {
		return err
	}

	chunks := make([]audio.Chunk, 0, 3+len(a.Chunks))
	chunks = append(chunks, audio.Chunk{ID: riff.FmtID, Data: NewFmtChunk(a.Format).Bytes()})
	if a.Format.Domain == audio.Float {
		chunks = append(chunks, audio.Chunk{
			ID:   container.FactID,
			Data: binary.LittleEndian.AppendUint32(nil, uint32(a.Frames)),
		})
	}
	chunks = append(chunks, audio.Chunk{ID: riff.DataFormatID, Data: a.Data})

	for _, ch := range a.Chunks {
		if !reserved(ch.ID) {
			chunks = append(chunks, ch)
		}
	}

	return container.WriteForm(w, container.RIFF, riff.WavFormatID, chunks...)
}
