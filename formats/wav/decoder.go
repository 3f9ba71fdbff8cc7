// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"io"

	"github.com/ik5/audfile/audio"
	"github.com/ik5/audfile/container"
)

// Codec reads and writes RIFF/WAVE files.
type Codec struct{}

var _ audio.Codec = Codec{}

// reserved reports whether id is a chunk the codec generates itself.
func reserved(id [4]byte) bool {
	d := container.RIFF
	return id == d.FormatID || id == d.DataID || id == container.FactID
}

// Decode parses a whole RIFF/WAVE stream.
func (Codec) Decode(r io.Reader, opts audio.DecodeOptions) (*audio.RawAudio, error) {
	s, err := container.NewScanner(r, container.RIFF)
	if errors.Is(err, audio.ErrBadSignature) {
		return nil, ErrNotWavFile
	}
	if err != nil {
		return nil, err
	}

	var (
		format  audio.Format
		data    []byte
		hasFmt  bool
		hasData bool
		extra   []audio.Chunk
	)

	for {
		c, err := s.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch {
		case c.ID == container.RIFF.FormatID && !hasFmt:
			payload, err := s.Payload()
			if err != nil {
				return nil, err
			}
			fc, err := ParseFmt(payload)
			if err != nil {
				return nil, &audio.ChunkError{ID: c.ID, Offset: c.Offset, Err: err}
			}
			if format, err = fc.Format(); err != nil {
				return nil, &audio.ChunkError{ID: c.ID, Offset: c.Offset, Err: err}
			}
			hasFmt = true

		case c.ID == container.RIFF.DataID && !hasData:
			if data, err = s.Payload(); err != nil {
				return nil, err
			}
			hasData = true

		case opts.KeepChunks && !reserved(c.ID):
			if _, err := s.Payload(); err != nil {
				return nil, err
			}
			extra = append(extra, *c)
		}
	}

	if !hasFmt {
		return nil, ErrMissingFmtChunk
	}
	if !hasData {
		return nil, ErrMissingDataChunk
	}

	// a trailing partial frame is dropped
	frames := len(data) / format.BlockAlign()

	return &audio.RawAudio{
		Format: format,
		Frames: frames,
		Data:   data[:frames*format.BlockAlign()],
		Chunks: extra,
	}, nil
}
