// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audfile/audio"
	"github.com/ik5/audfile/container"
)

// Codec reads AIFF and AIFC files and writes the variant selected by its
// fields.
type Codec struct {
	// AIFC selects the FORM/AIFC variant on Encode.
	AIFC bool
	// Compression is the AIFC compression type written on Encode:
	// CompressionNone (the default) or CompressionSowt.
	Compression [4]byte
}

var _ audio.Codec = Codec{}

// reserved reports whether id is a chunk the codec generates itself.
func reserved(id [4]byte) bool {
	return id == container.CommID || id == container.SsndID || id == container.FverID
}

// Decode parses a whole FORM/AIFF or FORM/AIFC stream.
func (Codec) Decode(r io.Reader, opts audio.DecodeOptions) (*audio.RawAudio, error) {
	s, err := container.NewScanner(r, container.AIFF)
	if errors.Is(err, audio.ErrBadSignature) {
		return nil, ErrNotAiffFile
	}
	if err != nil {
		return nil, err
	}

	aifc := s.FormType() == container.FormAIFC

	var (
		comm    CommonChunk
		commAt  int64
		ssnd    []byte
		hasComm bool
		hasSsnd bool
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
		case c.ID == container.CommID && !hasComm:
			payload, err := s.Payload()
			if err != nil {
				return nil, err
			}
			if comm, err = ParseCOMM(payload, aifc); err != nil {
				return nil, &audio.ChunkError{ID: c.ID, Offset: c.Offset, Err: err}
			}
			commAt, hasComm = c.Offset, true

		case c.ID == container.SsndID && !hasSsnd:
			payload, err := s.Payload()
			if err != nil {
				return nil, err
			}
			if ssnd, err = soundData(payload); err != nil {
				return nil, &audio.ChunkError{ID: c.ID, Offset: c.Offset, Err: err}
			}
			hasSsnd = true

		case opts.KeepChunks && !reserved(c.ID):
			if _, err := s.Payload(); err != nil {
				return nil, err
			}
			extra = append(extra, *c)
		}
	}

	if !hasComm {
		return nil, ErrMissingCommChunk
	}

	format, err := comm.Format()
	if err != nil {
		return nil, &audio.ChunkError{ID: container.CommID, Offset: commAt, Err: err}
	}
	bigEndian, _ := comm.BigEndian()

	frames := int(comm.NumSampleFrames)
	size := int64(frames) * int64(format.BlockAlign())
	switch {
	case !hasSsnd && frames > 0:
		return nil, ErrMissingSoundChunk
	case int64(len(ssnd)) < size:
		return nil, fmt.Errorf("%w: COMM declares %d frames, SSND holds %d bytes of %d",
			audio.ErrTruncated, frames, len(ssnd), size)
	}

	return &audio.RawAudio{
		Format:    format,
		BigEndian: bigEndian,
		Frames:    frames,
		Data:      ssnd[:size],
		Chunks:    extra,
	}, nil
}
