// SPDX-License-Identifier: EPL-2.0

package container

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/go-audio/riff"
	"github.com/ik5/audfile/audio"
)

// Chunk and form identifiers.
var (
	FormID   = [4]byte{'F', 'O', 'R', 'M'}
	FormAIFF = [4]byte{'A', 'I', 'F', 'F'}
	FormAIFC = [4]byte{'A', 'I', 'F', 'C'}
	CommID   = [4]byte{'C', 'O', 'M', 'M'}
	SsndID   = [4]byte{'S', 'S', 'N', 'D'}
	FverID   = [4]byte{'F', 'V', 'E', 'R'}
	FactID   = [4]byte{'f', 'a', 'c', 't'}
)

// Dialect describes one container convention.
type Dialect struct {
	Name string
	// ID is the outer group identifier.
	ID [4]byte
	// FormTypes lists the accepted form types; the first one is the default
	// for writing.
	FormTypes [][4]byte
	// Order is the byte order of the length fields.
	Order binary.ByteOrder
	// PadOdd reports whether odd-length chunks are followed by a pad byte.
	PadOdd bool
	// FormatID and DataID name the two semantically required chunks.
	FormatID [4]byte
	DataID   [4]byte
}

var (
	// RIFF is the little-endian RIFF/WAVE container.
	RIFF = &Dialect{
		Name:      "RIFF/WAVE",
		ID:        riff.RiffID,
		FormTypes: [][4]byte{riff.WavFormatID},
		Order:     binary.LittleEndian,
		PadOdd:    true,
		FormatID:  riff.FmtID,
		DataID:    riff.DataFormatID,
	}

	// AIFF is the big-endian FORM container carrying AIFF or AIFC.
	AIFF = &Dialect{
		Name:      "AIFF/AIFC",
		ID:        FormID,
		FormTypes: [][4]byte{FormAIFF, FormAIFC},
		Order:     binary.BigEndian,
		PadOdd:    true,
		FormatID:  CommID,
		DataID:    SsndID,
	}
)

// Accepts reports whether formType is one of the dialect's form types.
func (d *Dialect) Accepts(formType [4]byte) bool {
	for _, ft := range d.FormTypes {
		if ft == formType {
			return true
		}
	}
	return false
}

func (d *Dialect) String() string { return d.Name }

// HeaderSize is the length of the outer group header.
const HeaderSize = 12

// Detect picks the dialect of a container from its first 12 bytes. A
// shorter header that starts with a known group ID is reported as
// truncated.
func Detect(header []byte) (*Dialect, error) {
	if len(header) < HeaderSize {
		for _, d := range []*Dialect{RIFF, AIFF} {
			if len(header) >= 4 && bytes.Equal(header[:4], d.ID[:]) {
				return nil, fmt.Errorf("%w: %d of %d %s header bytes", audio.ErrTruncated, len(header), HeaderSize, d)
			}
		}
		return nil, fmt.Errorf("%w: %d header bytes", audio.ErrBadSignature, len(header))
	}

	var formType [4]byte
	copy(formType[:], header[8:12])

	for _, d := range []*Dialect{RIFF, AIFF} {
		if bytes.Equal(header[:4], d.ID[:]) && d.Accepts(formType) {
			return d, nil
		}
	}

	return nil, fmt.Errorf("%w: %q/%q", audio.ErrBadSignature, header[:4], header[8:12])
}
