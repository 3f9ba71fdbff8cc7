// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/ik5/audfile/audio"
)

// AIFC compression types.
var (
	CompressionNone = [4]byte{'N', 'O', 'N', 'E'}
	CompressionSowt = [4]byte{'s', 'o', 'w', 't'}
)

// AIFCVersion1 is the timestamp stored in the FVER chunk.
const AIFCVersion1 uint32 = 0xA2805140

const (
	commSize = 18
	noneName = "not compressed"
)

// CommonChunk is a decoded COMM chunk.
type CommonChunk struct {
	NumChannels     int16
	NumSampleFrames uint32
	SampleSize      int16
	SampleRate      Extended

	// AIFC only.
	CompressionType [4]byte
	CompressionName string
}

// ParseCOMM decodes a COMM payload. aifc selects the extended AIFC layout;
// a plain AIFF COMM reports CompressionNone.
func ParseCOMM(payload []byte, aifc bool) (CommonChunk, error) {
	if len(payload) < commSize || aifc && len(payload) < commSize+4 {
		return CommonChunk{}, fmt.Errorf("%w: %d byte COMM chunk", ErrUnsupportedAiffLayout, len(payload))
	}

	be := binary.BigEndian
	c := CommonChunk{
		NumChannels:     int16(be.Uint16(payload[0:2])),
		NumSampleFrames: be.Uint32(payload[2:6]),
		SampleSize:      int16(be.Uint16(payload[6:8])),
		CompressionType: CompressionNone,
	}
	copy(c.SampleRate[:], payload[8:18])

	if !aifc {
		return c, nil
	}

	copy(c.CompressionType[:], payload[18:22])

	// pascal string; a short name is kept as far as it goes
	if name := payload[22:]; len(name) > 0 {
		n := min(int(name[0]), len(name)-1)
		c.CompressionName = string(name[1 : 1+n])
	}

	return c, nil
}

// BigEndian reports the sample byte order implied by the compression type.
func (c CommonChunk) BigEndian() (bool, error) {
	switch c.CompressionType {
	case CompressionNone:
		return true, nil
	case CompressionSowt:
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnsupportedCompressionType, c.CompressionType[:])
	}
}

// domain is the numeric domain of bits-wide AIFF samples: offset-binary
// bytes at 8 bits, two's complement above.
func domain(bits int) audio.Domain {
	if bits == 8 {
		return audio.UnsignedInt
	}
	return audio.SignedInt
}

// Format maps the header to an audio.Format.
func (c CommonChunk) Format() (audio.Format, error) {
	if _, err := c.BigEndian(); err != nil {
		return audio.Format{}, err
	}

	rate := math.Round(c.SampleRate.Float64())
	if !(rate > 0 && rate <= math.MaxUint32) {
		return audio.Format{}, fmt.Errorf("%w: %g", audio.ErrInvalidSampleRate, rate)
	}

	f := audio.Format{
		SampleRate:  int(rate),
		BitDepth:    int(c.SampleSize),
		NumChannels: int(c.NumChannels),
		Domain:      domain(int(c.SampleSize)),
	}
	if err := f.Validate(); err != nil {
		return audio.Format{}, err
	}

	return f, nil
}

// checkHeader reports whether frames frames of f fit the COMM fields.
func checkHeader(f audio.Format, frames int) error {
	switch {
	case f.NumChannels > math.MaxInt16:
		return fmt.Errorf("%w: %d channels, AIFF holds at most %d", audio.ErrInvalidNumChannels, f.NumChannels, math.MaxInt16)
	case int64(f.SampleRate) > math.MaxUint32:
		return fmt.Errorf("%w: %d Hz", audio.ErrInvalidSampleRate, f.SampleRate)
	case frames < 0 || int64(frames) > math.MaxUint32:
		return fmt.Errorf("%w: %d frames do not fit COMM", audio.ErrValidation, frames)
	}
	return nil
}

// NewCommonChunk builds the header written for frames frames of f. The
// values must have passed checkHeader.
func NewCommonChunk(f audio.Format, frames int, compression [4]byte) CommonChunk {
	name := noneName
	if compression == CompressionSowt {
		name = ""
	}

	return CommonChunk{
		NumChannels:     int16(f.NumChannels),
		NumSampleFrames: uint32(frames),
		SampleSize:      int16(f.BitDepth),
		SampleRate:      NewExtended(float64(f.SampleRate)),
		CompressionType: compression,
		CompressionName: name,
	}
}

// Bytes encodes the chunk: 18 bytes for AIFF, followed by the compression
// type and a padded pascal string name for AIFC.
func (c CommonChunk) Bytes(aifc bool) []byte {
	b := make([]byte, commSize, commSize+6+len(c.CompressionName))
	be := binary.BigEndian
	be.PutUint16(b[0:2], uint16(c.NumChannels))
	be.PutUint32(b[2:6], c.NumSampleFrames)
	be.PutUint16(b[6:8], uint16(c.SampleSize))
	copy(b[8:18], c.SampleRate[:])

	if !aifc {
		return b
	}

	name := c.CompressionName
	if len(name) > 255 {
		name = name[:255]
	}

	b = append(b, c.CompressionType[:]...)
	b = append(b, byte(len(name)))
	b = append(b, name...)
	if len(name)%2 == 0 {
		b = append(b, 0)
	}

	return b
}

// soundData returns the sample bytes of an SSND payload, skipping the
// offset field.
func soundData(payload []byte) ([]byte, error) {
	if len(payload) < 8 {
		return nil, fmt.Errorf("%w: %d byte SSND chunk", ErrUnsupportedAiffLayout, len(payload))
	}

	offset := uint64(binary.BigEndian.Uint32(payload[0:4]))
	if 8+offset > uint64(len(payload)) {
		return nil, fmt.Errorf("%w: SSND offset %d past %d bytes", audio.ErrTruncated, offset, len(payload)-8)
	}

	return payload[8+offset:], nil
}
