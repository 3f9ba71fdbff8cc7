// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/ik5/audfile/audio"
)

// Format tags of the fmt chunk.
const (
	FormatPCM        uint16 = 0x0001
	FormatIEEEFloat  uint16 = 0x0003
	FormatExtensible uint16 = 0xFFFE
)

// subFormatTail is the KSDATAFORMAT_SUBTYPE GUID after its leading tag.
var subFormatTail = []byte{
	0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x80, 0x00,
	0x00, 0xaa, 0x00, 0x38, 0x9b, 0x71,
}

// FmtChunk is a decoded fmt chunk.
type FmtChunk struct {
	FormatTag     uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16

	// Extensible headers only.
	ValidBits   uint16
	ChannelMask uint32
	SubFormat   uint16
}

// ParseFmt decodes a fmt payload. Trailing extension bytes are ignored
// unless the tag is FormatExtensible.
func ParseFmt(payload []byte) (FmtChunk, error) {
	if len(payload) < 16 {
		return FmtChunk{}, fmt.Errorf("%w: %d byte fmt chunk", ErrUnsupportedWavLayout, len(payload))
	}

	le := binary.LittleEndian
	fc := FmtChunk{
		FormatTag:     le.Uint16(payload[0:2]),
		NumChannels:   le.Uint16(payload[2:4]),
		SampleRate:    le.Uint32(payload[4:8]),
		ByteRate:      le.Uint32(payload[8:12]),
		BlockAlign:    le.Uint16(payload[12:14]),
		BitsPerSample: le.Uint16(payload[14:16]),
	}

	if fc.FormatTag != FormatExtensible {
		return fc, nil
	}

	// cbSize(2) validBits(2) channelMask(4) subFormat GUID(16)
	if len(payload) < 40 || le.Uint16(payload[16:18]) < 22 {
		return FmtChunk{}, fmt.Errorf("%w: short extensible fmt chunk", ErrUnsupportedWavLayout)
	}
	fc.ValidBits = le.Uint16(payload[18:20])
	fc.ChannelMask = le.Uint32(payload[20:24])
	fc.SubFormat = le.Uint16(payload[24:26])
	if !bytes.Equal(payload[26:40], subFormatTail) {
		return FmtChunk{}, fmt.Errorf("%w: unknown extensible sub-format GUID", ErrUnsupportedFormatTag)
	}

	return fc, nil
}

// Tag returns the effective format tag, looking through extensible headers.
func (fc FmtChunk) Tag() uint16 {
	if fc.FormatTag == FormatExtensible {
		return fc.SubFormat
	}
	return fc.FormatTag
}

// Format maps the header to an audio.Format and checks that the block
// alignment matches the channel count and bit depth.
func (fc FmtChunk) Format() (audio.Format, error) {
	f := audio.Format{
		SampleRate:  int(fc.SampleRate),
		BitDepth:    int(fc.BitsPerSample),
		NumChannels: int(fc.NumChannels),
	}

	switch fc.Tag() {
	case FormatPCM:
		f.Domain = audio.SignedInt
		if f.BitDepth == 8 {
			f.Domain = audio.UnsignedInt
		}
	case FormatIEEEFloat:
		f.Domain = audio.Float
	default:
		return audio.Format{}, fmt.Errorf("%w: %#04x", ErrUnsupportedFormatTag, fc.Tag())
	}

	if err := f.Validate(); err != nil {
		return audio.Format{}, err
	}

	if int(fc.BlockAlign) != f.BlockAlign() {
		return audio.Format{}, fmt.Errorf("%w: block align %d for %d channel(s) of %d bits",
			ErrUnsupportedWavLayout, fc.BlockAlign, f.NumChannels, f.BitDepth)
	}

	return f, nil
}

// checkHeader reports whether f and a frame count fit the fmt and fact
// fields.
func checkHeader(f audio.Format, frames int) error {
	switch {
	case f.NumChannels > math.MaxUint16:
		return fmt.Errorf("%w: %d channels, WAVE holds at most %d", audio.ErrInvalidNumChannels, f.NumChannels, math.MaxUint16)
	case int64(f.SampleRate) > math.MaxUint32:
		return fmt.Errorf("%w: %d Hz", audio.ErrInvalidSampleRate, f.SampleRate)
	case f.BlockAlign() > math.MaxUint16:
		return fmt.Errorf("%w: block align %d does not fit fmt", audio.ErrValidation, f.BlockAlign())
	case int64(f.SampleRate)*int64(f.BlockAlign()) > math.MaxUint32:
		return fmt.Errorf("%w: byte rate %d does not fit fmt", audio.ErrValidation, int64(f.SampleRate)*int64(f.BlockAlign()))
	case frames < 0 || int64(frames) > math.MaxUint32:
		return fmt.Errorf("%w: %d frames do not fit fact", audio.ErrValidation, frames)
	}
	return nil
}

// NewFmtChunk builds the header written for f. f must have passed
// checkHeader.
func NewFmtChunk(f audio.Format) FmtChunk {
	tag := FormatPCM
	if f.Domain == audio.Float {
		tag = FormatIEEEFloat
	}

	return FmtChunk{
		FormatTag:     tag,
		NumChannels:   uint16(f.NumChannels),
		SampleRate:    uint32(f.SampleRate),
		ByteRate:      uint32(f.ByteRate()),
		BlockAlign:    uint16(f.BlockAlign()),
		BitsPerSample: uint16(f.BitDepth),
	}
}

// Bytes encodes the header: 16 bytes for PCM, 18 bytes (zero cbSize) for
// every other tag.
func (fc FmtChunk) Bytes() []byte {
	size := 16
	if fc.FormatTag != FormatPCM {
		size = 18
	}

	b := make([]byte, size)
	le := binary.LittleEndian
	le.PutUint16(b[0:2], fc.FormatTag)
	le.PutUint16(b[2:4], fc.NumChannels)
	le.PutUint32(b[4:8], fc.SampleRate)
	le.PutUint32(b[8:12], fc.ByteRate)
	le.PutUint16(b[12:14], fc.BlockAlign)
	le.PutUint16(b[14:16], fc.BitsPerSample)

	return b
}
