// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/ik5/audfile/audio"
	"github.com/ik5/audfile/utils"
)

// Frames returns how many whole frames fit in dataLen bytes.
func Frames(dataLen int, l audio.Layout, numChannels int) int {
	block := l.BytesPerSample() * numChannels
	if block <= 0 {
		return 0
	}
	return dataLen / block
}

// Decode de-interleaves numFrames frames of numChannels samples from raw.
// raw may be longer than needed (trailing padding is ignored) but not
// shorter.
func Decode[S Sample](raw []byte, l audio.Layout, numChannels, numFrames int) ([][]S, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if numChannels < 1 {
		return nil, fmt.Errorf("%w: %d", audio.ErrInvalidNumChannels, numChannels)
	}
	if numFrames < 0 {
		return nil, fmt.Errorf("%w: negative frame count %d", audio.ErrValidation, numFrames)
	}

	bps := l.BytesPerSample()
	if need := int64(numFrames) * int64(numChannels) * int64(bps); int64(len(raw)) < need {
		return nil, fmt.Errorf("%w: %d frames need %d bytes, have %d",
			audio.ErrTruncated, numFrames, need, len(raw))
	}

	out := make([][]S, numChannels)
	for ch := range out {
		out[ch] = make([]S, numFrames)
	}

	pos := 0
	if l.Domain == audio.Float {
		read := floatReader(l)
		conv := FromFloat[S]()
		for i := range numFrames {
			for ch := range numChannels {
				out[ch][i] = conv(read(raw[pos : pos+bps]))
				pos += bps
			}
		}
		return out, nil
	}

	if l.Domain == audio.UnsignedInt && IsFloat[S]() {
		for i := range numFrames {
			for ch := range numChannels {
				out[ch][i] = S(utils.ByteToSample(raw[pos]))
				pos++
			}
		}
		return out, nil
	}

	read := intReader(l)
	conv := FromInt[S](l.BitDepth)
	for i := range numFrames {
		for ch := range numChannels {
			out[ch][i] = conv(read(raw[pos : pos+bps]))
			pos += bps
		}
	}

	return out, nil
}

// Encode interleaves channels into raw bytes of layout l.
func Encode[S Sample](channels [][]S, l audio.Layout) ([]byte, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if len(channels) == 0 {
		return nil, fmt.Errorf("%w: 0", audio.ErrInvalidNumChannels)
	}

	frames := len(channels[0])
	for ch := range channels {
		if len(channels[ch]) != frames {
			return nil, fmt.Errorf("%w: channel %d has %d samples, channel 0 has %d",
				audio.ErrRaggedBuffer, ch, len(channels[ch]), frames)
		}
	}

	bps := l.BytesPerSample()
	buf := make([]byte, frames*len(channels)*bps)

	pos := 0
	if l.Domain == audio.Float {
		write := floatWriter(l)
		conv := ToFloat[S]()
		for i := range frames {
			for ch := range channels {
				write(buf[pos:pos+bps], conv(channels[ch][i]))
				pos += bps
			}
		}
		return buf, nil
	}

	if l.Domain == audio.UnsignedInt && IsFloat[S]() {
		for i := range frames {
			for ch := range channels {
				buf[pos] = utils.SampleToByte(float64(channels[ch][i]))
				pos++
			}
		}
		return buf, nil
	}

	write := intWriter(l)
	conv := ToInt[S](l.BitDepth)
	for i := range frames {
		for ch := range channels {
			write(buf[pos:pos+bps], conv(channels[ch][i]))
			pos += bps
		}
	}

	return buf, nil
}

func byteOrder(l audio.Layout) binary.ByteOrder {
	if l.BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// intReader returns a reader of one stored integer sample, sign extended.
func intReader(l audio.Layout) func([]byte) int64 {
	order := byteOrder(l)
	switch l.BitDepth {
	case 8:
		if l.Domain == audio.UnsignedInt {
			return func(b []byte) int64 { return int64(b[0]) - 128 }
		}
		return func(b []byte) int64 { return int64(int8(b[0])) }
	case 16:
		return func(b []byte) int64 { return int64(int16(order.Uint16(b))) }
	case 24:
		if l.BigEndian {
			return func(b []byte) int64 {
				u := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8
				return int64(int32(u) >> 8)
			}
		}
		return func(b []byte) int64 {
			u := uint32(b[2])<<24 | uint32(b[1])<<16 | uint32(b[0])<<8
			return int64(int32(u) >> 8)
		}
	default:
		return func(b []byte) int64 { return int64(int32(order.Uint32(b))) }
	}
}

// intWriter returns a writer of one stored integer sample.
func intWriter(l audio.Layout) func([]byte, int64) {
	order := byteOrder(l)
	switch l.BitDepth {
	case 8:
		if l.Domain == audio.UnsignedInt {
			return func(b []byte, v int64) { b[0] = byte(v + 128) }
		}
		return func(b []byte, v int64) { b[0] = byte(int8(v)) }
	case 16:
		return func(b []byte, v int64) { order.PutUint16(b, uint16(v)) }
	case 24:
		if l.BigEndian {
			return func(b []byte, v int64) {
				b[0], b[1], b[2] = byte(v>>16), byte(v>>8), byte(v)
			}
		}
		return func(b []byte, v int64) {
			b[0], b[1], b[2] = byte(v), byte(v>>8), byte(v>>16)
		}
	default:
		return func(b []byte, v int64) { order.PutUint32(b, uint32(v)) }
	}
}

func floatReader(l audio.Layout) func([]byte) float64 {
	order := byteOrder(l)
	if l.BitDepth == 32 {
		return func(b []byte) float64 { return float64(math.Float32frombits(order.Uint32(b))) }
	}
	return func(b []byte) float64 { return math.Float64frombits(order.Uint64(b)) }
}

func floatWriter(l audio.Layout) func([]byte, float64) {
	order := byteOrder(l)
	if l.BitDepth == 32 {
		return func(b []byte, x float64) { order.PutUint32(b, math.Float32bits(float32(x))) }
	}
	return func(b []byte, x float64) { order.PutUint64(b, math.Float64bits(x)) }
}
