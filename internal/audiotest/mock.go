// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds audio fixtures for tests: per-channel signals and
// raw RIFF/FORM containers, including deliberately malformed ones.
//
// It does not import the module's own packages so that every package can use
// it from internal tests.
package audiotest

import (
	"bytes"
	"encoding/binary"
	"math"
)

// NewSignal generates channels x frames samples from waveform.
func NewSignal(channels, frames int, waveform func(frame int, channel int) float64) [][]float64 {
	out := make([][]float64, channels)
	for ch := range out {
		out[ch] = make([]float64, frames)
		for i := range frames {
			out[ch][i] = waveform(i, ch)
		}
	}
	return out
}

// Silence generates a silent signal.
func Silence(channels, frames int) [][]float64 {
	return NewSignal(channels, frames, func(frame int, channel int) float64 {
		return 0.0
	})
}

// Sine generates a sine wave, phase shifted per channel.
func Sine(channels, frames, sampleRate int, frequency float64) [][]float64 {
	return NewSignal(channels, frames, func(frame int, channel int) float64 {
		t := float64(frame) / float64(sampleRate)
		return 0.9 * math.Sin(2*math.Pi*frequency*t+float64(channel))
	})
}

// Int16Pattern returns a deterministic 16-bit signal that includes both
// extremes, zero and values with all low bits set.
func Int16Pattern(channels, frames int) [][]int16 {
	fixed := []int16{0, math.MaxInt16, math.MinInt16, -1, 1, 255, -256, 0x1234, -0x4321}
	out := make([][]int16, channels)
	seed := uint32(2463534242)
	for ch := range out {
		out[ch] = make([]int16, frames)
		for i := range frames {
			if i < len(fixed) {
				out[ch][i] = fixed[(i+ch)%len(fixed)]
				continue
			}
			// xorshift32
			seed ^= seed << 13
			seed ^= seed >> 17
			seed ^= seed << 5
			out[ch][i] = int16(seed)
		}
	}
	return out
}

// Interleave16 interleaves 16-bit channels and serializes them in order.
func Interleave16(order binary.AppendByteOrder, channels [][]int16) []byte {
	if len(channels) == 0 {
		return nil
	}
	frames := len(channels[0])
	buf := make([]byte, 0, frames*len(channels)*2)
	for i := range frames {
		for ch := range channels {
			buf = order.AppendUint16(buf, uint16(channels[ch][i]))
		}
	}
	return buf
}

// Chunk is a fixture chunk. Declared overrides the length field when
// non-zero, which makes truncated or lying chunks possible.
type Chunk struct {
	ID       string
	Data     []byte
	Declared uint32
	NoPad    bool
}

// Container serializes a RIFF or FORM container. The outer size field is
// computed from the bytes actually written.
func Container(order binary.ByteOrder, groupID, formType string, chunks ...Chunk) []byte {
	body := new(bytes.Buffer)
	body.WriteString(formType)
	for _, c := range chunks {
		size := uint32(len(c.Data))
		if c.Declared != 0 {
			size = c.Declared
		}
		body.WriteString(c.ID)
		binary.Write(body, order, size)
		body.Write(c.Data)
		if len(c.Data)%2 == 1 && !c.NoPad {
			body.WriteByte(0)
		}
	}

	buf := new(bytes.Buffer)
	buf.WriteString(groupID)
	binary.Write(buf, order, uint32(body.Len()))
	buf.Write(body.Bytes())
	return buf.Bytes()
}

// RIFF serializes a little-endian RIFF/WAVE container.
func RIFF(chunks ...Chunk) []byte {
	return Container(binary.LittleEndian, "RIFF", "WAVE", chunks...)
}

// FORM serializes a big-endian FORM container of formType AIFF or AIFC.
func FORM(formType string, chunks ...Chunk) []byte {
	return Container(binary.BigEndian, "FORM", formType, chunks...)
}

// WAVFmt builds a 16-byte WAVE fmt payload.
func WAVFmt(tag uint16, channels, sampleRate, bitsPerSample int) []byte {
	buf := new(bytes.Buffer)
	blockAlign := channels * bitsPerSample / 8
	binary.Write(buf, binary.LittleEndian, tag)
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate*blockAlign))
	binary.Write(buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(buf, binary.LittleEndian, uint16(bitsPerSample))
	return buf.Bytes()
}

// WAV16 builds a canonical 16-bit PCM WAVE file.
func WAV16(sampleRate int, channels [][]int16) []byte {
	return RIFF(
		Chunk{ID: "fmt ", Data: WAVFmt(1, len(channels), sampleRate, 16)},
		Chunk{ID: "data", Data: Interleave16(binary.LittleEndian, channels)},
	)
}

// COMM builds an AIFF COMM payload. A non-empty compression makes it an
// AIFC COMM with an empty compression name.
func COMM(channels, frames, bitsPerSample int, sampleRate float64, compression string) []byte {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.BigEndian, int16(channels))
	binary.Write(buf, binary.BigEndian, uint32(frames))
	binary.Write(buf, binary.BigEndian, int16(bitsPerSample))
	buf.Write(Extended(sampleRate))
	if compression != "" {
		buf.WriteString(compression)
		buf.Write([]byte{0, 0}) // empty pascal string plus pad
	}
	return buf.Bytes()
}

// SSND builds an SSND payload with zero offset and block size.
func SSND(samples []byte) []byte {
	return append(make([]byte, 8), samples...)
}

// AIFF16 builds a 16-bit big-endian AIFF file.
func AIFF16(sampleRate int, channels [][]int16) []byte {
	frames := 0
	if len(channels) > 0 {
		frames = len(channels[0])
	}
	return FORM("AIFF",
		Chunk{ID: "COMM", Data: COMM(len(channels), frames, 16, float64(sampleRate), "")},
		Chunk{ID: "SSND", Data: SSND(Interleave16(binary.BigEndian, channels))},
	)
}

// Extended encodes a positive value as an 80-bit IEEE 754 extended float.
func Extended(v float64) []byte {
	out := make([]byte, 10)
	if v == 0 {
		return out
	}
	exp := 16383 + 63
	for v < float64(uint64(1)<<63) {
		v *= 2
		exp--
	}
	for v >= float64(uint64(1)<<63)*2 {
		v /= 2
		exp++
	}
	binary.BigEndian.PutUint16(out[0:2], uint16(exp))
	binary.BigEndian.PutUint64(out[2:10], uint64(v))
	return out
}
