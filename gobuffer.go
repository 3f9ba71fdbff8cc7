// SPDX-License-Identifier: EPL-2.0

package audfile

import (
	"fmt"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audfile/audio"
	"github.com/ik5/audfile/codec"
)

// intDepth is the bit depth of the values in IntBuffer.
func (a *AudioFile[S]) intDepth() int {
	if a.domain == audio.Float || a.bitDepth > 32 {
		return 32
	}
	return a.bitDepth
}

// IntBuffer returns the samples as an interleaved go-audio buffer of two's
// complement values at the file bit depth (32 for float files).
func (a *AudioFile[S]) IntBuffer() *goaudio.IntBuffer {
	depth := a.intDepth()
	conv := codec.ToInt[S](depth)

	frames, channels := a.NumSamplesPerChannel(), a.NumChannels()
	data := make([]int, 0, frames*channels)
	for i := range frames {
		for ch := range channels {
			data = append(data, int(conv(a.Samples[ch][i])))
		}
	}

	return &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: a.sampleRate},
		Data:           data,
		SourceBitDepth: depth,
	}
}

// FloatBuffer returns the samples as an interleaved go-audio buffer of
// normalized values.
func (a *AudioFile[S]) FloatBuffer() *goaudio.FloatBuffer {
	conv := codec.ToFloat[S]()

	frames, channels := a.NumSamplesPerChannel(), a.NumChannels()
	data := make([]float64, 0, frames*channels)
	for i := range frames {
		for ch := range channels {
			data = append(data, conv(a.Samples[ch][i]))
		}
	}

	return &goaudio.FloatBuffer{
		Format: &goaudio.Format{NumChannels: channels, SampleRate: a.sampleRate},
		Data:   data,
	}
}

func checkBufferFormat(f *goaudio.Format, n int) error {
	switch {
	case f == nil:
		return ErrNilBuffer
	case f.SampleRate <= 0:
		return fmt.Errorf("%w: %d", audio.ErrInvalidSampleRate, f.SampleRate)
	case f.NumChannels < 1:
		return fmt.Errorf("%w: %d", audio.ErrInvalidNumChannels, f.NumChannels)
	case n%f.NumChannels != 0:
		return fmt.Errorf("%w: %d samples for %d channels", audio.ErrRaggedBuffer, n, f.NumChannels)
	}
	return nil
}

// FromIntBuffer replaces the contents of a with buf. A zero SourceBitDepth
// is read as 16. On failure a is left unchanged.
func (a *AudioFile[S]) FromIntBuffer(buf *goaudio.IntBuffer) error {
	if buf == nil {
		return ErrNilBuffer
	}
	if err := checkBufferFormat(buf.Format, len(buf.Data)); err != nil {
		return err
	}

	depth := buf.SourceBitDepth
	if depth == 0 {
		depth = 16
	}
	switch depth {
	case 8, 16, 24, 32:
	default:
		return fmt.Errorf("%w: %d-bit integer buffer", audio.ErrUnsupportedFormat, depth)
	}

	conv := codec.FromInt[S](depth)
	samples := deinterleave(buf.Data, buf.Format.NumChannels, func(v int) S { return conv(int64(v)) })

	a.Samples = samples
	a.sampleRate = buf.Format.SampleRate
	a.bitDepth = depth
	a.domain = audio.SignedInt

	return nil
}

// FromFloatBuffer replaces the contents of a with buf and marks the file as
// 32-bit float. On failure a is left unchanged.
func (a *AudioFile[S]) FromFloatBuffer(buf *goaudio.FloatBuffer) error {
	if buf == nil {
		return ErrNilBuffer
	}
	if err := checkBufferFormat(buf.Format, len(buf.Data)); err != nil {
		return err
	}

	samples := deinterleave(buf.Data, buf.Format.NumChannels, codec.FromFloat[S]())

	a.Samples = samples
	a.sampleRate = buf.Format.SampleRate
	a.bitDepth = 32
	a.domain = audio.Float

	return nil
}

func deinterleave[T any, S codec.Sample](data []T, channels int, conv func(T) S) [][]S {
	frames := len(data) / channels
	out := make([][]S, channels)
	for ch := range out {
		out[ch] = make([]S, frames)
	}
	for i, v := range data {
		out[i%channels][i/channels] = conv(v)
	}
	return out
}
