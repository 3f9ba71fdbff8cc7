// SPDX-License-Identifier: EPL-2.0

package audfile

import (
	"fmt"
	"strings"
	"time"

	"github.com/ik5/audfile/audio"
	"github.com/ik5/audfile/codec"
)

// Defaults of a new, empty AudioFile.
const (
	DefaultSampleRate = 44100
	DefaultBitDepth   = 16
)

// AudioFile is a decoded audio file: per-channel samples of type S plus the
// format they are saved with.
//
// AudioFile is not safe for concurrent use; distinct values are independent.
type AudioFile[S codec.Sample] struct {
	// Samples is indexed [channel][frame]. Every channel must have the same
	// length when the file is saved.
	Samples [][]S

	// KeepChunks retains chunks other than the format and sample chunks on
	// load. Chunks is written back after the sample chunk on save.
	KeepChunks bool
	Chunks     []audio.Chunk

	sampleRate int
	bitDepth   int
	domain     audio.Domain
	fileFormat FileFormat
}

// New returns an empty AudioFile: one channel with no samples, 44.1 kHz,
// 16-bit signed integer.
func New[S codec.Sample]() *AudioFile[S] {
	a := &AudioFile[S]{}
	a.reset()
	return a
}

func (a *AudioFile[S]) reset() {
	*a = AudioFile[S]{
		Samples:    [][]S{{}},
		sampleRate: DefaultSampleRate,
		bitDepth:   DefaultBitDepth,
		domain:     audio.SignedInt,
	}
}

// SampleRate returns the sample rate in Hz.
func (a *AudioFile[S]) SampleRate() int { return a.sampleRate }

// BitDepth returns the bit depth the samples are saved with.
func (a *AudioFile[S]) BitDepth() int { return a.bitDepth }

// Domain returns the numeric domain the samples are saved with.
func (a *AudioFile[S]) Domain() audio.Domain { return a.domain }

// FileFormat returns the format of the last loaded file, or "" when nothing
// was loaded.
func (a *AudioFile[S]) FileFormat() FileFormat { return a.fileFormat }

func (a *AudioFile[S]) NumChannels() int { return len(a.Samples) }

func (a *AudioFile[S]) NumSamplesPerChannel() int {
	if len(a.Samples) == 0 {
		return 0
	}
	return len(a.Samples[0])
}

func (a *AudioFile[S]) IsMono() bool   { return a.NumChannels() == 1 }
func (a *AudioFile[S]) IsStereo() bool { return a.NumChannels() == 2 }

// LengthInSeconds is the frame count divided by the sample rate.
func (a *AudioFile[S]) LengthInSeconds() float64 {
	if a.sampleRate <= 0 {
		return 0
	}
	return float64(a.NumSamplesPerChannel()) / float64(a.sampleRate)
}

// Duration is LengthInSeconds as a time.Duration, truncated to nanoseconds.
func (a *AudioFile[S]) Duration() time.Duration {
	if a.sampleRate <= 0 {
		return 0
	}
	return time.Duration(a.NumSamplesPerChannel()) * time.Second / time.Duration(a.sampleRate)
}

// Format returns the descriptor the samples would be saved with.
func (a *AudioFile[S]) Format() audio.Format {
	return audio.Format{
		SampleRate:  a.sampleRate,
		BitDepth:    a.bitDepth,
		NumChannels: a.NumChannels(),
		Domain:      a.domain,
	}
}

// SetSampleRate sets the sample rate. The samples are not resampled.
func (a *AudioFile[S]) SetSampleRate(rate int) error {
	if rate <= 0 {
		return fmt.Errorf("%w: %d", audio.ErrInvalidSampleRate, rate)
	}
	a.sampleRate = rate
	return nil
}

// SetBitDepth sets the bit depth used on save. Whether the depth is
// supported is checked against the domain and the target file format when
// saving.
func (a *AudioFile[S]) SetBitDepth(bits int) error {
	switch bits {
	case 8, 16, 24, 32, 64:
		a.bitDepth = bits
		return nil
	}
	return fmt.Errorf("%w: %d-bit", audio.ErrUnsupportedFormat, bits)
}

// SetDomain sets the numeric domain used on save.
func (a *AudioFile[S]) SetDomain(d audio.Domain) error {
	switch d {
	case audio.SignedInt, audio.UnsignedInt, audio.Float:
		a.domain = d
		return nil
	}
	return fmt.Errorf("%w: %v", audio.ErrUnsupportedFormat, d)
}

// silence is the sample value of a zero signal.
func silence[S codec.Sample]() S {
	return codec.FromFloat[S]()(0)
}

func newChannel[S codec.Sample](frames int) []S {
	ch := make([]S, frames)
	if z := silence[S](); z != 0 {
		for i := range ch {
			ch[i] = z
		}
	}
	return ch
}

// SetNumChannels adds silent channels or drops trailing ones.
func (a *AudioFile[S]) SetNumChannels(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %d", audio.ErrInvalidNumChannels, n)
	}

	frames := a.NumSamplesPerChannel()
	for len(a.Samples) < n {
		a.Samples = append(a.Samples, newChannel[S](frames))
	}
	a.Samples = a.Samples[:n:n]

	return nil
}

// SetNumSamplesPerChannel truncates every channel or extends it with
// silence.
func (a *AudioFile[S]) SetNumSamplesPerChannel(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative sample count %d", audio.ErrValidation, n)
	}

	for ch, s := range a.Samples {
		if len(s) >= n {
			a.Samples[ch] = s[:n:n]
			continue
		}
		grown := newChannel[S](n)
		copy(grown, s)
		a.Samples[ch] = grown
	}

	return nil
}

// SetAudioBufferSize resizes the buffer to numChannels channels of
// numSamples samples, keeping what fits and filling the rest with silence.
func (a *AudioFile[S]) SetAudioBufferSize(numChannels, numSamples int) error {
	if numChannels < 1 {
		return fmt.Errorf("%w: %d", audio.ErrInvalidNumChannels, numChannels)
	}
	if numSamples < 0 {
		return fmt.Errorf("%w: negative sample count %d", audio.ErrValidation, numSamples)
	}

	if err := a.SetNumChannels(numChannels); err != nil {
		return err
	}
	return a.SetNumSamplesPerChannel(numSamples)
}

// SetAudioBuffer replaces the samples with a copy of buf.
func (a *AudioFile[S]) SetAudioBuffer(buf [][]S) error {
	if len(buf) == 0 {
		return fmt.Errorf("%w: 0", audio.ErrInvalidNumChannels)
	}
	for ch := range buf {
		if len(buf[ch]) != len(buf[0]) {
			return fmt.Errorf("%w: channel %d has %d samples, channel 0 has %d",
				audio.ErrRaggedBuffer, ch, len(buf[ch]), len(buf[0]))
		}
	}

	a.Samples = cloneSamples(buf)
	return nil
}

// Summary returns a printable description of the file.
func (a *AudioFile[S]) Summary() string {
	const rule = "|======================================|"

	var b strings.Builder
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Num Channels: %d\n", a.NumChannels())
	fmt.Fprintf(&b, "Num Samples Per Channel: %d\n", a.NumSamplesPerChannel())
	fmt.Fprintf(&b, "Sample Rate: %d\n", a.sampleRate)
	fmt.Fprintf(&b, "Bit Depth: %d\n", a.bitDepth)
	fmt.Fprintf(&b, "Domain: %s\n", a.domain)
	fmt.Fprintf(&b, "Length in Seconds: %g\n", a.LengthInSeconds())
	fmt.Fprintln(&b, rule)

	return b.String()
}
