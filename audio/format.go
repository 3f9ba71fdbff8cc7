// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Domain is the numeric domain of the stored samples.
type Domain int

const (
	SignedInt Domain = iota
	UnsignedInt
	Float
)

func (d Domain) String() string {
	switch d {
	case SignedInt:
		return "signed-integer"
	case UnsignedInt:
		return "unsigned-integer"
	case Float:
		return "floating-point"
	default:
		return fmt.Sprintf("Domain(%d)", int(d))
	}
}

// IsInteger reports whether d is one of the PCM integer domains.
func (d Domain) IsInteger() bool { return d == SignedInt || d == UnsignedInt }

// Format describes decoded audio: sample rate, bit depth, channel count and
// numeric domain.
type Format struct {
	SampleRate  int
	BitDepth    int
	NumChannels int
	Domain      Domain
}

// Validate rejects formats no codec can carry. Rate and channel problems wrap
// ErrValidation, depth/domain problems wrap ErrFormat.
func (f Format) Validate() error {
	if f.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, f.SampleRate)
	}
	if f.NumChannels < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidNumChannels, f.NumChannels)
	}
	return Layout{BitDepth: f.BitDepth, Domain: f.Domain}.Validate()
}

// BytesPerSample is the storage size of one sample of one channel.
func (f Format) BytesPerSample() int { return f.BitDepth / 8 }

// BlockAlign is the storage size of one frame (one sample of every channel).
func (f Format) BlockAlign() int { return f.NumChannels * f.BytesPerSample() }

// ByteRate is the number of bytes per second of audio.
func (f Format) ByteRate() int { return f.SampleRate * f.BlockAlign() }

func (f Format) String() string {
	return fmt.Sprintf("%d Hz, %d-bit %s, %d channel(s)", f.SampleRate, f.BitDepth, f.Domain, f.NumChannels)
}

// Layout is the raw byte layout of an interleaved sample run.
type Layout struct {
	BitDepth  int
	Domain    Domain
	BigEndian bool
}

// Validate checks that the (domain, bit depth) pair is one the sample codec
// supports.
func (l Layout) Validate() error {
	ok := false
	switch l.Domain {
	case SignedInt:
		ok = l.BitDepth == 8 || l.BitDepth == 16 || l.BitDepth == 24 || l.BitDepth == 32
	case UnsignedInt:
		ok = l.BitDepth == 8
	case Float:
		ok = l.BitDepth == 32 || l.BitDepth == 64
	}
	if !ok {
		return fmt.Errorf("%w: %d-bit %s", ErrUnsupportedFormat, l.BitDepth, l.Domain)
	}
	return nil
}

// BytesPerSample is the storage size of one sample.
func (l Layout) BytesPerSample() int { return l.BitDepth / 8 }
