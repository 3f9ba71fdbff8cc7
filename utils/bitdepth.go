// SPDX-License-Identifier: EPL-2.0

// Package utils holds the pure numeric conversions between sample
// representations: integer bit depth changes and the integer <-> normalized
// float mappings.
package utils

// Integer is the set of signed sample types ResampleIntegerSample accepts.
type Integer interface {
	int8 | int16 | int32 | int64
}

// ResampleInteger converts a two's-complement sample of fromBits bits to
// toBits bits. Downsampling is an arithmetic right shift (low bits are
// discarded, -32767 >> 8 == -128), upsampling is a left shift (127 << 8 ==
// 32512, never rescaled to full scale).
func ResampleInteger(v int64, fromBits, toBits int) int64 {
	switch {
	case fromBits > toBits:
		return v >> uint(fromBits-toBits)
	case fromBits < toBits:
		return v << uint(toBits-fromBits)
	default:
		return v
	}
}

// ResampleIntegerSample is ResampleInteger with the widths taken from the
// sample types.
func ResampleIntegerSample[From, To Integer](v From) To {
	return To(ResampleInteger(int64(v), BitsOf[From](), BitsOf[To]()))
}

// BitsOf returns the width in bits of an integer sample type.
func BitsOf[T Integer]() int {
	var z T
	switch any(z).(type) {
	case int8:
		return 8
	case int16:
		return 16
	case int32:
		return 32
	default:
		return 64
	}
}

// ByteToSample maps an offset-binary 8-bit sample to [-1, 1): 128 is
// silence, 0 is -1.0 and 255 is 127/128.
func ByteToSample(b uint8) float64 {
	return (float64(b) - 128) / 128
}

// SampleToByte is the inverse of ByteToSample, clamping x to [-1, 1].
func SampleToByte(x float64) uint8 {
	return uint8(FloatToInt(x, 8) + 128)
}
