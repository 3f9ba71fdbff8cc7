// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"encoding/binary"
	"math"
)

const extendedBias = 16383

// Extended is an 80-bit IEEE 754 extended precision float, big-endian: one
// sign bit, a 15-bit exponent and a 64-bit mantissa with an explicit integer
// bit.
type Extended [10]byte

// NewExtended encodes v. Infinities and NaN are not representable in a
// sample rate and encode as zero.
func NewExtended(v float64) Extended {
	var e Extended
	if v == 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return e
	}

	var sign uint16
	if v < 0 {
		sign = 0x8000
		v = -v
	}

	// v = frac * 2^exp, frac in [0.5, 1)
	frac, exp := math.Frexp(v)
	binary.BigEndian.PutUint16(e[0:2], sign|uint16(exp-1+extendedBias))
	binary.BigEndian.PutUint64(e[2:10], uint64(math.Ldexp(frac, 64)))

	return e
}

// Float64 decodes e, rounding the mantissa to 53 bits.
func (e Extended) Float64() float64 {
	se := binary.BigEndian.Uint16(e[0:2])
	mant := binary.BigEndian.Uint64(e[2:10])

	exp := int(se & 0x7fff)
	if exp == 0 && mant == 0 {
		return 0
	}

	var v float64
	if exp == 0x7fff {
		v = math.Inf(1)
		if mant<<1 != 0 {
			return math.NaN()
		}
	} else {
		v = math.Ldexp(float64(mant), exp-extendedBias-63)
	}

	if se&0x8000 != 0 {
		v = -v
	}

	return v
}
