// SPDX-License-Identifier: EPL-2.0

package codec

import "github.com/ik5/audfile/utils"

// Sample is the set of in-memory sample representations.
type Sample interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | float32 | float64
}

type kind int

const (
	kindSigned kind = iota
	kindUnsigned
	kindFloat
)

// traits reports the kind and bit width of S.
func traits[S Sample]() (kind, int) {
	var z S
	switch any(z).(type) {
	case int8:
		return kindSigned, 8
	case int16:
		return kindSigned, 16
	case int32:
		return kindSigned, 32
	case int64:
		return kindSigned, 64
	case uint8:
		return kindUnsigned, 8
	case uint16:
		return kindUnsigned, 16
	case uint32:
		return kindUnsigned, 32
	case float32:
		return kindFloat, 32
	default:
		return kindFloat, 64
	}
}

// IsFloat reports whether S is a floating point type.
func IsFloat[S Sample]() bool {
	k, _ := traits[S]()
	return k == kindFloat
}

// BitsOf returns the width of S in bits.
func BitsOf[S Sample]() int {
	_, w := traits[S]()
	return w
}

// FromInt returns a converter from a signed integer sample of the given bit
// depth to S.
func FromInt[S Sample](bits int) func(int64) S {
	k, w := traits[S]()
	switch k {
	case kindFloat:
		return func(v int64) S { return S(utils.IntToFloat(v, bits)) }
	case kindUnsigned:
		offset := int64(1) << uint(w-1)
		return func(v int64) S { return S(utils.ResampleInteger(v, bits, w) + offset) }
	default:
		return func(v int64) S { return S(utils.ResampleInteger(v, bits, w)) }
	}
}

// FromFloat returns a converter from a normalized float sample to S.
func FromFloat[S Sample]() func(float64) S {
	k, w := traits[S]()
	switch k {
	case kindFloat:
		return func(x float64) S { return S(x) }
	case kindUnsigned:
		offset := int64(1) << uint(w-1)
		return func(x float64) S { return S(utils.FloatToInt(x, w) + offset) }
	default:
		return func(x float64) S { return S(utils.FloatToInt(x, w)) }
	}
}

// ToInt returns a converter from S to a signed integer sample of the given
// bit depth.
func ToInt[S Sample](bits int) func(S) int64 {
	k, w := traits[S]()
	switch k {
	case kindFloat:
		return func(s S) int64 { return utils.FloatToInt(float64(s), bits) }
	case kindUnsigned:
		offset := int64(1) << uint(w-1)
		return func(s S) int64 { return utils.ResampleInteger(int64(s)-offset, w, bits) }
	default:
		return func(s S) int64 { return utils.ResampleInteger(int64(s), w, bits) }
	}
}

// ToFloat returns a converter from S to a normalized float sample.
func ToFloat[S Sample]() func(S) float64 {
	k, w := traits[S]()
	switch k {
	case kindFloat:
		return func(s S) float64 { return float64(s) }
	case kindUnsigned:
		offset := int64(1) << uint(w-1)
		return func(s S) float64 { return utils.IntToFloat(int64(s)-offset, w) }
	default:
		return func(s S) float64 { return utils.IntToFloat(int64(s), w) }
	}
}
