// Copyright 2026 vqsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vector

import "math"

// Float16 is an IEEE-754 binary16 value stored as its bit pattern.
// Go has no native half-precision type; comparisons and arithmetic go
// through float32.
type Float16 uint16

// Float16 special bit patterns.
const (
	Float16PosInf   Float16 = 0x7C00
	Float16NegInf   Float16 = 0xFC00
	Float16QuietNaN Float16 = 0x7E00
)

// ToFloat32 widens h to float32.
func (h Float16) ToFloat32() float32 {
	bits := uint32(h)
	sign := bits >> 15
	exp := (bits >> 10) & 0x1F
	mant := bits & 0x3FF

	switch {
	case exp == 0 && mant == 0:
		return math.Float32frombits(sign << 31)
	case exp == 0:
		// Subnormal: normalize by shifting the mantissa left until the
		// implicit leading bit appears, adjusting the exponent to match.
		e := int32(1)
		for mant&0x400 == 0 {
			mant <<= 1
			e--
		}
		mant &= 0x3FF
		return math.Float32frombits((sign << 31) | (uint32(e+127-15) << 23) | (mant << 13))
	case exp == 31 && mant == 0:
		return math.Float32frombits((sign << 31) | 0x7F800000)
	case exp == 31:
		return math.Float32frombits((sign << 31) | 0x7FC00000 | (mant << 13))
	default:
		return math.Float32frombits((sign << 31) | ((exp + 127 - 15) << 23) | (mant << 13))
	}
}

// Float32ToFloat16 narrows a float32 to Float16, rounding to nearest
// (ties to even).
func Float32ToFloat16(f float32) Float16 {
	bits := math.Float32bits(f)
	sign := (bits >> 16) & 0x8000
	exp := int32((bits>>23)&0xFF) - 127 + 15
	mant := bits & 0x7FFFFF

	switch {
	case (bits>>23)&0xFF == 0xFF:
		if mant != 0 {
			return Float16(sign | 0x7E00 | uint32(mant>>13))
		}
		return Float16(sign | 0x7C00)
	case exp >= 31:
		return Float16(sign | 0x7C00)
	case exp <= 0:
		if exp < -10 {
			return Float16(sign)
		}
		mant |= 0x800000
		shift := uint32(14 - exp)
		h := mant >> shift
		if rem, half := mant&(1<<shift-1), uint32(1)<<(shift-1); rem > half || (rem == half && h&1 != 0) {
			h++
		}
		return Float16(sign | h)
	default:
		// A carry out of the mantissa bumps the exponent, up to +Inf.
		h := sign | (uint32(exp) << 10) | (mant >> 13)
		if rem := mant & 0x1FFF; rem > 0x1000 || (rem == 0x1000 && h&1 != 0) {
			h++
		}
		return Float16(h)
	}
}

// IsNaN reports whether h encodes a quiet or signaling NaN.
func (h Float16) IsNaN() bool {
	return (h&0x7C00) == 0x7C00 && (h&0x3FF) != 0
}

// Less orders two Float16 values by their IEEE-754 float value, not by
// raw bit pattern (bit pattern order is only monotonic on the positive
// side of the encoding).
func (h Float16) Less(other Float16) bool {
	return h.ToFloat32() < other.ToFloat32()
}
