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

import (
	"math"
	"testing"
)

func TestFloat16RoundTrip(t *testing.T) {
	values := []float32{0, 1, -1, 0.5, -0.5, 3.14159, 100, -100, 65504, -65504}
	for _, v := range values {
		h := Float32ToFloat16(v)
		got := h.ToFloat32()
		if math.Abs(float64(got-v)) > 0.05*math.Abs(float64(v))+0.01 {
			t.Errorf("Float32ToFloat16(%v).ToFloat32() = %v, too far off", v, got)
		}
	}
}

func TestFloat16Zero(t *testing.T) {
	h := Float32ToFloat16(0)
	if h.ToFloat32() != 0 {
		t.Errorf("Float32ToFloat16(0).ToFloat32() = %v, want 0", h.ToFloat32())
	}
	neg := Float32ToFloat16(float32(math.Copysign(0, -1)))
	if math.Signbit(float64(neg.ToFloat32())) != true {
		t.Errorf("Float32ToFloat16(-0) lost its sign")
	}
}

func TestFloat16Infinities(t *testing.T) {
	pos := Float32ToFloat16(float32(math.Inf(1)))
	if pos != Float16PosInf {
		t.Errorf("Float32ToFloat16(+Inf) = %#x, want %#x", uint16(pos), uint16(Float16PosInf))
	}
	neg := Float32ToFloat16(float32(math.Inf(-1)))
	if neg != Float16NegInf {
		t.Errorf("Float32ToFloat16(-Inf) = %#x, want %#x", uint16(neg), uint16(Float16NegInf))
	}
	if !math.IsInf(float64(pos.ToFloat32()), 1) {
		t.Errorf("Float16PosInf.ToFloat32() is not +Inf: %v", pos.ToFloat32())
	}
}

func TestFloat16Overflow(t *testing.T) {
	// A magnitude well beyond binary16's max finite value must saturate
	// to infinity rather than wrap.
	h := Float32ToFloat16(1e10)
	if h != Float16PosInf {
		t.Errorf("Float32ToFloat16(1e10) = %#x, want +Inf", uint16(h))
	}
}

func TestFloat16Subnormal(t *testing.T) {
	// 2^-24 is binary16's smallest positive subnormal value.
	v := float32(math.Ldexp(1, -24))
	h := Float32ToFloat16(v)
	got := h.ToFloat32()
	if got <= 0 {
		t.Errorf("Float32ToFloat16(2^-24).ToFloat32() = %v, want a small positive value", got)
	}
}

func TestFloat16NaN(t *testing.T) {
	h := Float32ToFloat16(float32(math.NaN()))
	if !h.IsNaN() {
		t.Error("Float32ToFloat16(NaN).IsNaN() = false, want true")
	}
	if !math.IsNaN(float64(h.ToFloat32())) {
		t.Error("Float16 NaN did not round-trip through ToFloat32")
	}
}

func TestFloat16Less(t *testing.T) {
	a := Float32ToFloat16(1)
	b := Float32ToFloat16(2)
	if !a.Less(b) {
		t.Error("Float16(1).Less(Float16(2)) = false, want true")
	}
	if b.Less(a) {
		t.Error("Float16(2).Less(Float16(1)) = true, want false")
	}
	nan := Float32ToFloat16(float32(math.NaN()))
	if a.Less(nan) || nan.Less(a) {
		t.Error("comparisons involving NaN must always be false")
	}
}
