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

// CompressStore packs the elements of src whose mask bit is set to the
// front of dst, in original order, and returns how many were written.
// A Go slice plays the role of a SIMD register here, so "compress" is
// just a filter.
func CompressStore[T Ordered](src []T, mask []bool, dst []T) int {
	n := 0
	for i, keep := range mask {
		if keep {
			dst[n] = src[i]
			n++
		}
	}
	return n
}

// CountTrue returns the population count of mask.
func CountTrue(mask []bool) int {
	n := 0
	for _, b := range mask {
		if b {
			n++
		}
	}
	return n
}
