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

package vqsort

import "github.com/vqsort/vqsort/internal/vector"

// getPivot samples ops.NumLanes elements at a stride across [left,right],
// insertion-sorts the sample, and returns the middle
// sample as the pivot. It is called from the recursive select driver.
func getPivot[T Ordered](data []T, left, right int, ops vector.Ops[T]) T {
	return samplePivot(data, left, right, ops)
}

// getPivotBlocks is called from the recursive sort driver. It shares
// samplePivot's implementation with getPivot; the two are kept as
// separately named wrappers so each call site names the pivot
// selector it uses.
func getPivotBlocks[T Ordered](data []T, left, right int, ops vector.Ops[T]) T {
	return samplePivot(data, left, right, ops)
}

func samplePivot[T Ordered](data []T, left, right int, ops vector.Ops[T]) T {
	numSamples := ops.NumLanes
	span := right - left
	if numSamples > span+1 {
		numSamples = span + 1
	}
	if numSamples < 1 {
		numSamples = 1
	}

	samples := make([]T, numSamples)
	if numSamples == 1 {
		return data[left]
	}

	stride := span / numSamples
	if stride < 1 {
		stride = 1
	}
	for i := 0; i < numSamples; i++ {
		samples[i] = data[left+i*stride]
	}

	insertionSort(samples, ops)
	return samples[numSamples/2]
}
