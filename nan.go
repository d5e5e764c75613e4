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

// hasNaN reports whether data contains any NaN.
func hasNaN[T Ordered](data []T, ops vector.Ops[T]) bool {
	if !ops.IsFloat {
		return false
	}
	for _, v := range data {
		if ops.IsNaN(v) {
			return true
		}
	}
	return false
}

// replaceNaNWithInf overwrites every NaN in data with ops.PosInf and
// returns how many it replaced. Sort uses this before partitioning so
// the comparison-based kernel below never has to reason about NaN's
// non-reflexive ordering; the count lets the caller restore them
// afterwards.
func replaceNaNWithInf[T Ordered](data []T, ops vector.Ops[T]) int {
	n := 0
	for i, v := range data {
		if ops.IsNaN(v) {
			data[i] = ops.PosInf
			n++
		}
	}
	return n
}

// replaceInfWithNaN turns the last n elements of data back into
// quiet NaNs, undoing replaceNaNWithInf once the range around them is
// sorted and they have sorted to the tail.
func replaceInfWithNaN[T Ordered](data []T, ops vector.Ops[T], n int) {
	for i := len(data) - n; i < len(data); i++ {
		data[i] = ops.QuietNaN
	}
}

// moveNaNsToEndOfArray partitions data in place so every NaN lands
// after every non-NaN element, preserving the relative order of
// neither side, and returns how many NaNs it moved. Select and
// PartialSort call this once, up front, only when told hasNaN so
// callers that already know their input is clean skip the scan.
func moveNaNsToEndOfArray[T Ordered](data []T, ops vector.Ops[T]) int {
	i, j := 0, len(data)-1
	count := 0
	for i <= j {
		if ops.IsNaN(data[i]) {
			data[i], data[j] = data[j], data[i]
			j--
			count++
		} else {
			i++
		}
	}
	return count
}
