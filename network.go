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

// sortSmall sorts data in place, bottoming out the quicksort driver's
// recursion once a range shrinks to ops.NetworkSortThreshold elements
// or fewer. Up to 4 elements are insertion-sorted directly, up to one
// register width goes through sortOneLane, up to two register widths
// through sortTwoLanes (the bitonic merge), and anything larger is
// insertion-sorted directly.
func sortSmall[T Ordered](data []T, ops vector.Ops[T]) {
	n := len(data)
	if n <= 1 {
		return
	}
	if n <= 4 {
		insertionSort(data, ops)
		return
	}
	if n <= ops.NumLanes {
		sortOneLane(data, ops)
		return
	}
	if n <= 2*ops.NumLanes {
		sortTwoLanes(data, ops)
		return
	}
	insertionSort(data, ops)
}

// insertionSort is the baseline scalar sort used both directly for
// tiny ranges and as a building block for the lane-padded networks
// below.
func insertionSort[T Ordered](data []T, ops vector.Ops[T]) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && ops.Less(key, data[j]) {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}

// sortOneLane sorts data that fits in a single register-width chunk by
// padding it to ops.NumLanes with the largest element of data,
// insertion-sorting the padded buffer, and copying the valid prefix back.
func sortOneLane[T Ordered](data []T, ops vector.Ops[T]) {
	n := len(data)
	pad := data[0]
	for _, v := range data {
		pad = ops.Max(pad, v)
	}
	buf := make([]T, ops.NumLanes)
	copy(buf, data)
	for i := n; i < ops.NumLanes; i++ {
		buf[i] = pad
	}
	insertionSort(buf, ops)
	copy(data, buf[:n])
}

// sortTwoLanes sorts data spanning up to two register-width chunks by
// building a bitonic sequence (ascending half, descending half) from
// two independently sorted halves, padded with the largest element of
// data, then bitonic-merging it.
func sortTwoLanes[T Ordered](data []T, ops vector.Ops[T]) {
	n := len(data)
	lanes := ops.NumLanes
	pad := data[0]
	for _, v := range data {
		pad = ops.Max(pad, v)
	}

	first := make([]T, lanes)
	second := make([]T, lanes)
	copy(first, data[:min(n, lanes)])
	if n > lanes {
		copy(second, data[lanes:])
	}
	for i := n; i < lanes; i++ {
		first[i] = pad
	}
	remaining := max(n-lanes, 0)
	for i := remaining; i < lanes; i++ {
		second[i] = pad
	}

	insertionSort(first, ops)
	insertionSort(second, ops)

	bitonic := make([]T, 2*lanes)
	copy(bitonic[:lanes], first)
	for i := 0; i < lanes; i++ {
		bitonic[lanes+i] = second[lanes-1-i]
	}
	bitonicMerge(bitonic, ops)
	copy(data, bitonic[:n])
}

// bitonicMerge merges an already-bitonic sequence (monotonically
// increasing then monotonically decreasing) into sorted order using
// the standard compare-exchange butterfly network.
func bitonicMerge[T Ordered](data []T, ops vector.Ops[T]) {
	n := len(data)
	for k := n / 2; k > 0; k /= 2 {
		for i := 0; i < n; i++ {
			j := i ^ k
			if j > i && ops.Less(data[j], data[i]) {
				data[i], data[j] = data[j], data[i]
			}
		}
	}
}

// isSorted reports whether data is nondecreasing according to ops.
func isSorted[T Ordered](data []T, ops vector.Ops[T]) bool {
	for i := 1; i < len(data); i++ {
		if ops.Less(data[i], data[i-1]) {
			return false
		}
	}
	return true
}
