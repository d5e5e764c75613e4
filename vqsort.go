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

import (
	"fmt"
	"math/bits"

	"github.com/vqsort/vqsort/internal/vector"
)

// unrolledThreshold reports whether a range is large enough for
// partitionUnrolled's per-block bookkeeping to pay for itself; below
// it, partition's plain per-lane loop wins.
func unrolledThreshold[T Ordered](n int, ops vector.Ops[T]) bool {
	return n >= ops.NumLanes*ops.UnrollFactor*2
}

func choosePartition[T Ordered](data []T, pivot T, ops vector.Ops[T]) (split int, smallest, biggest T) {
	if unrolledThreshold(len(data), ops) {
		return partitionUnrolled(data, pivot, ops)
	}
	return partition(data, pivot, ops)
}

// maxIters bounds recursion depth at 2*floor(log2(n)), the same bound
// introsort uses to guarantee O(n log n) worst case: past this many
// partitions without bottoming out, pivot selection is degenerate and
// the driver switches to heapsort.
func maxIters(n int) int {
	if n < 2 {
		return 0
	}
	return 2 * (bits.Len(uint(n)) - 1)
}

// sortImpl fully sorts data, recursing into the smaller partition and
// looping on the larger one so the call stack never grows past
// O(log n) regardless of which side quicksort happens to shrink first.
func sortImpl[T Ordered](data []T, ops vector.Ops[T], itersLeft int) {
	for {
		n := len(data)
		if n <= 1 {
			return
		}
		if itersLeft <= 0 {
			heapsort(data, ops)
			return
		}
		if n <= ops.NetworkSortThreshold {
			sortSmall(data, ops)
			return
		}

		pivot := getPivotBlocks(data, 0, n-1, ops)
		split, smallest, biggest := choosePartition(data, pivot, ops)
		itersLeft--

		// A side is degenerate -- every element in it equals pivot,
		// so it is already as sorted as it will ever get -- whenever
		// pivot matches that side's extremum. Checking each side
		// independently prunes more than the coarser smallest==biggest
		// check, which only fires when the whole range is one value.
		sortLeft := !ops.Equal(pivot, smallest)
		sortRight := !ops.Equal(pivot, biggest)

		left, right := data[:split], data[split:]
		switch {
		case !sortLeft && !sortRight:
			return
		case !sortLeft:
			data = right
		case !sortRight:
			data = left
		case len(left) < len(right):
			sortImpl(left, ops, itersLeft)
			data = right
		default:
			sortImpl(right, ops, itersLeft)
			data = left
		}
	}
}

// selectImpl rearranges data so data[k] holds the value that would sit
// at index k in sorted order, following only the partition that
// contains k and discarding the other side unexamined.
func selectImpl[T Ordered](data []T, k int, ops vector.Ops[T], itersLeft int) {
	for {
		n := len(data)
		if n <= 1 {
			return
		}
		if itersLeft <= 0 {
			heapsort(data, ops)
			return
		}
		if n <= ops.NetworkSortThreshold {
			sortSmall(data, ops)
			return
		}

		pivot := getPivot(data, 0, n-1, ops)
		split, smallest, biggest := choosePartition(data, pivot, ops)
		itersLeft--

		if k < split {
			if ops.Equal(pivot, smallest) {
				return
			}
			data = data[:split]
		} else {
			if ops.Equal(pivot, biggest) {
				return
			}
			k -= split
			data = data[split:]
		}
	}
}

// partialSortImpl arranges data so data[:k+1] holds the k+1 smallest
// elements in sorted order; data[k+1:] is left merely partitioned
// (every element there is >= data[k]). k is a zero-based index, the
// same terms selectImpl uses; PartialSort's public count parameter is
// converted to this index once, by its caller. Whenever a partition
// boundary falls at or before k, the left side is now known to be
// exactly the elements the caller wants and gets a full sort instead of
// further splitting.
func partialSortImpl[T Ordered](data []T, k int, ops vector.Ops[T], itersLeft int) {
	for {
		n := len(data)
		if n <= 1 {
			return
		}
		if itersLeft <= 0 {
			heapsort(data, ops)
			return
		}
		if n <= ops.NetworkSortThreshold {
			sortSmall(data, ops)
			return
		}

		pivot := getPivotBlocks(data, 0, n-1, ops)
		split, smallest, biggest := choosePartition(data, pivot, ops)
		itersLeft--

		if k < split {
			if ops.Equal(pivot, smallest) {
				return
			}
			data = data[:split]
			continue
		}
		sortImpl(data[:split], ops, itersLeft)
		if ops.Equal(pivot, biggest) {
			return
		}
		k -= split
		data = data[split:]
	}
}

// Sort sorts data in ascending order. NaNs, if any, are moved to the
// end and preserved in the result; every other value participates in
// a total order.
func Sort[T Ordered](data []T) {
	ops := vector.NewOps[T]()
	if !ops.IsFloat {
		sortImpl(data, ops, maxIters(len(data)))
		return
	}
	nanCount := replaceNaNWithInf(data, ops)
	sortImpl(data, ops, maxIters(len(data)))
	if nanCount > 0 {
		replaceInfWithNaN(data, ops, nanCount)
	}
}

// Select rearranges data so data[k] holds the value that would occupy
// index k if data were fully sorted; the elements before and after it
// are unordered but on the correct side of it. Set hasNaN if data may
// contain NaNs; Select then moves them to the end before selecting, at
// the cost of a linear scan callers who already know their input is
// clean can skip. Select panics if k is out of range.
func Select[T Ordered](data []T, k int, hasNaN bool) {
	if k < 0 || k >= len(data) {
		panic(fmt.Errorf("vqsort: Select index %d out of range for length %d", k, len(data)))
	}
	ops := vector.NewOps[T]()
	n := len(data)
	if hasNaN && ops.IsFloat {
		n -= moveNaNsToEndOfArray(data, ops)
	}
	if k >= n {
		return
	}
	selectImpl(data[:n], k, ops, maxIters(n))
}

// PartialSort arranges data so data[:k] holds the k smallest elements in
// ascending order; the remainder is left merely partitioned around
// data[k-1]. k is a count, not an index: PartialSort(data, 4, false)
// sorts the 4 smallest elements into data[:4]. Set hasNaN if data may
// contain NaNs. PartialSort panics if k is out of [0, len(data)].
func PartialSort[T Ordered](data []T, k int, hasNaN bool) {
	if k < 0 || k > len(data) {
		panic(fmt.Errorf("vqsort: PartialSort count %d out of range for length %d", k, len(data)))
	}
	if k == 0 {
		return
	}
	ops := vector.NewOps[T]()
	n := len(data)
	if hasNaN && ops.IsFloat {
		n -= moveNaNsToEndOfArray(data, ops)
	}
	if k >= n {
		sortImpl(data[:n], ops, maxIters(n))
		return
	}
	// partialSortImpl still reasons in Select's zero-based index terms;
	// the count-to-index shift happens once, here.
	partialSortImpl(data[:n], k-1, ops, maxIters(n))
}
