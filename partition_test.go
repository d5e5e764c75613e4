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
	"math/rand"
	"slices"
	"testing"

	"github.com/vqsort/vqsort/internal/vector"
)

func checkPartition(t *testing.T, data []float32, pivot float32, split int) {
	t.Helper()
	for i := 0; i < split; i++ {
		if data[i] >= pivot {
			t.Errorf("data[%d]=%v should be < pivot %v", i, data[i], pivot)
		}
	}
	for i := split; i < len(data); i++ {
		if data[i] < pivot {
			t.Errorf("data[%d]=%v should be >= pivot %v", i, data[i], pivot)
		}
	}
}

func TestPartitionBasic(t *testing.T) {
	ops := vector.NewOps[float32]()
	data := []float32{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}
	pivot := float32(5)

	orig := append([]float32(nil), data...)

	split, _, _ := partition(data, pivot, ops)
	checkPartition(t, data, pivot, split)

	sortedOrig := append([]float32(nil), orig...)
	sortedGot := append([]float32(nil), data...)
	slices.Sort(sortedOrig)
	slices.Sort(sortedGot)
	if !slices.Equal(sortedOrig, sortedGot) {
		t.Errorf("partition changed the multiset of elements")
	}
}

func TestPartitionAllLess(t *testing.T) {
	ops := vector.NewOps[float32]()
	data := []float32{1, 2, 3, 4}
	split, _, _ := partition(data, 5, ops)
	if split != len(data) {
		t.Errorf("partition(all less) split=%d, want %d", split, len(data))
	}
}

func TestPartitionAllGreaterEqual(t *testing.T) {
	ops := vector.NewOps[float32]()
	data := []float32{6, 7, 8, 9}
	split, _, _ := partition(data, 5, ops)
	if split != 0 {
		t.Errorf("partition(all >= pivot) split=%d, want 0", split)
	}
}

func TestPartitionRandomSizes(t *testing.T) {
	rand.Seed(11)
	ops := vector.NewOps[float32]()
	sizes := []int{0, 1, 2, 5, 16, 17, 31, 32, 33, 63, 64, 65, 100, 257, 1000}
	for _, n := range sizes {
		data := make([]float32, n)
		for i := range data {
			data[i] = float32(rand.Intn(100))
		}
		pivot := float32(50)
		orig := append([]float32(nil), data...)

		split, _, _ := partition(data, pivot, ops)
		checkPartition(t, data, pivot, split)

		sortedOrig := append([]float32(nil), orig...)
		sortedGot := append([]float32(nil), data...)
		slices.Sort(sortedOrig)
		slices.Sort(sortedGot)
		if !slices.Equal(sortedOrig, sortedGot) {
			t.Errorf("n=%d: partition changed the multiset of elements", n)
		}
	}
}

func TestPartitionUnrolledMatchesPartition(t *testing.T) {
	rand.Seed(22)
	ops := vector.NewOps[float32]()
	sizes := []int{0, 1, 100, 1000, 5000, 20000, 100000}
	for _, n := range sizes {
		data1 := make([]float32, n)
		for i := range data1 {
			data1[i] = float32(rand.Intn(1000))
		}
		data2 := append([]float32(nil), data1...)
		pivot := float32(500)

		split1, small1, big1 := partition(data1, pivot, ops)
		split2, small2, big2 := partitionUnrolled(data2, pivot, ops)

		if split1 != split2 {
			t.Errorf("n=%d: split mismatch, plain=%d unrolled=%d", n, split1, split2)
		}
		if n > 0 && (small1 != small2 || big1 != big2) {
			t.Errorf("n=%d: extrema mismatch, plain=(%v,%v) unrolled=(%v,%v)", n, small1, big1, small2, big2)
		}

		checkPartition(t, data2, pivot, split2)
		sortedOrig := append([]float32(nil), data1...)
		sortedGot := append([]float32(nil), data2...)
		slices.Sort(sortedOrig)
		slices.Sort(sortedGot)
		if !slices.Equal(sortedOrig, sortedGot) {
			t.Errorf("n=%d: partitionUnrolled changed the multiset of elements", n)
		}
	}
}

func TestPartitionUnrolledNonMultipleOfUnrollFactor(t *testing.T) {
	// Choose a size whose vector count is not a multiple of UnrollFactor
	// (8) so partitionOrphans' leftover-vector path in partitionUnrolled runs.
	ops := vector.NewOps[float32]()
	lanes := ops.NumLanes
	n := lanes*ops.UnrollFactor*3 + lanes*3 // 3 full blocks plus 3 orphan vectors
	rand.Seed(33)
	data := make([]float32, n)
	for i := range data {
		data[i] = float32(rand.Intn(1000))
	}
	orig := append([]float32(nil), data...)
	pivot := float32(500)

	split, _, _ := partitionUnrolled(data, pivot, ops)
	checkPartition(t, data, pivot, split)

	sortedOrig := append([]float32(nil), orig...)
	sortedGot := append([]float32(nil), data...)
	slices.Sort(sortedOrig)
	slices.Sort(sortedGot)
	if !slices.Equal(sortedOrig, sortedGot) {
		t.Errorf("partitionUnrolled changed the multiset of elements")
	}
}

func TestPartitionExtrema(t *testing.T) {
	ops := vector.NewOps[int32]()
	data := []int32{5, -3, 8, 0, 100, -50, 42}
	_, smallest, biggest := partition(data, 10, ops)
	if smallest != -50 {
		t.Errorf("smallest = %v, want -50", smallest)
	}
	if biggest != 100 {
		t.Errorf("biggest = %v, want 100", biggest)
	}
}
