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

// partitionUnrolled is partition's higher-throughput sibling: instead
// of streaming one lane-width chunk at a time, it streams ops.UnrollFactor
// chunks together as a single block, amortizing the per-chunk pivot
// comparison and mask-compress-store bookkeeping over more elements.
// partitionOneVector already treats its curr argument as an arbitrary-
// width chunk, so widening the chunk to a full block is enough to get
// the unrolled behavior without duplicating the streaming loop.
//
// The one piece that does not fall out of that widening is what to do
// when the range's vector count is not a multiple of UnrollFactor: a
// handful of "orphan" vectors would otherwise force a narrower, ragged
// final block. Those orphans are partitioned up front against their own
// leftStore/buffer pair (see partitionOrphans): left advances by the
// orphan lanes that turned out to be < pivot and right retreats by those
// that turned out to be >= pivot, so [left,right) shrinks by all orphan
// lanes and its length is an exact multiple of the block size before
// the main loop starts.
func partitionUnrolled[T Ordered](data []T, pivot T, ops vector.Ops[T]) (split int, smallest, biggest T) {
	smallest = ops.TypeMax
	biggest = ops.TypeMin

	left := 0
	right := len(data)
	lanes := ops.NumLanes
	block := lanes * ops.UnrollFactor

	for (right-left)%lanes != 0 {
		v := data[left]
		smallest = ops.Min(smallest, v)
		biggest = ops.Max(biggest, v)
		if ops.GreaterEqual(v, pivot) {
			right--
			data[left], data[right] = data[right], data[left]
		} else {
			left++
		}
	}

	if left == right {
		return left, smallest, biggest
	}

	// Below 3 blocks, carving out leftover orphan vectors could leave
	// less than 2 blocks for the mandatory left/right holdouts; the
	// plain streaming kernel handles ranges of any size correctly, so
	// fall back to it rather than special-casing the shortfall here.
	if right-left < 3*block {
		p, s, b := partition(data[left:right], pivot, ops)
		smallest = ops.Min(smallest, s)
		biggest = ops.Max(biggest, b)
		return left + p, smallest, biggest
	}

	nVecs := (right - left) / lanes
	leftover := nVecs % ops.UnrollFactor

	left, right = partitionOrphans(data, left, right, leftover, pivot, ops, &smallest, &biggest)
	if left == right {
		return left, smallest, biggest
	}

	vecLeft := append([]T(nil), data[left:left+block]...)
	vecRight := append([]T(nil), data[right-block:right]...)
	unpartitioned := right - left - block
	lStore := left
	left += block
	right -= block

	for right != left {
		var curr []T
		if (lStore+unpartitioned+block)-right < left-lStore {
			right -= block
			curr = append([]T(nil), data[right:right+block]...)
		} else {
			curr = append([]T(nil), data[left:left+block]...)
			left += block
		}
		partitionOneVector(data, &lStore, &unpartitioned, curr, pivot, ops, &smallest, &biggest)
	}

	partitionOneVector(data, &lStore, &unpartitioned, vecLeft, pivot, ops, &smallest, &biggest)
	partitionOneVector(data, &lStore, &unpartitioned, vecRight, pivot, ops, &smallest, &biggest)

	return lStore, smallest, biggest
}

// partitionOrphans partitions the leftover vectors that keep (right-left)
// from being an exact multiple of block: their "< pivot" lanes compact
// forward into data starting at left (using a dedicated leftStore that
// never collides with the main phase's own lStore/unpartitioned, unlike
// reusing that exhausted state after the fact would), and their
// ">= pivot" lanes are collected into a scratch buffer instead of data,
// since data has no free slots to hold them yet.
//
// Collecting those lanes into buffer leaves a same-sized gap right after
// leftStore's final position. That gap is refilled with unprocessed data
// copied from the right edge -- data the main phase still needs to see --
// and buffer's contents are written into the slots the copy vacated, on
// the correct (>= pivot) side of the range. The returned left/right bound
// exactly the remaining unpartitioned window, still a multiple of block.
func partitionOrphans[T Ordered](data []T, left, right, leftover int, pivot T, ops vector.Ops[T], smallest, biggest *T) (int, int) {
	lanes := ops.NumLanes
	leftStore := left
	buffer := make([]T, 0, leftover*lanes)

	for i := 0; i < leftover; i++ {
		curr := append([]T(nil), data[left+i*lanes:left+(i+1)*lanes]...)
		geMask := make([]bool, lanes)
		nGE := 0
		for j, v := range curr {
			ge := ops.GreaterEqual(v, pivot)
			geMask[j] = ge
			if ge {
				nGE++
			}
			*smallest = ops.Min(*smallest, v)
			*biggest = ops.Max(*biggest, v)
		}
		ltMask := make([]bool, lanes)
		for j, ge := range geMask {
			ltMask[j] = !ge
		}

		vector.CompressStore(curr, ltMask, data[leftStore:])
		leftStore += lanes - nGE

		buffer = buffer[:len(buffer)+nGE]
		vector.CompressStore(curr, geMask, buffer[len(buffer)-nGE:])
	}

	bufferStored := len(buffer)
	copy(data[leftStore:leftStore+bufferStored], data[right-bufferStored:right])
	copy(data[right-bufferStored:right], buffer)

	return leftStore, right - bufferStored
}
