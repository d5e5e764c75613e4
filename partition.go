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

// partitionOneVector applies the compress-store partition primitive to
// a single register-width chunk curr, streaming its "< pivot" lanes to
// data[lStore:] and its ">= pivot" lanes to the tail of the still
// -unpartitioned window at data[lStore+unpartitioned:], then advances
// lStore and shrinks unpartitioned by len(curr). Both destination
// ranges lie inside slots this call's caller has already read (see
// partition's load-side selection rule), so no unread data is ever
// overwritten.
func partitionOneVector[T Ordered](data []T, lStore, unpartitioned *int, curr []T, pivot T, ops vector.Ops[T], smallest, biggest *T) {
	lanes := len(curr)
	geMask := make([]bool, lanes)
	nGE := 0
	for i, v := range curr {
		ge := ops.GreaterEqual(v, pivot)
		geMask[i] = ge
		if ge {
			nGE++
		}
		*smallest = ops.Min(*smallest, v)
		*biggest = ops.Max(*biggest, v)
	}
	ltMask := make([]bool, lanes)
	for i, ge := range geMask {
		ltMask[i] = !ge
	}

	vector.CompressStore(curr, ltMask, data[*lStore:])
	*lStore += lanes - nGE
	vector.CompressStore(curr, geMask, data[*lStore+*unpartitioned:])
	*unpartitioned -= lanes
}

// partition rearranges data in place around pivot using the
// mask-compress-store kernel: elements strictly less than pivot end up
// in data[:p], elements greater than or equal to pivot end up in
// data[p:], and every slot is written exactly once. It also
// returns the extrema of the range, seeded from ops.TypeMax/TypeMin,
// so the driver can prune a side that turned out to be degenerate.
func partition[T Ordered](data []T, pivot T, ops vector.Ops[T]) (split int, smallest, biggest T) {
	smallest = ops.TypeMax
	biggest = ops.TypeMin

	left := 0
	right := len(data)
	lanes := ops.NumLanes

	// Scalar prologue: shorten the range until its length is a
	// multiple of numlanes.
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

	if right-left == lanes {
		curr := append([]T(nil), data[left:right]...)
		lStore := left
		unpartitioned := 0
		partitionOneVector(data, &lStore, &unpartitioned, curr, pivot, ops, &smallest, &biggest)
		return lStore, smallest, biggest
	}

	// Hold out the leftmost and rightmost chunks so the streaming loop
	// never reads a slot it might also want to write.
	vecLeft := append([]T(nil), data[left:left+lanes]...)
	vecRight := append([]T(nil), data[right-lanes:right]...)

	unpartitioned := right - left - lanes
	lStore := left
	left += lanes
	right -= lanes

	for right != left {
		var curr []T
		// Load from the side with fewer unwritten reserved slots so
		// the write never lands on data that has not been read yet.
		if (lStore+unpartitioned+lanes)-right < left-lStore {
			right -= lanes
			curr = append([]T(nil), data[right:right+lanes]...)
		} else {
			curr = append([]T(nil), data[left:left+lanes]...)
			left += lanes
		}
		partitionOneVector(data, &lStore, &unpartitioned, curr, pivot, ops, &smallest, &biggest)
	}

	partitionOneVector(data, &lStore, &unpartitioned, vecLeft, pivot, ops, &smallest, &biggest)
	partitionOneVector(data, &lStore, &unpartitioned, vecRight, pivot, ops, &smallest, &biggest)

	return lStore, smallest, biggest
}
