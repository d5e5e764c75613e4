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

// heapsort sorts data in place in guaranteed O(n log n) time regardless
// of pivot quality. The introspective driver falls back to it once a
// recursion branch has burned through its depth budget, the same
// guard sort.Sort's standard-library ancestor uses against pivot
// selections that degrade quicksort to O(n^2).
func heapsort[T Ordered](data []T, ops vector.Ops[T]) {
	n := len(data)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, i, n, ops)
	}
	for i := n - 1; i > 0; i-- {
		data[0], data[i] = data[i], data[0]
		siftDown(data, 0, i, ops)
	}
}

func siftDown[T Ordered](data []T, root, n int, ops vector.Ops[T]) {
	for {
		largest := root
		l := 2*root + 1
		r := 2*root + 2
		if l < n && ops.Less(data[largest], data[l]) {
			largest = l
		}
		if r < n && ops.Less(data[largest], data[r]) {
			largest = r
		}
		if largest == root {
			return
		}
		data[root], data[largest] = data[largest], data[root]
		root = largest
	}
}
