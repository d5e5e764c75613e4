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

// Package vqsort provides a vectorized-style hybrid quicksort for
// contiguous slices of primitive numeric types.
//
// It is a Go rendition of Google Highway's VQSort algorithm (by way of
// x86-simd-sort, the AVX-512 implementation VQSort itself absorbed):
// an introsort variant built from a compress-store partitioning kernel,
// median-of-samples pivot selection, a sorting-network base case for
// small ranges, and a heapsort fallback bounding worst-case recursion
// depth. There is no real SIMD here — Go has no portable way to name a
// hardware vector register — so "vector capability" (package
// internal/vector) is a plain value carrying per-type comparisons and
// constants instead of a compile-time trait, and every "register
// operation" the algorithm performs is a bounded slice operation.
//
// # Example
//
//	data := []float64{3, 1, 4, 1, 5, 9, 2, 6}
//	vqsort.Sort(data)
//
//	// K-th smallest without a full sort:
//	vqsort.Select(data, 3, false)
//
// # Supported types
//
// int16, int32, int64, uint16, uint32, uint64, float32, float64, and
// vector.Float16 (a software IEEE-754 binary16 type; Go has no native
// half-precision float).
//
// # NaN handling
//
// Sort always produces a total order: NaNs, if present, are moved to
// the end of the result and their count is preserved. Select and
// PartialSort only compact NaNs to the tail when the caller passes
// hasNaN=true, since that requires a linear NaN scan the caller can
// skip when it already knows the input is NaN-free.
package vqsort
