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

// Package vector is the "vector capability" consumer contract for the
// vqsort partitioning kernel and pivot selector: per-element-type
// primitives (masked compress-store, min/max/compare,
// type extrema, NaN classification) analogous to Highway's vtype trait.
//
// There is no real SIMD register here — a Go slice already plays that
// role — so the contract collapses to plain functions over []T plus a
// small Ops[T] value carrying the per-type constants and comparisons
// that a C++ template would otherwise resolve at compile time.
package vector

// Ordered lists the primitive numeric element types the sort core
// supports: signed and unsigned 16/32/64-bit integers, float32,
// float64, and Float16. Float16's underlying type is uint16, so its
// type set is already a subset of ~uint16's; it has no separate term
// here since the two would overlap.
type Ordered interface {
	~int16 | ~int32 | ~int64 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// SignedInts is the constraint for signed integer lanes.
type SignedInts interface {
	~int16 | ~int32 | ~int64
}

// UnsignedInts is the constraint for unsigned integer lanes.
type UnsignedInts interface {
	~uint16 | ~uint32 | ~uint64
}
