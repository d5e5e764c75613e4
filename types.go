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

// Ordered is the set of element types the sort core supports.
type Ordered = vector.Ordered

// Float16 is an IEEE-754 binary16 value. See vector.Float16 for
// conversions to and from float32.
type Float16 = vector.Float16

// Float32ToFloat16 converts a float32 to its nearest Float16 representation.
func Float32ToFloat16(f float32) Float16 {
	return vector.Float32ToFloat16(f)
}
