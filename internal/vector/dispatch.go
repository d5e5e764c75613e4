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

package vector

import "os"

// DispatchLevel names the SIMD tier the host CPU could support, purely
// for capability reporting: this package never emits real vector
// instructions, so the level does not change any sort result, only what
// a caller might log.
type DispatchLevel int

const (
	DispatchScalar DispatchLevel = iota
	DispatchAVX2
	DispatchAVX512
	DispatchNEON
)

func (d DispatchLevel) String() string {
	switch d {
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "scalar"
	}
}

var (
	currentLevel DispatchLevel
	currentWidth int
)

// CurrentLevel returns the SIMD tier this host reports supporting.
func CurrentLevel() DispatchLevel { return currentLevel }

// CurrentWidth returns the register width in bytes associated with
// CurrentLevel.
func CurrentWidth() int { return currentWidth }

// noSimdEnv reports whether VQSORT_NO_SIMD forces the scalar report.
func noSimdEnv() bool {
	return os.Getenv("VQSORT_NO_SIMD") != ""
}

func setScalar() {
	currentLevel = DispatchScalar
	currentWidth = 16
}
