// Copyright 2025 go-pulpdsp Authors
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

package plp

import (
	"os"
	"strconv"
)

// DispatchLevel identifies which kernel flavor is selected at runtime.
type DispatchLevel int

const (
	// DispatchScalar selects the plain double-loop baseline kernels.
	DispatchScalar DispatchLevel = iota

	// DispatchUnrolled selects the manually unrolled scalar kernels
	// (two elements per inner-loop step).
	DispatchUnrolled

	// DispatchPacked selects the packed SWAR kernels, which process
	// 2x16-bit or 4x8-bit lanes per machine word. 32-bit and float
	// elements fall back to the unrolled form at this level.
	DispatchPacked
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchUnrolled:
		return "unrolled"
	case DispatchPacked:
		return "packed"
	default:
		return "unknown"
	}
}

// currentLevel is the selected kernel flavor for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentName is the human-readable name of the selected flavor.
var currentName string

// CurrentLevel returns the kernel flavor selected for this runtime.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentName returns a human-readable name for the selected kernel flavor.
// For example: "packed", "unrolled", "scalar".
func CurrentName() string {
	return currentName
}

// NoUnrollEnv checks if the PLP_NO_UNROLL environment variable is set.
// When set, all dispatching entry points use the scalar baseline kernels
// regardless of architecture. This is useful for testing and debugging.
func NoUnrollEnv() bool {
	val := os.Getenv("PLP_NO_UNROLL")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentName = "scalar"
}
