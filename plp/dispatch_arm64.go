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

//go:build arm64

package plp

import "golang.org/x/sys/cpu"

func init() {
	if NoUnrollEnv() {
		setScalarMode()
		return
	}

	// ASIMD implies efficient unaligned word access, which the packed
	// SWAR paths rely on. Darwin does not populate cpu.ARM64, so treat
	// an uninitialized feature set as capable.
	if cpu.ARM64.HasASIMD || !cpu.Initialized {
		currentLevel = DispatchPacked
		currentName = "packed"
		return
	}

	currentLevel = DispatchUnrolled
	currentName = "unrolled"
}
