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

//go:build amd64

package plp

import "golang.org/x/sys/cpu"

func init() {
	if NoUnrollEnv() {
		setScalarMode()
		return
	}

	// The packed SWAR paths assume cheap unaligned sub-word access, which
	// every SSE2-capable x86-64 core provides. cpu.X86.HasSSE2 is always
	// true on amd64 but keeps the detection explicit.
	if cpu.X86.HasSSE2 {
		currentLevel = DispatchPacked
		currentName = "packed"
		return
	}

	currentLevel = DispatchUnrolled
	currentName = "unrolled"
}
