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

//go:build !amd64 && !arm64

package plp

func init() {
	// Other architectures get the unrolled scalar kernels. The packed
	// SWAR paths are portable Go too, but their pack/unpack overhead is
	// only worthwhile where unaligned word access is known to be cheap.
	if NoUnrollEnv() {
		setScalarMode()
		return
	}

	currentLevel = DispatchUnrolled
	currentName = "unrolled"
}
