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

// This file provides the packed-lane arithmetic used by the packed kernel
// flavor: SWAR add/subtract on 2x16-bit or 4x8-bit lanes inside a uint32
// word. Lanes wrap on overflow independently, with no saturation and no
// promotion, matching native fixed-width integer arithmetic. Carries are
// kept from crossing lane boundaries by masking out each lane's sign bit
// before the word-wide operation and restoring it by xor afterwards.

const (
	high16 = 0x80008000 // sign bit of each 16-bit lane
	high8  = 0x80808080 // sign bit of each 8-bit lane
)

// Pack2 packs two 16-bit values into one word, x0 in the low lane.
func Pack2(x0, x1 int16) uint32 {
	return uint32(uint16(x0)) | uint32(uint16(x1))<<16
}

// Unpack2 splits a word into its two 16-bit lanes, low lane first.
func Unpack2(w uint32) (int16, int16) {
	return int16(uint16(w)), int16(uint16(w >> 16))
}

// Pack4 packs four 8-bit values into one word, x0 in the lowest lane.
func Pack4(x0, x1, x2, x3 int8) uint32 {
	return uint32(uint8(x0)) | uint32(uint8(x1))<<8 |
		uint32(uint8(x2))<<16 | uint32(uint8(x3))<<24
}

// Unpack4 splits a word into its four 8-bit lanes, lowest lane first.
func Unpack4(w uint32) (int8, int8, int8, int8) {
	return int8(uint8(w)), int8(uint8(w >> 8)), int8(uint8(w >> 16)), int8(uint8(w >> 24))
}

// Add2 adds the two 16-bit lanes of x and y independently, wrapping per lane.
func Add2(x, y uint32) uint32 {
	return ((x &^ high16) + (y &^ high16)) ^ ((x ^ y) & high16)
}

// Sub2 subtracts the two 16-bit lanes of y from x independently, wrapping
// per lane.
func Sub2(x, y uint32) uint32 {
	return ((x | high16) - (y &^ high16)) ^ ((x ^ ^y) & high16)
}

// Add4 adds the four 8-bit lanes of x and y independently, wrapping per lane.
func Add4(x, y uint32) uint32 {
	return ((x &^ high8) + (y &^ high8)) ^ ((x ^ y) & high8)
}

// Sub4 subtracts the four 8-bit lanes of y from x independently, wrapping
// per lane.
func Sub4(x, y uint32) uint32 {
	return ((x | high8) - (y &^ high8)) ^ ((x ^ ^y) & high8)
}
