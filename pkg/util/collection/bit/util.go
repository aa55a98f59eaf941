// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package bit

// Mask returns a 64bit word where the n least-significant bits are set.  For
// example, Mask(3) gives 0b111, whilst Mask(64) has every bit set.
func Mask(n uint) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	//
	return (uint64(1) << n) - 1
}

// BytesRequiredFor returns the minimum number of bytes required to hold the
// given bitwidth.  For example, the number of bytes to hold a u16 is 2 bytes,
// whilst the minimum required to hold a u17 is 3 bytes.
func BytesRequiredFor(bitwidth uint) uint {
	return UnitsRequiredFor(bitwidth, 8)
}

// WordsRequiredFor returns the minimum number of 64bit words required to hold
// the given bitwidth.
func WordsRequiredFor(bitwidth uint) uint {
	return UnitsRequiredFor(bitwidth, 64)
}

// UnitsRequiredFor returns the minimum number of units of the given width (in
// bits) required to hold the given bitwidth.
func UnitsRequiredFor(bitwidth uint, unit uint) uint {
	var n = bitwidth / unit
	// round up (if necessary)
	if bitwidth%unit != 0 {
		n++
	}
	//
	return n
}

// NewBuffer allocates a byte array which is large enough to hold values of the
// given bitwidth, rounded up to a whole number of units of the given alignment
// (in bytes).
func NewBuffer(bitwidth uint, align uint) []byte {
	CheckAlignment(align)
	//
	return make([]byte, UnitsRequiredFor(bitwidth, 8*align)*align)
}
