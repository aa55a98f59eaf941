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
package bitvec

import (
	"math"
	"math/bits"
)

// Cmp compares x and y as unsigned integers, returning -1, 0 or +1 when x is
// less than, equal to or greater than y respectively.  The operands may have
// different sizes.
func (x *BitVector) Cmp(y *BitVector) int {
	return cmpWords(x.words, y.words)
}

// Equal determines whether x and y hold the same unsigned value, regardless of
// their sizes.
func (x *BitVector) Equal(y *BitVector) bool {
	return cmpWords(x.words, y.words) == 0
}

// IsZero checks whether every bit of this vector is zero.
func (x *BitVector) IsZero() bool {
	for _, w := range x.words {
		if w != 0 {
			return false
		}
	}
	//
	return true
}

// IsOnes checks whether every bit of this vector is one.  An empty vector is
// trivially all ones.
func (x *BitVector) IsOnes() bool {
	return x.OnesCount() == x.size
}

// OnesCount returns the number of bits set in this vector.
func (x *BitVector) OnesCount() uint {
	var count uint
	//
	for _, w := range x.words {
		count += uint(bits.OnesCount64(w))
	}
	//
	return count
}

// Parity returns true when an odd number of bits are set in this vector.
func (x *BitVector) Parity() bool {
	return x.OnesCount()%2 == 1
}

// Len returns the length of the value held in this vector, i.e. the position
// of its most significant set bit plus one (or zero for a zero value).
func (x *BitVector) Len() uint {
	return bitLen(x.words)
}

// ShiftAmount interprets this vector as an (unsigned) shift amount.  Values
// which do not fit in a uint saturate to math.MaxUint, which is always at
// least the size of any vector and therefore shifts everything out.
func (x *BitVector) ShiftAmount() uint {
	if len(x.words) == 0 {
		return 0
	} else if x.Len() > 64 || x.words[0] > math.MaxUint {
		return math.MaxUint
	}
	//
	return uint(x.words[0])
}
