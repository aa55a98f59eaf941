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
	"github.com/consensys/go-rtlsim/pkg/util/collection/bit"
)

// And sets z to the bitwise conjunction x&y at the size of z, and returns z.
func (z *BitVector) And(x, y *BitVector) *BitVector {
	for i := range z.words {
		z.words[i] = x.word(uint(i)) & y.word(uint(i))
	}
	//
	z.normalise()
	//
	return z
}

// AndNot sets z to x&^y at the size of z, and returns z.
func (z *BitVector) AndNot(x, y *BitVector) *BitVector {
	for i := range z.words {
		z.words[i] = x.word(uint(i)) &^ y.word(uint(i))
	}
	//
	z.normalise()
	//
	return z
}

// Or sets z to the bitwise disjunction x|y, truncated to the size of z, and
// returns z.
func (z *BitVector) Or(x, y *BitVector) *BitVector {
	for i := range z.words {
		z.words[i] = x.word(uint(i)) | y.word(uint(i))
	}
	//
	z.normalise()
	//
	return z
}

// Xor sets z to the bitwise exclusive-or x^y, truncated to the size of z, and
// returns z.
func (z *BitVector) Xor(x, y *BitVector) *BitVector {
	for i := range z.words {
		z.words[i] = x.word(uint(i)) ^ y.word(uint(i))
	}
	//
	z.normalise()
	//
	return z
}

// Not sets z to the bitwise complement of x (zero-extended to the size of z),
// and returns z.
func (z *BitVector) Not(x *BitVector) *BitVector {
	for i := range z.words {
		z.words[i] = ^x.word(uint(i))
	}
	//
	z.normalise()
	//
	return z
}

// Lsh sets z to x << n, truncated to the size of z, and returns z.  Shifting by
// the size of z (or more) gives zero.
func (z *BitVector) Lsh(x *BitVector, n uint) *BitVector {
	if n >= z.size {
		clear(z.words)
		return z
	}
	//
	var (
		ws = n / 64
		bs = n % 64
	)
	// Proceed from the most significant word, since each word only reads words
	// at the same or lower positions.
	for i := uint(len(z.words)); i > 0; i-- {
		var (
			k   = i - 1
			val uint64
		)
		//
		if k >= ws {
			val = x.word(k-ws) << bs
			//
			if bs != 0 && k > ws {
				val |= x.word(k-ws-1) >> (64 - bs)
			}
		}
		//
		z.words[k] = val
	}
	//
	z.normalise()
	//
	return z
}

// Rsh sets z to x >> n (a logical shift), truncated to the size of z, and
// returns z.  Shifting by the size of x (or more) gives zero.
func (z *BitVector) Rsh(x *BitVector, n uint) *BitVector {
	if n >= x.size {
		clear(z.words)
		return z
	}
	//
	var (
		ws = n / 64
		bs = n % 64
	)
	// Proceed from the least significant word, since each word only reads
	// words at the same or higher positions.
	for i := range uint(len(z.words)) {
		val := x.word(i+ws) >> bs
		//
		if bs != 0 {
			val |= x.word(i+ws+1) << (64 - bs)
		}
		//
		z.words[i] = val
	}
	//
	z.normalise()
	//
	return z
}

// Extract sets z to the bits of x starting at the given offset, such that bit i
// of z is bit offset+i of x (or zero beyond the end of x), and returns z.
func (z *BitVector) Extract(x *BitVector, offset uint) *BitVector {
	return z.Rsh(x, offset)
}

// Deposit writes the bits of x into z starting at the given bit offset, leaving
// all other bits of z unchanged, and returns z.  Bits of x which would land
// beyond the size of z are discarded.
func (z *BitVector) Deposit(x *BitVector, offset uint) *BitVector {
	if offset >= z.size {
		return z
	} else if z == x {
		tmp := x.Clone()
		x = &tmp
	}
	//
	n := min(x.size, z.size-offset)
	bit.Copy(x.words, 0, z.words, offset, n)
	//
	return z
}
