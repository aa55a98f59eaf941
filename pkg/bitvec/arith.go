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
	"math/bits"
)

// Set assigns x to z, truncating or zero-extending x to the size of z, and
// returns z.  This is the primitive truncating assignment.
func (z *BitVector) Set(x *BitVector) *BitVector {
	if z == x {
		return z
	}
	//
	n := copy(z.words, x.words)
	clear(z.words[n:])
	z.normalise()
	//
	return z
}

// Add sets z to the sum x+y, truncated to the size of z, and returns z.
func (z *BitVector) Add(x, y *BitVector) *BitVector {
	var carry uint64
	//
	for i := range z.words {
		z.words[i], carry = bits.Add64(x.word(uint(i)), y.word(uint(i)), carry)
	}
	//
	z.normalise()
	//
	return z
}

// Sub sets z to the difference x-y, wrapping modulo 2^n where n is the size of
// z, and returns z.
func (z *BitVector) Sub(x, y *BitVector) *BitVector {
	var borrow uint64
	//
	for i := range z.words {
		z.words[i], borrow = bits.Sub64(x.word(uint(i)), y.word(uint(i)), borrow)
	}
	//
	z.normalise()
	//
	return z
}

// Neg sets z to the two's complement negation of x at the size of z, and
// returns z.
func (z *BitVector) Neg(x *BitVector) *BitVector {
	var borrow uint64
	//
	for i := range z.words {
		z.words[i], borrow = bits.Sub64(0, x.word(uint(i)), borrow)
	}
	//
	z.normalise()
	//
	return z
}

// Mul sets z to the product x*y, truncated to the size of z, and returns z.
// Only the low words of the product are ever computed, since higher words
// cannot affect the truncated result.
func (z *BitVector) Mul(x, y *BitVector) *BitVector {
	var (
		n   = len(z.words)
		out = z.words
		xn  = min(len(x.words), n)
		yn  = min(len(y.words), n)
	)
	// A temporary is required when the destination aliases an operand.
	if z == x || z == y {
		out = make([]uint64, n)
	} else {
		clear(out)
	}
	//
	for i := 0; i < xn; i++ {
		var (
			xi    = x.words[i]
			carry uint64
			j     int
		)
		//
		if xi == 0 {
			continue
		}
		//
		for ; j < yn && i+j < n; j++ {
			hi, lo := bits.Mul64(xi, y.words[j])
			lo, c := bits.Add64(lo, out[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			out[i+j] = lo
			carry = hi
		}
		//
		if i+j < n {
			out[i+j] = carry
		}
	}
	//
	if z == x || z == y {
		copy(z.words, out)
	}
	//
	z.normalise()
	//
	return z
}

// Quo sets z to the (unsigned) quotient x/y, truncated to the size of z, and
// returns z.  Division by zero gives zero.
func (z *BitVector) Quo(x, y *BitVector) *BitVector {
	q, _ := divmod(x.words, y.words)
	//
	return z.setWords(q)
}

// Rem sets z to the (unsigned) remainder x%y, truncated to the size of z, and
// returns z.  The remainder of a division by zero is the dividend.
func (z *BitVector) Rem(x, y *BitVector) *BitVector {
	_, r := divmod(x.words, y.words)
	//
	return z.setWords(r)
}

// setWords assigns a raw word array into z, truncating or zero-extending as
// necessary.
func (z *BitVector) setWords(words []uint64) *BitVector {
	n := copy(z.words, words)
	clear(z.words[n:])
	z.normalise()
	//
	return z
}

// divmod computes the quotient and remainder of dividing x by y at full
// working width.  Neither operand is modified, and the results never alias
// them.
func divmod(x, y []uint64) (q, r []uint64) {
	x = trim(x)
	y = trim(y)
	// Division by zero
	if len(y) == 0 {
		return nil, append([]uint64(nil), x...)
	} else if cmpWords(x, y) < 0 {
		return nil, append([]uint64(nil), x...)
	}
	//
	q = make([]uint64, len(x))
	// Single word divisor
	if len(y) == 1 {
		var rem uint64
		//
		for i := len(x) - 1; i >= 0; i-- {
			q[i], rem = bits.Div64(rem, x[i], y[0])
		}
		//
		return q, []uint64{rem}
	}
	// Multi-word divisor, using restoring long division one bit at a time.
	// Since r < 2y holds throughout, one extra word of headroom suffices.
	r = make([]uint64, len(y)+1)
	//
	for i := bitLen(x); i > 0; i-- {
		b := i - 1
		shl1(r)
		r[0] |= (x[b/64] >> (b % 64)) & 1
		//
		if cmpWords(r, y) >= 0 {
			subWords(r, y)
			q[b/64] |= uint64(1) << (b % 64)
		}
	}
	//
	return q, r
}

// trim removes any leading (i.e. most significant) zero words.
func trim(words []uint64) []uint64 {
	n := len(words)
	//
	for n > 0 && words[n-1] == 0 {
		n--
	}
	//
	return words[:n]
}

// bitLen returns the number of bits required to represent the given words.
func bitLen(words []uint64) uint {
	words = trim(words)
	//
	if len(words) == 0 {
		return 0
	}
	//
	n := uint(len(words) - 1)
	//
	return n*64 + uint(bits.Len64(words[n]))
}

// cmpWords compares two word arrays as unsigned integers, where missing words
// are treated as zero.
func cmpWords(x, y []uint64) int {
	for i := max(len(x), len(y)) - 1; i >= 0; i-- {
		var a, b uint64
		//
		if i < len(x) {
			a = x[i]
		}
		//
		if i < len(y) {
			b = y[i]
		}
		//
		if a < b {
			return -1
		} else if a > b {
			return 1
		}
	}
	//
	return 0
}

// shl1 shifts a word array left by one bit in place, discarding the top bit.
func shl1(words []uint64) {
	var carry uint64
	//
	for i, w := range words {
		words[i] = (w << 1) | carry
		carry = w >> 63
	}
}

// subWords subtracts y from x in place, assuming x >= y.
func subWords(x, y []uint64) {
	var borrow uint64
	//
	for i := range x {
		var b uint64
		//
		if i < len(y) {
			b = y[i]
		}
		//
		x[i], borrow = bits.Sub64(x[i], b, borrow)
	}
}
