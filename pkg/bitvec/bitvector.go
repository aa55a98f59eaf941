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

// Package bitvec provides arbitrary-width bit vectors packed into 64bit words,
// together with exact arithmetic over them.  Every operation which writes a
// vector treats the width of the destination as authoritative: results are
// computed exactly and then truncated (or zero-extended) to the destination's
// width.  A destination is never silently widened.
package bitvec

import (
	"fmt"
	"slices"

	"github.com/consensys/go-rtlsim/pkg/util/collection/bit"
)

// BitVector is a fixed-size sequence of bits stored in little-endian order
// across an array of 64bit words.  Bits above the vector's size in the most
// significant word are always zero.  Observe that plain assignment of a
// BitVector shares its underlying words; use Clone or Set to obtain an
// independent copy.
type BitVector struct {
	size  uint
	words []uint64
}

// New constructs a zero-initialised bit vector of the given size (in bits).
func New(size uint) BitVector {
	return BitVector{size, make([]uint64, bit.WordsRequiredFor(size))}
}

// NewFromUint64 constructs a bit vector of the given size holding the given
// value, truncated to the given size.
func NewFromUint64(size uint, value uint64) BitVector {
	var v = New(size)
	//
	v.SetUint64(value)
	//
	return v
}

// Size returns the number of bits in this vector.
func (p *BitVector) Size() uint {
	return p.size
}

// Resize this vector to hold a given number of bits.  Bits exposed by growing
// the vector are zero, whilst bits removed by shrinking it are discarded.
func (p *BitVector) Resize(size uint) {
	var n = bit.WordsRequiredFor(size)
	//
	if n <= uint(cap(p.words)) {
		old := uint(len(p.words))
		p.words = p.words[:n]
		// Words beyond the old length may hold stale data from an earlier
		// shrink.
		for i := old; i < n; i++ {
			p.words[i] = 0
		}
	} else {
		words := make([]uint64, n)
		copy(words, p.words)
		p.words = words
	}
	//
	p.size = size
	p.normalise()
}

// Clone creates a true copy of this vector which ensures no aliasing between
// this vector and the result.
func (p *BitVector) Clone() BitVector {
	return BitVector{p.size, slices.Clone(p.words)}
}

// Bit returns the value of the iᵗʰ bit, where bits are numbered from the least
// significant.  This panics if the index is out of bounds.
func (p *BitVector) Bit(i uint) bool {
	p.checkBit(i)
	//
	return bit.Read(p.words, i)
}

// SetBit sets the iᵗʰ bit to v.  This panics if the index is out of bounds.
func (p *BitVector) SetBit(i uint, v bool) {
	p.checkBit(i)
	bit.Write(v, p.words, i)
}

// Ref returns a reference to the iᵗʰ bit of this vector.  This panics if the
// index is out of bounds.
func (p *BitVector) Ref(i uint) BitRef {
	p.checkBit(i)
	//
	return BitRef{p, i}
}

// NumWords returns the number of words used to store this vector.
func (p *BitVector) NumWords() uint {
	return uint(len(p.words))
}

// Word returns the iᵗʰ word of this vector, where word 0 holds the least
// significant bits.  This panics if the index is out of bounds.
func (p *BitVector) Word(i uint) uint64 {
	p.checkWord(i)
	//
	return p.words[i]
}

// SetWord sets the iᵗʰ word of this vector.  Any bits of the given word which
// lie beyond the size of this vector are discarded.  This panics if the index is
// out of bounds.
func (p *BitVector) SetWord(i uint, w uint64) {
	p.checkWord(i)
	//
	p.words[i] = w
	//
	if i+1 == uint(len(p.words)) {
		p.normalise()
	}
}

// Words returns the underlying words of this vector.  The returned slice must
// be treated as read-only.
func (p *BitVector) Words() []uint64 {
	return p.words
}

// word returns the iᵗʰ word, or zero if this is beyond the end of the vector.
// This implements zero-extension of narrower operands.
func (p *BitVector) word(i uint) uint64 {
	if i < uint(len(p.words)) {
		return p.words[i]
	}
	//
	return 0
}

// normalise clears any bits above the size of this vector.
func (p *BitVector) normalise() {
	if n := len(p.words); n > 0 && p.size%64 != 0 {
		p.words[n-1] &= bit.Mask(p.size % 64)
	}
}

func (p *BitVector) checkBit(i uint) {
	if i >= p.size {
		panic(fmt.Sprintf("bit index %d out of bounds (size %d)", i, p.size))
	}
}

func (p *BitVector) checkWord(i uint) {
	if i >= uint(len(p.words)) {
		panic(fmt.Sprintf("word index %d out of bounds (%d words)", i, len(p.words)))
	}
}

// ============================================================================
// Bit References
// ============================================================================

// BitRef identifies a single bit within a given vector.
type BitRef struct {
	vec   *BitVector
	index uint
}

// Index returns the position of the referenced bit.
func (r BitRef) Index() uint {
	return r.index
}

// Get the value of the referenced bit.
func (r BitRef) Get() bool {
	return r.vec.Bit(r.index)
}

// Set the value of the referenced bit.
func (r BitRef) Set(v bool) {
	r.vec.SetBit(r.index, v)
}

// Flip inverts the referenced bit.
func (r BitRef) Flip() {
	r.vec.SetBit(r.index, !r.vec.Bit(r.index))
}
