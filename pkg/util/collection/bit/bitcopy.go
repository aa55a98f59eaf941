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

import (
	"fmt"
	"math/bits"
)

// Unit identifies the word types which can be used as the alignment unit of a
// packed bit buffer.  Bits are numbered from the least-significant bit of the
// first unit, so that a buffer of little-endian units always describes the same
// bit sequence regardless of its unit size.
type Unit interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// UnitWidth returns the number of bits held by a single unit of type T.
func UnitWidth[T Unit]() uint {
	return uint(bits.OnesCount64(uint64(^T(0))))
}

// CheckAlignment panics unless the given alignment (in bytes) is one of the
// supported unit sizes, namely 1, 2, 4 or 8 bytes.
func CheckAlignment(align uint) {
	switch align {
	case 1, 2, 4, 8:
		return
	default:
		panic(fmt.Sprintf("unsupported alignment (%d bytes)", align))
	}
}

// Copy copies n bits starting at a given bit offset in a source buffer into a
// destination buffer starting at another (independent) bit offset.  Bits of the
// destination outside of the copied range are left untouched.  The two buffers
// must not overlap.
func Copy[T Unit](src []T, srcOffset uint, dst []T, dstOffset uint, nbits uint) {
	var width = UnitWidth[T]()
	// Sanity checks
	if srcOffset+nbits > uint(len(src))*width {
		panic(fmt.Sprintf("bit copy out-of-bounds (read %d bits at offset %d from %d bits)", nbits, srcOffset,
			uint(len(src))*width))
	} else if dstOffset+nbits > uint(len(dst))*width {
		panic(fmt.Sprintf("bit copy out-of-bounds (write %d bits at offset %d into %d bits)", nbits, dstOffset,
			uint(len(dst))*width))
	}
	// Fast path for unit-aligned copies
	if srcOffset%width == 0 && dstOffset%width == 0 {
		var (
			s = srcOffset / width
			d = dstOffset / width
			n = nbits / width
		)
		//
		copy(dst[d:d+n], src[s:s+n])
		//
		nbits -= n * width
		srcOffset += n * width
		dstOffset += n * width
	}
	// Copy remainder in chunks which do not straddle a unit boundary on either
	// side.
	for nbits > 0 {
		var (
			s     = srcOffset % width
			d     = dstOffset % width
			chunk = min(nbits, width-s, width-d)
			mask  = T(Mask(chunk))
			val   = (src[srcOffset/width] >> s) & mask
			ith   = &dst[dstOffset/width]
		)
		//
		*ith = (*ith &^ (mask << d)) | (val << d)
		//
		nbits -= chunk
		srcOffset += chunk
		dstOffset += chunk
	}
}

// CopyAligned copies n bits between two byte buffers whose contents are
// organised as little-endian units of the given alignment (in bytes).  Any
// alignment other than 1, 2, 4 or 8 bytes is an error.
func CopyAligned(src []byte, srcOffset uint, dst []byte, dstOffset uint, nbits uint, align uint) {
	CheckAlignment(align)
	// Since units are little-endian, the bit numbering of the underlying bytes
	// coincides with the bit numbering of the units.
	Copy(src, srcOffset, dst, dstOffset, nbits)
}

// Read reads the bit at a given bit offset out of a buffer of units.
func Read[T Unit](src []T, bitoffset uint) bool {
	var width = UnitWidth[T]()
	//
	return (src[bitoffset/width]>>(bitoffset%width))&1 != 0
}

// Write writes a bit to a given bit offset in a buffer of units.
func Write[T Unit](val bool, dst []T, bitoffset uint) {
	var (
		width = UnitWidth[T]()
		mask  = T(1) << (bitoffset % width)
		ith   = &dst[bitoffset/width]
	)
	//
	if val {
		// set bit
		*ith |= mask
	} else {
		// Clear bit
		*ith &^= mask
	}
}
