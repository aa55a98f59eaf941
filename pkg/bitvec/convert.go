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
	"fmt"
	"math/big"
	"slices"
	"strings"

	"github.com/consensys/go-rtlsim/pkg/util/collection/bit"
)

// SetUint64 assigns v to z, truncated to the size of z, and returns z.
func (z *BitVector) SetUint64(v uint64) *BitVector {
	clear(z.words)
	//
	if len(z.words) > 0 {
		z.words[0] = v
		z.normalise()
	}
	//
	return z
}

// SetBool assigns 1 (true) or 0 (false) to z and returns z.
func (z *BitVector) SetBool(b bool) *BitVector {
	if b {
		return z.SetUint64(1)
	}
	//
	return z.SetUint64(0)
}

// IsUint64 reports whether the value of x can be represented as a uint64.
func (x *BitVector) IsUint64() bool {
	return x.Len() <= 64
}

// Uint64 returns the value of x as a uint64.  This is only permitted when the
// size of x is at most 64 bits, and panics otherwise.
func (x *BitVector) Uint64() uint64 {
	x.checkCast(64)
	//
	return x.word(0)
}

// Uint32 returns the value of x as a uint32.  This is only permitted when the
// size of x is at most 32 bits, and panics otherwise.
func (x *BitVector) Uint32() uint32 {
	x.checkCast(32)
	//
	return uint32(x.word(0))
}

// Uint16 returns the value of x as a uint16.  This is only permitted when the
// size of x is at most 16 bits, and panics otherwise.
func (x *BitVector) Uint16() uint16 {
	x.checkCast(16)
	//
	return uint16(x.word(0))
}

// Uint8 returns the value of x as a uint8.  This is only permitted when the
// size of x is at most 8 bits, and panics otherwise.
func (x *BitVector) Uint8() uint8 {
	x.checkCast(8)
	//
	return uint8(x.word(0))
}

func (x *BitVector) checkCast(width uint) {
	if x.size > width {
		panic(fmt.Sprintf("cannot cast %d-bit vector to uint%d", x.size, width))
	}
}

// ============================================================================
// Serialisation
// ============================================================================

// Bytes returns the value of x as little-endian bytes.  Exactly enough bytes
// are returned to hold the size of x.
func (x *BitVector) Bytes() []byte {
	var bytes = make([]byte, bit.BytesRequiredFor(x.size))
	//
	for i := range bytes {
		bytes[i] = byte(x.words[i/8] >> (8 * (i % 8)))
	}
	//
	return bytes
}

// SetBytes assigns a value given as little-endian bytes to z, truncating or
// zero-extending to the size of z, and returns z.
func (z *BitVector) SetBytes(bytes []byte) *BitVector {
	clear(z.words)
	//
	for i, b := range bytes {
		if uint(i/8) >= uint(len(z.words)) {
			break
		}
		//
		z.words[i/8] |= uint64(b) << (8 * (i % 8))
	}
	//
	z.normalise()
	//
	return z
}

// Export returns the value of x as a buffer of little-endian units of the given
// alignment (in bytes).  The buffer length is rounded up to a whole number of
// units.  This panics for any alignment other than 1, 2, 4 or 8 bytes.
func (x *BitVector) Export(align uint) []byte {
	var buf = bit.NewBuffer(x.size, align)
	//
	bit.CopyAligned(x.Bytes(), 0, buf, 0, x.size, align)
	//
	return buf
}

// Import assigns z from a buffer of little-endian units of the given alignment
// (in bytes), truncating or zero-extending to the size of z, and returns z.  A
// trailing partial unit in the buffer is zero-filled.  This panics for any
// alignment other than 1, 2, 4 or 8 bytes.
func (z *BitVector) Import(buf []byte, align uint) *BitVector {
	bit.CheckAlignment(align)
	// Units are little-endian, so a partial unit holds its low-order bytes.
	return z.SetBytes(buf)
}

// ToUnits returns the value of x as a slice of units of type T, least
// significant unit first.  Exactly enough units are returned to hold the size
// of x.
func ToUnits[T bit.Unit](x *BitVector) []T {
	var (
		width = bit.UnitWidth[T]()
		units = make([]T, bit.UnitsRequiredFor(x.size, width))
	)
	//
	for i := range units {
		offset := uint(i) * width
		units[i] = T(x.words[offset/64] >> (offset % 64))
	}
	//
	return units
}

// FromUnits assigns z from a slice of units of type T (least significant unit
// first), truncating or zero-extending to the size of z, and returns z.
func FromUnits[T bit.Unit](z *BitVector, units []T) *BitVector {
	var width = bit.UnitWidth[T]()
	//
	clear(z.words)
	//
	for i, u := range units {
		offset := uint(i) * width
		//
		if offset/64 >= uint(len(z.words)) {
			break
		}
		//
		z.words[offset/64] |= uint64(u) << (offset % 64)
	}
	//
	z.normalise()
	//
	return z
}

// ============================================================================
// Big integers & text
// ============================================================================

// BigInt returns the (unsigned) value of x as a freshly allocated big integer.
func (x *BitVector) BigInt() *big.Int {
	var bytes = x.Bytes()
	// big.Int expects big endian bytes
	slices.Reverse(bytes)
	//
	return new(big.Int).SetBytes(bytes)
}

// SetBigInt assigns v to z modulo 2^n, where n is the size of z, and returns z.
// Negative values are represented in two's complement.
func (z *BitVector) SetBigInt(v *big.Int) *BitVector {
	var bytes = new(big.Int).Abs(v).Bytes()
	// Convert into little endian
	slices.Reverse(bytes)
	z.SetBytes(bytes)
	//
	if v.Sign() < 0 {
		z.Neg(z)
	}
	//
	return z
}

// SetString assigns z the value of s interpreted in the given base, modulo
// 2^n where n is the size of z.  As for big.Int, a base of 0 selects the base
// from the string's prefix ("0x", "0b", "0o") and permits underscores.  The
// boolean result reports success; on failure z is unchanged.
func (z *BitVector) SetString(s string, base int) (*BitVector, bool) {
	v, ok := new(big.Int).SetString(s, base)
	//
	if !ok {
		return z, false
	}
	//
	return z.SetBigInt(v), true
}

// Text returns the value of x in the given base (between 2 and 62).
func (x *BitVector) Text(base int) string {
	return x.BigInt().Text(base)
}

// String returns the value of x in hexadecimal, prefixed with its size.  For
// example, a 4bit vector holding 15 gives "4'hf".
func (x BitVector) String() string {
	var builder strings.Builder
	//
	builder.WriteString(fmt.Sprintf("%d'h", x.size))
	//
	digits := false
	//
	for i := len(x.words) - 1; i >= 0; i-- {
		switch {
		case digits:
			builder.WriteString(fmt.Sprintf("%016x", x.words[i]))
		case x.words[i] != 0 || i == 0:
			builder.WriteString(fmt.Sprintf("%x", x.words[i]))
			//
			digits = true
		}
	}
	//
	if !digits {
		builder.WriteString("0")
	}
	//
	return builder.String()
}
