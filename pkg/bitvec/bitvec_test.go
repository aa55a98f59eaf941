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
	"math/rand/v2"
	"testing"

	"github.com/consensys/go-rtlsim/pkg/util/assert"
)

func Test_BitVector_00(t *testing.T) {
	v := New(100)
	//
	assert.Equal(t, uint(100), v.Size())
	assert.Equal(t, uint(2), v.NumWords())
	assert.True(t, v.IsZero())
	assert.Equal(t, "100'h0", v.String())
}

func Test_BitVector_01(t *testing.T) {
	// Bits spanning a word boundary
	v := New(100)
	//
	for _, i := range []uint{0, 1, 63, 64, 99} {
		v.SetBit(i, true)
	}
	//
	assert.True(t, v.Bit(64))
	assert.True(t, v.Bit(99))
	assert.False(t, v.Bit(65))
	assert.Equal(t, uint64(0x8000000000000003), v.Word(0))
	assert.Equal(t, uint64(0x800000001), v.Word(1))
	assert.Equal(t, uint(5), v.OnesCount())
}

func Test_BitVector_02(t *testing.T) {
	v := New(10)
	//
	assert.Panics(t, func() { v.Bit(10) })
	assert.Panics(t, func() { v.SetBit(10, true) })
	assert.Panics(t, func() { v.Ref(11) })
	assert.Panics(t, func() { v.Word(1) })
	assert.Panics(t, func() { v.SetWord(1, 0) })
}

func Test_BitVector_03(t *testing.T) {
	v := New(10)
	r := v.Ref(3)
	//
	r.Set(true)
	assert.True(t, v.Bit(3))
	r.Flip()
	assert.False(t, r.Get())
	assert.Equal(t, uint(3), r.Index())
}

func Test_BitVector_04(t *testing.T) {
	// Writes to the top word never expose bits beyond the size
	v := New(70)
	v.SetWord(1, ^uint64(0))
	//
	assert.Equal(t, uint64(0x3f), v.Word(1))
	assert.Equal(t, uint(6), v.OnesCount())
}

func Test_BitVector_05(t *testing.T) {
	// Resize re-zeroes newly exposed bits
	v := NewFromUint64(64, ^uint64(0))
	//
	v.Resize(4)
	assert.Equal(t, uint64(0xf), v.Uint64())
	v.Resize(128)
	assert.Equal(t, uint(128), v.Size())
	assert.Equal(t, uint64(0xf), v.Word(0))
	assert.Equal(t, uint64(0), v.Word(1))
	v.Resize(0)
	v.Resize(64)
	assert.True(t, v.IsZero())
}

func Test_BitVector_06(t *testing.T) {
	// Clones never alias
	v := NewFromUint64(8, 0x5a)
	w := v.Clone()
	//
	w.SetBit(0, true)
	assert.Equal(t, uint8(0x5a), v.Uint8())
	assert.Equal(t, uint8(0x5b), w.Uint8())
}

// ============================================================================
// Truncating assignment
// ============================================================================

func Test_BitVector_10(t *testing.T) {
	// Source wider than destination: low bits only
	src := New(200)
	src.SetString("0x123456789abcdef0123456789abcdef0fedcba98", 0)
	dst := New(36)
	dst.Set(&src)
	//
	assert.Equal(t, uint(36), dst.Size())
	assert.Equal(t, uint64(0x0fedcba98), dst.Uint64())
}

func Test_BitVector_11(t *testing.T) {
	// Source narrower than destination: zero-extension
	src := NewFromUint64(4, 0xf)
	dst := New(130)
	dst.Not(&dst)
	dst.Set(&src)
	//
	assert.Equal(t, uint(130), dst.Size())
	assert.Equal(t, uint64(0xf), dst.Word(0))
	assert.Equal(t, uint64(0), dst.Word(1))
	assert.Equal(t, uint64(0), dst.Word(2))
}

func Test_BitVector_12(t *testing.T) {
	for range 1000 {
		var (
			d   = 1 + rand.UintN(300)
			s   = 1 + rand.UintN(300)
			src = randomVector(s)
			dst = randomVector(d)
		)
		//
		dst.Set(&src)
		//
		checkValue(t, &dst, d, new(big.Int).Mod(src.BigInt(), pow2(d)))
	}
}

// ============================================================================
// Arithmetic
// ============================================================================

func Test_BitVector_20(t *testing.T) {
	// 4bit register wraps
	x := NewFromUint64(4, 15)
	one := NewFromUint64(1, 1)
	sum := New(5)
	sum.Add(&x, &one)
	//
	assert.Equal(t, uint64(16), sum.Uint64())
	x.Set(&sum)
	assert.Equal(t, uint64(0), x.Uint64())
	// Compound form keeps the receiver's width
	x.SetUint64(15)
	x.Add(&x, &one)
	assert.Equal(t, uint(4), x.Size())
	assert.Equal(t, uint64(0), x.Uint64())
}

func Test_BitVector_21(t *testing.T) {
	// Carry across word boundaries
	x := New(128)
	x.SetWord(0, ^uint64(0))
	one := NewFromUint64(8, 1)
	x.Add(&x, &one)
	//
	assert.Equal(t, uint64(0), x.Word(0))
	assert.Equal(t, uint64(1), x.Word(1))
	// And back again
	x.Sub(&x, &one)
	assert.Equal(t, ^uint64(0), x.Word(0))
	assert.Equal(t, uint64(0), x.Word(1))
}

func Test_BitVector_22(t *testing.T) {
	// Division by zero
	x := NewFromUint64(16, 1234)
	zero := New(16)
	z := New(16)
	//
	assert.Equal(t, uint64(0), z.Quo(&x, &zero).Uint64())
	assert.Equal(t, uint64(1234), z.Rem(&x, &zero).Uint64())
}

func Test_BitVector_23(t *testing.T) {
	checkRandomBinaryOps(t, 64, 1000)
}

func Test_BitVector_24(t *testing.T) {
	checkRandomBinaryOps(t, 200, 1000)
}

func Test_BitVector_25(t *testing.T) {
	checkRandomBinaryOps(t, 520, 250)
}

func Test_BitVector_26(t *testing.T) {
	// In-place (aliased) forms never change the receiver's size
	for range 500 {
		var (
			w = 1 + rand.UintN(300)
			s = 1 + rand.UintN(300)
			y = randomVector(s)
		)
		//
		for _, op := range binaryOps {
			x := randomVector(w)
			expected := op.oracle(x.BigInt(), y.BigInt())
			op.apply(&x, &x, &y)
			checkValue(t, &x, w, new(big.Int).Mod(expected, pow2(w)), op.name)
		}
	}
}

func Test_BitVector_27(t *testing.T) {
	// Both operands aliased to the destination
	for range 500 {
		w := 1 + rand.UintN(300)
		//
		for _, op := range binaryOps {
			x := randomVector(w)
			expected := op.oracle(x.BigInt(), x.BigInt())
			op.apply(&x, &x, &x)
			checkValue(t, &x, w, new(big.Int).Mod(expected, pow2(w)), op.name)
		}
	}
}

func Test_BitVector_28(t *testing.T) {
	for range 1000 {
		var (
			d = 1 + rand.UintN(300)
			x = randomVector(1 + rand.UintN(300))
			z = New(d)
		)
		//
		z.Neg(&x)
		checkValue(t, &z, d, new(big.Int).Mod(new(big.Int).Neg(x.BigInt()), pow2(d)))
		//
		z.Not(&x)
		mask := new(big.Int).Sub(pow2(d), big.NewInt(1))
		xmod := new(big.Int).Mod(x.BigInt(), pow2(d))
		checkValue(t, &z, d, new(big.Int).Xor(mask, xmod))
	}
}

// ============================================================================
// Shifts
// ============================================================================

func Test_BitVector_30(t *testing.T) {
	// Shifting by the size (or more) gives zero at an unchanged width
	for _, w := range []uint{1, 7, 63, 64, 65, 100, 128} {
		for _, n := range []uint{w, w + 1, 2 * w, 1000} {
			x := randomVector(w)
			x.Lsh(&x, n)
			//
			assert.Equal(t, w, x.Size())
			assert.True(t, x.IsZero())
			//
			y := randomVector(w)
			y.Rsh(&y, n)
			//
			assert.Equal(t, w, y.Size())
			assert.True(t, y.IsZero())
		}
	}
}

func Test_BitVector_31(t *testing.T) {
	for range 2000 {
		var (
			d = 1 + rand.UintN(300)
			x = randomVector(1 + rand.UintN(300))
			n = rand.UintN(320)
			z = New(d)
		)
		//
		z.Lsh(&x, n)
		checkValue(t, &z, d, new(big.Int).Mod(new(big.Int).Lsh(x.BigInt(), n), pow2(d)), "lsh")
		//
		z.Rsh(&x, n)
		checkValue(t, &z, d, new(big.Int).Mod(new(big.Int).Rsh(x.BigInt(), n), pow2(d)), "rsh")
		// In place
		y := x.Clone()
		y.Lsh(&y, n)
		checkValue(t, &y, x.Size(), new(big.Int).Mod(new(big.Int).Lsh(x.BigInt(), n), pow2(x.Size())), "lsh")
		//
		y = x.Clone()
		y.Rsh(&y, n)
		checkValue(t, &y, x.Size(), new(big.Int).Rsh(x.BigInt(), n), "rsh")
	}
}

func Test_BitVector_32(t *testing.T) {
	// Deposit & extract
	z := New(100)
	x := NewFromUint64(8, 0xab)
	y := NewFromUint64(8, 0xcd)
	z.Deposit(&x, 0)
	z.Deposit(&y, 92)
	//
	s := New(8)
	assert.Equal(t, uint64(0xab), s.Extract(&z, 0).Uint64())
	assert.Equal(t, uint64(0xcd), s.Extract(&z, 92).Uint64())
	assert.Equal(t, uint64(0xc), s.Extract(&z, 96).Uint64())
	// Deposit beyond the end is dropped
	z.Deposit(&x, 96)
	assert.Equal(t, uint64(0xb), s.Extract(&z, 96).Uint64())
	z.Deposit(&x, 100)
	assert.Equal(t, uint64(0xb), s.Extract(&z, 96).Uint64())
}

func Test_BitVector_33(t *testing.T) {
	x := NewFromUint64(8, 3)
	assert.Equal(t, uint(3), x.ShiftAmount())
	//
	y := New(200)
	y.SetBit(150, true)
	assert.True(t, y.ShiftAmount() >= 200)
	//
	z := New(0)
	assert.Equal(t, uint(0), z.ShiftAmount())
}

// ============================================================================
// Bitwise
// ============================================================================

func Test_BitVector_40(t *testing.T) {
	// 100bit vector ANDed with a copy of itself
	v := New(100)
	//
	for _, i := range []uint{0, 1, 63, 64, 99} {
		v.SetBit(i, true)
	}
	//
	w := v.Clone()
	v.And(&v, &w)
	//
	assert.True(t, v.Equal(&w))
	assert.True(t, v.Bit(64))
	assert.Equal(t, uint(100), v.Size())
}

// ============================================================================
// Comparison
// ============================================================================

func Test_BitVector_50(t *testing.T) {
	x := NewFromUint64(4, 5)
	y := NewFromUint64(8, 5)
	z := NewFromUint64(200, 5)
	//
	assert.True(t, x.Equal(&y))
	assert.True(t, z.Equal(&x))
	assert.Equal(t, 0, x.Cmp(&z))
	//
	z.SetBit(199, true)
	assert.Equal(t, -1, x.Cmp(&z))
	assert.Equal(t, 1, z.Cmp(&y))
}

func Test_BitVector_51(t *testing.T) {
	for range 1000 {
		x := randomVector(1 + rand.UintN(200))
		y := randomVector(1 + rand.UintN(200))
		//
		assert.Equal(t, x.BigInt().Cmp(y.BigInt()), x.Cmp(&y))
	}
}

func Test_BitVector_52(t *testing.T) {
	x := New(130)
	x.Not(&x)
	//
	assert.True(t, x.IsOnes())
	assert.False(t, x.Parity())
	assert.Equal(t, uint(130), x.Len())
	x.SetBit(0, false)
	assert.True(t, x.Parity())
	assert.False(t, x.IsOnes())
}

// ============================================================================
// Conversion
// ============================================================================

func Test_BitVector_60(t *testing.T) {
	x := NewFromUint64(8, 200)
	//
	assert.Equal(t, uint8(200), x.Uint8())
	assert.Equal(t, uint16(200), x.Uint16())
	assert.Equal(t, uint32(200), x.Uint32())
	assert.Equal(t, uint64(200), x.Uint64())
	//
	y := NewFromUint64(65, 1)
	assert.Panics(t, func() { y.Uint64() })
	assert.True(t, y.IsUint64())
	assert.Panics(t, func() { x.Resize(9); x.Uint8() })
}

func Test_BitVector_61(t *testing.T) {
	// Serialisation round trip
	for range 1000 {
		w := 1 + rand.UintN(300)
		x := randomVector(w)
		y := New(w)
		//
		y.SetBytes(x.Bytes())
		assert.True(t, x.Equal(&y))
		//
		for _, align := range []uint{1, 2, 4, 8} {
			buf := x.Export(align)
			assert.Equal(t, 0, len(buf)%int(align))
			//
			z := New(w)
			z.Import(buf, align)
			assert.True(t, x.Equal(&z))
		}
		//
		u := New(w)
		FromUnits(&u, ToUnits[uint16](&x))
		assert.True(t, x.Equal(&u))
		FromUnits(&u, ToUnits[uint64](&x))
		assert.True(t, x.Equal(&u))
	}
}

func Test_BitVector_62(t *testing.T) {
	x := New(12)
	//
	assert.Panics(t, func() { x.Import([]byte{1, 2, 3}, 3) })
	assert.Panics(t, func() { x.Export(16) })
	// Mismatched buffers are truncated or zero-filled
	x.Import([]byte{0xff, 0xff, 0xff, 0xff}, 2)
	assert.Equal(t, uint64(0xfff), x.Uint64())
	x.Import([]byte{0x01, 0x02, 0x03}, 2)
	assert.Equal(t, uint64(0x201), x.Uint64())
	// Trailing partial units are zero-filled
	y := New(24)
	y.Import([]byte{0x01, 0x02, 0x03}, 2)
	assert.Equal(t, uint64(0x030201), y.Uint64())
	y.Import([]byte{0x01, 0x02, 0x03, 0x04, 0x05}, 4)
	assert.Equal(t, uint64(0x030201), y.Uint64())
}

func Test_BitVector_63(t *testing.T) {
	x := New(8)
	//
	_, ok := x.SetString("0x1ff", 0)
	assert.True(t, ok)
	assert.Equal(t, uint64(0xff), x.Uint64())
	_, ok = x.SetString("0b101", 0)
	assert.True(t, ok)
	assert.Equal(t, uint64(5), x.Uint64())
	_, ok = x.SetString("-1", 10)
	assert.True(t, ok)
	assert.Equal(t, uint64(0xff), x.Uint64())
	_, ok = x.SetString("zz", 10)
	assert.False(t, ok)
	assert.Equal(t, uint64(0xff), x.Uint64())
	assert.Equal(t, "11111111", x.Text(2))
	assert.Equal(t, "8'hff", x.String())
}

func Test_BitVector_64(t *testing.T) {
	x := New(70)
	x.SetBit(64, true)
	x.SetBit(0, true)
	//
	assert.Equal(t, "70'h10000000000000001", x.String())
	//
	y := NewFromUint64(4, 15)
	assert.Equal(t, "4'hf", y.String())
	assert.Equal(t, "4'hf", fmt.Sprint(y))
	assert.Equal(t, "[4'hf 3'h0]", fmt.Sprint([]BitVector{y, New(3)}))
}

// ===================================================================
// Test Helpers
// ===================================================================

type binaryOp struct {
	name   string
	apply  func(z, x, y *BitVector) *BitVector
	oracle func(x, y *big.Int) *big.Int
}

var binaryOps = []binaryOp{
	{"add", (*BitVector).Add, func(x, y *big.Int) *big.Int { return new(big.Int).Add(x, y) }},
	{"sub", (*BitVector).Sub, func(x, y *big.Int) *big.Int { return new(big.Int).Sub(x, y) }},
	{"mul", (*BitVector).Mul, func(x, y *big.Int) *big.Int { return new(big.Int).Mul(x, y) }},
	{"quo", (*BitVector).Quo, bigQuo},
	{"rem", (*BitVector).Rem, bigRem},
	{"and", (*BitVector).And, func(x, y *big.Int) *big.Int { return new(big.Int).And(x, y) }},
	{"andnot", (*BitVector).AndNot, func(x, y *big.Int) *big.Int { return new(big.Int).AndNot(x, y) }},
	{"or", (*BitVector).Or, func(x, y *big.Int) *big.Int { return new(big.Int).Or(x, y) }},
	{"xor", (*BitVector).Xor, func(x, y *big.Int) *big.Int { return new(big.Int).Xor(x, y) }},
}

func bigQuo(x, y *big.Int) *big.Int {
	if y.Sign() == 0 {
		return new(big.Int)
	}
	//
	return new(big.Int).Quo(x, y)
}

func bigRem(x, y *big.Int) *big.Int {
	if y.Sign() == 0 {
		return new(big.Int).Set(x)
	}
	//
	return new(big.Int).Rem(x, y)
}

func checkRandomBinaryOps(t *testing.T, maxWidth uint, n int) {
	for range n {
		var (
			d = 1 + rand.UintN(maxWidth)
			x = randomVector(1 + rand.UintN(maxWidth))
			y = randomVector(1 + rand.UintN(maxWidth))
		)
		// Occasionally use small divisors
		if rand.IntN(4) == 0 {
			y = NewFromUint64(y.Size(), rand.Uint64N(1000))
		}
		//
		for _, op := range binaryOps {
			z := randomVector(d)
			op.apply(&z, &x, &y)
			expected := new(big.Int).Mod(op.oracle(x.BigInt(), y.BigInt()), pow2(d))
			checkValue(t, &z, d, expected, op.name)
		}
	}
}

func checkValue(t *testing.T, v *BitVector, size uint, expected *big.Int, msg ...string) {
	t.Helper()
	//
	if v.Size() != size {
		t.Fatalf("%v: size changed from %d to %d", msg, size, v.Size())
	} else if actual := v.BigInt(); actual.Cmp(expected) != 0 {
		t.Fatalf("%v: expected %s, got %s (%d bits)", msg, expected.Text(16), actual.Text(16), size)
	} else if v.Len() > size {
		t.Fatalf("%v: bits set beyond size %d", msg, size)
	}
}

func pow2(n uint) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), n)
}

func randomVector(size uint) BitVector {
	var v = New(size)
	//
	for i := range v.NumWords() {
		v.SetWord(i, rand.Uint64())
	}
	// Sometimes use sparse values, to exercise carries and short operands.
	if size > 8 && rand.IntN(4) == 0 {
		v.Rsh(&v, rand.UintN(size))
	}
	//
	return v
}
