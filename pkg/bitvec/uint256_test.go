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
	"math/rand/v2"
	"testing"

	"github.com/holiman/uint256"
)

// At 256 bits, the truncating family coincides with uint256 arithmetic.

func Test_Uint256_00(t *testing.T) {
	checkUint256(t, 1000, false)
}

func Test_Uint256_01(t *testing.T) {
	checkUint256(t, 1000, true)
}

func Test_Uint256_02(t *testing.T) {
	for range 1000 {
		var (
			x  = randomUint256(false)
			n  = rand.UintN(300)
			xv = fromUint256(x)
			zv = New(256)
		)
		//
		zv.Lsh(&xv, n)
		checkUint256Value(t, "lsh", &zv, new(uint256.Int).Lsh(x, n))
		zv.Rsh(&xv, n)
		checkUint256Value(t, "rsh", &zv, new(uint256.Int).Rsh(x, n))
		zv.Not(&xv)
		checkUint256Value(t, "not", &zv, new(uint256.Int).Not(x))
		zv.Neg(&xv)
		checkUint256Value(t, "neg", &zv, new(uint256.Int).Neg(x))
	}
}

func checkUint256(t *testing.T, n int, sparse bool) {
	for range n {
		var (
			x  = randomUint256(sparse)
			y  = randomUint256(sparse)
			xv = fromUint256(x)
			yv = fromUint256(y)
			zv = New(256)
		)
		// uint256 defines x%0 as 0, which differs from the bit vector
		// convention.
		if y.IsZero() {
			y.SetOne()
			yv.SetUint64(1)
		}
		//
		checkUint256Value(t, "add", zv.Add(&xv, &yv), new(uint256.Int).Add(x, y))
		checkUint256Value(t, "sub", zv.Sub(&xv, &yv), new(uint256.Int).Sub(x, y))
		checkUint256Value(t, "mul", zv.Mul(&xv, &yv), new(uint256.Int).Mul(x, y))
		checkUint256Value(t, "div", zv.Quo(&xv, &yv), new(uint256.Int).Div(x, y))
		checkUint256Value(t, "mod", zv.Rem(&xv, &yv), new(uint256.Int).Mod(x, y))
		checkUint256Value(t, "and", zv.And(&xv, &yv), new(uint256.Int).And(x, y))
		checkUint256Value(t, "or", zv.Or(&xv, &yv), new(uint256.Int).Or(x, y))
		checkUint256Value(t, "xor", zv.Xor(&xv, &yv), new(uint256.Int).Xor(x, y))
		//
		if xv.Cmp(&yv) != x.Cmp(y) {
			t.Fatalf("cmp: %s ~ %s gave %d", x.Hex(), y.Hex(), xv.Cmp(&yv))
		}
	}
}

func checkUint256Value(t *testing.T, op string, actual *BitVector, expected *uint256.Int) {
	t.Helper()
	//
	for i := range 4 {
		if actual.Word(uint(i)) != expected[i] {
			t.Fatalf("%s: expected %s, got %s", op, expected.Hex(), actual.String())
		}
	}
}

func fromUint256(x *uint256.Int) BitVector {
	var v = New(256)
	//
	for i := range 4 {
		v.SetWord(uint(i), x[i])
	}
	//
	return v
}

func randomUint256(sparse bool) *uint256.Int {
	var x uint256.Int
	//
	for i := range 4 {
		if !sparse || rand.IntN(2) == 0 {
			x[i] = rand.Uint64()
		}
	}
	//
	return &x
}
