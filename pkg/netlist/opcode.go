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
package netlist

import (
	"fmt"
	"math"
)

// Kind identifies the variety of a node in a netlist.
type Kind uint8

const (
	// Literal is a constant value.
	Literal Kind = iota
	// Operation is a purely combinational function of its operands.
	Operation
	// Register is a sequential element.  The register node itself holds the
	// "current" value read by all other nodes, whilst its single operand (the
	// "next" expression) is only sampled at a tick boundary.
	Register
	// Proxy is an identity pass-through, giving a separately addressable handle
	// onto the value of another node.
	Proxy
	// Input is a boundary port written from outside the circuit.
	Input
	// Output is a boundary port read from outside the circuit.
	Output
)

var kindNames = []string{"literal", "op", "register", "proxy", "input", "output"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	//
	return fmt.Sprintf("kind(%d)", k)
}

// ParseKind returns the kind with the given name (as given by String).
func ParseKind(name string) (Kind, bool) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	//
	return 0, false
}

// Opcode identifies the function computed by an operation node.
type Opcode uint8

// Supported operations.  Unless otherwise stated, operands are unsigned and
// zero-extended, and results are truncated to the width of the node.
const (
	// Add computes x + y.
	Add Opcode = iota
	// Sub computes x - y (modulo 2^width).
	Sub
	// Mul computes x * y.
	Mul
	// Div computes x / y, where x / 0 = 0.
	Div
	// Rem computes x % y, where x % 0 = x.
	Rem
	// Neg computes -x (modulo 2^width).
	Neg
	// And computes x & y.
	And
	// Or computes x | y.
	Or
	// Xor computes x ^ y.
	Xor
	// Not computes ^x.
	Not
	// Shl computes x << y.
	Shl
	// Shr computes x >> y (logical).
	Shr
	// Eq compares x == y, giving 0 or 1.
	Eq
	// Ne compares x != y, giving 0 or 1.
	Ne
	// Lt compares x < y, giving 0 or 1.
	Lt
	// Le compares x <= y, giving 0 or 1.
	Le
	// Gt compares x > y, giving 0 or 1.
	Gt
	// Ge compares x >= y, giving 0 or 1.
	Ge
	// Mux selects between two values: (sel, a, b) gives a when sel is zero,
	// and b otherwise.
	Mux
	// Concat joins one or more operands, with the first operand occupying the
	// least significant bits.
	Concat
	// Slice extracts width bits of its operand starting at the node's offset.
	Slice
	// ReduceAnd gives 1 when every bit of its operand is set.
	ReduceAnd
	// ReduceOr gives 1 when any bit of its operand is set.
	ReduceOr
	// ReduceXor gives the parity of its operand.
	ReduceXor
)

// Variadic is the arity of an operation accepting any positive number of
// operands.
const Variadic = math.MaxUint

var opcodes = []struct {
	name  string
	arity uint
}{
	{"add", 2}, {"sub", 2}, {"mul", 2}, {"div", 2}, {"rem", 2}, {"neg", 1},
	{"and", 2}, {"or", 2}, {"xor", 2}, {"not", 1}, {"shl", 2}, {"shr", 2},
	{"eq", 2}, {"ne", 2}, {"lt", 2}, {"le", 2}, {"gt", 2}, {"ge", 2},
	{"mux", 3}, {"concat", Variadic}, {"slice", 1},
	{"redand", 1}, {"redor", 1}, {"redxor", 1},
}

func (op Opcode) String() string {
	if int(op) < len(opcodes) {
		return opcodes[op].name
	}
	//
	return fmt.Sprintf("opcode(%d)", op)
}

// Arity returns the number of operands required by this operation, or
// Variadic.
func (op Opcode) Arity() uint {
	return opcodes[op].arity
}

// IsComparison determines whether this operation yields a single 0/1 bit from
// comparing its operands.
func (op Opcode) IsComparison() bool {
	return op >= Eq && op <= Ge
}

// IsReduction determines whether this operation folds every bit of its operand
// into a single bit.
func (op Opcode) IsReduction() bool {
	return op >= ReduceAnd && op <= ReduceXor
}

// IsBoolean determines whether this operation always yields a single 0/1 bit,
// and hence must be exactly one bit wide.
func (op Opcode) IsBoolean() bool {
	return op.IsComparison() || op.IsReduction()
}

// AcceptsOperands determines whether this operation can be applied to the
// given number of operands.
func (op Opcode) AcceptsOperands(n uint) bool {
	if int(op) >= len(opcodes) {
		return false
	} else if op.Arity() == Variadic {
		return n > 0
	}
	//
	return n == op.Arity()
}

// ParseOpcode returns the operation with the given name (as given by String).
func ParseOpcode(name string) (Opcode, bool) {
	for i, o := range opcodes {
		if o.name == name {
			return Opcode(i), true
		}
	}
	//
	return 0, false
}
