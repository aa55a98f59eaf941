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
package sim

import (
	"fmt"
	"slices"
	"strings"

	"github.com/consensys/go-rtlsim/pkg/bitvec"
	"github.com/consensys/go-rtlsim/pkg/netlist"
)

// Code identifies what an instruction computes.  There is exactly one code for
// each kind of node, except operations which have one code per opcode.
type Code uint8

const (
	// Load writes a constant into the target.
	Load Code = iota
	// Input does nothing, since its target is written from outside.
	Input
	// Output copies its source into the target.
	Output
	// Copy passes its source through to the target.
	Copy
	// Latch copies the next value of a register into its staging slot.  The
	// staging slot is then copied into the target when registers are committed.
	Latch
	// Operations follow, in the same order as netlist opcodes.
	firstOperation
)

var codeNames = []string{"load", "input", "output", "copy", "latch"}

// OperationCode returns the code for a given opcode.
func OperationCode(op netlist.Opcode) Code {
	return firstOperation + Code(op)
}

// IsOperation determines whether this code computes a netlist operation.
func (c Code) IsOperation() bool {
	return c >= firstOperation
}

// Opcode returns the operation computed by this code.  This panics if the code
// is not an operation.
func (c Code) Opcode() netlist.Opcode {
	if !c.IsOperation() {
		panic(fmt.Sprintf("%s is not an operation", c))
	}
	//
	return netlist.Opcode(c - firstOperation)
}

func (c Code) String() string {
	if c.IsOperation() {
		return c.Opcode().String()
	}
	//
	return codeNames[c]
}

// Instruction evaluates a single node, by reading the slots of its sources and
// writing the slot of its target.
type Instruction struct {
	Code Code
	// Slot written by this instruction, which is always the node's own slot.
	Target netlist.Id
	// Slots read by this instruction, in operand order.
	Sources []netlist.Id
	// Starting bit of a slice.
	Offset uint
	// Staging slot of a register.
	Staging netlist.Id
	// Constant written by a load.
	Value bitvec.BitVector
}

// NewInstruction constructs the instruction for a given node.  The staging slot
// is only used for registers.
func NewInstruction(node *netlist.Node, staging netlist.Id) Instruction {
	var insn = Instruction{Target: node.Id(), Sources: slices.Clone(node.Operands()), Staging: netlist.None}
	//
	switch node.Kind() {
	case netlist.Literal:
		insn.Code = Load
		insn.Value = node.Value()
	case netlist.Input:
		insn.Code = Input
	case netlist.Output:
		insn.Code = Output
	case netlist.Proxy:
		insn.Code = Copy
	case netlist.Register:
		insn.Code = Latch
		insn.Staging = staging
	case netlist.Operation:
		insn.Code = OperationCode(node.Opcode())
		insn.Offset = node.Offset()
	default:
		panic(fmt.Sprintf("unknown node kind %s", node.Kind()))
	}
	//
	return insn
}

// String returns a textual representation of this instruction, using
// identifiers to refer to slots.
func (p *Instruction) String() string {
	return p.Format(func(id netlist.Id) string { return fmt.Sprintf("%%%d", id) })
}

// Format returns a textual representation of this instruction, using a given
// function to name slots.
func (p *Instruction) Format(label func(netlist.Id) string) string {
	var builder strings.Builder
	//
	builder.WriteString(label(p.Target))
	builder.WriteString(" = ")
	builder.WriteString(p.Code.String())
	//
	switch {
	case p.Code == Load:
		builder.WriteString(" ")
		builder.WriteString(p.Value.String())
	case p.Code == Latch:
		builder.WriteString(fmt.Sprintf(" [$%d]", p.Staging))
	case p.Code.IsOperation() && p.Code.Opcode() == netlist.Slice:
		builder.WriteString(fmt.Sprintf("[%d]", p.Offset))
	}
	//
	for i, src := range p.Sources {
		if i != 0 {
			builder.WriteString(",")
		}
		//
		builder.WriteString(" ")
		builder.WriteString(label(src))
	}
	//
	return builder.String()
}
