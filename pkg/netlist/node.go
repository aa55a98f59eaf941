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
	"math"

	"github.com/consensys/go-rtlsim/pkg/bitvec"
)

// Id uniquely identifies a node within a graph.  Identifiers are dense indices
// allocated in order of construction, which allows node state to be held in
// arrays indexed by node rather than referenced by address.
type Id uint32

// None is an identifier which never corresponds to a node.
const None Id = math.MaxUint32

// Node is a single unit of a netlist, with a fixed width and an ordered list of
// operands.  Nodes are created through a Graph, which maintains the invariant
// that operand and consumer edges are always mutual.
type Node struct {
	id     Id
	kind   Kind
	op     Opcode
	name   string
	width  uint
	offset uint
	// Constant value of a literal, or initial value of a register.
	value     bitvec.BitVector
	operands  []Id
	consumers []Id
}

// Id returns the identifier of this node.
func (p *Node) Id() Id {
	return p.id
}

// Kind returns the kind of this node.
func (p *Node) Kind() Kind {
	return p.kind
}

// Opcode returns the operation computed by this node.  This is only meaningful
// for operation nodes.
func (p *Node) Opcode() Opcode {
	return p.op
}

// Name returns the name of this node, or "" if it is anonymous.
func (p *Node) Name() string {
	return p.name
}

// Width returns the declared width (in bits) of this node, which never changes
// after construction.
func (p *Node) Width() uint {
	return p.width
}

// Offset returns the starting bit of a slice node.
func (p *Node) Offset() uint {
	return p.offset
}

// Value returns the constant value of a literal, or the initial value of a
// register.  The result is a copy.
func (p *Node) Value() bitvec.BitVector {
	return p.value.Clone()
}

// Operands returns the nodes read by this node, in order.  The returned slice
// must be treated as read-only.
func (p *Node) Operands() []Id {
	return p.operands
}

// Consumers returns the nodes which read this node, in the order those edges
// were added.  The returned slice must be treated as read-only.
func (p *Node) Consumers() []Id {
	return p.consumers
}

// Next returns the node defining the next value of a register, or false if
// this is not a register or its next value has not been set.
func (p *Node) Next() (Id, bool) {
	if p.kind != Register || len(p.operands) == 0 {
		return None, false
	}
	//
	return p.operands[0], true
}

// IsLeaf determines whether this node is a leaf of the combinational
// dependency order.  That is, its value does not depend on any other node
// within a single tick.
func (p *Node) IsLeaf() bool {
	switch p.kind {
	case Literal, Input, Register:
		return true
	default:
		return false
	}
}
