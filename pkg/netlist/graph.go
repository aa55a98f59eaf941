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

// Package netlist provides a directed graph of typed computation nodes
// describing a digital circuit.  Graphs are built incrementally: every node is
// given a fixed width and an ordered list of already existing operands when it
// is created.  The only way to form a cycle is through the next value of a
// register, which is attached after the register has been created.
//
// Construction helpers never hold hidden state.  A register exists only when
// Register is called on a graph, hence helpers which build registers receive
// the graph explicitly and every call creates a distinct instance.
package netlist

import (
	"fmt"
	"math"

	"github.com/consensys/go-rtlsim/pkg/bitvec"
)

// Graph is a netlist under construction (or complete).  Nodes are stored in an
// arena and identified by their index.
type Graph struct {
	nodes []Node
	names map[string]Id
}

// NewGraph constructs an empty graph.
func NewGraph() *Graph {
	return &Graph{nil, make(map[string]Id)}
}

// Len returns the number of nodes in this graph.
func (g *Graph) Len() uint {
	return uint(len(g.nodes))
}

// Node returns the node with the given identifier.  This panics if no such
// node exists.
func (g *Graph) Node(id Id) *Node {
	g.check(id)
	//
	return &g.nodes[id]
}

// Contains determines whether a node with the given identifier exists.
func (g *Graph) Contains(id Id) bool {
	return uint(id) < uint(len(g.nodes))
}

// Lookup returns the node with the given name, if one exists.
func (g *Graph) Lookup(name string) (Id, bool) {
	id, ok := g.names[name]
	//
	return id, ok
}

// Label returns a human-readable label for the given node, which is its name
// (if it has one) or otherwise its identifier.
func (g *Graph) Label(id Id) string {
	if g.Contains(id) && g.nodes[id].name != "" {
		return g.nodes[id].name
	}
	//
	return fmt.Sprintf("%%%d", id)
}

// Inputs returns the input ports of this graph, in order of construction.
func (g *Graph) Inputs() []Id {
	return g.ofKind(Input)
}

// Outputs returns the output ports of this graph, in order of construction.
func (g *Graph) Outputs() []Id {
	return g.ofKind(Output)
}

// Registers returns the registers of this graph, in order of construction.
func (g *Graph) Registers() []Id {
	return g.ofKind(Register)
}

func (g *Graph) ofKind(kind Kind) []Id {
	var ids []Id
	//
	for i := range g.nodes {
		if g.nodes[i].kind == kind {
			ids = append(ids, Id(i))
		}
	}
	//
	return ids
}

// ============================================================================
// Construction
// ============================================================================

// Literal adds a constant of the given width, holding the given value
// (truncated to that width).
func (g *Graph) Literal(width uint, value uint64) Id {
	v := bitvec.NewFromUint64(width, value)
	//
	return g.Constant(&v)
}

// Constant adds a constant whose width is that of the given value.
func (g *Graph) Constant(value *bitvec.BitVector) Id {
	return g.add(Node{kind: Literal, width: value.Size(), value: value.Clone()})
}

// Op adds an operation node of the given width over the given operands.  This
// panics if the number of operands is not accepted by the operation.
func (g *Graph) Op(op Opcode, width uint, operands ...Id) Id {
	if op == Slice {
		panic("slice nodes must be constructed with Slice")
	} else if !op.AcceptsOperands(uint(len(operands))) {
		panic(fmt.Sprintf("%s cannot accept %d operand(s)", op, len(operands)))
	}
	//
	return g.add(Node{kind: Operation, op: op, width: width, operands: operands})
}

// Slice adds a node extracting width bits from x, starting at the given bit
// offset.
func (g *Graph) Slice(width uint, offset uint, x Id) Id {
	return g.add(Node{kind: Operation, op: Slice, width: width, offset: offset, operands: []Id{x}})
}

// Register adds a named register of the given width, whose initial value is
// init (truncated to that width).  Its next value must be attached with SetNext
// before the graph is simulated.  Use SetInit for initial values wider than 64
// bits.
func (g *Graph) Register(name string, width uint, init uint64) Id {
	g.checkName(name)
	id := g.add(Node{kind: Register, width: width, value: bitvec.NewFromUint64(width, init)})
	//
	return g.Named(name, id)
}

// SetInit sets the initial value of a register, truncated to its width.
func (g *Graph) SetInit(reg Id, value *bitvec.BitVector) {
	var n = g.Node(reg)
	//
	if n.kind != Register {
		panic(fmt.Sprintf("node %s is not a register", g.Label(reg)))
	}
	//
	n.value.Set(value)
}

// SetNext attaches the expression defining the next value of a register.  The
// next value may have any width; it is truncated or zero-extended to the width
// of the register on every commit.  This panics if reg is not a register, or if
// its next value is already set.
func (g *Graph) SetNext(reg Id, next Id) {
	var n = g.Node(reg)
	//
	if n.kind != Register {
		panic(fmt.Sprintf("node %s is not a register", g.Label(reg)))
	} else if len(n.operands) != 0 {
		panic(fmt.Sprintf("register %s already has a next value", g.Label(reg)))
	}
	//
	g.check(next)
	g.link(reg, next)
}

// Proxy adds a pass-through node with the same width as x.
func (g *Graph) Proxy(x Id) Id {
	return g.ProxyN(g.Node(x).width, x)
}

// ProxyN adds a pass-through node of the given width, which truncates or
// zero-extends the value of x.
func (g *Graph) ProxyN(width uint, x Id) Id {
	return g.add(Node{kind: Proxy, width: width, operands: []Id{x}})
}

// Input adds a named input port of the given width.
func (g *Graph) Input(name string, width uint) Id {
	g.checkName(name)
	//
	return g.Named(name, g.add(Node{kind: Input, width: width}))
}

// Output adds a named output port exposing the value of x, with the same width
// as x.
func (g *Graph) Output(name string, x Id) Id {
	return g.OutputN(name, g.Node(x).width, x)
}

// OutputN adds a named output port of the given width exposing the value of x,
// truncated or zero-extended to that width.
func (g *Graph) OutputN(name string, width uint, x Id) Id {
	g.checkName(name)
	//
	return g.Named(name, g.add(Node{kind: Output, width: width, operands: []Id{x}}))
}

// Named assigns a name to a node, returning the node's identifier.  This panics
// if the name is already used by another node, or if the node already has a
// different name.
func (g *Graph) Named(name string, id Id) Id {
	var n = g.Node(id)
	//
	if name == "" || name == n.name {
		return id
	} else if n.name != "" {
		panic(fmt.Sprintf("node %%%d is already named \"%s\"", id, n.name))
	}
	//
	g.checkName(name)
	n.name = name
	g.names[name] = id
	//
	return id
}

// add appends a new node whose operands must already exist, updating the
// consumers of each operand.
func (g *Graph) add(node Node) Id {
	if node.width == 0 {
		panic(fmt.Sprintf("%s node with zero width", node.kind))
	} else if uint(len(g.nodes)) >= math.MaxUint32 {
		panic("too many nodes")
	}
	//
	for _, operand := range node.operands {
		g.check(operand)
	}
	//
	id := Id(len(g.nodes))
	operands := node.operands
	node.id = id
	node.operands = nil
	g.nodes = append(g.nodes, node)
	//
	for _, operand := range operands {
		g.link(id, operand)
	}
	//
	return id
}

// link appends operand to the operands of node, and node to the consumers of
// operand.
func (g *Graph) link(node Id, operand Id) {
	g.nodes[node].operands = append(g.nodes[node].operands, operand)
	g.nodes[operand].consumers = append(g.nodes[operand].consumers, node)
}

func (g *Graph) checkName(name string) {
	if other, ok := g.names[name]; ok {
		panic(fmt.Sprintf("duplicate node name \"%s\" (already %%%d)", name, other))
	}
}

func (g *Graph) check(id Id) {
	if !g.Contains(id) {
		panic(fmt.Sprintf("unknown node %%%d", id))
	}
}
