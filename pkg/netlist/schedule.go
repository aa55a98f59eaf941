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
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/go-rtlsim/pkg/util/collection/stack"
)

// frame is a node being visited by the depth-first traversal, along with the
// index of the next operand to explore.
type frame struct {
	id   Id
	next int
}

// Schedule returns every node of this graph in dependency order.  That is, the
// operands of each node occur before it, except that registers are leaves: a
// register's next expression is scheduled like any other node, but is never
// followed back through the register itself.  An error is returned if the
// graph contains a combinational cycle (i.e. one not broken by a register).
func (g *Graph) Schedule() ([]Id, error) {
	var (
		n        = g.Len()
		order    = make([]Id, 0, n)
		visited  = bitset.New(n)
		onStack  = bitset.New(n)
		worklist = stack.NewStack[frame]()
	)
	//
	for root := range n {
		if visited.Test(root) {
			continue
		}
		//
		worklist.Push(frame{Id(root), 0})
		onStack.Set(root)
		//
		for !worklist.IsEmpty() {
			top := worklist.Top()
			operands := g.dependencies(top.id)
			//
			if top.next == len(operands) {
				// All operands scheduled, so this node can follow.
				f := worklist.Pop()
				onStack.Clear(uint(f.id))
				visited.Set(uint(f.id))
				order = append(order, f.id)
				//
				continue
			}
			//
			operand := operands[top.next]
			top.next++
			//
			if onStack.Test(uint(operand)) {
				return nil, g.cycleError(worklist.Items(), operand)
			} else if !visited.Test(uint(operand)) {
				worklist.Push(frame{operand, 0})
				onStack.Set(uint(operand))
			}
		}
	}
	//
	return order, nil
}

// Live returns the set of nodes which contribute to an output or to register
// state.  Registers, inputs and outputs are always live, even when nothing in
// the graph consumes them, since they are observable through the evaluator.
func (g *Graph) Live() *bitset.BitSet {
	var (
		live     = bitset.New(g.Len())
		worklist = stack.NewStack[Id]()
	)
	//
	for i := range g.nodes {
		switch g.nodes[i].kind {
		case Register, Input, Output:
			live.Set(uint(i))
			worklist.Push(Id(i))
		}
	}
	//
	for !worklist.IsEmpty() {
		id := worklist.Pop()
		// A register's operand is its next value, which is needed for commit.
		for _, operand := range g.nodes[id].operands {
			if !live.Test(uint(operand)) {
				live.Set(uint(operand))
				worklist.Push(operand)
			}
		}
	}
	//
	return live
}

// Dead returns the nodes which are not live, in order of construction.
func (g *Graph) Dead() []Id {
	var (
		live = g.Live()
		dead []Id
	)
	//
	for i := range g.Len() {
		if !live.Test(i) {
			dead = append(dead, Id(i))
		}
	}
	//
	return dead
}

// dependencies returns the nodes which must be evaluated before a given node
// within a single tick.
func (g *Graph) dependencies(id Id) []Id {
	if g.nodes[id].IsLeaf() {
		return nil
	}
	//
	return g.nodes[id].operands
}

func (g *Graph) cycleError(frames []frame, closing Id) error {
	var (
		labels []string
		start  = len(frames)
	)
	// Find where the cycle begins
	for start > 0 && frames[start-1].id != closing {
		start--
	}
	//
	for _, f := range frames[max(start-1, 0):] {
		labels = append(labels, g.Label(f.id))
	}
	//
	labels = append(labels, g.Label(closing))
	//
	return fmt.Errorf("combinational cycle %s", strings.Join(labels, " -> "))
}
