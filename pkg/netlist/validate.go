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

	"go.uber.org/multierr"
)

// Validate checks this graph is structurally sound and can be simulated,
// returning every problem found (combined with multierr) or nil.  Problems
// include registers without a next value, operations with the wrong number of
// operands, comparisons or reductions wider than one bit, operand edges without a matching consumer edge (or vice versa) and
// combinational cycles.
func (g *Graph) Validate() error {
	var err error
	//
	for i := range g.nodes {
		err = multierr.Append(err, g.validateNode(&g.nodes[i]))
	}
	// Edges must be sound before a schedule is meaningful.
	if err != nil {
		return err
	}
	//
	if _, cerr := g.Schedule(); cerr != nil {
		err = multierr.Append(err, cerr)
	}
	//
	return err
}

func (g *Graph) validateNode(n *Node) error {
	var (
		err   error
		arity = uint(len(n.operands))
	)
	//
	if n.width == 0 {
		err = multierr.Append(err, fmt.Errorf("%s %s has zero width", n.kind, g.Label(n.id)))
	}
	//
	switch n.kind {
	case Literal, Input:
		if arity != 0 {
			err = multierr.Append(err, fmt.Errorf("%s %s has operands", n.kind, g.Label(n.id)))
		}
	case Register:
		if arity == 0 {
			err = multierr.Append(err, fmt.Errorf("register %s has no next value", g.Label(n.id)))
		} else if arity > 1 {
			err = multierr.Append(err, fmt.Errorf("register %s has %d next values", g.Label(n.id), arity))
		}
	case Proxy, Output:
		if arity != 1 {
			err = multierr.Append(err, fmt.Errorf("%s %s has %d operands (expected 1)", n.kind, g.Label(n.id), arity))
		}
	case Operation:
		if !n.op.AcceptsOperands(arity) {
			err = multierr.Append(err, fmt.Errorf("%s %s has %d operands", n.op, g.Label(n.id), arity))
		}
		//
		if n.op.IsBoolean() && n.width != 1 {
			err = multierr.Append(err, fmt.Errorf("%s %s has width %d (expected 1)", n.op, g.Label(n.id), n.width))
		}
	default:
		err = multierr.Append(err, fmt.Errorf("node %s has unknown kind (%d)", g.Label(n.id), n.kind))
	}
	//
	for _, operand := range n.operands {
		if !g.Contains(operand) {
			err = multierr.Append(err, fmt.Errorf("node %s has unknown operand %%%d", g.Label(n.id), operand))
		} else if count(n.operands, operand) != count(g.nodes[operand].consumers, n.id) {
			err = multierr.Append(err, fmt.Errorf("edge %s -> %s is not mutual", g.Label(operand), g.Label(n.id)))
		}
	}
	//
	for _, consumer := range n.consumers {
		if !g.Contains(consumer) {
			err = multierr.Append(err, fmt.Errorf("node %s has unknown consumer %%%d", g.Label(n.id), consumer))
		} else if count(g.nodes[consumer].operands, n.id) == 0 {
			err = multierr.Append(err, fmt.Errorf("edge %s -> %s is not mutual", g.Label(n.id), g.Label(consumer)))
		}
	}
	//
	return err
}

func count(ids []Id, id Id) uint {
	var n uint
	//
	for _, i := range ids {
		if i == id {
			n++
		}
	}
	//
	return n
}
