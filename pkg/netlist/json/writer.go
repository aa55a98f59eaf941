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
package json

import (
	"github.com/consensys/go-rtlsim/pkg/netlist"
	"github.com/segmentio/encoding/json"
)

// ToBytes writes a graph as a JSON netlist description, such that FromBytes
// reconstructs an equivalent graph.  Anonymous nodes are given placeholder
// names based on their identifier.
func ToBytes(g *netlist.Graph) ([]byte, error) {
	return json.MarshalIndent(Describe(g), "", " ")
}

// Describe converts a graph into a description, with one entry per node in
// order of construction.
func Describe(g *netlist.Graph) Description {
	var nodes = make([]NodeDescription, g.Len())
	//
	for i := range g.Len() {
		var (
			id   = netlist.Id(i)
			node = g.Node(id)
			desc = &nodes[i]
		)
		//
		desc.Name = g.Label(id)
		desc.Kind = node.Kind().String()
		desc.Width = node.Width()
		//
		switch node.Kind() {
		case netlist.Literal:
			value := node.Value()
			desc.Value = NewValue(value.BigInt())
		case netlist.Register:
			value := node.Value()
			//
			if !value.IsZero() {
				desc.Value = NewValue(value.BigInt())
			}
			//
			if next, ok := node.Next(); ok {
				desc.Next = g.Label(next)
			}
		case netlist.Operation:
			desc.Op = node.Opcode().String()
			desc.Offset = node.Offset()
			desc.Operands = labels(g, node.Operands())
		default:
			desc.Operands = labels(g, node.Operands())
		}
	}
	//
	return Description{nodes}
}

func labels(g *netlist.Graph, ids []netlist.Id) []string {
	var names = make([]string, len(ids))
	//
	for i, id := range ids {
		names[i] = g.Label(id)
	}
	//
	return names
}
