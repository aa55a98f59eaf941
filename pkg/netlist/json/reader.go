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
	"fmt"
	"strings"

	"github.com/consensys/go-rtlsim/pkg/bitvec"
	"github.com/consensys/go-rtlsim/pkg/netlist"
	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
)

// FromBytes parses a netlist description expressed in JSON notation, and
// constructs the corresponding graph.  Errors identify the offending node by
// its index within the description.
func FromBytes(data []byte) (*netlist.Graph, error) {
	var desc Description
	// Attempt to unmarshall
	if err := json.Unmarshal(data, &desc); err != nil {
		return nil, errors.Wrap(err, "malformed netlist description")
	}
	//
	return Build(desc)
}

// Build constructs a graph from a parsed description.  Nodes are created in
// dependency order, so every operand exists before its consumer; the next
// value of each register is attached once all nodes exist.
func Build(desc Description) (*netlist.Graph, error) {
	var builder = newBuilder(desc)
	//
	if err := builder.index(); err != nil {
		return nil, err
	}
	//
	for i := range desc.Nodes {
		if _, err := builder.build(uint(i)); err != nil {
			return nil, err
		}
	}
	// Finally, close the loops
	for i, node := range desc.Nodes {
		if node.Kind == "register" && node.Next == "" {
			return nil, builder.errorf(uint(i), "missing next value")
		} else if node.Kind == "register" {
			next, err := builder.resolve(uint(i), node.Next)
			//
			if err != nil {
				return nil, err
			}
			//
			builder.graph.SetNext(builder.ids[i], next)
		}
	}
	//
	return builder.graph, nil
}

// Node construction state
const (
	unvisited = iota
	inProgress
	complete
)

type builder struct {
	desc  Description
	graph *netlist.Graph
	// Maps names to node indices within the description.
	names map[string]uint
	state []uint8
	ids   []netlist.Id
}

func newBuilder(desc Description) *builder {
	n := len(desc.Nodes)
	//
	return &builder{desc, netlist.NewGraph(), make(map[string]uint), make([]uint8, n), make([]netlist.Id, n)}
}

// index records the position of every named node, checking names are unique.
func (p *builder) index() error {
	for i, node := range p.desc.Nodes {
		if node.Name == "" {
			continue
		} else if j, ok := p.names[node.Name]; ok {
			return p.errorf(uint(i), "name already used by node %d", j)
		}
		//
		p.names[node.Name] = uint(i)
	}
	//
	return nil
}

// build constructs the node at the given index, after first constructing its
// operands.  Registers are leaves, since their next value is attached later.
func (p *builder) build(index uint) (netlist.Id, error) {
	switch p.state[index] {
	case complete:
		return p.ids[index], nil
	case inProgress:
		return netlist.None, p.errorf(index, "combinational cycle")
	}
	//
	var (
		node     = p.desc.Nodes[index]
		operands []netlist.Id
	)
	//
	p.state[index] = inProgress
	//
	for _, name := range node.Operands {
		operand, err := p.resolve(index, name)
		//
		if err != nil {
			return netlist.None, err
		}
		//
		operands = append(operands, operand)
	}
	//
	id, err := p.construct(index, operands)
	//
	if err != nil {
		return netlist.None, err
	}
	//
	p.state[index] = complete
	p.ids[index] = id
	//
	return id, nil
}

// resolve a reference made by the node at the given index.
func (p *builder) resolve(index uint, name string) (netlist.Id, error) {
	if name == "" {
		return netlist.None, p.errorf(index, "missing operand name")
	}
	//
	target, ok := p.names[name]
	//
	if !ok {
		return netlist.None, p.errorf(index, "unknown node \"%s\"", name)
	}
	//
	return p.build(target)
}

func (p *builder) construct(index uint, operands []netlist.Id) (netlist.Id, error) {
	var (
		node  = p.desc.Nodes[index]
		name  = node.Name
		width = node.Width
		graph = p.graph
	)
	// Names beginning with "%" are placeholders for anonymous nodes
	if strings.HasPrefix(name, "%") {
		name = ""
	}
	//
	kind, ok := netlist.ParseKind(node.Kind)
	//
	if !ok {
		return netlist.None, p.errorf(index, "unknown kind \"%s\"", node.Kind)
	} else if err := p.checkOperands(index, kind, uint(len(operands))); err != nil {
		return netlist.None, err
	}
	//
	switch kind {
	case netlist.Literal:
		value, err := p.literal(index)
		if err != nil {
			return netlist.None, err
		}
		//
		return graph.Named(name, graph.Constant(value)), nil
	case netlist.Register:
		if width == 0 {
			return netlist.None, p.errorf(index, "missing width")
		}
		//
		id := graph.Register(name, width, 0)
		//
		if node.Value != nil {
			init := bitvec.New(width)
			graph.SetInit(id, init.SetBigInt(&node.Value.Int))
		}
		//
		return id, nil
	case netlist.Input:
		if width == 0 {
			return netlist.None, p.errorf(index, "missing width")
		}
		//
		return graph.Input(name, width), nil
	case netlist.Proxy:
		if width == 0 {
			width = graph.Node(operands[0]).Width()
		}
		//
		return graph.Named(name, graph.ProxyN(width, operands[0])), nil
	case netlist.Output:
		if width == 0 {
			width = graph.Node(operands[0]).Width()
		}
		//
		return graph.OutputN(name, width, operands[0]), nil
	default:
		return p.operation(index, name, operands)
	}
}

func (p *builder) operation(index uint, name string, operands []netlist.Id) (netlist.Id, error) {
	var (
		node  = p.desc.Nodes[index]
		width = node.Width
		graph = p.graph
	)
	//
	op, ok := netlist.ParseOpcode(node.Op)
	//
	if !ok {
		return netlist.None, p.errorf(index, "unknown operation \"%s\"", node.Op)
	} else if !op.AcceptsOperands(uint(len(operands))) {
		return netlist.None, p.errorf(index, "%s cannot accept %d operand(s)", op, len(operands))
	}
	// Infer width where possible
	if width == 0 {
		switch {
		case op.IsBoolean():
			width = 1
		case op == netlist.Concat:
			for _, operand := range operands {
				width += graph.Node(operand).Width()
			}
		case op == netlist.Slice:
			return netlist.None, p.errorf(index, "missing width")
		default:
			width = graph.Node(operands[0]).Width()
		}
	}
	//
	if op == netlist.Slice {
		return graph.Named(name, graph.Slice(width, node.Offset, operands[0])), nil
	}
	//
	return graph.Named(name, graph.Op(op, width, operands...)), nil
}

// literal determines the value of a literal node.  When no width is given, the
// narrowest width holding the value is used.
func (p *builder) literal(index uint) (*bitvec.BitVector, error) {
	var (
		node  = p.desc.Nodes[index]
		width = node.Width
	)
	//
	if node.Value == nil {
		return nil, p.errorf(index, "missing value")
	} else if width == 0 && node.Value.Sign() < 0 {
		return nil, p.errorf(index, "negative value requires a width")
	} else if width == 0 {
		width = max(uint(node.Value.BitLen()), 1)
	}
	//
	value := bitvec.New(width)
	//
	return value.SetBigInt(&node.Value.Int), nil
}

func (p *builder) checkOperands(index uint, kind netlist.Kind, n uint) error {
	switch {
	case kind == netlist.Literal || kind == netlist.Input || kind == netlist.Register:
		if n != 0 {
			return p.errorf(index, "%s cannot have operands", kind)
		}
	case kind == netlist.Proxy || kind == netlist.Output:
		if n != 1 {
			return p.errorf(index, "%s requires exactly one operand", kind)
		}
	}
	//
	return nil
}

func (p *builder) errorf(index uint, format string, args ...any) error {
	var (
		msg  = fmt.Sprintf(format, args...)
		name = p.desc.Nodes[index].Name
	)
	//
	if name != "" {
		return errors.Errorf("node %d (%s): %s", index, name, msg)
	}
	//
	return errors.Errorf("node %d: %s", index, msg)
}
