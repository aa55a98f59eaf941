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

// Package json reads and writes netlist descriptions in JSON notation.  For
// example, the following describes a 4bit counter:
//
//	{"nodes": [
//	  {"name": "one", "kind": "literal", "width": 4, "value": 1},
//	  {"name": "count", "kind": "register", "width": 4, "next": "sum"},
//	  {"name": "sum", "kind": "op", "op": "add", "width": 5, "operands": ["count", "one"]},
//	  {"name": "out", "kind": "output", "operands": ["count"]}
//	]}
//
// Nodes refer to their operands by name, and may do so before those operands
// are declared.  Names beginning with "%" identify nodes which are anonymous in
// the resulting graph.
package json

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
)

// Description is the top-level structure of a netlist description.
type Description struct {
	Nodes []NodeDescription `json:"nodes"`
}

// NodeDescription describes a single node.  Which fields are meaningful
// depends upon the node's kind.
type NodeDescription struct {
	Name string `json:"name,omitempty"`
	// One of "literal", "op", "register", "proxy", "input" or "output".
	Kind string `json:"kind"`
	// Opcode of an "op" node.
	Op    string `json:"op,omitempty"`
	Width uint   `json:"width,omitempty"`
	// Starting bit of a "slice" operation.
	Offset uint `json:"offset,omitempty"`
	// Value of a literal, or initial value of a register.
	Value *Value `json:"value,omitempty"`
	// Next value of a register.
	Next     string   `json:"next,omitempty"`
	Operands []string `json:"operands,omitempty"`
}

// Value is an unsigned constant, written either as a JSON number or as a
// string in decimal, hexadecimal ("0x") or binary ("0b") notation.
type Value struct {
	big.Int
}

// NewValue constructs a value from a big integer.
func NewValue(v *big.Int) *Value {
	var val Value
	//
	val.Set(v)
	//
	return &val
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Value) UnmarshalJSON(data []byte) error {
	text := strings.Trim(string(data), "\"")
	//
	if _, ok := p.SetString(text, 0); !ok {
		return errors.Errorf("invalid value %s", string(data))
	}
	//
	return nil
}

// MarshalJSON implements json.Marshaler.  Values are written in hexadecimal.
func (p *Value) MarshalJSON() ([]byte, error) {
	return json.Marshal("0x" + p.Text(16))
}
