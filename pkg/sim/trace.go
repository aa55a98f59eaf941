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
	"github.com/consensys/go-rtlsim/pkg/bitvec"
	"github.com/consensys/go-rtlsim/pkg/netlist"
	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
)

// Signal is the sequence of values taken by a single node, one per tick.
type Signal struct {
	Name   string
	Width  uint
	Values []bitvec.BitVector
}

// Trace records the values of a set of signals over consecutive ticks.
type Trace struct {
	Signals []Signal
}

// Len returns the number of ticks recorded in this trace.
func (p *Trace) Len() uint {
	if len(p.Signals) == 0 {
		return 0
	}
	//
	return uint(len(p.Signals[0].Values))
}

// Signal returns the signal with the given name, if it exists.
func (p *Trace) Signal(name string) (*Signal, bool) {
	for i := range p.Signals {
		if p.Signals[i].Name == name {
			return &p.Signals[i], true
		}
	}
	//
	return nil, false
}

// jsonSignal is the JSON form of a signal, with values in hexadecimal.
type jsonSignal struct {
	Name   string   `json:"name"`
	Width  uint     `json:"width"`
	Values []string `json:"values"`
}

// ToBytes writes this trace in JSON notation, where each signal lists its
// values in hexadecimal.  For example, {"signals": [{"name": "out", "width":
// 4, "values": ["0xf", "0x0"]}]}.
func (p *Trace) ToBytes() ([]byte, error) {
	var signals = make([]jsonSignal, len(p.Signals))
	//
	for i, s := range p.Signals {
		values := make([]string, len(s.Values))
		//
		for j := range s.Values {
			values[j] = "0x" + s.Values[j].Text(16)
		}
		//
		signals[i] = jsonSignal{s.Name, s.Width, values}
	}
	//
	return json.Marshal(map[string][]jsonSignal{"signals": signals})
}

// TraceFromBytes parses a trace written by ToBytes.
func TraceFromBytes(data []byte) (*Trace, error) {
	var (
		raw   map[string][]jsonSignal
		trace Trace
	)
	//
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "malformed trace")
	}
	//
	for _, s := range raw["signals"] {
		signal := Signal{s.Name, s.Width, make([]bitvec.BitVector, len(s.Values))}
		//
		for i, text := range s.Values {
			signal.Values[i] = bitvec.New(s.Width)
			//
			if _, ok := signal.Values[i].SetString(text, 0); !ok {
				return nil, errors.Errorf("signal %s has invalid value \"%s\" (tick %d)", s.Name, text, i)
			}
		}
		//
		trace.Signals = append(trace.Signals, signal)
	}
	//
	return &trace, nil
}

// Recorder samples a fixed set of nodes from a simulator, building a trace.
type Recorder struct {
	watched []netlist.Id
	trace   Trace
}

// NewRecorder constructs a recorder for the given nodes of a graph.  Nodes are
// named by their labels in the graph.
func NewRecorder(g *netlist.Graph, watched ...netlist.Id) *Recorder {
	var signals = make([]Signal, len(watched))
	//
	for i, id := range watched {
		signals[i] = Signal{Name: g.Label(id), Width: g.Node(id).Width()}
	}
	//
	return &Recorder{watched, Trace{signals}}
}

// Sample the current value of every watched node.
func (p *Recorder) Sample(sim *Simulator) {
	for i, id := range p.watched {
		p.trace.Signals[i].Values = append(p.trace.Signals[i].Values, sim.GetValue(id))
	}
}

// Trace returns the trace recorded so far.
func (p *Recorder) Trace() *Trace {
	return &p.trace
}
