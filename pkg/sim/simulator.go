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

// Package sim provides an instruction-based evaluator for netlists.  A
// simulator is built once from a finished graph, producing one instruction per
// node in dependency order.  Each tick then evaluates every combinational
// instruction exactly once, before committing every register.
package sim

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/go-rtlsim/pkg/bitvec"
	"github.com/consensys/go-rtlsim/pkg/netlist"
	"github.com/consensys/go-rtlsim/pkg/util"
	"github.com/consensys/go-rtlsim/pkg/util/collection/bit"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Simulator evaluates a netlist over discrete ticks.  A simulator is not safe
// for concurrent use.
type Simulator struct {
	graph *netlist.Graph
	// Value of every node, followed by the staging slot of every register.
	store *Store
	// Combinational instructions, in dependency order.
	program []Instruction
	// Register instructions, which latch and commit.
	registers []Instruction
	// Instructions which have faulted, indexed by position in program followed
	// by registers.  Each fault is reported only once.
	faults *bitset.BitSet
	// Scratch space for resolved source slots.
	operands []*bitvec.BitVector
	ticks    uint
}

// New constructs a simulator for a given graph.  The graph is validated and
// scheduled, and should not be modified afterwards.  All registers start at
// their initial values, whilst inputs start at zero.
func New(g *netlist.Graph) (*Simulator, error) {
	stats := util.NewPerfStats()
	//
	if err := g.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid netlist")
	}
	//
	order, err := g.Schedule()
	//
	if err != nil {
		return nil, err
	}
	//
	var (
		widths  = make([]uint, g.Len())
		maxArgs = 0
	)
	// Allocate one slot per node
	for i := range widths {
		widths[i] = g.Node(netlist.Id(i)).Width()
	}
	//
	sim := &Simulator{graph: g, store: NewStore(widths...)}
	// Construct instructions in dependency order
	for _, id := range order {
		node := g.Node(id)
		maxArgs = max(maxArgs, len(node.Operands()))
		//
		if node.Kind() == netlist.Register {
			staging := sim.store.Alloc(node.Width())
			sim.registers = append(sim.registers, NewInstruction(node, staging))
		} else {
			sim.program = append(sim.program, NewInstruction(node, netlist.None))
		}
	}
	//
	sim.faults = bitset.New(uint(len(sim.program) + len(sim.registers)))
	sim.operands = make([]*bitvec.BitVector, 0, maxArgs)
	sim.Reset()
	//
	log.Debugf("built %d instructions (%d registers) over %d slots", len(sim.program)+len(sim.registers),
		len(sim.registers), sim.store.Len())
	stats.Log("Building simulator")
	//
	return sim, nil
}

// Graph returns the netlist being simulated.
func (p *Simulator) Graph() *netlist.Graph {
	return p.graph
}

// Program returns every instruction in execution order.  That is, the
// combinational instructions followed by the register instructions.
func (p *Simulator) Program() []Instruction {
	program := make([]Instruction, 0, len(p.program)+len(p.registers))
	program = append(program, p.program...)
	//
	return append(program, p.registers...)
}

// Ticks returns the number of ticks executed since construction (or the last
// reset).
func (p *Simulator) Ticks() uint {
	return p.ticks
}

// Lookup returns the node with the given name, if one exists.
func (p *Simulator) Lookup(name string) (netlist.Id, bool) {
	return p.graph.Lookup(name)
}

// Reset restores every register to its initial value and every other slot to
// zero (except literals), and sets the tick count back to zero.
func (p *Simulator) Reset() {
	for i := range p.store.Len() {
		slot, _ := p.store.Slot(netlist.Id(i))
		slot.SetUint64(0)
	}
	//
	for _, insn := range p.registers {
		init := p.graph.Node(insn.Target).Value()
		p.slot(insn.Target).Set(&init)
	}
	//
	for i := range p.program {
		if p.program[i].Code == Load {
			p.slot(p.program[i].Target).Set(&p.program[i].Value)
		}
	}
	//
	p.ticks = 0
}

// Tick executes one full clock cycle: every combinational instruction is
// evaluated once in dependency order, after which every register is committed.
func (p *Simulator) Tick() {
	p.Eval()
	p.Commit()
}

// Run executes n ticks.  When a recorder is given, it samples the settled
// combinational values of each tick, before registers are committed.
func (p *Simulator) Run(n uint, rec *Recorder) {
	stats := util.NewPerfStats()
	//
	for range n {
		p.Eval()
		//
		if rec != nil {
			rec.Sample(p)
		}
		//
		p.Commit()
	}
	//
	stats.LogRate(fmt.Sprintf("Running %d ticks", n), n, "ticks")
}

// Eval evaluates every combinational instruction once, in dependency order,
// without committing any register.  This can be used to settle the circuit
// after inputs are written.
func (p *Simulator) Eval() {
	for i := range p.program {
		p.execute(uint(i), &p.program[i])
	}
}

// Commit updates every register with its next value.  Next values are first
// latched into staging slots and only then copied into the registers, hence
// the order in which registers are committed does not matter.
func (p *Simulator) Commit() {
	var offset = uint(len(p.program))
	//
	for i := range p.registers {
		p.execute(offset+uint(i), &p.registers[i])
	}
	//
	for i := range p.registers {
		insn := &p.registers[i]
		// Faulted latches leave their register unchanged.
		if p.faults.Test(offset + uint(i)) {
			continue
		}
		//
		p.slot(insn.Target).Set(p.slot(insn.Staging))
	}
	//
	p.ticks++
}

// ============================================================================
// Boundary
// ============================================================================

// SetValue writes the value of a node, truncating or zero-extending to its
// declared width.  This is intended for inputs, but any node can be written;
// combinational nodes are overwritten by the next evaluation.
func (p *Simulator) SetValue(id netlist.Id, value *bitvec.BitVector) {
	p.value(id).Set(value)
}

// SetUint64 writes the value of a node, truncating to its declared width.
func (p *Simulator) SetUint64(id netlist.Id, value uint64) {
	p.value(id).SetUint64(value)
}

// SetBytes writes the value of a node from a buffer of little-endian units of
// the given alignment (1, 2, 4 or 8 bytes).  A buffer which is too short is
// zero-extended, whilst one which is too long is truncated.  A trailing partial
// unit is zero-filled, rather than dropped.
func (p *Simulator) SetBytes(id netlist.Id, raw []byte, align uint) {
	p.value(id).Import(raw, align)
}

// GetValue returns a copy of the value of a node, whose size is the node's
// declared width.
func (p *Simulator) GetValue(id netlist.Id) bitvec.BitVector {
	return p.value(id).Clone()
}

// Uint64 returns the value of a node, which must be at most 64 bits wide.
func (p *Simulator) Uint64(id netlist.Id) uint64 {
	return p.value(id).Uint64()
}

// Bytes returns the value of a node as a buffer of little-endian units of the
// given alignment (1, 2, 4 or 8 bytes).
func (p *Simulator) Bytes(id netlist.Id, align uint) []byte {
	return p.value(id).Export(align)
}

// Poke writes the value of a node from a slice of units (least significant
// first), truncating or zero-extending to its declared width.
func Poke[T bit.Unit](sim *Simulator, id netlist.Id, units ...T) {
	bitvec.FromUnits(sim.value(id), units)
}

// Peek reads the value of a node as a slice of units, least significant first.
func Peek[T bit.Unit](sim *Simulator, id netlist.Id) []T {
	return bitvec.ToUnits[T](sim.value(id))
}

// value returns the slot of a node, panicking if no such node exists.
func (p *Simulator) value(id netlist.Id) *bitvec.BitVector {
	if !p.graph.Contains(id) {
		panic(fmt.Sprintf("unknown node %%%d", id))
	}
	//
	return p.slot(id)
}

// slot returns a slot known to exist, panicking otherwise.
func (p *Simulator) slot(id netlist.Id) *bitvec.BitVector {
	slot, ok := p.store.Slot(id)
	//
	if !ok {
		panic(fmt.Sprintf("unknown slot %%%d", id))
	}
	//
	return slot
}
