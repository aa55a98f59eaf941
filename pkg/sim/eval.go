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
	log "github.com/sirupsen/logrus"
)

// execute a single instruction at the given position.  If any slot referenced
// by the instruction is missing, the fault is reported (once) and the
// instruction is skipped, leaving its target unchanged.
func (p *Simulator) execute(index uint, insn *Instruction) bool {
	target, ok := p.resolve(insn)
	//
	if !ok {
		p.fault(index, insn)
		return false
	}
	//
	var args = p.operands
	//
	switch insn.Code {
	case Load:
		target.Set(&insn.Value)
	case Input:
		// written externally
	case Output, Copy, Latch:
		target.Set(args[0])
	default:
		evalOperation(insn.Code.Opcode(), insn.Offset, target, args)
	}
	//
	return true
}

// resolve the target and source slots of an instruction, leaving the sources
// in the operands buffer.  A latch targets its staging slot.
func (p *Simulator) resolve(insn *Instruction) (*bitvec.BitVector, bool) {
	var (
		target *bitvec.BitVector
		ok     bool
	)
	//
	if insn.Code == Latch {
		target, ok = p.store.Slot(insn.Staging)
	} else {
		target, ok = p.store.Slot(insn.Target)
	}
	//
	p.operands = p.operands[:0]
	//
	for _, src := range insn.Sources {
		slot, found := p.store.Slot(src)
		ok = ok && found
		p.operands = append(p.operands, slot)
	}
	//
	return target, ok
}

func (p *Simulator) fault(index uint, insn *Instruction) {
	if p.faults.Test(index) {
		return
	}
	//
	p.faults.Set(index)
	log.Errorf("instruction %d (%s) references unknown slot, skipping", index, insn.Format(p.graph.Label))
}

// evalOperation computes an operation over its (resolved) arguments, writing
// the result into z.  Results are always truncated to the width of z.
func evalOperation(op netlist.Opcode, offset uint, z *bitvec.BitVector, args []*bitvec.BitVector) {
	switch op {
	case netlist.Add:
		z.Add(args[0], args[1])
	case netlist.Sub:
		z.Sub(args[0], args[1])
	case netlist.Mul:
		z.Mul(args[0], args[1])
	case netlist.Div:
		z.Quo(args[0], args[1])
	case netlist.Rem:
		z.Rem(args[0], args[1])
	case netlist.Neg:
		z.Neg(args[0])
	case netlist.And:
		z.And(args[0], args[1])
	case netlist.Or:
		z.Or(args[0], args[1])
	case netlist.Xor:
		z.Xor(args[0], args[1])
	case netlist.Not:
		z.Not(args[0])
	case netlist.Shl:
		z.Lsh(args[0], args[1].ShiftAmount())
	case netlist.Shr:
		z.Rsh(args[0], args[1].ShiftAmount())
	case netlist.Eq:
		z.SetBool(args[0].Cmp(args[1]) == 0)
	case netlist.Ne:
		z.SetBool(args[0].Cmp(args[1]) != 0)
	case netlist.Lt:
		z.SetBool(args[0].Cmp(args[1]) < 0)
	case netlist.Le:
		z.SetBool(args[0].Cmp(args[1]) <= 0)
	case netlist.Gt:
		z.SetBool(args[0].Cmp(args[1]) > 0)
	case netlist.Ge:
		z.SetBool(args[0].Cmp(args[1]) >= 0)
	case netlist.Mux:
		if args[0].IsZero() {
			z.Set(args[1])
		} else {
			z.Set(args[2])
		}
	case netlist.Concat:
		var pos uint
		//
		z.SetUint64(0)
		//
		for _, arg := range args {
			z.Deposit(arg, pos)
			pos += arg.Size()
		}
	case netlist.Slice:
		z.Extract(args[0], offset)
	case netlist.ReduceAnd:
		z.SetBool(args[0].IsOnes())
	case netlist.ReduceOr:
		z.SetBool(!args[0].IsZero())
	case netlist.ReduceXor:
		z.SetBool(args[0].Parity())
	default:
		panic("unknown operation " + op.String())
	}
}
