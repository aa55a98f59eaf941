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
)

// Store holds the value of every node, indexed by node identifier.  Every slot
// has the declared width of its node, and all writes go through the truncating
// operations of bitvec, hence a slot never changes width.  Slots are referred
// to by identifier rather than by address, since the backing array may be
// reallocated as slots are added.
type Store struct {
	slots []bitvec.BitVector
}

// NewStore constructs a store with one zeroed slot for each of the given
// widths.
func NewStore(widths ...uint) *Store {
	var store Store
	//
	for _, w := range widths {
		store.Alloc(w)
	}
	//
	return &store
}

// Alloc adds a zeroed slot of the given width, returning its identifier.
func (p *Store) Alloc(width uint) netlist.Id {
	p.slots = append(p.slots, bitvec.New(width))
	//
	return netlist.Id(len(p.slots) - 1)
}

// Len returns the number of slots in this store.
func (p *Store) Len() uint {
	return uint(len(p.slots))
}

// Slot returns the slot for a given identifier, or false if no such slot
// exists.  The returned pointer is invalidated by Alloc.
func (p *Store) Slot(id netlist.Id) (*bitvec.BitVector, bool) {
	if uint(id) >= uint(len(p.slots)) {
		return nil, false
	}
	//
	return &p.slots[id], true
}

// Width returns the width of the given slot, or 0 if no such slot exists.
func (p *Store) Width(id netlist.Id) uint {
	if slot, ok := p.Slot(id); ok {
		return slot.Size()
	}
	//
	return 0
}
