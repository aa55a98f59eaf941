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
package stack

// Stack is a LIFO stack backed by a slice.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty stack.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// IsEmpty checks whether the stack holds no items.
func (p *Stack[T]) IsEmpty() bool {
	return len(p.items) == 0
}

// Len returns the number of items on the stack.
func (p *Stack[T]) Len() uint {
	return uint(len(p.items))
}

// Push an item onto the stack.
func (p *Stack[T]) Push(item T) {
	p.items = append(p.items, item)
}

// Top returns a pointer to the topmost item, allowing it to be updated in
// place.  The pointer is invalidated by the next Push.
func (p *Stack[T]) Top() *T {
	if len(p.items) == 0 {
		panic("empty stack has no top")
	}
	//
	return &p.items[len(p.items)-1]
}

// Pop removes and returns the topmost item.
func (p *Stack[T]) Pop() T {
	var n = len(p.items)
	//
	if n == 0 {
		panic("cannot pop from empty stack")
	}
	//
	item := p.items[n-1]
	p.items = p.items[:n-1]
	//
	return item
}

// Items returns the items on the stack from bottom to top.  The returned slice
// must be treated as read-only.
func (p *Stack[T]) Items() []T {
	return p.items
}
