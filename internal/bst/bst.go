// Copyright 2022 Sogang University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bst implements unbalanced in-memory binary search trees.
//
// A Tree keeps its records in the order defined by Record.Less and holds at
// most one record out of every group of equivalent records.  The shape of the
// tree is a direct consequence of the insertion order; there is no rebalancing
// on insert.  A balanced shape is obtained explicitly by flattening the tree
// into a sorted slice and building it back (see Balance).
//
// Every node is exclusively owned by either the root slot of its tree or a
// child slot of its parent; nodes are never shared between trees, and Clone
// performs a full structural copy.
//
// None of the operations recurse.  Traversals keep their pending nodes on an
// explicit stack or queue, so the depth of a degenerate tree (e.g., the one
// built from an ascending insertion sequence) is bounded by memory rather than
// by the goroutine stack.
//
// A Tree is not safe for concurrent use by multiple goroutines.
package bst

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/emirpasic/gods/stacks/arraystack"
)

// node is an internal node in a tree.
type node[T Record[T]] struct {
	record      T
	left, right *node[T]
}

// Tree is a generic implementation of a binary search tree.
//
// The zero value is an empty tree ready to use.
type Tree[T Record[T]] struct {
	length int
	root   *node[T]
}

// New creates a new, empty binary search tree.
func New[T Record[T]]() *Tree[T] {
	return new(Tree[T])
}

// copyRecord duplicates the given record.  Records that provide a Clone method
// (e.g., pointer types) are duplicated through it; others are copied by value.
func copyRecord[T any](record T) T {
	if c, ok := any(record).(interface{ Clone() T }); ok {
		return c.Clone()
	}
	return record
}

// cloneFrame is a pending step of a structural copy: src is to be duplicated
// into the slot dst.
type cloneFrame[T Record[T]] struct {
	src *node[T]
	dst **node[T]
}

// clone returns a deep copy of the subtree rooted at n.
func (n *node[T]) clone() (out *node[T]) {
	stack := arraystack.New()
	stack.Push(cloneFrame[T]{src: n, dst: &out})
	for !stack.Empty() {
		v, _ := stack.Pop()
		frame := v.(cloneFrame[T])
		if frame.src == nil {
			continue
		}
		dup := &node[T]{record: copyRecord(frame.src.record)}
		*frame.dst = dup
		stack.Push(cloneFrame[T]{src: frame.src.right, dst: &dup.right})
		stack.Push(cloneFrame[T]{src: frame.src.left, dst: &dup.left})
	}
	return
}

// Clone returns a deep copy of the tree.  The copy has exactly the same shape
// and records as t, but none of its nodes are shared with t; modifying one of
// the trees never affects the other.
func (t *Tree[T]) Clone() *Tree[T] {
	return &Tree[T]{
		length: t.length,
		root:   t.root.clone(),
	}
}

// Assign replaces the contents of t with a deep copy of src.  Assigning a tree
// to itself is a no-op.
func (t *Tree[T]) Assign(src *Tree[T]) {
	if t == src {
		return
	}
	t.Clear()
	t.root, t.length = src.root.clone(), src.length
}

// IsEmpty returns true if the tree has no root.
func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// Len returns the number of records currently in the tree.
func (t *Tree[T]) Len() int {
	return t.length
}

// Clear removes all records from the tree.
func (t *Tree[T]) Clear() {
	t.ClearFunc(nil)
}

// ClearFunc removes all records from the tree, tearing it down in post-order:
// both subtrees of a node are destroyed before the node itself.  If release is
// not nil, it is called with each record at the moment its node is destroyed.
// Clearing an empty tree is a no-op.
func (t *Tree[T]) ClearFunc(release func(T)) {
	if t.root == nil {
		return
	}
	stack := arraystack.New()
	stack.Push(t.root)
	t.root, t.length = nil, 0

	for !stack.Empty() {
		v, _ := stack.Peek()
		n := v.(*node[T])
		// detach each child before descending so that the parent never refers to
		// a destroyed node
		if n.left != nil {
			stack.Push(n.left)
			n.left = nil
			continue
		}
		if n.right != nil {
			stack.Push(n.right)
			n.right = nil
			continue
		}
		stack.Pop()
		if release != nil {
			release(n.record)
		}
		var zero T
		n.record = zero
	}
}

// Equal reports whether a and b are structurally equal: both are empty, or
// both have equivalent root records and pairwise equal left and right
// subtrees.  Trees that hold the same records in different shapes are not
// equal.
func Equal[T Record[T]](a, b *Tree[T]) bool {
	if a == b {
		return true
	}
	if a.length != b.length {
		return false
	}
	stack := arraystack.New()
	stack.Push([2]*node[T]{a.root, b.root})
	for !stack.Empty() {
		v, _ := stack.Pop()
		pair := v.([2]*node[T])
		l, r := pair[0], pair[1]
		switch {
		case l == nil && r == nil:
			continue
		case l == nil || r == nil:
			return false
		case !equal(l.record, r.record):
			return false
		}
		stack.Push([2]*node[T]{l.right, r.right})
		stack.Push([2]*node[T]{l.left, r.left})
	}
	return true
}

// Equal reports whether t and other are structurally equal.
func (t *Tree[T]) Equal(other *Tree[T]) bool {
	return Equal(t, other)
}

// NotEqual is the negation of Equal.
func (t *Tree[T]) NotEqual(other *Tree[T]) bool {
	return !Equal(t, other)
}

// Insert adds the given record to the tree as a new leaf.  If a record in the
// tree already equals the given one, the tree is left unchanged and Insert
// returns false.
func (t *Tree[T]) Insert(record T) bool {
	slot := &t.root
	for *slot != nil {
		n := *slot
		switch {
		case record.Less(n.record):
			slot = &n.left
		case n.record.Less(record):
			slot = &n.right
		default:
			return false
		}
	}
	*slot = &node[T]{record: record}
	t.length++
	return true
}

// find returns the node holding a record equal to key, or nil.
func (t *Tree[T]) find(key T) *node[T] {
	n := t.root
	for n != nil {
		switch {
		case key.Less(n.record):
			n = n.left
		case n.record.Less(key):
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Get looks for the key record in the tree, returning the stored record.  It
// returns (zeroValue, false) if unable to find that record.
func (t *Tree[T]) Get(key T) (_ T, _ bool) {
	if n := t.find(key); n != nil {
		return n.record, true
	}
	return
}

// Has returns true if the given key is in the tree.
func (t *Tree[T]) Has(key T) bool {
	return t.find(key) != nil
}

// Height returns the height of the subtree rooted at the record equal to key,
// or 0 if there is no such record.  A leaf has height 1.  Note that this is the
// height of the subtree below the record, not the depth of the record.
func (t *Tree[T]) Height(key T) int {
	return height(t.find(key))
}

// Levels returns the height of the whole tree, which is 0 for an empty tree.
func (t *Tree[T]) Levels() int {
	return height(t.root)
}

// height counts the levels of the subtree rooted at n, one level at a time.
func height[T Record[T]](n *node[T]) (levels int) {
	if n == nil {
		return
	}
	queue := linkedlistqueue.New()
	queue.Enqueue(n)
	for !queue.Empty() {
		levels++
		for width := queue.Size(); 0 < width; width-- {
			v, _ := queue.Dequeue()
			n := v.(*node[T])
			if n.left != nil {
				queue.Enqueue(n.left)
			}
			if n.right != nil {
				queue.Enqueue(n.right)
			}
		}
	}
	return
}

// Min returns the smallest record in the tree, or (zeroValue, false) if the tree is empty.
func (t *Tree[T]) Min() (_ T, _ bool) {
	n := t.root
	if n == nil {
		return
	}
	for n.left != nil {
		n = n.left
	}
	return n.record, true
}

// Max returns the largest record in the tree, or (zeroValue, false) if the tree is empty.
func (t *Tree[T]) Max() (_ T, _ bool) {
	n := t.root
	if n == nil {
		return
	}
	for n.right != nil {
		n = n.right
	}
	return n.record, true
}
