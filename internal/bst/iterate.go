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

package bst

import (
	"iter"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// RecordIterator allows callers of Ascend and Descend to iterate in-order over
// the tree.  When this function returns false, iteration will stop and the
// associated Ascend or Descend function will immediately return.
type RecordIterator[T Record[T]] func(T) bool

type direction int

const (
	descend = direction(-1)
	ascend  = direction(+1)
)

// near returns the child visited before n in the given direction.
func (n *node[T]) near(dir direction) *node[T] {
	if dir == ascend {
		return n.left
	}
	return n.right
}

// far returns the child visited after n in the given direction.
func (n *node[T]) far(dir direction) *node[T] {
	if dir == ascend {
		return n.right
	}
	return n.left
}

// depthFrame is a node waiting on the traversal stack along with its depth.
type depthFrame[T Record[T]] struct {
	n     *node[T]
	depth int
}

// iterate walks the tree in the given direction, calling visit with every node
// and its depth (the root is at depth 1).  It returns false if visit stopped
// the walk.
func (t *Tree[T]) iterate(dir direction, visit func(n *node[T], depth int) bool) bool {
	stack := arraystack.New()
	n, depth := t.root, 1
	for n != nil || !stack.Empty() {
		for ; n != nil; n, depth = n.near(dir), depth+1 {
			stack.Push(depthFrame[T]{n: n, depth: depth})
		}
		v, _ := stack.Pop()
		frame := v.(depthFrame[T])
		if !visit(frame.n, frame.depth) {
			return false
		}
		n, depth = frame.n.far(dir), frame.depth+1
	}
	return true
}

// Ascend calls the iterator for every record in the tree in ascending order,
// until iterator returns false.
func (t *Tree[T]) Ascend(iterator RecordIterator[T]) {
	t.iterate(ascend, func(n *node[T], _ int) bool {
		return iterator(n.record)
	})
}

// Descend calls the iterator for every record in the tree in descending order,
// until iterator returns false.
func (t *Tree[T]) Descend(iterator RecordIterator[T]) {
	t.iterate(descend, func(n *node[T], _ int) bool {
		return iterator(n.record)
	})
}

// All returns an iterator over the records of the tree in ascending order.
// The sequence is evaluated lazily and may be ranged over any number of times.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.Ascend(RecordIterator[T](yield))
	}
}

// Sideways returns an iterator over (depth, record) pairs in descending order:
// the right subtree first, then the node itself, then the left subtree.  The
// root is at depth 1 and each level below adds one.  Printing every record
// indented by its depth shows the tree rotated a quarter turn counterclockwise.
func (t *Tree[T]) Sideways() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		t.iterate(descend, func(n *node[T], depth int) bool {
			return yield(depth, n.record)
		})
	}
}
