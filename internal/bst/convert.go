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
	"errors"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// ErrShortBuffer is returned by FlattenInto when the destination cannot hold
// every record in the tree.
var ErrShortBuffer = errors.New("bst: short buffer")

// drain moves every record out of the tree in ascending order, destroying each
// node once its record has been handed to fn.  The tree is empty afterwards.
func (t *Tree[T]) drain(fn func(T)) {
	stack := arraystack.New()
	n := t.root
	t.root, t.length = nil, 0

	for n != nil || !stack.Empty() {
		for ; n != nil; n = n.left {
			stack.Push(n)
		}
		v, _ := stack.Pop()
		cur := v.(*node[T])
		fn(cur.record)
		n = cur.right

		var zero T
		cur.record, cur.left, cur.right = zero, nil, nil
	}
}

// Flatten returns all records of the tree as a slice sorted in ascending
// order.  The tree is consumed: its records are moved into the slice and it is
// empty afterwards.
func (t *Tree[T]) Flatten() []T {
	out := make([]T, 0, t.length)
	t.drain(func(record T) {
		out = append(out, record)
	})
	return out
}

// FlattenInto moves all records of the tree into dst in ascending order and
// returns the number of records written.  If dst is shorter than Len, the tree
// is left untouched and ErrShortBuffer is returned.
func (t *Tree[T]) FlattenInto(dst []T) (int, error) {
	if len(dst) < t.length {
		return 0, ErrShortBuffer
	}
	i := 0
	t.drain(func(record T) {
		dst[i] = record
		i++
	})
	return i, nil
}

// buildFrame is a pending range [low, high] of the source slice whose middle
// record goes into slot.
type buildFrame[T Record[T]] struct {
	low, high int
	slot      **node[T]
}

// Build discards the contents of the tree and rebuilds it from the given
// records, which must be sorted in ascending order without duplicates; this is
// not validated (see Sorted).  The middle record of every range becomes the
// root of the corresponding subtree, so the result has minimal height.  For a
// range of even length the lower middle is chosen, i.e., of two records the
// first one becomes the parent and the second its right child.
//
// Build takes ownership of the records; every slot of sorted is reset to the
// zero value.
func (t *Tree[T]) Build(sorted []T) {
	t.Clear()

	stack := arraystack.New()
	stack.Push(buildFrame[T]{low: 0, high: len(sorted) - 1, slot: &t.root})
	for !stack.Empty() {
		v, _ := stack.Pop()
		frame := v.(buildFrame[T])
		if frame.high < frame.low {
			continue
		}
		mid := (frame.low + frame.high) / 2
		n := &node[T]{record: sorted[mid]}
		*frame.slot = n

		var zero T
		sorted[mid] = zero

		stack.Push(buildFrame[T]{low: mid + 1, high: frame.high, slot: &n.right})
		stack.Push(buildFrame[T]{low: frame.low, high: mid - 1, slot: &n.left})
	}
	t.length = len(sorted)
}

// FromSorted creates a new balanced tree from the given sorted records.
func FromSorted[T Record[T]](sorted []T) *Tree[T] {
	t := New[T]()
	t.Build(sorted)
	return t
}

// Balance rebuilds the tree into a shape of minimal height while keeping its
// records.
func (t *Tree[T]) Balance() {
	t.Build(t.Flatten())
}
