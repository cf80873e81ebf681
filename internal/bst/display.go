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
	"fmt"
	"io"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/xlab/treeprint"
)

// indent is the width of one level in a sideways dump.
const indent = "    "

// String returns the records of the tree in ascending order separated by
// spaces.
func (t *Tree[T]) String() string {
	var sb strings.Builder
	t.Ascend(func(record T) bool {
		if 0 < sb.Len() {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, record)
		return true
	})
	return sb.String()
}

// Fprint writes a sideways dump of the tree to w, one record per line with the
// largest record first.  A record at depth d is indented by d+1 levels.
func (t *Tree[T]) Fprint(w io.Writer) (err error) {
	for depth, record := range t.Sideways() {
		if _, err = fmt.Fprintf(w, "%s%v\n", strings.Repeat(indent, depth+1), record); err != nil {
			return
		}
	}
	return
}

// drawFrame is a node whose children are yet to be attached to branch.
type drawFrame[T Record[T]] struct {
	n      *node[T]
	branch treeprint.Tree
}

// Draw renders the shape of the tree.  Each child is tagged with its side, so
// that a node with a single child can be told apart.
func (t *Tree[T]) Draw() string {
	if t.root == nil {
		return treeprint.New().String()
	}
	root := treeprint.NewWithRoot(t.root.record)

	stack := arraystack.New()
	stack.Push(drawFrame[T]{n: t.root, branch: root})
	for !stack.Empty() {
		v, _ := stack.Pop()
		frame := v.(drawFrame[T])
		if l := frame.n.left; l != nil {
			stack.Push(drawFrame[T]{n: l, branch: frame.branch.AddMetaBranch("L", l.record)})
		}
		if r := frame.n.right; r != nil {
			stack.Push(drawFrame[T]{n: r, branch: frame.branch.AddMetaBranch("R", r.record)})
		}
	}
	return root.String()
}
