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

// Package forest provides a registry of named binary search trees.  A tree
// itself is not safe for concurrent use, so every tree in the forest is
// guarded by its own lock; operations on different trees proceed in parallel.
package forest

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/9rum/bintree/internal/bst"
	"github.com/golang/glog"
	"github.com/puzpuzpuz/xsync/v3"
)

var (
	// ErrTreeNotFound is returned when the named tree has never been planted
	// or has been uprooted.
	ErrTreeNotFound = errors.New("tree not found")

	// ErrEmptyName is returned when a tree is addressed with an empty name.
	ErrEmptyName = errors.New("empty tree name")
)

// grove guards a single tree.
type grove[T bst.Record[T]] struct {
	mu   sync.Mutex
	tree *bst.Tree[T]
}

// Forest represents a set of named trees.
type Forest[T bst.Record[T]] struct {
	trees *xsync.MapOf[string, *grove[T]]
}

// New creates a new, empty forest.
func New[T bst.Record[T]]() *Forest[T] {
	return &Forest[T]{
		trees: xsync.NewMapOf[string, *grove[T]](),
	}
}

// plant returns the grove with the given name, creating an empty one if the
// name is unknown.
func (f *Forest[T]) plant(name string) (*grove[T], error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	g, loaded := f.trees.LoadOrCompute(name, func() *grove[T] {
		return &grove[T]{tree: bst.New[T]()}
	})
	if !loaded {
		glog.V(1).Infof("planted tree %q", name)
	}
	return g, nil
}

// lookup returns the grove with the given name.
func (f *Forest[T]) lookup(name string) (*grove[T], error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	g, ok := f.trees.Load(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTreeNotFound, name)
	}
	return g, nil
}

// Update calls fn with exclusive access to the named tree, planting an empty
// tree first if there is none.
func (f *Forest[T]) Update(name string, fn func(*bst.Tree[T]) error) error {
	g, err := f.plant(name)
	if err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn(g.tree)
}

// View calls fn with exclusive access to the named tree.  Unlike Update, it
// returns ErrTreeNotFound if there is no such tree.
func (f *Forest[T]) View(name string, fn func(*bst.Tree[T]) error) error {
	g, err := f.lookup(name)
	if err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn(g.tree)
}

// lockPair locks both groves in name order so that two concurrent calls on the
// same pair cannot deadlock.  The same grove is locked once.
func lockPair[T bst.Record[T]](a, b *grove[T], aname, bname string) (unlock func()) {
	switch {
	case a == b:
		a.mu.Lock()
		return a.mu.Unlock
	case bname < aname:
		a, b = b, a
	}
	a.mu.Lock()
	b.mu.Lock()
	return func() {
		b.mu.Unlock()
		a.mu.Unlock()
	}
}

// Assign replaces the contents of the tree dst with a deep copy of the tree
// src, planting dst if needed.  Assigning a tree to itself is a no-op.
func (f *Forest[T]) Assign(dst, src string) error {
	from, err := f.lookup(src)
	if err != nil {
		return err
	}
	to, err := f.plant(dst)
	if err != nil {
		return err
	}
	defer lockPair(to, from, dst, src)()
	to.tree.Assign(from.tree)
	return nil
}

// Equal reports whether the two named trees are structurally equal.  A name
// without a tree stands for an empty tree.
func (f *Forest[T]) Equal(a, b string) (bool, error) {
	if a == "" || b == "" {
		return false, ErrEmptyName
	}
	x, xok := f.trees.Load(a)
	y, yok := f.trees.Load(b)
	switch {
	case !xok && !yok:
		return true, nil
	case !xok:
		y.mu.Lock()
		defer y.mu.Unlock()
		return y.tree.IsEmpty(), nil
	case !yok:
		x.mu.Lock()
		defer x.mu.Unlock()
		return x.tree.IsEmpty(), nil
	}
	defer lockPair(x, y, a, b)()
	return bst.Equal(x.tree, y.tree), nil
}

// Uproot removes the named tree from the forest, clearing it.  It returns
// false if there was no such tree.
func (f *Forest[T]) Uproot(name string) bool {
	g, ok := f.trees.LoadAndDelete(name)
	if !ok {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tree.Clear()
	glog.V(1).Infof("uprooted tree %q", name)
	return true
}

// Names returns the names of all trees in the forest in ascending order.
func (f *Forest[T]) Names() []string {
	names := make([]string, 0, f.trees.Size())
	f.trees.Range(func(name string, _ *grove[T]) bool {
		names = append(names, name)
		return true
	})
	slices.Sort(names)
	return names
}

// Len returns the number of trees currently in the forest.
func (f *Forest[T]) Len() int {
	return f.trees.Size()
}
