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

	"golang.org/x/exp/constraints"
)

// Record represents a single object in the tree.
type Record[T any] interface {
	// Less tests whether the current record is less than the given argument.
	//
	// This must provide a strict weak ordering; if !a.Less(b) && !b.Less(a),
	// we treat this to mean a == b (i.e., we can only hold one of either a or b
	// in the tree).
	Less(than T) bool
}

// equal reports whether a and b are equivalent under the record ordering.
func equal[T Record[T]](a, b T) bool {
	return !a.Less(b) && !b.Less(a)
}

// Key adapts any ordered value to a record.
type Key[K constraints.Ordered] struct {
	value K
}

// NewKey creates a new key record with the given value.
func NewKey[K constraints.Ordered](value K) Key[K] {
	return Key[K]{value: value}
}

// Value returns the underlying value of the key.
func (k Key[K]) Value() K {
	return k.value
}

// Less tests whether the current key is less than the given argument.
func (k Key[K]) Less(than Key[K]) bool {
	return k.value < than.value
}

func (k Key[K]) String() string {
	return fmt.Sprint(k.value)
}

// Sorted reports whether the given records are in strictly ascending order,
// which is the precondition of Build.
func Sorted[T Record[T]](records []T) bool {
	for i := 1; i < len(records); i++ {
		if !records[i-1].Less(records[i]) {
			return false
		}
	}
	return true
}
