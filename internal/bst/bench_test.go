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
	"testing"

	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

const benchmarkTreeSize = 1 << 14

func BenchmarkInsert(b *testing.B) {
	b.StopTimer()
	insertP := rng.Perm(benchmarkTreeSize)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		tr := New[Int]()
		for _, v := range insertP {
			tr.Insert(NewKey(v))
		}
	}
}

func BenchmarkInsertLLRB(b *testing.B) {
	b.StopTimer()
	insertP := rng.Perm(benchmarkTreeSize)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		tr := llrb.New()
		for _, v := range insertP {
			tr.InsertNoReplace(llrb.Int(v))
		}
	}
}

func BenchmarkInsertBTree(b *testing.B) {
	b.StopTimer()
	insertP := rng.Perm(benchmarkTreeSize)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		tr := btree.NewOrderedG[int](32)
		for _, v := range insertP {
			tr.ReplaceOrInsert(v)
		}
	}
}

func BenchmarkGet(b *testing.B) {
	b.StopTimer()
	tr := New[Int]()
	for _, r := range perm(benchmarkTreeSize) {
		tr.Insert(r)
	}
	getP := perm(benchmarkTreeSize)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		for _, r := range getP {
			tr.Get(r)
		}
	}
}

func BenchmarkGetLLRB(b *testing.B) {
	b.StopTimer()
	tr := llrb.New()
	for _, v := range rng.Perm(benchmarkTreeSize) {
		tr.InsertNoReplace(llrb.Int(v))
	}
	getP := rng.Perm(benchmarkTreeSize)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		for _, v := range getP {
			tr.Get(llrb.Int(v))
		}
	}
}

func BenchmarkBalance(b *testing.B) {
	b.StopTimer()
	tr := New[Int]()
	for _, r := range perm(benchmarkTreeSize) {
		tr.Insert(r)
	}
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		tr.Balance()
	}
}

func BenchmarkClone(b *testing.B) {
	b.StopTimer()
	tr := New[Int]()
	for _, r := range perm(benchmarkTreeSize) {
		tr.Insert(r)
	}
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		tr.Clone()
	}
}
