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

package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var operations = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "bintree",
	Name:      "operations_total",
	Help:      "Number of tree operations served, by operation.",
}, []string{"operation"})

var duplicateInserts = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "bintree",
	Name:      "duplicate_inserts_total",
	Help:      "Number of inserts rejected because the tree already held an equal record.",
})

var trees = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "bintree",
	Name:      "trees",
	Help:      "Number of trees currently planted.",
})
