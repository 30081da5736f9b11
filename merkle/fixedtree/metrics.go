/*
   Copyright 2026 The fmtree Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package fixedtree

import "github.com/prometheus/client_golang/prometheus"

const namespace = "fmtree"
const subSystem = "fixedtree"

var (
	insertTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "insert_total",
			Help:      "Number of elements appended to trees.",
		},
	)
	updateTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "update_total",
			Help:      "Number of single-path recomputations.",
		},
	)
	proofTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "proof_total",
			Help:      "Number of authentication paths generated.",
		},
	)
)

// Collectors returns the package's counters so embedders can register them
// in their own prometheus registry.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		insertTotal,
		updateTotal,
		proofTotal,
	}
}
