// Copyright (C) 2024, CounterVM. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

type chainMetrics struct {
	opsExecuted prometheus.Counter
	opsReverted prometheus.Counter

	stateChanges  prometheus.Counter
	unitsConsumed prometheus.Counter
}

func newMetrics() (*prometheus.Registry, *chainMetrics, error) {
	r := prometheus.NewRegistry()

	m := &chainMetrics{
		opsExecuted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chain",
			Name:      "ops_executed",
			Help:      "number of operations executed successfully",
		}),
		opsReverted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chain",
			Name:      "ops_reverted",
			Help:      "number of operations that failed and were reverted",
		}),
		stateChanges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chain",
			Name:      "state_changes",
			Help:      "number of state changes flushed to the backing store",
		}),
		unitsConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chain",
			Name:      "units_consumed",
			Help:      "compute units consumed by successful operations",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.opsExecuted),
		r.Register(m.opsReverted),
		r.Register(m.stateChanges),
		r.Register(m.unitsConsumed),
	)
	return r, m, errs.Err
}
