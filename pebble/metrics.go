// Copyright (C) 2024, CounterVM. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"github.com/ava-labs/avalanchego/utils/metric"
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	getLatency metric.Averager

	gets    prometheus.Counter
	puts    prometheus.Counter
	deletes prometheus.Counter
}

func newMetrics() (*prometheus.Registry, *metrics, error) {
	r := prometheus.NewRegistry()
	getLatency, err := metric.NewAverager(
		"pebble_read_latency",
		"time spent waiting for db get",
		r,
	)
	if err != nil {
		return nil, nil, err
	}
	m := &metrics{
		getLatency: getLatency,
		gets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pebble",
			Name:      "gets",
			Help:      "number of gets",
		}),
		puts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pebble",
			Name:      "puts",
			Help:      "number of puts",
		}),
		deletes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pebble",
			Name:      "deletes",
			Help:      "number of deletes",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.gets),
		r.Register(m.puts),
		r.Register(m.deletes),
	)
	return r, m, errs.Err
}
