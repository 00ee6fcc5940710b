// Copyright (C) 2024, CounterVM. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"
	"errors"
	"sync"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/countervm/countervm/codec"
	"github.com/countervm/countervm/event"
	"github.com/countervm/countervm/state"
	"github.com/countervm/countervm/tstate"
	"github.com/countervm/countervm/utils"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

// Processor executes one operation at a time against a backing store.
//
// Each call is all-or-nothing: the action runs against a scratch view and
// the view is only flushed to the backing store if every check in the
// action passed. An action that writes some keys and then fails leaves the
// backing store byte-identical to before the call.
type Processor struct {
	log         logging.Logger
	ruleFactory RuleFactory
	store       state.Mutable
	subs        []event.Subscription[codec.Typed]

	registry *prometheus.Registry
	metrics  *chainMetrics

	// Calls are serialized. The state machine performs no concurrency of
	// its own and must never observe a parallel invocation.
	l sync.Mutex
}

func NewProcessor(
	log logging.Logger,
	ruleFactory RuleFactory,
	store state.Mutable,
	subs ...event.Subscription[codec.Typed],
) (*Processor, error) {
	registry, metrics, err := newMetrics()
	if err != nil {
		return nil, err
	}
	return &Processor{
		log:         log,
		ruleFactory: ruleFactory,
		store:       store,
		subs:        subs,

		registry: registry,
		metrics:  metrics,
	}, nil
}

// MetricsRegistry exposes the processor's prometheus registry so the host
// can mount it wherever it serves metrics.
func (p *Processor) MetricsRegistry() *prometheus.Registry {
	return p.registry
}

// Execute applies [action] on behalf of [origin] at [timestamp].
//
// A nil error with Result.Success == false means the action itself failed
// and was reverted; a non-nil error means the harness could not process the
// call at all (backing store failure, subscriber failure).
func (p *Processor) Execute(
	ctx context.Context,
	origin Origin,
	action Action,
	timestamp int64,
	actionID ids.ID,
) (*Result, error) {
	p.l.Lock()
	defer p.l.Unlock()

	r := p.ruleFactory.GetRules(timestamp)
	start, end := action.ValidRange(r)
	if (start >= 0 && timestamp < start) || (end >= 0 && timestamp > end) {
		return nil, ErrActionNotValid
	}
	units, err := smath.Add(r.GetBaseComputeUnits(), action.ComputeUnits(r))
	if err != nil {
		return nil, err
	}
	fee, err := smath.Mul(units, r.GetUnitPrice())
	if err != nil {
		return nil, err
	}

	// An action that rejects [origin] declares no state keys, so nothing is
	// read from the store before the origin is classified.
	stateKeys := action.StateKeys(origin, actionID)
	storage := make(map[string][]byte, len(stateKeys))
	for key := range stateKeys {
		v, err := p.store.GetValue(ctx, []byte(key))
		if errors.Is(err, database.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		storage[key] = v
	}

	ts := tstate.New(len(stateKeys))
	tsv := ts.NewView(stateKeys, storage)
	output, err := action.Execute(ctx, r, tsv, timestamp, origin, actionID)
	if err != nil {
		// The view is discarded without a commit, so every write the action
		// performed before failing is dropped.
		p.metrics.opsReverted.Inc()
		p.log.Debug("operation reverted",
			zap.Uint8("action", action.GetTypeID()),
			zap.Stringer("actionID", actionID),
			zap.Error(err),
		)
		return &Result{
			Success: false,
			Error:   utils.ErrBytes(err),
			Units:   units,
			Fee:     fee,
		}, nil
	}
	tsv.Commit()

	for key, v := range ts.ChangedKeys() {
		if v.IsNothing() {
			if err := p.store.Remove(ctx, []byte(key)); err != nil {
				return nil, err
			}
		} else {
			if err := p.store.Insert(ctx, []byte(key), v.Value()); err != nil {
				return nil, err
			}
		}
		p.metrics.stateChanges.Inc()
	}

	if err := event.NotifyAll(ctx, output, p.subs...); err != nil {
		return nil, err
	}

	p.metrics.opsExecuted.Inc()
	p.metrics.unitsConsumed.Add(float64(units))
	p.log.Debug("operation executed",
		zap.Uint8("action", action.GetTypeID()),
		zap.Stringer("actionID", actionID),
		zap.Uint64("units", units),
	)
	return &Result{
		Success: true,
		Output:  output,
		Units:   units,
		Fee:     fee,
	}, nil
}
