// Copyright (C) 2024, CounterVM. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/countervm/countervm/codec"
	"github.com/countervm/countervm/state"
)

// Rules are the configuration constants fixed at deployment time.
type Rules interface {
	// Should almost always be constant (unless there is a fork of
	// a live network)
	GetNetworkID() uint32
	GetChainID() ids.ID

	// GetCounterMaxValue is the upper bound the counter value may never
	// exceed.
	GetCounterMaxValue() uint32

	GetBaseComputeUnits() uint64
	GetUnitPrice() uint64

	FetchCustom(string) (any, bool)
}

type RuleFactory interface {
	GetRules(t int64) Rules
}

// Action is a single state transition. Execute either returns a typed
// output (which doubles as the audit event for the transition) or an error,
// in which case the processor discards every write the action performed.
type Action interface {
	// GetTypeID uniquely identifies each supported action.
	GetTypeID() uint8

	// StateKeys is a full enumeration of all state keys that could be
	// touched during execution of this action by [origin]. An action that
	// rejects [origin] must return an empty set so that no storage is read
	// before the origin is classified.
	StateKeys(origin Origin, actionID ids.ID) state.Keys

	// Execute applies the transition. Anything written to [mu] is buffered
	// by the caller and only persists if Execute returns a nil error.
	Execute(
		ctx context.Context,
		r Rules,
		mu state.Mutable,
		timestamp int64,
		origin Origin,
		actionID ids.ID,
	) (codec.Typed, error)

	// ComputeUnits is the fixed resource cost of executing this action. It
	// has no effect on the state transition itself.
	ComputeUnits(Rules) uint64

	// ValidRange is the timestamp range during which the action is
	// considered valid.
	//
	// -1 means no start/end
	ValidRange(Rules) (start int64, end int64)
}
