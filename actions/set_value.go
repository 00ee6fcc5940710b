// Copyright (C) 2024, CounterVM. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/countervm/countervm/chain"
	"github.com/countervm/countervm/codec"
	"github.com/countervm/countervm/state"
	"github.com/countervm/countervm/storage"

	mconsts "github.com/countervm/countervm/consts"
)

const SetValueComputeUnits = 1

var _ chain.Action = (*SetValue)(nil)

// SetValue overwrites the counter value. Only the Root origin may call it;
// it is never attributed to a per-account interaction count.
type SetValue struct {
	// CounterValue is the new value of the counter.
	CounterValue uint32 `serialize:"true" json:"counter_value"`
}

func (*SetValue) GetTypeID() uint8 {
	return mconsts.SetValueID
}

func (*SetValue) StateKeys(origin chain.Origin, _ ids.ID) state.Keys {
	if origin.Kind() != chain.Root {
		return state.Keys{}
	}
	return state.Keys{
		string(storage.CounterKey()): state.All,
	}
}

func (s *SetValue) Execute(
	ctx context.Context,
	r chain.Rules,
	mu state.Mutable,
	_ int64,
	origin chain.Origin,
	_ ids.ID,
) (codec.Typed, error) {
	if err := origin.EnsureRoot(); err != nil {
		return nil, err
	}
	if s.CounterValue > r.GetCounterMaxValue() {
		return nil, ErrCounterValueExceedsMax
	}
	if err := storage.SetCounterValue(ctx, mu, s.CounterValue); err != nil {
		return nil, err
	}

	return &CounterValueSet{CounterValue: s.CounterValue}, nil
}

func (*SetValue) ComputeUnits(chain.Rules) uint64 {
	return SetValueComputeUnits
}

func (*SetValue) ValidRange(chain.Rules) (int64, int64) {
	// Returning -1, -1 means that the action is always valid.
	return -1, -1
}
