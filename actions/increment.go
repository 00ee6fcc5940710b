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
	smath "github.com/ava-labs/avalanchego/utils/math"
)

const IncrementComputeUnits = 2

var _ chain.Action = (*Increment)(nil)

// Increment adds [Amount] to the counter on behalf of a signed account and
// records one interaction for that account.
type Increment struct {
	// Amount is added to the counter.
	Amount uint32 `serialize:"true" json:"amount"`
}

func (*Increment) GetTypeID() uint8 {
	return mconsts.IncrementID
}

func (*Increment) StateKeys(origin chain.Origin, _ ids.ID) state.Keys {
	who, err := origin.EnsureSigned()
	if err != nil {
		return state.Keys{}
	}
	return state.Keys{
		string(storage.CounterKey()):        state.All,
		string(storage.InteractionKey(who)): state.All,
	}
}

func (i *Increment) Execute(
	ctx context.Context,
	r chain.Rules,
	mu state.Mutable,
	_ int64,
	origin chain.Origin,
	_ ids.ID,
) (codec.Typed, error) {
	who, err := origin.EnsureSigned()
	if err != nil {
		return nil, err
	}

	current, err := storage.GetCounterValue(ctx, mu)
	if err != nil {
		return nil, err
	}
	newValue, err := smath.Add(current, i.Amount)
	if err != nil {
		return nil, ErrCounterOverflow
	}
	if newValue > r.GetCounterMaxValue() {
		return nil, ErrCounterValueExceedsMax
	}

	// The counter is written before the interaction count, mirroring the
	// transition order. If the interaction update fails the caller discards
	// both writes.
	if err := storage.SetCounterValue(ctx, mu, newValue); err != nil {
		return nil, err
	}
	if _, err := storage.AddInteraction(ctx, mu, who); err != nil {
		return nil, err
	}

	return &CounterIncremented{
		CounterValue:      newValue,
		Who:               who,
		IncrementedAmount: i.Amount,
	}, nil
}

func (*Increment) ComputeUnits(chain.Rules) uint64 {
	return IncrementComputeUnits
}

func (*Increment) ValidRange(chain.Rules) (int64, int64) {
	// Returning -1, -1 means that the action is always valid.
	return -1, -1
}
