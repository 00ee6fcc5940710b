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

const DecrementComputeUnits = 2

var _ chain.Action = (*Decrement)(nil)

// Decrement subtracts [Amount] from the counter on behalf of a signed
// account and records one interaction for that account. The counter can
// never go below zero.
type Decrement struct {
	// Amount is subtracted from the counter.
	Amount uint32 `serialize:"true" json:"amount"`
}

func (*Decrement) GetTypeID() uint8 {
	return mconsts.DecrementID
}

func (*Decrement) StateKeys(origin chain.Origin, _ ids.ID) state.Keys {
	who, err := origin.EnsureSigned()
	if err != nil {
		return state.Keys{}
	}
	return state.Keys{
		string(storage.CounterKey()):        state.All,
		string(storage.InteractionKey(who)): state.All,
	}
}

func (d *Decrement) Execute(
	ctx context.Context,
	_ chain.Rules,
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
	newValue, err := smath.Sub(current, d.Amount)
	if err != nil {
		return nil, ErrCounterValueBelowZero
	}

	if err := storage.SetCounterValue(ctx, mu, newValue); err != nil {
		return nil, err
	}
	if _, err := storage.AddInteraction(ctx, mu, who); err != nil {
		return nil, err
	}

	return &CounterDecremented{
		CounterValue:      newValue,
		Who:               who,
		DecrementedAmount: d.Amount,
	}, nil
}

func (*Decrement) ComputeUnits(chain.Rules) uint64 {
	return DecrementComputeUnits
}

func (*Decrement) ValidRange(chain.Rules) (int64, int64) {
	// Returning -1, -1 means that the action is always valid.
	return -1, -1
}
