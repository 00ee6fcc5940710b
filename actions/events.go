// Copyright (C) 2024, CounterVM. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"github.com/countervm/countervm/codec"

	mconsts "github.com/countervm/countervm/consts"
)

var (
	_ codec.Typed = (*CounterValueSet)(nil)
	_ codec.Typed = (*CounterIncremented)(nil)
	_ codec.Typed = (*CounterDecremented)(nil)
)

// CounterValueSet is emitted when the privileged origin overwrote the
// counter value.
type CounterValueSet struct {
	CounterValue uint32 `serialize:"true" json:"counter_value"`
}

func (*CounterValueSet) GetTypeID() uint8 {
	return mconsts.SetValueID
}

// CounterIncremented is emitted when an account incremented the counter.
type CounterIncremented struct {
	CounterValue      uint32        `serialize:"true" json:"counter_value"`
	Who               codec.Address `serialize:"true" json:"who"`
	IncrementedAmount uint32        `serialize:"true" json:"incremented_amount"`
}

func (*CounterIncremented) GetTypeID() uint8 {
	return mconsts.IncrementID
}

// CounterDecremented is emitted when an account decremented the counter.
type CounterDecremented struct {
	CounterValue      uint32        `serialize:"true" json:"counter_value"`
	Who               codec.Address `serialize:"true" json:"who"`
	DecrementedAmount uint32        `serialize:"true" json:"decremented_amount"`
}

func (*CounterDecremented) GetTypeID() uint8 {
	return mconsts.DecrementID
}
