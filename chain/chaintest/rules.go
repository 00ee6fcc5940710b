// Copyright (C) 2024, CounterVM. All rights reserved.
// See the file LICENSE for licensing terms.

package chaintest

import (
	"github.com/ava-labs/avalanchego/ids"

	"github.com/countervm/countervm/chain"
)

var (
	_ chain.Rules       = (*Rules)(nil)
	_ chain.RuleFactory = (*RuleFactory)(nil)
)

// RuleFactory returns the same test rules regardless of timestamp.
type RuleFactory struct {
	Rules chain.Rules
}

func (r *RuleFactory) GetRules(int64) chain.Rules {
	return r.Rules
}

// Rules is a trivial chain.Rules implementation for tests.
type Rules struct {
	CounterMaxValue  uint32
	BaseComputeUnits uint64
	UnitPrice        uint64
}

// NewRules returns test rules with the counter bounded by [counterMaxValue].
func NewRules(counterMaxValue uint32) *Rules {
	return &Rules{
		CounterMaxValue:  counterMaxValue,
		BaseComputeUnits: 1,
		UnitPrice:        1,
	}
}

func (*Rules) GetNetworkID() uint32 {
	return 0
}

func (*Rules) GetChainID() ids.ID {
	return ids.Empty
}

func (r *Rules) GetCounterMaxValue() uint32 {
	return r.CounterMaxValue
}

func (r *Rules) GetBaseComputeUnits() uint64 {
	return r.BaseComputeUnits
}

func (r *Rules) GetUnitPrice() uint64 {
	return r.UnitPrice
}

func (*Rules) FetchCustom(string) (any, bool) {
	return nil, false
}
