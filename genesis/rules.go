// Copyright (C) 2024, CounterVM. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"math"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/countervm/countervm/chain"
)

var (
	_ chain.Rules       = (*Rules)(nil)
	_ chain.RuleFactory = (*ImmutableRuleFactory)(nil)
)

type Rules struct {
	// NetworkID and ChainID are populated by the host at load time.
	NetworkID uint32 `json:"networkID"`
	ChainID   ids.ID `json:"chainID"`

	// CounterMaxValue is the configured upper bound of the counter. It is
	// immutable for the life of the deployment.
	CounterMaxValue uint32 `json:"counterMaxValue"`

	BaseComputeUnits uint64 `json:"baseComputeUnits"`
	UnitPrice        uint64 `json:"unitPrice"`
}

func NewDefaultRules() *Rules {
	return &Rules{
		CounterMaxValue:  math.MaxUint32,
		BaseComputeUnits: 1,
		UnitPrice:        1,
	}
}

func (r *Rules) GetNetworkID() uint32 {
	return r.NetworkID
}

func (r *Rules) GetChainID() ids.ID {
	return r.ChainID
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

// ImmutableRuleFactory returns the same rules regardless of timestamp.
type ImmutableRuleFactory struct {
	Rules chain.Rules
}

func (i *ImmutableRuleFactory) GetRules(int64) chain.Rules {
	return i.Rules
}
