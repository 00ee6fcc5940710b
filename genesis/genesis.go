// Copyright (C) 2024, CounterVM. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/countervm/countervm/chain"
	"github.com/countervm/countervm/state"
	"github.com/countervm/countervm/storage"
)

var ErrInitialValueExceedsMax = errors.New("initial counter value exceeds maximum")

type Genesis struct {
	// InitialCounterValue optionally seeds the counter. When nil the
	// counter starts absent (read as 0).
	InitialCounterValue *uint32 `json:"initialCounterValue,omitempty"`

	Rules *Rules `json:"initialRules"`
}

func NewDefaultGenesis() *Genesis {
	return &Genesis{
		Rules: NewDefaultRules(),
	}
}

// InitializeState writes the genesis allocation directly to [mu]. It runs
// once, before any operation is processed.
func (g *Genesis) InitializeState(ctx context.Context, mu state.Mutable) error {
	if g.InitialCounterValue == nil {
		return nil
	}
	if *g.InitialCounterValue > g.Rules.CounterMaxValue {
		return ErrInitialValueExceedsMax
	}
	return storage.SetCounterValue(ctx, mu, *g.InitialCounterValue)
}

// LoadGenesis parses [genesisBytes] and returns the genesis together with a
// rule factory bound to [networkID]/[chainID].
func LoadGenesis(genesisBytes []byte, networkID uint32, chainID ids.ID) (*Genesis, chain.RuleFactory, error) {
	genesis := &Genesis{}
	if err := json.Unmarshal(genesisBytes, genesis); err != nil {
		return nil, nil, err
	}
	if genesis.Rules == nil {
		genesis.Rules = NewDefaultRules()
	}
	genesis.Rules.NetworkID = networkID
	genesis.Rules.ChainID = chainID

	return genesis, &ImmutableRuleFactory{genesis.Rules}, nil
}
