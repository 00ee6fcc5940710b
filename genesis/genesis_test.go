// Copyright (C) 2024, CounterVM. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis_test

import (
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/countervm/countervm/chain/chaintest"
	"github.com/countervm/countervm/genesis"
	"github.com/countervm/countervm/storage"
)

func TestLoadGenesis(t *testing.T) {
	require := require.New(t)
	chainID := ids.GenerateTestID()

	b := []byte(`{
		"initialCounterValue": 5,
		"initialRules": {
			"counterMaxValue": 100,
			"baseComputeUnits": 1,
			"unitPrice": 2
		}
	}`)
	g, ruleFactory, err := genesis.LoadGenesis(b, 1337, chainID)
	require.NoError(err)

	r := ruleFactory.GetRules(0)
	require.Equal(uint32(1337), r.GetNetworkID())
	require.Equal(chainID, r.GetChainID())
	require.Equal(uint32(100), r.GetCounterMaxValue())
	require.Equal(uint64(1), r.GetBaseComputeUnits())
	require.Equal(uint64(2), r.GetUnitPrice())

	store := chaintest.NewInMemoryStore()
	require.NoError(g.InitializeState(context.Background(), store))
	value, err := storage.GetCounterValue(context.Background(), store)
	require.NoError(err)
	require.Equal(uint32(5), value)
}

func TestLoadGenesisDefaultsRules(t *testing.T) {
	require := require.New(t)

	g, ruleFactory, err := genesis.LoadGenesis([]byte(`{}`), 1, ids.Empty)
	require.NoError(err)
	require.Nil(g.InitialCounterValue)
	require.Equal(uint32(math.MaxUint32), ruleFactory.GetRules(0).GetCounterMaxValue())

	// No seed value: the counter stays absent (reads as 0).
	store := chaintest.NewInMemoryStore()
	require.NoError(g.InitializeState(context.Background(), store))
	require.Empty(store.Storage)
}

func TestInitializeStateRejectsValueAboveMax(t *testing.T) {
	require := require.New(t)

	b := []byte(`{
		"initialCounterValue": 101,
		"initialRules": {"counterMaxValue": 100}
	}`)
	g, _, err := genesis.LoadGenesis(b, 1, ids.Empty)
	require.NoError(err)

	store := chaintest.NewInMemoryStore()
	err = g.InitializeState(context.Background(), store)
	require.ErrorIs(err, genesis.ErrInitialValueExceedsMax)
	require.Empty(store.Storage)
}

func TestGenesisRoundTrip(t *testing.T) {
	require := require.New(t)

	g := genesis.NewDefaultGenesis()
	seed := uint32(7)
	g.InitialCounterValue = &seed
	g.Rules.CounterMaxValue = 50

	b, err := json.Marshal(g)
	require.NoError(err)
	parsed, _, err := genesis.LoadGenesis(b, 1, ids.Empty)
	require.NoError(err)
	require.Equal(g.InitialCounterValue, parsed.InitialCounterValue)
	require.Equal(g.Rules.CounterMaxValue, parsed.Rules.CounterMaxValue)
}
