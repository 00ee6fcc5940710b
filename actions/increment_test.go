// Copyright (C) 2024, CounterVM. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/countervm/countervm/chain"
	"github.com/countervm/countervm/chain/chaintest"
	"github.com/countervm/countervm/state"
	"github.com/countervm/countervm/storage"
	"github.com/countervm/countervm/tstate"
)

func TestIncrementAction(t *testing.T) {
	ctx := context.TODO()
	rules := chaintest.NewRules(100)

	tests := []chaintest.ActionTest{
		{
			Name:        "RootOriginIsRejected",
			Action:      &Increment{Amount: 1},
			Rules:       rules,
			State:       chaintest.NewInMemoryStore(),
			Origin:      chain.RootOrigin(),
			ExpectedErr: chain.ErrUnauthorized,
		},
		{
			Name:        "NoneOriginIsRejected",
			Action:      &Increment{Amount: 1},
			Rules:       rules,
			State:       chaintest.NewInMemoryStore(),
			Origin:      chain.NoneOrigin(),
			ExpectedErr: chain.ErrUnauthorized,
		},
		{
			Name:        "OutOfScopeKeyIsRejected",
			Action:      &Increment{Amount: 1},
			Rules:       rules,
			State:       tstate.New(1).NewView(state.Keys{}, map[string][]byte{}),
			Origin:      chain.SignedOrigin(alice),
			ExpectedErr: tstate.ErrInvalidKeyOrPermission,
		},
		{
			Name:           "IncrementAbsentCounter",
			Action:         &Increment{Amount: 30},
			Rules:          rules,
			State:          chaintest.NewInMemoryStore(),
			Origin:         chain.SignedOrigin(alice),
			ExpectedOutput: &CounterIncremented{CounterValue: 30, Who: alice, IncrementedAmount: 30},
			Assertion: func(ctx context.Context, t *testing.T, mu state.Mutable) {
				require := require.New(t)
				value, err := storage.GetCounterValue(ctx, mu)
				require.NoError(err)
				require.Equal(uint32(30), value)
				interactions, err := storage.GetInteractions(ctx, mu, alice)
				require.NoError(err)
				require.Equal(uint32(1), interactions)
			},
		},
		{
			Name:   "IncrementExistingCounter",
			Action: &Increment{Amount: 30},
			Rules:  rules,
			State: func() state.Mutable {
				store := chaintest.NewInMemoryStore()
				require.NoError(t, storage.SetCounterValue(ctx, store, 50))
				_, err := storage.AddInteraction(ctx, store, alice)
				require.NoError(t, err)
				return store
			}(),
			Origin:         chain.SignedOrigin(alice),
			ExpectedOutput: &CounterIncremented{CounterValue: 80, Who: alice, IncrementedAmount: 30},
			Assertion: func(ctx context.Context, t *testing.T, mu state.Mutable) {
				require := require.New(t)
				value, err := storage.GetCounterValue(ctx, mu)
				require.NoError(err)
				require.Equal(uint32(80), value)
				interactions, err := storage.GetInteractions(ctx, mu, alice)
				require.NoError(err)
				require.Equal(uint32(2), interactions)
			},
		},
		{
			Name:   "ValueAboveMaxIsRejected",
			Action: &Increment{Amount: 25},
			Rules:  rules,
			State: func() state.Mutable {
				store := chaintest.NewInMemoryStore()
				require.NoError(t, storage.SetCounterValue(ctx, store, 80))
				return store
			}(),
			Origin:      chain.SignedOrigin(bob),
			ExpectedErr: ErrCounterValueExceedsMax,
			Assertion: func(ctx context.Context, t *testing.T, mu state.Mutable) {
				require := require.New(t)
				value, err := storage.GetCounterValue(ctx, mu)
				require.NoError(err)
				require.Equal(uint32(80), value)
				interactions, err := storage.GetInteractions(ctx, mu, bob)
				require.NoError(err)
				require.Zero(interactions)
			},
		},
		{
			Name:   "AdditionOverflowIsRejected",
			Action: &Increment{Amount: 1},
			Rules:  chaintest.NewRules(math.MaxUint32),
			State: func() state.Mutable {
				store := chaintest.NewInMemoryStore()
				require.NoError(t, storage.SetCounterValue(ctx, store, math.MaxUint32))
				return store
			}(),
			Origin:      chain.SignedOrigin(alice),
			ExpectedErr: ErrCounterOverflow,
		},
		{
			Name:   "InteractionOverflowIsRejected",
			Action: &Increment{Amount: 1},
			Rules:  rules,
			State: func() state.Mutable {
				store := chaintest.NewInMemoryStore()
				require.NoError(t, store.Insert(
					ctx,
					storage.InteractionKey(alice),
					binary.BigEndian.AppendUint32(nil, math.MaxUint32),
				))
				return store
			}(),
			Origin:      chain.SignedOrigin(alice),
			ExpectedErr: storage.ErrUserInteractionOverflow,
		},
	}

	for _, test := range tests {
		test.Run(ctx, t)
	}
}
