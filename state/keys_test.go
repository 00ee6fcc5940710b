// Copyright (C) 2024, CounterVM. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPermissionsHas(t *testing.T) {
	require := require.New(t)

	require.True(Read.Has(Read))
	require.False(Read.Has(Write))
	require.True(Write.Has(Read))
	require.False(Write.Has(Allocate))
	require.True(All.Has(Read))
	require.True(All.Has(Allocate))
	require.True(All.Has(Write))
	require.False(None.Has(Read))
	require.True(Read.Has(None))
}

func TestKeysAddUnionsPermissions(t *testing.T) {
	require := require.New(t)

	keys := make(Keys)
	keys.Add("key", Read)
	keys.Add("key", Write)
	require.True(keys["key"].Has(Read))
	require.True(keys["key"].Has(Write))
	require.False(keys["key"].Has(Allocate))
}
