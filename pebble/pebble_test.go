// Copyright (C) 2024, CounterVM. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/stretchr/testify/require"
)

func TestDatabaseRoundTrip(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	db, _, err := New(t.TempDir(), NewDefaultConfig())
	require.NoError(err)
	defer func() {
		require.NoError(db.Close())
	}()

	key := []byte("key")
	_, err = db.GetValue(ctx, key)
	require.ErrorIs(err, database.ErrNotFound)

	require.NoError(db.Insert(ctx, key, []byte("value")))
	v, err := db.GetValue(ctx, key)
	require.NoError(err)
	require.Equal([]byte("value"), v)

	require.NoError(db.Insert(ctx, key, []byte("value2")))
	v, err = db.GetValue(ctx, key)
	require.NoError(err)
	require.Equal([]byte("value2"), v)

	require.NoError(db.Remove(ctx, key))
	_, err = db.GetValue(ctx, key)
	require.ErrorIs(err, database.ErrNotFound)
}

func TestDatabasePersistsAcrossReopen(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	dir := t.TempDir()

	db, _, err := New(dir, NewDefaultConfig())
	require.NoError(err)
	require.NoError(db.Insert(ctx, []byte("key"), []byte("value")))
	require.NoError(db.Close())

	db, _, err = New(dir, NewDefaultConfig())
	require.NoError(err)
	v, err := db.GetValue(ctx, []byte("key"))
	require.NoError(err)
	require.Equal([]byte("value"), v)
	require.NoError(db.Close())
}
