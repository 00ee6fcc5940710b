// Copyright (C) 2024, CounterVM. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"context"
	"errors"
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/cockroachdb/pebble"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/countervm/countervm/state"
)

var _ state.Mutable = (*Database)(nil)

type Config struct {
	CacheSize    int // bytes
	BytesPerSync int // bytes
	Sync         bool
}

func NewDefaultConfig() Config {
	return Config{
		CacheSize:    64 * 1024 * 1024,
		BytesPerSync: 1024 * 1024,
		Sync:         true,
	}
}

// Database is a pebble-backed implementation of [state.Mutable], used as
// the durable backing store of the processor. Absent keys are reported with
// [database.ErrNotFound] so callers never need to know which store they are
// running against.
type Database struct {
	db      *pebble.DB
	metrics *metrics
	sync    bool
}

func New(dir string, cfg Config) (*Database, *prometheus.Registry, error) {
	registry, metrics, err := newMetrics()
	if err != nil {
		return nil, nil, err
	}
	opts := &pebble.Options{
		Cache:        pebble.NewCache(int64(cfg.CacheSize)),
		BytesPerSync: cfg.BytesPerSync,
	}
	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, nil, err
	}
	return &Database{db: db, metrics: metrics, sync: cfg.Sync}, registry, nil
}

func (db *Database) GetValue(_ context.Context, key []byte) ([]byte, error) {
	start := time.Now()
	db.metrics.gets.Inc()
	v, closer, err := db.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	// [v] is only valid until the closer is closed.
	value := make([]byte, len(v))
	copy(value, v)
	if err := closer.Close(); err != nil {
		return nil, err
	}
	db.metrics.getLatency.Observe(float64(time.Since(start)))
	return value, nil
}

func (db *Database) Insert(_ context.Context, key []byte, value []byte) error {
	db.metrics.puts.Inc()
	return db.db.Set(key, value, db.writeOpt())
}

func (db *Database) Remove(_ context.Context, key []byte) error {
	db.metrics.deletes.Inc()
	return db.db.Delete(key, db.writeOpt())
}

func (db *Database) Close() error {
	return db.db.Close()
}

func (db *Database) writeOpt() *pebble.WriteOptions {
	if db.sync {
		return pebble.Sync
	}
	return pebble.NoSync
}
