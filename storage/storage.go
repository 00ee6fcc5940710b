// Copyright (C) 2024, CounterVM. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"
	"errors"

	"github.com/ava-labs/avalanchego/database"

	"github.com/countervm/countervm/codec"
	"github.com/countervm/countervm/consts"
	"github.com/countervm/countervm/state"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

// State
// 0x0/ (counter value)
// 0x1/ (user interactions)
//   -> [account] => interaction count

const (
	counterPrefix     byte = 0x0
	interactionPrefix byte = 0x1
)

var counterKey = []byte{counterPrefix}

// CounterKey returns the key of the counter value singleton.
func CounterKey() []byte {
	return counterKey
}

// InteractionKey returns the key of the interaction count of [addr].
func InteractionKey(addr codec.Address) []byte {
	k := make([]byte, consts.ByteLen+codec.AddressLen)
	k[0] = interactionPrefix
	copy(k[1:], addr[:])
	return k
}

// GetCounterValue returns the current counter value. An absent counter is
// treated as 0.
func GetCounterValue(ctx context.Context, im state.Immutable) (uint32, error) {
	v, _, err := innerGetValue(im.GetValue(ctx, CounterKey()))
	return v, err
}

// SetCounterValue overwrites the counter value singleton.
func SetCounterValue(ctx context.Context, mu state.Mutable, value uint32) error {
	return mu.Insert(ctx, CounterKey(), packUint32(value))
}

// GetInteractions returns the interaction count of [addr]. Accounts that
// never interacted have a count of 0.
func GetInteractions(ctx context.Context, im state.Immutable, addr codec.Address) (uint32, error) {
	v, _, err := innerGetValue(im.GetValue(ctx, InteractionKey(addr)))
	return v, err
}

// AddInteraction increments the interaction count of [addr] by 1 using
// checked addition and returns the new count.
func AddInteraction(ctx context.Context, mu state.Mutable, addr codec.Address) (uint32, error) {
	k := InteractionKey(addr)
	interactions, _, err := innerGetValue(mu.GetValue(ctx, k))
	if err != nil {
		return 0, err
	}
	newInteractions, err := smath.Add(interactions, 1)
	if err != nil {
		return 0, ErrUserInteractionOverflow
	}
	return newInteractions, mu.Insert(ctx, k, packUint32(newInteractions))
}

func innerGetValue(v []byte, err error) (uint32, bool, error) {
	if errors.Is(err, database.ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	val, err := parseUint32(v)
	if err != nil {
		return 0, false, err
	}
	return val, true, nil
}

func packUint32(v uint32) []byte {
	return binary.BigEndian.AppendUint32(nil, v)
}

func parseUint32(v []byte) (uint32, error) {
	if len(v) != consts.Uint32Len {
		return 0, ErrInvalidStoredValue
	}
	return binary.BigEndian.Uint32(v), nil
}
