// Copyright (C) 2024, CounterVM. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import "errors"

var (
	ErrInvalidStoredValue      = errors.New("invalid stored value")
	ErrUserInteractionOverflow = errors.New("user interaction overflow")
)
