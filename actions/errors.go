// Copyright (C) 2024, CounterVM. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import "errors"

var (
	ErrCounterValueExceedsMax = errors.New("counter value exceeds maximum")
	ErrCounterValueBelowZero  = errors.New("counter value below zero")
	ErrCounterOverflow        = errors.New("counter overflow")
)
