// Copyright (C) 2024, CounterVM. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "errors"

var (
	// ErrUnauthorized is returned when an operation's origin does not carry
	// the authorization level the operation requires (bad origin).
	ErrUnauthorized = errors.New("unauthorized origin")

	// ErrActionNotValid is returned when an action is executed outside the
	// timestamp range it declared via ValidRange.
	ErrActionNotValid = errors.New("action not valid at this time")
)
