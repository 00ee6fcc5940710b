// Copyright (C) 2024, CounterVM. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

// Typed is implemented by any object with a registered type ID. Action
// outputs (which double as audit events) are identified by the type ID of
// the action that produced them.
type Typed interface {
	GetTypeID() uint8
}
