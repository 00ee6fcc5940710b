// Copyright (C) 2024, CounterVM. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "github.com/countervm/countervm/codec"

// Result describes the outcome of a single executed operation. A failed
// operation carries the error bytes and nothing else: no output, no event,
// no state change.
type Result struct {
	Success bool
	Error   []byte

	// Output is the typed payload emitted to event subscribers on success.
	Output codec.Typed

	// Units and Fee are reported for scheduling/fee purposes only.
	Units uint64
	Fee   uint64
}
