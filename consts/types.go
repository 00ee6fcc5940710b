// Copyright (C) 2024, CounterVM. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

// Note: IDs are explicitly assigned to avoid accidental remapping.
const (
	SetValueID  uint8 = 0
	IncrementID uint8 = 1
	DecrementID uint8 = 2
)
