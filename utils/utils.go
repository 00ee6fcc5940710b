// Copyright (C) 2024, CounterVM. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

func ErrBytes(err error) []byte {
	return []byte(err.Error())
}
