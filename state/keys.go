// Copyright (C) 2024, CounterVM. All rights reserved.
// See the file LICENSE for licensing terms.

package state

const (
	Read     Permissions = 1
	Allocate             = 1<<1 | Read
	Write                = 1<<2 | Read

	None Permissions = 0
	All              = Read | Allocate | Write
)

// Permissions are all acceptable permission options for a state key.
type Permissions byte

// Keys maps a state key to the permissions an operation declared for it.
// Use Add (rather than direct assignment) so that repeated declarations of
// the same key union their permissions instead of overwriting them.
type Keys map[string]Permissions

func (k Keys) Add(name string, permission Permissions) {
	k[name] |= permission
}

// Has returns true if [p] has all the permissions that are contained in require
func (p Permissions) Has(require Permissions) bool {
	return require&^p == 0
}
