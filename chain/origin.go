// Copyright (C) 2024, CounterVM. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "github.com/countervm/countervm/codec"

// OriginKind is the authorization level the host resolved for a call.
type OriginKind uint8

const (
	// None is an origin that could not be attributed to any authorization
	// level. Every operation rejects it.
	None OriginKind = iota
	// Root is the privileged origin. It is not attributable to an account.
	Root
	// Signed is an ordinary account origin.
	Signed
)

// Origin is the resolved credential attached to an incoming operation. The
// host classifies raw caller credentials before the state machine runs;
// operations only ever see this tagged form.
type Origin struct {
	kind  OriginKind
	actor codec.Address
}

func RootOrigin() Origin {
	return Origin{kind: Root}
}

func SignedOrigin(actor codec.Address) Origin {
	return Origin{kind: Signed, actor: actor}
}

func NoneOrigin() Origin {
	return Origin{kind: None}
}

func (o Origin) Kind() OriginKind {
	return o.kind
}

// EnsureRoot returns ErrUnauthorized unless the origin is Root.
func (o Origin) EnsureRoot() error {
	if o.kind != Root {
		return ErrUnauthorized
	}
	return nil
}

// EnsureSigned returns the signing account, or ErrUnauthorized if the
// origin is not an ordinary signed account.
func (o Origin) EnsureSigned() (codec.Address, error) {
	if o.kind != Signed {
		return codec.EmptyAddress, ErrUnauthorized
	}
	return o.actor, nil
}
