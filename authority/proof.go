// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package authority

import (
	"sync"

	"github.com/bitmark-inc/ofundd/account"
	"github.com/bitmark-inc/ofundd/fault"
)

// Proof - evidence that one identity approved one value movement
//
// a proof can be consumed exactly once and is never stored
type Proof interface {
	Consume() (account.Identity, error)
}

type oneShot struct {
	sync.Mutex
	signer account.Identity
	used   bool
}

func (o *oneShot) Consume() (account.Identity, error) {
	o.Lock()
	defer o.Unlock()

	if o.used {
		return account.Zero, fault.ErrProofAlreadyUsed
	}
	o.used = true
	return o.signer, nil
}

// MintCapability - signing capability for the derived mint authority
func (p Program) MintCapability(mint account.Identity) (Proof, Address, error) {
	signer, err := p.MintSigner(mint)
	if nil != err {
		return nil, Address{}, err
	}
	return &oneShot{signer: signer.Identity}, signer, nil
}

// SignerProof - approval by an already authenticated caller
func SignerProof(caller account.Identity) (Proof, error) {
	if caller.IsZero() {
		return nil, fault.ErrInvalidProof
	}
	return &oneShot{signer: caller}, nil
}
