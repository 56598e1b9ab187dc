// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/json"

	"github.com/bitmark-inc/ofundd/account"
	"github.com/bitmark-inc/ofundd/fault"
)

// Signed - caller identity and its signature over the request body
type Signed struct {
	Caller    account.Identity  `json:"caller"`
	Signature account.Signature `json:"signature"`
}

// Message - the bytes a caller signs: operation name, a colon and
// the JSON encoding of the request
func Message(operation string, body interface{}) ([]byte, error) {
	b, err := json.Marshal(body)
	if nil != err {
		return nil, err
	}
	message := make([]byte, 0, len(operation)+1+len(b))
	message = append(message, operation...)
	message = append(message, ':')
	return append(message, b...), nil
}

// Sign - produce the envelope for a request
func Sign(keyPair *account.KeyPair, operation string, body interface{}) (Signed, error) {
	message, err := Message(operation, body)
	if nil != err {
		return Signed{}, err
	}
	return Signed{
		Caller:    keyPair.Identity,
		Signature: keyPair.Sign(message),
	}, nil
}

// check the signature and return the authenticated caller
func (s Signed) verify(operation string, body interface{}) (account.Identity, error) {
	if s.Caller.IsZero() {
		return account.Identity{}, fault.ErrInvalidIdentity
	}
	message, err := Message(operation, body)
	if nil != err {
		return account.Identity{}, err
	}
	err = s.Caller.CheckSignature(message, s.Signature)
	if nil != err {
		return account.Identity{}, err
	}
	return s.Caller, nil
}
