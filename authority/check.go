// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package authority

import (
	"fmt"

	"github.com/bitmark-inc/ofundd/account"
	"github.com/bitmark-inc/ofundd/fault"
)

// Verify - a supplied address must equal the derived one
func Verify(what string, derived Address, supplied account.Identity) error {
	if derived.Identity != supplied {
		return fmt.Errorf("%s address: %s: %w", what, supplied, fault.ErrUnauthorized)
	}
	return nil
}

// RequireOwner - the authenticated caller must be the declared owner
func RequireOwner(caller account.Identity, owner account.Identity) error {
	if caller.IsZero() || caller != owner {
		return fmt.Errorf("caller: %s is not owner: %w", caller, fault.ErrUnauthorized)
	}
	return nil
}

// RequireAdmin - the authenticated caller must be the declared admin
func RequireAdmin(caller account.Identity, admin account.Identity) error {
	if caller.IsZero() || caller != admin {
		return fmt.Errorf("caller: %s is not admin: %w", caller, fault.ErrUnauthorized)
	}
	return nil
}
