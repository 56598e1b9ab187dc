// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"fmt"

	"github.com/bitmark-inc/ofundd/fault"
)

type budget struct {
	value   string
	maximum int
}

// byte length, not rune count, is what occupies storage
func checkStrings(budgets ...budget) error {
	for _, b := range budgets {
		if len(b.value) > b.maximum {
			return fmt.Errorf("%d bytes > %d: %w", len(b.value), b.maximum, fault.ErrStringTooLong)
		}
	}
	return nil
}
