// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"fmt"

	"github.com/bitmark-inc/ofundd/fault"
	"github.com/bitmark-inc/ofundd/record"
	"github.com/bitmark-inc/ofundd/storage"
)

// GetRecord - decode the committed record at an address
func (p *Processor) GetRecord(req *GetRecordRequest) (*GetRecordReply, error) {
	reply := &GetRecordReply{}

	err := p.query(OpGetRecord, func() error {
		data, allocation := storage.CommittedAccount(req.Address)
		if nil == data {
			return fmt.Errorf("address: %s: %w", req.Address, fault.ErrAccountNotFound)
		}
		r, err := record.Packed(data).Unpack()
		if nil != err {
			return err
		}
		reply.Kind = r.Kind().String()
		reply.Allocation = allocation
		reply.Size = len(data)
		reply.Record = r
		return nil
	})
	if nil != err {
		return nil, err
	}
	return reply, nil
}
