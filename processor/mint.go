// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"fmt"

	"github.com/bitmark-inc/ofundd/account"
	"github.com/bitmark-inc/ofundd/authority"
	"github.com/bitmark-inc/ofundd/fault"
	"github.com/bitmark-inc/ofundd/record"
	"github.com/bitmark-inc/ofundd/storage"
)

// InitializeMintAuthority - create the write once mint authority record
//
// either a new unit type is created with the derived signer as its
// authority, or an existing one must already name the derived signer
func (p *Processor) InitializeMintAuthority(caller account.Identity, req *InitializeMintAuthorityRequest) (*InitializeMintAuthorityReply, error) {
	reply := &InitializeMintAuthorityReply{}

	err := p.execute(OpInitializeMintAuthority, func(trx storage.Transaction) error {

		recordAddress, err := p.program.MintAuthority(req.Mint)
		if nil != err {
			return err
		}
		err = authority.Verify("mint authority", recordAddress, req.MintAuthority)
		if nil != err {
			return err
		}
		signer, err := p.program.MintSigner(req.Mint)
		if nil != err {
			return err
		}
		err = authority.Verify("mint signer", signer, req.MintSigner)
		if nil != err {
			return err
		}
		p.log.Debugf("mint authority: %s  signer: %s  bump: %d", recordAddress.Identity, signer.Identity, signer.Bump)

		if caller.IsZero() {
			return fault.ErrUnauthorized
		}

		m := &record.MintAuthority{
			Bump:        signer.Bump,
			Mint:        req.Mint,
			Admin:       caller,
			TokenName:   req.TokenName,
			TokenSymbol: req.TokenSymbol,
			TokenURI:    req.TokenURI,
			Initialized: true,
		}
		err = p.create(trx, recordAddress.Identity, m)
		if nil != err {
			return err
		}

		if req.ExistingMint {
			info, err := p.units.MintInfo(req.Mint)
			if nil != err {
				return err
			}
			if info.Authority != signer.Identity {
				return fmt.Errorf("mint: %s authority: %s: %w", req.Mint, info.Authority, fault.ErrUnauthorized)
			}
			if info.Decimals != p.decimals {
				return fmt.Errorf("mint: %s decimals: %d: %w", req.Mint, info.Decimals, fault.ErrInvalidDecimals)
			}
		} else {
			err = p.units.CreateMint(req.Mint, signer.Identity, p.decimals)
			if nil != err {
				return err
			}
		}

		reply.MintAuthority = recordAddress.Identity
		reply.MintAuthorityBump = recordAddress.Bump
		reply.MintSigner = signer.Identity
		reply.MintSignerBump = signer.Bump
		return nil
	})
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// MintTo - admin only creation of new units
func (p *Processor) MintTo(caller account.Identity, req *MintToRequest) (*MintToReply, error) {
	reply := &MintToReply{}

	err := p.execute(OpMintTo, func(trx storage.Transaction) error {

		recordAddress, err := p.program.MintAuthority(req.Mint)
		if nil != err {
			return err
		}
		err = authority.Verify("mint authority", recordAddress, req.MintAuthority)
		if nil != err {
			return err
		}

		m := &record.MintAuthority{}
		_, err = load(trx, recordAddress.Identity, m)
		if fault.IsErrNotFound(err) {
			return fmt.Errorf("mint: %s: %w", req.Mint, fault.ErrMintAuthorityNotInitialized)
		}
		if nil != err {
			return err
		}

		err = authority.RequireAdmin(caller, m.Admin)
		if nil != err {
			return err
		}
		if m.Mint != req.Mint {
			return fmt.Errorf("mint: %s: %w", req.Mint, fault.ErrUnauthorized)
		}
		if !m.Initialized {
			return fault.ErrMintAuthorityNotInitialized
		}
		if 0 == req.Amount {
			return fault.ErrInvalidAmount
		}

		proof, signer, err := p.program.MintCapability(req.Mint)
		if nil != err {
			return err
		}
		if signer.Bump != m.Bump {
			return fmt.Errorf("mint signer bump: %d: %w", m.Bump, fault.ErrUnauthorized)
		}

		err = p.units.Mint(req.Mint, req.Recipient, req.Amount, proof)
		if nil != err {
			return err
		}

		reply.Balance, err = p.units.Balance(req.Mint, req.Recipient)
		return err
	})
	if nil != err {
		return nil, err
	}
	return reply, nil
}
