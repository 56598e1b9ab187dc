// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package processor - applies ledger requests
//
// each request is exclusive and all or nothing: every write is staged
// in the single storage transaction and only committed after every
// check, every computation and the value movement have succeeded
package processor

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/ofundd/authority"
	"github.com/bitmark-inc/ofundd/capacity"
	"github.com/bitmark-inc/ofundd/fault"
	"github.com/bitmark-inc/ofundd/ledger"
	"github.com/bitmark-inc/ofundd/project"
	"github.com/bitmark-inc/ofundd/storage"
	"github.com/bitmark-inc/ofundd/tier"
	"github.com/bitmark-inc/ofundd/tokenledger"
)

// DefaultInitialGrant - whole units given to each new user
const DefaultInitialGrant = 100_000

// Settings - fixed for the life of the processor
type Settings struct {
	Program        authority.Program
	Decimals       uint8
	InitialGrant   uint64 // whole units
	Policy         capacity.Policy
	AutoReallocate bool
	StrictLookup   bool
	Rules          project.Rules
	Clock          func() time.Time
}

// Processor - the request handler
type Processor struct {
	sync.RWMutex

	log         *logger.L
	program     authority.Program
	decimals    uint8
	grant       uint64 // smallest units
	policy      capacity.Policy
	autoRealloc bool
	classifier  tier.Classifier
	recorder    *ledger.Recorder
	registry    *project.Registry
	units       tokenledger.Service
	clock       func() time.Time
	metrics     *Metrics
}

// New - create a processor
func New(log *logger.L, settings Settings, units tokenledger.Service, metrics *Metrics) (*Processor, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if nil == units {
		return nil, fault.ErrNotInitialised
	}
	if settings.Program.ID().IsZero() {
		return nil, fault.ErrInvalidIdentity
	}

	classifier, err := tier.New(settings.Decimals)
	if nil != err {
		return nil, err
	}

	unit := tier.Unit(settings.Decimals)
	if 0 == settings.InitialGrant {
		settings.InitialGrant = DefaultInitialGrant
	}
	grant := settings.InitialGrant * unit
	if grant/unit != settings.InitialGrant {
		return nil, fault.ErrNumericalOverflow
	}

	if capacity.Capped == settings.Policy.Mode && settings.Policy.Cap <= 0 {
		return nil, fault.ErrInvalidCapacityPolicy
	}

	registry, err := project.New(settings.Rules)
	if nil != err {
		return nil, err
	}

	clock := settings.Clock
	if nil == clock {
		clock = time.Now
	}

	if nil == metrics {
		metrics = NewMetrics()
	}

	log.Infof("program: %s  decimals: %d  grant: %d  policy: %s", settings.Program.ID(), settings.Decimals, grant, settings.Policy)

	return &Processor{
		log:         log,
		program:     settings.Program,
		decimals:    settings.Decimals,
		grant:       grant,
		policy:      settings.Policy,
		autoRealloc: settings.AutoReallocate,
		classifier:  classifier,
		recorder:    ledger.New(settings.Policy, classifier, settings.StrictLookup),
		registry:    registry,
		units:       units,
		clock:       clock,
		metrics:     metrics,
	}, nil
}

// Program - the program identity addresses are derived under
func (p *Processor) Program() authority.Program {
	return p.program
}

// Metrics - the request counters
func (p *Processor) Metrics() *Metrics {
	return p.metrics
}

// run a mutating request in its own transaction
func (p *Processor) execute(operation string, f func(trx storage.Transaction) error) error {
	p.Lock()
	defer p.Unlock()

	start := time.Now()
	p.log.Infof("%s: start", operation)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		p.reject(operation, start, err)
		return err
	}

	err = f(trx)
	if nil != err {
		trx.Abort()
		p.reject(operation, start, err)
		return err
	}

	// a failed write after the value movement cannot be undone
	err = trx.Commit()
	logger.PanicIfError("processor: commit", err)

	p.metrics.observe(operation, codeOK, start)
	return nil
}

// run a read only request against committed data
func (p *Processor) query(operation string, f func() error) error {
	p.RLock()
	defer p.RUnlock()

	start := time.Now()
	p.log.Debugf("%s: query", operation)

	err := f()
	if nil != err {
		p.reject(operation, start, err)
		return err
	}
	p.metrics.observe(operation, codeOK, start)
	return nil
}

func (p *Processor) reject(operation string, start time.Time, err error) {
	code := fault.Code(err)
	p.log.Warnf("%s: rejected: %s: %s", operation, code, err)
	p.metrics.observe(operation, code, start)
}
