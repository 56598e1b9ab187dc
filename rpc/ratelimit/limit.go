// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ratelimit - token buckets shared by the RPC handlers
//
// a signed ledger request costs one token, a page of stored
// addresses costs one token per address
package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/ofundd/fault"
)

// default bucket for each RPC handler
const (
	RequestsPerSecond = 200
	Burst             = 100
)

// New - a bucket with the default rate
func New() *rate.Limiter {
	return rate.NewLimiter(RequestsPerSecond, Burst)
}

// Limit - charge one request
func Limit(limiter *rate.Limiter) error {
	return take(limiter, 1)
}

// LimitN - charge a page of count entries
//
// a count outside 1..maximumCount still costs one token so that
// malformed requests are not free
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {
	if count <= 0 || count > maximumCount {
		if err := take(limiter, 1); nil != err {
			return err
		}
		return fault.ErrInvalidCount
	}
	return take(limiter, count)
}

// a reservation beyond the burst can never be met
func take(limiter *rate.Limiter, n int) error {
	r := limiter.ReserveN(time.Now(), n)
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}
