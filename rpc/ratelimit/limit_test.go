// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/ofundd/fault"
	"github.com/bitmark-inc/ofundd/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	assert.Nil(t, ratelimit.Limit(rate.NewLimiter(rate.Inf, 1)))
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.Limit(rate.NewLimiter(0, 0)))
}

func TestLimitN(t *testing.T) {
	limiter := rate.NewLimiter(rate.Inf, 10)

	assert.Nil(t, ratelimit.LimitN(limiter, 5, 10))
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(limiter, 0, 10))
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(limiter, 11, 10))

	assert.Equal(t, fault.ErrRateLimiting, ratelimit.LimitN(rate.NewLimiter(1, 2), 3, 10), "beyond burst")
}

func TestNew(t *testing.T) {
	limiter := ratelimit.New()
	assert.Equal(t, rate.Limit(ratelimit.RequestsPerSecond), limiter.Limit())
	assert.Equal(t, ratelimit.Burst, limiter.Burst())

	assert.Nil(t, ratelimit.LimitN(limiter, ratelimit.Burst, ratelimit.Burst), "whole burst")
}
