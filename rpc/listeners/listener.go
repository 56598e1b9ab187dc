// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"net"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/ofundd/fault"
)

// Listener - a set of started sockets
type Listener interface {
	Serve() error
	Addresses() []net.Addr
	Close() error
}

// convert listen strings to network names, "*:PORT" becomes "[::]:PORT"
func parseListenAddress(addrs []string, log *logger.L) ([]string, []string, error) {
	networks := make([]string, len(addrs))
	rewritten := make([]string, len(addrs))
	for i, listen := range addrs {
		if "" == listen {
			log.Error("empty listen address")
			return nil, nil, fault.ErrInvalidIPAddress
		}
		rewritten[i] = listen

		host, port, err := net.SplitHostPort(listen)
		if nil != err {
			log.Errorf("listen: %q  error: %s", listen, err)
			return nil, nil, fault.ErrInvalidIPAddress
		}

		switch {
		case "*" == host:
			// on the assumption that this will listen on tcp4 and tcp6
			rewritten[i] = "[::]:" + port
			host = "::"
			networks[i] = "tcp"
		case strings.Contains(host, ":"):
			networks[i] = "tcp6"
		default:
			networks[i] = "tcp4"
		}

		if ip := net.ParseIP(host); nil == ip {
			log.Errorf("listen: %q  error: %s", listen, fault.ErrInvalidIPAddress)
			return nil, nil, fault.ErrInvalidIPAddress
		}
	}

	return networks, rewritten, nil
}
