// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/ofundd/fault"
)

const (
	httpLogName      = "metrics"
	readWriteTimeout = 10 * time.Second
)

// HTTPConfiguration - configuration file data for the metrics server
type HTTPConfiguration struct {
	Listen      []string `gluamapper:"listen" json:"listen"`
	Certificate string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey  string   `gluamapper:"private_key" json:"private_key"`
}

type httpListener struct {
	sync.Mutex

	log             *logger.L
	handler         http.Handler
	tlsConfig       *tls.Config
	ipType          []string
	listenIPAndPort []string
	servers         []*http.Server
	addresses       []net.Addr
}

// NewHTTP - validate configuration and prepare an HTTP listener
func NewHTTP(configuration *HTTPConfiguration, log *logger.L, handler http.Handler, tlsConfig *tls.Config) (Listener, error) {
	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", httpLogName)
		return nil, fault.ErrMissingParameters
	}

	ipType, listen, err := parseListenAddress(configuration.Listen, log)
	if nil != err {
		return nil, err
	}

	return &httpListener{
		log:             log,
		handler:         handler,
		tlsConfig:       tlsConfig,
		ipType:          ipType,
		listenIPAndPort: listen,
	}, nil
}

func (h *httpListener) Serve() error {
	h.Lock()
	defer h.Unlock()

	for i, listen := range h.listenIPAndPort {
		h.log.Infof("starting server: %s on: %q", httpLogName, listen)

		l, err := net.Listen(h.ipType[i], listen)
		if nil != err {
			h.log.Errorf("%s listen error: %s", httpLogName, err)
			return err
		}
		if nil != h.tlsConfig {
			cfg := h.tlsConfig.Clone()
			cfg.NextProtos = []string{"http/1.1"}
			l = tls.NewListener(l, cfg)
		}

		s := &http.Server{
			Handler:        h.handler,
			ReadTimeout:    readWriteTimeout,
			WriteTimeout:   readWriteTimeout,
			MaxHeaderBytes: 1 << 20,
		}
		h.servers = append(h.servers, s)
		h.addresses = append(h.addresses, l.Addr())

		go func() {
			err := s.Serve(l)
			if http.ErrServerClosed != err {
				h.log.Errorf("%s terminated: %s", httpLogName, err)
			}
		}()
	}

	return nil
}

func (h *httpListener) Addresses() []net.Addr {
	h.Lock()
	defer h.Unlock()
	return append([]net.Addr(nil), h.addresses...)
}

func (h *httpListener) Close() error {
	h.Lock()
	defer h.Unlock()

	var first error
	for _, s := range h.servers {
		if err := s.Close(); nil != err && nil == first {
			first = err
		}
	}
	h.servers = nil
	h.addresses = nil
	return first
}
