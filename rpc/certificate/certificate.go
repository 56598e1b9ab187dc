// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"
	"os"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/ofundd/fault"
)

// Get - load a PEM certificate and key pair from files and return
// the TLS configuration with the certificate fingerprint
//
// both names empty means plain TCP: the configuration is nil
func Get(log *logger.L, name, certificateFile, keyFile string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	if "" == certificateFile && "" == keyFile {
		log.Warnf("%s: no certificate, TLS disabled", name)
		return nil, fin, nil
	}
	if "" == certificateFile || "" == keyFile {
		log.Errorf("%s: certificate and private key must both be set", name)
		return nil, fin, fault.ErrMissingParameters
	}

	certificate, err := os.ReadFile(certificateFile)
	if nil != err {
		log.Errorf("%s: read certificate: %s", name, err)
		return nil, fin, err
	}
	key, err := os.ReadFile(keyFile)
	if nil != err {
		log.Errorf("%s: read private key: %s", name, err)
		return nil, fin, err
	}

	keyPair, err := tls.X509KeyPair(certificate, key)
	if nil != err {
		log.Errorf("%s: failed to load keypair: %v", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
		MinVersion: tls.VersionTLS12,
	}

	fin = fingerprint(keyPair.Certificate[0])
	log.Infof("%s: SHA3-256 fingerprint: %x", name, fin)

	return tlsConfiguration, fin, nil
}

// fingerprint - compute the fingerprint of a certificate
//
// openssl x509 -outform DER -in ofundd-local-rpc.crt | sha3sum -a 256
func fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}
