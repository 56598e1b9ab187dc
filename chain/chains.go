// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

// ledger names accepted by the daemon
const (
	Ofund   = "ofund"
	Testing = "testing"
	Local   = "local"
)

// Parameters - fixed properties of one ledger
type Parameters struct {
	Name     string
	Testing  bool   // records may be discarded and rebuilt at will
	Database string // default leveldb directory name
}

var parameters = map[string]Parameters{
	Ofund: {
		Name:     Ofund,
		Testing:  false,
		Database: Ofund + ".leveldb",
	},
	Testing: {
		Name:     Testing,
		Testing:  true,
		Database: Testing + ".leveldb",
	},
	Local: {
		Name:     Local,
		Testing:  true,
		Database: Local + ".leveldb",
	},
}

// Get - parameters of a named ledger
func Get(name string) (Parameters, bool) {
	p, ok := parameters[name]
	return p, ok
}

// Valid - a ledger the daemon can run
func Valid(name string) bool {
	_, ok := parameters[name]
	return ok
}

// IsTesting - false for the production ledger and unknown names
func IsTesting(name string) bool {
	return parameters[name].Testing
}

// DatabaseName - default leveldb directory, empty for unknown names
func DatabaseName(name string) string {
	return parameters[name].Database
}
