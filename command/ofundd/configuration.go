// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/ofundd/account"
	"github.com/bitmark-inc/ofundd/authority"
	"github.com/bitmark-inc/ofundd/capacity"
	"github.com/bitmark-inc/ofundd/chain"
	"github.com/bitmark-inc/ofundd/configuration"
	"github.com/bitmark-inc/ofundd/fault"
	"github.com/bitmark-inc/ofundd/processor"
	"github.com/bitmark-inc/ofundd/project"
	"github.com/bitmark-inc/ofundd/rpc/listeners"
	"github.com/bitmark-inc/ofundd/tier"
	"github.com/bitmark-inc/ofundd/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultKeyFile         = "rpc.key"
	defaultCertificateFile = "rpc.crt"

	defaultLevelDBDirectory = "data"
	defaultOfundDatabase    = chain.Ofund + ".leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "ofundd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10

	defaultDecimals      = 9
	maximumDecimals      = 14
	defaultHistoryPolicy = "capped"
	defaultHistoryCount  = 20
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - leveldb location
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// HistoryType - how investment history is kept
type HistoryType struct {
	Policy         string `gluamapper:"policy" json:"policy"`
	Count          int    `gluamapper:"count" json:"count"`
	AutoReallocate bool   `gluamapper:"auto_reallocate" json:"auto_reallocate"`
	StrictLookup   bool   `gluamapper:"strict_lookup" json:"strict_lookup"`
}

// ProjectsType - admission rules applied to investments
type ProjectsType struct {
	MinimumTier    uint8 `gluamapper:"minimum_tier" json:"minimum_tier"`
	EnforceActive  bool  `gluamapper:"enforce_active" json:"enforce_active"`
	EnforceMinTier bool  `gluamapper:"enforce_min_tier" json:"enforce_min_tier"`
}

// Configuration - the daemon settings
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Chain         string       `gluamapper:"chain" json:"chain"`
	Database      DatabaseType `gluamapper:"database" json:"database"`

	ProgramID    string       `gluamapper:"program_id" json:"program_id"`
	Decimals     uint8        `gluamapper:"decimals" json:"decimals"`
	InitialGrant uint64       `gluamapper:"initial_grant" json:"initial_grant"`
	History      HistoryType  `gluamapper:"history" json:"history"`
	Projects     ProjectsType `gluamapper:"projects" json:"projects"`

	ClientRPC listeners.RPCConfiguration  `gluamapper:"client_rpc" json:"client_rpc"`
	Metrics   listeners.HTTPConfiguration `gluamapper:"metrics" json:"metrics"`
	Logging   logger.Configuration        `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {
	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Chain:         chain.Ofund,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultOfundDatabase,
		},

		Decimals:     defaultDecimals,
		InitialGrant: processor.DefaultInitialGrant,
		History: HistoryType{
			Policy: defaultHistoryPolicy,
			Count:  defaultHistoryCount,
		},
		Projects: ProjectsType{
			MinimumTier:    uint8(tier.None),
			EnforceActive:  true,
			EnforceMinTier: true,
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	// if any test mode and the database file was not specified
	// switch to appropriate default.  Abort if then chain name is
	// not recognised.
	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return nil, fmt.Errorf("chain: %q: %w", options.Chain, fault.ErrInvalidChain)
	}

	// if database was not changed from default
	if defaultOfundDatabase == options.Database.Name {
		options.Database.Name = chain.DatabaseName(options.Chain)
	}

	if options.Decimals > maximumDecimals {
		return nil, fmt.Errorf("decimals: %d > %d: %w", options.Decimals, maximumDecimals, fault.ErrInvalidDecimals)
	}
	if _, err := options.policy(); nil != err {
		return nil, err
	}
	if _, err := options.rules(); nil != err {
		return nil, err
	}
	if _, err := options.program(); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.Metrics.Certificate,
		&options.Metrics.PrivateKey,
	}
	for _, f := range optionalAbsolute {
		*f = util.OptionalAbsolute(options.DataDirectory, *f)
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		if !util.IsPlainName(*f[0]) {
			return nil, fmt.Errorf("files: %q is not plain name", *f[0])
		}
		if nil != f[1] {
			*f[0] = util.EnsureAbsolute(*f[1], *f[0])
		}
	}

	// create directories if they do not already exist
	for _, d := range []string{
		options.Database.Directory,
		options.Logging.Directory,
	} {
		if err := os.MkdirAll(d, 0700); nil != err {
			return nil, err
		}
	}

	return options, nil
}

// the program identity that all addresses are derived under
func (c *Configuration) program() (authority.Program, error) {
	id, err := account.IdentityFromBase58(c.ProgramID)
	if nil != err {
		return authority.Program{}, fmt.Errorf("program_id: %q: %w", c.ProgramID, err)
	}
	return authority.NewProgram(id)
}

func (c *Configuration) policy() (capacity.Policy, error) {
	return capacity.ParsePolicy(c.History.Policy, c.History.Count)
}

func (c *Configuration) rules() (project.Rules, error) {
	t, err := tier.FromUint8(c.Projects.MinimumTier)
	if nil != err {
		return project.Rules{}, fmt.Errorf("projects.minimum_tier: %d: %w", c.Projects.MinimumTier, err)
	}
	return project.Rules{
		MinimumTier:    t,
		EnforceActive:  c.Projects.EnforceActive,
		EnforceMinTier: c.Projects.EnforceMinTier,
	}, nil
}

// processor settings from a validated configuration
func (c *Configuration) settings() (processor.Settings, error) {
	program, err := c.program()
	if nil != err {
		return processor.Settings{}, err
	}
	policy, err := c.policy()
	if nil != err {
		return processor.Settings{}, err
	}
	rules, err := c.rules()
	if nil != err {
		return processor.Settings{}, err
	}
	return processor.Settings{
		Program:        program,
		Decimals:       c.Decimals,
		InitialGrant:   c.InitialGrant,
		Policy:         policy,
		AutoReallocate: c.History.AutoReallocate,
		StrictLookup:   c.History.StrictLookup,
		Rules:          rules,
	}, nil
}
