// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/ofundd/storage"
)

const (
	testingDirName   = "testing"
	databaseFileName = "test.leveldb"
)

func setupTestLogger(dir string) {
	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// configure for testing
func setup(t *testing.T) string {
	dir := filepath.Join(t.TempDir(), testingDirName)
	require.Nil(t, os.Mkdir(dir, 0700), "test directory")

	setupTestLogger(dir)

	database := filepath.Join(dir, databaseFileName)
	err := storage.Initialise(database, storage.ReadWrite)
	require.Nil(t, err, "storage initialise")
	return database
}

// post test cleanup
func teardown() {
	storage.Finalise()
	logger.Finalise()
}
