// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mode_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/auditd/chain"
	"github.com/bitmark-inc/auditd/fault"
	"github.com/bitmark-inc/auditd/mode"
)

const testingDirName = "testing"

func TestMain(m *testing.M) {
	_ = os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)

	_ = logger.Initialise(logger.Configuration{
		Directory: testingDirName,
		File:      "mode.log",
		Size:      50000,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(testingDirName)
	os.Exit(rc)
}

func TestLifecycle(t *testing.T) {

	err := mode.Initialise("bitmark")
	assert.Equal(t, fault.InvalidChain, err, "unknown chain")

	err = mode.Initialise(chain.Testing)
	assert.Nil(t, err, "initialise")

	err = mode.Initialise(chain.Testing)
	assert.Equal(t, fault.AlreadyInitialised, err, "second initialise")

	assert.True(t, mode.IsTesting(), "testing chain")
	assert.Equal(t, chain.Testing, mode.ChainName(), "chain name")
	assert.True(t, mode.Is(mode.Starting), "initial mode")
	assert.Equal(t, "Starting", mode.String(), "initial string")

	mode.Set(mode.Normal)
	assert.True(t, mode.Is(mode.Normal), "normal")
	assert.True(t, mode.IsNot(mode.Starting), "not starting")

	mode.Set(mode.Mode(99))
	assert.True(t, mode.Is(mode.Normal), "invalid mode ignored")
	assert.Equal(t, "*Unknown*", mode.Mode(99).String(), "unknown string")

	err = mode.Finalise()
	assert.Nil(t, err, "finalise")
	assert.True(t, mode.Is(mode.Stopped), "stopped")

	err = mode.Finalise()
	assert.Equal(t, fault.NotInitialised, err, "second finalise")
}
