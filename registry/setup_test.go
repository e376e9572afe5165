// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"os"
	"path"
	"sync"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/auditd/account"
	"github.com/bitmark-inc/auditd/contenthash"
	"github.com/bitmark-inc/auditd/storage"
)

const (
	testingDirName = "testing"
	logCategory    = "testing"
)

var databasePath = path.Join(testingDirName, "registry.leveldb")

func removeFiles() {
	os.RemoveAll(testingDirName)
}

func setup(t *testing.T) {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	err := storage.Initialise(databasePath, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

func teardown(t *testing.T) {
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

func mustAccount(s string) *account.Account {
	a, err := account.FromBase58(s)
	if nil != err {
		panic(err)
	}
	return a
}

// auditors
var (
	auditorA = mustAccount("eopaSeB7uiSVMdAmTrijq3W2MCWA5KHZrZvm5QLFGRVd3oWNe2")
	auditorB = mustAccount("dw9MQXcC5rJZb3QE1nz86PiQAheMP1dx9M3dr52tT8NNs14m33")
	auditorC = mustAccount("anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCj")
	auditorD = mustAccount("fZzH7BaVcqY7R2LtmvfEZGRPWJDstUaETkSPY8tRyAaxoftYMj")
)

// content hashes
var (
	hash1 = contenthash.New([]byte("contract one"))
	hash2 = contenthash.New([]byte("contract two"))
	hash3 = contenthash.New([]byte("contract three"))
)

// records notifications
type recordingSender struct {
	sync.Mutex
	messages [][][]byte
	commands []string
}

func (s *recordingSender) Send(command string, parameters ...[]byte) {
	s.Lock()
	defer s.Unlock()
	s.commands = append(s.commands, command)
	s.messages = append(s.messages, parameters)
}
