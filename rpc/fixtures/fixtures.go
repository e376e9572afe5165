// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared set up for the rpc tests
package fixtures

import (
	"os"
	"path"
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/auditd/account"
	"github.com/bitmark-inc/auditd/storage"
)

// test directories and names
const (
	testingDirName = "testing"
	LogCategory    = "testing"
)

// SetupTestLogger - critical only logging into the test directory
func SetupTestLogger() {
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
}

// TeardownTestLogger - stop logging and remove the test directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// SetupTestDatabase - logger plus an empty database
func SetupTestDatabase() error {
	SetupTestLogger()
	return storage.Initialise(path.Join(testingDirName, "rpc.leveldb"), storage.ReadWrite)
}

// TeardownTestDatabase - close database and logger
func TeardownTestDatabase() {
	storage.Finalise()
	TeardownTestLogger()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

// NewPrivateKey - a fresh test network key
func NewPrivateKey() *account.PrivateKey {
	privateKey, err := account.NewPrivateKey(true)
	if nil != err {
		panic(err)
	}
	return privateKey
}

var certificateData struct {
	sync.Once
	certificate []byte
	key         []byte
}

func makeCertificate() {
	validUntil := time.Now().Add(24 * time.Hour)
	cert, key, err := certgen.NewTLSCertPair("auditd test certificate", validUntil, false, []string{"127.0.0.1", "::1"})
	if nil != err {
		panic(err)
	}
	certificateData.certificate = cert
	certificateData.key = key
}

// Certificate - PEM of a self signed certificate, same for every call
func Certificate() string {
	certificateData.Do(makeCertificate)
	return string(certificateData.certificate)
}

// Key - PEM of the private key matching Certificate
func Key() string {
	certificateData.Do(makeCertificate)
	return string(certificateData.key)
}
