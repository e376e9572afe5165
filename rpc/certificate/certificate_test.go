// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"path"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/auditd/fault"
	"github.com/bitmark-inc/auditd/rpc/certificate"
	"github.com/bitmark-inc/auditd/rpc/fixtures"
)

func TestGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	cer := fixtures.Certificate()
	key := fixtures.Key()

	tlsConfig, fingerprint, err := certificate.Get(
		logger.New(fixtures.LogCategory),
		"test",
		cer,
		key,
	)
	assert.Nil(t, err, "wrong Get")

	pair, _ := tls.X509KeyPair([]byte(cer), []byte(key))

	assert.Equal(t, sha3.Sum256(pair.Certificate[0]), fingerprint, "wrong fingerprint")
	assert.Equal(t, pair, tlsConfig.Certificates[0], "wrong config")
}

func TestGetInvalid(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, _, err := certificate.Get(logger.New(fixtures.LogCategory), "test", "not a certificate", fixtures.Key())
	assert.NotNil(t, err, "bad certificate accepted")
}

func TestMakeAndLoad(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	dir, err := ioutil.TempDir("", "certificate")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	certificateFile := path.Join(dir, "rpc.crt")
	keyFile := path.Join(dir, "rpc.key")

	err = certificate.MakeSelfSigned("test", certificateFile, keyFile, false, nil)
	assert.Nil(t, err, "make")

	err = certificate.MakeSelfSigned("test", certificateFile, keyFile, false, nil)
	assert.Equal(t, fault.CertificateFileAlreadyExists, err, "overwrite")

	tlsConfig, _, err := certificate.Load(logger.New(fixtures.LogCategory), "test", certificateFile, keyFile)
	assert.Nil(t, err, "load")
	assert.Equal(t, 1, len(tlsConfig.Certificates), "certificates")

	_, _, err = certificate.Load(logger.New(fixtures.LogCategory), "test", path.Join(dir, "missing.crt"), keyFile)
	assert.NotNil(t, err, "missing file")
}
