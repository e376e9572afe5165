// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/auditd/account"
	"github.com/bitmark-inc/auditd/fault"
)

// test encrypt and decrypt one string with various passwords
func TestEncryptDecrypt(t *testing.T) {

	plainText := "The Quick Brown Fox Jumps Over The Lazy Dog"

	passwords := []string{"test", "123", "444", "m,erRGhtk%$33ug62sd al/fajfb.adv"}

	for _, password := range passwords {
		salt, key, err := hashPassword(password)
		if nil != err {
			t.Fatalf("hash error: %s", err)
		}

		encrypted, err := encryptData(plainText, key)
		if nil != err {
			t.Fatalf("encrypt error: %s", err)
		}

		key2, err := generateKey(password, salt)
		if nil != err {
			t.Fatalf("generateKey error: %s", err)
		}

		decrypted, err := decryptData(encrypted, key2)
		if nil != err {
			t.Fatalf("decrypt error: %s", err)
		}

		assert.Equal(t, plainText, decrypted, "wrong decryption")
	}
}

func TestEncryptShortData(t *testing.T) {
	_, key, err := hashPassword("password")
	if nil != err {
		t.Fatalf("hash error: %s", err)
	}

	_, err = encryptData("short", key)
	assert.Equal(t, fault.CryptoFailed, err, "wrong error")
}

func TestSaltText(t *testing.T) {
	salt, err := MakeSalt()
	if nil != err {
		t.Fatalf("make salt error: %s", err)
	}

	text, err := salt.MarshalText()
	assert.Nil(t, err, "wrong marshal error")

	var s Salt
	err = s.UnmarshalText(text)
	assert.Nil(t, err, "wrong unmarshal error")
	assert.Equal(t, *salt, s, "wrong salt")

	err = s.UnmarshalText([]byte("abcd"))
	assert.Equal(t, fault.InvalidCount, err, "short salt accepted")
}

func TestIdentities(t *testing.T) {
	seed, err := account.NewSeed(true)
	if nil != err {
		t.Fatalf("new seed error: %s", err)
	}

	config := &Configuration{
		DefaultIdentity: "alice",
		TestNet:         true,
		Connections:     []string{"127.0.0.1:2130"},
		Identities:      make(map[string]Identity),
	}

	err = config.AddIdentity("alice", "first auditor", seed, "alice-password")
	assert.Nil(t, err, "wrong add error")

	err = config.AddIdentity("alice", "again", seed, "alice-password")
	assert.Equal(t, fault.IdentityNameAlreadyExists, err, "duplicate name accepted")

	liveSeed, err := account.NewSeed(false)
	if nil != err {
		t.Fatalf("new seed error: %s", err)
	}
	err = config.AddIdentity("bob", "live key", liveSeed, "bob-password")
	assert.Equal(t, fault.NotTestingAccount, err, "live seed accepted on test network")

	private, err := config.Private("alice-password", "alice")
	if !assert.Nil(t, err, "wrong private error") {
		return
	}
	assert.Equal(t, seed, private.Seed, "wrong seed")

	acc, err := config.Account("alice")
	assert.Nil(t, err, "wrong account error")
	assert.True(t, acc.Equal(private.Account), "wrong account")

	_, err = config.Private("wrong", "alice")
	assert.Equal(t, fault.WrongPassword, err, "wrong password accepted")

	_, err = config.Private("alice-password", "nobody")
	assert.Equal(t, fault.IdentityNameNotFound, err, "missing identity found")

	err = config.AddReceiveOnlyIdentity("carol", "receive only", acc.String())
	assert.Nil(t, err, "wrong receive only error")

	_, err = config.Private("", "carol")
	assert.Equal(t, fault.NotAPrivateKey, err, "receive only identity decrypted")

	// a base58 account is accepted in place of a name
	acc2, err := config.Account(acc.String())
	assert.Nil(t, err, "wrong base58 account error")
	assert.True(t, acc.Equal(acc2), "wrong base58 account")

	info := config.Info()
	assert.Equal(t, 2, len(info.Identities), "wrong identity count")
	assert.Equal(t, "alice", info.Identities[0].Name, "identities not sorted")
	assert.Equal(t, "carol", info.Identities[1].Name, "identities not sorted")
}

func TestSaveLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "audit-cli")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "testing-audit-cli.json")

	config := &Configuration{
		DefaultIdentity: "alice",
		TestNet:         true,
		Connections:     []string{"127.0.0.1:2130"},
		Identities: map[string]Identity{
			"alice": {Description: "auditor", Account: "a"},
		},
	}

	err = Save(fileName, config)
	assert.Nil(t, err, "wrong first save error")

	config.DefaultIdentity = "bob"
	err = Save(fileName, config)
	assert.Nil(t, err, "wrong second save error")

	loaded, err := Load(fileName)
	if !assert.Nil(t, err, "wrong load error") {
		return
	}
	assert.Equal(t, config, loaded, "wrong configuration")

	previous, err := Load(fileName + ".bk")
	if !assert.Nil(t, err, "wrong backup load error") {
		return
	}
	assert.Equal(t, "alice", previous.DefaultIdentity, "backup not kept")
}
