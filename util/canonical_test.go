// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/bitmark-inc/auditd/util"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		in  string
		out string
		v6  bool
	}{
		{"127.0.0.1:2130", "127.0.0.1:2130", false},
		{" 10.1.2.3:443 ", "10.1.2.3:443", false},
		{"[::1]:2130", "[::1]:2130", true},
		{"*:2135", "[::]:2135", true},
	}

	for i, item := range tests {
		c, v6, err := util.CanonicalIPandPort(item.in)
		if nil != err {
			t.Errorf("%d: %q error: %s", i, item.in, err)
			continue
		}
		if c != item.out || v6 != item.v6 {
			t.Errorf("%d: %q -> %q, %v  expected: %q, %v", i, item.in, c, v6, item.out, item.v6)
		}
	}
}

func TestCanonicalErrors(t *testing.T) {
	tests := []string{
		"localhost:1234",
		"127.0.0.1:0",
		"127.0.0.1:65536",
		"127.0.0.1",
	}

	for i, item := range tests {
		if _, _, err := util.CanonicalIPandPort(item); nil == err {
			t.Errorf("%d: %q unexpected success", i, item)
		}
	}
}
