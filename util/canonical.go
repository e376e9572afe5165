// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"net"
	"strconv"
	"strings"

	"github.com/bitmark-inc/auditd/fault"
)

// canonical listen errors
var (
	ErrInvalidIPAddress  = fault.InvalidError("invalid IP address")
	ErrInvalidPortNumber = fault.InvalidError("invalid port number")
)

// CanonicalIPandPort - make the IP:Port canonical
//
// examples:
//   IPv4:  127.0.0.1:1234
//   IPv6:  [::1]:1234
//   any:   *:1234  becomes  [::]:1234
//
// the second result is true for IPv6
func CanonicalIPandPort(hostPort string) (string, bool, error) {

	host, port, err := net.SplitHostPort(strings.TrimSpace(hostPort))
	if nil != err {
		return "", false, err
	}

	if "*" == host {
		host = "::"
	}

	IP := net.ParseIP(strings.Trim(host, " "))
	if nil == IP {
		return "", false, ErrInvalidIPAddress
	}

	numericPort, err := strconv.Atoi(strings.Trim(port, " "))
	if nil != err {
		return "", false, err
	}
	if numericPort < 1 || numericPort > 65535 {
		return "", false, ErrInvalidPortNumber
	}

	if nil != IP.To4() {
		return IP.String() + ":" + strconv.Itoa(numericPort), false, nil
	}
	return "[" + IP.String() + "]:" + strconv.Itoa(numericPort), true, nil
}
