// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - TLS JSON-RPC and HTTPS front ends
package listeners

import (
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/auditd/util"
)

const minConnectionCount = 1

// Listener - a started front end
type Listener interface {
	Serve() error
	Stop()
}

// turn configured listen addresses into network and address pairs
//
// "*:PORT" listens on all interfaces of both families
func parseListenAddresses(addresses []string, log *logger.L) ([]string, []string, error) {
	networks := make([]string, len(addresses))
	canonical := make([]string, len(addresses))
	for i, listen := range addresses {
		hostPort, v6, err := util.CanonicalIPandPort(listen)
		if nil != err {
			log.Errorf("listen address: %q  error: %s", listen, err)
			return nil, nil, err
		}
		canonical[i] = hostPort
		switch {
		case strings.HasPrefix(strings.TrimSpace(listen), "*"):
			networks[i] = "tcp"
		case v6:
			networks[i] = "tcp6"
		default:
			networks[i] = "tcp4"
		}
	}
	return networks, canonical, nil
}
