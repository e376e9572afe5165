// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/auditd/messagebus"
	"github.com/bitmark-inc/auditd/registry"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

// log a memory and registry summary every minute
func memstats(r registry.Registry) {

	log := logger.New("stats")

	for {
		log.Info(statsLine(r))
		time.Sleep(statsDelay)
	}
}

func statsLine(r registry.Registry) string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return fmt.Sprintf("contracts: %d  dropped events: %d  goroutines: %d  heap: %d M  cumulative: %d M  OS virtual: %d M",
		r.TotalContracts(),
		messagebus.Bus.Broadcast.Dropped(),
		runtime.NumGoroutine(),
		m.HeapAlloc/mega,
		m.TotalAlloc/mega,
		m.Sys/mega,
	)
}
