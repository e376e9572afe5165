// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - a queuing system for internally generated
// notifications
//
// the broadcast queue fans each message out to every listener, a
// listener that is not keeping up loses messages rather than stalling
// the sender
package messagebus
