// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/auditd/messagebus"
	"github.com/bitmark-inc/auditd/zmqutil"
)

// zap domain for the curve handshake
const zapDomain = "auditd.publish"

type broadcaster struct {
	log     *logger.L
	queue   <-chan messagebus.Message
	socket4 *zmq.Socket
	socket6 *zmq.Socket
}

// bind the sockets and attach to the broadcast queue
func (brdc *broadcaster) initialise(log *logger.L, privateKey []byte, publicKey []byte, listen []string) error {

	brdc.log = log
	brdc.log.Info("initialising…")

	if len(privateKey) > 0 {
		if err := zmqutil.StartAuthentication(); nil != err {
			brdc.log.Errorf("start authentication error: %s", err)
			return err
		}
	}

	socket4, socket6, err := zmqutil.NewBind(brdc.log, zmq.PUB, zapDomain, privateKey, publicKey, listen)
	if nil != err {
		brdc.log.Errorf("bind error: %s", err)
		return err
	}

	brdc.socket4 = socket4
	brdc.socket6 = socket6
	brdc.queue = messagebus.Bus.Broadcast.Chan(-1)

	return nil
}

// Run - background process loop
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item, ok := <-brdc.queue:
			if !ok {
				break loop
			}
			brdc.process(item)
		}
	}

	log.Info("shutting down…")

	if nil != brdc.socket4 {
		brdc.socket4.Close()
	}
	if nil != brdc.socket6 {
		brdc.socket6.Close()
	}

	log.Info("stopped")
}

// send one bus message to every bound socket
func (brdc *broadcaster) process(item messagebus.Message) {

	fs, err := frames(item.Command, item.Parameters)
	if nil != err {
		brdc.log.Errorf("discard: %q  error: %s", item.Command, err)
		return
	}

	for _, socket := range []*zmq.Socket{brdc.socket4, brdc.socket6} {
		if nil == socket {
			continue
		}
		for _, f := range fs {
			_, err := socket.SendMessage(f.topic, f.body)
			if nil != err {
				brdc.log.Errorf("send topic: %q  error: %s", f.topic, err)
			}
		}
	}
	brdc.log.Debugf("sent: %s", fs[0].topic)
}
