// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"

	"github.com/tokenvault/vaultd/messagebus"
	"github.com/tokenvault/vaultd/util"
	"github.com/tokenvault/vaultd/zmqutil"
)

const (
	broadcasterZapDomain = "publisher"
)

type broadcaster struct {
	log    *logger.L
	socket *zmq.Socket
	queue  <-chan messagebus.Message
}

// bind the PUB socket and subscribe to the internal event bus
func (brdc *broadcaster) initialise(privateKey []byte, publicKey []byte, broadcast []string) error {

	log := logger.New("broadcaster")
	brdc.log = log

	log.Info("initialising…")

	err := zmqutil.StartAuthentication()
	if nil != err {
		log.Errorf("zmq authentication start error: %s", err)
		return err
	}

	socket, err := zmq.NewSocket(zmq.PUB)
	if nil != err {
		return err
	}
	brdc.socket = socket

	// any subscriber holding the server public key may connect
	zmq.AuthCurveAdd(broadcasterZapDomain, zmq.CURVE_ALLOW_ANY)

	socket.SetCurveServer(1)
	socket.SetCurveSecretkey(string(privateKey))
	socket.SetZapDomain(broadcasterZapDomain)
	socket.SetIdentity(string(publicKey))

	for i, address := range broadcast {
		bindTo, err := util.CanonicalIPandPort(address)
		if nil != err {
			log.Errorf("broadcast[%d]=%q  error: %s", i, address, err)
			socket.Close()
			return err
		}

		err = socket.Bind("tcp://" + bindTo)
		if nil != err {
			log.Errorf("broadcast[%d]=%q  bind error: %s", i, address, err)
			socket.Close()
			return err
		}
		log.Infof("broadcast on: %q", address)
	}

	brdc.queue = messagebus.Bus.Events.Chan()

	return nil
}

// Run - republish bus events until shutdown
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
	brdc.socket.Close()
}

// send one event as topic frame plus payload frames
func (brdc *broadcaster) process(item messagebus.Message) {

	frames := make([][]byte, 1, len(item.Parameters)+1)
	frames[0] = []byte(item.Command)
	frames = append(frames, item.Parameters...)

	_, err := brdc.socket.SendMessageDontwait(frames)
	if nil != err {
		brdc.log.Errorf("send %q error: %s", item.Command, err)
	} else {
		brdc.log.Debugf("sent: %q", item.Command)
	}
}
