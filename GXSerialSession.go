package gxscope

// --------------------------------------------------------------------------
//
//	Gurux Ltd
//
// Filename:        $HeadURL$
//
// Version:         $Revision$,
//
//	$Date$
//	$Author$
//
// # Copyright (c) Gurux Ltd
//
// ---------------------------------------------------------------------------
//
//	DESCRIPTION
//
// This file is a part of Gurux Device Framework.
//
// Gurux Device Framework is Open Source software; you can redistribute it
// and/or modify it under the terms of the GNU General Public License
// as published by the Free Software Foundation; version 2 of the License.
// Gurux Device Framework is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU General Public License for more details.
//
// More information of Gurux products: https://www.gurux.org
//
// This code is licensed under the GNU General Public License v2.
// Full text may be retrieved at http://www.gnu.org/licenses/gpl-2.0.txt
// ---------------------------------------------------------------------------

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Gurux/gxcommon-go"
)

// GXSerialSession is a session over a serial port. A reader goroutine moves
// bytes from the port into a receive buffer and Query assembles replies
// from it.
type GXSerialSession struct {
	Device   string
	baudRate gxcommon.BaudRate
	dataBits int
	stopBits gxcommon.StopBits
	parity   gxcommon.Parity
	waitTime time.Duration

	wg       sync.WaitGroup
	stop     chan struct{}
	received *receiveBuffer

	s port
}

// NewGXSerialSession creates a session for the instrument behind the given
// serial device.
func NewGXSerialSession(device string,
	baudRate gxcommon.BaudRate,
	dataBits int,
	parity gxcommon.Parity,
	stopBits gxcommon.StopBits) *GXSerialSession {
	return &GXSerialSession{
		Device:   device,
		baudRate: baudRate,
		dataBits: dataBits,
		stopBits: stopBits,
		parity:   parity,
		waitTime: defaultWaitTime,
		received: newReceiveBuffer(),
	}
}

// GetPortNames returns list of available serial ports.
func GetPortNames() ([]string, error) {
	return getPortNames()
}

// Resource implements IGXSession.
func (g *GXSerialSession) Resource() string {
	return fmt.Sprintf("ASRL%s::%s,%d,%s,%s::INSTR", g.Device, g.baudRate, g.dataBits, g.parity, g.stopBits)
}

func (g *GXSerialSession) String() string {
	return fmt.Sprintf("%s %s %d %s %s", g.Device, g.baudRate, g.dataBits, g.stopBits, g.parity)
}

// BaudRate returns the used baud rate.
func (g *GXSerialSession) BaudRate() gxcommon.BaudRate {
	return g.baudRate
}

// DataBits returns the amount of the data bits.
func (g *GXSerialSession) DataBits() int {
	return g.dataBits
}

// Parity returns the used parity.
func (g *GXSerialSession) Parity() gxcommon.Parity {
	return g.parity
}

// StopBits returns used stop bits.
func (g *GXSerialSession) StopBits() gxcommon.StopBits {
	return g.stopBits
}

// WaitTime implements IGXSession.
func (g *GXSerialSession) WaitTime() time.Duration {
	return g.waitTime
}

// SetWaitTime implements IGXSession.
func (g *GXSerialSession) SetWaitTime(value time.Duration) {
	g.waitTime = value
}

// IsOpen implements IGXSession.
func (g *GXSerialSession) IsOpen() bool {
	return g.s.isOpen()
}

// Open implements IGXSession.
func (g *GXSerialSession) Open() error {
	if g.s.isOpen() {
		return nil
	}
	if err := openPort(g); err != nil {
		return &ConnectionError{Resource: g.Resource(), Err: err}
	}
	g.stop = make(chan struct{})
	g.received.Reset()
	g.wg.Add(1)
	go g.reader()
	return nil
}

// reader moves bytes from the port to the receive buffer until the port is
// closed.
func (g *GXSerialSession) reader() {
	defer g.wg.Done()
	for {
		ret, err := g.s.read()
		if err != nil {
			return
		}
		if len(ret) != 0 {
			g.received.Append(ret)
		}
		select {
		case <-g.stop:
			return
		default:
		}
	}
}

// Close implements IGXSession.
func (g *GXSerialSession) Close() error {
	if g.stop == nil {
		return nil
	}
	select {
	case <-g.stop:
		// already closed
	default:
		close(g.stop)
		_ = g.s.close()
	}
	g.wg.Wait()
	return nil
}

// WriteCommand implements IGXSession.
func (g *GXSerialSession) WriteCommand(command string) error {
	if !g.s.isOpen() {
		return &TransportError{Operation: command, Err: errors.New("session is closed")}
	}
	if _, err := g.s.write(append([]byte(command), terminator)); err != nil {
		return &TransportError{Operation: command, Err: err}
	}
	return nil
}

// Query implements IGXSession.
func (g *GXSerialSession) Query(command string) ([]byte, error) {
	if !g.s.isOpen() {
		return nil, &TransportError{Operation: command, Err: errors.New("session is closed")}
	}
	// Drop bytes left over from an earlier reply.
	g.received.Reset()
	if err := g.WriteCommand(command); err != nil {
		return nil, err
	}
	deadline := time.Now().Add(g.waitTime)
	first, ok := g.received.Peek(1, time.Until(deadline))
	if !ok {
		return nil, &TimeoutError{Operation: command, Wait: g.waitTime}
	}
	if first[0] != '#' {
		line, ok := g.received.ReadUntil(terminator, time.Until(deadline))
		if !ok {
			return nil, &TimeoutError{Operation: command, Wait: g.waitTime}
		}
		return bytes.TrimRight(line, "\r\n"), nil
	}
	head, ok := g.received.Peek(2, time.Until(deadline))
	if !ok {
		return nil, &TimeoutError{Operation: command, Wait: g.waitTime}
	}
	digits := int(head[1]) - '0'
	if digits < 1 || digits > 9 {
		return nil, &TransportError{Operation: command, Err: fmt.Errorf("invalid block length digit %q", head[1])}
	}
	head, ok = g.received.Peek(2+digits, time.Until(deadline))
	if !ok {
		return nil, &TimeoutError{Operation: command, Wait: g.waitTime}
	}
	header, n, err := parseBlockHeader(head)
	if err != nil {
		return nil, &TransportError{Operation: command, Err: err}
	}
	reply, ok := g.received.Read(header+n, time.Until(deadline))
	if !ok {
		return nil, &TimeoutError{Operation: command, Wait: g.waitTime}
	}
	return reply, nil
}
