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
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gotmc/prologix"
	"github.com/tarm/serial"
)

// GXGpibSession is a session over a Prologix GPIB-USB controller. The
// controller shows up as a virtual serial port and relays traffic to the
// instrument at the given primary address.
type GXGpibSession struct {
	// Adapter is the serial device of the Prologix controller.
	Adapter string
	pad     int

	waitTime time.Duration

	port *serial.Port
	gpib *prologix.Controller
}

// NewGXGpibSession creates a session for the instrument at the given GPIB
// primary address behind the Prologix controller on adapter.
func NewGXGpibSession(adapter string, pad int) *GXGpibSession {
	return &GXGpibSession{Adapter: adapter, pad: pad, waitTime: defaultWaitTime}
}

// Resource implements IGXSession.
func (g *GXGpibSession) Resource() string {
	return fmt.Sprintf("GPIB0::%d::%s::INSTR", g.pad, g.Adapter)
}

func (g *GXGpibSession) String() string {
	return g.Resource()
}

// PrimaryAddress returns the GPIB primary address of the instrument.
func (g *GXGpibSession) PrimaryAddress() int {
	return g.pad
}

// WaitTime implements IGXSession. The wait time is applied to the serial
// port when the session is opened.
func (g *GXGpibSession) WaitTime() time.Duration {
	return g.waitTime
}

// SetWaitTime implements IGXSession.
func (g *GXGpibSession) SetWaitTime(value time.Duration) {
	g.waitTime = value
}

// IsOpen implements IGXSession.
func (g *GXGpibSession) IsOpen() bool {
	return g.gpib != nil
}

// Open implements IGXSession.
func (g *GXGpibSession) Open() error {
	if g.gpib != nil {
		return nil
	}
	port, err := serial.OpenPort(&serial.Config{
		Name:        g.Adapter,
		Baud:        115200,
		Size:        8,
		Parity:      serial.ParityNone,
		StopBits:    serial.Stop1,
		ReadTimeout: g.waitTime,
	})
	if err != nil {
		return &ConnectionError{Resource: g.Resource(), Err: err}
	}
	gpib, err := prologix.NewController(port, g.pad, false)
	if err != nil {
		_ = port.Close()
		return &ConnectionError{Resource: g.Resource(), Err: err}
	}
	g.port = port
	g.gpib = gpib
	return nil
}

// Close implements IGXSession. The instrument is returned to front panel
// control before the port is released.
func (g *GXGpibSession) Close() error {
	if g.gpib == nil {
		return nil
	}
	_ = g.gpib.FrontPanel(true)
	g.gpib = nil
	err := g.port.Close()
	g.port = nil
	return err
}

// WriteCommand implements IGXSession.
func (g *GXGpibSession) WriteCommand(command string) error {
	if g.gpib == nil {
		return &TransportError{Operation: command, Err: errors.New("session is closed")}
	}
	if err := g.gpib.Command(command); err != nil {
		return &TransportError{Operation: command, Err: err}
	}
	return nil
}

// Query implements IGXSession. Replies are read up to the line terminator,
// so definite length blocks with the terminator byte in their payload are
// not readable on this transport.
func (g *GXGpibSession) Query(command string) ([]byte, error) {
	if g.gpib == nil {
		return nil, &TransportError{Operation: command, Err: errors.New("session is closed")}
	}
	reply, err := g.gpib.Query(command)
	// The controller reports io.EOF when the serial read timeout expires.
	// Data before the timeout is still a complete reply.
	if errors.Is(err, io.EOF) {
		if reply == "" {
			return nil, &TimeoutError{Operation: command, Wait: g.waitTime}
		}
	} else if err != nil {
		return nil, &TransportError{Operation: command, Err: err}
	}
	return []byte(strings.TrimRight(reply, "\r\n")), nil
}
