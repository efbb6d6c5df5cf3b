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
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Gurux/gxcommon-go"
)

// IGXSession is one addressable connection to an instrument. A session is
// bound to exactly one resource name and moves between the Closed and Open
// lifecycle states. Operations are blocking and must not be invoked
// concurrently; the protocol is strictly request/response and the owner is
// expected to serialize access. A failed write or query leaves the session
// state unspecified and no operation is retried; close and reopen instead.
type IGXSession interface {
	// Open opens the connection. Opening an open session is a no-op.
	Open() error
	// Close releases the connection. Closing a closed session is a no-op.
	Close() error
	// IsOpen returns true when the session is open.
	IsOpen() bool
	// WriteCommand sends one command, terminated by a newline, without
	// waiting for a reply.
	WriteCommand(command string) error
	// Query sends one command and blocks until a full reply arrives or the
	// wait time elapses. The trailing terminator is removed; definite
	// length block framing is kept for the caller to strip.
	Query(command string) ([]byte, error)
	// Resource returns the resource name the session is bound to.
	Resource() string
	// WaitTime returns the reply wait time.
	WaitTime() time.Duration
	// SetWaitTime sets the reply wait time.
	SetWaitTime(value time.Duration)
}

// defaultWaitTime bounds every reply wait unless the owner configures one.
const defaultWaitTime = 5 * time.Second

// terminator ends every command and every line reply.
const terminator = '\n'

// OpenSession parses a VISA style resource name, builds the matching
// session and opens it.
//
// Supported forms:
//
//	TCPIP[n]::<host>[::<port>][::SOCKET|::INSTR]
//	ASRL<device>[::<baud>[,<dataBits>,<parity>,<stopBits>]]::INSTR
//	USB[n]::<vid>::<pid>[::<serial>][::INSTR]
//	GPIB[n]::<pad>::<adapterDevice>::INSTR
func OpenSession(resource string, waitTime time.Duration) (IGXSession, error) {
	s, err := newSession(resource)
	if err != nil {
		return nil, &ConnectionError{Resource: resource, Err: err}
	}
	if waitTime > 0 {
		s.SetWaitTime(waitTime)
	}
	if err := s.Open(); err != nil {
		return nil, err
	}
	return s, nil
}

func newSession(resource string) (IGXSession, error) {
	parts := strings.Split(strings.TrimSpace(resource), "::")
	head := strings.ToUpper(parts[0])
	switch {
	case strings.HasPrefix(head, "TCPIP"):
		return newNetSessionFromResource(resource, parts)
	case strings.HasPrefix(head, "ASRL"):
		return newSerialSessionFromResource(resource, parts)
	case strings.HasPrefix(head, "USB"):
		return newUsbSessionFromResource(resource, parts)
	case strings.HasPrefix(head, "GPIB"):
		return newGpibSessionFromResource(resource, parts)
	}
	return nil, fmt.Errorf("unsupported resource name %q", resource)
}

func newNetSessionFromResource(resource string, parts []string) (IGXSession, error) {
	if len(parts) < 2 || parts[1] == "" {
		return nil, fmt.Errorf("no host in resource name %q", resource)
	}
	host := parts[1]
	port := rawSocketPort
	if len(parts) > 2 {
		if n, err := strconv.Atoi(parts[2]); err == nil {
			port = n
		} else if !isResourceSuffix(parts[2]) {
			return nil, fmt.Errorf("invalid port %q in resource name %q", parts[2], resource)
		}
	}
	return NewGXNetSession(host, port), nil
}

func newSerialSessionFromResource(resource string, parts []string) (IGXSession, error) {
	device := parts[0][len("ASRL"):]
	if device == "" {
		return nil, fmt.Errorf("no device in resource name %q", resource)
	}
	baudRate := gxcommon.BaudRate(9600)
	dataBits := 8
	parity := gxcommon.ParityNone
	stopBits := gxcommon.StopBitsOne
	if len(parts) > 1 && !isResourceSuffix(parts[1]) {
		opts := strings.Split(parts[1], ",")
		var err error
		if baudRate, err = gxcommon.BaudRateParse(opts[0]); err != nil {
			return nil, fmt.Errorf("invalid baud rate %q in resource name %q", opts[0], resource)
		}
		if len(opts) > 1 {
			if dataBits, err = strconv.Atoi(opts[1]); err != nil {
				return nil, fmt.Errorf("invalid data bits %q in resource name %q", opts[1], resource)
			}
		}
		if len(opts) > 2 {
			if parity, err = gxcommon.ParityParse(opts[2]); err != nil {
				return nil, fmt.Errorf("invalid parity %q in resource name %q", opts[2], resource)
			}
		}
		if len(opts) > 3 {
			if stopBits, err = gxcommon.StopBitsParse(opts[3]); err != nil {
				return nil, fmt.Errorf("invalid stop bits %q in resource name %q", opts[3], resource)
			}
		}
	}
	return NewGXSerialSession(device, baudRate, dataBits, parity, stopBits), nil
}

func newUsbSessionFromResource(resource string, parts []string) (IGXSession, error) {
	if len(parts) < 3 {
		return nil, fmt.Errorf("no vendor and product id in resource name %q", resource)
	}
	vid, err := strconv.ParseUint(parts[1], 0, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid vendor id %q in resource name %q", parts[1], resource)
	}
	pid, err := strconv.ParseUint(parts[2], 0, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid product id %q in resource name %q", parts[2], resource)
	}
	serial := ""
	if len(parts) > 3 && !isResourceSuffix(parts[3]) {
		serial = parts[3]
	}
	return NewGXUsbSession(uint16(vid), uint16(pid), serial), nil
}

func newGpibSessionFromResource(resource string, parts []string) (IGXSession, error) {
	if len(parts) < 2 {
		return nil, fmt.Errorf("no primary address in resource name %q", resource)
	}
	pad, err := strconv.Atoi(parts[1])
	if err != nil || pad < 0 || pad > 30 {
		return nil, fmt.Errorf("invalid primary address %q in resource name %q", parts[1], resource)
	}
	if len(parts) < 3 || isResourceSuffix(parts[2]) {
		return nil, fmt.Errorf("no adapter device in resource name %q; use GPIB[n]::<pad>::<device>::INSTR or NewGXGpibSession", resource)
	}
	return NewGXGpibSession(parts[2], pad), nil
}

func isResourceSuffix(part string) bool {
	switch strings.ToUpper(part) {
	case "INSTR", "SOCKET", "RAW":
		return true
	}
	return false
}
