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
	"time"
)

// ConnectionError is returned when a resource cannot be addressed or the
// instrument does not answer the identification handshake.
type ConnectionError struct {
	Resource string
	Err      error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connect to %s: %v", e.Resource, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// NotConnectedError is returned when an operation requires an open
// connection and the controller is disconnected.
type NotConnectedError struct {
	Operation string
}

func (e *NotConnectedError) Error() string {
	return fmt.Sprintf("not connected: %s requires an open connection", e.Operation)
}

// InvalidArgumentError is returned when a caller supplied value is outside
// the accepted domain.
type InvalidArgumentError struct {
	Argument string
	Value    any
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Argument, e.Value)
}

// TransportError is returned on a write or read failure on an open session,
// or when a closed session is used.
type TransportError struct {
	Operation string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Operation, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// TimeoutError is returned when no complete reply arrives within the
// session wait time.
type TimeoutError struct {
	Operation string
	Wait      time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s: no reply within %v", e.Operation, e.Wait)
}

// Timeout reports that the error was caused by a deadline, following the
// net.Error convention.
func (e *TimeoutError) Timeout() bool {
	return true
}

// AcquisitionError is returned when a waveform reply is internally
// inconsistent: malformed preamble, malformed block framing, unsupported
// sample format or a sample count that disagrees with the preamble.
type AcquisitionError struct {
	Reason string
	Want   int
	Got    int
}

func (e *AcquisitionError) Error() string {
	if e.Want != 0 || e.Got != 0 {
		return fmt.Sprintf("%s: want %d, got %d", e.Reason, e.Want, e.Got)
	}
	return e.Reason
}
