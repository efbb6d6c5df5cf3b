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
)

// Channel identifies a physical input channel of the instrument.
type Channel int

const (
	Channel1 Channel = 1
	Channel2 Channel = 2
	Channel3 Channel = 3
	Channel4 Channel = 4
)

// IsValid reports whether the channel is one of the instrument's inputs.
func (c Channel) IsValid() bool {
	return c >= Channel1 && c <= Channel4
}

func (c Channel) String() string {
	return fmt.Sprintf("CHAN%d", int(c))
}

// ChannelParse parses a channel from its number or its CHAN<n> form.
func ChannelParse(value string) (Channel, error) {
	s := strings.TrimSpace(value)
	s = strings.TrimPrefix(strings.ToUpper(s), "CHAN")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid channel: %q", value)
	}
	c := Channel(n)
	if !c.IsValid() {
		return 0, fmt.Errorf("invalid channel: %q", value)
	}
	return c, nil
}

// ConnectionState is the controller connection state.
type ConnectionState int

const (
	// Disconnected is the initial state. No session is held.
	Disconnected ConnectionState = iota
	// Connected means a session is open and the instrument has answered
	// the identification handshake.
	Connected
)

func (s ConnectionState) String() string {
	switch s {
	case Disconnected:
		return "Disconnected"
	case Connected:
		return "Connected"
	}
	return fmt.Sprintf("ConnectionState(%d)", int(s))
}

// WaveformFormat is the numeric encoding of one waveform sample, as
// reported by the first preamble field.
type WaveformFormat int

const (
	WaveformFormatByte  WaveformFormat = 0
	WaveformFormatWord  WaveformFormat = 1
	WaveformFormatAscii WaveformFormat = 2
)

func (f WaveformFormat) String() string {
	switch f {
	case WaveformFormatByte:
		return "BYTE"
	case WaveformFormatWord:
		return "WORD"
	case WaveformFormatAscii:
		return "ASC"
	}
	return fmt.Sprintf("WaveformFormat(%d)", int(f))
}
