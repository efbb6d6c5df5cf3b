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
	"strings"
)

// TriggerMode selects the trigger type of the instrument.
type TriggerMode int

const (
	TriggerModeEdge TriggerMode = iota
	TriggerModePulse
	TriggerModeVideo
)

// IsValid reports whether the mode is one of the supported trigger modes.
func (m TriggerMode) IsValid() bool {
	return m >= TriggerModeEdge && m <= TriggerModeVideo
}

func (m TriggerMode) String() string {
	switch m {
	case TriggerModeEdge:
		return "EDGE"
	case TriggerModePulse:
		return "PULSE"
	case TriggerModeVideo:
		return "VIDEO"
	}
	return fmt.Sprintf("TriggerMode(%d)", int(m))
}

// TriggerModeParse parses a trigger mode name.
func TriggerModeParse(value string) (TriggerMode, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "EDGE":
		return TriggerModeEdge, nil
	case "PULSE":
		return TriggerModePulse, nil
	case "VIDEO":
		return TriggerModeVideo, nil
	}
	return 0, fmt.Errorf("invalid trigger mode: %q", value)
}

// TriggerSlope selects the edge the trigger fires on.
type TriggerSlope int

const (
	TriggerSlopeRising TriggerSlope = iota
	TriggerSlopeFalling
)

// IsValid reports whether the slope is a supported value.
func (s TriggerSlope) IsValid() bool {
	return s == TriggerSlopeRising || s == TriggerSlopeFalling
}

func (s TriggerSlope) String() string {
	switch s {
	case TriggerSlopeRising:
		return "POS"
	case TriggerSlopeFalling:
		return "NEG"
	}
	return fmt.Sprintf("TriggerSlope(%d)", int(s))
}

// TriggerSlopeParse parses a trigger slope name.
func TriggerSlopeParse(value string) (TriggerSlope, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "POS", "POSITIVE", "RISING":
		return TriggerSlopeRising, nil
	case "NEG", "NEGATIVE", "FALLING":
		return TriggerSlopeFalling, nil
	}
	return 0, fmt.Errorf("invalid trigger slope: %q", value)
}

// GXTriggerSettings holds one trigger configuration: mode, source channel,
// slope and level in volts.
type GXTriggerSettings struct {
	Mode   TriggerMode
	Source Channel
	Slope  TriggerSlope
	Level  float64
}

func (t GXTriggerSettings) String() string {
	return fmt.Sprintf("%s %s %s %G V", t.Mode, t.Source, t.Slope, t.Level)
}
