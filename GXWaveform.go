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
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// GXWaveformPreamble describes how to interpret a raw sample block. It is
// the parsed form of the ten comma separated fields of the :WAV:PRE? reply:
// format, type, points, count, x increment, x origin, x reference,
// y increment, y origin and y reference.
type GXWaveformPreamble struct {
	Format     WaveformFormat
	Type       int
	Points     int
	Count      int
	XIncrement float64
	XOrigin    float64
	XReference int
	YIncrement float64
	YOrigin    float64
	YReference int
}

// SampleWidth returns the number of bytes of one raw sample code, or 0 for
// the ASCII format.
func (p *GXWaveformPreamble) SampleWidth() int {
	switch p.Format {
	case WaveformFormatByte:
		return 1
	case WaveformFormatWord:
		return 2
	}
	return 0
}

// GXWaveform is the result of one acquisition: two same-length sequences,
// time in seconds and voltage in volts. The value is owned by the caller
// and not retained by the controller.
type GXWaveform struct {
	Channel  Channel
	Time     []float64
	Voltage  []float64
	Preamble GXWaveformPreamble
}

// parsePreamble parses the :WAV:PRE? reply.
func parsePreamble(reply []byte) (GXWaveformPreamble, error) {
	var p GXWaveformPreamble
	fields := strings.Split(strings.TrimSpace(string(reply)), ",")
	if len(fields) < 10 {
		return p, &AcquisitionError{Reason: fmt.Sprintf("malformed preamble: %d fields, need 10", len(fields))}
	}
	ints := []struct {
		name  string
		value *int
	}{
		{"format", (*int)(&p.Format)},
		{"type", &p.Type},
		{"points", &p.Points},
		{"count", &p.Count},
	}
	for i, f := range ints {
		v, err := parsePreambleInt(fields[i])
		if err != nil {
			return p, &AcquisitionError{Reason: fmt.Sprintf("malformed preamble %s: %q", f.name, fields[i])}
		}
		*f.value = v
	}
	floats := []struct {
		name  string
		index int
		value *float64
	}{
		{"x increment", 4, &p.XIncrement},
		{"x origin", 5, &p.XOrigin},
		{"y increment", 7, &p.YIncrement},
		{"y origin", 8, &p.YOrigin},
	}
	for _, f := range floats {
		v, err := strconv.ParseFloat(strings.TrimSpace(fields[f.index]), 64)
		if err != nil {
			return p, &AcquisitionError{Reason: fmt.Sprintf("malformed preamble %s: %q", f.name, fields[f.index])}
		}
		*f.value = v
	}
	var err error
	if p.XReference, err = parsePreambleInt(fields[6]); err != nil {
		return p, &AcquisitionError{Reason: fmt.Sprintf("malformed preamble x reference: %q", fields[6])}
	}
	if p.YReference, err = parsePreambleInt(fields[9]); err != nil {
		return p, &AcquisitionError{Reason: fmt.Sprintf("malformed preamble y reference: %q", fields[9])}
	}
	if p.Points <= 0 {
		return p, &AcquisitionError{Reason: fmt.Sprintf("preamble reports %d samples", p.Points)}
	}
	if p.XIncrement <= 0 {
		return p, &AcquisitionError{Reason: fmt.Sprintf("preamble reports non-positive time increment %G", p.XIncrement)}
	}
	return p, nil
}

// parsePreambleInt parses an integer field that some firmwares format as a
// float, for example "0.0000000e+00".
func parsePreambleInt(field string) (int, error) {
	s := strings.TrimSpace(field)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

// parseBlockHeader parses the start of an IEEE 488.2 definite-length block,
// "#<d><len>". The input must hold at least the first two bytes. It returns
// the header length and the payload length.
func parseBlockHeader(b []byte) (int, int, error) {
	if len(b) < 2 || b[0] != '#' {
		return 0, 0, fmt.Errorf("block does not start with #")
	}
	digits := int(b[1]) - '0'
	if digits < 1 || digits > 9 {
		return 0, 0, fmt.Errorf("invalid block length digit %q", b[1])
	}
	header := 2 + digits
	if len(b) < header {
		return 0, 0, fmt.Errorf("truncated block header: %d bytes", len(b))
	}
	n, err := strconv.Atoi(string(b[2:header]))
	if err != nil || n < 0 {
		return 0, 0, fmt.Errorf("invalid block length %q", b[2:header])
	}
	return header, n, nil
}

// stripBlock removes the definite-length framing from a :WAV:DATA? reply
// and returns the raw payload.
func stripBlock(reply []byte) ([]byte, error) {
	header, n, err := parseBlockHeader(reply)
	if err != nil {
		return nil, &AcquisitionError{Reason: fmt.Sprintf("malformed sample block: %v", err)}
	}
	payload := reply[header:]
	// Some transports keep the trailing terminator, some strip it.
	payload = bytes.TrimSuffix(payload, []byte{'\n'})
	if len(payload) < n {
		return nil, &AcquisitionError{Reason: "truncated sample block", Want: n, Got: len(payload)}
	}
	return payload[:n], nil
}

// decodeWaveform converts a raw sample payload into calibrated samples:
//
//	Voltage[i] = (code[i] - YOrigin - YReference) * YIncrement
//	Time[i]    = (i - XReference) * XIncrement + XOrigin
func decodeWaveform(ch Channel, p GXWaveformPreamble, payload []byte) (*GXWaveform, error) {
	width := p.SampleWidth()
	if width == 0 {
		return nil, &AcquisitionError{Reason: fmt.Sprintf("unsupported waveform format %s", p.Format)}
	}
	if len(payload)%width != 0 {
		return nil, &AcquisitionError{Reason: fmt.Sprintf("sample block length %d is not a multiple of the %d byte sample width", len(payload), width)}
	}
	got := len(payload) / width
	if got != p.Points {
		return nil, &AcquisitionError{Reason: "sample count disagrees with preamble", Want: p.Points, Got: got}
	}
	w := &GXWaveform{
		Channel:  ch,
		Time:     make([]float64, got),
		Voltage:  make([]float64, got),
		Preamble: p,
	}
	offset := p.YOrigin + float64(p.YReference)
	for i := 0; i < got; i++ {
		var code float64
		if width == 1 {
			code = float64(payload[i])
		} else {
			code = float64(binary.LittleEndian.Uint16(payload[2*i:]))
		}
		w.Voltage[i] = (code - offset) * p.YIncrement
		w.Time[i] = (float64(i)-float64(p.XReference))*p.XIncrement + p.XOrigin
	}
	return w, nil
}
