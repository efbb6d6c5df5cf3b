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
	"encoding/binary"
	"fmt"
)

// USBTMC bulk message IDs.
const (
	devDepMsgOut   = 0x01
	reqDevDepMsgIn = 0x02
	devDepMsgIn    = 0x02
)

// Bulk header transfer attribute bits.
const (
	transferAttrEOM = 0x01
)

// bulkHeaderSize is the size of the header preceding every bulk transfer.
const bulkHeaderSize = 12

// tagger hands out bulk transfer tags. A tag identifies a transfer and is
// echoed back by the device. Zero is not a valid tag.
type tagger struct {
	last uint8
}

func (t *tagger) next() uint8 {
	t.last++
	if t.last == 0 {
		t.last = 1
	}
	return t.last
}

// encodeMsgOut frames a device dependent message out transfer. The payload
// is padded to a four byte boundary and eom marks the last transfer of the
// message.
func encodeMsgOut(tag uint8, data []byte, eom bool) []byte {
	pad := (4 - len(data)%4) % 4
	buf := make([]byte, bulkHeaderSize+len(data)+pad)
	buf[0] = devDepMsgOut
	buf[1] = tag
	buf[2] = ^tag
	binary.LittleEndian.PutUint32(buf[4:8], uint32(len(data)))
	if eom {
		buf[8] = transferAttrEOM
	}
	copy(buf[bulkHeaderSize:], data)
	return buf
}

// encodeMsgInReq frames a request for the device to send at most size bytes
// of its pending reply.
func encodeMsgInReq(tag uint8, size uint32) []byte {
	buf := make([]byte, bulkHeaderSize)
	buf[0] = reqDevDepMsgIn
	buf[1] = tag
	buf[2] = ^tag
	binary.LittleEndian.PutUint32(buf[4:8], size)
	return buf
}

// bulkInHeader is the parsed header of a device dependent message in
// transfer.
type bulkInHeader struct {
	tag  uint8
	size int
	eom  bool
}

// parseBulkIn validates the header of a bulk in transfer against the tag of
// the matching request and returns the header and the payload carried by
// this transfer.
func parseBulkIn(tag uint8, buf []byte) (bulkInHeader, []byte, error) {
	var h bulkInHeader
	if len(buf) < bulkHeaderSize {
		return h, nil, fmt.Errorf("short bulk transfer: %d bytes", len(buf))
	}
	if buf[0] != devDepMsgIn {
		return h, nil, fmt.Errorf("unexpected bulk message id 0x%02X", buf[0])
	}
	if buf[1] != tag || buf[2] != ^tag {
		return h, nil, fmt.Errorf("bulk transfer tag mismatch: got 0x%02X/0x%02X, want 0x%02X/0x%02X", buf[1], buf[2], tag, ^tag)
	}
	h.tag = buf[1]
	h.size = int(binary.LittleEndian.Uint32(buf[4:8]))
	h.eom = buf[8]&transferAttrEOM != 0
	payload := buf[bulkHeaderSize:]
	if h.size < len(payload) {
		payload = payload[:h.size]
	}
	return h, payload, nil
}
