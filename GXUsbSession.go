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
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/gousb"
)

// usbReadChunk is the largest reply portion requested per bulk in transfer.
const usbReadChunk = 64 * 1024

// GXUsbSession is a session over USBTMC. Commands and replies travel in
// device dependent messages on the bulk endpoints of the instrument.
type GXUsbSession struct {
	vendorID  uint16
	productID uint16
	serial    string
	waitTime  time.Duration

	ctx  *gousb.Context
	dev  *gousb.Device
	intf *gousb.Interface
	done func()
	in   *gousb.InEndpoint
	out  *gousb.OutEndpoint
	tags tagger
}

// NewGXUsbSession creates a session for the instrument with the given USB
// vendor and product id. If serial is not empty only the device with that
// serial number is accepted.
func NewGXUsbSession(vendorID, productID uint16, serial string) *GXUsbSession {
	return &GXUsbSession{
		vendorID:  vendorID,
		productID: productID,
		serial:    serial,
		waitTime:  defaultWaitTime,
	}
}

// Resource implements IGXSession.
func (g *GXUsbSession) Resource() string {
	if g.serial == "" {
		return fmt.Sprintf("USB0::0x%04X::0x%04X::INSTR", g.vendorID, g.productID)
	}
	return fmt.Sprintf("USB0::0x%04X::0x%04X::%s::INSTR", g.vendorID, g.productID, g.serial)
}

func (g *GXUsbSession) String() string {
	return g.Resource()
}

// WaitTime implements IGXSession.
func (g *GXUsbSession) WaitTime() time.Duration {
	return g.waitTime
}

// SetWaitTime implements IGXSession.
func (g *GXUsbSession) SetWaitTime(value time.Duration) {
	g.waitTime = value
}

// IsOpen implements IGXSession.
func (g *GXUsbSession) IsOpen() bool {
	return g.dev != nil
}

// Open implements IGXSession.
func (g *GXUsbSession) Open() error {
	if g.dev != nil {
		return nil
	}
	g.ctx = gousb.NewContext()
	dev, err := g.openDevice()
	if err != nil {
		g.cleanup()
		return &ConnectionError{Resource: g.Resource(), Err: err}
	}
	g.dev = dev
	if err := g.dev.SetAutoDetach(true); err != nil {
		g.cleanup()
		return &ConnectionError{Resource: g.Resource(), Err: err}
	}
	g.intf, g.done, err = g.dev.DefaultInterface()
	if err != nil {
		g.cleanup()
		return &ConnectionError{Resource: g.Resource(), Err: err}
	}
	if err := g.findEndpoints(); err != nil {
		g.cleanup()
		return &ConnectionError{Resource: g.Resource(), Err: err}
	}
	return nil
}

// openDevice opens the first device matching the vendor and product id and,
// when set, the serial number.
func (g *GXUsbSession) openDevice() (*gousb.Device, error) {
	if g.serial == "" {
		dev, err := g.ctx.OpenDeviceWithVIDPID(gousb.ID(g.vendorID), gousb.ID(g.productID))
		if err != nil {
			return nil, err
		}
		if dev == nil {
			return nil, fmt.Errorf("no device with id %04x:%04x", g.vendorID, g.productID)
		}
		return dev, nil
	}
	devs, err := g.ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		return desc.Vendor == gousb.ID(g.vendorID) && desc.Product == gousb.ID(g.productID)
	})
	var found *gousb.Device
	for _, dev := range devs {
		if found == nil {
			if sn, serr := dev.SerialNumber(); serr == nil && sn == g.serial {
				found = dev
				continue
			}
		}
		_ = dev.Close()
	}
	if found == nil {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("no device with id %04x:%04x and serial %q", g.vendorID, g.productID, g.serial)
	}
	return found, nil
}

// findEndpoints locates the bulk endpoints of the claimed interface.
func (g *GXUsbSession) findEndpoints() error {
	for _, desc := range g.intf.Setting.Endpoints {
		if desc.TransferType != gousb.TransferTypeBulk {
			continue
		}
		switch desc.Direction {
		case gousb.EndpointDirectionIn:
			if g.in == nil {
				ep, err := g.intf.InEndpoint(desc.Number)
				if err != nil {
					return err
				}
				g.in = ep
			}
		case gousb.EndpointDirectionOut:
			if g.out == nil {
				ep, err := g.intf.OutEndpoint(desc.Number)
				if err != nil {
					return err
				}
				g.out = ep
			}
		}
	}
	if g.in == nil || g.out == nil {
		return errors.New("no bulk endpoints on default interface")
	}
	return nil
}

func (g *GXUsbSession) cleanup() {
	if g.done != nil {
		g.done()
		g.done = nil
	}
	g.intf = nil
	g.in = nil
	g.out = nil
	if g.dev != nil {
		_ = g.dev.Close()
		g.dev = nil
	}
	if g.ctx != nil {
		_ = g.ctx.Close()
		g.ctx = nil
	}
}

// Close implements IGXSession.
func (g *GXUsbSession) Close() error {
	if g.dev == nil {
		return nil
	}
	g.cleanup()
	return nil
}

// WriteCommand implements IGXSession.
func (g *GXUsbSession) WriteCommand(command string) error {
	if g.dev == nil {
		return &TransportError{Operation: command, Err: errors.New("session is closed")}
	}
	cctx, cancel := context.WithTimeout(context.Background(), g.waitTime)
	defer cancel()
	return g.writeMsg(cctx, command)
}

func (g *GXUsbSession) writeMsg(cctx context.Context, command string) error {
	msg := encodeMsgOut(g.tags.next(), append([]byte(command), terminator), true)
	if _, err := g.out.WriteContext(cctx, msg); err != nil {
		return g.wrap(cctx, command, err)
	}
	return nil
}

// Query implements IGXSession.
func (g *GXUsbSession) Query(command string) ([]byte, error) {
	if g.dev == nil {
		return nil, &TransportError{Operation: command, Err: errors.New("session is closed")}
	}
	cctx, cancel := context.WithTimeout(context.Background(), g.waitTime)
	defer cancel()
	if err := g.writeMsg(cctx, command); err != nil {
		return nil, err
	}
	var reply []byte
	for {
		tag := g.tags.next()
		if _, err := g.out.WriteContext(cctx, encodeMsgInReq(tag, usbReadChunk)); err != nil {
			return nil, g.wrap(cctx, command, err)
		}
		buf := make([]byte, bulkHeaderSize+usbReadChunk)
		n, err := g.in.ReadContext(cctx, buf)
		if err != nil {
			return nil, g.wrap(cctx, command, err)
		}
		h, payload, err := parseBulkIn(tag, buf[:n])
		if err != nil {
			return nil, &TransportError{Operation: command, Err: err}
		}
		reply = append(reply, payload...)
		if h.eom {
			break
		}
	}
	return bytes.TrimSuffix(reply, []byte{terminator}), nil
}

// wrap converts a transfer failure into the matching session error.
func (g *GXUsbSession) wrap(cctx context.Context, command string, err error) error {
	if cctx.Err() != nil || errors.Is(err, gousb.TransferTimedOut) {
		return &TimeoutError{Operation: command, Wait: g.waitTime}
	}
	return &TransportError{Operation: command, Err: err}
}
