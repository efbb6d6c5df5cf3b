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
	"sync"
	"time"
)

// receiveBuffer collects bytes from the reader goroutine and hands them to
// the session thread. Readers block until enough data has arrived or the
// deadline passes.
type receiveBuffer struct {
	mu   sync.Mutex
	buf  []byte
	wait chan struct{}
}

func newReceiveBuffer() *receiveBuffer {
	return &receiveBuffer{wait: make(chan struct{})}
}

func (b *receiveBuffer) Append(p []byte) {
	if len(p) == 0 {
		return
	}
	b.mu.Lock()
	b.buf = append(b.buf, p...)
	old := b.wait
	b.wait = make(chan struct{})
	b.mu.Unlock()
	close(old)
}

// Reset drops buffered bytes. Called before a command is sent so a stale
// reply is not read as the answer to the new command.
func (b *receiveBuffer) Reset() {
	b.mu.Lock()
	b.buf = b.buf[:0]
	b.mu.Unlock()
}

// await blocks until ch is closed or the deadline passes. It returns false
// on timeout.
func await(ch chan struct{}, deadline time.Time) bool {
	rem := time.Until(deadline)
	if rem <= 0 {
		return false
	}
	timer := time.NewTimer(rem)
	select {
	case <-ch:
		if !timer.Stop() {
			<-timer.C
		}
		return true
	case <-timer.C:
		return false
	}
}

// Peek returns a copy of the first count bytes without consuming them.
// It returns false if count bytes do not arrive before maxWait.
func (b *receiveBuffer) Peek(count int, maxWait time.Duration) ([]byte, bool) {
	deadline := time.Now().Add(maxWait)
	for {
		b.mu.Lock()
		if len(b.buf) >= count {
			ret := make([]byte, count)
			copy(ret, b.buf)
			b.mu.Unlock()
			return ret, true
		}
		ch := b.wait
		b.mu.Unlock()

		if maxWait <= 0 || !await(ch, deadline) {
			return nil, false
		}
	}
}

// Read consumes and returns the first count bytes. It returns false if
// count bytes do not arrive before maxWait.
func (b *receiveBuffer) Read(count int, maxWait time.Duration) ([]byte, bool) {
	deadline := time.Now().Add(maxWait)
	for {
		b.mu.Lock()
		if len(b.buf) >= count {
			ret := make([]byte, count)
			copy(ret, b.buf)
			b.buf = b.buf[count:]
			b.mu.Unlock()
			return ret, true
		}
		ch := b.wait
		b.mu.Unlock()

		if maxWait <= 0 || !await(ch, deadline) {
			return nil, false
		}
	}
}

// ReadUntil consumes and returns bytes up to and including the first
// occurrence of delim. It returns false if delim does not arrive before
// maxWait.
func (b *receiveBuffer) ReadUntil(delim byte, maxWait time.Duration) ([]byte, bool) {
	deadline := time.Now().Add(maxWait)
	lastStart := 0
	for {
		b.mu.Lock()
		start := lastStart
		if start > len(b.buf) {
			start = len(b.buf)
		}
		if i := bytes.IndexByte(b.buf[start:], delim); i >= 0 {
			end := start + i + 1
			ret := make([]byte, end)
			copy(ret, b.buf)
			b.buf = b.buf[end:]
			b.mu.Unlock()
			return ret, true
		}
		// Scanned bytes need not be scanned again.
		lastStart = len(b.buf)
		ch := b.wait
		b.mu.Unlock()

		if maxWait <= 0 || !await(ch, deadline) {
			return nil, false
		}
	}
}
