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
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"
)

// rawSocketPort is the raw SCPI socket port of the instrument.
const rawSocketPort = 5555

// GXNetSession is a session over a raw TCP socket.
type GXNetSession struct {
	host     string
	port     int
	waitTime time.Duration

	conn net.Conn
	br   *bufio.Reader
}

// NewGXNetSession creates a session for the instrument listening on the
// given host and port.
func NewGXNetSession(host string, port int) *GXNetSession {
	return &GXNetSession{host: host, port: port, waitTime: defaultWaitTime}
}

// Resource implements IGXSession.
func (s *GXNetSession) Resource() string {
	return fmt.Sprintf("TCPIP0::%s::%d::SOCKET", s.host, s.port)
}

func (s *GXNetSession) String() string {
	return s.Resource()
}

// WaitTime implements IGXSession.
func (s *GXNetSession) WaitTime() time.Duration {
	return s.waitTime
}

// SetWaitTime implements IGXSession.
func (s *GXNetSession) SetWaitTime(value time.Duration) {
	s.waitTime = value
}

// IsOpen implements IGXSession.
func (s *GXNetSession) IsOpen() bool {
	return s.conn != nil
}

// Open implements IGXSession.
func (s *GXNetSession) Open() error {
	if s.conn != nil {
		return nil
	}
	addr := net.JoinHostPort(s.host, strconv.Itoa(s.port))
	conn, err := net.DialTimeout("tcp", addr, s.waitTime)
	if err != nil {
		return &ConnectionError{Resource: s.Resource(), Err: err}
	}
	s.conn = conn
	s.br = bufio.NewReader(conn)
	return nil
}

// Close implements IGXSession.
func (s *GXNetSession) Close() error {
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	s.br = nil
	return err
}

// WriteCommand implements IGXSession.
func (s *GXNetSession) WriteCommand(command string) error {
	if s.conn == nil {
		return &TransportError{Operation: command, Err: errors.New("session is closed")}
	}
	if err := s.conn.SetWriteDeadline(time.Now().Add(s.waitTime)); err != nil {
		return &TransportError{Operation: command, Err: err}
	}
	if _, err := s.conn.Write(append([]byte(command), terminator)); err != nil {
		return s.wrap(command, err)
	}
	return nil
}

// Query implements IGXSession.
func (s *GXNetSession) Query(command string) ([]byte, error) {
	if s.conn == nil {
		return nil, &TransportError{Operation: command, Err: errors.New("session is closed")}
	}
	// Leftovers of an earlier reply, such as the terminator following a
	// definite length block, must not leak into this reply.
	if n := s.br.Buffered(); n > 0 {
		_, _ = s.br.Discard(n)
	}
	if err := s.WriteCommand(command); err != nil {
		return nil, err
	}
	if err := s.conn.SetReadDeadline(time.Now().Add(s.waitTime)); err != nil {
		return nil, &TransportError{Operation: command, Err: err}
	}
	first, err := s.br.Peek(1)
	if err != nil {
		return nil, s.wrap(command, err)
	}
	if first[0] != '#' {
		line, err := s.br.ReadBytes(terminator)
		if err != nil {
			return nil, s.wrap(command, err)
		}
		return bytes.TrimRight(line, "\r\n"), nil
	}
	head, err := s.br.Peek(2)
	if err != nil {
		return nil, s.wrap(command, err)
	}
	digits := int(head[1]) - '0'
	if digits < 1 || digits > 9 {
		return nil, &TransportError{Operation: command, Err: fmt.Errorf("invalid block length digit %q", head[1])}
	}
	head, err = s.br.Peek(2 + digits)
	if err != nil {
		return nil, s.wrap(command, err)
	}
	header, n, err := parseBlockHeader(head)
	if err != nil {
		return nil, &TransportError{Operation: command, Err: err}
	}
	reply := make([]byte, header+n)
	if _, err := io.ReadFull(s.br, reply); err != nil {
		return nil, s.wrap(command, err)
	}
	return reply, nil
}

// wrap converts a network failure into the matching session error.
func (s *GXNetSession) wrap(command string, err error) error {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return &TimeoutError{Operation: command, Wait: s.waitTime}
	}
	return &TransportError{Operation: command, Err: err}
}
