package gxscope

import (
	"bufio"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// startInstrumentStub runs a line oriented instrument on the loopback
// interface. Every received command is answered by handle; a nil reply
// keeps the instrument silent.
func startInstrumentStub(t *testing.T, handle func(command string) []byte) (string, int) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go func() {
				defer conn.Close()
				r := bufio.NewReader(conn)
				for {
					line, err := r.ReadString('\n')
					if err != nil {
						return
					}
					if reply := handle(strings.TrimSuffix(line, "\n")); reply != nil {
						if _, err := conn.Write(reply); err != nil {
							return
						}
					}
				}
			}()
		}
	}()
	return "127.0.0.1", ln.Addr().(*net.TCPAddr).Port
}

func TestNetSessionQueryLine(t *testing.T) {
	commands := make(chan string, 8)
	host, port := startInstrumentStub(t, func(command string) []byte {
		commands <- command
		if command == "*IDN?" {
			return []byte("RIGOL TECHNOLOGIES,DS1104Z,DS1ZA1234,00.04.04\n")
		}
		return []byte("ok\n")
	})

	s := NewGXNetSession(host, port)
	require.False(t, s.IsOpen())
	require.NoError(t, s.Open())
	require.True(t, s.IsOpen())
	t.Cleanup(func() { s.Close() })
	// Opening an open session changes nothing.
	require.NoError(t, s.Open())

	reply, err := s.Query("*IDN?")
	require.NoError(t, err)
	require.Equal(t, "RIGOL TECHNOLOGIES,DS1104Z,DS1ZA1234,00.04.04", string(reply))

	select {
	case command := <-commands:
		require.Equal(t, "*IDN?", command)
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for the command")
	}

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	require.False(t, s.IsOpen())
}

func TestNetSessionQueryBlock(t *testing.T) {
	payload := "AB\nCDEFG"
	host, port := startInstrumentStub(t, func(command string) []byte {
		if command == ":WAV:DATA?" {
			return []byte("#18" + payload + "\n")
		}
		return []byte("line\n")
	})

	s := NewGXNetSession(host, port)
	require.NoError(t, s.Open())
	t.Cleanup(func() { s.Close() })

	// Block framing is kept and the embedded terminator does not end the
	// reply early.
	reply, err := s.Query(":WAV:DATA?")
	require.NoError(t, err)
	require.Equal(t, "#18"+payload, string(reply))

	data, err := stripBlock(reply)
	require.NoError(t, err)
	require.Equal(t, payload, string(data))

	// The terminator after the block must not leak into the next reply.
	reply, err = s.Query(":TIM:SCAL?")
	require.NoError(t, err)
	require.Equal(t, "line", string(reply))
}

func TestNetSessionQueryTimeout(t *testing.T) {
	host, port := startInstrumentStub(t, func(command string) []byte {
		return nil
	})

	s := NewGXNetSession(host, port)
	s.SetWaitTime(50 * time.Millisecond)
	require.NoError(t, s.Open())
	t.Cleanup(func() { s.Close() })

	_, err := s.Query("*IDN?")
	var te *TimeoutError
	require.ErrorAs(t, err, &te)
	require.True(t, te.Timeout())
	require.Equal(t, "*IDN?", te.Operation)
	require.Equal(t, 50*time.Millisecond, te.Wait)

	// The session stays usable after a timeout.
	require.True(t, s.IsOpen())
}

func TestNetSessionOpenRefused(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	s := NewGXNetSession("127.0.0.1", port)
	s.SetWaitTime(time.Second)
	err = s.Open()
	var ce *ConnectionError
	require.ErrorAs(t, err, &ce)
	require.False(t, s.IsOpen())
}

func TestNetSessionWriteCommandTerminator(t *testing.T) {
	commands := make(chan string, 1)
	host, port := startInstrumentStub(t, func(command string) []byte {
		commands <- command
		return nil
	})

	s := NewGXNetSession(host, port)
	require.NoError(t, s.Open())
	t.Cleanup(func() { s.Close() })

	require.NoError(t, s.WriteCommand(":CHAN1:SCAL 0.5"))
	select {
	case command := <-commands:
		// The stub only sees a command once the terminator arrives.
		require.Equal(t, ":CHAN1:SCAL 0.5", command)
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for the command")
	}
}
