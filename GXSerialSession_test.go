//go:build linux

package gxscope

import (
	"bufio"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/Gurux/gxcommon-go"
	"github.com/creack/pty"
	"github.com/stretchr/testify/require"
)

// openPtySession opens a session on the slave end of a pty. The master end
// plays the instrument; handle answers every received command and a nil
// reply keeps the instrument silent.
func openPtySession(t *testing.T, handle func(command string) []byte) (*GXSerialSession, *os.File) {
	t.Helper()
	master, slave, err := pty.Open()
	require.NoError(t, err)
	t.Cleanup(func() { master.Close(); slave.Close() })

	s := NewGXSerialSession(slave.Name(), 9600, 8, gxcommon.ParityNone, gxcommon.StopBitsOne)
	require.NoError(t, s.Open())
	t.Cleanup(func() { s.Close() })

	go func() {
		r := bufio.NewReader(master)
		for {
			line, err := r.ReadString('\n')
			if err != nil {
				return
			}
			if reply := handle(strings.TrimSuffix(line, "\n")); reply != nil {
				if _, err := master.Write(reply); err != nil {
					return
				}
			}
		}
	}()
	return s, master
}

func TestSerialSessionQueryLine(t *testing.T) {
	commands := make(chan string, 8)
	s, _ := openPtySession(t, func(command string) []byte {
		commands <- command
		if command == "*IDN?" {
			return []byte("RIGOL TECHNOLOGIES,DS1104Z,DS1ZA1234,00.04.04\n")
		}
		return []byte("0.001\r\n")
	})
	require.True(t, s.IsOpen())

	reply, err := s.Query("*IDN?")
	require.NoError(t, err)
	require.Equal(t, "RIGOL TECHNOLOGIES,DS1104Z,DS1ZA1234,00.04.04", string(reply))

	// A carriage return before the terminator is not part of the reply.
	reply, err = s.Query(":TIM:SCAL?")
	require.NoError(t, err)
	require.Equal(t, "0.001", string(reply))

	select {
	case command := <-commands:
		require.Equal(t, "*IDN?", command)
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for the command")
	}
}

func TestSerialSessionQueryBlock(t *testing.T) {
	payload := "AB\nCDE"
	s, _ := openPtySession(t, func(command string) []byte {
		if command == ":WAV:DATA?" {
			return []byte("#16" + payload + "\n")
		}
		return []byte("line\n")
	})

	reply, err := s.Query(":WAV:DATA?")
	require.NoError(t, err)
	require.Equal(t, "#16"+payload, string(reply))

	data, err := stripBlock(reply)
	require.NoError(t, err)
	require.Equal(t, payload, string(data))

	// The terminator after the block must not leak into the next reply.
	reply, err = s.Query(":TIM:SCAL?")
	require.NoError(t, err)
	require.Equal(t, "line", string(reply))
}

func TestSerialSessionQueryTimeout(t *testing.T) {
	s, _ := openPtySession(t, func(command string) []byte {
		return nil
	})
	s.SetWaitTime(50 * time.Millisecond)

	start := time.Now()
	_, err := s.Query("*IDN?")
	var te *TimeoutError
	require.ErrorAs(t, err, &te)
	require.True(t, te.Timeout())
	require.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)

	// The session stays usable after a timeout.
	require.True(t, s.IsOpen())
}

func TestSerialSessionCloseUnblocksReader(t *testing.T) {
	s, _ := openPtySession(t, func(command string) []byte {
		return nil
	})

	done := make(chan struct{})
	go func() {
		s.Close()
		s.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for Close to return")
	}
	require.False(t, s.IsOpen())
}

func TestSerialSessionOpenMissingDevice(t *testing.T) {
	s := NewGXSerialSession("/dev/ttyUSB-none-77", 9600, 8, gxcommon.ParityNone, gxcommon.StopBitsOne)
	err := s.Open()
	var ce *ConnectionError
	require.ErrorAs(t, err, &ce)
	require.False(t, s.IsOpen())
}

func TestGetPortNames(t *testing.T) {
	names, err := GetPortNames()
	require.NoError(t, err)
	for _, name := range names {
		require.NotEmpty(t, name)
	}
}
