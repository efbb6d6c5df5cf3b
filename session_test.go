package gxscope

import (
	"testing"
	"time"

	"github.com/Gurux/gxcommon-go"
	"github.com/stretchr/testify/require"
)

func TestNewSessionNet(t *testing.T) {
	s, err := newSession("TCPIP0::192.168.1.5::5555::SOCKET")
	require.NoError(t, err)
	n, ok := s.(*GXNetSession)
	require.True(t, ok)
	require.Equal(t, "TCPIP0::192.168.1.5::5555::SOCKET", n.Resource())

	// The raw socket port is the default.
	s, err = newSession("TCPIP::scope.local")
	require.NoError(t, err)
	require.Equal(t, "TCPIP0::scope.local::5555::SOCKET", s.Resource())

	s, err = newSession("TCPIP0::scope.local::INSTR")
	require.NoError(t, err)
	require.Equal(t, "TCPIP0::scope.local::5555::SOCKET", s.Resource())

	_, err = newSession("TCPIP0")
	require.Error(t, err)
	_, err = newSession("TCPIP0::scope.local::http")
	require.Error(t, err)
}

func TestNewSessionSerial(t *testing.T) {
	s, err := newSession("ASRL/dev/ttyUSB0::INSTR")
	require.NoError(t, err)
	sp, ok := s.(*GXSerialSession)
	require.True(t, ok)
	require.Equal(t, "/dev/ttyUSB0", sp.Device)
	require.Equal(t, gxcommon.BaudRate(9600), sp.BaudRate())
	require.Equal(t, 8, sp.DataBits())
	require.Equal(t, gxcommon.ParityNone, sp.Parity())
	require.Equal(t, gxcommon.StopBitsOne, sp.StopBits())

	s, err = newSession("ASRLCOM3::115200,7,Even,Two::INSTR")
	require.NoError(t, err)
	sp = s.(*GXSerialSession)
	require.Equal(t, "COM3", sp.Device)
	require.Equal(t, gxcommon.BaudRate(115200), sp.BaudRate())
	require.Equal(t, 7, sp.DataBits())
	require.Equal(t, gxcommon.ParityEven, sp.Parity())
	require.Equal(t, gxcommon.StopBitsTwo, sp.StopBits())

	_, err = newSession("ASRL::INSTR")
	require.Error(t, err)
	_, err = newSession("ASRL/dev/ttyUSB0::fast::INSTR")
	require.Error(t, err)
}

func TestNewSessionUsb(t *testing.T) {
	s, err := newSession("USB0::0x1AB1::0x04CE::INSTR")
	require.NoError(t, err)
	u, ok := s.(*GXUsbSession)
	require.True(t, ok)
	require.Equal(t, "USB0::0x1AB1::0x04CE::INSTR", u.Resource())

	// Decimal ids and an instrument serial number.
	s, err = newSession("USB::6833::1230::DS1ZA1234::INSTR")
	require.NoError(t, err)
	require.Equal(t, "USB0::0x1AB1::0x04CE::DS1ZA1234::INSTR", s.Resource())

	_, err = newSession("USB0::0x1AB1")
	require.Error(t, err)
	_, err = newSession("USB0::rigol::0x04CE::INSTR")
	require.Error(t, err)
}

func TestNewSessionGpib(t *testing.T) {
	s, err := newSession("GPIB0::7::/dev/ttyUSB1::INSTR")
	require.NoError(t, err)
	g, ok := s.(*GXGpibSession)
	require.True(t, ok)
	require.Equal(t, 7, g.PrimaryAddress())
	require.Equal(t, "/dev/ttyUSB1", g.Adapter)
	require.Equal(t, "GPIB0::7::/dev/ttyUSB1::INSTR", g.Resource())

	_, err = newSession("GPIB0")
	require.Error(t, err)
	_, err = newSession("GPIB0::31::/dev/ttyUSB1::INSTR")
	require.Error(t, err)
	_, err = newSession("GPIB0::7::INSTR")
	require.Error(t, err)
}

func TestNewSessionUnsupported(t *testing.T) {
	_, err := newSession("VXI0::1::INSTR")
	require.Error(t, err)
}

func TestOpenSessionBadResource(t *testing.T) {
	_, err := OpenSession("VXI0::1::INSTR", time.Second)
	var ce *ConnectionError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, "VXI0::1::INSTR", ce.Resource)
}

func TestSessionWaitTime(t *testing.T) {
	for _, s := range []IGXSession{
		NewGXNetSession("scope.local", 5555),
		NewGXSerialSession("/dev/ttyUSB0", 9600, 8, gxcommon.ParityNone, gxcommon.StopBitsOne),
		NewGXUsbSession(0x1AB1, 0x04CE, ""),
		NewGXGpibSession("/dev/ttyUSB1", 7),
	} {
		require.Equal(t, defaultWaitTime, s.WaitTime(), s.Resource())
		s.SetWaitTime(time.Second)
		require.Equal(t, time.Second, s.WaitTime(), s.Resource())
	}
}

func TestSessionClosedErrors(t *testing.T) {
	for _, s := range []IGXSession{
		NewGXNetSession("scope.local", 5555),
		NewGXSerialSession("/dev/ttyUSB0", 9600, 8, gxcommon.ParityNone, gxcommon.StopBitsOne),
		NewGXUsbSession(0x1AB1, 0x04CE, ""),
		NewGXGpibSession("/dev/ttyUSB1", 7),
	} {
		require.False(t, s.IsOpen(), s.Resource())
		require.NoError(t, s.Close(), s.Resource())

		var te *TransportError
		err := s.WriteCommand("*IDN?")
		require.ErrorAs(t, err, &te, s.Resource())
		_, err = s.Query("*IDN?")
		require.ErrorAs(t, err, &te, s.Resource())
	}
}
