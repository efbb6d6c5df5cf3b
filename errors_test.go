package gxscope

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConnectionErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := error(&ConnectionError{Resource: "TCPIP0::scope.local::5555::SOCKET", Err: cause})
	require.EqualError(t, err, "connect to TCPIP0::scope.local::5555::SOCKET: connection refused")
	require.ErrorIs(t, err, cause)
}

func TestNotConnectedErrorMessage(t *testing.T) {
	err := error(&NotConnectedError{Operation: "SetTimebase"})
	require.EqualError(t, err, "not connected: SetTimebase requires an open connection")
}

func TestInvalidArgumentErrorMessage(t *testing.T) {
	err := error(&InvalidArgumentError{Argument: "channel", Value: 5})
	require.EqualError(t, err, "invalid channel: 5")
}

func TestTransportErrorUnwrap(t *testing.T) {
	cause := errors.New("broken pipe")
	err := error(&TransportError{Operation: ":TIM:SCAL 0.001", Err: cause})
	require.EqualError(t, err, ":TIM:SCAL 0.001: broken pipe")
	require.ErrorIs(t, err, cause)
}

func TestTimeoutError(t *testing.T) {
	err := &TimeoutError{Operation: "*IDN?", Wait: 5 * time.Second}
	require.EqualError(t, err, "*IDN?: no reply within 5s")
	require.True(t, err.Timeout())
}

func TestAcquisitionErrorMessage(t *testing.T) {
	err := error(&AcquisitionError{Reason: "truncated sample block", Want: 1200, Got: 600})
	require.EqualError(t, err, "truncated sample block: want 1200, got 600")

	err = &AcquisitionError{Reason: "ascii waveform data is not supported"}
	require.EqualError(t, err, "ascii waveform data is not supported")
}

func TestErrorMatching(t *testing.T) {
	// Wrapped causes stay visible to errors.As through the chain.
	inner := &TimeoutError{Operation: "*IDN?", Wait: time.Second}
	err := error(&ConnectionError{Resource: "USB0::0x1AB1::0x04CE::INSTR", Err: inner})

	var te *TimeoutError
	require.ErrorAs(t, err, &te)
	require.Equal(t, "*IDN?", te.Operation)

	var ce *ConnectionError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, "USB0::0x1AB1::0x04CE::INSTR", ce.Resource)
}
