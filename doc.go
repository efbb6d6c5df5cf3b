// Package gxscope provides oscilloscope control for Gurux components.
// It layers a command/response instrument contract on top of exchangeable
// transport sessions: connect/disconnect with an identification handshake,
// configure channel, timebase, voltage scale and trigger, and acquire
// waveforms decoded to voltages and sample times.
//
// Features
//
//   - Sessions over raw TCP sockets, serial ports, USBTMC and Prologix GPIB
//   - VISA style resource names select and configure the transport
//   - Connect performs the *IDN? handshake before the scope is usable
//   - Waveform acquisition with preamble based scaling to volts and seconds
//   - Definite length block framing; binary payloads survive the transports
//   - Tracing: configurable trace level/mask for sent/received/error/info.
//   - Events: ConnectionState, Error and Trace callbacks.
//   - Concurrency: operations serialize; one command is in flight at a time.
//
// # Construction
//
// Use NewGXScope to create a controller with the used resource name.
// Additional options (such as wait time, tracing) can be configured through
// setters. Sessions can also be used directly through OpenSession or the
// NewGX*Session constructors.
//
// Example
//
//	scope := gxscope.NewGXScope("TCPIP0::192.168.1.93::5555::SOCKET")
//
//	scope.SetOnTrace(func(s *gxscope.GXScope, e gxcommon.TraceEventArgs) {
//	    // log e.String()
//	})
//	scope.SetOnError(func(s *gxscope.GXScope, err error) {
//	    // log/handle error
//	})
//
//	if err := scope.Connect(); err != nil {
//	    // handle connect error
//	}
//	defer scope.Disconnect()
//
//	wf, err := scope.AcquireWaveform(gxscope.Channel1)
//	if err == nil {
//	    // wf.Time[i], wf.Voltage[i]
//	}
//
// # Resource names
//
// The resource name picks the transport and its settings:
//
//   - "TCPIP0::<host>::<port>::SOCKET" is a raw socket, port defaults to 5555.
//   - "ASRL<device>::<baud>,<bits>,<parity>,<stop>::INSTR" is a serial port.
//   - "USB0::<vid>::<pid>[::<serial>]::INSTR" is USBTMC bulk endpoints.
//   - "GPIB0::<pad>::<adapter>::INSTR" is a Prologix controller on a serial
//     device, instrument at primary address pad.
//
// # Errors and timeouts
//
// Failures are returned as typed errors: ConnectionError, NotConnectedError,
// InvalidArgumentError, TransportError, TimeoutError and AcquisitionError.
// A command waits at most the configured wait time for its reply; commands
// are never retried and a timeout leaves the connection open.
//
// # Notes
//
// The zero value of GXScope is not ready for use; always construct via
// NewGXScope. Long-running work in event handlers should be offloaded to a
// separate goroutine to avoid blocking the operation that fired them.
package gxscope
