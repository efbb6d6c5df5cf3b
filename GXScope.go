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
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Gurux/gxcommon-go"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// StateHandler is called when the connection state changes.
type StateHandler func(sender *GXScope, state ConnectionState)

// TraceHandler is called when a command is sent or a reply is received.
type TraceHandler func(sender *GXScope, args gxcommon.TraceEventArgs)

// ErrorHandler is called when an operation against the instrument fails.
type ErrorHandler func(sender *GXScope, err error)

// GXScope drives an oscilloscope over a session. One command is in flight
// at a time; concurrent calls serialize on the internal mutex.
type GXScope struct {
	resource string
	waitTime time.Duration
	// The trace level specifies which types of trace messages are emitted.
	traceLevel gxcommon.TraceLevel

	mu sync.RWMutex

	state   ConnectionState
	session IGXSession
	channel Channel
	id      string

	// open creates the session when Connect is called. Tests replace it.
	open func(resource string, waitTime time.Duration) (IGXSession, error)

	commandsSent    uint64
	repliesReceived uint64

	//Called when the connection state is changed.
	onState StateHandler

	//Called when the scope is sending or receiving data.
	onTrace TraceHandler

	//Called when an operation fails.
	onErr ErrorHandler

	// Printer for localized messages.
	p *message.Printer
}

// NewGXScope creates a GXScope configured with the given resource name.
func NewGXScope(resource string) *GXScope {
	g := &GXScope{resource: resource, channel: Channel1, waitTime: defaultWaitTime, open: OpenSession}
	g.Localize(language.AmericanEnglish)
	return g
}

func (g *GXScope) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return fmt.Sprintf("%s %s", g.resource, g.state)
}

// GetName returns the resource name of the instrument.
func (g *GXScope) GetName() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.resource
}

// Resource returns the used resource name.
func (g *GXScope) Resource() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.resource
}

// SetResource sets the used resource name. The resource cannot change while
// the connection is open.
func (g *GXScope) SetResource(value string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == Connected {
		return errors.New(g.p.Sprintf("msg.already_connected"))
	}
	g.resource = value
	return nil
}

// WaitTime returns how long a command waits for its reply.
func (g *GXScope) WaitTime() time.Duration {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.waitTime
}

// SetWaitTime sets how long a command waits for its reply.
func (g *GXScope) SetWaitTime(value time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.waitTime = value
	if g.session != nil {
		g.session.SetWaitTime(value)
	}
}

// GetTrace returns the used trace level.
func (g *GXScope) GetTrace() gxcommon.TraceLevel {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.traceLevel
}

// SetTrace sets the used trace level.
func (g *GXScope) SetTrace(traceLevel gxcommon.TraceLevel) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.traceLevel = traceLevel
	return nil
}

// GetConnectionState returns the state of the connection.
func (g *GXScope) GetConnectionState() ConnectionState {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// IsConnected returns true when the identification handshake has completed
// and the instrument is usable.
func (g *GXScope) IsConnected() bool {
	return g.GetConnectionState() == Connected
}

// SelectedChannel returns the channel waveform operations read from.
func (g *GXScope) SelectedChannel() Channel {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.channel
}

// InstrumentID returns the identification string reported by the instrument
// when the connection was opened. It is empty while disconnected.
func (g *GXScope) InstrumentID() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.id
}

// GetCommandsSent returns the amount of commands sent.
func (g *GXScope) GetCommandsSent() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.commandsSent
}

// GetRepliesReceived returns the amount of replies received.
func (g *GXScope) GetRepliesReceived() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.repliesReceived
}

// ResetCommandCounters resets the command and reply counters.
func (g *GXScope) ResetCommandCounters() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.commandsSent = 0
	g.repliesReceived = 0
}

// SetOnConnectionStateChange sets the connection state callback.
func (g *GXScope) SetOnConnectionStateChange(value StateHandler) {
	g.mu.Lock()
	g.onState = value
	g.mu.Unlock()
}

// SetOnTrace sets the trace callback.
func (g *GXScope) SetOnTrace(value TraceHandler) {
	g.mu.Lock()
	g.onTrace = value
	g.mu.Unlock()
}

// SetOnError sets the error callback.
func (g *GXScope) SetOnError(value ErrorHandler) {
	g.mu.Lock()
	g.onErr = value
	g.mu.Unlock()
}

func xmlEscape(s string) string {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return s
	}
	return buf.String()
}

// Validate checks that the settings are complete enough to connect.
func (g *GXScope) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.resource == "" {
		return errors.New(g.p.Sprintf("msg.no_resource_selected"))
	}
	return nil
}

// GetSettings returns the settings as a XML fragment.
func (g *GXScope) GetSettings() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var b strings.Builder
	if g.resource != "" {
		fmt.Fprintf(&b, "<Resource>%s</Resource>\n", xmlEscape(g.resource))
	}
	if g.waitTime != 0 {
		fmt.Fprintf(&b, "<WaitTime>%d</WaitTime>\n", g.waitTime/time.Millisecond)
	}
	return b.String()
}

// SetSettings restores the settings from a XML fragment.
func (g *GXScope) SetSettings(value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	dec := xml.NewDecoder(strings.NewReader("<root>" + value + "</root>"))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch se.Name.Local {
		case "Resource":
			var v string
			if err := dec.DecodeElement(&v, &se); err != nil {
				return err
			}
			g.resource = v
		case "WaitTime":
			var v string
			if err := dec.DecodeElement(&v, &se); err != nil {
				return err
			}
			ms, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid WaitTime value: %v", err)
			}
			g.waitTime = time.Duration(ms) * time.Millisecond
		}
	}
	return nil
}

// Connect opens a session to the instrument and performs the
// identification handshake.
func (g *GXScope) Connect() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == Connected {
		return nil
	}
	if err := g.validate(); err != nil {
		return err
	}
	g.trace(false, gxcommon.TraceTypesInfo, g.p.Sprintf("msg.connecting_to", g.resource))
	session, err := g.open(g.resource, g.waitTime)
	if err != nil {
		g.trace(false, gxcommon.TraceTypesError, g.p.Sprintf("msg.connect_failed", g.resource, err))
		g.errorf(false, err)
		return err
	}
	id, err := g.handshake(session)
	if err != nil {
		_ = session.Close()
		cerr := &ConnectionError{Resource: g.resource, Err: err}
		g.trace(false, gxcommon.TraceTypesError, g.p.Sprintf("msg.connect_failed", g.resource, cerr))
		g.errorf(false, cerr)
		return cerr
	}
	g.session = session
	g.id = id
	g.state = Connected
	g.trace(false, gxcommon.TraceTypesInfo, g.p.Sprintf("msg.connected_to", g.resource))
	g.statef(false, Connected)
	return nil
}

func (g *GXScope) handshake(session IGXSession) (string, error) {
	g.tracef(false, gxcommon.TraceTypesSent, "TX: *IDN?")
	g.commandsSent++
	reply, err := session.Query("*IDN?")
	if err != nil {
		return "", err
	}
	id := strings.TrimSpace(string(reply))
	if id == "" {
		return "", errors.New("empty identification reply")
	}
	g.repliesReceived++
	g.tracef(false, gxcommon.TraceTypesReceived, "RX: %s", id)
	return id, nil
}

// Disconnect closes the session. Disconnecting while disconnected does
// nothing.
func (g *GXScope) Disconnect() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == Disconnected && g.session == nil {
		return nil
	}
	g.trace(false, gxcommon.TraceTypesInfo, g.p.Sprintf("msg.closing_connection", g.resource))
	var err error
	if g.session != nil {
		err = g.session.Close()
		g.session = nil
	}
	g.id = ""
	g.state = Disconnected
	g.trace(false, gxcommon.TraceTypesInfo, g.p.Sprintf("msg.connection_closed", g.resource))
	g.statef(false, Disconnected)
	return err
}

// SelectChannel selects the channel waveform operations read from. The
// instrument keeps one selected source at a time.
func (g *GXScope) SelectChannel(ch Channel) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.selectChannel(ch)
}

func (g *GXScope) selectChannel(ch Channel) error {
	if g.state != Connected {
		return &NotConnectedError{Operation: "SelectChannel"}
	}
	if !ch.IsValid() {
		return &InvalidArgumentError{Argument: "channel", Value: int(ch)}
	}
	if err := g.write(fmt.Sprintf(":WAV:SOUR %s", ch)); err != nil {
		return err
	}
	g.channel = ch
	return nil
}

// SetTimebase sets the horizontal scale in seconds per division.
func (g *GXScope) SetTimebase(secondsPerDiv float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.setTimebase(secondsPerDiv)
}

func (g *GXScope) setTimebase(secondsPerDiv float64) error {
	if g.state != Connected {
		return &NotConnectedError{Operation: "SetTimebase"}
	}
	if !validScale(secondsPerDiv) {
		return &InvalidArgumentError{Argument: "timebase scale", Value: secondsPerDiv}
	}
	return g.write(fmt.Sprintf(":TIM:SCAL %G", secondsPerDiv))
}

// SetVoltageScale sets the vertical scale of the given channel in volts per
// division. The scale is tied to the channel, not to the selected source.
func (g *GXScope) SetVoltageScale(ch Channel, voltsPerDiv float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.setVoltageScale(ch, voltsPerDiv)
}

func (g *GXScope) setVoltageScale(ch Channel, voltsPerDiv float64) error {
	if g.state != Connected {
		return &NotConnectedError{Operation: "SetVoltageScale"}
	}
	if !ch.IsValid() {
		return &InvalidArgumentError{Argument: "channel", Value: int(ch)}
	}
	if !validScale(voltsPerDiv) {
		return &InvalidArgumentError{Argument: "voltage scale", Value: voltsPerDiv}
	}
	return g.write(fmt.Sprintf(":%s:SCAL %G", ch, voltsPerDiv))
}

// SetTrigger configures the trigger. The commands are sent in a fixed
// order: mode, edge source, edge slope, level.
func (g *GXScope) SetTrigger(mode TriggerMode, source Channel, slope TriggerSlope, level float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.setTrigger(mode, source, slope, level)
}

func (g *GXScope) setTrigger(mode TriggerMode, source Channel, slope TriggerSlope, level float64) error {
	if g.state != Connected {
		return &NotConnectedError{Operation: "SetTrigger"}
	}
	if !mode.IsValid() {
		return &InvalidArgumentError{Argument: "trigger mode", Value: int(mode)}
	}
	if !source.IsValid() {
		return &InvalidArgumentError{Argument: "trigger source", Value: int(source)}
	}
	if !slope.IsValid() {
		return &InvalidArgumentError{Argument: "trigger slope", Value: int(slope)}
	}
	if math.IsNaN(level) || math.IsInf(level, 0) {
		return &InvalidArgumentError{Argument: "trigger level", Value: level}
	}
	if err := g.write(fmt.Sprintf(":TRIG:MODE %s", mode)); err != nil {
		return err
	}
	if err := g.write(fmt.Sprintf(":TRIG:EDGE:SOUR %s", source)); err != nil {
		return err
	}
	if err := g.write(fmt.Sprintf(":TRIG:EDGE:SLOP %s", slope)); err != nil {
		return err
	}
	return g.write(fmt.Sprintf(":TRIG:LEV %s,%G", source, level))
}

// ApplySettings selects the channel and configures the timebase, the
// voltage scale and the trigger in one call. It stops at the first failure.
func (g *GXScope) ApplySettings(ch Channel, secondsPerDiv, voltsPerDiv float64, trigger GXTriggerSettings) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.selectChannel(ch); err != nil {
		return err
	}
	if err := g.setTimebase(secondsPerDiv); err != nil {
		return err
	}
	if err := g.setVoltageScale(ch, voltsPerDiv); err != nil {
		return err
	}
	return g.setTrigger(trigger.Mode, trigger.Source, trigger.Slope, trigger.Level)
}

// AcquireWaveform reads the displayed waveform of the given channel and
// converts it to voltages and sample times. A failed acquisition leaves the
// connection open.
func (g *GXScope) AcquireWaveform(ch Channel) (*GXWaveform, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != Connected {
		return nil, &NotConnectedError{Operation: "AcquireWaveform"}
	}
	if !ch.IsValid() {
		return nil, &InvalidArgumentError{Argument: "channel", Value: int(ch)}
	}
	if err := g.write(fmt.Sprintf(":WAV:SOUR %s", ch)); err != nil {
		return nil, err
	}
	g.channel = ch
	if err := g.write(":WAV:FORM BYTE"); err != nil {
		return nil, err
	}
	if err := g.write(":WAV:MODE NORMAL"); err != nil {
		return nil, err
	}
	format, err := g.query(":WAV:FORM?")
	if err != nil {
		return nil, err
	}
	if f := strings.TrimSpace(string(format)); strings.EqualFold(f, "ASC") || strings.EqualFold(f, "ASCII") {
		aerr := &AcquisitionError{Reason: "ascii waveform data is not supported"}
		g.errorf(false, aerr)
		return nil, aerr
	}
	reply, err := g.query(":WAV:PRE?")
	if err != nil {
		return nil, err
	}
	preamble, err := parsePreamble(reply)
	if err != nil {
		g.errorf(false, err)
		return nil, err
	}
	data, err := g.query(":WAV:DATA?")
	if err != nil {
		return nil, err
	}
	payload, err := stripBlock(data)
	if err != nil {
		g.errorf(false, err)
		return nil, err
	}
	wf, err := decodeWaveform(ch, preamble, payload)
	if err != nil {
		g.errorf(false, err)
		return nil, err
	}
	return wf, nil
}

// GetTimebase reads back the horizontal scale in seconds per division.
func (g *GXScope) GetTimebase() (float64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != Connected {
		return 0, &NotConnectedError{Operation: "GetTimebase"}
	}
	return g.queryFloat(":TIM:SCAL?")
}

// GetVoltageScale reads back the vertical scale of the given channel in
// volts per division.
func (g *GXScope) GetVoltageScale(ch Channel) (float64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != Connected {
		return 0, &NotConnectedError{Operation: "GetVoltageScale"}
	}
	if !ch.IsValid() {
		return 0, &InvalidArgumentError{Argument: "channel", Value: int(ch)}
	}
	return g.queryFloat(fmt.Sprintf(":%s:SCAL?", ch))
}

// GetProbeRatio reads back the probe attenuation ratio of the given
// channel.
func (g *GXScope) GetProbeRatio(ch Channel) (float64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != Connected {
		return 0, &NotConnectedError{Operation: "GetProbeRatio"}
	}
	if !ch.IsValid() {
		return 0, &InvalidArgumentError{Argument: "channel", Value: int(ch)}
	}
	return g.queryFloat(fmt.Sprintf(":%s:PROB?", ch))
}

// write sends a command that has no reply.
func (g *GXScope) write(command string) error {
	g.tracef(false, gxcommon.TraceTypesSent, "TX: %s", command)
	g.commandsSent++
	if err := g.session.WriteCommand(command); err != nil {
		g.errorf(false, err)
		return err
	}
	return nil
}

// query sends a command and waits for its reply.
func (g *GXScope) query(command string) ([]byte, error) {
	g.tracef(false, gxcommon.TraceTypesSent, "TX: %s", command)
	g.commandsSent++
	reply, err := g.session.Query(command)
	if err != nil {
		g.errorf(false, err)
		return nil, err
	}
	g.repliesReceived++
	if len(reply) != 0 && reply[0] == '#' {
		g.tracef(false, gxcommon.TraceTypesReceived, "RX: %d bytes", len(reply))
	} else {
		g.tracef(false, gxcommon.TraceTypesReceived, "RX: %s", reply)
	}
	return reply, nil
}

// queryFloat sends a command and parses its reply as a float.
func (g *GXScope) queryFloat(command string) (float64, error) {
	reply, err := g.query(command)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(string(reply)), 64)
	if err != nil {
		terr := &TransportError{Operation: command, Err: fmt.Errorf("invalid reply %q", reply)}
		g.errorf(false, terr)
		return 0, terr
	}
	return v, nil
}

// validate is Validate without taking the lock.
func (g *GXScope) validate() error {
	if g.resource == "" {
		return errors.New(g.p.Sprintf("msg.no_resource_selected"))
	}
	return nil
}

func validScale(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

func (g *GXScope) errorf(lock bool, err error) {
	var cb ErrorHandler
	if lock {
		g.mu.RLock()
		cb = g.onErr
		g.mu.RUnlock()
	} else {
		cb = g.onErr
	}
	if cb != nil {
		cb(g, err)
	}
}

func (g *GXScope) tracef(lock bool, traceType gxcommon.TraceTypes, fmtStr string, a ...any) {
	var cb TraceHandler
	trace := false
	if lock {
		g.mu.RLock()
		trace = !(int(g.traceLevel) < int(traceType))
		cb = g.onTrace
		g.mu.RUnlock()
	} else {
		trace = !(int(g.traceLevel) < int(traceType))
		cb = g.onTrace
	}
	if cb != nil && trace {
		p := gxcommon.NewTraceEventArgs(traceType, fmt.Sprintf(fmtStr, a...), "")
		cb(g, *p)
	}
}

func (g *GXScope) trace(lock bool, traceType gxcommon.TraceTypes, message string) {
	var cb TraceHandler
	trace := false
	if lock {
		g.mu.RLock()
		trace = !(int(g.traceLevel) < int(traceType))
		cb = g.onTrace
		g.mu.RUnlock()
	} else {
		trace = !(int(g.traceLevel) < int(traceType))
		cb = g.onTrace
	}
	if cb != nil && trace {
		p := gxcommon.NewTraceEventArgs(traceType, message, "")
		cb(g, *p)
	}
}

func (g *GXScope) statef(lock bool, state ConnectionState) {
	var cb StateHandler
	if lock {
		g.mu.RLock()
		cb = g.onState
		g.mu.RUnlock()
	} else {
		cb = g.onState
	}
	if cb != nil {
		cb(g, state)
	}
}

//nolint:errcheck
func init() {
	// --- English (default) ---
	message.SetString(language.AmericanEnglish, "msg.connecting_to", "Connecting to %s")
	message.SetString(language.AmericanEnglish, "msg.connected_to", "Connected to %s")
	message.SetString(language.AmericanEnglish, "msg.connect_failed", "Connect to %s failed: %v")
	message.SetString(language.AmericanEnglish, "msg.closing_connection", "Closing connection to %s")
	message.SetString(language.AmericanEnglish, "msg.connection_closed", "Connection closed to %s")
	message.SetString(language.AmericanEnglish, "msg.no_resource_selected", "No resource name set. Please set a resource name.")
	message.SetString(language.AmericanEnglish, "msg.already_connected", "Already connected. Disconnect first.")

	// --- German (de) ---
	message.SetString(language.German, "msg.connecting_to", "Verbinde mit %s")
	message.SetString(language.German, "msg.connected_to", "Verbunden mit %s")
	message.SetString(language.German, "msg.connect_failed", "Verbindung zu %s fehlgeschlagen: %v")
	message.SetString(language.German, "msg.closing_connection", "Verbindung zu %s wird geschlossen")
	message.SetString(language.German, "msg.connection_closed", "Verbindung zu %s wurde geschlossen")
	message.SetString(language.German, "msg.no_resource_selected", "Kein Ressourcenname gesetzt. Bitte geben Sie einen Ressourcennamen an.")
	message.SetString(language.German, "msg.already_connected", "Bereits verbunden. Bitte zuerst trennen.")

	// --- Finnish (fi) ---
	message.SetString(language.Finnish, "msg.connecting_to", "Yhdistetään kohteeseen %s")
	message.SetString(language.Finnish, "msg.connected_to", "Yhdistetty kohteeseen %s")
	message.SetString(language.Finnish, "msg.connect_failed", "Yhteys kohteeseen %s epäonnistui: %v")
	message.SetString(language.Finnish, "msg.closing_connection", "Suljetaan yhteys kohteeseen %s")
	message.SetString(language.Finnish, "msg.connection_closed", "Yhteys suljettu kohteeseen %s")
	message.SetString(language.Finnish, "msg.no_resource_selected", "Resurssinimeä ei ole asetettu. Aseta resurssinimi.")
	message.SetString(language.Finnish, "msg.already_connected", "Yhteys on jo avattu. Katkaise ensin.")

	// --- Swedish (sv) ---
	message.SetString(language.Swedish, "msg.connecting_to", "Ansluter till %s")
	message.SetString(language.Swedish, "msg.connected_to", "Ansluten till %s")
	message.SetString(language.Swedish, "msg.connect_failed", "Anslutning till %s misslyckades: %v")
	message.SetString(language.Swedish, "msg.closing_connection", "Stänger anslutning till %s")
	message.SetString(language.Swedish, "msg.connection_closed", "Anslutning stängd till %s")
	message.SetString(language.Swedish, "msg.no_resource_selected", "Inget resursnamn angivet. Ange ett resursnamn.")
	message.SetString(language.Swedish, "msg.already_connected", "Redan ansluten. Koppla från först.")

	// --- Spanish (es) ---
	message.SetString(language.Spanish, "msg.connecting_to", "Conectando a %s")
	message.SetString(language.Spanish, "msg.connected_to", "Conectado a %s")
	message.SetString(language.Spanish, "msg.connect_failed", "Error al conectar con %s: %v")
	message.SetString(language.Spanish, "msg.closing_connection", "Cerrando conexión con %s")
	message.SetString(language.Spanish, "msg.connection_closed", "Conexión cerrada con %s")
	message.SetString(language.Spanish, "msg.no_resource_selected", "No se ha establecido ningún nombre de recurso. Establezca un nombre de recurso.")
	message.SetString(language.Spanish, "msg.already_connected", "Ya está conectado. Desconecte primero.")

	// --- Estonian (et) ---
	message.SetString(language.Estonian, "msg.connecting_to", "Ühendatakse sihtkohta %s")
	message.SetString(language.Estonian, "msg.connected_to", "Ühendatud sihtkohta %s")
	message.SetString(language.Estonian, "msg.connect_failed", "Ühendamine sihtkohta %s ebaõnnestus: %v")
	message.SetString(language.Estonian, "msg.closing_connection", "Suletakse ühendus sihtkohta %s")
	message.SetString(language.Estonian, "msg.connection_closed", "Ühendus suleti sihtkohta %s")
	message.SetString(language.Estonian, "msg.no_resource_selected", "Ressursi nime pole määratud. Palun määrake ressursi nimi.")
	message.SetString(language.Estonian, "msg.already_connected", "Juba ühendatud. Katkestage kõigepealt ühendus.")
}

// Localize messages for the specified language.
// No errors is returned if language is not supported.
func (g *GXScope) Localize(language language.Tag) {
	g.p = message.NewPrinter(language)
}
