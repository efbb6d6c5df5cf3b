package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Gurux/gxcommon-go"
	"github.com/Gurux/gxscope-go"
	"golang.org/x/text/language"
)

var (
	resource = flag.String("r", "", "Resource name, for example TCPIP0::192.168.1.93::5555::SOCKET")
	channel  = flag.Int("c", 1, "Channel (1, 2, 3, 4)")
	timebase = flag.Float64("tb", 0.001, "Timebase in seconds per division")
	scale    = flag.Float64("vs", 1.0, "Voltage scale in volts per division")
	mode     = flag.String("tm", "EDGE", "Trigger mode (EDGE, PULSE, VIDEO)")
	slope    = flag.String("ts", "POS", "Trigger slope (POS, NEG)")
	level    = flag.Float64("tl", 0, "Trigger level in volts")
	samples  = flag.Int("n", 10, "Amount of samples to print")
	t        = flag.String("t", "", "Trace level.")
	w        = flag.Int("w", 5000, "WaitTime in milliseconds.")
	lang     = flag.String("lang", "", "Used language.")
)

func main() {
	flag.Parse()
	if *resource == "" {
		flag.PrintDefaults()
		return
	}

	ch := gxscope.Channel(*channel)
	triggerMode, err := gxscope.TriggerModeParse(*mode)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error parsing trigger mode:", err)
		return
	}
	triggerSlope, err := gxscope.TriggerSlopeParse(*slope)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error parsing trigger slope:", err)
		return
	}

	scope := gxscope.NewGXScope(*resource)
	if *lang != "" {
		tag, err := language.Parse(*lang)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error parsing language:", err)
			return
		}
		scope.Localize(tag)
	}

	scope.SetOnError(func(s *gxscope.GXScope, err error) {
		// log/handle error
		fmt.Fprintln(os.Stderr, "error:", err)
	})

	scope.SetOnConnectionStateChange(func(s *gxscope.GXScope, state gxscope.ConnectionState) {
		fmt.Printf("Connection state change : %s\n", state)
	})

	scope.SetOnTrace(func(s *gxscope.GXScope, e gxcommon.TraceEventArgs) {
		fmt.Printf("Trace: %s\n", e.String())
	})

	err = scope.Validate()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return
	}

	if *t != "" {
		tl, err := gxcommon.TraceLevelParse(*t)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			return
		}
		err = scope.SetTrace(tl)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			return
		}
	}
	scope.SetWaitTime(time.Duration(*w) * time.Millisecond)
	fmt.Printf("Resource: %s\n", *resource)
	fmt.Printf("Trace level %s\n", scope.GetTrace().String())
	err = scope.Connect()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error returned:", err)
		if strings.HasPrefix(strings.ToUpper(*resource), "ASRL") {
			ret, err := gxscope.GetPortNames()
			if err != nil {
				fmt.Fprintln(os.Stderr, "Failed to get available serial ports: ", err)
				return
			}
			fmt.Fprintln(os.Stderr, "Available serial ports: "+strings.Join(ret, ","))
		}
		return
	}
	//Close the connection.
	defer func() {
		if err := scope.Disconnect(); err != nil {
			fmt.Fprintln(os.Stderr, "disconnect failed:", err)
		}
	}()

	fmt.Printf("Instrument: %s\n", scope.InstrumentID())

	trigger := gxscope.GXTriggerSettings{
		Mode:   triggerMode,
		Source: ch,
		Slope:  triggerSlope,
		Level:  *level,
	}
	err = scope.ApplySettings(ch, *timebase, *scale, trigger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error returned:", err)
		return
	}

	wf, err := scope.AcquireWaveform(ch)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error returned:", err)
		return
	}
	fmt.Printf("Acquired %d samples from %s\n", len(wf.Voltage), wf.Channel)
	count := *samples
	if count > len(wf.Voltage) {
		count = len(wf.Voltage)
	}
	for i := 0; i < count; i++ {
		fmt.Printf("%G s  %G V\n", wf.Time[i], wf.Voltage[i])
	}
	fmt.Printf("Exit\n")
}
