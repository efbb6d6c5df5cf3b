package gxscope

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChannelParse(t *testing.T) {
	for value, want := range map[string]Channel{
		"1":      Channel1,
		"CHAN2":  Channel2,
		"chan3":  Channel3,
		" CHAN4": Channel4,
	} {
		ch, err := ChannelParse(value)
		require.NoError(t, err, value)
		require.Equal(t, want, ch, value)
	}

	for _, value := range []string{"", "0", "5", "CHANX"} {
		_, err := ChannelParse(value)
		require.Error(t, err, value)
	}

	require.Equal(t, "CHAN1", Channel1.String())
	require.False(t, Channel(0).IsValid())
	require.False(t, Channel(5).IsValid())
}

func TestTriggerModeParse(t *testing.T) {
	for value, want := range map[string]TriggerMode{
		"EDGE":  TriggerModeEdge,
		"pulse": TriggerModePulse,
		"Video": TriggerModeVideo,
	} {
		m, err := TriggerModeParse(value)
		require.NoError(t, err, value)
		require.Equal(t, want, m, value)
	}
	_, err := TriggerModeParse("SLOPE")
	require.Error(t, err)

	require.Equal(t, "EDGE", TriggerModeEdge.String())
	require.False(t, TriggerMode(9).IsValid())
}

func TestTriggerSlopeParse(t *testing.T) {
	for value, want := range map[string]TriggerSlope{
		"POS":     TriggerSlopeRising,
		"rising":  TriggerSlopeRising,
		"NEG":     TriggerSlopeFalling,
		"Falling": TriggerSlopeFalling,
	} {
		s, err := TriggerSlopeParse(value)
		require.NoError(t, err, value)
		require.Equal(t, want, s, value)
	}
	_, err := TriggerSlopeParse("BOTH")
	require.Error(t, err)

	require.Equal(t, "POS", TriggerSlopeRising.String())
	require.Equal(t, "NEG", TriggerSlopeFalling.String())
}

func TestTriggerSettingsString(t *testing.T) {
	s := GXTriggerSettings{
		Mode:   TriggerModeEdge,
		Source: Channel2,
		Slope:  TriggerSlopeFalling,
		Level:  0.25,
	}
	require.Equal(t, "EDGE CHAN2 NEG 0.25 V", s.String())
}
