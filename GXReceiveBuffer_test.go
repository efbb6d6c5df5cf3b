package gxscope

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestReceiveBufferRead(t *testing.T) {
	b := newReceiveBuffer()
	b.Append([]byte("abcdef"))

	data, ok := b.Read(4, time.Second)
	require.True(t, ok)
	require.Equal(t, []byte("abcd"), data)

	data, ok = b.Read(2, time.Second)
	require.True(t, ok)
	require.Equal(t, []byte("ef"), data)
}

func TestReceiveBufferReadBlocksForData(t *testing.T) {
	b := newReceiveBuffer()
	b.Append([]byte("ab"))

	done := make(chan []byte, 1)
	go func() {
		data, ok := b.Read(4, time.Second)
		if ok {
			done <- data
		}
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	b.Append([]byte("cd"))

	select {
	case data := <-done:
		require.Equal(t, []byte("abcd"), data)
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for Read to complete")
	}
}

func TestReceiveBufferReadTimeout(t *testing.T) {
	b := newReceiveBuffer()
	b.Append([]byte("ab"))

	start := time.Now()
	data, ok := b.Read(4, 20*time.Millisecond)
	require.False(t, ok)
	require.Nil(t, data)
	require.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestReceiveBufferPeekDoesNotConsume(t *testing.T) {
	b := newReceiveBuffer()
	b.Append([]byte("#9000"))

	data, ok := b.Peek(2, time.Second)
	require.True(t, ok)
	require.Equal(t, []byte("#9"), data)

	data, ok = b.Peek(5, time.Second)
	require.True(t, ok)
	require.Equal(t, []byte("#9000"), data)

	data, ok = b.Read(5, time.Second)
	require.True(t, ok)
	require.Equal(t, []byte("#9000"), data)
}

func TestReceiveBufferReadUntil(t *testing.T) {
	b := newReceiveBuffer()
	b.Append([]byte("first\nsecond\n"))

	line, ok := b.ReadUntil('\n', time.Second)
	require.True(t, ok)
	require.Equal(t, []byte("first\n"), line)

	line, ok = b.ReadUntil('\n', time.Second)
	require.True(t, ok)
	require.Equal(t, []byte("second\n"), line)
}

func TestReceiveBufferReadUntilAcrossAppends(t *testing.T) {
	b := newReceiveBuffer()
	b.Append([]byte("par"))

	done := make(chan []byte, 1)
	go func() {
		line, ok := b.ReadUntil('\n', time.Second)
		if ok {
			done <- line
		}
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	b.Append([]byte("tial"))
	time.Sleep(10 * time.Millisecond)
	b.Append([]byte(" reply\n"))

	select {
	case line := <-done:
		require.Equal(t, []byte("partial reply\n"), line)
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for ReadUntil to complete")
	}
}

func TestReceiveBufferReset(t *testing.T) {
	b := newReceiveBuffer()
	b.Append([]byte("stale\n"))
	b.Reset()

	_, ok := b.ReadUntil('\n', 20*time.Millisecond)
	require.False(t, ok)

	b.Append([]byte("fresh\n"))
	line, ok := b.ReadUntil('\n', time.Second)
	require.True(t, ok)
	require.Equal(t, []byte("fresh\n"), line)
}
