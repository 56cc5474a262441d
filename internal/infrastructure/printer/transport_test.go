package printer

import (
	"context"
	"io"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/spalter/task-printer/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePrinter accepts a single connection and returns everything
// written to it.
func fakePrinter(t *testing.T) (host string, port int, received <-chan []byte) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	out := make(chan []byte, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		data, _ := io.ReadAll(conn)
		out <- data
	}()

	host, portStr, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)
	p, err := strconv.Atoi(portStr)
	require.NoError(t, err)
	return host, p, out
}

func TestNetSender_Send(t *testing.T) {
	host, port, received := fakePrinter(t)
	payload := []byte{0x1B, 0x40, 'h', 'e', 'l', 'l', 'o', 0x0A, 0x1D, 0x56, 0x41, 0x00}

	err := NewNetSender().Send(context.Background(), host, port, payload)
	require.NoError(t, err)

	select {
	case data := <-received:
		assert.Equal(t, payload, data)
	case <-time.After(2 * time.Second):
		t.Fatal("printer never received the payload")
	}
}

func TestNetSender_SendConnectionRefused(t *testing.T) {
	// grab a free port, then close the listener so the connect is refused
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	host, portStr, err := net.SplitHostPort(addr)
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	err = NewNetSender().Send(context.Background(), host, port, []byte("job"))
	require.Error(t, err)
	assert.Equal(t, shared.CodeConnectFailed, shared.Code(err))
	assert.True(t, shared.IsTransportError(err))
}

func TestNetSender_SendUnresolvableHost(t *testing.T) {
	sender := &NetSender{ConnectTimeout: time.Second, WriteTimeout: time.Second}

	err := sender.Send(context.Background(), "host.invalid", 9100, []byte("job"))
	require.Error(t, err)
	assert.Equal(t, shared.CodeConnectFailed, shared.Code(err))
}

func TestNetSender_SendCancelledContext(t *testing.T) {
	host, port, _ := fakePrinter(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewNetSender().Send(ctx, host, port, []byte("job"))
	require.Error(t, err)
	assert.Equal(t, shared.CodeConnectFailed, shared.Code(err))
}

func TestWriteAll_ShortWrites(t *testing.T) {
	w := &chunkedWriter{max: 3}
	payload := []byte("0123456789")

	require.NoError(t, writeAll(w, payload))
	assert.Equal(t, payload, w.written)
}

// chunkedWriter accepts at most max bytes per call to exercise the
// short-write loop.
type chunkedWriter struct {
	max     int
	written []byte
}

func (w *chunkedWriter) Write(b []byte) (int, error) {
	n := len(b)
	if n > w.max {
		n = w.max
	}
	w.written = append(w.written, b[:n]...)
	return n, nil
}

func TestSerialSender_SendMissingDevice(t *testing.T) {
	err := NewSerialSender().Send(context.Background(), "/dev/does-not-exist", []byte("job"))
	require.Error(t, err)
	assert.Equal(t, shared.CodeConnectFailed, shared.Code(err))
	assert.True(t, shared.IsTransportError(err))
}
