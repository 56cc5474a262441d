package printer

import (
	"context"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"

	"github.com/spalter/task-printer/internal/domain/shared"
)

// Connection defaults. An unreachable printer must never hang a caller
// indefinitely, so the connect timeout is always finite.
const (
	DefaultConnectTimeout = 5 * time.Second
	DefaultWriteTimeout   = 10 * time.Second
)

// NetSender writes print payloads to a network printer over one TCP
// connection per job. No retry is performed; retry policy, if any,
// belongs to the caller.
type NetSender struct {
	ConnectTimeout time.Duration
	WriteTimeout   time.Duration
}

// NewNetSender creates a NetSender with default timeouts
func NewNetSender() *NetSender {
	return &NetSender{
		ConnectTimeout: DefaultConnectTimeout,
		WriteTimeout:   DefaultWriteTimeout,
	}
}

// Send resolves address, connects to port, writes the whole payload and
// closes the connection. It fails with a CONNECT_FAILED domain error
// when the host is unreachable, refuses the connection or the connect
// timeout elapses, and with WRITE_FAILED when the connection drops
// mid-write. Partial writes are never silent: either every byte reaches
// the OS socket buffer or an error is returned.
func (s *NetSender) Send(ctx context.Context, address string, port int, payload []byte) error {
	dialer := net.Dialer{Timeout: s.ConnectTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(address, strconv.Itoa(port)))
	if err != nil {
		return shared.NewDomainError(shared.CodeConnectFailed,
			fmt.Sprintf("Failed to connect to printer at %s:%d: %v", address, port, err))
	}
	defer conn.Close()

	if s.WriteTimeout > 0 {
		if err := conn.SetWriteDeadline(time.Now().Add(s.WriteTimeout)); err != nil {
			return shared.NewDomainError(shared.CodeWriteFailed,
				fmt.Sprintf("Failed to set write deadline: %v", err))
		}
	}

	if err := writeAll(conn, payload); err != nil {
		return shared.NewDomainError(shared.CodeWriteFailed,
			fmt.Sprintf("Failed to write print job to %s:%d: %v", address, port, err))
	}
	return nil
}

// writeAll writes b completely, looping over short writes.
func writeAll(w io.Writer, b []byte) error {
	sent := 0
	for sent < len(b) {
		n, err := w.Write(b[sent:])
		if err != nil {
			return err
		}
		sent += n
	}
	return nil
}
