package printer

import (
	"context"
	"fmt"

	"go.bug.st/serial"

	"github.com/spalter/task-printer/internal/domain/shared"
)

// DefaultBaudRate matches the common speed of thermal printers on
// USB-serial adapters.
const DefaultBaudRate = 9600

// SerialSender writes print payloads to a locally attached printer
// through a serial device (COM port or /dev/tty*).
type SerialSender struct {
	BaudRate int
}

// NewSerialSender creates a SerialSender with the default baud rate
func NewSerialSender() *SerialSender {
	return &SerialSender{BaudRate: DefaultBaudRate}
}

// Send opens the serial device, writes the whole payload and closes the
// port. Error semantics mirror NetSender: open failures map to
// CONNECT_FAILED, write failures to WRITE_FAILED. The context is
// accepted for interface symmetry; serial writes cannot be cancelled
// mid-flight.
func (s *SerialSender) Send(_ context.Context, device string, payload []byte) error {
	mode := &serial.Mode{
		BaudRate: s.BaudRate,
		Parity:   serial.NoParity,
		DataBits: 8,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(device, mode)
	if err != nil {
		return shared.NewDomainError(shared.CodeConnectFailed,
			fmt.Sprintf("Failed to open serial device %s: %v", device, err))
	}
	defer port.Close()

	if err := writeAll(port, payload); err != nil {
		return shared.NewDomainError(shared.CodeWriteFailed,
			fmt.Sprintf("Failed to write print job to %s: %v", device, err))
	}
	return nil
}
