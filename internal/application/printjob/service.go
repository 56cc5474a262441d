// Package printjob orchestrates one print job end to end: normalize the
// raw input, compose the document, encode it to ESC/POS and hand the
// bytes to a transport. Jobs are independent and never retried; every
// error propagates to the boundary unchanged.
package printjob

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spalter/task-printer/internal/domain/task"
)

// Encoder serializes a composed document into printer bytes.
type Encoder interface {
	Encode(doc []task.Instruction) ([]byte, error)
}

// NetworkSender delivers a payload to a network printer.
type NetworkSender interface {
	Send(ctx context.Context, address string, port int, payload []byte) error
}

// DeviceSender delivers a payload to a locally attached printer.
type DeviceSender interface {
	Send(ctx context.Context, device string, payload []byte) error
}

// Service runs print jobs. It holds no per-job state, so a single
// instance serves concurrent requests; each job opens its own
// connection to its own target.
type Service struct {
	encoder  Encoder
	network  NetworkSender
	device   DeviceSender
	defaults task.Defaults
	logger   *zap.Logger
}

// NewService creates a print job service
func NewService(encoder Encoder, network NetworkSender, device DeviceSender, defaults task.Defaults, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		encoder:  encoder,
		network:  network,
		device:   device,
		defaults: defaults,
		logger:   logger,
	}
}

// Print executes one job. Validation failures short-circuit before any
// encoding or connection attempt.
func (s *Service) Print(ctx context.Context, raw task.RawRequest) error {
	jobID := uuid.New().String()
	log := s.logger.With(zap.String("job_id", jobID))

	req, err := task.Normalize(raw, s.defaults)
	if err != nil {
		log.Warn("Print job rejected", zap.Error(err))
		return err
	}

	payload, err := s.encoder.Encode(task.Compose(req))
	if err != nil {
		log.Error("Print job encoding failed", zap.Error(err))
		return err
	}

	if req.Device != "" {
		log.Info("Sending print job to serial device",
			zap.String("device", req.Device),
			zap.Int("bytes", len(payload)),
			zap.Bool("qr", req.Encode),
		)
		err = s.device.Send(ctx, req.Device, payload)
	} else {
		log.Info("Sending print job to network printer",
			zap.String("address", req.Address),
			zap.Int("port", req.Port),
			zap.Int("bytes", len(payload)),
			zap.Bool("qr", req.Encode),
			zap.String("codepage", req.Codepage.String()),
		)
		err = s.network.Send(ctx, req.Address, req.Port, payload)
	}
	if err != nil {
		log.Error("Print job transport failed", zap.Error(err))
		return err
	}

	log.Info("Print job completed")
	return nil
}
