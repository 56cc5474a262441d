package task

import (
	"time"

	"github.com/spalter/task-printer/internal/domain/shared"
)

// DateLayout is the fixed header date format (DD/MM/YYYY).
const DateLayout = "02/01/2006"

// Built-in fallbacks. The printer address is deliberately a single named
// constant: it has drifted between revisions before, so deployments
// override it through configuration rather than editing code.
const (
	DefaultTitle   = "TASK"
	DefaultAddress = "taskbob"
	DefaultPort    = 9100
)

// RawRequest holds the unvalidated fields collected at a boundary
// (CLI flags or an HTTP body) before normalization. Zero values mean
// "not supplied".
type RawRequest struct {
	Title    string
	Message  string
	Date     string
	Encode   bool
	Address  string
	Port     int
	Device   string
	Codepage string
}

// Defaults carries the configurable fallback target for a print job.
// A non-empty Device routes jobs to a serial printer unless the request
// names its own target.
type Defaults struct {
	Address  string
	Port     int
	Codepage string
	Device   string
}

// PrintRequest is the canonical unit of work consumed by the composer.
// All fields are populated and valid after normalization.
type PrintRequest struct {
	Title    string
	Message  string
	Date     string
	Encode   bool
	Address  string
	Port     int
	Device   string
	Codepage Codepage
}

// Normalize validates raw and fills defaults, producing the canonical
// PrintRequest. The date default uses the current local clock.
func Normalize(raw RawRequest, defaults Defaults) (PrintRequest, error) {
	return NormalizeAt(raw, defaults, time.Now())
}

// NormalizeAt is Normalize with a fixed clock.
//
// Defaults apply independently per field: a missing title never blocks
// defaulting of the address, and so on. Only the message is required.
// Caller-supplied dates pass through verbatim, without re-parsing.
func NormalizeAt(raw RawRequest, defaults Defaults, now time.Time) (PrintRequest, error) {
	if raw.Message == "" {
		return PrintRequest{}, shared.ErrMissingMessage
	}
	if raw.Port < 0 || raw.Port > 65535 {
		return PrintRequest{}, shared.ErrInvalidPort
	}

	req := PrintRequest{
		Title:    raw.Title,
		Message:  raw.Message,
		Date:     raw.Date,
		Encode:   raw.Encode,
		Address:  raw.Address,
		Port:     raw.Port,
		Device:   raw.Device,
		Codepage: ResolveCodepage(raw.Codepage),
	}
	if req.Title == "" {
		req.Title = DefaultTitle
	}
	if req.Date == "" {
		req.Date = now.Format(DateLayout)
	}
	if req.Address == "" {
		req.Address = defaults.Address
	}
	if req.Address == "" {
		req.Address = DefaultAddress
	}
	if req.Port == 0 {
		req.Port = defaults.Port
	}
	if req.Port == 0 {
		req.Port = DefaultPort
	}
	if raw.Codepage == "" && defaults.Codepage != "" {
		req.Codepage = ResolveCodepage(defaults.Codepage)
	}
	// The default device only kicks in when the request names no target
	// of its own; an explicit address keeps the job on the network.
	if req.Device == "" && raw.Address == "" {
		req.Device = defaults.Device
	}

	return req, nil
}
