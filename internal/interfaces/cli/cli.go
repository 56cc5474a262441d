// Package cli parses the command line of the taskprinter binary. The
// same flags drive both modes: a one-shot print job, or the HTTP API
// server when --api is set.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/spalter/task-printer/internal/domain/task"
)

// DefaultAPIPort is the listen port of the HTTP server when neither
// --api-port nor the app.port config is given.
const DefaultAPIPort = 3000

// Options holds the parsed command line. Zero values mean "not given";
// the normalizer fills those from the configured defaults.
type Options struct {
	Title    string
	Message  string
	Date     string
	Encode   bool
	Address  string
	Port     int
	Codepage string
	Device   string

	API     bool
	APIPort int

	messageSet bool
}

// ListenPort resolves the HTTP listen port: the --api-port flag wins,
// then the configured port, then DefaultAPIPort.
func (o *Options) ListenPort(configured int) int {
	if o.APIPort != 0 {
		return o.APIPort
	}
	if configured != 0 {
		return configured
	}
	return DefaultAPIPort
}

// Parse parses args (without the program name) into Options. Unknown
// flags and malformed values surface as errors together with pflag's
// usage text.
func Parse(name string, args []string) (*Options, error) {
	opts := &Options{}

	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringVarP(&opts.Title, "title", "t", "", "header title printed above the message")
	fs.StringVarP(&opts.Message, "message", "m", "", "message to print (reads stdin when omitted)")
	fs.StringVarP(&opts.Date, "date", "d", "", "date shown in the header (DD/MM/YYYY, defaults to today)")
	fs.BoolVarP(&opts.Encode, "encode", "e", false, "render the message as a QR code")
	fs.StringVarP(&opts.Address, "address", "a", "", "printer hostname or IP")
	fs.IntVarP(&opts.Port, "port", "p", 0, "printer TCP port")
	fs.StringVarP(&opts.Codepage, "codepage", "c", "", "codepage for text output (PC850, PC437, WPC1252, ISO8859_7, ISO8859_15)")
	fs.StringVar(&opts.Device, "device", "", "serial device to print to instead of the network")
	fs.BoolVar(&opts.API, "api", false, "run the HTTP API server instead of printing once")
	fs.IntVar(&opts.APIPort, "api-port", 0, "HTTP API listen port (default 3000)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	opts.messageSet = fs.Changed("message")
	return opts, nil
}

// ReadMessage falls back to stdin when no -m flag was given, so the
// tool composes in a pipeline (fortune | taskprinter). The read result
// is trimmed; a job with an all-whitespace message still fails
// validation downstream.
func (o *Options) ReadMessage(stdin io.Reader) error {
	if o.messageSet || o.API {
		return nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return fmt.Errorf("failed to read message from stdin: %w", err)
	}
	o.Message = strings.TrimSpace(string(data))
	return nil
}

// ToRawRequest maps the options onto the domain input type.
func (o *Options) ToRawRequest() task.RawRequest {
	return task.RawRequest{
		Title:    o.Title,
		Message:  o.Message,
		Date:     o.Date,
		Encode:   o.Encode,
		Address:  o.Address,
		Port:     o.Port,
		Codepage: o.Codepage,
		Device:   o.Device,
	}
}
