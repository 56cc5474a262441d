package escpos

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/spalter/task-printer/internal/domain/shared"
	"github.com/spalter/task-printer/internal/domain/task"
)

// qrMaxPayload is the binary capacity of the largest QR symbol; the
// GS ( k length field allows more, but no printer can render it.
const qrMaxPayload = 2953

var (
	cmdInit     = []byte{0x1B, 0x40} // ESC @ initialize
	cmdLineFeed = []byte{0x0A}

	// ESC d 2 (feed two lines) followed by GS V A 0 (partial cut)
	cmdFeedAndCut = []byte{0x1B, 0x64, 0x02, 0x1D, 0x56, 0x41, 0x00}

	cmdQRModel      = []byte{0x1D, 0x28, 0x6B, 0x04, 0x00, 0x31, 0x41, 0x32, 0x00} // fn 165: model 2
	cmdQRSize       = []byte{0x1D, 0x28, 0x6B, 0x03, 0x00, 0x31, 0x43, 0x06}       // fn 167: module size 6
	cmdQRCorrection = []byte{0x1D, 0x28, 0x6B, 0x03, 0x00, 0x31, 0x45, 0x31}       // fn 169: level M
	cmdQRPrint      = []byte{0x1D, 0x28, 0x6B, 0x03, 0x00, 0x31, 0x51, 0x30}       // fn 181: print symbol
)

// Encoder serializes print instructions into ESC/POS bytes.
type Encoder struct{}

// NewEncoder creates a new Encoder
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode turns an ordered instruction sequence into the ESC/POS byte
// stream. The printer is initialized (ESC @) before the first
// instruction. Text is transliterated into the most recent codepage
// selection; a document that emits text before selecting a codepage
// uses PC850. Encode is deterministic and performs no I/O.
func (e *Encoder) Encode(doc []task.Instruction) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(cmdInit)

	active := task.DefaultCodepage
	for _, ins := range doc {
		switch ins.Kind {
		case task.OpSetCodepage:
			active = ins.Codepage
			buf.Write([]byte{0x1B, 0x74, active.Table()}) // ESC t n
		case task.OpText:
			buf.Write(transliterate(ins.Text, active))
			buf.Write(cmdLineFeed)
		case task.OpBlank:
			buf.Write(cmdLineFeed)
		case task.OpQR:
			block, err := qrBlock(ins.Text)
			if err != nil {
				return nil, err
			}
			buf.Write(block)
		case task.OpCut:
			buf.Write(cmdFeedAndCut)
		default:
			return nil, shared.NewDomainError("UNSUPPORTED_INSTRUCTION",
				fmt.Sprintf("Unsupported print instruction %q", ins.Kind))
		}
	}

	return buf.Bytes(), nil
}

// qrBlock emits the full GS ( k sequence for one QR symbol: model
// selection, module size, error correction, data store, print. The
// store command's length field covers the three function bytes plus
// the payload.
func qrBlock(payload string) ([]byte, error) {
	data := []byte(payload)
	if len(data) > qrMaxPayload {
		return nil, shared.NewDomainError(shared.CodePayloadTooLarge,
			fmt.Sprintf("QR payload is %d bytes, the maximum is %d", len(data), qrMaxPayload))
	}

	var buf bytes.Buffer
	buf.Write(cmdQRModel)
	buf.Write(cmdQRSize)
	buf.Write(cmdQRCorrection)

	n := len(data) + 3
	buf.Write([]byte{0x1D, 0x28, 0x6B, byte(n % 256), byte(n / 256), 0x31, 0x50, 0x30}) // fn 180: store
	buf.Write(data)

	buf.Write(cmdQRPrint)
	return buf.Bytes(), nil
}

// charmapFor maps a domain codepage to its x/text character map.
func charmapFor(cp task.Codepage) *charmap.Charmap {
	switch cp {
	case task.CodepagePC437:
		return charmap.CodePage437
	case task.CodepageISO88597:
		return charmap.ISO8859_7
	case task.CodepageWPC1252:
		return charmap.Windows1252
	case task.CodepageISO885915:
		return charmap.ISO8859_15
	default:
		return charmap.CodePage850
	}
}

// transliterate converts UTF-8 text into the target codepage. Runes the
// table cannot represent come back as the charmap substitute (ASCII SUB);
// printers render that as garbage, so it is rewritten to '?'.
func transliterate(s string, cp task.Codepage) []byte {
	enc := encoding.ReplaceUnsupported(charmapFor(cp).NewEncoder())
	out, err := enc.Bytes([]byte(s))
	if err != nil {
		// ReplaceUnsupported never errors; keep the raw bytes as a fallback
		return []byte(s)
	}
	return bytes.ReplaceAll(out, []byte{0x1A}, []byte{'?'})
}
