package task

import "strings"

// OpKind represents the kind of a single print instruction
type OpKind string

const (
	OpSetCodepage OpKind = "SET_CODEPAGE"
	OpText        OpKind = "TEXT"
	OpBlank       OpKind = "BLANK"
	OpQR          OpKind = "QR"
	OpCut         OpKind = "CUT"
)

// IsValid checks if the OpKind is a valid value
func (k OpKind) IsValid() bool {
	switch k {
	case OpSetCodepage, OpText, OpBlank, OpQR, OpCut:
		return true
	}
	return false
}

// String returns the string representation of OpKind
func (k OpKind) String() string {
	return string(k)
}

// Instruction is one step of a composed print document. Text carries the
// line for OpText and the payload for OpQR; Codepage is set only for
// OpSetCodepage.
type Instruction struct {
	Kind     OpKind
	Text     string
	Codepage Codepage
}

// SetCodepage builds a codepage-selection instruction
func SetCodepage(cp Codepage) Instruction {
	return Instruction{Kind: OpSetCodepage, Codepage: cp}
}

// Text builds a text-line instruction
func Text(line string) Instruction {
	return Instruction{Kind: OpText, Text: line}
}

// Blank builds a blank-line instruction
func Blank() Instruction {
	return Instruction{Kind: OpBlank}
}

// QR builds a QR-block instruction
func QR(payload string) Instruction {
	return Instruction{Kind: OpQR, Text: payload}
}

// Cut builds a feed-and-cut instruction
func Cut() Instruction {
	return Instruction{Kind: OpCut}
}

// Compose turns a normalized request into the ordered instruction
// sequence that defines the physical receipt layout:
//
//	SetCodepage, Text("{title} - {date}"), Blank, body, Cut
//
// The body is one Text instruction per message line, or a single QR
// block when the request asks for QR encoding. The header line is never
// QR-encoded. The ordering is a protocol contract; callers must not
// reorder the result.
func Compose(req PrintRequest) []Instruction {
	doc := []Instruction{
		SetCodepage(req.Codepage),
		Text(req.Title + " - " + req.Date),
		Blank(),
	}

	if req.Encode {
		doc = append(doc, QR(req.Message))
	} else {
		for _, line := range strings.Split(req.Message, "\n") {
			doc = append(doc, Text(line))
		}
	}

	return append(doc, Cut())
}
