package task

// Codepage represents a printer character table selectable via ESC t
type Codepage string

const (
	CodepagePC850     Codepage = "PC850"
	CodepageISO885915 Codepage = "ISO8859_15"
	CodepageWPC1252   Codepage = "WPC1252"
	CodepagePC437     Codepage = "PC437"
	CodepageISO88597  Codepage = "ISO8859_7"
)

// DefaultCodepage is used whenever no (or an unknown) codepage is requested.
const DefaultCodepage = CodepagePC850

// IsValid checks if the Codepage is a valid value
func (c Codepage) IsValid() bool {
	switch c {
	case CodepagePC850, CodepageISO885915, CodepageWPC1252, CodepagePC437, CodepageISO88597:
		return true
	}
	return false
}

// String returns the string representation of Codepage
func (c Codepage) String() string {
	return string(c)
}

// Table returns the Epson character-table number sent as the ESC t argument
func (c Codepage) Table() byte {
	switch c {
	case CodepagePC437:
		return 0
	case CodepagePC850:
		return 2
	case CodepageISO88597:
		return 15
	case CodepageWPC1252:
		return 16
	case CodepageISO885915:
		return 40
	default:
		return CodepagePC850.Table()
	}
}

// AllCodepages returns all valid Codepage values
func AllCodepages() []Codepage {
	return []Codepage{
		CodepagePC850, CodepageISO885915, CodepageWPC1252, CodepagePC437, CodepageISO88597,
	}
}

// ResolveCodepage maps a caller-supplied label to a Codepage. The lookup
// is exact-match and total: unknown or empty labels resolve to PC850 so
// that a malformed codepage never blocks a print job.
func ResolveCodepage(label string) Codepage {
	if cp := Codepage(label); cp.IsValid() {
		return cp
	}
	return DefaultCodepage
}
