// Package escpos serializes composed print documents into the ESC/POS
// command stream understood by thermal receipt printers.
//
// Encoding is a pure function from instructions to bytes: it performs no
// I/O, which keeps it independently unit-testable. Text is transliterated
// from UTF-8 into the selected 8-bit printer codepage on a best-effort
// basis; runes outside the table are substituted, never rejected.
package escpos
