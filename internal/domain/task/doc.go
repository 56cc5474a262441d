// Package task contains the core print-job domain model: the canonical
// PrintRequest, the printer codepage enumeration, and the document
// composer that turns a request into an ordered instruction sequence.
//
// Everything in this package is pure. Encoding the instruction sequence
// into ESC/POS bytes and delivering it to a device live in the
// infrastructure layer.
package task
