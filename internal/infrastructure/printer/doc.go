// Package printer delivers encoded ESC/POS payloads to a physical
// device. The primary driver speaks raw TCP to port 9100 style network
// printers; a serial driver covers locally attached devices. Both are
// fire-and-forget: the payload is written in full and the connection is
// closed without reading anything back, because ESC/POS over raw
// sockets has no acknowledgement protocol.
package printer
