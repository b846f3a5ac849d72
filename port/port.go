// Package port defines the 8080's I/O port capability. Unlike the 6502
// family (where I/O is just another memory-mapped chip on the bus), the
// 8080 has dedicated IN/OUT instructions keyed by an 8-bit port number, so
// the capability is its own small interface rather than part of
// memory.Memory.
package port

// Port is implemented by the host. The processor only ever calls into it
// from IN/OUT; it never fails the instruction, and unknown port numbers are
// the host's problem to handle (panic, log, or return 0).
type Port interface {
	// ReadIn returns the current value on the given input port.
	ReadIn(portNum uint8) uint8
	// WriteOut latches value onto the given output port.
	WriteOut(portNum uint8, value uint8)
}
