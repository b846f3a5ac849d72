// Package cpu implements the Intel 8080 instruction set: registers, flags,
// the fetch/decode/dispatch loop, and interrupt injection. It is the
// cycle-counted heart of this module; memory and I/O are collaborators
// reached through the memory.Memory and port.Port types.
package cpu

import (
	"fmt"

	"invaders8080/memory"
	"invaders8080/port"
)

// UnknownOpcodeError is returned when Execute fetches one of the handful of
// opcodes the 8080 never defines.
type UnknownOpcodeError struct {
	Opcode uint8
}

// Error implements the error interface.
func (e UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode encountered: 0x%.2X", e.Opcode)
}

// RomNotLoadedError is returned by Execute when called before LoadROM.
type RomNotLoadedError struct{}

// Error implements the error interface.
func (e RomNotLoadedError) Error() string {
	return "no ROM has been loaded"
}

// SystemHaltError is returned when HLT executes. It is not strictly a
// failure: it signals the host to decide whether to stop the run or wait
// for an interrupt and resume, exactly as real hardware would sit spinning
// until one arrives.
type SystemHaltError struct{}

// Error implements the error interface.
func (e SystemHaltError) Error() string {
	return "HLT executed"
}

// Processor is an Intel 8080. It owns its Memory; the host supplies a
// port.Port capability per Execute call and may request a read-only
// Memory.Slice view between calls.
type Processor struct {
	A, B, C, D, E, H, L uint8
	SP, PC              uint16

	flags flags

	interruptsEnabled bool
	romLoaded         bool

	Memory *memory.Memory
}

// New returns a Processor with all registers and flags zeroed, interrupts
// disabled, and a freshly allocated Memory of ramSize bytes translated by
// mapFn. A ROM must be loaded with LoadROM before Execute will run.
func New(ramSize int, mapFn memory.MapFunc) *Processor {
	return &Processor{
		Memory: memory.New(ramSize, mapFn),
	}
}

// LoadROM copies bytes into Memory at addr and marks the Processor ready
// to run. It propagates memory.RomSizeError unchanged on failure, in which
// case romLoaded is left unchanged.
func (p *Processor) LoadROM(bytes []uint8, addr uint16) error {
	if err := p.Memory.LoadROM(bytes, addr); err != nil {
		return err
	}
	p.romLoaded = true
	return nil
}

// InterruptsEnabled reports whether the processor will currently accept an
// Interrupt call.
func (p *Processor) InterruptsEnabled() bool {
	return p.interruptsEnabled
}

// Execute performs exactly one instruction: fetch the opcode at PC,
// advance PC past any immediate operands (unless the instruction is a
// control transfer, which sets PC outright), mutate state, and return the
// number of clock cycles consumed.
//
// On InvalidMemoryError or UnknownOpcodeError, PC is left pointing at the
// opcode byte that failed to execute, and no register is changed. Stack
// pushes validate both bytes before writing either; SHLD and XTHL write
// their two bytes one after the other, so when the second write fails the
// first byte has already been stored.
func (p *Processor) Execute(prt port.Port) (int, error) {
	if !p.romLoaded {
		return 0, RomNotLoadedError{}
	}
	op, err := p.Memory.Read(p.PC)
	if err != nil {
		return 0, err
	}
	return p.dispatch(op, prt)
}

// Interrupt injects a hardware interrupt as if the processor had just
// fetched RST n from the data bus: if interrupts are disabled the call is
// a no-op; otherwise it clears interruptsEnabled, pushes PC, and sets
// PC = n*8. n must be in 0..7.
func (p *Processor) Interrupt(n uint8) error {
	if !p.interruptsEnabled {
		return nil
	}
	if err := p.pushWord(p.PC); err != nil {
		return err
	}
	p.interruptsEnabled = false
	p.PC = uint16(n) * 8
	return nil
}

func (p *Processor) bc() uint16 { return bytesToWord(p.C, p.B) }
func (p *Processor) de() uint16 { return bytesToWord(p.E, p.D) }
func (p *Processor) hl() uint16 { return bytesToWord(p.L, p.H) }

func (p *Processor) setBC(v uint16) { p.C, p.B = wordToBytes(v) }
func (p *Processor) setDE(v uint16) { p.E, p.D = wordToBytes(v) }
func (p *Processor) setHL(v uint16) { p.L, p.H = wordToBytes(v) }

// packPSW assembles the 16-bit A:F value PUSH PSW writes to the stack. F's
// reserved bits are fixed: bit 5 and bit 3 are always 0, bit 1 is always 1.
func (p *Processor) packPSW() uint16 {
	f := uint8(0x02)
	if p.flags.s {
		f |= 0x80
	}
	if p.flags.z {
		f |= 0x40
	}
	if p.flags.ac {
		f |= 0x10
	}
	if p.flags.p {
		f |= 0x04
	}
	if p.flags.cy {
		f |= 0x01
	}
	return bytesToWord(f, p.A)
}

// unpackPSW reconstructs A and the five flags from a popped PSW value,
// ignoring the reserved bits.
func (p *Processor) unpackPSW(psw uint16) {
	f, a := wordToBytes(psw)
	p.A = a
	p.flags.s = f&0x80 != 0
	p.flags.z = f&0x40 != 0
	p.flags.ac = f&0x10 != 0
	p.flags.p = f&0x04 != 0
	p.flags.cy = f&0x01 != 0
}
