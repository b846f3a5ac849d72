package cpu

import "invaders8080/port"

// conditionMet evaluates the three-bit condition field cc = (op>>3)&7 used
// by Jcc/Ccc/Rcc against the current flags:
// 0 NZ, 1 Z, 2 NC, 3 C, 4 PO (parity odd, P flag clear), 5 PE (parity even,
// P flag set), 6 P (plus, S clear), 7 M (minus, S set).
func (p *Processor) conditionMet(cc uint8) bool {
	switch cc {
	case 0:
		return !p.flags.z
	case 1:
		return p.flags.z
	case 2:
		return !p.flags.cy
	case 3:
		return p.flags.cy
	case 4:
		return !p.flags.p
	case 5:
		return p.flags.p
	case 6:
		return !p.flags.s
	case 7:
		return p.flags.s
	}
	panic("conditionMet: condition index out of range")
}

// execJMP is the unconditional 3-byte jump.
func (p *Processor) execJMP() (int, error) {
	addr, err := p.readAddr16(p.PC + 1)
	if err != nil {
		return 0, err
	}
	p.PC = addr
	return 10, nil
}

// execJcc is JMP gated on cc = (op>>3)&7; the target address byte pair is
// always consumed regardless of whether the jump is taken.
func (p *Processor) execJcc(op uint8) (int, error) {
	addr, err := p.readAddr16(p.PC + 1)
	if err != nil {
		return 0, err
	}
	if p.conditionMet((op >> 3) & 7) {
		p.PC = addr
	} else {
		p.PC += 3
	}
	return 10, nil
}

// execCALL pushes the return address (PC+3) and jumps, unconditionally.
func (p *Processor) execCALL() (int, error) {
	addr, err := p.readAddr16(p.PC + 1)
	if err != nil {
		return 0, err
	}
	if err := p.pushWord(p.PC + 3); err != nil {
		return 0, err
	}
	p.PC = addr
	return 17, nil
}

// execCcc is CALL gated on cc = (op>>3)&7. A call taken costs 17 cycles,
// one skipped costs 11.
func (p *Processor) execCcc(op uint8) (int, error) {
	addr, err := p.readAddr16(p.PC + 1)
	if err != nil {
		return 0, err
	}
	if p.conditionMet((op >> 3) & 7) {
		if err := p.pushWord(p.PC + 3); err != nil {
			return 0, err
		}
		p.PC = addr
		return 17, nil
	}
	p.PC += 3
	return 11, nil
}

// execRET pops the return address and jumps there, unconditionally.
func (p *Processor) execRET() (int, error) {
	addr, err := p.popWord()
	if err != nil {
		return 0, err
	}
	p.PC = addr
	return 10, nil
}

// execRcc is RET gated on cc = (op>>3)&7. A return taken costs 11 cycles,
// one skipped costs 5.
func (p *Processor) execRcc(op uint8) (int, error) {
	if p.conditionMet((op >> 3) & 7) {
		addr, err := p.popWord()
		if err != nil {
			return 0, err
		}
		p.PC = addr
		return 11, nil
	}
	p.PC++
	return 5, nil
}

// execRST pushes PC+1 and jumps to the fixed vector 8*n, where n = (op>>3)&7.
func (p *Processor) execRST(op uint8) (int, error) {
	n := (op >> 3) & 7
	if err := p.pushWord(p.PC + 1); err != nil {
		return 0, err
	}
	p.PC = uint16(n) * 8
	return 11, nil
}

// execPCHL loads PC from HL.
func (p *Processor) execPCHL() (int, error) {
	p.PC = p.hl()
	return 5, nil
}

// execPUSH handles PUSH rp', where rp' encodes {00:BC,01:DE,10:HL,11:PSW}
// (distinct from the rp field used by LXI/DAD, which has no PSW case).
func (p *Processor) execPUSH(op uint8) (int, error) {
	rp := (op >> 4) & 3
	var v uint16
	switch rp {
	case 0:
		v = p.bc()
	case 1:
		v = p.de()
	case 2:
		v = p.hl()
	case 3:
		v = p.packPSW()
	}
	if err := p.pushWord(v); err != nil {
		return 0, err
	}
	p.PC++
	return 11, nil
}

// execPOP handles POP rp', the PUSH counterpart.
func (p *Processor) execPOP(op uint8) (int, error) {
	v, err := p.popWord()
	if err != nil {
		return 0, err
	}
	rp := (op >> 4) & 3
	switch rp {
	case 0:
		p.setBC(v)
	case 1:
		p.setDE(v)
	case 2:
		p.setHL(v)
	case 3:
		p.unpackPSW(v)
	}
	p.PC++
	return 10, nil
}

// execXTHL exchanges HL with the word on top of the stack.
func (p *Processor) execXTHL() (int, error) {
	lo, err := p.Memory.Read(p.SP)
	if err != nil {
		return 0, err
	}
	hi, err := p.Memory.Read(p.SP + 1)
	if err != nil {
		return 0, err
	}
	if err := p.Memory.Write(p.SP, p.L); err != nil {
		return 0, err
	}
	if err := p.Memory.Write(p.SP+1, p.H); err != nil {
		return 0, err
	}
	p.L, p.H = lo, hi
	p.PC++
	return 18, nil
}

// execSPHL loads SP from HL.
func (p *Processor) execSPHL() (int, error) {
	p.SP = p.hl()
	p.PC++
	return 5, nil
}

// execIN reads an input port into A.
func (p *Processor) execIN(prt port.Port) (int, error) {
	portNum, err := p.Memory.Read(p.PC + 1)
	if err != nil {
		return 0, err
	}
	p.A = prt.ReadIn(portNum)
	p.PC += 2
	return 10, nil
}

// execOUT writes A to an output port.
func (p *Processor) execOUT(prt port.Port) (int, error) {
	portNum, err := p.Memory.Read(p.PC + 1)
	if err != nil {
		return 0, err
	}
	prt.WriteOut(portNum, p.A)
	p.PC += 2
	return 10, nil
}

// execDI disables interrupts.
func (p *Processor) execDI() (int, error) {
	p.interruptsEnabled = false
	p.PC++
	return 4, nil
}

// execEI enables interrupts.
func (p *Processor) execEI() (int, error) {
	p.interruptsEnabled = true
	p.PC++
	return 4, nil
}
