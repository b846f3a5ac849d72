package cpu

// aluKind enumerates the eight register/immediate ALU families that share
// the accumulator as their implicit destination.
type aluKind int

const (
	aluADD aluKind = iota
	aluADC
	aluSUB
	aluSBB
	aluANA
	aluXRA
	aluORA
	aluCMP
)

// addWithCarry computes a + b + carryIn over a 9-bit intermediate,
// returning the wrapped result, the carry out of bit 7, and the auxiliary
// carry out of bit 3.
func addWithCarry(a, b uint8, carryIn bool) (result uint8, cy, ac bool) {
	ci := uint16(0)
	if carryIn {
		ci = 1
	}
	sum := uint16(a) + uint16(b) + ci
	return uint8(sum), sum > 0xFF, auxCarryAdd(a, b, carryIn)
}

// subWithBorrow computes a - b - borrowIn, returning the wrapped result,
// the borrow out of bit 7 (CY), and the auxiliary borrow out of bit 3 (AC).
func subWithBorrow(a, b uint8, borrowIn bool) (result uint8, cy, ac bool) {
	bi := uint16(0)
	if borrowIn {
		bi = 1
	}
	cy = uint16(a) < uint16(b)+bi
	ac = auxCarrySub(a, b, borrowIn)
	return a - b - uint8(bi), cy, ac
}

// applyALU performs one of the eight ALU families against the accumulator
// and val, updating flags. CMP leaves A unchanged.
func (p *Processor) applyALU(kind aluKind, val uint8) {
	switch kind {
	case aluADD:
		result, cy, ac := addWithCarry(p.A, val, false)
		p.flags.cy, p.flags.ac = cy, ac
		p.flags.setSZP(result)
		p.A = result
	case aluADC:
		result, cy, ac := addWithCarry(p.A, val, p.flags.cy)
		p.flags.cy, p.flags.ac = cy, ac
		p.flags.setSZP(result)
		p.A = result
	case aluSUB:
		result, cy, ac := subWithBorrow(p.A, val, false)
		p.flags.cy, p.flags.ac = cy, ac
		p.flags.setSZP(result)
		p.A = result
	case aluSBB:
		result, cy, ac := subWithBorrow(p.A, val, p.flags.cy)
		p.flags.cy, p.flags.ac = cy, ac
		p.flags.setSZP(result)
		p.A = result
	case aluANA:
		result := p.A & val
		p.flags.cy = false
		p.flags.ac = (p.A&0x08) != 0 || (val&0x08) != 0
		p.flags.setSZP(result)
		p.A = result
	case aluXRA:
		result := p.A ^ val
		p.flags.cy, p.flags.ac = false, false
		p.flags.setSZP(result)
		p.A = result
	case aluORA:
		result := p.A | val
		p.flags.cy, p.flags.ac = false, false
		p.flags.setSZP(result)
		p.A = result
	case aluCMP:
		result, cy, ac := subWithBorrow(p.A, val, false)
		p.flags.cy, p.flags.ac = cy, ac
		p.flags.setSZP(result)
	}
}

// execALUReg handles the 0x80-0xBF block: ADD/ADC/SUB/SBB/ANA/XRA/ORA/CMP
// against a register or M, grouped by (op>>3)&7 with register index op&7.
func (p *Processor) execALUReg(op uint8) (int, error) {
	kind := aluKind((op >> 3) & 7)
	idx := op & 7
	val, err := p.readReg8(idx)
	if err != nil {
		return 0, err
	}
	p.applyALU(kind, val)
	p.PC++
	if idx == memRegIndex {
		return 7, nil
	}
	return 4, nil
}

// execALUImm handles the immediate forms (ADI, ACI, SUI, SBI, ANI, XRI,
// ORI, CPI), each a two-byte instruction costing 7 cycles.
func (p *Processor) execALUImm(kind aluKind) (int, error) {
	imm, err := p.Memory.Read(p.PC + 1)
	if err != nil {
		return 0, err
	}
	p.applyALU(kind, imm)
	p.PC += 2
	return 7, nil
}

// execINRDCR handles INR r / DCR r: r <- r +/- 1, setting S,Z,AC,P but
// leaving CY untouched.
func (p *Processor) execINRDCR(op uint8, increment bool) (int, error) {
	r := (op >> 3) & 7
	val, err := p.readReg8(r)
	if err != nil {
		return 0, err
	}
	var result uint8
	var ac bool
	if increment {
		result = val + 1
		ac = auxCarryAdd(val, 1, false)
	} else {
		result = val - 1
		ac = auxCarrySub(val, 1, false)
	}
	// The write commits before any flag does: INR M / DCR M into a
	// ROM-marked byte must abort with the flags still untouched.
	if err := p.writeReg8(r, result); err != nil {
		return 0, err
	}
	p.flags.ac = ac
	p.flags.setSZP(result)
	p.PC++
	if r == memRegIndex {
		return 10, nil
	}
	return 5, nil
}

// execINXDCX handles INX rp / DCX rp: 16-bit increment/decrement with no
// flag effects at all.
func (p *Processor) execINXDCX(op uint8, increment bool) (int, error) {
	rp := (op >> 4) & 3
	v := p.regPair(rp)
	if increment {
		v++
	} else {
		v--
	}
	p.setRegPair(rp, v)
	p.PC++
	return 5, nil
}

// execDAD handles DAD rp: HL += rp, setting CY on 17-bit overflow and
// leaving every other flag untouched.
func (p *Processor) execDAD(op uint8) (int, error) {
	rp := (op >> 4) & 3
	sum := uint32(p.hl()) + uint32(p.regPair(rp))
	p.flags.cy = sum > 0xFFFF
	p.setHL(uint16(sum))
	p.PC++
	return 10, nil
}

// execDAA decimal-adjusts A: each nibble above 9 (or with a pending
// carry out of it) gets 6 added, so a binary sum of two BCD bytes
// becomes a valid BCD byte again.
func (p *Processor) execDAA() (int, error) {
	adj := uint8(0)
	cy := p.flags.cy
	if (p.A&0xF) > 9 || p.flags.ac {
		adj |= 0x06
	}
	if ((p.A+adj)>>4) > 9 || p.flags.cy {
		adj |= 0x60
	}
	result, addCY, ac := addWithCarry(p.A, adj, false)
	p.flags.ac = ac
	p.flags.cy = cy || addCY
	p.flags.setSZP(result)
	p.A = result
	p.PC++
	return 4, nil
}

// execRLC rotates A left by one bit, with CY taking the old bit 7.
func (p *Processor) execRLC() (int, error) {
	cy := p.A&0x80 != 0
	p.A = p.A<<1 | p.A>>7
	p.flags.cy = cy
	p.PC++
	return 4, nil
}

// execRRC rotates A right by one bit, with CY taking the old bit 0.
func (p *Processor) execRRC() (int, error) {
	cy := p.A&0x01 != 0
	p.A = p.A>>1 | p.A<<7
	p.flags.cy = cy
	p.PC++
	return 4, nil
}

// execRAL rotates A left by one bit through CY (9-bit rotate).
func (p *Processor) execRAL() (int, error) {
	newCY := p.A&0x80 != 0
	oldCY := uint8(0)
	if p.flags.cy {
		oldCY = 1
	}
	p.A = p.A<<1 | oldCY
	p.flags.cy = newCY
	p.PC++
	return 4, nil
}

// execRAR rotates A right by one bit through CY (9-bit rotate).
func (p *Processor) execRAR() (int, error) {
	newCY := p.A&0x01 != 0
	oldCY := uint8(0)
	if p.flags.cy {
		oldCY = 0x80
	}
	p.A = p.A>>1 | oldCY
	p.flags.cy = newCY
	p.PC++
	return 4, nil
}

// execCMA complements A; flags untouched.
func (p *Processor) execCMA() (int, error) {
	p.A = ^p.A
	p.PC++
	return 4, nil
}

// execSTC sets CY.
func (p *Processor) execSTC() (int, error) {
	p.flags.cy = true
	p.PC++
	return 4, nil
}

// execCMC toggles CY.
func (p *Processor) execCMC() (int, error) {
	p.flags.cy = !p.flags.cy
	p.PC++
	return 4, nil
}
