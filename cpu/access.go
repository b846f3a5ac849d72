package cpu

// The three-bit source/destination register field: {0:B,1:C,2:D,3:E,4:H,
// 5:L,6:M,7:A}, where M means "memory at HL".
const memRegIndex = 6

// readReg8 returns the value named by the three-bit register index idx,
// reading through Memory at HL when idx == memRegIndex. Callers that need
// to charge the extra memory cycle check idx == memRegIndex themselves,
// since the extra cost isn't uniform across families (see each exec*'s
// cycle table).
func (p *Processor) readReg8(idx uint8) (uint8, error) {
	switch idx {
	case 0:
		return p.B, nil
	case 1:
		return p.C, nil
	case 2:
		return p.D, nil
	case 3:
		return p.E, nil
	case 4:
		return p.H, nil
	case 5:
		return p.L, nil
	case memRegIndex:
		return p.Memory.Read(p.hl())
	case 7:
		return p.A, nil
	}
	panic("readReg8: register index out of range")
}

// writeReg8 stores val into the register named by idx, writing through
// Memory at HL when idx == memRegIndex.
func (p *Processor) writeReg8(idx uint8, val uint8) error {
	switch idx {
	case 0:
		p.B = val
	case 1:
		p.C = val
	case 2:
		p.D = val
	case 3:
		p.E = val
	case 4:
		p.H = val
	case 5:
		p.L = val
	case memRegIndex:
		return p.Memory.Write(p.hl(), val)
	case 7:
		p.A = val
	default:
		panic("writeReg8: register index out of range")
	}
	return nil
}

// regPair reads the two-bit register-pair field {00:BC,01:DE,10:HL,11:SP}.
func (p *Processor) regPair(rp uint8) uint16 {
	switch rp {
	case 0:
		return p.bc()
	case 1:
		return p.de()
	case 2:
		return p.hl()
	case 3:
		return p.SP
	}
	panic("regPair: pair index out of range")
}

// setRegPair writes the two-bit register-pair field {00:BC,01:DE,10:HL,11:SP}.
func (p *Processor) setRegPair(rp uint8, v uint16) {
	switch rp {
	case 0:
		p.setBC(v)
	case 1:
		p.setDE(v)
	case 2:
		p.setHL(v)
	case 3:
		p.SP = v
	}
}

// pushWord validates both destination bytes before mutating anything, then
// writes hi at SP-1, lo at SP-2, and decrements SP by 2. A push into
// read-only memory surfaces InvalidMemoryError with SP and memory left
// untouched.
func (p *Processor) pushWord(v uint16) error {
	lo, hi := wordToBytes(v)
	hiAddr := p.SP - 1
	loAddr := p.SP - 2
	if err := p.Memory.CheckWritable(hiAddr); err != nil {
		return err
	}
	if err := p.Memory.CheckWritable(loAddr); err != nil {
		return err
	}
	_ = p.Memory.Write(hiAddr, hi)
	_ = p.Memory.Write(loAddr, lo)
	p.SP = loAddr
	return nil
}

// popWord reads the word at SP, SP+1 and increments SP by 2.
func (p *Processor) popWord() (uint16, error) {
	lo, err := p.Memory.Read(p.SP)
	if err != nil {
		return 0, err
	}
	hi, err := p.Memory.Read(p.SP + 1)
	if err != nil {
		return 0, err
	}
	p.SP += 2
	return bytesToWord(lo, hi), nil
}
