package cpu

import "invaders8080/port"

// dispatch classifies op exhaustively over 0x00..0xFF and executes it. Most
// families are recognized by a bit-field test on op rather than 256
// individual cases; what's left falls through to
// dispatchSingle's explicit switch.
func (p *Processor) dispatch(op uint8, prt port.Port) (int, error) {
	switch {
	case op == 0x76: // HLT
		p.PC++
		return 7, SystemHaltError{}
	case op >= 0x40 && op <= 0x7F: // MOV ddd,sss
		return p.execMOV(op)
	case op >= 0x80 && op <= 0xBF: // ADD/ADC/SUB/SBB/ANA/XRA/ORA/CMP s
		return p.execALUReg(op)
	case op&0xC7 == 0x04: // INR r
		return p.execINRDCR(op, true)
	case op&0xC7 == 0x05: // DCR r
		return p.execINRDCR(op, false)
	case op&0xCF == 0x01: // LXI rp,lo,hi
		return p.execLXI(op)
	case op&0xCF == 0x03: // INX rp
		return p.execINXDCX(op, true)
	case op&0xCF == 0x0B: // DCX rp
		return p.execINXDCX(op, false)
	case op&0xCF == 0x09: // DAD rp
		return p.execDAD(op)
	case op&0xCF == 0xC1: // POP rp'
		return p.execPOP(op)
	case op&0xCF == 0xC5: // PUSH rp'
		return p.execPUSH(op)
	case op&0xC7 == 0xC7: // RST n
		return p.execRST(op)
	case op&0xC7 == 0xC2: // Jcc a16
		return p.execJcc(op)
	case op&0xC7 == 0xC4: // Ccc a16
		return p.execCcc(op)
	case op&0xC7 == 0xC0: // Rcc
		return p.execRcc(op)
	default:
		return p.dispatchSingle(op, prt)
	}
}

// dispatchSingle handles every opcode that isn't covered by a bit-field
// family in dispatch: the irregular one-offs plus the reserved-undefined
// set, which must surface UnknownOpcodeError.
func (p *Processor) dispatchSingle(op uint8, prt port.Port) (int, error) {
	switch op {
	case 0x00: // NOP
		p.PC++
		return 4, nil
	case 0x02:
		return p.execSTAX(p.bc())
	case 0x06:
		return p.execMVI(0)
	case 0x07:
		return p.execRLC()
	case 0x0A:
		return p.execLDAX(p.bc())
	case 0x0E:
		return p.execMVI(1)
	case 0x0F:
		return p.execRRC()
	case 0x12:
		return p.execSTAX(p.de())
	case 0x16:
		return p.execMVI(2)
	case 0x17:
		return p.execRAL()
	case 0x1A:
		return p.execLDAX(p.de())
	case 0x1E:
		return p.execMVI(3)
	case 0x1F:
		return p.execRAR()
	case 0x22:
		return p.execSHLD()
	case 0x26:
		return p.execMVI(4)
	case 0x27:
		return p.execDAA()
	case 0x2A:
		return p.execLHLD()
	case 0x2E:
		return p.execMVI(5)
	case 0x2F:
		return p.execCMA()
	case 0x32:
		return p.execSTA()
	case 0x36:
		return p.execMVI(memRegIndex)
	case 0x37:
		return p.execSTC()
	case 0x3A:
		return p.execLDA()
	case 0x3E:
		return p.execMVI(7)
	case 0x3F:
		return p.execCMC()
	case 0xC3:
		return p.execJMP()
	case 0xC6:
		return p.execALUImm(aluADD)
	case 0xC9:
		return p.execRET()
	case 0xCD:
		return p.execCALL()
	case 0xCE:
		return p.execALUImm(aluADC)
	case 0xD3:
		return p.execOUT(prt)
	case 0xD6:
		return p.execALUImm(aluSUB)
	case 0xDB:
		return p.execIN(prt)
	case 0xDE:
		return p.execALUImm(aluSBB)
	case 0xE3:
		return p.execXTHL()
	case 0xE6:
		return p.execALUImm(aluANA)
	case 0xE9:
		return p.execPCHL()
	case 0xEB:
		return p.execXCHG()
	case 0xEE:
		return p.execALUImm(aluXRA)
	case 0xF3:
		return p.execDI()
	case 0xF6:
		return p.execALUImm(aluORA)
	case 0xF9:
		return p.execSPHL()
	case 0xFB:
		return p.execEI()
	case 0xFE:
		return p.execALUImm(aluCMP)
	case 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38, 0xCB, 0xD9, 0xDD, 0xED, 0xFD:
		return 0, UnknownOpcodeError{Opcode: op}
	}
	// Every byte 0x00..0xFF is covered by dispatch's bit-field cases or one
	// of the entries above; reaching here means the tables disagree.
	return 0, UnknownOpcodeError{Opcode: op}
}
