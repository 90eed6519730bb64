package main

// Operand decoding. Bits 15-14 of the opcode word select the
// addressing mode for most two-operand formats: 00 is indirect
// register (immediate when the source field is zero), 01 is direct
// address (indexed when the source field is non-zero), 10 is register.
// The source field occupies bits 7-4 and the destination bits 3-0,
// except where noted in individual handlers.

// effAddr resolves a memory effective address for the IR and DA/X
// modes, pulling the address operand from the given slot.
func (z *Z8000) effAddr(op uint16, slot int) uint32 {
	if op&0x4000 != 0 {
		addr := z.getAddrOperand(slot)
		if idx := int(op >> 4 & 15); idx != 0 {
			addr = addrAdd(addr, uint32(z.rw(idx)))
		}
		return addr
	}
	return z.addrFromReg(int(op >> 4 & 15))
}

func (z *Z8000) srcAddr(op uint16) uint32 { return z.effAddr(op, 1) }

// srcB fetches the byte source operand for any of the three modes.
// Byte immediates carry the value in both halves of the operand word.
func (z *Z8000) srcB(op uint16) uint8 {
	switch op >> 14 {
	case 0:
		if op>>4&15 == 0 {
			return uint8(z.getOperand(1))
		}
		return z.readMemB(z.data, z.srcAddr(op))
	case 1:
		return z.readMemB(z.data, z.srcAddr(op))
	default:
		return z.rb(int(op >> 4 & 15))
	}
}

func (z *Z8000) srcW(op uint16) uint16 {
	switch op >> 14 {
	case 0:
		if op>>4&15 == 0 {
			return z.getOperand(1)
		}
		return z.readMemW(z.data, z.srcAddr(op))
	case 1:
		return z.readMemW(z.data, z.srcAddr(op))
	default:
		return z.rw(int(op >> 4 & 15))
	}
}

func (z *Z8000) srcL(op uint16) uint32 {
	switch op >> 14 {
	case 0:
		if op>>4&15 == 0 {
			hi := z.getOperand(1)
			return uint32(hi)<<16 | uint32(z.getOperand(2))
		}
		return z.readMemL(z.data, z.srcAddr(op))
	case 1:
		return z.readMemL(z.data, z.srcAddr(op))
	default:
		return z.rl(int(op >> 4 & 15))
	}
}

// opInvalid is the catch-all for undefined opcodes; they take the
// privileged-instruction trap with op[0] preserved as the tag.
func opInvalid(z *Z8000) {
	z.irqReq |= reqTRAP
}

// opEPU latches the extended-instruction trap. The FCW EPU bit is not
// consulted; with no extension unit attached every extended opcode
// traps.
func opEPU(z *Z8000) {
	z.irqReq |= reqEPU
}

// ---- two-operand arithmetic and logic ----

func opAddb(z *Z8000) {
	op := uint16(z.op[0])
	d := int(op & 15)
	z.setRB(d, z.addb(z.rb(d), z.srcB(op), 0))
}

func opAdd(z *Z8000) {
	op := uint16(z.op[0])
	d := int(op & 15)
	z.setRW(d, z.addw(z.rw(d), z.srcW(op), 0))
}

func opAddl(z *Z8000) {
	op := uint16(z.op[0])
	d := int(op&15) &^ 1
	z.setRL(d, z.addl(z.rl(d), z.srcL(op)))
}

func opSubb(z *Z8000) {
	op := uint16(z.op[0])
	d := int(op & 15)
	z.setRB(d, z.subb(z.rb(d), z.srcB(op), 0))
}

func opSub(z *Z8000) {
	op := uint16(z.op[0])
	d := int(op & 15)
	z.setRW(d, z.subw(z.rw(d), z.srcW(op), 0))
}

func opSubl(z *Z8000) {
	op := uint16(z.op[0])
	d := int(op&15) &^ 1
	z.setRL(d, z.subl(z.rl(d), z.srcL(op)))
}

func opAdcb(z *Z8000) {
	op := uint16(z.op[0])
	d := int(op & 15)
	var c uint8
	if z.flag(fC) {
		c = 1
	}
	z.setRB(d, z.addb(z.rb(d), z.rb(int(op>>4&15)), c))
}

func opAdc(z *Z8000) {
	op := uint16(z.op[0])
	d := int(op & 15)
	var c uint16
	if z.flag(fC) {
		c = 1
	}
	z.setRW(d, z.addw(z.rw(d), z.rw(int(op>>4&15)), c))
}

func opSbcb(z *Z8000) {
	op := uint16(z.op[0])
	d := int(op & 15)
	var c uint8
	if z.flag(fC) {
		c = 1
	}
	z.setRB(d, z.subb(z.rb(d), z.rb(int(op>>4&15)), c))
}

func opSbc(z *Z8000) {
	op := uint16(z.op[0])
	d := int(op & 15)
	var c uint16
	if z.flag(fC) {
		c = 1
	}
	z.setRW(d, z.subw(z.rw(d), z.rw(int(op>>4&15)), c))
}

func opOrb(z *Z8000) {
	op := uint16(z.op[0])
	d := int(op & 15)
	res := z.rb(d) | z.srcB(op)
	z.setRB(d, res)
	z.logb(res)
}

func opOr(z *Z8000) {
	op := uint16(z.op[0])
	d := int(op & 15)
	res := z.rw(d) | z.srcW(op)
	z.setRW(d, res)
	z.logw(res)
}

func opAndb(z *Z8000) {
	op := uint16(z.op[0])
	d := int(op & 15)
	res := z.rb(d) & z.srcB(op)
	z.setRB(d, res)
	z.logb(res)
}

func opAnd(z *Z8000) {
	op := uint16(z.op[0])
	d := int(op & 15)
	res := z.rw(d) & z.srcW(op)
	z.setRW(d, res)
	z.logw(res)
}

func opXorb(z *Z8000) {
	op := uint16(z.op[0])
	d := int(op & 15)
	res := z.rb(d) ^ z.srcB(op)
	z.setRB(d, res)
	z.logb(res)
}

func opXor(z *Z8000) {
	op := uint16(z.op[0])
	d := int(op & 15)
	res := z.rw(d) ^ z.srcW(op)
	z.setRW(d, res)
	z.logw(res)
}

func opCpb(z *Z8000) {
	op := uint16(z.op[0])
	z.cpb(z.rb(int(op&15)), z.srcB(op))
}

func opCp(z *Z8000) {
	op := uint16(z.op[0])
	z.cpw(z.rw(int(op&15)), z.srcW(op))
}

func opCpl(z *Z8000) {
	op := uint16(z.op[0])
	z.cpl(z.rl(int(op&15)&^1), z.srcL(op))
}

// ---- multiply and divide ----

func opMult(z *Z8000) {
	op := uint16(z.op[0])
	d := int(op&15) &^ 1
	res := int32(int16(z.rw(d+1))) * int32(int16(z.srcW(op)))
	z.setRL(d, uint32(res))
	var f uint16
	if res == 0 {
		f |= fZ
	}
	if res < 0 {
		f |= fS
	}
	if res > 0x7fff || res < -0x8000 {
		f |= fC
	}
	z.fcw = z.fcw&^arithMaskW | f
}

func opMultl(z *Z8000) {
	op := uint16(z.op[0])
	d := int(op&15) &^ 3
	res := int64(int32(z.rl(d+2))) * int64(int32(z.srcL(op)))
	z.setRQ(d, uint64(res))
	var f uint16
	if res == 0 {
		f |= fZ
	}
	if res < 0 {
		f |= fS
	}
	if res > 0x7fffffff || res < -0x80000000 {
		f |= fC
	}
	z.fcw = z.fcw&^arithMaskW | f
}

// opDiv leaves the quotient in the low word of the pair and the
// remainder in the high word. Divide-by-zero and quotient overflow
// set PV and leave the registers unchanged; divide-by-zero also sets
// Z.
func opDiv(z *Z8000) {
	op := uint16(z.op[0])
	d := int(op&15) &^ 1
	divisor := int32(int16(z.srcW(op)))
	if divisor == 0 {
		z.fcw = z.fcw&^arithMaskW | fZ | fPV
		return
	}
	dividend := int32(z.rl(d))
	q := dividend / divisor
	if q > 0x7fff || q < -0x8000 {
		z.fcw = z.fcw&^arithMaskW | fPV
		return
	}
	z.setRW(d, uint16(dividend%divisor))
	z.setRW(d+1, uint16(q))
	var f uint16
	if q == 0 {
		f |= fZ
	}
	if q < 0 {
		f |= fS
	}
	z.fcw = z.fcw&^arithMaskW | f
}

func opDivl(z *Z8000) {
	op := uint16(z.op[0])
	d := int(op&15) &^ 3
	divisor := int64(int32(z.srcL(op)))
	if divisor == 0 {
		z.fcw = z.fcw&^arithMaskW | fZ | fPV
		return
	}
	dividend := int64(z.rq(d))
	q := dividend / divisor
	if q > 0x7fffffff || q < -0x80000000 {
		z.fcw = z.fcw&^arithMaskW | fPV
		return
	}
	z.setRL(d, uint32(dividend%divisor))
	z.setRL(d+2, uint32(q))
	var f uint16
	if q == 0 {
		f |= fZ
	}
	if q < 0 {
		f |= fS
	}
	z.fcw = z.fcw&^arithMaskW | f
}

// ---- single-operand group (COM/NEG/TEST/TSET/CLR and immediates) ----
// The operand register field sits in bits 7-4 for these.

func opComb(z *Z8000) {
	op := uint16(z.op[0])
	if op>>14 == 2 {
		d := int(op >> 4 & 15)
		res := ^z.rb(d)
		z.setRB(d, res)
		z.logb(res)
		return
	}
	addr := z.srcAddr(op)
	res := ^z.readMemB(z.data, addr)
	z.writeMemB(z.data, addr, res)
	z.logb(res)
}

func opCom(z *Z8000) {
	op := uint16(z.op[0])
	if op>>14 == 2 {
		d := int(op >> 4 & 15)
		res := ^z.rw(d)
		z.setRW(d, res)
		z.logw(res)
		return
	}
	addr := z.srcAddr(op)
	res := ^z.readMemW(z.data, addr)
	z.writeMemW(z.data, addr, res)
	z.logw(res)
}

func opNegb(z *Z8000) {
	op := uint16(z.op[0])
	if op>>14 == 2 {
		d := int(op >> 4 & 15)
		z.setRB(d, z.negb(z.rb(d)))
		return
	}
	addr := z.srcAddr(op)
	z.writeMemB(z.data, addr, z.negb(z.readMemB(z.data, addr)))
}

func opNeg(z *Z8000) {
	op := uint16(z.op[0])
	if op>>14 == 2 {
		d := int(op >> 4 & 15)
		z.setRW(d, z.negw(z.rw(d)))
		return
	}
	addr := z.srcAddr(op)
	z.writeMemW(z.data, addr, z.negw(z.readMemW(z.data, addr)))
}

func opTestb(z *Z8000) {
	op := uint16(z.op[0])
	if op>>14 == 2 {
		z.logb(z.rb(int(op >> 4 & 15)))
		return
	}
	z.logb(z.readMemB(z.data, z.srcAddr(op)))
}

func opTest(z *Z8000) {
	op := uint16(z.op[0])
	if op>>14 == 2 {
		z.logw(z.rw(int(op >> 4 & 15)))
		return
	}
	z.logw(z.readMemW(z.data, z.srcAddr(op)))
}

func opTestl(z *Z8000) {
	op := uint16(z.op[0])
	if op>>14 == 2 {
		z.logl(z.rl(int(op >> 4 & 15)))
		return
	}
	z.logl(z.readMemL(z.data, z.srcAddr(op)))
}

// TSET latches the sign of the operand into S, then sets the operand
// to all ones. The read and write are not atomic at the bus level.
func opTsetb(z *Z8000) {
	op := uint16(z.op[0])
	if op>>14 == 2 {
		d := int(op >> 4 & 15)
		z.setFlag(fS, z.rb(d)&0x80 != 0)
		z.setRB(d, 0xff)
		return
	}
	addr := z.srcAddr(op)
	z.setFlag(fS, z.readMemB(z.data, addr)&0x80 != 0)
	z.writeMemB(z.data, addr, 0xff)
}

func opTset(z *Z8000) {
	op := uint16(z.op[0])
	if op>>14 == 2 {
		d := int(op >> 4 & 15)
		z.setFlag(fS, z.rw(d)&0x8000 != 0)
		z.setRW(d, 0xffff)
		return
	}
	addr := z.srcAddr(op)
	z.setFlag(fS, z.readMemW(z.data, addr)&0x8000 != 0)
	z.writeMemW(z.data, addr, 0xffff)
}

func opClrb(z *Z8000) {
	op := uint16(z.op[0])
	if op>>14 == 2 {
		z.setRB(int(op>>4&15), 0)
		return
	}
	z.writeMemB(z.data, z.srcAddr(op), 0)
}

func opClr(z *Z8000) {
	op := uint16(z.op[0])
	if op>>14 == 2 {
		z.setRW(int(op>>4&15), 0)
		return
	}
	z.writeMemW(z.data, z.srcAddr(op), 0)
}

func opCpbIm(z *Z8000) {
	op := uint16(z.op[0])
	addr := z.srcAddr(op)
	var imm uint8
	if op&0x4000 != 0 {
		imm = uint8(z.getOperand(2))
	} else {
		imm = uint8(z.getOperand(1))
	}
	z.cpb(z.readMemB(z.data, addr), imm)
}

func opCpIm(z *Z8000) {
	op := uint16(z.op[0])
	addr := z.srcAddr(op)
	var imm uint16
	if op&0x4000 != 0 {
		imm = z.getOperand(2)
	} else {
		imm = z.getOperand(1)
	}
	z.cpw(z.readMemW(z.data, addr), imm)
}

func opLdbIm(z *Z8000) {
	op := uint16(z.op[0])
	addr := z.srcAddr(op)
	var imm uint8
	if op&0x4000 != 0 {
		imm = uint8(z.getOperand(2))
	} else {
		imm = uint8(z.getOperand(1))
	}
	z.writeMemB(z.data, addr, imm)
}

func opLdIm(z *Z8000) {
	op := uint16(z.op[0])
	addr := z.srcAddr(op)
	var imm uint16
	if op&0x4000 != 0 {
		imm = z.getOperand(2)
	} else {
		imm = z.getOperand(1)
	}
	z.writeMemW(z.data, addr, imm)
}

// ---- loads and stores ----

func opLdb(z *Z8000) {
	op := uint16(z.op[0])
	z.setRB(int(op&15), z.srcB(op))
}

func opLd(z *Z8000) {
	op := uint16(z.op[0])
	z.setRW(int(op&15), z.srcW(op))
}

func opLdl(z *Z8000) {
	op := uint16(z.op[0])
	z.setRL(int(op&15)&^1, z.srcL(op))
}

func opLdbStore(z *Z8000) {
	op := uint16(z.op[0])
	z.writeMemB(z.data, z.srcAddr(op), z.rb(int(op&15)))
}

func opLdStore(z *Z8000) {
	op := uint16(z.op[0])
	z.writeMemW(z.data, z.srcAddr(op), z.rw(int(op&15)))
}

func opLdlStore(z *Z8000) {
	op := uint16(z.op[0])
	z.writeMemL(z.data, z.srcAddr(op), z.rl(int(op&15)&^1))
}

// opLdbImm8 is the short one-word form with the destination in bits
// 11-8 and the value in the low byte.
func opLdbImm8(z *Z8000) {
	op := uint16(z.op[0])
	z.setRB(int(op>>8&15), uint8(op))
}

func opLdk(z *Z8000) {
	op := uint16(z.op[0])
	z.setRW(int(op>>4&15), op&15)
}

// basedAddr resolves Rs(#disp16); a zero base register selects
// PC-relative addressing, measured from the address after the
// displacement word.
func (z *Z8000) basedAddr(op uint16) uint32 {
	s := int(op >> 4 & 15)
	disp := uint32(int32(int16(z.getOperand(1))))
	if s == 0 {
		return addrAdd(z.pc, disp)
	}
	return addrAdd(z.addrFromReg(s), disp)
}

func opLdbBased(z *Z8000) {
	op := uint16(z.op[0])
	z.setRB(int(op&15), z.readMemB(z.data, z.basedAddr(op)))
}

func opLdBased(z *Z8000) {
	op := uint16(z.op[0])
	z.setRW(int(op&15), z.readMemW(z.data, z.basedAddr(op)))
}

func opLdlBased(z *Z8000) {
	op := uint16(z.op[0])
	z.setRL(int(op&15)&^1, z.readMemL(z.data, z.basedAddr(op)))
}

func opLdbBasedStore(z *Z8000) {
	op := uint16(z.op[0])
	z.writeMemB(z.data, z.basedAddr(op), z.rb(int(op&15)))
}

func opLdBasedStore(z *Z8000) {
	op := uint16(z.op[0])
	z.writeMemW(z.data, z.basedAddr(op), z.rw(int(op&15)))
}

func opLdlBasedStore(z *Z8000) {
	op := uint16(z.op[0])
	z.writeMemL(z.data, z.basedAddr(op), z.rl(int(op&15)&^1))
}

// opLdar covers both LDAR (zero base, PC-relative) and the based LDA.
func opLdar(z *Z8000) {
	op := uint16(z.op[0])
	z.addrToReg(int(op&15), z.basedAddr(op))
}

// bxAddr resolves the base-index mode Rs(Rx); the index register is
// in bits 11-8 of the second word.
func (z *Z8000) bxAddr(op uint16) uint32 {
	x := int(z.getOperand(1) >> 8 & 15)
	return addrAdd(z.addrFromReg(int(op>>4&15)), uint32(z.rw(x)))
}

func opLdbBX(z *Z8000) {
	op := uint16(z.op[0])
	z.setRB(int(op&15), z.readMemB(z.data, z.bxAddr(op)))
}

func opLdBX(z *Z8000) {
	op := uint16(z.op[0])
	z.setRW(int(op&15), z.readMemW(z.data, z.bxAddr(op)))
}

func opLdlBX(z *Z8000) {
	op := uint16(z.op[0])
	z.setRL(int(op&15)&^1, z.readMemL(z.data, z.bxAddr(op)))
}

func opLdbBXStore(z *Z8000) {
	op := uint16(z.op[0])
	z.writeMemB(z.data, z.bxAddr(op), z.rb(int(op&15)))
}

func opLdBXStore(z *Z8000) {
	op := uint16(z.op[0])
	z.writeMemW(z.data, z.bxAddr(op), z.rw(int(op&15)))
}

func opLdlBXStore(z *Z8000) {
	op := uint16(z.op[0])
	z.writeMemL(z.data, z.bxAddr(op), z.rl(int(op&15)&^1))
}

func opLdaBX(z *Z8000) {
	op := uint16(z.op[0])
	z.addrToReg(int(op&15), z.bxAddr(op))
}

// opLda keeps the raw segment descriptor so the register ends up in
// the same short or long pointer form the operand used.
func opLda(z *Z8000) {
	op := uint16(z.op[0])
	d := int(op & 15)
	addr := z.getRawAddrOperand(1)
	if s := int(op >> 4 & 15); s != 0 {
		addr = addr&0xffff0000 | (addr+uint32(z.rw(s)))&0xffff
	}
	if z.segmentedMode() {
		z.setRL(d, addr)
	} else {
		z.setRW(d, uint16(addr))
	}
}

// opLdmLoad transfers count registers from memory starting at the
// register named in the second word, wrapping past R15.
func opLdmLoad(z *Z8000) {
	op := uint16(z.op[0])
	w2 := z.getOperand(1)
	addr := z.effAddr(op, 2)
	r := int(w2 >> 8 & 15)
	cnt := int(w2&15) + 1
	for i := 0; i < cnt; i++ {
		z.setRW((r+i)&15, z.readMemW(z.data, addr))
		addr = addrAdd(addr, 2)
	}
}

func opLdmStore(z *Z8000) {
	op := uint16(z.op[0])
	w2 := z.getOperand(1)
	addr := z.effAddr(op, 2)
	r := int(w2 >> 8 & 15)
	cnt := int(w2&15) + 1
	for i := 0; i < cnt; i++ {
		z.writeMemW(z.data, addr, z.rw((r+i)&15))
		addr = addrAdd(addr, 2)
	}
}

func opExb(z *Z8000) {
	op := uint16(z.op[0])
	d := int(op & 15)
	if op>>14 == 2 {
		s := int(op >> 4 & 15)
		t := z.rb(d)
		z.setRB(d, z.rb(s))
		z.setRB(s, t)
		return
	}
	addr := z.srcAddr(op)
	t := z.readMemB(z.data, addr)
	z.writeMemB(z.data, addr, z.rb(d))
	z.setRB(d, t)
}

func opEx(z *Z8000) {
	op := uint16(z.op[0])
	d := int(op & 15)
	if op>>14 == 2 {
		s := int(op >> 4 & 15)
		t := z.rw(d)
		z.setRW(d, z.rw(s))
		z.setRW(s, t)
		return
	}
	addr := z.srcAddr(op)
	t := z.readMemW(z.data, addr)
	z.writeMemW(z.data, addr, z.rw(d))
	z.setRW(d, t)
}

// ---- stack ----
// PUSH and POP place the stack-pointer register in bits 7-4 and the
// value operand in the low nibble, including the index register of
// the DA/X forms.

func opPush(z *Z8000) {
	op := uint16(z.op[0])
	sp := int(op >> 4 & 15)
	var v uint16
	switch op >> 14 {
	case 0:
		v = z.readMemW(z.data, z.addrFromReg(int(op&15)))
	case 1:
		addr := z.getAddrOperand(1)
		if idx := int(op & 15); idx != 0 {
			addr = addrAdd(addr, uint32(z.rw(idx)))
		}
		v = z.readMemW(z.data, addr)
	default:
		v = z.rw(int(op & 15))
	}
	z.pushwReg(sp, v)
}

func opPushImm(z *Z8000) {
	op := uint16(z.op[0])
	z.pushwReg(int(op>>4&15), z.getOperand(1))
}

func opPushl(z *Z8000) {
	op := uint16(z.op[0])
	sp := int(op >> 4 & 15)
	var v uint32
	switch op >> 14 {
	case 0:
		v = z.readMemL(z.data, z.addrFromReg(int(op&15)))
	case 1:
		addr := z.getAddrOperand(1)
		if idx := int(op & 15); idx != 0 {
			addr = addrAdd(addr, uint32(z.rw(idx)))
		}
		v = z.readMemL(z.data, addr)
	default:
		v = z.rl(int(op&15) &^ 1)
	}
	z.pushlReg(sp, v)
}

func opPop(z *Z8000) {
	op := uint16(z.op[0])
	sp := int(op >> 4 & 15)
	if op>>14 == 2 {
		z.setRW(int(op&15), z.popwReg(sp))
		return
	}
	var addr uint32
	if op>>14 == 1 {
		addr = z.getAddrOperand(1)
		if idx := int(op & 15); idx != 0 {
			addr = addrAdd(addr, uint32(z.rw(idx)))
		}
	} else {
		addr = z.addrFromReg(int(op & 15))
	}
	z.writeMemW(z.data, addr, z.popwReg(sp))
}

func opPopl(z *Z8000) {
	op := uint16(z.op[0])
	sp := int(op >> 4 & 15)
	if op>>14 == 2 {
		z.setRL(int(op&15)&^1, z.poplReg(sp))
		return
	}
	var addr uint32
	if op>>14 == 1 {
		addr = z.getAddrOperand(1)
		if idx := int(op & 15); idx != 0 {
			addr = addrAdd(addr, uint32(z.rw(idx)))
		}
	} else {
		addr = z.addrFromReg(int(op & 15))
	}
	z.writeMemL(z.data, addr, z.poplReg(sp))
}

// ---- increment/decrement ----
// The low nibble holds the amount minus one.

func opIncb(z *Z8000) {
	op := uint16(z.op[0])
	n := uint8(op&15) + 1
	if op>>14 == 2 {
		d := int(op >> 4 & 15)
		z.setRB(d, z.incb(z.rb(d), n))
		return
	}
	addr := z.srcAddr(op)
	z.writeMemB(z.data, addr, z.incb(z.readMemB(z.data, addr), n))
}

func opInc(z *Z8000) {
	op := uint16(z.op[0])
	n := op&15 + 1
	if op>>14 == 2 {
		d := int(op >> 4 & 15)
		z.setRW(d, z.incw(z.rw(d), n))
		return
	}
	addr := z.srcAddr(op)
	z.writeMemW(z.data, addr, z.incw(z.readMemW(z.data, addr), n))
}

func opDecb(z *Z8000) {
	op := uint16(z.op[0])
	n := uint8(op&15) + 1
	if op>>14 == 2 {
		d := int(op >> 4 & 15)
		z.setRB(d, z.decb(z.rb(d), n))
		return
	}
	addr := z.srcAddr(op)
	z.writeMemB(z.data, addr, z.decb(z.readMemB(z.data, addr), n))
}

func opDec(z *Z8000) {
	op := uint16(z.op[0])
	n := op&15 + 1
	if op>>14 == 2 {
		d := int(op >> 4 & 15)
		z.setRW(d, z.decw(z.rw(d), n))
		return
	}
	addr := z.srcAddr(op)
	z.writeMemW(z.data, addr, z.decw(z.readMemW(z.data, addr), n))
}

// ---- sign extension ----
// EXTSB widens the low byte of a word register, EXTS the low word of
// a pair, EXTSL the low long of a quad. Flags are untouched.

func opExtsb(z *Z8000) {
	d := int(uint16(z.op[0]) >> 4 & 15)
	z.setRW(d, uint16(int16(int8(uint8(z.rw(d))))))
}

func opExts(z *Z8000) {
	d := int(uint16(z.op[0])>>4&15) &^ 1
	if z.rw(d+1)&0x8000 != 0 {
		z.setRW(d, 0xffff)
	} else {
		z.setRW(d, 0)
	}
}

func opExtsl(z *Z8000) {
	d := int(uint16(z.op[0])>>4&15) &^ 3
	if z.rl(d+2)&0x80000000 != 0 {
		z.setRL(d, 0xffffffff)
	} else {
		z.setRL(d, 0)
	}
}

// ---- bit operations ----
// Static forms carry the bit number in the low nibble. The dynamic
// forms (IR encoding with a zero field in bits 7-4) take the bit
// number from a register and the target register from the second
// word.

func opBitb(z *Z8000) {
	op := uint16(z.op[0])
	if op>>14 == 0 && op>>4&15 == 0 {
		s := int(op & 15)
		d := int(z.getOperand(1) >> 8 & 15)
		z.setFlag(fZ, z.rb(d)&(1<<(z.rw(s)&7)) == 0)
		return
	}
	b := uint8(1) << (op & 7)
	if op>>14 == 2 {
		z.setFlag(fZ, z.rb(int(op>>4&15))&b == 0)
		return
	}
	z.setFlag(fZ, z.readMemB(z.data, z.srcAddr(op))&b == 0)
}

func opBit(z *Z8000) {
	op := uint16(z.op[0])
	if op>>14 == 0 && op>>4&15 == 0 {
		s := int(op & 15)
		d := int(z.getOperand(1) >> 8 & 15)
		z.setFlag(fZ, z.rw(d)&(1<<(z.rw(s)&15)) == 0)
		return
	}
	b := uint16(1) << (op & 15)
	if op>>14 == 2 {
		z.setFlag(fZ, z.rw(int(op>>4&15))&b == 0)
		return
	}
	z.setFlag(fZ, z.readMemW(z.data, z.srcAddr(op))&b == 0)
}

func opSetb(z *Z8000) {
	op := uint16(z.op[0])
	if op>>14 == 0 && op>>4&15 == 0 {
		s := int(op & 15)
		d := int(z.getOperand(1) >> 8 & 15)
		z.setRB(d, z.rb(d)|1<<(z.rw(s)&7))
		return
	}
	b := uint8(1) << (op & 7)
	if op>>14 == 2 {
		d := int(op >> 4 & 15)
		z.setRB(d, z.rb(d)|b)
		return
	}
	addr := z.srcAddr(op)
	z.writeMemB(z.data, addr, z.readMemB(z.data, addr)|b)
}

func opSet(z *Z8000) {
	op := uint16(z.op[0])
	if op>>14 == 0 && op>>4&15 == 0 {
		s := int(op & 15)
		d := int(z.getOperand(1) >> 8 & 15)
		z.setRW(d, z.rw(d)|1<<(z.rw(s)&15))
		return
	}
	b := uint16(1) << (op & 15)
	if op>>14 == 2 {
		d := int(op >> 4 & 15)
		z.setRW(d, z.rw(d)|b)
		return
	}
	addr := z.srcAddr(op)
	z.writeMemW(z.data, addr, z.readMemW(z.data, addr)|b)
}

func opResb(z *Z8000) {
	op := uint16(z.op[0])
	if op>>14 == 0 && op>>4&15 == 0 {
		s := int(op & 15)
		d := int(z.getOperand(1) >> 8 & 15)
		z.setRB(d, z.rb(d)&^(1<<(z.rw(s)&7)))
		return
	}
	b := uint8(1) << (op & 7)
	if op>>14 == 2 {
		d := int(op >> 4 & 15)
		z.setRB(d, z.rb(d)&^b)
		return
	}
	addr := z.srcAddr(op)
	z.writeMemB(z.data, addr, z.readMemB(z.data, addr)&^b)
}

func opRes(z *Z8000) {
	op := uint16(z.op[0])
	if op>>14 == 0 && op>>4&15 == 0 {
		s := int(op & 15)
		d := int(z.getOperand(1) >> 8 & 15)
		z.setRW(d, z.rw(d)&^(1<<(z.rw(s)&15)))
		return
	}
	b := uint16(1) << (op & 15)
	if op>>14 == 2 {
		d := int(op >> 4 & 15)
		z.setRW(d, z.rw(d)&^b)
		return
	}
	addr := z.srcAddr(op)
	z.writeMemW(z.data, addr, z.readMemW(z.data, addr)&^b)
}

// ---- decimal and digit rotates ----

func opDab(z *Z8000) {
	d := int(uint16(z.op[0]) >> 4 & 15)
	z.setRB(d, z.dab(z.rb(d)))
}

// opRrdb rotates the low digits of the link register (low nibble of
// the opcode) and source register right by one digit, like a BCD
// right shift across the pair.
func opRrdb(z *Z8000) {
	op := uint16(z.op[0])
	link := int(op & 15)
	src := int(op >> 4 & 15)
	l, s := z.rb(link), z.rb(src)
	old := l & 0x0f
	l = l&0xf0 | s&0x0f
	s = s>>4 | old<<4
	z.setRB(link, l)
	z.setRB(src, s)
	z.fcw = z.fcw&^(fZ|fS) | zsp[l]&(fZ|fS)
}

func opRldb(z *Z8000) {
	op := uint16(z.op[0])
	link := int(op & 15)
	src := int(op >> 4 & 15)
	l, s := z.rb(link), z.rb(src)
	old := l & 0x0f
	l = l&0xf0 | s>>4
	s = s<<4 | old
	z.setRB(link, l)
	z.setRB(src, s)
	z.fcw = z.fcw&^(fZ|fS) | zsp[l]&(fZ|fS)
}
