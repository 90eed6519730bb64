package main

// ---- shifts ----
// Shift counts are signed; a negative count shifts the opposite
// direction. The immediate forms take the count from the second word,
// the dynamic forms (SDA/SDL) from the register named in bits 11-8 of
// the second word.

func shiftByte(v uint8, n int, arith bool) (res uint8, carry, overflow bool) {
	res = v
	for i := 0; i < n; i++ {
		carry = res&0x80 != 0
		old := res
		res <<= 1
		if (old^res)&0x80 != 0 {
			overflow = true
		}
	}
	for i := 0; i < -n; i++ {
		carry = res&1 != 0
		if arith {
			res = uint8(int8(res) >> 1)
		} else {
			res >>= 1
		}
	}
	return res, carry, overflow
}

func shiftWord(v uint16, n int, arith bool) (res uint16, carry, overflow bool) {
	res = v
	for i := 0; i < n; i++ {
		carry = res&0x8000 != 0
		old := res
		res <<= 1
		if (old^res)&0x8000 != 0 {
			overflow = true
		}
	}
	for i := 0; i < -n; i++ {
		carry = res&1 != 0
		if arith {
			res = uint16(int16(res) >> 1)
		} else {
			res >>= 1
		}
	}
	return res, carry, overflow
}

func shiftLong(v uint32, n int, arith bool) (res uint32, carry, overflow bool) {
	res = v
	for i := 0; i < n; i++ {
		carry = res&0x80000000 != 0
		old := res
		res <<= 1
		if (old^res)&0x80000000 != 0 {
			overflow = true
		}
	}
	for i := 0; i < -n; i++ {
		carry = res&1 != 0
		if arith {
			res = uint32(int32(res) >> 1)
		} else {
			res >>= 1
		}
	}
	return res, carry, overflow
}

// shiftCount reads the signed count: dynamic forms (bit 1 of the
// opcode) use the low word of the register in bits 11-8 of the second
// word, immediate forms the second word itself.
func (z *Z8000) shiftCount(op uint16) int {
	if op&2 != 0 {
		s := int(z.getOperand(1) >> 8 & 15)
		return int(int16(z.rw(s)))
	}
	return int(int16(z.getOperand(1)))
}

func (z *Z8000) shiftFlags(zero, sign, carry, overflow, arith bool) {
	z.fcw &^= fC | fZ | fS | fPV
	if carry {
		z.fcw |= fC
	}
	if zero {
		z.fcw |= fZ
	}
	if sign {
		z.fcw |= fS
	}
	if arith && overflow {
		z.fcw |= fPV
	}
}

func opShiftB(z *Z8000) {
	op := uint16(z.op[0])
	d := int(op >> 4 & 15)
	arith := op&8 != 0
	res, c, ov := shiftByte(z.rb(d), z.shiftCount(op), arith)
	z.setRB(d, res)
	z.shiftFlags(res == 0, res&0x80 != 0, c, ov, arith)
}

func opShiftW(z *Z8000) {
	op := uint16(z.op[0])
	d := int(op >> 4 & 15)
	arith := op&8 != 0
	res, c, ov := shiftWord(z.rw(d), z.shiftCount(op), arith)
	z.setRW(d, res)
	z.shiftFlags(res == 0, res&0x8000 != 0, c, ov, arith)
}

func opShiftL(z *Z8000) {
	op := uint16(z.op[0])
	d := int(op>>4&15) &^ 1
	arith := op&8 != 0
	res, c, ov := shiftLong(z.rl(d), z.shiftCount(op), arith)
	z.setRL(d, res)
	z.shiftFlags(res == 0, res&0x80000000 != 0, c, ov, arith)
}

// ---- rotates ----
// Bits 3-2 select the rotate (RL, RR, RLC, RRC); bit 1 selects a
// count of one or two.

func opRotB(z *Z8000) {
	op := uint16(z.op[0])
	d := int(op >> 4 & 15)
	n := int(op>>1&1) + 1
	v := z.rb(d)
	orig := v
	carry := z.flag(fC)
	for i := 0; i < n; i++ {
		switch op >> 2 & 3 {
		case 0: // RLB
			carry = v&0x80 != 0
			v = v<<1 | v>>7
		case 1: // RRB
			carry = v&1 != 0
			v = v>>1 | v<<7
		case 2: // RLCB
			out := v&0x80 != 0
			v <<= 1
			if carry {
				v |= 1
			}
			carry = out
		default: // RRCB
			out := v&1 != 0
			v >>= 1
			if carry {
				v |= 0x80
			}
			carry = out
		}
	}
	z.setRB(d, v)
	z.fcw = z.fcw&^(fC|fZ|fS|fPV) | zsp[v]&(fZ|fS)
	if carry {
		z.fcw |= fC
	}
	if (orig^v)&0x80 != 0 {
		z.fcw |= fPV
	}
}

func opRotW(z *Z8000) {
	op := uint16(z.op[0])
	d := int(op >> 4 & 15)
	n := int(op>>1&1) + 1
	v := z.rw(d)
	orig := v
	carry := z.flag(fC)
	for i := 0; i < n; i++ {
		switch op >> 2 & 3 {
		case 0: // RL
			carry = v&0x8000 != 0
			v = v<<1 | v>>15
		case 1: // RR
			carry = v&1 != 0
			v = v>>1 | v<<15
		case 2: // RLC
			out := v&0x8000 != 0
			v <<= 1
			if carry {
				v |= 1
			}
			carry = out
		default: // RRC
			out := v&1 != 0
			v >>= 1
			if carry {
				v |= 0x8000
			}
			carry = out
		}
	}
	z.setRW(d, v)
	z.fcw &^= fC | fZ | fS | fPV
	if carry {
		z.fcw |= fC
	}
	if v == 0 {
		z.fcw |= fZ
	}
	if v&0x8000 != 0 {
		z.fcw |= fS
	}
	if (orig^v)&0x8000 != 0 {
		z.fcw |= fPV
	}
}

// ---- jumps, calls and returns ----

func opJp(z *Z8000) {
	op := uint16(z.op[0])
	var target uint32
	if op&0x4000 != 0 {
		target = z.getAddrOperand(1)
		if idx := int(op >> 4 & 15); idx != 0 {
			target = addrAdd(target, uint32(z.rw(idx)))
		}
	} else {
		target = z.addrFromReg(int(op >> 4 & 15))
	}
	if z.cc(op & 15) {
		z.pc = target
	}
}

// opJr takes the displacement at byte granularity: +0 reaches the
// next instruction and -2 loops on the JR itself.
func opJr(z *Z8000) {
	op := uint16(z.op[0])
	if z.cc(op >> 8 & 15) {
		z.pc = addrAdd(z.pc, uint32(int32(int8(op))))
	}
}

func opCall(z *Z8000) {
	op := uint16(z.op[0])
	var target uint32
	if op&0x4000 != 0 {
		target = z.getAddrOperand(1)
		if idx := int(op >> 4 & 15); idx != 0 {
			target = addrAdd(target, uint32(z.rw(idx)))
		}
	} else {
		target = z.addrFromReg(int(op >> 4 & 15))
	}
	z.pushPC()
	z.pc = target
}

// opCalr branches to pc - 2*disp12, disp12 sign-extended from the low
// twelve bits.
func opCalr(z *Z8000) {
	op := uint16(z.op[0])
	disp := int32(int16(op<<4) >> 4)
	z.pushPC()
	z.pc = addrAdd(z.pc, uint32(-2*disp))
}

func opRet(z *Z8000) {
	op := uint16(z.op[0])
	if z.cc(op & 15) {
		z.pc = z.popPC()
	}
}

// opDjnz decrements the counter (byte or word per bit 7) and branches
// backwards by twice the 7-bit displacement while it is non-zero.
// Flags are never touched.
func opDjnz(z *Z8000) {
	op := uint16(z.op[0])
	r := int(op >> 8 & 15)
	disp := uint32(op & 0x7f)
	var taken bool
	if op&0x80 != 0 {
		v := z.rw(r) - 1
		z.setRW(r, v)
		taken = v != 0
	} else {
		v := z.rb(r) - 1
		z.setRB(r, v)
		taken = v != 0
	}
	if taken {
		z.pc = addrSub(z.pc, 2*disp)
	}
}

// opSc latches the system-call trap; the interrupt unit pushes the
// instruction word (including the low call number byte) as the tag.
func opSc(z *Z8000) {
	z.irqReq |= reqSYSCALL
}

func opTccb(z *Z8000) {
	op := uint16(z.op[0])
	if z.cc(op & 15) {
		d := int(op >> 4 & 15)
		z.setRB(d, z.rb(d)|1)
	}
}

func opTcc(z *Z8000) {
	op := uint16(z.op[0])
	if z.cc(op & 15) {
		d := int(op >> 4 & 15)
		z.setRW(d, z.rw(d)|1)
	}
}

// ---- system control ----

func opHalt(z *Z8000) {
	if !z.sysCheck() {
		return
	}
	z.halt = true
}

// opIret pops the trap tag, the saved FCW and the saved PC. The FCW
// swap happens last so the pops use the system stack pointer.
func opIret(z *Z8000) {
	if !z.sysCheck() {
		return
	}
	z.popwReg(z.spReg()) // discard the tag
	fcw := z.popwReg(z.spReg())
	z.pc = z.popPC()
	z.changeFCW(fcw)
}

// DI/EI affect the lines whose mask bit is CLEAR: bit 0 selects VI,
// bit 1 NVI.
func opDi(z *Z8000) {
	if !z.sysCheck() {
		return
	}
	op := uint16(z.op[0])
	fcw := z.fcw
	if op&1 == 0 {
		fcw &^= fVIE
	}
	if op&2 == 0 {
		fcw &^= fNVIE
	}
	z.changeFCW(fcw)
}

func opEi(z *Z8000) {
	if !z.sysCheck() {
		return
	}
	op := uint16(z.op[0])
	fcw := z.fcw
	if op&1 == 0 {
		fcw |= fVIE
	}
	if op&2 == 0 {
		fcw |= fNVIE
	}
	z.changeFCW(fcw)
}

// opLdctl moves a control register to or from a general register.
// Bit 3 of the low nibble selects the direction, bits 2-0 the control
// register. Undefined selectors take the trap.
func opLdctl(z *Z8000) {
	if !z.sysCheck() {
		return
	}
	op := uint16(z.op[0])
	r := int(op >> 4 & 15)
	switch op & 15 {
	case 2:
		z.setRW(r, z.fcw)
	case 3:
		z.setRW(r, z.refresh)
	case 4:
		z.setRW(r, z.psapSeg)
	case 5:
		z.setRW(r, z.psapOff)
	case 6:
		z.setRW(r, z.nspSeg)
	case 7:
		z.setRW(r, z.nspOff)
	case 10:
		z.changeFCW(z.rw(r))
	case 11:
		z.refresh = z.rw(r)
	case 12:
		z.psapSeg = z.rw(r)
	case 13:
		z.psapOff = z.rw(r)
	case 14:
		z.nspSeg = z.rw(r)
	case 15:
		z.nspOff = z.rw(r)
	default:
		z.irqReq |= reqTRAP
	}
}

// opLdctlb moves the flag byte (FCW bits 7-2) to or from a byte
// register; it is not privileged.
func opLdctlb(z *Z8000) {
	op := uint16(z.op[0])
	r := int(op >> 4 & 15)
	if op&8 != 0 {
		z.fcw = z.fcw&0xff00 | uint16(z.rb(r))&0xfc
	} else {
		z.setRB(r, uint8(z.fcw)&0xfc)
	}
}

// The flag nibble of SETFLG/RESFLG/COMFLG lines up with FCW bits 7-4
// (C, Z, S, P/V).
func opSetflg(z *Z8000) {
	z.fcw |= uint16(z.op[0]) & 0x00f0
}

func opResflg(z *Z8000) {
	z.fcw &^= uint16(z.op[0]) & 0x00f0
}

func opComflg(z *Z8000) {
	z.fcw ^= uint16(z.op[0]) & 0x00f0
}

func opNop(z *Z8000) {}

func opMset(z *Z8000) {
	if !z.sysCheck() {
		return
	}
	z.mi = true
}

func opMres(z *Z8000) {
	if !z.sysCheck() {
		return
	}
	z.mi = false
}

// opMbit samples the multi-micro line into S: set while the line is
// asserted.
func opMbit(z *Z8000) {
	if !z.sysCheck() {
		return
	}
	z.setFlag(fS, z.mi)
}

// opMreq tries to acquire the multi-micro line: on success Z is set
// and S cleared, otherwise S is set.
func opMreq(z *Z8000) {
	if !z.sysCheck() {
		return
	}
	if !z.mi {
		z.mi = true
		z.fcw = z.fcw&^fS | fZ
	} else {
		z.fcw = z.fcw&^fZ | fS
	}
}

// opLdps loads a new program status (FCW then PC) from memory. The
// block is two words on the Z8002 and, like a PSA entry, reserves a
// leading word on the Z8001.
func opLdps(z *Z8000) {
	if !z.sysCheck() {
		return
	}
	op := uint16(z.op[0])
	addr := z.srcAddr(op)
	if z.segmented {
		z.changeFCW(z.readMemW(z.data, addrAdd(addr, 2)))
		z.pc = segmentedAddr(z.readMemL(z.data, addrAdd(addr, 4)))
	} else {
		z.changeFCW(z.readMemW(z.data, addr))
		z.pc = uint32(z.readMemW(z.data, addrAdd(addr, 2)))
	}
}

// ---- I/O ----
// All I/O instructions are privileged. The IR forms take the port
// number from the register in bits 7-4; the DA forms from the second
// word, with bit 0 of the opcode selecting special (mode 1) I/O.

func opInbIR(z *Z8000) {
	if !z.sysCheck() {
		return
	}
	op := uint16(z.op[0])
	z.setRB(int(op&15), z.readPortB(0, z.rw(int(op>>4&15))))
}

func opInIR(z *Z8000) {
	if !z.sysCheck() {
		return
	}
	op := uint16(z.op[0])
	z.setRW(int(op&15), z.readPortW(0, z.rw(int(op>>4&15))))
}

func opOutbIR(z *Z8000) {
	if !z.sysCheck() {
		return
	}
	op := uint16(z.op[0])
	z.writePortB(0, z.rw(int(op>>4&15)), z.rb(int(op&15)))
}

func opOutIR(z *Z8000) {
	if !z.sysCheck() {
		return
	}
	op := uint16(z.op[0])
	z.writePortW(0, z.rw(int(op>>4&15)), z.rw(int(op&15)))
}

func opInbDA(z *Z8000) {
	if !z.sysCheck() {
		return
	}
	op := uint16(z.op[0])
	z.setRB(int(op>>4&15), z.readPortB(int(op&1), z.getOperand(1)))
}

func opInDA(z *Z8000) {
	if !z.sysCheck() {
		return
	}
	op := uint16(z.op[0])
	z.setRW(int(op>>4&15), z.readPortW(int(op&1), z.getOperand(1)))
}

func opOutbDA(z *Z8000) {
	if !z.sysCheck() {
		return
	}
	op := uint16(z.op[0])
	z.writePortB(int(op&1), z.getOperand(1), z.rb(int(op>>4&15)))
}

func opOutDA(z *Z8000) {
	if !z.sysCheck() {
		return
	}
	op := uint16(z.op[0])
	z.writePortW(int(op&1), z.getOperand(1), z.rw(int(op>>4&15)))
}
