package main

// Block instructions share one layout: the first word carries a
// pointer register in bits 7-4 and the variant in its low nibble
// (bit 3 = decrementing, bit 2 = repeating for the compare forms,
// bit 1 = string compare), the second word carries the other pointer
// or target register in bits 11-8 and the counter register in bits
// 7-4. The repeating forms rewind the PC by the four-byte instruction
// while the counter is non-zero, so interrupts interleave at
// instruction boundaries and the outer loop re-checks the cycle
// budget every iteration. PV is set when the counter reaches zero.

func (z *Z8000) blockDelta(op uint16, size int) int {
	if op&8 != 0 {
		return -size
	}
	return size
}

func (z *Z8000) blockCount(w2 uint16) (cnt int, n uint16) {
	cnt = int(w2 >> 4 & 15)
	n = z.rw(cnt) - 1
	z.setRW(cnt, n)
	z.setFlag(fPV, n == 0)
	return cnt, n
}

// blockLD implements LDI/LDD and their byte and repeating variants.
// The low nibble of the second word distinguishes single-shot (8)
// from repeating (0).
func (z *Z8000) blockLD(size int) {
	op := uint16(z.op[0])
	w2 := z.getOperand(1)
	src := int(op >> 4 & 15)
	dst := int(w2 >> 8 & 15)
	if size == 1 {
		z.writeMemB(z.data, z.addrFromReg(dst), z.readMemB(z.data, z.addrFromReg(src)))
	} else {
		z.writeMemW(z.data, z.addrFromReg(dst), z.readMemW(z.data, z.addrFromReg(src)))
	}
	delta := z.blockDelta(op, size)
	z.advReg(src, delta)
	z.advReg(dst, delta)
	_, n := z.blockCount(w2)
	if w2&8 == 0 && n != 0 {
		z.pc = addrSub(z.pc, 4)
	}
}

func opBlockLDB(z *Z8000) { z.blockLD(1) }
func opBlockLDW(z *Z8000) { z.blockLD(2) }

// blockCP implements CPI/CPD (register against memory) and CPSI/CPSD
// (memory against memory). The low nibble of the second word is the
// condition code tested against the comparison result; Z reports
// whether it matched. The repeating forms stop on a match or an
// exhausted counter.
func (z *Z8000) blockCP(size int) {
	op := uint16(z.op[0])
	w2 := z.getOperand(1)
	src := int(op >> 4 & 15)
	d := int(w2 >> 8 & 15)
	str := op&2 != 0
	if size == 1 {
		a := z.rb(d)
		if str {
			a = z.readMemB(z.data, z.addrFromReg(d))
		}
		z.cpb(a, z.readMemB(z.data, z.addrFromReg(src)))
	} else {
		a := z.rw(d)
		if str {
			a = z.readMemW(z.data, z.addrFromReg(d))
		}
		z.cpw(a, z.readMemW(z.data, z.addrFromReg(src)))
	}
	match := z.cc(w2 & 15)
	z.setFlag(fZ, match)
	delta := z.blockDelta(op, size)
	z.advReg(src, delta)
	if str {
		z.advReg(d, delta)
	}
	_, n := z.blockCount(w2)
	if op&4 != 0 && n != 0 && !match {
		z.pc = addrSub(z.pc, 4)
	}
}

func opBlockCPB(z *Z8000) { z.blockCP(1) }
func opBlockCPW(z *Z8000) { z.blockCP(2) }

// opTranslate implements TRIB/TRDB and the test-only TRT forms. The
// byte under the destination pointer indexes the table under the
// source pointer; the fetched byte either replaces the operand or,
// for TRT, lands in RH1 with Z reporting whether it was zero. The
// repeating TRT forms stop on a non-zero translation.
func opTranslate(z *Z8000) {
	op := uint16(z.op[0])
	w2 := z.getOperand(1)
	dst := int(op >> 4 & 15)
	src := int(w2 >> 8 & 15)
	idx := z.readMemB(z.data, z.addrFromReg(dst))
	xlt := z.readMemB(z.data, addrAdd(z.addrFromReg(src), uint32(idx)))
	test := op&2 != 0
	if test {
		z.setRB(1, xlt)
		z.setFlag(fZ, xlt == 0)
	} else {
		z.writeMemB(z.data, z.addrFromReg(dst), xlt)
	}
	z.advReg(dst, z.blockDelta(op, 1))
	_, n := z.blockCount(w2)
	if op&4 != 0 && n != 0 && !(test && xlt != 0) {
		z.pc = addrSub(z.pc, 4)
	}
}

// blockIO implements INI/IND/OUTI/OUTD and their byte, special-mode
// and repeating variants. The port register does not advance.
func (z *Z8000) blockIO(size int) {
	if !z.sysCheck() {
		return
	}
	op := uint16(z.op[0])
	w2 := z.getOperand(1)
	port := int(op >> 4 & 15)
	mem := int(w2 >> 8 & 15)
	mode := int(op & 1)
	if op&2 != 0 { // memory to port
		if size == 1 {
			z.writePortB(mode, z.rw(port), z.readMemB(z.data, z.addrFromReg(mem)))
		} else {
			z.writePortW(mode, z.rw(port), z.readMemW(z.data, z.addrFromReg(mem)))
		}
	} else {
		if size == 1 {
			z.writeMemB(z.data, z.addrFromReg(mem), z.readPortB(mode, z.rw(port)))
		} else {
			z.writeMemW(z.data, z.addrFromReg(mem), z.readPortW(mode, z.rw(port)))
		}
	}
	z.advReg(mem, z.blockDelta(op, size))
	_, n := z.blockCount(w2)
	if w2&8 == 0 && n != 0 {
		z.pc = addrSub(z.pc, 4)
	}
}

func opBlockIOB(z *Z8000) { z.blockIO(1) }
func opBlockIOW(z *Z8000) { z.blockIO(2) }
