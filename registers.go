package main

// The register file is sixteen 16-bit words with byte, long and quad
// views overlaid in big-endian order: RR0's most significant word is
// R0, RH0 is the high half of R0. Rather than the host-endian XOR
// overlay trick, the views are explicit index transforms over the
// word array, so they cannot drift apart.
//
// Instruction fields number byte registers 0-7 for RH0-RH7 and 8-15
// for RL0-RL7; rb/setRB take that numbering. The architectural pair
// ordering (RH0, RL0, RH1, RL1, ...) is exposed through RegByte.

func (z *Z8000) rw(n int) uint16 { return z.regs[n&15] }

func (z *Z8000) setRW(n int, v uint16) { z.regs[n&15] = v }

func (z *Z8000) rb(n int) uint8 {
	if n&8 != 0 {
		return uint8(z.regs[n&7])
	}
	return uint8(z.regs[n&7] >> 8)
}

func (z *Z8000) setRB(n int, v uint8) {
	if n&8 != 0 {
		z.regs[n&7] = z.regs[n&7]&0xff00 | uint16(v)
	} else {
		z.regs[n&7] = z.regs[n&7]&0x00ff | uint16(v)<<8
	}
}

func (z *Z8000) rl(n int) uint32 {
	n &= 15
	return uint32(z.regs[n])<<16 | uint32(z.regs[(n+1)&15])
}

func (z *Z8000) setRL(n int, v uint32) {
	n &= 15
	z.regs[n] = uint16(v >> 16)
	z.regs[(n+1)&15] = uint16(v)
}

func (z *Z8000) rq(n int) uint64 {
	n &= 15
	return uint64(z.rl(n))<<32 | uint64(z.rl(n+2))
}

func (z *Z8000) setRQ(n int, v uint64) {
	n &= 15
	z.setRL(n, uint32(v>>32))
	z.setRL(n+2, uint32(v))
}

// Reg returns word register Rn.
func (z *Z8000) Reg(n int) uint16 { return z.rw(n) }

func (z *Z8000) SetReg(n int, v uint16) { z.setRW(n, v) }

// RegByte returns byte register k in architectural pair order:
// even k is RH(k/2), odd k is RL(k/2).
func (z *Z8000) RegByte(k int) uint8 {
	k &= 15
	if k&1 != 0 {
		return uint8(z.regs[k>>1])
	}
	return uint8(z.regs[k>>1] >> 8)
}

func (z *Z8000) SetRegByte(k int, v uint8) {
	k &= 15
	if k&1 != 0 {
		z.regs[k>>1] = z.regs[k>>1]&0xff00 | uint16(v)
	} else {
		z.regs[k>>1] = z.regs[k>>1]&0x00ff | uint16(v)<<8
	}
}

// RegLong returns long register RRn; n must be even.
func (z *Z8000) RegLong(n int) uint32 { return z.rl(n) }

func (z *Z8000) SetRegLong(n int, v uint32) { z.setRL(n, v) }
