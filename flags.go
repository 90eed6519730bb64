package main

// FCW bits.
const (
	fSEG  = 0x8000 // segmented mode (Z8001 only)
	fSN   = 0x4000 // system/normal mode
	fEPU  = 0x2000 // extended processor unit present
	fVIE  = 0x1000 // vectored interrupt enable
	fNVIE = 0x0800 // non-vectored interrupt enable
	fC    = 0x0080 // carry
	fZ    = 0x0040 // zero
	fS    = 0x0020 // sign
	fPV   = 0x0010 // parity/overflow
	fDA   = 0x0008 // decimal adjust
	fH    = 0x0004 // half carry
)

// zsp precomputes Z, S and even-parity PV for every byte value.
var zsp [256]uint16

func init() {
	for i := 0; i < 256; i++ {
		var f uint16
		if i == 0 {
			f |= fZ
		}
		if i&0x80 != 0 {
			f |= fS
		}
		p := i ^ i>>1 ^ i>>2 ^ i>>3 ^ i>>4 ^ i>>5 ^ i>>6 ^ i>>7
		if p&1 == 0 {
			f |= fPV
		}
		zsp[i] = f
	}
}

func (z *Z8000) flag(f uint16) bool { return z.fcw&f != 0 }

func (z *Z8000) setFlag(f uint16, cond bool) {
	if cond {
		z.fcw |= f
	} else {
		z.fcw &^= f
	}
}

// cc tests one of the 16 standard condition codes against the FCW.
func (z *Z8000) cc(code uint16) bool {
	switch code & 15 {
	case 0: // F
		return false
	case 1: // LT
		return z.flag(fS) != z.flag(fPV)
	case 2: // LE
		return z.flag(fZ) || z.flag(fS) != z.flag(fPV)
	case 3: // ULE
		return z.flag(fC) || z.flag(fZ)
	case 4: // OV/PE
		return z.flag(fPV)
	case 5: // MI
		return z.flag(fS)
	case 6: // EQ/Z
		return z.flag(fZ)
	case 7: // ULT/C
		return z.flag(fC)
	case 8: // T
		return true
	case 9: // GE
		return z.flag(fS) == z.flag(fPV)
	case 10: // GT
		return !(z.flag(fZ) || z.flag(fS) != z.flag(fPV))
	case 11: // UGT
		return !(z.flag(fC) || z.flag(fZ))
	case 12: // NOV/PO
		return !z.flag(fPV)
	case 13: // PL
		return !z.flag(fS)
	case 14: // NE/NZ
		return !z.flag(fZ)
	default: // NC
		return !z.flag(fC)
	}
}

const arithMaskB = fC | fZ | fS | fPV | fDA | fH
const arithMaskW = fC | fZ | fS | fPV

// addb computes dest+value+carry and sets C, Z, S, V, D (cleared) and H.
func (z *Z8000) addb(dest, value, carry uint8) uint8 {
	sum := uint16(dest) + uint16(value) + uint16(carry)
	res := uint8(sum)
	f := zsp[res] &^ fPV
	if sum > 0xff {
		f |= fC
	}
	if (dest^value)&0x80 == 0 && (dest^res)&0x80 != 0 {
		f |= fPV
	}
	if uint16(dest&0x0f)+uint16(value&0x0f)+uint16(carry) > 0x0f {
		f |= fH
	}
	z.fcw = z.fcw&^arithMaskB | f
	return res
}

// subb computes dest-value-carry and sets C, Z, S, V, D (set) and H.
func (z *Z8000) subb(dest, value, carry uint8) uint8 {
	res := dest - value - carry
	f := zsp[res]&^fPV | fDA
	if uint16(dest) < uint16(value)+uint16(carry) {
		f |= fC
	}
	if (dest^value)&0x80 != 0 && (dest^res)&0x80 != 0 {
		f |= fPV
	}
	if uint16(dest&0x0f) < uint16(value&0x0f)+uint16(carry) {
		f |= fH
	}
	z.fcw = z.fcw&^arithMaskB | f
	return res
}

// cpb is subb without the result store and without touching D and H.
func (z *Z8000) cpb(dest, value uint8) {
	res := dest - value
	f := zsp[res] &^ fPV
	if dest < value {
		f |= fC
	}
	if (dest^value)&0x80 != 0 && (dest^res)&0x80 != 0 {
		f |= fPV
	}
	z.fcw = z.fcw&^arithMaskW | f
}

func (z *Z8000) addw(dest, value, carry uint16) uint16 {
	sum := uint32(dest) + uint32(value) + uint32(carry)
	res := uint16(sum)
	var f uint16
	if res == 0 {
		f |= fZ
	}
	if res&0x8000 != 0 {
		f |= fS
	}
	if sum > 0xffff {
		f |= fC
	}
	if (dest^value)&0x8000 == 0 && (dest^res)&0x8000 != 0 {
		f |= fPV
	}
	z.fcw = z.fcw&^arithMaskW | f
	return res
}

func (z *Z8000) subw(dest, value, carry uint16) uint16 {
	res := dest - value - carry
	var f uint16
	if res == 0 {
		f |= fZ
	}
	if res&0x8000 != 0 {
		f |= fS
	}
	if uint32(dest) < uint32(value)+uint32(carry) {
		f |= fC
	}
	if (dest^value)&0x8000 != 0 && (dest^res)&0x8000 != 0 {
		f |= fPV
	}
	z.fcw = z.fcw&^arithMaskW | f
	return res
}

func (z *Z8000) cpw(dest, value uint16) { z.subw(dest, value, 0) }

func (z *Z8000) addl(dest, value uint32) uint32 {
	sum := uint64(dest) + uint64(value)
	res := uint32(sum)
	var f uint16
	if res == 0 {
		f |= fZ
	}
	if res&0x80000000 != 0 {
		f |= fS
	}
	if sum > 0xffffffff {
		f |= fC
	}
	if (dest^value)&0x80000000 == 0 && (dest^res)&0x80000000 != 0 {
		f |= fPV
	}
	z.fcw = z.fcw&^arithMaskW | f
	return res
}

func (z *Z8000) subl(dest, value uint32) uint32 {
	res := dest - value
	var f uint16
	if res == 0 {
		f |= fZ
	}
	if res&0x80000000 != 0 {
		f |= fS
	}
	if dest < value {
		f |= fC
	}
	if (dest^value)&0x80000000 != 0 && (dest^res)&0x80000000 != 0 {
		f |= fPV
	}
	z.fcw = z.fcw&^arithMaskW | f
	return res
}

func (z *Z8000) cpl(dest, value uint32) { z.subl(dest, value) }

// logb sets Z, S and parity for the result of a byte logical op.
// C is not affected by Z8000 logical instructions.
func (z *Z8000) logb(res uint8) {
	z.fcw = z.fcw&^(fZ|fS|fPV) | zsp[res]
}

// logw sets Z and S for a word logical result.
func (z *Z8000) logw(res uint16) {
	z.fcw &^= fZ | fS
	if res == 0 {
		z.fcw |= fZ
	}
	if res&0x8000 != 0 {
		z.fcw |= fS
	}
}

func (z *Z8000) logl(res uint32) {
	z.fcw &^= fZ | fS
	if res == 0 {
		z.fcw |= fZ
	}
	if res&0x80000000 != 0 {
		z.fcw |= fS
	}
}

// incw adds n without touching C.
func (z *Z8000) incw(dest, n uint16) uint16 {
	res := dest + n
	z.fcw &^= fZ | fS | fPV
	if res == 0 {
		z.fcw |= fZ
	}
	if res&0x8000 != 0 {
		z.fcw |= fS
	}
	if (dest^n)&0x8000 == 0 && (dest^res)&0x8000 != 0 {
		z.fcw |= fPV
	}
	return res
}

func (z *Z8000) decw(dest, n uint16) uint16 {
	res := dest - n
	z.fcw &^= fZ | fS | fPV
	if res == 0 {
		z.fcw |= fZ
	}
	if res&0x8000 != 0 {
		z.fcw |= fS
	}
	if (dest^n)&0x8000 != 0 && (dest^res)&0x8000 != 0 {
		z.fcw |= fPV
	}
	return res
}

func (z *Z8000) incb(dest, n uint8) uint8 {
	res := dest + n
	z.fcw = z.fcw&^(fZ|fS|fPV) | zsp[res]&^fPV
	if (dest^n)&0x80 == 0 && (dest^res)&0x80 != 0 {
		z.fcw |= fPV
	}
	return res
}

func (z *Z8000) decb(dest, n uint8) uint8 {
	res := dest - n
	z.fcw = z.fcw&^(fZ|fS|fPV) | zsp[res]&^fPV
	if (dest^n)&0x80 != 0 && (dest^res)&0x80 != 0 {
		z.fcw |= fPV
	}
	return res
}

// negb computes two's complement; C is set unless the operand was zero,
// V is set if it was 0x80.
func (z *Z8000) negb(dest uint8) uint8 {
	res := -dest
	f := zsp[res] &^ fPV
	if dest != 0 {
		f |= fC
	}
	if dest == 0x80 {
		f |= fPV
	}
	z.fcw = z.fcw&^arithMaskW | f
	return res
}

func (z *Z8000) negw(dest uint16) uint16 {
	res := -dest
	var f uint16
	if res == 0 {
		f |= fZ
	}
	if res&0x8000 != 0 {
		f |= fS
	}
	if dest != 0 {
		f |= fC
	}
	if dest == 0x8000 {
		f |= fPV
	}
	z.fcw = z.fcw&^arithMaskW | f
	return res
}
