package main

// dabTable precomputes the DAB adjustment for every combination of the
// operand byte and the D, H and C flags left by the preceding byte
// arithmetic. The index packs DA into bit 10, H into bit 9, C into
// bit 8 and the operand into the low byte; the entry holds the
// adjusted byte in its low eight bits and the resulting carry in
// bit 8.
var dabTable [2048]uint16

func init() {
	for idx := range dabTable {
		v := uint16(idx & 0xff)
		c := idx&0x100 != 0
		h := idx&0x200 != 0
		da := idx&0x400 != 0
		if !da {
			// after addition
			if h || v&0x0f > 9 {
				v += 0x06
			}
			if c || uint16(idx&0xff) > 0x99 {
				v += 0x60
				c = true
			}
		} else {
			// after subtraction
			if h {
				v -= 0x06
			}
			if c {
				v -= 0x60
			}
		}
		e := v & 0xff
		if c {
			e |= 0x100
		}
		dabTable[idx] = e
	}
}

// dab applies the decimal adjustment to v using the current flags and
// sets C, Z and S from the result. D and H are left for the next
// arithmetic instruction to rewrite.
func (z *Z8000) dab(v uint8) uint8 {
	idx := uint16(v)
	if z.flag(fC) {
		idx |= 0x100
	}
	if z.flag(fH) {
		idx |= 0x200
	}
	if z.flag(fDA) {
		idx |= 0x400
	}
	e := dabTable[idx]
	res := uint8(e)
	z.fcw = z.fcw&^(fC|fZ|fS) | zsp[res]&(fZ|fS)
	if e&0x100 != 0 {
		z.fcw |= fC
	}
	return res
}
