package main

import "testing"

// Every one of the 65536 opcode words must dispatch somewhere; holes
// fall through to the catch-all in row zero.
func TestDispatchComplete(t *testing.T) {
	for op := 0; op < 0x10000; op++ {
		i := exec[uint16(op)]
		if int(i) >= len(ops) {
			t.Fatalf("opcode %04X maps to row %d, table has %d", op, i, len(ops))
		}
		e := &ops[i]
		if e.opcode == nil || e.mnemonic == "" {
			t.Fatalf("opcode %04X has no handler", op)
		}
		if e.size < 1 || e.cycles < 1 {
			t.Fatalf("opcode %04X row %q: size %d cycles %d", op, e.mnemonic, e.size, e.cycles)
		}
	}
}

func TestDispatchSpotChecks(t *testing.T) {
	expect := func(op uint16, mnemonic string) {
		if got := ops[exec[op]].mnemonic; got != mnemonic {
			t.Helper()
			t.Fatalf("opcode %04X: got %q, want %q", op, got, mnemonic)
		}
	}
	expect(0x8d07, "nop")
	expect(0x7a00, "halt")
	expect(0x8121, "add")
	expect(0x2101, "ld")
	expect(0xba01, "ldib")
	expect(0x9b74, "div")
	expect(0xd000, "calr")
	expect(0xe800, "jr")
	expect(0xf182, "djnz")
	expect(0x7b00, "iret")
	expect(0x7f2a, "sc")
	expect(0x0e00, "epu")
	expect(0x3600, "invalid") // unassigned
	expect(0x7e00, "invalid")
	expect(0x3800, "invalid")

	if ops[exec[0x8d07]].cycles != 7 {
		t.Fatal("nop must cost 7 cycles")
	}
}

func TestZSPTable(t *testing.T) {
	for i := 0; i < 256; i++ {
		want := uint16(0)
		if i == 0 {
			want |= fZ
		}
		if i >= 0x80 {
			want |= fS
		}
		ones := 0
		for b := 0; b < 8; b++ {
			if i&(1<<b) != 0 {
				ones++
			}
		}
		if ones%2 == 0 {
			want |= fPV
		}
		if zsp[i] != want {
			t.Fatalf("zsp[%02X] = %04X, want %04X", i, zsp[i], want)
		}
	}
}

func TestDABTable(t *testing.T) {
	cases := []struct {
		idx  uint16 // DA<<10 | H<<9 | C<<8 | value
		want uint16 // carry<<8 | result
	}{
		{0x0041 | 0x200, 0x0047}, // add 19+28: half carry adjusts low digit
		{0x0099, 0x0099},         // add, already valid BCD
		{0x009a, 0x0100},         // add, high digit out of range
		{0x0041 | 0x400, 0x0041}, // sub, no borrow: unchanged
		{0x05e | 0x600, 0x0058},  // sub with half borrow
		{0x0041 | 0x500, 0x01e1}, // sub with borrow
	}
	for _, c := range cases {
		if dabTable[c.idx] != c.want {
			t.Fatalf("dabTable[%03X] = %03X, want %03X", c.idx, dabTable[c.idx], c.want)
		}
	}
}

func TestDisassembleLength(t *testing.T) {
	mem := NewMemoryRegion(0x1000)
	mem.WriteWord(0, 0x2101) // ld r1,#imm: two words
	mem.WriteWord(2, 0x1234)
	read := func(addr uint32) uint16 { return mem.ReadWord(addr) }

	text, n := disassemble(0, read)
	if n != 4 {
		t.Fatalf("ld imm length = %d, want 4", n)
	}
	if text != "ld 1234" {
		t.Fatalf("text = %q", text)
	}

	mem.WriteWord(0x10, 0x8d07)
	text, n = disassemble(0x10, read)
	if n != 2 || text != "nop" {
		t.Fatalf("nop: %q, %d", text, n)
	}
}
