package main

import (
	"fmt"
	"strings"
)

// disassemble formats the instruction at pc for the trace output and
// returns its length in bytes. The text is the dispatch entry's
// mnemonic followed by the raw operand words; decoding the operands
// symbolically is not worth the table it would take for a trace line
// that already shows the opcode words.
func disassemble(pc uint32, read func(uint32) uint16) (string, int) {
	op := read(pc)
	e := &ops[exec[op]]
	if e.size <= 1 {
		return e.mnemonic, 2
	}
	var b strings.Builder
	b.WriteString(e.mnemonic)
	for i := 1; i < e.size; i++ {
		fmt.Fprintf(&b, " %04X", read(addrAdd(pc, uint32(2*i))))
	}
	return b.String(), e.size * 2
}
