package main

// opEntry is one row of the authoring table. beg/end/step describe
// the opcode range the row claims; size is the nominal instruction
// length in words and cycles the base cost charged per execution.
type opEntry struct {
	mnemonic string
	opcode   func(*Z8000)
	beg      uint16
	end      uint16
	step     uint16
	size     int
	cycles   int
}

// ops is written in ascending opcode order with the catch-all first;
// exec is filled in source order so later rows win where ranges
// overlap.
var ops = []opEntry{
	{"invalid", opInvalid, 0x0000, 0xffff, 1, 1, 4},

	// indirect-register and immediate forms
	{"addb", opAddb, 0x0000, 0x000f, 1, 2, 7},
	{"addb", opAddb, 0x0010, 0x00ff, 1, 1, 7},
	{"add", opAdd, 0x0100, 0x010f, 1, 2, 7},
	{"add", opAdd, 0x0110, 0x01ff, 1, 1, 7},
	{"subb", opSubb, 0x0200, 0x020f, 1, 2, 7},
	{"subb", opSubb, 0x0210, 0x02ff, 1, 1, 7},
	{"sub", opSub, 0x0300, 0x030f, 1, 2, 7},
	{"sub", opSub, 0x0310, 0x03ff, 1, 1, 7},
	{"orb", opOrb, 0x0400, 0x040f, 1, 2, 7},
	{"orb", opOrb, 0x0410, 0x04ff, 1, 1, 7},
	{"or", opOr, 0x0500, 0x050f, 1, 2, 7},
	{"or", opOr, 0x0510, 0x05ff, 1, 1, 7},
	{"andb", opAndb, 0x0600, 0x060f, 1, 2, 7},
	{"andb", opAndb, 0x0610, 0x06ff, 1, 1, 7},
	{"and", opAnd, 0x0700, 0x070f, 1, 2, 7},
	{"and", opAnd, 0x0710, 0x07ff, 1, 1, 7},
	{"xorb", opXorb, 0x0800, 0x080f, 1, 2, 7},
	{"xorb", opXorb, 0x0810, 0x08ff, 1, 1, 7},
	{"xor", opXor, 0x0900, 0x090f, 1, 2, 7},
	{"xor", opXor, 0x0910, 0x09ff, 1, 1, 7},
	{"cpb", opCpb, 0x0a00, 0x0a0f, 1, 2, 7},
	{"cpb", opCpb, 0x0a10, 0x0aff, 1, 1, 7},
	{"cp", opCp, 0x0b00, 0x0b0f, 1, 2, 7},
	{"cp", opCp, 0x0b10, 0x0bff, 1, 1, 7},

	{"comb", opComb, 0x0c00, 0x0cf0, 16, 1, 12},
	{"cpb", opCpbIm, 0x0c01, 0x0cf1, 16, 2, 11},
	{"negb", opNegb, 0x0c02, 0x0cf2, 16, 1, 12},
	{"testb", opTestb, 0x0c04, 0x0cf4, 16, 1, 8},
	{"ldb", opLdbIm, 0x0c05, 0x0cf5, 16, 2, 11},
	{"tsetb", opTsetb, 0x0c06, 0x0cf6, 16, 1, 11},
	{"clrb", opClrb, 0x0c08, 0x0cf8, 16, 1, 8},
	{"com", opCom, 0x0d00, 0x0df0, 16, 1, 12},
	{"cp", opCpIm, 0x0d01, 0x0df1, 16, 2, 11},
	{"neg", opNeg, 0x0d02, 0x0df2, 16, 1, 12},
	{"test", opTest, 0x0d04, 0x0df4, 16, 1, 8},
	{"ld", opLdIm, 0x0d05, 0x0df5, 16, 2, 11},
	{"tset", opTset, 0x0d06, 0x0df6, 16, 1, 11},
	{"clr", opClr, 0x0d08, 0x0df8, 16, 1, 8},
	{"push", opPushImm, 0x0d09, 0x0df9, 16, 2, 12},

	{"epu", opEPU, 0x0e00, 0x0fff, 1, 1, 4},

	{"cpl", opCpl, 0x1000, 0x100f, 1, 3, 14},
	{"cpl", opCpl, 0x1010, 0x10ff, 1, 1, 14},
	{"pushl", opPushl, 0x1100, 0x11ff, 1, 1, 20},
	{"subl", opSubl, 0x1200, 0x120f, 1, 3, 14},
	{"subl", opSubl, 0x1210, 0x12ff, 1, 1, 14},
	{"push", opPush, 0x1300, 0x13ff, 1, 1, 13},
	{"ldl", opLdl, 0x1400, 0x140f, 1, 3, 11},
	{"ldl", opLdl, 0x1410, 0x14ff, 1, 1, 11},
	{"popl", opPopl, 0x1500, 0x15ff, 1, 1, 19},
	{"addl", opAddl, 0x1600, 0x160f, 1, 3, 14},
	{"addl", opAddl, 0x1610, 0x16ff, 1, 1, 14},
	{"pop", opPop, 0x1700, 0x17ff, 1, 1, 12},
	{"multl", opMultl, 0x1800, 0x180f, 1, 3, 282},
	{"multl", opMultl, 0x1810, 0x18ff, 1, 1, 282},
	{"mult", opMult, 0x1900, 0x190f, 1, 2, 70},
	{"mult", opMult, 0x1910, 0x19ff, 1, 1, 70},
	{"divl", opDivl, 0x1a00, 0x1a0f, 1, 3, 744},
	{"divl", opDivl, 0x1a10, 0x1aff, 1, 1, 744},
	{"div", opDiv, 0x1b00, 0x1b0f, 1, 2, 107},
	{"div", opDiv, 0x1b10, 0x1bff, 1, 1, 107},
	{"ldm", opLdmLoad, 0x1c01, 0x1cf1, 16, 2, 11},
	{"testl", opTestl, 0x1c08, 0x1cf8, 16, 1, 13},
	{"ldm", opLdmStore, 0x1c09, 0x1cf9, 16, 2, 11},
	{"ldl", opLdlStore, 0x1d00, 0x1dff, 1, 1, 11},
	{"jp", opJp, 0x1e00, 0x1eff, 1, 1, 10},
	{"call", opCall, 0x1f00, 0x1ff0, 16, 1, 12},

	{"ldb", opLdb, 0x2000, 0x200f, 1, 2, 7},
	{"ldb", opLdb, 0x2010, 0x20ff, 1, 1, 7},
	{"ld", opLd, 0x2100, 0x210f, 1, 2, 7},
	{"ld", opLd, 0x2110, 0x21ff, 1, 1, 7},
	{"resb", opResb, 0x2200, 0x220f, 1, 2, 10},
	{"resb", opResb, 0x2210, 0x22ff, 1, 1, 11},
	{"res", opRes, 0x2300, 0x230f, 1, 2, 10},
	{"res", opRes, 0x2310, 0x23ff, 1, 1, 11},
	{"setb", opSetb, 0x2400, 0x240f, 1, 2, 10},
	{"setb", opSetb, 0x2410, 0x24ff, 1, 1, 11},
	{"set", opSet, 0x2500, 0x250f, 1, 2, 10},
	{"set", opSet, 0x2510, 0x25ff, 1, 1, 11},
	{"bitb", opBitb, 0x2600, 0x260f, 1, 2, 10},
	{"bitb", opBitb, 0x2610, 0x26ff, 1, 1, 8},
	{"bit", opBit, 0x2700, 0x270f, 1, 2, 10},
	{"bit", opBit, 0x2710, 0x27ff, 1, 1, 8},
	{"incb", opIncb, 0x2800, 0x28ff, 1, 1, 11},
	{"inc", opInc, 0x2900, 0x29ff, 1, 1, 11},
	{"decb", opDecb, 0x2a00, 0x2aff, 1, 1, 11},
	{"dec", opDec, 0x2b00, 0x2bff, 1, 1, 11},
	{"exb", opExb, 0x2c00, 0x2cff, 1, 1, 12},
	{"ex", opEx, 0x2d00, 0x2dff, 1, 1, 12},
	{"ldb", opLdbStore, 0x2e00, 0x2eff, 1, 1, 8},
	{"ld", opLdStore, 0x2f00, 0x2fff, 1, 1, 8},

	{"ldrb", opLdbBased, 0x3000, 0x300f, 1, 2, 14},
	{"ldb", opLdbBased, 0x3010, 0x30ff, 1, 2, 14},
	{"ldr", opLdBased, 0x3100, 0x310f, 1, 2, 14},
	{"ld", opLdBased, 0x3110, 0x31ff, 1, 2, 14},
	{"ldrb", opLdbBasedStore, 0x3200, 0x320f, 1, 2, 14},
	{"ldb", opLdbBasedStore, 0x3210, 0x32ff, 1, 2, 14},
	{"ldr", opLdBasedStore, 0x3300, 0x330f, 1, 2, 14},
	{"ld", opLdBasedStore, 0x3310, 0x33ff, 1, 2, 14},
	{"ldar", opLdar, 0x3400, 0x340f, 1, 2, 15},
	{"lda", opLdar, 0x3410, 0x34ff, 1, 2, 15},
	{"ldrl", opLdlBased, 0x3500, 0x350f, 1, 2, 17},
	{"ldl", opLdlBased, 0x3510, 0x35ff, 1, 2, 17},
	{"ldrl", opLdlBasedStore, 0x3700, 0x370f, 1, 2, 17},
	{"ldl", opLdlBasedStore, 0x3710, 0x37ff, 1, 2, 17},
	{"ldps", opLdps, 0x3900, 0x39f0, 16, 1, 12},

	{"inib", opBlockIOB, 0x3a00, 0x3af0, 16, 2, 21},
	{"sinib", opBlockIOB, 0x3a01, 0x3af1, 16, 2, 21},
	{"outib", opBlockIOB, 0x3a02, 0x3af2, 16, 2, 21},
	{"soutib", opBlockIOB, 0x3a03, 0x3af3, 16, 2, 21},
	{"inb", opInbDA, 0x3a04, 0x3af4, 16, 2, 12},
	{"sinb", opInbDA, 0x3a05, 0x3af5, 16, 2, 12},
	{"outb", opOutbDA, 0x3a06, 0x3af6, 16, 2, 12},
	{"soutb", opOutbDA, 0x3a07, 0x3af7, 16, 2, 12},
	{"indb", opBlockIOB, 0x3a08, 0x3af8, 16, 2, 21},
	{"sindb", opBlockIOB, 0x3a09, 0x3af9, 16, 2, 21},
	{"outdb", opBlockIOB, 0x3a0a, 0x3afa, 16, 2, 21},
	{"soutdb", opBlockIOB, 0x3a0b, 0x3afb, 16, 2, 21},
	{"ini", opBlockIOW, 0x3b00, 0x3bf0, 16, 2, 21},
	{"sini", opBlockIOW, 0x3b01, 0x3bf1, 16, 2, 21},
	{"outi", opBlockIOW, 0x3b02, 0x3bf2, 16, 2, 21},
	{"souti", opBlockIOW, 0x3b03, 0x3bf3, 16, 2, 21},
	{"in", opInDA, 0x3b04, 0x3bf4, 16, 2, 12},
	{"sin", opInDA, 0x3b05, 0x3bf5, 16, 2, 12},
	{"out", opOutDA, 0x3b06, 0x3bf6, 16, 2, 12},
	{"sout", opOutDA, 0x3b07, 0x3bf7, 16, 2, 12},
	{"ind", opBlockIOW, 0x3b08, 0x3bf8, 16, 2, 21},
	{"sind", opBlockIOW, 0x3b09, 0x3bf9, 16, 2, 21},
	{"outd", opBlockIOW, 0x3b0a, 0x3bfa, 16, 2, 21},
	{"soutd", opBlockIOW, 0x3b0b, 0x3bfb, 16, 2, 21},
	{"inb", opInbIR, 0x3c00, 0x3cff, 1, 1, 10},
	{"in", opInIR, 0x3d00, 0x3dff, 1, 1, 10},
	{"outb", opOutbIR, 0x3e00, 0x3eff, 1, 1, 10},
	{"out", opOutIR, 0x3f00, 0x3fff, 1, 1, 10},

	// direct-address and indexed forms
	{"addb", opAddb, 0x4000, 0x40ff, 1, 2, 9},
	{"add", opAdd, 0x4100, 0x41ff, 1, 2, 9},
	{"subb", opSubb, 0x4200, 0x42ff, 1, 2, 9},
	{"sub", opSub, 0x4300, 0x43ff, 1, 2, 9},
	{"orb", opOrb, 0x4400, 0x44ff, 1, 2, 9},
	{"or", opOr, 0x4500, 0x45ff, 1, 2, 9},
	{"andb", opAndb, 0x4600, 0x46ff, 1, 2, 9},
	{"and", opAnd, 0x4700, 0x47ff, 1, 2, 9},
	{"xorb", opXorb, 0x4800, 0x48ff, 1, 2, 9},
	{"xor", opXor, 0x4900, 0x49ff, 1, 2, 9},
	{"cpb", opCpb, 0x4a00, 0x4aff, 1, 2, 9},
	{"cp", opCp, 0x4b00, 0x4bff, 1, 2, 9},
	{"comb", opComb, 0x4c00, 0x4cf0, 16, 2, 15},
	{"cpb", opCpbIm, 0x4c01, 0x4cf1, 16, 3, 14},
	{"negb", opNegb, 0x4c02, 0x4cf2, 16, 2, 15},
	{"testb", opTestb, 0x4c04, 0x4cf4, 16, 2, 11},
	{"ldb", opLdbIm, 0x4c05, 0x4cf5, 16, 3, 14},
	{"tsetb", opTsetb, 0x4c06, 0x4cf6, 16, 2, 14},
	{"clrb", opClrb, 0x4c08, 0x4cf8, 16, 2, 11},
	{"com", opCom, 0x4d00, 0x4df0, 16, 2, 15},
	{"cp", opCpIm, 0x4d01, 0x4df1, 16, 3, 14},
	{"neg", opNeg, 0x4d02, 0x4df2, 16, 2, 15},
	{"test", opTest, 0x4d04, 0x4df4, 16, 2, 11},
	{"ld", opLdIm, 0x4d05, 0x4df5, 16, 3, 14},
	{"tset", opTset, 0x4d06, 0x4df6, 16, 2, 14},
	{"clr", opClr, 0x4d08, 0x4df8, 16, 2, 11},
	{"epu", opEPU, 0x4e00, 0x4fff, 1, 2, 4},
	{"cpl", opCpl, 0x5000, 0x50ff, 1, 2, 15},
	{"pushl", opPushl, 0x5100, 0x51ff, 1, 2, 21},
	{"subl", opSubl, 0x5200, 0x52ff, 1, 2, 15},
	{"push", opPush, 0x5300, 0x53ff, 1, 2, 14},
	{"ldl", opLdl, 0x5400, 0x54ff, 1, 2, 12},
	{"popl", opPopl, 0x5500, 0x55ff, 1, 2, 23},
	{"addl", opAddl, 0x5600, 0x56ff, 1, 2, 15},
	{"pop", opPop, 0x5700, 0x57ff, 1, 2, 16},
	{"multl", opMultl, 0x5800, 0x58ff, 1, 2, 282},
	{"mult", opMult, 0x5900, 0x59ff, 1, 2, 70},
	{"divl", opDivl, 0x5a00, 0x5aff, 1, 2, 744},
	{"div", opDiv, 0x5b00, 0x5bff, 1, 2, 107},
	{"ldm", opLdmLoad, 0x5c01, 0x5cf1, 16, 3, 14},
	{"testl", opTestl, 0x5c08, 0x5cf8, 16, 2, 16},
	{"ldm", opLdmStore, 0x5c09, 0x5cf9, 16, 3, 14},
	{"ldl", opLdlStore, 0x5d00, 0x5dff, 1, 2, 14},
	{"jp", opJp, 0x5e00, 0x5eff, 1, 2, 8},
	{"call", opCall, 0x5f00, 0x5ff0, 16, 2, 18},
	{"ldb", opLdb, 0x6000, 0x60ff, 1, 2, 9},
	{"ld", opLd, 0x6100, 0x61ff, 1, 2, 9},
	{"resb", opResb, 0x6200, 0x62ff, 1, 2, 13},
	{"res", opRes, 0x6300, 0x63ff, 1, 2, 13},
	{"setb", opSetb, 0x6400, 0x64ff, 1, 2, 13},
	{"set", opSet, 0x6500, 0x65ff, 1, 2, 13},
	{"bitb", opBitb, 0x6600, 0x66ff, 1, 2, 10},
	{"bit", opBit, 0x6700, 0x67ff, 1, 2, 10},
	{"incb", opIncb, 0x6800, 0x68ff, 1, 2, 13},
	{"inc", opInc, 0x6900, 0x69ff, 1, 2, 13},
	{"decb", opDecb, 0x6a00, 0x6aff, 1, 2, 13},
	{"dec", opDec, 0x6b00, 0x6bff, 1, 2, 13},
	{"exb", opExb, 0x6c00, 0x6cff, 1, 2, 15},
	{"ex", opEx, 0x6d00, 0x6dff, 1, 2, 15},
	{"ldb", opLdbStore, 0x6e00, 0x6eff, 1, 2, 11},
	{"ld", opLdStore, 0x6f00, 0x6fff, 1, 2, 11},

	{"ldb", opLdbBX, 0x7000, 0x70ff, 1, 2, 14},
	{"ld", opLdBX, 0x7100, 0x71ff, 1, 2, 14},
	{"ldb", opLdbBXStore, 0x7200, 0x72ff, 1, 2, 14},
	{"ld", opLdBXStore, 0x7300, 0x73ff, 1, 2, 14},
	{"lda", opLdaBX, 0x7400, 0x74ff, 1, 2, 15},
	{"ldl", opLdlBX, 0x7500, 0x75ff, 1, 2, 17},
	{"lda", opLda, 0x7600, 0x76ff, 1, 2, 13},
	{"ldl", opLdlBXStore, 0x7700, 0x77ff, 1, 2, 17},
	{"ldps", opLdps, 0x7900, 0x79f0, 16, 2, 16},
	{"halt", opHalt, 0x7a00, 0x7a00, 1, 1, 8},
	{"iret", opIret, 0x7b00, 0x7b00, 1, 1, 13},
	{"mset", opMset, 0x7b08, 0x7b08, 1, 1, 5},
	{"mres", opMres, 0x7b09, 0x7b09, 1, 1, 5},
	{"mbit", opMbit, 0x7b0a, 0x7b0a, 1, 1, 7},
	{"mreq", opMreq, 0x7b0d, 0x7bfd, 16, 1, 12},
	{"di", opDi, 0x7c00, 0x7c03, 1, 1, 7},
	{"ei", opEi, 0x7c04, 0x7c07, 1, 1, 7},
	{"ldctl", opLdctl, 0x7d00, 0x7dff, 1, 1, 7},
	{"sc", opSc, 0x7f00, 0x7fff, 1, 1, 33},

	// register forms
	{"addb", opAddb, 0x8000, 0x80ff, 1, 1, 4},
	{"add", opAdd, 0x8100, 0x81ff, 1, 1, 4},
	{"subb", opSubb, 0x8200, 0x82ff, 1, 1, 4},
	{"sub", opSub, 0x8300, 0x83ff, 1, 1, 4},
	{"orb", opOrb, 0x8400, 0x84ff, 1, 1, 4},
	{"or", opOr, 0x8500, 0x85ff, 1, 1, 4},
	{"andb", opAndb, 0x8600, 0x86ff, 1, 1, 4},
	{"and", opAnd, 0x8700, 0x87ff, 1, 1, 4},
	{"xorb", opXorb, 0x8800, 0x88ff, 1, 1, 4},
	{"xor", opXor, 0x8900, 0x89ff, 1, 1, 4},
	{"cpb", opCpb, 0x8a00, 0x8aff, 1, 1, 4},
	{"cp", opCp, 0x8b00, 0x8bff, 1, 1, 4},
	{"comb", opComb, 0x8c00, 0x8cf0, 16, 1, 7},
	{"ldctlb", opLdctlb, 0x8c01, 0x8cf1, 16, 1, 7},
	{"negb", opNegb, 0x8c02, 0x8cf2, 16, 1, 7},
	{"testb", opTestb, 0x8c04, 0x8cf4, 16, 1, 7},
	{"tsetb", opTsetb, 0x8c06, 0x8cf6, 16, 1, 7},
	{"clrb", opClrb, 0x8c08, 0x8cf8, 16, 1, 7},
	{"ldctlb", opLdctlb, 0x8c09, 0x8cf9, 16, 1, 7},
	{"com", opCom, 0x8d00, 0x8df0, 16, 1, 7},
	{"setflg", opSetflg, 0x8d01, 0x8df1, 16, 1, 7},
	{"neg", opNeg, 0x8d02, 0x8df2, 16, 1, 7},
	{"resflg", opResflg, 0x8d03, 0x8df3, 16, 1, 7},
	{"test", opTest, 0x8d04, 0x8df4, 16, 1, 7},
	{"comflg", opComflg, 0x8d05, 0x8df5, 16, 1, 7},
	{"tset", opTset, 0x8d06, 0x8df6, 16, 1, 7},
	{"nop", opNop, 0x8d07, 0x8d07, 1, 1, 7},
	{"clr", opClr, 0x8d08, 0x8df8, 16, 1, 7},
	{"epu", opEPU, 0x8e00, 0x8fff, 1, 1, 4},
	{"cpl", opCpl, 0x9000, 0x90ff, 1, 1, 8},
	{"pushl", opPushl, 0x9100, 0x91ff, 1, 1, 12},
	{"subl", opSubl, 0x9200, 0x92ff, 1, 1, 8},
	{"push", opPush, 0x9300, 0x93ff, 1, 1, 9},
	{"ldl", opLdl, 0x9400, 0x94ff, 1, 1, 5},
	{"popl", opPopl, 0x9500, 0x95ff, 1, 1, 12},
	{"addl", opAddl, 0x9600, 0x96ff, 1, 1, 8},
	{"pop", opPop, 0x9700, 0x97ff, 1, 1, 8},
	{"multl", opMultl, 0x9800, 0x98ff, 1, 1, 282},
	{"mult", opMult, 0x9900, 0x99ff, 1, 1, 70},
	{"divl", opDivl, 0x9a00, 0x9aff, 1, 1, 744},
	{"div", opDiv, 0x9b00, 0x9bff, 1, 1, 107},
	{"testl", opTestl, 0x9c08, 0x9cf8, 16, 1, 13},
	{"ret", opRet, 0x9e00, 0x9e0f, 1, 1, 10},
	{"ldb", opLdb, 0xa000, 0xa0ff, 1, 1, 3},
	{"ld", opLd, 0xa100, 0xa1ff, 1, 1, 3},
	{"resb", opResb, 0xa200, 0xa2ff, 1, 1, 4},
	{"res", opRes, 0xa300, 0xa3ff, 1, 1, 4},
	{"setb", opSetb, 0xa400, 0xa4ff, 1, 1, 4},
	{"set", opSet, 0xa500, 0xa5ff, 1, 1, 4},
	{"bitb", opBitb, 0xa600, 0xa6ff, 1, 1, 4},
	{"bit", opBit, 0xa700, 0xa7ff, 1, 1, 4},
	{"incb", opIncb, 0xa800, 0xa8ff, 1, 1, 4},
	{"inc", opInc, 0xa900, 0xa9ff, 1, 1, 4},
	{"decb", opDecb, 0xaa00, 0xaaff, 1, 1, 4},
	{"dec", opDec, 0xab00, 0xabff, 1, 1, 4},
	{"exb", opExb, 0xac00, 0xacff, 1, 1, 6},
	{"ex", opEx, 0xad00, 0xadff, 1, 1, 6},
	{"tccb", opTccb, 0xae00, 0xaeff, 1, 1, 5},
	{"tcc", opTcc, 0xaf00, 0xafff, 1, 1, 5},

	{"dab", opDab, 0xb000, 0xb0f0, 16, 1, 5},
	{"extsb", opExtsb, 0xb100, 0xb1f0, 16, 1, 11},
	{"extsl", opExtsl, 0xb107, 0xb1f7, 16, 1, 11},
	{"exts", opExts, 0xb10a, 0xb1fa, 16, 1, 11},
	{"rlb", opRotB, 0xb200, 0xb2f0, 16, 1, 6},
	{"sllb", opShiftB, 0xb201, 0xb2f1, 16, 2, 15},
	{"rlb", opRotB, 0xb202, 0xb2f2, 16, 1, 7},
	{"sdlb", opShiftB, 0xb203, 0xb2f3, 16, 2, 18},
	{"rrb", opRotB, 0xb204, 0xb2f4, 16, 1, 6},
	{"rrb", opRotB, 0xb206, 0xb2f6, 16, 1, 7},
	{"rlcb", opRotB, 0xb208, 0xb2f8, 16, 1, 6},
	{"slab", opShiftB, 0xb209, 0xb2f9, 16, 2, 15},
	{"rlcb", opRotB, 0xb20a, 0xb2fa, 16, 1, 7},
	{"sdab", opShiftB, 0xb20b, 0xb2fb, 16, 2, 18},
	{"rrcb", opRotB, 0xb20c, 0xb2fc, 16, 1, 6},
	{"rrcb", opRotB, 0xb20e, 0xb2fe, 16, 1, 7},
	{"rl", opRotW, 0xb300, 0xb3f0, 16, 1, 6},
	{"sll", opShiftW, 0xb301, 0xb3f1, 16, 2, 15},
	{"rl", opRotW, 0xb302, 0xb3f2, 16, 1, 7},
	{"sdl", opShiftW, 0xb303, 0xb3f3, 16, 2, 18},
	{"rr", opRotW, 0xb304, 0xb3f4, 16, 1, 6},
	{"slll", opShiftL, 0xb305, 0xb3f5, 16, 2, 16},
	{"rr", opRotW, 0xb306, 0xb3f6, 16, 1, 7},
	{"sdll", opShiftL, 0xb307, 0xb3f7, 16, 2, 19},
	{"rlc", opRotW, 0xb308, 0xb3f8, 16, 1, 6},
	{"sla", opShiftW, 0xb309, 0xb3f9, 16, 2, 15},
	{"rlc", opRotW, 0xb30a, 0xb3fa, 16, 1, 7},
	{"sda", opShiftW, 0xb30b, 0xb3fb, 16, 2, 18},
	{"rrc", opRotW, 0xb30c, 0xb3fc, 16, 1, 6},
	{"slal", opShiftL, 0xb30d, 0xb3fd, 16, 2, 16},
	{"rrc", opRotW, 0xb30e, 0xb3fe, 16, 1, 7},
	{"sdal", opShiftL, 0xb30f, 0xb3ff, 16, 2, 19},
	{"adcb", opAdcb, 0xb400, 0xb4ff, 1, 1, 5},
	{"adc", opAdc, 0xb500, 0xb5ff, 1, 1, 5},
	{"sbcb", opSbcb, 0xb600, 0xb6ff, 1, 1, 5},
	{"sbc", opSbc, 0xb700, 0xb7ff, 1, 1, 5},
	{"trib", opTranslate, 0xb800, 0xb8f0, 16, 2, 25},
	{"trtib", opTranslate, 0xb802, 0xb8f2, 16, 2, 25},
	{"trirb", opTranslate, 0xb804, 0xb8f4, 16, 2, 25},
	{"trtirb", opTranslate, 0xb806, 0xb8f6, 16, 2, 25},
	{"trdb", opTranslate, 0xb808, 0xb8f8, 16, 2, 25},
	{"trtdb", opTranslate, 0xb80a, 0xb8fa, 16, 2, 25},
	{"trdrb", opTranslate, 0xb80c, 0xb8fc, 16, 2, 25},
	{"trtdrb", opTranslate, 0xb80e, 0xb8fe, 16, 2, 25},
	{"cpib", opBlockCPB, 0xba00, 0xbaf0, 16, 2, 20},
	{"ldib", opBlockLDB, 0xba01, 0xbaf1, 16, 2, 20},
	{"cpsib", opBlockCPB, 0xba02, 0xbaf2, 16, 2, 25},
	{"cpirb", opBlockCPB, 0xba04, 0xbaf4, 16, 2, 20},
	{"cpsirb", opBlockCPB, 0xba06, 0xbaf6, 16, 2, 25},
	{"cpdb", opBlockCPB, 0xba08, 0xbaf8, 16, 2, 20},
	{"lddb", opBlockLDB, 0xba09, 0xbaf9, 16, 2, 20},
	{"cpsdb", opBlockCPB, 0xba0a, 0xbafa, 16, 2, 25},
	{"cpdrb", opBlockCPB, 0xba0c, 0xbafc, 16, 2, 20},
	{"cpsdrb", opBlockCPB, 0xba0e, 0xbafe, 16, 2, 25},
	{"cpi", opBlockCPW, 0xbb00, 0xbbf0, 16, 2, 20},
	{"ldi", opBlockLDW, 0xbb01, 0xbbf1, 16, 2, 20},
	{"cpsi", opBlockCPW, 0xbb02, 0xbbf2, 16, 2, 25},
	{"cpir", opBlockCPW, 0xbb04, 0xbbf4, 16, 2, 20},
	{"cpsir", opBlockCPW, 0xbb06, 0xbbf6, 16, 2, 25},
	{"cpd", opBlockCPW, 0xbb08, 0xbbf8, 16, 2, 20},
	{"ldd", opBlockLDW, 0xbb09, 0xbbf9, 16, 2, 20},
	{"cpsd", opBlockCPW, 0xbb0a, 0xbbfa, 16, 2, 25},
	{"cpdr", opBlockCPW, 0xbb0c, 0xbbfc, 16, 2, 20},
	{"cpsdr", opBlockCPW, 0xbb0e, 0xbbfe, 16, 2, 25},
	{"rrdb", opRrdb, 0xbc00, 0xbcff, 1, 1, 9},
	{"ldk", opLdk, 0xbd00, 0xbdff, 1, 1, 5},
	{"rldb", opRldb, 0xbe00, 0xbeff, 1, 1, 9},

	{"ldb", opLdbImm8, 0xc000, 0xcfff, 1, 1, 5},
	{"calr", opCalr, 0xd000, 0xdfff, 1, 1, 15},
	{"jr", opJr, 0xe000, 0xefff, 1, 1, 6},
	{"djnz", opDjnz, 0xf000, 0xffff, 1, 1, 11},
}

// exec maps every opcode word to its ops row.
var exec [65536]uint16

func init() {
	for i, e := range ops {
		for op := uint32(e.beg); op <= uint32(e.end); op += uint32(e.step) {
			exec[op] = uint16(i)
		}
	}
}
