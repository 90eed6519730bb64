package main

import (
	"testing"

	"github.com/matryer/is"
)

// testMachine builds a Z8002 with 64 KiB of RAM shared across all
// three bus roles, a reset vector entering system mode at 0x0008, and
// the given instruction words at 0x0008. Reset is latched but not yet
// serviced.
func testMachine(words ...uint16) (*Z8000, *MemoryRegion) {
	mem := NewMemoryRegion(0x10000)
	mem.WriteWord(2, fSN)
	mem.WriteWord(4, 0x0008)
	for i, w := range words {
		mem.WriteWord(uint32(8+2*i), w)
	}
	cpu := NewZ8002()
	cpu.SetMemory(mem)
	cpu.SetIO(NewIOPorts())
	cpu.Reset()
	return cpu, mem
}

func TestResetIntoNop(t *testing.T) {
	is := is.New(t)
	cpu, _ := testMachine(0x8d07) // nop
	cycles := cpu.Step()
	is.Equal(cpu.PC(), uint32(0x000a)) // reset PC + 2
	is.Equal(cycles, 7)
	is.Equal(cpu.Cycles(), 7)
	is.Equal(cpu.opValid, uint8(0)) // operand cache cleared between instructions
	is.Equal(cpu.FCW(), uint16(fSN))
}

func TestAddWord(t *testing.T) {
	is := is.New(t)
	cpu, _ := testMachine(
		0x2101, 0x1234, // ld r1,#0x1234
		0x2102, 0x1111, // ld r2,#0x1111
		0x8121, //         add r1,r2
		0x7a00, //         halt
	)
	is.NoErr(cpu.Run(-1))
	is.True(cpu.Halted())
	is.Equal(cpu.Reg(1), uint16(0x2345))
	is.True(!cpu.flag(fZ))
	is.True(!cpu.flag(fS))
	is.True(!cpu.flag(fC))
	is.True(!cpu.flag(fPV))
}

func TestAddByteCarry(t *testing.T) {
	is := is.New(t)
	cpu, _ := testMachine(
		0xc8ff, // ldb rl0,#0xff
		0xc901, // ldb rl1,#0x01
		0x8098, // addb rl0,rl1
		0x7a00, // halt
	)
	is.NoErr(cpu.Run(-1))
	is.True(cpu.Halted())
	is.Equal(cpu.rb(8), uint8(0x00)) // rl0
	is.True(cpu.flag(fZ))
	is.True(cpu.flag(fC))
	is.True(!cpu.flag(fS))
	is.True(!cpu.flag(fPV)) // no signed overflow
}

func TestBlockMove(t *testing.T) {
	is := is.New(t)
	cpu, mem := testMachine(
		0x2101, 0x2000, // ld r1,#0x2000  (dst)
		0x2102, 0x1000, // ld r2,#0x1000  (src)
		0x2103, 0x0010, // ld r3,#16      (count)
		0xba21, 0x0130, // ldirb @r1,@r2,r3
		0x7a00, //         halt
	)
	for i := uint32(0); i < 16; i++ {
		mem.WriteByte(0x1000+i, uint8(i))
	}
	is.NoErr(cpu.Run(-1))
	is.True(cpu.Halted())
	for i := uint32(0); i < 16; i++ {
		is.Equal(mem.ReadByte(0x2000+i), uint8(i))
	}
	is.Equal(cpu.Reg(3), uint16(0))
	is.Equal(cpu.Reg(1), uint16(0x2010))
	is.Equal(cpu.Reg(2), uint16(0x1010))
	is.True(cpu.flag(fPV)) // counter exhausted
}

// Division follows the architectural register assignment: quotient in
// the low word of the pair, remainder in the high word.
func TestDivide(t *testing.T) {
	is := is.New(t)
	cpu, _ := testMachine(
		0x1404, 0x0001, 0x0000, // ldl rr4,#0x00010000
		0x2107, 0x0100, //         ld r7,#0x0100
		0x9b74, //                 div rr4,r7
		0x7a00, //                 halt
	)
	is.NoErr(cpu.Run(-1))
	is.True(cpu.Halted())
	is.Equal(cpu.Reg(5), uint16(0x0100)) // quotient
	is.Equal(cpu.Reg(4), uint16(0x0000)) // remainder
	is.True(!cpu.flag(fZ))
	is.True(!cpu.flag(fPV))
}

func TestDivideByZero(t *testing.T) {
	is := is.New(t)
	cpu, _ := testMachine(
		0x1404, 0x1234, 0x5678, // ldl rr4,#0x12345678
		0x2107, 0x0000, //         ld r7,#0
		0x9b74, //                 div rr4,r7
		0x7a00, //                 halt
	)
	is.NoErr(cpu.Run(-1))
	is.True(cpu.flag(fZ))
	is.True(cpu.flag(fPV))
	is.Equal(cpu.RegLong(4), uint32(0x12345678)) // untouched
}

func TestJrZeroDisplacement(t *testing.T) {
	is := is.New(t)
	cpu, _ := testMachine(
		0xe800, // jr +0 falls through to the next instruction
		0x7a00, // halt
	)
	is.NoErr(cpu.Run(-1))
	is.True(cpu.Halted())
	is.Equal(cpu.PC(), uint32(0x000c))
}

func TestJrSelfLoop(t *testing.T) {
	is := is.New(t)
	cpu, _ := testMachine(
		0xe8fe, // jr -2 loops on itself until the budget runs out
	)
	is.NoErr(cpu.Run(300))
	is.True(!cpu.Halted())
	is.Equal(cpu.PC(), uint32(0x0008))
}

func TestDjnzFallThrough(t *testing.T) {
	is := is.New(t)
	cpu, _ := testMachine(
		0x2101, 0x0001, // ld r1,#1
		0x8df1,         // setflg c,z,s,p/v; djnz must leave these alone
		0xf182,         // djnz r1,-2
		0x7a00,         // halt
	)
	is.NoErr(cpu.Run(-1))
	is.True(cpu.Halted())
	is.Equal(cpu.Reg(1), uint16(0))
	is.Equal(cpu.FCW()&0x00f0, uint16(0x00f0))
}

func TestDjnzLoop(t *testing.T) {
	is := is.New(t)
	cpu, _ := testMachine(
		0x2101, 0x0003, // ld r1,#3
		0x8d08,         // clr r0
		0xa900,         // inc r0,#1
		0xf182,         // djnz r1, back to the inc
		0x7a00,         // halt
	)
	is.NoErr(cpu.Run(-1))
	is.True(cpu.Halted())
	is.Equal(cpu.Reg(0), uint16(3))
	is.Equal(cpu.Reg(1), uint16(0))
}

// A privileged instruction in normal mode takes the trap: the PC
// after the offender, the old FCW and the instruction word end up on
// the system stack, and execution continues at the vector target.
func TestPrivilegedTrap(t *testing.T) {
	is := is.New(t)
	mem := NewMemoryRegion(0x10000)
	mem.WriteWord(2, 0x0000)  // reset into normal mode
	mem.WriteWord(4, 0x0100)  // reset PC
	mem.WriteWord(8, fSN)     // TRAP vector FCW
	mem.WriteWord(10, 0x0200) // TRAP vector PC
	mem.WriteWord(0x0100, 0x7a00) // halt, privileged
	mem.WriteWord(0x0200, 0x8d07) // nop
	mem.WriteWord(0x0202, 0x7a00) // halt, now legal
	cpu := NewZ8002()
	cpu.SetMemory(mem)
	cpu.SetIO(NewIOPorts())
	cpu.Reset()
	is.NoErr(cpu.Run(-1))
	is.True(cpu.Halted())
	is.Equal(cpu.PC(), uint32(0x0204))
	is.Equal(mem.ReadWord(0xfffe), uint16(0x0102)) // PC after the offender
	is.Equal(mem.ReadWord(0xfffc), uint16(0x0000)) // old FCW
	is.Equal(mem.ReadWord(0xfffa), uint16(0x7a00)) // instruction word tag
	is.Equal(cpu.Reg(15), uint16(0xfffa))
}

func TestSystemCall(t *testing.T) {
	is := is.New(t)
	cpu, mem := testMachine(
		0x7f2a, // sc #0x2a
	)
	mem.WriteWord(0x0c, fSN)     // SYSCALL vector FCW
	mem.WriteWord(0x0e, 0x0400)  // SYSCALL vector PC
	mem.WriteWord(0x0400, 0x7a00) // halt
	is.NoErr(cpu.Run(-1))
	is.True(cpu.Halted())
	is.Equal(mem.ReadWord(0xfffa), uint16(0x7f2a)) // call word with its number
	is.Equal(cpu.PC(), uint32(0x0402))
}

func TestUndefinedOpcodeTraps(t *testing.T) {
	is := is.New(t)
	cpu, _ := testMachine(
		0x3600, // unassigned: hits the catch-all
	)
	cpu.Step() // reset + offender
	is.Equal(cpu.irqReq&reqTRAP, uint16(reqTRAP))
	is.Equal(uint16(cpu.op[0]), uint16(0x3600)) // preserved for the trap push
}

func TestNonVectoredInterrupt(t *testing.T) {
	is := is.New(t)
	mem := NewMemoryRegion(0x10000)
	mem.WriteWord(2, fSN|fNVIE)
	mem.WriteWord(4, 0x0100)
	mem.WriteWord(0x18, fSN)    // NVI vector FCW
	mem.WriteWord(0x1a, 0x0300) // NVI vector PC
	mem.WriteWord(0x0100, 0x8d07) // nop
	mem.WriteWord(0x0102, 0x8d07) // nop
	mem.WriteWord(0x0300, 0x7a00) // halt
	cpu := NewZ8002()
	cpu.SetMemory(mem)
	cpu.SetIO(NewIOPorts())
	cpu.Reset()
	cpu.Step() // reset + first nop
	cpu.SetVIVector(0x0042)
	cpu.SetIRQLine(lineNVI, true)
	cpu.Step() // service + halt
	is.True(cpu.Halted())
	is.Equal(cpu.PC(), uint32(0x0302))
	is.Equal(mem.ReadWord(0xfffe), uint16(0x0102)) // interrupted PC
	is.Equal(mem.ReadWord(0xfffa), uint16(0x0042)) // vector tag
}

// NMI is edge triggered: one request per rising edge, regardless of
// the FCW enables, and holding the line high does not re-latch.
func TestNonMaskableInterrupt(t *testing.T) {
	is := is.New(t)
	cpu, mem := testMachine(
		0x8d07, // nop
		0x8d07, // nop
	)
	mem.WriteWord(vecNMI, fSN)
	mem.WriteWord(vecNMI+2, 0x0300)
	mem.WriteWord(0x0300, 0x7a00) // halt
	cpu.SetNMILine(true)
	cpu.Step() // service and run the handler's halt
	is.True(cpu.Halted())
	is.Equal(cpu.PC(), uint32(0x0302))
	is.Equal(mem.ReadWord(0xfffe), uint16(0x0008)) // interrupted PC
	is.Equal(mem.ReadWord(0xfffc), uint16(fSN))    // old FCW

	// Still asserted, so no new edge; the CPU stays halted.
	cpu.SetNMILine(true)
	is.Equal(cpu.Step(), 0)
	is.True(cpu.Halted())

	// A fresh edge wakes it and stacks another frame.
	cpu.SetNMILine(false)
	cpu.SetNMILine(true)
	cpu.Step()
	is.True(cpu.Halted())
	is.Equal(mem.ReadWord(0xfff8), uint16(0x0302)) // PC past the halt
}

// VI loads its handler PC through the vector table, indexed by the
// byte the device presents during the acknowledge.
func TestVectoredInterrupt(t *testing.T) {
	is := is.New(t)
	mem := NewMemoryRegion(0x10000)
	mem.WriteWord(2, fSN|fVIE)
	mem.WriteWord(4, 0x0100)
	mem.WriteWord(vecVI, fSN)               // VI vector FCW
	mem.WriteWord(vec00+2*0x21, 0x0300)     // table entry for vector 0x21
	mem.WriteWord(0x0100, 0x8d07)           // nop
	mem.WriteWord(0x0300, 0x7a00)           // halt
	cpu := NewZ8002()
	cpu.SetMemory(mem)
	cpu.SetIO(NewIOPorts())
	cpu.Reset()
	cpu.SetVIVector(0x21)
	cpu.SetIRQLine(lineVI, true)
	cpu.Step() // service + halt
	is.True(cpu.Halted())
	is.Equal(cpu.PC(), uint32(0x0302))
	is.Equal(mem.ReadWord(0xfffe), uint16(0x0100)) // interrupted PC
	is.Equal(mem.ReadWord(0xfffa), uint16(0x0021)) // vector tag
}

// A level-asserted line latched while masked must fire when EI
// re-enables it.
func TestInterruptLatchedOnEnable(t *testing.T) {
	is := is.New(t)
	mem := NewMemoryRegion(0x10000)
	mem.WriteWord(2, fSN) // interrupts masked
	mem.WriteWord(4, 0x0100)
	mem.WriteWord(0x18, fSN)
	mem.WriteWord(0x1a, 0x0300)
	mem.WriteWord(0x0100, 0x8d07) // nop
	mem.WriteWord(0x0102, 0x7c05) // ei nvi
	mem.WriteWord(0x0104, 0x8d07) // nop
	mem.WriteWord(0x0300, 0x7a00) // halt
	cpu := NewZ8002()
	cpu.SetMemory(mem)
	cpu.SetIO(NewIOPorts())
	cpu.Reset()
	cpu.Step() // reset + nop
	cpu.SetIRQLine(lineNVI, true)
	is.Equal(cpu.irqReq, uint16(0)) // masked: nothing latched
	cpu.Step()                      // ei relatches the level input
	is.Equal(cpu.irqReq&reqNVI, uint16(reqNVI))
	cpu.Step() // service + halt
	is.True(cpu.Halted())
}

func TestEnableDisableInterrupts(t *testing.T) {
	is := is.New(t)
	cpu, _ := testMachine(
		0x7c04, // ei vi,nvi
		0x7a00, // halt
	)
	is.NoErr(cpu.Run(-1))
	is.Equal(cpu.FCW()&(fVIE|fNVIE), uint16(fVIE|fNVIE))

	cpu2, _ := testMachine(
		0x7c04, // ei vi,nvi
		0x7c01, // di nvi (vi bit set: untouched)
		0x7a00, // halt
	)
	is.NoErr(cpu2.Run(-1))
	is.Equal(cpu2.FCW()&fVIE, uint16(fVIE))
	is.Equal(cpu2.FCW()&fNVIE, uint16(0))
}

func TestIOLoopback(t *testing.T) {
	is := is.New(t)
	cpu, _ := testMachine(
		0x2102, 0x0000, // ld r2,#0 (port)
		0x3d21, //         in r1,@r2
		0x2100, 0xbee5, // ld r0,#0xbee5
		0x3f20, //         out @r2,r0
		0x3d23, //         in r3,@r2
		0x7a00, //         halt
	)
	is.NoErr(cpu.Run(-1))
	is.Equal(cpu.Reg(1), uint16(0x1234)) // power-on value
	is.Equal(cpu.Reg(3), uint16(0xbee5)) // loopback
}

func TestLdctlFCWRoundTrip(t *testing.T) {
	is := is.New(t)
	cpu, _ := testMachine(
		0x2101, fSN | 0x00f0, // ld r1,#(system + all flags)
		0x7d1a, //               ldctl fcw,r1
		0x7d22, //               ldctl r2,fcw
		0x7a00, //               halt
	)
	is.NoErr(cpu.Run(-1))
	is.Equal(cpu.Reg(2), uint16(fSN|0x00f0))
}

func TestPushPopRoundTrip(t *testing.T) {
	expect := func(got, want interface{}) {
		if got != want {
			t.Helper()
			t.Fatal("got:", got, "want:", want)
		}
	}
	cpu, _ := testMachine()
	cpu.Step() // service reset so the mode is settled
	cpu.SetReg(15, 0x8000)
	cpu.pushwReg(15, 0xcafe)
	expect(cpu.Reg(15), uint16(0x7ffe))
	expect(cpu.popwReg(15), uint16(0xcafe))
	expect(cpu.Reg(15), uint16(0x8000))

	cpu.pushlReg(15, uint32(0xdeadbeef))
	expect(cpu.Reg(15), uint16(0x7ffc))
	expect(cpu.poplReg(15), uint32(0xdeadbeef))
	expect(cpu.Reg(15), uint16(0x8000))
}

func TestByteLoadFlagsMatchTable(t *testing.T) {
	// Byte logical results must agree with the precomputed table for
	// every value.
	cpu, _ := testMachine()
	for b := 0; b < 256; b++ {
		cpu.logb(uint8(b))
		if cpu.fcw&(fZ|fS|fPV) != zsp[b] {
			t.Fatalf("flags for %02X: got %04X want %04X", b, cpu.fcw&(fZ|fS|fPV), zsp[b])
		}
	}
}

func TestRunWithoutBuses(t *testing.T) {
	is := is.New(t)
	cpu := NewZ8002()
	is.True(cpu.Run(-1) != nil)
	is.Equal(cpu.Step(), -1)
	cpu.SetMemory(NewMemoryRegion(0x1000))
	is.True(cpu.Run(-1) != nil) // still no I/O
}

// Attaching only a program bus is enough; data and stack accesses fall
// back to it.
func TestProgramMemoryOnly(t *testing.T) {
	is := is.New(t)
	mem := NewMemoryRegion(0x10000)
	mem.WriteWord(2, fSN)
	mem.WriteWord(4, 0x0008)
	mem.WriteWord(8, 0x2101)  // ld r1,#0x1234
	mem.WriteWord(10, 0x1234)
	mem.WriteWord(12, 0x93f1) // push @r15,r1
	mem.WriteWord(14, 0x7a00) // halt
	cpu := NewZ8002()
	cpu.SetProgramMemory(mem)
	cpu.SetIO(NewIOPorts())
	cpu.Reset()
	is.NoErr(cpu.Run(-1))
	is.True(cpu.Halted())
	is.Equal(cpu.Reg(15), uint16(0xfffe))
	is.Equal(mem.ReadWord(0xfffe), uint16(0x1234))
}

func BenchmarkAdd(b *testing.B) {
	cpu, _ := testMachine(
		0x8121, // add r1,r2
	)
	cpu.Step() // service reset
	for i := 0; i < b.N; i++ {
		cpu.SetReg(1, uint16(i))
		cpu.SetReg(2, uint16(i))
		cpu.SetPC(0x0008)
		cpu.Step()
	}
}

func BenchmarkNop(b *testing.B) {
	cpu, _ := testMachine(
		0x8d07, // nop
	)
	cpu.Step()
	for i := 0; i < b.N; i++ {
		cpu.SetPC(0x0008)
		cpu.Step()
	}
}
