package main

import (
	"errors"
	"fmt"
)

// Interrupt/trap request bits, highest priority first.
const (
	reqRESET   = 0x80
	reqEPU     = 0x40
	reqTRAP    = 0x20
	reqSYSCALL = 0x10
	reqSEGTRAP = 0x08
	reqNMI     = 0x04
	reqNVI     = 0x02
	reqVI      = 0x01
)

// Program status area offsets, scaled by vecMult on the Z8001 where
// every entry is eight bytes instead of four.
const (
	vecEPU     = 0x0004
	vecTRAP    = 0x0008
	vecSYSCALL = 0x000c
	vecSEGTRAP = 0x0010
	vecNMI     = 0x0014
	vecNVI     = 0x0018
	vecVI      = 0x001c
	vec00      = 0x001e
)

// Interrupt line numbers for SetIRQLine.
const (
	lineNVI = 0
	lineVI  = 1
)

// Z8000 is one emulated CPU core. The zero value is not usable; use
// NewZ8002 or NewZ8001.
type Z8000 struct {
	regs [16]uint16

	pc      uint32 // effective program counter (seg<<16|off when segmented)
	ppc     uint32 // address of the instruction currently executing
	fcw     uint16 // flag/control word
	refresh uint16 // refresh control; bit 15 enables, low 8 bits count
	psapSeg uint16
	psapOff uint16
	nspSeg  uint16 // normal-mode stack pointer shadow
	nspOff  uint16

	irqReq   uint16
	irqVec   uint16
	irqState [2]int
	nmiState int
	mi       bool // multi-micro output latch; MBIT tests the input side
	halt     bool

	op      [4]uint32 // operand word cache for the current instruction
	opValid uint8

	icount      int
	totalCycles int

	segmented bool // Z8001 variant
	vecMult   uint32

	program, data, stack MemoryBus
	io                   IOBus

	trace    bool
	regTrace bool
}

// NewZ8002 creates a non-segmented CPU (16-bit address space).
func NewZ8002() *Z8000 {
	return &Z8000{vecMult: 1}
}

// NewZ8001 creates a segmented CPU (23-bit address space, long-format
// PC pushes, doubled vector table entries).
func NewZ8001() *Z8000 {
	return &Z8000{segmented: true, vecMult: 2}
}

// SetMemory binds one region to all three memory roles.
func (z *Z8000) SetMemory(m MemoryBus) {
	z.program = m
	z.data = m
	z.stack = m
}

func (z *Z8000) SetProgramMemory(m MemoryBus) { z.program = m }
func (z *Z8000) SetDataMemory(m MemoryBus)    { z.data = m }
func (z *Z8000) SetStackMemory(m MemoryBus)   { z.stack = m }
func (z *Z8000) SetIO(io IOBus)               { z.io = io }

func (z *Z8000) SetTrace(enable bool)    { z.trace = enable }
func (z *Z8000) SetRegTrace(enable bool) { z.regTrace = enable }

func (z *Z8000) Cycles() int  { return z.totalCycles }
func (z *Z8000) Halted() bool { return z.halt }

// PC returns the effective program counter (seg<<16|off when segmented).
func (z *Z8000) PC() uint32 { return z.pc }

func (z *Z8000) SetPC(pc uint32) { z.pc = pc }

// FCW returns the flag/control word.
func (z *Z8000) FCW() uint16 { return z.fcw }

func (z *Z8000) SetFCW(fcw uint16) { z.changeFCW(fcw) }

// segmentedMode reports whether addresses are currently segmented.
// The FCW SEG bit has no effect on the Z8002.
func (z *Z8000) segmentedMode() bool {
	return z.segmented && z.fcw&fSEG != 0
}

// segmentedAddr converts a long-format address as stored in memory or
// a register pair (seg<<8|0x80 in the high word) to the internal
// seg<<16|off form.
func segmentedAddr(addr uint32) uint32 {
	return addr>>8&0x7f0000 | addr&0xffff
}

// makeSegmentedAddr is the inverse of segmentedAddr.
func makeSegmentedAddr(addr uint32) uint32 {
	return addr<<8&0x7f000000 | 0x80000000 | addr&0xffff
}

// addrAdd adds to the offset half of an address, preserving the
// segment bits. Naive 23-bit addition would carry into the segment.
func addrAdd(addr, addend uint32) uint32 {
	return addr&0xffff0000 | (addr+addend)&0xffff
}

func addrSub(addr, sub uint32) uint32 {
	return addr&0xffff0000 | (addr-sub)&0xffff
}

// adjustAddr substitutes the PC's segment when a Z8001 runs with the
// FCW SEG bit clear.
func (z *Z8000) adjustAddr(addr uint32) uint32 {
	if z.segmented && z.fcw&fSEG == 0 {
		return addr&0xffff | z.pc&0x7f0000
	}
	return addr
}

func (z *Z8000) readMemB(bus MemoryBus, addr uint32) uint8 {
	return bus.ReadByte(z.adjustAddr(addr))
}

func (z *Z8000) readMemW(bus MemoryBus, addr uint32) uint16 {
	return bus.ReadWord(z.adjustAddr(addr) &^ 1)
}

func (z *Z8000) readMemL(bus MemoryBus, addr uint32) uint32 {
	addr = z.adjustAddr(addr) &^ 1
	return uint32(bus.ReadWord(addr))<<16 | uint32(bus.ReadWord(addrAdd(addr, 2)))
}

// writeMemB issues a masked word write so the other byte of the word
// is preserved at the bus: even addresses hit the high half, odd the
// low half.
func (z *Z8000) writeMemB(bus MemoryBus, addr uint32, v uint8) {
	addr = z.adjustAddr(addr)
	mask := uint16(0xff00)
	if addr&1 != 0 {
		mask = 0x00ff
	}
	bus.WriteWordMasked(addr&^1, uint16(v)|uint16(v)<<8, mask)
}

func (z *Z8000) writeMemW(bus MemoryBus, addr uint32, v uint16) {
	bus.WriteWord(z.adjustAddr(addr)&^1, v)
}

func (z *Z8000) writeMemL(bus MemoryBus, addr uint32, v uint32) {
	addr = z.adjustAddr(addr) &^ 1
	bus.WriteWord(addr, uint16(v>>16))
	bus.WriteWord(addrAdd(addr, 2), uint16(v))
}

func (z *Z8000) readPortB(mode int, addr uint16) uint8      { return z.io.ReadByte(addr, mode) }
func (z *Z8000) readPortW(mode int, addr uint16) uint16     { return z.io.ReadWord(addr, mode) }
func (z *Z8000) writePortB(mode int, addr uint16, v uint8)  { z.io.WriteByte(addr, v, mode) }
func (z *Z8000) writePortW(mode int, addr uint16, v uint16) { z.io.WriteWord(addr, v, mode) }

// fetchOp reads the next instruction word; the low PC bit is ignored.
func (z *Z8000) fetchOp() uint16 {
	z.pc &^= 1
	res := z.program.ReadWord(z.pc)
	z.pc += 2
	return res
}

// getOperand returns operand word n, fetching it from the program
// stream on first use. Idempotent within one instruction.
func (z *Z8000) getOperand(n int) uint16 {
	if z.opValid&(1<<n) == 0 {
		z.op[n] = uint32(z.program.ReadWord(z.pc &^ 1))
		z.pc += 2
		z.opValid |= 1 << n
	}
	return uint16(z.op[n])
}

// getAddrOperand returns operand n decoded as a memory address. In
// segmented mode a word with bit 15 set is the first half of a long
// address and a second word follows; otherwise the word holds a short
// segmented address with the offset in its low byte.
func (z *Z8000) getAddrOperand(n int) uint32 {
	if z.opValid&(1<<n) == 0 {
		seg := uint32(z.program.ReadWord(z.pc &^ 1))
		z.pc += 2
		if z.segmentedMode() {
			if seg&0x8000 != 0 {
				z.op[n] = seg&0x7f00<<8 | uint32(z.program.ReadWord(z.pc&^1))
				z.pc += 2
			} else {
				z.op[n] = seg&0x7f00<<8 | seg&0xff
			}
		} else {
			z.op[n] = seg
		}
		z.opValid |= 1 << n
	}
	return z.op[n]
}

// getRawAddrOperand keeps the segment descriptor word intact in the
// high half; LDA needs it to reconstruct the register pointer form.
func (z *Z8000) getRawAddrOperand(n int) uint32 {
	if z.opValid&(1<<n) == 0 {
		seg := uint32(z.program.ReadWord(z.pc &^ 1))
		z.pc += 2
		if z.segmentedMode() {
			if seg&0x8000 != 0 {
				z.op[n] = seg<<16 | uint32(z.program.ReadWord(z.pc&^1))
				z.pc += 2
			} else {
				z.op[n] = seg<<16 | seg&0xff
			}
		} else {
			z.op[n] = seg
		}
		z.opValid |= 1 << n
	}
	return z.op[n]
}

// addrFromReg reads a memory pointer from Rn (or the pair RRn in
// segmented mode, segment in the high word's bits 14..8).
func (z *Z8000) addrFromReg(n int) uint32 {
	if z.segmentedMode() {
		return segmentedAddr(z.rl(n))
	}
	return uint32(z.rw(n))
}

func (z *Z8000) addrToReg(n int, addr uint32) {
	if z.segmentedMode() {
		z.setRL(n, makeSegmentedAddr(addr))
	} else {
		z.setRW(n, uint16(addr))
	}
}

// advReg bumps a pointer register by delta bytes; in segmented mode
// only the offset half of the pair moves.
func (z *Z8000) advReg(n int, delta int) {
	if z.segmentedMode() {
		n = (n + 1) & 15
	}
	z.regs[n&15] += uint16(delta)
}

// spReg is the register acting as stack pointer: RR14 in segmented
// mode, R15 otherwise.
func (z *Z8000) spReg() int {
	if z.segmentedMode() {
		return 14
	}
	return 15
}

func (z *Z8000) pushwReg(reg int, v uint16) {
	z.advReg(reg, -2)
	z.writeMemW(z.stack, z.addrFromReg(reg), v)
}

func (z *Z8000) popwReg(reg int) uint16 {
	v := z.readMemW(z.stack, z.addrFromReg(reg))
	z.advReg(reg, 2)
	return v
}

func (z *Z8000) pushlReg(reg int, v uint32) {
	z.advReg(reg, -4)
	z.writeMemL(z.stack, z.addrFromReg(reg), v)
}

func (z *Z8000) poplReg(reg int) uint32 {
	v := z.readMemL(z.stack, z.addrFromReg(reg))
	z.advReg(reg, 4)
	return v
}

func (z *Z8000) pushPC() {
	if z.segmented {
		z.pushlReg(z.spReg(), makeSegmentedAddr(z.pc))
	} else {
		z.pushwReg(z.spReg(), uint16(z.pc))
	}
}

func (z *Z8000) popPC() uint32 {
	if z.segmented {
		return segmentedAddr(z.poplReg(z.spReg()))
	}
	return uint32(z.popwReg(z.spReg()))
}

// changeFCW installs a new flag/control word. Flipping S_N swaps the
// active stack pointer with the normal-mode shadow; enabling NVIE/VIE
// re-latches a still-asserted level input.
func (z *Z8000) changeFCW(fcw uint16) {
	if (fcw^z.fcw)&fSN != 0 {
		if z.segmented {
			z.regs[14], z.nspSeg = z.nspSeg, z.regs[14]
		}
		z.regs[15], z.nspOff = z.nspOff, z.regs[15]
	}
	old := z.fcw
	z.fcw = fcw
	if old&fNVIE == 0 && fcw&fNVIE != 0 && z.irqState[lineNVI] != 0 {
		z.irqReq |= reqNVI
	}
	if old&fVIE == 0 && fcw&fVIE != 0 && z.irqState[lineVI] != 0 {
		z.irqReq |= reqVI
	}
}

// sysCheck latches the privileged-instruction trap when a privileged
// opcode executes in normal mode. Handlers bail out when it reports
// false; op[0] stays cached for the trap push.
func (z *Z8000) sysCheck() bool {
	if z.fcw&fSN == 0 {
		z.irqReq |= reqTRAP
		return false
	}
	return true
}

func (z *Z8000) segFlagZ8001() uint16 {
	if z.segmented {
		return fSEG
	}
	return 0
}

// psaAddr is the base of the program status area. PSAPSEG holds the
// segment in descriptor format, like the high word of a long pointer.
func (z *Z8000) psaAddr() uint32 {
	if z.segmented {
		return segmentedAddr(uint32(z.psapSeg)<<16 | uint32(z.psapOff))
	}
	return uint32(z.psapOff)
}

func (z *Z8000) getVecFCW(off uint32) uint16 {
	vec := addrAdd(z.psaAddr(), off*z.vecMult)
	if z.segmented {
		return z.readMemW(z.program, addrAdd(vec, 2))
	}
	return z.readMemW(z.program, vec)
}

func (z *Z8000) getVecPC(off uint32) uint32 {
	vec := addrAdd(z.psaAddr(), off*z.vecMult)
	if z.segmented {
		return segmentedAddr(z.readMemL(z.program, addrAdd(vec, 4)))
	}
	return uint32(z.readMemW(z.program, addrAdd(vec, 2)))
}

func (z *Z8000) resetPC() uint32 {
	if z.segmented {
		return segmentedAddr(z.readMemL(z.program, 4))
	}
	return uint32(z.readMemW(z.program, 4))
}

func (z *Z8000) readIRQVector() uint32 {
	off := vec00*z.vecMult + 2*uint32(z.irqVec&0xff)
	if z.segmented {
		return segmentedAddr(z.readMemL(z.program, addrAdd(z.psaAddr(), off)))
	}
	return uint32(z.readMemW(z.program, addrAdd(z.psaAddr(), off)))
}

// takeTrap performs the common context switch for every cause except
// RESET: force system (and segmented, on the Z8001) mode, push PC,
// the old FCW and a tag word, then load the new status from the PSA.
func (z *Z8000) takeTrap(req uint16, off uint32, tag uint16) {
	fcw := z.fcw
	z.changeFCW(fcw | fSN | z.segFlagZ8001())
	z.pushPC()
	z.pushwReg(z.spReg(), fcw)
	z.pushwReg(z.spReg(), tag)
	z.irqReq &^= req
	z.halt = false
	z.changeFCW(z.getVecFCW(off))
	z.pc = z.getVecPC(off)
}

// interrupt services the highest-priority pending cause. Internal
// traps push the first instruction word as the tag; external causes
// push the latched vector.
func (z *Z8000) interrupt() {
	switch {
	case z.irqReq&reqRESET != 0:
		z.irqReq &= reqNVI | reqVI
		z.changeFCW(z.readMemW(z.program, 2))
		z.pc = z.resetPC()
	case z.irqReq&reqEPU != 0:
		z.takeTrap(reqEPU, vecEPU, uint16(z.op[0]))
	case z.irqReq&reqTRAP != 0:
		z.takeTrap(reqTRAP, vecTRAP, uint16(z.op[0]))
	case z.irqReq&reqSYSCALL != 0:
		z.takeTrap(reqSYSCALL, vecSYSCALL, uint16(z.op[0]))
	case z.irqReq&reqSEGTRAP != 0:
		z.takeTrap(reqSEGTRAP, vecSEGTRAP, z.irqVec)
	case z.irqReq&reqNMI != 0:
		z.takeTrap(reqNMI, vecNMI, z.irqVec)
	case z.irqReq&reqNVI != 0 && z.fcw&fNVIE != 0:
		z.takeTrap(reqNVI, vecNVI, z.irqVec)
	case z.irqReq&reqVI != 0 && z.fcw&fVIE != 0:
		// VI loads the handler PC through the vector table, indexed
		// by the device-supplied vector byte.
		fcw := z.fcw
		z.changeFCW(fcw | fSN | z.segFlagZ8001())
		z.pushPC()
		z.pushwReg(z.spReg(), fcw)
		z.pushwReg(z.spReg(), z.irqVec)
		z.irqReq &^= reqVI
		z.halt = false
		z.pc = z.readIRQVector()
		z.changeFCW(z.getVecFCW(vecVI))
	}
}

// SetIRQLine drives one of the two maskable interrupt inputs. They are
// level sensitive; a request latches while the corresponding FCW
// enable is set. Call only between Step/Run invocations.
func (z *Z8000) SetIRQLine(line int, asserted bool) {
	if line != lineNVI && line != lineVI {
		return
	}
	if !asserted {
		z.irqState[line] = 0
		return
	}
	z.irqState[line] = 1
	if line == lineNVI && z.fcw&fNVIE != 0 {
		z.irqReq |= reqNVI
	}
	if line == lineVI && z.fcw&fVIE != 0 {
		z.irqReq |= reqVI
	}
}

// SetVIVector latches the vector a device would present during an
// interrupt acknowledge.
func (z *Z8000) SetVIVector(vec uint16) { z.irqVec = vec }

// SetNMILine drives the NMI input; a rising edge latches the request.
func (z *Z8000) SetNMILine(asserted bool) {
	if asserted && z.nmiState == 0 {
		z.irqReq |= reqNMI
	}
	if asserted {
		z.nmiState = 1
	} else {
		z.nmiState = 0
	}
}

func (z *Z8000) clearInternalState() {
	z.regs = [16]uint16{}
	z.op = [4]uint32{}
	z.ppc = 0
	z.pc = 0
	z.psapSeg = 0
	z.psapOff = 0
	z.fcw = 0
	z.nspSeg = 0
	z.nspOff = 0
	z.irqReq = 0
	z.irqVec = 0
	z.opValid = 0
	z.nmiState = 0
	z.irqState = [2]int{}
	z.mi = false
	z.halt = false
	z.totalCycles = 0
}

// Reset returns the CPU to initial state and latches the reset cause;
// the next Step or Run services it by loading FCW and PC from the
// reset vector.
func (z *Z8000) Reset() {
	z.clearInternalState()
	z.irqReq |= reqRESET
	z.refresh &= 0x7fff
}

func (z *Z8000) refreshTick() {
	if z.refresh&0x8000 != 0 {
		z.refresh = z.refresh&^0x00ff | (z.refresh+1)&0x00ff
	}
}

// Step executes one instruction (servicing a pending interrupt first)
// and returns the base cycles consumed, 0 when halted, or -1 when no
// program or I/O bus is attached.
func (z *Z8000) Step() int {
	if z.program == nil || z.io == nil {
		return -1
	}
	if z.data == nil {
		z.data = z.program
	}
	if z.stack == nil {
		z.stack = z.program
	}

	if z.irqReq != 0 {
		z.interrupt()
	}

	if z.halt {
		return 0
	}

	z.ppc = z.pc
	z.op[0] = uint32(z.fetchOp())
	z.opValid = 1
	z.refreshTick()

	if z.trace {
		z.traceInstruction()
	}

	e := &ops[exec[uint16(z.op[0])]]
	z.totalCycles += e.cycles
	e.opcode(z)
	z.opValid = 0

	if z.regTrace {
		z.DumpRegs()
	}
	return e.cycles
}

// Run drives the fetch loop until the cycle budget is exhausted or the
// CPU halts with no pending request. A negative maxCycles runs a
// default budget of one million.
func (z *Z8000) Run(maxCycles int) error {
	if z.program == nil {
		return errors.New("no program memory attached to CPU")
	}
	if z.io == nil {
		return errors.New("no I/O attached to CPU")
	}
	// The data and stack spaces fall back to program memory unless a
	// separate bus was attached.
	if z.data == nil {
		z.data = z.program
	}
	if z.stack == nil {
		z.stack = z.program
	}

	z.icount = maxCycles
	if maxCycles < 0 {
		z.icount = 1000000
	}

	for {
		if z.irqReq != 0 {
			z.interrupt()
		}

		if z.halt {
			return nil
		}

		z.ppc = z.pc
		z.op[0] = uint32(z.fetchOp())
		z.opValid = 1
		z.refreshTick()

		if z.trace {
			z.traceInstruction()
		}

		e := &ops[exec[uint16(z.op[0])]]
		z.icount -= e.cycles
		z.totalCycles += e.cycles
		e.opcode(z)
		z.opValid = 0

		if z.regTrace {
			z.DumpRegs()
		}

		if z.icount <= 0 {
			return nil
		}
	}
}

func (z *Z8000) traceInstruction() {
	read := func(addr uint32) uint16 { return z.program.ReadWord(addr) }
	text, size := disassemble(z.ppc, read)

	if z.segmentedMode() {
		fmt.Printf("<<%X>>%04X:", z.ppc>>16&0x7f, z.ppc&0xffff)
	} else {
		fmt.Printf("PC=%04X:", z.ppc&0xffff)
	}
	for i := 0; i < size; i += 2 {
		fmt.Printf(" %04X", z.program.ReadWord(addrAdd(z.ppc, uint32(i))))
	}
	for i := size; i < 6; i += 2 {
		fmt.Printf("     ")
	}
	fmt.Printf("  %s\n", text)
}

// DumpRegs prints the architectural state.
func (z *Z8000) DumpRegs() {
	flagc := func(f uint16, c byte) byte {
		if z.fcw&f != 0 {
			return c
		}
		return '-'
	}
	if z.segmented {
		fmt.Printf("\n=== Z8001 Registers ===\n")
		fmt.Printf("PC=<<%02X>>%04X  FCW=%04X  PSAP=<<%02X>>%04X  NSP=<<%02X>>%04X\n",
			z.pc>>16&0x7f, z.pc&0xffff, z.fcw,
			z.psapSeg>>8&0x7f, z.psapOff,
			z.nspSeg>>8&0x7f, z.nspOff)
		fmt.Printf("Flags: %c%c%c%c%c%c%c\n",
			flagc(fSEG, 'G'), flagc(fC, 'C'), flagc(fZ, 'Z'), flagc(fS, 'S'),
			flagc(fPV, 'V'), flagc(fDA, 'D'), flagc(fH, 'H'))
	} else {
		fmt.Printf("\n=== Z8002 Registers ===\n")
		fmt.Printf("PC=%04X  FCW=%04X  PSAP=%04X  NSP=%04X\n",
			z.pc&0xffff, z.fcw, z.psapOff, z.nspOff)
		fmt.Printf("Flags: %c%c%c%c%c%c\n",
			flagc(fC, 'C'), flagc(fZ, 'Z'), flagc(fS, 'S'),
			flagc(fPV, 'V'), flagc(fDA, 'D'), flagc(fH, 'H'))
	}
	for i := 0; i < 16; i += 4 {
		fmt.Printf("R%-2d=%04X  R%-2d=%04X  R%-2d=%04X  R%-2d=%04X\n",
			i, z.rw(i), i+1, z.rw(i+1), i+2, z.rw(i+2), i+3, z.rw(i+3))
	}
}
