package main

import (
	"testing"

	"github.com/matryer/is"
)

// segMachine builds a segmented Z8001 with 64 KiB of RAM (segment bits
// alias through the region mask) and a reset vector entering segmented
// system mode at <<0>>0x0008.
func segMachine(words ...uint16) (*Z8000, *MemoryRegion) {
	mem := NewMemoryRegion(0x10000)
	mem.WriteWord(2, fSEG|fSN)
	mem.WriteWord(4, 0x8000) // long-format <<0>>0x0008
	mem.WriteWord(6, 0x0008)
	for i, w := range words {
		mem.WriteWord(uint32(8+2*i), w)
	}
	cpu := NewZ8001()
	cpu.SetMemory(mem)
	cpu.SetIO(NewIOPorts())
	cpu.Reset()
	return cpu, mem
}

// The Z8001 pushes the full segmented PC on CALR and pops it on RET.
func TestSegmentedCallReturn(t *testing.T) {
	is := is.New(t)
	cpu, mem := segMachine(
		0xdff5, // calr 0x0020
		0x7a00, // halt, on return
	)
	mem.WriteWord(0x0020, 0x9e08) // ret
	is.NoErr(cpu.Run(-1))
	is.True(cpu.Halted())
	is.Equal(cpu.PC(), uint32(0x000c))
	is.Equal(cpu.Reg(15), uint16(0)) // stack balanced
	// The long return address stayed behind below the stack top.
	is.Equal(mem.ReadWord(0xfffc), uint16(0x8000))
	is.Equal(mem.ReadWord(0xfffe), uint16(0x000a))
}

func TestSegmentedAddressForms(t *testing.T) {
	is := is.New(t)
	cpu, mem := segMachine(
		0x6101, 0x8000, 0x1234, // ld r1,|<<0>>0x1234| (long form)
		0x6102, 0x0234, //         ld r2,|<<2>>0x34|   (short form)
		0x7a00,
	)
	mem.WriteWord(0x1234, 0x5678)
	mem.WriteWord(0x0034, 0x9abc) // segment 2 aliases through the mask
	is.NoErr(cpu.Run(-1))
	is.True(cpu.Halted())
	is.Equal(cpu.Reg(1), uint16(0x5678))
	is.Equal(cpu.Reg(2), uint16(0x9abc))
}

// LDA in segmented mode leaves the pointer in register long format,
// segment descriptor in the high word.
func TestSegmentedLoadAddress(t *testing.T) {
	is := is.New(t)
	cpu, _ := segMachine(
		0x7602, 0x8100, 0x4321, // lda rr2,|<<1>>0x4321|
		0x7a00,
	)
	is.NoErr(cpu.Run(-1))
	is.Equal(cpu.Reg(2), uint16(0x8100))
	is.Equal(cpu.Reg(3), uint16(0x4321))
}

// Indirect pointers come from a register pair in segmented mode, and
// only the offset half advances.
func TestSegmentedIndirect(t *testing.T) {
	is := is.New(t)
	cpu, mem := segMachine(
		0x1402, 0x0300, 0xfffe, // ldl rr2,#<<3>>0xfffe (pointer form)
		0x2923, //                 inc @rr2,#4
		0x7a00,
	)
	mem.WriteWord(0xfffe, 5)
	is.NoErr(cpu.Run(-1))
	is.True(cpu.Halted())
	is.Equal(mem.ReadWord(0xfffe), uint16(9))
}

// Offset arithmetic must not carry into the segment byte.
func TestSegmentOffsetWrap(t *testing.T) {
	is := is.New(t)
	is.Equal(addrAdd(0x03fffe, 4), uint32(0x030002))
	is.Equal(addrSub(0x030000, 2), uint32(0x03fffe))
	is.Equal(segmentedAddr(0x8300fffe), uint32(0x03fffe))
	is.Equal(makeSegmentedAddr(0x03fffe), uint32(0x8300fffe))
}

// With the FCW SEG bit clear a Z8001 interprets 16-bit addresses
// within the PC's segment.
func TestZ8001NonSegmentedMode(t *testing.T) {
	is := is.New(t)
	mem := NewMemoryRegion(0x10000)
	mem.WriteWord(2, fSN) // segmented bit clear
	mem.WriteWord(4, 0x8000)
	mem.WriteWord(6, 0x0008)
	mem.WriteWord(8, 0x6101)  // ld r1,0x1234 (one address word)
	mem.WriteWord(10, 0x1234)
	mem.WriteWord(12, 0x7a00) // halt
	mem.WriteWord(0x1234, 0x4242)
	cpu := NewZ8001()
	cpu.SetMemory(mem)
	cpu.SetIO(NewIOPorts())
	cpu.Reset()
	is.NoErr(cpu.Run(-1))
	is.True(cpu.Halted())
	is.Equal(cpu.Reg(1), uint16(0x4242))
}

// The program status area follows PSAPSEG, which holds its segment in
// descriptor format like the high word of a long pointer.
func TestSegmentedPSAPRelocation(t *testing.T) {
	is := is.New(t)
	mem := NewMemoryRegion(0x800000)
	mem.WriteWord(2, fSEG|fSN)
	mem.WriteWord(4, 0x8000)
	mem.WriteWord(6, 0x0008)
	program := []uint16{
		0x2101, 0x0100, // ld r1,#0x0100 (segment 1 descriptor)
		0x7d1c, //         ldctl psapseg,r1
		0x2101, 0x0000, // ld r1,#0
		0x7d1d, //         ldctl psapoff,r1
		0x7f02, //         sc #2
	}
	for i, w := range program {
		mem.WriteWord(uint32(8+2*i), w)
	}
	// PSA at <<1>>0x0000, handler at <<1>>0x4000.
	mem.WriteWord(0x010000+vecSYSCALL*2+2, fSEG|fSN)
	mem.WriteWord(0x010000+vecSYSCALL*2+4, 0x8100)
	mem.WriteWord(0x010000+vecSYSCALL*2+6, 0x4000)
	mem.WriteWord(0x014000, 0x7a00) // halt
	cpu := NewZ8001()
	cpu.SetMemory(mem)
	cpu.SetIO(NewIOPorts())
	cpu.Reset()
	is.NoErr(cpu.Run(-1))
	is.True(cpu.Halted())
	is.Equal(cpu.PC(), uint32(0x014002))
	is.Equal(mem.ReadWord(0xfff8), uint16(0x7f02)) // tag on the system stack
}

// A trap on the Z8001 stacks the tag, FCW and the two PC words, and
// IRET restores all of it.
func TestSegmentedTrapAndIret(t *testing.T) {
	is := is.New(t)
	cpu, mem := segMachine(
		0x7f01, // sc #1
		0x7a00, // halt, after iret resumes here
	)
	// Z8001 PSA entries are eight bytes: reserved word, FCW, PC seg, PC off.
	mem.WriteWord(vecSYSCALL*2+2, fSEG|fSN)
	mem.WriteWord(vecSYSCALL*2+4, 0x8000)
	mem.WriteWord(vecSYSCALL*2+6, 0x0400)
	mem.WriteWord(0x0400, 0x7b00) // iret
	is.NoErr(cpu.Run(-1))
	is.True(cpu.Halted())
	is.Equal(cpu.PC(), uint32(0x000c))
	is.Equal(cpu.Reg(15), uint16(0)) // all four stacked words popped
	is.Equal(mem.ReadWord(0xfff8), uint16(0x7f01)) // tag below fcw and pc
}
