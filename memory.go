package main

import "fmt"

// MemoryRegion is a flat big-endian backing store. The same region may
// serve as program, data and stack space. Size must be a power of two;
// addresses wrap at the region boundary.
type MemoryRegion struct {
	data  []uint8
	mask  uint32
	trace bool
	name  string
}

func NewMemoryRegion(size uint32) *MemoryRegion {
	return &MemoryRegion{
		data: make([]uint8, size),
		mask: size - 1,
		name: "mem",
	}
}

func (m *MemoryRegion) SetTrace(enable bool) { m.trace = enable }
func (m *MemoryRegion) SetName(name string)  { m.name = name }
func (m *MemoryRegion) Size() uint32         { return uint32(len(m.data)) }

// Load copies a binary image into the region at addr.
func (m *MemoryRegion) Load(addr uint32, data []uint8) error {
	if addr+uint32(len(data)) > uint32(len(m.data)) {
		return fmt.Errorf("load exceeds bounds (0x%04X + 0x%X > 0x%X)", addr, len(data), len(m.data))
	}
	copy(m.data[addr:], data)
	return nil
}

func (m *MemoryRegion) ReadByte(addr uint32) uint8 {
	addr &= m.mask
	v := m.data[addr]
	if m.trace {
		fmt.Printf("  %s RD8  [%04X] -> %02X\n", m.name, addr, v)
	}
	return v
}

func (m *MemoryRegion) ReadWord(addr uint32) uint16 {
	addr &= m.mask &^ 1
	v := uint16(m.data[addr])<<8 | uint16(m.data[addr+1])
	if m.trace {
		fmt.Printf("  %s RD16 [%04X] -> %04X\n", m.name, addr, v)
	}
	return v
}

func (m *MemoryRegion) WriteByte(addr uint32, v uint8) {
	addr &= m.mask
	if m.trace {
		fmt.Printf("  %s WR8  [%04X] <- %02X\n", m.name, addr, v)
	}
	m.data[addr] = v
}

func (m *MemoryRegion) WriteWord(addr uint32, v uint16) {
	addr &= m.mask &^ 1
	if m.trace {
		fmt.Printf("  %s WR16 [%04X] <- %04X\n", m.name, addr, v)
	}
	m.data[addr] = uint8(v >> 8)
	m.data[addr+1] = uint8(v)
}

func (m *MemoryRegion) WriteWordMasked(addr uint32, v, mask uint16) {
	addr &= m.mask &^ 1
	old := uint16(m.data[addr])<<8 | uint16(m.data[addr+1])
	v = (old &^ mask) | (v & mask)
	if m.trace {
		fmt.Printf("  %s WR16 [%04X] <- %04X (mask %04X)\n", m.name, addr, v, mask)
	}
	m.data[addr] = uint8(v >> 8)
	m.data[addr+1] = uint8(v)
}

// Dump prints a hex dump of len bytes starting at start.
func (m *MemoryRegion) Dump(start, length uint32) {
	for i := uint32(0); i < length; i += 16 {
		fmt.Printf("%04X: ", (start+i)&0xffff)
		for j := uint32(0); j < 16 && i+j < length; j++ {
			fmt.Printf("%02X ", m.data[(start+i+j)&m.mask])
		}
		fmt.Println()
	}
}
