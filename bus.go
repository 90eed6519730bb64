package main

// MemoryBus is what the CPU needs from the system for memory access.
// The CPU presents addresses as-is (23 bit with segment info on the
// Z8001, 16 bit on the Z8002); the implementer masks down to whatever
// is physically present.
type MemoryBus interface {
	ReadByte(addr uint32) uint8
	ReadWord(addr uint32) uint16
	WriteByte(addr uint32, v uint8)
	WriteWord(addr uint32, v uint16)

	// WriteWordMasked updates only the bits of the word at addr that
	// are set in mask. The CPU issues byte stores this way so the
	// other half of the word is preserved at the bus, not in the core.
	WriteWordMasked(addr uint32, v, mask uint16)
}

// IOBus is what the CPU needs for I/O access.
// mode 0 is normal I/O (IN/OUT), mode 1 is special I/O (SIN/SOUT).
type IOBus interface {
	ReadByte(addr uint16, mode int) uint8
	ReadWord(addr uint16, mode int) uint16
	WriteByte(addr uint16, v uint8, mode int)
	WriteWord(addr uint16, v uint16, mode int)
}
