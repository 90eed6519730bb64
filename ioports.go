package main

import "fmt"

// IOPorts is a deterministic I/O space for the test driver.
//
// Normal I/O (mode 0):
//   - 0x0000-0x0001: loopback data register, initial 0x1234
//   - 0x0002-0x0003: loopback control register, initial 0x0000
//   - 0x0010: fixed, reads 0xAA (byte) / 0xAA00 (word)
//   - anything else: reads 0xDE / 0xDEAD
//
// Special I/O (mode 1):
//   - 0x0020-0x0021: loopback data register, initial 0x5678
//   - anything else: reads 0xBE / 0xBEEF
//
// Writes to fixed and undefined ports are ignored.
type IOPorts struct {
	trace   bool
	dataReg uint16 // normal I/O 0x0000
	ctrlReg uint16 // normal I/O 0x0002
	sioReg  uint16 // special I/O 0x0020
}

func NewIOPorts() *IOPorts {
	io := &IOPorts{}
	io.Clear()
	return io
}

func (io *IOPorts) Clear() {
	io.dataReg = 0x1234
	io.ctrlReg = 0x0000
	io.sioReg = 0x5678
}

func (io *IOPorts) SetTrace(enable bool) { io.trace = enable }

func sioPrefix(mode int) string {
	if mode != 0 {
		return "S"
	}
	return ""
}

func (io *IOPorts) ReadByte(addr uint16, mode int) uint8 {
	var v uint8
	half := func(w uint16) uint8 {
		if addr&1 != 0 {
			return uint8(w)
		}
		return uint8(w >> 8)
	}
	if mode == 0 {
		switch addr &^ 1 {
		case 0x0000:
			v = half(io.dataReg)
		case 0x0002:
			v = half(io.ctrlReg)
		case 0x0010:
			v = half(0xAA55)
		default:
			v = 0xDE
		}
	} else {
		switch addr &^ 1 {
		case 0x0020:
			v = half(io.sioReg)
		default:
			v = 0xBE
		}
	}
	if io.trace {
		fmt.Printf("  %sI/O RD8  [%04X] -> %02X\n", sioPrefix(mode), addr, v)
	}
	return v
}

func (io *IOPorts) ReadWord(addr uint16, mode int) uint16 {
	addr &^= 1
	var v uint16
	if mode == 0 {
		switch addr {
		case 0x0000:
			v = io.dataReg
		case 0x0002:
			v = io.ctrlReg
		case 0x0010:
			v = 0xAA00
		default:
			v = 0xDEAD
		}
	} else {
		switch addr {
		case 0x0020:
			v = io.sioReg
		default:
			v = 0xBEEF
		}
	}
	if io.trace {
		fmt.Printf("  %sI/O RD16 [%04X] -> %04X\n", sioPrefix(mode), addr, v)
	}
	return v
}

func (io *IOPorts) WriteByte(addr uint16, v uint8, mode int) {
	if io.trace {
		fmt.Printf("  %sI/O WR8  [%04X] <- %02X\n", sioPrefix(mode), addr, v)
	}
	put := func(w *uint16) {
		if addr&1 != 0 {
			*w = *w&0xff00 | uint16(v)
		} else {
			*w = *w&0x00ff | uint16(v)<<8
		}
	}
	if mode == 0 {
		switch addr &^ 1 {
		case 0x0000:
			put(&io.dataReg)
		case 0x0002:
			put(&io.ctrlReg)
		}
	} else {
		switch addr &^ 1 {
		case 0x0020:
			put(&io.sioReg)
		}
	}
}

func (io *IOPorts) WriteWord(addr uint16, v uint16, mode int) {
	addr &^= 1
	if io.trace {
		fmt.Printf("  %sI/O WR16 [%04X] <- %04X\n", sioPrefix(mode), addr, v)
	}
	if mode == 0 {
		switch addr {
		case 0x0000:
			io.dataReg = v
		case 0x0002:
			io.ctrlReg = v
		}
	} else {
		switch addr {
		case 0x0020:
			io.sioReg = v
		}
	}
}
