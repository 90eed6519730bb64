package main

import "testing"

func TestIOPortMap(t *testing.T) {
	expect := func(got, want interface{}) {
		if got != want {
			t.Helper()
			t.Fatal("got:", got, "want:", want)
		}
	}

	io := NewIOPorts()

	// power-on values
	expect(io.ReadWord(0x0000, 0), uint16(0x1234))
	expect(io.ReadWord(0x0002, 0), uint16(0x0000))
	expect(io.ReadWord(0x0020, 1), uint16(0x5678))

	// loopback registers
	io.WriteWord(0x0000, 0xcafe, 0)
	expect(io.ReadWord(0x0000, 0), uint16(0xcafe))
	expect(io.ReadByte(0x0000, 0), uint8(0xca))
	expect(io.ReadByte(0x0001, 0), uint8(0xfe))
	io.WriteByte(0x0001, 0x99, 0)
	expect(io.ReadWord(0x0000, 0), uint16(0xca99))

	// the fixed port ignores writes
	io.WriteWord(0x0010, 0xffff, 0)
	expect(io.ReadWord(0x0010, 0), uint16(0xaa00))

	// undefined ports
	expect(io.ReadWord(0x0100, 0), uint16(0xdead))
	expect(io.ReadByte(0x0100, 0), uint8(0xde))
	expect(io.ReadWord(0x0100, 1), uint16(0xbeef))

	// normal and special spaces are distinct
	io.WriteWord(0x0020, 0x1111, 1)
	expect(io.ReadWord(0x0020, 1), uint16(0x1111))
	expect(io.ReadWord(0x0020, 0), uint16(0xdead))

	io.Clear()
	expect(io.ReadWord(0x0000, 0), uint16(0x1234))
	expect(io.ReadWord(0x0020, 1), uint16(0x5678))
}

// Special I/O through the CPU: SIN/SOUT address the mode-1 space.
func TestSpecialIOInstructions(t *testing.T) {
	cpu, _ := testMachine(
		0x3b15, 0x0020, // sin r1,0x20
		0x7a00,
	)
	if err := cpu.Run(-1); err != nil {
		t.Fatal(err)
	}
	if cpu.Reg(1) != 0x5678 {
		t.Fatalf("sin: got %04X, want 5678", cpu.Reg(1))
	}
}
