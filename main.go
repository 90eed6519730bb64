// z8000 emulator.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
)

func main() {
	var cli struct {
		Run runCmd `cmd default:"1" help:"run a binary image on an emulated Z8000"`
	}

	ctx := kong.Parse(&cli)
	err := ctx.Run(&kong.Context{})
	ctx.FatalIfErrorf(err)
}

type runCmd struct {
	Image     string `arg optional:"" type:"existingfile" help:"binary image to load"`
	Segmented bool   `short:"s" help:"emulate the segmented Z8001 instead of the Z8002"`
	Base      string `short:"b" default:"0" help:"load address for the image (hex)"`
	Entry     string `short:"e" help:"override the reset PC (hex); installs a default FCW too"`
	MemSize   string `name:"memsize" short:"m" help:"memory size in bytes (hex, power of two; default 10000, 800000 segmented)"`
	Cycles    int    `short:"c" default:"-1" help:"cycle budget; negative runs one million"`
	Trace     bool   `short:"t" help:"trace each instruction"`
	RegTrace  bool   `name:"regtrace" short:"r" help:"dump registers after each instruction"`
	MemTrace  bool   `name:"memtrace" help:"trace memory accesses"`
	IOTrace   bool   `name:"iotrace" help:"trace I/O accesses"`
	Dump      string `short:"d" help:"memory range start:len (hex) to dump at exit"`
}

func parseHex(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 32)
	return uint32(v), err
}

// defaultMemSize covers the Z8002's 64 KiB address space, or all 128
// segments folded through the Z8001's 23 external address lines.
func defaultMemSize(segmented bool) string {
	if segmented {
		return "800000"
	}
	return "10000"
}

func (r *runCmd) Run(ctx *kong.Context) error {
	if r.MemSize == "" {
		r.MemSize = defaultMemSize(r.Segmented)
	}
	size, err := parseHex(r.MemSize)
	if err != nil || size == 0 || size&(size-1) != 0 {
		return fmt.Errorf("memory size must be a hex power of two, got %q", r.MemSize)
	}

	mem := NewMemoryRegion(size)
	mem.SetTrace(r.MemTrace)
	io := NewIOPorts()
	io.SetTrace(r.IOTrace)

	var cpu *Z8000
	if r.Segmented {
		cpu = NewZ8001()
		fmt.Printf("Z8001 (segmented), %X bytes of memory\n", size)
	} else {
		cpu = NewZ8002()
		fmt.Printf("Z8002, %X bytes of memory\n", size)
	}
	cpu.SetMemory(mem)
	cpu.SetIO(io)
	cpu.SetTrace(r.Trace)
	cpu.SetRegTrace(r.RegTrace)

	if r.Image != "" {
		load, err := parseHex(r.Base)
		if err != nil {
			return fmt.Errorf("bad load address %q", r.Base)
		}
		data, err := os.ReadFile(r.Image)
		if err != nil {
			return err
		}
		if err := mem.Load(load, data); err != nil {
			return err
		}
		fmt.Printf("loaded %d bytes at %04X\n", len(data), load)
	}

	if r.Entry != "" {
		entry, err := parseHex(r.Entry)
		if err != nil {
			return fmt.Errorf("bad entry address %q", r.Entry)
		}
		// Synthesize a reset vector at the requested entry. The image's
		// own FCW word is kept when it has one.
		if r.Segmented {
			if mem.ReadWord(2) == 0 {
				mem.WriteWord(2, fSEG|fSN)
			}
			hi := uint16(makeSegmentedAddr(entry) >> 16)
			mem.WriteWord(4, hi)
			mem.WriteWord(6, uint16(entry))
		} else {
			if mem.ReadWord(2) == 0 {
				mem.WriteWord(2, fSN)
			}
			mem.WriteWord(4, uint16(entry))
		}
	}

	cpu.Reset()
	if err := cpu.Run(r.Cycles); err != nil {
		return err
	}

	cpu.DumpRegs()
	fmt.Printf("\ncycles: %d  halted: %v\n", cpu.Cycles(), cpu.Halted())

	if r.Dump != "" {
		parts := strings.SplitN(r.Dump, ":", 2)
		if len(parts) != 2 {
			return fmt.Errorf("dump range must be start:len, got %q", r.Dump)
		}
		start, err1 := parseHex(parts[0])
		length, err2 := parseHex(parts[1])
		if err1 != nil || err2 != nil {
			return fmt.Errorf("bad dump range %q", r.Dump)
		}
		fmt.Println()
		mem.Dump(start, length)
	}
	return nil
}
