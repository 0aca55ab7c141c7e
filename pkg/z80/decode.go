package z80

// decoded is the result of resolving the byte(s) at addr to a table
// entry, plus the number of M1 (opcode-fetch) cycles consumed by the
// prefix bytes — unprefixed opcodes fetch one byte as M1, every
// CB/ED/DD/FD-led form (including the DDCB/FDCB compound) fetches two:
// the prefix itself and the byte that follows it (spec.md §4.4 rule 4).
type decoded struct {
	addr   uint16
	inst   Instruction
	rTicks int
}

// decode resolves the instruction starting at addr (spec.md §4.3). The
// DDCB/FDCB compound form is the one case where the operation selector
// does not immediately follow the prefix: it is the fourth byte, after
// a displacement that itself precedes it.
func (c *CPU) decode(addr uint16) decoded {
	b0 := c.Bus.ReadByte(addr, c.CycleTimestamp)
	switch b0 {
	case 0xCB:
		b1 := c.Bus.ReadByte(addr+1, c.CycleTimestamp)
		return decoded{addr, BitTable[b1], 2}
	case 0xED:
		b1 := c.Bus.ReadByte(addr+1, c.CycleTimestamp)
		return decoded{addr, ExtendedTable[b1], 2}
	case 0xDD:
		b1 := c.Bus.ReadByte(addr+1, c.CycleTimestamp)
		if b1 == 0xCB {
			op := c.Bus.ReadByte(addr+3, c.CycleTimestamp)
			return decoded{addr, IXBitTable[op], 2}
		}
		return decoded{addr, IXTable[b1], 2}
	case 0xFD:
		b1 := c.Bus.ReadByte(addr+1, c.CycleTimestamp)
		if b1 == 0xCB {
			op := c.Bus.ReadByte(addr+3, c.CycleTimestamp)
			return decoded{addr, IYBitTable[op], 2}
		}
		return decoded{addr, IYTable[b1], 2}
	default:
		return decoded{addr, MainTable[b0], 1}
	}
}
