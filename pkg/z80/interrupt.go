package z80

// acknowledgeNMI services a non-maskable interrupt (spec.md §4.6): IFF2
// saves the current IFF1 (so RETN can restore it), IFF1 is cleared, PC
// is pushed and redirected to the fixed vector 0x0066. NMI is honored
// regardless of IFF1 and regardless of a just-executed EI.
func (c *CPU) acknowledgeNMI() int {
	c.Halted = false
	c.IFF2 = c.IFF1
	c.IFF1 = false
	c.push16(c.PC)
	c.PC = 0x0066
	c.bumpR(1)
	c.CycleTimestamp += 11
	return 11
}

// acknowledgeINT services a maskable interrupt once IFF1 and the
// deferred-EI window both allow it. Behavior depends on the current
// interrupt mode (spec.md §4.6):
//
//   - IM0: the interrupting device places a single byte on the data bus
//     and the core dispatches it through MainTable as if it had been
//     fetched, charging 13 T-states plus whatever that instruction
//     itself costs — not a fixed 13. Most real IM0 peripherals supply an
//     RST, but any single-byte main-table opcode dispatches correctly;
//     a multi-byte opcode (e.g. LD A,n) would read its continuation
//     bytes from real program memory rather than the device, since only
//     one byte is ever bus-supplied (see DESIGN.md).
//   - IM1: always vectors to 0x0038, ignoring the supplied byte.
//   - IM2: the supplied byte is the low half of a vector table lookup
//     in page I.
//   - IMUndefined: treated as IM1, with an advisory log.
func (c *CPU) acknowledgeINT(vector uint8) int {
	c.Halted = false
	c.IFF1, c.IFF2 = false, false

	var cost int
	switch c.IM {
	case IM0:
		// addr = PC-1 so that a plain one-byte opcode's own PC advance
		// (addr+Size) lands back on the interrupted PC unchanged, and so
		// RST's push16(addr+1) pushes that same unchanged PC as the
		// return address — exactly as if the byte had never been
		// fetched from program memory at all.
		inst := MainTable[vector]
		inst.Exec(c, c.PC-1)
		cost = 13 + inst.Cycles + c.AddedDelay
	case IM1:
		c.push16(c.PC)
		c.PC = 0x0038
		cost = 13
	case IM2:
		c.push16(c.PC)
		vectorAddr := uint16(c.I)<<8 | uint16(vector)
		c.PC = c.Bus.ReadWord(vectorAddr, c.CycleTimestamp)
		cost = 19
	default:
		c.Logger.Printf("z80: INT acknowledged while IM undefined; treating as IM1")
		c.push16(c.PC)
		c.PC = 0x0038
		cost = 13
	}
	c.bumpR(1)
	c.CycleTimestamp += uint64(cost)
	return cost
}
