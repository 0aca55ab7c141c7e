package z80

// Step executes exactly one instruction (or one HALT-state filler cycle,
// or one interrupt acknowledge) and returns the number of T-states it
// consumed (spec.md §4.4). Interrupts are sampled once, up front, via
// Bus.PollInterrupts — not re-checked mid-instruction.
func (c *CPU) Step() int {
	c.AddedDelay = 0

	deferred := c.eiPending
	c.eiPending = false

	req := c.Bus.PollInterrupts()
	switch {
	case req.Kind == NMI:
		return c.acknowledgeNMI()
	case !deferred && req.Kind == INT && c.IFF1:
		return c.acknowledgeINT(req.Vector)
	case c.Halted:
		c.bumpR(1)
		c.CycleTimestamp += 4
		return 4
	}

	d := c.decode(c.PC)
	c.bumpR(d.rTicks)
	d.inst.Exec(c, d.addr)
	cost := d.inst.Cycles + c.AddedDelay
	c.CycleTimestamp += uint64(cost)
	return cost
}

// bumpR advances the refresh counter by n, preserving bit 7 (spec.md
// §3.3): only the low 7 bits auto-increment.
func (c *CPU) bumpR(n int) {
	c.R = (c.R & 0x80) | (uint8(int(c.R)+n) & 0x7F)
}
