package z80

import "fmt"

// Disassemble formats the instruction at addr as "AAAA: MNEMONIC" using
// the Mnemonic/Size fields every table entry already carries — not a
// general-purpose disassembler (no operand rendering, no label
// recovery, no control-flow walk), just enough for cmd/z80run --disasm
// to annotate a trace (spec.md §1 Non-goals; see DESIGN.md).
func (c *CPU) Disassemble(addr uint16) (text string, size int) {
	d := c.decode(addr)
	return fmt.Sprintf("%04X: %s", addr, d.inst.Mnemonic), d.inst.Size
}
