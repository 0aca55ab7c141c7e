package z80

// BitTable is the CB-prefixed table: rotate/shift (0x00-0x3F), BIT
// (0x40-0x7F), RES (0x80-0xBF), SET (0xC0-0xFF), each over the standard
// r field B,C,D,E,H,L,(HL),A. CB never reaches IXH/IXL/IYH/IYL directly
// — only the DDCB/FDCB compound forms (tables_index.go) touch index
// registers, and always through memory, never through an 8-bit alias.
var shiftOps = [8]func(c *CPU, v uint8) (uint8, uint8){
	func(c *CPU, v uint8) (uint8, uint8) { return rlc8(v) },
	func(c *CPU, v uint8) (uint8, uint8) { return rrc8(v) },
	func(c *CPU, v uint8) (uint8, uint8) { return rl8(v, c.F) },
	func(c *CPU, v uint8) (uint8, uint8) { return rr8(v, c.F) },
	func(c *CPU, v uint8) (uint8, uint8) { return sla8(v) },
	func(c *CPU, v uint8) (uint8, uint8) { return sra8(v) },
	func(c *CPU, v uint8) (uint8, uint8) { return sll8(v) },
	func(c *CPU, v uint8) (uint8, uint8) { return srl8(v) },
}

func init() {
	t := &BitTable

	for op := 0; op < 8; op++ {
		for src := 0; src < 8; src++ {
			op, src := op, src
			opcode := (op << 3) | src
			cycles := 8
			if src == 6 {
				cycles = 15
			}
			t[opcode] = Instruction{Size: 2, Cycles: cycles, Mnemonic: "shift r", Exec: func(c *CPU, addr uint16) {
				v := getSlot(c, mainOperands, src, addr)
				result, f := shiftOps[op](c, v)
				setSlot(c, mainOperands, src, addr, result)
				c.F = f
				c.PC = addr + 2
			}}
		}
	}

	for bit := 0; bit < 8; bit++ {
		for src := 0; src < 8; src++ {
			bit, src := bit, src
			opcode := 0x40 | (bit << 3) | src
			cycles := 8
			if src == 6 {
				cycles = 12
			}
			t[opcode] = Instruction{Size: 2, Cycles: cycles, Mnemonic: "BIT n,r", Exec: func(c *CPU, addr uint16) {
				v := getSlot(c, mainOperands, src, addr)
				xy5 := v
				if src == 6 {
					xy5 = c.H
				}
				c.F = bitTest(v, uint8(bit), xy5, c.F)
				c.PC = addr + 2
			}}
		}
	}

	for bit := 0; bit < 8; bit++ {
		for src := 0; src < 8; src++ {
			bit, src := bit, src
			opcode := 0x80 | (bit << 3) | src
			cycles := 8
			if src == 6 {
				cycles = 15
			}
			t[opcode] = Instruction{Size: 2, Cycles: cycles, Mnemonic: "RES n,r", Exec: func(c *CPU, addr uint16) {
				v := getSlot(c, mainOperands, src, addr)
				setSlot(c, mainOperands, src, addr, v&^(1<<uint(bit)))
				c.PC = addr + 2
			}}
		}
	}

	for bit := 0; bit < 8; bit++ {
		for src := 0; src < 8; src++ {
			bit, src := bit, src
			opcode := 0xC0 | (bit << 3) | src
			cycles := 8
			if src == 6 {
				cycles = 15
			}
			t[opcode] = Instruction{Size: 2, Cycles: cycles, Mnemonic: "SET n,r", Exec: func(c *CPU, addr uint16) {
				v := getSlot(c, mainOperands, src, addr)
				setSlot(c, mainOperands, src, addr, v|(1<<uint(bit)))
				c.PC = addr + 2
			}}
		}
	}
}
