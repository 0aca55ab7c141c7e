package z80

// IXTable/IYTable and IXBitTable/IYBitTable implement the DD/FD and
// DDCB/FDCB prefix families (spec.md §4.3 rule 2): most of the main
// table is unaffected by DD/FD, so both tables start as a copy of
// MainTable with every opcode that does NOT reference H, L or (HL)
// replaced by a 1-byte NOP — the prefix byte is wasted and the very
// same main-table opcode then executes on the following fetch. Only
// the opcodes that do reference H/L/(HL) are rebuilt against the
// indexed operand set (IXH/IXL/(IX+d), or IYH/IYL/(IY+d)).
func init() {
	buildIndexTable(&IXTable, ixOperands, PairIX)
	buildIndexTable(&IYTable, iyOperands, PairIY)
	buildIndexBitTable(&IXBitTable, PairIX)
	buildIndexBitTable(&IYBitTable, PairIY)
}

func buildIndexTable(t *Table, os operandSet, pair RegPair) {
	*t = MainTable
	for i := range t {
		t[i] = NOP1
	}

	// LD r,r' grid and ALU A,r grid: only entries touching slot 4, 5 or 6.
	for dst := 0; dst < 8; dst++ {
		for src := 0; src < 8; src++ {
			dst, src := dst, src
			op := 0x40 | (dst << 3) | src
			if op == 0x76 || (dst != 4 && dst != 5 && dst != 6 && src != 4 && src != 5 && src != 6) {
				continue
			}
			size, cycles := 2, 8
			if dst == 6 || src == 6 {
				size, cycles = 3, 19
			}
			t[op] = Instruction{Size: size, Cycles: cycles, Mnemonic: "LD r,r' (indexed)", Exec: func(c *CPU, addr uint16) {
				setSlot(c, os, dst, addr, getSlot(c, os, src, addr))
				c.PC = addr + uint16(size)
			}}
		}
	}
	for op := 0; op < 8; op++ {
		for src := 4; src < 7; src++ {
			op, src := op, src
			opcode := 0x80 | (op << 3) | src
			size, cycles := 2, 8
			if src == 6 {
				size, cycles = 3, 19
			}
			t[opcode] = Instruction{Size: size, Cycles: cycles, Mnemonic: "ALU A,r (indexed)", Exec: func(c *CPU, addr uint16) {
				aluOps[op](c, getSlot(c, os, src, addr))
				c.PC = addr + uint16(size)
			}}
		}
	}

	regHi, regLo := ixyHalves(pair)
	t[0x24] = Instruction{Size: 2, Cycles: 8, Mnemonic: "INC xh", Exec: incReg(regHi)}
	t[0x2C] = Instruction{Size: 2, Cycles: 8, Mnemonic: "INC xl", Exec: incReg(regLo)}
	t[0x25] = Instruction{Size: 2, Cycles: 8, Mnemonic: "DEC xh", Exec: decReg(regHi)}
	t[0x2D] = Instruction{Size: 2, Cycles: 8, Mnemonic: "DEC xl", Exec: decReg(regLo)}
	t[0x26] = Instruction{Size: 3, Cycles: 11, Mnemonic: "LD xh,n", Exec: func(c *CPU, addr uint16) {
		c.Set8(regHi, imm8(c, addr+1))
		c.PC = addr + 3
	}}
	t[0x2E] = Instruction{Size: 3, Cycles: 11, Mnemonic: "LD xl,n", Exec: func(c *CPU, addr uint16) {
		c.Set8(regLo, imm8(c, addr+1))
		c.PC = addr + 3
	}}

	t[0x09] = addPairIndexed(pair, PairBC)
	t[0x19] = addPairIndexed(pair, PairDE)
	t[0x29] = addPairIndexed(pair, pair)
	t[0x39] = addPairIndexed(pair, PairSP)

	t[0x21] = Instruction{Size: 4, Cycles: 14, Mnemonic: "LD xx,nn", Exec: func(c *CPU, addr uint16) {
		c.SetPair(pair, c.Bus.ReadWord(addr+2, c.CycleTimestamp))
		c.PC = addr + 4
	}}
	t[0x22] = Instruction{Size: 4, Cycles: 20, Mnemonic: "LD (nn),xx", Exec: func(c *CPU, addr uint16) {
		c.Bus.WriteWord(c.Bus.ReadWord(addr+2, c.CycleTimestamp), c.GetPair(pair), c.CycleTimestamp)
		c.PC = addr + 4
	}}
	t[0x2A] = Instruction{Size: 4, Cycles: 20, Mnemonic: "LD xx,(nn)", Exec: func(c *CPU, addr uint16) {
		c.SetPair(pair, c.Bus.ReadWord(c.Bus.ReadWord(addr+2, c.CycleTimestamp), c.CycleTimestamp))
		c.PC = addr + 4
	}}
	t[0x23] = Instruction{Size: 2, Cycles: 10, Mnemonic: "INC xx", Exec: func(c *CPU, addr uint16) {
		c.SetPair(pair, c.GetPair(pair)+1)
		c.PC = addr + 2
	}}
	t[0x2B] = Instruction{Size: 2, Cycles: 10, Mnemonic: "DEC xx", Exec: func(c *CPU, addr uint16) {
		c.SetPair(pair, c.GetPair(pair)-1)
		c.PC = addr + 2
	}}

	t[0x34] = Instruction{Size: 3, Cycles: 23, Mnemonic: "INC (xx+d)", Exec: func(c *CPU, addr uint16) {
		a := os.memAddr(c, addr)
		result, f := inc8(c.Bus.ReadByte(a, c.CycleTimestamp), c.F)
		c.Bus.WriteByte(a, result, c.CycleTimestamp)
		c.F = f
		c.PC = addr + 3
	}}
	t[0x35] = Instruction{Size: 3, Cycles: 23, Mnemonic: "DEC (xx+d)", Exec: func(c *CPU, addr uint16) {
		a := os.memAddr(c, addr)
		result, f := dec8(c.Bus.ReadByte(a, c.CycleTimestamp), c.F)
		c.Bus.WriteByte(a, result, c.CycleTimestamp)
		c.F = f
		c.PC = addr + 3
	}}
	t[0x36] = Instruction{Size: 4, Cycles: 19, Mnemonic: "LD (xx+d),n", Exec: func(c *CPU, addr uint16) {
		a := os.memAddr(c, addr)
		c.Bus.WriteByte(a, imm8(c, addr+2), c.CycleTimestamp)
		c.PC = addr + 4
	}}

	// DD76/FD76: real silicon treats this as plain HALT, not an indexed
	// (HL),(HL) access — HALT never touches memory, so no displacement
	// byte is fetched.
	t[0x76] = Instruction{Size: 2, Cycles: 8, Mnemonic: "HALT", Exec: func(c *CPU, addr uint16) {
		c.Halted = true
		c.PC = addr + 2
	}}

	t[0xE1] = Instruction{Size: 2, Cycles: 14, Mnemonic: "POP xx", Exec: func(c *CPU, addr uint16) {
		c.SetPair(pair, c.pop16())
		c.PC = addr + 2
	}}
	t[0xE5] = Instruction{Size: 2, Cycles: 15, Mnemonic: "PUSH xx", Exec: func(c *CPU, addr uint16) {
		c.push16(c.GetPair(pair))
		c.PC = addr + 2
	}}
	t[0xE3] = Instruction{Size: 2, Cycles: 23, Mnemonic: "EX (SP),xx", Exec: func(c *CPU, addr uint16) {
		lo := c.Bus.ReadByte(c.SP, c.CycleTimestamp)
		hi := c.Bus.ReadByte(c.SP+1, c.CycleTimestamp)
		v := c.GetPair(pair)
		c.Bus.WriteByte(c.SP, uint8(v), c.CycleTimestamp)
		c.Bus.WriteByte(c.SP+1, uint8(v>>8), c.CycleTimestamp)
		c.SetPair(pair, uint16(hi)<<8|uint16(lo))
		c.PC = addr + 2
	}}
	t[0xE9] = Instruction{Size: 2, Cycles: 8, Mnemonic: "JP (xx)", Exec: func(c *CPU, addr uint16) {
		c.PC = c.GetPair(pair)
	}}
	t[0xF9] = Instruction{Size: 2, Cycles: 10, Mnemonic: "LD SP,xx", Exec: func(c *CPU, addr uint16) {
		c.SP = c.GetPair(pair)
		c.PC = addr + 2
	}}

	// CB/DD/ED/FD slots: the decoder intercepts these before consulting
	// the table (DDCB/FDCB and doubled/mixed prefixes), so these entries
	// only matter for completeness.
	t[0xCB] = NOP1
	t[0xDD] = NOP1
	t[0xED] = NOP1
	t[0xFD] = NOP1
}

func ixyHalves(pair RegPair) (hi, lo Reg8) {
	if pair == PairIX {
		return RegIXH, RegIXL
	}
	return RegIYH, RegIYL
}

func incReg(r Reg8) ExecFunc {
	return func(c *CPU, addr uint16) {
		result, f := inc8(c.Get8(r), c.F)
		c.Set8(r, result)
		c.F = f
		c.PC = addr + 2
	}
}

func decReg(r Reg8) ExecFunc {
	return func(c *CPU, addr uint16) {
		result, f := dec8(c.Get8(r), c.F)
		c.Set8(r, result)
		c.F = f
		c.PC = addr + 2
	}
}

func addPairIndexed(dst, src RegPair) Instruction {
	return Instruction{Size: 2, Cycles: 15, Mnemonic: "ADD xx,rr", Exec: func(c *CPU, addr uint16) {
		v := c.GetPair(src)
		if src == dst {
			v = c.GetPair(dst)
		}
		result, f := add16(c.GetPair(dst), v, c.F)
		c.SetPair(dst, result)
		c.F = f
		c.PC = addr + 2
	}}
}

// buildIndexBitTable builds the DDCB/FDCB compound table: opcode
// addr+3 selects a rotate/shift/BIT/RES/SET that targets (IX+d)/(IY+d)
// exclusively (the displacement sits at addr+2, per spec.md §4.3 rule
// 3), with the non-BIT forms additionally copying the result into an
// 8-bit register — the well known "undocumented" register side effect
// of the compound form.
func buildIndexBitTable(t *Table, pair RegPair) {
	addrOf := func(c *CPU, addr uint16) uint16 {
		d := int8(c.Bus.ReadByte(addr+2, c.CycleTimestamp))
		return uint16(int32(c.GetPair(pair)) + int32(d))
	}
	copyDst := func(idx int) Reg8 {
		return mainOperands.reg[idx]
	}

	for op := 0; op < 8; op++ {
		for dst := 0; dst < 8; dst++ {
			op, dst := op, dst
			opcode := (op << 3) | dst
			t[opcode] = Instruction{Size: 4, Cycles: 23, Mnemonic: "shift (xx+d)[,r]", Exec: func(c *CPU, addr uint16) {
				a := addrOf(c, addr)
				result, f := shiftOps[op](c, c.Bus.ReadByte(a, c.CycleTimestamp))
				c.Bus.WriteByte(a, result, c.CycleTimestamp)
				if dst != 6 {
					c.Set8(copyDst(dst), result)
				}
				c.F = f
				c.PC = addr + 4
			}}
		}
	}

	for bit := 0; bit < 8; bit++ {
		for dst := 0; dst < 8; dst++ {
			bit, dst := bit, dst
			opcode := 0x40 | (bit << 3) | dst
			t[opcode] = Instruction{Size: 4, Cycles: 20, Mnemonic: "BIT n,(xx+d)", Exec: func(c *CPU, addr uint16) {
				a := addrOf(c, addr)
				v := c.Bus.ReadByte(a, c.CycleTimestamp)
				c.F = bitTest(v, uint8(bit), uint8(a>>8), c.F)
				c.PC = addr + 4
			}}
		}
	}

	for bit := 0; bit < 8; bit++ {
		for dst := 0; dst < 8; dst++ {
			bit, dst := bit, dst
			opcode := 0x80 | (bit << 3) | dst
			t[opcode] = Instruction{Size: 4, Cycles: 23, Mnemonic: "RES n,(xx+d)[,r]", Exec: func(c *CPU, addr uint16) {
				a := addrOf(c, addr)
				result := c.Bus.ReadByte(a, c.CycleTimestamp) &^ (1 << uint(bit))
				c.Bus.WriteByte(a, result, c.CycleTimestamp)
				if dst != 6 {
					c.Set8(copyDst(dst), result)
				}
				c.PC = addr + 4
			}}
		}
	}

	for bit := 0; bit < 8; bit++ {
		for dst := 0; dst < 8; dst++ {
			bit, dst := bit, dst
			opcode := 0xC0 | (bit << 3) | dst
			t[opcode] = Instruction{Size: 4, Cycles: 23, Mnemonic: "SET n,(xx+d)[,r]", Exec: func(c *CPU, addr uint16) {
				a := addrOf(c, addr)
				result := c.Bus.ReadByte(a, c.CycleTimestamp) | (1 << uint(bit))
				c.Bus.WriteByte(a, result, c.CycleTimestamp)
				if dst != 6 {
					c.Set8(copyDst(dst), result)
				}
				c.PC = addr + 4
			}}
		}
	}
}
