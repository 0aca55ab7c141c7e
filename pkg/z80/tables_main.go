package z80

// MainTable is built once at package init, mirroring the teacher's
// pkg/inst/catalog.go init()-loop style: the regular bit-field patterns
// (INC/DEC r, LD r,n, ADD HL,rr, conditional jumps/calls/rets, RST, PUSH/
// POP, the 8x8 LD r,r' grid and the 8x8 ALU A,r grid) are generated by
// looping over the 3-bit/2-bit fields the opcode byte actually encodes,
// rather than writing 256 handler literals by hand.
var ddPairs = [4]RegPair{PairBC, PairDE, PairHL, PairSP}
var stackPairs = [4]RegPair{PairBC, PairDE, PairHL, PairAF}

// aluOps is ADD,ADC,SUB,SBC,AND,XOR,OR,CP in opcode bit-field order,
// shared by the main table and the indexed tables in tables_index.go.
var aluOps = [8]func(c *CPU, v uint8){
	func(c *CPU, v uint8) { c.A, c.F = add8(c.A, v, 0) },
	func(c *CPU, v uint8) { c.A, c.F = add8(c.A, v, c.F&FlagC) },
	func(c *CPU, v uint8) { c.A, c.F = sub8(c.A, v, 0) },
	func(c *CPU, v uint8) { c.A, c.F = sub8(c.A, v, c.F&FlagC) },
	func(c *CPU, v uint8) { c.A, c.F = and8(c.A, v) },
	func(c *CPU, v uint8) { c.A, c.F = xor8(c.A, v) },
	func(c *CPU, v uint8) { c.A, c.F = or8(c.A, v) },
	func(c *CPU, v uint8) { c.F = cp8(c.A, v) },
}

func init() {
	t := &MainTable

	t[0x00] = NOP1

	// LD dd,nn / INC dd / DEC dd / ADD HL,dd, dd in BC,DE,HL,SP.
	for i, p := range ddPairs {
		p := p
		t[0x01|(i<<4)] = Instruction{Size: 3, Cycles: 10, Mnemonic: "LD " + pairName[p] + ",nn",
			Exec: func(c *CPU, addr uint16) {
				c.SetPair(p, imm16(c, addr))
				c.PC = addr + 3
			}}
		t[0x03|(i<<4)] = Instruction{Size: 1, Cycles: 6, Mnemonic: "INC " + pairName[p],
			Exec: func(c *CPU, addr uint16) {
				c.SetPair(p, c.GetPair(p)+1)
				c.PC = addr + 1
			}}
		t[0x0B|(i<<4)] = Instruction{Size: 1, Cycles: 6, Mnemonic: "DEC " + pairName[p],
			Exec: func(c *CPU, addr uint16) {
				c.SetPair(p, c.GetPair(p)-1)
				c.PC = addr + 1
			}}
		t[0x09|(i<<4)] = Instruction{Size: 1, Cycles: 11, Mnemonic: "ADD HL," + pairName[p],
			Exec: func(c *CPU, addr uint16) {
				result, f := add16(c.GetPair(PairHL), c.GetPair(p), c.F)
				c.SetPair(PairHL, result)
				c.F = f
				c.PC = addr + 1
			}}
	}

	// INC r / DEC r / LD r,n for r in B,C,D,E,H,L,(HL),A.
	for idx := 0; idx < 8; idx++ {
		idx := idx
		incCycles, decCycles, ldCycles := 4, 4, 7
		if idx == 6 {
			incCycles, decCycles, ldCycles = 11, 11, 10
		}
		t[0x04|(idx<<3)] = Instruction{Size: 1, Cycles: incCycles, Mnemonic: "INC r",
			Exec: func(c *CPU, addr uint16) {
				v := getSlot(c, mainOperands, idx, addr)
				result, f := inc8(v, c.F)
				setSlot(c, mainOperands, idx, addr, result)
				c.F = f
				c.PC = addr + 1
			}}
		t[0x05|(idx<<3)] = Instruction{Size: 1, Cycles: decCycles, Mnemonic: "DEC r",
			Exec: func(c *CPU, addr uint16) {
				v := getSlot(c, mainOperands, idx, addr)
				result, f := dec8(v, c.F)
				setSlot(c, mainOperands, idx, addr, result)
				c.F = f
				c.PC = addr + 1
			}}
		size := 2
		t[0x06|(idx<<3)] = Instruction{Size: size, Cycles: ldCycles, Mnemonic: "LD r,n",
			Exec: func(c *CPU, addr uint16) {
				setSlot(c, mainOperands, idx, addr, imm8(c, addr))
				c.PC = addr + 2
			}}
	}

	// Accumulator-only rotates + DAA/CPL/SCF/CCF, one per bit pattern 0b00xxx111.
	t[0x07] = Instruction{Size: 1, Cycles: 4, Mnemonic: "RLCA", Exec: func(c *CPU, addr uint16) {
		result, carry := rlcaBits(c.A)
		c.A = result
		c.F = (c.F & (FlagS | FlagZ | FlagP)) | (result & (Flag3 | Flag5)) | carry
		c.PC = addr + 1
	}}
	t[0x0F] = Instruction{Size: 1, Cycles: 4, Mnemonic: "RRCA", Exec: func(c *CPU, addr uint16) {
		result, carry := rrcaBits(c.A)
		c.A = result
		c.F = (c.F & (FlagS | FlagZ | FlagP)) | (result & (Flag3 | Flag5)) | carry
		c.PC = addr + 1
	}}
	t[0x17] = Instruction{Size: 1, Cycles: 4, Mnemonic: "RLA", Exec: func(c *CPU, addr uint16) {
		result, carry := rlaBits(c.A, c.F)
		c.A = result
		c.F = (c.F & (FlagS | FlagZ | FlagP)) | (result & (Flag3 | Flag5)) | carry
		c.PC = addr + 1
	}}
	t[0x1F] = Instruction{Size: 1, Cycles: 4, Mnemonic: "RRA", Exec: func(c *CPU, addr uint16) {
		result, carry := rraBits(c.A, c.F)
		c.A = result
		c.F = (c.F & (FlagS | FlagZ | FlagP)) | (result & (Flag3 | Flag5)) | carry
		c.PC = addr + 1
	}}
	t[0x27] = Instruction{Size: 1, Cycles: 4, Mnemonic: "DAA", Exec: func(c *CPU, addr uint16) {
		c.daa()
		c.PC = addr + 1
	}}
	t[0x2F] = Instruction{Size: 1, Cycles: 4, Mnemonic: "CPL", Exec: func(c *CPU, addr uint16) {
		c.A = ^c.A
		c.F = (c.F & (FlagS | FlagZ | FlagP | FlagC)) | FlagH | FlagN | (c.A & (Flag3 | Flag5))
		c.PC = addr + 1
	}}
	t[0x37] = Instruction{Size: 1, Cycles: 4, Mnemonic: "SCF", Exec: func(c *CPU, addr uint16) {
		c.F = (c.F & (FlagS | FlagZ | FlagP)) | FlagC | (c.A & (Flag3 | Flag5))
		c.PC = addr + 1
	}}
	t[0x3F] = Instruction{Size: 1, Cycles: 4, Mnemonic: "CCF", Exec: func(c *CPU, addr uint16) {
		oldC := c.F & FlagC
		c.F = (c.F & (FlagS | FlagZ | FlagP)) | bsel(oldC != 0, FlagH, 0) | bsel(oldC != 0, 0, FlagC) | (c.A & (Flag3 | Flag5))
		c.PC = addr + 1
	}}

	t[0x02] = Instruction{Size: 1, Cycles: 7, Mnemonic: "LD (BC),A", Exec: func(c *CPU, addr uint16) {
		c.Bus.WriteByte(c.GetPair(PairBC), c.A, c.CycleTimestamp)
		c.PC = addr + 1
	}}
	t[0x12] = Instruction{Size: 1, Cycles: 7, Mnemonic: "LD (DE),A", Exec: func(c *CPU, addr uint16) {
		c.Bus.WriteByte(c.GetPair(PairDE), c.A, c.CycleTimestamp)
		c.PC = addr + 1
	}}
	t[0x0A] = Instruction{Size: 1, Cycles: 7, Mnemonic: "LD A,(BC)", Exec: func(c *CPU, addr uint16) {
		c.A = c.Bus.ReadByte(c.GetPair(PairBC), c.CycleTimestamp)
		c.PC = addr + 1
	}}
	t[0x1A] = Instruction{Size: 1, Cycles: 7, Mnemonic: "LD A,(DE)", Exec: func(c *CPU, addr uint16) {
		c.A = c.Bus.ReadByte(c.GetPair(PairDE), c.CycleTimestamp)
		c.PC = addr + 1
	}}

	t[0x08] = Instruction{Size: 1, Cycles: 4, Mnemonic: "EX AF,AF'", Exec: func(c *CPU, addr uint16) {
		c.ExAF()
		c.PC = addr + 1
	}}
	t[0xD9] = Instruction{Size: 1, Cycles: 4, Mnemonic: "EXX", Exec: func(c *CPU, addr uint16) {
		c.Exx()
		c.PC = addr + 1
	}}
	t[0xE3] = Instruction{Size: 1, Cycles: 19, Mnemonic: "EX (SP),HL", Exec: func(c *CPU, addr uint16) {
		lo := c.Bus.ReadByte(c.SP, c.CycleTimestamp)
		hi := c.Bus.ReadByte(c.SP+1, c.CycleTimestamp)
		c.Bus.WriteByte(c.SP, c.L, c.CycleTimestamp)
		c.Bus.WriteByte(c.SP+1, c.H, c.CycleTimestamp)
		c.L, c.H = lo, hi
		c.PC = addr + 1
	}}
	t[0xEB] = Instruction{Size: 1, Cycles: 4, Mnemonic: "EX DE,HL", Exec: func(c *CPU, addr uint16) {
		c.D, c.H = c.H, c.D
		c.E, c.L = c.L, c.E
		c.PC = addr + 1
	}}

	t[0x10] = Instruction{Size: 2, Cycles: 8, Mnemonic: "DJNZ d", Exec: func(c *CPU, addr uint16) {
		c.B--
		if c.B != 0 {
			c.AddedDelay += 5
			c.PC = uint16(int32(addr) + 2 + int32(int8(imm8(c, addr))))
			return
		}
		c.PC = addr + 2
	}}
	t[0x18] = Instruction{Size: 2, Cycles: 12, Mnemonic: "JR d", Exec: func(c *CPU, addr uint16) {
		c.PC = uint16(int32(addr) + 2 + int32(int8(imm8(c, addr))))
	}}
	for i := 0; i < 4; i++ {
		i := i
		t[0x20|(i<<3)] = Instruction{Size: 2, Cycles: 7, Mnemonic: "JR cc,d", Exec: func(c *CPU, addr uint16) {
			if testCond(c, i) {
				c.AddedDelay += 5
				c.PC = uint16(int32(addr) + 2 + int32(int8(imm8(c, addr))))
				return
			}
			c.PC = addr + 2
		}}
	}

	t[0x22] = Instruction{Size: 3, Cycles: 16, Mnemonic: "LD (nn),HL", Exec: func(c *CPU, addr uint16) {
		c.Bus.WriteWord(imm16(c, addr), c.GetPair(PairHL), c.CycleTimestamp)
		c.PC = addr + 3
	}}
	t[0x2A] = Instruction{Size: 3, Cycles: 16, Mnemonic: "LD HL,(nn)", Exec: func(c *CPU, addr uint16) {
		c.SetPair(PairHL, c.Bus.ReadWord(imm16(c, addr), c.CycleTimestamp))
		c.PC = addr + 3
	}}
	t[0x32] = Instruction{Size: 3, Cycles: 13, Mnemonic: "LD (nn),A", Exec: func(c *CPU, addr uint16) {
		c.Bus.WriteByte(imm16(c, addr), c.A, c.CycleTimestamp)
		c.PC = addr + 3
	}}
	t[0x3A] = Instruction{Size: 3, Cycles: 13, Mnemonic: "LD A,(nn)", Exec: func(c *CPU, addr uint16) {
		c.A = c.Bus.ReadByte(imm16(c, addr), c.CycleTimestamp)
		c.PC = addr + 3
	}}

	// LD r,r' grid, 0x40-0x7F, with 0x76 carved out for HALT.
	for dst := 0; dst < 8; dst++ {
		for src := 0; src < 8; src++ {
			dst, src := dst, src
			op := 0x40 | (dst << 3) | src
			if op == 0x76 {
				continue
			}
			cycles := 4
			if dst == 6 || src == 6 {
				cycles = 7
			}
			t[op] = Instruction{Size: 1, Cycles: cycles, Mnemonic: "LD r,r'", Exec: func(c *CPU, addr uint16) {
				setSlot(c, mainOperands, dst, addr, getSlot(c, mainOperands, src, addr))
				c.PC = addr + 1
			}}
		}
	}
	t[0x76] = Instruction{Size: 1, Cycles: 4, Mnemonic: "HALT", Exec: func(c *CPU, addr uint16) {
		c.Halted = true
		c.PC = addr + 1
	}}

	// ALU A,r grid, 0x80-0xBF: ADD,ADC,SUB,SBC,AND,XOR,OR,CP.
	for op := 0; op < 8; op++ {
		for src := 0; src < 8; src++ {
			op, src := op, src
			opcode := 0x80 | (op << 3) | src
			cycles := 4
			if src == 6 {
				cycles = 7
			}
			t[opcode] = Instruction{Size: 1, Cycles: cycles, Mnemonic: "ALU A,r", Exec: func(c *CPU, addr uint16) {
				aluOps[op](c, getSlot(c, mainOperands, src, addr))
				c.PC = addr + 1
			}}
		}
	}
	// ALU A,n, 0xC6/0xCE/0xD6/0xDE/0xE6/0xEE/0xF6/0xFE.
	for op := 0; op < 8; op++ {
		op := op
		t[0xC6|(op<<3)] = Instruction{Size: 2, Cycles: 7, Mnemonic: "ALU A,n", Exec: func(c *CPU, addr uint16) {
			aluOps[op](c, imm8(c, addr))
			c.PC = addr + 2
		}}
	}

	// RET cc / JP cc,nn / CALL cc,nn / RST.
	for i := 0; i < 8; i++ {
		i := i
		t[0xC0|(i<<3)] = Instruction{Size: 1, Cycles: 5, Mnemonic: "RET cc", Exec: func(c *CPU, addr uint16) {
			if testCond(c, i) {
				c.AddedDelay += 6
				c.PC = c.pop16()
				return
			}
			c.PC = addr + 1
		}}
		t[0xC2|(i<<3)] = Instruction{Size: 3, Cycles: 10, Mnemonic: "JP cc,nn", Exec: func(c *CPU, addr uint16) {
			target := imm16(c, addr)
			if testCond(c, i) {
				c.PC = target
				return
			}
			c.PC = addr + 3
		}}
		t[0xC4|(i<<3)] = Instruction{Size: 3, Cycles: 10, Mnemonic: "CALL cc,nn", Exec: func(c *CPU, addr uint16) {
			target := imm16(c, addr)
			if testCond(c, i) {
				c.AddedDelay += 7
				c.push16(addr + 3)
				c.PC = target
				return
			}
			c.PC = addr + 3
		}}
		t[0xC7|(i<<3)] = Instruction{Size: 1, Cycles: 11, Mnemonic: "RST", Exec: func(c *CPU, addr uint16) {
			c.push16(addr + 1)
			c.PC = uint16(i * 8)
		}}
	}

	for i, p := range stackPairs {
		i, p := i, p
		t[0xC1|(i<<4)] = Instruction{Size: 1, Cycles: 10, Mnemonic: "POP " + pairName[p], Exec: func(c *CPU, addr uint16) {
			c.SetPair(p, c.pop16())
			c.PC = addr + 1
		}}
		t[0xC5|(i<<4)] = Instruction{Size: 1, Cycles: 11, Mnemonic: "PUSH " + pairName[p], Exec: func(c *CPU, addr uint16) {
			c.push16(c.GetPair(p))
			c.PC = addr + 1
		}}
	}

	t[0xC3] = Instruction{Size: 3, Cycles: 10, Mnemonic: "JP nn", Exec: func(c *CPU, addr uint16) {
		c.PC = imm16(c, addr)
	}}
	t[0xC9] = Instruction{Size: 1, Cycles: 10, Mnemonic: "RET", Exec: func(c *CPU, addr uint16) {
		c.PC = c.pop16()
	}}
	t[0xCD] = Instruction{Size: 3, Cycles: 17, Mnemonic: "CALL nn", Exec: func(c *CPU, addr uint16) {
		target := imm16(c, addr)
		c.push16(addr + 3)
		c.PC = target
	}}
	t[0xE9] = Instruction{Size: 1, Cycles: 4, Mnemonic: "JP (HL)", Exec: func(c *CPU, addr uint16) {
		c.PC = c.GetPair(PairHL)
	}}
	t[0xF9] = Instruction{Size: 1, Cycles: 6, Mnemonic: "LD SP,HL", Exec: func(c *CPU, addr uint16) {
		c.SP = c.GetPair(PairHL)
		c.PC = addr + 1
	}}

	t[0xD3] = Instruction{Size: 2, Cycles: 11, Mnemonic: "OUT (n),A", Exec: func(c *CPU, addr uint16) {
		port := uint16(c.A)<<8 | uint16(imm8(c, addr))
		c.Bus.PeripheralWriteByte(port, c.A, c.CycleTimestamp)
		c.PC = addr + 2
	}}
	t[0xDB] = Instruction{Size: 2, Cycles: 11, Mnemonic: "IN A,(n)", Exec: func(c *CPU, addr uint16) {
		port := uint16(c.A)<<8 | uint16(imm8(c, addr))
		c.A = c.Bus.PeripheralReadByte(port, c.CycleTimestamp)
		c.PC = addr + 2
	}}

	t[0xF3] = Instruction{Size: 1, Cycles: 4, Mnemonic: "DI", Exec: func(c *CPU, addr uint16) {
		c.IFF1, c.IFF2 = false, false
		c.PC = addr + 1
	}}
	t[0xFB] = Instruction{Size: 1, Cycles: 4, Mnemonic: "EI", Exec: func(c *CPU, addr uint16) {
		c.IFF1, c.IFF2 = true, true
		c.eiPending = true
		c.PC = addr + 1
	}}

	// Prefix bytes: the decoder routes these before ever consulting
	// MainTable, but the slots are filled in for API completeness.
	t[0xCB] = NOP1
	t[0xDD] = NOP1
	t[0xED] = NOP1
	t[0xFD] = NOP1
}
