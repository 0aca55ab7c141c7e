package z80

// ExtendedTable is the ED-prefixed table: rows 0x40-0x7F (8-bit/16-bit
// I/O, arithmetic, interrupt mode, the R/I accessors, RRD/RLD, RETN/
// RETI) and 0xA0-0xBF (the block transfer/compare/IO instructions).
// Everything else is the 2-byte NOP — an unrecognized ED code.
func init() {
	t := &ExtendedTable
	for i := range t {
		t[i] = NOP2
	}

	imRow := [8]InterruptMode{IM0, IM0, IM1, IM2, IM0, IM0, IM1, IM2}

	for row := 0; row < 8; row++ {
		row := row
		p := ddPairs[row/2]
		odd := row%2 == 1

		t[0x40|(row<<3)] = Instruction{Size: 2, Cycles: 12, Mnemonic: "IN r,(C)", Exec: func(c *CPU, addr uint16) {
			v := c.Bus.PeripheralReadByte(c.GetPair(PairBC), c.CycleTimestamp)
			c.F = (c.F & FlagC) | sz53pTable[v]
			if row != 6 {
				c.Set8(mainOperands.reg[row], v)
			}
			c.PC = addr + 2
		}}
		t[0x41|(row<<3)] = Instruction{Size: 2, Cycles: 12, Mnemonic: "OUT (C),r", Exec: func(c *CPU, addr uint16) {
			var v uint8
			if row != 6 {
				v = c.Get8(mainOperands.reg[row])
			}
			c.Bus.PeripheralWriteByte(c.GetPair(PairBC), v, c.CycleTimestamp)
			c.PC = addr + 2
		}}
		t[0x42|(row<<3)] = Instruction{Size: 2, Cycles: 15, Mnemonic: "SBC/ADC HL,rr", Exec: func(c *CPU, addr uint16) {
			var result uint16
			var f uint8
			if odd {
				result, f = adc16(c.GetPair(PairHL), c.GetPair(p), c.F&FlagC)
			} else {
				result, f = sbc16(c.GetPair(PairHL), c.GetPair(p), c.F&FlagC)
			}
			c.SetPair(PairHL, result)
			c.F = f
			c.PC = addr + 2
		}}
		t[0x43|(row<<3)] = Instruction{Size: 4, Cycles: 20, Mnemonic: "LD (nn),rr / LD rr,(nn)", Exec: func(c *CPU, addr uint16) {
			nn := imm16(c, addr)
			if odd {
				c.SetPair(p, c.Bus.ReadWord(nn, c.CycleTimestamp))
			} else {
				c.Bus.WriteWord(nn, c.GetPair(p), c.CycleTimestamp)
			}
			c.PC = addr + 4
		}}
		t[0x44|(row<<3)] = Instruction{Size: 2, Cycles: 8, Mnemonic: "NEG", Exec: func(c *CPU, addr uint16) {
			result, f := sub8(0, c.A, 0)
			c.A, c.F = result, f
			c.PC = addr + 2
		}}
		t[0x45|(row<<3)] = Instruction{Size: 2, Cycles: 14, Mnemonic: "RETN", Exec: func(c *CPU, addr uint16) {
			c.IFF1 = c.IFF2
			c.PC = c.pop16()
		}}
		t[0x46|(row<<3)] = Instruction{Size: 2, Cycles: 8, Mnemonic: "IM", Exec: func(c *CPU, addr uint16) {
			c.IM = imRow[row]
			if row == 1 || row == 5 {
				c.Logger.Printf("z80: undefined IM 0/1 (ED %02X) executed; treating as IM0", 0x46|(row<<3))
			}
			c.PC = addr + 2
		}}
	}
	// RETI is the one col-5 row that differs from RETN.
	t[0x4D] = Instruction{Size: 2, Cycles: 14, Mnemonic: "RETI", Exec: func(c *CPU, addr uint16) {
		c.IFF1 = c.IFF2
		c.PC = c.pop16()
		c.Bus.RetiNotify()
	}}

	t[0x47] = Instruction{Size: 2, Cycles: 9, Mnemonic: "LD I,A", Exec: func(c *CPU, addr uint16) {
		c.I = c.A
		c.PC = addr + 2
	}}
	t[0x4F] = Instruction{Size: 2, Cycles: 9, Mnemonic: "LD R,A", Exec: func(c *CPU, addr uint16) {
		c.R = c.A
		c.PC = addr + 2
	}}
	t[0x57] = Instruction{Size: 2, Cycles: 9, Mnemonic: "LD A,I", Exec: func(c *CPU, addr uint16) {
		c.A = c.I
		c.ldAFromIOrR()
		c.PC = addr + 2
	}}
	t[0x5F] = Instruction{Size: 2, Cycles: 9, Mnemonic: "LD A,R", Exec: func(c *CPU, addr uint16) {
		c.A = c.R
		c.ldAFromIOrR()
		c.PC = addr + 2
	}}
	t[0x67] = Instruction{Size: 2, Cycles: 18, Mnemonic: "RRD", Exec: func(c *CPU, addr uint16) {
		hl := c.GetPair(PairHL)
		m := c.Bus.ReadByte(hl, c.CycleTimestamp)
		newA := (c.A & 0xF0) | (m & 0x0F)
		newM := (c.A&0x0F)<<4 | (m >> 4)
		c.Bus.WriteByte(hl, newM, c.CycleTimestamp)
		c.A = newA
		c.F = (c.F & FlagC) | sz53pTable[c.A]
		c.PC = addr + 2
	}}
	t[0x6F] = Instruction{Size: 2, Cycles: 18, Mnemonic: "RLD", Exec: func(c *CPU, addr uint16) {
		hl := c.GetPair(PairHL)
		m := c.Bus.ReadByte(hl, c.CycleTimestamp)
		newA := (c.A & 0xF0) | (m >> 4)
		newM := (m << 4) | (c.A & 0x0F)
		c.Bus.WriteByte(hl, newM, c.CycleTimestamp)
		c.A = newA
		c.F = (c.F & FlagC) | sz53pTable[c.A]
		c.PC = addr + 2
	}}

	initBlockTable(t)
}

// ldAFromIOrR is the shared flag computation for LD A,I and LD A,R:
// S,Z,5,3 from the loaded value, H=N=0, P/V=IFF2, C preserved.
func (c *CPU) ldAFromIOrR() {
	c.F = (c.F & FlagC) | sz53Table[c.A] | bsel(c.IFF2, FlagP, 0)
}

func initBlockTable(t *Table) {
	ldStep := func(step int16, repeating bool) ExecFunc {
		return func(c *CPU, addr uint16) {
			hl := c.GetPair(PairHL)
			de := c.GetPair(PairDE)
			v := c.Bus.ReadByte(hl, c.CycleTimestamp)
			c.Bus.WriteByte(de, v, c.CycleTimestamp)
			c.SetPair(PairHL, uint16(int32(hl)+int32(step)))
			c.SetPair(PairDE, uint16(int32(de)+int32(step)))
			bc := c.GetPair(PairBC) - 1
			c.SetPair(PairBC, bc)
			n := c.A + v
			f := c.F & (FlagS | FlagZ | FlagC)
			f |= n & Flag3
			if n&0x02 != 0 {
				f |= Flag5
			}
			if bc != 0 {
				f |= FlagP
			}
			c.F = f
			if repeating && bc != 0 {
				c.AddedDelay += 5
				c.PC = addr
				return
			}
			c.PC = addr + 2
		}
	}
	t[0xA0] = Instruction{Size: 2, Cycles: 16, Mnemonic: "LDI", Exec: ldStep(1, false)}
	t[0xA8] = Instruction{Size: 2, Cycles: 16, Mnemonic: "LDD", Exec: ldStep(-1, false)}
	t[0xB0] = Instruction{Size: 2, Cycles: 16, Mnemonic: "LDIR", Exec: ldStep(1, true)}
	t[0xB8] = Instruction{Size: 2, Cycles: 16, Mnemonic: "LDDR", Exec: ldStep(-1, true)}

	cpStep := func(step int16, repeating bool) ExecFunc {
		return func(c *CPU, addr uint16) {
			hl := c.GetPair(PairHL)
			v := c.Bus.ReadByte(hl, c.CycleTimestamp)
			a := c.A
			diff := a - v
			halfBorrow := a&0x0F < v&0x0F
			c.SetPair(PairHL, uint16(int32(hl)+int32(step)))
			bc := c.GetPair(PairBC) - 1
			c.SetPair(PairBC, bc)
			n := diff
			if halfBorrow {
				n--
			}
			f := (c.F & FlagC) | FlagN
			if halfBorrow {
				f |= FlagH
			}
			if diff&0x80 != 0 {
				f |= FlagS
			}
			if diff == 0 {
				f |= FlagZ
			}
			f |= n & Flag3
			if n&0x02 != 0 {
				f |= Flag5
			}
			if bc != 0 {
				f |= FlagP
			}
			c.F = f
			if repeating && bc != 0 && diff != 0 {
				c.AddedDelay += 5
				c.PC = addr
				return
			}
			c.PC = addr + 2
		}
	}
	t[0xA1] = Instruction{Size: 2, Cycles: 16, Mnemonic: "CPI", Exec: cpStep(1, false)}
	t[0xA9] = Instruction{Size: 2, Cycles: 16, Mnemonic: "CPD", Exec: cpStep(-1, false)}
	t[0xB1] = Instruction{Size: 2, Cycles: 16, Mnemonic: "CPIR", Exec: cpStep(1, true)}
	t[0xB9] = Instruction{Size: 2, Cycles: 16, Mnemonic: "CPDR", Exec: cpStep(-1, true)}

	inStep := func(step int16, repeating bool) ExecFunc {
		return func(c *CPU, addr uint16) {
			v := c.Bus.PeripheralReadByte(c.GetPair(PairBC), c.CycleTimestamp)
			c.Bus.WriteByte(c.GetPair(PairHL), v, c.CycleTimestamp)
			c.SetPair(PairHL, uint16(int32(c.GetPair(PairHL))+int32(step)))
			k := uint16(v) + uint16(uint8(int16(c.C)+step))
			c.B--
			f := sz53Table[c.B] & (FlagS | FlagZ | Flag5 | Flag3)
			f |= bsel(v&0x80 != 0, FlagN, 0)
			if k > 0xFF {
				f |= FlagH | FlagC
			}
			if parityOf(uint8(k&7) ^ c.B) {
				f |= FlagP
			}
			c.F = f
			if repeating && c.B != 0 {
				c.AddedDelay += 5
				c.PC = addr
				return
			}
			c.PC = addr + 2
		}
	}
	t[0xA2] = Instruction{Size: 2, Cycles: 16, Mnemonic: "INI", Exec: inStep(1, false)}
	t[0xAA] = Instruction{Size: 2, Cycles: 16, Mnemonic: "IND", Exec: inStep(-1, false)}
	t[0xB2] = Instruction{Size: 2, Cycles: 16, Mnemonic: "INIR", Exec: inStep(1, true)}
	t[0xBA] = Instruction{Size: 2, Cycles: 16, Mnemonic: "INDR", Exec: inStep(-1, true)}

	outStep := func(step int16, repeating bool) ExecFunc {
		return func(c *CPU, addr uint16) {
			hl := c.GetPair(PairHL)
			v := c.Bus.ReadByte(hl, c.CycleTimestamp)
			c.SetPair(PairHL, uint16(int32(hl)+int32(step)))
			c.B--
			c.Bus.PeripheralWriteByte(c.GetPair(PairBC), v, c.CycleTimestamp)
			k := uint16(v) + uint16(c.L)
			f := sz53Table[c.B] & (FlagS | FlagZ | Flag5 | Flag3)
			f |= bsel(v&0x80 != 0, FlagN, 0)
			if k > 0xFF {
				f |= FlagH | FlagC
			}
			if parityOf(uint8(k&7) ^ c.B) {
				f |= FlagP
			}
			c.F = f
			if repeating && c.B != 0 {
				c.AddedDelay += 5
				c.PC = addr
				return
			}
			c.PC = addr + 2
		}
	}
	t[0xA3] = Instruction{Size: 2, Cycles: 16, Mnemonic: "OUTI", Exec: outStep(1, false)}
	t[0xAB] = Instruction{Size: 2, Cycles: 16, Mnemonic: "OUTD", Exec: outStep(-1, false)}
	t[0xB3] = Instruction{Size: 2, Cycles: 16, Mnemonic: "OTIR", Exec: outStep(1, true)}
	t[0xBB] = Instruction{Size: 2, Cycles: 16, Mnemonic: "OTDR", Exec: outStep(-1, true)}
}
