package z80

// operandSet describes how table-slot index 0..7 (the standard Z80
// "r" field ordering B,C,D,E,H,L,(HL),A) resolves to storage for a
// given table variant. The main table uses plain registers and HL for
// slot 6; the ix/iy tables substitute IXH/IXL or IYH/IYL for slots 4/5
// and a displaced (IX+d)/(IY+d) fetch for slot 6 — this is the generic
// operand layer spec.md §9 calls for, so one handler serves all three
// tables.
type operandSet struct {
	reg     [8]Reg8
	pair    RegPair
	indexed bool
}

var mainOperands = operandSet{
	reg:  [8]Reg8{RegB, RegC, RegD, RegE, RegH, RegL, 0, RegA},
	pair: PairHL,
}

var ixOperands = operandSet{
	reg:     [8]Reg8{RegB, RegC, RegD, RegE, RegIXH, RegIXL, 0, RegA},
	pair:    PairIX,
	indexed: true,
}

var iyOperands = operandSet{
	reg:     [8]Reg8{RegB, RegC, RegD, RegE, RegIYH, RegIYL, 0, RegA},
	pair:    PairIY,
	indexed: true,
}

// memAddr resolves slot 6's address. For the main set this is simply
// HL; for ix/iy it is IX/IY plus the signed displacement byte that
// sits right after the opcode byte (addr+2, since addr is the prefix
// byte and addr+1 is the opcode byte).
func (os operandSet) memAddr(c *CPU, addr uint16) uint16 {
	if !os.indexed {
		return c.GetPair(os.pair)
	}
	d := int8(c.Bus.ReadByte(addr+2, c.CycleTimestamp))
	return uint16(int32(c.GetPair(os.pair)) + int32(d))
}

func getSlot(c *CPU, os operandSet, idx int, addr uint16) uint8 {
	if idx == 6 {
		return c.Bus.ReadByte(os.memAddr(c, addr), c.CycleTimestamp)
	}
	return c.Get8(os.reg[idx])
}

func setSlot(c *CPU, os operandSet, idx int, addr uint16, v uint8) {
	if idx == 6 {
		c.Bus.WriteByte(os.memAddr(c, addr), v, c.CycleTimestamp)
		return
	}
	c.Set8(os.reg[idx], v)
}

// imm8/imm16 fetch the byte(s) immediately following the opcode byte.
func imm8(c *CPU, addr uint16) uint8 {
	return c.Bus.ReadByte(addr+1, c.CycleTimestamp)
}

func imm16(c *CPU, addr uint16) uint16 {
	return c.Bus.ReadWord(addr+1, c.CycleTimestamp)
}

// testCond evaluates one of the eight standard condition codes, in the
// order NZ,Z,NC,C,PO,PE,P,M that opcode bits 543 encode.
func testCond(c *CPU, cc int) bool {
	switch cc {
	case 0:
		return c.F&FlagZ == 0
	case 1:
		return c.F&FlagZ != 0
	case 2:
		return c.F&FlagC == 0
	case 3:
		return c.F&FlagC != 0
	case 4:
		return c.F&FlagP == 0
	case 5:
		return c.F&FlagP != 0
	case 6:
		return c.F&FlagS == 0
	case 7:
		return c.F&FlagS != 0
	}
	panic("z80: invalid condition code")
}

var condName = [8]string{"NZ", "Z", "NC", "C", "PO", "PE", "P", "M"}

var pairName = map[RegPair]string{
	PairBC: "BC", PairDE: "DE", PairHL: "HL", PairSP: "SP", PairIX: "IX", PairIY: "IY", PairAF: "AF",
}
