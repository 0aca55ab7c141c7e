package z80

import "testing"

func TestBitTableShiftRegisterVsMemoryTiming(t *testing.T) {
	bus := newTestBus()
	bus.load(0, 0xCB, 0x00) // RLC B
	c := New(bus, DiscardLogger{})
	c.B = 0x80
	cost := c.Step()
	if cost != 8 {
		t.Fatalf("RLC B cost = %d, want 8", cost)
	}
	if c.B != 0x01 || c.F&FlagC == 0 {
		t.Fatalf("RLC B = 0x%02X/0x%02X, want 0x01 with carry", c.B, c.F)
	}

	bus2 := newTestBus()
	bus2.load(0, 0xCB, 0x06) // RLC (HL)
	c2 := New(bus2, DiscardLogger{})
	c2.SetPair(PairHL, 0x4000)
	bus2.mem[0x4000] = 0x80
	cost2 := c2.Step()
	if cost2 != 15 {
		t.Fatalf("RLC (HL) cost = %d, want 15", cost2)
	}
	if bus2.mem[0x4000] != 0x01 {
		t.Fatalf("(HL) after RLC = 0x%02X, want 0x01", bus2.mem[0x4000])
	}
}

func TestBitTableBitTestZeroFlag(t *testing.T) {
	bus := newTestBus()
	bus.load(0, 0xCB, 0x40) // BIT 0,B
	c := New(bus, DiscardLogger{})
	c.B = 0x00
	c.Step()
	if c.F&FlagZ == 0 {
		t.Fatalf("BIT 0,B with B=0 must set Z")
	}

	bus2 := newTestBus()
	bus2.load(0, 0xCB, 0x40)
	c2 := New(bus2, DiscardLogger{})
	c2.B = 0x01
	c2.Step()
	if c2.F&FlagZ != 0 {
		t.Fatalf("BIT 0,B with bit 0 set must clear Z")
	}
}

func TestBitTableResSet(t *testing.T) {
	bus := newTestBus()
	bus.load(0, 0xCB, 0x87, 0xCB, 0xC7) // RES 0,A ; SET 0,A
	c := New(bus, DiscardLogger{})
	c.A = 0xFF
	c.Step()
	if c.A != 0xFE {
		t.Fatalf("RES 0,A = 0x%02X, want 0xFE", c.A)
	}
	c.Step()
	if c.A != 0xFF {
		t.Fatalf("SET 0,A = 0x%02X, want 0xFF", c.A)
	}
}

func TestBitTableExhaustiveNeverPanics(t *testing.T) {
	for op := 0; op < 256; op++ {
		op := op
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Fatalf("BitTable[0x%02X] panicked: %v", op, r)
				}
			}()
			bus := newTestBus()
			c := New(bus, DiscardLogger{})
			c.SetPair(PairHL, 0x4000)
			BitTable[op].Exec(c, 0x1000)
		}()
	}
}
