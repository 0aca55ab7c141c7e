package z80

import "testing"

func TestDecodeUnprefixed(t *testing.T) {
	bus := newTestBus()
	bus.load(0x4000, 0x00) // NOP
	c := New(bus, DiscardLogger{})
	d := c.decode(0x4000)
	if d.inst.Mnemonic != "NOP" || d.rTicks != 1 {
		t.Fatalf("decode(NOP) = %+v, want MainTable[0] with rTicks 1", d)
	}
}

func TestDecodeCBPrefix(t *testing.T) {
	bus := newTestBus()
	bus.load(0x4000, 0xCB, 0x07) // RLC A
	c := New(bus, DiscardLogger{})
	d := c.decode(0x4000)
	if d.rTicks != 2 {
		t.Fatalf("CB-prefixed rTicks = %d, want 2", d.rTicks)
	}
	if d.inst.Mnemonic != BitTable[0x07].Mnemonic || d.inst.Cycles != BitTable[0x07].Cycles {
		t.Fatalf("decode did not dispatch to BitTable[0x07]")
	}
}

func TestDecodeEDPrefix(t *testing.T) {
	bus := newTestBus()
	bus.load(0x4000, 0xED, 0x44) // NEG
	c := New(bus, DiscardLogger{})
	d := c.decode(0x4000)
	if d.rTicks != 2 || d.inst.Mnemonic != "NEG" {
		t.Fatalf("decode(ED 44) = %+v, want NEG with rTicks 2", d)
	}
}

func TestDecodeDDPrefix(t *testing.T) {
	bus := newTestBus()
	bus.load(0x4000, 0xDD, 0x21, 0x00, 0x10) // LD IX,0x1000
	c := New(bus, DiscardLogger{})
	d := c.decode(0x4000)
	if d.rTicks != 2 || d.inst.Mnemonic != "LD xx,nn" {
		t.Fatalf("decode(DD 21) = %+v, want LD xx,nn with rTicks 2", d)
	}
}

func TestDecodeFDPrefix(t *testing.T) {
	bus := newTestBus()
	bus.load(0x4000, 0xFD, 0x21, 0x00, 0x10) // LD IY,0x1000
	c := New(bus, DiscardLogger{})
	d := c.decode(0x4000)
	if d.rTicks != 2 {
		t.Fatalf("decode(FD 21) rTicks = %d, want 2", d.rTicks)
	}
	if d.inst.Mnemonic != IYTable[0x21].Mnemonic {
		t.Fatalf("decode did not dispatch to IYTable[0x21]")
	}
}

func TestDecodeDDCBCompound(t *testing.T) {
	// DD CB d op: displacement precedes the opcode byte, unlike every
	// other prefixed form.
	bus := newTestBus()
	bus.load(0x4000, 0xDD, 0xCB, 0x05, 0x06) // RLC (IX+5)
	c := New(bus, DiscardLogger{})
	d := c.decode(0x4000)
	if d.rTicks != 2 {
		t.Fatalf("DDCB rTicks = %d, want 2", d.rTicks)
	}
	if d.inst.Mnemonic != IXBitTable[0x06].Mnemonic || d.inst.Cycles != IXBitTable[0x06].Cycles {
		t.Fatalf("decode did not dispatch to IXBitTable[0x06]")
	}
}

func TestDecodeFDCBCompound(t *testing.T) {
	bus := newTestBus()
	bus.load(0x4000, 0xFD, 0xCB, 0xFB, 0x46) // BIT 0,(IY-5)
	c := New(bus, DiscardLogger{})
	d := c.decode(0x4000)
	if d.inst.Mnemonic != IYBitTable[0x46].Mnemonic {
		t.Fatalf("decode did not dispatch to IYBitTable[0x46]")
	}
}

func TestDecodeUnrecognizedEDOpcodeConsumesBothBytes(t *testing.T) {
	// ED 00 is not a documented ED row; it must fall through to NOP2 and
	// advance PC past both the prefix and the unrecognized second byte,
	// not strand that byte for the next Step() to misdecode.
	bus := newTestBus()
	bus.load(0x4000, 0xED, 0x00, 0x00, 0x00)
	c := New(bus, DiscardLogger{})
	c.PC = 0x4000
	cost := c.Step()
	if cost != 8 {
		t.Fatalf("unrecognized ED opcode cost = %d, want 8", cost)
	}
	if c.PC != 0x4002 {
		t.Fatalf("PC = 0x%04X, want 0x4002 (past both ED and the unrecognized byte)", c.PC)
	}
}
