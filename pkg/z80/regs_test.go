package z80

import "testing"

func TestGet8Set8EveryRegister(t *testing.T) {
	c := New(newTestBus(), DiscardLogger{})
	regs := []Reg8{RegA, RegB, RegC, RegD, RegE, RegH, RegL, RegIXH, RegIXL, RegIYH, RegIYL}
	for i, r := range regs {
		v := uint8(i*17 + 1)
		c.Set8(r, v)
		if got := c.Get8(r); got != v {
			t.Fatalf("register %d: Get8 = 0x%02X after Set8(0x%02X)", r, got, v)
		}
	}
}

func TestSet8IXIYHalvesDontCrossTalk(t *testing.T) {
	c := New(newTestBus(), DiscardLogger{})
	c.IX = 0xAABB
	c.Set8(RegIXH, 0x12)
	if c.IX != 0x12BB {
		t.Fatalf("IX = 0x%04X, want 0x12BB (low byte preserved)", c.IX)
	}
	c.Set8(RegIXL, 0x34)
	if c.IX != 0x1234 {
		t.Fatalf("IX = 0x%04X, want 0x1234", c.IX)
	}

	c.IY = 0x5566
	c.Set8(RegIYL, 0x78)
	if c.IY != 0x5578 {
		t.Fatalf("IY = 0x%04X, want 0x5578", c.IY)
	}
}

func TestGetPairSetPairEveryPair(t *testing.T) {
	c := New(newTestBus(), DiscardLogger{})
	pairs := []RegPair{PairBC, PairDE, PairHL, PairSP, PairIX, PairIY, PairAF}
	for i, p := range pairs {
		v := uint16(i*4111 + 1)
		c.SetPair(p, v)
		if got := c.GetPair(p); got != v {
			t.Fatalf("pair %d: GetPair = 0x%04X after SetPair(0x%04X)", p, got, v)
		}
	}
}

func TestGetPairBCMatchesBAndC(t *testing.T) {
	c := New(newTestBus(), DiscardLogger{})
	c.B, c.C = 0x12, 0x34
	if got := c.GetPair(PairBC); got != 0x1234 {
		t.Fatalf("GetPair(BC) = 0x%04X, want 0x1234", got)
	}
	c.SetPair(PairDE, 0xBEEF)
	if c.D != 0xBE || c.E != 0xEF {
		t.Fatalf("SetPair(DE) -> D=0x%02X E=0x%02X, want BE/EF", c.D, c.E)
	}
}

func TestExAFIsAnInvolution(t *testing.T) {
	c := New(newTestBus(), DiscardLogger{})
	c.A, c.F = 0x12, 0x34
	c.A_, c.F_ = 0x56, 0x78
	c.ExAF()
	if c.A != 0x56 || c.F != 0x78 || c.A_ != 0x12 || c.F_ != 0x34 {
		t.Fatalf("ExAF once: A=0x%02X F=0x%02X A'=0x%02X F'=0x%02X", c.A, c.F, c.A_, c.F_)
	}
	c.ExAF()
	if c.A != 0x12 || c.F != 0x34 || c.A_ != 0x56 || c.F_ != 0x78 {
		t.Fatalf("ExAF twice must restore original values, got A=0x%02X F=0x%02X A'=0x%02X F'=0x%02X",
			c.A, c.F, c.A_, c.F_)
	}
}

func TestExxIsAnInvolution(t *testing.T) {
	c := New(newTestBus(), DiscardLogger{})
	c.B, c.C, c.D, c.E, c.H, c.L = 1, 2, 3, 4, 5, 6
	c.B_, c.C_, c.D_, c.E_, c.H_, c.L_ = 11, 12, 13, 14, 15, 16
	c.Exx()
	if c.B != 11 || c.L != 16 {
		t.Fatalf("Exx once: B=%d L=%d, want 11/16", c.B, c.L)
	}
	c.Exx()
	if c.B != 1 || c.L != 6 {
		t.Fatalf("Exx twice must restore original values, got B=%d L=%d", c.B, c.L)
	}
}

func TestPush16Pop16RoundTrip(t *testing.T) {
	c := New(newTestBus(), DiscardLogger{})
	c.SP = 0xFFF0
	c.push16(0xBEEF)
	if c.SP != 0xFFEE {
		t.Fatalf("SP after push16 = 0x%04X, want 0xFFEE", c.SP)
	}
	got := c.pop16()
	if got != 0xBEEF {
		t.Fatalf("pop16 = 0x%04X, want 0xBEEF", got)
	}
	if c.SP != 0xFFF0 {
		t.Fatalf("SP after pop16 = 0x%04X, want 0xFFF0 (restored)", c.SP)
	}
}

func TestPush16ByteOrder(t *testing.T) {
	bus := newTestBus()
	c := New(bus, DiscardLogger{})
	c.SP = 0x8000
	c.push16(0x1234)
	// High byte onto the higher address, low byte onto the lower one.
	if bus.mem[0x7FFE] != 0x34 || bus.mem[0x7FFF] != 0x12 {
		t.Fatalf("push16 byte order wrong: [0x7FFE]=0x%02X [0x7FFF]=0x%02X", bus.mem[0x7FFE], bus.mem[0x7FFF])
	}
}

func TestPackUnpackFlagsRoundTrip(t *testing.T) {
	for b := 0; b < 256; b++ {
		got := PackFlags(UnpackFlags(uint8(b)))
		if got != uint8(b) {
			t.Fatalf("PackFlags(UnpackFlags(0x%02X)) = 0x%02X", b, got)
		}
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	c := New(newTestBus(), DiscardLogger{})
	c.A, c.B, c.PC, c.SP = 0x11, 0x22, 0x3344, 0x5566
	c.IFF1, c.IM = true, IM2
	c.eiPending = true
	c.AddedDelay = 7

	snap := c.Snapshot()
	c.A = 0xFF
	c.eiPending = true
	c.Restore(snap)

	if c.A != 0x11 || c.PC != 0x3344 {
		t.Fatalf("Restore did not reapply register file: A=0x%02X PC=0x%04X", c.A, c.PC)
	}
	if c.eiPending {
		t.Fatalf("Restore must clear eiPending, it is not part of the snapshot")
	}
	if c.AddedDelay != 0 {
		t.Fatalf("Restore must clear AddedDelay, it is not part of the snapshot")
	}
}
