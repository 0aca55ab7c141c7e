package conformance

import (
	"testing"

	"github.com/retrostack/z80core/pkg/z80"
)

func TestRRegisterBit7PreservedCatchesFlip(t *testing.T) {
	prop := StandardProperties[0]
	before := z80.Snapshot{R: 0x80}
	after := z80.Snapshot{R: 0x00}
	if ok, _ := prop.Check(before, after, 4); ok {
		t.Fatalf("must flag a flipped R register bit 7")
	}
	after.R = 0x81
	if ok, detail := prop.Check(before, after, 4); !ok {
		t.Fatalf("must accept R with bit 7 preserved and low bits changed, got detail %q", detail)
	}
}

func TestStepCostPositiveCatchesZero(t *testing.T) {
	prop := StandardProperties[1]
	if ok, _ := prop.Check(z80.Snapshot{}, z80.Snapshot{}, 0); ok {
		t.Fatalf("must flag a zero-cost step")
	}
	if ok, _ := prop.Check(z80.Snapshot{}, z80.Snapshot{}, -1); ok {
		t.Fatalf("must flag a negative-cost step")
	}
	if ok, _ := prop.Check(z80.Snapshot{}, z80.Snapshot{}, 4); !ok {
		t.Fatalf("must accept a positive-cost step")
	}
}

func TestHaltFreezesPCCatchesDrift(t *testing.T) {
	prop := StandardProperties[2]
	before := z80.Snapshot{Halted: true, PC: 0x1000}
	after := z80.Snapshot{Halted: true, PC: 0x1002}
	if ok, _ := prop.Check(before, after, 4); ok {
		t.Fatalf("must flag PC drifting while halted")
	}
	after.PC = 0x1000
	if ok, _ := prop.Check(before, after, 4); !ok {
		t.Fatalf("must accept PC held steady while halted")
	}
	// Waking from HALT is not a violation: before halted, after not.
	after = z80.Snapshot{Halted: false, PC: 0x0066}
	if ok, _ := prop.Check(before, after, 11); !ok {
		t.Fatalf("must not flag an interrupt waking the core out of HALT")
	}
}

func TestIMModeStableCatchesUndefinedValue(t *testing.T) {
	prop := StandardProperties[3]
	after := z80.Snapshot{IM: z80.InterruptMode(99)}
	if ok, _ := prop.Check(z80.Snapshot{}, after, 4); ok {
		t.Fatalf("must flag an out-of-range interrupt mode")
	}
	after.IM = z80.IM2
	if ok, _ := prop.Check(z80.Snapshot{}, after, 4); !ok {
		t.Fatalf("must accept a valid interrupt mode")
	}
}
