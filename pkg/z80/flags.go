package z80

import "math/bits"

// Flag bit positions in the F register (spec.md §3.2): bit 7..0 is
// S Z Y H X P/V N C.
const (
	FlagC uint8 = 0x01 // Carry
	FlagN uint8 = 0x02 // Add/Subtract
	FlagP uint8 = 0x04 // Parity/Overflow
	FlagV       = FlagP
	Flag3 uint8 = 0x08 // undocumented, bit 3 of result
	FlagH uint8 = 0x10 // Half-carry
	Flag5 uint8 = 0x20 // undocumented, bit 5 of result
	FlagZ uint8 = 0x40 // Zero
	FlagS uint8 = 0x80 // Sign
)

// Flags is the structured, unpacked form of the F register (spec.md
// §4.1's pack/unpack pair). Pure value type; the ALU kernels in alu.go
// work on packed F bytes directly, and PackFlags/UnpackFlags convert
// between the two forms.
type Flags struct {
	S, Z, Y, H, X, P, N, C bool
}

// PackFlags converts a structured Flags record to an F-register byte.
func PackFlags(f Flags) uint8 {
	var b uint8
	if f.S {
		b |= FlagS
	}
	if f.Z {
		b |= FlagZ
	}
	if f.Y {
		b |= Flag5
	}
	if f.H {
		b |= FlagH
	}
	if f.X {
		b |= Flag3
	}
	if f.P {
		b |= FlagP
	}
	if f.N {
		b |= FlagN
	}
	if f.C {
		b |= FlagC
	}
	return b
}

// UnpackFlags converts an F-register byte to a structured Flags record.
func UnpackFlags(b uint8) Flags {
	return Flags{
		S: b&FlagS != 0,
		Z: b&FlagZ != 0,
		Y: b&Flag5 != 0,
		H: b&FlagH != 0,
		X: b&Flag3 != 0,
		P: b&FlagP != 0,
		N: b&FlagN != 0,
		C: b&FlagC != 0,
	}
}

// Precomputed flag tables: the S/Z/5/3 and parity behavior of a result
// byte does not depend on whether the instruction that produced it came
// from the main, CB, ED, DD or FD table, so one set of tables serves
// all of them. The half-carry/overflow tables are indexed by the 3-bit
// pattern {carry-out-of-bit-3, arg1-bit-3, arg2-bit-3} for 8-bit ops (or
// the bit-11 analogue for 16-bit ops) — the standard remogatto/z80
// encoding also used by the teacher's pkg/cpu/flags.go; built here via
// PackFlags/bits.OnesCount8 rather than ported field-for-field (see
// DESIGN.md).
var (
	sz53Table   [256]uint8
	sz53pTable  [256]uint8
	parityTable [256]uint8

	halfcarryAddTable = [8]uint8{0, FlagH, FlagH, FlagH, 0, 0, 0, FlagH}
	halfcarrySubTable = [8]uint8{0, 0, FlagH, 0, FlagH, 0, FlagH, FlagH}
	overflowAddTable  = [8]uint8{0, 0, 0, FlagV, FlagV, 0, 0, 0}
	overflowSubTable  = [8]uint8{0, FlagV, 0, 0, 0, 0, FlagV, 0}
)

func init() {
	for i := 0; i < 256; i++ {
		r := uint8(i)
		even := bits.OnesCount8(r)%2 == 0
		f := Flags{
			S: r&FlagS != 0,
			Z: r == 0,
			Y: r&Flag5 != 0,
			X: r&Flag3 != 0,
			P: even,
		}
		parityTable[i] = PackFlags(Flags{P: even})
		sz53Table[i] = PackFlags(Flags{S: f.S, Z: f.Z, Y: f.Y, X: f.X})
		sz53pTable[i] = PackFlags(f)
	}
}

// bsel returns a if cond is true, else b — a flag selection helper,
// ported from the teacher's pkg/cpu/exec.go.
func bsel(cond bool, a, b uint8) uint8 {
	if cond {
		return a
	}
	return b
}

// parityOf reports whether v has even parity (used by the INI/IND/OUTI/
// OUTD block handlers in tables_ext.go for their P/V flag).
func parityOf(v uint8) bool {
	return parityTable[v] != 0
}
