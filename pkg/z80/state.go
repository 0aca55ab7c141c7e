// Package z80 implements the core of a Zilog Z80 microprocessor: register
// file, flag arithmetic, the eight prefix dispatch tables, the prefix
// decoder, the execution step, and interrupt acknowledge. It consumes a
// Bus (pkg/bus) for memory/IO and a Logger for advisories; it owns no
// peripherals, scheduling loop, or UI.
package z80

// InterruptMode selects how the core responds to a maskable interrupt.
type InterruptMode uint8

const (
	IM0 InterruptMode = iota
	IM1
	IM2
	IMUndefined
)

// CPU holds the full Z80 register file plus the bus/logger it was wired
// to. Zero value is a cold-reset CPU (all registers zero, IM0,
// interrupts disabled) once Bus/Logger are set.
type CPU struct {
	// Main register bank.
	A, F uint8
	B, C uint8
	D, E uint8
	H, L uint8

	// Shadow register bank — reachable only via EX AF,AF' and EXX.
	A_, F_ uint8
	B_, C_ uint8
	D_, E_ uint8
	H_, L_ uint8

	IX, IY uint16
	SP, PC uint16

	I uint8 // interrupt vector base (IM2)
	R uint8 // refresh counter; bit 7 preserved across auto-increment

	IFF1, IFF2 bool
	IM         InterruptMode
	Halted     bool

	// eiPending defers interrupt acceptance by exactly one instruction
	// after EI, per the real chip (spec.md §9's noted source bug; see
	// SPEC_FULL.md §5).
	eiPending bool

	CycleTimestamp uint64
	AddedDelay     int

	Bus    Bus
	Logger Logger
}

// New returns a cold-reset CPU wired to the given bus and logger.
func New(bus Bus, logger Logger) *CPU {
	if logger == nil {
		logger = StdLogger{}
	}
	return &CPU{Bus: bus, Logger: logger}
}

// Snapshot is a plain-data copy of the register file, independent of the
// Bus/Logger it was wired to — used by pkg/trace for golden-state
// fixtures and by pkg/conformance for invariant checks.
type Snapshot struct {
	A, F                   uint8
	B, C, D, E, H, L       uint8
	A_, F_                 uint8
	B_, C_, D_, E_, H_, L_ uint8
	IX, IY                 uint16
	SP, PC                 uint16
	I, R                   uint8
	IFF1, IFF2             bool
	IM                     InterruptMode
	Halted                 bool
}

// Snapshot captures the current register file.
func (c *CPU) Snapshot() Snapshot {
	return Snapshot{
		A: c.A, F: c.F, B: c.B, C: c.C, D: c.D, E: c.E, H: c.H, L: c.L,
		A_: c.A_, F_: c.F_, B_: c.B_, C_: c.C_, D_: c.D_, E_: c.E_, H_: c.H_, L_: c.L_,
		IX: c.IX, IY: c.IY, SP: c.SP, PC: c.PC,
		I: c.I, R: c.R,
		IFF1: c.IFF1, IFF2: c.IFF2, IM: c.IM, Halted: c.Halted,
	}
}

// Restore overwrites the register file from a snapshot, leaving Bus and
// Logger untouched.
func (c *CPU) Restore(s Snapshot) {
	c.A, c.F, c.B, c.C, c.D, c.E, c.H, c.L = s.A, s.F, s.B, s.C, s.D, s.E, s.H, s.L
	c.A_, c.F_, c.B_, c.C_, c.D_, c.E_, c.H_, c.L_ = s.A_, s.F_, s.B_, s.C_, s.D_, s.E_, s.H_, s.L_
	c.IX, c.IY, c.SP, c.PC = s.IX, s.IY, s.SP, s.PC
	c.I, c.R = s.I, s.R
	c.IFF1, c.IFF2, c.IM, c.Halted = s.IFF1, s.IFF2, s.IM, s.Halted
	c.eiPending = false
	c.AddedDelay = 0
}
