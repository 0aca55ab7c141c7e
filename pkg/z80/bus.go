package z80

// Bus is everything the core consumes from its embedder (spec.md §6.2):
// memory, the I/O space, and the interrupt line. Implementations live
// outside this package — pkg/bus ships a flat-RAM reference one; a real
// embedder's would add ROM/RAM banking, mirroring and peripherals.
//
// Every method takes the cycle timestamp the access happens at so the
// implementation can model contention; the core always passes the
// current instruction's start timestamp (spec.md §5 — accesses within
// one instruction are not individually timestamped).
type Bus interface {
	ReadByte(addr uint16, cycle uint64) uint8
	WriteByte(addr uint16, value uint8, cycle uint64)
	ReadWord(addr uint16, cycle uint64) uint16
	WriteWord(addr uint16, value uint16, cycle uint64)

	PeripheralReadByte(ioAddr uint16, cycle uint64) uint8
	PeripheralWriteByte(ioAddr uint16, value uint8, cycle uint64)

	// RetiNotify is called once per executed RETI so daisy-chained
	// peripherals can advance their interrupt-priority state.
	RetiNotify()

	// PollInterrupts is sampled once per Step, before fetch. The core
	// does not latch edges itself — the bus/embedder is the source of
	// truth for whether a line is currently asserted.
	PollInterrupts() InterruptRequest
}

// InterruptRequest is the result of polling the interrupt line.
type InterruptRequest struct {
	Kind   InterruptKind
	Vector uint8 // device-supplied byte; meaning depends on Kind/IM (spec.md §4.6)
}

type InterruptKind uint8

const (
	NoInterrupt InterruptKind = iota
	NMI
	INT
)

// Logger is the core's log sink (spec.md §6.3). Logs are strictly
// informational and never alter behavior.
type Logger interface {
	Printf(format string, args ...any)
}
