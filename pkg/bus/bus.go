// Package bus provides reference implementations of the z80.Bus
// interface: a flat 64KB RAM address space and a no-op peripheral
// space, grounded on the teacher pack's flat-memory model (hejops-gone's
// mem.Bus) rather than on anything from the chosen teacher, which never
// models addressable memory at all.
package bus

import "github.com/retrostack/z80core/pkg/z80"

// Flat is the simplest possible z80.Bus: one 64KB array, no banking, no
// mirroring, no peripherals — load a program at Origin and step the
// core. This is what cmd/z80run wires up for its demo harness.
type Flat struct {
	RAM [65536]byte

	// Peripherals, if set, receives PeripheralReadByte/WriteByte calls;
	// nil reads as 0xFF and ignores writes, matching an empty I/O bus.
	Peripherals PeripheralBus

	// Interrupts, if set, is polled once per z80.CPU.Step; nil means no
	// interrupt source is wired up.
	Interrupts InterruptSource
}

// PeripheralBus is the I/O-space counterpart of z80.Bus, kept as a
// separate small interface so embedders can wire in only the devices
// they need without implementing the full 64KB memory surface.
type PeripheralBus interface {
	ReadByte(ioAddr uint16) uint8
	WriteByte(ioAddr uint16, value uint8)
}

// InterruptSource supplies the result of z80.Bus.PollInterrupts.
type InterruptSource interface {
	Poll() z80.InterruptRequest
}

func NewFlat() *Flat {
	return &Flat{}
}

func (f *Flat) ReadByte(addr uint16, _ uint64) uint8 {
	return f.RAM[addr]
}

func (f *Flat) WriteByte(addr uint16, value uint8, _ uint64) {
	f.RAM[addr] = value
}

func (f *Flat) ReadWord(addr uint16, _ uint64) uint16 {
	return uint16(f.RAM[addr]) | uint16(f.RAM[addr+1])<<8
}

func (f *Flat) WriteWord(addr uint16, value uint16, _ uint64) {
	f.RAM[addr] = uint8(value)
	f.RAM[addr+1] = uint8(value >> 8)
}

func (f *Flat) PeripheralReadByte(ioAddr uint16, _ uint64) uint8 {
	if f.Peripherals == nil {
		return 0xFF
	}
	return f.Peripherals.ReadByte(ioAddr)
}

func (f *Flat) PeripheralWriteByte(ioAddr uint16, value uint8, _ uint64) {
	if f.Peripherals == nil {
		return
	}
	f.Peripherals.WriteByte(ioAddr, value)
}

func (f *Flat) RetiNotify() {}

func (f *Flat) PollInterrupts() z80.InterruptRequest {
	if f.Interrupts == nil {
		return z80.InterruptRequest{Kind: z80.NoInterrupt}
	}
	return f.Interrupts.Poll()
}

// Load copies program into RAM starting at origin, truncating anything
// that would run past the end of the address space.
func (f *Flat) Load(origin uint16, program []byte) {
	copy(f.RAM[origin:], program)
}
