package z80

// ExecFunc executes one instruction. addr is the address of the first
// byte of the instruction (including any CB/ED/DD/FD prefix bytes). It
// must leave PC pointing at the next instruction (or a branch target)
// before returning, and may set c.AddedDelay for a taken-branch/looping
// supplement (spec.md §4.5). It returns nothing — callers read
// c.AddedDelay — so Instruction stays a pure data literal, mirroring
// the teacher's pkg/inst.Info{Mnemonic,Bytes,TStates}.
type ExecFunc func(c *CPU, addr uint16)

// Instruction is one entry of a dispatch table (spec.md §6.1): the
// function that performs it, the base ("not taken"/"single iteration")
// T-state cost, and its size in bytes. Size is retained, unused by
// execution, purely so a disassembler (cmd/z80run --disasm) can walk a
// program without interpreting it — spec.md §1's one concession to
// "no disassembler in scope".
type Instruction struct {
	Exec     ExecFunc
	Cycles   int
	Size     int
	Mnemonic string
}

// Table is one of the eight fixed dispatch tables (spec.md §6.1),
// indexed directly by the raw opcode byte that selects it. The
// Extended table is logically 96 entries (rows 0x40..0x7F then
// 0xA0..0xBF) but is stored here as a full 256-entry array for direct
// byte indexing — behaviorally identical to the packed form the source
// manual describes, since every unreachable slot holds the same 2-byte
// NOP the packed form's "otherwise" branch would return (see DESIGN.md).
type Table [256]Instruction

var (
	MainTable     Table
	BitTable      Table
	ExtendedTable Table
	IXTable       Table
	IYTable       Table
	IXBitTable    Table
	IYBitTable    Table
)

// NOP1 is the 1-byte/4-cycle NOP used for unaffected DD/FD opcodes and
// for prefix-byte slots inside the main/ix/iy tables (spec.md §6.1).
var NOP1 = Instruction{Exec: execNop1, Cycles: 4, Size: 1, Mnemonic: "NOP"}

// NOP2 is the 2-byte/8-cycle NOP representing an unrecognized
// ED-prefixed code (spec.md §6.1). Its own Exec, distinct from NOP1's,
// advances PC past both the ED byte and the unrecognized second byte —
// sharing execNop1 here would strand the second byte unconsumed for the
// next Step() to misdecode as a fresh opcode.
var NOP2 = Instruction{Exec: execNop2, Cycles: 8, Size: 2, Mnemonic: "NOP"}

func execNop1(c *CPU, addr uint16) {
	c.PC = addr + 1
}

func execNop2(c *CPU, addr uint16) {
	c.PC = addr + 2
}
