package z80

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Each scenario below starts from all-registers-zero, F=0, SP=0xFFFF,
// PC=0x0000, matching the walkthroughs used to sanity check the core
// end to end rather than one opcode at a time.
func newScenarioCPU(bus *testBus) *CPU {
	c := New(bus, DiscardLogger{})
	c.SP = 0xFFFF
	return c
}

func TestScenarioLoadImmediateAddFlags(t *testing.T) {
	bus := newTestBus()
	bus.load(0, 0x3E, 0x05, 0xC6, 0x03) // LD A,5 ; ADD A,3
	c := newScenarioCPU(bus)

	cost := c.Step()
	require.Equal(t, 7, cost)
	cost = c.Step()
	require.Equal(t, 7, cost)

	require.EqualValues(t, 0x08, c.A)
	require.EqualValues(t, 4, c.PC)
	require.Zero(t, c.F&FlagZ)
	require.Zero(t, c.F&FlagS)
	require.Zero(t, c.F&FlagH)
	require.Zero(t, c.F&FlagC)
	require.Zero(t, c.F&FlagV)
	require.Zero(t, c.F&FlagN)
}

func TestScenarioDecZeroAndHalfCarry(t *testing.T) {
	bus := newTestBus()
	bus.load(0, 0x06, 0x01, 0x05) // LD B,1 ; DEC B
	c := newScenarioCPU(bus)

	c.Step()
	c.Step()

	require.EqualValues(t, 0x00, c.B)
	require.EqualValues(t, 3, c.PC)
	require.NotZero(t, c.F&FlagZ)
	require.Zero(t, c.F&FlagS)
	require.Zero(t, c.F&FlagH)
	require.NotZero(t, c.F&FlagN)
	require.Zero(t, c.F&FlagV)
	require.Zero(t, c.F&FlagC)
}

func TestScenarioRelativeJumpTaken(t *testing.T) {
	bus := newTestBus()
	bus.load(0, 0x18, 0x02, 0x00, 0x00, 0x3E, 0x42) // JR +2 ; .. ; LD A,0x42
	c := newScenarioCPU(bus)

	cost := c.Step()
	require.Equal(t, 12, cost)
	require.EqualValues(t, 4, c.PC)

	cost = c.Step()
	require.Equal(t, 7, cost)
	require.EqualValues(t, 6, c.PC)
	require.EqualValues(t, 0x42, c.A)
}

func TestScenarioCallPushRet(t *testing.T) {
	bus := newTestBus()
	bus.load(0, 0xCD, 0x06, 0x00, 0x00, 0x00, 0x00, 0xC9) // CALL 0x0006 ; .. ; RET
	c := newScenarioCPU(bus)

	cost := c.Step()
	require.Equal(t, 17, cost)
	require.EqualValues(t, 0x0006, c.PC)

	cost = c.Step()
	require.Equal(t, 10, cost)
	require.EqualValues(t, 0x0003, c.PC)
	require.EqualValues(t, 0xFFFF, c.SP)
}

func TestScenarioExAFThenExx(t *testing.T) {
	bus := newTestBus()
	bus.load(0, 0x08, 0xD9) // EX AF,AF' ; EXX
	c := newScenarioCPU(bus)
	c.A, c.F = 0x11, 0x20
	c.SetPair(PairBC, 0x2233)
	c.SetPair(PairDE, 0x4455)
	c.SetPair(PairHL, 0x6677)

	cost := c.Step()
	require.Equal(t, 4, cost)
	require.EqualValues(t, 0x00, c.A)
	require.EqualValues(t, 0x00, c.F)
	require.EqualValues(t, 0x11, c.A_)
	require.EqualValues(t, 0x20, c.F_)

	cost = c.Step()
	require.Equal(t, 4, cost)
	require.EqualValues(t, 0x0000, c.GetPair(PairBC))
	require.EqualValues(t, 0x0000, c.GetPair(PairDE))
	require.EqualValues(t, 0x0000, c.GetPair(PairHL))
	require.EqualValues(t, 0x2233, uint16(c.B_)<<8|uint16(c.C_))
	require.EqualValues(t, 0x4455, uint16(c.D_)<<8|uint16(c.E_))
	require.EqualValues(t, 0x6677, uint16(c.H_)<<8|uint16(c.L_))
}

func TestScenarioLDIRCopiesFourBytes(t *testing.T) {
	bus := newTestBus()
	bus.load(0, 0xED, 0xB0) // LDIR
	bus.load(0x0010, 0xAA, 0xBB, 0xCC, 0xDD)
	c := newScenarioCPU(bus)
	c.SetPair(PairHL, 0x0010)
	c.SetPair(PairDE, 0x0020)
	c.SetPair(PairBC, 0x0004)

	wantCosts := []int{21, 21, 21, 16}
	total := 0
	for _, want := range wantCosts {
		cost := c.Step()
		require.Equal(t, want, cost)
		total += cost
	}
	require.Equal(t, 79, total)

	require.EqualValues(t, []uint8{0xAA, 0xBB, 0xCC, 0xDD}, bus.mem[0x0020:0x0024])
	require.EqualValues(t, 0x0014, c.GetPair(PairHL))
	require.EqualValues(t, 0x0024, c.GetPair(PairDE))
	require.EqualValues(t, 0x0000, c.GetPair(PairBC))
	require.Zero(t, c.F&FlagV)
	require.Zero(t, c.F&FlagN)
	require.Zero(t, c.F&FlagH)
}
