package cpu

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"mosey/mem"
)

// testCpu returns a Cpu on zeroed memory with the pc parked at start.
func testCpu(start uint16) *Cpu {
	c := New(&mem.Memory{})
	c.ResetTo(start)
	return c
}

// assemble converts a human-readable hex string ("A9 84 ...") into a byte
// image.
func assemble(s string) []byte {
	fields := strings.Fields(s)
	image := make([]byte, len(fields))
	for i, f := range fields {
		b, err := strconv.ParseUint(f, 16, 8)
		if err != nil {
			panic(err)
		}
		image[i] = byte(b)
	}
	return image
}

func TestResetState(t *testing.T) {
	c := New(&mem.Memory{})

	assert.Equal(t, c.ProgramCounter, uint16(ResetVector))
	assert.Equal(t, c.Stack, byte(0xFF))
	assert.Equal(t, c.Accumulator, byte(0))
	assert.Equal(t, c.X, byte(0))
	assert.Equal(t, c.Y, byte(0))
	assert.Equal(t, c.Flags, Status{})

	c.ResetTo(0xFF00)
	assert.Equal(t, c.ProgramCounter, uint16(0xFF00))
}

func TestResetLeavesMemoryAlone(t *testing.T) {
	c := New(&mem.Memory{})
	c.Bus.Write(0x1234, 0xAB)

	c.Reset()
	assert.Equal(t, c.Bus.Read(0x1234), byte(0xAB))
}

func TestExecuteZeroBudgetDoesNothing(t *testing.T) {
	c := testCpu(0xFF00)

	consumed, err := c.Execute(0)

	assert.NoError(t, err)
	assert.Equal(t, consumed, 0)
	assert.Equal(t, c.ProgramCounter, uint16(0xFF00))
}

func TestUnknownOpcodeStopsExecution(t *testing.T) {
	c := testCpu(0xFF00)
	c.Bus.Write(0xFF00, 0x02) // not a documented opcode

	consumed, err := c.Execute(4)

	assert.Equal(t, err, UnknownOpcodeError{Opcode: 0x02})
	assert.EqualError(t, err, "unknown opcode 0x02")
	// the fetch cycle is already spent and the pc has moved past the byte
	assert.Equal(t, consumed, 1)
	assert.Equal(t, c.ProgramCounter, uint16(0xFF01))
}

func TestLoadProgram(t *testing.T) {
	// first two bytes are the little-endian load address
	program := assemble("00 10 A9 FF 85 90 8D 00 80 49 CC 4C 02 10")

	c := New(&mem.Memory{})
	start := c.LoadProgram(program)

	assert.Equal(t, start, uint16(0x1000))
	assert.Equal(t, c.Bus.Data[0x1000:0x100C], program[2:])
	assert.Equal(t, c.Bus.Read(0x0FFF), byte(0))
	assert.Equal(t, c.Bus.Read(0x100C), byte(0))
}

// Multiplies 10 by 3 with repeated addition: the result lands in A and in
// 0x0002, X and Y are left as loop bookkeeping.
func TestExecutingLoadedProgram(t *testing.T) {
	program := assemble("00 80" + // load at 0x8000
		" A2 0A 8E 00 00 A2 03 8E 01 00 AC 00 00 A9 00 18" +
		" 6D 01 00 88 D0 FA 8D 02 00")

	c := New(&mem.Memory{})
	start := c.LoadProgram(program)
	c.ResetTo(start)

	// preamble 20, ten ADC/DEY rounds with nine taken branches 89, STA 4
	consumed, err := c.Execute(113)

	assert.NoError(t, err)
	assert.Equal(t, consumed, 113)
	assert.Equal(t, c.Accumulator, byte(30))
	assert.Equal(t, c.X, byte(3))
	assert.Equal(t, c.Y, byte(0))
	assert.Equal(t, c.Bus.Read(0x0000), byte(10))
	assert.Equal(t, c.Bus.Read(0x0001), byte(3))
	assert.Equal(t, c.Bus.Read(0x0002), byte(30))
	assert.Equal(t, c.ProgramCounter, start+25)
}

func TestImmediateLoadSetsNegative(t *testing.T) {
	c := New(&mem.Memory{}) // default vector 0xFFFC
	c.Bus.Load(0xFFFC, assemble("A9 84"))

	consumed, err := c.Execute(2)

	assert.NoError(t, err)
	assert.Equal(t, consumed, 2)
	assert.Equal(t, c.Accumulator, byte(0x84))
	assert.False(t, c.Flags.Zero)
	assert.True(t, c.Flags.Negative)
}

func TestJsrRtsRoundTrip(t *testing.T) {
	c := testCpu(0xFF00)
	c.Bus.Load(0xFF00, assemble("20 00 80")) // JSR 0x8000
	c.Bus.Write(0x8000, 0x60)                // RTS
	c.Bus.Load(0xFF03, assemble("A9 42"))    // LDA #0x42

	consumed, err := c.Execute(14)

	assert.NoError(t, err)
	assert.Equal(t, consumed, 14)
	assert.Equal(t, c.Accumulator, byte(0x42))
	assert.Equal(t, c.Stack, byte(0xFF)) // fully unwound
	assert.Equal(t, c.ProgramCounter, uint16(0xFF05))
}

// JSR pushes the address of its own last byte; RTS adds one.
func TestJsrPushesReturnAddressMinusOne(t *testing.T) {
	c := testCpu(0xFF00)
	c.Bus.Load(0xFF00, assemble("20 00 80"))

	consumed, err := c.Execute(6)

	assert.NoError(t, err)
	assert.Equal(t, consumed, 6)
	assert.Equal(t, c.ProgramCounter, uint16(0x8000))
	assert.Equal(t, c.Stack, byte(0xFD))
	assert.Equal(t, c.Bus.Read(0x01FF), byte(0xFF)) // high byte of 0xFF02
	assert.Equal(t, c.Bus.Read(0x01FE), byte(0x02)) // low byte
}

func TestIndexedReadPageCross(t *testing.T) {
	c := testCpu(0xFF00)
	c.X = 0xFF
	c.Bus.Load(0xFF00, assemble("BD 01 80")) // LDA 0x8001,X -> 0x8100
	c.Bus.Write(0x8100, 0x37)

	consumed, err := c.Execute(5)

	assert.NoError(t, err)
	assert.Equal(t, consumed, 5) // not 4: the index carried into a new page
	assert.Equal(t, c.Accumulator, byte(0x37))
}

func TestIndexedReadSamePage(t *testing.T) {
	c := testCpu(0xFF00)
	c.X = 0x01
	c.Bus.Load(0xFF00, assemble("BD 01 80"))
	c.Bus.Write(0x8002, 0x37)

	consumed, err := c.Execute(4)

	assert.NoError(t, err)
	assert.Equal(t, consumed, 4)
	assert.Equal(t, c.Accumulator, byte(0x37))
}

func TestBranchNotTaken(t *testing.T) {
	c := testCpu(0xFF00)
	c.Flags.Zero = false
	c.Bus.Load(0xFF00, assemble("F0 01")) // BEQ +1

	consumed, err := c.Execute(2)

	assert.NoError(t, err)
	assert.Equal(t, consumed, 2)
	assert.Equal(t, c.ProgramCounter, uint16(0xFF02))
}

func TestBranchTakenWithinPage(t *testing.T) {
	c := testCpu(0xFF00)
	c.Flags.Zero = true
	c.Bus.Load(0xFF00, assemble("F0 01"))

	consumed, err := c.Execute(3)

	assert.NoError(t, err)
	assert.Equal(t, consumed, 3)
	assert.Equal(t, c.ProgramCounter, uint16(0xFF03))
}

func TestBranchTakenAcrossPage(t *testing.T) {
	c := testCpu(0xFEFD)
	c.Flags.Zero = true
	c.Bus.Load(0xFEFD, assemble("F0 01"))

	consumed, err := c.Execute(4)

	assert.NoError(t, err)
	assert.Equal(t, consumed, 4)
	assert.Equal(t, c.ProgramCounter, uint16(0xFF00))
}

func TestBranchBackwards(t *testing.T) {
	c := testCpu(0xFFCC)
	c.Flags.Zero = true
	c.Bus.Load(0xFFCC, assemble("F0 FE")) // BEQ -2: branch onto itself

	consumed, err := c.Execute(3)

	assert.NoError(t, err)
	assert.Equal(t, consumed, 3)
	assert.Equal(t, c.ProgramCounter, uint16(0xFFCC))
}

// Every documented addressing behaviour with a variable cost, against the
// exact cycle count and pc delta it must produce on an otherwise-zero
// machine.
func TestCycleCosts(t *testing.T) {
	cases := []struct {
		name    string
		image   string
		x, y    byte
		cycles  int
		pcDelta uint16
	}{
		{"LDA imm", "A9 01", 0, 0, 2, 2},
		{"LDA zp", "A5 42", 0, 0, 3, 2},
		{"LDA zp,X", "B5 42", 5, 0, 4, 2},
		{"LDX zp,Y", "B6 42", 0, 5, 4, 2},
		{"LDA abs", "AD 00 44", 0, 0, 4, 3},
		{"LDA abs,X same page", "BD 00 44", 1, 0, 4, 3},
		{"LDA abs,X page cross", "BD FF 44", 1, 0, 5, 3},
		{"LDA abs,Y page cross", "B9 FF 44", 0, 1, 5, 3},
		{"LDA (ind,X)", "A1 02", 4, 0, 6, 2},
		{"LDA (ind),Y same page", "B1 02", 0, 4, 5, 2},
		{"STA zp", "85 42", 0, 0, 3, 2},
		{"STA abs", "8D 00 44", 0, 0, 4, 3},
		{"STA abs,X always pays", "9D 00 44", 1, 0, 5, 3},
		{"STA abs,Y always pays", "99 00 44", 0, 1, 5, 3},
		{"STA (ind,X)", "81 02", 4, 0, 6, 2},
		{"STA (ind),Y always pays", "91 02", 0, 4, 6, 2},
		{"ASL A", "0A", 0, 0, 2, 1},
		{"ASL zp", "06 42", 0, 0, 5, 2},
		{"ASL zp,X", "16 42", 5, 0, 6, 2},
		{"ASL abs", "0E 00 44", 0, 0, 6, 3},
		{"ASL abs,X always pays", "1E 00 44", 1, 0, 7, 3},
		{"INC abs,X always pays", "FE 00 44", 1, 0, 7, 3},
		{"DEC zp", "C6 42", 0, 0, 5, 2},
		{"BIT zp", "24 42", 0, 0, 3, 2},
		{"BIT abs", "2C 00 44", 0, 0, 4, 3},
		{"NOP", "EA", 0, 0, 2, 1},
		{"CLC", "18", 0, 0, 2, 1},
		{"INX", "E8", 0, 0, 2, 1},
		{"TAX", "AA", 0, 0, 2, 1},
		{"TXS", "9A", 0, 0, 2, 1},
		{"PHA", "48", 0, 0, 3, 1},
		{"PLA", "68", 0, 0, 4, 1},
		{"PHP", "08", 0, 0, 3, 1},
		{"PLP", "28", 0, 0, 4, 1},
		{"JMP abs", "4C 00 44", 0, 0, 3, 0},
		{"JMP ind", "6C 00 44", 0, 0, 5, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			const start = 0x8000
			c := testCpu(start)
			c.X, c.Y = tc.x, tc.y
			c.Bus.Load(start, assemble(tc.image))

			consumed, err := c.Execute(1)

			assert.NoError(t, err)
			assert.Equal(t, consumed, tc.cycles)
			if tc.pcDelta > 0 {
				assert.Equal(t, c.ProgramCounter, uint16(start)+tc.pcDelta)
			}
		})
	}
}

// An indexed read costs exactly one cycle more than the equivalent
// un-indexed read of the same target, and only when the index carries into a
// new page.
func TestIndexedReadCostMatchesPlainRead(t *testing.T) {
	run := func(image string, x byte) int {
		c := testCpu(0x9000)
		c.X = x
		c.Bus.Load(0x9000, assemble(image))
		consumed, err := c.Execute(1)
		assert.NoError(t, err)
		return consumed
	}

	// same page: 0x4410+0x20 = 0x4430
	assert.Equal(t, run("BD 10 44", 0x20), run("AD 30 44", 0))
	// crossed: 0x44F0+0x20 = 0x4510
	assert.Equal(t, run("BD F0 44", 0x20), run("AD 10 45", 0)+1)
}

func TestZeroPageXWraps(t *testing.T) {
	c := testCpu(0xFF00)
	c.X = 0xFF
	c.Bus.Load(0xFF00, assemble("B5 80")) // 0x80+0xFF wraps to 0x7F
	c.Bus.Write(0x007F, 0x37)

	consumed, err := c.Execute(4)

	assert.NoError(t, err)
	assert.Equal(t, consumed, 4)
	assert.Equal(t, c.Accumulator, byte(0x37))
}

func TestIndirectXPointerWrapsInZeroPage(t *testing.T) {
	c := testCpu(0xFF00)
	c.X = 0x01
	c.Bus.Load(0xFF00, assemble("A1 FE")) // pointer base 0xFE+1 = 0xFF
	c.Bus.Write(0x00FF, 0x00)             // low byte
	c.Bus.Write(0x0000, 0x80)             // high byte wraps to 0x00, not 0x0100
	c.Bus.Write(0x8000, 0x37)

	consumed, err := c.Execute(6)

	assert.NoError(t, err)
	assert.Equal(t, consumed, 6)
	assert.Equal(t, c.Accumulator, byte(0x37))
}

func TestIndirectYPointerWrapsInZeroPage(t *testing.T) {
	c := testCpu(0xFF00)
	c.Y = 0x04
	c.Bus.Load(0xFF00, assemble("B1 FF")) // pointer at 0xFF/0x00
	c.Bus.Write(0x00FF, 0x00)
	c.Bus.Write(0x0000, 0x80)
	c.Bus.Write(0x8004, 0x37)

	consumed, err := c.Execute(5)

	assert.NoError(t, err)
	assert.Equal(t, consumed, 5)
	assert.Equal(t, c.Accumulator, byte(0x37))
}

func TestIndirectYPageCross(t *testing.T) {
	c := testCpu(0xFF00)
	c.Y = 0xFF
	c.Bus.Load(0xFF00, assemble("B1 02"))
	c.Bus.Write(0x0002, 0x01)
	c.Bus.Write(0x0003, 0x80) // 0x8001+0xFF = 0x8100
	c.Bus.Write(0x8100, 0x37)

	consumed, err := c.Execute(6)

	assert.NoError(t, err)
	assert.Equal(t, consumed, 6)
	assert.Equal(t, c.Accumulator, byte(0x37))
}

func TestJmpIndirect(t *testing.T) {
	c := testCpu(0xFF00)
	c.Bus.Load(0xFF00, assemble("6C 00 30"))
	c.Bus.WriteWord(0x3000, 0x8000)

	consumed, err := c.Execute(5)

	assert.NoError(t, err)
	assert.Equal(t, consumed, 5)
	assert.Equal(t, c.ProgramCounter, uint16(0x8000))
}

// JMP (0xXXFF) reads the pointer's high byte from the start of the same
// page, replicating the hardware quirk.
func TestJmpIndirectPageBoundaryBug(t *testing.T) {
	c := testCpu(0xFF00)
	c.Bus.Load(0xFF00, assemble("6C FF 30"))
	c.Bus.Write(0x30FF, 0x34) // low byte
	c.Bus.Write(0x3000, 0x12) // high byte, NOT 0x3100
	c.Bus.Write(0x3100, 0x99)

	consumed, err := c.Execute(5)

	assert.NoError(t, err)
	assert.Equal(t, consumed, 5)
	assert.Equal(t, c.ProgramCounter, uint16(0x1234))
}

func TestStepRunsExactlyOneInstruction(t *testing.T) {
	c := testCpu(0xFF00)
	c.Bus.Load(0xFF00, assemble("AD 00 44 EA"))

	cost, err := c.Step()

	assert.NoError(t, err)
	assert.Equal(t, cost, 4)
	assert.Equal(t, c.ProgramCounter, uint16(0xFF03))
}
