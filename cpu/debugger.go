package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"mosey/gfx"
)

// A Debugger steps the Cpu one instruction at a time in a TUI: the page
// table around the pc, the registers and flags, the current opcode, and --
// when a graphics adapter is attached -- the framebuffer.
type Debugger struct {
	Cpu *Cpu

	// Adapter, when non-nil, receives any non-zero instruction word the
	// emulated program leaves at GfxRegister after each step. The register
	// is zeroed once consumed; this is the host-side half of the
	// memory-mapped convention.
	Adapter     *gfx.Adapter
	GfxRegister uint16
}

type model struct {
	dbg *Debugger

	prevPC   uint16
	lastCost int
	total    int
	err      error
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case " ", "j":
			c := m.dbg.Cpu
			m.prevPC = c.ProgramCounter
			cost, err := c.Step()
			m.lastCost = cost
			m.total += cost
			if err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.dbg.pump()
		}
	}
	return m, nil
}

// pump drains the graphics register into the adapter.
func (d *Debugger) pump() {
	if d.Adapter == nil {
		return
	}
	if word := d.Cpu.Bus.ReadWord(d.GfxRegister); word != 0 {
		d.Adapter.Submit(word)
		d.Cpu.Bus.WriteWord(d.GfxRegister, 0)
	}
}

// renderRow renders 16 bytes of memory as one line, highlighting the pc.
func (m model) renderRow(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := range uint16(16) {
		b := m.dbg.Cpu.Bus.Read(start + i)
		if start+i == m.dbg.Cpu.ProgramCounter {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

// pageTable shows the rows around the pc, plus the top of the zero page and
// the stack page.
func (m model) pageTable() string {
	header := "addr | "
	for b := range 16 {
		header += fmt.Sprintf("  %01x  ", b)
	}
	rows := []string{header}

	starts := []uint16{0x0000, 0x0010, stackPage | uint16(m.dbg.Cpu.Stack)&0xf0}
	pc := m.dbg.Cpu.ProgramCounter &^ 0x000f
	for i := range uint16(4) {
		starts = append(starts, pc+16*i)
	}
	for _, start := range starts {
		rows = append(rows, m.renderRow(start))
	}
	return strings.Join(rows, "\n")
}

func (m model) status() string {
	c := m.dbg.Cpu
	var flags string
	for _, f := range []bool{
		c.Flags.Negative,
		c.Flags.Overflow,
		c.Flags.BreakCommand,
		c.Flags.DecimalMode,
		c.Flags.InterruptDisable,
		c.Flags.Zero,
		c.Flags.Carry,
	} {
		if f {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (%04x)
SP: %02x
 A: %02x
 X: %02x
 Y: %02x
N V B D I Z C
%s
cycles: %d (+%d)
`,
		c.ProgramCounter, m.prevPC,
		c.Stack,
		c.Accumulator,
		c.X,
		c.Y,
		flags,
		m.total, m.lastCost,
	)
}

// framebuffer renders the adapter grid as colored cells.
func (m model) framebuffer() string {
	if m.dbg.Adapter == nil {
		return ""
	}
	grid := m.dbg.Adapter.Snapshot()
	var sb strings.Builder
	for _, row := range grid {
		for _, p := range row {
			color := lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", p.R, p.G, p.B))
			sb.WriteString(lipgloss.NewStyle().Background(color).Render("  "))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
			m.framebuffer(),
		),
		"",
		spew.Sdump(Opcodes[m.dbg.Cpu.Bus.Read(m.dbg.Cpu.ProgramCounter)]),
	)
}

// Run starts the interactive session; space or j steps one instruction, q
// quits. Returns the error that stopped execution, if any.
func (d *Debugger) Run() error {
	final, err := tea.NewProgram(model{dbg: d}).Run()
	if err != nil {
		return err
	}
	return final.(model).err
}
