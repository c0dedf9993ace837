package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	slotFullStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1A1A1A")).
			Background(lipgloss.Color("#98FB98")).
			Padding(0, 1)

	slotEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Padding(0, 1)

	flagOnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	flagOffStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	eventStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	rig    *rig
	input  textinput.Model
	events []string
}

func newInteractiveModel(r *rig) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "value"
	ti.CharLimit = 8
	ti.Width = 10
	ti.Focus()

	return &interactiveModel{rig: r, input: ti}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) log(format string, args ...any) {
	m.events = append(m.events, fmt.Sprintf(format, args...))
	if len(m.events) > 8 {
		m.events = m.events[len(m.events)-8:]
	}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "enter", "w":
		v := m.rig.nextVal
		if s := strings.TrimSpace(m.input.Value()); s != "" {
			parsed, err := strconv.Atoi(s)
			if err != nil {
				m.log("bad value %q", s)
				return m, nil
			}
			v = parsed
		}
		m.rig.nextVal = v + 1
		m.input.SetValue("")
		if m.rig.writeTick(v) {
			m.log("write tick: accepted %d", v)
		} else {
			m.log("write tick: DROPPED %d (full)", v)
		}
		return m, nil

	case "r":
		if v, ok := m.rig.readTick(); ok {
			m.log("read tick: %d", v)
		} else {
			m.log("read tick: empty, stale data ignored")
		}
		return m, nil

	case "W":
		m.rig.wdom.Tick()
		m.log("write tick: idle")
		return m, nil

	case "R":
		m.rig.rdom.Tick()
		m.log("read tick: idle")
		return m, nil

	case "x":
		m.rig.wdom.Reset()
		m.rig.rdom.Reset()
		m.log("both domains reset")
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func flagView(name string, on bool) string {
	if on {
		return flagOnStyle.Render(name)
	}
	return flagOffStyle.Render(name)
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	f := m.rig.fifo
	b.WriteString(titleStyle.Render("fifosim — dual-clock FIFO"))
	b.WriteString("\n\n")

	// Ring occupancy. Slot contents are shown for occupied slots only;
	// the rest of the RAM is stale by design.
	occ := f.Occupancy()
	raddr := int(f.ReadAddr())
	b.WriteString("  ")
	for i := 0; i < f.Depth(); i++ {
		slot := (raddr + i) % f.Depth()
		cell := fmt.Sprintf("[%d]", slot)
		if i < occ {
			cell = fmt.Sprintf("[%d]=%d", slot, f.Slot(slot))
			b.WriteString(slotFullStyle.Render(cell))
		} else {
			b.WriteString(slotEmptyStyle.Render(cell))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "  occupancy %d/%d   %s %s\n", occ, f.Depth(),
		flagView("FULL", f.FullFlag().Read()),
		flagView("EMPTY", f.EmptyFlag().Read()))
	fmt.Fprintf(&b, "  write clock %-5d addr %-3d | read clock %-5d addr %-3d dataOut %d\n",
		m.rig.wdom.Ticks(), f.WriteAddr(),
		m.rig.rdom.Ticks(), f.ReadAddr(), f.DataOut().Read())
	b.WriteString("\n")

	for _, e := range m.events {
		b.WriteString("  " + eventStyle.Render(e) + "\n")
	}
	b.WriteString("\n  next value: " + m.input.View() + "\n\n")
	b.WriteString(helpStyle.Render("  w/enter write tick · r read tick · W/R idle ticks · x reset · q quit"))
	b.WriteString("\n")

	return b.String()
}

func runInteractive(depth int) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive mode requires a terminal")
	}

	r, err := newRig(depth)
	if err != nil {
		return err
	}

	p := tea.NewProgram(newInteractiveModel(r))
	_, err = p.Run()
	return err
}
