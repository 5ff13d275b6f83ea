// Package tui is an interactive stepper for GOTO programs: a terminal
// view of the register file, the program listing, and the executed
// instruction history, advanced one instruction at a time.
package tui

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hwse/goto/emulator"
)

// runLimit bounds the (r)un command so a program without a reachable
// STOP cannot wedge the UI.
const runLimit = 100000

type model struct {
	emu     *emulator.Emulator
	history []string
	status  string
	halted  bool
}

func InitialModel(emu *emulator.Emulator) model {
	return model{
		emu:     emu,
		history: make([]string, 0),
		status:  "ready",
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "s":
			m.step()
			return m, nil
		case "r":
			for n := 0; n < runLimit && !m.halted; n++ {
				m.step()
			}
			if !m.halted {
				m.status = "run limit reached"
			}
			return m, nil
		}
	}
	return m, nil
}

// step advances the machine one instruction and records it.
func (m *model) step() {
	if m.halted {
		return
	}

	inst, err := m.emu.Program.Fetch(m.emu.Machine.Pc)
	if err == nil {
		m.history = append(m.history, fmt.Sprintf("%d: %v", m.emu.Machine.Pc, inst))
	}

	done, err := m.emu.Step()
	if err != nil {
		m.halted = true
		m.status = err.Error()
		return
	}
	if done {
		m.halted = true
		m.status = "halted"
	}
}

func (m model) buildRegisters() string {
	var stateBuilder strings.Builder
	for cell, value := range m.emu.Machine.Memory {
		fmt.Fprintf(&stateBuilder, "r%d: %d\n", cell, value)
	}
	fmt.Fprintf(&stateBuilder, "pc: %d", m.emu.Machine.Pc)
	return stateBuilder.String()
}

func (m model) buildProgram() string {
	var stateBuilder strings.Builder
	for addr, inst := range m.emu.Program.All() {
		if addr == m.emu.Machine.Pc {
			fmt.Fprintf(&stateBuilder, "-> %2d  %v\n", addr, inst)
		} else {
			fmt.Fprintf(&stateBuilder, "   %2d  %v\n", addr, inst)
		}
	}
	return stateBuilder.String()
}

func (m model) buildHistory() string {
	var stateBuilder strings.Builder
	curr := len(m.history) - 1
	for i := range m.history {
		if curr != i {
			fmt.Fprintf(&stateBuilder, "   %s\n", m.history[i])
		} else {
			fmt.Fprintf(&stateBuilder, "*  %s\n", m.history[i])
		}
	}
	return stateBuilder.String()
}

func (m model) View() string {
	titleContent := titleStyle.
		Foreground(lipgloss.Color("20")).
		Align(lipgloss.Left).
		Height(1).
		Render("goto - GOTO machine stepper")

	regContent := titleStyle.Render("Registers") + "\n" + boxStyle.Render(m.buildRegisters())
	progContent := titleStyle.Render("Program") + "\n" + boxStyle.Render(m.buildProgram())
	histContent := titleStyle.Render("History") + "\n" + boxStyle.Render(m.buildHistory())

	cmd := titleStyle.Render("Commands") + "\n" + boxStyle.Height(4).Render("(q)uit \n(s)tep \n(r)un")
	status := statusStyle.Render(m.status)

	mainArea := lipgloss.JoinHorizontal(lipgloss.Top, regContent, progContent, histContent)

	fullScreen := lipgloss.JoinVertical(lipgloss.Left, titleContent, mainArea, cmd, status)

	return lipgloss.Place(90, 24, lipgloss.Center, lipgloss.Center, fullScreen)
}

// StartUI runs the stepper over a reset emulator.
func StartUI(emu *emulator.Emulator) {
	p := tea.NewProgram(InitialModel(emu), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
