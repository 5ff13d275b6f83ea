package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(1).
	Width(26).
	Height(12).
	BorderForeground(lipgloss.Color("62"))

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Width(26).
	Align(lipgloss.Center).
	Foreground(lipgloss.Color("205"))

var statusStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("226")).
	Bold(true)
