// Package output renders insights for the terminal.
package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	colorPrimary = lipgloss.Color("#64b5f6")
	colorGood    = lipgloss.Color("#66bb6a")
	colorBad     = lipgloss.Color("#ef5350")
	colorMuted   = lipgloss.Color("#888888")
)

var (
	styleTitle  = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	styleHeader = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	styleUp     = lipgloss.NewStyle().Foreground(colorGood)
	styleDown   = lipgloss.NewStyle().Foreground(colorBad)
	styleMuted  = lipgloss.NewStyle().Foreground(colorMuted)
	styleLabel  = lipgloss.NewStyle().Width(18)
	styleValue  = lipgloss.NewStyle().Bold(true)
	styleBox    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)
)

var noColor bool

// SetNoColor swaps every style for a plain one when disabled is true.
func SetNoColor(disabled bool) {
	noColor = disabled
	if !disabled {
		return
	}
	plain := lipgloss.NewStyle()
	styleTitle = plain
	styleHeader = plain
	styleUp = plain
	styleDown = plain
	styleMuted = plain
	styleLabel = plain.Width(18)
	styleValue = plain
	styleBox = plain.Border(lipgloss.NormalBorder()).Padding(0, 1)
}

// IsNoColor reports whether colour output is disabled.
func IsNoColor() bool {
	return noColor
}

// StdoutIsTerminal reports whether stdout is attached to a terminal.
func StdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
