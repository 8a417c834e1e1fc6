package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ANSI 256 palette used by terminal output.
var (
	colorAccent = lipgloss.Color("36")
	colorOK     = lipgloss.Color("35")
	colorFail   = lipgloss.Color("167")
	colorValue  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorMuted  = lipgloss.Color("240")
)

var (
	StyleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	StyleHighlight = lipgloss.NewStyle().Foreground(colorAccent)
	StyleDim       = lipgloss.NewStyle().Foreground(colorMuted)
	StyleValue     = lipgloss.NewStyle().Foreground(colorValue)
	StyleNumber    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorOK)
	styleIconError   = lipgloss.NewStyle().Foreground(colorFail)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconArrow   = "→"
)

// printSuccess prints a check mark followed by the formatted message.
func printSuccess(format string, args ...any) {
	fmt.Println(styleIconSuccess.Render(iconSuccess), fmt.Sprintf(format, args...))
}

// printFile prints an indented arrow pointing at a written file.
func printFile(path string) {
	fmt.Println(" ", StyleDim.Render(iconArrow), StyleValue.Render(path))
}
