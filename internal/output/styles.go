package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette — named constants for the ANSI 256 colors used in the CLI.
var (
	// ColorCyan is used for identifiable nouns: component names, namespaces, labels.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for satisfied deploy gates.
	ColorGreen = lipgloss.Color("82")

	// ColorBoldRed is used for failed deploy gates.
	ColorBoldRed = lipgloss.Color("204")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (component names, namespaces, labels).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleOK styles satisfied gate markers.
	StyleOK = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)

	// StyleFail styles unsatisfied gate markers.
	StyleFail = lipgloss.NewStyle().Foreground(ColorBoldRed).Bold(true)

	// StyleDim styles structural chrome (separators, counts).
	StyleDim = lipgloss.NewStyle().Faint(true)
)

// stdoutIsTerminal is a test seam for TTY detection.
var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Styled applies the style only when stdout is a terminal, so piped output
// stays machine-readable.
func Styled(style lipgloss.Style, s string) string {
	if !stdoutIsTerminal() {
		return s
	}
	return style.Render(s)
}
