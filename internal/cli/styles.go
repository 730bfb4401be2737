package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ytget/expiration-tracker/internal/expiry"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	urgentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	expiredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	neverStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// levelStyle picks the colour for a remaining-time level
func levelStyle(level expiry.Level) lipgloss.Style {
	switch level {
	case expiry.LevelExpired:
		return expiredStyle
	case expiry.LevelUrgent:
		return urgentStyle
	case expiry.LevelNever:
		return neverStyle
	case expiry.LevelUnknown:
		return mutedStyle
	default:
		return lipgloss.NewStyle()
	}
}

func ok(w io.Writer, msg string) {
	fmt.Fprintln(w, successStyle.Render("✔ "+msg))
}

func fail(w io.Writer, msg string) {
	fmt.Fprintln(w, errorStyle.Render("✖ "+msg))
}

func panel(lines []string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return border.Render(strings.Join(lines, "\n"))
}

// pad right-pads s to width display cells
func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
