package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cppgm/styletools/internal/domain"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	dim     = lipgloss.Color("#6B7280") // muted gray
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	addStyle    = lipgloss.NewStyle().Foreground(success)
	removeStyle = lipgloss.NewStyle().Foreground(danger)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(info)
	dimStyle    = lipgloss.NewStyle().Foreground(dim)
	runStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent)
)

// RenderDiffLines joins diff lines, one per output line. With color set, file
// headers are bold, removals red and additions green.
func RenderDiffLines(lines []string, color bool) string {
	var b strings.Builder
	for _, line := range lines {
		if color {
			line = styleDiffLine(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func styleDiffLine(line string) string {
	switch {
	case strings.HasPrefix(line, "+++ "), strings.HasPrefix(line, "--- "):
		return headerStyle.Render(line)
	case domain.Added(line):
		return addStyle.Render(line)
	case domain.Removed(line):
		return removeStyle.Render(line)
	default:
		return line
	}
}

// RenderSkipped lists the files a plan left out.
func RenderSkipped(skipped []domain.SkippedPatch) string {
	var b strings.Builder
	for _, s := range skipped {
		b.WriteString(dimStyle.Render(fmt.Sprintf("skip %s (%s)", s.Path, s.Reason)))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderRunning announces a command about to be executed.
func RenderRunning(cmd domain.FormatCommand) string {
	return runStyle.Render("+ "+cmd.String()) + "\n"
}
