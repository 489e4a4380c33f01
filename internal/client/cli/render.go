package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ewasteportal/ewastecli/internal/client/notify"
)

// Styles holds the lipgloss styles used by the shell.
type Styles struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A")),
		Header:  lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Faint(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC107")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935")),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("#2196F3")),
	}
}

// severityStyle maps a notification severity to its display style.
func (s Styles) severityStyle(sev notify.Severity) lipgloss.Style {
	switch sev {
	case notify.SeveritySuccess:
		return s.Success
	case notify.SeverityWarning:
		return s.Warning
	case notify.SeverityError:
		return s.Error
	}
	return s.Info
}

// renderTable renders headers and rows as a plain aligned table. Column
// widths are taken from the widest cell.
func renderTable(s Styles, title string, headers []string, rows [][]string) string {
	var sb strings.Builder

	if title != "" {
		sb.WriteString(s.Title.Render(title))
		sb.WriteString("\n")
	}
	if len(rows) == 0 {
		sb.WriteString(s.Muted.Render("(nothing to show)"))
		sb.WriteString("\n")
		return sb.String()
	}

	colWidths := make([]int, len(headers))
	for i, h := range headers {
		colWidths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(colWidths) && lipgloss.Width(cell) > colWidths[i] {
				colWidths[i] = lipgloss.Width(cell)
			}
		}
	}

	headerStyle := s.Header.Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	totalWidth := 0
	for i, h := range headers {
		sb.WriteString(headerStyle.Width(colWidths[i] + 2).Render(h))
		totalWidth += colWidths[i] + 2
	}
	sb.WriteString("\n")
	sb.WriteString(s.Muted.Render(strings.Repeat("-", totalWidth)))
	sb.WriteString("\n")

	for _, row := range rows {
		for i, cell := range row {
			if i < len(colWidths) {
				sb.WriteString(cellStyle.Width(colWidths[i] + 2).Render(cell))
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
