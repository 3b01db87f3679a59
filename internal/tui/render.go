package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/domain"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/gantt"
)

const (
	sidebarWidth = 34

	plannedGlyph = '░'
	actualGlyph  = '█'
	markerGlyph  = '◆'
	todayGlyph   = '┊'
)

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	cursorStyle     = lipgloss.NewStyle().Reverse(true)
	notStartedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	inProgressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	doneStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	helpStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func statusStyle(s domain.Status) lipgloss.Style {
	switch s {
	case domain.StatusDone:
		return doneStyle
	case domain.StatusInProgress:
		return inProgressStyle
	default:
		return notStartedStyle
	}
}

func statusGlyph(s domain.Status) string {
	switch s {
	case domain.StatusDone:
		return "✓"
	case domain.StatusInProgress:
		return "◐"
	default:
		return "○"
	}
}

func (m Model) View() string {
	if m.loading {
		return "loading…\n"
	}
	if m.err != nil {
		return errStyle.Render(fmt.Sprintf("error: %v", m.err)) + "\n"
	}
	if m.hierarchy == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.hierarchy.Project.Name))
	b.WriteString(fmt.Sprintf("  %s → %s\n",
		m.layout.MinStart.Format(domain.DateLayout),
		m.layout.MaxEnd.AddDate(0, 0, -1).Format(domain.DateLayout)))

	chartWidth := m.chartWidth()
	for i, row := range m.layout.Rows {
		label := m.sidebarCell(row)
		if i == m.cursor {
			label = cursorStyle.Render(label)
		}
		b.WriteString(label)
		b.WriteString("│")
		b.WriteString(m.chartLine(row, chartWidth))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("↑/↓ move · enter collapse · r refresh · q quit"))
	b.WriteString("\n")
	return b.String()
}

// sidebarCell renders the fixed-width label column for one row.
func (m Model) sidebarCell(row gantt.Row) string {
	indent := strings.Repeat("  ", row.Depth)

	fold := "  "
	if row.HasChildren && row.Kind != gantt.KindTask {
		if row.Collapsed {
			fold = "▸ "
		} else {
			fold = "▾ "
		}
	}

	text := fmt.Sprintf("%s%s%s %s %3d%%", indent, fold, statusGlyph(row.Status), row.Title, row.Progress)
	if len([]rune(text)) > sidebarWidth {
		text = string([]rune(text)[:sidebarWidth-1]) + "…"
	}
	return statusStyle(row.Status).Render(fmt.Sprintf("%-*s", sidebarWidth, text))
}

// chartLine paints one row of the chart: planned bar under actual bar, due
// markers on top, today column behind everything.
func (m Model) chartLine(row gantt.Row, width int) string {
	if width <= 0 {
		return ""
	}
	line := make([]rune, width)
	for i := range line {
		line[i] = ' '
	}

	if col := m.todayColumn(); col >= 0 && col < width {
		line[col] = todayGlyph
	}
	paintBar(line, row.Planned, plannedGlyph)
	paintBar(line, row.Actual, actualGlyph)
	for _, marker := range row.Markers {
		if col := int(marker.X); col >= 0 && col < width {
			line[col] = markerGlyph
		}
	}
	return string(line)
}

func paintBar(line []rune, bar *gantt.Bar, glyph rune) {
	if bar == nil {
		return
	}
	from := int(bar.Left)
	to := int(bar.Left + bar.Width)
	for i := from; i < to && i < len(line); i++ {
		if i >= 0 {
			line[i] = glyph
		}
	}
}

func (m Model) todayColumn() int {
	return int(m.now().Sub(m.layout.MinStart).Hours() / 24)
}

// chartWidth clamps the timeline to the space right of the sidebar.
func (m Model) chartWidth() int {
	width := int(m.layout.Width)
	if m.width > 0 {
		available := m.width - sidebarWidth - 1
		if available < width {
			width = available
		}
	}
	if width < 0 {
		width = 0
	}
	return width
}
