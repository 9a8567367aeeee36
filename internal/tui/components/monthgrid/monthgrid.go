package monthgrid

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habitgrid/internal/models"
	"github.com/julianstephens/habitgrid/internal/views"
)

// Options controls the styling of the rendered grid.
type Options struct {
	HeaderStyle   lipgloss.Style
	DayStyle      lipgloss.Style
	TodayStyle    lipgloss.Style
	DoneStyle     lipgloss.Style
	FailedStyle   lipgloss.Style
	UnloggedStyle lipgloss.Style
}

const cellWidth = 12

// Render produces a multi-line grid for the month: one line per day, one
// column per habit, cells filled from the projection.
func Render(rows []views.GridRow, month time.Time, today string, opts Options) string {
	if len(rows) == 0 {
		return opts.UnloggedStyle.Render("No habits to show.")
	}

	var lines []string

	header := pad(month.Format("January 2006"), cellWidth)
	for _, cell := range rows[0].Cells {
		header += pad(cell.Habit.Name, cellWidth)
	}
	lines = append(lines, opts.HeaderStyle.Render(header))

	for _, row := range rows {
		dayStyle := opts.DayStyle
		if row.Day == today {
			dayStyle = opts.TodayStyle
		}
		// Day labels show MM-DD; the header carries the year.
		line := dayStyle.Render(pad(row.Day[5:], cellWidth))

		for _, cell := range row.Cells {
			text := pad(views.FormatCell(cell), cellWidth)
			switch cell.Status() {
			case models.StatusDone:
				line += opts.DoneStyle.Render(text)
			case models.StatusFailed:
				line += opts.FailedStyle.Render(text)
			default:
				line += opts.UnloggedStyle.Render(text)
			}
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width-1 {
		return string(runes[:width-1]) + " "
	}
	return s + strings.Repeat(" ", width-len(runes))
}
