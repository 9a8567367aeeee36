package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habitgrid/internal/constants"
	"github.com/julianstephens/habitgrid/internal/models"
	"github.com/julianstephens/habitgrid/internal/tui/components/monthgrid"
	"github.com/julianstephens/habitgrid/internal/views"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateHabits:
		content = docStyle.Render(m.habitList.View())
	case StateMonth:
		content = docStyle.Render(m.viewMonth())
	case StateTrend:
		content = docStyle.Render(m.viewTrend())
	case StateJournal:
		content = docStyle.Render(m.viewJournal())
	case StateAddHabit, StateEditHabit, StateLogEntry:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Habits", "Month", "Trend", "Journal"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewMonth() string {
	today := time.Now().Format(constants.DateFormat)
	rows := views.MonthGrid(m.store.Habits(), m.store.Entries(), m.month, today)

	return monthgrid.Render(rows, m.month, today, monthgrid.Options{
		HeaderStyle:   gridHeaderStyle,
		DayStyle:      gridDayStyle,
		TodayStyle:    gridTodayStyle,
		DoneStyle:     doneStyle,
		FailedStyle:   failedStyle,
		UnloggedStyle: unloggedStyle,
	})
}

func (m Model) viewTrend() string {
	habit, ok := m.habitList.Selected()
	if !ok {
		return "No habit selected."
	}

	today := time.Now().Format(constants.DateFormat)
	points := views.Trend(habit, m.store.Entries(), today)

	header := gridHeaderStyle.Render(fmt.Sprintf("%s — last %d days (target %d min/day)", habit.Name, constants.TrendDays, habit.TargetMin))

	max := habit.TargetMin
	for _, p := range points {
		if p.TimeSpentMin > max {
			max = p.TimeSpentMin
		}
	}
	if max <= 0 {
		max = 1
	}

	const barWidth = 30
	lines := []string{header, ""}
	for _, p := range points {
		filled := p.TimeSpentMin * barWidth / max
		bar := ""
		for i := 0; i < barWidth; i++ {
			if i < filled {
				bar += "█"
			} else {
				bar += " "
			}
		}

		style := unloggedStyle
		switch p.Status {
		case models.StatusDone:
			style = doneStyle
		case models.StatusFailed:
			style = failedStyle
		}
		lines = append(lines, fmt.Sprintf("%s  %s %3d min", gridDayStyle.Render(p.Label), style.Render(bar), p.TimeSpentMin))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewJournal() string {
	habit, ok := m.habitList.Selected()
	if !ok {
		return "No habit selected."
	}

	noted := views.Journal(habit.ID, m.store.Entries())
	if len(noted) == 0 {
		return fmt.Sprintf("No journal entries for %s.", habit.Name)
	}

	lines := []string{gridHeaderStyle.Render("Journal: " + habit.Name), ""}
	for _, entry := range noted {
		lines = append(lines, fmt.Sprintf("%s  %d min", gridTodayStyle.Render(entry.Day), entry.TimeSpentMin))
		lines = append(lines, "  "+entry.Notes)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewConfirmDelete() string {
	name := ""
	if m.habitToDelete != nil {
		name = m.habitToDelete.Name
	}
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete habit %q and all of its entries?", name)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
