// Package views projects the state store's containers into the shapes the
// presentation layer renders: the month grid, the 30-day trend, the
// completion rate, and the journal. Every projection is a pure function of
// its inputs.
package views

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/julianstephens/habitgrid/internal/constants"
	"github.com/julianstephens/habitgrid/internal/models"
)

// GridCell is one habit's rendering for one calendar day.
type GridCell struct {
	Habit models.Habit
	// Entry is the explicit log record, if one exists.
	Entry *models.HabitEntry
	// ImplicitFail marks a past day with no entry. It is display-only and
	// never materializes a record.
	ImplicitFail bool
}

// Logged reports whether the cell shows anything at all.
func (c GridCell) Logged() bool {
	return c.Entry != nil || c.ImplicitFail
}

// TimeSpentMin is the minutes shown in the cell: the entry's minutes, or 0
// for an implicit failure.
func (c GridCell) TimeSpentMin() int {
	if c.Entry != nil {
		return c.Entry.TimeSpentMin
	}
	return 0
}

// Status is the status shown in the cell.
func (c GridCell) Status() models.EntryStatus {
	if c.Entry != nil {
		return c.Entry.Status
	}
	if c.ImplicitFail {
		return models.StatusFailed
	}
	return models.StatusNone
}

// GridRow is one calendar day rendered against every habit, in habit order.
type GridRow struct {
	Day   string
	Cells []GridCell
}

// MonthGrid produces one row per calendar day of month (first to last,
// inclusive), each rendered against every habit. A day renders its explicit
// entry when present; otherwise, days strictly before today show an implicit
// "failed, 0 minutes" marker and today or later show as unlogged.
func MonthGrid(habits []models.Habit, entries []models.HabitEntry, month time.Time, today string) []GridRow {
	byKey := indexEntries(entries)

	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	rows := make([]GridRow, 0, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		day := first.AddDate(0, 0, d-1).Format(constants.DateFormat)
		row := GridRow{Day: day, Cells: make([]GridCell, 0, len(habits))}
		for _, h := range habits {
			cell := GridCell{Habit: h}
			if e, ok := byKey[h.ID+"|"+day]; ok {
				entry := e
				cell.Entry = &entry
			} else if day < today {
				cell.ImplicitFail = true
			}
			row.Cells = append(row.Cells, cell)
		}
		rows = append(rows, row)
	}

	return rows
}

// TrendPoint is one day of the rolling trend window.
type TrendPoint struct {
	Day          string
	Label        string
	TimeSpentMin int
	TargetMin    int
	Status       models.EntryStatus
}

// Trend produces exactly 30 points for the habit, one per day from 29 days
// ago through today, oldest first. Unlogged days show 0 minutes and no
// status; unlike the month grid, no implicit failure is marked here.
func Trend(habit models.Habit, entries []models.HabitEntry, today string) []TrendPoint {
	byKey := indexEntries(entries)

	end, err := time.Parse(constants.DateFormat, today)
	if err != nil {
		end = time.Now().UTC()
	}

	points := make([]TrendPoint, 0, constants.TrendDays)
	for i := constants.TrendDays - 1; i >= 0; i-- {
		day := end.AddDate(0, 0, -i)
		dayStr := day.Format(constants.DateFormat)
		point := TrendPoint{
			Day:       dayStr,
			Label:     day.Format("01/02"),
			TargetMin: habit.TargetMin,
			Status:    models.StatusNone,
		}
		if e, ok := byKey[habit.ID+"|"+dayStr]; ok {
			point.TimeSpentMin = e.TimeSpentMin
			point.Status = e.Status
		}
		points = append(points, point)
	}

	return points
}

// CompletionRate is round(done / logged * 100) over every entry for the
// habit, and 0 when nothing is logged.
func CompletionRate(habitID string, entries []models.HabitEntry) int {
	logged := 0
	done := 0
	for _, e := range entries {
		if e.HabitID != habitID {
			continue
		}
		logged++
		if e.Status == models.StatusDone {
			done++
		}
	}
	if logged == 0 {
		return 0
	}
	return roundPercent(done, logged)
}

// Journal returns the habit's entries carrying non-blank notes, most recent
// day first.
func Journal(habitID string, entries []models.HabitEntry) []models.HabitEntry {
	var noted []models.HabitEntry
	for _, e := range entries {
		if e.HabitID == habitID && e.HasNotes() {
			noted = append(noted, e)
		}
	}
	sort.Slice(noted, func(i, j int) bool {
		return noted[i].Day > noted[j].Day
	})
	return noted
}

// PercentOfTarget is round(timeSpent / target * 100). Callers only invoke it
// with a positive target.
func PercentOfTarget(timeSpentMin, targetMin int) int {
	return roundPercent(timeSpentMin, targetMin)
}

// FormatCell renders a cell the way the grid displays it, e.g. "45/30m 150%".
func FormatCell(c GridCell) string {
	if !c.Logged() {
		return "·"
	}
	if c.ImplicitFail {
		return "✗ 0m"
	}
	out := fmt.Sprintf("%d/%dm", c.Entry.TimeSpentMin, c.Habit.TargetMin)
	if c.Habit.TargetMin > 0 {
		out += fmt.Sprintf(" %d%%", PercentOfTarget(c.Entry.TimeSpentMin, c.Habit.TargetMin))
	}
	return out
}

func roundPercent(part, whole int) int {
	return int(math.Round(float64(part) / float64(whole) * 100))
}

func indexEntries(entries []models.HabitEntry) map[string]models.HabitEntry {
	byKey := make(map[string]models.HabitEntry, len(entries))
	for _, e := range entries {
		byKey[e.HabitID+"|"+e.Day] = e
	}
	return byKey
}
