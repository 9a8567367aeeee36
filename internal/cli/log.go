package cli

import (
	"fmt"

	"github.com/julianstephens/habitgrid/internal/models"
)

type LogCmd struct {
	Habit  string `arg:"" help:"Habit name or id."`
	Date   string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
	Status string `short:"s" help:"Outcome (done|failed|none)." enum:"done,failed,none" default:"done"`
	Time   int    `short:"t" help:"Time spent in minutes." default:"0"`
	Notes  string `short:"n" help:"Optional note for this entry."`
}

func (c *LogCmd) Run(ctx *Context) error {
	habit, err := resolveHabit(ctx, c.Habit)
	if err != nil {
		return err
	}

	day, err := parseDay(c.Date)
	if err != nil {
		return err
	}

	// Replaces any prior entry for this habit and day.
	entry, err := ctx.Store().UpsertEntry(habit.ID, day, models.ParseStatus(c.Status), c.Time, c.Notes)
	if err != nil {
		return err
	}

	fmt.Printf("Logged %s for %s: %s, %d min\n", habit.Name, day, entry.Status, entry.TimeSpentMin)
	return nil
}

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	habits := ctx.Store().Habits()
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	today, _ := parseDay("today")
	fmt.Printf("Habits for %s:\n\n", today)

	logged := 0
	for _, habit := range habits {
		entry, err := ctx.Store().GetEntry(habit.ID, today)
		if err != nil {
			fmt.Printf("[ ] %s (target %d min)\n", habit.Name, habit.TargetMin)
			continue
		}
		logged++
		fmt.Printf("[%s] %-24s %d/%d min\n", statusGlyph(entry.Status), habit.Name, entry.TimeSpentMin, habit.TargetMin)
	}

	fmt.Printf("\nLogged: %d/%d\n", logged, len(habits))
	return nil
}
