package cli

import (
	"fmt"

	"github.com/julianstephens/habitgrid/internal/models"
	"github.com/julianstephens/habitgrid/internal/views"
)

type StatsCmd struct {
	Habit string `arg:"" optional:"" help:"Habit name or id (default: all habits)."`
}

func (c *StatsCmd) Run(ctx *Context) error {
	var habits []models.Habit
	if c.Habit != "" {
		habit, err := resolveHabit(ctx, c.Habit)
		if err != nil {
			return err
		}
		habits = []models.Habit{habit}
	} else {
		habits = ctx.Store().Habits()
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	entries := ctx.Store().Entries()
	for _, habit := range habits {
		logged := 0
		done := 0
		for _, e := range entries {
			if e.HabitID != habit.ID {
				continue
			}
			logged++
			if e.Status == models.StatusDone {
				done++
			}
		}

		rate := views.CompletionRate(habit.ID, entries)
		fmt.Printf("%-24s  %3d%% completion  (%d done / %d logged)\n", habit.Name, rate, done, logged)
	}

	return nil
}
