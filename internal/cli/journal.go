package cli

import (
	"fmt"

	"github.com/julianstephens/habitgrid/internal/views"
)

type JournalCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
}

func (c *JournalCmd) Run(ctx *Context) error {
	habit, err := resolveHabit(ctx, c.Habit)
	if err != nil {
		return err
	}

	noted := views.Journal(habit.ID, ctx.Store().Entries())
	if len(noted) == 0 {
		fmt.Printf("No journal entries for %s.\n", habit.Name)
		return nil
	}

	fmt.Printf("Journal for %s:\n\n", habit.Name)
	for _, entry := range noted {
		fmt.Printf("%s  [%s] %d min\n", entry.Day, statusGlyph(entry.Status), entry.TimeSpentMin)
		fmt.Printf("            %s\n", entry.Notes)
	}

	return nil
}
