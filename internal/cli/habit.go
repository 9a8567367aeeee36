package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/habitgrid/internal/store"
	"github.com/julianstephens/habitgrid/internal/views"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	Edit   HabitEditCmd   `cmd:"" help:"Edit an existing habit."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit and all its entries."`
	List   HabitListCmd   `cmd:"" help:"List habits."`
}

type HabitAddCmd struct {
	Name   string `arg:"" help:"Habit name."`
	Target int    `short:"t" help:"Daily target in minutes." required:""`
}

func (c *HabitAddCmd) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("habit name must not be empty")
	}
	if c.Target <= 0 {
		return fmt.Errorf("target must be a positive number of minutes")
	}
	return nil
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	habit, err := ctx.Store().AddHabit(c.Name, c.Target)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (ID: %s)\n", habit.Name, habit.ID)
	return nil
}

type HabitEditCmd struct {
	Habit  string `arg:"" help:"Habit name or id."`
	Name   string `short:"n" help:"New name (default: keep current)."`
	Target int    `short:"t" help:"New daily target in minutes (default: keep current)."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	habit, err := resolveHabit(ctx, c.Habit)
	if err != nil {
		return err
	}

	name := habit.Name
	if strings.TrimSpace(c.Name) != "" {
		name = c.Name
	}
	target := habit.TargetMin
	if c.Target > 0 {
		target = c.Target
	}

	if err := ctx.Store().UpdateHabit(habit.ID, name, target); err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s (%d min/day)\n", name, target)
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
	Yes   bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	habit, err := resolveHabit(ctx, c.Habit)
	if err != nil {
		return err
	}

	if !c.Yes {
		ok, err := confirm(fmt.Sprintf("Delete habit %q and all of its entries? This cannot be undone.", habit.Name))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Delete cancelled.")
			return nil
		}
	}

	if err := ctx.Store().DeleteHabit(habit.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("habit %q not found", c.Habit)
		}
		return err
	}

	fmt.Printf("Deleted habit: %s\n", habit.Name)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	habits := ctx.Store().Habits()
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	entries := ctx.Store().Entries()
	for _, habit := range habits {
		rate := views.CompletionRate(habit.ID, entries)
		fmt.Printf("%-24s  %3d min/day  %3d%% done  (ID: %s)\n", habit.Name, habit.TargetMin, rate, habit.ID)
	}

	return nil
}
