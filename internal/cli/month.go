package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/habitgrid/internal/constants"
	"github.com/julianstephens/habitgrid/internal/views"
)

const cellWidth = 12

type MonthCmd struct {
	Month string `help:"Month to show (YYYY-MM, default: current month)." default:""`
}

func (c *MonthCmd) Run(ctx *Context) error {
	month := time.Now()
	if c.Month != "" {
		var err error
		month, err = time.Parse(constants.MonthFormat, c.Month)
		if err != nil {
			return fmt.Errorf("invalid month format, use YYYY-MM: %w", err)
		}
	}

	habits := ctx.Store().Habits()
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	today := time.Now().Format(constants.DateFormat)
	rows := views.MonthGrid(habits, ctx.Store().Entries(), month, today)

	fmt.Printf("Habit grid for %s:\n\n", month.Format("January 2006"))

	// Header: one column per habit.
	fmt.Print("Day         ")
	for _, habit := range habits {
		fmt.Print(pad(habit.Name, cellWidth))
	}
	fmt.Println()

	fmt.Print(strings.Repeat("-", 12+cellWidth*len(habits)))
	fmt.Println()

	for _, row := range rows {
		fmt.Print(pad(row.Day, 12))
		for _, cell := range row.Cells {
			fmt.Print(pad(views.FormatCell(cell), cellWidth))
		}
		fmt.Println()
	}

	return nil
}

// pad truncates or right-pads s to width columns.
func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width-1 {
		if width > 4 {
			return string(runes[:width-4]) + "... "
		}
		return string(runes[:width-1]) + " "
	}
	return s + strings.Repeat(" ", width-len(runes))
}
