package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/habitgrid/internal/constants"
	"github.com/julianstephens/habitgrid/internal/views"
)

type TrendCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
}

func (c *TrendCmd) Run(ctx *Context) error {
	habit, err := resolveHabit(ctx, c.Habit)
	if err != nil {
		return err
	}

	today := time.Now().Format(constants.DateFormat)
	points := views.Trend(habit, ctx.Store().Entries(), today)

	fmt.Printf("%s — last %d days (target %d min/day):\n\n", habit.Name, constants.TrendDays, habit.TargetMin)

	// Scale bars to the larger of target and best day.
	max := habit.TargetMin
	for _, p := range points {
		if p.TimeSpentMin > max {
			max = p.TimeSpentMin
		}
	}
	if max <= 0 {
		max = 1
	}

	const barWidth = 40
	targetCol := habit.TargetMin * barWidth / max

	for _, p := range points {
		filled := p.TimeSpentMin * barWidth / max
		bar := make([]rune, barWidth)
		for i := range bar {
			switch {
			case i < filled:
				bar[i] = '█'
			case i == targetCol:
				bar[i] = '|'
			default:
				bar[i] = ' '
			}
		}
		fmt.Printf("%s  %s %s %d min\n", p.Label, string(bar), statusGlyph(p.Status), p.TimeSpentMin)
	}

	fmt.Println()
	fmt.Println(strings.Repeat(" ", 7) + "scale: '|' marks the daily target")
	return nil
}
