package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/habitgrid/internal/cli"
	"github.com/julianstephens/habitgrid/internal/constants"
	"github.com/julianstephens/habitgrid/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path." type:"path" default:"${config_path}"`

	Init    cli.InitCmd    `cmd:"" help:"Initialize habitgrid storage."`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Habit   cli.HabitCmd   `cmd:"" help:"Manage habits."`
	Log     cli.LogCmd     `cmd:"" help:"Log a day's entry for a habit."`
	Today   cli.TodayCmd   `cmd:"" help:"Show today's habit status."`
	Month   cli.MonthCmd   `cmd:"" help:"Show the month grid."`
	Trend   cli.TrendCmd   `cmd:"" help:"Show the 30-day trend for a habit."`
	Stats   cli.StatsCmd   `cmd:"" help:"Show completion rates."`
	Journal cli.JournalCmd `cmd:"" help:"Show noted entries for a habit."`
	Backup  cli.BackupCmd  `cmd:"" help:"Manage storage backups."`
	Doctor  cli.DoctorCmd  `cmd:"" help:"Run storage diagnostics."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit-tracking grid: daily time targets, per-day logs, and derived analytics"),
		kong.UsageOnError(),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	// Determine storage type based on extension
	var provider storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		provider = storage.NewJSONStore(CLI.Config)
	} else {
		provider = storage.NewSQLiteStore(CLI.Config)
	}
	defer provider.Close()

	appCtx := &cli.Context{
		Provider: provider,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
