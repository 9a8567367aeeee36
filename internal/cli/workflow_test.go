package cli

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/habitgrid/internal/constants"
	"github.com/julianstephens/habitgrid/internal/storage"
)

// newTestContext builds a CLI context over a fresh JSON storage file.
func newTestContext(t *testing.T) (*Context, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "habitgrid.json")
	return &Context{Provider: storage.NewJSONStore(path)}, path
}

func TestWorkflow(t *testing.T) {
	ctx, path := newTestContext(t)

	init := &InitCmd{}
	if err := init.Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	t.Run("add habits", func(t *testing.T) {
		for _, c := range []HabitAddCmd{
			{Name: "Reading", Target: 30},
			{Name: "Exercise", Target: 45},
		} {
			if err := c.Validate(); err != nil {
				t.Fatalf("validate %q failed: %v", c.Name, err)
			}
			if err := c.Run(ctx); err != nil {
				t.Fatalf("habit add %q failed: %v", c.Name, err)
			}
		}

		if got := len(ctx.Store().Habits()); got != 2 {
			t.Fatalf("expected 2 habits, got %d", got)
		}
	})

	t.Run("log entries", func(t *testing.T) {
		yesterday := time.Now().AddDate(0, 0, -1).Format(constants.DateFormat)

		logs := []LogCmd{
			{Habit: "Reading", Status: "done", Time: 45, Notes: "finished chapter 3"},
			{Habit: "Reading", Date: yesterday, Status: "failed", Time: 10},
			{Habit: "Exercise", Status: "done", Time: 50},
		}
		for _, c := range logs {
			if err := c.Run(ctx); err != nil {
				t.Fatalf("log %q failed: %v", c.Habit, err)
			}
		}

		if got := len(ctx.Store().Entries()); got != 3 {
			t.Fatalf("expected 3 entries, got %d", got)
		}

		// Logging the same day again replaces the entry.
		relog := LogCmd{Habit: "Reading", Status: "done", Time: 60, Notes: "re-read"}
		if err := relog.Run(ctx); err != nil {
			t.Fatalf("re-log failed: %v", err)
		}
		if got := len(ctx.Store().Entries()); got != 3 {
			t.Fatalf("expected 3 entries after re-log, got %d", got)
		}

		habit, err := resolveHabit(ctx, "Reading")
		if err != nil {
			t.Fatalf("resolveHabit failed: %v", err)
		}
		today, _ := parseDay("today")
		entry, err := ctx.Store().GetEntry(habit.ID, today)
		if err != nil {
			t.Fatalf("GetEntry failed: %v", err)
		}
		if entry.TimeSpentMin != 60 {
			t.Errorf("expected re-logged time 60, got %d", entry.TimeSpentMin)
		}
	})

	t.Run("log unknown habit", func(t *testing.T) {
		c := LogCmd{Habit: "Meditation", Status: "done", Time: 10}
		if err := c.Run(ctx); err == nil {
			t.Error("expected error for unknown habit")
		}
	})

	t.Run("read commands", func(t *testing.T) {
		commands := []interface{ Run(*Context) error }{
			&HabitListCmd{},
			&TodayCmd{},
			&MonthCmd{},
			&TrendCmd{Habit: "Reading"},
			&StatsCmd{},
			&StatsCmd{Habit: "Reading"},
			&JournalCmd{Habit: "Reading"},
		}
		for i, c := range commands {
			if err := c.Run(ctx); err != nil {
				t.Errorf("read command %d failed: %v", i, err)
			}
		}
	})

	t.Run("edit habit", func(t *testing.T) {
		c := HabitEditCmd{Habit: "Exercise", Target: 60}
		if err := c.Run(ctx); err != nil {
			t.Fatalf("habit edit failed: %v", err)
		}

		habit, err := resolveHabit(ctx, "Exercise")
		if err != nil {
			t.Fatalf("resolveHabit failed: %v", err)
		}
		if habit.TargetMin != 60 {
			t.Errorf("expected target 60, got %d", habit.TargetMin)
		}
	})

	t.Run("delete cascades", func(t *testing.T) {
		c := HabitDeleteCmd{Habit: "Reading", Yes: true}
		if err := c.Run(ctx); err != nil {
			t.Fatalf("habit delete failed: %v", err)
		}

		if _, err := resolveHabit(ctx, "Reading"); err == nil {
			t.Error("expected Reading to be gone")
		}
		for _, e := range ctx.Store().Entries() {
			habit, err := ctx.Store().Habit(e.HabitID)
			if err != nil {
				t.Errorf("entry for missing habit survived: %+v", e)
				continue
			}
			if habit.Name == "Reading" {
				t.Errorf("entry for deleted habit survived: %+v", e)
			}
		}
	})

	t.Run("reopen", func(t *testing.T) {
		fresh := &Context{Provider: storage.NewJSONStore(path)}

		habits := fresh.Store().Habits()
		if len(habits) != 1 || habits[0].Name != "Exercise" {
			t.Fatalf("expected only Exercise after reopen, got %+v", habits)
		}
		if got := len(fresh.Store().Entries()); got != 1 {
			t.Errorf("expected 1 entry after reopen, got %d", got)
		}
	})
}

func TestParseDay(t *testing.T) {
	today := time.Now().Format(constants.DateFormat)

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", today, false},
		{"today", today, false},
		{"2024-02-29", "2024-02-29", false},
		{"2024-13-01", "", true},
		{"yesterday", "", true},
	}

	for _, tt := range tests {
		got, err := parseDay(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseDay(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseDay(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseDay(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
