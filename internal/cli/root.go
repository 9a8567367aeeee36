package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/julianstephens/habitgrid/internal/constants"
	"github.com/julianstephens/habitgrid/internal/models"
	"github.com/julianstephens/habitgrid/internal/storage"
	"github.com/julianstephens/habitgrid/internal/store"
)

type Context struct {
	Provider storage.Provider

	st *store.Store
}

// Store opens the state store on first use. Opening never fails: a missing
// or unreadable snapshot falls back to the built-in defaults.
func (ctx *Context) Store() *store.Store {
	if ctx.st == nil {
		ctx.st = store.Open(ctx.Provider)
	}
	return ctx.st
}

// parseDay resolves a date argument: empty or "today" is today, anything
// else must be YYYY-MM-DD.
func parseDay(s string) (string, error) {
	if s == "" || s == "today" {
		return time.Now().Format(constants.DateFormat), nil
	}
	if _, err := time.Parse(constants.DateFormat, s); err != nil {
		return "", fmt.Errorf("invalid date format, use YYYY-MM-DD or 'today': %w", err)
	}
	return s, nil
}

// resolveHabit finds a habit by name first, then by id.
func resolveHabit(ctx *Context, ref string) (models.Habit, error) {
	if h, err := ctx.Store().HabitByName(ref); err == nil {
		return h, nil
	}
	h, err := ctx.Store().Habit(ref)
	if err != nil {
		return models.Habit{}, fmt.Errorf("habit %q not found", ref)
	}
	return h, nil
}

// confirm prompts on stdin and reports whether the user answered yes.
func confirm(prompt string) (bool, error) {
	fmt.Printf("%s [y/N]: ", prompt)

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))

	return response == "y" || response == "yes", nil
}

// statusGlyph renders an entry status for table output.
func statusGlyph(status models.EntryStatus) string {
	switch status {
	case models.StatusDone:
		return "✓"
	case models.StatusFailed:
		return "✗"
	default:
		return "-"
	}
}
