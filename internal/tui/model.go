package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitgrid/internal/constants"
	"github.com/julianstephens/habitgrid/internal/models"
	"github.com/julianstephens/habitgrid/internal/store"
	"github.com/julianstephens/habitgrid/internal/tui/components/habitlist"
)

type SessionState int

const (
	StateHabits SessionState = iota
	StateMonth
	StateTrend
	StateJournal
	StateAddHabit
	StateEditHabit
	StateLogEntry
	StateConfirmDelete
)

// tabCount is the number of browsable tabs (the states before the form and
// confirmation states).
const tabCount = 4

type HabitFormModel struct {
	Name   string
	Target string
}

type EntryFormModel struct {
	Status models.EntryStatus
	Time   string
	Notes  string
}

type Model struct {
	store         *store.Store
	state         SessionState
	keys          KeyMap
	help          help.Model
	habitList     habitlist.Model
	month         time.Time
	form          *huh.Form
	habitForm     *HabitFormModel
	entryForm     *EntryFormModel
	editingHabit  *models.Habit
	loggingHabit  *models.Habit
	habitToDelete *models.Habit
	quitting      bool
	width         int
	height        int
}

func NewModel(st *store.Store) Model {
	today := time.Now().Format(constants.DateFormat)

	m := Model{
		store:     st,
		state:     StateHabits,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		habitList: habitlist.New(st.Habits(), st.Entries(), today, 0, 0),
		month:     time.Now(),
	}

	return m
}

func (m Model) ShortHelp() []key.Binding {
	return m.keys.ShortHelp()
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

func (m *Model) refreshHabits() {
	today := time.Now().Format(constants.DateFormat)
	m.habitList.SetHabits(m.store.Habits(), m.store.Entries(), today)
}

func newHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name must not be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Daily target (min)").
				Value(&fm.Target).
				Validate(func(s string) error {
					i, err := strconv.Atoi(s)
					if err != nil {
						return err
					}
					if i <= 0 {
						return fmt.Errorf("target must be a positive number of minutes")
					}
					return nil
				}),
		),
	)
}

func newEntryForm(fm *EntryFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.EntryStatus]().
				Title("Status").
				Options(
					huh.NewOption("Done", models.StatusDone),
					huh.NewOption("Failed", models.StatusFailed),
					huh.NewOption("No outcome", models.StatusNone),
				).
				Value(&fm.Status),
			huh.NewInput().
				Title("Time spent (min)").
				Value(&fm.Time).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					i, err := strconv.Atoi(s)
					if err != nil {
						return err
					}
					if i < 0 {
						return fmt.Errorf("time spent cannot be negative")
					}
					return nil
				}),
			huh.NewText().
				Title("Notes").
				Value(&fm.Notes),
		),
	)
}

// parseMinutes turns a form field into minutes, defaulting to 0 when it is
// blank or unparseable.
func parseMinutes(s string) int {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || i < 0 {
		return 0
	}
	return i
}
