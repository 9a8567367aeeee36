package habitlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habitgrid/internal/models"
	"github.com/julianstephens/habitgrid/internal/views"
)

type AddHabitMsg struct{}

type EditHabitMsg struct {
	Habit models.Habit
}

type DeleteHabitMsg struct {
	Habit models.Habit
}

type LogEntryMsg struct {
	Habit models.Habit
}

type Item struct {
	Habit models.Habit
	// Today's entry, if one is logged.
	Entry *models.HabitEntry
	Rate  int
}

func (i Item) Title() string {
	if i.Entry == nil {
		return "○ " + i.Habit.Name
	}
	switch i.Entry.Status {
	case models.StatusDone:
		return "✓ " + i.Habit.Name
	case models.StatusFailed:
		return "✗ " + i.Habit.Name
	default:
		return "· " + i.Habit.Name
	}
}

func (i Item) Description() string {
	desc := fmt.Sprintf("target %d min | %d%% completion", i.Habit.TargetMin, i.Rate)
	if i.Entry != nil {
		desc += fmt.Sprintf(" | today: %d min", i.Entry.TimeSpentMin)
	}
	return desc
}

func (i Item) FilterValue() string { return i.Habit.Name }

type KeyMap struct {
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Log    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Log: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "log today"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(habits []models.Habit, entries []models.HabitEntry, today string, width, height int) Model {
	l := list.New(buildItems(habits, entries, today), list.NewDefaultDelegate(), width, height)
	l.Title = "Habits"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // We handle help globally in the main model

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Delete, keys.Log}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Delete, keys.Log}
	}

	return Model{list: l, keys: keys}
}

func buildItems(habits []models.Habit, entries []models.HabitEntry, today string) []list.Item {
	byHabit := make(map[string]models.HabitEntry, len(entries))
	for _, e := range entries {
		if e.Day == today {
			byHabit[e.HabitID] = e
		}
	}

	items := make([]list.Item, len(habits))
	for i, h := range habits {
		item := Item{Habit: h, Rate: views.CompletionRate(h.ID, entries)}
		if e, ok := byHabit[h.ID]; ok {
			entry := e
			item.Entry = &entry
		}
		items[i] = item
	}
	return items
}

// SetHabits replaces the list contents.
func (m *Model) SetHabits(habits []models.Habit, entries []models.HabitEntry, today string) {
	m.list.SetItems(buildItems(habits, entries, today))
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Selected returns the currently highlighted habit.
func (m Model) Selected() (models.Habit, bool) {
	item, ok := m.list.SelectedItem().(Item)
	if !ok {
		return models.Habit{}, false
	}
	return item.Habit, true
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.list.SettingFilter() {
		switch {
		case key.Matches(keyMsg, m.keys.Add):
			return m, func() tea.Msg { return AddHabitMsg{} }
		case key.Matches(keyMsg, m.keys.Edit):
			if habit, ok := m.Selected(); ok {
				return m, func() tea.Msg { return EditHabitMsg{Habit: habit} }
			}
		case key.Matches(keyMsg, m.keys.Delete):
			if habit, ok := m.Selected(); ok {
				return m, func() tea.Msg { return DeleteHabitMsg{Habit: habit} }
			}
		case key.Matches(keyMsg, m.keys.Log):
			if habit, ok := m.Selected(); ok {
				return m, func() tea.Msg { return LogEntryMsg{Habit: habit} }
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
