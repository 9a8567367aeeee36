package tui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitgrid/internal/constants"
	"github.com/julianstephens/habitgrid/internal/models"
	"github.com/julianstephens/habitgrid/internal/tui/components/habitlist"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.habitList.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case habitlist.AddHabitMsg:
		m.habitForm = &HabitFormModel{}
		m.form = newHabitForm(m.habitForm)
		m.state = StateAddHabit
		return m, m.form.Init()

	case habitlist.EditHabitMsg:
		habit := msg.Habit
		m.editingHabit = &habit
		m.habitForm = &HabitFormModel{
			Name:   habit.Name,
			Target: strconv.Itoa(habit.TargetMin),
		}
		m.form = newHabitForm(m.habitForm)
		m.state = StateEditHabit
		return m, m.form.Init()

	case habitlist.DeleteHabitMsg:
		habit := msg.Habit
		m.habitToDelete = &habit
		m.state = StateConfirmDelete
		return m, nil

	case habitlist.LogEntryMsg:
		habit := msg.Habit
		m.loggingHabit = &habit
		m.entryForm = &EntryFormModel{Status: models.StatusDone}
		today := time.Now().Format(constants.DateFormat)
		if existing, err := m.store.GetEntry(habit.ID, today); err == nil {
			// Editing re-logs the day: the prior entry is replaced wholesale.
			m.entryForm.Status = existing.Status
			m.entryForm.Time = strconv.Itoa(existing.TimeSpentMin)
			m.entryForm.Notes = existing.Notes
		}
		m.form = newEntryForm(m.entryForm)
		m.state = StateLogEntry
		return m, m.form.Init()
	}

	switch m.state {
	case StateAddHabit, StateEditHabit:
		return m.updateHabitForm(msg)
	case StateLogEntry:
		return m.updateEntryForm(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	return m.updateBrowse(msg)
}

func (m Model) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(keyMsg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		case key.Matches(keyMsg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

		if m.state == StateMonth {
			switch {
			case key.Matches(keyMsg, m.keys.PrevMonth):
				m.month = m.month.AddDate(0, -1, 0)
				return m, nil
			case key.Matches(keyMsg, m.keys.NextMonth):
				m.month = m.month.AddDate(0, 1, 0)
				return m, nil
			}
		}
	}

	if m.state == StateHabits || m.state == StateTrend || m.state == StateJournal {
		var cmd tea.Cmd
		m.habitList, cmd = m.habitList.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) updateHabitForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.editingHabit = nil
		m.state = StateHabits
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		target := parseMinutes(m.habitForm.Target)
		var err error
		if m.editingHabit != nil {
			err = m.store.UpdateHabit(m.editingHabit.ID, m.habitForm.Name, target)
		} else {
			_, err = m.store.AddHabit(m.habitForm.Name, target)
		}
		if err != nil {
			// Stay in the form so the user can correct or cancel with ESC.
			m.form.State = huh.StateNormal
			return m, cmd
		}
		m.editingHabit = nil
		m.refreshHabits()
		m.state = StateHabits
	case huh.StateAborted:
		m.editingHabit = nil
		m.state = StateHabits
	}

	return m, cmd
}

func (m Model) updateEntryForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.loggingHabit = nil
		m.state = StateHabits
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if m.loggingHabit != nil {
			today := time.Now().Format(constants.DateFormat)
			_, err := m.store.UpsertEntry(m.loggingHabit.ID, today, m.entryForm.Status, parseMinutes(m.entryForm.Time), m.entryForm.Notes)
			if err != nil {
				m.form.State = huh.StateNormal
				return m, cmd
			}
		}
		m.loggingHabit = nil
		m.refreshHabits()
		m.state = StateHabits
	case huh.StateAborted:
		m.loggingHabit = nil
		m.state = StateHabits
	}

	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		if m.habitToDelete != nil {
			// Unconditional once confirmed; entries cascade.
			_ = m.store.DeleteHabit(m.habitToDelete.ID)
		}
		m.habitToDelete = nil
		m.refreshHabits()
		m.state = StateHabits
	case "n", "N", "esc", "q":
		m.habitToDelete = nil
		m.state = StateHabits
	}

	return m, nil
}
