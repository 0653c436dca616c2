package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/solidstreak/streak-cli/internal/api"
	"github.com/solidstreak/streak-cli/internal/errors"
	"github.com/solidstreak/streak-cli/internal/i18n"
	"github.com/solidstreak/streak-cli/internal/models"
	"github.com/solidstreak/streak-cli/internal/tui/components/habitlist"
	"github.com/solidstreak/streak-cli/internal/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle the habit form
	if m.state == stateForm {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = stateHabits
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			habit := models.Habit{
				Title:       m.habitForm.Title,
				Description: m.habitForm.Description,
				Color:       m.habitForm.Color,
				IsPublic:    m.habitForm.Public,
			}

			var result *api.RequestResult
			if existing := m.habits.HabitByID(m.editingID); m.editingID != 0 && existing != nil {
				updated := *existing
				updated.Title = habit.Title
				updated.Description = habit.Description
				updated.Color = habit.Color
				updated.IsPublic = habit.IsPublic
				result = m.habits.UpdateHabit(context.Background(), m.userID, updated)
			} else {
				result = m.habits.CreateHabit(context.Background(), m.userID, habit)
			}

			if err := errors.FromResult(result); err != nil {
				// Stay in the form so the input is not lost.
				m.statusErr = err.Error()
				m.form.State = huh.StateNormal
				return m, tea.Batch(cmds...)
			}
			m.statusErr = ""
			m.refreshLists()
			m.state = stateHabits
		case huh.StateAborted:
			m.state = stateHabits
		}
		return m, tea.Batch(cmds...)
	}

	// Handle confirm dialogs
	if m.state == stateConfirmArchive {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				m.applyResult(m.habits.SetHabitArchived(context.Background(), m.userID, m.pendingID, true))
				m.state = stateHabits
				m.pendingID = 0
			case "n", "N", "esc", "q":
				m.state = stateHabits
				m.pendingID = 0
			}
		}
		return m, nil
	}

	if m.state == stateConfirmDelete {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				m.applyResult(m.habits.DeleteHabit(context.Background(), m.userID, m.pendingID))
				m.state = m.previousState
				m.pendingID = 0
			case "n", "N", "esc", "q":
				m.state = m.previousState
				m.pendingID = 0
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		listHeight := msg.Height - 4 // tabs + help

		h, v := docStyle.GetFrameSize()
		m.activeList.SetSize(msg.Width-h, listHeight-v)
		m.archivedList.SetSize(msg.Width-h, listHeight-v)

	case habitlist.AddHabitMsg:
		m.habitForm = &HabitFormModel{Color: "green"}
		m.editingID = 0
		m.form = NewHabitForm(m.habitForm, m.lang)
		m.state = stateForm
		return m, m.form.Init()

	case habitlist.EditHabitMsg:
		habit := m.habits.HabitByID(msg.ID)
		if habit == nil {
			return m, nil
		}
		m.habitForm = &HabitFormModel{
			Title:       habit.Title,
			Description: habit.Description,
			Color:       habit.Color,
			Public:      habit.IsPublic,
		}
		m.editingID = habit.ID
		m.form = NewHabitForm(m.habitForm, m.lang)
		m.state = stateForm
		return m, m.form.Init()

	case habitlist.ToggleCheckMsg:
		habit := m.habits.HabitByID(msg.ID)
		if habit == nil {
			return m, nil
		}
		today := utils.DateToLocalString(time.Now())
		completed := true
		if existing := habit.CheckFor(today); existing != nil {
			completed = !existing.Completed
		}
		check := models.HabitCheck{CheckDate: today, Completed: completed, CheckedAt: time.Now()}
		m.applyResult(m.habits.SetHabitCheck(context.Background(), m.userID, msg.ID, check))
		return m, nil

	case habitlist.ArchiveHabitMsg:
		m.pendingID = msg.ID
		m.state = stateConfirmArchive
		return m, nil

	case habitlist.UnarchiveHabitMsg:
		m.applyResult(m.habits.SetHabitArchived(context.Background(), m.userID, msg.ID, false))
		return m, nil

	case habitlist.DeleteHabitMsg:
		m.pendingID = msg.ID
		m.previousState = m.state
		m.state = stateConfirmDelete
		return m, nil

	case tea.KeyMsg:
		if m.filtering() {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % numMainTabs
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + numMainTabs) % numMainTabs
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			m.applyResult(m.habits.FetchHabits(context.Background(), m.userID))
			return m, nil
		case key.Matches(msg, m.keys.Lang):
			m.cycleLang()
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case stateHabits:
		m.activeList, cmd = m.activeList.Update(msg)
		cmds = append(cmds, cmd)
	case stateArchived:
		m.archivedList, cmd = m.archivedList.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// applyResult refreshes the lists after a store action and surfaces the
// failure, if any, in the status line.
func (m *Model) applyResult(result *api.RequestResult) {
	if err := errors.FromResult(result); err != nil {
		m.statusErr = err.Error()
	} else {
		m.statusErr = ""
	}
	m.refreshLists()
}

// filtering reports whether the focused list is in filter-typing mode, in
// which case global single-letter keybinds must not fire.
func (m Model) filtering() bool {
	switch m.state {
	case stateHabits:
		return m.activeList.Filtering()
	case stateArchived:
		return m.archivedList.Filtering()
	}
	return false
}

func (m *Model) cycleLang() {
	next := 0
	for i, l := range i18n.Langs {
		if l.Code == m.lang {
			next = (i + 1) % len(i18n.Langs)
			break
		}
	}
	m.lang = i18n.Langs[next].Code
	if err := m.users.SetLang(m.lang); err != nil {
		m.statusErr = err.Error()
	}
	m.activeList.SetLang(m.lang)
	m.archivedList.SetLang(m.lang)
	m.refreshLists()
}
