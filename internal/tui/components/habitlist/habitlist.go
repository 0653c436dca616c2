// Package habitlist is the bubbles/list wrapper behind the Habits and
// Archived tabs. It owns selection and keybinds and emits messages for
// the parent model to act on; it never talks to the server itself.
package habitlist

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/solidstreak/streak-cli/internal/colors"
	"github.com/solidstreak/streak-cli/internal/i18n"
	"github.com/solidstreak/streak-cli/internal/models"
	"github.com/solidstreak/streak-cli/internal/utils"
)

type AddHabitMsg struct{}

type EditHabitMsg struct {
	ID int64
}

type ToggleCheckMsg struct {
	ID int64
}

type ArchiveHabitMsg struct {
	ID int64
}

type UnarchiveHabitMsg struct {
	ID int64
}

type DeleteHabitMsg struct {
	ID int64
}

type Item struct {
	Habit *models.Habit
	Today string
	Lang  string
}

func (i Item) checkedToday() bool {
	check := i.Habit.CheckFor(i.Today)
	return check != nil && check.Completed
}

func (i Item) Title() string {
	dot := lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.ByName(i.Habit.Color).Hex500)).
		Render("●")
	mark := "○"
	if i.Habit.Archived {
		mark = " "
	} else if i.checkedToday() {
		mark = "✓"
	}
	return dot + " " + mark + " " + i.Habit.Title
}

func (i Item) Description() string {
	if i.Habit.Archived {
		return i18n.T(i.Lang, "habits.archived")
	}
	desc := i.Habit.Description
	if desc == "" {
		if i.checkedToday() {
			desc = i18n.T(i.Lang, "habits.checked")
		} else {
			desc = i18n.T(i.Lang, "habits.unchecked")
		}
	}
	if i.Habit.IsPublic {
		desc += " · " + i18n.T(i.Lang, "habits.public")
	}
	return desc
}

func (i Item) FilterValue() string { return i.Habit.Title }

type KeyMap struct {
	Add       key.Binding
	Edit      key.Binding
	Toggle    key.Binding
	Archive   key.Binding
	Unarchive key.Binding
	Delete    key.Binding
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
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "check/uncheck"),
		),
		Archive: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "archive"),
		),
		Unarchive: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "unarchive"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list     list.Model
	keys     KeyMap
	lang     string
	archived bool
}

// New builds the list for either the active or the archived view.
func New(habits []*models.Habit, lang string, archived bool, width, height int) Model {
	l := list.New(buildItems(habits, lang), list.NewDefaultDelegate(), width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	var extra []key.Binding
	if archived {
		extra = []key.Binding{keys.Unarchive, keys.Delete}
	} else {
		extra = []key.Binding{keys.Add, keys.Edit, keys.Toggle, keys.Archive, keys.Delete}
	}
	l.AdditionalShortHelpKeys = func() []key.Binding { return extra }
	l.AdditionalFullHelpKeys = func() []key.Binding { return extra }

	return Model{list: l, keys: keys, lang: lang, archived: archived}
}

func buildItems(habits []*models.Habit, lang string) []list.Item {
	today := utils.DateToLocalString(time.Now())
	items := make([]list.Item, len(habits))
	for i, h := range habits {
		items[i] = Item{Habit: h, Today: today, Lang: lang}
	}
	return items
}

// SetHabits replaces the list contents, keeping the selection in range.
func (m *Model) SetHabits(habits []*models.Habit) {
	m.list.SetItems(buildItems(habits, m.lang))
}

func (m *Model) SetLang(lang string) {
	m.lang = lang
}

func (m Model) Selected() *models.Habit {
	if i, ok := m.list.SelectedItem().(Item); ok {
		return i.Habit
	}
	return nil
}

// Filtering reports whether the user is typing a filter query.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add) && !m.archived:
			return m, func() tea.Msg { return AddHabitMsg{} }
		case key.Matches(msg, m.keys.Edit) && !m.archived:
			if h := m.Selected(); h != nil {
				return m, func() tea.Msg { return EditHabitMsg{ID: h.ID} }
			}
		case key.Matches(msg, m.keys.Toggle) && !m.archived:
			if h := m.Selected(); h != nil {
				return m, func() tea.Msg { return ToggleCheckMsg{ID: h.ID} }
			}
		case key.Matches(msg, m.keys.Archive) && !m.archived:
			if h := m.Selected(); h != nil {
				return m, func() tea.Msg { return ArchiveHabitMsg{ID: h.ID} }
			}
		case key.Matches(msg, m.keys.Unarchive) && m.archived:
			if h := m.Selected(); h != nil {
				return m, func() tea.Msg { return UnarchiveHabitMsg{ID: h.ID} }
			}
		case key.Matches(msg, m.keys.Delete):
			if h := m.Selected(); h != nil {
				return m, func() tea.Msg { return DeleteHabitMsg{ID: h.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		if m.archived {
			return "\n  " + i18n.T(m.lang, "archived.empty")
		}
		return "\n  " + i18n.T(m.lang, "habits.empty")
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
