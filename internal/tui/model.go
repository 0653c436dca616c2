// Package tui is the interactive habit view: a habit list with check-in
// controls, a calendar heatmap and an archive tab, backed by the same
// stores the CLI commands use.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/solidstreak/streak-cli/internal/store"
	"github.com/solidstreak/streak-cli/internal/tui/components/habitlist"
)

type sessionState int

const (
	stateHabits sessionState = iota
	stateHeatmap
	stateArchived
	numMainTabs

	stateForm
	stateConfirmArchive
	stateConfirmDelete
)

type HabitFormModel struct {
	Title       string
	Description string
	Color       string
	Public      bool
}

type Model struct {
	habits *store.HabitStore
	users  *store.UserStore
	userID int64
	lang   string

	state         sessionState
	previousState sessionState
	keys          KeyMap
	help          help.Model

	activeList   habitlist.Model
	archivedList habitlist.Model

	form      *huh.Form
	habitForm *HabitFormModel
	editingID int64 // 0 while adding
	pendingID int64 // target of the open confirm dialog

	statusErr string
	quitting  bool
	width     int
	height    int
}

// NewModel assumes the habit store has already been fetched.
func NewModel(habits *store.HabitStore, users *store.UserStore, userID int64) Model {
	lang := users.Lang()
	return Model{
		habits:       habits,
		users:        users,
		userID:       userID,
		lang:         lang,
		state:        stateHabits,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		activeList:   habitlist.New(habits.ActiveHabits(), lang, false, 0, 0),
		archivedList: habitlist.New(habits.ArchivedHabits(), lang, true, 0, 0),
	}
}

// refreshLists rebuilds both list components from the store.
func (m *Model) refreshLists() {
	m.activeList.SetHabits(m.habits.ActiveHabits())
	m.archivedList.SetHabits(m.habits.ArchivedHabits())
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Tab, m.keys.Refresh, m.keys.Quit, m.keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Refresh, m.keys.Lang, m.keys.Quit, m.keys.Help}
	listKeys := habitlist.DefaultKeyMap()
	var actions []key.Binding
	switch m.state {
	case stateHabits:
		actions = []key.Binding{listKeys.Add, listKeys.Edit, listKeys.Toggle, listKeys.Archive, listKeys.Delete}
	case stateArchived:
		actions = []key.Binding{listKeys.Unarchive, listKeys.Delete}
	}
	return [][]key.Binding{global, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}
