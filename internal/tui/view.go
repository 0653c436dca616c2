package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/solidstreak/streak-cli/internal/colors"
	"github.com/solidstreak/streak-cli/internal/i18n"
)

const heatmapWeeks = 16

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case stateHabits:
		content = docStyle.Render(m.activeList.View())
	case stateHeatmap:
		content = docStyle.Render(Heatmap(m.habits.Activities(), heatmapWeeks, colors.Green, m.lang))
	case stateArchived:
		content = docStyle.Render(m.archivedList.View())
	case stateForm:
		content = m.form.View()
	case stateConfirmArchive:
		content = m.viewConfirm(i18n.T(m.lang, "confirm.archive"), warningStyle)
	case stateConfirmDelete:
		content = m.viewConfirm(i18n.T(m.lang, "confirm.delete"), dangerStyle)
	}

	var status string
	if m.statusErr != "" {
		status = dangerStyle.Render("⚠ " + m.statusErr)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		status,
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	titles := []string{
		i18n.T(m.lang, "tabs.habits"),
		i18n.T(m.lang, "tabs.heatmap"),
		i18n.T(m.lang, "tabs.archived"),
	}
	active := m.state
	if active >= numMainTabs {
		active = m.previousState
	}
	for i, title := range titles {
		if active == sessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewConfirm(question string, style lipgloss.Style) string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			style.Render(question),
			"",
			i18n.T(m.lang, "confirm.yes"),
			i18n.T(m.lang, "confirm.no"),
		),
	)
}
