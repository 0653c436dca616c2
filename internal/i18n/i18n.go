// Package i18n holds the message tables for the languages the client
// ships with. Lookup falls back to English, then to the key itself so a
// missing translation never blanks the UI.
package i18n

import "github.com/solidstreak/streak-cli/internal/constants"

// Lang is one selectable display language.
type Lang struct {
	Code string
	Name string
}

// Langs lists the supported languages in display order.
var Langs = []Lang{
	{Code: "en", Name: "Eng"},
	{Code: "ru", Name: "Рус"},
}

// Supported reports whether code is one of the shipped languages.
func Supported(code string) bool {
	for _, l := range Langs {
		if l.Code == code {
			return true
		}
	}
	return false
}

var messages = map[string]map[string]string{
	"en": {
		"tabs.habits":      "Habits",
		"tabs.heatmap":     "Heatmap",
		"tabs.archived":    "Archived",
		"habits.empty":     "No habits yet. Press 'a' to add one.",
		"habits.checked":   "completed today",
		"habits.unchecked": "not completed today",
		"habits.archived":  "archived",
		"habits.public":    "public",
		"habits.private":   "private",
		"archived.empty":   "No archived habits.",
		"heatmap.title":    "Check-ins, last %d weeks",
		"heatmap.less":     "less",
		"heatmap.more":     "more",
		"form.add.title":   "New habit",
		"form.edit.title":  "Edit habit",
		"form.title":       "Title",
		"form.description": "Description",
		"form.color":       "Color",
		"form.public":      "Visible on the public board",
		"form.title.empty": "title cannot be empty",
		"confirm.archive":  "Archive this habit?",
		"confirm.delete":   "Delete this habit and all of its check-ins?",
		"confirm.yes":      "[y] Yes",
		"confirm.no":       "[n] No",
		"errors.network":   "Could not reach the server",
		"errors.notfound":  "Habit not found",
	},
	"ru": {
		"tabs.habits":      "Привычки",
		"tabs.heatmap":     "Календарь",
		"tabs.archived":    "Архив",
		"habits.empty":     "Привычек пока нет. Нажмите 'a', чтобы добавить.",
		"habits.checked":   "выполнено сегодня",
		"habits.unchecked": "не выполнено сегодня",
		"habits.archived":  "в архиве",
		"habits.public":    "публичная",
		"habits.private":   "личная",
		"archived.empty":   "В архиве пусто.",
		"heatmap.title":    "Отметки за последние %d нед.",
		"heatmap.less":     "меньше",
		"heatmap.more":     "больше",
		"form.add.title":   "Новая привычка",
		"form.edit.title":  "Изменить привычку",
		"form.title":       "Название",
		"form.description": "Описание",
		"form.color":       "Цвет",
		"form.public":      "Показывать на общей доске",
		"form.title.empty": "название не может быть пустым",
		"confirm.archive":  "Отправить привычку в архив?",
		"confirm.delete":   "Удалить привычку и все отметки?",
		"confirm.yes":      "[y] Да",
		"confirm.no":       "[n] Нет",
		"errors.network":   "Не удалось связаться с сервером",
		"errors.notfound":  "Привычка не найдена",
	},
}

// T resolves key in lang, falling back to the default language and then
// the key itself.
func T(lang, key string) string {
	if table, ok := messages[lang]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := messages[constants.DefaultLang][key]; ok {
		return msg
	}
	return key
}
