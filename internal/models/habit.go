package models

import "time"

// HabitCheck is a per-calendar-day completion record for a habit. CheckDate
// is a local calendar day in YYYY-MM-DD form; a habit holds at most one
// check per day.
type HabitCheck struct {
	CheckDate string    `json:"checkDate"`
	Completed bool      `json:"completed"`
	CheckedAt time.Time `json:"checkedAt"`
}

// Habit mirrors the server's habit record. ID is server-assigned; a draft
// habit sent for creation leaves it zero.
type Habit struct {
	ID          int64        `json:"id"`
	Archived    bool         `json:"archived"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Color       string       `json:"color,omitempty"`
	IsPublic    bool         `json:"isPublic"`
	CreatedAt   *time.Time   `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time   `json:"updatedAt,omitempty"`
	Checks      []HabitCheck `json:"checks,omitempty"`
}

// CheckFor returns the check recorded for the given day, or nil.
func (h *Habit) CheckFor(day string) *HabitCheck {
	for i := range h.Checks {
		if h.Checks[i].CheckDate == day {
			return &h.Checks[i]
		}
	}
	return nil
}
