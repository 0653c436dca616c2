// Package store holds the client-side projection of server state: the
// authenticated user and their habits. Stores reconcile in-memory state
// against API responses after each action instead of refetching.
package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/solidstreak/streak-cli/internal/api"
	"github.com/solidstreak/streak-cli/internal/models"
)

// HabitStore keeps the user's habits both in display order and in an id
// index. Both containers reference the same records, so an in-place
// mutation through the index is visible through the ordered view.
//
// The store is owned by a single goroutine (a CLI command or the TUI
// event loop); it is not safe for concurrent use.
type HabitStore struct {
	api    *api.Client
	habits []*models.Habit
	byID   map[int64]*models.Habit
}

func NewHabitStore(client *api.Client) *HabitStore {
	return &HabitStore{
		api:  client,
		byID: make(map[int64]*models.Habit),
	}
}

// FetchHabits replaces local state with the server's habit list. This
// happens on any outcome: a failed fetch means the state is unknown, so
// both containers are rebuilt from whatever the response carried (empty
// on failure) rather than left stale from a previous fetch or user.
func (s *HabitStore) FetchHabits(ctx context.Context, userID int64) *api.RequestResult {
	result := s.api.FetchHabits(ctx, userID)

	habits, err := result.Habits()
	if err != nil {
		habits = nil
	}

	s.habits = make([]*models.Habit, 0, len(habits))
	s.byID = make(map[int64]*models.Habit, len(habits))
	for i := range habits {
		h := &habits[i]
		s.habits = append(s.habits, h)
		s.byID[h.ID] = h
	}

	return result
}

// CreateHabit posts a draft habit and, on success, inserts the
// server-returned record (with its assigned id and timestamps) into both
// containers. On failure local state is untouched; there is no
// optimistic insert.
func (s *HabitStore) CreateHabit(ctx context.Context, userID int64, habit models.Habit) *api.RequestResult {
	result := s.api.PostHabit(ctx, userID, habit)
	if !result.Success {
		return result
	}

	created, err := result.Habit()
	if err != nil {
		return result
	}
	s.habits = append(s.habits, &created)
	s.byID[created.ID] = &created

	return result
}

// UpdateHabit puts the full habit and, on success, copies the mutable
// fields from the response onto the stored record in place. The record's
// identity is preserved, so the ordered view and any references held by
// callers observe the change, and the check history — which the update
// endpoint does not round-trip — survives untouched.
func (s *HabitStore) UpdateHabit(ctx context.Context, userID int64, habit models.Habit) *api.RequestResult {
	result := s.api.PutHabit(ctx, userID, habit)
	if !result.Success {
		return result
	}

	updated, err := result.Habit()
	if err != nil {
		return result
	}

	stored, ok := s.byID[updated.ID]
	if !ok {
		// Unknown locally (e.g. created from another session); insert so
		// the containers reflect the server.
		s.habits = append(s.habits, &updated)
		s.byID[updated.ID] = &updated
		return result
	}

	stored.Title = updated.Title
	stored.Description = updated.Description
	stored.Color = updated.Color
	stored.IsPublic = updated.IsPublic
	stored.Archived = updated.Archived
	stored.UpdatedAt = updated.UpdatedAt

	return result
}

// SetHabitArchived flips the archived flag through UpdateHabit. An
// unknown id fails locally with a 404-shaped envelope; no request is
// issued.
func (s *HabitStore) SetHabitArchived(ctx context.Context, userID, habitID int64, archived bool) *api.RequestResult {
	habit, ok := s.byID[habitID]
	if !ok {
		return &api.RequestResult{
			Success:   false,
			HTTPCode:  404,
			HTTPError: "habit not found",
			APIErrors: []api.Error{{
				HTTPCode: 404,
				Title:    "not found",
				Detail:   fmt.Sprintf("couldn't find habit with id %d", habitID),
			}},
		}
	}

	updated := models.Habit{
		ID:          habit.ID,
		Title:       habit.Title,
		Description: habit.Description,
		Color:       habit.Color,
		IsPublic:    habit.IsPublic,
		Archived:    archived,
	}
	return s.UpdateHabit(ctx, userID, updated)
}

// DeleteHabit removes the habit server-side and, on success, drops it
// from both containers.
func (s *HabitStore) DeleteHabit(ctx context.Context, userID, habitID int64) *api.RequestResult {
	result := s.api.DeleteHabit(ctx, userID, habitID)
	if !result.Success {
		return result
	}

	delete(s.byID, habitID)
	kept := s.habits[:0]
	for _, h := range s.habits {
		if h.ID != habitID {
			kept = append(kept, h)
		}
	}
	s.habits = kept

	return result
}

// SetHabitCheck posts a check and, on success, upserts it into the
// habit's check list keyed by calendar day: an existing entry for the
// date is toggled in place, otherwise the check is appended. Checking
// the same day twice never duplicates the entry.
func (s *HabitStore) SetHabitCheck(ctx context.Context, userID, habitID int64, check models.HabitCheck) *api.RequestResult {
	result := s.api.PostHabitCheck(ctx, userID, habitID, check)
	if !result.Success {
		return result
	}

	habit, ok := s.byID[habitID]
	if !ok {
		return result
	}
	for i := range habit.Checks {
		if habit.Checks[i].CheckDate == check.CheckDate {
			habit.Checks[i].Completed = check.Completed
			habit.Checks[i].CheckedAt = check.CheckedAt
			return result
		}
	}
	habit.Checks = append(habit.Checks, check)

	return result
}

// Habits returns the habits in display order. The slice is a copy; the
// records are shared.
func (s *HabitStore) Habits() []*models.Habit {
	out := make([]*models.Habit, len(s.habits))
	copy(out, s.habits)
	return out
}

// HabitByID returns the stored habit or nil.
func (s *HabitStore) HabitByID(id int64) *models.Habit {
	return s.byID[id]
}

// ActiveHabits returns the non-archived habits in display order.
func (s *HabitStore) ActiveHabits() []*models.Habit {
	var out []*models.Habit
	for _, h := range s.habits {
		if !h.Archived {
			out = append(out, h)
		}
	}
	return out
}

// ArchivedHabits returns the archived habits in display order.
func (s *HabitStore) ArchivedHabits() []*models.Habit {
	var out []*models.Habit
	for _, h := range s.habits {
		if h.Archived {
			out = append(out, h)
		}
	}
	return out
}

// ActiveHabitsCount returns the number of non-archived habits.
func (s *HabitStore) ActiveHabitsCount() int {
	count := 0
	for _, h := range s.habits {
		if !h.Archived {
			count++
		}
	}
	return count
}

// Activity is one day's completed-check total across active habits.
type Activity struct {
	Date  string
	Count int
}

// Activities projects the completed checks of active habits into a per-day
// histogram, sorted by date. Archived habits are excluded. Recomputed on
// every call; nothing is cached.
func (s *HabitStore) Activities() []Activity {
	counts := make(map[string]int)
	for _, h := range s.habits {
		if h.Archived {
			continue
		}
		for _, check := range h.Checks {
			if check.Completed {
				counts[check.CheckDate]++
			}
		}
	}

	out := make([]Activity, 0, len(counts))
	for date, count := range counts {
		out = append(out, Activity{Date: date, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
