// Package cli holds the kong command tree for the streak binary. Commands
// talk to the server through the stores in Context; nothing here keeps
// state beyond a single invocation.
package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/solidstreak/streak-cli/internal/api"
	"github.com/solidstreak/streak-cli/internal/constants"
	"github.com/solidstreak/streak-cli/internal/errors"
	"github.com/solidstreak/streak-cli/internal/models"
	"github.com/solidstreak/streak-cli/internal/prefs"
	"github.com/solidstreak/streak-cli/internal/store"
)

type Context struct {
	API       *api.Client
	Habits    *store.HabitStore
	Users     *store.UserStore
	Prefs     prefs.Store
	ServerURL string
	ConfigDir string
	InitData  string
}

// UserID returns the server-assigned user id persisted at login.
func (c *Context) UserID() (int64, error) {
	raw, err := c.Prefs.Get(constants.PrefKeyUserID)
	if err != nil {
		return 0, fmt.Errorf("not logged in (run 'streak login')")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("stored user id %q is invalid (run 'streak login')", raw)
	}
	return id, nil
}

// LoadHabits refreshes the habit store from the server.
func (c *Context) LoadHabits(ctx context.Context) error {
	userID, err := c.UserID()
	if err != nil {
		return err
	}
	return errors.FromResult(c.Habits.FetchHabits(ctx, userID))
}

// FindHabit resolves a command argument to a loaded habit. Numeric
// arguments match by id, anything else by case-insensitive title.
func (c *Context) FindHabit(ref string) (*models.Habit, error) {
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		if h := c.Habits.HabitByID(id); h != nil {
			return h, nil
		}
	}
	for _, h := range c.Habits.Habits() {
		if strings.EqualFold(h.Title, ref) {
			return h, nil
		}
	}
	return nil, fmt.Errorf("habit %q not found", ref)
}
