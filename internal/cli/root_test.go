package cli

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/solidstreak/streak-cli/internal/api"
	"github.com/solidstreak/streak-cli/internal/constants"
	"github.com/solidstreak/streak-cli/internal/prefs"
	"github.com/solidstreak/streak-cli/internal/store"
)

func newTestContext(t *testing.T, handler http.HandlerFunc) *Context {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := api.New(server.URL, "test-init-data")
	return &Context{
		API:       client,
		Habits:    store.NewHabitStore(client),
		Users:     store.NewUserStore(client, prefs.NewMemory()),
		Prefs:     prefs.NewMemory(),
		ServerURL: server.URL,
	}
}

func TestUserID(t *testing.T) {
	ctx := newTestContext(t, func(w http.ResponseWriter, r *http.Request) {})

	if _, err := ctx.UserID(); err == nil {
		t.Error("expected error before login")
	}

	if err := ctx.Prefs.Set(constants.PrefKeyUserID, "42"); err != nil {
		t.Fatal(err)
	}
	id, err := ctx.UserID()
	if err != nil {
		t.Fatalf("UserID failed: %v", err)
	}
	if id != 42 {
		t.Errorf("UserID = %d, want 42", id)
	}

	if err := ctx.Prefs.Set(constants.PrefKeyUserID, "not-a-number"); err != nil {
		t.Fatal(err)
	}
	if _, err := ctx.UserID(); err == nil {
		t.Error("expected error for corrupted user id")
	}
}

func TestFindHabit(t *testing.T) {
	ctx := newTestContext(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[
			{"id":1,"title":"Read","archived":false},
			{"id":2,"title":"Run","archived":true}
		]}`))
	})
	if err := ctx.Prefs.Set(constants.PrefKeyUserID, "7"); err != nil {
		t.Fatal(err)
	}
	if err := ctx.LoadHabits(context.Background()); err != nil {
		t.Fatalf("LoadHabits failed: %v", err)
	}

	tests := []struct {
		name    string
		ref     string
		wantID  int64
		wantErr bool
	}{
		{"by id", "1", 1, false},
		{"by title", "Read", 1, false},
		{"title is case-insensitive", "rUn", 2, false},
		{"archived habits are found too", "2", 2, false},
		{"unknown id", "99", 0, true},
		{"unknown title", "Sleep", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := ctx.FindHabit(tt.ref)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("FindHabit(%q) succeeded, want error", tt.ref)
				}
				return
			}
			if err != nil {
				t.Fatalf("FindHabit(%q) failed: %v", tt.ref, err)
			}
			if h.ID != tt.wantID {
				t.Errorf("FindHabit(%q).ID = %d, want %d", tt.ref, h.ID, tt.wantID)
			}
		})
	}
}

func TestLoadHabitsRequiresLogin(t *testing.T) {
	ctx := newTestContext(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected without a stored user id")
	})

	if err := ctx.LoadHabits(context.Background()); err == nil {
		t.Error("expected error when not logged in")
	}
}
