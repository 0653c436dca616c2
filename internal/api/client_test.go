package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/solidstreak/streak-cli/internal/constants"
	"github.com/solidstreak/streak-cli/internal/models"
)

func TestRequestHeaders(t *testing.T) {
	seen := make(map[string]bool)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get(constants.HeaderInitData); got != "init-data-token" {
			t.Errorf("%s = %q, want %q", constants.HeaderInitData, got, "init-data-token")
		}
		requestID := r.Header.Get(constants.HeaderRequestID)
		if _, err := uuid.Parse(requestID); err != nil {
			t.Errorf("%s = %q, not a UUID: %v", constants.HeaderRequestID, requestID, err)
		}
		if seen[requestID] {
			t.Errorf("request id %q reused across calls", requestID)
		}
		seen[requestID] = true
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	client := New(server.URL, "init-data-token")
	for i := 0; i < 3; i++ {
		if result := client.FetchHabits(context.Background(), 1); !result.Success {
			t.Fatalf("FetchHabits failed: %+v", result)
		}
	}
}

func TestRoutesAndMethods(t *testing.T) {
	type call struct {
		method string
		path   string
	}
	var got call
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = call{method: r.Method, path: r.URL.RequestURI()}
		_, _ = w.Write([]byte(`{"data":null}`))
	}))
	defer server.Close()

	client := New(server.URL, "tok")
	ctx := context.Background()

	tests := []struct {
		name string
		do   func()
		want call
	}{
		{
			name: "fetch habits",
			do:   func() { client.FetchHabits(ctx, 7) },
			want: call{http.MethodGet, "/api/v1/users/7/habits?with_checks=true"},
		},
		{
			name: "post habit",
			do:   func() { client.PostHabit(ctx, 7, models.Habit{Title: "Read"}) },
			want: call{http.MethodPost, "/api/v1/users/7/habits"},
		},
		{
			name: "put habit",
			do:   func() { client.PutHabit(ctx, 7, models.Habit{ID: 3}) },
			want: call{http.MethodPut, "/api/v1/users/7/habits/3"},
		},
		{
			name: "delete habit",
			do:   func() { client.DeleteHabit(ctx, 7, 3) },
			want: call{http.MethodDelete, "/api/v1/users/7/habits/3"},
		},
		{
			name: "post check",
			do:   func() { client.PostHabitCheck(ctx, 7, 3, models.HabitCheck{CheckDate: "2024-03-05"}) },
			want: call{http.MethodPost, "/api/v1/users/7/habits/3/checks"},
		},
		{
			name: "upsert user info",
			do:   func() { client.UpsertUserInfo(ctx, models.User{TgID: 1}, TgChat{TgID: 1}) },
			want: call{http.MethodPost, "/api/v1/user-info/upsert"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.do()
			if got != tt.want {
				t.Errorf("call = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMetaUsernameAttachment(t *testing.T) {
	var body struct {
		Meta *Metadata `json:"meta"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body.Meta = nil
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"data":null}`))
	}))
	defer server.Close()

	client := New(server.URL, "tok")

	client.PostHabit(context.Background(), 7, models.Habit{Title: "Read"})
	if body.Meta != nil {
		t.Errorf("meta sent without username configured: %+v", body.Meta)
	}

	client.SetUsername("ada")
	client.PostHabit(context.Background(), 7, models.Habit{Title: "Read"})
	if body.Meta == nil || body.Meta.Username != "ada" {
		t.Errorf("meta = %+v, want username ada", body.Meta)
	}
}

func TestFailureNormalization(t *testing.T) {
	tests := []struct {
		name          string
		handler       http.HandlerFunc
		wantCode      int
		wantAPIErrors int
	}{
		{
			name: "non-2xx with structured errors",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(`{"errors":[{"status":"404","title":"not found","detail":"no habit"}]}`))
			},
			wantCode:      404,
			wantAPIErrors: 1,
		},
		{
			name: "non-2xx with unparseable body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`<html>oops</html>`))
			},
			wantCode:      500,
			wantAPIErrors: 0,
		},
		{
			name: "malformed body on 200",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"data":`))
			},
			wantCode:      200,
			wantAPIErrors: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := New(server.URL, "tok")
			result := client.FetchHabits(context.Background(), 7)

			if result.Success {
				t.Fatal("expected failure")
			}
			if result.HTTPCode != tt.wantCode {
				t.Errorf("HTTPCode = %d, want %d", result.HTTPCode, tt.wantCode)
			}
			if result.HTTPError == "" {
				t.Error("HTTPError is empty")
			}
			if len(result.APIErrors) != tt.wantAPIErrors {
				t.Errorf("APIErrors = %+v, want %d entries", result.APIErrors, tt.wantAPIErrors)
			}
		})
	}
}

func TestNetworkErrorBecomes500(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing is listening anymore

	client := New(server.URL, "tok")
	result := client.FetchHabits(context.Background(), 7)

	if result.Success {
		t.Fatal("expected failure")
	}
	if result.HTTPCode != 500 {
		t.Errorf("HTTPCode = %d, want 500", result.HTTPCode)
	}
	if result.HTTPError == "" {
		t.Error("HTTPError is empty")
	}
	if len(result.APIErrors) != 0 {
		t.Errorf("APIErrors = %+v, want empty", result.APIErrors)
	}
}

func TestEnvelopeDecoding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"id":5,"title":"Read","archived":false,"isPublic":true}}`))
	}))
	defer server.Close()

	client := New(server.URL, "tok")
	result := client.PostHabit(context.Background(), 7, models.Habit{Title: "Read"})
	if !result.Success {
		t.Fatalf("PostHabit failed: %+v", result)
	}

	habit, err := result.Habit()
	if err != nil {
		t.Fatalf("Habit() failed: %v", err)
	}
	if habit.ID != 5 || habit.Title != "Read" || !habit.IsPublic {
		t.Errorf("decoded habit = %+v", habit)
	}
}

func TestErrorString(t *testing.T) {
	e := Error{HTTPCode: 404, Title: "not found", Detail: "no habit"}
	if got := e.Error(); got != "not found: no habit" {
		t.Errorf("Error() = %q", got)
	}
	e = Error{HTTPCode: 500, Title: "internal server error"}
	if got := e.Error(); got != "internal server error" {
		t.Errorf("Error() without detail = %q", got)
	}
}
