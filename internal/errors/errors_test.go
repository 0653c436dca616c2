package errors

import (
	"errors"
	"testing"

	"github.com/solidstreak/streak-cli/internal/api"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
		{
			name: "simple error",
			err:  errors.New("habit not found"),
			want: "Error: habit not found",
		},
		{
			name: "wrapped error",
			err:  errors.New("sync failed: connection refused"),
			want: "Error: sync failed: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.err); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestFormatf(t *testing.T) {
	got := Formatf("habit %q not found", "Read")
	want := `Error: habit "Read" not found`
	if got != want {
		t.Errorf("Formatf() = %q, want %q", got, want)
	}
}

func TestFromResult(t *testing.T) {
	tests := []struct {
		name    string
		result  *api.RequestResult
		want    string
		wantNil bool
	}{
		{
			name:    "success yields nil",
			result:  &api.RequestResult{Success: true, HTTPCode: 200},
			wantNil: true,
		},
		{
			name: "structured api error wins",
			result: &api.RequestResult{
				Success:   false,
				HTTPCode:  404,
				HTTPError: "GET /api/v1/users/1/habits: 404 Not Found",
				APIErrors: []api.Error{{HTTPCode: 404, Title: "not found", Detail: "no such habit"}},
			},
			want: "not found: no such habit (HTTP 404)",
		},
		{
			name: "transport error without api errors",
			result: &api.RequestResult{
				Success:   false,
				HTTPCode:  500,
				HTTPError: "dial tcp: connection refused",
			},
			want: "dial tcp: connection refused (HTTP 500)",
		},
		{
			name:   "empty failure",
			result: &api.RequestResult{Success: false, HTTPCode: 502},
			want:   "request failed (HTTP 502)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FromResult(tt.result)
			if tt.wantNil {
				if err != nil {
					t.Fatalf("FromResult() = %v, want nil", err)
				}
				return
			}
			if err == nil || err.Error() != tt.want {
				t.Errorf("FromResult() = %v, want %q", err, tt.want)
			}
		})
	}
}
