package api

import (
	"encoding/json"
	"errors"

	"github.com/solidstreak/streak-cli/internal/models"
)

// Error is a structured API error as the SolidStreak backend encodes it.
// The backend serializes the status code as a string.
type Error struct {
	HTTPCode int    `json:"status,string"`
	Title    string `json:"title"`
	Detail   string `json:"detail,omitempty"`
}

func (e Error) Error() string {
	msg := e.Title
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Envelope is the body shape every endpoint responds with: a data payload
// plus optional structured errors.
type Envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []Error         `json:"errors,omitempty"`
}

// RequestResult is the uniform outcome of one API call. Transport and
// application failures are folded into it; callers branch on Success
// instead of handling a Go error.
type RequestResult struct {
	Success   bool
	HTTPCode  int
	HTTPError string
	APIErrors []Error
	Response  *Envelope
}

var errNoPayload = errors.New("response carries no data payload")

func (r *RequestResult) payload() (json.RawMessage, error) {
	if r.Response == nil || len(r.Response.Data) == 0 {
		return nil, errNoPayload
	}
	return r.Response.Data, nil
}

// Habit decodes the response payload as a single habit.
func (r *RequestResult) Habit() (models.Habit, error) {
	var h models.Habit
	data, err := r.payload()
	if err != nil {
		return h, err
	}
	err = json.Unmarshal(data, &h)
	return h, err
}

// Habits decodes the response payload as a habit list. A missing or null
// payload decodes to an empty list, matching the fetch-always-replaces
// store semantics.
func (r *RequestResult) Habits() ([]models.Habit, error) {
	data, err := r.payload()
	if err != nil {
		if errors.Is(err, errNoPayload) {
			return nil, nil
		}
		return nil, err
	}
	var habits []models.Habit
	err = json.Unmarshal(data, &habits)
	return habits, err
}

// Check decodes the response payload as a habit check.
func (r *RequestResult) Check() (models.HabitCheck, error) {
	var c models.HabitCheck
	data, err := r.payload()
	if err != nil {
		return c, err
	}
	err = json.Unmarshal(data, &c)
	return c, err
}

// User decodes the response payload as a user record.
func (r *RequestResult) User() (models.User, error) {
	var u models.User
	data, err := r.payload()
	if err != nil {
		return u, err
	}
	err = json.Unmarshal(data, &u)
	return u, err
}

// FirstError returns the most specific failure description available: the
// first structured API error if present, otherwise the transport message.
func (r *RequestResult) FirstError() string {
	if len(r.APIErrors) > 0 {
		return r.APIErrors[0].Error()
	}
	return r.HTTPError
}
