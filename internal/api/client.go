// Package api talks to the SolidStreak REST API. Every call returns a
// RequestResult envelope; network errors, non-2xx statuses and malformed
// bodies are normalized into it rather than surfaced as Go errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/solidstreak/streak-cli/internal/constants"
	"github.com/solidstreak/streak-cli/internal/logger"
	"github.com/solidstreak/streak-cli/internal/models"
)

// Metadata rides along with mutating requests for server-side audit logs.
type Metadata struct {
	Username string `json:"username"`
}

// TgChat identifies the Telegram chat the mini app was launched from.
type TgChat struct {
	TgID int64 `json:"tgId"`
}

type habitRequest struct {
	Data models.Habit `json:"data"`
	Meta *Metadata    `json:"meta,omitempty"`
}

type deleteHabitRequest struct {
	Meta *Metadata `json:"meta,omitempty"`
}

type habitCheckRequest struct {
	Data models.HabitCheck `json:"data"`
	Meta *Metadata         `json:"meta,omitempty"`
}

type userInfoData struct {
	User   models.User `json:"user"`
	TgChat TgChat      `json:"tgChat"`
}

type userInfoRequest struct {
	Data userInfoData `json:"data"`
	Meta *Metadata    `json:"meta,omitempty"`
}

// Client issues authenticated requests against one SolidStreak server. The
// init-data credential and the optional username metadata are explicit
// inputs; nothing is read from ambient state.
type Client struct {
	baseURL  string
	initData string
	username string
	httpc    *http.Client
}

func New(baseURL, initData string) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		initData: initData,
		httpc:    &http.Client{Timeout: 30 * time.Second},
	}
}

// SetInitData replaces the bearer credential, e.g. after a fresh login.
func (c *Client) SetInitData(initData string) {
	c.initData = initData
}

// SetUsername enables the meta.username field on mutating requests.
func (c *Client) SetUsername(username string) {
	c.username = username
}

// SetHTTPClient swaps the underlying transport, mainly for tests.
func (c *Client) SetHTTPClient(httpc *http.Client) {
	c.httpc = httpc
}

func (c *Client) meta() *Metadata {
	if c.username == "" {
		return nil
	}
	return &Metadata{Username: c.username}
}

// FetchHabits loads the user's habits including their check history.
func (c *Client) FetchHabits(ctx context.Context, userID int64) *RequestResult {
	path := fmt.Sprintf("/api/v1/users/%d/habits?with_checks=true", userID)
	return c.do(ctx, http.MethodGet, path, nil)
}

// PostHabit creates a draft habit; the response carries the server-assigned
// id and timestamps.
func (c *Client) PostHabit(ctx context.Context, userID int64, habit models.Habit) *RequestResult {
	path := fmt.Sprintf("/api/v1/users/%d/habits", userID)
	return c.do(ctx, http.MethodPost, path, habitRequest{Data: habit, Meta: c.meta()})
}

// PutHabit replaces the habit on the server with the given record.
func (c *Client) PutHabit(ctx context.Context, userID int64, habit models.Habit) *RequestResult {
	path := fmt.Sprintf("/api/v1/users/%d/habits/%d", userID, habit.ID)
	return c.do(ctx, http.MethodPut, path, habitRequest{Data: habit, Meta: c.meta()})
}

// DeleteHabit removes the habit and all of its checks.
func (c *Client) DeleteHabit(ctx context.Context, userID, habitID int64) *RequestResult {
	path := fmt.Sprintf("/api/v1/users/%d/habits/%d", userID, habitID)
	return c.do(ctx, http.MethodDelete, path, deleteHabitRequest{Meta: c.meta()})
}

// PostHabitCheck records or toggles the check for one calendar day.
func (c *Client) PostHabitCheck(ctx context.Context, userID, habitID int64, check models.HabitCheck) *RequestResult {
	path := fmt.Sprintf("/api/v1/users/%d/habits/%d/checks", userID, habitID)
	return c.do(ctx, http.MethodPost, path, habitCheckRequest{Data: check, Meta: c.meta()})
}

// UpsertUserInfo creates or refreshes the profile keyed by Telegram identity.
func (c *Client) UpsertUserInfo(ctx context.Context, user models.User, chat TgChat) *RequestResult {
	req := userInfoRequest{Data: userInfoData{User: user, TgChat: chat}, Meta: c.meta()}
	return c.do(ctx, http.MethodPost, "/api/v1/user-info/upsert", req)
}

func (c *Client) do(ctx context.Context, method, path string, payload any) *RequestResult {
	result := &RequestResult{
		Success:   true,
		HTTPCode:  http.StatusOK,
		APIErrors: []Error{},
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fail(result, http.StatusInternalServerError, fmt.Sprintf("encode request: %v", err))
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fail(result, http.StatusInternalServerError, fmt.Sprintf("build request: %v", err))
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(constants.HeaderInitData, c.initData)
	requestID := uuid.NewString()
	req.Header.Set(constants.HeaderRequestID, requestID)

	resp, err := c.httpc.Do(req)
	if err != nil {
		logger.Warn("request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return fail(result, http.StatusInternalServerError, err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fail(result, http.StatusInternalServerError, fmt.Sprintf("read response: %v", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		fail(result, resp.StatusCode, fmt.Sprintf("%s %s: %s", method, path, resp.Status))
		var envelope Envelope
		if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Errors != nil {
			result.APIErrors = envelope.Errors
		}
		logger.Debug("api error", "method", method, "path", path, "status", resp.StatusCode, "request_id", requestID)
		return result
	}

	if len(raw) > 0 {
		var envelope Envelope
		if err := json.Unmarshal(raw, &envelope); err != nil {
			return fail(result, resp.StatusCode, fmt.Sprintf("decode response: %v", err))
		}
		result.Response = &envelope
	}
	result.HTTPCode = resp.StatusCode
	return result
}

func fail(r *RequestResult, code int, msg string) *RequestResult {
	r.Success = false
	r.HTTPCode = code
	r.HTTPError = msg
	return r
}
