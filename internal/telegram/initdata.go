// Package telegram decodes the Mini App launch payload ("init data"). The
// payload is a URL-encoded query string signed by Telegram; the signature
// is verified server-side, so the client only extracts the embedded user
// and chat identity and otherwise treats the string as an opaque bearer
// credential.
package telegram

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// WebAppUser is the Telegram identity embedded in init data.
type WebAppUser struct {
	ID           int64  `json:"id"`
	IsBot        bool   `json:"is_bot,omitempty"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name,omitempty"`
	Username     string `json:"username,omitempty"`
	LanguageCode string `json:"language_code,omitempty"`
}

// WebAppChat is the chat the mini app was launched from. Absent for
// private-chat launches, where the chat id equals the user id.
type WebAppChat struct {
	ID    int64  `json:"id"`
	Type  string `json:"type,omitempty"`
	Title string `json:"title,omitempty"`
}

// InitData is the decoded launch payload. Raw keeps the original string
// for use as the bearer credential.
type InitData struct {
	Raw      string
	QueryID  string
	User     *WebAppUser
	Chat     *WebAppChat
	AuthDate time.Time
}

var ErrNoUser = errors.New("init data carries no user")

// ParseInitData decodes the query-string payload. The user field is
// required; chat and auth_date are optional.
func ParseInitData(raw string) (InitData, error) {
	values, err := url.ParseQuery(raw)
	if err != nil {
		return InitData{}, fmt.Errorf("malformed init data: %w", err)
	}

	data := InitData{
		Raw:     raw,
		QueryID: values.Get("query_id"),
	}

	userJSON := values.Get("user")
	if userJSON == "" {
		return InitData{}, ErrNoUser
	}
	var user WebAppUser
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return InitData{}, fmt.Errorf("decode user: %w", err)
	}
	data.User = &user

	if chatJSON := values.Get("chat"); chatJSON != "" {
		var chat WebAppChat
		if err := json.Unmarshal([]byte(chatJSON), &chat); err != nil {
			return InitData{}, fmt.Errorf("decode chat: %w", err)
		}
		data.Chat = &chat
	}

	if authDate := values.Get("auth_date"); authDate != "" {
		secs, err := strconv.ParseInt(authDate, 10, 64)
		if err != nil {
			return InitData{}, fmt.Errorf("decode auth_date: %w", err)
		}
		data.AuthDate = time.Unix(secs, 0)
	}

	return data, nil
}

// ChatID returns the launch chat id, falling back to the user id for
// private-chat launches.
func (d InitData) ChatID() int64 {
	if d.Chat != nil {
		return d.Chat.ID
	}
	if d.User != nil {
		return d.User.ID
	}
	return 0
}
