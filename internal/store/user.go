package store

import (
	"context"

	"github.com/solidstreak/streak-cli/internal/api"
	"github.com/solidstreak/streak-cli/internal/constants"
	"github.com/solidstreak/streak-cli/internal/models"
	"github.com/solidstreak/streak-cli/internal/prefs"
	"github.com/solidstreak/streak-cli/internal/telegram"
)

// UserStore holds the one authenticated profile and the preference store
// that backs the language override.
type UserStore struct {
	api   *api.Client
	prefs prefs.Store
	user  models.User
}

func NewUserStore(client *api.Client, p prefs.Store) *UserStore {
	return &UserStore{api: client, prefs: p}
}

// UpsertUserInfo maps the Telegram launch identity to the domain user,
// calls the upsert endpoint and, on success, overwrites every local
// profile field from the response.
func (s *UserStore) UpsertUserInfo(ctx context.Context, user telegram.WebAppUser, chat telegram.WebAppChat) *api.RequestResult {
	input := models.User{
		TgID:        user.ID,
		TgUsername:  user.Username,
		TgFirstName: user.FirstName,
		TgLastName:  user.LastName,
		TgLangCode:  user.LanguageCode,
		TgIsBot:     user.IsBot,
	}

	result := s.api.UpsertUserInfo(ctx, input, api.TgChat{TgID: chat.ID})
	if !result.Success {
		return result
	}

	if upserted, err := result.User(); err == nil {
		s.user = upserted
	}
	return result
}

// User returns the current profile snapshot.
func (s *UserStore) User() models.User {
	return s.user
}

// Lang resolves the display language: persisted local override first,
// then the server-reported Telegram language, then the default.
func (s *UserStore) Lang() string {
	if lang, err := s.prefs.Get(constants.PrefKeyLang); err == nil && lang != "" {
		return lang
	}
	if s.user.TgLangCode != "" {
		return s.user.TgLangCode
	}
	return constants.DefaultLang
}

// SetLang persists the language override.
func (s *UserStore) SetLang(lang string) error {
	return s.prefs.Set(constants.PrefKeyLang, lang)
}
