package models

// User is the service-side identity record for the authenticated Telegram
// user. JSON tags match the SolidStreak API.
type User struct {
	ID          int64  `json:"id"`
	TgID        int64  `json:"tgId"`
	TgUsername  string `json:"tgUsername,omitempty"`
	TgFirstName string `json:"tgFirstName"`
	TgLastName  string `json:"tgLastName,omitempty"`
	TgLangCode  string `json:"tgLangCode,omitempty"`
	TgIsBot     bool   `json:"tgIsBot,omitempty"`
}
