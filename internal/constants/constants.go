package constants

const (
	AppName = "streak"
	Version = "v0.3.0"

	// DefaultServerURL points at the hosted SolidStreak API.
	DefaultServerURL = "https://api.solidstreak.app"

	// DateFormat is the calendar-day format used for habit checks (YYYY-MM-DD).
	DateFormat = "2006-01-02"

	// Headers attached to every API request.
	HeaderInitData  = "X-Telegram-InitData"
	HeaderRequestID = "X-Request-ID"

	// KeyringInitDataUser is the keyring account name for the Telegram
	// launch payload credential.
	KeyringInitDataUser = "telegram-init-data"

	// Preference keys in the local prefs store.
	PrefKeyLang     = "lang"
	PrefKeyUserID   = "user_id"
	PrefKeyUsername = "username"

	DefaultLang = "en"

	PrefsFileName = "streak.db"
	LogFileName   = "streak.log"
)
