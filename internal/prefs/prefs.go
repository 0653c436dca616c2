// Package prefs is the local preference store: a tiny key-value table
// holding the language override and cached identity fields. It stands in
// for the web client's localStorage and is injected wherever persistence
// is needed rather than accessed as a global.
package prefs

import "errors"

// ErrNotFound is returned when a preference key has no stored value.
var ErrNotFound = errors.New("preference not found")

// Store is the key-value persistence capability handed to the user store
// and the CLI.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}
