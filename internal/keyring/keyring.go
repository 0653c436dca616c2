// Package keyring stores the Telegram init-data credential in the OS
// keyring so it never lands in shell history or plain-text config.
package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/solidstreak/streak-cli/internal/constants"
)

var (
	// ErrNotFound is returned when no credential is stored yet.
	ErrNotFound = errors.New("init data not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available.
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetInitData retrieves the stored Telegram launch payload.
func GetInitData() (string, error) {
	initData, err := keyring.Get(constants.AppName, constants.KeyringInitDataUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return initData, nil
}

// SetInitData stores the Telegram launch payload.
func SetInitData(initData string) error {
	if initData == "" {
		return errors.New("init data cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.KeyringInitDataUser, initData); err != nil {
		return fmt.Errorf("failed to store init data in keyring: %w", err)
	}
	return nil
}

// DeleteInitData removes the stored credential.
func DeleteInitData() error {
	err := keyring.Delete(constants.AppName, constants.KeyringInitDataUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete init data from keyring: %w", err)
	}
	return nil
}

// IsAvailable checks if the OS keyring is usable on this system. Best
// effort; a probe read that errors with anything but not-found means no.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || err == keyring.ErrNotFound
}
