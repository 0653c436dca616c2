package errors

import (
	"fmt"
	"os"

	"github.com/solidstreak/streak-cli/internal/api"
	"github.com/solidstreak/streak-cli/internal/logger"
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// FromResult converts a failed API envelope into an error for CLI display.
// Returns nil when the result succeeded.
func FromResult(r *api.RequestResult) error {
	if r == nil {
		return fmt.Errorf("no response")
	}
	if r.Success {
		return nil
	}
	if msg := r.FirstError(); msg != "" {
		return fmt.Errorf("%s (HTTP %d)", msg, r.HTTPCode)
	}
	return fmt.Errorf("request failed (HTTP %d)", r.HTTPCode)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
