package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/solidstreak/streak-cli/internal/constants"
)

func TestInitCreatesLogDir(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "config")

	if err := Init(Config{ConfigDir: configDir}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(configDir, "logs")); os.IsNotExist(err) {
		t.Errorf("log directory was not created under %s", configDir)
	}
	if Logger == nil {
		t.Fatal("Logger is nil after Init")
	}

	Warn("credential missing", "source", "keyring")
	Error("request failed", "status", 500)
}

func TestInitDebugMode(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "config")

	if err := Init(Config{Debug: true, ConfigDir: configDir}); err != nil {
		t.Fatalf("Init failed in debug mode: %v", err)
	}
	if Logger == nil {
		t.Fatal("Logger is nil after Init")
	}

	Debug("api call", "method", "GET", "path", "/api/v1/users/1/habits")
	Info("habits fetched", "count", 3)

	// Debug mode writes the log file alongside the stderr tee.
	Logger.Debug("flush probe")
	if _, err := os.Stat(filepath.Join(configDir, "logs", constants.LogFileName)); err != nil {
		t.Errorf("log file missing: %v", err)
	}
}

func TestHelpersSafeWithoutInit(t *testing.T) {
	Logger = nil

	// Must not panic before Init runs.
	Debug("probe")
	Info("probe")
	Warn("probe")
	Error("probe")
}

func TestInitUnwritableDirectory(t *testing.T) {
	err := Init(Config{ConfigDir: "/proc/streak-nonexistent"})
	if err == nil {
		t.Skip("directory unexpectedly writable on this platform")
	}
}
