package cli

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/solidstreak/streak-cli/internal/constants"
	"github.com/solidstreak/streak-cli/internal/keyring"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: config dir writable
	if err := checkConfigDir(ctx.ConfigDir); err != nil {
		fmt.Printf("❌ Config directory: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Config directory: OK\n")
	}

	// Check 2: prefs store reachable
	if err := checkPrefs(ctx); err != nil {
		fmt.Printf("❌ Preference store: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Preference store: OK\n")
	}

	// Check 3: OS keyring (warning only; env var is a valid fallback)
	if !keyring.IsAvailable() {
		fmt.Printf("⚠ OS keyring: WARNING\n")
		fmt.Printf("   Keyring unavailable; use STREAK_INIT_DATA to stay logged in\n")
	} else {
		fmt.Printf("✓ OS keyring: OK\n")
	}

	// Check 4: credential present
	if ctx.InitData == "" {
		fmt.Printf("⚠ Credential: WARNING\n")
		fmt.Printf("   No init data stored; run 'streak login'\n")
	} else {
		fmt.Printf("✓ Credential: OK\n")
	}

	// Check 5: server reachable
	if err := checkServer(ctx.ServerURL); err != nil {
		fmt.Printf("❌ Server reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Server reachable: OK\n")
	}

	// Check 6: clock sanity (check dates are computed from the local clock)
	if err := checkClock(); err != nil {
		fmt.Printf("❌ Clock: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkConfigDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("config directory not resolved")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", dir, err)
	}
	probe, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		return fmt.Errorf("%s is not writable: %w", dir, err)
	}
	probe.Close()
	return os.Remove(probe.Name())
}

func checkPrefs(ctx *Context) error {
	if err := ctx.Prefs.Set("doctor_probe", "1"); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}
	if _, err := ctx.Prefs.Get("doctor_probe"); err != nil {
		return fmt.Errorf("read-back failed: %w", err)
	}
	return ctx.Prefs.Delete("doctor_probe")
}

func checkServer(serverURL string) error {
	httpc := &http.Client{Timeout: 5 * time.Second}
	resp, err := httpc.Get(serverURL)
	if err != nil {
		return fmt.Errorf("cannot reach %s: %w", serverURL, err)
	}
	resp.Body.Close()
	return nil
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	if _, err := time.Parse(constants.DateFormat, now.Format(constants.DateFormat)); err != nil {
		return fmt.Errorf("local date formatting broken: %w", err)
	}
	return nil
}
