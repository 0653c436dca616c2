package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/solidstreak/streak-cli/internal/api"
	"github.com/solidstreak/streak-cli/internal/cli"
	"github.com/solidstreak/streak-cli/internal/constants"
	"github.com/solidstreak/streak-cli/internal/keyring"
	"github.com/solidstreak/streak-cli/internal/logger"
	"github.com/solidstreak/streak-cli/internal/prefs"
	"github.com/solidstreak/streak-cli/internal/store"
)

var CLI struct {
	Version kong.VersionFlag
	Server  string `help:"SolidStreak server URL." env:"STREAK_SERVER" default:"${server}"`
	Debug   bool   `help:"Enable debug logging to stderr." env:"STREAK_DEBUG"`

	Login  cli.LoginCmd  `cmd:"" help:"Store the Telegram launch payload and register with the server."`
	Logout cli.LogoutCmd `cmd:"" help:"Forget the stored credential."`
	Sync   cli.SyncCmd   `cmd:"" help:"Refresh the profile and habit list from the server."`
	Habit  cli.HabitCmd  `cmd:"" help:"Manage habits and check-ins."`
	Lang   cli.LangCmd   `cmd:"" help:"Show or set the display language."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive habit view." default:"1"`
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + constants.AppName
	}
	return filepath.Join(home, ".config", constants.AppName)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Terminal client for the SolidStreak habit tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version": constants.Version,
			"server":  constants.DefaultServerURL,
		},
	)

	dir := configDir()
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: dir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: file logging disabled: %v\n", err)
	}

	var prefStore prefs.Store
	sqliteStore := prefs.NewSQLiteStore(filepath.Join(dir, constants.PrefsFileName))
	if err := sqliteStore.Open(); err != nil {
		logger.Warn("preference store unavailable, falling back to in-memory", "error", err)
		prefStore = prefs.NewMemory()
	} else {
		prefStore = sqliteStore
	}
	defer prefStore.Close()

	initData := os.Getenv("STREAK_INIT_DATA")
	if initData == "" {
		if stored, err := keyring.GetInitData(); err == nil {
			initData = stored
		}
	}

	client := api.New(CLI.Server, initData)
	if username, err := prefStore.Get(constants.PrefKeyUsername); err == nil && username != "" {
		client.SetUsername(username)
	}

	appCtx := &cli.Context{
		API:       client,
		Habits:    store.NewHabitStore(client),
		Users:     store.NewUserStore(client, prefStore),
		Prefs:     prefStore,
		ServerURL: CLI.Server,
		ConfigDir: dir,
		InitData:  initData,
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		prefStore.Close()
		os.Exit(1)
	}
}
