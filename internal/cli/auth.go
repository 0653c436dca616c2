package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/solidstreak/streak-cli/internal/constants"
	"github.com/solidstreak/streak-cli/internal/errors"
	"github.com/solidstreak/streak-cli/internal/i18n"
	"github.com/solidstreak/streak-cli/internal/keyring"
	"github.com/solidstreak/streak-cli/internal/logger"
	"github.com/solidstreak/streak-cli/internal/prefs"
	"github.com/solidstreak/streak-cli/internal/telegram"
)

type LoginCmd struct {
	InitData string `arg:"" optional:"" help:"Telegram Mini App launch payload (init data). Falls back to $STREAK_INIT_DATA."`
}

func (c *LoginCmd) Run(ctx *Context) error {
	raw := c.InitData
	if raw == "" {
		raw = os.Getenv("STREAK_INIT_DATA")
	}
	if raw == "" {
		return fmt.Errorf("no init data given (pass it as an argument or set STREAK_INIT_DATA)")
	}

	data, err := telegram.ParseInitData(raw)
	if err != nil {
		return err
	}

	if err := keyring.SetInitData(raw); err != nil {
		// Login still works for this shell via $STREAK_INIT_DATA.
		logger.Warn("could not store credential in OS keyring", "error", err)
		fmt.Println("Warning: credential not saved to the OS keyring; set STREAK_INIT_DATA to stay logged in.")
	}
	ctx.API.SetInitData(raw)

	chat := telegram.WebAppChat{ID: data.ChatID()}
	if data.Chat != nil {
		chat = *data.Chat
	}

	result := ctx.Users.UpsertUserInfo(context.Background(), *data.User, chat)
	if err := errors.FromResult(result); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	user := ctx.Users.User()
	if err := ctx.Prefs.Set(constants.PrefKeyUserID, strconv.FormatInt(user.ID, 10)); err != nil {
		return err
	}
	if user.TgUsername != "" {
		if err := ctx.Prefs.Set(constants.PrefKeyUsername, user.TgUsername); err != nil {
			return err
		}
		ctx.API.SetUsername(user.TgUsername)
	}

	name := user.TgFirstName
	if name == "" {
		name = user.TgUsername
	}
	fmt.Printf("Logged in as %s (user #%d, lang %s)\n", name, user.ID, ctx.Users.Lang())
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *Context) error {
	if err := keyring.DeleteInitData(); err != nil && err != keyring.ErrNotFound {
		logger.Warn("could not remove credential from OS keyring", "error", err)
	}
	for _, key := range []string{constants.PrefKeyUserID, constants.PrefKeyUsername} {
		if err := ctx.Prefs.Delete(key); err != nil && err != prefs.ErrNotFound {
			logger.Debug("prefs cleanup", "key", key, "error", err)
		}
	}
	fmt.Println("Logged out.")
	return nil
}

type SyncCmd struct{}

func (c *SyncCmd) Run(ctx *Context) error {
	if ctx.InitData == "" {
		return fmt.Errorf("not logged in (run 'streak login')")
	}

	data, err := telegram.ParseInitData(ctx.InitData)
	if err != nil {
		return fmt.Errorf("stored credential is unusable: %w (run 'streak login' again)", err)
	}

	chat := telegram.WebAppChat{ID: data.ChatID()}
	if data.Chat != nil {
		chat = *data.Chat
	}
	if err := errors.FromResult(ctx.Users.UpsertUserInfo(context.Background(), *data.User, chat)); err != nil {
		return fmt.Errorf("profile sync failed: %w", err)
	}

	user := ctx.Users.User()
	if err := ctx.Prefs.Set(constants.PrefKeyUserID, strconv.FormatInt(user.ID, 10)); err != nil {
		return err
	}

	if err := ctx.LoadHabits(context.Background()); err != nil {
		return fmt.Errorf("habit sync failed: %w", err)
	}

	fmt.Printf("Synced %d habits (%d active).\n", len(ctx.Habits.Habits()), ctx.Habits.ActiveHabitsCount())
	return nil
}

type LangCmd struct {
	Code string `arg:"" optional:"" help:"Language code to switch to."`
}

func (c *LangCmd) Run(ctx *Context) error {
	if c.Code == "" {
		current := ctx.Users.Lang()
		for _, l := range i18n.Langs {
			marker := " "
			if l.Code == current {
				marker = "*"
			}
			fmt.Printf("%s %s  %s\n", marker, l.Code, l.Name)
		}
		return nil
	}

	if !i18n.Supported(c.Code) {
		return fmt.Errorf("unsupported language %q", c.Code)
	}
	if err := ctx.Users.SetLang(c.Code); err != nil {
		return err
	}
	fmt.Printf("Language set to %s.\n", c.Code)
	return nil
}
