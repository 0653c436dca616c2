package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/solidstreak/streak-cli/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	userID, err := ctx.UserID()
	if err != nil {
		return err
	}
	if err := ctx.LoadHabits(context.Background()); err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(ctx.Habits, ctx.Users, userID), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
