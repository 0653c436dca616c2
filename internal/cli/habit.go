package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/solidstreak/streak-cli/internal/colors"
	"github.com/solidstreak/streak-cli/internal/constants"
	"github.com/solidstreak/streak-cli/internal/errors"
	"github.com/solidstreak/streak-cli/internal/models"
	"github.com/solidstreak/streak-cli/internal/store"
	"github.com/solidstreak/streak-cli/internal/tui"
	"github.com/solidstreak/streak-cli/internal/utils"
)

type HabitCmd struct {
	Add       HabitAddCmd       `cmd:"" help:"Add a new habit."`
	List      HabitListCmd      `cmd:"" help:"List habits."`
	Check     HabitCheckCmd     `cmd:"" help:"Toggle a habit's check for a day."`
	Log       HabitLogCmd       `cmd:"" help:"Show the check-in heatmap."`
	Archive   HabitArchiveCmd   `cmd:"" help:"Archive a habit."`
	Unarchive HabitUnarchiveCmd `cmd:"" help:"Bring a habit back from the archive."`
	Delete    HabitDeleteCmd    `cmd:"" help:"Delete a habit and all of its checks."`
}

type HabitAddCmd struct {
	Title       string `arg:"" help:"Habit title."`
	Description string `help:"Optional description."`
	Color       string `help:"Palette color (red, orange, yellow, lime, green, blue, purple)." default:"green"`
	Public      bool   `help:"Show the habit on the public board."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	userID, err := ctx.UserID()
	if err != nil {
		return err
	}

	habit := models.Habit{
		Title:       c.Title,
		Description: c.Description,
		Color:       colors.ByName(c.Color).Name,
		IsPublic:    c.Public,
	}

	result := ctx.Habits.CreateHabit(context.Background(), userID, habit)
	if err := errors.FromResult(result); err != nil {
		return err
	}

	created, err := result.Habit()
	if err != nil {
		return err
	}
	fmt.Printf("Added habit #%d: %s\n", created.ID, created.Title)
	return nil
}

type HabitListCmd struct {
	Archived bool `help:"Show archived habits instead of active ones."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	if err := ctx.LoadHabits(context.Background()); err != nil {
		return err
	}

	habits := ctx.Habits.ActiveHabits()
	if c.Archived {
		habits = ctx.Habits.ArchivedHabits()
	}
	if len(habits) == 0 {
		if c.Archived {
			fmt.Println("No archived habits.")
		} else {
			fmt.Println("No habits yet. Add one with 'streak habit add'.")
		}
		return nil
	}

	today := utils.DateToLocalString(time.Now())
	for _, h := range habits {
		mark := "○"
		if check := h.CheckFor(today); check != nil && check.Completed {
			mark = "✓"
		}
		dot := lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.ByName(h.Color).Hex500)).
			Render("●")
		visibility := ""
		if h.IsPublic {
			visibility = " [public]"
		}
		fmt.Printf("%s %s #%-4d %s%s\n", dot, mark, h.ID, h.Title, visibility)
	}
	return nil
}

type HabitCheckCmd struct {
	Habit string `arg:"" help:"Habit id or title."`
	Date  string `help:"Day to toggle, YYYY-MM-DD (default: today)."`
}

func (c *HabitCheckCmd) Run(ctx *Context) error {
	userID, err := ctx.UserID()
	if err != nil {
		return err
	}
	if err := ctx.LoadHabits(context.Background()); err != nil {
		return err
	}

	habit, err := ctx.FindHabit(c.Habit)
	if err != nil {
		return err
	}

	day := c.Date
	if day == "" {
		day = utils.DateToLocalString(time.Now())
	} else if _, err := time.Parse(constants.DateFormat, day); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", day)
	}

	completed := true
	if existing := habit.CheckFor(day); existing != nil {
		completed = !existing.Completed
	}

	check := models.HabitCheck{CheckDate: day, Completed: completed, CheckedAt: time.Now()}
	if err := errors.FromResult(ctx.Habits.SetHabitCheck(context.Background(), userID, habit.ID, check)); err != nil {
		return err
	}

	if completed {
		fmt.Printf("Checked %q for %s\n", habit.Title, day)
	} else {
		fmt.Printf("Unchecked %q for %s\n", habit.Title, day)
	}
	return nil
}

type HabitLogCmd struct {
	Habit string `arg:"" optional:"" help:"Limit the heatmap to one habit."`
	Weeks int    `help:"Number of weeks to show." default:"12"`
}

func (c *HabitLogCmd) Run(ctx *Context) error {
	if err := ctx.LoadHabits(context.Background()); err != nil {
		return err
	}

	lang := ctx.Users.Lang()
	color := colors.Green
	var activities []store.Activity

	if c.Habit != "" {
		habit, err := ctx.FindHabit(c.Habit)
		if err != nil {
			return err
		}
		color = colors.ByName(habit.Color)
		counts := make(map[string]int)
		for _, check := range habit.Checks {
			if check.Completed {
				counts[check.CheckDate]++
			}
		}
		for date, count := range counts {
			activities = append(activities, store.Activity{Date: date, Count: count})
		}
		fmt.Println(habit.Title)
	} else {
		activities = ctx.Habits.Activities()
	}

	fmt.Println(tui.Heatmap(activities, c.Weeks, color, lang))
	return nil
}

type HabitArchiveCmd struct {
	Habit string `arg:"" help:"Habit id or title."`
}

func (c *HabitArchiveCmd) Run(ctx *Context) error {
	return setArchived(ctx, c.Habit, true)
}

type HabitUnarchiveCmd struct {
	Habit string `arg:"" help:"Habit id or title."`
}

func (c *HabitUnarchiveCmd) Run(ctx *Context) error {
	return setArchived(ctx, c.Habit, false)
}

func setArchived(ctx *Context, ref string, archived bool) error {
	userID, err := ctx.UserID()
	if err != nil {
		return err
	}
	if err := ctx.LoadHabits(context.Background()); err != nil {
		return err
	}

	habit, err := ctx.FindHabit(ref)
	if err != nil {
		return err
	}

	if err := errors.FromResult(ctx.Habits.SetHabitArchived(context.Background(), userID, habit.ID, archived)); err != nil {
		return err
	}

	if archived {
		fmt.Printf("Archived habit: %s\n", habit.Title)
	} else {
		fmt.Printf("Unarchived habit: %s\n", habit.Title)
	}
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit id or title."`
	Yes   bool   `help:"Confirm the deletion."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	userID, err := ctx.UserID()
	if err != nil {
		return err
	}
	if err := ctx.LoadHabits(context.Background()); err != nil {
		return err
	}

	habit, err := ctx.FindHabit(c.Habit)
	if err != nil {
		return err
	}

	if !c.Yes {
		return fmt.Errorf("deleting %q removes it and all of its checks; re-run with --yes to confirm", habit.Title)
	}

	if err := errors.FromResult(ctx.Habits.DeleteHabit(context.Background(), userID, habit.ID)); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", habit.Title)
	return nil
}
