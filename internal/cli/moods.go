package cli

import (
	"fmt"

	"github.com/sadopc/moodwheel/internal/mood"
)

type MoodListCmd struct{}

func (cmd *MoodListCmd) Run(ctx *Context) error {
	moods, err := ctx.Store.LoadMoods()
	if err != nil {
		return err
	}
	for _, m := range moods {
		ctx.printf("%s %-12s %s  %.2f\n", m.Icon, m.Name, m.Color, m.Value)
	}
	return nil
}

type MoodAddCmd struct {
	Name   string  `arg:"" help:"Mood name."`
	Icon   string  `default:"🙂" help:"Emoji icon."`
	Color  string  `default:"#FFFFFF" help:"Hex color."`
	Value  float64 `default:"0.5" help:"Energy level between 0 and 1."`
	Advice string  `help:"Advice shown after spinning this mood."`
}

func (cmd *MoodAddCmd) Run(ctx *Context) error {
	if _, err := ctx.Store.FindMood(cmd.Name); err == nil {
		return fmt.Errorf("mood %q already exists", cmd.Name)
	}
	m := mood.NewMood(cmd.Name, cmd.Icon, cmd.Color, cmd.Advice, cmd.Value)
	if err := ctx.Store.AddMood(m); err != nil {
		return err
	}
	ctx.printf("✓ Added %s %s\n", m.Icon, m.Name)
	return nil
}

// MoodDeleteCmd removes a catalog mood. Logged history keeps its copy.
type MoodDeleteCmd struct {
	Name string `arg:"" help:"Mood name."`
}

func (cmd *MoodDeleteCmd) Run(ctx *Context) error {
	m, err := ctx.findMood(cmd.Name)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteMood(m.ID); err != nil {
		return err
	}
	ctx.printf("✓ Deleted %s\n", m.Name)
	return nil
}
