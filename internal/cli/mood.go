package cli

import (
	"github.com/sadopc/moodwheel/internal/mood"
)

// LogCmd records a mood without spinning.
type LogCmd struct {
	Mood   string   `arg:"" help:"Mood name from the catalog."`
	Note   string   `short:"n" help:"Optional note."`
	Habits []string `name:"habit" short:"H" help:"Habit tag (repeatable)."`
}

func (cmd *LogCmd) Run(ctx *Context) error {
	m, err := ctx.findMood(cmd.Mood)
	if err != nil {
		return err
	}
	e := mood.NewEntry(m, ctx.Now(), cmd.Note, cmd.Habits)
	if err := ctx.Store.AddEntry(e); err != nil {
		return err
	}
	ctx.printf("✓ Logged %s %s\n", m.Icon, m.Name)
	return nil
}

// SpinCmd spins the wheel once.
type SpinCmd struct {
	Save   bool     `help:"Save the result to history."`
	Note   string   `short:"n" help:"Note to save with the result."`
	Habits []string `name:"habit" short:"H" help:"Habit tag to save with the result (repeatable)."`
}

func (cmd *SpinCmd) Run(ctx *Context) error {
	moods, err := ctx.Store.LoadMoods()
	if err != nil {
		return err
	}
	wheel := mood.NewWheel(moods)
	m := wheel.Select(mood.Spin(ctx.Rand))

	ctx.printf("%s  %s\n\n%s\n", m.Icon, m.Name, m.Advice)
	if !cmd.Save {
		return nil
	}
	if err := ctx.Store.AddEntry(mood.NewEntry(m, ctx.Now(), cmd.Note, cmd.Habits)); err != nil {
		return err
	}
	ctx.printf("\n✓ Saved\n")
	return nil
}
