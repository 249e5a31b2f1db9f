package cli

import (
	"github.com/sadopc/moodwheel/internal/export"
	"github.com/sadopc/moodwheel/internal/store"
)

type HistoryCmd struct {
	Limit int `short:"l" default:"20" help:"Maximum entries to show (0 for all)."`
}

func (cmd *HistoryCmd) Run(ctx *Context) error {
	entries, err := ctx.Store.ListEntries(store.EntryFilter{Limit: cmd.Limit})
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		ctx.printf("No moods logged yet. Try 'moodwheel spin --save'.\n")
		return nil
	}
	for _, e := range entries {
		ctx.printf("%s\n", formatEntry(e))
	}
	return nil
}

type ExportCmd struct {
	Format string `short:"f" enum:"csv,json" default:"csv" help:"Export format (csv, json)."`
	Out    string `short:"o" help:"Output file. '-' writes to stdout; empty picks a dated file name."`
}

func (cmd *ExportCmd) Run(ctx *Context) error {
	format, err := export.ParseFormat(cmd.Format)
	if err != nil {
		return err
	}
	history, err := ctx.Store.LoadHistory()
	if err != nil {
		return err
	}

	if cmd.Out == "-" {
		return export.Write(ctx.Out, format, history)
	}
	path := cmd.Out
	if path == "" {
		path = export.FileName(format, ctx.Now())
	}
	if err := export.ToFile(format, history, path); err != nil {
		return err
	}
	ctx.printf("✓ Exported %d entries to %s\n", len(history), path)
	return nil
}
