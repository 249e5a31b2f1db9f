package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/moodwheel/internal/logger"
	"github.com/sadopc/moodwheel/internal/reminder"
	"github.com/sadopc/moodwheel/internal/tui"
)

type TuiCmd struct{}

func (cmd *TuiCmd) Run(ctx *Context) error {
	prefs, err := ctx.Store.LoadPreferences()
	if err != nil {
		return err
	}

	// The in-app sender only reaches the program once it exists.
	var p *tea.Program
	toApp := reminder.SenderFunc(func(n reminder.Notification) error {
		if p != nil {
			p.Send(tui.ReminderMsg(n))
		}
		return nil
	})
	sender := reminder.Sender(toApp)
	if configured, err := ctx.Sender(); err != nil {
		logger.Warn("Reminder sender unavailable, using in-app notices only", "error", err)
	} else if _, isLog := configured.(reminder.LogSender); !isLog {
		sender = reminder.Multi(toApp, configured)
	}

	sched := reminder.NewScheduler(sender)
	if err := sched.ApplyPreferences(prefs); err != nil {
		logger.Warn("Could not schedule reminder", "error", err)
	}

	p = tea.NewProgram(tui.NewApp(ctx.Store, prefs, sched), tea.WithAltScreen())
	sched.Start()
	defer sched.Stop()

	_, err = p.Run()
	return err
}
