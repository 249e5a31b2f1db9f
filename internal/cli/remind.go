package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/sadopc/moodwheel/internal/logger"
	"github.com/sadopc/moodwheel/internal/reminder"
	"github.com/sadopc/moodwheel/internal/store"
)

// RemindCmd runs the daily reminder in the foreground until interrupted.
type RemindCmd struct {
	At string `help:"Reminder time (HH:MM). Overrides and enables the stored reminder."`
}

func (cmd *RemindCmd) Run(ctx *Context) error {
	prefs, err := ctx.Store.LoadPreferences()
	if err != nil {
		return err
	}
	if cmd.At != "" {
		h, m, err := store.ParseClock(cmd.At)
		if err != nil {
			return err
		}
		prefs.ReminderEnabled = true
		prefs.ReminderHour, prefs.ReminderMinute = h, m
		if err := ctx.Store.SavePreferences(prefs); err != nil {
			return err
		}
	}
	if !prefs.ReminderEnabled {
		return errors.New("daily reminder is disabled; enable it in settings or pass --at HH:MM")
	}

	sender, err := ctx.Sender()
	if err != nil {
		return err
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return runReminders(sigCtx, ctx, reminder.NewScheduler(sender), prefs)
}

func runReminders(ctx context.Context, c *Context, sched *reminder.Scheduler, prefs store.Preferences) error {
	if err := sched.ApplyPreferences(prefs); err != nil {
		return err
	}
	sched.Start()
	defer sched.Stop()

	if next, ok := sched.Next(reminder.DailyID); ok {
		c.printf("Reminder scheduled daily at %s (next: %s). Press Ctrl+C to stop.\n",
			store.FormatClock(prefs.ReminderHour, prefs.ReminderMinute), next.Format("Mon Jan 02 15:04"))
	}
	logger.Info("Reminder daemon running", "pending", sched.Pending())

	<-ctx.Done()
	logger.Info("Reminder daemon stopping")
	return nil
}
