package cli

import (
	"fmt"
	"strings"

	"github.com/sadopc/moodwheel/internal/analytics"
	"github.com/sadopc/moodwheel/internal/mood"
)

type StatsCmd struct{}

func (cmd *StatsCmd) Run(ctx *Context) error {
	history, err := ctx.Store.LoadHistory()
	if err != nil {
		return err
	}
	sum := analytics.Summarize(history, mood.Badges(), mood.Challenges(), ctx.Now())

	ctx.printf("Days tracked:       %d\n", sum.DaysTracked)
	ctx.printf("Most common mood:   %s\n", sum.MostCommonMood)
	ctx.printf("Most common habit:  %s\n", sum.MostCommonHabit)
	ctx.printf("Best streak:        %d days\n", sum.BestStreak)
	ctx.printf("Current streak:     %d days\n", sum.CurrentStreak)

	if len(sum.Distribution) > 0 {
		ctx.printf("\nDistribution\n")
		for _, s := range sum.Distribution {
			ctx.printf("  %-12s %3d  %s\n", s.Name, s.Count, strings.Repeat("█", s.Count))
		}
	}

	ctx.printf("\nBadges\n")
	unlocked := make(map[string]bool, len(sum.Unlocked))
	for _, b := range sum.Unlocked {
		unlocked[b.Name] = true
	}
	for _, b := range mood.Badges() {
		mark := "  "
		if unlocked[b.Name] {
			mark = b.Icon
		}
		ctx.printf("  %s %s (%d-day streak)\n", mark, b.Name, b.Requirement)
	}

	ctx.printf("\nChallenges\n")
	for _, c := range sum.Challenges {
		ctx.printf("  %s %-20s %3.0f%%  %s\n", checkbox(c.Completed), c.Challenge.Name, c.Progress*100, c.Challenge.Reward)
	}

	ctx.printf("\nForecast: %s\n", sum.Forecast)
	return nil
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

type ForecastCmd struct{}

func (cmd *ForecastCmd) Run(ctx *Context) error {
	history, err := ctx.Store.LoadHistory()
	if err != nil {
		return err
	}
	ctx.printf("%s\n", analytics.MoodForecast(history, analytics.Tomorrow(ctx.Now())))
	return nil
}

type ReportCmd struct {
	Period string `short:"p" enum:"weekly,monthly" default:"weekly" help:"Report window (weekly, monthly)."`
}

func (cmd *ReportCmd) Run(ctx *Context) error {
	period, err := analytics.ParsePeriod(cmd.Period)
	if err != nil {
		return err
	}
	history, err := ctx.Store.LoadHistory()
	if err != nil {
		return err
	}
	r := analytics.PeriodReport(history, period, ctx.Now())

	ctx.printf("%s report: %d entries\n", titleCase(period.String()), len(r.Entries))
	if r.Computable {
		ctx.printf("Average mood: %.2f → %.2f (%s)\n", r.EarlyAvg, r.LateAvg, formatImprovement(r.Improvement))
	}
	ctx.printf("Trend: %s\n\n%s\n", r.Trend, r.Advice)
	return nil
}

func formatImprovement(pct float64) string {
	return fmt.Sprintf("%+.0f%%", pct)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
