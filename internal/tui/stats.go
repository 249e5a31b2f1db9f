package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/moodwheel/internal/analytics"
	"github.com/sadopc/moodwheel/internal/mood"
)

type statsModel struct {
	store  historyLoader
	width  int
	height int
	now    func() time.Time

	entries []mood.Entry
	colors  map[string]string // mood name -> hex, from the logged snapshots
	summary analytics.Summary
	period  analytics.Period
	report  analytics.Report

	chart barchart.Model
	spark sparkline.Model
}

// historyLoader is the slice of the store the stats view reads.
type historyLoader interface {
	LoadHistory() ([]mood.Entry, error)
}

func newStatsModel(s historyLoader, now func() time.Time) statsModel {
	return statsModel{
		store:  s,
		now:    now,
		period: analytics.Weekly,
		chart:  barchart.New(40, 10),
		spark:  sparkline.New(30, 4),
	}
}

func (s *statsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

type statsDataMsg struct {
	entries []mood.Entry
}

func (s statsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		entries, err := s.store.LoadHistory()
		if err != nil {
			return errStatus("Load stats", err)
		}
		return statsDataMsg{entries: entries}
	}
}

func (s statsModel) update(msg tea.Msg) (statsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case statsDataMsg:
		s.entries = msg.entries
		s.recompute()
		return s, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Period) {
			if s.period == analytics.Weekly {
				s.period = analytics.Monthly
			} else {
				s.period = analytics.Weekly
			}
			s.report = analytics.PeriodReport(s.entries, s.period, s.now())
		}
	}
	return s, nil
}

func (s *statsModel) recompute() {
	now := s.now()
	s.summary = analytics.Summarize(s.entries, mood.Badges(), mood.Challenges(), now)
	s.report = analytics.PeriodReport(s.entries, s.period, now)
	s.colors = make(map[string]string)
	for _, e := range s.entries {
		s.colors[e.Mood.Name] = e.Mood.Color
	}
	s.buildCharts()
}

func (s *statsModel) buildCharts() {
	chartWidth := max(s.width/2-8, 20)
	s.chart = barchart.New(chartWidth, 10)

	var bars []barchart.BarData
	for _, sl := range s.summary.Distribution {
		style := moodStyle(s.colors[sl.Name])
		bars = append(bars, barchart.BarData{
			Label:  truncate(sl.Name, 6),
			Values: []barchart.BarValue{{Name: sl.Name, Value: float64(sl.Count), Style: style}},
		})
	}
	if len(bars) > 0 {
		s.chart.PushAll(bars)
		s.chart.Draw()
	}

	s.spark = sparkline.New(max(s.width/2-8, 20), 4)
	values := make([]float64, 0, len(s.summary.Today))
	for _, e := range s.summary.Today {
		values = append(values, e.Mood.Value)
	}
	if len(values) > 0 {
		s.spark.PushAll(values)
		s.spark.Draw()
	}
}

func (s statsModel) view() string {
	w := s.width - 4
	sum := s.summary

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Days tracked", fmt.Sprintf("%d", sum.DaysTracked)),
		statCard("Top mood", sum.MostCommonMood),
		statCard("Top habit", sum.MostCommonHabit),
		statCard("Best streak", fmt.Sprintf("%d days", sum.BestStreak)),
		statCard("Current", fmt.Sprintf("%d days", sum.CurrentStreak)),
	)

	left := lipgloss.JoinVertical(lipgloss.Left,
		subtitleStyle.Render("Distribution"),
		s.chart.View(),
		s.renderSlices(),
		"",
		subtitleStyle.Render("Today"),
		s.renderToday(),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		subtitleStyle.Render("Badges"),
		s.renderBadges(),
		"",
		subtitleStyle.Render("Challenges"),
		s.renderChallenges(),
		"",
		subtitleStyle.Render("Forecast"),
		accentStyle.Render(sum.Forecast),
		"",
		s.renderReport(),
	)

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Stats"), "", cards, "",
			lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right),
			"", mutedStyle.Render("  p: weekly/monthly report"),
		),
	)
}

func statCard(label, value string) string {
	return cardStyle.Width(18).Padding(0, 1).Render(
		lipgloss.JoinVertical(lipgloss.Center, mutedStyle.Render(label), highlightStyle.Bold(true).Render(value)),
	)
}

func (s statsModel) renderSlices() string {
	if len(s.summary.Distribution) == 0 {
		return mutedStyle.Render("No moods logged yet")
	}
	var rows []string
	for _, sl := range s.summary.Distribution {
		share := (sl.EndAngle - sl.StartAngle) / 360
		rows = append(rows, fmt.Sprintf("%s %-10s %3d  %5.1f%%  %3.0f°-%3.0f°",
			moodStyle(s.colors[sl.Name]).Render("●"), sl.Name, sl.Count, share*100, sl.StartAngle, sl.EndAngle))
	}
	return strings.Join(rows, "\n")
}

func (s statsModel) renderToday() string {
	if len(s.summary.Today) == 0 {
		return mutedStyle.Render("Nothing logged today")
	}
	icons := make([]string, 0, len(s.summary.Today))
	for _, e := range s.summary.Today {
		icons = append(icons, e.Mood.Icon)
	}
	return lipgloss.JoinVertical(lipgloss.Left, s.spark.View(), strings.Join(icons, " "))
}

func (s statsModel) renderBadges() string {
	unlocked := make(map[string]bool, len(s.summary.Unlocked))
	for _, b := range s.summary.Unlocked {
		unlocked[b.Name] = true
	}
	var rows []string
	for _, b := range mood.Badges() {
		if unlocked[b.Name] {
			rows = append(rows, successStyle.Render(fmt.Sprintf("%s %s", b.Icon, b.Name)))
		} else {
			rows = append(rows, mutedStyle.Render(fmt.Sprintf("🔒 %s (%d-day streak)", b.Name, b.Requirement)))
		}
	}
	return strings.Join(rows, "\n")
}

func (s statsModel) renderChallenges() string {
	var rows []string
	for _, c := range s.summary.Challenges {
		mark := mutedStyle.Render("[ ]")
		if c.Completed {
			mark = successStyle.Render("[x]")
		}
		rows = append(rows, fmt.Sprintf("%s %-20s %s", mark, c.Challenge.Name, progressBar(c.Progress, 12)))
	}
	return strings.Join(rows, "\n")
}

func (s statsModel) renderReport() string {
	r := s.report
	title := subtitleStyle.Render(fmt.Sprintf("%s report", strings.ToUpper(r.Period.String()[:1])+r.Period.String()[1:]))
	lines := []string{title, fmt.Sprintf("%d entries", len(r.Entries))}
	if r.Computable {
		style := mutedStyle
		switch r.Trend {
		case analytics.Improved:
			style = successStyle
		case analytics.Declined:
			style = warningStyle
		}
		lines = append(lines,
			fmt.Sprintf("Average %.2f → %.2f", r.EarlyAvg, r.LateAvg),
			style.Render(fmt.Sprintf("%+.0f%% (%s)", r.Improvement, r.Trend)),
		)
	}
	lines = append(lines, lipgloss.NewStyle().Width(40).Render(r.Advice))
	return strings.Join(lines, "\n")
}
