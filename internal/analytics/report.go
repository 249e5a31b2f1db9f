package analytics

import (
	"fmt"
	"strings"
	"time"

	"github.com/sadopc/moodwheel/internal/mood"
)

type Period int

const (
	Weekly Period = iota
	Monthly
)

func (p Period) String() string {
	if p == Monthly {
		return "monthly"
	}
	return "weekly"
}

// ParsePeriod accepts "weekly"/"week" and "monthly"/"month".
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "weekly", "week", "":
		return Weekly, nil
	case "monthly", "month":
		return Monthly, nil
	}
	return Weekly, fmt.Errorf("unknown period %q", s)
}

// Start returns the beginning of the trailing window ending at now. A month
// back from a day the previous month lacks lands on that month's last day.
func (p Period) Start(now time.Time) time.Time {
	if p == Monthly {
		return monthBack(now)
	}
	return now.AddDate(0, 0, -7)
}

func monthBack(t time.Time) time.Time {
	first := time.Date(t.Year(), t.Month()-1, 1, 0, 0, 0, 0, t.Location())
	lastDay := first.AddDate(0, 1, -1).Day()
	hour, minute, sec := t.Clock()
	return time.Date(first.Year(), first.Month(), min(t.Day(), lastDay), hour, minute, sec, t.Nanosecond(), t.Location())
}

type Trend int

const (
	Stable Trend = iota
	Improved
	Declined
)

func (t Trend) String() string {
	switch t {
	case Improved:
		return "improved"
	case Declined:
		return "declined"
	}
	return "stable"
}

const (
	adviceImproved = "Your mood is improving. Keep doing what works for you!"
	adviceDeclined = "Your mood dipped lately. Try a walk, some rest, or talking to a friend."
	adviceStable   = "Your mood has been steady. Consistency is a strength."
	adviceNoData   = "Not enough entries in this period to measure a change."
)

// Report compares the first and second half of a trailing period.
// Improvement is only meaningful when Computable is true.
type Report struct {
	Period      Period
	Entries     []mood.Entry // ascending by date
	EarlyAvg    float64
	LateAvg     float64
	Improvement float64 // percent
	Computable  bool
	Trend       Trend
	Advice      string
}

// PeriodReport filters entries to the trailing window and measures the
// change in mean mood value between its halves. A zero early average or
// fewer than two entries produce a neutral, non-computable report.
func PeriodReport(entries []mood.Entry, period Period, now time.Time) Report {
	start := period.Start(now)
	var filtered []mood.Entry
	for _, e := range sortedByDate(entries) {
		if !e.Date.Before(start) && !e.Date.After(now) {
			filtered = append(filtered, e)
		}
	}

	r := Report{Period: period, Entries: filtered, Trend: Stable, Advice: adviceNoData}
	if len(filtered) < 2 {
		return r
	}

	mid := len(filtered) / 2
	r.EarlyAvg = meanValue(filtered[:mid])
	r.LateAvg = meanValue(filtered[mid:])
	if r.EarlyAvg == 0 {
		return r
	}

	r.Computable = true
	r.Improvement = (r.LateAvg - r.EarlyAvg) / r.EarlyAvg * 100
	switch {
	case r.Improvement > 0:
		r.Trend, r.Advice = Improved, adviceImproved
	case r.Improvement < 0:
		r.Trend, r.Advice = Declined, adviceDeclined
	default:
		r.Advice = adviceStable
	}
	return r
}

func meanValue(entries []mood.Entry) float64 {
	if len(entries) == 0 {
		return 0
	}
	var sum float64
	for _, e := range entries {
		sum += e.Mood.Value
	}
	return sum / float64(len(entries))
}

// Summary bundles what the stats screen shows.
type Summary struct {
	DaysTracked     int
	MostCommonMood  string
	MostCommonHabit string
	BestStreak      int
	CurrentStreak   int
	Unlocked        []mood.Badge
	Challenges      []ChallengeStatus
	Distribution    []Slice
	Forecast        string
	Today           []mood.Entry
}

func Summarize(entries []mood.Entry, badges []mood.Badge, challenges []mood.Challenge, now time.Time) Summary {
	best := BestStreak(entries)
	return Summary{
		DaysTracked:     DaysTracked(entries),
		MostCommonMood:  MostCommonMood(entries),
		MostCommonHabit: MostCommonHabit(entries),
		BestStreak:      best,
		CurrentStreak:   CurrentStreak(entries, now),
		Unlocked:        UnlockedBadges(best, badges),
		Challenges:      ChallengeProgress(best, challenges),
		Distribution:    SortedDistribution(entries),
		Forecast:        MoodForecast(entries, Tomorrow(now)),
		Today:           DailyMoods(entries, now),
	}
}
