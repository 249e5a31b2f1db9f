package analytics

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadopc/moodwheel/internal/mood"
)

var (
	happy    = moodNamed("Happy", 0.9)
	calm     = moodNamed("Calm", 0.6)
	tired    = moodNamed("Tired", 0.3)
	stressed = moodNamed("Stressed", 0.2)
)

func moodNamed(name string, value float64) mood.Mood {
	for _, m := range mood.DefaultMoods() {
		if m.Name == name {
			return m
		}
	}
	return mood.NewMood(name, "?", "#000000", "", value)
}

// base is a Monday at noon, away from DST edges.
var base = time.Date(2026, time.March, 2, 12, 0, 0, 0, time.Local)

func at(days int, hour int) time.Time {
	d := base.AddDate(0, 0, days)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, time.Local)
}

func entry(m mood.Mood, t time.Time, habits ...string) mood.Entry {
	return mood.NewEntry(m, t, "", habits)
}

// ============================================================
// Empty input
// ============================================================

func TestEmptyInputSentinels(t *testing.T) {
	assert.Equal(t, None, MostCommonMood(nil))
	assert.Equal(t, None, MostCommonHabit(nil))
	assert.Equal(t, 1, BestStreak(nil))
	assert.Equal(t, 0, CurrentStreak(nil, base))
	assert.Equal(t, noForecastMessage, MoodForecast(nil, time.Tuesday))
	assert.Empty(t, DailyMoods(nil, base))
	assert.Empty(t, MoodDistribution(nil))
	assert.Empty(t, SortedDistribution(nil))
	assert.Equal(t, 0, DaysTracked(nil))

	unlocked := UnlockedBadges(BestStreak(nil), mood.Badges())
	require.Len(t, unlocked, 1)
	for _, b := range unlocked {
		assert.LessOrEqual(t, b.Requirement, 1)
	}
}

// ============================================================
// MostCommon
// ============================================================

func TestMostCommonMood(t *testing.T) {
	entries := []mood.Entry{entry(happy, at(0, 9)), entry(happy, at(1, 9)), entry(calm, at(2, 9))}
	assert.Equal(t, "Happy", MostCommonMood(entries))
}

func TestMostCommonTieBreaksLexically(t *testing.T) {
	entries := []mood.Entry{entry(tired, at(0, 9)), entry(calm, at(1, 9)), entry(happy, at(2, 9))}
	for range 20 {
		assert.Equal(t, "Calm", MostCommonMood(entries))
	}
}

func TestMostCommonHabitFlattens(t *testing.T) {
	entries := []mood.Entry{
		entry(happy, at(0, 9), "Reading", "Exercise"),
		entry(calm, at(1, 9), "Exercise"),
		entry(calm, at(2, 9)),
	}
	assert.Equal(t, "Exercise", MostCommonHabit(entries))
	assert.Equal(t, None, MostCommonHabit([]mood.Entry{entry(calm, at(0, 9))}))
}

// ============================================================
// Streaks
// ============================================================

func TestBestStreakConsecutiveDays(t *testing.T) {
	entries := []mood.Entry{entry(happy, at(2, 9)), entry(calm, at(0, 9)), entry(calm, at(1, 9))}
	assert.Equal(t, 3, BestStreak(entries))
}

func TestBestStreakWithGap(t *testing.T) {
	entries := []mood.Entry{entry(happy, at(0, 9)), entry(calm, at(1, 9)), entry(calm, at(3, 9))}
	assert.Equal(t, 2, BestStreak(entries))
}

func TestBestStreakSingleEntry(t *testing.T) {
	assert.Equal(t, 1, BestStreak([]mood.Entry{entry(happy, at(0, 9))}))
}

func TestBestStreakSameDayEntriesCountOnce(t *testing.T) {
	entries := []mood.Entry{
		entry(happy, at(0, 8)), entry(calm, at(0, 20)),
		entry(tired, at(1, 9)), entry(tired, at(1, 22)),
		entry(happy, at(2, 7)),
	}
	assert.Equal(t, 3, BestStreak(entries))
}

func TestBestStreakAcrossMidnight(t *testing.T) {
	// 23:00 and 01:00 the next day are one calendar day apart.
	entries := []mood.Entry{entry(happy, at(0, 23)), entry(calm, at(1, 1))}
	assert.Equal(t, 2, BestStreak(entries))
}

func TestBestStreakPicksLongestRun(t *testing.T) {
	var entries []mood.Entry
	for _, d := range []int{0, 1, 5, 6, 7, 8, 20} {
		entries = append(entries, entry(calm, at(d, 9)))
	}
	assert.Equal(t, 4, BestStreak(entries))
}

func TestCurrentStreak(t *testing.T) {
	entries := []mood.Entry{entry(happy, at(0, 9)), entry(calm, at(2, 9)), entry(calm, at(3, 9)), entry(calm, at(4, 9))}

	assert.Equal(t, 3, CurrentStreak(entries, at(4, 18)), "latest entry today")
	assert.Equal(t, 3, CurrentStreak(entries, at(5, 8)), "latest entry yesterday")
	assert.Equal(t, 0, CurrentStreak(entries, at(6, 8)), "streak broken")
}

func TestStreakDoesNotMutateInput(t *testing.T) {
	entries := []mood.Entry{entry(happy, at(2, 9)), entry(calm, at(0, 9))}
	BestStreak(entries)
	assert.Equal(t, "Happy", entries[0].Mood.Name)
}

// ============================================================
// Badges and challenges
// ============================================================

func TestUnlockedBadges(t *testing.T) {
	badges := mood.Badges()
	assert.Empty(t, UnlockedBadges(0, badges))
	assert.Len(t, UnlockedBadges(6, badges), 1)
	assert.Len(t, UnlockedBadges(7, badges), 2)
	got := UnlockedBadges(30, badges)
	require.Len(t, got, 3)
	assert.Equal(t, "Mood Master", got[2].Name)
}

func TestChallengeProgress(t *testing.T) {
	st := ChallengeProgress(7, []mood.Challenge{{Name: "a", Goal: 3}, {Name: "b", Goal: 14}, {Name: "c", Goal: 0}})
	require.Len(t, st, 3)
	assert.True(t, st[0].Completed)
	assert.Equal(t, 1.0, st[0].Progress)
	assert.False(t, st[1].Completed)
	assert.InDelta(t, 0.5, st[1].Progress, 1e-9)
	assert.True(t, st[2].Completed)
	assert.Equal(t, 1.0, st[2].Progress)
}

// ============================================================
// Forecast and daily moods
// ============================================================

func TestMoodForecast(t *testing.T) {
	// base is a Monday; +7 is the next Monday, +1 a Tuesday.
	entries := []mood.Entry{
		entry(tired, at(0, 9)),
		entry(tired, at(7, 9)),
		entry(happy, at(14, 9)),
		entry(happy, at(1, 9)),
	}
	got := MoodForecast(entries, time.Monday)
	assert.Contains(t, got, "Tired")
	assert.Contains(t, got, "Monday")

	assert.Equal(t, noForecastMessage, MoodForecast(entries, time.Sunday))
}

func TestTomorrow(t *testing.T) {
	assert.Equal(t, time.Tuesday, Tomorrow(base))
	assert.Equal(t, time.Monday, Tomorrow(at(6, 23)))
}

func TestDailyMoodsSortedAndFiltered(t *testing.T) {
	entries := []mood.Entry{
		entry(calm, at(0, 18)),
		entry(happy, at(1, 8)),
		entry(tired, at(0, 7)),
	}
	got := DailyMoods(entries, at(0, 12))
	require.Len(t, got, 2)
	assert.Equal(t, "Tired", got[0].Mood.Name)
	assert.Equal(t, "Calm", got[1].Mood.Name)
}

// ============================================================
// Distribution
// ============================================================

func TestMoodDistributionSumsToLen(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	moods := mood.DefaultMoods()
	for trial := range 50 {
		n := rng.IntN(40)
		entries := make([]mood.Entry, n)
		for i := range entries {
			entries[i] = entry(moods[rng.IntN(len(moods))], at(rng.IntN(60), 9))
		}
		total := 0
		for _, c := range MoodDistribution(entries) {
			total += c
		}
		assert.Equal(t, n, total, "trial %d", trial)
	}
}

func TestSortedDistributionAngles(t *testing.T) {
	entries := []mood.Entry{entry(happy, at(0, 9)), entry(calm, at(1, 9)), entry(calm, at(2, 9)), entry(tired, at(3, 9))}
	slices := SortedDistribution(entries)
	require.Len(t, slices, 3)
	assert.Equal(t, "Calm", slices[0].Name)
	assert.Equal(t, 2, slices[0].Count)
	assert.InDelta(t, 180, slices[0].EndAngle, 1e-9)
	assert.Equal(t, slices[0].EndAngle, slices[1].StartAngle)
	assert.InDelta(t, 360, slices[2].EndAngle, 1e-9)
}

// ============================================================
// Period report
// ============================================================

func TestPeriodReportOldEntriesWeekly(t *testing.T) {
	now := at(30, 12)
	entries := []mood.Entry{entry(happy, at(0, 9)), entry(calm, at(10, 9))}
	r := PeriodReport(entries, Weekly, now)

	assert.Empty(t, r.Entries)
	assert.False(t, r.Computable)
	assert.Equal(t, Stable, r.Trend)
	assert.Equal(t, adviceNoData, r.Advice)
	assert.False(t, math.IsNaN(r.Improvement))
	assert.False(t, math.IsInf(r.Improvement, 0))
}

func TestPeriodReportImproved(t *testing.T) {
	now := at(7, 20)
	entries := []mood.Entry{
		entry(happy, at(6, 9)),
		entry(tired, at(1, 9)),
		entry(stressed, at(2, 9)),
		entry(happy, at(5, 9)),
	}
	r := PeriodReport(entries, Weekly, now)

	require.Len(t, r.Entries, 4)
	assert.Equal(t, "Tired", r.Entries[0].Mood.Name)
	assert.True(t, r.Computable)
	assert.InDelta(t, 0.25, r.EarlyAvg, 1e-9)
	assert.InDelta(t, 0.9, r.LateAvg, 1e-9)
	assert.InDelta(t, 260, r.Improvement, 1e-9)
	assert.Equal(t, Improved, r.Trend)
	assert.Equal(t, adviceImproved, r.Advice)
}

func TestPeriodReportDeclinedAndStable(t *testing.T) {
	now := at(7, 20)
	declined := PeriodReport([]mood.Entry{entry(happy, at(3, 9)), entry(tired, at(4, 9))}, Weekly, now)
	assert.Equal(t, Declined, declined.Trend)
	assert.Less(t, declined.Improvement, 0.0)

	stable := PeriodReport([]mood.Entry{entry(calm, at(3, 9)), entry(calm, at(4, 9))}, Weekly, now)
	assert.True(t, stable.Computable)
	assert.Equal(t, Stable, stable.Trend)
	assert.Equal(t, adviceStable, stable.Advice)
}

func TestPeriodReportZeroBaseline(t *testing.T) {
	zero := mood.NewMood("Numb", "😶", "#000000", "", 0)
	now := at(7, 20)
	r := PeriodReport([]mood.Entry{entry(zero, at(3, 9)), entry(happy, at(4, 9))}, Weekly, now)

	assert.False(t, r.Computable)
	assert.Equal(t, Stable, r.Trend)
	assert.Equal(t, adviceNoData, r.Advice)
	assert.Zero(t, r.Improvement)
}

func TestPeriodReportMonthlyWindow(t *testing.T) {
	now := at(30, 12)
	entries := []mood.Entry{entry(calm, at(0, 9)), entry(calm, at(10, 9)), entry(happy, at(29, 9)), entry(happy, at(31, 9))}
	weekly := PeriodReport(entries, Weekly, now)
	monthly := PeriodReport(entries, Monthly, now)

	assert.Len(t, weekly.Entries, 1)
	assert.Len(t, monthly.Entries, 3, "future entries and entries older than a month are excluded")
}

func TestPeriodReportMonthlyWindowClampsMonthEnd(t *testing.T) {
	now := time.Date(2024, time.March, 31, 12, 0, 0, 0, time.Local)
	entries := []mood.Entry{
		entry(calm, time.Date(2024, time.February, 28, 13, 0, 0, 0, time.Local)),
		entry(calm, time.Date(2024, time.February, 29, 13, 0, 0, 0, time.Local)),
		entry(happy, time.Date(2024, time.March, 1, 13, 0, 0, 0, time.Local)),
	}

	r := PeriodReport(entries, Monthly, now)
	assert.Len(t, r.Entries, 2, "a month back from Mar 31 starts on Feb 29")
	assert.Equal(t, time.Date(2024, time.February, 29, 12, 0, 0, 0, time.Local), Monthly.Start(now))
}

func TestMonthlyStart(t *testing.T) {
	tests := []struct {
		now  time.Time
		want time.Time
	}{
		{time.Date(2025, time.March, 30, 8, 0, 0, 0, time.UTC), time.Date(2025, time.February, 28, 8, 0, 0, 0, time.UTC)},
		{time.Date(2025, time.May, 31, 8, 0, 0, 0, time.UTC), time.Date(2025, time.April, 30, 8, 0, 0, 0, time.UTC)},
		{time.Date(2025, time.January, 15, 8, 0, 0, 0, time.UTC), time.Date(2024, time.December, 15, 8, 0, 0, 0, time.UTC)},
		{time.Date(2025, time.July, 10, 8, 0, 0, 0, time.UTC), time.Date(2025, time.June, 10, 8, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Monthly.Start(tt.now), "month back from %s", tt.now.Format("Jan 2"))
	}
}

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("Monthly")
	require.NoError(t, err)
	assert.Equal(t, Monthly, p)

	p, err = ParsePeriod("")
	require.NoError(t, err)
	assert.Equal(t, Weekly, p)

	_, err = ParsePeriod("yearly")
	assert.Error(t, err)
}

// ============================================================
// Summary
// ============================================================

func TestSummarize(t *testing.T) {
	now := at(2, 20)
	entries := []mood.Entry{
		entry(happy, at(0, 9), "Reading"),
		entry(happy, at(1, 9), "Reading"),
		entry(calm, at(2, 9)),
	}
	s := Summarize(entries, mood.Badges(), mood.Challenges(), now)

	assert.Equal(t, 3, s.DaysTracked)
	assert.Equal(t, "Happy", s.MostCommonMood)
	assert.Equal(t, "Reading", s.MostCommonHabit)
	assert.Equal(t, 3, s.BestStreak)
	assert.Equal(t, 3, s.CurrentStreak)
	assert.Len(t, s.Unlocked, 1)
	assert.True(t, s.Challenges[0].Completed)
	assert.Len(t, s.Today, 1)
	assert.Len(t, s.Distribution, 2)
}
