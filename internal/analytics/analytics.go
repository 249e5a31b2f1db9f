// Package analytics derives statistics from mood history. Every function is
// pure and total: empty input yields the documented sentinel, never an error.
package analytics

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/sadopc/moodwheel/internal/mood"
)

// None is returned by MostCommon when there is nothing to count.
const None = "None"

const noForecastMessage = "Not enough history for this weekday yet. Keep spinning!"

// day truncates t to local midnight.
func day(t time.Time) time.Time {
	t = t.In(time.Local)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

func sameDay(a, b time.Time) bool {
	return day(a).Equal(day(b))
}

// sortedByDate returns an ascending copy; the input is left untouched.
func sortedByDate(entries []mood.Entry) []mood.Entry {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b mood.Entry) int {
		return a.Date.Compare(b.Date)
	})
	return out
}

// DaysTracked is the number of logged entries.
func DaysTracked(entries []mood.Entry) int {
	return len(entries)
}

// MostCommon groups entries by the keys keyFn projects from each entry and
// returns the most frequent one. Ties go to the lexically smallest key.
func MostCommon(entries []mood.Entry, keyFn func(mood.Entry) []string) string {
	counts := make(map[string]int)
	for _, e := range entries {
		for _, k := range keyFn(e) {
			counts[k]++
		}
	}
	return topKey(counts)
}

func topKey(counts map[string]int) string {
	best, bestCount := None, 0
	for k, c := range counts {
		if c > bestCount || (c == bestCount && k < best) {
			best, bestCount = k, c
		}
	}
	return best
}

func byMoodName(e mood.Entry) []string { return []string{e.Mood.Name} }
func byHabit(e mood.Entry) []string    { return e.Habits }

func MostCommonMood(entries []mood.Entry) string {
	return MostCommon(entries, byMoodName)
}

func MostCommonHabit(entries []mood.Entry) string {
	return MostCommon(entries, byHabit)
}

// BestStreak returns the longest run of consecutive calendar days with at
// least one entry. Zero or one entries yield 1. Several entries on one day
// count as that day once, so a second entry never resets the run, unlike a
// pairwise walk over raw entries.
func BestStreak(entries []mood.Entry) int {
	days := distinctDays(entries)
	streak, best := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i-1].AddDate(0, 0, 1).Equal(days[i]) {
			streak++
			best = max(best, streak)
		} else {
			streak = 1
		}
	}
	return best
}

// CurrentStreak counts the run of consecutive days ending at the latest
// entry, as long as that entry is from today or yesterday. Otherwise the
// streak is broken and the result is 0.
func CurrentStreak(entries []mood.Entry, now time.Time) int {
	days := distinctDays(entries)
	if len(days) == 0 {
		return 0
	}
	last := days[len(days)-1]
	today := day(now)
	if !last.Equal(today) && !last.AddDate(0, 0, 1).Equal(today) {
		return 0
	}
	streak := 1
	for i := len(days) - 1; i > 0; i-- {
		if !days[i-1].AddDate(0, 0, 1).Equal(days[i]) {
			break
		}
		streak++
	}
	return streak
}

// distinctDays returns the ascending set of local calendar days present.
func distinctDays(entries []mood.Entry) []time.Time {
	var days []time.Time
	for _, e := range sortedByDate(entries) {
		d := day(e.Date)
		if len(days) > 0 && days[len(days)-1].Equal(d) {
			continue
		}
		days = append(days, d)
	}
	return days
}

// UnlockedBadges keeps badges whose requirement the streak meets, in order.
func UnlockedBadges(streak int, badges []mood.Badge) []mood.Badge {
	var out []mood.Badge
	for _, b := range badges {
		if b.Requirement <= streak {
			out = append(out, b)
		}
	}
	return out
}

type ChallengeStatus struct {
	Challenge mood.Challenge
	Completed bool
	Progress  float64 // 0..1
}

func ChallengeProgress(streak int, challenges []mood.Challenge) []ChallengeStatus {
	out := make([]ChallengeStatus, 0, len(challenges))
	for _, c := range challenges {
		st := ChallengeStatus{Challenge: c, Completed: streak >= c.Goal}
		if c.Goal > 0 {
			st.Progress = float64(min(streak, c.Goal)) / float64(c.Goal)
		} else {
			st.Progress = 1
		}
		out = append(out, st)
	}
	return out
}

// Tomorrow returns the weekday after now.
func Tomorrow(now time.Time) time.Weekday {
	return day(now).AddDate(0, 0, 1).Weekday()
}

// MoodForecast predicts the mood for target from the most frequent mood
// logged on that weekday.
func MoodForecast(entries []mood.Entry, target time.Weekday) string {
	var matching []mood.Entry
	for _, e := range entries {
		if e.Date.In(time.Local).Weekday() == target {
			matching = append(matching, e)
		}
	}
	if len(matching) == 0 {
		return noForecastMessage
	}
	return fmt.Sprintf("Based on past %ss, you might feel %s.", target, MostCommonMood(matching))
}

// DailyMoods returns the entries logged on date's calendar day, oldest first.
func DailyMoods(entries []mood.Entry, date time.Time) []mood.Entry {
	var out []mood.Entry
	for _, e := range sortedByDate(entries) {
		if sameDay(e.Date, date) {
			out = append(out, e)
		}
	}
	return out
}

// MoodDistribution counts entries per mood name.
func MoodDistribution(entries []mood.Entry) map[string]int {
	counts := make(map[string]int)
	for _, e := range entries {
		counts[e.Mood.Name]++
	}
	return counts
}

// Slice is one pie-chart wedge. Angles are in degrees, clockwise from 0.
type Slice struct {
	Name       string
	Count      int
	StartAngle float64
	EndAngle   float64
}

// SortedDistribution lays the distribution out as pie slices ordered by
// mood name.
func SortedDistribution(entries []mood.Entry) []Slice {
	counts := MoodDistribution(entries)
	names := make([]string, 0, len(counts))
	for n := range counts {
		names = append(names, n)
	}
	slices.SortFunc(names, cmp.Compare[string])

	total := float64(len(entries))
	out := make([]Slice, 0, len(names))
	var angle float64
	for _, n := range names {
		sweep := 360 * float64(counts[n]) / total
		out = append(out, Slice{Name: n, Count: counts[n], StartAngle: angle, EndAngle: angle + sweep})
		angle += sweep
	}
	return out
}
