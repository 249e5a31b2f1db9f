package mood

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidMood is returned by Validate for moods that cannot be stored.
var ErrInvalidMood = errors.New("invalid mood")

// Mood is a named emotional category. Value is the positivity/energy level
// in [0, 1] used for charts and period reports.
type Mood struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Icon   string    `json:"icon"`
	Color  string    `json:"color"` // hex, e.g. "#FFFF00"
	Advice string    `json:"advice"`
	Value  float64   `json:"value"`
}

// Entry is one logged mood. The embedded Mood is a snapshot taken when the
// entry was created; later catalog edits never reach it.
type Entry struct {
	ID     uuid.UUID `json:"id"`
	Date   time.Time `json:"date"`
	Mood   Mood      `json:"mood"`
	Note   string    `json:"note,omitempty"`
	Habits []string  `json:"habits"`
}

type Badge struct {
	Name        string
	Requirement int // streak length in days
	Icon        string
}

type Challenge struct {
	Name   string
	Goal   int
	Reward string
}

type Fact struct {
	Title   string
	Content string
	Icon    string
}

// NewMood returns a mood with a fresh ID.
func NewMood(name, icon, color, advice string, value float64) Mood {
	return Mood{
		ID:     uuid.New(),
		Name:   name,
		Icon:   icon,
		Color:  color,
		Advice: advice,
		Value:  value,
	}
}

// NewEntry snapshots m into a new history entry. Habit tags are trimmed,
// blanks and duplicates dropped, and the first-seen order kept.
func NewEntry(m Mood, at time.Time, note string, habits []string) Entry {
	return Entry{
		ID:     uuid.New(),
		Date:   at,
		Mood:   m,
		Note:   strings.TrimSpace(note),
		Habits: normalizeHabits(habits),
	}
}

// HasNote reports whether the entry carries a non-empty note.
func (e Entry) HasNote() bool { return e.Note != "" }

// Clone returns a deep copy, so callers can mutate the habit list freely.
func (e Entry) Clone() Entry {
	e.Habits = slices.Clone(e.Habits)
	return e
}

func normalizeHabits(habits []string) []string {
	out := make([]string, 0, len(habits))
	seen := make(map[string]bool, len(habits))
	for _, h := range habits {
		h = strings.TrimSpace(h)
		if h == "" || seen[h] {
			continue
		}
		seen[h] = true
		out = append(out, h)
	}
	return out
}

// Validate checks the invariants a mood must hold before it is saved.
func (m Mood) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidMood)
	}
	if m.Value < 0 || m.Value > 1 {
		return fmt.Errorf("%w: value %.2f outside [0, 1]", ErrInvalidMood, m.Value)
	}
	if !ValidHex(m.Color) {
		return fmt.Errorf("%w: color %q is not a hex color", ErrInvalidMood, m.Color)
	}
	return nil
}

// ValidHex accepts "#RGB" and "#RRGGBB".
func ValidHex(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	digits := s[1:]
	if len(digits) != 3 && len(digits) != 6 {
		return false
	}
	for _, c := range digits {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// ParseHabits splits a comma-separated tag list.
func ParseHabits(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return normalizeHabits(strings.Split(s, ","))
}
