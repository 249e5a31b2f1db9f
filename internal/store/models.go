package store

import (
	"time"

	"github.com/google/uuid"
)

type Setting struct {
	Key   string
	Value string
}

// EntryFilter narrows ListEntries. Zero values mean "no bound".
type EntryFilter struct {
	MoodID *uuid.UUID
	From   *time.Time
	To     *time.Time
	Limit  int
}

// Theme names accepted by the settings view.
const (
	ThemeBright = "Bright"
	ThemeDark   = "Dark"
)

// Preferences are the user-facing settings, loaded once and passed to
// whichever layer needs them.
type Preferences struct {
	Theme           string
	SoundEnabled    bool
	ReminderEnabled bool
	ReminderHour    int
	ReminderMinute  int
}

func (p Preferences) Dark() bool { return p.Theme == ThemeDark }
