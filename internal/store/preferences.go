package store

import (
	"fmt"
	"strconv"
)

const (
	settingTheme           = "theme"
	settingSoundEnabled    = "sound_enabled"
	settingReminderEnabled = "reminder_enabled"
	settingReminderTime    = "reminder_time"
)

// DefaultPreferences mirrors the rows seeded by the first migration.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:          ThemeBright,
		SoundEnabled:   true,
		ReminderHour:   20,
		ReminderMinute: 0,
	}
}

// LoadPreferences reads the preference rows. Unparseable values fall back to
// their defaults.
func (s *Store) LoadPreferences() (Preferences, error) {
	p := DefaultPreferences()

	settings, err := s.GetAllSettings()
	if err != nil {
		return p, err
	}
	for _, st := range settings {
		switch st.Key {
		case settingTheme:
			if st.Value == ThemeBright || st.Value == ThemeDark {
				p.Theme = st.Value
			}
		case settingSoundEnabled:
			if b, err := strconv.ParseBool(st.Value); err == nil {
				p.SoundEnabled = b
			}
		case settingReminderEnabled:
			if b, err := strconv.ParseBool(st.Value); err == nil {
				p.ReminderEnabled = b
			}
		case settingReminderTime:
			if h, m, err := ParseClock(st.Value); err == nil {
				p.ReminderHour, p.ReminderMinute = h, m
			}
		}
	}
	return p, nil
}

func (s *Store) SavePreferences(p Preferences) error {
	if p.Theme != ThemeBright && p.Theme != ThemeDark {
		return fmt.Errorf("unknown theme %q", p.Theme)
	}
	clock := FormatClock(p.ReminderHour, p.ReminderMinute)
	if _, _, err := ParseClock(clock); err != nil {
		return err
	}
	values := map[string]string{
		settingTheme:           p.Theme,
		settingSoundEnabled:    strconv.FormatBool(p.SoundEnabled),
		settingReminderEnabled: strconv.FormatBool(p.ReminderEnabled),
		settingReminderTime:    clock,
	}
	for k, v := range values {
		if err := s.SetSetting(k, v); err != nil {
			return fmt.Errorf("save preference %s: %w", k, err)
		}
	}
	return nil
}

// ParseClock parses "HH:MM" in 24-hour time.
func ParseClock(s string) (hour, minute int, err error) {
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return 0, 0, fmt.Errorf("parse clock %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("clock %q out of range", s)
	}
	return hour, minute, nil
}

func FormatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
