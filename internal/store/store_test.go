package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/sadopc/moodwheel/internal/mood"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// addEntry logs a default mood at base shifted by the given number of hours.
func addEntry(t *testing.T, s *Store, name string, hours int, note string, habits ...string) mood.Entry {
	t.Helper()
	m, err := s.FindMood(name)
	if err != nil {
		t.Fatalf("find mood %q: %v", name, err)
	}
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	e := mood.NewEntry(m, base.Add(time.Duration(hours)*time.Hour), note, habits)
	if err := s.AddEntry(e); err != nil {
		t.Fatalf("add entry: %v", err)
	}
	return e
}

// ============================================================
// Store initialization
// ============================================================

func TestNewMemory(t *testing.T) {
	s, err := NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	var version int
	s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if version != 1 {
		t.Fatalf("expected user_version 1, got %d", version)
	}
}

func TestNewWithPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "moodwheel.db")
	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	// Reopen; should not re-migrate
	s2, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	s2.Close()
}

func TestDefaultDBPath(t *testing.T) {
	path, err := DefaultDBPath()
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "moodwheel.db" {
		t.Fatalf("unexpected path %q", path)
	}
}

func TestMigrationIdempotent(t *testing.T) {
	s := newTestStore(t)
	if err := s.migrate(); err != nil {
		t.Fatalf("second migration failed: %v", err)
	}
}

// ============================================================
// Blobs
// ============================================================

func TestBlobMissingKey(t *testing.T) {
	s := newTestStore(t)

	data, err := s.GetBlob("nope")
	if err != nil {
		t.Fatal(err)
	}
	if data != nil {
		t.Fatalf("expected nil, got %q", data)
	}
}

func TestBlobUpsertAndDelete(t *testing.T) {
	s := newTestStore(t)

	s.SetBlob("k", []byte("v1"))
	s.SetBlob("k", []byte("v2"))
	data, _ := s.GetBlob("k")
	if string(data) != "v2" {
		t.Fatalf("expected v2, got %q", data)
	}

	if err := s.DeleteBlob("k"); err != nil {
		t.Fatal(err)
	}
	data, _ = s.GetBlob("k")
	if data != nil {
		t.Fatalf("expected deleted blob, got %q", data)
	}
}

// ============================================================
// History
// ============================================================

func TestHistoryEmpty(t *testing.T) {
	s := newTestStore(t)

	history, err := s.LoadHistory()
	if err != nil {
		t.Fatal(err)
	}
	if history == nil || len(history) != 0 {
		t.Fatalf("expected empty non-nil history, got %v", history)
	}
}

func TestHistoryRoundTrip(t *testing.T) {
	s := newTestStore(t)

	want := []mood.Entry{
		addEntry(t, s, "Happy", 0, "sunny walk", "Exercise", "Outdoor"),
		addEntry(t, s, "Tired", 5, ""),
		addEntry(t, s, "Calm", 30, "tea", "Meditation"),
	}

	got, err := s.LoadHistory()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("history mismatch (-want +got):\n%s", diff)
	}
}

func TestHistoryCorruptBlobLoadsEmpty(t *testing.T) {
	s := newTestStore(t)

	s.SetBlob(KeyHistory, []byte("{not json"))
	history, err := s.LoadHistory()
	if err != nil {
		t.Fatalf("corrupt history should not error: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("expected empty history, got %d entries", len(history))
	}

	// Saving over it recovers.
	addEntry(t, s, "Happy", 0, "")
	history, _ = s.LoadHistory()
	if len(history) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(history))
	}
}

func TestGetEntry(t *testing.T) {
	s := newTestStore(t)
	e := addEntry(t, s, "Focused", 0, "deep work")

	got, err := s.GetEntry(e.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Note != "deep work" || got.Mood.Name != "Focused" {
		t.Fatalf("unexpected entry %+v", got)
	}
}

func TestGetEntryNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetEntry(uuid.New())
	if !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestUpdateEntryNote(t *testing.T) {
	s := newTestStore(t)
	e := addEntry(t, s, "Calm", 0, "before")

	if err := s.UpdateEntryNote(e.ID, "after"); err != nil {
		t.Fatal(err)
	}
	got, _ := s.GetEntry(e.ID)
	if got.Note != "after" {
		t.Fatalf("expected note 'after', got %q", got.Note)
	}
	if got.Mood != e.Mood {
		t.Fatal("mood snapshot changed on note edit")
	}

	if err := s.UpdateEntryNote(uuid.New(), "x"); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestDeleteEntry(t *testing.T) {
	s := newTestStore(t)
	a := addEntry(t, s, "Happy", 0, "")
	b := addEntry(t, s, "Tired", 1, "")

	if err := s.DeleteEntry(a.ID); err != nil {
		t.Fatal(err)
	}
	history, _ := s.LoadHistory()
	if len(history) != 1 || history[0].ID != b.ID {
		t.Fatalf("expected only %s left, got %v", b.ID, history)
	}

	if err := s.DeleteEntry(a.ID); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestResetHistory(t *testing.T) {
	s := newTestStore(t)
	addEntry(t, s, "Happy", 0, "")
	addEntry(t, s, "Calm", 1, "")

	if err := s.ResetHistory(); err != nil {
		t.Fatal(err)
	}
	history, _ := s.LoadHistory()
	if len(history) != 0 {
		t.Fatalf("expected empty history, got %d", len(history))
	}
}

func TestListEntriesNewestFirst(t *testing.T) {
	s := newTestStore(t)
	addEntry(t, s, "Happy", 0, "")
	addEntry(t, s, "Calm", 48, "")
	addEntry(t, s, "Tired", 24, "")

	entries, err := s.ListEntries(EntryFilter{})
	if err != nil {
		t.Fatal(err)
	}
	names := []string{entries[0].Mood.Name, entries[1].Mood.Name, entries[2].Mood.Name}
	if diff := cmp.Diff([]string{"Calm", "Tired", "Happy"}, names); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestListEntriesWithFilters(t *testing.T) {
	s := newTestStore(t)
	happy := addEntry(t, s, "Happy", 0, "")
	addEntry(t, s, "Calm", 24, "")
	addEntry(t, s, "Happy", 48, "")

	id := happy.Mood.ID
	entries, _ := s.ListEntries(EntryFilter{MoodID: &id})
	if len(entries) != 2 {
		t.Fatalf("expected 2 happy entries, got %d", len(entries))
	}

	from := happy.Date.Add(12 * time.Hour)
	entries, _ = s.ListEntries(EntryFilter{From: &from})
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries after %v, got %d", from, len(entries))
	}

	to := happy.Date.Add(12 * time.Hour)
	entries, _ = s.ListEntries(EntryFilter{To: &to})
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry before %v, got %d", to, len(entries))
	}

	entries, _ = s.ListEntries(EntryFilter{Limit: 1})
	if len(entries) != 1 || !entries[0].Date.Equal(happy.Date.Add(48*time.Hour)) {
		t.Fatalf("limit should keep the newest entry, got %v", entries)
	}
}

// ============================================================
// Mood catalog
// ============================================================

func TestLoadMoodsDefaults(t *testing.T) {
	s := newTestStore(t)

	moods, err := s.LoadMoods()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(mood.DefaultMoods(), moods); diff != "" {
		t.Fatalf("expected default catalog (-want +got):\n%s", diff)
	}
}

func TestLoadMoodsCorruptOrEmptyFallsBack(t *testing.T) {
	s := newTestStore(t)

	for _, raw := range []string{"garbage", "[]"} {
		s.SetBlob(KeyMoods, []byte(raw))
		moods, err := s.LoadMoods()
		if err != nil {
			t.Fatal(err)
		}
		if len(moods) != len(mood.DefaultMoods()) {
			t.Fatalf("%q: expected defaults, got %d moods", raw, len(moods))
		}
	}
}

func TestAddMood(t *testing.T) {
	s := newTestStore(t)

	m := mood.NewMood("Grateful", "🙏", "#00FF00", "Write it down.", 0.85)
	if err := s.AddMood(m); err != nil {
		t.Fatal(err)
	}
	got, err := s.FindMood("Grateful")
	if err != nil {
		t.Fatal(err)
	}
	if got != m {
		t.Fatalf("expected %+v, got %+v", m, got)
	}
	moods, _ := s.LoadMoods()
	if len(moods) != len(mood.DefaultMoods())+1 {
		t.Fatalf("expected defaults plus one, got %d", len(moods))
	}
}

func TestAddMoodInvalid(t *testing.T) {
	s := newTestStore(t)

	bad := mood.NewMood("Weird", "?", "red", "", 0.5)
	if err := s.AddMood(bad); !errors.Is(err, mood.ErrInvalidMood) {
		t.Fatalf("expected ErrInvalidMood, got %v", err)
	}
	bad = mood.NewMood("Weird", "?", "#FF0000", "", 1.5)
	if err := s.AddMood(bad); !errors.Is(err, mood.ErrInvalidMood) {
		t.Fatalf("expected ErrInvalidMood, got %v", err)
	}
}

func TestUpdateMoodLeavesHistoryUntouched(t *testing.T) {
	s := newTestStore(t)
	e := addEntry(t, s, "Happy", 0, "")

	edited := e.Mood
	edited.Name = "Joyful"
	edited.Color = "#FFA500"
	edited.Value = 1
	if err := s.UpdateMood(edited); err != nil {
		t.Fatal(err)
	}

	if _, err := s.FindMood("Joyful"); err != nil {
		t.Fatalf("catalog not updated: %v", err)
	}
	got, _ := s.GetEntry(e.ID)
	if got.Mood.Name != "Happy" || got.Mood.Value != 0.9 {
		t.Fatalf("history snapshot changed: %+v", got.Mood)
	}
}

func TestUpdateMoodNotFound(t *testing.T) {
	s := newTestStore(t)

	m := mood.NewMood("Ghost", "👻", "#FFFFFF", "", 0.5)
	if err := s.UpdateMood(m); !errors.Is(err, ErrMoodNotFound) {
		t.Fatalf("expected ErrMoodNotFound, got %v", err)
	}
}

func TestDeleteMoodLeavesHistoryUntouched(t *testing.T) {
	s := newTestStore(t)
	e := addEntry(t, s, "Stressed", 0, "deadline")

	if err := s.DeleteMood(e.Mood.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := s.FindMood("Stressed"); !errors.Is(err, ErrMoodNotFound) {
		t.Fatalf("expected mood gone, got %v", err)
	}
	got, _ := s.GetEntry(e.ID)
	if got.Mood.Name != "Stressed" {
		t.Fatalf("history entry lost its mood: %+v", got)
	}
}

func TestDeleteLastMoodRefused(t *testing.T) {
	s := newTestStore(t)

	moods, err := s.LoadMoods()
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range moods[1:] {
		if err := s.DeleteMood(m.ID); err != nil {
			t.Fatalf("DeleteMood(%s): %v", m.Name, err)
		}
	}

	last := moods[0]
	if err := s.DeleteMood(last.ID); !errors.Is(err, ErrLastMood) {
		t.Fatalf("expected ErrLastMood, got %v", err)
	}
	left, _ := s.LoadMoods()
	if len(left) != 1 || left[0].ID != last.ID {
		t.Fatalf("catalog should keep the last mood, got %+v", left)
	}
}

// ============================================================
// Settings
// ============================================================

func TestSettingsDefaults(t *testing.T) {
	s := newTestStore(t)

	defaults := map[string]string{
		"theme":            "Bright",
		"sound_enabled":    "true",
		"reminder_enabled": "false",
		"reminder_time":    "20:00",
	}

	for k, expected := range defaults {
		val, err := s.GetSetting(k)
		if err != nil {
			t.Fatalf("GetSetting(%q): %v", k, err)
		}
		if val != expected {
			t.Fatalf("GetSetting(%q) = %q, want %q", k, val, expected)
		}
	}
}

func TestSetSettingOverwrite(t *testing.T) {
	s := newTestStore(t)

	s.SetSetting("key", "v1")
	s.SetSetting("key", "v2")
	val, _ := s.GetSetting("key")
	if val != "v2" {
		t.Fatalf("expected v2, got %s", val)
	}
}

func TestGetAllSettingsOrderedByKey(t *testing.T) {
	s := newTestStore(t)

	s.SetSetting("aaa", "first")
	settings, err := s.GetAllSettings()
	if err != nil {
		t.Fatal(err)
	}
	if len(settings) < 2 || settings[0].Key != "aaa" || settings[0].Value != "first" {
		t.Fatalf("expected aaa first, got %+v", settings)
	}
	for i := 1; i < len(settings); i++ {
		if settings[i-1].Key >= settings[i].Key {
			t.Fatalf("settings not ordered by key: %+v", settings)
		}
	}
}

func TestGetSettingMissing(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.GetSetting("nonexistent"); err == nil {
		t.Fatal("expected error for missing setting")
	}
}

// ============================================================
// Preferences
// ============================================================

func TestLoadPreferencesDefaults(t *testing.T) {
	s := newTestStore(t)

	p, err := s.LoadPreferences()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(DefaultPreferences(), p); diff != "" {
		t.Fatalf("preferences mismatch (-want +got):\n%s", diff)
	}
}

func TestSavePreferences(t *testing.T) {
	s := newTestStore(t)

	want := Preferences{
		Theme:           ThemeDark,
		SoundEnabled:    false,
		ReminderEnabled: true,
		ReminderHour:    7,
		ReminderMinute:  45,
	}
	if err := s.SavePreferences(want); err != nil {
		t.Fatal(err)
	}
	got, _ := s.LoadPreferences()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("preferences mismatch (-want +got):\n%s", diff)
	}
	if v, _ := s.GetSetting("reminder_time"); v != "07:45" {
		t.Fatalf("expected stored clock 07:45, got %q", v)
	}
}

func TestSavePreferencesRejectsBadValues(t *testing.T) {
	s := newTestStore(t)

	p := DefaultPreferences()
	p.Theme = "Neon"
	if err := s.SavePreferences(p); err == nil {
		t.Fatal("expected error for unknown theme")
	}

	p = DefaultPreferences()
	p.ReminderHour = 24
	if err := s.SavePreferences(p); err == nil {
		t.Fatal("expected error for hour 24")
	}
}

func TestLoadPreferencesIgnoresGarbage(t *testing.T) {
	s := newTestStore(t)

	s.SetSetting("sound_enabled", "maybe")
	s.SetSetting("reminder_time", "noon")
	p, err := s.LoadPreferences()
	if err != nil {
		t.Fatal(err)
	}
	if !p.SoundEnabled || p.ReminderHour != 20 {
		t.Fatalf("expected defaults for garbage values, got %+v", p)
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in     string
		h, m   int
		hasErr bool
	}{
		{"20:00", 20, 0, false},
		{"07:05", 7, 5, false},
		{"0:0", 0, 0, false},
		{"24:00", 0, 0, true},
		{"12:60", 0, 0, true},
		{"noon", 0, 0, true},
	}
	for _, tt := range tests {
		h, m, err := ParseClock(tt.in)
		if (err != nil) != tt.hasErr {
			t.Fatalf("ParseClock(%q) err = %v, wantErr %v", tt.in, err, tt.hasErr)
		}
		if !tt.hasErr && (h != tt.h || m != tt.m) {
			t.Fatalf("ParseClock(%q) = %d:%d, want %d:%d", tt.in, h, m, tt.h, tt.m)
		}
	}
}
