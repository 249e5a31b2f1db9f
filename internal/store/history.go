package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/sadopc/moodwheel/internal/logger"
	"github.com/sadopc/moodwheel/internal/mood"
)

var ErrEntryNotFound = errors.New("entry not found")

// EncodeHistory serializes the whole history collection.
func EncodeHistory(entries []mood.Entry) ([]byte, error) {
	if entries == nil {
		entries = []mood.Entry{}
	}
	return json.Marshal(entries)
}

// DecodeHistory parses a history blob. Empty input is an empty history.
func DecodeHistory(data []byte) ([]mood.Entry, error) {
	if len(data) == 0 {
		return []mood.Entry{}, nil
	}
	var entries []mood.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []mood.Entry{}
	}
	return entries, nil
}

// LoadHistory reads the stored history in storage order. A corrupt blob
// loads as an empty history; only database failures are returned.
func (s *Store) LoadHistory() ([]mood.Entry, error) {
	data, err := s.GetBlob(KeyHistory)
	if err != nil {
		return nil, err
	}
	entries, err := DecodeHistory(data)
	if err != nil {
		logger.Warn("Discarding unreadable mood history", "error", err, "bytes", len(data))
		return []mood.Entry{}, nil
	}
	return entries, nil
}

func (s *Store) SaveHistory(entries []mood.Entry) error {
	data, err := EncodeHistory(entries)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	return s.SetBlob(KeyHistory, data)
}

// AddEntry appends e to the stored history.
func (s *Store) AddEntry(e mood.Entry) error {
	history, err := s.LoadHistory()
	if err != nil {
		return err
	}
	history = append(history, e.Clone())
	if err := s.SaveHistory(history); err != nil {
		return fmt.Errorf("add entry: %w", err)
	}
	logger.Debug("Saved mood", "mood", e.Mood.Name, "id", e.ID)
	return nil
}

func (s *Store) GetEntry(id uuid.UUID) (mood.Entry, error) {
	history, err := s.LoadHistory()
	if err != nil {
		return mood.Entry{}, err
	}
	i := indexOf(history, id)
	if i < 0 {
		return mood.Entry{}, fmt.Errorf("get entry %s: %w", id, ErrEntryNotFound)
	}
	return history[i], nil
}

// UpdateEntryNote replaces the note of one entry. The mood snapshot is
// never rewritten.
func (s *Store) UpdateEntryNote(id uuid.UUID, note string) error {
	history, err := s.LoadHistory()
	if err != nil {
		return err
	}
	i := indexOf(history, id)
	if i < 0 {
		return fmt.Errorf("update entry %s: %w", id, ErrEntryNotFound)
	}
	history[i].Note = note
	return s.SaveHistory(history)
}

func (s *Store) DeleteEntry(id uuid.UUID) error {
	history, err := s.LoadHistory()
	if err != nil {
		return err
	}
	i := indexOf(history, id)
	if i < 0 {
		return fmt.Errorf("delete entry %s: %w", id, ErrEntryNotFound)
	}
	return s.SaveHistory(slices.Delete(history, i, i+1))
}

// ResetHistory drops every entry.
func (s *Store) ResetHistory() error {
	return s.DeleteBlob(KeyHistory)
}

// ListEntries returns the history newest first, filtered by f.
func (s *Store) ListEntries(f EntryFilter) ([]mood.Entry, error) {
	history, err := s.LoadHistory()
	if err != nil {
		return nil, err
	}

	var entries []mood.Entry
	for _, e := range history {
		if f.MoodID != nil && e.Mood.ID != *f.MoodID {
			continue
		}
		if f.From != nil && e.Date.Before(*f.From) {
			continue
		}
		if f.To != nil && !e.Date.Before(*f.To) {
			continue
		}
		entries = append(entries, e)
	}
	slices.SortStableFunc(entries, func(a, b mood.Entry) int {
		return b.Date.Compare(a.Date)
	})
	if f.Limit > 0 && len(entries) > f.Limit {
		entries = entries[:f.Limit]
	}
	return entries, nil
}

func indexOf(history []mood.Entry, id uuid.UUID) int {
	return slices.IndexFunc(history, func(e mood.Entry) bool { return e.ID == id })
}
