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

var (
	ErrMoodNotFound = errors.New("mood not found")
	ErrLastMood     = errors.New("cannot delete the last mood")
)

// LoadMoods returns the mood catalog. A missing, unreadable or empty catalog
// loads as the built-in defaults.
func (s *Store) LoadMoods() ([]mood.Mood, error) {
	data, err := s.GetBlob(KeyMoods)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return mood.DefaultMoods(), nil
	}
	var moods []mood.Mood
	if err := json.Unmarshal(data, &moods); err != nil {
		logger.Warn("Falling back to default moods", "error", err)
		return mood.DefaultMoods(), nil
	}
	if len(moods) == 0 {
		return mood.DefaultMoods(), nil
	}
	return moods, nil
}

// SaveMoods replaces the catalog. Every mood must validate.
func (s *Store) SaveMoods(moods []mood.Mood) error {
	for _, m := range moods {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	if moods == nil {
		moods = []mood.Mood{}
	}
	data, err := json.Marshal(moods)
	if err != nil {
		return fmt.Errorf("encode moods: %w", err)
	}
	return s.SetBlob(KeyMoods, data)
}

func (s *Store) AddMood(m mood.Mood) error {
	if err := m.Validate(); err != nil {
		return err
	}
	moods, err := s.LoadMoods()
	if err != nil {
		return err
	}
	return s.SaveMoods(append(moods, m))
}

// UpdateMood replaces the catalog mood with m.ID. History entries keep the
// snapshot they were logged with.
func (s *Store) UpdateMood(m mood.Mood) error {
	if err := m.Validate(); err != nil {
		return err
	}
	moods, err := s.LoadMoods()
	if err != nil {
		return err
	}
	i := moodIndex(moods, m.ID)
	if i < 0 {
		return fmt.Errorf("update mood %s: %w", m.ID, ErrMoodNotFound)
	}
	moods[i] = m
	return s.SaveMoods(moods)
}

// DeleteMood removes one mood from the catalog. The wheel needs at least one
// segment, so deleting the only remaining mood fails with ErrLastMood.
func (s *Store) DeleteMood(id uuid.UUID) error {
	moods, err := s.LoadMoods()
	if err != nil {
		return err
	}
	i := moodIndex(moods, id)
	if i < 0 {
		return fmt.Errorf("delete mood %s: %w", id, ErrMoodNotFound)
	}
	if len(moods) == 1 {
		return fmt.Errorf("delete mood %s: %w", id, ErrLastMood)
	}
	return s.SaveMoods(slices.Delete(moods, i, i+1))
}

// FindMood looks a catalog mood up by case-sensitive name.
func (s *Store) FindMood(name string) (mood.Mood, error) {
	moods, err := s.LoadMoods()
	if err != nil {
		return mood.Mood{}, err
	}
	for _, m := range moods {
		if m.Name == name {
			return m, nil
		}
	}
	return mood.Mood{}, fmt.Errorf("find mood %q: %w", name, ErrMoodNotFound)
}

func moodIndex(moods []mood.Mood, id uuid.UUID) int {
	return slices.IndexFunc(moods, func(m mood.Mood) bool { return m.ID == id })
}
