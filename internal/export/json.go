package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sadopc/moodwheel/internal/mood"
)

type jsonExport struct {
	ExportedAt string      `json:"exported_at"`
	Count      int         `json:"count"`
	Entries    []jsonEntry `json:"entries"`
}

type jsonEntry struct {
	ID     string   `json:"id"`
	Date   string   `json:"date"`
	Mood   string   `json:"mood"`
	Icon   string   `json:"icon"`
	Color  string   `json:"color"`
	Value  float64  `json:"value"`
	Note   string   `json:"note,omitempty"`
	Habits []string `json:"habits"`
}

// ToJSON writes entries newest first to path.
func ToJSON(entries []mood.Entry, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create json file: %w", err)
	}
	defer f.Close()

	if err := WriteJSON(f, entries); err != nil {
		return err
	}
	return f.Close()
}

func WriteJSON(w io.Writer, entries []mood.Entry) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(entries),
		Entries:    make([]jsonEntry, 0, len(entries)),
	}

	for _, e := range newestFirst(entries) {
		habits := e.Habits
		if habits == nil {
			habits = []string{}
		}
		export.Entries = append(export.Entries, jsonEntry{
			ID:     e.ID.String(),
			Date:   e.Date.Local().Format(time.RFC3339),
			Mood:   e.Mood.Name,
			Icon:   e.Mood.Icon,
			Color:  e.Mood.Color,
			Value:  e.Mood.Value,
			Note:   e.Note,
			Habits: habits,
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}
