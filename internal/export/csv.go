package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/sadopc/moodwheel/internal/mood"
)

var csvHeader = []string{"ID", "Date", "Mood", "Icon", "Value", "Note", "Habits"}

// ToCSV writes entries newest first to path.
func ToCSV(entries []mood.Entry, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, entries); err != nil {
		return err
	}
	return f.Close()
}

func WriteCSV(out io.Writer, entries []mood.Entry) error {
	w := csv.NewWriter(out)

	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, e := range newestFirst(entries) {
		row := []string{
			e.ID.String(),
			e.Date.Local().Format(time.RFC3339),
			e.Mood.Name,
			e.Mood.Icon,
			strconv.FormatFloat(e.Mood.Value, 'f', -1, 64),
			e.Note,
			strings.Join(e.Habits, ";"),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func newestFirst(entries []mood.Entry) []mood.Entry {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b mood.Entry) int {
		return b.Date.Compare(a.Date)
	})
	return sorted
}
