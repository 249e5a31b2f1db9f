package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sadopc/moodwheel/internal/mood"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want csv or json)", s)
	}
}

// FileName is the default export file name for the given day.
func FileName(f Format, now time.Time) string {
	return fmt.Sprintf("moodwheel-%s.%s", now.Format("2006-01-02"), f)
}

// Write encodes entries in format f.
func Write(w io.Writer, f Format, entries []mood.Entry) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, entries)
	case FormatJSON:
		return WriteJSON(w, entries)
	default:
		return fmt.Errorf("unknown export format %q", f)
	}
}

// ToFile writes entries in format f to path.
func ToFile(f Format, entries []mood.Entry, path string) error {
	switch f {
	case FormatCSV:
		return ToCSV(entries, path)
	case FormatJSON:
		return ToJSON(entries, path)
	default:
		return fmt.Errorf("unknown export format %q", f)
	}
}
