package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/moodwheel/internal/mood"
	"github.com/sadopc/moodwheel/internal/reminder"
	"github.com/sadopc/moodwheel/internal/store"
)

// viewState represents the currently active view.
type viewState int

const (
	viewSpin viewState = iota
	viewHistory
	viewStats
	viewLearn
	viewSettings
)

var viewNames = []string{"Spin", "History", "Stats", "Learn", "Settings"}

// --- Messages ---

// ReminderMsg carries a fired reminder into the running program.
type ReminderMsg reminder.Notification

type statusMsg struct {
	text    string
	isError bool
}

type frameMsg time.Time

type entrySavedMsg struct {
	entry mood.Entry
}

// historyChangedMsg tells every view holding a history snapshot to reload.
type historyChangedMsg struct{}

type catalogChangedMsg struct{}

type prefsChangedMsg struct {
	prefs store.Preferences
}

type exportDoneMsg struct {
	path string
}

func errStatus(prefix string, err error) tea.Msg {
	return statusMsg{text: fmt.Sprintf("%s: %v", prefix, err), isError: true}
}

// --- Helpers ---

func formatValue(v float64) string {
	return fmt.Sprintf("%.0f%%", v*100)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

func progressBar(frac float64, width int) string {
	if width < 1 {
		return ""
	}
	frac = min(max(frac, 0), 1)
	filled := int(frac*float64(width) + 0.5)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
