package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/sadopc/moodwheel/internal/analytics"
	"github.com/sadopc/moodwheel/internal/mood"
	"github.com/sadopc/moodwheel/internal/store"
)

type historyModel struct {
	store  *store.Store
	width  int
	height int
	now    func() time.Time

	entries  []mood.Entry // newest first
	cursor   int
	calendar bool
	day      time.Time // selected calendar day; its month is shown

	formActive bool
	form       *huh.Form
	formNote   *string
	editingID  uuid.UUID
}

func newHistoryModel(s *store.Store, now func() time.Time) historyModel {
	note := ""
	return historyModel{
		store:    s,
		now:      now,
		day:      dayStart(now()),
		formNote: &note,
	}
}

func (h *historyModel) setSize(w, ht int) {
	h.width = w
	h.height = ht
}

type historyDataMsg struct {
	entries []mood.Entry
}

func (h historyModel) refresh() tea.Cmd {
	return func() tea.Msg {
		entries, err := h.store.ListEntries(store.EntryFilter{})
		if err != nil {
			return errStatus("Load history", err)
		}
		return historyDataMsg{entries: entries}
	}
}

func (h historyModel) update(msg tea.Msg) (historyModel, tea.Cmd) {
	if h.formActive && h.form != nil {
		return h.updateForm(msg)
	}

	switch msg := msg.(type) {
	case historyDataMsg:
		h.entries = msg.entries
		if h.cursor >= len(h.entries) {
			h.cursor = max(0, len(h.entries)-1)
		}
		return h, nil

	case tea.KeyMsg:
		if h.calendar {
			return h.updateCalendar(msg)
		}
		return h.updateList(msg)
	}
	return h, nil
}

func (h historyModel) updateList(msg tea.KeyMsg) (historyModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if h.cursor > 0 {
			h.cursor--
		}
	case key.Matches(msg, keys.Down):
		if h.cursor < len(h.entries)-1 {
			h.cursor++
		}
	case key.Matches(msg, keys.Edit):
		if len(h.entries) > 0 {
			return h.showNoteForm()
		}
	case key.Matches(msg, keys.Delete):
		if len(h.entries) > 0 {
			return h, h.deleteEntry(h.entries[h.cursor].ID)
		}
	case key.Matches(msg, keys.Calendar):
		h.calendar = true
		h.day = dayStart(h.now())
	}
	return h, nil
}

func (h historyModel) updateCalendar(msg tea.KeyMsg) (historyModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Left):
		h.day = h.day.AddDate(0, 0, -1)
	case key.Matches(msg, keys.Right):
		h.day = h.day.AddDate(0, 0, 1)
	case key.Matches(msg, keys.Up):
		h.day = h.day.AddDate(0, 0, -7)
	case key.Matches(msg, keys.Down):
		h.day = h.day.AddDate(0, 0, 7)
	case key.Matches(msg, keys.Calendar), key.Matches(msg, keys.Back):
		h.calendar = false
	}
	return h, nil
}

func (h historyModel) deleteEntry(id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		if err := h.store.DeleteEntry(id); err != nil {
			return errStatus("Delete entry", err)
		}
		return historyChangedMsg{}
	}
}

func (h historyModel) showNoteForm() (historyModel, tea.Cmd) {
	e := h.entries[h.cursor]
	*h.formNote = e.Note
	h.editingID = e.ID

	h.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().Title("Note").Value(h.formNote),
		),
	).WithShowHelp(true).WithShowErrors(true)

	h.formActive = true
	return h, h.form.Init()
}

func (h historyModel) updateForm(msg tea.Msg) (historyModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			h.formActive = false
			h.form = nil
			return h, nil
		}
	}

	form, cmd := h.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		h.form = f
	}

	if h.form.State == huh.StateCompleted {
		h.formActive = false
		h.form = nil
		id, note := h.editingID, strings.TrimSpace(*h.formNote)
		return h, func() tea.Msg {
			if err := h.store.UpdateEntryNote(id, note); err != nil {
				return errStatus("Update note", err)
			}
			return historyChangedMsg{}
		}
	}
	return h, cmd
}

func (h historyModel) view() string {
	w := h.width - 4

	if h.formActive && h.form != nil {
		title := titleStyle.Render("Edit Note")
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", h.form.View()),
		)
	}
	if h.calendar {
		return panelStyle.Width(w).Render(h.renderCalendar())
	}
	return panelStyle.Width(w).Render(h.renderList(w))
}

func (h historyModel) renderList(w int) string {
	title := titleStyle.Render(fmt.Sprintf("History (%d)", len(h.entries)))
	if len(h.entries) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			title, "", mutedStyle.Render("  No moods logged yet. Spin the wheel!"),
		)
	}

	visible := max(h.height-8, 3)
	start := 0
	if h.cursor >= visible {
		start = h.cursor - visible + 1
	}
	end := min(start+visible, len(h.entries))

	rows := []string{title, ""}
	for i := start; i < end; i++ {
		e := h.entries[i]
		cursor := "  "
		style := normalItemStyle
		if i == h.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		dot := moodStyle(e.Mood.Color).Render("●")
		line := fmt.Sprintf("%s %s %-10s", e.Date.Local().Format("Mon Jan 02 15:04"), e.Mood.Icon, e.Mood.Name)
		extra := ""
		if e.HasNote() {
			extra = mutedStyle.Render(" " + truncate(e.Note, max(w-50, 10)))
		}
		if len(e.Habits) > 0 {
			extra += highlightStyle.Render(" [" + strings.Join(e.Habits, ", ") + "]")
		}
		rows = append(rows, cursor+dot+" "+style.Render(line)+extra)
	}
	rows = append(rows, "", mutedStyle.Render("  e: edit note  d: delete  c: calendar  x: export"))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func dayStart(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

func monthStart(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.Local)
}

// calendarWeeks returns the month's days in Monday-first rows. Padding
// cells before the first and after the last day are zero times.
func calendarWeeks(month time.Time) [][]time.Time {
	first := monthStart(month)
	offset := (int(first.Weekday()) + 6) % 7
	var weeks [][]time.Time
	week := make([]time.Time, 7)
	col := offset
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		week[col] = d
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = make([]time.Time, 7)
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}

func (h historyModel) renderCalendar() string {
	today := h.now()
	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render(h.day.Format("January 2006")),
		"  ",
		mutedStyle.Render("arrows: move day  c: list"),
	)

	rows := []string{header, "", mutedStyle.Render(" Mo  Tu  We  Th  Fr  Sa  Su")}
	logged := 0
	for _, week := range calendarWeeks(h.day) {
		var cells []string
		for _, d := range week {
			if d.IsZero() {
				cells = append(cells, "    ")
				continue
			}
			label := fmt.Sprintf(" %2d ", d.Day())
			if sameDate(d, h.day) {
				label = fmt.Sprintf("[%2d]", d.Day())
			}
			day := analytics.DailyMoods(h.entries, d)
			switch {
			case len(day) > 0:
				logged++
				label = lipgloss.NewStyle().
					Background(lipgloss.Color(day[0].Mood.Color)).
					Foreground(lipgloss.Color("#000000")).
					Render(label)
			case sameDate(d, today):
				label = selectedItemStyle.Render(label)
			default:
				label = mutedStyle.Render(label)
			}
			cells = append(cells, label)
		}
		rows = append(rows, strings.Join(cells, ""))
	}
	rows = append(rows, "", subtitleStyle.Render(fmt.Sprintf("%d days with a mood this month", logged)))
	rows = append(rows, "", h.renderDay())
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderDay lists the selected day's moods in the order they were logged.
func (h historyModel) renderDay() string {
	rows := []string{titleStyle.Render(h.day.Format("Monday, January 2"))}
	day := analytics.DailyMoods(h.entries, h.day)
	if len(day) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, append(rows, mutedStyle.Render("  No moods logged"))...)
	}
	for _, e := range day {
		line := fmt.Sprintf("  %s %s %s", e.Date.Local().Format("15:04"), e.Mood.Icon, moodStyle(e.Mood.Color).Render(e.Mood.Name))
		if e.HasNote() {
			line += mutedStyle.Render("  " + e.Note)
		}
		rows = append(rows, line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
