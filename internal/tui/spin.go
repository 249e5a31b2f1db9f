package tui

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/moodwheel/internal/analytics"
	"github.com/sadopc/moodwheel/internal/logger"
	"github.com/sadopc/moodwheel/internal/mood"
	"github.com/sadopc/moodwheel/internal/store"
)

type spinModel struct {
	store  *store.Store
	width  int
	height int
	now    func() time.Time
	rng    *rand.Rand

	moods  []mood.Mood
	timer  spinTimer
	result *mood.Mood
	saved  bool
	saving bool // an AddEntry command is in flight
	today  []mood.Entry

	sound bool
	bell  io.Writer

	formActive bool
	form       *huh.Form

	// Form field pointers (survive value copies)
	formNote   *string
	formHabits *[]string
}

func newSpinModel(s *store.Store, now func() time.Time, rng *rand.Rand, bell io.Writer) spinModel {
	note := ""
	habits := []string{}
	return spinModel{
		store:      s,
		now:        now,
		rng:        rng,
		timer:      newSpinTimer(),
		moods:      mood.DefaultMoods(),
		bell:       bell,
		formNote:   &note,
		formHabits: &habits,
	}
}

func (m *spinModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

type spinDataMsg struct {
	moods []mood.Mood
	today []mood.Entry
}

func (m spinModel) refresh() tea.Cmd {
	return func() tea.Msg {
		moods, err := m.store.LoadMoods()
		if err != nil {
			return errStatus("Load moods", err)
		}
		history, err := m.store.LoadHistory()
		if err != nil {
			return errStatus("Load history", err)
		}
		return spinDataMsg{moods: moods, today: analytics.DailyMoods(history, m.now())}
	}
}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m spinModel) spinning() bool { return m.timer.spinning() }

func (m spinModel) update(msg tea.Msg) (spinModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case spinDataMsg:
		m.today = msg.today
		// The catalog cannot change under a turning wheel.
		if !m.timer.spinning() {
			m.moods = mood.NewWheel(msg.moods).Moods
		}
		return m, nil

	case frameMsg:
		if !m.timer.spinning() {
			return m, nil
		}
		if m.timer.tick(time.Time(msg)) {
			m.settle()
			return m, nil
		}
		return m, frameCmd()

	case entrySavedMsg:
		m.saved = true
		m.saving = false
		m.today = append(m.today, msg.entry)
		return m, nil

	case saveFailedMsg:
		m.saving = false
		return m, func() tea.Msg { return errStatus("Save mood", msg.err) }

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Spin):
			return m.startSpin()
		case key.Matches(msg, keys.Save):
			if m.canSave() {
				m.saving = true
				return m, m.save("", nil)
			}
		case key.Matches(msg, keys.Note):
			if m.canSave() {
				return m.showNoteForm()
			}
		}
	}
	return m, nil
}

func (m spinModel) startSpin() (spinModel, tea.Cmd) {
	if m.timer.spinning() || m.saving {
		return m, nil
	}
	m.result = nil
	m.saved = false
	m.saving = false
	m.timer.start(mood.Spin(m.rng), m.now())
	logger.Debug("Wheel spinning", "target", m.timer.target)
	return m, frameCmd()
}

func (m *spinModel) settle() {
	picked := mood.NewWheel(m.moods).Select(m.timer.rotation)
	m.result = &picked
	if m.sound && m.bell != nil {
		fmt.Fprint(m.bell, "\a")
	}
}

func (m spinModel) canSave() bool {
	return m.result != nil && !m.saved && !m.saving
}

type saveFailedMsg struct {
	err error
}

func (m spinModel) save(note string, habits []string) tea.Cmd {
	picked := *m.result
	at := m.now()
	return func() tea.Msg {
		e := mood.NewEntry(picked, at, note, habits)
		if err := m.store.AddEntry(e); err != nil {
			return saveFailedMsg{err: err}
		}
		return entrySavedMsg{entry: e}
	}
}

func (m spinModel) showNoteForm() (spinModel, tea.Cmd) {
	*m.formNote = ""
	*m.formHabits = []string{}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().Title("Note").Placeholder("How was your day?").Value(m.formNote),
			huh.NewMultiSelect[string]().
				Title("Habits").
				Options(huh.NewOptions(mood.DefaultHabits...)...).
				Value(m.formHabits),
		),
	).WithShowHelp(true).WithShowErrors(true)

	m.formActive = true
	return m, m.form.Init()
}

func (m spinModel) updateForm(msg tea.Msg) (spinModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			m.formActive = false
			m.form = nil
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.formActive = false
		m.form = nil
		if !m.canSave() {
			return m, nil
		}
		m.saving = true
		return m, m.save(*m.formNote, *m.formHabits)
	}
	return m, cmd
}

func (m spinModel) selectedIndex() int {
	if m.result == nil {
		return -1
	}
	return mood.SelectIndex(m.timer.rotation, len(m.moods))
}

func (m spinModel) view() string {
	w := m.width - 4

	if m.formActive && m.form != nil {
		title := titleStyle.Render("Save " + m.result.Icon + " " + m.result.Name)
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", m.form.View()),
		)
	}

	radius := 6
	if m.height > 30 {
		radius = 8
	}
	wheel := lipgloss.JoinVertical(lipgloss.Center,
		renderWheel(m.moods, m.timer.rotation, radius, m.selectedIndex()),
		"",
		wheelLegend(m.moods, m.selectedIndex()),
	)

	result := m.renderResult()
	body := lipgloss.JoinHorizontal(lipgloss.Top, wheel, "    ", result)

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Spin Your Mood"), "", body, "", m.renderToday(),
		),
	)
}

func (m spinModel) renderResult() string {
	switch {
	case m.timer.spinning():
		return mutedStyle.Render("Spinning...")
	case m.result == nil:
		return mutedStyle.Render("Press space to spin the wheel")
	}

	r := m.result
	rows := []string{
		bigStyle.Render(r.Icon + "  " + r.Name),
		moodStyle(r.Color).Render(progressBar(r.Value, 20)) + " " + mutedStyle.Render(formatValue(r.Value)),
		"",
		lipgloss.NewStyle().Width(40).Render(r.Advice),
		"",
	}
	if m.saving {
		rows = append(rows, mutedStyle.Render("Saving..."))
	} else if m.saved {
		rows = append(rows, successStyle.Render("✓ Saved"))
		rows = append(rows, mutedStyle.Render("space: spin again"))
	} else {
		rows = append(rows, mutedStyle.Render("enter: save  n: add note  space: spin again"))
	}
	return activePanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m spinModel) renderToday() string {
	if len(m.today) == 0 {
		return mutedStyle.Render("No moods logged today")
	}
	icons := ""
	for _, e := range m.today {
		icons += e.Mood.Icon + " "
	}
	return subtitleStyle.Render("Today: ") + icons
}
