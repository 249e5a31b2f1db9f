package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/sadopc/moodwheel/internal/logger"
	"github.com/sadopc/moodwheel/internal/mood"
	"github.com/sadopc/moodwheel/internal/reminder"
	"github.com/sadopc/moodwheel/internal/store"
)

const (
	formPrefs    = "prefs"
	formMoodAdd  = "mood_add"
	formMoodEdit = "mood_edit"
	formReset    = "reset"
)

type settingsModel struct {
	store  *store.Store
	sched  *reminder.Scheduler
	width  int
	height int

	prefs  store.Preferences
	moods  []mood.Mood
	cursor int

	formActive bool
	form       *huh.Form
	formType   string
	editingID  uuid.UUID

	// Form values as pointers (survive value copies)
	theme        *string
	sound        *bool
	reminderOn   *bool
	reminderTime *string
	moodName     *string
	moodIcon     *string
	moodColor    *string
	moodValue    *string
	moodAdvice   *string
	confirm      *bool
}

func newSettingsModel(s *store.Store, prefs store.Preferences, sched *reminder.Scheduler) settingsModel {
	theme, clock := "", ""
	sound, on, confirm := false, false, false
	name, icon, color, value, advice := "", "", "", "", ""
	return settingsModel{
		store:        s,
		sched:        sched,
		prefs:        prefs,
		theme:        &theme,
		sound:        &sound,
		reminderOn:   &on,
		reminderTime: &clock,
		moodName:     &name,
		moodIcon:     &icon,
		moodColor:    &color,
		moodValue:    &value,
		moodAdvice:   &advice,
		confirm:      &confirm,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

type settingsDataMsg struct {
	prefs store.Preferences
	moods []mood.Mood
}

func (s settingsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		prefs, err := s.store.LoadPreferences()
		if err != nil {
			return errStatus("Load settings", err)
		}
		moods, err := s.store.LoadMoods()
		if err != nil {
			return errStatus("Load moods", err)
		}
		return settingsDataMsg{prefs: prefs, moods: moods}
	}
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case settingsDataMsg:
		s.prefs = msg.prefs
		s.moods = msg.moods
		if s.cursor >= len(s.moods) {
			s.cursor = max(0, len(s.moods)-1)
		}
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if s.cursor > 0 {
				s.cursor--
			}
		case key.Matches(msg, keys.Down):
			if s.cursor < len(s.moods)-1 {
				s.cursor++
			}
		case key.Matches(msg, keys.Enter):
			return s.showPrefsForm()
		case key.Matches(msg, keys.New):
			return s.showMoodForm(nil)
		case key.Matches(msg, keys.Edit):
			if len(s.moods) > 0 {
				m := s.moods[s.cursor]
				return s.showMoodForm(&m)
			}
		case key.Matches(msg, keys.Delete):
			if len(s.moods) > 0 {
				return s, s.deleteMood(s.moods[s.cursor].ID)
			}
		case key.Matches(msg, keys.Reset):
			return s.showResetForm()
		}
	}
	return s, nil
}

func (s settingsModel) showPrefsForm() (settingsModel, tea.Cmd) {
	*s.theme = s.prefs.Theme
	*s.sound = s.prefs.SoundEnabled
	*s.reminderOn = s.prefs.ReminderEnabled
	*s.reminderTime = store.FormatClock(s.prefs.ReminderHour, s.prefs.ReminderMinute)
	s.formType = formPrefs

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Theme").
				Options(
					huh.NewOption("Bright", store.ThemeBright),
					huh.NewOption("Dark", store.ThemeDark),
				).Value(s.theme),
			huh.NewConfirm().Title("Sound").Affirmative("On").Negative("Off").Value(s.sound),
		),
		huh.NewGroup(
			huh.NewConfirm().Title("Daily reminder").Affirmative("On").Negative("Off").Value(s.reminderOn),
			huh.NewInput().Title("Reminder time (HH:MM)").Value(s.reminderTime).Validate(validateClock),
		),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func validateClock(v string) error {
	_, _, err := store.ParseClock(strings.TrimSpace(v))
	return err
}

func (s settingsModel) showMoodForm(m *mood.Mood) (settingsModel, tea.Cmd) {
	*s.moodName, *s.moodIcon, *s.moodColor, *s.moodValue, *s.moodAdvice = "", "🙂", "#7B2FF7", "0.5", ""
	s.formType = formMoodAdd
	if m != nil {
		*s.moodName, *s.moodIcon, *s.moodColor = m.Name, m.Icon, m.Color
		*s.moodValue = strconv.FormatFloat(m.Value, 'f', -1, 64)
		*s.moodAdvice = m.Advice
		s.editingID = m.ID
		s.formType = formMoodEdit
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(s.moodName).Validate(func(v string) error {
				if strings.TrimSpace(v) == "" {
					return errors.New("name is required")
				}
				return nil
			}),
			huh.NewInput().Title("Icon").Value(s.moodIcon),
			huh.NewInput().Title("Color (#RRGGBB)").Value(s.moodColor).Validate(func(v string) error {
				if !mood.ValidHex(strings.TrimSpace(v)) {
					return errors.New("not a hex color")
				}
				return nil
			}),
			huh.NewInput().Title("Value (0-1)").Value(s.moodValue).Validate(func(v string) error {
				_, err := parseMoodValue(v)
				return err
			}),
			huh.NewText().Title("Advice").Value(s.moodAdvice),
		),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func parseMoodValue(v string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, errors.New("not a number")
	}
	if f < 0 || f > 1 {
		return 0, errors.New("must be between 0 and 1")
	}
	return f, nil
}

func (s settingsModel) showResetForm() (settingsModel, tea.Cmd) {
	*s.confirm = false
	s.formType = formReset
	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Reset mood history?").
				Description("Every logged mood is deleted. This cannot be undone.").
				Affirmative("Reset").
				Negative("Cancel").
				Value(s.confirm),
		),
	).WithShowHelp(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		s.form = nil
		switch s.formType {
		case formPrefs:
			return s, s.savePrefs()
		case formMoodAdd, formMoodEdit:
			return s, s.saveMood()
		case formReset:
			if *s.confirm {
				return s, s.resetHistory()
			}
		}
		return s, nil
	}
	return s, cmd
}

func (s settingsModel) savePrefs() tea.Cmd {
	p := store.Preferences{
		Theme:           *s.theme,
		SoundEnabled:    *s.sound,
		ReminderEnabled: *s.reminderOn,
	}
	h, m, err := store.ParseClock(strings.TrimSpace(*s.reminderTime))
	if err != nil {
		return func() tea.Msg { return errStatus("Reminder time", err) }
	}
	p.ReminderHour, p.ReminderMinute = h, m
	sched := s.sched

	return func() tea.Msg {
		if err := s.store.SavePreferences(p); err != nil {
			return errStatus("Save settings", err)
		}
		if sched != nil {
			if err := sched.ApplyPreferences(p); err != nil {
				logger.Warn("Could not reschedule reminder", "error", err)
				return errStatus("Reminder", err)
			}
		}
		return prefsChangedMsg{prefs: p}
	}
}

func (s settingsModel) saveMood() tea.Cmd {
	value, err := parseMoodValue(*s.moodValue)
	if err != nil {
		return func() tea.Msg { return errStatus("Mood value", err) }
	}
	m := mood.NewMood(strings.TrimSpace(*s.moodName), strings.TrimSpace(*s.moodIcon),
		strings.TrimSpace(*s.moodColor), strings.TrimSpace(*s.moodAdvice), value)
	editing := s.formType == formMoodEdit
	if editing {
		m.ID = s.editingID
	}

	return func() tea.Msg {
		var err error
		if editing {
			err = s.store.UpdateMood(m)
		} else {
			err = s.store.AddMood(m)
		}
		if err != nil {
			return errStatus("Save mood", err)
		}
		return catalogChangedMsg{}
	}
}

func (s settingsModel) deleteMood(id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		if err := s.store.DeleteMood(id); err != nil {
			return errStatus("Delete mood", err)
		}
		return catalogChangedMsg{}
	}
}

func (s settingsModel) resetHistory() tea.Cmd {
	return func() tea.Msg {
		if err := s.store.ResetHistory(); err != nil {
			return errStatus("Reset history", err)
		}
		logger.Info("Mood history reset")
		return historyChangedMsg{}
	}
}

func (s settingsModel) view() string {
	w := s.width - 4

	if s.formActive && s.form != nil {
		title := "Settings"
		switch s.formType {
		case formMoodAdd:
			title = "New Mood"
		case formMoodEdit:
			title = "Edit Mood"
		case formReset:
			title = "Reset History"
		}
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), "", s.form.View()),
		)
	}

	onOff := func(b bool) string {
		if b {
			return successStyle.Render("on")
		}
		return mutedStyle.Render("off")
	}
	label := lipgloss.NewStyle().Width(18)

	rows := []string{
		titleStyle.Render("Settings"),
		"",
		"  " + label.Render("Theme") + highlightStyle.Render(s.prefs.Theme),
		"  " + label.Render("Sound") + onOff(s.prefs.SoundEnabled),
		"  " + label.Render("Daily reminder") + onOff(s.prefs.ReminderEnabled) + " " +
			highlightStyle.Render(store.FormatClock(s.prefs.ReminderHour, s.prefs.ReminderMinute)),
	}
	if s.sched != nil {
		if next, ok := s.sched.Next(reminder.DailyID); ok {
			rows = append(rows, "  "+label.Render("Next reminder")+mutedStyle.Render(next.Format("Mon Jan 02 15:04")))
		}
	}

	rows = append(rows, "", subtitleStyle.Render(fmt.Sprintf("Mood catalog (%d)", len(s.moods))))
	for i, m := range s.moods {
		cursor := "  "
		style := normalItemStyle
		if i == s.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		dot := moodStyle(m.Color).Render("●")
		rows = append(rows, cursor+dot+" "+style.Render(fmt.Sprintf("%s %-12s %s", m.Icon, m.Name, formatValue(m.Value))))
	}

	rows = append(rows, "", mutedStyle.Render("  enter: preferences  a: add  e: edit  d: delete  R: reset history"))
	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
