package tui

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/moodwheel/internal/export"
	"github.com/sadopc/moodwheel/internal/logger"
	"github.com/sadopc/moodwheel/internal/reminder"
	"github.com/sadopc/moodwheel/internal/store"
)

var exportFormats = []export.Format{export.FormatCSV, export.FormatJSON}

// App is the root Bubble Tea model.
type App struct {
	store  *store.Store
	width  int
	height int
	now    func() time.Time
	bell   io.Writer

	prefs     store.Preferences
	exportDir string

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int

	spin     spinModel
	history  historyModel
	stats    statsModel
	learn    learnModel
	settings settingsModel

	help        help.Model
	status      string
	statusError bool
}

// NewApp builds the root model. sched may be nil, in which case reminder
// changes are only persisted.
func NewApp(s *store.Store, prefs store.Preferences, sched *reminder.Scheduler) App {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	seed := uint64(time.Now().UnixNano())
	rng := rand.New(rand.NewPCG(seed, seed>>1))
	return newApp(s, prefs, sched, time.Now, rng, os.Stderr, home)
}

func newApp(s *store.Store, prefs store.Preferences, sched *reminder.Scheduler,
	now func() time.Time, rng *rand.Rand, bell io.Writer, exportDir string) App {
	h := help.New()
	h.ShowAll = false

	applyTheme(prefs.Dark())
	spin := newSpinModel(s, now, rng, bell)
	spin.sound = prefs.SoundEnabled

	return App{
		store:      s,
		now:        now,
		bell:       bell,
		prefs:      prefs,
		exportDir:  exportDir,
		activeView: viewSpin,
		spin:       spin,
		history:    newHistoryModel(s, now),
		stats:      newStatsModel(s, now),
		learn:      newLearnModel(),
		settings:   newSettingsModel(s, prefs, sched),
		help:       h,
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.spin.refresh(),
		a.history.refresh(),
		a.stats.refresh(),
		a.settings.refresh(),
	)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.spin.setSize(a.width, contentHeight)
		a.history.setSize(a.width, contentHeight)
		a.stats.setSize(a.width, contentHeight)
		a.learn.setSize(a.width, contentHeight)
		a.settings.setSize(a.width, contentHeight)
		a.stats.buildCharts()
		return a, nil

	case tea.KeyMsg:
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// If a child view is capturing input (e.g. form), delegate first.
		if a.isFormActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Tab1):
			return a.switchView(viewSpin)
		case key.Matches(msg, keys.Tab2):
			return a.switchView(viewHistory)
		case key.Matches(msg, keys.Tab3):
			return a.switchView(viewStats)
		case key.Matches(msg, keys.Tab4):
			return a.switchView(viewLearn)
		case key.Matches(msg, keys.Tab5):
			return a.switchView(viewSettings)
		case key.Matches(msg, keys.Tab):
			return a.switchView((a.activeView + 1) % viewState(len(viewNames)))
		}

	// Animation frames and loaded data go to their owner regardless of
	// which tab is showing.
	case frameMsg, spinDataMsg, saveFailedMsg:
		var cmd tea.Cmd
		a.spin, cmd = a.spin.update(msg)
		return a, cmd

	case historyDataMsg:
		a.history, _ = a.history.update(msg)
		return a, nil

	case statsDataMsg:
		a.stats, _ = a.stats.update(msg)
		return a, nil

	case settingsDataMsg:
		a.settings, _ = a.settings.update(msg)
		return a, nil

	case statusMsg:
		a.status = msg.text
		a.statusError = msg.isError
		if msg.isError {
			logger.Warn("TUI error", "status", msg.text)
		}
		return a, nil

	case entrySavedMsg:
		a.setStatus(fmt.Sprintf("Saved %s %s", msg.entry.Mood.Icon, msg.entry.Mood.Name))
		a.spin, _ = a.spin.update(msg)
		return a, tea.Batch(a.history.refresh(), a.stats.refresh())

	case historyChangedMsg:
		a.setStatus("History updated")
		return a, tea.Batch(a.spin.refresh(), a.history.refresh(), a.stats.refresh())

	case catalogChangedMsg:
		a.setStatus("Mood catalog updated")
		return a, tea.Batch(a.spin.refresh(), a.settings.refresh())

	case prefsChangedMsg:
		a.prefs = msg.prefs
		applyTheme(msg.prefs.Dark())
		a.spin.sound = msg.prefs.SoundEnabled
		a.setStatus("Settings saved")
		return a, a.settings.refresh()

	case ReminderMsg:
		a.setStatus(fmt.Sprintf("🔔 %s: %s", msg.Title, msg.Body))
		if a.prefs.SoundEnabled && a.bell != nil {
			fmt.Fprint(a.bell, "\a")
		}
		return a, nil

	case exportDoneMsg:
		a.setStatus("Exported to " + msg.path)
		a.exportPicking = false
		return a, nil
	}

	return a.updateActiveView(msg)
}

func (a *App) setStatus(text string) {
	a.status = text
	a.statusError = false
}

func (a App) switchView(v viewState) (tea.Model, tea.Cmd) {
	a.activeView = v
	return a, a.refreshCurrentView()
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewSpin:
		a.spin, cmd = a.spin.update(msg)
	case viewHistory:
		a.history, cmd = a.history.update(msg)
	case viewStats:
		a.stats, cmd = a.stats.update(msg)
	case viewLearn:
		a.learn, cmd = a.learn.update(msg)
	case viewSettings:
		a.settings, cmd = a.settings.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	switch a.activeView {
	case viewSpin:
		return a.spin.formActive
	case viewHistory:
		return a.history.formActive
	case viewSettings:
		return a.settings.formActive
	}
	return false
}

func (a App) refreshCurrentView() tea.Cmd {
	switch a.activeView {
	case viewSpin:
		return a.spin.refresh()
	case viewHistory:
		return a.history.refresh()
	case viewStats:
		return a.stats.refresh()
	case viewSettings:
		return a.settings.refresh()
	}
	return nil
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewSpin:
		content = a.spin.view()
	case viewHistory:
		content = a.history.view()
	case viewStats:
		content = a.stats.view()
	case viewLearn:
		content = a.learn.view()
	case viewSettings:
		content = a.settings.view()
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(a.height-headerHeight-footerHeight, 1)

	if a.exportPicking {
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("🎡 moodwheel")
	gap := max(a.width-lipgloss.Width(title)-lipgloss.Width(tabRow)-4, 1)
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		style := mutedStyle
		if a.statusError {
			style = errorStyle
		}
		status = style.Render(" " + a.status)
	}

	spinning := ""
	if a.spin.spinning() {
		spinning = accentStyle.Render(" ◌ spinning")
	}

	left := footerStyle.Render(helpView)
	right := spinning + status

	gap := max(a.width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

func (a App) renderExportPicker() string {
	rows := []string{titleStyle.Render("Export History"), ""}
	for i, f := range exportFormats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+export.FileName(f, a.now())))
	}
	rows = append(rows, "", mutedStyle.Render("  into "+a.exportDir))
	rows = append(rows, mutedStyle.Render("  enter: export  esc: cancel"))

	return activePanelStyle.Width(a.width - 4).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < len(exportFormats)-1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(exportFormats[a.exportCursor])
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(f export.Format) tea.Cmd {
	return func() tea.Msg {
		entries, err := a.store.LoadHistory()
		if err != nil {
			return errStatus("Export error", err)
		}
		path := filepath.Join(a.exportDir, export.FileName(f, a.now()))
		if err := export.ToFile(f, entries, path); err != nil {
			return errStatus(fmt.Sprintf("%s export error", f), err)
		}
		logger.Info("Exported history", "format", f, "path", path, "entries", len(entries))
		return exportDoneMsg{path: path}
	}
}
