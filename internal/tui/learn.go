package tui

import (
	"fmt"
	"maps"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/moodwheel/internal/mood"
)

type learnModel struct {
	width  int
	height int

	facts   []mood.Fact
	cursor  int
	flipped map[int]bool
}

func newLearnModel() learnModel {
	return learnModel{
		facts:   mood.Facts(),
		flipped: make(map[int]bool),
	}
}

func (l *learnModel) setSize(w, h int) {
	l.width = w
	l.height = h
}

func (l learnModel) update(msg tea.Msg) (learnModel, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || len(l.facts) == 0 {
		return l, nil
	}
	switch {
	case key.Matches(km, keys.Left), key.Matches(km, keys.Up):
		l.cursor = (l.cursor - 1 + len(l.facts)) % len(l.facts)
	case key.Matches(km, keys.Right), key.Matches(km, keys.Down):
		l.cursor = (l.cursor + 1) % len(l.facts)
	case key.Matches(km, keys.Spin), key.Matches(km, keys.Enter):
		// Copied so earlier model values keep their own flip state.
		l.flipped = maps.Clone(l.flipped)
		l.flipped[l.cursor] = !l.flipped[l.cursor]
	}
	return l, nil
}

func (l learnModel) view() string {
	w := l.width - 4
	if len(l.facts) == 0 {
		return panelStyle.Width(w).Render(mutedStyle.Render("Nothing to learn yet"))
	}

	f := l.facts[l.cursor]
	cardWidth := min(max(w-10, 30), 60)

	var card string
	if l.flipped[l.cursor] {
		card = flippedCardStyle.Width(cardWidth).Render(
			lipgloss.JoinVertical(lipgloss.Left,
				titleStyle.Render(f.Icon+"  "+f.Title), "", f.Content,
			),
		)
	} else {
		card = cardStyle.Width(cardWidth).Render(
			lipgloss.JoinVertical(lipgloss.Center,
				bigStyle.Render(f.Icon), "", titleStyle.Render(f.Title), "", mutedStyle.Render("space: flip"),
			),
		)
	}

	flippedCount := 0
	for _, v := range l.flipped {
		if v {
			flippedCount++
		}
	}
	position := mutedStyle.Render(fmt.Sprintf("Card %d of %d  ·  %d read", l.cursor+1, len(l.facts), flippedCount))

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Learn About Moods"), "", card, "", position,
			mutedStyle.Render("←/→: browse  space: flip"),
		),
	)
}
