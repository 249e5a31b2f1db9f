package tui

import (
	"math"
	"strings"

	"github.com/sadopc/moodwheel/internal/mood"
)

// Terminal cells are roughly twice as tall as they are wide, so the wheel
// is drawn with a horizontal radius of 2*radius.
const cellAspect = 2.0

// segmentAt returns the wheel segment painted at a screen angle (degrees
// clockwise from the top) for a given rotation.
func segmentAt(screenAngle, rotation float64, n int) int {
	seg := 360.0 / float64(n)
	a := math.Mod(screenAngle-rotation, 360)
	if a < 0 {
		a += 360
	}
	return int(a/seg) % n
}

// wheelCells lays the wheel out on a grid of (2*radius+1) rows. Cells
// outside the disc hold -1.
func wheelCells(n int, rotation float64, radius int) [][]int {
	rows := 2*radius + 1
	cols := int(2*cellAspect*float64(radius)) + 1
	cx := float64(cols-1) / 2
	cy := float64(radius)
	r := float64(radius) + 0.5

	grid := make([][]int, rows)
	for y := range rows {
		grid[y] = make([]int, cols)
		for x := range cols {
			dx := (float64(x) - cx) / cellAspect
			dy := float64(y) - cy
			if dx*dx+dy*dy > r*r {
				grid[y][x] = -1
				continue
			}
			angle := math.Atan2(dx, -dy) * 180 / math.Pi
			if angle < 0 {
				angle += 360
			}
			grid[y][x] = segmentAt(angle, rotation, n)
		}
	}
	return grid
}

// renderWheel draws the moods as colored wedges under a fixed pointer.
// selected is highlighted with solid blocks; -1 highlights nothing.
func renderWheel(moods []mood.Mood, rotation float64, radius, selected int) string {
	if len(moods) == 0 || radius < 1 {
		return ""
	}
	grid := wheelCells(len(moods), rotation, radius)
	cols := len(grid[0])

	var b strings.Builder
	pointer := strings.Repeat(" ", cols/2) + accentStyle.Render("▼")
	b.WriteString(pointer)
	b.WriteByte('\n')

	for y, row := range grid {
		// Render runs of the same segment with one style call.
		for x := 0; x < len(row); {
			seg := row[x]
			end := x
			for end < len(row) && row[end] == seg {
				end++
			}
			run := end - x
			switch {
			case seg < 0:
				b.WriteString(strings.Repeat(" ", run))
			default:
				glyph := "█"
				if selected >= 0 && seg != selected {
					glyph = "▒"
				}
				b.WriteString(moodStyle(moods[seg].Color).Render(strings.Repeat(glyph, run)))
			}
			x = end
		}
		if y < len(grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// wheelLegend lists the segments in wheel order with their colors.
func wheelLegend(moods []mood.Mood, selected int) string {
	items := make([]string, 0, len(moods))
	for i, m := range moods {
		dot := moodStyle(m.Color).Render("●")
		name := m.Icon + " " + m.Name
		if i == selected {
			name = selectedItemStyle.Render(name)
		} else {
			name = normalItemStyle.Render(name)
		}
		items = append(items, dot+" "+name)
	}
	return strings.Join(items, "  ")
}
