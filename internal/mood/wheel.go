package mood

import (
	"math"
	"math/rand/v2"
)

// Wheel picks a mood by simulated rotation.
type Wheel struct {
	Moods []Mood
}

// NewWheel falls back to the default catalog when moods is empty.
func NewWheel(moods []Mood) Wheel {
	if len(moods) == 0 {
		moods = DefaultMoods()
	}
	return Wheel{Moods: moods}
}

// Spin returns a final rotation in degrees: 5-10 full turns plus a random
// segment offset.
func Spin(rng *rand.Rand) float64 {
	turns := 5 + rng.Float64()*5
	return turns*360 + rng.Float64()*360
}

// SelectIndex maps a rotation to the segment under the pointer at the top of
// the wheel. Segments are laid out clockwise from 0 degrees.
func SelectIndex(rotation float64, n int) int {
	if n <= 0 {
		return -1
	}
	segment := 360.0 / float64(n)
	normalized := math.Mod(rotation, 360)
	if normalized < 0 {
		normalized += 360
	}
	return int((360-normalized)/segment) % n
}

// Select returns the mood for a rotation.
func (w Wheel) Select(rotation float64) Mood {
	return w.Moods[SelectIndex(rotation, len(w.Moods))]
}
