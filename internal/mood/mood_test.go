package mood

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntrySnapshotsMood(t *testing.T) {
	m := DefaultMoods()[0]
	e := NewEntry(m, time.Now(), "  good day  ", []string{"Reading"})

	m.Name = "Renamed"
	m.Value = 0.1

	assert.Equal(t, "Happy", e.Mood.Name)
	assert.Equal(t, 0.9, e.Mood.Value)
	assert.Equal(t, "good day", e.Note)
	assert.NotEqual(t, e.ID, NewEntry(m, time.Now(), "", nil).ID)
}

func TestNewEntryNormalizesHabits(t *testing.T) {
	habits := []string{" Reading", "Exercise", "", "Reading", "Exercise "}
	e := NewEntry(DefaultMoods()[1], time.Now(), "", habits)

	assert.Equal(t, []string{"Reading", "Exercise"}, e.Habits)

	habits[1] = "changed"
	assert.Equal(t, "Exercise", e.Habits[1])
}

func TestNewEntryNilHabits(t *testing.T) {
	e := NewEntry(DefaultMoods()[1], time.Now(), "", nil)
	assert.NotNil(t, e.Habits)
	assert.Empty(t, e.Habits)
	assert.False(t, e.HasNote())
}

func TestEntryClone(t *testing.T) {
	e := NewEntry(DefaultMoods()[0], time.Now(), "n", []string{"A", "B"})
	c := e.Clone()
	c.Habits[0] = "Z"
	assert.Equal(t, "A", e.Habits[0])
	assert.Equal(t, e.ID, c.ID)
}

func TestMoodValidate(t *testing.T) {
	tests := []struct {
		name string
		mood Mood
		ok   bool
	}{
		{"default", DefaultMoods()[0], true},
		{"short hex", Mood{Name: "X", Color: "#fff", Value: 0.5}, true},
		{"bounds low", Mood{Name: "X", Color: "#000000", Value: 0}, true},
		{"bounds high", Mood{Name: "X", Color: "#000000", Value: 1}, true},
		{"empty name", Mood{Name: " ", Color: "#000000", Value: 0.5}, false},
		{"value above", Mood{Name: "X", Color: "#000000", Value: 1.1}, false},
		{"value below", Mood{Name: "X", Color: "#000000", Value: -0.1}, false},
		{"no hash", Mood{Name: "X", Color: "FFFFFF", Value: 0.5}, false},
		{"bad digit", Mood{Name: "X", Color: "#GGGGGG", Value: 0.5}, false},
		{"bad length", Mood{Name: "X", Color: "#FFFF", Value: 0.5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mood.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidMood)
			}
		})
	}
}

func TestParseHabits(t *testing.T) {
	assert.Nil(t, ParseHabits("  "))
	assert.Equal(t, []string{"Reading", "Walk"}, ParseHabits("Reading, Walk,,Reading"))
}

func TestDefaultMoodsStableIDs(t *testing.T) {
	a, b := DefaultMoods(), DefaultMoods()
	require.Len(t, a, 6)
	for i := range a {
		assert.Equal(t, a[i].ID, b[i].ID)
		assert.NoError(t, a[i].Validate())
	}
	a[0].Name = "Changed"
	assert.Equal(t, "Happy", DefaultMoods()[0].Name)
}

func TestStaticDefinitions(t *testing.T) {
	badges := Badges()
	require.Len(t, badges, 3)
	assert.Equal(t, []int{1, 7, 30}, []int{badges[0].Requirement, badges[1].Requirement, badges[2].Requirement})
	assert.Len(t, Challenges(), 3)
	assert.Len(t, Facts(), 20)
}

// ============================================================
// Wheel
// ============================================================

func TestSelectIndex(t *testing.T) {
	tests := []struct {
		rotation float64
		n        int
		want     int
	}{
		{0, 6, 0},
		{360, 6, 0},
		{359, 6, 0},
		{300, 6, 1},
		{1, 6, 5},
		{180, 6, 3},
		{-60, 6, 1},
		{3600 + 90, 4, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SelectIndex(tt.rotation, tt.n), "rotation %.0f n %d", tt.rotation, tt.n)
	}
	assert.Equal(t, -1, SelectIndex(10, 0))
}

func TestSpinRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 100 {
		r := Spin(rng)
		assert.GreaterOrEqual(t, r, 5*360.0)
		assert.Less(t, r, 11*360.0)
	}
}

func TestWheelFallsBackToDefaults(t *testing.T) {
	w := NewWheel(nil)
	require.Len(t, w.Moods, 6)
	assert.Equal(t, "Happy", w.Select(0).Name)
}
