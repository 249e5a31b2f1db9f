package mood

import "github.com/google/uuid"

// DefaultHabits are offered as tags when saving a mood.
var DefaultHabits = []string{
	"Exercise", "Meditation", "Reading", "Good sleep",
	"Socializing", "Hydration", "Journaling", "Time outside",
}

// defaultID keeps built-in moods stable across runs until the catalog is
// first saved.
func defaultID(name string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("moodwheel/mood/"+name))
}

// DefaultMoods returns a fresh copy of the built-in catalog.
func DefaultMoods() []Mood {
	return []Mood{
		{ID: defaultID("Happy"), Name: "Happy", Icon: "😊", Color: "#FFFF00", Advice: "Enjoy the positive vibes and share your happiness.", Value: 0.9},
		{ID: defaultID("Calm"), Name: "Calm", Icon: "😌", Color: "#0000FF", Advice: "Take a moment to breathe deeply and appreciate the peace.", Value: 0.6},
		{ID: defaultID("Focused"), Name: "Focused", Icon: "🎯", Color: "#800080", Advice: "Great day to focus on important tasks.", Value: 0.7},
		{ID: defaultID("Tired"), Name: "Tired", Icon: "😴", Color: "#808080", Advice: "Take small breaks and be gentle with yourself.", Value: 0.3},
		{ID: defaultID("Stressed"), Name: "Stressed", Icon: "😖", Color: "#FF0000", Advice: "Try some relaxation techniques to ease the tension.", Value: 0.2},
		{ID: defaultID("Excited"), Name: "Excited", Icon: "⚡", Color: "#FFC0CB", Advice: "Channel this energy into something productive.", Value: 0.8},
	}
}

// Badges are unlocked by best streak length.
func Badges() []Badge {
	return []Badge{
		{Name: "Daily Spinner", Requirement: 1, Icon: "⭐"},
		{Name: "Week Warrior", Requirement: 7, Icon: "🏆"},
		{Name: "Mood Master", Requirement: 30, Icon: "👑"},
	}
}

func Challenges() []Challenge {
	return []Challenge{
		{Name: "Three Day Check-in", Goal: 3, Reward: "A calmer start to every week"},
		{Name: "Two Week Habit", Goal: 14, Reward: "Spinning becomes second nature"},
		{Name: "Mood Marathon", Goal: 60, Reward: "Two months of self-awareness"},
	}
}

// Facts feed the Learn view.
func Facts() []Fact {
	return []Fact{
		{Title: "Emotions are Contagious", Content: "Smiles and yawns can spread from person to person due to mirror neurons.", Icon: "😊"},
		{Title: "Stress and Health", Content: "Chronic stress can weaken the immune system; manage it with exercise.", Icon: "😖"},
		{Title: "Happiness Boost", Content: "Gratitude journaling can increase happiness by 25% according to studies.", Icon: "😊"},
		{Title: "Calm Breathing", Content: "4-7-8 breathing technique helps reduce anxiety quickly.", Icon: "😌"},
		{Title: "Focus and Productivity", Content: "Pomodoro technique: 25 minutes focus, 5 minutes break.", Icon: "🎯"},
		{Title: "Tiredness Myths", Content: "Blue light from screens disrupts sleep; avoid before bed.", Icon: "😴"},
		{Title: "Excitement vs Anxiety", Content: "Both have similar physical symptoms; reframe anxiety as excitement.", Icon: "⚡"},
		{Title: "Mood and Food", Content: "Omega-3 in fish can improve mood and reduce depression.", Icon: "🍎"},
		{Title: "Laughter Benefits", Content: "Laughter releases endorphins, natural painkillers.", Icon: "😂"},
		{Title: "Sadness Purpose", Content: "Sadness helps process loss and seek support from others.", Icon: "😢"},
		{Title: "Anger Management", Content: "Count to 10 before responding to avoid regretful actions.", Icon: "😠"},
		{Title: "Joy Multipliers", Content: "Sharing positive experiences amplifies joy.", Icon: "😄"},
		{Title: "Mindfulness Basics", Content: "5 minutes daily meditation can lower stress levels.", Icon: "🧘"},
		{Title: "Emotional Intelligence", Content: "EQ is more predictive of success than IQ in many cases.", Icon: "🧠"},
		{Title: "Hydration and Mood", Content: "Dehydration can cause irritability; drink water regularly.", Icon: "💧"},
		{Title: "Nature's Effect", Content: "20 minutes in nature reduces cortisol levels.", Icon: "🌳"},
		{Title: "Music Therapy", Content: "Upbeat music can elevate mood in minutes.", Icon: "🎵"},
		{Title: "Sleep Importance", Content: "7-9 hours sleep nightly for optimal emotional regulation.", Icon: "🛌"},
		{Title: "Kindness Ripple", Content: "Acts of kindness boost serotonin for giver and receiver.", Icon: "❤️"},
		{Title: "Resilience Building", Content: "Viewing challenges as growth opportunities builds emotional strength.", Icon: "💪"},
	}
}
