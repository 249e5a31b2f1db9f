package tui

import (
	"math"
	"time"
)

// spinDuration matches the ease-out length of the wheel animation.
const spinDuration = 4 * time.Second

const frameInterval = 50 * time.Millisecond

type timerState int

const (
	timerIdle timerState = iota
	timerSpinning
	timerSettled
)

// spinTimer drives the wheel animation separately from rendering. Rotation
// starts at 0 for every spin and eases out to target.
type spinTimer struct {
	state     timerState
	startTime time.Time
	duration  time.Duration
	target    float64
	rotation  float64
}

func newSpinTimer() spinTimer {
	return spinTimer{state: timerIdle, duration: spinDuration}
}

func (t *spinTimer) start(target float64, now time.Time) {
	t.state = timerSpinning
	t.startTime = now
	t.target = target
	t.rotation = 0
}

// tick advances the animation. It reports true on the frame the wheel
// comes to rest.
func (t *spinTimer) tick(now time.Time) bool {
	if t.state != timerSpinning {
		return false
	}
	progress := float64(now.Sub(t.startTime)) / float64(t.duration)
	if progress >= 1 {
		t.rotation = t.target
		t.state = timerSettled
		return true
	}
	t.rotation = t.target * easeOut(progress)
	return false
}

func (t spinTimer) spinning() bool { return t.state == timerSpinning }
func (t spinTimer) settled() bool  { return t.state == timerSettled }

func (t *spinTimer) reset() {
	t.state = timerIdle
	t.rotation = 0
	t.target = 0
}

// easeOut is a cubic ease-out curve on [0, 1].
func easeOut(p float64) float64 {
	p = min(max(p, 0), 1)
	return 1 - math.Pow(1-p, 3)
}
