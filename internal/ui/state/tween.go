package state

import "time"

// Tween interpolates a single value towards a target over a fixed duration.
// Time only advances through Step so animations are deterministic.
type Tween struct {
	From     float64
	To       float64
	Duration time.Duration
	Elapsed  time.Duration
}

// Value returns the current interpolated value.
func (t *Tween) Value() float64 {
	if !t.Active() {
		return t.To
	}
	p := float64(t.Elapsed) / float64(t.Duration)
	return t.From + (t.To-t.From)*easeInOut(p)
}

// Active reports whether the tween still has time left.
func (t *Tween) Active() bool {
	return t.Duration > 0 && t.Elapsed < t.Duration
}

// Start animates from the current value to `to`. A non-positive duration
// jumps straight there.
func (t *Tween) Start(to float64, d time.Duration) {
	from := t.Value()
	if d <= 0 {
		t.Set(to)
		return
	}
	t.From = from
	t.To = to
	t.Duration = d
	t.Elapsed = 0
}

// Set jumps to v and cancels any running animation.
func (t *Tween) Set(v float64) {
	t.From = v
	t.To = v
	t.Duration = 0
	t.Elapsed = 0
}

// Step advances the tween by dt and reports whether it is still running.
func (t *Tween) Step(dt time.Duration) bool {
	if !t.Active() {
		return false
	}
	t.Elapsed += dt
	if t.Elapsed >= t.Duration {
		t.Elapsed = t.Duration
	}
	return t.Active()
}

func easeInOut(p float64) float64 {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	if p < 0.5 {
		return 2 * p * p
	}
	return 1 - 2*(1-p)*(1-p)
}
