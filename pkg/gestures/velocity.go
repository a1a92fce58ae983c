// Package gestures provides the swipe progress-tracking state machine that
// drives gesture-controlled transitions, and the velocity tracking used to
// resolve which snap point a released swipe settles on.
package gestures

import "time"

// velocityWindow is how much pointer history contributes to the release
// velocity. Older samples describe motion the user has already corrected.
const velocityWindow = 100 * time.Millisecond

type velocitySample struct {
	at       time.Time
	position float64
}

// VelocityTracker estimates pointer velocity from recent position samples.
// Positions are in pixels; the estimate is in pixels per second.
type VelocityTracker struct {
	samples []velocitySample
}

// AddSample records a pointer position at the given time. Samples must be
// added in chronological order.
func (v *VelocityTracker) AddSample(at time.Time, position float64) {
	v.samples = append(v.samples, velocitySample{at: at, position: position})
	v.trim(at)
}

// Velocity returns the estimated velocity in pixels per second over the
// sample window, or 0 if there is not enough history.
func (v *VelocityTracker) Velocity() float64 {
	if len(v.samples) < 2 {
		return 0
	}
	first := v.samples[0]
	last := v.samples[len(v.samples)-1]
	dt := last.at.Sub(first.at).Seconds()
	if dt <= 0 {
		return 0
	}
	return (last.position - first.position) / dt
}

// Reset discards all samples.
func (v *VelocityTracker) Reset() {
	v.samples = v.samples[:0]
}

// trim drops samples older than the velocity window.
func (v *VelocityTracker) trim(now time.Time) {
	cutoff := now.Add(-velocityWindow)
	start := 0
	for start < len(v.samples) && v.samples[start].at.Before(cutoff) {
		start++
	}
	if start > 0 {
		v.samples = append(v.samples[:0], v.samples[start:]...)
	}
}
