package gestures

import (
	"testing"
	"time"
)

func TestVelocityFromSamples(t *testing.T) {
	var v VelocityTracker
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	v.AddSample(t0, 0)
	v.AddSample(t0.Add(50*time.Millisecond), 10)

	if got := v.Velocity(); got != 200 {
		t.Errorf("Velocity() = %g, want 200", got)
	}
}

func TestVelocityWindowTrimsOldSamples(t *testing.T) {
	var v VelocityTracker
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	v.AddSample(t0, 0)
	v.AddSample(t0.Add(80*time.Millisecond), 8)
	v.AddSample(t0.Add(160*time.Millisecond), 16)

	// The first sample fell out of the window; the estimate covers the
	// last 80ms only.
	if got := v.Velocity(); got != 100 {
		t.Errorf("Velocity() = %g, want 100", got)
	}
}

func TestVelocityInsufficientHistory(t *testing.T) {
	var v VelocityTracker
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	if got := v.Velocity(); got != 0 {
		t.Errorf("Velocity() with no samples = %g, want 0", got)
	}

	v.AddSample(t0, 5)
	if got := v.Velocity(); got != 0 {
		t.Errorf("Velocity() with one sample = %g, want 0", got)
	}

	// Two samples at the same instant have no usable time base.
	v.AddSample(t0, 10)
	if got := v.Velocity(); got != 0 {
		t.Errorf("Velocity() with zero dt = %g, want 0", got)
	}
}

func TestVelocityReset(t *testing.T) {
	var v VelocityTracker
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	v.AddSample(t0, 0)
	v.AddSample(t0.Add(10*time.Millisecond), 5)
	v.Reset()

	if got := v.Velocity(); got != 0 {
		t.Errorf("Velocity() after Reset = %g, want 0", got)
	}
}
