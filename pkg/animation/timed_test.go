package animation

import (
	"math"
	"testing"
	"time"
)

func newTestTimed(from, to float64, duration time.Duration) *TimedAnimation {
	a := NewTimedAnimation(nil, from, to, duration, NewCallbackTarget(func(float64) {}))
	a.SetEasing(Linear)
	return a
}

func TestTimedLinearMidpoint(t *testing.T) {
	a := newTestTimed(0, 1, 250*time.Millisecond)
	if got := a.CalculateValue(125 * time.Millisecond); got != 0.5 {
		t.Errorf("CalculateValue(125ms) = %g, want 0.5", got)
	}
}

func TestTimedEndpoints(t *testing.T) {
	a := newTestTimed(2, 8, 100*time.Millisecond)
	if got := a.CalculateValue(0); got != 2 {
		t.Errorf("CalculateValue(0) = %g, want value from (2)", got)
	}
	if got := a.CalculateValue(100 * time.Millisecond); got != 8 {
		t.Errorf("CalculateValue(duration) = %g, want value to (8)", got)
	}
	if got := a.CalculateValue(500 * time.Millisecond); got != 8 {
		t.Errorf("CalculateValue(past duration) = %g, want value to (8)", got)
	}
}

func TestTimedZeroDuration(t *testing.T) {
	a := newTestTimed(0, 5, 0)
	if got := a.CalculateValue(0); got != 5 {
		t.Errorf("CalculateValue(0) with zero duration = %g, want 5", got)
	}
	if got := a.EstimateDuration(); got != 0 {
		t.Errorf("EstimateDuration() = %v, want 0", got)
	}
}

func TestTimedEstimateDuration(t *testing.T) {
	a := newTestTimed(0, 1, 100*time.Millisecond)
	a.SetRepeatCount(3)
	if got := a.EstimateDuration(); got != 300*time.Millisecond {
		t.Errorf("EstimateDuration() = %v, want 300ms", got)
	}

	a.SetRepeatCount(0)
	if got := a.EstimateDuration(); got != DurationInfinite {
		t.Errorf("EstimateDuration() with infinite repeat = %v, want DurationInfinite", got)
	}
}

func TestTimedRepeatCycles(t *testing.T) {
	a := newTestTimed(0, 1, 100*time.Millisecond)
	a.SetRepeatCount(3)

	// Halfway through the second iteration.
	if got := a.CalculateValue(150 * time.Millisecond); got != 0.5 {
		t.Errorf("CalculateValue(150ms) = %g, want 0.5", got)
	}
	// End of all iterations.
	if got := a.CalculateValue(300 * time.Millisecond); got != 1 {
		t.Errorf("CalculateValue(300ms) = %g, want 1", got)
	}
}

func TestTimedInfiniteRepeatNeverEnds(t *testing.T) {
	a := newTestTimed(0, 10, 100*time.Millisecond)
	a.SetRepeatCount(0)

	// 1000000ms is an exact multiple of the duration: iteration 10000,
	// progress 0.
	if got := a.CalculateValue(1000000 * time.Millisecond); got != 0 {
		t.Errorf("CalculateValue(1000000ms) = %g, want 0", got)
	}
	// A quarter into some far-future iteration.
	if got := a.CalculateValue(1000025 * time.Millisecond); math.Abs(got-2.5) > 1e-6 {
		t.Errorf("CalculateValue(1000025ms) = %g, want 2.5", got)
	}
}

func TestTimedReverse(t *testing.T) {
	a := newTestTimed(0, 1, 100*time.Millisecond)
	a.SetReverse(true)

	if got := a.CalculateValue(0); got != 1 {
		t.Errorf("reversed CalculateValue(0) = %g, want 1", got)
	}
	if got := a.CalculateValue(75 * time.Millisecond); got != 0.25 {
		t.Errorf("reversed CalculateValue(75ms) = %g, want 0.25", got)
	}
	// The final moment resolves to value from: alternate (false) !=
	// reverse (true).
	if got := a.CalculateValue(100 * time.Millisecond); got != 0 {
		t.Errorf("reversed CalculateValue(duration) = %g, want 0", got)
	}
}

func TestTimedAlternateBoundary(t *testing.T) {
	// With two alternating iterations the value returns to the start.
	a := newTestTimed(0, 1, 100*time.Millisecond)
	a.SetAlternate(true)
	a.SetRepeatCount(2)

	if got := a.CalculateValue(200 * time.Millisecond); got != 0 {
		t.Errorf("alternate repeat=2 end value = %g, want 0", got)
	}

	// Mid second iteration the direction is flipped.
	if got := a.CalculateValue(175 * time.Millisecond); got != 0.25 {
		t.Errorf("alternate CalculateValue(175ms) = %g, want 0.25", got)
	}

	// With a single iteration it ends at the target.
	a.SetRepeatCount(1)
	if got := a.CalculateValue(100 * time.Millisecond); got != 1 {
		t.Errorf("alternate repeat=1 end value = %g, want 1", got)
	}
}

func TestTimedAlternateReverse(t *testing.T) {
	a := newTestTimed(0, 1, 100*time.Millisecond)
	a.SetAlternate(true)
	a.SetReverse(true)
	a.SetRepeatCount(2)

	// First iteration runs backwards, second forwards.
	if got := a.CalculateValue(25 * time.Millisecond); got != 0.75 {
		t.Errorf("CalculateValue(25ms) = %g, want 0.75", got)
	}
	if got := a.CalculateValue(125 * time.Millisecond); got != 0.25 {
		t.Errorf("CalculateValue(125ms) = %g, want 0.25", got)
	}
	// Final moment: at iteration 2 the xor of alternate and reverse is
	// true again, matching the alternate flag, so the sequence ends on
	// value to.
	if got := a.CalculateValue(200 * time.Millisecond); got != 1 {
		t.Errorf("CalculateValue(200ms) = %g, want 1", got)
	}
}

func TestTimedEasingApplied(t *testing.T) {
	a := newTestTimed(0, 1, 100*time.Millisecond)
	a.SetEasing(EaseInQuad)
	if got := a.CalculateValue(50 * time.Millisecond); got != 0.25 {
		t.Errorf("eased CalculateValue(50ms) = %g, want 0.25", got)
	}
}
