package animation

import (
	"math"
	"time"
)

// TimedAnimation interpolates between two values over a wall-clock
// duration, with a configurable [Easing], repeat count, reverse and
// alternate semantics.
type TimedAnimation struct {
	baseAnimation

	valueFrom   float64
	valueTo     float64
	duration    time.Duration
	easing      Easing
	repeatCount uint
	reverse     bool
	alternate   bool
}

// NewTimedAnimation creates an animation interpolating from from to to
// over the given duration, pushing values into target. The default easing
// is EaseOutCubic, matching the feel of built-in widget transitions.
func NewTimedAnimation(host Host, from, to float64, duration time.Duration, target Target) *TimedAnimation {
	a := &TimedAnimation{
		valueFrom:   from,
		valueTo:     to,
		duration:    duration,
		easing:      EaseOutCubic,
		repeatCount: 1,
	}
	a.init(a, host, target, "animation.NewTimedAnimation")
	return a
}

// ValueFrom returns the start value.
func (a *TimedAnimation) ValueFrom() float64 { return a.valueFrom }

// SetValueFrom sets the start value.
func (a *TimedAnimation) SetValueFrom(value float64) { a.valueFrom = value }

// ValueTo returns the end value.
func (a *TimedAnimation) ValueTo() float64 { return a.valueTo }

// SetValueTo sets the end value.
func (a *TimedAnimation) SetValueTo(value float64) { a.valueTo = value }

// Duration returns the duration of a single iteration.
func (a *TimedAnimation) Duration() time.Duration { return a.duration }

// SetDuration sets the duration of a single iteration.
func (a *TimedAnimation) SetDuration(duration time.Duration) { a.duration = duration }

// Easing returns the easing function.
func (a *TimedAnimation) Easing() Easing { return a.easing }

// SetEasing sets the easing function.
func (a *TimedAnimation) SetEasing(easing Easing) { a.easing = easing }

// RepeatCount returns the number of iterations; 0 means repeat forever.
func (a *TimedAnimation) RepeatCount() uint { return a.repeatCount }

// SetRepeatCount sets the number of iterations; 0 means repeat forever.
func (a *TimedAnimation) SetRepeatCount(count uint) { a.repeatCount = count }

// Reverse returns whether iterations play backwards.
func (a *TimedAnimation) Reverse() bool { return a.reverse }

// SetReverse sets whether iterations play backwards.
func (a *TimedAnimation) SetReverse(reverse bool) { a.reverse = reverse }

// Alternate returns whether every other iteration flips direction.
func (a *TimedAnimation) Alternate() bool { return a.alternate }

// SetAlternate sets whether every other iteration flips direction.
func (a *TimedAnimation) SetAlternate(alternate bool) { a.alternate = alternate }

// EstimateDuration returns duration times repeat count, or
// DurationInfinite when repeating forever.
func (a *TimedAnimation) EstimateDuration() time.Duration {
	if a.repeatCount == 0 {
		return DurationInfinite
	}
	return a.duration * time.Duration(a.repeatCount)
}

// CalculateValue computes the interpolated value at the given elapsed
// time, applying repeat, reverse and alternate semantics before easing.
func (a *TimedAnimation) CalculateValue(elapsed time.Duration) float64 {
	if a.duration == 0 {
		return a.valueTo
	}
	if elapsed == DurationInfinite {
		// Terminal value when skipping an endlessly repeating animation.
		return a.valueTo
	}

	iteration, progress := math.Modf(float64(elapsed) / float64(a.duration))

	alternates := a.alternate && math.Mod(iteration, 2) != 0
	reverse := alternates
	if a.reverse {
		reverse = !reverse
	}

	// The final moment of the last iteration resolves to whichever
	// endpoint the alternate/reverse combination lands on.
	if total := a.EstimateDuration(); total != DurationInfinite && elapsed >= total {
		if a.alternate == reverse {
			return a.valueTo
		}
		return a.valueFrom
	}

	if reverse {
		progress = 1 - progress
	}

	eased := a.easing.Ease(progress)
	return a.valueFrom + eased*(a.valueTo-a.valueFrom)
}
