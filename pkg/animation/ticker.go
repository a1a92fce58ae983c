// Package animation provides the animation engine of the bismuth toolkit:
// easing functions, value targets, a frame-clock driven animation lifecycle,
// wall-clock timed animations and physically simulated spring animations.
//
// # Core Components
//
//   - [FrameClock]: the per-frame timestamp source driving animations. The
//     event loop that owns rendering steps it once per frame.
//
//   - [Target]: the numeric sink an animation pushes its computed value
//     into each tick. See [CallbackTarget] and [PropertyTarget].
//
//   - [TimedAnimation]: interpolates between two values over a wall-clock
//     duration with a configurable [Easing], repeat count, reverse and
//     alternate semantics.
//
//   - [SpringAnimation]: solves a damped harmonic oscillator in closed form
//     each frame, supporting initial velocity and latching. Spring motion is
//     what gesture-driven transitions settle with.
//
// # Basic Usage
//
// Construct an animation against a host and a target, then play it:
//
//	target := animation.NewCallbackTarget(func(v float64) {
//	    pane.SetRevealProgress(v)
//	})
//	anim := animation.NewTimedAnimation(host, 0, 1, 250*time.Millisecond, target)
//	anim.SetEasing(animation.EaseOutCubic)
//	anim.AddDoneListener(func() { pane.finishReveal() })
//	anim.Play()
//
// The host's frame clock keeps the animation alive while it plays; the
// caller may drop its reference after Play.
package animation

import (
	"math"
	"time"
)

// DurationInfinite is the sentinel returned by EstimateDuration for
// animations that never settle on their own.
const DurationInfinite = time.Duration(math.MaxInt64)

// TickCallback is invoked once per rendered frame with the frame timestamp.
// Returning false removes the callback from the clock.
type TickCallback func(frameTime time.Duration) bool

// FrameClock dispatches per-frame ticks to subscribed callbacks.
//
// A FrameClock belongs to whatever single-threaded event loop drives
// rendering; the loop calls Step once per frame with a monotonically
// increasing timestamp. All animation ticking happens synchronously inside
// Step, so no locking is needed beyond the loop's own discipline.
//
// The clock owns its subscriptions: a playing animation is kept alive by
// the tick callback registered here, so callers may drop their references
// after Play.
type FrameClock struct {
	frameTime time.Duration
	tickers   map[int]TickCallback
	nextID    int
	stepping  bool
	removed   map[int]bool
}

// NewFrameClock creates a frame clock starting at time zero.
func NewFrameClock() *FrameClock {
	return &FrameClock{
		tickers: make(map[int]TickCallback),
		removed: make(map[int]bool),
	}
}

// FrameTime returns the timestamp of the most recent frame.
func (c *FrameClock) FrameTime() time.Duration {
	return c.frameTime
}

// AddTick subscribes a per-frame callback. It returns a removal function;
// the callback is also removed when it returns false.
func (c *FrameClock) AddTick(fn TickCallback) func() {
	id := c.nextID
	c.nextID++
	c.tickers[id] = fn
	return func() {
		if c.stepping {
			c.removed[id] = true
			return
		}
		delete(c.tickers, id)
	}
}

// Step advances the clock to now and invokes every subscribed callback.
// Timestamps must not go backwards; a stale now is clamped to the current
// frame time.
func (c *FrameClock) Step(now time.Duration) {
	if now < c.frameTime {
		now = c.frameTime
	}
	c.frameTime = now

	// Snapshot IDs so callbacks may subscribe or unsubscribe while we
	// iterate. Removals during the step are deferred via c.removed.
	ids := make([]int, 0, len(c.tickers))
	for id := range c.tickers {
		ids = append(ids, id)
	}

	c.stepping = true
	for _, id := range ids {
		if c.removed[id] {
			continue
		}
		fn, ok := c.tickers[id]
		if !ok {
			continue
		}
		if !fn(now) {
			c.removed[id] = true
		}
	}
	c.stepping = false

	for id := range c.removed {
		delete(c.tickers, id)
		delete(c.removed, id)
	}
}

// HasTickers returns true if any callbacks are subscribed. Event loops use
// this to decide whether another frame needs to be scheduled.
func (c *FrameClock) HasTickers() bool {
	return len(c.tickers) > 0
}
