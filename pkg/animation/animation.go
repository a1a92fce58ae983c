package animation

import (
	"fmt"
	"time"

	"github.com/go-bismuth/bismuth/pkg/errors"
)

// State represents the lifecycle state of an animation.
//
// The state machine:
//
//	          Play()                    finish / Skip()
//	Idle ──────────────► Playing ─────────────────────► Finished
//	  ▲                  │     ▲                            │
//	  │          Pause() │     │ Resume()                   │
//	  │                  ▼     │                            │
//	  │                  Paused                             │
//	  └──────────────────── Reset() ◄───────────────────────┘
//
// Reset is reachable from every state except Idle, Skip from every state
// except Finished.
type State int

const (
	// StateIdle means the animation hasn't started yet.
	StateIdle State = iota
	// StatePaused means the animation has been paused mid-flight.
	StatePaused
	// StatePlaying means the animation is currently ticking.
	StatePlaying
	// StateFinished means the animation has reached its final value.
	StateFinished
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePaused:
		return "paused"
	case StatePlaying:
		return "playing"
	case StateFinished:
		return "finished"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Host provides the frame clock that drives an animation and the policy
// saying whether animations should run at all. Containers implement Host
// on whatever object owns their event loop.
//
// Both queries are consulted once, when Play or Resume is called; a host
// returning a nil clock (not mapped to a running frame loop) or disabled
// animations sends the animation down the skip path immediately.
type Host interface {
	// FrameClock returns the clock driving this host's frames, or nil
	// when the host is not currently mapped.
	FrameClock() *FrameClock
	// AnimationsEnabled reports whether animations should run.
	AnimationsEnabled() bool
}

// Animation is the shared lifecycle of [TimedAnimation] and
// [SpringAnimation].
type Animation interface {
	// Value returns the last computed output value.
	Value() float64
	// State returns the current lifecycle state.
	State() State
	// Target returns the value sink.
	Target() Target
	// SetTarget replaces the value sink. Avoid swapping targets while
	// the animation is playing.
	SetTarget(target Target)

	// Play starts the animation from the beginning, or resumes it when
	// paused. Calling Play on a playing animation is a programmer error:
	// it is reported and ignored.
	Play()
	// Pause suspends a playing animation; a no-op in any other state.
	Pause()
	// Resume continues a paused animation. Calling Resume in any other
	// state is a programmer error: it is reported and ignored.
	Resume()
	// Skip jumps to the end of the animation, pushes the final value and
	// fires the done notification. Idempotent once finished.
	Skip()
	// Reset cancels the animation and rewinds it to the zero-time value
	// without firing the done notification.
	Reset()

	// EstimateDuration returns how long the animation will take, or
	// DurationInfinite if it never settles on its own.
	EstimateDuration() time.Duration
	// CalculateValue computes the output value at the given elapsed time.
	CalculateValue(elapsed time.Duration) float64

	// AddValueListener registers a callback fired on every recomputed
	// value. It returns an unsubscribe function.
	AddValueListener(fn func(value float64)) func()
	// AddDoneListener registers a callback fired exactly once per
	// completed lifecycle. It returns an unsubscribe function.
	AddDoneListener(fn func()) func()

	// DetachHost clears the host reference. The host calls this from its
	// teardown; afterwards the animation behaves as if no clock were
	// available.
	DetachHost()
}

// animator is the per-type value function implemented by the concrete
// animation types and dispatched to by baseAnimation.
type animator interface {
	EstimateDuration() time.Duration
	CalculateValue(elapsed time.Duration) float64
}

// baseAnimation implements the lifecycle shared by the concrete animation
// types. Concrete types embed it and register themselves through setSelf
// so the base dispatches to their value functions.
type baseAnimation struct {
	self   animator
	host   Host
	target Target

	state      State
	value      float64
	startTime  time.Duration
	pausedTime time.Duration
	removeTick func()

	valueListeners map[int]func(float64)
	doneListeners  map[int]func()
	nextListenerID int
}

func (a *baseAnimation) init(self animator, host Host, target Target, op string) {
	if target == nil {
		errors.Report(&errors.Error{
			Op:   op,
			Kind: errors.KindState,
			Err:  fmt.Errorf("target must not be nil"),
		})
	}
	a.self = self
	a.host = host
	a.target = target
	a.state = StateIdle
	a.valueListeners = make(map[int]func(float64))
	a.doneListeners = make(map[int]func())
}

// Value returns the last computed output value.
func (a *baseAnimation) Value() float64 { return a.value }

// State returns the current lifecycle state.
func (a *baseAnimation) State() State { return a.state }

// Target returns the value sink.
func (a *baseAnimation) Target() Target { return a.target }

// SetTarget replaces the value sink.
func (a *baseAnimation) SetTarget(target Target) { a.target = target }

// Play starts the animation from the beginning, or resumes it when paused.
func (a *baseAnimation) Play() {
	switch a.state {
	case StatePlaying:
		errors.Report(&errors.Error{
			Op:   "animation.Play",
			Kind: errors.KindState,
			Err:  fmt.Errorf("already playing"),
		})
		return
	case StatePaused:
		// Resume with the accumulated progress.
	default:
		a.startTime = 0
		a.pausedTime = 0
		a.setValue(a.self.CalculateValue(0))
	}
	a.state = StatePlaying
	a.start()
}

// Pause suspends a playing animation.
func (a *baseAnimation) Pause() {
	if a.state != StatePlaying {
		return
	}
	a.state = StatePaused
	a.pausedTime = a.frameTime()
	a.stopTicking()
}

// Resume continues a paused animation.
func (a *baseAnimation) Resume() {
	if a.state != StatePaused {
		errors.Report(&errors.Error{
			Op:   "animation.Resume",
			Kind: errors.KindState,
			Err:  fmt.Errorf("cannot resume from state %q", a.state),
		})
		return
	}
	a.state = StatePlaying
	a.start()
}

// Skip jumps to the end of the animation and fires the done notification.
func (a *baseAnimation) Skip() {
	if a.state == StateFinished {
		return
	}
	a.state = StateFinished
	a.stopTicking()
	a.setValue(a.self.CalculateValue(a.self.EstimateDuration()))
	a.startTime = 0
	a.pausedTime = 0
	for _, fn := range a.doneListeners {
		fn()
	}
}

// Reset cancels the animation and rewinds it to the zero-time value.
func (a *baseAnimation) Reset() {
	if a.state == StateIdle {
		return
	}
	a.state = StateIdle
	a.stopTicking()
	a.startTime = 0
	a.pausedTime = 0
	a.setValue(a.self.CalculateValue(0))
}

// EstimateDuration returns how long the animation will take.
func (a *baseAnimation) EstimateDuration() time.Duration {
	return a.self.EstimateDuration()
}

// CalculateValue computes the output value at the given elapsed time.
func (a *baseAnimation) CalculateValue(elapsed time.Duration) float64 {
	return a.self.CalculateValue(elapsed)
}

// AddValueListener registers a callback fired on every recomputed value.
func (a *baseAnimation) AddValueListener(fn func(value float64)) func() {
	id := a.nextListenerID
	a.nextListenerID++
	a.valueListeners[id] = fn
	return func() {
		delete(a.valueListeners, id)
	}
}

// AddDoneListener registers a callback fired once per completed lifecycle.
func (a *baseAnimation) AddDoneListener(fn func()) func() {
	id := a.nextListenerID
	a.nextListenerID++
	a.doneListeners[id] = fn
	return func() {
		delete(a.doneListeners, id)
	}
}

// DetachHost clears the host reference. A playing animation is paused
// first, so both Play and Resume afterwards take the skip path.
func (a *baseAnimation) DetachHost() {
	if a.state == StatePlaying {
		a.Pause()
	}
	a.stopTicking()
	a.host = nil
}

// start installs the tick callback, continuing from pausedTime. The
// skip guard is evaluated here, once, not continuously.
func (a *baseAnimation) start() {
	if a.host == nil || a.host.FrameClock() == nil || !a.host.AnimationsEnabled() {
		a.Skip()
		return
	}
	clock := a.host.FrameClock()
	a.startTime += clock.FrameTime() - a.pausedTime
	a.pausedTime = 0
	a.removeTick = clock.AddTick(a.tick)
}

func (a *baseAnimation) tick(frameTime time.Duration) bool {
	t := frameTime - a.startTime
	duration := a.self.EstimateDuration()
	if duration != DurationInfinite && t >= duration {
		a.removeTick = nil
		a.Skip()
		return false
	}
	a.setValue(a.self.CalculateValue(t))
	return true
}

func (a *baseAnimation) stopTicking() {
	if a.removeTick != nil {
		a.removeTick()
		a.removeTick = nil
	}
}

func (a *baseAnimation) frameTime() time.Duration {
	if a.host == nil || a.host.FrameClock() == nil {
		return 0
	}
	return a.host.FrameClock().FrameTime()
}

func (a *baseAnimation) setValue(value float64) {
	a.value = value
	if a.target != nil {
		a.target.SetValue(value)
	}
	for _, fn := range a.valueListeners {
		fn(value)
	}
}
