package gestures

import (
	"math"

	"github.com/go-bismuth/bismuth/pkg/animation"
)

const (
	// DefaultTouchSlop is how far, in pixels, a pointer must travel
	// before a swipe is recognized as such.
	DefaultTouchSlop = 18.0

	// SwipeVelocityThreshold is the release speed, in pixels per second,
	// beyond which a swipe projects to the next snap point in its
	// direction instead of the nearest one.
	SwipeVelocityThreshold = 400.0
)

// Swipeable is implemented by containers whose transition progress can be
// driven by swipe gestures.
type Swipeable interface {
	// SnapPoints returns the progress values the transition may settle
	// on, sorted ascending. There is always at least one.
	SnapPoints() []float64
	// Progress returns the current transition progress.
	Progress() float64
	// CancelProgress returns the snap point to return to when a swipe is
	// cancelled.
	CancelProgress() float64
	// Distance returns how many pixels of pointer travel map onto one
	// unit of progress.
	Distance() float64
}

type swipePhase int

const (
	phaseIdle swipePhase = iota
	// phasePending means a swipe may have started but the pointer hasn't
	// travelled past the touch slop yet.
	phasePending
	phaseScrolling
)

// SwipeTracker turns pointer deltas into progress updates for a
// [Swipeable] container and resolves the snap point a released swipe
// settles on.
//
// The container feeds it BeginSwipe, UpdateSwipe and EndSwipe from its
// pointer handling. While a swipe is recognized the tracker fires OnUpdate
// with clamped progress values; on release it fires OnEnd with the release
// velocity (progress units per second) and the resolved snap point, which
// the container typically hands to a [animation.SpringAnimation] via
// SetInitialVelocity.
type SwipeTracker struct {
	// OnBegin fires when pointer travel exceeds the touch slop and the
	// swipe is recognized.
	OnBegin func()
	// OnUpdate fires with the new progress on every recognized update.
	OnUpdate func(progress float64)
	// OnEnd fires on release with the release velocity in progress units
	// per second and the snap point to settle on.
	OnEnd func(velocity, to float64)

	swipeable       Swipeable
	enabled         bool
	reversed        bool
	allowLongSwipes bool

	phase           swipePhase
	progress        float64
	initialProgress float64
	pendingDelta    float64
	pixels          float64
	velocity        VelocityTracker
}

// NewSwipeTracker creates a swipe tracker for the given container.
func NewSwipeTracker(swipeable Swipeable) *SwipeTracker {
	return &SwipeTracker{
		swipeable: swipeable,
		enabled:   true,
	}
}

// Enabled returns whether the tracker processes swipes.
func (t *SwipeTracker) Enabled() bool { return t.enabled }

// SetEnabled enables or disables the tracker. Disabling it mid-swipe
// cancels the swipe back to the container's cancel progress.
func (t *SwipeTracker) SetEnabled(enabled bool) {
	if t.enabled == enabled {
		return
	}
	t.enabled = enabled
	if enabled {
		return
	}
	cancelling := t.phase == phaseScrolling
	to := t.swipeable.CancelProgress()
	t.reset()
	if cancelling && t.OnEnd != nil {
		t.OnEnd(0, to)
	}
}

// Reversed returns whether pointer deltas are flipped.
func (t *SwipeTracker) Reversed() bool { return t.reversed }

// SetReversed sets whether pointer deltas are flipped, for containers
// whose progress runs against the pointer axis (e.g. RTL layouts).
func (t *SwipeTracker) SetReversed(reversed bool) { t.reversed = reversed }

// AllowLongSwipes returns whether one swipe may cross several snap points.
func (t *SwipeTracker) AllowLongSwipes() bool { return t.allowLongSwipes }

// SetAllowLongSwipes sets whether one swipe may cross several snap
// points. When disabled, the resolved snap point is clamped to the points
// adjacent to where the swipe started.
func (t *SwipeTracker) SetAllowLongSwipes(allow bool) { t.allowLongSwipes = allow }

// Progress returns the progress of the swipe in flight, or the last
// swipe's final progress.
func (t *SwipeTracker) Progress() float64 { return t.progress }

// BeginSwipe signals that a pointer went down on the swipe area. The
// swipe is not recognized until the pointer travels past the touch slop.
func (t *SwipeTracker) BeginSwipe() {
	if !t.enabled || t.phase != phaseIdle {
		return
	}
	t.phase = phasePending
	t.pendingDelta = 0
}

// UpdateSwipe feeds a pointer delta, in pixels along the swipe axis.
func (t *SwipeTracker) UpdateSwipe(delta float64) {
	if t.reversed {
		delta = -delta
	}
	switch t.phase {
	case phasePending:
		t.pendingDelta += delta
		if math.Abs(t.pendingDelta) < DefaultTouchSlop {
			return
		}
		excess := t.pendingDelta - math.Copysign(DefaultTouchSlop, t.pendingDelta)
		t.recognize()
		t.applyDelta(excess)
	case phaseScrolling:
		t.applyDelta(delta)
	}
}

// EndSwipe signals pointer release. If the swipe was recognized, OnEnd
// fires with the release velocity and the resolved snap point.
func (t *SwipeTracker) EndSwipe() {
	switch t.phase {
	case phasePending:
		t.reset()
	case phaseScrolling:
		pixelVelocity := t.velocity.Velocity()
		to := t.endProgress(pixelVelocity)
		progressVelocity := pixelVelocity / t.swipeable.Distance()
		t.reset()
		if t.OnEnd != nil {
			t.OnEnd(progressVelocity, to)
		}
	}
}

func (t *SwipeTracker) recognize() {
	t.phase = phaseScrolling
	t.initialProgress = t.swipeable.Progress()
	t.progress = t.initialProgress
	t.pixels = 0
	t.velocity.Reset()
	t.velocity.AddSample(animation.Now(), 0)
	if t.OnBegin != nil {
		t.OnBegin()
	}
}

func (t *SwipeTracker) applyDelta(delta float64) {
	t.pixels += delta
	t.velocity.AddSample(animation.Now(), t.pixels)

	points := t.swipeable.SnapPoints()
	progress := t.progress + delta/t.swipeable.Distance()
	t.progress = clamp(progress, points[0], points[len(points)-1])
	if t.OnUpdate != nil {
		t.OnUpdate(t.progress)
	}
}

// endProgress resolves the snap point a released swipe settles on: past
// the velocity threshold the first snap point in the velocity's
// direction, otherwise the nearest one. Without long swipes the result is
// clamped to the points adjacent to where the swipe started.
func (t *SwipeTracker) endProgress(pixelVelocity float64) float64 {
	points := t.swipeable.SnapPoints()

	var to float64
	switch {
	case pixelVelocity > SwipeVelocityThreshold:
		to = firstPointAfter(points, t.progress)
	case pixelVelocity < -SwipeVelocityThreshold:
		to = firstPointBefore(points, t.progress)
	default:
		to = nearestPoint(points, t.progress)
	}

	if !t.allowLongSwipes {
		lower, upper := adjacentPoints(points, t.initialProgress)
		to = clamp(to, lower, upper)
	}
	return to
}

func (t *SwipeTracker) reset() {
	t.phase = phaseIdle
	t.pendingDelta = 0
	t.velocity.Reset()
}

// firstPointAfter returns the first snap point above progress, or the
// last point if progress is already past all of them.
func firstPointAfter(points []float64, progress float64) float64 {
	for _, p := range points {
		if p > progress {
			return p
		}
	}
	return points[len(points)-1]
}

// firstPointBefore returns the first snap point below progress, or the
// first point if progress is already below all of them.
func firstPointBefore(points []float64, progress float64) float64 {
	for i := len(points) - 1; i >= 0; i-- {
		if points[i] < progress {
			return points[i]
		}
	}
	return points[0]
}

func nearestPoint(points []float64, progress float64) float64 {
	best := points[0]
	for _, p := range points[1:] {
		if math.Abs(p-progress) < math.Abs(best-progress) {
			best = p
		}
	}
	return best
}

// adjacentPoints returns the snap points one step either side of the
// point closest to progress. A swipe starting exactly on a snap point can
// still move one point in either direction.
func adjacentPoints(points []float64, progress float64) (lower, upper float64) {
	closest := 0
	for i, p := range points {
		if math.Abs(p-progress) < math.Abs(points[closest]-progress) {
			closest = i
		}
	}
	lower = points[max(closest-1, 0)]
	upper = points[min(closest+1, len(points)-1)]
	return lower, upper
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
