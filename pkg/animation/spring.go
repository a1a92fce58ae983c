package animation

import (
	"fmt"
	"math"
	"time"

	"github.com/go-bismuth/bismuth/pkg/errors"
)

// SpringParams describes the physical parameters of a spring: damping,
// mass and stiffness. A SpringParams value is immutable and may be shared
// by any number of spring animations.
type SpringParams struct {
	damping   float64
	mass      float64
	stiffness float64
}

// NewSpringParams creates spring parameters from a damping ratio instead
// of an absolute damping value.
//
// The damping ratio is relative to critical damping: 1 settles as fast as
// possible without oscillating, smaller values oscillate with decreasing
// amplitude, larger values settle slower.
func NewSpringParams(dampingRatio, mass, stiffness float64) *SpringParams {
	critical := 2 * math.Sqrt(mass*stiffness)
	return NewSpringParamsFull(dampingRatio*critical, mass, stiffness)
}

// NewSpringParamsFull creates spring parameters from an absolute damping
// value.
func NewSpringParamsFull(damping, mass, stiffness float64) *SpringParams {
	return &SpringParams{damping: damping, mass: mass, stiffness: stiffness}
}

// Damping returns the damping value.
func (p *SpringParams) Damping() float64 { return p.damping }

// DampingRatio returns the damping relative to critical damping.
func (p *SpringParams) DampingRatio() float64 {
	return p.damping / (2 * math.Sqrt(p.mass*p.stiffness))
}

// Mass returns the mass.
func (p *SpringParams) Mass() float64 { return p.mass }

// Stiffness returns the stiffness.
func (p *SpringParams) Stiffness() float64 { return p.stiffness }

const (
	// defaultEpsilon is the rest threshold below which spring motion is
	// considered settled.
	defaultEpsilon = 0.001

	// newtonStep is the finite-difference step, in seconds, used when
	// refining the overdamped duration estimate.
	newtonStep = 0.001

	// maxNewtonIterations bounds the overdamped duration root-finding.
	maxNewtonIterations = 1000

	// maxLatchScanMillis bounds the latched-duration linear scan.
	maxLatchScanMillis = 100000
)

// SpringAnimation models a damped harmonic oscillator released from
// valueFrom with an initial velocity, settling on valueTo.
//
// Unlike [TimedAnimation] a spring animation has no fixed duration; how
// long it takes to come to rest is derived from the spring parameters and
// the value range, and republished whenever either changes. The current
// velocity is recomputed on every tick so gesture code can hand it to a
// follow-up animation.
type SpringAnimation struct {
	baseAnimation

	valueFrom       float64
	valueTo         float64
	params          *SpringParams
	initialVelocity float64
	epsilon         float64
	latch           bool

	velocity          float64
	estimatedDuration time.Duration
}

// NewSpringAnimation creates a spring animation from from to to with the
// given spring parameters, pushing values into target.
func NewSpringAnimation(host Host, from, to float64, params *SpringParams, target Target) *SpringAnimation {
	a := &SpringAnimation{
		valueFrom: from,
		valueTo:   to,
		params:    params,
		epsilon:   defaultEpsilon,
	}
	a.init(a, host, target, "animation.NewSpringAnimation")
	a.estimatedDuration = a.calculateDuration()
	return a
}

// ValueFrom returns the start value.
func (a *SpringAnimation) ValueFrom() float64 { return a.valueFrom }

// SetValueFrom sets the start value.
func (a *SpringAnimation) SetValueFrom(value float64) {
	a.valueFrom = value
	a.estimatedDuration = a.calculateDuration()
}

// ValueTo returns the rest value.
func (a *SpringAnimation) ValueTo() float64 { return a.valueTo }

// SetValueTo sets the rest value.
func (a *SpringAnimation) SetValueTo(value float64) {
	a.valueTo = value
	a.estimatedDuration = a.calculateDuration()
}

// SpringParams returns the spring parameters.
func (a *SpringAnimation) SpringParams() *SpringParams { return a.params }

// SetSpringParams replaces the spring parameters.
func (a *SpringAnimation) SetSpringParams(params *SpringParams) {
	a.params = params
	a.estimatedDuration = a.calculateDuration()
}

// InitialVelocity returns the velocity the spring is released with, in
// value units per second.
func (a *SpringAnimation) InitialVelocity() float64 { return a.initialVelocity }

// SetInitialVelocity sets the release velocity, in value units per second.
// Gesture-driven containers set this to the swipe release velocity.
func (a *SpringAnimation) SetInitialVelocity(velocity float64) {
	a.initialVelocity = velocity
	a.estimatedDuration = a.calculateDuration()
}

// Epsilon returns the rest threshold.
func (a *SpringAnimation) Epsilon() float64 { return a.epsilon }

// SetEpsilon sets the rest threshold. Smaller values let the spring
// oscillate longer before it is considered settled.
func (a *SpringAnimation) SetEpsilon(epsilon float64) {
	a.epsilon = epsilon
	a.estimatedDuration = a.calculateDuration()
}

// Latch returns whether the animation stops at the first moment the
// trajectory reaches the rest value, suppressing any overshoot.
func (a *SpringAnimation) Latch() bool { return a.latch }

// SetLatch sets whether the animation terminates at the first arrival at
// the rest value.
func (a *SpringAnimation) SetLatch(latch bool) {
	a.latch = latch
	a.estimatedDuration = a.calculateDuration()
}

// Velocity returns the current velocity, in value units per second. It is
// recomputed on every tick.
func (a *SpringAnimation) Velocity() float64 { return a.velocity }

// EstimateDuration returns how long the spring takes to settle, or
// DurationInfinite for an undamped spring.
func (a *SpringAnimation) EstimateDuration() time.Duration {
	return a.estimatedDuration
}

// CalculateValue evaluates the oscillator at the given elapsed time. At
// or past the estimated duration the spring is at rest: the value is
// exactly the rest value and the velocity is zero.
func (a *SpringAnimation) CalculateValue(elapsed time.Duration) float64 {
	if elapsed == DurationInfinite {
		// Terminal value when skipping an undamped spring.
		a.velocity = 0
		return a.valueTo
	}
	if a.estimatedDuration != DurationInfinite && elapsed >= a.estimatedDuration {
		a.velocity = 0
		return a.valueTo
	}
	position, velocity := a.oscillate(elapsed.Seconds())
	a.velocity = velocity
	return position
}

// oscillate evaluates the closed-form damped harmonic oscillator at time
// t in seconds, returning position and velocity. The spring oscillates
// around valueTo, released from valueFrom with the initial velocity.
func (a *SpringAnimation) oscillate(t float64) (position, velocity float64) {
	b := a.params.damping
	m := a.params.mass
	k := a.params.stiffness

	beta := b / (2 * m)
	omega0 := math.Sqrt(k / m)

	x0 := a.valueFrom - a.valueTo
	v0 := a.initialVelocity

	envelope := math.Exp(-beta * t)

	switch {
	case beta < omega0:
		// Underdamped: decaying oscillation.
		omega1 := math.Sqrt(omega0*omega0 - beta*beta)
		sine, cosine := math.Sincos(omega1 * t)
		position = a.valueTo + envelope*(x0*cosine+((beta*x0+v0)/omega1)*sine)
		velocity = envelope * (v0*cosine - (x0*omega1+beta*(beta*x0+v0)/omega1)*sine)
	case beta > omega0:
		// Overdamped: hyperbolic decay, no oscillation.
		omega2 := math.Sqrt(beta*beta - omega0*omega0)
		sinh := math.Sinh(omega2 * t)
		cosh := math.Cosh(omega2 * t)
		position = a.valueTo + envelope*(x0*cosh+((beta*x0+v0)/omega2)*sinh)
		velocity = envelope * (v0*cosh + (x0*omega2-beta*(beta*x0+v0)/omega2)*sinh)
	default:
		// Critically damped: polynomial times exponential.
		position = a.valueTo + envelope*(x0+(beta*x0+v0)*t)
		velocity = envelope * (v0 - beta*(beta*x0+v0)*t)
	}
	return position, velocity
}

// calculateDuration estimates how long the spring takes to settle within
// epsilon of the rest value.
func (a *SpringAnimation) calculateDuration() time.Duration {
	beta := a.params.damping / (2 * a.params.mass)
	if beta <= 0 {
		return DurationInfinite
	}

	if a.latch {
		return a.firstArrival()
	}

	omega0 := math.Sqrt(a.params.stiffness / a.params.mass)

	// The decay envelope alone bounds the displacement for springs that
	// are not overdamped.
	t0 := -math.Log(a.epsilon) / beta
	if beta <= omega0 {
		return secondsToDuration(t0)
	}

	// Overdamped motion decays on the slow root, so the envelope no
	// longer bounds the settling time; refine with Newton's method
	// seeded at the envelope estimate, using a finite-difference
	// derivative.
	t := t0
	y, _ := a.oscillate(t)
	for i := 0; math.Abs(a.valueTo-y) > a.epsilon; i++ {
		if i > maxNewtonIterations {
			a.reportNonConvergence("iteration budget exceeded")
			return 0
		}
		y1, _ := a.oscillate(t + newtonStep)
		derivative := (y1 - y) / newtonStep
		if derivative == 0 {
			a.reportNonConvergence("zero derivative")
			return 0
		}
		t -= (y - a.valueTo) / derivative
		y, _ = a.oscillate(t)
	}
	return secondsToDuration(t)
}

// firstArrival scans forward in millisecond steps for the first moment
// the trajectory comes within epsilon of the rest value.
func (a *SpringAnimation) firstArrival() time.Duration {
	if math.Abs(a.valueTo-a.valueFrom) <= a.epsilon {
		return 0
	}
	for i := 1; i <= maxLatchScanMillis; i++ {
		position, _ := a.oscillate(float64(i) / 1000)
		if math.Abs(a.valueTo-position) <= a.epsilon {
			return time.Duration(i) * time.Millisecond
		}
	}
	a.reportNonConvergence("latched spring never reached the rest value")
	return 0
}

// reportNonConvergence surfaces a degenerate duration estimate. The zero
// duration returned alongside finishes the animation immediately instead
// of truncating it silently.
func (a *SpringAnimation) reportNonConvergence(reason string) {
	errors.Report(&errors.Error{
		Op:   "animation.SpringAnimation",
		Kind: errors.KindNumeric,
		Err: fmt.Errorf("duration estimation did not converge (%s): damping=%g mass=%g stiffness=%g",
			reason, a.params.damping, a.params.mass, a.params.stiffness),
	})
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
