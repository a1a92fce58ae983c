package animation

import "math"

// Easing identifies an easing function.
//
// Easing functions transform linear animation progress into natural-feeling
// motion. Set a [TimedAnimation]'s easing to apply one. The full set of
// classic Penner curves is provided; every "in-out" variant is the two-piece
// composition of its "in" and "out" halves.
//
// Elastic and back curves intentionally overshoot the [0, 1] range in the
// middle, but all curves map 0 to 0 and 1 to 1 exactly.
type Easing int

const (
	// Linear returns progress unchanged.
	Linear Easing = iota
	// EaseInQuad accelerates from zero with a quadratic curve.
	EaseInQuad
	// EaseOutQuad decelerates to zero with a quadratic curve.
	EaseOutQuad
	// EaseInOutQuad combines EaseInQuad and EaseOutQuad.
	EaseInOutQuad
	// EaseInCubic accelerates from zero with a cubic curve.
	EaseInCubic
	// EaseOutCubic decelerates to zero with a cubic curve.
	EaseOutCubic
	// EaseInOutCubic combines EaseInCubic and EaseOutCubic.
	EaseInOutCubic
	// EaseInQuart accelerates from zero with a quartic curve.
	EaseInQuart
	// EaseOutQuart decelerates to zero with a quartic curve.
	EaseOutQuart
	// EaseInOutQuart combines EaseInQuart and EaseOutQuart.
	EaseInOutQuart
	// EaseInQuint accelerates from zero with a quintic curve.
	EaseInQuint
	// EaseOutQuint decelerates to zero with a quintic curve.
	EaseOutQuint
	// EaseInOutQuint combines EaseInQuint and EaseOutQuint.
	EaseInOutQuint
	// EaseInSine accelerates along a quarter sine wave.
	EaseInSine
	// EaseOutSine decelerates along a quarter sine wave.
	EaseOutSine
	// EaseInOutSine combines EaseInSine and EaseOutSine.
	EaseInOutSine
	// EaseInExpo accelerates along an exponential curve.
	EaseInExpo
	// EaseOutExpo decelerates along an exponential curve.
	EaseOutExpo
	// EaseInOutExpo combines EaseInExpo and EaseOutExpo.
	EaseInOutExpo
	// EaseInCirc accelerates along a quarter circle arc.
	EaseInCirc
	// EaseOutCirc decelerates along a quarter circle arc.
	EaseOutCirc
	// EaseInOutCirc combines EaseInCirc and EaseOutCirc.
	EaseInOutCirc
	// EaseInElastic undershoots with a decaying oscillation, then snaps to
	// the end value.
	EaseInElastic
	// EaseOutElastic overshoots with a decaying oscillation.
	EaseOutElastic
	// EaseInOutElastic combines EaseInElastic and EaseOutElastic.
	EaseInOutElastic
	// EaseInBack pulls back slightly before accelerating.
	EaseInBack
	// EaseOutBack overshoots slightly before settling.
	EaseOutBack
	// EaseInOutBack combines EaseInBack and EaseOutBack.
	EaseInOutBack
	// EaseInBounce bounces away from the start value.
	EaseInBounce
	// EaseOutBounce bounces against the end value.
	EaseOutBounce
	// EaseInOutBounce combines EaseInBounce and EaseOutBounce.
	EaseInOutBounce
)

// EasingCount is the number of defined easing functions.
const EasingCount = int(EaseInOutBounce) + 1

// Ease applies the easing function to progress t.
//
// t is nominally in [0, 1]; values outside that range extrapolate. Elastic
// and back variants can return values outside [0, 1] in between.
func (e Easing) Ease(t float64) float64 {
	switch e {
	case Linear:
		return t
	case EaseInQuad:
		return easeInQuad(t)
	case EaseOutQuad:
		return easeOutQuad(t)
	case EaseInOutQuad:
		return easeInOut(t, easeInQuad, easeOutQuad)
	case EaseInCubic:
		return easeInCubic(t)
	case EaseOutCubic:
		return easeOutCubic(t)
	case EaseInOutCubic:
		return easeInOut(t, easeInCubic, easeOutCubic)
	case EaseInQuart:
		return easeInQuart(t)
	case EaseOutQuart:
		return easeOutQuart(t)
	case EaseInOutQuart:
		return easeInOut(t, easeInQuart, easeOutQuart)
	case EaseInQuint:
		return easeInQuint(t)
	case EaseOutQuint:
		return easeOutQuint(t)
	case EaseInOutQuint:
		return easeInOut(t, easeInQuint, easeOutQuint)
	case EaseInSine:
		return easeInSine(t)
	case EaseOutSine:
		return easeOutSine(t)
	case EaseInOutSine:
		return easeInOut(t, easeInSine, easeOutSine)
	case EaseInExpo:
		return easeInExpo(t)
	case EaseOutExpo:
		return easeOutExpo(t)
	case EaseInOutExpo:
		return easeInOut(t, easeInExpo, easeOutExpo)
	case EaseInCirc:
		return easeInCirc(t)
	case EaseOutCirc:
		return easeOutCirc(t)
	case EaseInOutCirc:
		return easeInOut(t, easeInCirc, easeOutCirc)
	case EaseInElastic:
		return easeInElastic(t)
	case EaseOutElastic:
		return easeOutElastic(t)
	case EaseInOutElastic:
		return easeInOut(t, easeInElastic, easeOutElastic)
	case EaseInBack:
		return easeInBack(t)
	case EaseOutBack:
		return easeOutBack(t)
	case EaseInOutBack:
		return easeInOut(t, easeInBack, easeOutBack)
	case EaseInBounce:
		return easeInBounce(t)
	case EaseOutBounce:
		return easeOutBounce(t)
	case EaseInOutBounce:
		return easeInOut(t, easeInBounce, easeOutBounce)
	default:
		return t
	}
}

// String returns the kebab-case name of the easing function.
func (e Easing) String() string {
	if e >= Linear && int(e) < EasingCount {
		return easingNames[e]
	}
	return "unknown"
}

var easingNames = [...]string{
	"linear",
	"ease-in-quad", "ease-out-quad", "ease-in-out-quad",
	"ease-in-cubic", "ease-out-cubic", "ease-in-out-cubic",
	"ease-in-quart", "ease-out-quart", "ease-in-out-quart",
	"ease-in-quint", "ease-out-quint", "ease-in-out-quint",
	"ease-in-sine", "ease-out-sine", "ease-in-out-sine",
	"ease-in-expo", "ease-out-expo", "ease-in-out-expo",
	"ease-in-circ", "ease-out-circ", "ease-in-out-circ",
	"ease-in-elastic", "ease-out-elastic", "ease-in-out-elastic",
	"ease-in-back", "ease-out-back", "ease-in-out-back",
	"ease-in-bounce", "ease-out-bounce", "ease-in-out-bounce",
}

// easeInOut evaluates the in half on [0, 0.5] and the out half on [0.5, 1],
// each rescaled to the full range.
func easeInOut(t float64, in, out func(float64) float64) float64 {
	if t < 0.5 {
		return in(t*2) / 2
	}
	return out(t*2-1)/2 + 0.5
}

func easeInQuad(t float64) float64 { return t * t }

func easeOutQuad(t float64) float64 { return t * (2 - t) }

func easeInCubic(t float64) float64 { return t * t * t }

func easeOutCubic(t float64) float64 {
	p := t - 1
	return p*p*p + 1
}

func easeInQuart(t float64) float64 { return t * t * t * t }

func easeOutQuart(t float64) float64 {
	p := t - 1
	return 1 - p*p*p*p
}

func easeInQuint(t float64) float64 { return t * t * t * t * t }

func easeOutQuint(t float64) float64 {
	p := t - 1
	return p*p*p*p*p + 1
}

func easeInSine(t float64) float64 { return 1 - math.Cos(t*math.Pi/2) }

func easeOutSine(t float64) float64 { return math.Sin(t * math.Pi / 2) }

func easeInExpo(t float64) float64 {
	// Exact at the boundary: the exponential form alone gives 1/1024 at 0.
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*(t-1))
}

func easeOutExpo(t float64) float64 {
	if t == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

func easeInCirc(t float64) float64 { return 1 - math.Sqrt(1-t*t) }

func easeOutCirc(t float64) float64 {
	p := t - 1
	return math.Sqrt(1 - p*p)
}

// elasticPeriod is the oscillation period of the elastic curves, expressed
// as a fraction of the animation.
const elasticPeriod = 0.3

func easeInElastic(t float64) float64 {
	if t == 0 {
		return 0
	}
	if t == 1 {
		return 1
	}
	p := t - 1
	return -math.Pow(2, 10*p) * math.Sin((p-elasticPeriod/4)*(2*math.Pi)/elasticPeriod)
}

func easeOutElastic(t float64) float64 {
	if t == 0 {
		return 0
	}
	if t == 1 {
		return 1
	}
	return math.Pow(2, -10*t)*math.Sin((t-elasticPeriod/4)*(2*math.Pi)/elasticPeriod) + 1
}

// backOvershoot is the classic back-easing overshoot constant, chosen so
// the curve overshoots by 10%.
const backOvershoot = 1.70158

func easeInBack(t float64) float64 {
	return t * t * ((backOvershoot+1)*t - backOvershoot)
}

func easeOutBack(t float64) float64 {
	p := t - 1
	return p*p*((backOvershoot+1)*p+backOvershoot) + 1
}

func easeInBounce(t float64) float64 { return 1 - easeOutBounce(1-t) }

func easeOutBounce(t float64) float64 {
	switch {
	case t < 1.0/2.75:
		return 7.5625 * t * t
	case t < 2.0/2.75:
		p := t - 1.5/2.75
		return 7.5625*p*p + 0.75
	case t < 2.5/2.75:
		p := t - 2.25/2.75
		return 7.5625*p*p + 0.9375
	default:
		p := t - 2.625/2.75
		return 7.5625*p*p + 0.984375
	}
}
