package audio

import "math"

// Curve selects how an automation point is approached from the previous point
type Curve int

const (
	CurveSet Curve = iota
	CurveLinear
	CurveExponential
)

// Point is one automation target in absolute device time
type Point struct {
	Time  float64
	Value float64
	Curve Curve
}

// Automation is a parameter schedule ordered by time.
// Set points jump at their time; ramps run from the previous point's time and value.
type Automation []Point

// Const returns a flat automation
func Const(v float64) Automation {
	return Automation{{Value: v, Curve: CurveSet}}
}

// Sweep returns a value set at start and ramped exponentially to end by start+length
func Sweep(from, to, start, length float64) Automation {
	return Automation{
		{Time: start, Value: from, Curve: CurveSet},
		{Time: start + length, Value: to, Curve: CurveExponential},
	}
}

// ValueAt evaluates the automation at absolute time t
func (a Automation) ValueAt(t float64) float64 {
	if len(a) == 0 {
		return 0
	}
	if t < a[0].Time {
		return a[0].Value
	}

	prev := a[0]
	for _, p := range a[1:] {
		if t < p.Time {
			return interpolate(prev, p, t)
		}
		prev = p
	}
	return prev.Value
}

// End returns the time of the last point
func (a Automation) End() float64 {
	if len(a) == 0 {
		return 0
	}
	return a[len(a)-1].Time
}

func interpolate(from, to Point, t float64) float64 {
	span := to.Time - from.Time
	if span <= 0 {
		return to.Value
	}
	frac := (t - from.Time) / span

	switch to.Curve {
	case CurveLinear:
		return from.Value + (to.Value-from.Value)*frac
	case CurveExponential:
		// Exponential ramps are undefined through zero; hold like a device would
		if from.Value == 0 || to.Value == 0 || (from.Value > 0) != (to.Value > 0) {
			return from.Value
		}
		return from.Value * math.Pow(to.Value/from.Value, frac)
	default:
		return from.Value
	}
}
