package entrance

import "math"

// Ease maps linear progress in [0, 1] to eased progress. Ease(0) must be 0 and Ease(1) must be 1.
type Ease func(p float32) float32

// Linear leaves progress unchanged.
func Linear(p float32) float32 {
	return p
}

// ElasticOut returns an elastic ease-out with the given amplitude and period. The curve
// overshoots 1 and settles with a decaying oscillation.
//
// Parameters:
//   - amplitude: peak overshoot, clamped to at least 1
//   - period: oscillation period in progress units
//
// Returns:
//   - Ease: the easing function
func ElasticOut(amplitude, period float32) Ease {
	if amplitude < 1 {
		amplitude = 1
	}
	if period <= 0 {
		period = 0.3
	}
	a := float64(amplitude)
	per := float64(period)
	shift := per / (2 * math.Pi) * math.Asin(1/a)

	return func(p float32) float32 {
		if p <= 0 {
			return 0
		}
		if p >= 1 {
			return 1
		}
		x := float64(p)
		return float32(a*math.Pow(2, -10*x)*math.Sin((x-shift)*(2*math.Pi)/per) + 1)
	}
}
