package engine

import "math"

// The action curve family used for both insulin- and food-class events: the
// fraction of a dose absorbed x hours after delivery is
//
//	F(x) = 1 - 0.05^((x/Ta)^2)
//
// with Ta the characteristic time of the curve. Ta is stretched relative to
// the configured action duration so the whole tail fits inside the support:
// with Ta = duration/1.5 the residual past the support is ~0.1% and the rate
// at both edges is effectively zero.
const actionCurveStretch = 1.5

// absorbedFraction is the cumulative fraction of a dose absorbed elapsed
// hours after delivery, clamped to [0,1] over a support of durationHours.
func absorbedFraction(elapsedHours, durationHours float64) float64 {
	if elapsedHours <= 0 || durationHours <= 0 {
		return 0
	}
	if elapsedHours >= durationHours {
		return 1
	}
	ta := durationHours / actionCurveStretch
	x := elapsedHours / ta
	return 1 - math.Pow(0.05, x*x)
}

// absorptionRatePerHour is the instantaneous absorption rate, in fraction of
// the dose per hour: the derivative of absorbedFraction.
func absorptionRatePerHour(elapsedHours, durationHours float64) float64 {
	if elapsedHours < 0 || durationHours <= 0 || elapsedHours >= durationHours {
		return 0
	}
	ta := durationHours / actionCurveStretch
	x := elapsedHours / ta
	return math.Log(20) * 2 * elapsedHours / (ta * ta) * math.Pow(0.05, x*x)
}
