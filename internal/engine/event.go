package engine

import (
	"fmt"
	"time"
)

// Event is anything that produces (or masks) a blood-glucose effect.
// EffectRatePerHour reports the instantaneous mg/dL-per-hour contribution at
// t, zero outside the event's support. Implementations are immutable after
// construction and free of side effects.
type Event interface {
	EffectRatePerHour(t time.Time, p *Profile) (float64, error)
}

func hoursBetween(from, to time.Time) float64 {
	return to.Sub(from).Hours()
}

// Bolus is a single immediate insulin delivery.
type Bolus struct {
	At    time.Time
	Units float64
}

func NewBolus(at time.Time, units float64) (*Bolus, error) {
	if units < 0 {
		return nil, fmt.Errorf("%w: bolus units must be non-negative", ErrInvalidInterval)
	}
	return &Bolus{At: at, Units: units}, nil
}

func (b *Bolus) EffectRatePerHour(t time.Time, p *Profile) (float64, error) {
	dur, err := p.InsulinDurationAt(b.At)
	if err != nil {
		return 0, err
	}
	elapsed := hoursBetween(b.At, t)
	if elapsed < 0 || elapsed >= dur {
		return 0, nil
	}
	sens, err := p.InsulinSensitivityAt(b.At)
	if err != nil {
		return 0, err
	}
	return b.Units * sens * absorptionRatePerHour(elapsed, dur), nil
}

// SquareWaveBolus delivers its dose at a constant rate over SplitHours. Each
// infinitesimal delivery spawns its own action curve, so the effect rate is
// the convolution of the constant-rate delivery with the unit kernel:
//
//	rate(t) = (units/split) x (F(t) - F(t - split))
type SquareWaveBolus struct {
	At         time.Time
	SplitHours float64
	Units      float64
}

func NewSquareWaveBolus(at time.Time, splitHours, units float64) (*SquareWaveBolus, error) {
	if splitHours <= 0 {
		return nil, fmt.Errorf("%w: square wave split must be positive", ErrInvalidInterval)
	}
	if units < 0 {
		return nil, fmt.Errorf("%w: square wave units must be non-negative", ErrInvalidInterval)
	}
	return &SquareWaveBolus{At: at, SplitHours: splitHours, Units: units}, nil
}

func (b *SquareWaveBolus) EffectRatePerHour(t time.Time, p *Profile) (float64, error) {
	dur, err := p.InsulinDurationAt(b.At)
	if err != nil {
		return 0, err
	}
	elapsed := hoursBetween(b.At, t)
	if elapsed < 0 || elapsed >= b.SplitHours+dur {
		return 0, nil
	}
	sens, err := p.InsulinSensitivityAt(b.At)
	if err != nil {
		return 0, err
	}
	deliveredPerHour := b.Units / b.SplitHours
	return deliveredPerHour * sens *
		(absorbedFraction(elapsed, dur) - absorbedFraction(elapsed-b.SplitHours, dur)), nil
}

// DualWaveBolus splits a dose between an immediate bolus and a square wave
// starting at the same time. Its effect is exactly the sum of the two.
type DualWaveBolus struct {
	At            time.Time
	SplitHours    float64
	UpfrontUnits  float64
	ExtendedUnits float64

	upfront  *Bolus
	extended *SquareWaveBolus
}

func NewDualWaveBolus(at time.Time, splitHours, upfrontUnits, extendedUnits float64) (*DualWaveBolus, error) {
	upfront, err := NewBolus(at, upfrontUnits)
	if err != nil {
		return nil, err
	}
	extended, err := NewSquareWaveBolus(at, splitHours, extendedUnits)
	if err != nil {
		return nil, err
	}
	return &DualWaveBolus{
		At:            at,
		SplitHours:    splitHours,
		UpfrontUnits:  upfrontUnits,
		ExtendedUnits: extendedUnits,
		upfront:       upfront,
		extended:      extended,
	}, nil
}

func (b *DualWaveBolus) EffectRatePerHour(t time.Time, p *Profile) (float64, error) {
	u, err := b.upfront.EffectRatePerHour(t, p)
	if err != nil {
		return 0, err
	}
	e, err := b.extended.EffectRatePerHour(t, p)
	if err != nil {
		return 0, err
	}
	return u + e, nil
}

// Food is a carbohydrate intake. Same curve family as insulin, scaled by
// grams x food sensitivity, positive sign, parameterized by the food action
// duration.
type Food struct {
	At    time.Time
	Grams float64
}

func NewFood(at time.Time, grams float64) (*Food, error) {
	if grams < 0 {
		return nil, fmt.Errorf("%w: food grams must be non-negative", ErrInvalidInterval)
	}
	return &Food{At: at, Grams: grams}, nil
}

func (f *Food) EffectRatePerHour(t time.Time, p *Profile) (float64, error) {
	dur, err := p.FoodDurationAt(f.At)
	if err != nil {
		return 0, err
	}
	elapsed := hoursBetween(f.At, t)
	if elapsed < 0 || elapsed >= dur {
		return 0, nil
	}
	sens, err := p.FoodSensitivityAt(f.At)
	if err != nil {
		return 0, err
	}
	return f.Grams * sens * absorptionRatePerHour(elapsed, dur), nil
}

const (
	basalSlots     = 48
	basalSlotWidth = day / basalSlots
)

// BasalInsulin is scheduled pump basal delivery over an interval. The basal
// schedule is realized into a half-hour rate table at construction so the
// exact rates in use are inspectable.
type BasalInsulin struct {
	Start time.Time
	End   time.Time
	// BasalRates holds the realized delivery rate in units/hour for each
	// half-hour slot of the day, from midnight.
	BasalRates []float64
}

func NewBasalInsulin(start, end time.Time, basal *SettingSeries) (*BasalInsulin, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: basal interval end precedes start", ErrInvalidInterval)
	}
	sched, err := basal.ScheduleAt(start)
	if err != nil {
		return nil, err
	}
	rates := make([]float64, basalSlots)
	for i := range rates {
		v, err := sched.Resolve(time.Duration(i) * basalSlotWidth)
		if err != nil {
			return nil, err
		}
		rates[i] = v
	}
	return &BasalInsulin{Start: start, End: end, BasalRates: rates}, nil
}

// scheduledRate is the realized delivery rate at t, before any override.
func (b *BasalInsulin) scheduledRate(t time.Time) float64 {
	if t.Before(b.Start) || !t.Before(b.End) {
		return 0
	}
	return b.BasalRates[int(TimeOfDay(t)/basalSlotWidth)%basalSlots]
}

// EffectRatePerHour treats each slot as steady-state delivery with no onset
// delay: effect = rate x sensitivity. The steady-state assumption is
// isolated in effectOfRate so a delayed-onset curve can be swapped in.
func (b *BasalInsulin) EffectRatePerHour(t time.Time, p *Profile) (float64, error) {
	return b.effectOfRate(b.scheduledRate(t), t, p)
}

func (b *BasalInsulin) effectOfRate(rate float64, t time.Time, p *Profile) (float64, error) {
	if rate == 0 {
		return 0, nil
	}
	sens, err := p.InsulinSensitivityAt(t)
	if err != nil {
		return 0, err
	}
	return rate * sens, nil
}

// TempBasal overrides the scheduled basal delivery with a constant rate for
// its interval. It contributes nothing by itself; AggregateRate applies it
// to overlapping BasalInsulin events.
type TempBasal struct {
	Start       time.Time
	End         time.Time
	RatePerHour float64
}

func NewTempBasal(start, end time.Time, ratePerHour float64) (*TempBasal, error) {
	if !end.After(start) {
		return nil, fmt.Errorf("%w: temp basal interval must have positive length", ErrInvalidInterval)
	}
	if ratePerHour < 0 {
		return nil, fmt.Errorf("%w: temp basal rate must be non-negative", ErrInvalidInterval)
	}
	return &TempBasal{Start: start, End: end, RatePerHour: ratePerHour}, nil
}

func (tb *TempBasal) covers(t time.Time) bool {
	return !t.Before(tb.Start) && t.Before(tb.End)
}

func (tb *TempBasal) EffectRatePerHour(time.Time, *Profile) (float64, error) {
	return 0, nil
}

// Suspend forces basal delivery to zero for its interval. It takes
// precedence over any TempBasal it overlaps.
type Suspend struct {
	Start time.Time
	End   time.Time
}

func NewSuspend(start, end time.Time) (*Suspend, error) {
	if !end.After(start) {
		return nil, fmt.Errorf("%w: suspend interval must have positive length", ErrInvalidInterval)
	}
	return &Suspend{Start: start, End: end}, nil
}

func (s *Suspend) covers(t time.Time) bool {
	return !t.Before(s.Start) && t.Before(s.End)
}

func (s *Suspend) EffectRatePerHour(time.Time, *Profile) (float64, error) {
	return 0, nil
}

const (
	liverSmearHalfWidth = time.Hour
	liverSmearStep      = 15 * time.Minute
)

// LiverBasalGlucose is the endogenous background glucose production. It is
// always active; its rate comes entirely from the derived profile, averaged
// over +/- one hour at 15-minute granularity to smooth the piecewise steps
// of the settings it is inferred from.
type LiverBasalGlucose struct{}

func NewLiverBasalGlucose() *LiverBasalGlucose {
	return &LiverBasalGlucose{}
}

func (l *LiverBasalGlucose) EffectRatePerHour(t time.Time, p *Profile) (float64, error) {
	var sum float64
	var n int
	for off := -liverSmearHalfWidth; off <= liverSmearHalfWidth; off += liverSmearStep {
		v, err := p.LiverGlucoseRateAt(t.Add(off))
		if err != nil {
			return 0, err
		}
		sum += v
		n++
	}
	return sum / float64(n), nil
}

// BGMeasurement is a ground-truth glucose reading over an observation
// interval. It is an input for comparison against the simulated prediction
// and never contributes to the curve.
type BGMeasurement struct {
	Start     time.Time
	End       time.Time
	ValueMgDL float64
}

func NewBGMeasurement(start, end time.Time, valueMgDL float64) (*BGMeasurement, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: measurement interval end precedes start", ErrInvalidInterval)
	}
	if valueMgDL < 0 {
		return nil, fmt.Errorf("%w: measurement value must be non-negative", ErrInvalidInterval)
	}
	return &BGMeasurement{Start: start, End: end, ValueMgDL: valueMgDL}, nil
}

func (m *BGMeasurement) EffectRatePerHour(time.Time, *Profile) (float64, error) {
	return 0, nil
}
