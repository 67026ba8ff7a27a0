package engine

import (
	"fmt"
	"sort"
	"time"
)

// DefaultFoodDurationHours is used when no food duration setting exists.
const DefaultFoodDurationHours = 2.0

// Profile derives the fundamental physiological quantities (insulin
// sensitivity, food sensitivity, endogenous liver glucose rate, action
// durations) from the indirect settings a pump or user actually records.
// Every derived quantity is a pure function of time, piecewise-constant
// between the union of the contributing breakpoint timelines.
//
// Build the profile fully before sharing it: reads are safe from any number
// of goroutines once construction is done, concurrent writes are not.
type Profile struct {
	sensitivity *SettingSeries // raw device value, positive mg/dL per unit
	carbRatio   *SettingSeries
	basal       *SettingSeries
	insulinDur  *SettingSeries
	foodDur     *SettingSeries

	foodDurationHours float64
}

func NewProfile() *Profile {
	return &Profile{foodDurationHours: DefaultFoodDurationHours}
}

// AddSensitivity records the two series needed to derive insulin and food
// sensitivity: the device-facing sensitivity (mg/dL per unit, positive as
// entered) and the carb-insulin ratio (grams per unit).
func (p *Profile) AddSensitivity(sensitivity, carbRatio *SettingSeries) error {
	if sensitivity == nil || carbRatio == nil {
		return fmt.Errorf("%w: sensitivity and carb ratio series are required", ErrProfileIncomplete)
	}
	p.sensitivity = sensitivity
	p.carbRatio = carbRatio
	return nil
}

// AddHourlyGlucose records the series needed to derive the endogenous liver
// glucose rate. Sensitivity must be added first, since the liver rate is
// inferred from the basal insulin the user needed to counteract it.
func (p *Profile) AddHourlyGlucose(basal, duration *SettingSeries) error {
	if p.sensitivity == nil {
		return fmt.Errorf("%w: add sensitivity before hourly glucose", ErrProfileIncomplete)
	}
	if basal == nil || duration == nil {
		return fmt.Errorf("%w: basal and duration series are required", ErrProfileIncomplete)
	}
	p.basal = basal
	p.insulinDur = duration
	return nil
}

// AddFoodDuration records a food action duration series. Without one the
// profile falls back to the constant set by SetFoodDuration.
func (p *Profile) AddFoodDuration(duration *SettingSeries) {
	p.foodDur = duration
}

// SetFoodDuration overrides the constant fallback food action duration.
func (p *Profile) SetFoodDuration(hours float64) {
	p.foodDurationHours = hours
}

// InsulinSensitivityAt is the glucose effect of one unit of insulin at t, in
// mg/dL per unit. Negative: insulin lowers glucose.
func (p *Profile) InsulinSensitivityAt(t time.Time) (float64, error) {
	if p.sensitivity == nil {
		return 0, fmt.Errorf("%w: sensitivity", ErrProfileIncomplete)
	}
	v, err := p.sensitivity.ValueAt(t)
	if err != nil {
		return 0, err
	}
	return -v, nil
}

// FoodSensitivityAt is the glucose effect of one gram of carbohydrate at t,
// in mg/dL per gram: sensitivity divided by carb ratio. Positive.
func (p *Profile) FoodSensitivityAt(t time.Time) (float64, error) {
	if p.sensitivity == nil || p.carbRatio == nil {
		return 0, fmt.Errorf("%w: sensitivity and carb ratio", ErrProfileIncomplete)
	}
	s, err := p.sensitivity.ValueAt(t)
	if err != nil {
		return 0, err
	}
	r, err := p.carbRatio.ValueAt(t)
	if err != nil {
		return 0, err
	}
	if r == 0 {
		return 0, fmt.Errorf("%w: carb ratio is zero at %s", ErrProfileIncomplete, t.Format(time.RFC3339))
	}
	return s / r, nil
}

// InsulinDurationAt is the insulin action duration in hours at t.
func (p *Profile) InsulinDurationAt(t time.Time) (float64, error) {
	if p.insulinDur == nil {
		return 0, fmt.Errorf("%w: insulin duration", ErrProfileIncomplete)
	}
	return p.insulinDur.ValueAt(t)
}

// FoodDurationAt is the food action duration in hours at t.
func (p *Profile) FoodDurationAt(t time.Time) (float64, error) {
	if p.foodDur != nil {
		return p.foodDur.ValueAt(t)
	}
	return p.foodDurationHours, nil
}

// LiverGlucoseRateAt is the endogenous glucose production rate at t in mg/dL
// per hour, positive: the rise the user's basal insulin was set to cancel.
func (p *Profile) LiverGlucoseRateAt(t time.Time) (float64, error) {
	sched, err := p.liverSchedule(t)
	if err != nil {
		return 0, err
	}
	return sched.Resolve(TimeOfDay(t))
}

// liverSchedule builds the derived liver timeline from the snapshots active
// at t. Breakpoints are the union of the contributing offsets; each value is
// basal(o) x sensitivity(o), placed half the insulin action duration later
// because the basal rate at a given time of day was chosen to counteract
// liver output peaking around Ta/2 afterwards.
func (p *Profile) liverSchedule(t time.Time) (*Schedule, error) {
	if p.basal == nil || p.insulinDur == nil {
		return nil, fmt.Errorf("%w: hourly glucose inputs", ErrProfileIncomplete)
	}
	basalSched, err := p.basal.ScheduleAt(t)
	if err != nil {
		return nil, err
	}
	durSched, err := p.insulinDur.ScheduleAt(t)
	if err != nil {
		return nil, err
	}
	sensSched, err := p.sensitivity.ScheduleAt(t)
	if err != nil {
		return nil, err
	}

	derived := NewSchedule()
	for _, off := range unionOffsets(basalSched, durSched, sensSched) {
		b, err := basalSched.Resolve(off)
		if err != nil {
			return nil, err
		}
		d, err := durSched.Resolve(off)
		if err != nil {
			return nil, err
		}
		s, err := sensSched.Resolve(off)
		if err != nil {
			return nil, err
		}
		shift := time.Duration(d / 2 * float64(time.Hour))
		derived.Upsert(off+shift, b*s)
	}
	return derived, nil
}

// unionOffsets merges the breakpoint offsets of the given schedules, sorted
// ascending with duplicates removed.
func unionOffsets(scheds ...*Schedule) []time.Duration {
	seen := make(map[time.Duration]bool)
	var out []time.Duration
	for _, sc := range scheds {
		for _, bp := range sc.Breakpoints() {
			if !seen[bp.Offset] {
				seen[bp.Offset] = true
				out = append(out, bp.Offset)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
