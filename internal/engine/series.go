package engine

import (
	"sort"
	"time"
)

// Kind identifies which physiological or device setting a series stores.
type Kind string

const (
	// KindSensitivity is insulin sensitivity in mg/dL per unit, as entered
	// on the device (positive).
	KindSensitivity Kind = "SENSITIVITY"
	// KindCarbRatio is the carb-insulin ratio in grams per unit.
	KindCarbRatio Kind = "CARB_RATIO"
	// KindInsulinDuration is the insulin action duration in hours.
	KindInsulinDuration Kind = "INSULIN_DURATION"
	// KindFoodDuration is the food action duration in hours.
	KindFoodDuration Kind = "FOOD_DURATION"
	// KindBasal is the scheduled basal delivery rate in units per hour.
	KindBasal Kind = "BASAL"
)

type snapshot struct {
	effectiveFrom time.Time
	schedule      *Schedule
}

// SettingSeries stores the history of one setting as an append-only sequence
// of snapshots, each a complete recurring daily schedule active from its
// effective-from timestamp forward.
//
// Construction is not safe for concurrent use; a fully built series may be
// read from any number of goroutines.
type SettingSeries struct {
	kind      Kind
	snapshots []snapshot
}

func NewSettingSeries(kind Kind) *SettingSeries {
	return &SettingSeries{kind: kind}
}

func (ss *SettingSeries) Kind() Kind {
	return ss.kind
}

// getOrCreateSnapshot returns the schedule effective from exactly the given
// timestamp, creating an empty one in sorted position when absent.
func (ss *SettingSeries) getOrCreateSnapshot(effectiveFrom time.Time) *Schedule {
	i := sort.Search(len(ss.snapshots), func(i int) bool {
		return !ss.snapshots[i].effectiveFrom.Before(effectiveFrom)
	})
	if i < len(ss.snapshots) && ss.snapshots[i].effectiveFrom.Equal(effectiveFrom) {
		return ss.snapshots[i].schedule
	}
	ss.snapshots = append(ss.snapshots, snapshot{})
	copy(ss.snapshots[i+1:], ss.snapshots[i:])
	ss.snapshots[i] = snapshot{effectiveFrom: effectiveFrom, schedule: NewSchedule()}
	return ss.snapshots[i].schedule
}

// AddBreakpoint upserts a breakpoint in the snapshot effective from the given
// timestamp, creating the snapshot when absent. Re-adding an identical
// breakpoint leaves the series unchanged.
func (ss *SettingSeries) AddBreakpoint(effectiveFrom time.Time, offset time.Duration, value float64) {
	ss.getOrCreateSnapshot(effectiveFrom).Upsert(offset, value)
}

// LatestSnapshot returns the most recent schedule on record.
func (ss *SettingSeries) LatestSnapshot() (*Schedule, error) {
	if len(ss.snapshots) == 0 {
		return nil, ErrNoActiveSnapshot
	}
	return ss.snapshots[len(ss.snapshots)-1].schedule, nil
}

// ScheduleAt returns the snapshot active at an absolute time: the one with
// the latest effective-from <= t.
func (ss *SettingSeries) ScheduleAt(t time.Time) (*Schedule, error) {
	i := sort.Search(len(ss.snapshots), func(i int) bool {
		return ss.snapshots[i].effectiveFrom.After(t)
	})
	if i == 0 {
		return nil, ErrNoActiveSnapshot
	}
	return ss.snapshots[i-1].schedule, nil
}

// ValueAt resolves the setting value in effect at an absolute time.
func (ss *SettingSeries) ValueAt(t time.Time) (float64, error) {
	sched, err := ss.ScheduleAt(t)
	if err != nil {
		return 0, err
	}
	return sched.Resolve(TimeOfDay(t))
}

// TimeOfDay is the clock-time offset since midnight of t, in t's location.
func TimeOfDay(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
}
