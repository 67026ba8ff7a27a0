package engine

import (
	"sort"
	"time"
)

// day is the cycle length of a recurring schedule.
const day = 24 * time.Hour

// Breakpoint is a single (time-of-day offset, value) entry in a recurring
// daily schedule. Offsets count from midnight.
type Breakpoint struct {
	Offset time.Duration
	Value  float64
}

// Schedule is one recurring daily setting: breakpoints sorted ascending by
// offset, unique offsets, cyclic at 24h. The breakpoint with the largest
// offset <= the queried time of day governs; before the first breakpoint the
// last breakpoint of the previous day applies.
type Schedule struct {
	points []Breakpoint
}

func NewSchedule() *Schedule {
	return &Schedule{}
}

// Upsert inserts a breakpoint, or overwrites the value of an existing one at
// the same offset. Sort order is maintained.
func (s *Schedule) Upsert(offset time.Duration, value float64) {
	offset = normalizeOffset(offset)
	i := sort.Search(len(s.points), func(i int) bool { return s.points[i].Offset >= offset })
	if i < len(s.points) && s.points[i].Offset == offset {
		s.points[i].Value = value
		return
	}
	s.points = append(s.points, Breakpoint{})
	copy(s.points[i+1:], s.points[i:])
	s.points[i] = Breakpoint{Offset: offset, Value: value}
}

// Resolve returns the value in effect at the given time of day.
func (s *Schedule) Resolve(timeOfDay time.Duration) (float64, error) {
	if len(s.points) == 0 {
		return 0, ErrEmptySchedule
	}
	tod := normalizeOffset(timeOfDay)
	i := sort.Search(len(s.points), func(i int) bool { return s.points[i].Offset > tod })
	if i == 0 {
		// Cyclic wrap: the previous day's last breakpoint still applies.
		return s.points[len(s.points)-1].Value, nil
	}
	return s.points[i-1].Value, nil
}

// Breakpoints returns a copy of the breakpoints in ascending offset order.
func (s *Schedule) Breakpoints() []Breakpoint {
	out := make([]Breakpoint, len(s.points))
	copy(out, s.points)
	return out
}

func (s *Schedule) Len() int {
	return len(s.points)
}

func normalizeOffset(d time.Duration) time.Duration {
	d %= day
	if d < 0 {
		d += day
	}
	return d
}
