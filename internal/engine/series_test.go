package engine

import (
	"errors"
	"testing"
	"time"
)

func TestSettingSeries_SnapshotPrecedence(t *testing.T) {
	d1 := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	ss := NewSettingSeries(KindSensitivity)
	ss.AddBreakpoint(d1, 0, 50)
	ss.AddBreakpoint(d2, 0, 60)

	tests := []struct {
		name string
		at   time.Time
		want float64
	}{
		{"just after first snapshot", d1.Add(time.Second), 50},
		{"just before second snapshot", d2.Add(-time.Second), 50},
		{"exactly at second snapshot", d2, 60},
		{"well after second snapshot", d2.AddDate(0, 1, 0), 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ss.ValueAt(tt.at)
			if err != nil {
				t.Fatalf("ValueAt(%v) returned error: %v", tt.at, err)
			}
			if got != tt.want {
				t.Errorf("ValueAt(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestSettingSeries_NoActiveSnapshot(t *testing.T) {
	d1 := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	ss := NewSettingSeries(KindBasal)
	ss.AddBreakpoint(d1, 0, 1.0)

	if _, err := ss.ValueAt(d1.Add(-time.Second)); !errors.Is(err, ErrNoActiveSnapshot) {
		t.Fatalf("ValueAt before first snapshot = %v, want ErrNoActiveSnapshot", err)
	}

	empty := NewSettingSeries(KindBasal)
	if _, err := empty.LatestSnapshot(); !errors.Is(err, ErrNoActiveSnapshot) {
		t.Fatalf("LatestSnapshot on empty series = %v, want ErrNoActiveSnapshot", err)
	}
}

func TestSettingSeries_IdempotentConstruction(t *testing.T) {
	d1 := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	ss := NewSettingSeries(KindCarbRatio)
	for i := 0; i < 3; i++ {
		ss.AddBreakpoint(d1, 7*time.Hour, 15)
	}

	sched, err := ss.LatestSnapshot()
	if err != nil {
		t.Fatalf("LatestSnapshot returned error: %v", err)
	}
	if sched.Len() != 1 {
		t.Fatalf("repeated AddBreakpoint produced %d breakpoints, want 1", sched.Len())
	}
}

func TestSettingSeries_SnapshotsStaySorted(t *testing.T) {
	d1 := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	// Insert the later snapshot first.
	ss := NewSettingSeries(KindBasal)
	ss.AddBreakpoint(d2, 0, 2.0)
	ss.AddBreakpoint(d1, 0, 1.0)

	got, err := ss.ValueAt(d1.Add(12 * time.Hour))
	if err != nil {
		t.Fatalf("ValueAt returned error: %v", err)
	}
	if got != 1.0 {
		t.Errorf("ValueAt in the first snapshot window = %v, want 1.0", got)
	}

	latest, err := ss.LatestSnapshot()
	if err != nil {
		t.Fatalf("LatestSnapshot returned error: %v", err)
	}
	if v, _ := latest.Resolve(0); v != 2.0 {
		t.Errorf("latest snapshot value = %v, want 2.0", v)
	}
}

func TestTimeOfDay(t *testing.T) {
	at := time.Date(2024, 2, 1, 13, 30, 15, 0, time.UTC)
	want := 13*time.Hour + 30*time.Minute + 15*time.Second
	if got := TimeOfDay(at); got != want {
		t.Errorf("TimeOfDay = %v, want %v", got, want)
	}
}
