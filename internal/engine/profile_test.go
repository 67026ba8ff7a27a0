package engine

import (
	"errors"
	"testing"
	"time"
)

var profileEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// flatProfile builds a profile with constant settings effective from
// profileEpoch: sensitivity 60 mg/dL/u, carb ratio 15 g/u, basal 1.0 u/hr,
// insulin duration 4h.
func flatProfile(t *testing.T) *Profile {
	t.Helper()
	return customProfile(t, 60, 15, 1.0, 4)
}

func customProfile(t *testing.T, sensitivity, carbRatio, basal, durationHours float64) *Profile {
	t.Helper()

	sens := NewSettingSeries(KindSensitivity)
	sens.AddBreakpoint(profileEpoch, 0, sensitivity)
	carb := NewSettingSeries(KindCarbRatio)
	carb.AddBreakpoint(profileEpoch, 0, carbRatio)
	bas := NewSettingSeries(KindBasal)
	bas.AddBreakpoint(profileEpoch, 0, basal)
	dur := NewSettingSeries(KindInsulinDuration)
	dur.AddBreakpoint(profileEpoch, 0, durationHours)

	p := NewProfile()
	if err := p.AddSensitivity(sens, carb); err != nil {
		t.Fatalf("AddSensitivity returned error: %v", err)
	}
	if err := p.AddHourlyGlucose(bas, dur); err != nil {
		t.Fatalf("AddHourlyGlucose returned error: %v", err)
	}
	return p
}

func TestProfile_DerivedSensitivityIdentity(t *testing.T) {
	p := flatProfile(t)
	at := profileEpoch.AddDate(0, 0, 9).Add(8 * time.Hour)

	sens, err := p.InsulinSensitivityAt(at)
	if err != nil {
		t.Fatalf("InsulinSensitivityAt returned error: %v", err)
	}
	if sens != -60 {
		t.Errorf("InsulinSensitivityAt = %v, want -60 (negative-signed)", sens)
	}

	food, err := p.FoodSensitivityAt(at)
	if err != nil {
		t.Fatalf("FoodSensitivityAt returned error: %v", err)
	}
	if food != 4.0 {
		t.Errorf("FoodSensitivityAt = %v, want 60/15 = 4.0", food)
	}
}

func TestProfile_LiverGlucoseSignConvention(t *testing.T) {
	// Basal 1.0 u/hr against sensitivity -60 mg/dL/u implies the liver was
	// producing +60 mg/dL/hr.
	p := flatProfile(t)
	at := profileEpoch.AddDate(0, 0, 9).Add(14 * time.Hour)

	liver, err := p.LiverGlucoseRateAt(at)
	if err != nil {
		t.Fatalf("LiverGlucoseRateAt returned error: %v", err)
	}
	if liver != 60 {
		t.Errorf("LiverGlucoseRateAt = %v, want +60 (endogenous rise)", liver)
	}
}

func TestProfile_LiverTimelineShiftedByHalfDuration(t *testing.T) {
	// Basal steps from 1.0 to 2.0 u/hr at 08:00 with a 4h insulin duration:
	// the derived liver timeline steps 2h later, at 10:00.
	sens := NewSettingSeries(KindSensitivity)
	sens.AddBreakpoint(profileEpoch, 0, 50)
	carb := NewSettingSeries(KindCarbRatio)
	carb.AddBreakpoint(profileEpoch, 0, 10)
	bas := NewSettingSeries(KindBasal)
	bas.AddBreakpoint(profileEpoch, 0, 1.0)
	bas.AddBreakpoint(profileEpoch, 8*time.Hour, 2.0)
	dur := NewSettingSeries(KindInsulinDuration)
	dur.AddBreakpoint(profileEpoch, 0, 4)

	p := NewProfile()
	if err := p.AddSensitivity(sens, carb); err != nil {
		t.Fatalf("AddSensitivity: %v", err)
	}
	if err := p.AddHourlyGlucose(bas, dur); err != nil {
		t.Fatalf("AddHourlyGlucose: %v", err)
	}

	day := profileEpoch.AddDate(0, 0, 9)
	tests := []struct {
		name string
		at   time.Time
		want float64
	}{
		{"before shifted step", day.Add(9 * time.Hour), 50},
		{"just before 10:00", day.Add(9*time.Hour + 59*time.Minute), 50},
		{"at shifted step", day.Add(10 * time.Hour), 100},
		{"afternoon", day.Add(15 * time.Hour), 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.LiverGlucoseRateAt(tt.at)
			if err != nil {
				t.Fatalf("LiverGlucoseRateAt(%v): %v", tt.at, err)
			}
			if got != tt.want {
				t.Errorf("LiverGlucoseRateAt(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestProfile_MergedBreakpointsFollowEitherInput(t *testing.T) {
	// Sensitivity changes at 06:00, carb ratio at 12:00: the derived food
	// sensitivity must step at both offsets.
	sens := NewSettingSeries(KindSensitivity)
	sens.AddBreakpoint(profileEpoch, 0, 60)
	sens.AddBreakpoint(profileEpoch, 6*time.Hour, 30)
	carb := NewSettingSeries(KindCarbRatio)
	carb.AddBreakpoint(profileEpoch, 0, 15)
	carb.AddBreakpoint(profileEpoch, 12*time.Hour, 10)

	p := NewProfile()
	if err := p.AddSensitivity(sens, carb); err != nil {
		t.Fatalf("AddSensitivity: %v", err)
	}

	day := profileEpoch.AddDate(0, 0, 9)
	tests := []struct {
		name string
		at   time.Time
		want float64
	}{
		{"early morning", day.Add(3 * time.Hour), 4.0},  // 60/15
		{"after sensitivity step", day.Add(9 * time.Hour), 2.0}, // 30/15
		{"after carb ratio step", day.Add(15 * time.Hour), 3.0}, // 30/10
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.FoodSensitivityAt(tt.at)
			if err != nil {
				t.Fatalf("FoodSensitivityAt(%v): %v", tt.at, err)
			}
			if got != tt.want {
				t.Errorf("FoodSensitivityAt(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestProfile_Incomplete(t *testing.T) {
	at := profileEpoch.AddDate(0, 0, 9)

	p := NewProfile()
	if _, err := p.InsulinSensitivityAt(at); !errors.Is(err, ErrProfileIncomplete) {
		t.Errorf("InsulinSensitivityAt on empty profile = %v, want ErrProfileIncomplete", err)
	}
	if _, err := p.FoodSensitivityAt(at); !errors.Is(err, ErrProfileIncomplete) {
		t.Errorf("FoodSensitivityAt on empty profile = %v, want ErrProfileIncomplete", err)
	}
	if _, err := p.LiverGlucoseRateAt(at); !errors.Is(err, ErrProfileIncomplete) {
		t.Errorf("LiverGlucoseRateAt on empty profile = %v, want ErrProfileIncomplete", err)
	}
	if _, err := p.InsulinDurationAt(at); !errors.Is(err, ErrProfileIncomplete) {
		t.Errorf("InsulinDurationAt on empty profile = %v, want ErrProfileIncomplete", err)
	}

	// Hourly glucose requires sensitivity first.
	bas := NewSettingSeries(KindBasal)
	bas.AddBreakpoint(profileEpoch, 0, 1.0)
	dur := NewSettingSeries(KindInsulinDuration)
	dur.AddBreakpoint(profileEpoch, 0, 4)
	if err := p.AddHourlyGlucose(bas, dur); !errors.Is(err, ErrProfileIncomplete) {
		t.Errorf("AddHourlyGlucose before AddSensitivity = %v, want ErrProfileIncomplete", err)
	}
}

func TestProfile_FoodDurationFallback(t *testing.T) {
	p := flatProfile(t)
	at := profileEpoch.AddDate(0, 0, 9)

	got, err := p.FoodDurationAt(at)
	if err != nil {
		t.Fatalf("FoodDurationAt: %v", err)
	}
	if got != DefaultFoodDurationHours {
		t.Errorf("FoodDurationAt = %v, want default %v", got, DefaultFoodDurationHours)
	}

	p.SetFoodDuration(3)
	if got, _ := p.FoodDurationAt(at); got != 3 {
		t.Errorf("FoodDurationAt after SetFoodDuration = %v, want 3", got)
	}

	fd := NewSettingSeries(KindFoodDuration)
	fd.AddBreakpoint(profileEpoch, 0, 2.5)
	p.AddFoodDuration(fd)
	if got, _ := p.FoodDurationAt(at); got != 2.5 {
		t.Errorf("FoodDurationAt with series = %v, want 2.5", got)
	}
}
