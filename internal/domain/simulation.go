package domain

import "time"

// SamplePoint is one point of the aggregate predicted glucose derivative
// curve.
// @Description One (time, rate) sample of the predicted blood-glucose derivative.
type SamplePoint struct {
	// Sample time (user-local)
	Time time.Time `json:"time" example:"2024-01-10T08:00:00Z"`
	// Predicted blood-glucose change rate in mg/dL per hour
	RatePerHour float64 `json:"rate_per_hour" example:"-12.4"`
}

// MeasurementPoint is a logged BG reading returned alongside the simulated
// curve for comparison.
type MeasurementPoint struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	ValueMgDL float64   `json:"value_mg_dl" example:"145"`
}

// SimulationResponse is the sampled aggregate effect curve for a window.
// @Description Simulated blood-glucose derivative over a time grid, with the realized basal rate table and any BG measurements in the window.
type SimulationResponse struct {
	Window struct {
		From time.Time `json:"from"`
		To   time.Time `json:"to"`
	} `json:"window"`
	// Grid step in minutes
	StepMinutes int `json:"step_minutes" example:"10"`
	// Aggregate predicted derivative samples
	Samples []SamplePoint `json:"samples"`
	// Realized scheduled basal rates (units/hour) per half-hour slot from midnight
	BasalRates []float64 `json:"basal_rates"`
	// BG measurements inside the window, for comparison against the prediction
	Measurements []MeasurementPoint `json:"measurements"`
}

// SimulationFilter contains query parameters for the simulation endpoint.
type SimulationFilter struct {
	From        time.Time
	To          time.Time
	StepMinutes int
}
