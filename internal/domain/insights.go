package domain

import "time"

// DayStats summarizes the simulated day handed to the LLM.
// @Description Aggregate statistics over the simulated window.
type DayStats struct {
	// Time-weighted mean of the predicted derivative, mg/dL per hour
	MeanRatePerHour float64 `json:"mean_rate_per_hour" example:"1.8"`
	// Largest predicted fall, mg/dL per hour
	MinRatePerHour float64 `json:"min_rate_per_hour" example:"-48.2"`
	// Largest predicted rise, mg/dL per hour
	MaxRatePerHour float64 `json:"max_rate_per_hour" example:"62.0"`
	// Net predicted glucose change over the window, mg/dL
	NetChangeMgDL float64 `json:"net_change_mg_dl" example:"12.5"`
	// Hours of the window where the predicted derivative is below -30 mg/dL/hr
	SteepFallHours float64 `json:"steep_fall_hours" example:"0.7"`
	// Hours of the window where the predicted derivative is above +30 mg/dL/hr
	SteepRiseHours float64 `json:"steep_rise_hours" example:"1.2"`
}

// EventSummary is a compact description of one logged event for the LLM.
type EventSummary struct {
	Type    EventType  `json:"type"`
	StartAt time.Time  `json:"start_at"`
	EndAt   *time.Time `json:"end_at,omitempty"`
	// Human-scale magnitude: units for insulin, grams for food, mg/dL for readings
	Magnitude float64 `json:"magnitude"`
}

// InsightsContext is everything the LLM sees about the simulated day.
type InsightsContext struct {
	Window struct {
		From time.Time `json:"from"`
		To   time.Time `json:"to"`
	} `json:"window"`
	Profile      ProfileResponse    `json:"profile"`
	Stats        DayStats           `json:"stats"`
	Events       []EventSummary     `json:"events"`
	Measurements []MeasurementPoint `json:"measurements"`
}

// LLMInsightsOutput is the structured JSON the LLM must return.
type LLMInsightsOutput struct {
	// Summary of the simulated day (2-3 sentences)
	Summary string `json:"summary" example:"Your morning bolus timing matched breakfast well..."`
	// Observations about the curve and events (3-6 items)
	Observations []string `json:"observations" example:"[\"The steepest predicted fall follows the 12:30 correction bolus\"]"`
	// Actionable, non-medical guidance (3-5 items)
	Guidance []string `json:"guidance" example:"[\"Consider logging meals closer to their actual start time\"]"`
}

// InsightsResponse is the response body for the insights endpoint.
// @Description Simulated-day statistics plus LLM-generated narrative.
type InsightsResponse struct {
	Window struct {
		From time.Time `json:"from"`
		To   time.Time `json:"to"`
	} `json:"window"`
	// Aggregate statistics the narrative is based on
	Stats DayStats `json:"stats"`
	// LLM-generated insights
	Insights LLMInsightsOutput `json:"insights"`
}
