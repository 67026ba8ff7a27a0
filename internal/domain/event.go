package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType represents the category of a logged glucose-affecting event.
// @Description Event category. Scheduled basal delivery is not logged as an event; it is derived from the BASAL setting series for the simulated window.
type EventType string

const (
	// EventBolus is a single immediate insulin delivery.
	EventBolus EventType = "BOLUS"
	// EventSquareWaveBolus spreads a dose evenly over split_hours.
	EventSquareWaveBolus EventType = "SQUARE_WAVE_BOLUS"
	// EventDualWaveBolus splits a dose between an immediate and an extended portion.
	EventDualWaveBolus EventType = "DUAL_WAVE_BOLUS"
	// EventFood is a carbohydrate intake in grams.
	EventFood EventType = "FOOD"
	// EventTempBasal overrides the scheduled basal rate for [start_at, end_at).
	EventTempBasal EventType = "TEMP_BASAL"
	// EventSuspend forces basal delivery to zero for [start_at, end_at).
	EventSuspend EventType = "SUSPEND"
	// EventBGMeasurement is a ground-truth glucose reading, never a contributor.
	EventBGMeasurement EventType = "BG_MEASUREMENT"
)

// EventRecord is an immutable logged event. Only the fields proper to the
// event's type are set; the rest stay NULL.
type EventRecord struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID  uuid.UUID  `gorm:"type:uuid;not null;index:idx_events_user_start" json:"user_id"`
	Type    EventType  `gorm:"type:varchar(20);not null" json:"type"`
	StartAt time.Time  `gorm:"not null;index:idx_events_user_start,sort:desc" json:"start_at"`
	EndAt   *time.Time `json:"end_at,omitempty"`

	Units         *float64 `json:"units,omitempty"`
	Grams         *float64 `json:"grams,omitempty"`
	SplitHours    *float64 `json:"split_hours,omitempty"`
	UpfrontUnits  *float64 `json:"upfront_units,omitempty"`
	ExtendedUnits *float64 `json:"extended_units,omitempty"`
	RatePerHour   *float64 `json:"rate_per_hour,omitempty"`
	ValueMgDL     *float64 `json:"value_mg_dl,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (EventRecord) TableName() string {
	return "event_records"
}

// CreateEventRequest is the request body for logging an event. Which fields
// are required depends on type; the service validates the combination by
// constructing the corresponding engine event.
// @Description Event payload. Required fields by type: BOLUS units; SQUARE_WAVE_BOLUS units+split_hours; DUAL_WAVE_BOLUS upfront_units+extended_units+split_hours; FOOD grams; TEMP_BASAL end_at+rate_per_hour; SUSPEND end_at; BG_MEASUREMENT end_at+value_mg_dl.
type CreateEventRequest struct {
	// Event category
	Type EventType `json:"type" validate:"required,oneof=BOLUS SQUARE_WAVE_BOLUS DUAL_WAVE_BOLUS FOOD TEMP_BASAL SUSPEND BG_MEASUREMENT" example:"BOLUS"`
	// Event start time (RFC3339, interpreted in the user's timezone)
	StartAt time.Time `json:"start_at" validate:"required" example:"2024-01-10T08:00:00Z"`
	// Interval end for TEMP_BASAL, SUSPEND and BG_MEASUREMENT
	EndAt *time.Time `json:"end_at,omitempty" validate:"omitempty,gtfield=StartAt"`
	// Insulin dose in units (BOLUS, SQUARE_WAVE_BOLUS)
	Units *float64 `json:"units,omitempty" validate:"omitempty,gte=0" example:"3.5"`
	// Carbohydrates in grams (FOOD)
	Grams *float64 `json:"grams,omitempty" validate:"omitempty,gte=0" example:"45"`
	// Extended delivery window in hours (SQUARE_WAVE_BOLUS, DUAL_WAVE_BOLUS)
	SplitHours *float64 `json:"split_hours,omitempty" validate:"omitempty,gt=0" example:"3"`
	// Immediate portion in units (DUAL_WAVE_BOLUS)
	UpfrontUnits *float64 `json:"upfront_units,omitempty" validate:"omitempty,gte=0" example:"2"`
	// Extended portion in units (DUAL_WAVE_BOLUS)
	ExtendedUnits *float64 `json:"extended_units,omitempty" validate:"omitempty,gte=0" example:"2"`
	// Override delivery rate in units/hour (TEMP_BASAL)
	RatePerHour *float64 `json:"rate_per_hour,omitempty" validate:"omitempty,gte=0" example:"0.5"`
	// Glucose reading in mg/dL (BG_MEASUREMENT)
	ValueMgDL *float64 `json:"value_mg_dl,omitempty" validate:"omitempty,gte=0" example:"145"`
}

// EventResponse is the response body for event endpoints.
type EventResponse struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	Type          EventType  `json:"type"`
	StartAt       time.Time  `json:"start_at"`
	EndAt         *time.Time `json:"end_at,omitempty"`
	Units         *float64   `json:"units,omitempty"`
	Grams         *float64   `json:"grams,omitempty"`
	SplitHours    *float64   `json:"split_hours,omitempty"`
	UpfrontUnits  *float64   `json:"upfront_units,omitempty"`
	ExtendedUnits *float64   `json:"extended_units,omitempty"`
	RatePerHour   *float64   `json:"rate_per_hour,omitempty"`
	ValueMgDL     *float64   `json:"value_mg_dl,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func (e *EventRecord) ToResponse() EventResponse {
	return EventResponse{
		ID:            e.ID,
		UserID:        e.UserID,
		Type:          e.Type,
		StartAt:       e.StartAt,
		EndAt:         e.EndAt,
		Units:         e.Units,
		Grams:         e.Grams,
		SplitHours:    e.SplitHours,
		UpfrontUnits:  e.UpfrontUnits,
		ExtendedUnits: e.ExtendedUnits,
		RatePerHour:   e.RatePerHour,
		ValueMgDL:     e.ValueMgDL,
		CreatedAt:     e.CreatedAt,
	}
}

// EventListResponse is the response body for listing events.
// @Description Events with cursor pagination, newest first.
type EventListResponse struct {
	// Array of event records
	Data []EventResponse `json:"data"`
	// Pagination metadata
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor pagination metadata.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// EventFilter contains filter parameters for listing events.
type EventFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}
