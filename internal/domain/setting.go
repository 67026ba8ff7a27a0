package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/openglucose/glucose-tracker/internal/engine"
)

// SettingKind identifies which pump/user setting a breakpoint belongs to.
// @Description Setting category: SENSITIVITY (mg/dL per unit), CARB_RATIO (g per unit), INSULIN_DURATION (hours), FOOD_DURATION (hours), BASAL (units per hour).
type SettingKind string

const (
	SettingKindSensitivity     SettingKind = "SENSITIVITY"
	SettingKindCarbRatio       SettingKind = "CARB_RATIO"
	SettingKindInsulinDuration SettingKind = "INSULIN_DURATION"
	SettingKindFoodDuration    SettingKind = "FOOD_DURATION"
	SettingKindBasal           SettingKind = "BASAL"
)

// EngineKind maps the stored kind onto the engine's setting enumeration.
func (k SettingKind) EngineKind() engine.Kind {
	return engine.Kind(k)
}

// SettingEntry is one stored schedule breakpoint: the value of a setting from
// a time-of-day offset onward, inside the snapshot effective from
// EffectiveFrom. History is append-only; re-sending an identical breakpoint
// is a no-op upsert.
type SettingEntry struct {
	ID            uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID   `gorm:"type:uuid;not null;index:idx_setting_user_kind;uniqueIndex:idx_setting_breakpoint" json:"user_id"`
	Kind          SettingKind `gorm:"type:varchar(20);not null;index:idx_setting_user_kind;uniqueIndex:idx_setting_breakpoint" json:"kind"`
	EffectiveFrom time.Time   `gorm:"not null;uniqueIndex:idx_setting_breakpoint" json:"effective_from"`
	OffsetHours   float64     `gorm:"not null;uniqueIndex:idx_setting_breakpoint" json:"offset_hours"`
	Value         float64     `gorm:"not null" json:"value"`
	CreatedAt     time.Time   `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SettingEntry) TableName() string {
	return "setting_entries"
}

// CreateSettingRequest is the request body for recording a setting breakpoint.
// @Description One schedule breakpoint: the setting value from offset_hours (since midnight) onward, in the snapshot effective from effective_from.
type CreateSettingRequest struct {
	// Setting category
	Kind SettingKind `json:"kind" validate:"required,oneof=SENSITIVITY CARB_RATIO INSULIN_DURATION FOOD_DURATION BASAL" example:"SENSITIVITY"`
	// Timestamp from which this snapshot is active (RFC3339)
	EffectiveFrom time.Time `json:"effective_from" validate:"required" example:"2024-01-01T00:00:00Z"`
	// Time-of-day offset in fractional hours since midnight
	OffsetHours float64 `json:"offset_hours" validate:"gte=0,lt=24" example:"6.5"`
	// Setting value in the kind's unit
	Value *float64 `json:"value" validate:"required,gte=0" example:"55"`
}

// SettingResponse is the response body for setting endpoints.
type SettingResponse struct {
	ID            uuid.UUID   `json:"id"`
	UserID        uuid.UUID   `json:"user_id"`
	Kind          SettingKind `json:"kind"`
	EffectiveFrom time.Time   `json:"effective_from"`
	OffsetHours   float64     `json:"offset_hours"`
	Value         float64     `json:"value"`
	CreatedAt     time.Time   `json:"created_at"`
}

func (s *SettingEntry) ToResponse() SettingResponse {
	return SettingResponse{
		ID:            s.ID,
		UserID:        s.UserID,
		Kind:          s.Kind,
		EffectiveFrom: s.EffectiveFrom,
		OffsetHours:   s.OffsetHours,
		Value:         s.Value,
		CreatedAt:     s.CreatedAt,
	}
}

// SettingFilter contains filter parameters for listing setting entries.
type SettingFilter struct {
	Kind *SettingKind
}

// ProfileResponse reports the derived physiological quantities at one
// point in time.
// @Description Derived profile quantities resolved at a single instant.
type ProfileResponse struct {
	// Query time (user-local)
	At time.Time `json:"at" example:"2024-01-10T08:00:00Z"`
	// mg/dL per unit of insulin, negative (insulin lowers glucose)
	InsulinSensitivity float64 `json:"insulin_sensitivity" example:"-55"`
	// mg/dL per gram of carbohydrate
	FoodSensitivity float64 `json:"food_sensitivity" example:"4.2"`
	// Endogenous glucose production, mg/dL per hour
	LiverGlucoseRate float64 `json:"liver_glucose_rate" example:"55"`
	// Insulin action duration in hours
	InsulinDurationHours float64 `json:"insulin_duration_hours" example:"4"`
	// Food action duration in hours
	FoodDurationHours float64 `json:"food_duration_hours" example:"2"`
}
