package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultTargetBGMgDL is the target glucose applied when a user does not
// supply one.
const DefaultTargetBGMgDL = 110.0

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Timezone     string    `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	TargetBGMgDL float64   `gorm:"not null;default:110" json:"target_bg_mg_dl"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// CreateUserRequest is the request body for creating a user
type CreateUserRequest struct {
	// IANA timezone; event and setting times are interpreted in it
	Timezone string `json:"timezone" validate:"required,timezone" example:"Europe/Prague"`
	// Target blood glucose in mg/dL (defaults to 110)
	TargetBGMgDL *float64 `json:"target_bg_mg_dl,omitempty" validate:"omitempty,gte=70,lte=180" example:"110"`
}

// UserResponse is the response body for user endpoints
type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Timezone     string    `json:"timezone"`
	TargetBGMgDL float64   `json:"target_bg_mg_dl"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:           u.ID,
		Timezone:     u.Timezone,
		TargetBGMgDL: u.TargetBGMgDL,
		CreatedAt:    u.CreatedAt,
	}
}
