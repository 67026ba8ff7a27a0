package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/openglucose/glucose-tracker/internal/domain"
)

func TestUserService_Create(t *testing.T) {
	tests := []struct {
		name       string
		req        *domain.CreateUserRequest
		wantTarget float64
	}{
		{
			name:       "default glucose target",
			req:        &domain.CreateUserRequest{Timezone: "Europe/Budapest"},
			wantTarget: domain.DefaultTargetBGMgDL,
		},
		{
			name: "custom glucose target",
			req: &domain.CreateUserRequest{
				Timezone:     "UTC",
				TargetBGMgDL: floatPtr(120),
			},
			wantTarget: 120,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewMockUserRepository()
			svc := NewUserService(repo)

			user, err := svc.Create(context.Background(), tt.req)
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if user.Timezone != tt.req.Timezone {
				t.Errorf("Create() timezone = %v, want %v", user.Timezone, tt.req.Timezone)
			}
			if user.TargetBGMgDL != tt.wantTarget {
				t.Errorf("Create() target = %v, want %v", user.TargetBGMgDL, tt.wantTarget)
			}
			if user.ID == uuid.Nil {
				t.Error("Create() user ID should not be nil")
			}
		})
	}
}

func TestUserService_GetByID(t *testing.T) {
	repo := NewMockUserRepository()
	svc := NewUserService(repo)

	created, err := svc.Create(context.Background(), &domain.CreateUserRequest{Timezone: "America/New_York"})
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	tests := []struct {
		name    string
		id      uuid.UUID
		wantErr error
	}{
		{
			name:    "existing user",
			id:      created.ID,
			wantErr: nil,
		},
		{
			name:    "non-existing user",
			id:      uuid.New(),
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.GetByID(context.Background(), tt.id)
			if err != tt.wantErr {
				t.Errorf("GetByID() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr == nil && user == nil {
				t.Error("GetByID() returned nil user for existing ID")
			}
		})
	}
}
