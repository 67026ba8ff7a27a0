package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/openglucose/glucose-tracker/internal/domain"
)

func TestEventService_Create_FieldCombinations(t *testing.T) {
	start := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	tests := []struct {
		name    string
		req     *domain.CreateEventRequest
		wantErr error
	}{
		{
			name: "bolus",
			req:  &domain.CreateEventRequest{Type: domain.EventBolus, StartAt: start, Units: floatPtr(3.5)},
		},
		{
			name:    "bolus without units",
			req:     &domain.CreateEventRequest{Type: domain.EventBolus, StartAt: start},
			wantErr: domain.ErrInvalidEvent,
		},
		{
			name: "square wave bolus",
			req: &domain.CreateEventRequest{
				Type: domain.EventSquareWaveBolus, StartAt: start,
				Units: floatPtr(4), SplitHours: floatPtr(3),
			},
		},
		{
			name: "square wave bolus without split",
			req: &domain.CreateEventRequest{
				Type: domain.EventSquareWaveBolus, StartAt: start, Units: floatPtr(4),
			},
			wantErr: domain.ErrInvalidEvent,
		},
		{
			name: "dual wave bolus",
			req: &domain.CreateEventRequest{
				Type: domain.EventDualWaveBolus, StartAt: start,
				UpfrontUnits: floatPtr(2), ExtendedUnits: floatPtr(2), SplitHours: floatPtr(3),
			},
		},
		{
			name: "dual wave bolus missing extended units",
			req: &domain.CreateEventRequest{
				Type: domain.EventDualWaveBolus, StartAt: start,
				UpfrontUnits: floatPtr(2), SplitHours: floatPtr(3),
			},
			wantErr: domain.ErrInvalidEvent,
		},
		{
			name: "food",
			req:  &domain.CreateEventRequest{Type: domain.EventFood, StartAt: start, Grams: floatPtr(45)},
		},
		{
			name: "temp basal",
			req: &domain.CreateEventRequest{
				Type: domain.EventTempBasal, StartAt: start,
				EndAt: timePtr(end), RatePerHour: floatPtr(0.5),
			},
		},
		{
			name: "temp basal without end",
			req: &domain.CreateEventRequest{
				Type: domain.EventTempBasal, StartAt: start, RatePerHour: floatPtr(0.5),
			},
			wantErr: domain.ErrInvalidEvent,
		},
		{
			name: "suspend",
			req:  &domain.CreateEventRequest{Type: domain.EventSuspend, StartAt: start, EndAt: timePtr(end)},
		},
		{
			name:    "suspend without end",
			req:     &domain.CreateEventRequest{Type: domain.EventSuspend, StartAt: start},
			wantErr: domain.ErrInvalidEvent,
		},
		{
			name: "bg measurement",
			req: &domain.CreateEventRequest{
				Type: domain.EventBGMeasurement, StartAt: start,
				EndAt: timePtr(start.Add(5 * time.Minute)), ValueMgDL: floatPtr(145),
			},
		},
		{
			name: "bg measurement without value",
			req: &domain.CreateEventRequest{
				Type: domain.EventBGMeasurement, StartAt: start,
				EndAt: timePtr(start.Add(5 * time.Minute)),
			},
			wantErr: domain.ErrInvalidEvent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := NewMockUserRepository()
			events := NewMockEventRepository()
			svc := NewEventService(events, users)
			userID := seedUser(t, users, "UTC")

			record, err := svc.Create(context.Background(), userID, tt.req)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if record.ID == uuid.Nil {
				t.Error("Create() record ID should not be nil")
			}
			if record.Type != tt.req.Type {
				t.Errorf("Create() type = %v, want %v", record.Type, tt.req.Type)
			}
		})
	}
}

func TestEventService_Create_UnknownUser(t *testing.T) {
	users := NewMockUserRepository()
	events := NewMockEventRepository()
	svc := NewEventService(events, users)

	req := &domain.CreateEventRequest{
		Type:    domain.EventBolus,
		StartAt: time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC),
		Units:   floatPtr(2),
	}
	if _, err := svc.Create(context.Background(), uuid.New(), req); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Create() error = %v, want ErrNotFound", err)
	}
}

func TestEventService_List_Pagination(t *testing.T) {
	users := NewMockUserRepository()
	events := NewMockEventRepository()
	svc := NewEventService(events, users)
	userID := seedUser(t, users, "UTC")

	base := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		record := &domain.EventRecord{
			UserID:  userID,
			Type:    domain.EventBolus,
			StartAt: base.Add(time.Duration(i) * time.Hour),
			Units:   floatPtr(1),
		}
		if err := events.Create(context.Background(), record); err != nil {
			t.Fatalf("failed to seed event: %v", err)
		}
	}

	response, err := svc.List(context.Background(), userID, domain.EventFilter{Limit: 2})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(response.Data) != 2 {
		t.Fatalf("List() returned %d records, want 2", len(response.Data))
	}
	if !response.Pagination.HasMore {
		t.Error("List() HasMore = false, want true")
	}
	if response.Pagination.NextCursor == "" {
		t.Error("List() NextCursor is empty, want a cursor")
	}
	// Newest first
	if !response.Data[0].StartAt.After(response.Data[1].StartAt) {
		t.Errorf("List() order wrong: %v before %v", response.Data[0].StartAt, response.Data[1].StartAt)
	}
}
