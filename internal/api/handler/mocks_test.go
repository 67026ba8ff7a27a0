package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/openglucose/glucose-tracker/internal/domain"
)

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	createFunc  func(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *MockUserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.User{ID: uuid.New(), Timezone: req.Timezone, TargetBGMgDL: domain.DefaultTargetBGMgDL}, nil
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

// MockSettingsService is a mock implementation of SettingsService
type MockSettingsService struct {
	createFunc    func(ctx context.Context, userID uuid.UUID, req *domain.CreateSettingRequest) (*domain.SettingEntry, error)
	listFunc      func(ctx context.Context, userID uuid.UUID, filter domain.SettingFilter) ([]domain.SettingResponse, error)
	profileAtFunc func(ctx context.Context, userID uuid.UUID, at time.Time) (*domain.ProfileResponse, error)
}

func (m *MockSettingsService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSettingRequest) (*domain.SettingEntry, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.SettingEntry{
		ID:            uuid.New(),
		UserID:        userID,
		Kind:          req.Kind,
		EffectiveFrom: req.EffectiveFrom,
		OffsetHours:   req.OffsetHours,
		Value:         *req.Value,
		CreatedAt:     time.Now(),
	}, nil
}

func (m *MockSettingsService) List(ctx context.Context, userID uuid.UUID, filter domain.SettingFilter) ([]domain.SettingResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return []domain.SettingResponse{}, nil
}

func (m *MockSettingsService) ProfileAt(ctx context.Context, userID uuid.UUID, at time.Time) (*domain.ProfileResponse, error) {
	if m.profileAtFunc != nil {
		return m.profileAtFunc(ctx, userID, at)
	}
	return &domain.ProfileResponse{At: at}, nil
}

// MockEventService is a mock implementation of EventService
type MockEventService struct {
	createFunc func(ctx context.Context, userID uuid.UUID, req *domain.CreateEventRequest) (*domain.EventRecord, error)
	listFunc   func(ctx context.Context, userID uuid.UUID, filter domain.EventFilter) (*domain.EventListResponse, error)
}

func (m *MockEventService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateEventRequest) (*domain.EventRecord, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.EventRecord{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      req.Type,
		StartAt:   req.StartAt,
		EndAt:     req.EndAt,
		Units:     req.Units,
		CreatedAt: time.Now(),
	}, nil
}

func (m *MockEventService) List(ctx context.Context, userID uuid.UUID, filter domain.EventFilter) (*domain.EventListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.EventListResponse{
		Data:       []domain.EventResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockSimulationService is a mock implementation of SimulationService
type MockSimulationService struct {
	simulateFunc func(ctx context.Context, userID uuid.UUID, filter domain.SimulationFilter) (*domain.SimulationResponse, error)
}

func (m *MockSimulationService) Simulate(ctx context.Context, userID uuid.UUID, filter domain.SimulationFilter) (*domain.SimulationResponse, error) {
	if m.simulateFunc != nil {
		return m.simulateFunc(ctx, userID, filter)
	}
	response := &domain.SimulationResponse{
		StepMinutes:  filter.StepMinutes,
		Samples:      []domain.SamplePoint{},
		BasalRates:   make([]float64, 48),
		Measurements: []domain.MeasurementPoint{},
	}
	response.Window.From = filter.From
	response.Window.To = filter.To
	return response, nil
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	generateFunc func(ctx context.Context, userID uuid.UUID, from, to time.Time) (*domain.InsightsResponse, error)
}

func (m *MockInsightsService) Generate(ctx context.Context, userID uuid.UUID, from, to time.Time) (*domain.InsightsResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID, from, to)
	}
	response := &domain.InsightsResponse{
		Insights: domain.LLMInsightsOutput{Summary: "ok"},
	}
	response.Window.From = from
	response.Window.To = to
	return response, nil
}
