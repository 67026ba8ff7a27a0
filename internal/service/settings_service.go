package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/openglucose/glucose-tracker/internal/domain"
	"github.com/openglucose/glucose-tracker/internal/engine"
	"github.com/openglucose/glucose-tracker/internal/repository"
)

type SettingsService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSettingRequest) (*domain.SettingEntry, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.SettingFilter) ([]domain.SettingResponse, error)
	// ProfileAt resolves the derived physiological quantities at one instant,
	// interpreted in the user's timezone.
	ProfileAt(ctx context.Context, userID uuid.UUID, at time.Time) (*domain.ProfileResponse, error)
}

type settingsService struct {
	repo     repository.SettingRepository
	userRepo repository.UserRepository
}

func NewSettingsService(repo repository.SettingRepository, userRepo repository.UserRepository) SettingsService {
	return &settingsService{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *settingsService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSettingRequest) (*domain.SettingEntry, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	entry := &domain.SettingEntry{
		UserID:        userID,
		Kind:          req.Kind,
		EffectiveFrom: req.EffectiveFrom.UTC(),
		OffsetHours:   req.OffsetHours,
		Value:         *req.Value,
	}

	if err := s.repo.Upsert(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *settingsService) List(ctx context.Context, userID uuid.UUID, filter domain.SettingFilter) ([]domain.SettingResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	entries, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.SettingResponse, len(entries))
	for i, entry := range entries {
		responses[i] = entry.ToResponse()
	}
	return responses, nil
}

func (s *settingsService) ProfileAt(ctx context.Context, userID uuid.UUID, at time.Time) (*domain.ProfileResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.List(ctx, userID, domain.SettingFilter{})
	if err != nil {
		return nil, err
	}

	profile, _, err := assembleProfile(entries, user.Timezone)
	if err != nil {
		return nil, err
	}

	local := inUserLocation(at, user.Timezone)

	resp := &domain.ProfileResponse{At: local}
	if resp.InsulinSensitivity, err = profile.InsulinSensitivityAt(local); err != nil {
		return nil, translateEngineErr(err)
	}
	if resp.FoodSensitivity, err = profile.FoodSensitivityAt(local); err != nil {
		return nil, translateEngineErr(err)
	}
	if resp.LiverGlucoseRate, err = profile.LiverGlucoseRateAt(local); err != nil {
		return nil, translateEngineErr(err)
	}
	if resp.InsulinDurationHours, err = profile.InsulinDurationAt(local); err != nil {
		return nil, translateEngineErr(err)
	}
	if resp.FoodDurationHours, err = profile.FoodDurationAt(local); err != nil {
		return nil, translateEngineErr(err)
	}
	return resp, nil
}

// assembleProfile builds the derived profile from stored breakpoints. The
// basal series is returned separately so simulation can realize the scheduled
// delivery for a window. Breakpoint effective-from timestamps are re-expressed
// in the user's timezone so time-of-day offsets line up with local clock time.
func assembleProfile(entries []domain.SettingEntry, timezone string) (*engine.Profile, *engine.SettingSeries, error) {
	series := map[engine.Kind]*engine.SettingSeries{}
	for _, entry := range entries {
		kind := entry.Kind.EngineKind()
		ss, ok := series[kind]
		if !ok {
			ss = engine.NewSettingSeries(kind)
			series[kind] = ss
		}
		effective := inUserLocation(entry.EffectiveFrom, timezone)
		offset := time.Duration(entry.OffsetHours * float64(time.Hour))
		ss.AddBreakpoint(effective, offset, entry.Value)
	}

	sensitivity := series[engine.KindSensitivity]
	carbRatio := series[engine.KindCarbRatio]
	basal := series[engine.KindBasal]
	duration := series[engine.KindInsulinDuration]
	if sensitivity == nil || carbRatio == nil || basal == nil || duration == nil {
		return nil, nil, domain.ErrSettingsIncomplete
	}

	profile := engine.NewProfile()
	if err := profile.AddSensitivity(sensitivity, carbRatio); err != nil {
		return nil, nil, translateEngineErr(err)
	}
	if err := profile.AddHourlyGlucose(basal, duration); err != nil {
		return nil, nil, translateEngineErr(err)
	}
	if foodDur := series[engine.KindFoodDuration]; foodDur != nil {
		profile.AddFoodDuration(foodDur)
	}
	return profile, basal, nil
}

// inUserLocation re-expresses t in the user's timezone, falling back to UTC
// when the stored zone fails to load.
func inUserLocation(t time.Time, timezone string) time.Time {
	loc := time.UTC
	if timezone != "" {
		if l, err := time.LoadLocation(timezone); err == nil {
			loc = l
		}
	}
	return t.In(loc)
}

// translateEngineErr maps engine sentinels onto the domain error vocabulary
// the handlers know how to render.
func translateEngineErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, engine.ErrNoActiveSnapshot),
		errors.Is(err, engine.ErrProfileIncomplete),
		errors.Is(err, engine.ErrEmptySchedule):
		return fmt.Errorf("%w: %v", domain.ErrSettingsIncomplete, err)
	case errors.Is(err, engine.ErrOverlappingOverride):
		return fmt.Errorf("%w: %v", domain.ErrOverlappingOverride, err)
	case errors.Is(err, engine.ErrInvalidInterval):
		return fmt.Errorf("%w: %v", domain.ErrInvalidEvent, err)
	default:
		return err
	}
}
