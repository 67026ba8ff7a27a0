package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/openglucose/glucose-tracker/internal/domain"
	"github.com/openglucose/glucose-tracker/internal/engine"
	"github.com/openglucose/glucose-tracker/internal/repository"
	"github.com/openglucose/glucose-tracker/pkg/pagination"
)

type EventService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateEventRequest) (*domain.EventRecord, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.EventFilter) (*domain.EventListResponse, error)
}

type eventService struct {
	repo     repository.EventRepository
	userRepo repository.UserRepository
}

func NewEventService(repo repository.EventRepository, userRepo repository.UserRepository) EventService {
	return &eventService{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *eventService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateEventRequest) (*domain.EventRecord, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	record := &domain.EventRecord{
		UserID:        userID,
		Type:          req.Type,
		StartAt:       req.StartAt.UTC(),
		Units:         req.Units,
		Grams:         req.Grams,
		SplitHours:    req.SplitHours,
		UpfrontUnits:  req.UpfrontUnits,
		ExtendedUnits: req.ExtendedUnits,
		RatePerHour:   req.RatePerHour,
		ValueMgDL:     req.ValueMgDL,
	}
	if req.EndAt != nil {
		end := req.EndAt.UTC()
		record.EndAt = &end
	}

	// Constructing the engine event validates the field combination for the
	// event type before anything is persisted.
	if _, err := engineEventFromRecord(record); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

func (s *eventService) List(ctx context.Context, userID uuid.UUID, filter domain.EventFilter) (*domain.EventListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	records, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(records) > limit
	if hasMore {
		records = records[:limit]
	}

	response := &domain.EventListResponse{
		Data: make([]domain.EventResponse, len(records)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}
	for i, record := range records {
		response.Data[i] = record.ToResponse()
	}

	if hasMore && len(records) > 0 {
		last := records[len(records)-1]
		cursor := &pagination.Cursor{
			ID:      last.ID,
			StartAt: last.StartAt,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

// engineEventFromRecord builds the engine event a stored record represents.
// A record missing the fields its type requires yields ErrInvalidEvent.
func engineEventFromRecord(record *domain.EventRecord) (engine.Event, error) {
	switch record.Type {
	case domain.EventBolus:
		if record.Units == nil {
			return nil, fmt.Errorf("%w: BOLUS requires units", domain.ErrInvalidEvent)
		}
		return wrapInvalid(engine.NewBolus(record.StartAt, *record.Units))

	case domain.EventSquareWaveBolus:
		if record.Units == nil || record.SplitHours == nil {
			return nil, fmt.Errorf("%w: SQUARE_WAVE_BOLUS requires units and split_hours", domain.ErrInvalidEvent)
		}
		return wrapInvalid(engine.NewSquareWaveBolus(record.StartAt, *record.SplitHours, *record.Units))

	case domain.EventDualWaveBolus:
		if record.UpfrontUnits == nil || record.ExtendedUnits == nil || record.SplitHours == nil {
			return nil, fmt.Errorf("%w: DUAL_WAVE_BOLUS requires upfront_units, extended_units and split_hours", domain.ErrInvalidEvent)
		}
		return wrapInvalid(engine.NewDualWaveBolus(record.StartAt, *record.SplitHours, *record.UpfrontUnits, *record.ExtendedUnits))

	case domain.EventFood:
		if record.Grams == nil {
			return nil, fmt.Errorf("%w: FOOD requires grams", domain.ErrInvalidEvent)
		}
		return wrapInvalid(engine.NewFood(record.StartAt, *record.Grams))

	case domain.EventTempBasal:
		if record.EndAt == nil || record.RatePerHour == nil {
			return nil, fmt.Errorf("%w: TEMP_BASAL requires end_at and rate_per_hour", domain.ErrInvalidEvent)
		}
		return wrapInvalid(engine.NewTempBasal(record.StartAt, *record.EndAt, *record.RatePerHour))

	case domain.EventSuspend:
		if record.EndAt == nil {
			return nil, fmt.Errorf("%w: SUSPEND requires end_at", domain.ErrInvalidEvent)
		}
		return wrapInvalid(engine.NewSuspend(record.StartAt, *record.EndAt))

	case domain.EventBGMeasurement:
		if record.EndAt == nil || record.ValueMgDL == nil {
			return nil, fmt.Errorf("%w: BG_MEASUREMENT requires end_at and value_mg_dl", domain.ErrInvalidEvent)
		}
		return wrapInvalid(engine.NewBGMeasurement(record.StartAt, *record.EndAt, *record.ValueMgDL))

	default:
		return nil, fmt.Errorf("%w: unknown event type %q", domain.ErrInvalidEvent, record.Type)
	}
}

// engineEventInLocation rebuilds the engine event with its timestamps shifted
// to the user's timezone so schedule lookups use local clock time.
func engineEventInLocation(record *domain.EventRecord, timezone string) (engine.Event, error) {
	local := *record
	local.StartAt = inUserLocation(record.StartAt, timezone)
	if record.EndAt != nil {
		end := inUserLocation(*record.EndAt, timezone)
		local.EndAt = &end
	}
	return engineEventFromRecord(&local)
}

func wrapInvalid(ev engine.Event, err error) (engine.Event, error) {
	if err != nil {
		return nil, translateEngineErr(err)
	}
	return ev, nil
}
