package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/openglucose/glucose-tracker/internal/domain"
	"github.com/openglucose/glucose-tracker/internal/engine"
	"github.com/openglucose/glucose-tracker/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultStepMinutes is the default simulation grid step.
	DefaultStepMinutes = 10

	// MaxWindowHours caps the simulated window length.
	MaxWindowHours = 7 * 24

	// eventLookback widens the event query so decay tails of events logged
	// before the window still contribute inside it. A day comfortably covers
	// the longest dual-wave split plus insulin action duration.
	eventLookback = 24 * time.Hour
)

// SimulationService evaluates the aggregate predicted glucose derivative for
// a user over a time window.
type SimulationService interface {
	Simulate(ctx context.Context, userID uuid.UUID, filter domain.SimulationFilter) (*domain.SimulationResponse, error)
}

type simulationService struct {
	settingRepo repository.SettingRepository
	eventRepo   repository.EventRepository
	userRepo    repository.UserRepository
}

// NewSimulationService creates a new SimulationService.
func NewSimulationService(settingRepo repository.SettingRepository, eventRepo repository.EventRepository, userRepo repository.UserRepository) SimulationService {
	return &simulationService{
		settingRepo: settingRepo,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
	}
}

func (s *simulationService) Simulate(ctx context.Context, userID uuid.UUID, filter domain.SimulationFilter) (*domain.SimulationResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if filter.StepMinutes <= 0 {
		filter.StepMinutes = DefaultStepMinutes
	}
	if !filter.To.After(filter.From) {
		return nil, domain.ErrInvalidInput
	}
	if filter.To.Sub(filter.From) > MaxWindowHours*time.Hour {
		return nil, domain.ErrInvalidInput
	}

	tracer := otel.Tracer("glucose-tracker-api/simulation")
	ctx, span := tracer.Start(ctx, "SimulationService.Simulate",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.String("window.from", filter.From.Format(time.RFC3339)),
			attribute.String("window.to", filter.To.Format(time.RFC3339)),
			attribute.Int("window.step_minutes", filter.StepMinutes),
		),
	)
	defer span.End()

	// Express the window in the user's timezone so schedule lookups use
	// local clock time.
	from := inUserLocation(filter.From, user.Timezone)
	to := inUserLocation(filter.To, user.Timezone)

	entries, err := s.settingRepo.List(ctx, userID, domain.SettingFilter{})
	if err != nil {
		return nil, err
	}
	profile, basal, err := assembleProfile(entries, user.Timezone)
	if err != nil {
		return nil, err
	}

	records, err := s.eventRepo.ListInRange(ctx, userID, from.Add(-eventLookback), to)
	if err != nil {
		return nil, err
	}

	events := make([]engine.Event, 0, len(records)+2)
	measurements := make([]domain.MeasurementPoint, 0)
	for i := range records {
		record := &records[i]
		ev, err := engineEventInLocation(record, user.Timezone)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
		if m, ok := ev.(*engine.BGMeasurement); ok && !m.Start.After(to) && !m.End.Before(from) {
			measurements = append(measurements, domain.MeasurementPoint{
				Start:     m.Start,
				End:       m.End,
				ValueMgDL: m.ValueMgDL,
			})
		}
	}

	scheduledBasal, err := engine.NewBasalInsulin(from, to, basal)
	if err != nil {
		return nil, translateEngineErr(err)
	}
	events = append(events, scheduledBasal, engine.NewLiverBasalGlucose())

	if err := engine.ValidateOverrides(events); err != nil {
		return nil, translateEngineErr(err)
	}

	step := time.Duration(filter.StepMinutes) * time.Minute
	samples, err := engine.SampleSeries(events, profile, from, to, step)
	if err != nil {
		return nil, translateEngineErr(err)
	}

	response := &domain.SimulationResponse{
		StepMinutes:  filter.StepMinutes,
		Samples:      make([]domain.SamplePoint, len(samples)),
		BasalRates:   scheduledBasal.BasalRates,
		Measurements: measurements,
	}
	response.Window.From = from
	response.Window.To = to
	for i, sample := range samples {
		response.Samples[i] = domain.SamplePoint{Time: sample.Time, RatePerHour: sample.RatePerHour}
	}

	span.SetAttributes(attribute.Int("simulation.sample_count", len(samples)))
	if outputJSON, err := json.Marshal(response); err == nil {
		span.SetAttributes(attribute.String("observation.output", string(outputJSON)))
	}

	return response, nil
}
