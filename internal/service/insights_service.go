package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/openglucose/glucose-tracker/internal/domain"
	"github.com/openglucose/glucose-tracker/internal/llm"
	"github.com/openglucose/glucose-tracker/internal/repository"
)

const (
	// DefaultInsightsWindowHours is the window used when the caller does not
	// supply one.
	DefaultInsightsWindowHours = 24

	// SteepRateThreshold marks a predicted derivative as a steep excursion,
	// in mg/dL per hour.
	SteepRateThreshold = 30.0
)

// InsightsService generates an LLM narrative over a simulated window.
type InsightsService interface {
	Generate(ctx context.Context, userID uuid.UUID, from, to time.Time) (*domain.InsightsResponse, error)
}

type insightsService struct {
	simulationService SimulationService
	settingsService   SettingsService
	llmClient         llm.InsightsLLM
	eventRepo         repository.EventRepository
	userRepo          repository.UserRepository
}

// NewInsightsService creates a new InsightsService.
func NewInsightsService(
	simulationService SimulationService,
	settingsService SettingsService,
	llmClient llm.InsightsLLM,
	eventRepo repository.EventRepository,
	userRepo repository.UserRepository,
) InsightsService {
	return &insightsService{
		simulationService: simulationService,
		settingsService:   settingsService,
		llmClient:         llmClient,
		eventRepo:         eventRepo,
		userRepo:          userRepo,
	}
}

func (s *insightsService) Generate(ctx context.Context, userID uuid.UUID, from, to time.Time) (*domain.InsightsResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	if to.IsZero() {
		to = time.Now().UTC()
	}
	if from.IsZero() {
		from = to.Add(-DefaultInsightsWindowHours * time.Hour)
	}

	simulation, err := s.simulationService.Simulate(ctx, userID, domain.SimulationFilter{
		From:        from,
		To:          to,
		StepMinutes: DefaultStepMinutes,
	})
	if err != nil {
		return nil, err
	}

	profile, err := s.settingsService.ProfileAt(ctx, userID, simulation.Window.From)
	if err != nil {
		return nil, err
	}

	records, err := s.eventRepo.ListInRange(ctx, userID, simulation.Window.From, simulation.Window.To)
	if err != nil {
		return nil, err
	}

	stats := computeDayStats(simulation.Samples, simulation.StepMinutes)

	insightsCtx := &domain.InsightsContext{
		Profile:      *profile,
		Stats:        stats,
		Events:       summarizeEvents(records),
		Measurements: simulation.Measurements,
	}
	insightsCtx.Window = simulation.Window

	llmOutput, err := s.llmClient.GenerateInsights(ctx, insightsCtx)
	if err != nil {
		return nil, err
	}

	response := &domain.InsightsResponse{
		Stats:    stats,
		Insights: *llmOutput,
	}
	response.Window = simulation.Window

	return response, nil
}

// computeDayStats summarizes the sampled derivative curve. The net change is
// a left Riemann sum; steep hours count grid cells beyond the threshold.
func computeDayStats(samples []domain.SamplePoint, stepMinutes int) domain.DayStats {
	stats := domain.DayStats{}
	if len(samples) == 0 {
		return stats
	}

	stepHours := float64(stepMinutes) / 60.0
	stats.MinRatePerHour = samples[0].RatePerHour
	stats.MaxRatePerHour = samples[0].RatePerHour

	var sum float64
	for _, sample := range samples {
		r := sample.RatePerHour
		sum += r
		if r < stats.MinRatePerHour {
			stats.MinRatePerHour = r
		}
		if r > stats.MaxRatePerHour {
			stats.MaxRatePerHour = r
		}
		if r < -SteepRateThreshold {
			stats.SteepFallHours += stepHours
		}
		if r > SteepRateThreshold {
			stats.SteepRiseHours += stepHours
		}
	}
	stats.MeanRatePerHour = sum / float64(len(samples))

	// The final sample closes the grid and does not open a cell.
	for _, sample := range samples[:len(samples)-1] {
		stats.NetChangeMgDL += sample.RatePerHour * stepHours
	}

	return stats
}

func summarizeEvents(records []domain.EventRecord) []domain.EventSummary {
	summaries := make([]domain.EventSummary, 0, len(records))
	for _, record := range records {
		summary := domain.EventSummary{
			Type:    record.Type,
			StartAt: record.StartAt,
			EndAt:   record.EndAt,
		}
		switch {
		case record.Units != nil:
			summary.Magnitude = *record.Units
		case record.UpfrontUnits != nil && record.ExtendedUnits != nil:
			summary.Magnitude = *record.UpfrontUnits + *record.ExtendedUnits
		case record.Grams != nil:
			summary.Magnitude = *record.Grams
		case record.RatePerHour != nil:
			summary.Magnitude = *record.RatePerHour
		case record.ValueMgDL != nil:
			summary.Magnitude = *record.ValueMgDL
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
