package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/openglucose/glucose-tracker/internal/domain"
	"github.com/openglucose/glucose-tracker/internal/llm"
	"github.com/openglucose/glucose-tracker/internal/service"
	"github.com/openglucose/glucose-tracker/pkg/problem"
)

// InsightsHandler handles LLM insights endpoints.
type InsightsHandler struct {
	service service.InsightsService
}

// NewInsightsHandler creates a new InsightsHandler.
func NewInsightsHandler(service service.InsightsService) *InsightsHandler {
	return &InsightsHandler{service: service}
}

// GetInsights handles GET /v1/users/{userId}/insights
// @Summary Get LLM-generated insights for a simulated window
// @Description Simulate a window, summarize the predicted curve, and generate a non-medical narrative. Defaults to the last 24 hours.
// @Tags insights
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param from query string false "Window start (RFC3339)" format(date-time)
// @Param to query string false "Window end (RFC3339)" format(date-time)
// @Success 200 {object} domain.InsightsResponse "Insights with LLM narrative"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 409 {object} problem.Problem "Overlapping temp basal overrides"
// @Failure 422 {object} problem.Problem "Settings history incomplete for the window"
// @Failure 500 {object} problem.Problem "Server error"
// @Failure 503 {object} problem.Problem "LLM service unavailable"
// @Router /users/{userId}/insights [get]
func (h *InsightsHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var from, to time.Time
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		if from, err = time.Parse(time.RFC3339, fromStr); err != nil {
			problem.BadRequest("from must be a valid RFC3339 timestamp").Write(w)
			return
		}
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		if to, err = time.Parse(time.RFC3339, toStr); err != nil {
			problem.BadRequest("to must be a valid RFC3339 timestamp").Write(w)
			return
		}
	}

	result, err := h.service.Generate(r.Context(), userID, from, to)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("User not found").Write(w)
		case errors.Is(err, domain.ErrOverlappingOverride):
			problem.Conflict("Overlapping temp basal overrides in the window").Write(w)
		case errors.Is(err, domain.ErrSettingsIncomplete):
			problem.UnprocessableEntity("Settings history is incomplete for the requested window").Write(w)
		case errors.Is(err, llm.ErrOpenAIUnavailable):
			problem.ServiceUnavailable("OpenAI service is not configured").Write(w)
		case errors.Is(err, llm.ErrOpenAIRequest), errors.Is(err, llm.ErrOpenAIResponse):
			problem.New(http.StatusBadGateway, "llm-error", "LLM Error", "Failed to generate insights from LLM").Write(w)
		default:
			problem.InternalError("Failed to generate insights").Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
