package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/openglucose/glucose-tracker/internal/domain"
	"github.com/openglucose/glucose-tracker/internal/service"
	"github.com/openglucose/glucose-tracker/pkg/problem"
)

type SimulationHandler struct {
	service service.SimulationService
}

func NewSimulationHandler(service service.SimulationService) *SimulationHandler {
	return &SimulationHandler{service: service}
}

// Simulate handles GET /v1/users/{userId}/simulation
// @Summary Simulate the predicted glucose derivative
// @Description Evaluate the aggregate predicted blood-glucose change rate over a window, sampling all logged events plus scheduled basal delivery and endogenous liver glucose.
// @Tags simulation
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param from query string true "Window start (RFC3339)" format(date-time)
// @Param to query string true "Window end (RFC3339)" format(date-time)
// @Param step_minutes query integer false "Grid step in minutes" default(10) minimum(1) maximum(120)
// @Success 200 {object} domain.SimulationResponse "Sampled derivative curve"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 409 {object} problem.Problem "Overlapping temp basal overrides"
// @Failure 422 {object} problem.Problem "Settings history incomplete for the window"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/simulation [get]
func (h *SimulationHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	filter, fieldErrors := parseSimulationFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.Simulate(r.Context(), userID, filter)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("User not found").Write(w)
		case errors.Is(err, domain.ErrInvalidInput):
			problem.BadRequest("Simulation window is invalid").Write(w)
		case errors.Is(err, domain.ErrOverlappingOverride):
			problem.Conflict("Overlapping temp basal overrides in the window").Write(w)
		case errors.Is(err, domain.ErrSettingsIncomplete):
			problem.UnprocessableEntity("Settings history is incomplete for the requested window").Write(w)
		default:
			problem.InternalError("Failed to run simulation").Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func parseSimulationFilter(r *http.Request) (domain.SimulationFilter, []problem.FieldError) {
	var filter domain.SimulationFilter
	var fieldErrors []problem.FieldError

	fromStr := r.URL.Query().Get("from")
	if fromStr == "" {
		fieldErrors = append(fieldErrors, problem.FieldError{Field: "from", Message: "is required"})
	} else if from, err := time.Parse(time.RFC3339, fromStr); err != nil {
		fieldErrors = append(fieldErrors, problem.FieldError{Field: "from", Message: "must be a valid RFC3339 timestamp"})
	} else {
		filter.From = from
	}

	toStr := r.URL.Query().Get("to")
	if toStr == "" {
		fieldErrors = append(fieldErrors, problem.FieldError{Field: "to", Message: "is required"})
	} else if to, err := time.Parse(time.RFC3339, toStr); err != nil {
		fieldErrors = append(fieldErrors, problem.FieldError{Field: "to", Message: "must be a valid RFC3339 timestamp"})
	} else {
		filter.To = to
	}

	if stepStr := r.URL.Query().Get("step_minutes"); stepStr != "" {
		step, err := strconv.Atoi(stepStr)
		if err != nil || step < 1 || step > 120 {
			fieldErrors = append(fieldErrors, problem.FieldError{Field: "step_minutes", Message: "must be an integer between 1 and 120"})
		} else {
			filter.StepMinutes = step
		}
	}

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}

	return filter, nil
}
