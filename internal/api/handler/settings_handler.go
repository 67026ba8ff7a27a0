package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/openglucose/glucose-tracker/internal/api/validation"
	"github.com/openglucose/glucose-tracker/internal/domain"
	"github.com/openglucose/glucose-tracker/internal/service"
	"github.com/openglucose/glucose-tracker/pkg/problem"
)

type SettingsHandler struct {
	service service.SettingsService
}

func NewSettingsHandler(service service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// Create handles POST /v1/users/{userId}/settings
// @Summary Record a setting breakpoint
// @Description Add one schedule breakpoint to a setting's snapshot history. Re-sending an identical breakpoint upserts it.
// @Tags settings
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.CreateSettingRequest true "Setting breakpoint"
// @Success 201 {object} domain.SettingResponse
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/settings [post]
func (h *SettingsHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.CreateSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	entry, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to record setting").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(entry.ToResponse())
}

// List handles GET /v1/users/{userId}/settings
// @Summary List setting breakpoints
// @Description Fetch the full breakpoint history, optionally filtered by kind.
// @Tags settings
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param kind query string false "Setting kind" Enums(SENSITIVITY, CARB_RATIO, INSULIN_DURATION, FOOD_DURATION, BASAL)
// @Success 200 {array} domain.SettingResponse
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/settings [get]
func (h *SettingsHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var filter domain.SettingFilter
	if kindStr := r.URL.Query().Get("kind"); kindStr != "" {
		kind := domain.SettingKind(kindStr)
		switch kind {
		case domain.SettingKindSensitivity, domain.SettingKindCarbRatio,
			domain.SettingKindInsulinDuration, domain.SettingKindFoodDuration,
			domain.SettingKindBasal:
			filter.Kind = &kind
		default:
			problem.BadRequest("Invalid setting kind").Write(w)
			return
		}
	}

	entries, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list settings").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}

// GetProfile handles GET /v1/users/{userId}/profile
// @Summary Get the derived profile at an instant
// @Description Resolve insulin sensitivity, food sensitivity, liver glucose rate and action durations at a point in time.
// @Tags settings
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param at query string false "Query time (RFC3339), defaults to now" format(date-time)
// @Success 200 {object} domain.ProfileResponse
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Settings history incomplete at the query time"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/profile [get]
func (h *SettingsHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	at := time.Now().UTC()
	if atStr := r.URL.Query().Get("at"); atStr != "" {
		at, err = time.Parse(time.RFC3339, atStr)
		if err != nil {
			problem.BadRequest("at must be a valid RFC3339 timestamp").Write(w)
			return
		}
	}

	resp, err := h.service.ProfileAt(r.Context(), userID, at)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrSettingsIncomplete) {
			problem.UnprocessableEntity("Settings history is incomplete at the requested time").Write(w)
			return
		}
		problem.InternalError("Failed to resolve profile").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
