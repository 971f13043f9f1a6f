package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pulsecheck/pulsecheck/internal/handler/dto"
	"github.com/pulsecheck/pulsecheck/internal/service"
)

// ReviewHandler handles HTTP requests for review operations.
type ReviewHandler struct {
	svc    *service.ReviewService
	logger *slog.Logger
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(svc *service.ReviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		svc:    svc,
		logger: logger,
	}
}

// Create handles POST /review.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	input := service.SubmitReviewInput{
		LocationID: req.LocationID,
		Score:      req.Score,
		Datetime:   req.Datetime,
	}

	review, err := h.svc.SubmitReview(r.Context(), input)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("review_created",
		"review_id", review.ID,
		"location_id", review.LocationID,
		"score", review.Score,
	)

	writeJSON(w, http.StatusCreated, dto.ToReviewResponse(review))
}

// Report handles GET /report and GET /report/{locationId}.
func (h *ReviewHandler) Report(w http.ResponseWriter, r *http.Request) {
	var locationID *int64
	if param := chi.URLParam(r, "locationId"); param != "" {
		id, err := strconv.ParseInt(param, 10, 64)
		if err != nil || id < 0 {
			h.writeError(w, http.StatusBadRequest, "INVALID_LOCATION_ID", "Location ID must be a non-negative integer")
			return
		}
		locationID = &id
	}

	report, err := h.svc.Report(r.Context(), locationID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToReportResponse(report))
}

// handleServiceError maps service errors to HTTP responses.
func (h *ReviewHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrLocationRequired):
		h.writeError(w, http.StatusBadRequest, "LOCATION_REQUIRED", "locationId is required")
	case errors.Is(err, service.ErrLocationNegative):
		h.writeError(w, http.StatusBadRequest, "LOCATION_NEGATIVE", "locationId must not be negative")
	case errors.Is(err, service.ErrScoreRequired):
		h.writeError(w, http.StatusBadRequest, "SCORE_REQUIRED", "score is required")
	case errors.Is(err, service.ErrScoreOutOfRange):
		h.writeError(w, http.StatusBadRequest, "SCORE_OUT_OF_RANGE", "score must be between 1 and 5")
	default:
		h.logger.Error("internal_error", "error", err)
		h.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}

// writeError writes an error response.
func (h *ReviewHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
