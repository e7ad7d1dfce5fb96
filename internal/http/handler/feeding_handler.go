package handler

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/straye-as/finch-collector/internal/domain"
	"github.com/straye-as/finch-collector/internal/service"
	"go.uber.org/zap"
)

// FeedingHandler handles HTTP requests for finch feedings
type FeedingHandler struct {
	feedingService *service.FeedingService
	logger         *zap.Logger
}

// NewFeedingHandler creates a new feeding handler instance
func NewFeedingHandler(feedingService *service.FeedingService, logger *zap.Logger) *FeedingHandler {
	return &FeedingHandler{
		feedingService: feedingService,
		logger:         logger,
	}
}

// List godoc
// @Summary List feedings
// @Description Feedings of a finch, newest date first
// @Tags Feedings
// @Produce json
// @Param id path string true "Finch ID" format(uuid)
// @Success 200 {object} domain.ListResponse{data=[]domain.FeedingDTO}
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /finches/{id}/feedings [get]
func (h *FeedingHandler) List(w http.ResponseWriter, r *http.Request) {
	finchID, ok := parseIDParam(w, r, "id", "finch")
	if !ok {
		return
	}

	feedings, err := h.feedingService.ListByFinch(r.Context(), finchID)
	if err != nil {
		respondServiceError(w, h.logger, err, "list feedings")
		return
	}

	respondJSON(w, http.StatusOK, domain.ListResponse{Data: feedings, Total: len(feedings)})
}

// Create godoc
// @Summary Add feeding
// @Description Record a feeding for a finch. Accepts JSON or form fields date (YYYY-MM-DD) and meal (B, L or D).
// @Description Always redirects to the finch detail view; X-Workflow-Outcome is ok or invalid_input.
// @Tags Feedings
// @Accept json,x-www-form-urlencoded
// @Param id path string true "Finch ID" format(uuid)
// @Param request body domain.AddFeedingRequest true "Feeding"
// @Success 303 "Redirect to the finch detail view"
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /finches/{id}/feedings [post]
func (h *FeedingHandler) Create(w http.ResponseWriter, r *http.Request) {
	finchID, ok := parseIDParam(w, r, "id", "finch")
	if !ok {
		return
	}

	// An unreadable body is handled like any other invalid feeding
	req := decodeFeedingRequest(r)

	_, err := h.feedingService.AddFeeding(r.Context(), finchID, req)
	if err != nil && !errors.Is(err, service.ErrInvalidFeeding) {
		respondServiceError(w, h.logger, err, "add feeding")
		return
	}

	redirect(w, r, finchPath(finchID), outcomeFor(err))
}

func decodeFeedingRequest(r *http.Request) *domain.AddFeedingRequest {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		if err := r.ParseMultipartForm(1 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return nil
		}
		return &domain.AddFeedingRequest{
			Date: r.FormValue("date"),
			Meal: r.FormValue("meal"),
		}
	default:
		var req domain.AddFeedingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil
		}
		return &req
	}
}
