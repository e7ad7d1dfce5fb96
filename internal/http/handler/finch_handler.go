package handler

import (
	"encoding/json"
	"net/http"

	"github.com/straye-as/finch-collector/internal/domain"
	"github.com/straye-as/finch-collector/internal/service"
	"go.uber.org/zap"
)

// FinchHandler handles HTTP requests for finch operations
type FinchHandler struct {
	finchService *service.FinchService
	logger       *zap.Logger
}

// NewFinchHandler creates a new finch handler instance
func NewFinchHandler(finchService *service.FinchService, logger *zap.Logger) *FinchHandler {
	return &FinchHandler{
		finchService: finchService,
		logger:       logger,
	}
}

// List godoc
// @Summary List finches
// @Description List every finch in the collection
// @Tags Finches
// @Produce json
// @Param search query string false "Search by name"
// @Param sortBy query string false "Sort field" Enums(name, color, createdAt) default(name)
// @Param sortOrder query string false "Sort order" Enums(asc, desc) default(asc)
// @Success 200 {object} domain.ListResponse{data=[]domain.FinchDTO}
// @Failure 500 {object} domain.APIError
// @Router /finches [get]
func (h *FinchHandler) List(w http.ResponseWriter, r *http.Request) {
	finches, err := h.finchService.List(r.Context(), parseListFilter(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "list finches")
		return
	}

	respondJSON(w, http.StatusOK, domain.ListResponse{Data: finches, Total: len(finches)})
}

// GetByID godoc
// @Summary Get finch detail
// @Description Finch with its feedings, toys, available toys, photos and whether it has been fed today
// @Tags Finches
// @Produce json
// @Param id path string true "Finch ID" format(uuid)
// @Success 200 {object} domain.FinchDetailDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /finches/{id} [get]
func (h *FinchHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id", "finch")
	if !ok {
		return
	}

	detail, err := h.finchService.GetDetail(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "get finch")
		return
	}

	respondJSON(w, http.StatusOK, detail)
}

// Create godoc
// @Summary Create finch
// @Description Create a finch and redirect to its detail view
// @Tags Finches
// @Accept json
// @Param request body domain.CreateFinchRequest true "Finch data"
// @Success 303 "Redirect to the finch detail view"
// @Failure 400 {object} domain.APIError
// @Router /finches [post]
func (h *FinchHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateFinchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	finch, err := h.finchService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "create finch")
		return
	}

	redirect(w, r, finchPath(finch.ID), domain.OutcomeOK)
}

// Update godoc
// @Summary Update finch
// @Description Update color, size and habitat of a finch. The name cannot be changed.
// @Tags Finches
// @Accept json
// @Param id path string true "Finch ID" format(uuid)
// @Param request body domain.UpdateFinchRequest true "Finch data"
// @Success 303 "Redirect to the finch detail view"
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /finches/{id} [put]
func (h *FinchHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id", "finch")
	if !ok {
		return
	}

	var req domain.UpdateFinchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	if _, err := h.finchService.Update(r.Context(), id, &req); err != nil {
		respondServiceError(w, h.logger, err, "update finch")
		return
	}

	redirect(w, r, finchPath(id), domain.OutcomeOK)
}

// Delete godoc
// @Summary Delete finch
// @Description Delete a finch with its feedings, photos and toy associations, then redirect to the finch list
// @Tags Finches
// @Param id path string true "Finch ID" format(uuid)
// @Success 303 "Redirect to the finch list"
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /finches/{id} [delete]
func (h *FinchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id", "finch")
	if !ok {
		return
	}

	if err := h.finchService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "delete finch")
		return
	}

	redirect(w, r, BasePath+"/finches", domain.OutcomeOK)
}
