package handler

import (
	"encoding/json"
	"net/http"

	"github.com/straye-as/finch-collector/internal/domain"
	"github.com/straye-as/finch-collector/internal/service"
	"go.uber.org/zap"
)

// ToyHandler handles HTTP requests for toy operations
type ToyHandler struct {
	toyService *service.ToyService
	logger     *zap.Logger
}

// NewToyHandler creates a new toy handler instance
func NewToyHandler(toyService *service.ToyService, logger *zap.Logger) *ToyHandler {
	return &ToyHandler{
		toyService: toyService,
		logger:     logger,
	}
}

// List godoc
// @Summary List toys
// @Tags Toys
// @Produce json
// @Param search query string false "Search by name"
// @Param sortBy query string false "Sort field" Enums(name, color, createdAt) default(name)
// @Param sortOrder query string false "Sort order" Enums(asc, desc) default(asc)
// @Success 200 {object} domain.ListResponse{data=[]domain.ToyDTO}
// @Failure 500 {object} domain.APIError
// @Router /toys [get]
func (h *ToyHandler) List(w http.ResponseWriter, r *http.Request) {
	toys, err := h.toyService.List(r.Context(), parseListFilter(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "list toys")
		return
	}

	respondJSON(w, http.StatusOK, domain.ListResponse{Data: toys, Total: len(toys)})
}

// GetByID godoc
// @Summary Get toy
// @Tags Toys
// @Produce json
// @Param id path string true "Toy ID" format(uuid)
// @Success 200 {object} domain.ToyDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /toys/{id} [get]
func (h *ToyHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id", "toy")
	if !ok {
		return
	}

	toy, err := h.toyService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "get toy")
		return
	}

	respondJSON(w, http.StatusOK, toy)
}

// Create godoc
// @Summary Create toy
// @Tags Toys
// @Accept json
// @Param request body domain.CreateToyRequest true "Toy data"
// @Success 303 "Redirect to the toy detail view"
// @Failure 400 {object} domain.APIError
// @Router /toys [post]
func (h *ToyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateToyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	toy, err := h.toyService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "create toy")
		return
	}

	redirect(w, r, toyPath(toy.ID), domain.OutcomeOK)
}

// Update godoc
// @Summary Update toy
// @Tags Toys
// @Accept json
// @Param id path string true "Toy ID" format(uuid)
// @Param request body domain.UpdateToyRequest true "Toy data"
// @Success 303 "Redirect to the toy detail view"
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /toys/{id} [put]
func (h *ToyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id", "toy")
	if !ok {
		return
	}

	var req domain.UpdateToyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	if _, err := h.toyService.Update(r.Context(), id, &req); err != nil {
		respondServiceError(w, h.logger, err, "update toy")
		return
	}

	redirect(w, r, toyPath(id), domain.OutcomeOK)
}

// Delete godoc
// @Summary Delete toy
// @Description Delete a toy and remove it from every finch, then redirect to the toy list
// @Tags Toys
// @Param id path string true "Toy ID" format(uuid)
// @Success 303 "Redirect to the toy list"
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /toys/{id} [delete]
func (h *ToyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id", "toy")
	if !ok {
		return
	}

	if err := h.toyService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "delete toy")
		return
	}

	redirect(w, r, BasePath+"/toys", domain.OutcomeOK)
}
