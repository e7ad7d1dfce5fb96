package handler

import (
	"net/http"

	"github.com/straye-as/finch-collector/internal/domain"
	"github.com/straye-as/finch-collector/internal/service"
	"go.uber.org/zap"
)

// AssociationHandler handles HTTP requests that add or remove a finch's toys
type AssociationHandler struct {
	associationService *service.AssociationService
	logger             *zap.Logger
}

// NewAssociationHandler creates a new association handler instance
func NewAssociationHandler(associationService *service.AssociationService, logger *zap.Logger) *AssociationHandler {
	return &AssociationHandler{
		associationService: associationService,
		logger:             logger,
	}
}

// Associate godoc
// @Summary Give a toy to a finch
// @Description Adds the toy to the finch's toys; giving a toy the finch already has changes nothing
// @Tags Finches
// @Param id path string true "Finch ID" format(uuid)
// @Param toyId path string true "Toy ID" format(uuid)
// @Success 303 "Redirect to the finch detail view"
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /finches/{id}/toys/{toyId} [post]
func (h *AssociationHandler) Associate(w http.ResponseWriter, r *http.Request) {
	finchID, ok := parseIDParam(w, r, "id", "finch")
	if !ok {
		return
	}
	toyID, ok := parseIDParam(w, r, "toyId", "toy")
	if !ok {
		return
	}

	if err := h.associationService.Associate(r.Context(), finchID, toyID); err != nil {
		respondServiceError(w, h.logger, err, "associate toy")
		return
	}

	redirect(w, r, finchPath(finchID), domain.OutcomeOK)
}

// Disassociate godoc
// @Summary Take a toy away from a finch
// @Description Removes the toy from the finch's toys; neither the finch nor the toy is deleted
// @Tags Finches
// @Param id path string true "Finch ID" format(uuid)
// @Param toyId path string true "Toy ID" format(uuid)
// @Success 303 "Redirect to the finch detail view"
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /finches/{id}/toys/{toyId} [delete]
func (h *AssociationHandler) Disassociate(w http.ResponseWriter, r *http.Request) {
	finchID, ok := parseIDParam(w, r, "id", "finch")
	if !ok {
		return
	}
	toyID, ok := parseIDParam(w, r, "toyId", "toy")
	if !ok {
		return
	}

	if err := h.associationService.Disassociate(r.Context(), finchID, toyID); err != nil {
		respondServiceError(w, h.logger, err, "disassociate toy")
		return
	}

	redirect(w, r, finchPath(finchID), domain.OutcomeOK)
}
