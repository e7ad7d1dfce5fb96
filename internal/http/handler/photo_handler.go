package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/straye-as/finch-collector/internal/domain"
	"github.com/straye-as/finch-collector/internal/service"
	"go.uber.org/zap"
)

// PhotoFormField is the multipart field carrying the photo file
const PhotoFormField = "photo-file"

const defaultMaxUploadMB = 10

// PhotoHandler handles HTTP requests for finch photos
type PhotoHandler struct {
	photoService *service.PhotoService
	maxUploadMB  int64
	logger       *zap.Logger
}

// NewPhotoHandler creates a new photo handler instance
func NewPhotoHandler(photoService *service.PhotoService, maxUploadMB int64, logger *zap.Logger) *PhotoHandler {
	if maxUploadMB <= 0 {
		maxUploadMB = defaultMaxUploadMB
	}
	return &PhotoHandler{
		photoService: photoService,
		maxUploadMB:  maxUploadMB,
		logger:       logger,
	}
}

// List godoc
// @Summary List photos
// @Tags Photos
// @Produce json
// @Param id path string true "Finch ID" format(uuid)
// @Success 200 {object} domain.ListResponse{data=[]domain.PhotoDTO}
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /finches/{id}/photos [get]
func (h *PhotoHandler) List(w http.ResponseWriter, r *http.Request) {
	finchID, ok := parseIDParam(w, r, "id", "finch")
	if !ok {
		return
	}

	photos, err := h.photoService.ListByFinch(r.Context(), finchID)
	if err != nil {
		respondServiceError(w, h.logger, err, "list photos")
		return
	}

	respondJSON(w, http.StatusOK, domain.ListResponse{Data: photos, Total: len(photos)})
}

// Upload godoc
// @Summary Add photo
// @Description Upload a photo of a finch. Always redirects to the finch detail view;
// @Description X-Workflow-Outcome is ok, no_file, invalid_filename or upload_failed.
// @Tags Photos
// @Accept multipart/form-data
// @Param id path string true "Finch ID" format(uuid)
// @Param photo-file formData file false "Photo file"
// @Success 303 "Redirect to the finch detail view"
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 413 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /finches/{id}/photos [post]
func (h *PhotoHandler) Upload(w http.ResponseWriter, r *http.Request) {
	finchID, ok := parseIDParam(w, r, "id", "finch")
	if !ok {
		return
	}

	maxBytes := h.maxUploadMB * 1024 * 1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	var upload *service.PhotoUpload
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondWithError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("File too large: maximum size is %dMB", h.maxUploadMB))
			return
		}
	} else {
		file, header, err := r.FormFile(PhotoFormField)
		if err == nil {
			defer file.Close()
			upload = &service.PhotoUpload{
				Filename:    header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Body:        file,
			}
		}
	}

	_, err := h.photoService.AddPhoto(r.Context(), finchID, upload)
	if err != nil && !errors.Is(err, service.ErrInvalidInput) && !errors.Is(err, service.ErrUploadFailed) {
		respondServiceError(w, h.logger, err, "add photo")
		return
	}

	redirect(w, r, finchPath(finchID), outcomeFor(err))
}
