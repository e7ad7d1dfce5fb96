package handler

import (
	"net/http"

	"github.com/straye-as/finch-collector/internal/domain"
)

// HomeHandler serves the static pages of the collection
type HomeHandler struct {
	appName string
}

// NewHomeHandler creates a new home handler instance
func NewHomeHandler(appName string) *HomeHandler {
	return &HomeHandler{appName: appName}
}

// Home godoc
// @Summary Home
// @Description Entry point listing the main views
// @Tags Pages
// @Produce json
// @Success 200 {object} domain.HomeDTO
// @Router / [get]
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, domain.HomeDTO{
		Name: h.appName,
		Links: map[string]string{
			"about":   BasePath + "/about",
			"finches": BasePath + "/finches",
			"toys":    BasePath + "/toys",
		},
	})
}

// About godoc
// @Summary About
// @Description What the collection is for
// @Tags Pages
// @Produce json
// @Success 200 {object} domain.AboutDTO
// @Router /about [get]
func (h *HomeHandler) About(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, domain.AboutDTO{
		Name:        h.appName,
		Description: "Keep track of your finches: their feedings, their toys and their photos.",
	})
}
