package handlers

import (
	"net/http"

	"mockmate/interview/internal/catalog"
	"mockmate/interview/internal/models"
	"mockmate/interview/internal/utils"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// RolesHandler returns the role/domain catalog that drives the setup form.
func (h *CatalogHandler) RolesHandler(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, models.RolesResponse{Roles: h.catalog.Roles()})
}
