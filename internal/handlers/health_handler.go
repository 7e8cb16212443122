package handlers

import (
	"net/http"

	"mockmate/interview/internal/catalog"
	"mockmate/interview/internal/evaluator"
	"mockmate/interview/internal/utils"
)

type ReadinessCheck struct {
	Status  string `json:"status"` // "ok" | "failed"
	Message string `json:"message,omitempty"`
}

type ReadinessResponse struct {
	Status string                    `json:"status"` // "ready" | "not_ready"
	Checks map[string]ReadinessCheck `json:"checks"`
}

type HealthHandler struct {
	catalog   *catalog.Catalog
	evaluator evaluator.Evaluator
}

func NewHealthHandler(cat *catalog.Catalog, eval evaluator.Evaluator) *HealthHandler {
	return &HealthHandler{catalog: cat, evaluator: eval}
}

func (h *HealthHandler) HealthzHandler(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "interview",
	})
}

func (h *HealthHandler) ReadyzHandler(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]ReadinessCheck)
	ready := true

	if h.catalog == nil || len(h.catalog.Roles()) == 0 {
		checks["catalog"] = ReadinessCheck{Status: "failed", Message: "question catalog not loaded"}
		ready = false
	} else {
		checks["catalog"] = ReadinessCheck{Status: "ok"}
	}

	if h.evaluator == nil {
		checks["evaluator"] = ReadinessCheck{Status: "failed", Message: "evaluator not initialized"}
		ready = false
	} else {
		checks["evaluator"] = ReadinessCheck{Status: "ok"}
	}

	response := ReadinessResponse{Status: "ready", Checks: checks}
	code := http.StatusOK
	if !ready {
		response.Status = "not_ready"
		code = http.StatusServiceUnavailable
	}
	utils.JSON(w, code, response)
}
