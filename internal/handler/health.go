package handler

import (
	"net/http"

	"github.com/inotes/inotes/internal/models"
)

// HealthHandler handles GET /health. The automation check only verifies the
// osascript binary is resolvable; it never launches the Notes application.
type HealthHandler struct {
	version string
	folder  string
	probe   func() error
}

func NewHealthHandler(version, folder string, probe func() error) *HealthHandler {
	return &HealthHandler{version: version, folder: folder, probe: probe}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{"server": "ok"}
	status := "healthy"
	code := http.StatusOK

	if err := h.probe(); err != nil {
		checks["automation"] = "unavailable: " + err.Error()
		status = "degraded"
		code = http.StatusServiceUnavailable
	} else {
		checks["automation"] = "ok"
	}

	models.WriteJSON(w, code, models.HealthResponse{
		Status:  status,
		Version: h.version,
		Folder:  h.folder,
		Checks:  checks,
	})
}
