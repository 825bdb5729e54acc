package http

import (
	"net/http"

	"github.com/MKhiriev/jrebel-license-server/internal/utils"
	"github.com/MKhiriev/jrebel-license-server/models"
)

// status is the health endpoint probed by the service registry.
func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.StatusResponse{
		Status:  "ok",
		Version: h.services.AppInfoService.GetAppVersion(r.Context()),
	}, http.StatusOK)
}
