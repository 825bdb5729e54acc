package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/jrebel-license-server/internal/logger"
	"github.com/MKhiriev/jrebel-license-server/internal/service"
	"github.com/MKhiriev/jrebel-license-server/internal/utils"
	"github.com/MKhiriev/jrebel-license-server/models"
)

func (h *Handler) validateConnection(w http.ResponseWriter, r *http.Request) {
	validation := h.services.LicenseService.ValidateConnection(r.Context())

	utils.WriteJSON(w, validation, http.StatusOK)
}

func (h *Handler) obtainLease(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form body")
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	req := leaseRequestFromForm(r)

	lease, err := h.services.LicenseService.ObtainLease(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidGUID):
			log.Err(err).Str("guid", req.GUID).Msg("invalid activation guid")
			http.Error(w, "invalid activation guid", http.StatusForbidden)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during lease grant")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, lease, http.StatusOK)
}

func (h *Handler) releaseLease(w http.ResponseWriter, r *http.Request) {
	ack := h.services.LicenseService.ReleaseLease(r.Context())

	utils.WriteJSON(w, ack, http.StatusOK)
}

// leaseRequestFromForm maps the agent's form parameters onto a
// [models.LeaseRequest]. Unparsable numeric values read as zero; the
// service applies its defaults.
func leaseRequestFromForm(r *http.Request) models.LeaseRequest {
	clientTime, _ := strconv.ParseInt(r.FormValue("clientTime"), 10, 64)
	offlineDays, _ := strconv.Atoi(r.FormValue("offlineDays"))

	return models.LeaseRequest{
		ClientRandomness: r.FormValue("randomness"),
		Username:         r.FormValue("username"),
		GUID:             r.FormValue("guid"),
		Offline:          r.FormValue("offline") == "true",
		ClientTime:       clientTime,
		OfflineDays:      offlineDays,
	}
}
