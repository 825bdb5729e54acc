package http

import (
	"net/http"

	"github.com/MKhiriev/jrebel-license-server/internal/logger"
)

const xmlContentType = "text/xml; charset=utf-8"

func (h *Handler) obtainTicket(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	signed, err := h.services.LicenseService.ObtainTicket(r.Context(), r.FormValue("userName"), r.FormValue("salt"))
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during obtainTicket")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", xmlContentType)
	w.Write(signed)
}

func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	signed, err := h.services.LicenseService.Ping(r.Context(), r.FormValue("salt"))
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during ping")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", xmlContentType)
	w.Write(signed)
}

func (h *Handler) releaseTicket(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	signed, err := h.services.LicenseService.ReleaseTicket(r.Context(), r.FormValue("salt"))
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during releaseTicket")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", xmlContentType)
	w.Write(signed)
}
