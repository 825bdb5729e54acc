package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/jrebel-license-server/internal/logger"
	"github.com/MKhiriev/jrebel-license-server/internal/service"
	"github.com/MKhiriev/jrebel-license-server/internal/store"
	"github.com/MKhiriev/jrebel-license-server/internal/utils"
	"github.com/MKhiriev/jrebel-license-server/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) adminLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	token, err := h.services.AdminService.Login(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAdminLoginDisabled):
			log.Err(err).Msg("admin login disabled")
			http.Error(w, "password login is disabled", http.StatusForbidden)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("invalid admin credentials")
			http.Error(w, "invalid login/password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during admin login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.AdminLoginResponse{Token: token.SignedString}, http.StatusOK)
}

func (h *Handler) createLicense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateLicenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	license, err := h.services.AdminService.CreateLicense(ctx, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrGUIDAlreadyExists):
			log.Err(err).Msg("guid already exists")
			http.Error(w, "guid already exists", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during license creation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	if count, err := h.services.AdminService.CountLicenses(ctx); err == nil {
		h.metrics.SetLicensesTotal(count)
	}

	admin, _ := utils.GetAdminFromContext(ctx)
	log.Info().Str("admin", admin).Str("guid", license.GUID).Msg("license created")

	utils.WriteJSON(w, license, http.StatusCreated)
}

func (h *Handler) listLicenses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	limit, _ := strconv.ParseUint(r.URL.Query().Get("limit"), 10, 64)
	filter := models.LicenseFilter{
		Note:  r.URL.Query().Get("note"),
		Limit: limit,
	}

	licenses, err := h.services.AdminService.ListLicenses(ctx, filter)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during license listing")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, licenses, http.StatusOK)
}

func (h *Handler) deleteLicense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	guid := chi.URLParam(r, "guid")

	if err := h.services.AdminService.DeleteLicense(ctx, guid); err != nil {
		switch {
		case errors.Is(err, store.ErrNoLicenseWasFound):
			log.Err(err).Str("guid", guid).Msg("no license was found")
			http.Error(w, "no license was found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during license deletion")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	if count, err := h.services.AdminService.CountLicenses(ctx); err == nil {
		h.metrics.SetLicensesTotal(count)
	}

	admin, _ := utils.GetAdminFromContext(ctx)
	log.Info().Str("admin", admin).Str("guid", guid).Msg("license deleted")

	w.WriteHeader(http.StatusNoContent)
}
