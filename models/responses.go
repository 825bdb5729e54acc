package models

// StatusResponse is the payload of the /api/status health endpoint. It
// doubles as the health-check target announced to the service registry.
type StatusResponse struct {
	// Status is "ok" while the server is accepting requests.
	Status string `json:"status"`

	// Version is the running application version.
	Version string `json:"version"`
}

// AdminLoginRequest carries the admin credentials.
type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminLoginResponse returns the freshly issued bearer token.
type AdminLoginResponse struct {
	Token string `json:"token"`
}

// CreateLicenseRequest registers a new activation GUID.
type CreateLicenseRequest struct {
	// Note is an optional operator annotation stored with the license.
	Note string `json:"note"`
}
