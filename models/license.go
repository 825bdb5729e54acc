package models

import "time"

// License is a registered activation GUID managed through the admin API.
// Activation endpoints accept any well-formed GUID; registered licenses
// exist so operators can hand out stable, documented activation URLs.
type License struct {
	// ID is the server-assigned surrogate key.
	ID int64 `json:"id"`

	// GUID is the opaque identifier embedded in the activation URL.
	GUID string `json:"guid"`

	// Note is a free-form operator annotation (e.g. who the GUID was
	// issued to).
	Note string `json:"note"`

	// CreatedAt records when the license was registered.
	CreatedAt time.Time `json:"created_at"`
}

// LicenseFilter narrows license listings.
type LicenseFilter struct {
	// Note, when non-empty, keeps only licenses whose note contains it.
	Note string

	// Limit caps the number of returned rows; zero means no cap.
	Limit uint64
}
