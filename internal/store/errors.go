package store

import "errors"

var (
	// ErrGUIDAlreadyExists is returned when a license with the same GUID
	// is already registered.
	ErrGUIDAlreadyExists = errors.New("license guid already exists")
	// ErrNoLicenseWasFound is returned when no license matches the
	// requested GUID.
	ErrNoLicenseWasFound = errors.New("no license was found")
)
