package service

import "errors"

var (
	// ErrInvalidGUID is returned when an activation identifier is not a
	// well-formed UUID.
	ErrInvalidGUID = errors.New("activation guid is not a valid uuid")
	// ErrInvalidCredentials is returned on a failed admin login.
	ErrInvalidCredentials = errors.New("invalid admin credentials")
	// ErrAdminLoginDisabled is returned when no admin password hash is
	// configured; API tokens remain usable.
	ErrAdminLoginDisabled = errors.New("admin password login is disabled")
	// ErrVersionIsNotSpecified is returned when the application version
	// is missing from the configuration.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
