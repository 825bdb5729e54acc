package service

import (
	"context"

	"github.com/MKhiriev/jrebel-license-server/models"
)

// LicenseService produces the activation responses for the JRebel agent
// and the JetBrains license flow. All payloads are signed with the
// server's RSA key.
type LicenseService interface {
	// ValidateConnection answers the agent's connection probe.
	ValidateConnection(ctx context.Context) models.JRebelConnectionValidation
	// ObtainLease grants a lease for the request, signing the
	// randomness exchange.
	ObtainLease(ctx context.Context, req models.LeaseRequest) (models.JRebelLease, error)
	// ReleaseLease acknowledges a lease release.
	ReleaseLease(ctx context.Context) models.JRebelLeaseAck
	// ObtainTicket answers obtainTicket.action with a signed XML body.
	ObtainTicket(ctx context.Context, username, salt string) ([]byte, error)
	// Ping answers ping.action with a signed XML body.
	Ping(ctx context.Context, salt string) ([]byte, error)
	// ReleaseTicket answers releaseTicket.action with a signed XML body.
	ReleaseTicket(ctx context.Context, salt string) ([]byte, error)
}

// AdminService authenticates operators and manages registered licenses.
type AdminService interface {
	// Login verifies the admin credentials and issues a session token.
	Login(ctx context.Context, username, password string) (models.Token, error)
	// ParseToken validates a session token and returns its claims.
	ParseToken(tokenString string) (models.Token, error)
	// IsAPIToken reports whether token is one of the accepted static
	// API tokens.
	IsAPIToken(token string) bool

	CreateLicense(ctx context.Context, note string) (models.License, error)
	ListLicenses(ctx context.Context, filter models.LicenseFilter) ([]models.License, error)
	DeleteLicense(ctx context.Context, guid string) error
	CountLicenses(ctx context.Context) (int, error)
}

// AppInfoService exposes application metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
