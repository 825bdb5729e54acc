package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/jrebel-license-server/internal/config"
	"github.com/MKhiriev/jrebel-license-server/internal/logger"
	"github.com/MKhiriev/jrebel-license-server/internal/store"
	"github.com/MKhiriev/jrebel-license-server/internal/utils"
	"github.com/MKhiriev/jrebel-license-server/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenIssuer   = "jrebel-license-server"
	tokenDuration = 12 * time.Hour
)

// adminService authenticates operators against the configured credentials
// and manages the registered license GUIDs.
//
// Two authentication paths exist: password login issuing a short-lived
// JWT, and static API tokens resolved at startup. Password login is
// disabled entirely when no bcrypt hash is configured.
type adminService struct {
	repository store.LicenseRepository
	uuid       *utils.UUIDGenerator

	adminUser         string
	adminPasswordHash string
	secretKey         string
	apiTokens         []string

	logger *logger.Logger
}

// NewAdminService constructs the [AdminService] from the resolved
// settings.
func NewAdminService(repository store.LicenseRepository, settings *config.Settings, logger *logger.Logger) AdminService {
	logger.Debug().Msg("creating admin service")
	return &adminService{
		repository:        repository,
		uuid:              utils.NewUUIDGenerator(),
		adminUser:         settings.AdminUser,
		adminPasswordHash: settings.AdminPasswordHash,
		secretKey:         settings.SecretKey,
		apiTokens:         settings.APITokens,
		logger:            logger,
	}
}

// Login verifies the credentials and issues a session token.
//
// Error handling:
//   - no password hash configured → [ErrAdminLoginDisabled];
//   - unknown user or wrong password → [ErrInvalidCredentials].
func (s *adminService) Login(ctx context.Context, username, password string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if s.adminPasswordHash == "" {
		return models.Token{}, ErrAdminLoginDisabled
	}

	if username != s.adminUser {
		return models.Token{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return models.Token{}, ErrInvalidCredentials
		}
		return models.Token{}, fmt.Errorf("compare password: %w", err)
	}

	token, err := utils.GenerateJWTToken(tokenIssuer, username, tokenDuration, s.secretKey)
	if err != nil {
		log.Err(err).Str("func", "*adminService.Login").Msg("error: generating token")
		return models.Token{}, fmt.Errorf("generate token: %w", err)
	}

	return token, nil
}

// ParseToken validates a session token string.
func (s *adminService) ParseToken(tokenString string) (models.Token, error) {
	return utils.ValidateAndParseJWTToken(tokenString, s.secretKey, tokenIssuer)
}

// IsAPIToken reports whether token is one of the accepted static API
// tokens.
func (s *adminService) IsAPIToken(token string) bool {
	return token != "" && slices.Contains(s.apiTokens, token)
}

// CreateLicense registers a fresh activation GUID with the given note.
func (s *adminService) CreateLicense(ctx context.Context, note string) (models.License, error) {
	license := models.License{
		GUID:      s.uuid.Generate(),
		Note:      note,
		CreatedAt: time.Now(),
	}

	return s.repository.CreateLicense(ctx, license)
}

func (s *adminService) ListLicenses(ctx context.Context, filter models.LicenseFilter) ([]models.License, error) {
	return s.repository.ListLicenses(ctx, filter)
}

func (s *adminService) DeleteLicense(ctx context.Context, guid string) error {
	return s.repository.DeleteLicense(ctx, guid)
}

func (s *adminService) CountLicenses(ctx context.Context) (int, error) {
	return s.repository.CountLicenses(ctx)
}
