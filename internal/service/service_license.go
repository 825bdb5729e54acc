package service

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/jrebel-license-server/internal/logger"
	"github.com/MKhiriev/jrebel-license-server/internal/utils"
	"github.com/MKhiriev/jrebel-license-server/models"
)

// Protocol constants expected by the deployed JRebel agents and
// JetBrains IDEs. Changing any of these breaks client-side validation.
const (
	serverVersion         = "3.2.4"
	serverProtocolVersion = "1.1"
	serverGUID            = "a1b4aea8-b031-4302-b602-670a990272cb"
	serverRandomness      = "H2ulzLlh7E0="
	groupType             = "managed"
	seatPoolType          = "standalone"
	statusSuccess         = "SUCCESS"

	prolongationPeriod = 607875500
	defaultLicensee    = "Administrator"

	// fixed validity window reported for the license itself
	licenseValidFrom  = 1490544001000
	licenseValidUntil = 4102415999000

	defaultOfflineDays = 180
)

type licenseService struct {
	signer *Signer
	logger *logger.Logger
}

// NewLicenseService constructs the [LicenseService] that signs activation
// payloads with signer.
func NewLicenseService(signer *Signer, logger *logger.Logger) LicenseService {
	logger.Debug().Msg("creating license service")
	return &licenseService{
		signer: signer,
		logger: logger,
	}
}

func (s *licenseService) ValidateConnection(_ context.Context) models.JRebelConnectionValidation {
	return models.JRebelConnectionValidation{
		ServerVersion:         serverVersion,
		ServerProtocolVersion: serverProtocolVersion,
		ServerGUID:            serverGUID,
		GroupType:             groupType,
		StatusCode:            statusSuccess,
		Company:               defaultLicensee,
		CanGetLease:           true,
		LicenseType:           1,
		EvaluationLicense:     false,
		SeatPoolType:          seatPoolType,
	}
}

// ObtainLease grants a lease for req. The agent verifies a SHA1withRSA
// signature over the randomness exchange:
//
//	clientRandomness;serverRandomness;guid;offline[;validFrom;validUntil]
//
// where the validity window is appended only for offline leases.
func (s *licenseService) ObtainLease(ctx context.Context, req models.LeaseRequest) (models.JRebelLease, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidGUID(req.GUID) {
		return models.JRebelLease{}, ErrInvalidGUID
	}

	lease := models.JRebelLease{
		ServerVersion:         serverVersion,
		ServerProtocolVersion: serverProtocolVersion,
		ServerGUID:            serverGUID,
		GroupType:             groupType,
		ID:                    1,
		LicenseType:           1,
		EvaluationLicense:     false,
		ServerRandomness:      serverRandomness,
		SeatPoolType:          seatPoolType,
		StatusCode:            statusSuccess,
		Offline:               req.Offline,
		Company:               licensee(req.Username),
		OrderID:               "",
		ZeroIDs:               []string{},
		LicenseValidFrom:      licenseValidFrom,
		LicenseValidUntil:     licenseValidUntil,
	}

	payload := strings.Join([]string{req.ClientRandomness, serverRandomness, req.GUID, fmt.Sprintf("%t", req.Offline)}, ";")
	if req.Offline {
		offlineDays := req.OfflineDays
		if offlineDays <= 0 {
			offlineDays = defaultOfflineDays
		}

		lease.ValidFrom = req.ClientTime
		lease.ValidUntil = req.ClientTime + int64(offlineDays)*24*time.Hour.Milliseconds()
		payload = fmt.Sprintf("%s;%d;%d", payload, lease.ValidFrom, lease.ValidUntil)
	}

	signature, err := s.signer.SignSHA1Base64(payload)
	if err != nil {
		log.Err(err).Str("func", "*licenseService.ObtainLease").Msg("error: signing lease payload")
		return models.JRebelLease{}, fmt.Errorf("sign lease: %w", err)
	}

	lease.Signature = signature
	return lease, nil
}

func (s *licenseService) ReleaseLease(_ context.Context) models.JRebelLeaseAck {
	return models.JRebelLeaseAck{
		ServerVersion:         serverVersion,
		ServerProtocolVersion: serverProtocolVersion,
		ServerGUID:            serverGUID,
		GroupType:             groupType,
		StatusCode:            statusSuccess,
		Msg:                   nil,
		StatusMessage:         nil,
	}
}

func (s *licenseService) ObtainTicket(ctx context.Context, username, salt string) ([]byte, error) {
	// tab separators inside ticketProperties are part of the format
	response := models.ObtainTicketResponse{
		Message:            "",
		ProlongationPeriod: prolongationPeriod,
		ResponseCode:       "OK",
		Salt:               salt,
		TicketID:           "1",
		TicketProperties:   fmt.Sprintf("licensee=%s\tlicenseType=0\t", licensee(username)),
	}

	return s.signedXML(ctx, response)
}

func (s *licenseService) Ping(ctx context.Context, salt string) ([]byte, error) {
	return s.signedXML(ctx, models.PingResponse{
		Message:      "",
		ResponseCode: "OK",
		Salt:         salt,
	})
}

func (s *licenseService) ReleaseTicket(ctx context.Context, salt string) ([]byte, error) {
	return s.signedXML(ctx, models.ReleaseTicketResponse{
		Message:      "",
		ResponseCode: "OK",
		Salt:         salt,
	})
}

// signedXML serializes response and prepends the MD5withRSA signature the
// IDE expects as a leading XML comment.
func (s *licenseService) signedXML(ctx context.Context, response any) ([]byte, error) {
	log := logger.FromContext(ctx)

	body, err := xml.Marshal(response)
	if err != nil {
		log.Err(err).Str("func", "*licenseService.signedXML").Msg("error: marshaling response")
		return nil, fmt.Errorf("marshal response: %w", err)
	}

	signature, err := s.signer.SignMD5Hex(body)
	if err != nil {
		log.Err(err).Str("func", "*licenseService.signedXML").Msg("error: signing response")
		return nil, fmt.Errorf("sign response: %w", err)
	}

	signed := make([]byte, 0, len(signature)+len(body)+10)
	signed = append(signed, []byte("<!-- "+signature+" -->\n")...)
	signed = append(signed, body...)

	return signed, nil
}

func licensee(username string) string {
	if username == "" {
		return defaultLicensee
	}

	return username
}
