package service

import (
	"bytes"
	"context"
	"crypto"
	"crypto/md5"
	"crypto/rsa"
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/MKhiriev/jrebel-license-server/internal/logger"
	"github.com/MKhiriev/jrebel-license-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLicenseService(t *testing.T) (LicenseService, *Signer) {
	t.Helper()

	signer, err := NewEphemeralSigner()
	require.NoError(t, err)

	return NewLicenseService(signer, logger.Nop()), signer
}

func verifySHA1Signature(t *testing.T, signer *Signer, payload, signature string) {
	t.Helper()

	raw, err := base64.StdEncoding.DecodeString(signature)
	require.NoError(t, err)
	digest := sha1.Sum([]byte(payload))
	assert.NoError(t, rsa.VerifyPKCS1v15(signer.PublicKey(), crypto.SHA1, digest[:], raw))
}

func TestLicenseService_ValidateConnection(t *testing.T) {
	svc, _ := newTestLicenseService(t)

	validation := svc.ValidateConnection(context.Background())

	assert.Equal(t, "3.2.4", validation.ServerVersion)
	assert.Equal(t, "1.1", validation.ServerProtocolVersion)
	assert.Equal(t, "a1b4aea8-b031-4302-b602-670a990272cb", validation.ServerGUID)
	assert.Equal(t, "SUCCESS", validation.StatusCode)
	assert.True(t, validation.CanGetLease)
	assert.Equal(t, 1, validation.LicenseType)
	assert.False(t, validation.EvaluationLicense)
}

func TestLicenseService_ObtainLease_Online(t *testing.T) {
	// Arrange
	svc, signer := newTestLicenseService(t)
	req := models.LeaseRequest{
		ClientRandomness: "client-nonce",
		Username:         "dev",
		GUID:             "6e65646e-6c6f-7665-6a72-656265610000",
		Offline:          false,
	}

	// Act
	lease, err := svc.ObtainLease(context.Background(), req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "SUCCESS", lease.StatusCode)
	assert.Equal(t, "dev", lease.Company)
	assert.False(t, lease.Offline)
	assert.Zero(t, lease.ValidFrom)
	assert.Zero(t, lease.ValidUntil)
	assert.Equal(t, []string{}, lease.ZeroIDs)

	payload := fmt.Sprintf("client-nonce;%s;%s;false", lease.ServerRandomness, req.GUID)
	verifySHA1Signature(t, signer, payload, lease.Signature)
}

func TestLicenseService_ObtainLease_Offline(t *testing.T) {
	// Arrange
	svc, signer := newTestLicenseService(t)
	req := models.LeaseRequest{
		ClientRandomness: "client-nonce",
		GUID:             "6e65646e-6c6f-7665-6a72-656265610000",
		Offline:          true,
		ClientTime:       1700000000000,
		OfflineDays:      30,
	}

	// Act
	lease, err := svc.ObtainLease(context.Background(), req)

	// Assert
	require.NoError(t, err)
	assert.True(t, lease.Offline)
	assert.Equal(t, int64(1700000000000), lease.ValidFrom)
	assert.Equal(t, int64(1700000000000+30*24*60*60*1000), lease.ValidUntil)
	assert.Equal(t, defaultLicensee, lease.Company)

	payload := fmt.Sprintf("client-nonce;%s;%s;true;%d;%d", lease.ServerRandomness, req.GUID, lease.ValidFrom, lease.ValidUntil)
	verifySHA1Signature(t, signer, payload, lease.Signature)
}

func TestLicenseService_ObtainLease_DefaultOfflineWindow(t *testing.T) {
	svc, _ := newTestLicenseService(t)
	req := models.LeaseRequest{
		ClientRandomness: "client-nonce",
		GUID:             "6e65646e-6c6f-7665-6a72-656265610000",
		Offline:          true,
		ClientTime:       1700000000000,
	}

	lease, err := svc.ObtainLease(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, req.ClientTime+int64(defaultOfflineDays)*24*60*60*1000, lease.ValidUntil)
}

func TestLicenseService_ObtainLease_InvalidGUID(t *testing.T) {
	svc, _ := newTestLicenseService(t)

	_, err := svc.ObtainLease(context.Background(), models.LeaseRequest{GUID: "not-a-guid"})

	assert.ErrorIs(t, err, ErrInvalidGUID)
}

func TestLicenseService_ReleaseLease(t *testing.T) {
	svc, _ := newTestLicenseService(t)

	ack := svc.ReleaseLease(context.Background())

	assert.Equal(t, "SUCCESS", ack.StatusCode)
	assert.Nil(t, ack.Msg)
	assert.Nil(t, ack.StatusMessage)
}

func TestLicenseService_ObtainTicket(t *testing.T) {
	// Arrange
	svc, signer := newTestLicenseService(t)

	// Act
	signed, err := svc.ObtainTicket(context.Background(), "dev", "1700000000000")

	// Assert
	require.NoError(t, err)

	signature, body := splitSignedXML(t, signed)
	assert.Contains(t, string(body), "<ObtainTicketResponse>")
	assert.Contains(t, string(body), "<prolongationPeriod>607875500</prolongationPeriod>")
	assert.Contains(t, string(body), "<salt>1700000000000</salt>")
	assert.Contains(t, string(body), "licensee=dev\tlicenseType=0\t")
	verifyMD5Signature(t, signer, body, signature)
}

func TestLicenseService_Ping(t *testing.T) {
	svc, signer := newTestLicenseService(t)

	signed, err := svc.Ping(context.Background(), "salt-123")

	require.NoError(t, err)
	signature, body := splitSignedXML(t, signed)
	assert.Contains(t, string(body), "<PingResponse>")
	assert.Contains(t, string(body), "<responseCode>OK</responseCode>")
	assert.Contains(t, string(body), "<salt>salt-123</salt>")
	verifyMD5Signature(t, signer, body, signature)
}

func TestLicenseService_ReleaseTicket(t *testing.T) {
	svc, signer := newTestLicenseService(t)

	signed, err := svc.ReleaseTicket(context.Background(), "salt-123")

	require.NoError(t, err)
	signature, body := splitSignedXML(t, signed)
	assert.Contains(t, string(body), "<ReleaseTicketResponse>")
	verifyMD5Signature(t, signer, body, signature)
}

// splitSignedXML separates the "<!-- signature -->" comment line from the
// XML body that follows it.
func splitSignedXML(t *testing.T, signed []byte) (string, []byte) {
	t.Helper()

	newline := bytes.IndexByte(signed, '\n')
	require.Positive(t, newline)

	comment := string(signed[:newline])
	require.True(t, bytes.HasPrefix(signed, []byte("<!-- ")))
	signature := comment[len("<!-- ") : len(comment)-len(" -->")]

	return signature, signed[newline+1:]
}

func verifyMD5Signature(t *testing.T, signer *Signer, body []byte, signature string) {
	t.Helper()

	raw, err := hex.DecodeString(signature)
	require.NoError(t, err)
	digest := md5.Sum(body)
	assert.NoError(t, rsa.VerifyPKCS1v15(signer.PublicKey(), crypto.MD5, digest[:], raw))
}
