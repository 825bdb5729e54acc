package service

import (
	"crypto"
	"crypto/md5"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/x509"
	"encoding/base64"
	"encoding/hex"
	"encoding/pem"
	"testing"

	"github.com/MKhiriev/jrebel-license-server/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKeyPEM(t *testing.T) string {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	return string(pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	}))
}

func TestNewSignerFromPEM(t *testing.T) {
	t.Run("pkcs1 key", func(t *testing.T) {
		signer, err := NewSignerFromPEM(testKeyPEM(t))

		require.NoError(t, err)
		assert.NotNil(t, signer.PublicKey())
	})

	t.Run("pkcs8 key", func(t *testing.T) {
		key, err := rsa.GenerateKey(rand.Reader, 2048)
		require.NoError(t, err)
		der, err := x509.MarshalPKCS8PrivateKey(key)
		require.NoError(t, err)
		pemData := string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}))

		signer, err := NewSignerFromPEM(pemData)

		require.NoError(t, err)
		assert.Equal(t, &key.PublicKey, signer.PublicKey())
	})

	t.Run("garbage input", func(t *testing.T) {
		_, err := NewSignerFromPEM("not a pem block")

		assert.Error(t, err)
	})
}

func TestNewSigner_FallsBackToEphemeralKey(t *testing.T) {
	signer, err := NewSigner("broken pem data", logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, signer.PublicKey())
}

func TestSigner_SignSHA1Base64(t *testing.T) {
	// Arrange
	signer, err := NewEphemeralSigner()
	require.NoError(t, err)
	payload := "clientRandomness;H2ulzLlh7E0=;guid;false"

	// Act
	signature, err := signer.SignSHA1Base64(payload)

	// Assert
	require.NoError(t, err)
	raw, err := base64.StdEncoding.DecodeString(signature)
	require.NoError(t, err)
	digest := sha1.Sum([]byte(payload))
	assert.NoError(t, rsa.VerifyPKCS1v15(signer.PublicKey(), crypto.SHA1, digest[:], raw))
}

func TestSigner_SignMD5Hex(t *testing.T) {
	// Arrange
	signer, err := NewEphemeralSigner()
	require.NoError(t, err)
	payload := []byte("<PingResponse><message></message></PingResponse>")

	// Act
	signature, err := signer.SignMD5Hex(payload)

	// Assert
	require.NoError(t, err)
	raw, err := hex.DecodeString(signature)
	require.NoError(t, err)
	digest := md5.Sum(payload)
	assert.NoError(t, rsa.VerifyPKCS1v15(signer.PublicKey(), crypto.MD5, digest[:], raw))
}
