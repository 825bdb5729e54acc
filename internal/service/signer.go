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
	"errors"
	"fmt"

	"github.com/MKhiriev/jrebel-license-server/internal/logger"
)

// Signer holds the RSA private key used to sign activation payloads.
//
// The legacy clients verify two signature formats: SHA1withRSA encoded
// as base64 for the JRebel lease exchange, and MD5withRSA encoded as hex
// for the JetBrains XML responses. MD5 and SHA1 are what the deployed
// clients expect; they are not negotiable server-side.
type Signer struct {
	key *rsa.PrivateKey
}

// NewSignerFromPEM parses a PEM-encoded RSA private key in either PKCS#1
// or PKCS#8 form.
func NewSignerFromPEM(pemData string) (*Signer, error) {
	block, _ := pem.Decode([]byte(pemData))
	if block == nil {
		return nil, errors.New("signing key: no PEM block found")
	}

	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return &Signer{key: key}, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("signing key: %w", err)
	}

	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("signing key: not an RSA private key")
	}

	return &Signer{key: key}, nil
}

// NewEphemeralSigner generates a fresh RSA key. Leases signed with an
// ephemeral key stop verifying after a restart, so a configured key is
// preferable for anything but local use.
func NewEphemeralSigner() (*Signer, error) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, fmt.Errorf("generate signing key: %w", err)
	}

	return &Signer{key: key}, nil
}

// NewSigner builds a Signer from pemData, or an ephemeral one when
// pemData is empty or unparsable. Key problems are logged, never fatal.
func NewSigner(pemData string, log *logger.Logger) (*Signer, error) {
	if pemData != "" {
		signer, err := NewSignerFromPEM(pemData)
		if err == nil {
			log.Info().Msg("using configured license signing key")
			return signer, nil
		}
		log.Warn().Err(err).Msg("configured signing key is unusable, generating an ephemeral key")
	}

	return NewEphemeralSigner()
}

// PublicKey returns the public half of the signing key.
func (s *Signer) PublicKey() *rsa.PublicKey {
	return &s.key.PublicKey
}

// SignSHA1Base64 signs payload with SHA1withRSA and encodes the
// signature as standard base64.
func (s *Signer) SignSHA1Base64(payload string) (string, error) {
	digest := sha1.Sum([]byte(payload))
	signature, err := rsa.SignPKCS1v15(rand.Reader, s.key, crypto.SHA1, digest[:])
	if err != nil {
		return "", fmt.Errorf("sign payload: %w", err)
	}

	return base64.StdEncoding.EncodeToString(signature), nil
}

// SignMD5Hex signs payload with MD5withRSA and encodes the signature as
// lowercase hex.
func (s *Signer) SignMD5Hex(payload []byte) (string, error) {
	digest := md5.Sum(payload)
	signature, err := rsa.SignPKCS1v15(rand.Reader, s.key, crypto.MD5, digest[:])
	if err != nil {
		return "", fmt.Errorf("sign payload: %w", err)
	}

	return hex.EncodeToString(signature), nil
}
