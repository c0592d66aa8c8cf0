package security

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"go-vehicle-api/internal/model"
)

const (
	HasherSHA256 = "sha256"
	HasherBcrypt = "bcrypt"
)

// ErrInvalidInput is returned when hashing an empty secret.
var ErrInvalidInput = fmt.Errorf("%w: secret must not be empty", model.ErrInvalidInput)

// Hasher turns plaintext secrets into stored digests and checks them back.
// Verify never fails loudly: any unusable input is simply a mismatch.
type Hasher interface {
	Hash(secret string) (string, error)
	Verify(secret string, digest string) bool
}

func NewHasher(name string) (Hasher, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", HasherSHA256:
		return SHA256Hasher{}, nil
	case HasherBcrypt:
		return BcryptHasher{Cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("unknown password hasher %q", name)
	}
}

// SHA256Hasher produces base64(SHA-256(secret)). It is unsalted and
// unstretched so that digests stay byte-compatible with existing rows.
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(secret string) (string, error) {
	if secret == "" {
		return "", ErrInvalidInput
	}

	sum := sha256.Sum256([]byte(secret))
	return base64.StdEncoding.EncodeToString(sum[:]), nil
}

func (h SHA256Hasher) Verify(secret string, digest string) bool {
	if secret == "" || digest == "" {
		return false
	}

	computed, err := h.Hash(secret)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}

// BcryptHasher writes bcrypt digests and still accepts legacy SHA-256
// digests, so accounts migrate as their secrets change.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(secret string) (string, error) {
	if secret == "" {
		return "", ErrInvalidInput
	}

	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: secret exceeds 72 bytes", model.ErrInvalidInput)
		}
		return "", fmt.Errorf("bcrypt hash: %w", err)
	}

	return string(digest), nil
}

func (h BcryptHasher) Verify(secret string, digest string) bool {
	if secret == "" || digest == "" {
		return false
	}

	if !isBcryptDigest(digest) {
		return SHA256Hasher{}.Verify(secret, digest)
	}

	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret)) == nil
}

func isBcryptDigest(digest string) bool {
	return strings.HasPrefix(digest, "$2a$") || strings.HasPrefix(digest, "$2b$") || strings.HasPrefix(digest, "$2y$")
}
