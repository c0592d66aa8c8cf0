package security

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"go-vehicle-api/internal/model"
)

const (
	// DefaultSigningKey is the last entry of the key precedence chain.
	DefaultSigningKey = "minimal-api-default-key-32-chars-min"
	DefaultLifetime   = 24 * time.Hour
)

type TokenConfig struct {
	Key          string
	AlternateKey string
	FallbackKey  string
	Lifetime     time.Duration
	Issuer       string
	Audience     string
}

// SigningKey resolves Key, then AlternateKey, then FallbackKey. Issuing and
// validating both go through here; diverging would reject every token.
func (c TokenConfig) SigningKey() []byte {
	for _, candidate := range []string{c.Key, c.AlternateKey, c.FallbackKey} {
		if strings.TrimSpace(candidate) != "" {
			return []byte(candidate)
		}
	}

	return nil
}

// tokenClaims is the wire format. The role is written under both the
// custom "profile" key and the standard "role" key.
type tokenClaims struct {
	Email   string `json:"email,omitempty"`
	Profile string `json:"profile,omitempty"`
	Role    string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

type TokenService struct {
	cfg TokenConfig
	now func() time.Time
}

type TokenOption func(*TokenService)

func WithClock(now func() time.Time) TokenOption {
	return func(s *TokenService) {
		if now != nil {
			s.now = now
		}
	}
}

func NewTokenService(cfg TokenConfig, opts ...TokenOption) *TokenService {
	if cfg.Lifetime <= 0 {
		cfg.Lifetime = DefaultLifetime
	}

	service := &TokenService{cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(service)
	}

	return service
}

func (s *TokenService) Lifetime() time.Duration {
	return s.cfg.Lifetime
}

// Issue signs a token for account. An empty result means no key could be
// resolved and must be treated as a failed login.
func (s *TokenService) Issue(account model.Account) string {
	key := s.cfg.SigningKey()
	if len(key) == 0 {
		slog.Warn("token not issued: no signing key configured")
		return ""
	}

	issuedAt := s.now().UTC().Truncate(time.Second)
	claims := tokenClaims{
		Email:   account.Email,
		Profile: account.Role.String(),
		Role:    account.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(account.ID, 10),
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.cfg.Lifetime)),
		},
	}
	if s.cfg.Audience != "" {
		claims.Audience = jwt.ClaimStrings{s.cfg.Audience}
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		slog.Error("token signing failed", "error", err)
		return ""
	}

	return signed
}

func (s *TokenService) Validate(tokenString string) bool {
	_, ok := s.Verify(tokenString)
	return ok
}

// Verify returns the decoded identity when tokenString carries a valid
// signature and has not expired. Issuer and audience are not checked.
func (s *TokenService) Verify(tokenString string) (model.AuthClaims, bool) {
	key := s.cfg.SigningKey()
	tokenString = strings.TrimSpace(tokenString)
	if len(key) == 0 || tokenString == "" {
		return model.AuthClaims{}, false
	}

	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		slog.Debug("token rejected", "error", err)
		return model.AuthClaims{}, false
	}

	accountID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || accountID <= 0 {
		return model.AuthClaims{}, false
	}

	role := claims.Role
	if role == "" {
		role = claims.Profile
	}

	return model.AuthClaims{
		AccountID: accountID,
		Email:     claims.Email,
		Role:      model.Role(role),
	}, true
}
