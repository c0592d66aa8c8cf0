package security

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"go-vehicle-api/internal/model"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func testAccount() model.Account {
	return model.Account{ID: 7, Email: "admin@minimalapi.com", Role: model.RoleAdmin}
}

func decodePayload(t *testing.T, token string) map[string]any {
	t.Helper()

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	raw, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	payload := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &payload))
	return payload
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	service := NewTokenService(TokenConfig{Key: "unit-test-signing-key-with-length"}, WithClock(clock.Now))

	token := service.Issue(testAccount())
	require.NotEmpty(t, token)

	claims, ok := service.Verify(token)
	require.True(t, ok)
	require.Equal(t, int64(7), claims.AccountID)
	require.Equal(t, "admin@minimalapi.com", claims.Email)
	require.Equal(t, model.RoleAdmin, claims.Role)
	require.True(t, service.Validate(token))
}

func TestTokenService_Claims(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{now: issuedAt.Add(400 * time.Millisecond)}

	t.Run("writes identity, role keys and expiry", func(t *testing.T) {
		service := NewTokenService(TokenConfig{Key: "unit-test-signing-key-with-length", Lifetime: 2 * time.Hour}, WithClock(clock.Now))
		payload := decodePayload(t, service.Issue(testAccount()))

		require.Equal(t, "7", payload["sub"])
		require.Equal(t, "admin@minimalapi.com", payload["email"])
		require.Equal(t, "admin", payload["profile"])
		require.Equal(t, "admin", payload["role"])
		require.EqualValues(t, issuedAt.Unix(), payload["iat"])
		require.EqualValues(t, issuedAt.Add(2*time.Hour).Unix(), payload["exp"])
		require.NotContains(t, payload, "iss")
		require.NotContains(t, payload, "aud")
	})

	t.Run("includes issuer and audience only when configured", func(t *testing.T) {
		service := NewTokenService(TokenConfig{
			Key:      "unit-test-signing-key-with-length",
			Issuer:   "vehicle-api",
			Audience: "vehicle-clients",
		}, WithClock(clock.Now))
		payload := decodePayload(t, service.Issue(testAccount()))

		require.Equal(t, "vehicle-api", payload["iss"])
		require.Equal(t, []any{"vehicle-clients"}, payload["aud"])
	})

	t.Run("issuer and audience are not enforced", func(t *testing.T) {
		issuer := NewTokenService(TokenConfig{Key: "shared-key-for-issuer-check-tests", Issuer: "a", Audience: "b"}, WithClock(clock.Now))
		verifier := NewTokenService(TokenConfig{Key: "shared-key-for-issuer-check-tests", Issuer: "c", Audience: "d"}, WithClock(clock.Now))

		require.True(t, verifier.Validate(issuer.Issue(testAccount())))
	})

	t.Run("falls back to the profile key for the role", func(t *testing.T) {
		key := []byte("unit-test-signing-key-with-length")
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub":     "3",
			"email":   "editor@example.com",
			"profile": "editor",
			"exp":     issuedAt.Add(time.Hour).Unix(),
		}).SignedString(key)
		require.NoError(t, err)

		service := NewTokenService(TokenConfig{Key: string(key)}, WithClock(clock.Now))
		claims, ok := service.Verify(signed)
		require.True(t, ok)
		require.Equal(t, model.RoleEditor, claims.Role)
	})
}

func TestTokenService_ValidityWindow(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{now: issuedAt}
	service := NewTokenService(TokenConfig{Key: "unit-test-signing-key-with-length"}, WithClock(clock.Now))
	token := service.Issue(testAccount())

	cases := []struct {
		name  string
		at    time.Time
		valid bool
	}{
		{name: "at issuance", at: issuedAt, valid: true},
		{name: "one hour later", at: issuedAt.Add(time.Hour), valid: true},
		{name: "one second before expiry", at: issuedAt.Add(DefaultLifetime - time.Second), valid: true},
		{name: "exactly at expiry", at: issuedAt.Add(DefaultLifetime), valid: false},
		{name: "after expiry", at: issuedAt.Add(DefaultLifetime + time.Minute), valid: false},
	}

	for _, tc := range cases {
		validator := NewTokenService(TokenConfig{Key: "unit-test-signing-key-with-length"}, WithClock(func() time.Time { return tc.at }))
		require.Equal(t, tc.valid, validator.Validate(token), tc.name)
	}
}

func TestTokenService_RejectsTampering(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	service := NewTokenService(TokenConfig{Key: "unit-test-signing-key-with-length"}, WithClock(clock.Now))
	token := service.Issue(testAccount())
	require.True(t, service.Validate(token))

	for i := range len(token) {
		replacement := byte('A')
		if token[i] == 'A' {
			replacement = 'B'
		}

		tampered := []byte(token)
		tampered[i] = replacement
		require.False(t, service.Validate(string(tampered)), "byte %d altered", i)
	}
}

func TestTokenService_RejectsMalformedInput(t *testing.T) {
	t.Parallel()

	service := NewTokenService(TokenConfig{Key: "unit-test-signing-key-with-length"})

	for _, input := range []string{"", "   ", "not-a-token", "a.b.c", "a.b"} {
		require.False(t, service.Validate(input), input)
	}
}

func TestTokenService_RejectsOtherKeysAndAlgorithms(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	issuer := NewTokenService(TokenConfig{Key: "first-signing-key-with-enough-bytes"}, WithClock(clock.Now))
	verifier := NewTokenService(TokenConfig{Key: "second-signing-key-with-enough-bytes"}, WithClock(clock.Now))
	require.False(t, verifier.Validate(issuer.Issue(testAccount())))

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "1",
		"exp": clock.now.Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	require.False(t, issuer.Validate(unsigned))
}

func TestTokenConfig_SigningKeyPrecedence(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		cfg  TokenConfig
		want string
	}{
		{name: "primary wins", cfg: TokenConfig{Key: "primary", AlternateKey: "alternate", FallbackKey: "fallback"}, want: "primary"},
		{name: "alternate when primary empty", cfg: TokenConfig{AlternateKey: "alternate", FallbackKey: "fallback"}, want: "alternate"},
		{name: "blank primary is skipped", cfg: TokenConfig{Key: "  ", AlternateKey: "alternate"}, want: "alternate"},
		{name: "fallback last", cfg: TokenConfig{FallbackKey: "fallback"}, want: "fallback"},
		{name: "nothing configured", cfg: TokenConfig{}, want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, string(tc.cfg.SigningKey()))
		})
	}

	t.Run("issue and validate agree for every source", func(t *testing.T) {
		for _, cfg := range []TokenConfig{
			{Key: "primary-key-with-enough-length-here"},
			{AlternateKey: "alternate-key-with-enough-length-here"},
			{FallbackKey: DefaultSigningKey},
		} {
			service := NewTokenService(cfg)
			require.True(t, service.Validate(service.Issue(testAccount())))
		}
	})
}

func TestTokenService_FailsClosedWithoutKey(t *testing.T) {
	t.Parallel()

	service := NewTokenService(TokenConfig{})
	require.Empty(t, service.Issue(testAccount()))

	other := NewTokenService(TokenConfig{Key: "some-key-with-enough-length-12345"})
	require.False(t, service.Validate(other.Issue(testAccount())))
}
