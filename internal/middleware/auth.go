package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"go-vehicle-api/internal/model"
)

type tokenVerifier interface {
	Verify(tokenString string) (model.AuthClaims, bool)
}

type contextKey string

const authClaimsContextKey contextKey = "auth_claims"

// Requirement is the access rule declared for a route. A zero Requirement
// lets every request through.
type Requirement struct {
	Authenticated bool
	Roles         []model.Role
}

func Public() Requirement {
	return Requirement{}
}

func Authenticated() Requirement {
	return Requirement{Authenticated: true}
}

// AnyRole admits an authenticated caller holding one of roles.
func AnyRole(roles ...model.Role) Requirement {
	return Requirement{Authenticated: true, Roles: roles}
}

func (r Requirement) IsPublic() bool {
	return !r.Authenticated && len(r.Roles) == 0
}

func (r Requirement) String() string {
	switch {
	case r.IsPublic():
		return "public"
	case len(r.Roles) == 0:
		return "authenticated"
	default:
		names := make([]string, 0, len(r.Roles))
		for _, role := range r.Roles {
			names = append(names, role.String())
		}
		return "roles:" + strings.Join(names, ",")
	}
}

type AuthMiddleware struct {
	verifier tokenVerifier
}

func NewAuthMiddleware(verifier tokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Gate enforces req before next runs: no bearer token or a token that does
// not verify is 401, a verified role outside req.Roles is 403. Verified
// claims are stored in the request context.
func (m *AuthMiddleware) Gate(req Requirement) func(http.Handler) http.Handler {
	if req.IsPublic() {
		return func(next http.Handler) http.Handler { return next }
	}

	allowed := make(map[model.Role]struct{}, len(req.Roles))
	for _, role := range req.Roles {
		if parsed, ok := model.ParseRole(role.String()); ok {
			allowed[parsed] = struct{}{}
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				slog.Warn("access denied", "reason", "missing bearer token", "method", r.Method, "path", r.URL.Path)
				writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
				return
			}

			claims, valid := m.verifier.Verify(token)
			if !valid {
				slog.Warn("access denied", "reason", "token rejected", "method", r.Method, "path", r.URL.Path)
				writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
				return
			}

			if len(req.Roles) > 0 {
				if _, permitted := allowed[claims.Role]; !permitted {
					slog.Warn("access denied", "reason", "role not permitted", "account_id", claims.AccountID, "role", claims.Role, "required", req.String(), "path", r.URL.Path)
					writeUnauthorized(w, "FORBIDDEN", "insufficient permissions")
					return
				}
			}

			ctx := context.WithValue(r.Context(), authClaimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func ClaimsFromContext(ctx context.Context) (model.AuthClaims, bool) {
	claims, ok := ctx.Value(authClaimsContextKey).(model.AuthClaims)
	return claims, ok
}

func bearerToken(r *http.Request) (string, bool) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(header) < 7 || !strings.EqualFold(header[:7], "bearer ") {
		return "", false
	}

	token := strings.TrimSpace(header[7:])
	return token, token != ""
}

func writeUnauthorized(w http.ResponseWriter, code string, message string) {
	w.Header().Set("Content-Type", "application/json")
	if code == "FORBIDDEN" {
		w.WriteHeader(http.StatusForbidden)
	} else {
		w.Header().Set("WWW-Authenticate", "Bearer")
		w.WriteHeader(http.StatusUnauthorized)
	}

	_ = jsonEncode(w, model.APIResponse{
		Success: false,
		Error: &model.APIError{
			Code:    code,
			Message: message,
		},
	})
}
