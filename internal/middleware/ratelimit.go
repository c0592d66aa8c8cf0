package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"go-vehicle-api/internal/model"
)

const (
	defaultAuthRPM   = 10
	loginPathPrefix  = "/api/v1/auth/login"
	clientIdleWindow = 10 * time.Minute
)

type clientLimiter struct {
	general  *rate.Limiter
	auth     *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware throttles per client IP. Login attempts draw from a
// separate, stricter bucket.
type RateLimitMiddleware struct {
	generalRPM   int
	authRPM      int
	authPrefixes []string
	mu           sync.Mutex
	clients      map[string]*clientLimiter
}

// NewRateLimitMiddleware builds the limiter. generalRPM <= 0 disables the
// general bucket; authRPM <= 0 falls back to 10 per minute. authPrefixes
// defaults to the login route.
func NewRateLimitMiddleware(generalRPM int, authRPM int, authPrefixes ...string) *RateLimitMiddleware {
	if authRPM <= 0 {
		authRPM = defaultAuthRPM
	}
	if len(authPrefixes) == 0 {
		authPrefixes = []string{loginPathPrefix}
	}

	return &RateLimitMiddleware{
		generalRPM:   generalRPM,
		authRPM:      authRPM,
		authPrefixes: authPrefixes,
		clients:      map[string]*clientLimiter{},
	}
}

func (m *RateLimitMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limiter := m.getLimiter(extractClientIP(r))

		target := limiter.general
		if m.isAuthPath(r.URL.Path) {
			target = limiter.auth
		}

		if target != nil && !target.Allow() {
			w.Header().Set("Retry-After", "60")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = jsonEncode(w, model.APIResponse{
				Success: false,
				Error: &model.APIError{
					Code:    "RATE_LIMITED",
					Message: "Too many requests",
				},
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *RateLimitMiddleware) isAuthPath(path string) bool {
	path = strings.ToLower(path)
	for _, prefix := range m.authPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func (m *RateLimitMiddleware) getLimiter(clientIP string) *clientLimiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	if limiter, exists := m.clients[clientIP]; exists {
		limiter.lastSeen = now
		m.gcLocked(now)
		return limiter
	}

	created := &clientLimiter{
		auth:     rate.NewLimiter(rate.Every(time.Minute/time.Duration(m.authRPM)), m.authRPM),
		lastSeen: now,
	}
	if m.generalRPM > 0 {
		created.general = rate.NewLimiter(rate.Every(time.Minute/time.Duration(m.generalRPM)), m.generalRPM)
	}
	m.clients[clientIP] = created
	m.gcLocked(now)

	return created
}

func (m *RateLimitMiddleware) gcLocked(now time.Time) {
	if len(m.clients) < 1000 {
		return
	}

	cutoff := now.Add(-clientIdleWindow)
	for ip, limiter := range m.clients {
		if limiter.lastSeen.Before(cutoff) {
			delete(m.clients, ip)
		}
	}
}

// extractClientIP keys clients by the connection address only. Forwarding
// headers are honored solely when the router installs chi's RealIP, which
// rewrites RemoteAddr before this runs.
func extractClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}

	if strings.TrimSpace(r.RemoteAddr) == "" {
		return "unknown"
	}

	return r.RemoteAddr
}
