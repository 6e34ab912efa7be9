package auth

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/tikket/tikket-server/pkg/app/errors"
	apphttp "github.com/tikket/tikket-server/pkg/app/http"
	"github.com/tikket/tikket-server/pkg/userstore"
)

// Middleware resolves the caller's identity from the Authorization header.
// Bearer tokens are looked up in the session table owned by the external auth
// system; when a JWKS validator is configured, tokens that fail the session
// lookup are additionally tried as JWTs (the `sub` claim carries the user id).
type Middleware struct {
	users     userstore.Store
	validator *JWTValidator
	logger    *zap.Logger
	now       func() time.Time
}

// NewMiddleware creates the auth middleware. validator may be nil.
func NewMiddleware(users userstore.Store, validator *JWTValidator, logger *zap.Logger) *Middleware {
	return &Middleware{
		users:     users,
		validator: validator,
		logger:    logger,
		now:       time.Now,
	}
}

// RequireUser rejects the request with 401 unless a valid session or JWT is
// presented. On success the user id is injected into the request context.
func (m *Middleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			m.reject(w, "Unauthorized")
			return
		}

		sess, err := m.users.GetSessionByToken(r.Context(), token)
		if err == nil {
			if sess.Expired(m.now()) {
				m.reject(w, "Unauthorized")
				return
			}
			ctx := WithUserID(r.Context(), sess.UserID)
			ctx = WithSessionID(ctx, sess.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		if m.validator != nil && m.validator.IsConfigured() {
			claims, jwtErr := m.validator.ValidateToken(token)
			if jwtErr == nil {
				if sub, ok := claims["sub"].(string); ok && sub != "" {
					next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), sub)))
					return
				}
			}
			m.logger.Debug("JWT validation failed", zap.Error(jwtErr))
		}

		m.logger.Debug("session resolution failed", zap.Error(err))
		m.reject(w, "Unauthorized")
	})
}

func (m *Middleware) reject(w http.ResponseWriter, message string) {
	apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(nil, message))
}

// bearerToken extracts the token from an "Authorization: Bearer ..." header.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
