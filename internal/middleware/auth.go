package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/aishwaryaDel/aihub-bolt/internal/apperr"
	"github.com/aishwaryaDel/aihub-bolt/internal/models"
)

const authUserKey ctxKey = "authuser"

// TokenVerifier validates a bearer token and returns the identity it encodes.
type TokenVerifier interface {
	VerifyToken(token string) (*models.AuthenticatedUser, error)
}

// Auth holds the two composable route gates. Authenticate must run before
// Authorize on any route that uses both. Neither touches persisted state;
// the only side effect is rejection or pass-through.
type Auth struct {
	tokens TokenVerifier
}

func NewAuth(tokens TokenVerifier) *Auth { return &Auth{tokens: tokens} }

// Authenticate requires an "Authorization: Bearer <token>" header, verifies
// the token and attaches the decoded identity to the request context.
func (a *Auth) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const prefix = "Bearer "
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, prefix) {
			models.WriteError(w, http.StatusUnauthorized, "Authentication token is missing")
			return
		}
		user, err := a.tokens.VerifyToken(strings.TrimPrefix(header, prefix))
		if err != nil {
			if e, ok := apperr.From(err); ok {
				models.WriteError(w, e.Code, e.Message)
			} else {
				models.WriteError(w, http.StatusUnauthorized, "Invalid or expired token")
			}
			return
		}
		ctx := context.WithValue(r.Context(), authUserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Authorize gates a route on the identity's role. Requires Authenticate to
// have run already.
func Authorize(allowedRoles ...string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := UserFrom(r)
			if user == nil {
				models.WriteError(w, http.StatusUnauthorized, "Unauthorized access")
				return
			}
			for _, role := range allowedRoles {
				if user.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			models.WriteError(w, http.StatusForbidden, "You do not have permission to perform this action")
		})
	}
}

// UserFrom returns the identity attached by Authenticate, or nil.
func UserFrom(r *http.Request) *models.AuthenticatedUser {
	if u, ok := r.Context().Value(authUserKey).(*models.AuthenticatedUser); ok {
		return u
	}
	return nil
}
