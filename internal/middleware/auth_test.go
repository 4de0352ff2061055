package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aishwaryaDel/aihub-bolt/internal/apperr"
	"github.com/aishwaryaDel/aihub-bolt/internal/models"
)

type fakeVerifier struct {
	user *models.AuthenticatedUser
	err  error
}

func (f fakeVerifier) VerifyToken(string) (*models.AuthenticatedUser, error) {
	return f.user, f.err
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) models.Response {
	t.Helper()
	var resp models.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestAuthenticateMissingHeader(t *testing.T) {
	a := NewAuth(fakeVerifier{})
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { t.Fatal("must not reach handler") })

	for _, header := range []string{"", "Basic abc", "bearer lowercase-prefix"} {
		req := httptest.NewRequest(http.MethodGet, "/use-cases", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		a.Authenticate(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		resp := decodeEnvelope(t, rec)
		assert.False(t, resp.Success)
		assert.Equal(t, "Authentication token is missing", resp.Error)
	}
}

func TestAuthenticateInvalidToken(t *testing.T) {
	a := NewAuth(fakeVerifier{err: apperr.Unauthorized("Invalid or expired token")})
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { t.Fatal("must not reach handler") })

	req := httptest.NewRequest(http.MethodGet, "/use-cases", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()
	a.Authenticate(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid or expired token", decodeEnvelope(t, rec).Error)
}

func TestAuthenticateAttachesIdentity(t *testing.T) {
	identity := &models.AuthenticatedUser{ID: "u1", Email: "a@b.co", Role: models.RoleViewer}
	a := NewAuth(fakeVerifier{user: identity})

	var seen *models.AuthenticatedUser
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = UserFrom(r)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/use-cases", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	a.Authenticate(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "u1", seen.ID)
}

func TestAuthorizeWithoutIdentity(t *testing.T) {
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { t.Fatal("must not reach handler") })
	req := httptest.NewRequest(http.MethodPost, "/use-cases", nil)
	rec := httptest.NewRecorder()
	Authorize(models.RoleAdmin)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized access", decodeEnvelope(t, rec).Error)
}

func TestAuthorizeRoleGate(t *testing.T) {
	a := NewAuth(fakeVerifier{user: &models.AuthenticatedUser{ID: "u1", Role: models.RoleViewer}})
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { t.Fatal("must not reach handler") })

	// a viewer on an admin-only route is Forbidden, never success
	req := httptest.NewRequest(http.MethodPost, "/use-cases", nil)
	req.Header.Set("Authorization", "Bearer viewer-token")
	rec := httptest.NewRecorder()
	a.Authenticate(Authorize(models.RoleAdmin)(next)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "You do not have permission to perform this action", decodeEnvelope(t, rec).Error)
}

func TestAuthorizeAllowsListedRole(t *testing.T) {
	a := NewAuth(fakeVerifier{user: &models.AuthenticatedUser{ID: "u1", Role: models.RoleAdmin}})
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodPost, "/use-cases", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	rec := httptest.NewRecorder()
	a.Authenticate(Authorize(models.RoleAdmin)(next)).ServeHTTP(rec, req)

	assert.True(t, called)
}

func TestRequestID(t *testing.T) {
	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { got = GetRequestID(r) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	RequestID(next).ServeHTTP(rec, req)
	assert.NotEmpty(t, got)
	assert.Equal(t, got, rec.Header().Get("X-Request-Id"))

	// an inbound id is kept
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "fixed-id")
	rec = httptest.NewRecorder()
	RequestID(next).ServeHTTP(rec, req)
	assert.Equal(t, "fixed-id", got)
}
