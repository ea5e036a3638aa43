package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/devfolio/portfolio-backend/internal/auth"
)

type fakeVerifier struct {
	token      *fbauth.Token
	verifyErr  error
	revokedUID string
}

func (f *fakeVerifier) VerifyIDToken(_ context.Context, _ string) (*fbauth.Token, error) {
	return f.token, f.verifyErr
}

func (f *fakeVerifier) RevokeRefreshTokens(_ context.Context, uid string) error {
	f.revokedUID = uid
	return nil
}

func newAdminRouter(v *fakeVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	admin := r.Group("/admin")
	admin.Use(AdminOnly(auth.NewGate(v, "owner@example.com")))
	admin.GET("/session", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "identity": auth.CurrentIdentity(c)})
	})
	return r
}

func doGet(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/session", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminOnly_MissingToken(t *testing.T) {
	r := newAdminRouter(&fakeVerifier{})

	assert.Equal(t, http.StatusUnauthorized, doGet(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "Basic abc").Code)
}

func TestAdminOnly_InvalidToken(t *testing.T) {
	r := newAdminRouter(&fakeVerifier{verifyErr: errors.New("expired")})

	assert.Equal(t, http.StatusUnauthorized, doGet(r, "Bearer stale").Code)
}

func TestAdminOnly_MismatchedEmail(t *testing.T) {
	v := &fakeVerifier{token: &fbauth.Token{
		UID:    "uid-9",
		Claims: map[string]interface{}{"email": "visitor@example.com"},
	}}
	r := newAdminRouter(v)

	assert.Equal(t, http.StatusForbidden, doGet(r, "Bearer ok").Code)
	assert.Equal(t, "uid-9", v.revokedUID, "rejected session must be revoked")
}

func TestAdminOnly_AdminPassesThrough(t *testing.T) {
	v := &fakeVerifier{token: &fbauth.Token{
		UID:    "uid-1",
		Claims: map[string]interface{}{"email": "owner@example.com"},
	}}
	r := newAdminRouter(v)

	w := doGet(r, "Bearer ok")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "owner@example.com")
}
