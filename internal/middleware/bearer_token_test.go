package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newAuthRouter(secret string) *gin.Engine {
	r := gin.New()
	auth := NewBearerTokenMiddleware(secret)
	r.GET("/organizations/:org/ping", auth.BearerTokenAuthMiddleware(), RequireOrganization("org"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"token": c.GetString(ContextAuthToken),
			"user":  c.GetString(ContextUserID),
			"org":   c.GetString(ContextOrganizationID),
		})
	})
	return r
}

func doRequest(r http.Handler, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBearerToken_ValidSignature(t *testing.T) {
	token := signToken(t, "s3cret", jwt.MapClaims{
		"sub":             "user_1",
		"organization_id": "org_1",
		"exp":             time.Now().Add(time.Hour).Unix(),
	})

	w := doRequest(newAuthRouter("s3cret"), "/organizations/org_1/ping", "Bearer "+token)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user":"user_1"`)
	assert.Contains(t, w.Body.String(), `"org":"org_1"`)
}

func TestBearerToken_WrongSecret(t *testing.T) {
	token := signToken(t, "other", jwt.MapClaims{"sub": "user_1"})

	w := doRequest(newAuthRouter("s3cret"), "/organizations/org_1/ping", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBearerToken_MissingHeader(t *testing.T) {
	w := doRequest(newAuthRouter("s3cret"), "/organizations/org_1/ping", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(newAuthRouter("s3cret"), "/organizations/org_1/ping", "Basic abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBearerToken_UnverifiedModeChecksExpiry(t *testing.T) {
	router := newAuthRouter("")

	valid := signToken(t, "issuer-secret", jwt.MapClaims{"org_id": "org_1", "exp": time.Now().Add(time.Hour).Unix()})
	w := doRequest(router, "/organizations/org_1/ping", "Bearer "+valid)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), valid)

	expired := signToken(t, "issuer-secret", jwt.MapClaims{"exp": time.Now().Add(-time.Hour).Unix()})
	w = doRequest(router, "/organizations/org_1/ping", "Bearer "+expired)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(router, "/organizations/org_1/ping", "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireOrganization_Mismatch(t *testing.T) {
	token := signToken(t, "s3cret", jwt.MapClaims{"org": "org_1"})

	w := doRequest(newAuthRouter("s3cret"), "/organizations/org_2/ping", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireOrganization_TokenWithoutOrganization(t *testing.T) {
	token := signToken(t, "s3cret", jwt.MapClaims{"sub": "user_1"})

	w := doRequest(newAuthRouter("s3cret"), "/organizations/org_2/ping", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestBearerToken_UnverifiedModeRejectsAlgNone(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"organization_id": "org_1",
		"exp":             time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	w := doRequest(newAuthRouter(""), "/organizations/org_1/ping", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
