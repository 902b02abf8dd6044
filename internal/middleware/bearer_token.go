package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

// Context keys set by BearerTokenAuthMiddleware
const (
	ContextAuthToken      = "auth_token"
	ContextUserID         = "user_id"
	ContextOrganizationID = "token_organization_id"
)

type BearerTokenMiddleware struct {
	secret []byte
}

// NewBearerTokenMiddleware creates the middleware. With an empty secret the
// token signature is left to the gifting backend, which receives the same
// token on every call; only its shape and expiry are checked here.
func NewBearerTokenMiddleware(secret string) *BearerTokenMiddleware {
	return &BearerTokenMiddleware{secret: []byte(secret)}
}

// BearerTokenAuthMiddleware validates the JWT and stores it for forwarding
func (m *BearerTokenMiddleware) BearerTokenAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		claims, err := m.parse(tokenString)
		if err != nil {
			logrus.Debugf("Rejected bearer token: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(ContextAuthToken, tokenString)
		if sub, err := claims.GetSubject(); err == nil && sub != "" {
			c.Set(ContextUserID, sub)
		}
		if org := organizationClaim(claims); org != "" {
			c.Set(ContextOrganizationID, org)
		}

		c.Next()
	}
}

func (m *BearerTokenMiddleware) parse(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}

	if len(m.secret) == 0 {
		token, _, err := jwt.NewParser().ParseUnverified(tokenString, claims)
		if err != nil {
			return nil, err
		}
		// alg none is never accepted, signed or not
		if token.Method.Alg() == jwt.SigningMethodNone.Alg() {
			return nil, errors.New("unsigned token")
		}
		exp, err := claims.GetExpirationTime()
		if err != nil {
			return nil, err
		}
		if exp != nil && exp.Before(time.Now()) {
			return nil, jwt.ErrTokenExpired
		}
		return claims, nil
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// organizationClaim reads the organization the token was issued for, if any
func organizationClaim(claims jwt.MapClaims) string {
	for _, key := range []string{"organization_id", "org_id", "org"} {
		if value, ok := claims[key].(string); ok && value != "" {
			return value
		}
	}
	return ""
}

// RequireOrganization rejects requests whose :org path parameter is not the
// organization named in the token. Tokens without an organization claim are
// rejected too.
func RequireOrganization(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenOrg := c.GetString(ContextOrganizationID)
		pathOrg := c.Param(param)
		if tokenOrg == "" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Token is not bound to an organization"})
			c.Abort()
			return
		}
		if pathOrg == "" || tokenOrg != pathOrg {
			c.JSON(http.StatusForbidden, gin.H{"error": "Token is not valid for this organization"})
			c.Abort()
			return
		}
		c.Next()
	}
}
