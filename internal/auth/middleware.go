package auth

import (
	"net/http"
	"strings"

	"hackathon-portal-backend/internal/database/models"
	"hackathon-portal-backend/internal/identity"

	"github.com/gin-gonic/gin"
)

// RoleLookup resolves the platform role for an authenticated email
type RoleLookup interface {
	GetRoleByEmail(email string) (models.Role, error)
}

// Middleware provides JWT authentication and role guards
type Middleware struct {
	provider identity.Provider
	roles    RoleLookup
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(provider identity.Provider, roles RoleLookup) *Middleware {
	return &Middleware{provider: provider, roles: roles}
}

// RequireAuth validates JWT tokens and sets user context
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.provider.Validate(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("email", claims.Email)
		c.Set("subject", claims.Subject)
		c.Set("auth_claims", claims)

		c.Next()
	}
}

// RequireRole allows the request only when the authenticated profile
// holds one of the given roles. Must run after RequireAuth.
func (m *Middleware) RequireRole(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := GetUserEmail(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		role, err := m.roles.GetRoleByEmail(email)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "Role could not be resolved"})
			c.Abort()
			return
		}

		for _, a := range allowed {
			if role == a {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "Role is not allowed to perform this action"})
		c.Abort()
	}
}

// GetUserEmail is a helper function to extract user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get("email")
	if !exists {
		return "", false
	}

	emailStr, ok := email.(string)
	return emailStr, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*identity.Claims, bool) {
	claims, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*identity.Claims)
	return authClaims, ok
}
