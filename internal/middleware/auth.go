package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/inkwell/inkwell-backend/internal/common"
	"github.com/inkwell/inkwell-backend/internal/domain"
	"github.com/inkwell/inkwell-backend/pkg/jwt"
)

const (
	ctxCredEmail = "credEmail"
	ctxCredName  = "credName"
)

// JWTAuth requires a valid bearer token. The verified identity (email,
// display name) is stored in the gin context for the profile resolver;
// token verification happens only here, never in the core.
func JWTAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := verifyBearer(c, jwtManager)
		if err != nil {
			if errors.Is(err, jwt.ErrExpiredToken) {
				common.ErrorResponse(c, 401, "Token expired", err)
			} else {
				common.ErrorResponse(c, 401, "Invalid token", err)
			}
			c.Abort()
			return
		}

		c.Set(ctxCredEmail, claims.Email)
		c.Set(ctxCredName, claims.DisplayName)
		c.Next()
	}
}

// OptionalJWTAuth verifies a bearer token when one is present but lets
// anonymous requests through. Feed reads use this.
func OptionalJWTAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}
		claims, err := verifyBearer(c, jwtManager)
		if err != nil {
			// invalid token on an optional route degrades to anonymous
			c.Next()
			return
		}
		c.Set(ctxCredEmail, claims.Email)
		c.Set(ctxCredName, claims.DisplayName)
		c.Next()
	}
}

func verifyBearer(c *gin.Context, jwtManager *jwt.Manager) (*jwt.Claims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, jwt.ErrInvalidToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, jwt.ErrInvalidToken
	}

	claims, err := jwtManager.VerifyToken(parts[1])
	if err != nil {
		return nil, err
	}
	// a refresh token cannot authenticate requests
	if claims.TokenType != jwt.TokenTypeAccess {
		return nil, jwt.ErrInvalidToken
	}
	return claims, nil
}

// GetCredential extracts the verified credential from context.
// Returns the zero Credential for anonymous requests.
func GetCredential(c *gin.Context) domain.Credential {
	email, _ := c.Get(ctxCredEmail)
	name, _ := c.Get(ctxCredName)

	cred := domain.Credential{}
	if s, ok := email.(string); ok {
		cred.Email = s
	}
	if s, ok := name.(string); ok {
		cred.DisplayName = s
	}
	return cred
}
