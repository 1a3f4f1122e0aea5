package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"barberhub/internal/config"
	"barberhub/internal/httperr"
)

const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
	ContextUserRole  = "userRole"
	ContextTokenJTI  = "tokenJTI"
	ContextTokenExp  = "tokenExp"
)

// TokenRevoker reports whether a token id has been revoked via logout.
type TokenRevoker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

func AuthMiddleware(cfg *config.Config, revoker TokenRevoker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Send a Bearer token.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Send a Bearer token.")
			c.Abort()
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, "invalid_token", "The token is invalid or expired.")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			httperr.Unauthorized(c, "invalid_token_claims", "The token is invalid.")
			c.Abort()
			return
		}

		userID, ok := claims["sub"].(float64)
		if !ok {
			httperr.Unauthorized(c, "invalid_token_payload", "The token is invalid.")
			c.Abort()
			return
		}
		email, _ := claims["email"].(string)
		role, _ := claims["role"].(string)
		jti, _ := claims["jti"].(string)
		exp, _ := claims["exp"].(float64)

		if revoker != nil && jti != "" {
			revoked, err := revoker.IsRevoked(c.Request.Context(), jti)
			if err == nil && revoked {
				httperr.Unauthorized(c, "token_revoked", "This session has been logged out.")
				c.Abort()
				return
			}
		}

		c.Set(ContextUserID, uint(userID))
		c.Set(ContextUserEmail, email)
		c.Set(ContextUserRole, role)
		c.Set(ContextTokenJTI, jti)
		c.Set(ContextTokenExp, int64(exp))

		c.Next()
	}
}
