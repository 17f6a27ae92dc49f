package api

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/purduehcr/points-api/internal/models"
)

const ctxUserKey = "user_id"

type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// Auth verifies the bearer token and stashes the caller's user id in the
// request context. Tokens are minted by the account service; this side
// only checks the signature.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abort(c, models.Unauthorized())
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abort(c, models.Unauthorized())
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid || claims.UserID == "" {
			abort(c, models.Unauthorized())
			return
		}

		c.Set(ctxUserKey, claims.UserID)
		c.Next()
	}
}

// UserID returns the authenticated caller's id set by Auth.
func UserID(c *gin.Context) string {
	return c.GetString(ctxUserKey)
}
