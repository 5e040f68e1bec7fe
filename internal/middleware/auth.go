package middleware

import (
	"errors"
	"net/http"
	"strings"

	"postboard/internal/pkg/jwt"
	"postboard/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// JWTAuth guards protected routes with a bearer access token. Only the second
// whitespace-delimited field of the Authorization header is used; the scheme
// value itself is not checked, so "Bearer x", "jwt x" and "JWT x" all work.
//
// Access tokens are checked by signature and expiry only. Logout does not
// revoke them; a logged-out user's access token stays usable until it
// expires (the exposure window equals the access-token TTL).
func JWTAuth(jwtSvc *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		fields := strings.Fields(c.GetHeader("Authorization"))
		if len(fields) < 2 {
			response.Error(c, http.StatusUnauthorized, "MISSING_TOKEN", "missing token")
			c.Abort()
			return
		}

		claims, err := jwtSvc.ValidateToken(fields[1])
		if err != nil {
			if errors.Is(err, jwt.ErrNotConfigured) {
				response.Error(c, http.StatusBadRequest, "MISSING_CONFIG", err.Error())
			} else {
				response.Error(c, http.StatusForbidden, "INVALID_TOKEN", "invalid token")
			}
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)

		c.Next()
	}
}

// UserID returns the authenticated subject id set by JWTAuth, or 0.
func UserID(c *gin.Context) int64 {
	return c.GetInt64("user_id")
}
