package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"screener-backend/internal/shared/server/respond"
)

// SecretHeader is the header the extension sends its shared secret in.
const SecretHeader = "X-Extension-Key"

// SharedSecret rejects requests whose secret header does not match the
// configured value. An empty configured secret disables the check.
func SharedSecret(secret string) gin.HandlerFunc {
	secret = strings.TrimSpace(secret)
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		provided := strings.TrimSpace(c.GetHeader(SecretHeader))
		if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "Invalid or missing API key")
			return
		}
		c.Next()
	}
}
