package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/IT-Nick/burncheckbot/internal/app/handlers/http/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RequireAdminToken пропускает запросы с заголовком Authorization: Bearer <token>.
// Пустой token закрывает доступ полностью.
func RequireAdminToken(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			response.ErrorResponse(c, http.StatusForbidden, "admin API is disabled")
			return
		}

		header := c.GetHeader("Authorization")
		got, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			response.ErrorResponse(c, http.StatusUnauthorized, "invalid or missing token")
			return
		}

		c.Next()
	}
}

// RequestLogger логирует HTTP-запросы через zerolog
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		requestID := uuid.NewString()
		c.Header("X-Request-ID", requestID)

		c.Next()

		log.Info().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", c.Writer.Status()).
			Dur("took", time.Since(started)).
			Msg("http request")
	}
}
