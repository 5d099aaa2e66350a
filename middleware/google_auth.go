package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// RequireCredentials guards routes that depend on the Google APIs. When the
// process started without a usable token, every guarded route answers 500
// instead of reaching a handler wired to nil clients.
func RequireCredentials(ts oauth2.TokenSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ts == nil {
			zap.L().Error("request rejected: google credentials not configured",
				zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "Erro de configuração de autenticação.",
			})
			return
		}
		c.Next()
	}
}
