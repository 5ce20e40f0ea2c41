package middlewares

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/admin/ecommerce/checkout-api/internal/domain"
	"github.com/gin-gonic/gin"
)

func RecoveryLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("PANIC CAUGHT",
					"panic", r,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"client_ip", c.ClientIP(),
				)

				log.Error("Stack trace:",
					"stack", string(debug.Stack()),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"message": domain.MsgInternalError,
				})
			}
		}()
		c.Next()
	}
}
