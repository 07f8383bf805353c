package middleware

import (
	"strings"

	"sanvii_backend/internal/config"
	"sanvii_backend/internal/repository"
	"sanvii_backend/internal/util"
	"sanvii_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthMiddleware 校验JWT并确认会话记录仍然生效（登出后记录被删除）。
// WebSocket握手不能带Header，允许用query token兜底。
func AuthMiddleware(cfg *config.Config, sessions *repository.SessionRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			logger.Log.Debug("jwt parse failed", zap.Error(err))
			util.Unauthorized(c)
			c.Abort()
			return
		}

		if _, ok := sessions.Get(c.Request.Context(), tokenString); !ok {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Set("token", tokenString)
		c.Next()
	}
}
