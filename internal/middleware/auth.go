package middleware

import (
	"strings"

	"github.com/eesast/sast-api/api"
	"github.com/eesast/sast-api/pkg/jwt"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	tokenPrefix = "Bearer "

	CtxKeyUserUUID = "userUUID" // 用户 uuid 上下文 key
)

func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 从请求头中获取 token
		authorizationValue := c.GetHeader("Authorization")
		if len(authorizationValue) <= len(tokenPrefix) || !strings.HasPrefix(authorizationValue, tokenPrefix) {
			api.ResponseError(c, api.CodeNeedLogin)
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authorizationValue, tokenPrefix)
		// 解析token，获取claims
		claims, err := jwt.ParseAccessToken(tokenString)
		if err != nil {
			zap.L().Sugar().Debugf("parse access token error: %v", err)
			api.ResponseError(c, api.CodeInvalidToken)
			c.Abort()
			return
		}
		c.Set(CtxKeyUserUUID, claims.UserUUID)
		c.Next()
	}
}
