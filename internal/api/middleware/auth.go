package middleware

import (
	"strings"

	"vidtube/internal/api/response"
	"vidtube/pkg/utils"

	"github.com/gin-gonic/gin"
)

const (
	ContextKeyUserID = "currentUserID"

	// AccessTokenCookie 访问令牌的 Cookie 名
	AccessTokenCookie = "access_token"
	// RefreshTokenCookie 刷新令牌的 Cookie 名
	RefreshTokenCookie = "refresh_token"
)

// AuthRequired JWT 认证中间件，要求请求必须携带有效的访问令牌
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Unauthorized(c, "缺少认证令牌")
			c.Abort()
			return
		}

		claims, err := utils.ParseAccessToken(token)
		if err != nil {
			response.Unauthorized(c, "无效或过期的认证令牌")
			c.Abort()
			return
		}

		// 将用户 ID 存入上下文，后续 Handler 可通过 GetCurrentUserID 获取
		c.Set(ContextKeyUserID, claims.UserID)
		c.Next()
	}
}

// AuthOptional 可选认证中间件，令牌有效则注入用户 ID，缺失或无效不拦截
func AuthOptional() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			if claims, err := utils.ParseAccessToken(token); err == nil {
				c.Set(ContextKeyUserID, claims.UserID)
			}
		}
		c.Next()
	}
}

// GetCurrentUserID 从 Gin Context 中获取当前登录用户 ID
func GetCurrentUserID(c *gin.Context) (int64, bool) {
	val, exists := c.Get(ContextKeyUserID)
	if !exists {
		return 0, false
	}
	userID, ok := val.(int64)
	return userID, ok
}

// extractToken 优先从 Cookie 提取访问令牌，其次从 Authorization 头提取 Bearer Token
func extractToken(c *gin.Context) string {
	if token, err := c.Cookie(AccessTokenCookie); err == nil && token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
