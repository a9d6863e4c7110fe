package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/paper_signal_service/internal/auth"
	"github.com/sirupsen/logrus"
)

const userIDKey = "userID"

// IdentityMiddleware - middleware, определяющий пользователя по JWT из cookie или заголовка.
// Запрос без токена или с невалидным токеном продолжается как анонимный.
func IdentityMiddleware(verifier *auth.Verifier, cookieName string, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c, cookieName)
		if token != "" {
			userID, err := verifier.UserID(token)
			if err != nil {
				log.WithError(err).Debug("Ignoring invalid auth token")
			} else {
				c.Set(userIDKey, userID)
			}
		}
		c.Next()
	}
}

// RequireUser - middleware, отклоняющий анонимные запросы
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if callerID(c) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
			return
		}
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context, cookieName string) string {
	if cookieName != "" {
		if token, err := c.Cookie(cookieName); err == nil && token != "" {
			return token
		}
	}
	// Проверяем также заголовок Authorization: Bearer
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return ""
}

// callerID возвращает ID пользователя или пустую строку для анонимного запроса
func callerID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
