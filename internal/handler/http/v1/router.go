package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.Use(IdentityMiddleware(h.verifier, h.cfg.AuthCookieName, h.logger))

	// Маршруты жизненного цикла сигналов
	signals := api.Group("/signals")
	{
		signals.GET("/active", h.listActiveSignals)

		mutations := signals.Group("", RequireUser())
		mutations.POST("", h.createSignal)
		mutations.POST("/accept", h.acceptSignal)
		mutations.POST("/unaccept", h.unacceptSignal)
		mutations.POST("/accept-cancel", h.cancelAcceptance)
		mutations.POST("/cancel", h.cancelSignal)
	}

	// Подписка на события в реальном времени
	api.GET("/ws", h.subscribe)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
