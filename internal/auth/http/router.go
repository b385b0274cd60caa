package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/rudirimachado/portfolio-backend/internal/api/http/middleware"
)

// Register attaches the login routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/login", middleware.LoginRateLimit(rate.Every(2*time.Second), 5), h.login)
	rg.POST("/logout", h.logout)
}
