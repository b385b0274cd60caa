package http

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rudirimachado/portfolio-backend/internal/auth/service"
	"github.com/rudirimachado/portfolio-backend/internal/logging"
)

// Handler serves the admin login flow.
type Handler struct {
	adminPassword string
	tokens        *service.TokenService
}

// New creates the auth handler.
func New(adminPassword string, tokens *service.TokenService) *Handler {
	return &Handler{adminPassword: adminPassword, tokens: tokens}
}

type loginReq struct {
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	password := strings.TrimSpace(req.Password)
	if subtle.ConstantTimeCompare([]byte(password), []byte(h.adminPassword)) != 1 {
		logging.FromContext(c.Request.Context()).Warn("admin_login", "wrong password")
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "wrong password"})
		return
	}

	token, err := h.tokens.Generate()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "could not create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "token": token})
}

// logout exists for client symmetry; tokens are stateless and simply expire.
func (h *Handler) logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
