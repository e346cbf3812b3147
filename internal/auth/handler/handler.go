package handler

import (
	"net/http"

	"protettorato/internal/auth/provider"
	"protettorato/internal/logger"
	"protettorato/internal/web"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	provider provider.OAuthProvider
}

func NewHandler(p provider.OAuthProvider) *Handler {
	return &Handler{provider: p}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/login", h.login)
	r.GET("/callback", h.callback)
}

func (h *Handler) login(c *gin.Context) {
	c.Redirect(http.StatusFound, h.provider.AuthCodeURL())
}

// callback always renders the confirmation page. The authorization code
// is not exchanged, and provider errors are only logged.
func (h *Handler) callback(c *gin.Context) {
	errParam := c.Query("error")
	errDesc := c.Query("error_description")

	if errParam != "" {
		logger.Warn("oauth callback returned error", map[string]any{
			"provider": h.provider.Name(),
			"error":    errParam,
			"desc":     errDesc,
		})
	} else {
		logger.Info("oauth callback received", map[string]any{
			"provider":     h.provider.Name(),
			"code_present": c.Query("code") != "",
			"ip":           c.ClientIP(),
		})
	}

	web.CallbackPage(c)
}
