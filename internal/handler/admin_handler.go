package handler

import (
	"net/http"

	"launchpad/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	settings *service.ReferralSettings
}

func NewAdminHandler(settings *service.ReferralSettings) *AdminHandler {
	return &AdminHandler{settings: settings}
}

// GetSettings handles GET /admin/referral/settings.
func (h *AdminHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"enabled":       h.settings.Enabled(),
		"share_percent": h.settings.SharePercent(),
	})
}

// UpdateSettings handles PATCH /admin/referral/settings. Omitted fields are
// left unchanged.
func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	var req struct {
		Enabled      *bool `json:"enabled"`
		SharePercent *int  `json:"share_percent"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Enabled == nil && req.SharePercent == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
		return
	}
	if err := h.settings.Update(c.Request.Context(), req.Enabled, req.SharePercent); err != nil {
		respondError(c, err)
		return
	}
	h.GetSettings(c)
}
