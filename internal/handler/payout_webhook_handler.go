package handler

import (
	"net/http"
	"strings"

	"launchpad/internal/service"
	"launchpad/pkg/payout"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PayoutCallback is the vault's report on a transfer it finished after the
// claim request returned.
type PayoutCallback struct {
	ClaimID   string `json:"claim_id"`
	Status    string `json:"status"`
	Signature string `json:"signature"`
	Reason    string `json:"reason"`
}

type PayoutWebhookHandler struct {
	referralSvc *service.ReferralService
	logger      *zap.Logger
}

func NewPayoutWebhookHandler(referralSvc *service.ReferralService, logger *zap.Logger) *PayoutWebhookHandler {
	return &PayoutWebhookHandler{referralSvc: referralSvc, logger: logger}
}

// Handle settles the claim: confirmed marks it paid, failed refunds the
// pending balance. Repeated reports are acknowledged and ignored.
func (h *PayoutWebhookHandler) Handle(c *gin.Context) {
	var payload PayoutCallback
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Warn("payout callback: bad json", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if strings.TrimSpace(payload.ClaimID) == "" {
		h.logger.Warn("payout callback: no claim_id in payload")
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}
	status := payout.ParseStatus(payload.Status)
	if status == payout.StatusUnknown {
		h.logger.Info("payout callback: transfer still in flight", zap.String("claim_id", payload.ClaimID), zap.String("status", payload.Status))
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}
	if status == payout.StatusConfirmed && payload.Signature == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "confirmed transfer needs a signature"})
		return
	}
	err := h.referralSvc.ApplyPayoutOutcome(c.Request.Context(), payload.ClaimID, status, payload.Signature, payload.Reason)
	if err != nil {
		if service.KindOf(err) == service.KindClaimNotFound {
			h.logger.Warn("payout callback: claim not found", zap.String("claim_id", payload.ClaimID))
			c.JSON(http.StatusOK, gin.H{"received": true})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}
