package handler

import (
	"net/http"

	"launchpad/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// InternalHandler serves the fee pipeline: it reports fee-bearing operations
// and asks how much of a fee goes to the referrer.
type InternalHandler struct {
	referralSvc *service.ReferralService
}

func NewInternalHandler(referralSvc *service.ReferralService) *InternalHandler {
	return &InternalHandler{referralSvc: referralSvc}
}

// ReferrerShare handles POST /internal/referral/share.
func (h *InternalHandler) ReferrerShare(c *gin.Context) {
	var req struct {
		Fee decimal.Decimal `json:"fee"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	share, err := h.referralSvc.CalculateReferrerShare(req.Fee)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"fee": req.Fee.String(), "referrer_share": share.StringFixed(9)})
}

// AccrueEarnings handles POST /internal/referral/earnings.
func (h *InternalHandler) AccrueEarnings(c *gin.Context) {
	var req struct {
		ReferrerID    string          `json:"referrer_id" binding:"required"`
		Amount        decimal.Decimal `json:"amount"`
		SourceUserID  string          `json:"source_user_id" binding:"required"`
		OperationType string          `json:"operation_type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := h.referralSvc.AddReferralEarnings(c.Request.Context(), req.ReferrerID, req.Amount, req.SourceUserID, req.OperationType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"referrer_id":    entry.ReferrerID,
		"referrer_share": entry.ReferrerShare.String(),
		"fee_amount":     entry.FeeAmount.String(),
		"created_at":     entry.CreatedAt,
	})
}
