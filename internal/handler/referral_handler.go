package handler

import (
	"net/http"
	"strconv"

	"launchpad/internal/middleware"
	"launchpad/internal/service"

	"github.com/gin-gonic/gin"
)

type ReferralHandler struct {
	referralSvc *service.ReferralService
}

func NewReferralHandler(referralSvc *service.ReferralService) *ReferralHandler {
	return &ReferralHandler{referralSvc: referralSvc}
}

// GetStats returns the authenticated user's referral dashboard, creating
// their referral code on first visit.
// GET /me/referral
func (h *ReferralHandler) GetStats(c *gin.Context) {
	stats, err := h.referralSvc.GetStats(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	display := gin.H{
		"pending_earnings": stats.PendingEarnings.Display(),
		"total_earnings":   stats.TotalEarnings.Display(),
		"total_claimed":    stats.TotalClaimed.Display(),
		"min_claim_amount": stats.MinClaimAmount.Display(),
	}
	c.JSON(http.StatusOK, gin.H{
		"referral_code":        stats.ReferralCode,
		"referred_by":          stats.ReferredBy,
		"referral_count":       stats.ReferralCount,
		"pending_earnings":     stats.PendingEarnings.String(),
		"total_earnings":       stats.TotalEarnings.String(),
		"total_claimed":        stats.TotalClaimed.String(),
		"min_claim_amount":     stats.MinClaimAmount.String(),
		"display":              display,
		"claim_count":          stats.ClaimCount,
		"last_claim_at":        stats.LastClaimAt,
		"last_claim_signature": stats.LastClaimSignature,
		"cooldown_ends_at":     stats.CooldownEndsAt,
		"cooldown_remaining_s": int64(stats.CooldownRemaining.Seconds()),
		"can_claim":            stats.CanClaim,
		"claim_in_progress":    stats.ClaimInProgress,
		"enabled":              stats.Enabled,
		"share_percent":        stats.SharePercent,
	})
}

// ApplyCode links the authenticated user to a referrer.
// POST /me/referral/apply
func (h *ReferralHandler) ApplyCode(c *gin.Context) {
	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.referralSvc.ApplyReferralCode(c.Request.Context(), middleware.GetUserID(c), req.Code); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Claim pays the authenticated user's pending earnings to destination.
// POST /me/referral/claim
func (h *ReferralHandler) Claim(c *gin.Context) {
	var req struct {
		Destination string `json:"destination" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.referralSvc.ProcessClaim(c.Request.Context(), middleware.GetUserID(c), req.Destination)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"claim_id":       res.ClaimID,
		"amount":         res.Amount.String(),
		"amount_display": res.Amount.Display(),
		"destination":    res.Destination,
		"tx_signature":   res.TxSignature,
		"claimed_at":     res.ClaimedAt,
	})
}

// ListEarnings returns the user's earnings ledger.
// GET /me/referral/earnings
func (h *ReferralHandler) ListEarnings(c *gin.Context) {
	limit, offset := page(c)
	list, err := h.referralSvc.ListEarnings(c.Request.Context(), middleware.GetUserID(c), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]gin.H, 0, len(list))
	for _, e := range list {
		out = append(out, gin.H{
			"source_user_id": e.SourceUserID,
			"operation_type": e.OperationType,
			"fee_amount":     e.FeeAmount.String(),
			"referrer_share": e.ReferrerShare.String(),
			"created_at":     e.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"earnings": out, "total": len(out)})
}

// ListClaims returns the user's claim history.
// GET /me/referral/claims
func (h *ReferralHandler) ListClaims(c *gin.Context) {
	limit, offset := page(c)
	list, err := h.referralSvc.ListClaims(c.Request.Context(), middleware.GetUserID(c), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]gin.H, 0, len(list))
	for _, cl := range list {
		out = append(out, gin.H{
			"claim_id":       cl.ClaimID,
			"amount":         cl.Amount.String(),
			"destination":    cl.DestinationAddress,
			"status":         cl.Status,
			"tx_signature":   cl.TxSignature,
			"failure_reason": cl.FailureReason,
			"created_at":     cl.CreatedAt,
			"settled_at":     cl.SettledAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"claims": out, "total": len(out)})
}

// ListReferred returns the users the authenticated user has referred.
// GET /me/referral/referred
func (h *ReferralHandler) ListReferred(c *gin.Context) {
	limit, offset := page(c)
	list, err := h.referralSvc.ListReferred(c.Request.Context(), middleware.GetUserID(c), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]gin.H, 0, len(list))
	for _, a := range list {
		out = append(out, gin.H{
			"user_id":   a.UserID,
			"joined_at": a.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"referred": out, "total": len(out)})
}

func page(c *gin.Context) (int, int) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	return limit, offset
}
