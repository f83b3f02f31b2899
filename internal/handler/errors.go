package handler

import (
	"errors"
	"net/http"

	"launchpad/internal/service"

	"github.com/gin-gonic/gin"
)

var kindStatus = map[service.ErrorKind]int{
	service.KindSystemDisabled:         http.StatusForbidden,
	service.KindInvalidUser:            http.StatusBadRequest,
	service.KindInvalidCode:            http.StatusBadRequest,
	service.KindSelfReferral:           http.StatusBadRequest,
	service.KindAlreadyReferred:        http.StatusConflict,
	service.KindInvalidAmount:          http.StatusBadRequest,
	service.KindReferrerNotFound:       http.StatusNotFound,
	service.KindInvalidDestination:     http.StatusBadRequest,
	service.KindClaimInProgress:        http.StatusConflict,
	service.KindClaimNotFound:          http.StatusNotFound,
	service.KindBelowMinimum:           http.StatusUnprocessableEntity,
	service.KindCooldownActive:         http.StatusTooManyRequests,
	service.KindConcurrentModification: http.StatusConflict,
	service.KindTransferFailed:         http.StatusBadGateway,
	service.KindCodeExhaustion:         http.StatusServiceUnavailable,
	service.KindStoreUnavailable:       http.StatusServiceUnavailable,
}

// respondError writes err as {"error", "code"}. Unknown errors become a
// bare 500 so internals never leak.
func respondError(c *gin.Context, err error) {
	var re *service.ReferralError
	if !errors.As(err, &re) {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	status, ok := kindStatus[re.Kind]
	if !ok {
		status = http.StatusInternalServerError
	}
	if status >= http.StatusInternalServerError && re.Err != nil {
		_ = c.Error(re.Err)
	}
	c.JSON(status, gin.H{"error": re.Message, "code": re.Kind})
}
