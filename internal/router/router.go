package router

import (
	"time"

	"launchpad/config"
	"launchpad/internal/handler"
	"launchpad/internal/middleware"
	"launchpad/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Limiters are the request limiters the router installs. Callers own their
// sweeping.
type Limiters struct {
	Global *middleware.InMemoryRateLimiter
	Claims *middleware.InMemoryRateLimiter
}

func NewLimiters() Limiters {
	return Limiters{
		Global: middleware.NewInMemoryRateLimiter(100, 60*time.Second),
		Claims: middleware.NewInMemoryRateLimiter(5, 60*time.Second),
	}
}

func Setup(cfg *config.Config, db *gorm.DB, referralSvc *service.ReferralService, limiters Limiters, logger *zap.Logger) *gin.Engine {
	if cfg.Server.Production() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.RateLimit(limiters.Global, middleware.ByClientIP))

	// Handlers
	healthHandler := handler.NewHealthHandler(db)
	referralHandler := handler.NewReferralHandler(referralSvc)
	internalHandler := handler.NewInternalHandler(referralSvc)
	adminHandler := handler.NewAdminHandler(referralSvc.Settings())
	payoutWebhookHandler := handler.NewPayoutWebhookHandler(referralSvc, logger)

	r.GET("/healthz", healthHandler.Check)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	me := api.Group("/me/referral", middleware.AuthRequired(&cfg.JWT))
	{
		me.GET("", referralHandler.GetStats)
		me.POST("/apply", referralHandler.ApplyCode)
		me.POST("/claim", middleware.RateLimit(limiters.Claims, middleware.ByUser), referralHandler.Claim)
		me.GET("/earnings", referralHandler.ListEarnings)
		me.GET("/claims", referralHandler.ListClaims)
		me.GET("/referred", referralHandler.ListReferred)
	}

	internal := api.Group("/internal/referral", middleware.ServiceTokenRequired(&cfg.Internal))
	{
		internal.POST("/earnings", internalHandler.AccrueEarnings)
		internal.POST("/share", internalHandler.ReferrerShare)
	}

	admin := api.Group("/admin/referral", middleware.AuthRequired(&cfg.JWT), middleware.AdminRequired())
	{
		admin.GET("/settings", adminHandler.GetSettings)
		admin.PATCH("/settings", adminHandler.UpdateSettings)
	}

	api.POST("/webhooks/payout", middleware.ServiceTokenRequired(&cfg.Internal), payoutWebhookHandler.Handle)

	return r
}
