package app

import (
	"net/http"

	"github.com/IT-Nick/burncheckbot/internal/app/handlers/http/health_handler"
	"github.com/IT-Nick/burncheckbot/internal/app/handlers/http/invite_link_handler"
	"github.com/IT-Nick/burncheckbot/internal/app/handlers/http/stats_handler"
	"github.com/IT-Nick/burncheckbot/internal/app/handlers/http/user_report_handler"
	"github.com/IT-Nick/burncheckbot/internal/app/middleware"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps зависимости административного HTTP API
type RouterDeps struct {
	Ledger interface {
		stats_handler.Ledger
		user_report_handler.UserResults
	}
	History     user_report_handler.History
	Metrics     http.Handler
	BotUsername string
	AdminToken  string
	Log         zerolog.Logger
}

// NewRouter собирает административный HTTP API.
// /healthz открыт, остальные маршруты требуют токен администратора.
func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(deps.Log))

	r.GET("/healthz", health_handler.NewHealthHandler().Handle)

	protected := r.Group("/", middleware.RequireAdminToken(deps.AdminToken))

	if deps.Metrics != nil {
		protected.GET("/metrics", gin.WrapH(deps.Metrics))
	}

	statsHandler := stats_handler.NewStatsHandler(deps.Ledger)
	api := protected.Group("/api")
	api.GET("/stats", statsHandler.Summary)
	api.GET("/stats/export", statsHandler.Export)
	api.GET("/users/:id", user_report_handler.NewUserReportHandler(deps.Ledger, deps.History).Handle)

	inviteHandler := invite_link_handler.NewInviteLinkHandler(deps.BotUsername)
	api.GET("/invite", inviteHandler.Link)
	api.GET("/invite/qr.png", inviteHandler.QRCode)

	return r
}
