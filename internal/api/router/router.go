package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fouryearplan/backend/config"
	"fouryearplan/backend/internal/api/handler"
	"fouryearplan/backend/internal/api/middleware"
	"fouryearplan/backend/pkg/jwt"
	"fouryearplan/backend/pkg/redis"
)

// maxBodyBytes 请求体上限；保存的计划快照远小于该值
const maxBodyBytes = 1 << 20

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
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 计划生成模块（无需认证）
		plans := v1.Group("/plans")
		{
			plans.POST("/generate", h.Plan.Generate)
			plans.POST("/ai-suggestions", h.AI.Suggestions)
		}

		// 课程目录模块（无需认证；搜索接口带限流）
		courses := v1.Group("/courses")
		{
			courses.POST("/options", h.Course.Options)
			courses.POST("/search", middleware.RateLimit(rdb, 30, time.Minute), h.Course.Search)
		}

		// 专业目录模块（无需认证）
		majors := v1.Group("/majors")
		{
			majors.GET("", h.Major.List)
			majors.GET("/:name", h.Major.Get)
		}

		// 需要认证的路由
		// rdb 为 nil 时不能直接塞进接口，否则接口值非 nil 导致黑名单误查
		var blacklist middleware.TokenBlacklist
		if rdb != nil {
			blacklist = rdb
		}
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, blacklist))
		{
			// 已保存计划模块
			authorized.POST("/plans", h.SavedPlan.Save)
			authorized.GET("/plans", h.SavedPlan.List)
			authorized.GET("/plans/:id", h.SavedPlan.Get)
			authorized.DELETE("/plans/:id", h.SavedPlan.Delete)

			// 导出模块
			authorized.GET("/export/plans/:id", h.Export.ExportPlan)
		}
	}

	return r
}
